package types

// query endpoints supported by the crossfund legacy querier
const (
	QueryProposal          = "proposal"
	QueryProposals         = "proposals"
	QueryApplication       = "application"
	QueryApplications      = "applications"
	QueryCustodyFunds      = "custody-funds"
	QueryInterchainAccount = "interchain-account"
	QueryAckResult         = "acknowledgement-result"
	QueryErrorsQueue       = "errors-queue"
)

// QueryProposalParams defines the params for the following queries:
// - 'custom/crossfund/proposal'
// - 'custom/crossfund/applications'
// - 'custom/crossfund/interchain-account'
type QueryProposalParams struct {
	ProposalId uint64 `json:"proposal_id" yaml:"proposal_id"`
}

// NewQueryProposalParams creates a new QueryProposalParams instance.
func NewQueryProposalParams(proposalID uint64) QueryProposalParams {
	return QueryProposalParams{ProposalId: proposalID}
}

// QueryApplicationParams defines the params for the query:
// - 'custom/crossfund/application'
type QueryApplicationParams struct {
	ProposalId uint64 `json:"proposal_id" yaml:"proposal_id"`
	Applicant  string `json:"applicant" yaml:"applicant"`
}

// NewQueryApplicationParams creates a new QueryApplicationParams instance.
func NewQueryApplicationParams(proposalID uint64, applicant string) QueryApplicationParams {
	return QueryApplicationParams{
		ProposalId: proposalID,
		Applicant:  applicant,
	}
}

// QueryCustodyFundsParams defines the params for the query:
// - 'custom/crossfund/custody-funds'
type QueryCustodyFundsParams struct {
	Address string `json:"address" yaml:"address"`
}

// NewQueryCustodyFundsParams creates a new QueryCustodyFundsParams instance.
func NewQueryCustodyFundsParams(address string) QueryCustodyFundsParams {
	return QueryCustodyFundsParams{Address: address}
}

// QueryAckResultParams defines the params for the query:
// - 'custom/crossfund/acknowledgement-result'
type QueryAckResultParams struct {
	PortId   string `json:"port_id" yaml:"port_id"`
	Sequence uint64 `json:"sequence" yaml:"sequence"`
}

// NewQueryAckResultParams creates a new QueryAckResultParams instance.
func NewQueryAckResultParams(portID string, sequence uint64) QueryAckResultParams {
	return QueryAckResultParams{
		PortId:   portID,
		Sequence: sequence,
	}
}

// QueryProposalResponse is the response to the proposal query: the proposal
// record together with its per-token funding aggregates.
type QueryProposalResponse struct {
	ProposalId uint64                 `json:"proposal_id" yaml:"proposal_id"`
	Proposal   Proposal               `json:"proposal" yaml:"proposal"`
	Funding    []ProjectFundingRecord `json:"funding" yaml:"funding"`
}

// QueryInterchainAccountResponse is the response to the interchain account
// query.
type QueryInterchainAccountResponse struct {
	PortId  string            `json:"port_id" yaml:"port_id"`
	Account InterchainAccount `json:"account" yaml:"account"`
}

// QueryErrorsQueueResponse is the response to the errors queue query.
type QueryErrorsQueueResponse struct {
	Errors []string `json:"errors" yaml:"errors"`
}
