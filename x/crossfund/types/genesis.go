package types

import (
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// ProposalRecord is a proposal together with its identifier, used in genesis
// and query responses.
type ProposalRecord struct {
	ProposalId uint64   `json:"proposal_id" yaml:"proposal_id"`
	Proposal   Proposal `json:"proposal" yaml:"proposal"`
}

// ProjectFundingRecord is a funding aggregate keyed by proposal and token.
type ProjectFundingRecord struct {
	ProposalId uint64         `json:"proposal_id" yaml:"proposal_id"`
	Denom      string         `json:"denom" yaml:"denom"`
	Funding    ProjectFunding `json:"funding" yaml:"funding"`
}

// ApplicationRecord is an application keyed by proposal and applicant.
type ApplicationRecord struct {
	ProposalId  uint64      `json:"proposal_id" yaml:"proposal_id"`
	Applicant   string      `json:"applicant" yaml:"applicant"`
	Application Application `json:"application" yaml:"application"`
}

// ApplicationFundingRecord is the cumulative amount committed to an
// application in one token.
type ApplicationFundingRecord struct {
	ProposalId uint64  `json:"proposal_id" yaml:"proposal_id"`
	Applicant  string  `json:"applicant" yaml:"applicant"`
	Denom      string  `json:"denom" yaml:"denom"`
	Amount     sdk.Int `json:"amount" yaml:"amount"`
}

// CustodyRecord is a custody entry keyed by account and token.
type CustodyRecord struct {
	Address string       `json:"address" yaml:"address"`
	Denom   string       `json:"denom" yaml:"denom"`
	Funds   CustodyFunds `json:"funds" yaml:"funds"`
}

// InterchainAccountRecord is an interchain account record keyed by its
// controller port identifier. The account may still be pending.
type InterchainAccountRecord struct {
	PortId  string            `json:"port_id" yaml:"port_id"`
	Account InterchainAccount `json:"account" yaml:"account"`
}

// PacketPayloadRecord is an outbound payload keyed by source channel and sequence.
type PacketPayloadRecord struct {
	ChannelId string        `json:"channel_id" yaml:"channel_id"`
	Sequence  uint64        `json:"sequence" yaml:"sequence"`
	Payload   PacketPayload `json:"payload" yaml:"payload"`
}

// AckResultRecord is an acknowledgement result keyed by controller port and sequence.
type AckResultRecord struct {
	PortId   string                `json:"port_id" yaml:"port_id"`
	Sequence uint64                `json:"sequence" yaml:"sequence"`
	Result   AcknowledgementResult `json:"result" yaml:"result"`
}

// GenesisState defines the crossfund module's genesis state.
type GenesisState struct {
	ProposalCount       uint64                     `json:"proposal_count" yaml:"proposal_count"`
	Proposals           []ProposalRecord           `json:"proposals" yaml:"proposals"`
	ProjectFunding      []ProjectFundingRecord     `json:"project_funding" yaml:"project_funding"`
	Applications        []ApplicationRecord        `json:"applications" yaml:"applications"`
	ApplicationFunding  []ApplicationFundingRecord `json:"application_funding" yaml:"application_funding"`
	CustodyFunds        []CustodyRecord            `json:"custody_funds" yaml:"custody_funds"`
	InterchainAccounts  []InterchainAccountRecord  `json:"interchain_accounts" yaml:"interchain_accounts"`
	PendingPayload      *PacketPayload             `json:"pending_payload,omitempty" yaml:"pending_payload"`
	PacketPayloads      []PacketPayloadRecord      `json:"packet_payloads" yaml:"packet_payloads"`
	AckResults          []AckResultRecord          `json:"ack_results" yaml:"ack_results"`
	ProcessedTxs        []string                   `json:"processed_txs" yaml:"processed_txs"`
	ErrorsQueue         []string                   `json:"errors_queue" yaml:"errors_queue"`
}

// NewGenesisState creates a new GenesisState instance.
func NewGenesisState(proposalCount uint64, proposals []ProposalRecord) *GenesisState {
	return &GenesisState{
		ProposalCount: proposalCount,
		Proposals:     proposals,
	}
}

// DefaultGenesisState returns the default crossfund genesis state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic validation of the genesis state.
func (gs GenesisState) Validate() error {
	seen := make(map[uint64]bool, len(gs.Proposals))
	for _, record := range gs.Proposals {
		if record.ProposalId >= gs.ProposalCount {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "proposal identifier %d exceeds the proposal count %d", record.ProposalId, gs.ProposalCount)
		}
		if seen[record.ProposalId] {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "duplicate proposal identifier %d", record.ProposalId)
		}
		seen[record.ProposalId] = true
	}

	for _, record := range gs.ProjectFunding {
		if err := sdk.ValidateDenom(record.Denom); err != nil {
			return err
		}
		if record.Funding.Amount.IsNil() || record.Funding.Amount.IsNegative() {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid funding amount for proposal %d", record.ProposalId)
		}
	}

	for _, record := range gs.Applications {
		if _, err := sdk.AccAddressFromBech32(record.Applicant); err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid applicant address %s", record.Applicant)
		}
	}

	for _, record := range gs.ApplicationFunding {
		if record.Amount.IsNil() || !record.Amount.IsPositive() {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid committed amount for application %s on proposal %d", record.Applicant, record.ProposalId)
		}
	}

	for _, record := range gs.CustodyFunds {
		if _, err := sdk.AccAddressFromBech32(record.Address); err != nil {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "invalid custody address %s", record.Address)
		}
		if record.Funds.Amount.IsNil() || !record.Funds.Amount.IsPositive() {
			return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "invalid custody amount for %s", record.Address)
		}
	}

	for _, record := range gs.InterchainAccounts {
		if _, err := ParseProposalIDFromPort(record.PortId); err != nil {
			return err
		}
	}

	for _, record := range gs.AckResults {
		if err := record.Result.Validate(); err != nil {
			return err
		}
	}

	for _, digest := range gs.ProcessedTxs {
		if _, err := hex.DecodeString(digest); err != nil {
			return fmt.Errorf("invalid processed transaction digest %s: %w", digest, err)
		}
	}

	return nil
}
