package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	// MaxShareholders bounds the combined number of applicants and auditors
	// on a single application.
	MaxShareholders = 100

	// TotalShares is the required sum of all percentage shares on an application.
	TotalShares = 100
)

// MaxTransferAmount caps the amount of a single ingested remote transfer.
var MaxTransferAmount, _ = sdk.NewIntFromString("340282366920938463463374607431768211455")

// Proposal is an immutable funding target. Funding aggregates and
// applications are stored separately, keyed by the proposal identifier.
type Proposal struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// NewProposal creates a new Proposal instance.
func NewProposal(title, description string) Proposal {
	return Proposal{
		Title:       title,
		Description: description,
	}
}

// ProjectFunding aggregates the funds deposited toward a proposal in a single
// token. The amount only grows through deposits; distribution consumes custody
// entries, so the aggregate is a lifetime statistic.
type ProjectFunding struct {
	Amount        sdk.Int `json:"amount" yaml:"amount"`
	AutoAgree     bool    `json:"auto_agree" yaml:"auto_agree"`
	LastDepositor string  `json:"last_depositor" yaml:"last_depositor"`
	Native        bool    `json:"native" yaml:"native"`
}

// NewProjectFunding returns an empty funding aggregate for a local token.
func NewProjectFunding() ProjectFunding {
	return ProjectFunding{
		Amount: sdk.ZeroInt(),
		Native: true,
	}
}

// CustodyFunds is a custodied balance held on behalf of an account for a
// specific token and proposal. RemoteOrigin carries the controller port
// identifier when the funds arrived through remote deposit ingestion.
type CustodyFunds struct {
	Amount       sdk.Int `json:"amount" yaml:"amount"`
	ProposalId   uint64  `json:"proposal_id" yaml:"proposal_id"`
	Locked       bool    `json:"locked" yaml:"locked"`
	RemoteOrigin string  `json:"remote_origin,omitempty" yaml:"remote_origin"`
}

// NewCustodyFunds creates a new unlocked custody entry.
func NewCustodyFunds(amount sdk.Int, proposalID uint64, remoteOrigin string) CustodyFunds {
	return CustodyFunds{
		Amount:       amount,
		ProposalId:   proposalID,
		RemoteOrigin: remoteOrigin,
	}
}

// Shareholder is a payout recipient together with its integer percentage share.
type Shareholder struct {
	Address string `json:"address" yaml:"address"`
	Share   uint8  `json:"share" yaml:"share"`
}

// Application is a claim against a proposal's funds with a shareholder payout
// split and an auditor verification requirement. Deadline is a block height.
type Application struct {
	Applicants    []Shareholder `json:"applicants" yaml:"applicants"`
	Auditors      []Shareholder `json:"auditors" yaml:"auditors"`
	Deadline      uint64        `json:"deadline" yaml:"deadline"`
	Accepted      bool          `json:"accepted" yaml:"accepted"`
	Verifications []string      `json:"verifications" yaml:"verifications"`
}

// NewApplication creates a new unaccepted Application instance.
func NewApplication(applicants, auditors []Shareholder, deadline uint64) Application {
	return Application{
		Applicants: applicants,
		Auditors:   auditors,
		Deadline:   deadline,
	}
}

// Shareholders returns the applicants followed by the auditors, preserving
// stored order. Reward distribution iterates this slice.
func (a Application) Shareholders() []Shareholder {
	shareholders := make([]Shareholder, 0, len(a.Applicants)+len(a.Auditors))
	shareholders = append(shareholders, a.Applicants...)
	return append(shareholders, a.Auditors...)
}

// HasApplicant reports whether the given address is a listed applicant.
func (a Application) HasApplicant(address string) bool {
	for _, applicant := range a.Applicants {
		if applicant.Address == address {
			return true
		}
	}
	return false
}

// HasAuditor reports whether the given address is a listed auditor.
func (a Application) HasAuditor(address string) bool {
	for _, auditor := range a.Auditors {
		if auditor.Address == address {
			return true
		}
	}
	return false
}

// HasVerified reports whether the given auditor already verified the application.
func (a Application) HasVerified(address string) bool {
	for _, verification := range a.Verifications {
		if verification == address {
			return true
		}
	}
	return false
}

// Validate checks the shareholder invariant against the current block height:
// both shareholder lists must be non-empty, the combined list must not exceed
// MaxShareholders, every share must be a positive percentage and all shares
// must sum to exactly TotalShares. The deadline must be a future height; an
// unset deadline is rejected.
func (a Application) Validate(currentHeight uint64) error {
	if len(a.Applicants) == 0 {
		return sdkerrors.Wrap(ErrInvalidApplication, "applicants list must not be empty")
	}
	if len(a.Auditors) == 0 {
		return sdkerrors.Wrap(ErrInvalidApplication, "auditors list must not be empty")
	}

	shareholders := a.Shareholders()
	if len(shareholders) > MaxShareholders {
		return sdkerrors.Wrapf(ErrInvalidApplication, "at most %d shareholders allowed, got %d", MaxShareholders, len(shareholders))
	}

	total := 0
	for _, shareholder := range shareholders {
		if shareholder.Address == "" {
			return sdkerrors.Wrap(ErrInvalidApplication, "shareholder address must not be empty")
		}
		if shareholder.Share == 0 {
			return sdkerrors.Wrapf(ErrInvalidApplication, "shareholder %s has a zero percentage share", shareholder.Address)
		}
		total += int(shareholder.Share)
	}

	if total != TotalShares {
		return sdkerrors.Wrapf(ErrInvalidApplication, "percentage shares must sum to %d, got %d", TotalShares, total)
	}

	if a.Deadline == 0 {
		return sdkerrors.Wrap(ErrInvalidApplication, "deadline must be set")
	}
	if a.Deadline <= currentHeight {
		return sdkerrors.Wrapf(ErrInvalidApplication, "deadline %d is not after the current height %d", a.Deadline, currentHeight)
	}

	return nil
}

// String implements the Stringer interface for an Application.
func (a Application) String() string {
	out, _ := yaml.Marshal(a)
	return string(out)
}

// InterchainAccount is the record of a proposal's account on a remote chain.
// The record is stored empty while registration is pending and populated when
// the open acknowledgement is delivered.
type InterchainAccount struct {
	Address      string `json:"address" yaml:"address"`
	ConnectionId string `json:"connection_id" yaml:"connection_id"`
}

// Empty reports whether the account registration is still pending.
func (ia InterchainAccount) Empty() bool {
	return ia.Address == ""
}

// PacketPayload describes a locally issued cross-chain message so that its
// eventual asynchronous result can be attributed to the right logical request.
type PacketPayload struct {
	Message string `json:"message" yaml:"message"`
	PortId  string `json:"port_id" yaml:"port_id"`
}

// NewPacketPayload creates a new PacketPayload instance.
func NewPacketPayload(message, portID string) PacketPayload {
	return PacketPayload{
		Message: message,
		PortId:  portID,
	}
}

// Acknowledgement result statuses.
const (
	AckStatusSuccess = "success"
	AckStatusError   = "error"
	AckStatusTimeout = "timeout"
)

// AcknowledgementResult is the terminal state of an outbound cross-chain
// message: success with the acknowledged message item types, error with the
// original message and the counterparty supplied details, or timeout with the
// original message.
type AcknowledgementResult struct {
	Status    string   `json:"status" yaml:"status"`
	ItemTypes []string `json:"item_types,omitempty" yaml:"item_types"`
	Request   string   `json:"request,omitempty" yaml:"request"`
	Details   string   `json:"details,omitempty" yaml:"details"`
}

// NewSuccessResult creates an AcknowledgementResult for a successful acknowledgement.
func NewSuccessResult(itemTypes []string) AcknowledgementResult {
	return AcknowledgementResult{
		Status:    AckStatusSuccess,
		ItemTypes: itemTypes,
	}
}

// NewErrorResult creates an AcknowledgementResult for an error acknowledgement.
func NewErrorResult(request, details string) AcknowledgementResult {
	return AcknowledgementResult{
		Status:  AckStatusError,
		Request: request,
		Details: details,
	}
}

// NewTimeoutResult creates an AcknowledgementResult for a timed out message.
func NewTimeoutResult(request string) AcknowledgementResult {
	return AcknowledgementResult{
		Status:  AckStatusTimeout,
		Request: request,
	}
}

// Validate checks that the result carries a known status.
func (r AcknowledgementResult) Validate() error {
	switch r.Status {
	case AckStatusSuccess, AckStatusError, AckStatusTimeout:
		return nil
	default:
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidType, "unknown acknowledgement status: %s", r.Status)
	}
}

// Transfer is a decoded bank transfer extracted from a confirmed remote transaction.
type Transfer struct {
	Sender    string  `json:"sender" yaml:"sender"`
	Recipient string  `json:"recipient" yaml:"recipient"`
	Denom     string  `json:"denom" yaml:"denom"`
	Amount    sdk.Int `json:"amount" yaml:"amount"`
}
