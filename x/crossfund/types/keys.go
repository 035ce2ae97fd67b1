package types

import (
	"fmt"
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	icatypes "github.com/cosmos/ibc-go/v3/modules/apps/27-interchain-accounts/types"
)

const (
	// ModuleName defines the crossfund module name
	ModuleName = "crossfund"

	// StoreKey is the store key string for the crossfund module
	StoreKey = ModuleName

	// RouterKey is the message route for the crossfund module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the crossfund module
	QuerierRoute = ModuleName

	// Delimiter separates the interchain account owner from the proposal
	// identifier inside a controller port identifier.
	Delimiter = "."

	// DefaultUpdatePeriod is the update period, in blocks, used when
	// subscribing to transfers addressed to a bound interchain account.
	DefaultUpdatePeriod uint64 = 6

	// MaxRemoteTxMessages bounds how many messages of a confirmed remote
	// transaction are scanned for matching transfers.
	MaxRemoteTxMessages = 20

	// TransferMsgTypeURL is the type URL of the standard bank transfer
	// message inside a remote transaction body.
	TransferMsgTypeURL = "/cosmos.bank.v1beta1.MsgSend"

	// AutoAgreeMemo is the transaction memo through which a remote depositor
	// opts into automatic approval.
	AutoAgreeMemo = "auto_agree"

	// ProposalKeyPrefix is the key prefix for proposal storage
	ProposalKeyPrefix = "proposals"

	// ProjectFundingKeyPrefix is the key prefix for per-token proposal funding aggregates
	ProjectFundingKeyPrefix = "projectFunding"

	// ApplicationKeyPrefix is the key prefix for application storage
	ApplicationKeyPrefix = "applications"

	// ApplicationFundingKeyPrefix is the key prefix for cumulative funds committed to an application
	ApplicationFundingKeyPrefix = "applicationFunding"

	// CustodyFundsKeyPrefix is the key prefix for custodied balances
	CustodyFundsKeyPrefix = "custodyFunds"

	// InterchainAccountKeyPrefix is the key prefix for interchain account records
	InterchainAccountKeyPrefix = "interchainAccounts"

	// AccountOwnerKeyPrefix is the key prefix for the bound address -> proposal index
	AccountOwnerKeyPrefix = "icaOwner"

	// PacketPayloadKeyPrefix is the key prefix for sequenced outbound payloads
	PacketPayloadKeyPrefix = "packetPayload"

	// AckResultKeyPrefix is the key prefix for recorded acknowledgement results
	AckResultKeyPrefix = "acknowledgementResults"

	// ProcessedTxKeyPrefix is the key prefix for the processed remote transaction set
	ProcessedTxKeyPrefix = "processedTxs"

	// ErrorsQueueKeyPrefix is the key prefix for the diagnostic errors queue
	ErrorsQueueKeyPrefix = "errorsQueue"
)

var (
	// ProposalCountKey tracks the next proposal identifier
	ProposalCountKey = []byte("proposalCount")

	// PendingPayloadKey is the single staging slot for an outbound payload
	// whose sequence number is not yet known.
	PendingPayloadKey = []byte("pendingPayload")
)

// ProposalKey returns the store key for the proposal with the given identifier.
func ProposalKey(proposalID uint64) []byte {
	return []byte(fmt.Sprintf("%s/%d", ProposalKeyPrefix, proposalID))
}

// ProjectFundingKey returns the store key for a proposal's funding aggregate in one token.
func ProjectFundingKey(proposalID uint64, denom string) []byte {
	return []byte(fmt.Sprintf("%s/%d/%s", ProjectFundingKeyPrefix, proposalID, denom))
}

// ProjectFundingPrefix returns the iteration prefix over all funding aggregates of a proposal.
func ProjectFundingPrefix(proposalID uint64) []byte {
	return []byte(fmt.Sprintf("%s/%d/", ProjectFundingKeyPrefix, proposalID))
}

// ApplicationKey returns the store key for an application, keyed by proposal and applicant.
func ApplicationKey(proposalID uint64, applicant string) []byte {
	return []byte(fmt.Sprintf("%s/%d/%s", ApplicationKeyPrefix, proposalID, applicant))
}

// ApplicationPrefix returns the iteration prefix over all applications of a proposal.
func ApplicationPrefix(proposalID uint64) []byte {
	return []byte(fmt.Sprintf("%s/%d/", ApplicationKeyPrefix, proposalID))
}

// ApplicationFundingKey returns the store key for funds committed to an application in one token.
func ApplicationFundingKey(proposalID uint64, applicant, denom string) []byte {
	return []byte(fmt.Sprintf("%s/%d/%s/%s", ApplicationFundingKeyPrefix, proposalID, applicant, denom))
}

// ApplicationFundingPrefix returns the iteration prefix over all funds committed to an application.
func ApplicationFundingPrefix(proposalID uint64, applicant string) []byte {
	return []byte(fmt.Sprintf("%s/%d/%s/", ApplicationFundingKeyPrefix, proposalID, applicant))
}

// CustodyFundsKey returns the store key for an account's custodied balance in one token.
func CustodyFundsKey(address, denom string) []byte {
	return []byte(fmt.Sprintf("%s/%s/%s", CustodyFundsKeyPrefix, address, denom))
}

// CustodyFundsPrefix returns the iteration prefix over all custodied balances of an account.
func CustodyFundsPrefix(address string) []byte {
	return []byte(fmt.Sprintf("%s/%s/", CustodyFundsKeyPrefix, address))
}

// ParseCustodyFundsKey recovers the account address and token denomination
// from a full custody store key. Denominations may contain the path
// separator (e.g. IBC voucher denoms), so only the leading components are split.
func ParseCustodyFundsKey(key []byte) (address, denom string, err error) {
	keySplit := strings.SplitN(string(key), "/", 3)
	if len(keySplit) != 3 {
		return "", "", sdkerrors.Wrapf(sdkerrors.ErrLogic, "unexpected custody key: %s", key)
	}

	return keySplit[1], keySplit[2], nil
}

// InterchainAccountKey returns the store key for the interchain account record of a port.
func InterchainAccountKey(portID string) []byte {
	return []byte(fmt.Sprintf("%s/%s", InterchainAccountKeyPrefix, portID))
}

// AccountOwnerKey returns the store key for the bound address -> proposal reverse index.
func AccountOwnerKey(address string) []byte {
	return []byte(fmt.Sprintf("%s/%s", AccountOwnerKeyPrefix, address))
}

// PacketPayloadKey returns the store key for an outbound payload re-keyed by
// its source channel and sequence number.
func PacketPayloadKey(channelID string, sequence uint64) []byte {
	return []byte(fmt.Sprintf("%s/%s/%d", PacketPayloadKeyPrefix, channelID, sequence))
}

// ParsePacketPayloadKey recovers the channel identifier and sequence from a
// full outbound payload store key.
func ParsePacketPayloadKey(key []byte) (channelID string, sequence uint64, err error) {
	keySplit := strings.Split(string(key), "/")
	if len(keySplit) != 3 {
		return "", 0, sdkerrors.Wrapf(sdkerrors.ErrLogic, "unexpected payload key: %s", key)
	}

	sequence, err = strconv.ParseUint(keySplit[2], 10, 64)
	if err != nil {
		return "", 0, err
	}

	return keySplit[1], sequence, nil
}

// AckResultKey returns the store key for the acknowledgement result of an
// outbound message, keyed by controller port and sequence number.
func AckResultKey(portID string, sequence uint64) []byte {
	return []byte(fmt.Sprintf("%s/%s/%d", AckResultKeyPrefix, portID, sequence))
}

// ParseAckResultKey recovers the port identifier and sequence from a full
// acknowledgement result store key.
func ParseAckResultKey(key []byte) (portID string, sequence uint64, err error) {
	keySplit := strings.Split(string(key), "/")
	if len(keySplit) != 3 {
		return "", 0, sdkerrors.Wrapf(sdkerrors.ErrLogic, "unexpected acknowledgement result key: %s", key)
	}

	sequence, err = strconv.ParseUint(keySplit[2], 10, 64)
	if err != nil {
		return "", 0, err
	}

	return keySplit[1], sequence, nil
}

// ProcessedTxKey returns the store key marking a remote transaction digest as applied.
func ProcessedTxKey(digest []byte) []byte {
	return []byte(fmt.Sprintf("%s/%X", ProcessedTxKeyPrefix, digest))
}

// ErrorsQueueKey returns the store key of the errors queue entry with the given index.
func ErrorsQueueKey(index uint32) []byte {
	return append([]byte(ErrorsQueueKeyPrefix+"/"), sdk.Uint64ToBigEndian(uint64(index))[4:]...)
}

// ParseErrorsQueueKey recovers the queue index from a full errors queue store key.
func ParseErrorsQueueKey(key []byte) (uint32, error) {
	bz := key[len(ErrorsQueueKeyPrefix)+1:]
	if len(bz) != 4 {
		return 0, sdkerrors.Wrapf(sdkerrors.ErrLogic, "unexpected errors queue key: %s", key)
	}

	padded := append([]byte{0, 0, 0, 0}, bz...)
	return uint32(sdk.BigEndianToUint64(padded)), nil
}

// NewPortID constructs the deterministic controller port identifier bound for
// a proposal: the interchain accounts controller prefix, the module escrow
// address and the proposal identifier.
func NewPortID(owner string, proposalID uint64) string {
	return fmt.Sprintf("%s%s%s%d", icatypes.PortPrefix, owner, Delimiter, proposalID)
}

// NewInterchainAccountOwner returns the owner string handed to the interchain
// accounts controller so that the resulting port matches NewPortID.
func NewInterchainAccountOwner(owner string, proposalID uint64) string {
	return fmt.Sprintf("%s%s%d", owner, Delimiter, proposalID)
}

// ParseProposalIDFromPort recovers the proposal identifier from a controller
// port identifier produced by NewPortID.
func ParseProposalIDFromPort(portID string) (uint64, error) {
	s := strings.Split(portID, Delimiter)
	if len(s) < 2 {
		return 0, sdkerrors.Wrapf(ErrInvalidPort, "failed to parse port identifier: %s", portID)
	}

	proposalID, err := strconv.ParseUint(s[len(s)-1], 10, 64)
	if err != nil {
		return 0, sdkerrors.Wrapf(ErrInvalidPort, "failed to parse proposal identifier (%s)", s[len(s)-1])
	}

	return proposalID, nil
}
