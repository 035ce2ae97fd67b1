package keeper

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// EmitSubmitProposalEvent emits an event signalling a newly created proposal.
func EmitSubmitProposalEvent(ctx sdk.Context, proposalID uint64, creator string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitProposal,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeySender, creator),
		),
	)
}

// EmitFundProposalEvent emits an event signalling a local deposit.
func EmitFundProposalEvent(ctx sdk.Context, proposalID uint64, funder string, amount sdk.Coins, autoAgree bool) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFundProposal,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeySender, funder),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyAutoAgree, strconv.FormatBool(autoAgree)),
		),
	)
}

// EmitSubmitApplicationEvent emits an event signalling a new application.
func EmitSubmitApplicationEvent(ctx sdk.Context, proposalID uint64, applicant string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitApplication,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyApplicant, applicant),
		),
	)
}

// EmitApproveApplicationEvent emits an event signalling committed custody funds.
func EmitApproveApplicationEvent(ctx sdk.Context, proposalID uint64, applicant, voter string, amount sdk.Coins) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproveApplication,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyApplicant, applicant),
			sdk.NewAttribute(types.AttributeKeySender, voter),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}

// EmitAcceptApplicationEvent emits an event signalling an accepted application.
func EmitAcceptApplicationEvent(ctx sdk.Context, proposalID uint64, applicant string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAcceptApplication,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyApplicant, applicant),
		),
	)
}

// EmitAutoAgreeEvent emits an event signalling an automatic quorum approval.
func EmitAutoAgreeEvent(ctx sdk.Context, proposalID uint64, applicant string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoAgree,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyApplicant, applicant),
		),
	)
}

// EmitVerifyApplicationEvent emits an event signalling an auditor verification.
func EmitVerifyApplicationEvent(ctx sdk.Context, proposalID uint64, applicant, auditor string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeVerifyApplication,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyApplicant, applicant),
			sdk.NewAttribute(types.AttributeKeyAuditor, auditor),
		),
	)
}

// EmitDistributeRewardsEvent emits an event signalling a completed distribution.
func EmitDistributeRewardsEvent(ctx sdk.Context, proposalID uint64, applicant string, amount sdk.Coins) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDistributeRewards,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyApplicant, applicant),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}

// EmitRewardLockedEvent emits an event signalling a reward merged into a
// custody entry locked for another proposal.
func EmitRewardLockedEvent(ctx sdk.Context, address, denom string, amount sdk.Int, proposalID uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRewardLocked,
			sdk.NewAttribute(types.AttributeKeyAddress, address),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
		),
	)
}

// EmitWithdrawEvent emits an event signalling withdrawn custody funds.
func EmitWithdrawEvent(ctx sdk.Context, sender string, amount sdk.Coins) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdraw,
			sdk.NewAttribute(types.AttributeKeySender, sender),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}

// EmitRegisterAccountEvent emits an event signalling an initiated interchain
// account registration.
func EmitRegisterAccountEvent(ctx sdk.Context, proposalID uint64, connectionID, portID string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterAccount,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			sdk.NewAttribute(types.AttributeKeyPortID, portID),
		),
	)
}

// EmitAccountBoundEvent emits an event signalling a bound interchain account.
func EmitAccountBoundEvent(ctx sdk.Context, portID, channelID, address, connectionID string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAccountBound,
			sdk.NewAttribute(types.AttributeKeyPortID, portID),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeyAddress, address),
			sdk.NewAttribute(types.AttributeKeyConnectionID, connectionID),
		),
	)
}

// EmitAckResultEvent emits an event signalling a recorded acknowledgement result.
func EmitAckResultEvent(ctx sdk.Context, portID, channelID string, sequence uint64, status string) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAckResult,
			sdk.NewAttribute(types.AttributeKeyPortID, portID),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
			sdk.NewAttribute(types.AttributeKeyAckStatus, status),
		),
	)
}

// EmitRemoteDepositEvent emits an event signalling an ingested remote deposit.
func EmitRemoteDepositEvent(ctx sdk.Context, proposalID uint64, recipient string, amount sdk.Coins, digest []byte) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoteDeposit,
			sdk.NewAttribute(types.AttributeKeyProposalID, strconv.FormatUint(proposalID, 10)),
			sdk.NewAttribute(types.AttributeKeyAddress, recipient),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyTxDigest, fmt.Sprintf("%X", digest)),
		),
	)
}
