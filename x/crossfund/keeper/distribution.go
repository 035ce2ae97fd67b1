package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// checkAutoAgree evaluates the funding quorum for an application. The quorum
// is reached for a token when the committed amount strictly exceeds half of
// the proposal's total funding in that token. The comparison is integer
// exact. The first token reaching quorum triggers autoAgree.
func (k Keeper) checkAutoAgree(ctx sdk.Context, proposalID uint64, applicant string) error {
	for _, record := range k.GetAllApplicationFunding(ctx, proposalID, applicant) {
		funding, found := k.GetProjectFunding(ctx, proposalID, record.Denom)
		if !found {
			return sdkerrors.Wrapf(sdkerrors.ErrNotFound, "funding aggregate of proposal %d for %s", proposalID, record.Denom)
		}

		// committed / total > 1/2  <=>  2 * committed > total
		if record.Amount.MulRaw(2).GT(funding.Amount) {
			return k.autoAgree(ctx, proposalID, applicant)
		}
	}

	return nil
}

// autoAgree commits the custody funds of every depositor that opted into
// automatic approval to the given application. A missing custody or
// application funding record is a ledger inconsistency and aborts the call.
// Entries already locked or bound to a different proposal are left alone.
func (k Keeper) autoAgree(ctx sdk.Context, proposalID uint64, applicant string) error {
	for _, record := range k.GetAllProjectFunding(ctx, proposalID) {
		if !record.Funding.AutoAgree {
			continue
		}

		funds, found := k.GetCustodyFunds(ctx, record.Funding.LastDepositor, record.Denom)
		if !found {
			return sdkerrors.Wrapf(sdkerrors.ErrNotFound, "custody of %s for depositor %s", record.Denom, record.Funding.LastDepositor)
		}

		if funds.Locked || funds.ProposalId != proposalID {
			continue
		}

		amount, found := k.GetApplicationFunding(ctx, proposalID, applicant, record.Denom)
		if !found {
			return sdkerrors.Wrapf(sdkerrors.ErrNotFound, "funding of application %s for %s", applicant, record.Denom)
		}

		funds.Locked = true
		k.SetCustodyFunds(ctx, record.Funding.LastDepositor, record.Denom, funds)
		k.SetApplicationFunding(ctx, proposalID, applicant, record.Denom, amount.Add(funds.Amount))

		k.Logger(ctx).Info("custody funds auto committed", "proposal_id", proposalID, "applicant", applicant, "depositor", record.Funding.LastDepositor, "denom", record.Denom)
	}

	EmitAutoAgreeEvent(ctx, proposalID, applicant)

	return nil
}

// distributeRewards consumes every locked custody entry committed to the
// proposal and credits each shareholder of the application with its
// percentage of the per-token totals. Divisions truncate; the remainder
// stays in module escrow.
func (k Keeper) distributeRewards(ctx sdk.Context, proposalID uint64, applicant string, application types.Application) error {
	totals := sdk.NewCoins()
	for _, record := range k.AllCustodyFunds(ctx) {
		if !record.Funds.Locked || record.Funds.ProposalId != proposalID {
			continue
		}

		k.DeleteCustodyFunds(ctx, record.Address, record.Denom)
		totals = totals.Add(sdk.NewCoin(record.Denom, record.Funds.Amount))
	}

	if totals.IsZero() {
		k.Logger(ctx).Info("no committed funds to distribute", "proposal_id", proposalID, "applicant", applicant)
		return nil
	}

	shareholders := application.Shareholders()
	for _, coin := range totals {
		for _, shareholder := range shareholders {
			reward := coin.Amount.MulRaw(int64(shareholder.Share)).QuoRaw(types.TotalShares)
			if reward.IsZero() {
				continue
			}

			k.creditReward(ctx, shareholder.Address, coin.Denom, reward, proposalID)
		}
	}

	k.Logger(ctx).Info("rewards distributed", "proposal_id", proposalID, "applicant", applicant, "amount", totals.String())
	EmitDistributeRewardsEvent(ctx, proposalID, applicant, totals)
	defer telemetryReportDistribution(totals)

	return nil
}

// creditReward adds a reward to the recipient's custody entry for one token,
// creating an unlocked entry when none exists. An existing locked entry keeps
// its lock and proposal binding, so the reward joins that proposal's committed
// funds; the merge is flagged with an event.
func (k Keeper) creditReward(ctx sdk.Context, address, denom string, amount sdk.Int, proposalID uint64) {
	funds, found := k.GetCustodyFunds(ctx, address, denom)
	if !found {
		k.SetCustodyFunds(ctx, address, denom, types.NewCustodyFunds(amount, proposalID, ""))
		return
	}

	funds.Amount = funds.Amount.Add(amount)
	if !funds.Locked {
		funds.ProposalId = proposalID
	} else {
		EmitRewardLockedEvent(ctx, address, denom, amount, funds.ProposalId)
	}
	k.SetCustodyFunds(ctx, address, denom, funds)
}
