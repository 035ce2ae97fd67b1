package keeper

import (
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// SubmitProposal creates a new proposal and returns its identifier.
// Identifiers are assigned sequentially starting from zero.
func (k Keeper) SubmitProposal(ctx sdk.Context, creator sdk.AccAddress, title, description string) uint64 {
	proposalID := k.GetProposalCount(ctx)
	k.SetProposal(ctx, proposalID, types.NewProposal(title, description))
	k.SetProposalCount(ctx, proposalID+1)

	k.Logger(ctx).Info("proposal submitted", "proposal_id", proposalID, "creator", creator.String())
	EmitSubmitProposalEvent(ctx, proposalID, creator.String())

	return proposalID
}

// FundProposal moves the deposited coins into module escrow, grows the
// proposal's per-token funding aggregates and credits the depositor with
// unlocked custody funds. Zero amounts are skipped; a deposit with nothing
// left after skipping is a no-op.
func (k Keeper) FundProposal(ctx sdk.Context, funder sdk.AccAddress, proposalID uint64, amount sdk.Coins, autoAgree bool) error {
	if !k.HasProposal(ctx, proposalID) {
		return sdkerrors.Wrapf(types.ErrUnknownProposal, "proposal %d", proposalID)
	}

	deposit := sdk.NewCoins()
	for _, coin := range amount {
		if coin.Amount.IsZero() {
			continue
		}
		deposit = deposit.Add(coin)
	}

	if deposit.IsZero() {
		return nil
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, deposit); err != nil {
		return err
	}

	for _, coin := range deposit {
		k.growProjectFunding(ctx, proposalID, coin.Denom, coin.Amount, autoAgree, funder.String(), true)
		if err := k.depositCustody(ctx, funder.String(), coin.Denom, coin.Amount, proposalID, ""); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("proposal funded", "proposal_id", proposalID, "funder", funder.String(), "amount", deposit.String())
	EmitFundProposalEvent(ctx, proposalID, funder.String(), deposit, autoAgree)
	defer telemetryReportDeposit(deposit, labelLocalDeposit)

	return nil
}

// GetProjectFunding returns the funding aggregate of a proposal in one token.
func (k Keeper) GetProjectFunding(ctx sdk.Context, proposalID uint64, denom string) (types.ProjectFunding, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ProjectFundingKey(proposalID, denom))
	if bz == nil {
		return types.ProjectFunding{}, false
	}

	var funding types.ProjectFunding
	k.cdc.MustUnmarshalJSON(bz, &funding)
	return funding, true
}

// SetProjectFunding stores the funding aggregate of a proposal in one token.
func (k Keeper) SetProjectFunding(ctx sdk.Context, proposalID uint64, denom string, funding types.ProjectFunding) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ProjectFundingKey(proposalID, denom), k.cdc.MustMarshalJSON(&funding))
}

// GetAllProjectFunding returns the funding aggregates of a proposal for every
// token in which it received deposits.
func (k Keeper) GetAllProjectFunding(ctx sdk.Context, proposalID uint64) []types.ProjectFundingRecord {
	store := ctx.KVStore(k.storeKey)
	prefix := types.ProjectFundingPrefix(proposalID)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []types.ProjectFundingRecord
	for ; iterator.Valid(); iterator.Next() {
		var funding types.ProjectFunding
		k.cdc.MustUnmarshalJSON(iterator.Value(), &funding)

		records = append(records, types.ProjectFundingRecord{
			ProposalId: proposalID,
			Denom:      string(iterator.Key()[len(prefix):]),
			Funding:    funding,
		})
	}

	return records
}

// growProjectFunding increments a proposal's funding aggregate for one token,
// creating it if necessary, and records the deposit attributes.
func (k Keeper) growProjectFunding(ctx sdk.Context, proposalID uint64, denom string, amount sdk.Int, autoAgree bool, depositor string, native bool) {
	funding, found := k.GetProjectFunding(ctx, proposalID, denom)
	if !found {
		funding = types.NewProjectFunding()
	}

	funding.Amount = funding.Amount.Add(amount)
	funding.AutoAgree = autoAgree
	funding.LastDepositor = depositor
	funding.Native = native

	k.SetProjectFunding(ctx, proposalID, denom, funding)
}

// GetApplicationFunding returns the cumulative amount committed to an
// application in one token, or a zero amount when nothing was committed.
func (k Keeper) GetApplicationFunding(ctx sdk.Context, proposalID uint64, applicant, denom string) (sdk.Int, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ApplicationFundingKey(proposalID, applicant, denom))
	if bz == nil {
		return sdk.ZeroInt(), false
	}

	var amount sdk.Int
	k.cdc.MustUnmarshalJSON(bz, &amount)
	return amount, true
}

// SetApplicationFunding stores the cumulative amount committed to an
// application in one token.
func (k Keeper) SetApplicationFunding(ctx sdk.Context, proposalID uint64, applicant, denom string, amount sdk.Int) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ApplicationFundingKey(proposalID, applicant, denom), k.cdc.MustMarshalJSON(&amount))
}

// GetAllApplicationFunding returns every token amount committed to an application.
func (k Keeper) GetAllApplicationFunding(ctx sdk.Context, proposalID uint64, applicant string) []types.ApplicationFundingRecord {
	store := ctx.KVStore(k.storeKey)
	prefix := types.ApplicationFundingPrefix(proposalID, applicant)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []types.ApplicationFundingRecord
	for ; iterator.Valid(); iterator.Next() {
		var amount sdk.Int
		k.cdc.MustUnmarshalJSON(iterator.Value(), &amount)

		records = append(records, types.ApplicationFundingRecord{
			ProposalId: proposalID,
			Applicant:  applicant,
			Denom:      string(iterator.Key()[len(prefix):]),
			Amount:     amount,
		})
	}

	return records
}

// parseProposalIDAndRest splits a store key of the form prefix/proposalID/rest.
func parseProposalIDAndRest(key []byte, prefix string) (uint64, string, error) {
	keySplit := strings.SplitN(string(key), "/", 3)
	if len(keySplit) != 3 || keySplit[0] != prefix {
		return 0, "", sdkerrors.Wrapf(sdkerrors.ErrLogic, "unexpected key: %s", key)
	}

	proposalID, err := strconv.ParseUint(keySplit[1], 10, 64)
	if err != nil {
		return 0, "", err
	}

	return proposalID, keySplit[2], nil
}
