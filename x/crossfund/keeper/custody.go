package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// GetCustodyFunds returns the custody entry of an account for one token.
func (k Keeper) GetCustodyFunds(ctx sdk.Context, address, denom string) (types.CustodyFunds, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.CustodyFundsKey(address, denom))
	if bz == nil {
		return types.CustodyFunds{}, false
	}

	var funds types.CustodyFunds
	k.cdc.MustUnmarshalJSON(bz, &funds)
	return funds, true
}

// SetCustodyFunds stores the custody entry of an account for one token.
func (k Keeper) SetCustodyFunds(ctx sdk.Context, address, denom string, funds types.CustodyFunds) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.CustodyFundsKey(address, denom), k.cdc.MustMarshalJSON(&funds))
}

// DeleteCustodyFunds removes the custody entry of an account for one token.
func (k Keeper) DeleteCustodyFunds(ctx sdk.Context, address, denom string) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.CustodyFundsKey(address, denom))
}

// GetAccountFunds returns the custody entries of an account. When unlockedOnly
// is set, locked entries are filtered out.
func (k Keeper) GetAccountFunds(ctx sdk.Context, address string, unlockedOnly bool) []types.CustodyRecord {
	store := ctx.KVStore(k.storeKey)
	prefix := types.CustodyFundsPrefix(address)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []types.CustodyRecord
	for ; iterator.Valid(); iterator.Next() {
		var funds types.CustodyFunds
		k.cdc.MustUnmarshalJSON(iterator.Value(), &funds)

		if unlockedOnly && funds.Locked {
			continue
		}

		records = append(records, types.CustodyRecord{
			Address: address,
			Denom:   string(iterator.Key()[len(prefix):]),
			Funds:   funds,
		})
	}

	return records
}

// depositCustody credits an account with unlocked custody funds for one
// token. A deposit for the same proposal merges into an existing unlocked
// entry; a deposit colliding with a locked entry or an entry bound to a
// different proposal is rejected so that no custodied funds are overwritten.
func (k Keeper) depositCustody(ctx sdk.Context, address, denom string, amount sdk.Int, proposalID uint64, remoteOrigin string) error {
	funds, found := k.GetCustodyFunds(ctx, address, denom)
	if !found {
		k.SetCustodyFunds(ctx, address, denom, types.NewCustodyFunds(amount, proposalID, remoteOrigin))
		return nil
	}

	if funds.Locked {
		return sdkerrors.Wrapf(types.ErrCustodyConflict, "custody of %s for %s is locked", denom, address)
	}
	if funds.ProposalId != proposalID {
		return sdkerrors.Wrapf(types.ErrCustodyConflict, "custody of %s for %s is bound to proposal %d", denom, address, funds.ProposalId)
	}

	funds.Amount = funds.Amount.Add(amount)
	if remoteOrigin != "" {
		funds.RemoteOrigin = remoteOrigin
	}
	k.SetCustodyFunds(ctx, address, denom, funds)

	return nil
}

// Withdraw releases all unlocked custody funds of the sender from module
// escrow back to its own account and removes the corresponding entries.
func (k Keeper) Withdraw(ctx sdk.Context, sender sdk.AccAddress) (sdk.Coins, error) {
	records := k.GetAccountFunds(ctx, sender.String(), true)
	if len(records) == 0 {
		return nil, sdkerrors.Wrapf(types.ErrNoFunds, "account %s", sender.String())
	}

	withdrawn := sdk.NewCoins()
	for _, record := range records {
		coin := sdk.NewCoin(record.Denom, record.Funds.Amount)
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sender, sdk.NewCoins(coin)); err != nil {
			return nil, err
		}

		k.DeleteCustodyFunds(ctx, sender.String(), record.Denom)
		withdrawn = withdrawn.Add(coin)
	}

	k.Logger(ctx).Info("custody funds withdrawn", "sender", sender.String(), "amount", withdrawn.String())
	EmitWithdrawEvent(ctx, sender.String(), withdrawn)

	return withdrawn, nil
}

// AllCustodyFunds returns every custody entry in the store, for genesis
// export and invariant checking.
func (k Keeper) AllCustodyFunds(ctx sdk.Context) []types.CustodyRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.CustodyFundsKeyPrefix+"/"))
	defer iterator.Close()

	var records []types.CustodyRecord
	for ; iterator.Valid(); iterator.Next() {
		address, denom, err := types.ParseCustodyFundsKey(iterator.Key())
		if err != nil {
			panic(err)
		}

		var funds types.CustodyFunds
		k.cdc.MustUnmarshalJSON(iterator.Value(), &funds)

		records = append(records, types.CustodyRecord{
			Address: address,
			Denom:   denom,
			Funds:   funds,
		})
	}

	return records
}
