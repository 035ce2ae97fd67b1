package keeper

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	icatypes "github.com/cosmos/ibc-go/v3/modules/apps/27-interchain-accounts/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// GetInterchainAccount returns the interchain account record of a controller port.
func (k Keeper) GetInterchainAccount(ctx sdk.Context, portID string) (types.InterchainAccount, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.InterchainAccountKey(portID))
	if bz == nil {
		return types.InterchainAccount{}, false
	}

	var account types.InterchainAccount
	k.cdc.MustUnmarshalJSON(bz, &account)
	return account, true
}

// SetInterchainAccount stores the interchain account record of a controller port.
func (k Keeper) SetInterchainAccount(ctx sdk.Context, portID string, account types.InterchainAccount) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.InterchainAccountKey(portID), k.cdc.MustMarshalJSON(&account))
}

// AllInterchainAccounts returns every interchain account record, pending ones
// included.
func (k Keeper) AllInterchainAccounts(ctx sdk.Context) []types.InterchainAccountRecord {
	store := ctx.KVStore(k.storeKey)
	prefix := []byte(types.InterchainAccountKeyPrefix + "/")
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []types.InterchainAccountRecord
	for ; iterator.Valid(); iterator.Next() {
		var account types.InterchainAccount
		k.cdc.MustUnmarshalJSON(iterator.Value(), &account)

		records = append(records, types.InterchainAccountRecord{
			PortId:  string(iterator.Key()[len(prefix):]),
			Account: account,
		})
	}

	return records
}

// SetAccountOwner stores the reverse index from a bound remote address to the
// controller port it belongs to.
func (k Keeper) SetAccountOwner(ctx sdk.Context, address, portID string) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.AccountOwnerKey(address), []byte(portID))
}

// GetAccountOwner returns the controller port bound to a remote address.
func (k Keeper) GetAccountOwner(ctx sdk.Context, address string) (string, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.AccountOwnerKey(address))
	if bz == nil {
		return "", false
	}

	return string(bz), true
}

// RegisterProposalAccount initiates the registration of an interchain account
// for a proposal over the given connection. The deterministic owner embeds
// the proposal identifier so that the resulting port can be attributed back.
// A pending record is stored until the open acknowledgement arrives.
func (k Keeper) RegisterProposalAccount(ctx sdk.Context, proposalID uint64, connectionID string) error {
	if !k.HasProposal(ctx, proposalID) {
		return sdkerrors.Wrapf(types.ErrUnknownProposal, "proposal %d", proposalID)
	}

	owner := types.NewInterchainAccountOwner(k.GetModuleAddress().String(), proposalID)
	if err := k.icaControllerKeeper.RegisterInterchainAccount(ctx, connectionID, owner); err != nil {
		return err
	}

	portID := icatypes.PortPrefix + owner
	k.SetInterchainAccount(ctx, portID, types.InterchainAccount{})

	k.Logger(ctx).Info("interchain account registration initiated", "proposal_id", proposalID, "connection_id", connectionID, "port_id", portID)
	EmitRegisterAccountEvent(ctx, proposalID, connectionID, portID)

	return nil
}

// OnChannelOpenAck binds a registered interchain account once the channel
// handshake completes. The counterparty version carries the account address
// and the connection identifiers; after binding, a transfers subscription for
// the account is registered on the host connection starting at the current
// height.
func (k Keeper) OnChannelOpenAck(ctx sdk.Context, portID, channelID, counterpartyVersion string) error {
	if _, found := k.GetInterchainAccount(ctx, portID); !found {
		return sdkerrors.Wrapf(types.ErrInterchainAccountNotFound, "port %s", portID)
	}

	var metadata icatypes.Metadata
	if err := json.Unmarshal([]byte(counterpartyVersion), &metadata); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidVersion, "cannot unmarshal counterparty version: %v", err)
	}
	if metadata.Address == "" {
		return sdkerrors.Wrap(types.ErrInvalidVersion, "interchain account address is empty")
	}

	account := types.InterchainAccount{
		Address:      metadata.Address,
		ConnectionId: metadata.ControllerConnectionId,
	}
	k.SetInterchainAccount(ctx, portID, account)
	k.SetAccountOwner(ctx, metadata.Address, portID)

	if err := k.transfersQueryKeeper.RegisterTransfersQuery(
		ctx, metadata.HostConnectionId, metadata.Address,
		types.DefaultUpdatePeriod, uint64(ctx.BlockHeight()),
	); err != nil {
		return err
	}

	k.Logger(ctx).Info("interchain account bound", "port_id", portID, "channel_id", channelID, "address", metadata.Address)
	EmitAccountBoundEvent(ctx, portID, channelID, metadata.Address, metadata.ControllerConnectionId)

	return nil
}
