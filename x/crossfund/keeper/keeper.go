package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// Keeper defines the crossfund keeper. Custodied deposits are held in the
// module escrow account while their ownership and lock status are tracked in
// the module store.
type Keeper struct {
	storeKey sdk.StoreKey
	cdc      *codec.LegacyAmino

	authKeeper           types.AccountKeeper
	bankKeeper           types.BankKeeper
	icaControllerKeeper  types.ICAControllerKeeper
	transfersQueryKeeper types.TransfersQueryKeeper
}

// NewKeeper creates a new crossfund Keeper instance.
func NewKeeper(
	cdc *codec.LegacyAmino, key sdk.StoreKey,
	authKeeper types.AccountKeeper, bankKeeper types.BankKeeper,
	icaControllerKeeper types.ICAControllerKeeper, transfersQueryKeeper types.TransfersQueryKeeper,
) Keeper {
	// ensure crossfund module account is set
	if addr := authKeeper.GetModuleAddress(types.ModuleName); addr == nil {
		panic("the crossfund module account has not been set")
	}

	return Keeper{
		storeKey:             key,
		cdc:                  cdc,
		authKeeper:           authKeeper,
		bankKeeper:           bankKeeper,
		icaControllerKeeper:  icaControllerKeeper,
		transfersQueryKeeper: transfersQueryKeeper,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the address of the module escrow account.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.authKeeper.GetModuleAddress(types.ModuleName)
}

// GetProposalCount returns the number of proposals created so far, which is
// also the identifier assigned to the next proposal.
func (k Keeper) GetProposalCount(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ProposalCountKey)
	if bz == nil {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

// SetProposalCount stores the number of proposals created so far.
func (k Keeper) SetProposalCount(ctx sdk.Context, count uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ProposalCountKey, sdk.Uint64ToBigEndian(count))
}

// GetProposal returns the proposal with the given identifier.
func (k Keeper) GetProposal(ctx sdk.Context, proposalID uint64) (types.Proposal, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ProposalKey(proposalID))
	if bz == nil {
		return types.Proposal{}, false
	}

	var proposal types.Proposal
	k.cdc.MustUnmarshalJSON(bz, &proposal)
	return proposal, true
}

// SetProposal stores a proposal under the given identifier.
func (k Keeper) SetProposal(ctx sdk.Context, proposalID uint64, proposal types.Proposal) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ProposalKey(proposalID), k.cdc.MustMarshalJSON(&proposal))
}

// HasProposal reports whether a proposal with the given identifier exists.
func (k Keeper) HasProposal(ctx sdk.Context, proposalID uint64) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.ProposalKey(proposalID))
}

// AllProposals returns every stored proposal in ascending identifier order.
func (k Keeper) AllProposals(ctx sdk.Context) []types.ProposalRecord {
	count := k.GetProposalCount(ctx)
	records := make([]types.ProposalRecord, 0, count)
	for proposalID := uint64(0); proposalID < count; proposalID++ {
		proposal, found := k.GetProposal(ctx, proposalID)
		if !found {
			continue
		}

		records = append(records, types.ProposalRecord{ProposalId: proposalID, Proposal: proposal})
	}

	return records
}

// SetProcessedTx marks a remote transaction digest as applied.
func (k Keeper) SetProcessedTx(ctx sdk.Context, digest []byte) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ProcessedTxKey(digest), []byte{1})
}

// HasProcessedTx reports whether a remote transaction digest was already applied.
func (k Keeper) HasProcessedTx(ctx sdk.Context, digest []byte) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.ProcessedTxKey(digest))
}

// AllProcessedTxs returns the hex digests of all applied remote transactions.
func (k Keeper) AllProcessedTxs(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ProcessedTxKeyPrefix+"/"))
	defer iterator.Close()

	var digests []string
	for ; iterator.Valid(); iterator.Next() {
		digests = append(digests, string(iterator.Key()[len(types.ProcessedTxKeyPrefix)+1:]))
	}

	return digests
}

// AppendErrorToQueue records a non-fatal diagnostic message under the next
// free queue index.
func (k Keeper) AppendErrorToQueue(ctx sdk.Context, message string) {
	store := ctx.KVStore(k.storeKey)

	var index uint32
	iterator := sdk.KVStoreReversePrefixIterator(store, []byte(types.ErrorsQueueKeyPrefix+"/"))
	defer iterator.Close()

	if iterator.Valid() {
		last, err := types.ParseErrorsQueueKey(iterator.Key())
		if err != nil {
			panic(err)
		}
		index = last + 1
	}

	store.Set(types.ErrorsQueueKey(index), []byte(message))
	k.Logger(ctx).Error("recorded diagnostic error", "index", index, "error", message)
}

// GetErrorsQueue returns all recorded diagnostic messages in insertion order.
func (k Keeper) GetErrorsQueue(ctx sdk.Context) []string {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ErrorsQueueKeyPrefix+"/"))
	defer iterator.Close()

	var messages []string
	for ; iterator.Valid(); iterator.Next() {
		messages = append(messages, string(iterator.Value()))
	}

	return messages
}
