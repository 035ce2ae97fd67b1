package keeper

import (
	"encoding/hex"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// InitGenesis initializes the crossfund module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, state types.GenesisState) {
	k.SetProposalCount(ctx, state.ProposalCount)

	for _, record := range state.Proposals {
		k.SetProposal(ctx, record.ProposalId, record.Proposal)
	}
	for _, record := range state.ProjectFunding {
		k.SetProjectFunding(ctx, record.ProposalId, record.Denom, record.Funding)
	}
	for _, record := range state.Applications {
		k.SetApplication(ctx, record.ProposalId, record.Applicant, record.Application)
	}
	for _, record := range state.ApplicationFunding {
		k.SetApplicationFunding(ctx, record.ProposalId, record.Applicant, record.Denom, record.Amount)
	}
	for _, record := range state.CustodyFunds {
		k.SetCustodyFunds(ctx, record.Address, record.Denom, record.Funds)
	}
	for _, record := range state.InterchainAccounts {
		k.SetInterchainAccount(ctx, record.PortId, record.Account)
		if !record.Account.Empty() {
			k.SetAccountOwner(ctx, record.Account.Address, record.PortId)
		}
	}
	if state.PendingPayload != nil {
		k.StagePayload(ctx, *state.PendingPayload)
	}
	for _, record := range state.PacketPayloads {
		k.SetPacketPayload(ctx, record.ChannelId, record.Sequence, record.Payload)
	}
	for _, record := range state.AckResults {
		if err := k.setAckResult(ctx, record.PortId, record.Sequence, record.Result); err != nil {
			panic(err)
		}
	}
	for _, digest := range state.ProcessedTxs {
		bz, err := hex.DecodeString(digest)
		if err != nil {
			panic(err)
		}
		k.SetProcessedTx(ctx, bz)
	}
	for _, message := range state.ErrorsQueue {
		k.AppendErrorToQueue(ctx, message)
	}
}

// ExportGenesis exports the crossfund module state as a genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	state := &types.GenesisState{
		ProposalCount:      k.GetProposalCount(ctx),
		Proposals:          k.AllProposals(ctx),
		ProjectFunding:     k.AllProjectFundingRecords(ctx),
		Applications:       k.AllApplicationRecords(ctx),
		ApplicationFunding: k.AllApplicationFundingRecords(ctx),
		CustodyFunds:       k.AllCustodyFunds(ctx),
		InterchainAccounts: k.AllInterchainAccounts(ctx),
		PacketPayloads:     k.AllPacketPayloads(ctx),
		AckResults:         k.AllAckResults(ctx),
		ProcessedTxs:       k.AllProcessedTxs(ctx),
		ErrorsQueue:        k.GetErrorsQueue(ctx),
	}

	if payload, found := k.GetPendingPayload(ctx); found {
		state.PendingPayload = &payload
	}

	return state
}

// AllProjectFundingRecords returns every funding aggregate in the store.
func (k Keeper) AllProjectFundingRecords(ctx sdk.Context) []types.ProjectFundingRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ProjectFundingKeyPrefix+"/"))
	defer iterator.Close()

	var records []types.ProjectFundingRecord
	for ; iterator.Valid(); iterator.Next() {
		proposalID, denom, err := parseProposalIDAndRest(iterator.Key(), types.ProjectFundingKeyPrefix)
		if err != nil {
			panic(err)
		}

		var funding types.ProjectFunding
		k.cdc.MustUnmarshalJSON(iterator.Value(), &funding)

		records = append(records, types.ProjectFundingRecord{
			ProposalId: proposalID,
			Denom:      denom,
			Funding:    funding,
		})
	}

	return records
}

// AllApplicationRecords returns every application in the store.
func (k Keeper) AllApplicationRecords(ctx sdk.Context) []types.ApplicationRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ApplicationKeyPrefix+"/"))
	defer iterator.Close()

	var records []types.ApplicationRecord
	for ; iterator.Valid(); iterator.Next() {
		proposalID, applicant, err := parseProposalIDAndRest(iterator.Key(), types.ApplicationKeyPrefix)
		if err != nil {
			panic(err)
		}

		var application types.Application
		k.cdc.MustUnmarshalJSON(iterator.Value(), &application)

		records = append(records, types.ApplicationRecord{
			ProposalId:  proposalID,
			Applicant:   applicant,
			Application: application,
		})
	}

	return records
}

// AllApplicationFundingRecords returns every committed application amount in
// the store.
func (k Keeper) AllApplicationFundingRecords(ctx sdk.Context) []types.ApplicationFundingRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.ApplicationFundingKeyPrefix+"/"))
	defer iterator.Close()

	var records []types.ApplicationFundingRecord
	for ; iterator.Valid(); iterator.Next() {
		proposalID, rest, err := parseProposalIDAndRest(iterator.Key(), types.ApplicationFundingKeyPrefix)
		if err != nil {
			panic(err)
		}

		// the token denomination may itself contain the path separator
		restSplit := strings.SplitN(rest, "/", 2)
		if len(restSplit) != 2 {
			panic(sdkerrors.Wrapf(sdkerrors.ErrLogic, "unexpected application funding key: %s", iterator.Key()))
		}

		var amount sdk.Int
		k.cdc.MustUnmarshalJSON(iterator.Value(), &amount)

		records = append(records, types.ApplicationFundingRecord{
			ProposalId: proposalID,
			Applicant:  restSplit[0],
			Denom:      restSplit[1],
			Amount:     amount,
		})
	}

	return records
}
