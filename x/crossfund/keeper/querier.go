package keeper

import (
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// NewQuerier returns a new sdk.Querier for the crossfund module.
func NewQuerier(k Keeper, legacyQuerierCdc *codec.LegacyAmino) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, error) {
		switch path[0] {
		case types.QueryProposal:
			return queryProposal(ctx, req, k, legacyQuerierCdc)
		case types.QueryProposals:
			return queryProposals(ctx, k, legacyQuerierCdc)
		case types.QueryApplication:
			return queryApplication(ctx, req, k, legacyQuerierCdc)
		case types.QueryApplications:
			return queryApplications(ctx, req, k, legacyQuerierCdc)
		case types.QueryCustodyFunds:
			return queryCustodyFunds(ctx, req, k, legacyQuerierCdc)
		case types.QueryInterchainAccount:
			return queryInterchainAccount(ctx, req, k, legacyQuerierCdc)
		case types.QueryAckResult:
			return queryAckResult(ctx, req, k, legacyQuerierCdc)
		case types.QueryErrorsQueue:
			return queryErrorsQueue(ctx, k, legacyQuerierCdc)
		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unknown %s query endpoint: %s", types.ModuleName, path[0])
		}
	}
}

func queryProposal(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryProposalParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to parse params: %s", err)
	}

	proposal, found := k.GetProposal(ctx, params.ProposalId)
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrUnknownProposal, "proposal %d", params.ProposalId)
	}

	response := types.QueryProposalResponse{
		ProposalId: params.ProposalId,
		Proposal:   proposal,
		Funding:    k.GetAllProjectFunding(ctx, params.ProposalId),
	}

	return codec.MarshalJSONIndent(legacyQuerierCdc, response)
}

func queryProposals(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	return codec.MarshalJSONIndent(legacyQuerierCdc, k.AllProposals(ctx))
}

func queryApplication(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryApplicationParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to parse params: %s", err)
	}

	application, found := k.GetApplication(ctx, params.ProposalId, params.Applicant)
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrInvalidApplication, "no application of %s for proposal %d", params.Applicant, params.ProposalId)
	}

	response := types.ApplicationRecord{
		ProposalId:  params.ProposalId,
		Applicant:   params.Applicant,
		Application: application,
	}

	return codec.MarshalJSONIndent(legacyQuerierCdc, response)
}

func queryApplications(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryProposalParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to parse params: %s", err)
	}

	return codec.MarshalJSONIndent(legacyQuerierCdc, k.GetAllApplications(ctx, params.ProposalId))
}

func queryCustodyFunds(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryCustodyFundsParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to parse params: %s", err)
	}

	return codec.MarshalJSONIndent(legacyQuerierCdc, k.GetAccountFunds(ctx, params.Address, false))
}

func queryInterchainAccount(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryProposalParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to parse params: %s", err)
	}

	portID := types.NewPortID(k.GetModuleAddress().String(), params.ProposalId)
	account, found := k.GetInterchainAccount(ctx, portID)
	if !found {
		return nil, sdkerrors.Wrapf(types.ErrInterchainAccountNotFound, "proposal %d", params.ProposalId)
	}

	response := types.QueryInterchainAccountResponse{
		PortId:  portID,
		Account: account,
	}

	return codec.MarshalJSONIndent(legacyQuerierCdc, response)
}

func queryAckResult(ctx sdk.Context, req abci.RequestQuery, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	var params types.QueryAckResultParams
	if err := legacyQuerierCdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrJSONUnmarshal, "failed to parse params: %s", err)
	}

	result, found := k.GetAckResult(ctx, params.PortId, params.Sequence)
	if !found {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrKeyNotFound, "no acknowledgement result for port %s, sequence %d", params.PortId, params.Sequence)
	}

	return codec.MarshalJSONIndent(legacyQuerierCdc, result)
}

func queryErrorsQueue(ctx sdk.Context, k Keeper, legacyQuerierCdc *codec.LegacyAmino) ([]byte, error) {
	response := types.QueryErrorsQueueResponse{Errors: k.GetErrorsQueue(ctx)}
	return codec.MarshalJSONIndent(legacyQuerierCdc, response)
}
