package crossfund

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/crossfund/crossfund/x/crossfund/keeper"
	"github.com/crossfund/crossfund/x/crossfund/types"
)

// NewHandler returns a handler for crossfund messages.
func NewHandler(k keeper.Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) (*sdk.Result, error) {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case *types.MsgSubmitProposal:
			creator, err := sdk.AccAddressFromBech32(msg.Creator)
			if err != nil {
				return nil, err
			}

			k.SubmitProposal(ctx, creator, msg.Title, msg.Description)
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		case *types.MsgFundProposal:
			funder, err := sdk.AccAddressFromBech32(msg.Funder)
			if err != nil {
				return nil, err
			}

			if err := k.FundProposal(ctx, funder, msg.ProposalId, msg.Amount, msg.AutoAgree); err != nil {
				return nil, err
			}
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		case *types.MsgSubmitApplication:
			applicant, err := sdk.AccAddressFromBech32(msg.Applicant)
			if err != nil {
				return nil, err
			}

			if err := k.SubmitApplication(ctx, applicant, msg.ProposalId, msg.Applicants, msg.Auditors, msg.Deadline); err != nil {
				return nil, err
			}
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		case *types.MsgApproveApplication:
			voter, err := sdk.AccAddressFromBech32(msg.Voter)
			if err != nil {
				return nil, err
			}

			if err := k.ApproveApplication(ctx, voter, msg.ProposalId, msg.Applicant); err != nil {
				return nil, err
			}
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		case *types.MsgAcceptApplication:
			sender, err := sdk.AccAddressFromBech32(msg.Sender)
			if err != nil {
				return nil, err
			}

			if err := k.AcceptApplication(ctx, sender, msg.ProposalId, msg.Applicant); err != nil {
				return nil, err
			}
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		case *types.MsgVerifyApplication:
			auditor, err := sdk.AccAddressFromBech32(msg.Auditor)
			if err != nil {
				return nil, err
			}

			if err := k.VerifyApplication(ctx, auditor, msg.ProposalId, msg.Applicant); err != nil {
				return nil, err
			}
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		case *types.MsgRegisterAccount:
			if err := k.RegisterProposalAccount(ctx, msg.ProposalId, msg.ConnectionId); err != nil {
				return nil, err
			}
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		case *types.MsgWithdraw:
			sender, err := sdk.AccAddressFromBech32(msg.Sender)
			if err != nil {
				return nil, err
			}

			if _, err := k.Withdraw(ctx, sender); err != nil {
				return nil, err
			}
			return &sdk.Result{Events: ctx.EventManager().Events().ToABCIEvents()}, nil

		default:
			return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}
