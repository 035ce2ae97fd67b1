package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/gogo/protobuf/proto"
	"github.com/tendermint/tendermint/crypto/tmhash"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// OnRemoteTransactionResult ingests a confirmed remote transaction delivered
// for the transfers subscription of a bound interchain account. The
// transaction body is scanned for bank transfers addressed to the account;
// matching amounts grow the owning proposal's funding and are credited as
// unlocked custody of the remote sender. The body digest guards against
// replays: an already applied transaction is a silent success. Malformed or
// oversized amounts abort the whole call with no partial crediting.
func (k Keeper) OnRemoteTransactionResult(ctx sdk.Context, recipient string, txBytes []byte) error {
	var raw txtypes.TxRaw
	if err := proto.Unmarshal(txBytes, &raw); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "cannot unmarshal remote transaction: %v", err)
	}

	digest := tmhash.Sum(raw.BodyBytes)
	if k.HasProcessedTx(ctx, digest) {
		k.Logger(ctx).Debug("remote transaction already applied", "digest", fmt.Sprintf("%X", digest))
		return nil
	}

	var body txtypes.TxBody
	if err := proto.Unmarshal(raw.BodyBytes, &body); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "cannot unmarshal remote transaction body: %v", err)
	}

	transfers, err := matchTransfers(body, recipient)
	if err != nil {
		return err
	}
	if len(transfers) == 0 {
		return sdkerrors.Wrapf(types.ErrNoMatchingTransfers, "recipient %s", recipient)
	}

	portID, found := k.GetAccountOwner(ctx, recipient)
	if !found {
		k.AppendErrorToQueue(ctx, fmt.Sprintf("no proposal bound to remote deposit recipient %s", recipient))
		return nil
	}

	proposalID, err := types.ParseProposalIDFromPort(portID)
	if err != nil {
		return err
	}

	// validate before crediting anything
	for _, transfer := range transfers {
		funds, found := k.GetCustodyFunds(ctx, transfer.Sender, transfer.Denom)
		if !found {
			continue
		}
		if funds.Locked {
			return sdkerrors.Wrapf(types.ErrCustodyConflict, "custody of %s for %s is locked", transfer.Denom, transfer.Sender)
		}
		if funds.ProposalId != proposalID {
			return sdkerrors.Wrapf(types.ErrCustodyConflict, "custody of %s for %s is bound to proposal %d", transfer.Denom, transfer.Sender, funds.ProposalId)
		}
	}

	autoAgree := body.Memo == types.AutoAgreeMemo
	deposited := sdk.NewCoins()
	for _, transfer := range transfers {
		k.growProjectFunding(ctx, proposalID, transfer.Denom, transfer.Amount, autoAgree, transfer.Sender, false)
		if err := k.depositCustody(ctx, transfer.Sender, transfer.Denom, transfer.Amount, proposalID, portID); err != nil {
			return err
		}

		deposited = deposited.Add(sdk.NewCoin(transfer.Denom, transfer.Amount))
	}

	k.SetProcessedTx(ctx, digest)

	k.Logger(ctx).Info("remote deposit ingested", "proposal_id", proposalID, "recipient", recipient, "amount", deposited.String(), "auto_agree", autoAgree)
	EmitRemoteDepositEvent(ctx, proposalID, recipient, deposited, digest)
	defer telemetryReportDeposit(deposited, labelRemoteDeposit)

	return nil
}

// matchTransfers extracts the bank transfers addressed to the recipient from
// the first MaxRemoteTxMessages messages of a transaction body. Every matched
// amount is range checked; a single malformed or oversized amount fails the
// whole extraction.
func matchTransfers(body txtypes.TxBody, recipient string) ([]types.Transfer, error) {
	messages := body.Messages
	if len(messages) > types.MaxRemoteTxMessages {
		messages = messages[:types.MaxRemoteTxMessages]
	}

	var transfers []types.Transfer
	for _, message := range messages {
		if message.TypeUrl != types.TransferMsgTypeURL {
			continue
		}

		var send banktypes.MsgSend
		if err := proto.Unmarshal(message.Value, &send); err != nil {
			return nil, sdkerrors.Wrapf(sdkerrors.ErrInvalidRequest, "cannot unmarshal transfer message: %v", err)
		}
		if send.ToAddress != recipient {
			continue
		}

		for _, coin := range send.Amount {
			if coin.Amount.IsNil() || !coin.Amount.IsPositive() {
				return nil, sdkerrors.Wrapf(types.ErrInvalidTransferAmount, "denom %s", coin.Denom)
			}
			if coin.Amount.GT(types.MaxTransferAmount) {
				return nil, sdkerrors.Wrapf(types.ErrTransferTooLarge, "%s%s", coin.Amount, coin.Denom)
			}

			transfers = append(transfers, types.Transfer{
				Sender:    send.FromAddress,
				Recipient: send.ToAddress,
				Denom:     coin.Denom,
				Amount:    coin.Amount,
			})
		}
	}

	return transfers, nil
}
