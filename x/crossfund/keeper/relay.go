package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// StagePayload stores the description of an outbound message in the single
// staging slot. The slot holds at most one payload: the one whose sequence
// number is not yet known. Transaction submission over the interchain account
// channel stages its payload here and binds it with BindPendingPayload once
// SendTx returns the packet sequence.
func (k Keeper) StagePayload(ctx sdk.Context, payload types.PacketPayload) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.PendingPayloadKey, k.cdc.MustMarshalJSON(&payload))
}

// GetPendingPayload returns the staged outbound payload, if any.
func (k Keeper) GetPendingPayload(ctx sdk.Context) (types.PacketPayload, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PendingPayloadKey)
	if bz == nil {
		return types.PacketPayload{}, false
	}

	var payload types.PacketPayload
	k.cdc.MustUnmarshalJSON(bz, &payload)
	return payload, true
}

// BindPendingPayload re-keys the staged payload under the source channel and
// sequence number assigned to the sent message, and clears the staging slot.
func (k Keeper) BindPendingPayload(ctx sdk.Context, channelID string, sequence uint64) (types.PacketPayload, error) {
	payload, found := k.GetPendingPayload(ctx)
	if !found {
		return types.PacketPayload{}, sdkerrors.Wrapf(types.ErrPendingPayloadNotFound, "channel %s, sequence %d", channelID, sequence)
	}

	store := ctx.KVStore(k.storeKey)
	store.Set(types.PacketPayloadKey(channelID, sequence), k.cdc.MustMarshalJSON(&payload))
	store.Delete(types.PendingPayloadKey)

	return payload, nil
}

// GetPacketPayload returns the outbound payload bound to a channel and sequence.
func (k Keeper) GetPacketPayload(ctx sdk.Context, channelID string, sequence uint64) (types.PacketPayload, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PacketPayloadKey(channelID, sequence))
	if bz == nil {
		return types.PacketPayload{}, false
	}

	var payload types.PacketPayload
	k.cdc.MustUnmarshalJSON(bz, &payload)
	return payload, true
}

// SetPacketPayload stores an outbound payload under a channel and sequence.
func (k Keeper) SetPacketPayload(ctx sdk.Context, channelID string, sequence uint64, payload types.PacketPayload) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.PacketPayloadKey(channelID, sequence), k.cdc.MustMarshalJSON(&payload))
}

// DeletePacketPayload removes the outbound payload bound to a channel and sequence.
func (k Keeper) DeletePacketPayload(ctx sdk.Context, channelID string, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.PacketPayloadKey(channelID, sequence))
}

// AllPacketPayloads returns every bound outbound payload.
func (k Keeper) AllPacketPayloads(ctx sdk.Context) []types.PacketPayloadRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.PacketPayloadKeyPrefix+"/"))
	defer iterator.Close()

	var records []types.PacketPayloadRecord
	for ; iterator.Valid(); iterator.Next() {
		channelID, sequence, err := types.ParsePacketPayloadKey(iterator.Key())
		if err != nil {
			panic(err)
		}

		var payload types.PacketPayload
		k.cdc.MustUnmarshalJSON(iterator.Value(), &payload)

		records = append(records, types.PacketPayloadRecord{
			ChannelId: channelID,
			Sequence:  sequence,
			Payload:   payload,
		})
	}

	return records
}

// GetAckResult returns the recorded acknowledgement result of an outbound
// message, keyed by controller port and sequence.
func (k Keeper) GetAckResult(ctx sdk.Context, portID string, sequence uint64) (types.AcknowledgementResult, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.AckResultKey(portID, sequence))
	if bz == nil {
		return types.AcknowledgementResult{}, false
	}

	var result types.AcknowledgementResult
	k.cdc.MustUnmarshalJSON(bz, &result)
	return result, true
}

// setAckResult records the terminal state of an outbound message. A sequence
// may be written exactly once per port; a second write is an error.
func (k Keeper) setAckResult(ctx sdk.Context, portID string, sequence uint64, result types.AcknowledgementResult) error {
	if err := result.Validate(); err != nil {
		return err
	}

	store := ctx.KVStore(k.storeKey)
	key := types.AckResultKey(portID, sequence)
	if store.Has(key) {
		return sdkerrors.Wrapf(types.ErrAckResultExists, "port %s, sequence %d", portID, sequence)
	}

	store.Set(key, k.cdc.MustMarshalJSON(&result))
	return nil
}

// AllAckResults returns every recorded acknowledgement result.
func (k Keeper) AllAckResults(ctx sdk.Context) []types.AckResultRecord {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(types.AckResultKeyPrefix+"/"))
	defer iterator.Close()

	var records []types.AckResultRecord
	for ; iterator.Valid(); iterator.Next() {
		portID, sequence, err := types.ParseAckResultKey(iterator.Key())
		if err != nil {
			panic(err)
		}

		var result types.AcknowledgementResult
		k.cdc.MustUnmarshalJSON(iterator.Value(), &result)

		records = append(records, types.AckResultRecord{
			PortId:   portID,
			Sequence: sequence,
			Result:   result,
		})
	}

	return records
}

// OnAcknowledgementSuccess records a success result for the message sent on
// the given channel and sequence. A missing payload is a correlation miss: it
// is logged to the diagnostic queue and the call still succeeds.
func (k Keeper) OnAcknowledgementSuccess(ctx sdk.Context, channelID string, sequence uint64, itemTypes []string) error {
	payload, found := k.GetPacketPayload(ctx, channelID, sequence)
	if !found {
		k.AppendErrorToQueue(ctx, fmt.Sprintf("no payload for acknowledged message: channel %s, sequence %d", channelID, sequence))
		return nil
	}

	if err := k.setAckResult(ctx, payload.PortId, sequence, types.NewSuccessResult(itemTypes)); err != nil {
		return err
	}

	k.DeletePacketPayload(ctx, channelID, sequence)
	EmitAckResultEvent(ctx, payload.PortId, channelID, sequence, types.AckStatusSuccess)

	return nil
}

// OnAcknowledgementError records an error result, carrying the original
// message and the counterparty supplied details. A missing payload is logged
// to the diagnostic queue and the call still succeeds.
func (k Keeper) OnAcknowledgementError(ctx sdk.Context, channelID string, sequence uint64, details string) error {
	payload, found := k.GetPacketPayload(ctx, channelID, sequence)
	if !found {
		k.AppendErrorToQueue(ctx, fmt.Sprintf("no payload for failed message: channel %s, sequence %d", channelID, sequence))
		return nil
	}

	if err := k.setAckResult(ctx, payload.PortId, sequence, types.NewErrorResult(payload.Message, details)); err != nil {
		return err
	}

	k.DeletePacketPayload(ctx, channelID, sequence)
	EmitAckResultEvent(ctx, payload.PortId, channelID, sequence, types.AckStatusError)

	return nil
}

// OnTimeout records a timeout result for the message sent on the given
// channel and sequence. A missing payload is logged to the diagnostic queue
// and the call still succeeds.
func (k Keeper) OnTimeout(ctx sdk.Context, channelID string, sequence uint64) error {
	payload, found := k.GetPacketPayload(ctx, channelID, sequence)
	if !found {
		k.AppendErrorToQueue(ctx, fmt.Sprintf("no payload for timed out message: channel %s, sequence %d", channelID, sequence))
		return nil
	}

	if err := k.setAckResult(ctx, payload.PortId, sequence, types.NewTimeoutResult(payload.Message)); err != nil {
		return err
	}

	k.DeletePacketPayload(ctx, channelID, sequence)
	EmitAckResultEvent(ctx, payload.PortId, channelID, sequence, types.AckStatusTimeout)

	return nil
}
