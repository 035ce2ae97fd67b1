package crossfund

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	capabilitytypes "github.com/cosmos/cosmos-sdk/x/capability/types"
	"github.com/gogo/protobuf/proto"

	channeltypes "github.com/cosmos/ibc-go/v3/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-go/v3/modules/core/05-port/types"
	ibcexported "github.com/cosmos/ibc-go/v3/modules/core/exported"

	"github.com/crossfund/crossfund/x/crossfund/keeper"
)

var _ porttypes.IBCModule = IBCModule{}

// IBCModule implements the ICS26 interface for the interchain accounts
// channels opened on behalf of proposals. Handshake and packet sending are
// handled by the interchain accounts controller submodule; this module only
// reacts to the callbacks that carry settlement information.
type IBCModule struct {
	keeper keeper.Keeper
}

// NewIBCModule creates a new IBCModule given the keeper
func NewIBCModule(k keeper.Keeper) IBCModule {
	return IBCModule{
		keeper: k,
	}
}

// OnChanOpenInit implements the IBCModule interface
func (im IBCModule) OnChanOpenInit(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID string,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	version string,
) error {
	return nil
}

// OnChanOpenTry implements the IBCModule interface
func (im IBCModule) OnChanOpenTry(
	ctx sdk.Context,
	order channeltypes.Order,
	connectionHops []string,
	portID,
	channelID string,
	chanCap *capabilitytypes.Capability,
	counterparty channeltypes.Counterparty,
	counterpartyVersion string,
) (string, error) {
	return "", sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "channel handshake must be initiated by the controller chain")
}

// OnChanOpenAck implements the IBCModule interface. The counterparty version
// carries the address of the registered interchain account.
func (im IBCModule) OnChanOpenAck(
	ctx sdk.Context,
	portID,
	channelID string,
	counterpartyChannelID string,
	counterpartyVersion string,
) error {
	return im.keeper.OnChannelOpenAck(ctx, portID, channelID, counterpartyVersion)
}

// OnChanOpenConfirm implements the IBCModule interface
func (im IBCModule) OnChanOpenConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return nil
}

// OnChanCloseInit implements the IBCModule interface
func (im IBCModule) OnChanCloseInit(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "user cannot close channel")
}

// OnChanCloseConfirm implements the IBCModule interface
func (im IBCModule) OnChanCloseConfirm(
	ctx sdk.Context,
	portID,
	channelID string,
) error {
	return nil
}

// OnRecvPacket implements the IBCModule interface. Controller channels never
// receive packets.
func (im IBCModule) OnRecvPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) ibcexported.Acknowledgement {
	return channeltypes.NewErrorAcknowledgement("cannot receive packet on controller chain")
}

// OnAcknowledgementPacket implements the IBCModule interface. The
// acknowledgement is unwrapped and recorded against the payload staged when
// the packet was sent.
func (im IBCModule) OnAcknowledgementPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	acknowledgement []byte,
	relayer sdk.AccAddress,
) error {
	var ack channeltypes.Acknowledgement
	if err := channeltypes.SubModuleCdc.UnmarshalJSON(acknowledgement, &ack); err != nil {
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "cannot unmarshal packet acknowledgement: %v", err)
	}

	switch response := ack.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		return im.keeper.OnAcknowledgementSuccess(ctx, packet.SourceChannel, packet.Sequence, parseItemTypes(response.Result))
	case *channeltypes.Acknowledgement_Error:
		return im.keeper.OnAcknowledgementError(ctx, packet.SourceChannel, packet.Sequence, response.Error)
	default:
		return sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unsupported acknowledgement response type %T", response)
	}
}

// OnTimeoutPacket implements the IBCModule interface
func (im IBCModule) OnTimeoutPacket(
	ctx sdk.Context,
	packet channeltypes.Packet,
	relayer sdk.AccAddress,
) error {
	return im.keeper.OnTimeout(ctx, packet.SourceChannel, packet.Sequence)
}

// parseItemTypes extracts the message type URLs acknowledged by the host
// chain. A result that is not transaction message data yields no item types.
func parseItemTypes(result []byte) []string {
	var txMsgData sdk.TxMsgData
	if err := proto.Unmarshal(result, &txMsgData); err != nil {
		return nil
	}

	itemTypes := make([]string, 0, len(txMsgData.Data))
	for _, msgData := range txMsgData.Data {
		itemTypes = append(itemTypes, msgData.MsgType)
	}

	return itemTypes
}
