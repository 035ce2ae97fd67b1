package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
)

// RegisterLegacyAminoCodec registers the crossfund message types on the given
// LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitProposal{}, "crossfund/MsgSubmitProposal", nil)
	cdc.RegisterConcrete(&MsgFundProposal{}, "crossfund/MsgFundProposal", nil)
	cdc.RegisterConcrete(&MsgSubmitApplication{}, "crossfund/MsgSubmitApplication", nil)
	cdc.RegisterConcrete(&MsgApproveApplication{}, "crossfund/MsgApproveApplication", nil)
	cdc.RegisterConcrete(&MsgAcceptApplication{}, "crossfund/MsgAcceptApplication", nil)
	cdc.RegisterConcrete(&MsgVerifyApplication{}, "crossfund/MsgVerifyApplication", nil)
	cdc.RegisterConcrete(&MsgRegisterAccount{}, "crossfund/MsgRegisterAccount", nil)
	cdc.RegisterConcrete(&MsgWithdraw{}, "crossfund/MsgWithdraw", nil)
}

// ModuleCdc is the codec used to encode state values and legacy querier
// payloads for the crossfund module.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	cryptocodec.RegisterCrypto(ModuleCdc)
	codec.RegisterEvidences(ModuleCdc)
}
