package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccountKeeper defines the expected account keeper
type AccountKeeper interface {
	GetModuleAddress(name string) sdk.AccAddress
}

// BankKeeper defines the expected bank keeper
type BankKeeper interface {
	GetAllBalances(ctx sdk.Context, addr sdk.AccAddress) sdk.Coins
	SendCoinsFromAccountToModule(ctx sdk.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx sdk.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// ICAControllerKeeper defines the expected interchain accounts controller keeper
type ICAControllerKeeper interface {
	RegisterInterchainAccount(ctx sdk.Context, connectionID, owner string) error
}

// TransfersQueryKeeper defines the expected keeper used to subscribe to
// confirmed transfers addressed to a bound interchain account on the
// counterparty chain.
type TransfersQueryKeeper interface {
	RegisterTransfersQuery(ctx sdk.Context, connectionID, recipient string, updatePeriod, minHeight uint64) error
}
