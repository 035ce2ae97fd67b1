package types

import (
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// crossfund sentinel errors
var (
	ErrInvalidApplication        = sdkerrors.Register(ModuleName, 2, "invalid application")
	ErrCantVote                  = sdkerrors.Register(ModuleName, 3, "no unlocked custody funds for this proposal")
	ErrAlreadyVerified           = sdkerrors.Register(ModuleName, 4, "application already verified by this auditor")
	ErrUnauthorized              = sdkerrors.Register(ModuleName, 5, "account is not authorized for this action")
	ErrNoFunds                   = sdkerrors.Register(ModuleName, 6, "no unlocked custody funds to withdraw")
	ErrAckResultExists           = sdkerrors.Register(ModuleName, 7, "acknowledgement result already recorded for this sequence")
	ErrPendingPayloadNotFound    = sdkerrors.Register(ModuleName, 8, "no pending outbound payload staged")
	ErrInvalidVersion            = sdkerrors.Register(ModuleName, 9, "unable to parse counterparty version metadata")
	ErrInterchainAccountNotFound = sdkerrors.Register(ModuleName, 10, "interchain account is not registered")
	ErrInvalidTransferAmount     = sdkerrors.Register(ModuleName, 11, "invalid remote transfer amount")
	ErrTransferTooLarge          = sdkerrors.Register(ModuleName, 12, "remote transfer exceeds the maximum allowed amount")
	ErrNoMatchingTransfers       = sdkerrors.Register(ModuleName, 13, "no matching transfer messages in remote transaction")
	ErrUnknownProposal           = sdkerrors.Register(ModuleName, 14, "proposal does not exist")
	ErrCustodyConflict           = sdkerrors.Register(ModuleName, 15, "custody entry conflicts with an existing deposit")
	ErrInvalidPort               = sdkerrors.Register(ModuleName, 16, "invalid port identifier")
)
