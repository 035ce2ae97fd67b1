package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// RegisterInvariants registers all crossfund invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "custody-backed", CustodyBackedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "custody-positive", CustodyPositiveInvariant(k))
}

// AllInvariants runs all invariants of the crossfund module.
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, broken := CustodyBackedInvariant(k)(ctx)
		if broken {
			return msg, broken
		}

		return CustodyPositiveInvariant(k)(ctx)
	}
}

// CustodyBackedInvariant checks that the module escrow account holds at least
// the sum of all custodied amounts for every token.
func CustodyBackedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		custodied := sdk.NewCoins()
		for _, record := range k.AllCustodyFunds(ctx) {
			custodied = custodied.Add(sdk.NewCoin(record.Denom, record.Funds.Amount))
		}

		balance := k.bankKeeper.GetAllBalances(ctx, k.GetModuleAddress())
		if !custodied.IsAllLTE(balance) {
			return sdk.FormatInvariant(
				types.ModuleName, "custody-backed",
				fmt.Sprintf("custodied funds %s exceed the module escrow balance %s", custodied, balance),
			), true
		}

		return sdk.FormatInvariant(types.ModuleName, "custody-backed", "all custodied funds are backed by escrow"), false
	}
}

// CustodyPositiveInvariant checks that every custody entry carries a positive
// amount and references an existing proposal.
func CustodyPositiveInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, record := range k.AllCustodyFunds(ctx) {
			if record.Funds.Amount.IsNil() || !record.Funds.Amount.IsPositive() {
				return sdk.FormatInvariant(
					types.ModuleName, "custody-positive",
					fmt.Sprintf("custody of %s for %s has a non-positive amount", record.Denom, record.Address),
				), true
			}

			if !k.HasProposal(ctx, record.Funds.ProposalId) {
				return sdk.FormatInvariant(
					types.ModuleName, "custody-positive",
					fmt.Sprintf("custody of %s for %s references unknown proposal %d", record.Denom, record.Address, record.Funds.ProposalId),
				), true
			}
		}

		return sdk.FormatInvariant(types.ModuleName, "custody-positive", "all custody entries are well formed"), false
	}
}
