package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// GetApplication returns the application of an applicant for a proposal.
func (k Keeper) GetApplication(ctx sdk.Context, proposalID uint64, applicant string) (types.Application, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ApplicationKey(proposalID, applicant))
	if bz == nil {
		return types.Application{}, false
	}

	var application types.Application
	k.cdc.MustUnmarshalJSON(bz, &application)
	return application, true
}

// SetApplication stores the application of an applicant for a proposal.
func (k Keeper) SetApplication(ctx sdk.Context, proposalID uint64, applicant string, application types.Application) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ApplicationKey(proposalID, applicant), k.cdc.MustMarshalJSON(&application))
}

// GetAllApplications returns every application submitted for a proposal.
func (k Keeper) GetAllApplications(ctx sdk.Context, proposalID uint64) []types.ApplicationRecord {
	store := ctx.KVStore(k.storeKey)
	prefix := types.ApplicationPrefix(proposalID)
	iterator := sdk.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	var records []types.ApplicationRecord
	for ; iterator.Valid(); iterator.Next() {
		var application types.Application
		k.cdc.MustUnmarshalJSON(iterator.Value(), &application)

		records = append(records, types.ApplicationRecord{
			ProposalId:  proposalID,
			Applicant:   string(iterator.Key()[len(prefix):]),
			Application: application,
		})
	}

	return records
}

// SubmitApplication records a new application against an existing proposal.
// The shareholder split is validated against the current block height.
// Resubmitting for the same proposal and applicant is rejected, otherwise the
// funds already committed to the application would survive a reset of its
// acceptance and verification state.
func (k Keeper) SubmitApplication(ctx sdk.Context, applicant sdk.AccAddress, proposalID uint64, applicants, auditors []types.Shareholder, deadline uint64) error {
	if !k.HasProposal(ctx, proposalID) {
		return sdkerrors.Wrapf(types.ErrUnknownProposal, "proposal %d", proposalID)
	}

	if _, found := k.GetApplication(ctx, proposalID, applicant.String()); found {
		return sdkerrors.Wrapf(types.ErrInvalidApplication, "application of %s for proposal %d already exists", applicant.String(), proposalID)
	}

	application := types.NewApplication(applicants, auditors, deadline)
	if err := application.Validate(uint64(ctx.BlockHeight())); err != nil {
		return err
	}

	k.SetApplication(ctx, proposalID, applicant.String(), application)

	k.Logger(ctx).Info("application submitted", "proposal_id", proposalID, "applicant", applicant.String())
	EmitSubmitApplicationEvent(ctx, proposalID, applicant.String())

	return nil
}

// ApproveApplication commits all of the voter's unlocked custody funds for
// the proposal to the given application. The committed entries are locked and
// their amounts folded into the application's funding. A voter without
// unlocked funds for the proposal cannot vote.
func (k Keeper) ApproveApplication(ctx sdk.Context, voter sdk.AccAddress, proposalID uint64, applicant string) error {
	if _, found := k.GetApplication(ctx, proposalID, applicant); !found {
		return sdkerrors.Wrapf(types.ErrInvalidApplication, "no application of %s for proposal %d", applicant, proposalID)
	}

	committed := sdk.NewCoins()
	for _, record := range k.GetAccountFunds(ctx, voter.String(), true) {
		if record.Funds.ProposalId != proposalID {
			continue
		}

		record.Funds.Locked = true
		k.SetCustodyFunds(ctx, record.Address, record.Denom, record.Funds)

		amount, _ := k.GetApplicationFunding(ctx, proposalID, applicant, record.Denom)
		k.SetApplicationFunding(ctx, proposalID, applicant, record.Denom, amount.Add(record.Funds.Amount))

		committed = committed.Add(sdk.NewCoin(record.Denom, record.Funds.Amount))
	}

	if committed.IsZero() {
		return sdkerrors.Wrapf(types.ErrCantVote, "account %s has no unlocked funds for proposal %d", voter.String(), proposalID)
	}

	k.Logger(ctx).Info("application approved", "proposal_id", proposalID, "applicant", applicant, "voter", voter.String(), "amount", committed.String())
	EmitApproveApplicationEvent(ctx, proposalID, applicant, voter.String(), committed)

	return nil
}

// AcceptApplication marks an application as accepted. Only the applicant that
// submitted it or an address listed among its applicants may accept.
// Acceptance triggers the funding quorum evaluation.
func (k Keeper) AcceptApplication(ctx sdk.Context, sender sdk.AccAddress, proposalID uint64, applicant string) error {
	application, found := k.GetApplication(ctx, proposalID, applicant)
	if !found {
		return sdkerrors.Wrapf(types.ErrInvalidApplication, "no application of %s for proposal %d", applicant, proposalID)
	}

	if sender.String() != applicant && !application.HasApplicant(sender.String()) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "account %s is not an applicant", sender.String())
	}

	application.Accepted = true
	k.SetApplication(ctx, proposalID, applicant, application)

	k.Logger(ctx).Info("application accepted", "proposal_id", proposalID, "applicant", applicant)
	EmitAcceptApplicationEvent(ctx, proposalID, applicant)

	return k.checkAutoAgree(ctx, proposalID, applicant)
}

// VerifyApplication records the verification of a listed auditor. An auditor
// may verify at most once. When the last auditor verifies, the funds
// committed to the application are distributed to its shareholders.
func (k Keeper) VerifyApplication(ctx sdk.Context, auditor sdk.AccAddress, proposalID uint64, applicant string) error {
	application, found := k.GetApplication(ctx, proposalID, applicant)
	if !found {
		return sdkerrors.Wrapf(types.ErrInvalidApplication, "no application of %s for proposal %d", applicant, proposalID)
	}

	if !application.HasAuditor(auditor.String()) {
		return sdkerrors.Wrapf(types.ErrUnauthorized, "account %s is not an auditor", auditor.String())
	}
	if application.HasVerified(auditor.String()) {
		return sdkerrors.Wrapf(types.ErrAlreadyVerified, "auditor %s", auditor.String())
	}

	application.Verifications = append(application.Verifications, auditor.String())
	k.SetApplication(ctx, proposalID, applicant, application)

	k.Logger(ctx).Info("application verified", "proposal_id", proposalID, "applicant", applicant, "auditor", auditor.String())
	EmitVerifyApplicationEvent(ctx, proposalID, applicant, auditor.String())

	if len(application.Verifications) == len(application.Auditors) {
		return k.distributeRewards(ctx, proposalID, applicant, application)
	}

	return nil
}
