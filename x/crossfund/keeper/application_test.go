package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

func defaultApplicants() []types.Shareholder {
	return []types.Shareholder{{Address: applicant.String(), Share: 70}}
}

func defaultAuditors() []types.Shareholder {
	return []types.Shareholder{{Address: auditor.String(), Share: 30}}
}

// submitApplication creates a proposal and a valid application for it.
func (suite *KeeperTestSuite) submitApplication() uint64 {
	proposalID := suite.submitProposal()
	suite.Require().NoError(suite.keeper.SubmitApplication(
		suite.ctx, applicant, proposalID, defaultApplicants(), defaultAuditors(), 100,
	))
	return proposalID
}

func (suite *KeeperTestSuite) TestSubmitApplication() {
	proposalID := suite.submitProposal()

	err := suite.keeper.SubmitApplication(suite.ctx, applicant, proposalID, defaultApplicants(), defaultAuditors(), 100)
	suite.Require().NoError(err)

	application, found := suite.keeper.GetApplication(suite.ctx, proposalID, applicant.String())
	suite.Require().True(found)
	suite.Require().False(application.Accepted)
	suite.Require().Empty(application.Verifications)
	suite.Require().Equal(uint64(100), application.Deadline)
}

func (suite *KeeperTestSuite) TestSubmitApplicationFailures() {
	proposalID := suite.submitProposal()

	testCases := []struct {
		name       string
		applicants []types.Shareholder
		auditors   []types.Shareholder
		deadline   uint64
		expError   error
	}{
		{
			"unknown proposal is rejected before validation",
			defaultApplicants(), defaultAuditors(), 100,
			types.ErrUnknownProposal,
		},
		{
			"empty applicants",
			nil, defaultAuditors(), 100,
			types.ErrInvalidApplication,
		},
		{
			"empty auditors",
			defaultApplicants(), nil, 100,
			types.ErrInvalidApplication,
		},
		{
			"shares do not sum to 100",
			[]types.Shareholder{{Address: applicant.String(), Share: 50}},
			defaultAuditors(), 100,
			types.ErrInvalidApplication,
		},
		{
			"zero share",
			[]types.Shareholder{{Address: applicant.String(), Share: 70}, {Address: funder.String(), Share: 0}},
			defaultAuditors(), 100,
			types.ErrInvalidApplication,
		},
		{
			"unset deadline",
			defaultApplicants(), defaultAuditors(), 0,
			types.ErrInvalidApplication,
		},
		{
			"deadline at the current height",
			defaultApplicants(), defaultAuditors(), 1,
			types.ErrInvalidApplication,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			pid := proposalID
			if tc.expError == types.ErrUnknownProposal {
				pid = 42
			}

			err := suite.keeper.SubmitApplication(suite.ctx, applicant, pid, tc.applicants, tc.auditors, tc.deadline)
			suite.Require().ErrorIs(err, tc.expError)
		})
	}
}

func (suite *KeeperTestSuite) TestSubmitApplicationDuplicate() {
	proposalID := suite.submitApplication()

	err := suite.keeper.SubmitApplication(suite.ctx, applicant, proposalID, defaultApplicants(), defaultAuditors(), 200)
	suite.Require().ErrorIs(err, types.ErrInvalidApplication)
}

func (suite *KeeperTestSuite) TestApproveApplication() {
	proposalID := suite.submitApplication()
	suite.fundProposal(funder, proposalID, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)), false)

	err := suite.keeper.ApproveApplication(suite.ctx, funder, proposalID, applicant.String())
	suite.Require().NoError(err)

	// the custody entry is locked
	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().True(found)
	suite.Require().True(funds.Locked)

	// the committed amount is folded into the application funding
	amount, found := suite.keeper.GetApplicationFunding(suite.ctx, proposalID, applicant.String(), "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), amount)

	// a second vote finds no unlocked funds
	err = suite.keeper.ApproveApplication(suite.ctx, funder, proposalID, applicant.String())
	suite.Require().ErrorIs(err, types.ErrCantVote)
}

func (suite *KeeperTestSuite) TestApproveApplicationNoFunds() {
	proposalID := suite.submitApplication()

	err := suite.keeper.ApproveApplication(suite.ctx, funder, proposalID, applicant.String())
	suite.Require().ErrorIs(err, types.ErrCantVote)
}

func (suite *KeeperTestSuite) TestApproveApplicationIgnoresOtherProposals() {
	proposalID := suite.submitApplication()
	other := suite.submitProposal()
	suite.fundProposal(funder, other, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)), false)

	// funds bound to another proposal cannot vote here
	err := suite.keeper.ApproveApplication(suite.ctx, funder, proposalID, applicant.String())
	suite.Require().ErrorIs(err, types.ErrCantVote)
}

func (suite *KeeperTestSuite) TestAcceptApplication() {
	proposalID := suite.submitApplication()

	err := suite.keeper.AcceptApplication(suite.ctx, applicant, proposalID, applicant.String())
	suite.Require().NoError(err)

	application, found := suite.keeper.GetApplication(suite.ctx, proposalID, applicant.String())
	suite.Require().True(found)
	suite.Require().True(application.Accepted)
}

func (suite *KeeperTestSuite) TestAcceptApplicationUnauthorized() {
	proposalID := suite.submitApplication()

	err := suite.keeper.AcceptApplication(suite.ctx, funder, proposalID, applicant.String())
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestAcceptApplicationMissing() {
	proposalID := suite.submitProposal()

	err := suite.keeper.AcceptApplication(suite.ctx, applicant, proposalID, applicant.String())
	suite.Require().ErrorIs(err, types.ErrInvalidApplication)
}

func (suite *KeeperTestSuite) TestVerifyApplication() {
	proposalID := suite.submitApplication()

	err := suite.keeper.VerifyApplication(suite.ctx, auditor, proposalID, applicant.String())
	suite.Require().NoError(err)

	application, found := suite.keeper.GetApplication(suite.ctx, proposalID, applicant.String())
	suite.Require().True(found)
	suite.Require().Equal([]string{auditor.String()}, application.Verifications)
}

func (suite *KeeperTestSuite) TestVerifyApplicationUnauthorized() {
	proposalID := suite.submitApplication()

	err := suite.keeper.VerifyApplication(suite.ctx, funder, proposalID, applicant.String())
	suite.Require().ErrorIs(err, types.ErrUnauthorized)
}

func (suite *KeeperTestSuite) TestVerifyApplicationTwice() {
	proposalID := suite.submitApplication()

	suite.Require().NoError(suite.keeper.VerifyApplication(suite.ctx, auditor, proposalID, applicant.String()))

	err := suite.keeper.VerifyApplication(suite.ctx, auditor, proposalID, applicant.String())
	suite.Require().ErrorIs(err, types.ErrAlreadyVerified)
}
