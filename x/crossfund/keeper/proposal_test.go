package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

func (suite *KeeperTestSuite) TestSubmitProposal() {
	suite.Require().Equal(uint64(0), suite.keeper.SubmitProposal(suite.ctx, funder, "first", "first proposal"))
	suite.Require().Equal(uint64(1), suite.keeper.SubmitProposal(suite.ctx, funder, "second", "second proposal"))
	suite.Require().Equal(uint64(2), suite.keeper.GetProposalCount(suite.ctx))

	proposal, found := suite.keeper.GetProposal(suite.ctx, 0)
	suite.Require().True(found)
	suite.Require().Equal("first", proposal.Title)

	records := suite.keeper.AllProposals(suite.ctx)
	suite.Require().Len(records, 2)
	suite.Require().Equal(uint64(0), records[0].ProposalId)
	suite.Require().Equal(uint64(1), records[1].ProposalId)
}

func (suite *KeeperTestSuite) TestFundProposalUnknownProposal() {
	err := suite.keeper.FundProposal(suite.ctx, funder, 42, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)), false)
	suite.Require().ErrorIs(err, types.ErrUnknownProposal)
}

func (suite *KeeperTestSuite) TestFundProposal() {
	proposalID := suite.submitProposal()

	suite.fundProposal(funder, proposalID, sdk.NewCoins(sdk.NewInt64Coin("stake", 100), sdk.NewInt64Coin("atom", 50)), false)

	funding, found := suite.keeper.GetProjectFunding(suite.ctx, proposalID, "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), funding.Amount)
	suite.Require().False(funding.AutoAgree)
	suite.Require().Equal(funder.String(), funding.LastDepositor)
	suite.Require().True(funding.Native)

	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), funds.Amount)
	suite.Require().Equal(proposalID, funds.ProposalId)
	suite.Require().False(funds.Locked)
	suite.Require().Empty(funds.RemoteOrigin)

	// escrow received the deposit
	balance := suite.bankKeeper.GetAllBalances(suite.ctx, suite.moduleAddress())
	suite.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin("stake", 100), sdk.NewInt64Coin("atom", 50)), balance)
}

func (suite *KeeperTestSuite) TestFundProposalZeroDeposit() {
	proposalID := suite.submitProposal()
	events := len(suite.ctx.EventManager().Events())

	// a deposit of zero amount succeeds without touching the ledger
	err := suite.keeper.FundProposal(suite.ctx, funder, proposalID, sdk.Coins{sdk.Coin{Denom: "stake", Amount: sdk.ZeroInt()}}, false)
	suite.Require().NoError(err)

	_, found := suite.keeper.GetProjectFunding(suite.ctx, proposalID, "stake")
	suite.Require().False(found)
	_, found = suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().False(found)
	suite.Require().Empty(suite.bankKeeper.GetAllBalances(suite.ctx, suite.moduleAddress()))
	suite.Require().Len(suite.ctx.EventManager().Events(), events)
}

func (suite *KeeperTestSuite) TestFundProposalMergesDeposits() {
	proposalID := suite.submitProposal()

	suite.fundProposal(funder, proposalID, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)), false)
	suite.fundProposal(funder, proposalID, sdk.NewCoins(sdk.NewInt64Coin("stake", 25)), true)

	funding, found := suite.keeper.GetProjectFunding(suite.ctx, proposalID, "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(125), funding.Amount)
	suite.Require().True(funding.AutoAgree)

	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(125), funds.Amount)
}

func (suite *KeeperTestSuite) TestFundProposalCustodyConflicts() {
	first := suite.submitProposal()
	second := suite.submitProposal()

	suite.fundProposal(funder, first, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)), false)

	// deposit in the same token bound to a different proposal
	err := suite.keeper.FundProposal(suite.ctx, funder, second, sdk.NewCoins(sdk.NewInt64Coin("stake", 10)), false)
	suite.Require().ErrorIs(err, types.ErrCustodyConflict)

	// a locked entry cannot be topped up
	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().True(found)
	funds.Locked = true
	suite.keeper.SetCustodyFunds(suite.ctx, funder.String(), "stake", funds)

	err = suite.keeper.FundProposal(suite.ctx, funder, first, sdk.NewCoins(sdk.NewInt64Coin("stake", 10)), false)
	suite.Require().ErrorIs(err, types.ErrCustodyConflict)
}

func (suite *KeeperTestSuite) TestWithdraw() {
	proposalID := suite.submitProposal()

	suite.fundProposal(funder, proposalID, sdk.NewCoins(sdk.NewInt64Coin("stake", 100), sdk.NewInt64Coin("atom", 50)), false)

	withdrawn, err := suite.keeper.Withdraw(suite.ctx, funder)
	suite.Require().NoError(err)
	suite.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin("stake", 100), sdk.NewInt64Coin("atom", 50)), withdrawn)

	// custody entries are removed and the escrow is emptied
	suite.Require().Empty(suite.keeper.GetAccountFunds(suite.ctx, funder.String(), false))
	suite.Require().Empty(suite.bankKeeper.GetAllBalances(suite.ctx, suite.moduleAddress()))
	suite.Require().Equal(sdk.NewCoins(sdk.NewInt64Coin("stake", 100), sdk.NewInt64Coin("atom", 50)), suite.bankKeeper.GetAllBalances(suite.ctx, funder))
}

func (suite *KeeperTestSuite) TestWithdrawNoFunds() {
	_, err := suite.keeper.Withdraw(suite.ctx, funder)
	suite.Require().ErrorIs(err, types.ErrNoFunds)
}

func (suite *KeeperTestSuite) TestWithdrawSkipsLockedFunds() {
	proposalID := suite.submitProposal()

	suite.fundProposal(funder, proposalID, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)), false)

	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().True(found)
	funds.Locked = true
	suite.keeper.SetCustodyFunds(suite.ctx, funder.String(), "stake", funds)

	_, err := suite.keeper.Withdraw(suite.ctx, funder)
	suite.Require().ErrorIs(err, types.ErrNoFunds)

	// the locked entry is untouched
	funds, found = suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().True(found)
	suite.Require().True(funds.Locked)
}
