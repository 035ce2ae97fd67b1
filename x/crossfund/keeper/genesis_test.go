package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

func (suite *KeeperTestSuite) TestGenesisRoundTrip() {
	// build a state exercising every collection
	proposalID := suite.submitApplication()
	suite.fundProposal(funder, proposalID, sdk.NewCoins(sdk.NewInt64Coin("stake", 100)), false)
	suite.Require().NoError(suite.keeper.ApproveApplication(suite.ctx, funder, proposalID, applicant.String()))

	_, portID := suite.bindRemoteAccount()

	suite.keeper.StagePayload(suite.ctx, types.NewPacketPayload("pending", portID))
	suite.keeper.SetPacketPayload(suite.ctx, "channel-0", 1, types.NewPacketPayload("in flight", portID))
	suite.keeper.SetProcessedTx(suite.ctx, []byte("12345678901234567890123456789012"))
	suite.keeper.AppendErrorToQueue(suite.ctx, "diagnostic")

	exported := suite.keeper.ExportGenesis(suite.ctx)
	suite.Require().NoError(exported.Validate())

	// load the exported state into a fresh fixture
	restored := suite.keeper.ExportGenesis(suite.ctx)
	suite.SetupTest()
	suite.keeper.InitGenesis(suite.ctx, *restored)

	suite.Require().Equal(exported, suite.keeper.ExportGenesis(suite.ctx))

	// spot check restored collections
	suite.Require().Equal(restored.ProposalCount, suite.keeper.GetProposalCount(suite.ctx))

	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, funder.String(), "stake")
	suite.Require().True(found)
	suite.Require().True(funds.Locked)

	owner, found := suite.keeper.GetAccountOwner(suite.ctx, icaAddress)
	suite.Require().True(found)
	suite.Require().Equal(portID, owner)

	payload, found := suite.keeper.GetPendingPayload(suite.ctx)
	suite.Require().True(found)
	suite.Require().Equal("pending", payload.Message)

	suite.Require().Equal([]string{"diagnostic"}, suite.keeper.GetErrorsQueue(suite.ctx))
}

func (suite *KeeperTestSuite) TestGenesisAckResultDuplicatePanics() {
	state := types.GenesisState{
		AckResults: []types.AckResultRecord{
			{PortId: testPortID, Sequence: 1, Result: types.NewSuccessResult(nil)},
			{PortId: testPortID, Sequence: 1, Result: types.NewTimeoutResult("late")},
		},
	}

	suite.Require().Panics(func() {
		suite.keeper.InitGenesis(suite.ctx, state)
	})
}

func (suite *KeeperTestSuite) TestGenesisValidate() {
	testCases := []struct {
		name     string
		state    types.GenesisState
		expError bool
	}{
		{
			"default state is valid",
			*types.DefaultGenesisState(),
			false,
		},
		{
			"proposal identifier beyond count",
			types.GenesisState{
				ProposalCount: 1,
				Proposals:     []types.ProposalRecord{{ProposalId: 1}},
			},
			true,
		},
		{
			"duplicate proposal identifiers",
			types.GenesisState{
				ProposalCount: 2,
				Proposals:     []types.ProposalRecord{{ProposalId: 0}, {ProposalId: 0}},
			},
			true,
		},
		{
			"invalid custody address",
			types.GenesisState{
				CustodyFunds: []types.CustodyRecord{{
					Address: "not-bech32",
					Denom:   "stake",
					Funds:   types.NewCustodyFunds(sdk.OneInt(), 0, ""),
				}},
			},
			true,
		},
		{
			"invalid acknowledgement status",
			types.GenesisState{
				AckResults: []types.AckResultRecord{{
					PortId:   testPortID,
					Sequence: 1,
					Result:   types.AcknowledgementResult{Status: "maybe"},
				}},
			},
			true,
		},
		{
			"invalid processed digest",
			types.GenesisState{
				ProcessedTxs: []string{"not-hex"},
			},
			true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.state.Validate()
			if tc.expError {
				suite.Require().Error(err)
			} else {
				suite.Require().NoError(err)
			}
		})
	}
}
