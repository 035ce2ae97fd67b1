package keeper_test

import (
	"encoding/json"

	icatypes "github.com/cosmos/ibc-go/v3/modules/apps/27-interchain-accounts/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

var icaAddress = "cosmos1interchainaccountaddress"

// registerAccount initiates an interchain account registration for a fresh
// proposal and returns the proposal identifier and controller port.
func (suite *KeeperTestSuite) registerAccount() (uint64, string) {
	proposalID := suite.submitProposal()
	suite.Require().NoError(suite.keeper.RegisterProposalAccount(suite.ctx, proposalID, "connection-0"))

	return proposalID, types.NewPortID(suite.moduleAddress().String(), proposalID)
}

// counterpartyVersion builds the version metadata delivered with the open
// acknowledgement.
func (suite *KeeperTestSuite) counterpartyVersion(address string) string {
	metadata := icatypes.Metadata{
		Version:                icatypes.Version,
		ControllerConnectionId: "connection-0",
		HostConnectionId:       "connection-1",
		Address:                address,
		Encoding:               icatypes.EncodingProtobuf,
		TxType:                 icatypes.TxTypeSDKMultiMsg,
	}

	bz, err := json.Marshal(metadata)
	suite.Require().NoError(err)

	return string(bz)
}

func (suite *KeeperTestSuite) TestRegisterProposalAccount() {
	proposalID, portID := suite.registerAccount()

	// the controller received the deterministic owner
	suite.Require().Len(suite.icaKeeper.registrations, 1)
	suite.Require().Equal("connection-0", suite.icaKeeper.registrations[0].connectionID)
	suite.Require().Equal(types.NewInterchainAccountOwner(suite.moduleAddress().String(), proposalID), suite.icaKeeper.registrations[0].owner)

	// a pending record is stored until the handshake completes
	account, found := suite.keeper.GetInterchainAccount(suite.ctx, portID)
	suite.Require().True(found)
	suite.Require().True(account.Empty())
}

func (suite *KeeperTestSuite) TestRegisterProposalAccountUnknownProposal() {
	err := suite.keeper.RegisterProposalAccount(suite.ctx, 42, "connection-0")
	suite.Require().ErrorIs(err, types.ErrUnknownProposal)
	suite.Require().Empty(suite.icaKeeper.registrations)
}

func (suite *KeeperTestSuite) TestOnChannelOpenAck() {
	proposalID, portID := suite.registerAccount()

	err := suite.keeper.OnChannelOpenAck(suite.ctx, portID, "channel-0", suite.counterpartyVersion(icaAddress))
	suite.Require().NoError(err)

	// the account is bound
	account, found := suite.keeper.GetInterchainAccount(suite.ctx, portID)
	suite.Require().True(found)
	suite.Require().Equal(icaAddress, account.Address)
	suite.Require().Equal("connection-0", account.ConnectionId)

	// the reverse index resolves the remote address back to the port
	owner, found := suite.keeper.GetAccountOwner(suite.ctx, icaAddress)
	suite.Require().True(found)
	suite.Require().Equal(portID, owner)

	parsed, err := types.ParseProposalIDFromPort(owner)
	suite.Require().NoError(err)
	suite.Require().Equal(proposalID, parsed)

	// a transfers subscription was registered on the host connection
	suite.Require().Len(suite.queryKeeper.queries, 1)
	suite.Require().Equal("connection-1", suite.queryKeeper.queries[0].connectionID)
	suite.Require().Equal(icaAddress, suite.queryKeeper.queries[0].recipient)
	suite.Require().Equal(types.DefaultUpdatePeriod, suite.queryKeeper.queries[0].updatePeriod)
	suite.Require().Equal(uint64(1), suite.queryKeeper.queries[0].minHeight)
}

func (suite *KeeperTestSuite) TestOnChannelOpenAckFailures() {
	_, portID := suite.registerAccount()

	testCases := []struct {
		name     string
		portID   string
		version  string
		expError error
	}{
		{
			"unregistered port",
			"icacontroller-unknown.7",
			suite.counterpartyVersion(icaAddress),
			types.ErrInterchainAccountNotFound,
		},
		{
			"malformed version metadata",
			portID,
			"not-json",
			types.ErrInvalidVersion,
		},
		{
			"empty account address",
			portID,
			suite.counterpartyVersion(""),
			types.ErrInvalidVersion,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.keeper.OnChannelOpenAck(suite.ctx, tc.portID, "channel-0", tc.version)
			suite.Require().ErrorIs(err, tc.expError)
		})
	}

	// no subscription registered on any failure
	suite.Require().Empty(suite.queryKeeper.queries)
}
