package keeper_test

import (
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/gogo/protobuf/proto"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

var remoteSender = sdk.AccAddress("remote_sender_______").String()

// bindRemoteAccount registers and binds an interchain account so that remote
// deposits can be attributed, returning the proposal identifier and port.
func (suite *KeeperTestSuite) bindRemoteAccount() (uint64, string) {
	proposalID, portID := suite.registerAccount()

	err := suite.keeper.OnChannelOpenAck(suite.ctx, portID, "channel-0", suite.counterpartyVersion(icaAddress))
	suite.Require().NoError(err)

	return proposalID, portID
}

// buildRemoteTx serializes a remote transaction carrying the given messages.
func (suite *KeeperTestSuite) buildRemoteTx(memo string, msgs ...proto.Message) []byte {
	anys := make([]*codectypes.Any, len(msgs))
	for i, msg := range msgs {
		value, err := proto.Marshal(msg)
		suite.Require().NoError(err)

		anys[i] = &codectypes.Any{TypeUrl: "/" + proto.MessageName(msg), Value: value}
	}

	bodyBz, err := proto.Marshal(&txtypes.TxBody{Messages: anys, Memo: memo})
	suite.Require().NoError(err)

	rawBz, err := proto.Marshal(&txtypes.TxRaw{BodyBytes: bodyBz})
	suite.Require().NoError(err)

	return rawBz
}

// transferMsg builds a bank transfer addressed to the bound account.
func transferMsg(recipient string, amount sdk.Coins) *banktypes.MsgSend {
	return &banktypes.MsgSend{
		FromAddress: remoteSender,
		ToAddress:   recipient,
		Amount:      amount,
	}
}

func (suite *KeeperTestSuite) TestRemoteDeposit() {
	proposalID, portID := suite.bindRemoteAccount()

	txBytes := suite.buildRemoteTx("", transferMsg(icaAddress, sdk.NewCoins(sdk.NewInt64Coin("stake", 100))))
	suite.Require().NoError(suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, txBytes))

	// funding grows as a non-native deposit
	funding, found := suite.keeper.GetProjectFunding(suite.ctx, proposalID, "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), funding.Amount)
	suite.Require().False(funding.AutoAgree)
	suite.Require().False(funding.Native)
	suite.Require().Equal(remoteSender, funding.LastDepositor)

	// the remote sender is credited with unlocked custody
	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, remoteSender, "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), funds.Amount)
	suite.Require().Equal(proposalID, funds.ProposalId)
	suite.Require().False(funds.Locked)
	suite.Require().Equal(portID, funds.RemoteOrigin)
}

func (suite *KeeperTestSuite) TestRemoteDepositReplay() {
	proposalID, _ := suite.bindRemoteAccount()

	txBytes := suite.buildRemoteTx("", transferMsg(icaAddress, sdk.NewCoins(sdk.NewInt64Coin("stake", 100))))
	suite.Require().NoError(suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, txBytes))

	// the exact same transaction is delivered again: silent success, no double credit
	suite.Require().NoError(suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, txBytes))

	funding, found := suite.keeper.GetProjectFunding(suite.ctx, proposalID, "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), funding.Amount)

	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, remoteSender, "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), funds.Amount)
}

func (suite *KeeperTestSuite) TestRemoteDepositAutoAgreeMemo() {
	proposalID, _ := suite.bindRemoteAccount()

	txBytes := suite.buildRemoteTx(types.AutoAgreeMemo, transferMsg(icaAddress, sdk.NewCoins(sdk.NewInt64Coin("stake", 100))))
	suite.Require().NoError(suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, txBytes))

	funding, found := suite.keeper.GetProjectFunding(suite.ctx, proposalID, "stake")
	suite.Require().True(found)
	suite.Require().True(funding.AutoAgree)
}

func (suite *KeeperTestSuite) TestRemoteDepositNoMatchingTransfers() {
	suite.bindRemoteAccount()

	// a transfer addressed to someone else does not count
	txBytes := suite.buildRemoteTx("", transferMsg(funder.String(), sdk.NewCoins(sdk.NewInt64Coin("stake", 100))))
	err := suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, txBytes)
	suite.Require().ErrorIs(err, types.ErrNoMatchingTransfers)
}

func (suite *KeeperTestSuite) TestRemoteDepositScanLimit() {
	suite.bindRemoteAccount()

	// the matching transfer sits beyond the scan window
	msgs := make([]proto.Message, 0, types.MaxRemoteTxMessages+1)
	for i := 0; i < types.MaxRemoteTxMessages; i++ {
		msgs = append(msgs, transferMsg(funder.String(), sdk.NewCoins(sdk.NewInt64Coin("stake", 1))))
	}
	msgs = append(msgs, transferMsg(icaAddress, sdk.NewCoins(sdk.NewInt64Coin("stake", 100))))

	err := suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, suite.buildRemoteTx("", msgs...))
	suite.Require().ErrorIs(err, types.ErrNoMatchingTransfers)
}

func (suite *KeeperTestSuite) TestRemoteDepositInvalidAmounts() {
	proposalID, _ := suite.bindRemoteAccount()

	zeroCoin := sdk.Coins{sdk.Coin{Denom: "stake", Amount: sdk.ZeroInt()}}
	err := suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, suite.buildRemoteTx("", transferMsg(icaAddress, zeroCoin)))
	suite.Require().ErrorIs(err, types.ErrInvalidTransferAmount)

	hugeCoin := sdk.Coins{sdk.Coin{Denom: "stake", Amount: types.MaxTransferAmount.Add(sdk.OneInt())}}
	err = suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, suite.buildRemoteTx("", transferMsg(icaAddress, hugeCoin)))
	suite.Require().ErrorIs(err, types.ErrTransferTooLarge)

	// a single bad amount aborts the whole transaction, valid siblings included
	mixed := suite.buildRemoteTx("",
		transferMsg(icaAddress, sdk.NewCoins(sdk.NewInt64Coin("stake", 50))),
		transferMsg(icaAddress, zeroCoin),
	)
	err = suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, mixed)
	suite.Require().ErrorIs(err, types.ErrInvalidTransferAmount)

	// nothing was credited by any of the rejected transactions
	_, found := suite.keeper.GetProjectFunding(suite.ctx, proposalID, "stake")
	suite.Require().False(found)
	_, found = suite.keeper.GetCustodyFunds(suite.ctx, remoteSender, "stake")
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestRemoteDepositUnboundRecipient() {
	txBytes := suite.buildRemoteTx("", transferMsg(icaAddress, sdk.NewCoins(sdk.NewInt64Coin("stake", 100))))

	// no account bound for the recipient: diagnostic entry, call succeeds
	suite.Require().NoError(suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, txBytes))
	suite.Require().Len(suite.keeper.GetErrorsQueue(suite.ctx), 1)

	// the transaction was not marked processed and applies once the account binds
	suite.bindRemoteAccount()
	suite.Require().NoError(suite.keeper.OnRemoteTransactionResult(suite.ctx, icaAddress, txBytes))

	funds, found := suite.keeper.GetCustodyFunds(suite.ctx, remoteSender, "stake")
	suite.Require().True(found)
	suite.Require().Equal(sdk.NewInt(100), funds.Amount)
}
