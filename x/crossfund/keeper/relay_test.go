package keeper_test

import (
	"github.com/crossfund/crossfund/x/crossfund/types"
)

const (
	testChannelID = "channel-0"
	testPortID    = "icacontroller-owner.0"
)

func (suite *KeeperTestSuite) TestStageAndBindPayload() {
	payload := types.NewPacketPayload("register transfer", testPortID)
	suite.keeper.StagePayload(suite.ctx, payload)

	staged, found := suite.keeper.GetPendingPayload(suite.ctx)
	suite.Require().True(found)
	suite.Require().Equal(payload, staged)

	bound, err := suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 1)
	suite.Require().NoError(err)
	suite.Require().Equal(payload, bound)

	// the staging slot is cleared and the payload re-keyed
	_, found = suite.keeper.GetPendingPayload(suite.ctx)
	suite.Require().False(found)

	stored, found := suite.keeper.GetPacketPayload(suite.ctx, testChannelID, 1)
	suite.Require().True(found)
	suite.Require().Equal(payload, stored)
}

func (suite *KeeperTestSuite) TestBindWithoutStagedPayload() {
	_, err := suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 1)
	suite.Require().ErrorIs(err, types.ErrPendingPayloadNotFound)
}

func (suite *KeeperTestSuite) TestOnAcknowledgementSuccess() {
	suite.keeper.StagePayload(suite.ctx, types.NewPacketPayload("register transfer", testPortID))
	_, err := suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 1)
	suite.Require().NoError(err)

	err = suite.keeper.OnAcknowledgementSuccess(suite.ctx, testChannelID, 1, []string{types.TransferMsgTypeURL})
	suite.Require().NoError(err)

	result, found := suite.keeper.GetAckResult(suite.ctx, testPortID, 1)
	suite.Require().True(found)
	suite.Require().Equal(types.AckStatusSuccess, result.Status)
	suite.Require().Equal([]string{types.TransferMsgTypeURL}, result.ItemTypes)

	// the payload is consumed
	_, found = suite.keeper.GetPacketPayload(suite.ctx, testChannelID, 1)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestOnAcknowledgementError() {
	suite.keeper.StagePayload(suite.ctx, types.NewPacketPayload("register transfer", testPortID))
	_, err := suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 2)
	suite.Require().NoError(err)

	err = suite.keeper.OnAcknowledgementError(suite.ctx, testChannelID, 2, "host execution failed")
	suite.Require().NoError(err)

	result, found := suite.keeper.GetAckResult(suite.ctx, testPortID, 2)
	suite.Require().True(found)
	suite.Require().Equal(types.AckStatusError, result.Status)
	suite.Require().Equal("register transfer", result.Request)
	suite.Require().Equal("host execution failed", result.Details)
}

func (suite *KeeperTestSuite) TestOnTimeout() {
	suite.keeper.StagePayload(suite.ctx, types.NewPacketPayload("register transfer", testPortID))
	_, err := suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 3)
	suite.Require().NoError(err)

	err = suite.keeper.OnTimeout(suite.ctx, testChannelID, 3)
	suite.Require().NoError(err)

	result, found := suite.keeper.GetAckResult(suite.ctx, testPortID, 3)
	suite.Require().True(found)
	suite.Require().Equal(types.AckStatusTimeout, result.Status)
	suite.Require().Equal("register transfer", result.Request)
}

func (suite *KeeperTestSuite) TestAckResultWrittenExactlyOnce() {
	suite.keeper.StagePayload(suite.ctx, types.NewPacketPayload("register transfer", testPortID))
	_, err := suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 4)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.keeper.OnAcknowledgementSuccess(suite.ctx, testChannelID, 4, nil))

	// a duplicate delivery for the same sequence must not overwrite the result
	suite.keeper.SetPacketPayload(suite.ctx, testChannelID, 4, types.NewPacketPayload("register transfer", testPortID))
	err = suite.keeper.OnAcknowledgementError(suite.ctx, testChannelID, 4, "late duplicate")
	suite.Require().ErrorIs(err, types.ErrAckResultExists)

	result, found := suite.keeper.GetAckResult(suite.ctx, testPortID, 4)
	suite.Require().True(found)
	suite.Require().Equal(types.AckStatusSuccess, result.Status)
}

func (suite *KeeperTestSuite) TestCorrelationMissIsNonFatal() {
	suite.Require().NoError(suite.keeper.OnAcknowledgementSuccess(suite.ctx, testChannelID, 9, nil))
	suite.Require().NoError(suite.keeper.OnAcknowledgementError(suite.ctx, testChannelID, 10, "boom"))
	suite.Require().NoError(suite.keeper.OnTimeout(suite.ctx, testChannelID, 11))

	// each miss leaves a diagnostic entry and records no result
	suite.Require().Len(suite.keeper.GetErrorsQueue(suite.ctx), 3)
	suite.Require().Empty(suite.keeper.AllAckResults(suite.ctx))
}

func (suite *KeeperTestSuite) TestOutOfOrderAcknowledgements() {
	// two in-flight messages acknowledged in reverse order
	suite.keeper.StagePayload(suite.ctx, types.NewPacketPayload("first", testPortID))
	_, err := suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 5)
	suite.Require().NoError(err)

	suite.keeper.StagePayload(suite.ctx, types.NewPacketPayload("second", testPortID))
	_, err = suite.keeper.BindPendingPayload(suite.ctx, testChannelID, 6)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.keeper.OnAcknowledgementError(suite.ctx, testChannelID, 6, "rejected"))
	suite.Require().NoError(suite.keeper.OnAcknowledgementSuccess(suite.ctx, testChannelID, 5, nil))

	first, found := suite.keeper.GetAckResult(suite.ctx, testPortID, 5)
	suite.Require().True(found)
	suite.Require().Equal(types.AckStatusSuccess, first.Status)

	second, found := suite.keeper.GetAckResult(suite.ctx, testPortID, 6)
	suite.Require().True(found)
	suite.Require().Equal(types.AckStatusError, second.Status)
	suite.Require().Equal("second", second.Request)
}
