package types

// crossfund module event types
const (
	EventTypeSubmitProposal     = "submit_proposal"
	EventTypeFundProposal       = "fund_proposal"
	EventTypeSubmitApplication  = "submit_application"
	EventTypeApproveApplication = "approve_application"
	EventTypeAcceptApplication  = "accept_application"
	EventTypeAutoAgree          = "auto_agree"
	EventTypeVerifyApplication  = "verify_application"
	EventTypeDistributeRewards  = "distribute_rewards"
	EventTypeRewardLocked       = "reward_locked"
	EventTypeWithdraw           = "withdraw"
	EventTypeRegisterAccount    = "register_account"
	EventTypeAccountBound       = "account_bound"
	EventTypeAckResult          = "acknowledgement_result"
	EventTypeRemoteDeposit      = "remote_deposit"

	AttributeKeyProposalID   = "proposal_id"
	AttributeKeyApplicant    = "applicant"
	AttributeKeyAuditor      = "auditor"
	AttributeKeySender       = "sender"
	AttributeKeyAmount       = "amount"
	AttributeKeyAutoAgree    = "auto_agree"
	AttributeKeyPortID       = "port_id"
	AttributeKeyChannelID    = "channel_id"
	AttributeKeySequence     = "sequence"
	AttributeKeyAckStatus    = "status"
	AttributeKeyAddress      = "address"
	AttributeKeyDenom        = "denom"
	AttributeKeyConnectionID = "connection_id"
	AttributeKeyTxDigest     = "tx_digest"

	AttributeValueCategory = ModuleName
)
