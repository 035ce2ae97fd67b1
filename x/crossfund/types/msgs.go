package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	yaml "gopkg.in/yaml.v2"

	host "github.com/cosmos/ibc-go/v3/modules/core/24-host"
)

// crossfund message types
const (
	TypeMsgSubmitProposal     = "submit_proposal"
	TypeMsgFundProposal       = "fund_proposal"
	TypeMsgSubmitApplication  = "submit_application"
	TypeMsgApproveApplication = "approve_application"
	TypeMsgAcceptApplication  = "accept_application"
	TypeMsgVerifyApplication  = "verify_application"
	TypeMsgRegisterAccount    = "register_account"
	TypeMsgWithdraw           = "withdraw"
)

var (
	_ sdk.Msg = (*MsgSubmitProposal)(nil)
	_ sdk.Msg = (*MsgFundProposal)(nil)
	_ sdk.Msg = (*MsgSubmitApplication)(nil)
	_ sdk.Msg = (*MsgApproveApplication)(nil)
	_ sdk.Msg = (*MsgAcceptApplication)(nil)
	_ sdk.Msg = (*MsgVerifyApplication)(nil)
	_ sdk.Msg = (*MsgRegisterAccount)(nil)
	_ sdk.Msg = (*MsgWithdraw)(nil)
)

// MsgSubmitProposal defines a message to create a new funding proposal.
type MsgSubmitProposal struct {
	Creator     string `json:"creator" yaml:"creator"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// NewMsgSubmitProposal creates a new MsgSubmitProposal instance.
func NewMsgSubmitProposal(creator, title, description string) *MsgSubmitProposal {
	return &MsgSubmitProposal{
		Creator:     creator,
		Title:       title,
		Description: description,
	}
}

// Route implements sdk.Msg
func (msg MsgSubmitProposal) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgSubmitProposal) Type() string { return TypeMsgSubmitProposal }

// ValidateBasic performs a basic check of the message fields
func (msg MsgSubmitProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid creator address")
	}
	if msg.Title == "" {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidRequest, "proposal title must not be empty")
	}
	return nil
}

// GetSignBytes implements sdk.Msg
func (msg MsgSubmitProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgSubmitProposal) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// Reset implements proto.Message
func (msg *MsgSubmitProposal) Reset() { *msg = MsgSubmitProposal{} }

// String implements proto.Message
func (msg *MsgSubmitProposal) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgSubmitProposal) ProtoMessage() {}

// MsgFundProposal defines a message to deposit funds toward a proposal. The
// deposited coins move into module escrow and are tracked as unlocked custody
// of the funder.
type MsgFundProposal struct {
	Funder     string    `json:"funder" yaml:"funder"`
	ProposalId uint64    `json:"proposal_id" yaml:"proposal_id"`
	Amount     sdk.Coins `json:"amount" yaml:"amount"`
	AutoAgree  bool      `json:"auto_agree" yaml:"auto_agree"`
}

// NewMsgFundProposal creates a new MsgFundProposal instance.
func NewMsgFundProposal(funder string, proposalID uint64, amount sdk.Coins, autoAgree bool) *MsgFundProposal {
	return &MsgFundProposal{
		Funder:     funder,
		ProposalId: proposalID,
		Amount:     amount,
		AutoAgree:  autoAgree,
	}
}

// Route implements sdk.Msg
func (msg MsgFundProposal) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgFundProposal) Type() string { return TypeMsgFundProposal }

// ValidateBasic performs a basic check of the message fields
func (msg MsgFundProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Funder); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid funder address")
	}
	if !msg.Amount.IsValid() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, msg.Amount.String())
	}
	if !msg.Amount.IsAllPositive() {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidCoins, "deposit amount must be positive")
	}
	return nil
}

// GetSignBytes implements sdk.Msg
func (msg MsgFundProposal) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgFundProposal) GetSigners() []sdk.AccAddress {
	funder, err := sdk.AccAddressFromBech32(msg.Funder)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{funder}
}

// Reset implements proto.Message
func (msg *MsgFundProposal) Reset() { *msg = MsgFundProposal{} }

// String implements proto.Message
func (msg *MsgFundProposal) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgFundProposal) ProtoMessage() {}

// MsgSubmitApplication defines a message to apply for a proposal's funds with
// a shareholder payout split and a verification deadline.
type MsgSubmitApplication struct {
	Applicant  string        `json:"applicant" yaml:"applicant"`
	ProposalId uint64        `json:"proposal_id" yaml:"proposal_id"`
	Applicants []Shareholder `json:"applicants" yaml:"applicants"`
	Auditors   []Shareholder `json:"auditors" yaml:"auditors"`
	Deadline   uint64        `json:"deadline" yaml:"deadline"`
}

// NewMsgSubmitApplication creates a new MsgSubmitApplication instance.
func NewMsgSubmitApplication(applicant string, proposalID uint64, applicants, auditors []Shareholder, deadline uint64) *MsgSubmitApplication {
	return &MsgSubmitApplication{
		Applicant:  applicant,
		ProposalId: proposalID,
		Applicants: applicants,
		Auditors:   auditors,
		Deadline:   deadline,
	}
}

// Route implements sdk.Msg
func (msg MsgSubmitApplication) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgSubmitApplication) Type() string { return TypeMsgSubmitApplication }

// ValidateBasic performs a basic check of the message fields. The deadline is
// rechecked against the current block height when the message is handled.
func (msg MsgSubmitApplication) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Applicant); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid applicant address")
	}
	return NewApplication(msg.Applicants, msg.Auditors, msg.Deadline).Validate(0)
}

// GetSignBytes implements sdk.Msg
func (msg MsgSubmitApplication) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgSubmitApplication) GetSigners() []sdk.AccAddress {
	applicant, err := sdk.AccAddressFromBech32(msg.Applicant)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{applicant}
}

// Reset implements proto.Message
func (msg *MsgSubmitApplication) Reset() { *msg = MsgSubmitApplication{} }

// String implements proto.Message
func (msg *MsgSubmitApplication) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgSubmitApplication) ProtoMessage() {}

// MsgApproveApplication defines a message through which a depositor commits
// its unlocked custody funds for a proposal to one of its applications.
type MsgApproveApplication struct {
	Voter      string `json:"voter" yaml:"voter"`
	ProposalId uint64 `json:"proposal_id" yaml:"proposal_id"`
	Applicant  string `json:"applicant" yaml:"applicant"`
}

// NewMsgApproveApplication creates a new MsgApproveApplication instance.
func NewMsgApproveApplication(voter string, proposalID uint64, applicant string) *MsgApproveApplication {
	return &MsgApproveApplication{
		Voter:      voter,
		ProposalId: proposalID,
		Applicant:  applicant,
	}
}

// Route implements sdk.Msg
func (msg MsgApproveApplication) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgApproveApplication) Type() string { return TypeMsgApproveApplication }

// ValidateBasic performs a basic check of the message fields
func (msg MsgApproveApplication) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Voter); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid voter address")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Applicant); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid applicant address")
	}
	return nil
}

// GetSignBytes implements sdk.Msg
func (msg MsgApproveApplication) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgApproveApplication) GetSigners() []sdk.AccAddress {
	voter, err := sdk.AccAddressFromBech32(msg.Voter)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{voter}
}

// Reset implements proto.Message
func (msg *MsgApproveApplication) Reset() { *msg = MsgApproveApplication{} }

// String implements proto.Message
func (msg *MsgApproveApplication) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgApproveApplication) ProtoMessage() {}

// MsgAcceptApplication defines a message through which a listed applicant
// marks an application as accepted, enabling quorum evaluation.
type MsgAcceptApplication struct {
	Sender     string `json:"sender" yaml:"sender"`
	ProposalId uint64 `json:"proposal_id" yaml:"proposal_id"`
	Applicant  string `json:"applicant" yaml:"applicant"`
}

// NewMsgAcceptApplication creates a new MsgAcceptApplication instance.
func NewMsgAcceptApplication(sender string, proposalID uint64, applicant string) *MsgAcceptApplication {
	return &MsgAcceptApplication{
		Sender:     sender,
		ProposalId: proposalID,
		Applicant:  applicant,
	}
}

// Route implements sdk.Msg
func (msg MsgAcceptApplication) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgAcceptApplication) Type() string { return TypeMsgAcceptApplication }

// ValidateBasic performs a basic check of the message fields
func (msg MsgAcceptApplication) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid sender address")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Applicant); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid applicant address")
	}
	return nil
}

// GetSignBytes implements sdk.Msg
func (msg MsgAcceptApplication) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgAcceptApplication) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Reset implements proto.Message
func (msg *MsgAcceptApplication) Reset() { *msg = MsgAcceptApplication{} }

// String implements proto.Message
func (msg *MsgAcceptApplication) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgAcceptApplication) ProtoMessage() {}

// MsgVerifyApplication defines a message through which a listed auditor
// verifies a completed application. Rewards are distributed once every
// auditor has verified.
type MsgVerifyApplication struct {
	Auditor    string `json:"auditor" yaml:"auditor"`
	ProposalId uint64 `json:"proposal_id" yaml:"proposal_id"`
	Applicant  string `json:"applicant" yaml:"applicant"`
}

// NewMsgVerifyApplication creates a new MsgVerifyApplication instance.
func NewMsgVerifyApplication(auditor string, proposalID uint64, applicant string) *MsgVerifyApplication {
	return &MsgVerifyApplication{
		Auditor:    auditor,
		ProposalId: proposalID,
		Applicant:  applicant,
	}
}

// Route implements sdk.Msg
func (msg MsgVerifyApplication) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgVerifyApplication) Type() string { return TypeMsgVerifyApplication }

// ValidateBasic performs a basic check of the message fields
func (msg MsgVerifyApplication) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Auditor); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid auditor address")
	}
	if _, err := sdk.AccAddressFromBech32(msg.Applicant); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid applicant address")
	}
	return nil
}

// GetSignBytes implements sdk.Msg
func (msg MsgVerifyApplication) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgVerifyApplication) GetSigners() []sdk.AccAddress {
	auditor, err := sdk.AccAddressFromBech32(msg.Auditor)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{auditor}
}

// Reset implements proto.Message
func (msg *MsgVerifyApplication) Reset() { *msg = MsgVerifyApplication{} }

// String implements proto.Message
func (msg *MsgVerifyApplication) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgVerifyApplication) ProtoMessage() {}

// MsgRegisterAccount defines a message to register an interchain account for
// a proposal over the given connection.
type MsgRegisterAccount struct {
	Creator      string `json:"creator" yaml:"creator"`
	ProposalId   uint64 `json:"proposal_id" yaml:"proposal_id"`
	ConnectionId string `json:"connection_id" yaml:"connection_id"`
}

// NewMsgRegisterAccount creates a new MsgRegisterAccount instance.
func NewMsgRegisterAccount(creator string, proposalID uint64, connectionID string) *MsgRegisterAccount {
	return &MsgRegisterAccount{
		Creator:      creator,
		ProposalId:   proposalID,
		ConnectionId: connectionID,
	}
}

// Route implements sdk.Msg
func (msg MsgRegisterAccount) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgRegisterAccount) Type() string { return TypeMsgRegisterAccount }

// ValidateBasic performs a basic check of the message fields
func (msg MsgRegisterAccount) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid creator address")
	}
	if err := host.ConnectionIdentifierValidator(msg.ConnectionId); err != nil {
		return sdkerrors.Wrap(err, "invalid connection identifier")
	}
	return nil
}

// GetSignBytes implements sdk.Msg
func (msg MsgRegisterAccount) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgRegisterAccount) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// Reset implements proto.Message
func (msg *MsgRegisterAccount) Reset() { *msg = MsgRegisterAccount{} }

// String implements proto.Message
func (msg *MsgRegisterAccount) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgRegisterAccount) ProtoMessage() {}

// MsgWithdraw defines a message to withdraw all of the sender's unlocked
// custody funds back to its own account.
type MsgWithdraw struct {
	Sender string `json:"sender" yaml:"sender"`
}

// NewMsgWithdraw creates a new MsgWithdraw instance.
func NewMsgWithdraw(sender string) *MsgWithdraw {
	return &MsgWithdraw{Sender: sender}
}

// Route implements sdk.Msg
func (msg MsgWithdraw) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg MsgWithdraw) Type() string { return TypeMsgWithdraw }

// ValidateBasic performs a basic check of the message fields
func (msg MsgWithdraw) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.Wrap(sdkerrors.ErrInvalidAddress, "invalid sender address")
	}
	return nil
}

// GetSignBytes implements sdk.Msg
func (msg MsgWithdraw) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// GetSigners implements sdk.Msg
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// Reset implements proto.Message
func (msg *MsgWithdraw) Reset() { *msg = MsgWithdraw{} }

// String implements proto.Message
func (msg *MsgWithdraw) String() string {
	out, _ := yaml.Marshal(msg)
	return string(out)
}

// ProtoMessage implements proto.Message
func (*MsgWithdraw) ProtoMessage() {}
