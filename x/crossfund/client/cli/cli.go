package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

// GetQueryCmd returns the query commands for the crossfund module
func GetQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the crossfund module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
	}

	queryCmd.AddCommand(
		GetCmdProposal(),
		GetCmdProposals(),
		GetCmdApplication(),
		GetCmdApplications(),
		GetCmdCustodyFunds(),
		GetCmdInterchainAccount(),
		GetCmdAckResult(),
		GetCmdErrorsQueue(),
	)

	return queryCmd
}

// NewTxCmd returns the transaction commands for the crossfund module
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Transaction commands for the crossfund module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	txCmd.AddCommand(
		NewSubmitProposalTxCmd(),
		NewFundProposalTxCmd(),
		NewSubmitApplicationTxCmd(),
		NewApproveApplicationTxCmd(),
		NewAcceptApplicationTxCmd(),
		NewVerifyApplicationTxCmd(),
		NewRegisterAccountTxCmd(),
		NewWithdrawTxCmd(),
	)

	return txCmd
}
