package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/crossfund/crossfund/x/crossfund/types"
)

const (
	flagAutoAgree = "auto-agree"
	flagAuditors  = "auditors"
	flagDeadline  = "deadline"
)

// NewSubmitProposalTxCmd returns the command to create a MsgSubmitProposal
func NewSubmitProposalTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-proposal [title] [description]",
		Short: "Submit a new funding proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgSubmitProposal(clientCtx.GetFromAddress().String(), args[0], args[1])
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewFundProposalTxCmd returns the command to create a MsgFundProposal
func NewFundProposalTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-proposal [proposal-id] [amount]",
		Short: "Deposit funds toward a proposal",
		Long:  "Deposit funds toward a proposal. The coins move into module escrow and are tracked as unlocked custody of the depositor. Use --auto-agree to opt into automatic approval once a funding quorum is reached.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			amount, err := sdk.ParseCoinsNormalized(args[1])
			if err != nil {
				return err
			}

			autoAgree, err := cmd.Flags().GetBool(flagAutoAgree)
			if err != nil {
				return err
			}

			msg := types.NewMsgFundProposal(clientCtx.GetFromAddress().String(), proposalID, amount, autoAgree)
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Bool(flagAutoAgree, false, "opt into automatic approval on funding quorum")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewSubmitApplicationTxCmd returns the command to create a MsgSubmitApplication
func NewSubmitApplicationTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit-application [proposal-id] [applicants]",
		Short: "Apply for a proposal's funds",
		Long: `Apply for a proposal's funds with a shareholder payout split.
Applicants and auditors are comma separated address:share pairs whose shares must sum to 100, e.g.
cosmos1...:40,cosmos1...:30 --auditors cosmos1...:30 --deadline 1000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			applicants, err := parseShareholders(args[1])
			if err != nil {
				return err
			}

			auditorsArg, err := cmd.Flags().GetString(flagAuditors)
			if err != nil {
				return err
			}
			auditors, err := parseShareholders(auditorsArg)
			if err != nil {
				return err
			}

			deadline, err := cmd.Flags().GetUint64(flagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgSubmitApplication(clientCtx.GetFromAddress().String(), proposalID, applicants, auditors, deadline)
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagAuditors, "", "comma separated address:share auditor pairs")
	cmd.Flags().Uint64(flagDeadline, 0, "verification deadline as a block height")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewApproveApplicationTxCmd returns the command to create a MsgApproveApplication
func NewApproveApplicationTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-application [proposal-id] [applicant]",
		Short: "Commit your unlocked custody funds for a proposal to an application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := types.NewMsgApproveApplication(clientCtx.GetFromAddress().String(), proposalID, args[1])
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewAcceptApplicationTxCmd returns the command to create a MsgAcceptApplication
func NewAcceptApplicationTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept-application [proposal-id] [applicant]",
		Short: "Accept an application as one of its applicants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := types.NewMsgAcceptApplication(clientCtx.GetFromAddress().String(), proposalID, args[1])
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewVerifyApplicationTxCmd returns the command to create a MsgVerifyApplication
func NewVerifyApplicationTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify-application [proposal-id] [applicant]",
		Short: "Verify a completed application as one of its auditors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := types.NewMsgVerifyApplication(clientCtx.GetFromAddress().String(), proposalID, args[1])
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewRegisterAccountTxCmd returns the command to create a MsgRegisterAccount
func NewRegisterAccountTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register-account [proposal-id] [connection-id]",
		Short: "Register an interchain account for a proposal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			proposalID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return err
			}

			msg := types.NewMsgRegisterAccount(clientCtx.GetFromAddress().String(), proposalID, args[1])
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// NewWithdrawTxCmd returns the command to create a MsgWithdraw
func NewWithdrawTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw all of your unlocked custody funds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgWithdraw(clientCtx.GetFromAddress().String())
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

// parseShareholders parses comma separated address:share pairs.
func parseShareholders(arg string) ([]types.Shareholder, error) {
	if arg == "" {
		return nil, nil
	}

	var shareholders []types.Shareholder
	for _, pair := range strings.Split(arg, ",") {
		parts := strings.Split(pair, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid shareholder %s, expected address:share", pair)
		}

		share, err := strconv.ParseUint(parts[1], 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid share in %s: %w", pair, err)
		}

		shareholders = append(shareholders, types.Shareholder{
			Address: parts[0],
			Share:   uint8(share),
		})
	}

	return shareholders, nil
}
