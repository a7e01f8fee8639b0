package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/abacatepay"
)

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Manage withdrawals",
}

var withdrawCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a withdrawal to a PIX key",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}

		amount, _ := cmd.Flags().GetInt64("amount")
		pixKey, _ := cmd.Flags().GetString("pix-key")
		pixKeyType, _ := cmd.Flags().GetString("pix-key-type")
		externalID, _ := cmd.Flags().GetString("external-id")
		description, _ := cmd.Flags().GetString("description")
		if amount <= 0 || pixKey == "" || externalID == "" {
			return fmt.Errorf("--amount, --pix-key and --external-id are required")
		}

		resp, err := client.CreateWithdraw(cmd.Context(), abacatepay.WithdrawRequest{
			ExternalID: externalID,
			Method:     "PIX",
			Amount:     amount,
			Pix: abacatepay.PixKey{
				Type: pixKeyType,
				Key:  pixKey,
			},
			Description: description,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var withdrawListCmd = &cobra.Command{
	Use:   "list",
	Short: "List withdrawals",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		resp, err := client.ListWithdraws(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	withdrawCreateCmd.Flags().Int64("amount", 0, "amount in cents")
	withdrawCreateCmd.Flags().String("pix-key", "", "destination PIX key")
	withdrawCreateCmd.Flags().String("pix-key-type", "EVP", "PIX key type (CPF, CNPJ, EMAIL, PHONE, EVP)")
	withdrawCreateCmd.Flags().String("external-id", "", "integrator correlation id")
	withdrawCreateCmd.Flags().String("description", "", "withdrawal description")

	withdrawCmd.AddCommand(withdrawCreateCmd, withdrawListCmd)
	rootCmd.AddCommand(withdrawCmd)
}
