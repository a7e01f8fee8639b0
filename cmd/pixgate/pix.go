package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/abacatepay"
)

var pixCmd = &cobra.Command{
	Use:   "pix",
	Short: "Manage PIX QR codes",
}

var pixCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a PIX QR code",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}

		amount, _ := cmd.Flags().GetInt64("amount")
		description, _ := cmd.Flags().GetString("description")
		expiresIn, _ := cmd.Flags().GetInt("expires-in")
		externalID, _ := cmd.Flags().GetString("external-id")
		if amount <= 0 {
			return fmt.Errorf("--amount must be greater than 0")
		}

		req := abacatepay.PixQRCodeRequest{
			Amount:      amount,
			Description: description,
			ExpiresIn:   expiresIn,
		}
		if externalID != "" {
			req.Metadata = &abacatepay.Metadata{ExternalID: externalID}
		}

		resp, err := client.CreatePixQRCode(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var pixCheckCmd = &cobra.Command{
	Use:   "check <id>",
	Short: "Check a PIX QR code's payment status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		resp, err := client.CheckPixQRCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var pixSimulateCmd = &cobra.Command{
	Use:   "simulate <id>",
	Short: "Simulate payment of a PIX QR code (sandbox only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		resp, err := client.SimulatePixPayment(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	pixCreateCmd.Flags().Int64("amount", 0, "amount in cents")
	pixCreateCmd.Flags().String("description", "", "charge description")
	pixCreateCmd.Flags().Int("expires-in", 0, "expiry in seconds")
	pixCreateCmd.Flags().String("external-id", "", "correlation id")

	pixCmd.AddCommand(pixCreateCmd, pixCheckCmd, pixSimulateCmd)
	rootCmd.AddCommand(pixCmd)
}
