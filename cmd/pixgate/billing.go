package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/abacatepay"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Manage billing charges",
}

var billingCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a billing charge with a single product",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}

		productName, _ := cmd.Flags().GetString("product")
		price, _ := cmd.Flags().GetInt64("price")
		quantity, _ := cmd.Flags().GetInt("quantity")
		frequency, _ := cmd.Flags().GetString("frequency")
		returnURL, _ := cmd.Flags().GetString("return-url")
		completionURL, _ := cmd.Flags().GetString("completion-url")
		externalID, _ := cmd.Flags().GetString("external-id")
		if productName == "" || price <= 0 {
			return fmt.Errorf("--product and a positive --price are required")
		}

		resp, err := client.CreateBilling(cmd.Context(), abacatepay.BillingRequest{
			Frequency:     frequency,
			Methods:       []string{"PIX"},
			ReturnURL:     returnURL,
			CompletionURL: completionURL,
			ExternalID:    externalID,
			Products: []abacatepay.Product{
				{
					ExternalID: externalID,
					Name:       productName,
					Quantity:   quantity,
					Price:      price,
				},
			},
		})
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var billingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List billing charges",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		resp, err := client.ListBillings(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	billingCreateCmd.Flags().String("product", "", "product name")
	billingCreateCmd.Flags().Int64("price", 0, "unit price in cents")
	billingCreateCmd.Flags().Int("quantity", 1, "quantity")
	billingCreateCmd.Flags().String("frequency", "ONE_TIME", "ONE_TIME or MULTIPLE_PAYMENTS")
	billingCreateCmd.Flags().String("return-url", "", "URL the payer returns to")
	billingCreateCmd.Flags().String("completion-url", "", "URL after payment completes")
	billingCreateCmd.Flags().String("external-id", "", "correlation id")

	billingCmd.AddCommand(billingCreateCmd, billingListCmd)
	rootCmd.AddCommand(billingCmd)
}
