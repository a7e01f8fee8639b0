package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/abacatepay"
)

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage AbacatePay customers",
}

var customerCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		taxID, _ := cmd.Flags().GetString("tax-id")
		cellphone, _ := cmd.Flags().GetString("cellphone")
		if name == "" || email == "" || taxID == "" || cellphone == "" {
			return fmt.Errorf("--name, --email, --tax-id and --cellphone are required")
		}

		resp, err := client.CreateCustomer(cmd.Context(), abacatepay.Customer{
			Name:      name,
			Email:     email,
			TaxID:     taxID,
			Cellphone: cellphone,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		resp, err := client.ListCustomers(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	customerCreateCmd.Flags().String("name", "", "full name")
	customerCreateCmd.Flags().String("email", "", "email address")
	customerCreateCmd.Flags().String("tax-id", "", "CPF or CNPJ")
	customerCreateCmd.Flags().String("cellphone", "", "cellphone number")

	customerCmd.AddCommand(customerCreateCmd, customerListCmd)
	rootCmd.AddCommand(customerCmd)
}
