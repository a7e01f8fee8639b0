package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/abacatepay"
)

var couponCmd = &cobra.Command{
	Use:   "coupon",
	Short: "Manage discount coupons",
}

var couponCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a coupon",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}

		code, _ := cmd.Flags().GetString("code")
		kind, _ := cmd.Flags().GetString("kind")
		discount, _ := cmd.Flags().GetInt64("discount")
		notes, _ := cmd.Flags().GetString("notes")
		maxRedeems, _ := cmd.Flags().GetInt("max-redeems")
		if code == "" || discount <= 0 {
			return fmt.Errorf("--code and a positive --discount are required")
		}

		resp, err := client.CreateCoupon(cmd.Context(), abacatepay.CouponRequest{
			Code:         strings.ToUpper(strings.TrimSpace(code)),
			DiscountKind: kind,
			Discount:     discount,
			Notes:        notes,
			MaxRedeems:   maxRedeems,
		})
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

var couponListCmd = &cobra.Command{
	Use:   "list",
	Short: "List coupons",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		resp, err := client.ListCoupons(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(resp)
	},
}

func init() {
	couponCreateCmd.Flags().String("code", "", "coupon code")
	couponCreateCmd.Flags().String("kind", "PERCENTAGE", "PERCENTAGE or FIXED")
	couponCreateCmd.Flags().Int64("discount", 0, "percent points or cents, by kind")
	couponCreateCmd.Flags().String("notes", "", "internal notes")
	couponCreateCmd.Flags().Int("max-redeems", -1, "redemption cap, -1 for unlimited")

	couponCmd.AddCommand(couponCreateCmd, couponListCmd)
	rootCmd.AddCommand(couponCmd)
}
