package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/abacatepay"
	"github.com/pixgate-systems/pixgate/internal/cliconfig"
)

var (
	profileFile string
	profileName string
)

var rootCmd = &cobra.Command{
	Use:   "pixgate",
	Short: "AbacatePay webhook gateway",
	Long: `pixgate receives AbacatePay webhook callbacks, classifies them into
resource kinds, normalizes lifecycle events, enriches payloads and
forwards subscribed events downstream.

It also wraps the AbacatePay REST API for creating and listing
customers, billings, PIX QR codes, coupons and withdrawals.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profileFile, "profile-file", "", "credential profile file (default: $HOME/.pixgate/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "credential profile to use")
}

// apiClient builds an AbacatePay client from the selected profile.
func apiClient() (*abacatepay.Client, error) {
	cfg, err := cliconfig.Load(profileFile)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	profile, err := cfg.GetProfile(profileName)
	if err != nil {
		return nil, err
	}
	return abacatepay.New(profile.BaseURL, profile.APIKey, 30*time.Second), nil
}

// printJSON pretty-prints an API response to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store AbacatePay API credentials in a profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL, _ := cmd.Flags().GetString("base-url")
		apiKey, _ := cmd.Flags().GetString("api-key")
		if apiKey == "" {
			return fmt.Errorf("--api-key is required")
		}

		name := profileName
		if name == "" {
			name = "default"
		}

		cfg, err := cliconfig.Load(profileFile)
		if err != nil {
			return fmt.Errorf("load profiles: %w", err)
		}
		if err := cfg.SaveProfile(name, baseURL, apiKey); err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		fmt.Printf("Profile %q saved\n", name)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("base-url", "https://api.abacatepay.com", "API base URL")
	loginCmd.Flags().String("api-key", "", "API key (bearer token)")
	rootCmd.AddCommand(loginCmd)
}
