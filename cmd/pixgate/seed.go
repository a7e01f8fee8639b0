package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixgate-systems/pixgate/internal/seeder"
	"github.com/pixgate-systems/pixgate/internal/webhook"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Post generated webhook payloads at a running gateway",
	Long: `seed generates realistic AbacatePay webhook bodies and POSTs them at
a gateway endpoint, for exercising classification and subscriptions
without real gateway traffic.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().String("target", "http://localhost:8099/webhooks/abacatepay", "webhook endpoint URL")
	seedCmd.Flags().Int("count", 10, "number of payloads to send")
	seedCmd.Flags().String("kind", "", "resource kind to generate (pix, billing, customer, coupon, withdraw); empty rotates through all")
	seedCmd.Flags().String("hint", "", "raw event hint to attach")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")
	count, _ := cmd.Flags().GetInt("count")
	kindFlag, _ := cmd.Flags().GetString("kind")
	hint, _ := cmd.Flags().GetString("hint")

	kinds := webhook.Kinds()
	if kindFlag != "" {
		kind := webhook.ParseKind(kindFlag)
		if kind == webhook.KindUnknown {
			return fmt.Errorf("unknown kind %q", kindFlag)
		}
		kinds = []webhook.Kind{kind}
	}

	client := &http.Client{Timeout: 10 * time.Second}
	sent, failed := 0, 0

	for i := 0; i < count; i++ {
		kind := kinds[i%len(kinds)]
		body, err := json.Marshal(seeder.Body(kind, hint))
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}

		resp, err := client.Post(target, "application/json", bytes.NewReader(body))
		if err != nil {
			failed++
			fmt.Printf("send %s payload: %v\n", kind, err)
			continue
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			failed++
			fmt.Printf("send %s payload: status %d\n", kind, resp.StatusCode)
			continue
		}
		sent++
	}

	fmt.Printf("Sent %d payloads (%d failed) to %s\n", sent, failed, target)
	return nil
}
