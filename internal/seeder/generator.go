// Package seeder generates realistic AbacatePay webhook payloads for
// exercising a running gateway.
package seeder

import (
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/pixgate-systems/pixgate/internal/webhook"
)

func pick(values ...string) string {
	return values[rand.Intn(len(values))]
}

// Generate creates one resource payload of the given kind. The payload
// satisfies that kind's classification heuristic.
func Generate(kind webhook.Kind) map[string]any {
	switch kind {
	case webhook.KindPix:
		return generatePix()
	case webhook.KindBilling:
		return generateBilling()
	case webhook.KindCustomer:
		return generateCustomer()
	case webhook.KindCoupon:
		return generateCoupon()
	case webhook.KindWithdraw:
		return generateWithdraw()
	}
	// Unknown: a shape none of the classifiers accept.
	return map[string]any{
		"foo": gofakeit.Word(),
		"bar": float64(gofakeit.Number(1, 100)),
	}
}

// Body wraps a payload the way the gateway delivers it: nested under
// "data" with a sibling event hint.
func Body(kind webhook.Kind, hint string) map[string]any {
	if hint == "" {
		hint = string(kind) + ".webhook"
	}
	return map[string]any{
		"event": hint,
		"data":  Generate(kind),
	}
}

func generatePix() map[string]any {
	amount := float64(gofakeit.Number(100, 500000))
	return map[string]any{
		"id":           "pix_char_" + gofakeit.LetterN(16),
		"amount":       amount,
		"platformFee":  float64(int(amount * 0.05)),
		"status":       pick("PAID", "PENDING", "EXPIRED", "CANCELLED"),
		"brCode":       "00020126" + gofakeit.DigitN(40),
		"brCodeBase64": gofakeit.LetterN(64),
		"devMode":      true,
	}
}

func generateBilling() map[string]any {
	count := gofakeit.Number(1, 4)
	products := make([]any, 0, count)
	for i := 0; i < count; i++ {
		products = append(products, map[string]any{
			"externalId": fmt.Sprintf("prod-%d", gofakeit.Number(1000, 9999)),
			"name":       gofakeit.ProductName(),
			"quantity":   float64(gofakeit.Number(1, 5)),
			"price":      float64(gofakeit.Number(500, 100000)),
		})
	}
	return map[string]any{
		"id":            "bill_" + gofakeit.LetterN(16),
		"url":           "https://pay.abacatepay.com/bill/" + gofakeit.LetterN(10),
		"status":        pick("PAID", "PENDING", "EXPIRED", "CANCELLED"),
		"frequency":     pick("ONE_TIME", "MULTIPLE_PAYMENTS"),
		"products":      products,
		"returnUrl":     gofakeit.URL(),
		"completionUrl": gofakeit.URL(),
	}
}

func generateCustomer() map[string]any {
	return map[string]any{
		"id":        "cust_" + gofakeit.LetterN(16),
		"name":      gofakeit.Name(),
		"email":     gofakeit.Email(),
		"taxId":     gofakeit.DigitN(11),
		"cellphone": fmt.Sprintf("(%s) 9%s-%s", gofakeit.DigitN(2), gofakeit.DigitN(4), gofakeit.DigitN(4)),
	}
}

func generateCoupon() map[string]any {
	kind := pick("PERCENTAGE", "FIXED")
	discount := float64(gofakeit.Number(5, 50))
	if kind == "FIXED" {
		discount = float64(gofakeit.Number(500, 10000))
	}
	maxRedeems := float64(gofakeit.Number(1, 100))
	if gofakeit.Bool() {
		maxRedeems = -1
	}
	return map[string]any{
		"code":         gofakeit.LetterN(8),
		"discountKind": kind,
		"discount":     discount,
		"status":       pick("ACTIVE", "EXPIRED", "INACTIVE"),
		"maxRedeems":   maxRedeems,
		"redeemsCount": float64(gofakeit.Number(0, 20)),
		"notes":        gofakeit.Sentence(6),
	}
}

func generateWithdraw() map[string]any {
	amount := float64(gofakeit.Number(350, 1000000))
	return map[string]any{
		"id":          "wdrw_" + gofakeit.LetterN(16),
		"kind":        "WITHDRAW",
		"method":      "PIX",
		"amount":      amount,
		"platformFee": float64(gofakeit.Number(0, 500)),
		"status":      pick("COMPLETE", "PENDING", "CANCELLED", "FAILED"),
		"receiptUrl":  gofakeit.URL(),
		"externalId":  fmt.Sprintf("wd-%d", gofakeit.Number(10000, 99999)),
	}
}
