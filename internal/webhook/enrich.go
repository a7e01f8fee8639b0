package webhook

// Enrich derives the resource-named sub-object of computed fields for a
// classified payload. It is additive only: raw fields are never touched,
// and absent inputs degrade to empty values. The unknown kind yields nil.
func Enrich(kind Kind, data Payload) map[string]any {
	switch kind {
	case KindPix:
		return enrichPix(data)
	case KindBilling:
		return enrichBilling(data)
	case KindCustomer:
		return enrichCustomer(data)
	case KindCoupon:
		return enrichCoupon(data)
	case KindWithdraw:
		return enrichWithdraw(data)
	}
	return nil
}

// EnrichmentKey names the envelope key the derived object is nested
// under. PIX enrichment describes the payment, not the QR code resource
// itself, so it lives under "payment".
func EnrichmentKey(kind Kind) string {
	if kind == KindPix {
		return "payment"
	}
	return string(kind)
}

// amounts builds the money block for payloads carrying an amount field:
// raw cents, formatted reais, platform fee and the net of the two.
func amounts(data Payload) map[string]any {
	if !data.present("amount") {
		return nil
	}
	amount := data.num("amount")
	fee := data.num("platformFee")
	net := CalculateNetAmount(amount, fee)
	return map[string]any{
		"raw":      data["amount"],
		"reais":    FormatAmount(amount),
		"fee":      fee,
		"feeReais": FormatAmount(fee),
		"net":      net,
		"netReais": FormatAmount(net),
	}
}

func enrichPix(data Payload) map[string]any {
	status := data.str("status")
	out := map[string]any{
		"status": map[string]any{
			"isPaid":    status == "PAID",
			"isExpired": status == "EXPIRED",
			"isFailed":  status == "CANCELLED" || status == "FAILED",
			"isPending": status == "PENDING",
		},
		"qrCode": map[string]any{
			"id":         data.str("id"),
			"brCode":     data.str("brCode"),
			"hasQrImage": data.present("brCodeBase64"),
		},
	}
	if a := amounts(data); a != nil {
		out["amounts"] = a
	}
	return out
}

func enrichBilling(data Payload) map[string]any {
	status := data.str("status")

	var count int
	var total float64
	if products, ok := data["products"].([]any); ok {
		count = len(products)
		for _, p := range products {
			item, ok := p.(map[string]any)
			if !ok {
				continue
			}
			price, _ := item["price"].(float64)
			quantity, _ := item["quantity"].(float64)
			total += price * quantity
		}
	}

	return map[string]any{
		"status": map[string]any{
			"isPaid":      status == "PAID",
			"isExpired":   status == "EXPIRED",
			"isCancelled": status == "CANCELLED",
			"isRefunded":  status == "REFUNDED",
			"isPending":   status == "PENDING",
		},
		"frequency":   data.str("frequency"),
		"isRecurring": data.str("frequency") == "MULTIPLE_PAYMENTS",
		"products": map[string]any{
			"count":      count,
			"total":      total,
			"totalReais": FormatAmount(total),
		},
		"urls": map[string]any{
			"billing":    data.str("url"),
			"return":     data.str("returnUrl"),
			"completion": data.str("completionUrl"),
		},
	}
}

func enrichCustomer(data Payload) map[string]any {
	email := data.str("email")
	taxID := data.str("taxId")
	return map[string]any{
		"name": ParseFullName(data.str("name")),
		"email": map[string]any{
			"address":    email,
			"domain":     EmailDomain(email),
			"isPersonal": IsPersonalEmail(email),
		},
		"document": map[string]any{
			"type":    DocumentType(taxID),
			"raw":     taxID,
			"cleaned": DigitsOnly(taxID),
		},
		"cellphone": map[string]any{
			"raw":     data.str("cellphone"),
			"cleaned": DigitsOnly(data.str("cellphone")),
		},
	}
}

func enrichCoupon(data Payload) map[string]any {
	status := data.str("status")
	kind := data.str("discountKind")
	discount := data.num("discount")

	var formatted string
	if kind == "PERCENTAGE" {
		formatted = trimFloat(discount) + "%"
	} else {
		formatted = "R$ " + FormatAmount(discount)
	}

	maxRedeems, hasMax := data["maxRedeems"].(float64)
	redeemed := data.num("redeemsCount")

	// -1 means the coupon never runs out; otherwise the remainder is
	// clamped at zero so over-redeemed coupons never report negative.
	var remaining any
	unlimited := hasMax && maxRedeems == -1
	if unlimited {
		remaining = "unlimited"
	} else {
		left := maxRedeems - redeemed
		if left < 0 {
			left = 0
		}
		remaining = left
	}

	return map[string]any{
		"code": data.str("code"),
		"status": map[string]any{
			"isActive":   status == "ACTIVE",
			"isExpired":  status == "EXPIRED",
			"isInactive": status == "INACTIVE",
		},
		"discount": map[string]any{
			"type":         kind,
			"value":        data["discount"],
			"isPercentage": kind == "PERCENTAGE",
			"isFixed":      kind == "FIXED",
			"formatted":    formatted,
		},
		"usage": map[string]any{
			"maxRedeems":       data["maxRedeems"],
			"currentRedeems":   redeemed,
			"remainingRedeems": remaining,
			"isUnlimited":      unlimited,
		},
	}
}

func enrichWithdraw(data Payload) map[string]any {
	status := data.str("status")
	out := map[string]any{
		"status": map[string]any{
			"isCompleted": status == "COMPLETE",
			"isFailed":    status == "CANCELLED" || status == "FAILED",
			"isPending":   status == "PENDING",
		},
		"method":     data.str("method"),
		"receiptUrl": data.str("receiptUrl"),
		"externalId": data.str("externalId"),
	}
	if a := amounts(data); a != nil {
		out["amounts"] = a
	}
	return out
}
