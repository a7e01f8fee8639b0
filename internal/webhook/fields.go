package webhook

import (
	"fmt"
	"strconv"
	"strings"
)

// trimFloat renders a float without trailing zeros: 10 -> "10",
// 10.5 -> "10.5".
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatAmount renders an amount in cents as a two-decimal reais string,
// without a currency symbol: 2000 -> "20.00".
func FormatAmount(cents float64) string {
	return fmt.Sprintf("%.2f", cents/100)
}

// CalculateNetAmount returns the amount left after the platform fee.
func CalculateNetAmount(amount, platformFee float64) float64 {
	return amount - platformFee
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DocumentType infers the Brazilian document type from a tax ID by digit
// count: 11 digits is a CPF, 14 a CNPJ, anything else is UNKNOWN.
func DocumentType(taxID string) string {
	switch len(DigitsOnly(taxID)) {
	case 11:
		return "CPF"
	case 14:
		return "CNPJ"
	}
	return "UNKNOWN"
}

// EmailDomain returns the lower-cased domain part of an email address,
// or "" when the address carries no "@".
func EmailDomain(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}

var personalDomains = map[string]bool{
	"gmail.com":   true,
	"hotmail.com": true,
	"yahoo.com":   true,
	"outlook.com": true,
}

// IsPersonalEmail reports whether the address belongs to one of the
// common personal mail providers.
func IsPersonalEmail(email string) bool {
	return personalDomains[EmailDomain(email)]
}

// NameParts is the decomposition of a customer's full name.
type NameParts struct {
	Full      string   `json:"full"`
	First     string   `json:"first"`
	Last      string   `json:"last"`
	Parts     []string `json:"parts"`
	WordCount int      `json:"wordCount"`
}

// ParseFullName tokenizes a full name on whitespace, dropping empty
// tokens. A single-word name has no last name.
func ParseFullName(fullName string) NameParts {
	parts := strings.Fields(fullName)
	if parts == nil {
		parts = []string{}
	}

	np := NameParts{
		Full:      fullName,
		Parts:     parts,
		WordCount: len(parts),
	}
	if len(parts) > 0 {
		np.First = parts[0]
	}
	if len(parts) > 1 {
		np.Last = parts[len(parts)-1]
	}
	return np
}
