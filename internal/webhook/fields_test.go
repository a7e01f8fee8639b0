package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		cents float64
		want  string
	}{
		{"whole reais", 2000, "20.00"},
		{"with cents", 1950, "19.50"},
		{"single cent", 1, "0.01"},
		{"zero", 0, "0.00"},
		{"large", 123456789, "1234567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.cents))
		})
	}
}

func TestCalculateNetAmount(t *testing.T) {
	assert.Equal(t, 950.0, CalculateNetAmount(1000, 50))
	assert.Equal(t, 1000.0, CalculateNetAmount(1000, 0))
	assert.Equal(t, -50.0, CalculateNetAmount(0, 50))
}

func TestMoneyRoundTrip(t *testing.T) {
	// Net in cents formatted as reais must agree with raw minus fee.
	amount, fee := 1000.0, 50.0
	net := CalculateNetAmount(amount, fee)
	assert.Equal(t, 950.0, net)
	assert.Equal(t, "9.50", FormatAmount(net))
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123.456.789-01", "12345678901"},
		{"(11) 99999-8888", "11999998888"},
		{"abc", ""},
		{"", ""},
		{"12 34", "1234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DigitsOnly(tt.in), "input %q", tt.in)
	}
}

func TestDocumentType(t *testing.T) {
	tests := []struct {
		name  string
		taxID string
		want  string
	}{
		{"formatted CPF", "123.456.789-01", "CPF"},
		{"bare CPF", "12345678901", "CPF"},
		{"formatted CNPJ", "12.345.678/0001-90", "CNPJ"},
		{"bare CNPJ", "12345678000190", "CNPJ"},
		{"too short", "12345", "UNKNOWN"},
		{"empty", "", "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentType(tt.taxID))
		})
	}
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "gmail.com", EmailDomain("joao@gmail.com"))
	assert.Equal(t, "acme.com.br", EmailDomain("JOAO@ACME.COM.BR"))
	assert.Equal(t, "", EmailDomain("not-an-email"))
	assert.Equal(t, "", EmailDomain(""))
}

func TestIsPersonalEmail(t *testing.T) {
	assert.True(t, IsPersonalEmail("a@gmail.com"))
	assert.True(t, IsPersonalEmail("a@HOTMAIL.com"))
	assert.True(t, IsPersonalEmail("a@yahoo.com"))
	assert.True(t, IsPersonalEmail("a@outlook.com"))
	assert.False(t, IsPersonalEmail("a@acme.com"))
	assert.False(t, IsPersonalEmail("no-at-sign"))
}

func TestParseFullName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want NameParts
	}{
		{
			name: "two words",
			in:   "Maria Silva",
			want: NameParts{Full: "Maria Silva", First: "Maria", Last: "Silva", Parts: []string{"Maria", "Silva"}, WordCount: 2},
		},
		{
			name: "single word has no last name",
			in:   "Maria",
			want: NameParts{Full: "Maria", First: "Maria", Parts: []string{"Maria"}, WordCount: 1},
		},
		{
			name: "extra whitespace collapses",
			in:   "  Ana   Clara  Souza ",
			want: NameParts{Full: "  Ana   Clara  Souza ", First: "Ana", Last: "Souza", Parts: []string{"Ana", "Clara", "Souza"}, WordCount: 3},
		},
		{
			name: "empty name yields empty slice not nil",
			in:   "",
			want: NameParts{Full: "", Parts: []string{}, WordCount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseFullName(tt.in))
		})
	}
}

func TestTrimFloat(t *testing.T) {
	assert.Equal(t, "10", trimFloat(10))
	assert.Equal(t, "10.5", trimFloat(10.5))
	assert.Equal(t, "0", trimFloat(0))
}
