package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestClientFullName(t *testing.T) {
	tests := []struct {
		name       string
		clientType ClientType
		first      *string
		last       *string
		entity     *string
		expected   string
	}{
		{"personal uses first and last", ClientTypePersonal, strPtr("Thandi"), strPtr("Nkosi"), nil, "Thandi Nkosi"},
		{"personal ignores entity name", ClientTypePersonal, strPtr("Thandi"), strPtr("Nkosi"), strPtr("Nkosi Holdings"), "Thandi Nkosi"},
		{"business uses entity name", ClientTypeBusiness, nil, nil, strPtr("Acme Logistics"), "Acme Logistics"},
		{"body corporate uses entity name", ClientTypeBodyCorporate, nil, nil, strPtr("Seaview Body Corporate"), "Seaview Body Corporate"},
		{"business falls back to names", ClientTypeBusiness, strPtr("Jan"), strPtr("Botha"), strPtr("  "), "Jan Botha"},
		{"missing last name", ClientTypePersonal, strPtr("Thandi"), nil, nil, "Thandi"},
		{"nothing set", ClientTypePersonal, nil, nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClientFullName(tt.clientType, tt.first, tt.last, tt.entity))
		})
	}
}

func TestIsQuoteNumber(t *testing.T) {
	tests := map[string]bool{
		"Q2026-00042":  true,
		"Q2026-123456": true,
		"Q2026--0042":  false,
		"Q2026-042":    false,
		"Q26-00042":    false,
		"quote-1":      false,
		"":             false,
	}
	for number, want := range tests {
		t.Run(number, func(t *testing.T) {
			assert.Equal(t, want, IsQuoteNumber(number))
		})
	}
}
