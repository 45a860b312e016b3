package decline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReasonFor(t *testing.T) {
	tests := []struct {
		name     string
		code     Code
		ctx      Context
		expected string
	}{
		{
			name:     "spending controls",
			code:     CodeSpendingControls,
			expected: "The purchase exceeds a spending limit set for this cardholder.",
		},
		{
			name:     "card level controls",
			code:     CodeAuthorizationControls,
			expected: "The purchase exceeds a spending limit set on this card.",
		},
		{
			name:     "prohibited merchant includes category code",
			code:     CodeProhibitedMerchant,
			ctx:      Context{MerchantCategoryCode: "7995"},
			expected: "Purchases from merchant category 7995 are not allowed for this business.",
		},
		{
			name:     "unknown code falls back to prohibited merchant",
			code:     Code("something_new"),
			ctx:      Context{MerchantCategoryCode: "5812"},
			expected: "Purchases from merchant category 5812 are not allowed for this business.",
		},
		{
			name:     "missing category code",
			code:     CodeProhibitedMerchant,
			expected: "Purchases from merchant category unknown are not allowed for this business.",
		},
		{
			name:     "context ignored by fixed messages",
			code:     CodeCardInactive,
			ctx:      Context{MerchantCategoryCode: "5541"},
			expected: "The card is not active.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReasonFor(tt.code, tt.ctx))
		})
	}
}

func TestReasonFor_EveryCodeHasDistinctMessage(t *testing.T) {
	seen := make(map[string]Code)
	for _, code := range Codes() {
		msg := ReasonFor(code, Context{MerchantCategoryCode: "0000"})
		assert.NotEmpty(t, msg, "code %s has no message", code)
		if prev, dup := seen[msg]; dup {
			t.Errorf("codes %s and %s share message %q", prev, code, msg)
		}
		seen[msg] = code
	}
	assert.Len(t, Codes(), 12)
}
