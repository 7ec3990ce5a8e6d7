package finance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-finance-calculator/domain"
)

func TestIsValidCurrency(t *testing.T) {
	for _, c := range []domain.Currency{"RUB", "USD", "EUR"} {
		assert.True(t, IsValidCurrency(c), "currency %q", c)
	}

	for _, c := range []domain.Currency{"GBP", "JPY", "", "usd", "Eur", " RUB"} {
		assert.False(t, IsValidCurrency(c), "currency %q", c)
	}
}

func TestParseDepositMode(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.DepositMode
		wantErr bool
	}{
		{"1", domain.Capitalized, false},
		{"capitalized", domain.Capitalized, false},
		{"2", domain.Simple, false},
		{"simple", domain.Simple, false},
		{"3", 0, true},
		{"0", 0, true},
		{"", 0, true},
		{"yes", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDepositMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("wrapped: %w", ErrInvalidAmount), "invalid_amount"},
		{ErrInvalidInput, "invalid_input"},
		{ErrInvalidCurrency, "invalid_currency"},
		{ErrRateNotFound, "rate_not_found"},
		{ErrInvalidMode, "invalid_mode"},
		{ErrParseFailure, "parse_failure"},
		{ErrOverflow, "overflow"},
		{fmt.Errorf("boom"), "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
