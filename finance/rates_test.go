package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-finance-calculator/domain"
)

func TestNewRateTable(t *testing.T) {
	table := NewRateTable()

	assert.Equal(t, 6, table.Len())

	tests := []struct {
		from domain.Currency
		to   domain.Currency
		want domain.Rate
	}{
		{domain.USD, domain.RUB, 90.0},
		{domain.EUR, domain.RUB, 98.5},
		{domain.EUR, domain.USD, 1.09},
		{domain.RUB, domain.USD, 1.0 / 90.0},
		{domain.RUB, domain.EUR, 1.0 / 98.5},
		{domain.USD, domain.EUR, 1.0 / 1.09},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			got, err := table.Lookup(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRateTable_LookupExactLiterals(t *testing.T) {
	table := NewRateTable()

	usdRub, err := table.Lookup(domain.USD, domain.RUB)
	require.NoError(t, err)
	assert.Equal(t, domain.Rate(90.0), usdRub)

	rubUsd, err := table.Lookup(domain.RUB, domain.USD)
	require.NoError(t, err)
	assert.Equal(t, domain.Rate(1/90.0), rubUsd)

	eurRub, err := table.Lookup(domain.EUR, domain.RUB)
	require.NoError(t, err)
	rubEur, err := table.Lookup(domain.RUB, domain.EUR)
	require.NoError(t, err)
	assert.Equal(t, domain.Rate(98.5), eurRub)
	assert.Equal(t, domain.Rate(1/98.5), rubEur)

	// RUB->EUR is stored on its own, not composed through USD.
	rubUsdEur := float64(rubUsd) * (1 / 1.09)
	assert.NotEqual(t, rubUsdEur, float64(rubEur))
}

func TestRateTable_LookupMissing(t *testing.T) {
	table := NewRateTable()

	tests := []struct {
		name string
		from domain.Currency
		to   domain.Currency
	}{
		{"identity is not stored", domain.USD, domain.USD},
		{"unknown source", "GBP", domain.USD},
		{"unknown target", domain.USD, "GBP"},
		{"lower case", "usd", "rub"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := table.Lookup(tt.from, tt.to)
			assert.ErrorIs(t, err, ErrRateNotFound)
		})
	}
}

func TestRateTable_Pairs(t *testing.T) {
	pairs := NewRateTable().Pairs()

	require.Len(t, pairs, 6)
	assert.Equal(t, Pair{From: domain.EUR, To: domain.RUB, Rate: 98.5}, pairs[0])
	assert.Equal(t, Pair{From: domain.EUR, To: domain.USD, Rate: 1.09}, pairs[1])
	assert.Equal(t, domain.RUB, pairs[2].From)
	assert.Equal(t, domain.USD, pairs[5].From)
	assert.Equal(t, domain.RUB, pairs[5].To)
}
