package finance

import (
	"fmt"
	"sort"

	"go-finance-calculator/domain"
)

// RateTable fixed exchange rates keyed by source currency, then target currency.
// A RateTable is never modified after NewRateTable returns and is safe for concurrent reads.
type RateTable struct {
	rates map[domain.Currency]domain.Rates
}

// Pair a directed currency pair and its stored rate
type Pair struct {
	From domain.Currency
	To   domain.Currency
	Rate domain.Rate
}

// NewRateTable builds the table of the six supported directed pairs.
// Each reverse rate is its own literal, not derived from the forward rate or via USD.
func NewRateTable() *RateTable {
	return &RateTable{
		rates: map[domain.Currency]domain.Rates{
			domain.USD: {
				domain.RUB: 90.0,
				domain.EUR: 1.0 / 1.09,
			},
			domain.EUR: {
				domain.RUB: 98.5,
				domain.USD: 1.09,
			},
			domain.RUB: {
				domain.USD: 1.0 / 90.0,
				domain.EUR: 1.0 / 98.5,
			},
		},
	}
}

// Lookup returns the stored rate for the ordered pair. Identity pairs are not stored.
func (t *RateTable) Lookup(from, to domain.Currency) (domain.Rate, error) {
	rate, ok := t.rates[from][to]
	if !ok {
		return 0, fmt.Errorf("lookup [%v->%v]: %w", from, to, ErrRateNotFound)
	}
	return rate, nil
}

// Len number of stored pairs
func (t *RateTable) Len() int {
	n := 0
	for _, rates := range t.rates {
		n += len(rates)
	}
	return n
}

// Pairs lists every stored pair ordered by source then target currency.
func (t *RateTable) Pairs() []Pair {
	pairs := make([]Pair, 0, t.Len())
	for from, rates := range t.rates {
		for to, rate := range rates {
			pairs = append(pairs, Pair{From: from, To: to, Rate: rate})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}
