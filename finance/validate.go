package finance

import (
	"fmt"
	"math"

	"go-finance-calculator/domain"
)

// IsValidCurrency reports whether c is exactly one of the upper-case codes RUB, USD or EUR.
func IsValidCurrency(c domain.Currency) bool {
	for _, known := range domain.Currencies {
		if c == known {
			return true
		}
	}
	return false
}

// ParseDepositMode maps the selector to a deposit mode.
// "1" and "capitalized" select capitalized interest, "2" and "simple" select simple interest.
func ParseDepositMode(s string) (domain.DepositMode, error) {
	switch s {
	case "1", "capitalized":
		return domain.Capitalized, nil
	case "2", "simple":
		return domain.Simple, nil
	default:
		return 0, fmt.Errorf("deposit mode %q: %w", s, ErrInvalidMode)
	}
}

// positive reports whether v is a finite number greater than zero. NaN fails the comparison.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func validateTerms(principal domain.Amount, months int, annualRatePercent float64) error {
	if !positive(float64(principal)) {
		return fmt.Errorf("principal %v: %w", principal, ErrInvalidInput)
	}
	if months <= 0 {
		return fmt.Errorf("months %v: %w", months, ErrInvalidInput)
	}
	if !positive(annualRatePercent) {
		return fmt.Errorf("annual rate %v%%: %w", annualRatePercent, ErrInvalidInput)
	}
	return nil
}
