package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-finance-calculator/domain"
	"go-finance-calculator/finance"
)

// parseAmount parses a decimal number, accepting either '.' or ',' as the separator.
func parseAmount(s string) (domain.Amount, error) {
	f, err := parseFloat(s)
	return domain.Amount(f), err
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, parseError(s, err)
	}
	return f, nil
}

func parseMonths(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseError(s, err)
	}
	return n, nil
}

func parseError(s string, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("parse %q: %w: %w", s, finance.ErrParseFailure, finance.ErrOverflow)
	}
	return fmt.Errorf("parse %q: %w", s, finance.ErrParseFailure)
}
