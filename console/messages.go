package console

import (
	"errors"

	"go-finance-calculator/finance"
)

const (
	rule      = "========================================"
	separator = "----------------------------------------"
)

// message turns an error kind into the text shown to the user.
func message(err error) string {
	switch {
	case errors.Is(err, finance.ErrOverflow):
		return "Error: the number is too large!"
	case errors.Is(err, finance.ErrParseFailure):
		return "Error: enter valid numeric values!"
	case errors.Is(err, finance.ErrInvalidInput):
		return "Error: all values must be positive!"
	case errors.Is(err, finance.ErrInvalidAmount):
		return "Error: the amount must be positive!"
	case errors.Is(err, finance.ErrInvalidCurrency):
		return "Error: only RUB, USD and EUR are supported!"
	case errors.Is(err, finance.ErrRateNotFound):
		return "Error: no exchange rate for this currency pair!"
	case errors.Is(err, finance.ErrInvalidMode):
		return "Error: choose 1 or 2 for the deposit type!"
	default:
		return "Error: " + err.Error()
	}
}
