package finance

import "errors"

// Error kinds reported by the calculator. Callers discriminate them with errors.Is;
// the returned errors wrap one of these with the offending values.
var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrRateNotFound    = errors.New("rate not found")
	ErrInvalidMode     = errors.New("invalid deposit mode")
	ErrParseFailure    = errors.New("parse failure")
	ErrOverflow        = errors.New("numeric overflow")
)

// Kind returns a stable snake_case code for the error kind wrapped by err,
// or "internal" when err wraps none of them.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrInvalidCurrency):
		return "invalid_currency"
	case errors.Is(err, ErrRateNotFound):
		return "rate_not_found"
	case errors.Is(err, ErrInvalidMode):
		return "invalid_mode"
	case errors.Is(err, ErrParseFailure):
		return "parse_failure"
	case errors.Is(err, ErrOverflow):
		return "overflow"
	default:
		return "internal"
	}
}
