package domain

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Currency a currency code
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	EUR Currency = "EUR"
)

// Currencies lists every supported currency code.
var Currencies = []Currency{RUB, USD, EUR}

// Amount a monetary amount
type Amount float64

// Rate an exchange rate: 1 unit of the source currency buys Rate units of the target
type Rate float64

// Rates maps a target currency to the rate from some source currency
type Rates map[Currency]Rate

// Exchanged result of a currency conversion
type Exchanged struct {
	Rate   Rate
	Amount Amount
}

// LoanTerms inputs of an annuity loan calculation
type LoanTerms struct {
	Principal         Amount
	Months            int
	AnnualRatePercent float64
}

// LoanPayment result of an annuity loan calculation
type LoanPayment struct {
	MonthlyPayment Amount
	TotalPayment   Amount
	Overpayment    Amount
}

// DepositMode selects how deposit interest accrues.
type DepositMode int

const (
	// Capitalized interest is added to the principal every month.
	Capitalized DepositMode = 1
	// Simple interest is computed on the initial principal only.
	Simple DepositMode = 2
)

func (m DepositMode) String() string {
	switch m {
	case Capitalized:
		return "capitalized"
	case Simple:
		return "simple"
	default:
		return "unknown"
	}
}

// DepositTerms inputs of a deposit calculation
type DepositTerms struct {
	Principal         Amount
	Months            int
	AnnualRatePercent float64
	Mode              DepositMode
}

// DepositIncome result of a deposit calculation
type DepositIncome struct {
	Income      Amount
	TotalAmount Amount
}

// String formats the amount with exactly two decimals rounded half away from zero, e.g. "8791.59".
func (a Amount) String() string {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 2, 64)
	}
	return decimal.NewFromFloat(f).StringFixed(2)
}

// MarshalJSON encodes the amount as a JSON number with exactly two decimals.
// NaN and infinities have no JSON encoding and are an error.
func (a Amount) MarshalJSON() ([]byte, error) {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("amount %v is not a finite number", a)
	}
	return []byte(a.String()), nil
}
