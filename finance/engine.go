package finance

import (
	"fmt"
	"math"

	"go-finance-calculator/domain"
)

// Engine performs the calculator's arithmetic. It holds no state other than the
// immutable rate table, so one Engine may be shared by any number of goroutines.
type Engine struct {
	rates *RateTable
}

// NewEngine constructs an Engine over the fixed rate table.
func NewEngine() *Engine {
	return &Engine{rates: NewRateTable()}
}

// Rates exposes the engine's rate table for read-only use.
func (e *Engine) Rates() *RateTable {
	return e.rates
}

// ConvertCurrency converts amount from one currency to another at the stored rate.
// Converting a currency to itself returns the amount unchanged with a rate of 1.
func (e *Engine) ConvertCurrency(amount domain.Amount, from, to domain.Currency) (domain.Exchanged, error) {
	if !IsValidCurrency(from) {
		return domain.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, ErrInvalidCurrency)
	}
	if !IsValidCurrency(to) {
		return domain.Exchanged{}, fmt.Errorf("convert to [%v]: %w", to, ErrInvalidCurrency)
	}
	if !positive(float64(amount)) {
		return domain.Exchanged{}, fmt.Errorf("convert amount [%v]: %w", amount, ErrInvalidAmount)
	}

	if from == to {
		return domain.Exchanged{Rate: 1, Amount: amount}, nil
	}

	rate, err := e.rates.Lookup(from, to)
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}

	converted := float64(rate) * float64(amount)
	if !finite(converted) {
		return domain.Exchanged{}, fmt.Errorf("convert amount [%v]: %w", amount, ErrOverflow)
	}

	return domain.Exchanged{Rate: rate, Amount: domain.Amount(converted)}, nil
}

// LoanPayment computes the annuity payment of a loan.
//
// For very small rates (1+r)^n - 1 loses most of its significant digits to
// cancellation, so the payment carries a larger relative error. Below roughly
// 1e-14 percent a year 1+r rounds to exactly 1, the denominator becomes zero
// and ErrOverflow is returned.
func (e *Engine) LoanPayment(terms domain.LoanTerms) (domain.LoanPayment, error) {
	if err := validateTerms(terms.Principal, terms.Months, terms.AnnualRatePercent); err != nil {
		return domain.LoanPayment{}, fmt.Errorf("loan payment: %w", err)
	}

	principal := float64(terms.Principal)
	months := float64(terms.Months)
	monthlyRate := terms.AnnualRatePercent / 12 / 100
	growth := math.Pow(1+monthlyRate, months)

	payment := principal * (monthlyRate * growth) / (growth - 1)
	total := payment * months
	overpayment := total - principal

	if !finite(payment, total, overpayment) {
		return domain.LoanPayment{}, fmt.Errorf("loan payment [%v months]: %w", terms.Months, ErrOverflow)
	}

	return domain.LoanPayment{
		MonthlyPayment: domain.Amount(payment),
		TotalPayment:   domain.Amount(total),
		Overpayment:    domain.Amount(overpayment),
	}, nil
}

// Deposit computes the income of a deposit with capitalized or simple interest.
func (e *Engine) Deposit(terms domain.DepositTerms) (domain.DepositIncome, error) {
	if err := validateTerms(terms.Principal, terms.Months, terms.AnnualRatePercent); err != nil {
		return domain.DepositIncome{}, fmt.Errorf("deposit: %w", err)
	}

	principal := float64(terms.Principal)
	months := float64(terms.Months)

	var income, total float64
	switch terms.Mode {
	case domain.Capitalized:
		monthlyRate := terms.AnnualRatePercent / 12 / 100
		total = principal * math.Pow(1+monthlyRate, months)
		income = total - principal
	case domain.Simple:
		income = principal * terms.AnnualRatePercent * months / 12 / 100
		total = principal + income
	default:
		return domain.DepositIncome{}, fmt.Errorf("deposit mode [%d]: %w", terms.Mode, ErrInvalidMode)
	}

	if !finite(income, total) {
		return domain.DepositIncome{}, fmt.Errorf("deposit [%v months]: %w", terms.Months, ErrOverflow)
	}

	return domain.DepositIncome{
		Income:      domain.Amount(income),
		TotalAmount: domain.Amount(total),
	}, nil
}
