package finance

import (
	"context"

	"go-finance-calculator/domain"
)

// Service interface for the calculator operations offered to front ends
type Service interface {
	Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error)
	LoanPayment(ctx context.Context, terms domain.LoanTerms) (domain.LoanPayment, error)
	Deposit(ctx context.Context, terms domain.DepositTerms) (domain.DepositIncome, error)
	Rates(ctx context.Context) []Pair
}

// service calculator backed by an Engine
type service struct {
	// engine performs the arithmetic
	engine *Engine
}

// NewService constructs a valid Service
func NewService(e *Engine) Service {
	return &service{
		engine: e,
	}
}

// Convert computes a conversion from one currency to another with the fixed exchange rate.
func (s *service) Convert(_ context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error) {
	return s.engine.ConvertCurrency(amount, from, to)
}

func (s *service) LoanPayment(_ context.Context, terms domain.LoanTerms) (domain.LoanPayment, error) {
	return s.engine.LoanPayment(terms)
}

func (s *service) Deposit(_ context.Context, terms domain.DepositTerms) (domain.DepositIncome, error) {
	return s.engine.Deposit(terms)
}

// Rates lists the stored exchange rates
func (s *service) Rates(_ context.Context) []Pair {
	return s.engine.Rates().Pairs()
}
