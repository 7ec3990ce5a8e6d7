package finance

import (
	"context"
	"time"

	"github.com/go-kit/log"

	"go-finance-calculator/domain"
)

// loggingService decorates a finance.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"request_id", RequestID(ctx),
			"amount", amount,
			"from", from,
			"to", to,
			"rate", ex.Rate,
			"converted_amount", ex.Amount,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *loggingService) LoanPayment(ctx context.Context, terms domain.LoanTerms) (p domain.LoanPayment, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "loan_payment",
			"request_id", RequestID(ctx),
			"principal", terms.Principal,
			"months", terms.Months,
			"annual_rate", terms.AnnualRatePercent,
			"monthly_payment", p.MonthlyPayment,
			"overpayment", p.Overpayment,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoanPayment(ctx, terms)
}

func (s *loggingService) Deposit(ctx context.Context, terms domain.DepositTerms) (d domain.DepositIncome, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "deposit",
			"request_id", RequestID(ctx),
			"principal", terms.Principal,
			"months", terms.Months,
			"annual_rate", terms.AnnualRatePercent,
			"mode", terms.Mode,
			"income", d.Income,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Deposit(ctx, terms)
}

func (s *loggingService) Rates(ctx context.Context) (pairs []Pair) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rates",
			"request_id", RequestID(ctx),
			"pairs", len(pairs),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Rates(ctx)
}
