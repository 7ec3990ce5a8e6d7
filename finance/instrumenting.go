package finance

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go-finance-calculator/domain"
)

// instrumentingService decorates a finance.Service with request count and latency metrics
type instrumentingService struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	next     Service
}

// NewInstrumentingService registers the calculator metrics with reg and returns a Service recording them
func NewInstrumentingService(reg prometheus.Registerer, s Service) Service {
	factory := promauto.With(reg)
	return &instrumentingService{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "finance",
			Name:      "requests_total",
			Help:      "Number of calculator requests by method and outcome.",
		}, []string{"method", "outcome"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "finance",
			Name:      "request_duration_seconds",
			Help:      "Time spent computing calculator requests.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 6),
		}, []string{"method"}),
		next: s,
	}
}

func (s *instrumentingService) observe(method string, begin time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = Kind(err)
	}
	s.requests.WithLabelValues(method, outcome).Inc()
	s.latency.WithLabelValues(method).Observe(time.Since(begin).Seconds())
}

func (s *instrumentingService) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (ex domain.Exchanged, err error) {
	defer func(begin time.Time) { s.observe("convert", begin, err) }(time.Now())
	return s.next.Convert(ctx, amount, from, to)
}

func (s *instrumentingService) LoanPayment(ctx context.Context, terms domain.LoanTerms) (p domain.LoanPayment, err error) {
	defer func(begin time.Time) { s.observe("loan_payment", begin, err) }(time.Now())
	return s.next.LoanPayment(ctx, terms)
}

func (s *instrumentingService) Deposit(ctx context.Context, terms domain.DepositTerms) (d domain.DepositIncome, err error) {
	defer func(begin time.Time) { s.observe("deposit", begin, err) }(time.Now())
	return s.next.Deposit(ctx, terms)
}

func (s *instrumentingService) Rates(ctx context.Context) []Pair {
	defer func(begin time.Time) { s.observe("rates", begin, nil) }(time.Now())
	return s.next.Rates(ctx)
}
