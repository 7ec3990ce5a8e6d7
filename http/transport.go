package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-kit/log"

	"go-finance-calculator/domain"
	"go-finance-calculator/finance"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service finance.Service
	Logger  log.Logger

	// allowedOrigins for CORS; CORS is disabled when empty
	allowedOrigins []string

	// metrics handler mounted at /metrics when set
	metrics http.Handler

	router chi.Router
}

// Option configures a Server
type Option func(*Server)

// WithAllowedOrigins enables CORS for the given origins
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithMetrics serves h at /metrics
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer constructs a Server exposing s as a JSON API.
func NewServer(s finance.Service, logger log.Logger, opts ...Option) *Server {
	server := &Server{
		Service: s,
		Logger:  logger,
		router:  chi.NewRouter(),
	}
	for _, opt := range opts {
		opt(server)
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestID)
	s.router.Use(s.accessLog)
	if len(s.allowedOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))
	}

	s.router.Get("/health", s.health())
	if s.metrics != nil {
		s.router.Method(http.MethodGet, "/metrics", s.metrics)
	}

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/convert", s.convert())
		r.Post("/loan", s.loan())
		r.Post("/deposit", s.deposit())
		r.Get("/rates", s.rates())
	})
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

func (s *Server) health() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		s.respond(rw, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency domain.Currency `json:"fromCurrency"`
		ToCurrency   domain.Currency `json:"toCurrency"`
		Amount       domain.Amount   `json:"amount"`
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		Exchange domain.Rate   `json:"exchange"`
		Amount   domain.Amount `json:"amount"`
		Original domain.Amount `json:"original"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := decode(rw, r, &request); err != nil {
			s.fail(rw, err)
			return
		}

		result, err := s.Service.Convert(r.Context(), request.Amount, request.FromCurrency, request.ToCurrency)
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.respond(rw, http.StatusOK, response{
			Exchange: result.Rate,
			Amount:   result.Amount,
			Original: request.Amount,
		})
	}
}

// loan produces HTTP handler for annuity loan calculations
func (s *Server) loan() http.HandlerFunc {
	type request struct {
		Principal         domain.Amount `json:"principal"`
		Months            int           `json:"months"`
		AnnualRatePercent float64       `json:"annualRatePercent"`
	}

	type response struct {
		MonthlyPayment domain.Amount `json:"monthlyPayment"`
		TotalPayment   domain.Amount `json:"totalPayment"`
		Overpayment    domain.Amount `json:"overpayment"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := decode(rw, r, &request); err != nil {
			s.fail(rw, err)
			return
		}

		result, err := s.Service.LoanPayment(r.Context(), domain.LoanTerms{
			Principal:         request.Principal,
			Months:            request.Months,
			AnnualRatePercent: request.AnnualRatePercent,
		})
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.respond(rw, http.StatusOK, response(result))
	}
}

// deposit produces HTTP handler for deposit calculations
func (s *Server) deposit() http.HandlerFunc {
	type request struct {
		Principal         domain.Amount `json:"principal"`
		Months            int           `json:"months"`
		AnnualRatePercent float64       `json:"annualRatePercent"`
		Mode              string        `json:"mode"`
	}

	type response struct {
		Income      domain.Amount `json:"income"`
		TotalAmount domain.Amount `json:"totalAmount"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var request request
		if err := decode(rw, r, &request); err != nil {
			s.fail(rw, err)
			return
		}

		// An unknown mode stays zero so Deposit validates the amounts first.
		mode, modeErr := finance.ParseDepositMode(request.Mode)

		result, err := s.Service.Deposit(r.Context(), domain.DepositTerms{
			Principal:         request.Principal,
			Months:            request.Months,
			AnnualRatePercent: request.AnnualRatePercent,
			Mode:              mode,
		})
		if modeErr != nil && errors.Is(err, finance.ErrInvalidMode) {
			err = modeErr
		}
		if err != nil {
			s.fail(rw, err)
			return
		}

		s.respond(rw, http.StatusOK, response(result))
	}
}

// rates produces HTTP handler listing the fixed exchange rates
func (s *Server) rates() http.HandlerFunc {
	type rate struct {
		From domain.Currency `json:"from"`
		To   domain.Currency `json:"to"`
		Rate domain.Rate     `json:"rate"`
	}

	type response struct {
		Rates []rate `json:"rates"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		pairs := s.Service.Rates(r.Context())
		rates := make([]rate, 0, len(pairs))
		for _, p := range pairs {
			rates = append(rates, rate(p))
		}
		s.respond(rw, http.StatusOK, response{Rates: rates})
	}
}

// maxBodyBytes limits the size of a request body.
const maxBodyBytes = 1 << 20

// decode reads a JSON request body of at most maxBodyBytes into v
func decode(rw http.ResponseWriter, r *http.Request, v interface{}) error {
	defer r.Body.Close()

	bytes, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading request: %w", finance.ErrParseFailure)
	}
	if err := json.Unmarshal(bytes, v); err != nil {
		return fmt.Errorf("invalid json: %w", finance.ErrParseFailure)
	}
	return nil
}

func (s *Server) respond(rw http.ResponseWriter, status int, v interface{}) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		s.Logger.Log("msg", "failed json encoding", "err", err)
	}
}

// ctxLogger returns the server logger annotated with the request id
func (s *Server) ctxLogger(ctx context.Context) log.Logger {
	return log.With(s.Logger, "request_id", finance.RequestID(ctx))
}
