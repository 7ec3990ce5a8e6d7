package http

import (
	"errors"
	"net/http"

	"go-finance-calculator/finance"
)

// status maps an error kind to the HTTP status reported to clients
func status(err error) int {
	switch {
	case errors.Is(err, finance.ErrRateNotFound):
		return http.StatusNotFound
	case errors.Is(err, finance.ErrOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, finance.ErrInvalidAmount),
		errors.Is(err, finance.ErrInvalidInput),
		errors.Is(err, finance.ErrInvalidCurrency),
		errors.Is(err, finance.ErrInvalidMode),
		errors.Is(err, finance.ErrParseFailure):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error body
func (s *Server) fail(rw http.ResponseWriter, err error) {
	type response struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	code := status(err)
	if code == http.StatusInternalServerError {
		s.Logger.Log("msg", "request failed", "err", err)
	}
	s.respond(rw, code, response{
		Error:   finance.Kind(err),
		Message: err.Error(),
	})
}
