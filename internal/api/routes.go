package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/liveboard/internal/errors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(corsMiddleware(s.AllowedOrigin))
	r.Use(timeoutMiddleware(s.RequestTimeout))

	r.Post("/update_board", s.handleUpdateBoard)
	r.Get("/get_board", s.handleGetBoard)
	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewNotFoundError("route", r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errors.NewMethodNotAllowedError(r.Method, r.URL.Path))
	})
	return r
}
