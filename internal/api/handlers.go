package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vytor/liveboard/internal/logger"
	"github.com/vytor/liveboard/internal/services"
)

type Server struct {
	BoardService services.BoardService
	// AllowedOrigin is sent as Access-Control-Allow-Origin on every response.
	AllowedOrigin string
	// RequestTimeout bounds each request. Zero disables the limit.
	RequestTimeout time.Duration
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
