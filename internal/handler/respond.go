package handler

import (
	"encoding/json"
	"net/http"

	"freelancetrack/internal/apperr"

	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses: validation failures
// are the caller's fault, missing records are 404, everything else is an
// internal failure surfaced with a generic message.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	switch {
	case apperr.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case apperr.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: fallback})
	}
}
