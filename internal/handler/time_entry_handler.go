package handler

import (
	"encoding/json"
	"net/http"

	"freelancetrack/internal/service"

	"go.uber.org/zap"
)

type TimeEntryHandler struct {
	service *service.EntryService
	logger  *zap.Logger
}

func NewTimeEntryHandler(service *service.EntryService, logger *zap.Logger) *TimeEntryHandler {
	return &TimeEntryHandler{
		service: service,
		logger:  logger,
	}
}

type logManualRequest struct {
	UserID    string  `json:"user_id"`
	ProjectID string  `json:"project_id"`
	TaskID    string  `json:"task_id"`
	Hours     float64 `json:"hours"`
}

// Create logs a manually entered block of work.
func (h *TimeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req logManualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.service.LogManual(r.Context(), req.UserID, req.ProjectID, req.TaskID, req.Hours)
	if err != nil {
		writeError(w, h.logger, err, "Failed to log time entry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// List returns the user's time entries, newest first.
func (h *TimeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "Missing user_id parameter", http.StatusBadRequest)
		return
	}

	entries, err := h.service.Recent(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err, "Failed to list time entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *TimeEntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, h.logger, err, "Failed to delete time entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
