package handler

import (
	"encoding/json"
	"net/http"

	"freelancetrack/internal/timer"

	"go.uber.org/zap"
)

type TimerHandler struct {
	manager *timer.Manager
	logger  *zap.Logger
}

func NewTimerHandler(manager *timer.Manager, logger *zap.Logger) *TimerHandler {
	return &TimerHandler{
		manager: manager,
		logger:  logger,
	}
}

type timerStartRequest struct {
	UserID    string `json:"user_id"`
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
}

func (h *TimerHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req timerStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.manager.Start(req.UserID, req.ProjectID, req.TaskID); err != nil {
		writeError(w, h.logger, err, "Failed to start tracking")
		return
	}

	writeJSON(w, http.StatusOK, h.manager.Status(req.UserID))
}

// Stop ends the session and returns the persisted time entry.
func (h *TimerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "Missing user_id parameter", http.StatusBadRequest)
		return
	}

	entry, err := h.manager.Stop(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err, "Failed to stop tracking")
		return
	}

	writeJSON(w, http.StatusOK, entry)
}

// Cancel discards the session without saving.
func (h *TimerHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "Missing user_id parameter", http.StatusBadRequest)
		return
	}

	h.manager.Cancel(userID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *TimerHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "Missing user_id parameter", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.manager.Status(userID))
}
