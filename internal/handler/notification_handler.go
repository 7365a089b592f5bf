package handler

import (
	"net/http"

	"freelancetrack/internal/notify"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	center *notify.Center
	logger *zap.Logger
}

func NewNotificationHandler(center *notify.Center, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		center: center,
		logger: logger,
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "Missing user_id parameter", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.center.List(userID))
}

func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	if err := h.center.Dismiss(id); err != nil {
		writeError(w, h.logger, err, "Failed to dismiss notification")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
