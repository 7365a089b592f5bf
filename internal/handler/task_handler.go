package handler

import (
	"encoding/json"
	"net/http"

	"freelancetrack/internal/models"
	"freelancetrack/internal/service"

	"go.uber.org/zap"
)

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(service *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		logger:  logger,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create task")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, err, "Failed to get task")
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// ListWithActuals returns a project's tasks joined with their booked hours and
// variance against the estimates.
func (h *TaskHandler) ListWithActuals(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	projectID := r.URL.Query().Get("project_id")
	if userID == "" || projectID == "" {
		http.Error(w, "Missing user_id or project_id parameter", http.StatusBadRequest)
		return
	}

	tasks, err := h.service.ListWithActuals(r.Context(), userID, projectID)
	if err != nil {
		writeError(w, h.logger, err, "Failed to list tasks")
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.Update(r.Context(), id, &req); err != nil {
		writeError(w, h.logger, err, "Failed to update task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "Missing id parameter", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, h.logger, err, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
