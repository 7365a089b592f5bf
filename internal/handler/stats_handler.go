package handler

import (
	"net/http"
	"strconv"
	"time"

	"freelancetrack/internal/service"
	"freelancetrack/internal/stats"

	"go.uber.org/zap"
)

type StatsHandler struct {
	service *service.StatsService
	logger  *zap.Logger
}

func NewStatsHandler(service *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger,
	}
}

// Dashboard returns rollups over the trailing N days (default 30), plus the
// top-5 projects by hours.
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "Missing user_id parameter", http.StatusBadRequest)
		return
	}

	days := 30
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		d, err := strconv.Atoi(daysStr)
		if err != nil || d <= 0 {
			http.Error(w, "Invalid days parameter", http.StatusBadRequest)
			return
		}
		days = d
	}

	result, err := h.service.Dashboard(r.Context(), userID, days)
	if err != nil {
		writeError(w, h.logger, err, "Failed to compute statistics")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"statistics":   result,
		"top_projects": stats.TopProjects(result, 5),
	})
}

// IncomeReport returns rollups and export datasets over an explicit date
// range (from/to as YYYY-MM-DD), optionally restricted to one project.
func (h *StatsHandler) IncomeReport(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		http.Error(w, "Missing user_id parameter", http.StatusBadRequest)
		return
	}

	from, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("from"), time.Local)
	if err != nil {
		http.Error(w, "Invalid from parameter", http.StatusBadRequest)
		return
	}
	to, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("to"), time.Local)
	if err != nil {
		http.Error(w, "Invalid to parameter", http.StatusBadRequest)
		return
	}

	result, report, err := h.service.IncomeReport(r.Context(), userID, from, to, r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to compute income report")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"statistics": result,
		"export":     report,
	})
}
