package router

import (
	"net/http"

	"freelancetrack/internal/handler"

	"go.uber.org/zap"
)

type Handlers struct {
	Projects      *handler.ProjectHandler
	Tasks         *handler.TaskHandler
	TimeEntries   *handler.TimeEntryHandler
	Stats         *handler.StatsHandler
	Timer         *handler.TimerHandler
	Notifications *handler.NotificationHandler
}

func New(h Handlers, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.Projects.Create(w, r)
		case http.MethodGet:
			if r.URL.Query().Get("id") != "" {
				h.Projects.Get(w, r)
			} else {
				h.Projects.List(w, r)
			}
		case http.MethodPut:
			h.Projects.Update(w, r)
		case http.MethodDelete:
			h.Projects.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.Tasks.Create(w, r)
		case http.MethodGet:
			if r.URL.Query().Get("id") != "" {
				h.Tasks.Get(w, r)
			} else {
				h.Tasks.ListWithActuals(w, r)
			}
		case http.MethodPut:
			h.Tasks.Update(w, r)
		case http.MethodDelete:
			h.Tasks.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/v1/time-entries", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			h.TimeEntries.Create(w, r)
		case http.MethodGet:
			h.TimeEntries.List(w, r)
		case http.MethodDelete:
			h.TimeEntries.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/v1/stats/dashboard", h.Stats.Dashboard)
	mux.HandleFunc("/api/v1/stats/income", h.Stats.IncomeReport)

	mux.HandleFunc("/api/v1/timer/start", h.Timer.Start)
	mux.HandleFunc("/api/v1/timer/stop", h.Timer.Stop)
	mux.HandleFunc("/api/v1/timer/cancel", h.Timer.Cancel)
	mux.HandleFunc("/api/v1/timer/status", h.Timer.Status)

	mux.HandleFunc("/api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Notifications.List(w, r)
		case http.MethodDelete:
			h.Notifications.Dismiss(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Logging middleware
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		mux.ServeHTTP(w, r)
	})
}
