package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freelancetrack/internal/config"
	"freelancetrack/internal/database"
	"freelancetrack/internal/handler"
	"freelancetrack/internal/logger"
	"freelancetrack/internal/monitor"
	"freelancetrack/internal/notify"
	"freelancetrack/internal/repository"
	"freelancetrack/internal/router"
	"freelancetrack/internal/service"
	"freelancetrack/internal/timer"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config/local.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("Starting freelancetrack",
		zap.String("env", cfg.Env),
		zap.String("config_path", *configPath),
	)

	db, err := database.New(cfg.StoragePath, log.Logger)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories over the shared connection
	projectRepo := repository.NewProjectRepository(db.DB)
	taskRepo := repository.NewTaskRepository(db.DB)
	entryRepo := repository.NewTimeEntryRepository(db.DB)

	// Services
	projectService := service.NewProjectService(projectRepo, log.Logger)
	taskService := service.NewTaskService(taskRepo, entryRepo, log.Logger)
	entryService := service.NewEntryService(entryRepo, log.Logger)
	statsService := service.NewStatsService(projectRepo, entryRepo, log.Logger)

	// Timer sessions
	timerManager := timer.NewManager(
		entryRepo,
		time.Duration(cfg.Timer.TickInterval)*time.Second,
		log.Logger,
	)

	// Deadline warnings
	notifyCenter := notify.NewCenter(log.Logger)
	deadlineMonitor := monitor.NewDeadlineMonitor(
		taskRepo,
		notifyCenter,
		time.Duration(cfg.Deadline.ScanInterval)*time.Second,
		time.Duration(cfg.Deadline.WarnWindow)*time.Hour,
		cfg.Deadline.Dedup,
		log.Logger,
	)
	deadlineMonitor.Start()

	// HTTP server
	handlers := router.Handlers{
		Projects:      handler.NewProjectHandler(projectService, log.Logger),
		Tasks:         handler.NewTaskHandler(taskService, log.Logger),
		TimeEntries:   handler.NewTimeEntryHandler(entryService, log.Logger),
		Stats:         handler.NewStatsHandler(statsService, log.Logger),
		Timer:         handler.NewTimerHandler(timerManager, log.Logger),
		Notifications: handler.NewNotificationHandler(notifyCenter, log.Logger),
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router.New(handlers, log.Logger),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", zap.Error(err))
		}
	}()

	log.Info("freelancetrack started successfully")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Received shutdown signal", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn("HTTP server shutdown error", zap.Error(err))
	} else {
		log.Info("HTTP server stopped")
	}

	deadlineMonitor.Stop()
	timerManager.Shutdown()

	log.Info("freelancetrack stopped")
}
