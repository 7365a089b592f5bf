// Package monitor watches in-progress tasks and raises warnings when their
// due date comes within the configured window.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"freelancetrack/internal/models"
	"freelancetrack/internal/query"

	"go.uber.org/zap"
)

// TaskSource lists the tasks to scan.
type TaskSource interface {
	GetAll(ctx context.Context, conds []query.Condition, sort *query.Sort) ([]models.Task, error)
}

// Notifier receives the warnings the monitor emits.
type Notifier interface {
	Publish(n models.Notification) models.Notification
}

// DeadlineMonitor periodically scans in-progress tasks with a due date and
// warns when less than warnWindow remains. With dedup enabled a task is warned
// once while it stays inside the window; otherwise the warning repeats on
// every scan, which was the original "keep nagging" behavior.
type DeadlineMonitor struct {
	tasks      TaskSource
	notifier   Notifier
	interval   time.Duration
	warnWindow time.Duration
	dedup      bool
	logger     *zap.Logger
	now        func() time.Time

	mu     sync.Mutex
	warned map[string]bool

	stopChan chan struct{}
	wg       sync.WaitGroup
}

func NewDeadlineMonitor(
	tasks TaskSource,
	notifier Notifier,
	interval time.Duration,
	warnWindow time.Duration,
	dedup bool,
	logger *zap.Logger,
) *DeadlineMonitor {
	return &DeadlineMonitor{
		tasks:      tasks,
		notifier:   notifier,
		interval:   interval,
		warnWindow: warnWindow,
		dedup:      dedup,
		logger:     logger,
		now:        time.Now,
		warned:     make(map[string]bool),
		stopChan:   make(chan struct{}),
	}
}

// Start begins the repeating scan.
func (m *DeadlineMonitor) Start() {
	m.wg.Add(1)
	go m.scanLoop()

	m.logger.Info("Deadline monitor started",
		zap.Duration("interval", m.interval),
		zap.Duration("warn_window", m.warnWindow),
		zap.Bool("dedup", m.dedup),
	)
}

// Stop cancels the repeating scan.
func (m *DeadlineMonitor) Stop() {
	select {
	case <-m.stopChan:
		return
	default:
		close(m.stopChan)
	}
	m.wg.Wait()
	m.logger.Info("Deadline monitor stopped")
}

func (m *DeadlineMonitor) scanLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.scan(context.Background()); err != nil {
				m.logger.Error("Deadline scan failed", zap.Error(err))
			}
		case <-m.stopChan:
			return
		}
	}
}

// scan evaluates every in-progress task once. It never mutates task state.
func (m *DeadlineMonitor) scan(ctx context.Context) error {
	tasks, err := m.tasks.GetAll(ctx, []query.Condition{
		query.Eq("status", models.TaskInProgress),
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to list in-progress tasks: %w", err)
	}

	now := m.now()
	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}

		remaining := task.DueDate.Sub(now)
		if remaining <= 0 || remaining > m.warnWindow {
			// Out of the window: re-arm so a postponed deadline warns again.
			m.mu.Lock()
			delete(m.warned, task.ID)
			m.mu.Unlock()
			continue
		}

		if m.dedup {
			m.mu.Lock()
			already := m.warned[task.ID]
			m.warned[task.ID] = true
			m.mu.Unlock()
			if already {
				continue
			}
		}

		hoursLeft := int(remaining.Hours())
		m.notifier.Publish(models.Notification{
			UserID:    task.UserID,
			TaskID:    task.ID,
			TaskName:  task.Name,
			HoursLeft: hoursLeft,
			Message:   fmt.Sprintf("Task %q is due in %d hours", task.Name, hoursLeft),
		})
	}

	return nil
}
