// Package notify is the in-process notification center. Deadline warnings are
// persistent: they stay listed until explicitly dismissed.
package notify

import (
	"fmt"
	"sync"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Center struct {
	mu     sync.RWMutex
	byID   map[string]models.Notification
	order  []string
	logger *zap.Logger
	now    func() time.Time
}

func NewCenter(logger *zap.Logger) *Center {
	return &Center{
		byID:   make(map[string]models.Notification),
		logger: logger,
		now:    time.Now,
	}
}

// Publish stores a notification, assigning it an id and timestamp, and
// returns the stored copy.
func (c *Center) Publish(n models.Notification) models.Notification {
	n.ID = uuid.New().String()
	n.CreatedAt = c.now()

	c.mu.Lock()
	c.byID[n.ID] = n
	c.order = append(c.order, n.ID)
	c.mu.Unlock()

	c.logger.Info("Notification published",
		zap.String("user_id", n.UserID),
		zap.String("task_id", n.TaskID),
		zap.String("message", n.Message),
	)
	return n
}

// List returns the user's notifications, newest first.
func (c *Center) List(userID string) []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []models.Notification
	for i := len(c.order) - 1; i >= 0; i-- {
		n, ok := c.byID[c.order[i]]
		if ok && n.UserID == userID {
			result = append(result, n)
		}
	}
	return result
}

// Dismiss removes a notification by id.
func (c *Center) Dismiss(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byID[id]; !ok {
		return fmt.Errorf("notification %s: %w", id, apperr.ErrNotFound)
	}
	delete(c.byID, id)
	return nil
}

// Count returns the number of stored notifications.
func (c *Center) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
