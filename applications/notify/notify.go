package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nebadan/sqa-task-project/logger"
)

// Notice is a transient floating notification.
type Notice struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Notifier holds at most one live notice and dismisses it after a fixed
// interval. Pushing a new notice replaces the old one and cancels its
// pending dismissal, so a stale timer can never clear the replacement.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *Notice
	timer   *time.Timer
}

func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

// Push replaces the current notice and schedules its auto-dismiss.
func (n *Notifier) Push(message string) Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	notice := Notice{ID: uuid.New().String(), Message: message}
	n.current = &notice

	logger.Log.Info(fmt.Sprintf("[notify] Notice %s pushed: %s", notice.ID, message))

	id := notice.ID
	n.timer = time.AfterFunc(n.ttl, func() {
		n.dismiss(id)
	})

	return notice
}

// Current returns the live notice, or nil once it has been dismissed.
func (n *Notifier) Current() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.current
}

// Clear drops the live notice immediately.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = nil
}

// dismiss clears the notice only if it is still the live one.
func (n *Notifier) dismiss(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current != nil && n.current.ID == id {
		logger.Log.Info(fmt.Sprintf("[notify] Notice %s auto-dismissed.", id))
		n.current = nil
	}
}
