package task

import (
	"strconv"
	"sync"
	"time"

	"github.com/nebadan/sqa-task-project/storage"
)

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
	UserID      string `json:"userId"` // owner's email, immutable after creation
}

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Store owns the persisted task collection. All mutation goes through the
// reducer use cases; nothing else touches the "tasks" entry.
type Store struct {
	mu     sync.Mutex
	kv     *storage.KV
	lastID int64
}

func NewStore(kv *storage.KV) *Store {
	return &Store{kv: kv}
}

// nextID returns a fresh millisecond-timestamp ID. Two creations landing on
// the same millisecond still get distinct IDs.
func (s *Store) nextID() string {
	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}
