package task

import (
	"encoding/json"
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
	"github.com/nebadan/sqa-task-project/storage"
)

// Load reads the full task collection. Absent or malformed persisted data
// yields an empty collection; the caller never sees an error.
func (s *Store) Load() []Task {
	raw, ok := s.kv.Get(storage.KeyTasks)
	if !ok {
		return []Task{}
	}

	var tasks []Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		logger.Log.Warn(fmt.Sprintf("[task] Persisted tasks are malformed, treating as empty: %v", err))
		return []Task{}
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks
}

// Save persists the full collection, replacing whatever was stored before.
func (s *Store) Save(tasks []Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[task] Failed to marshal %d task(s): %v", len(tasks), err))
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := s.kv.Set(storage.KeyTasks, raw); err != nil {
		logger.Log.Error(fmt.Sprintf("[task] Failed to persist tasks: %v", err))
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

// ByOwner returns the owner's tasks in insertion order. This is the only
// owner filter in the system; the reducer operations themselves are keyed
// purely by task ID.
func (s *Store) ByOwner(email string) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.Load()
	owned := []Task{}
	for _, t := range all {
		if t.UserID == email {
			owned = append(owned, t)
		}
	}

	logger.Log.Info(fmt.Sprintf("[task] Loaded %d of %d task(s) for owner %s.", len(owned), len(all), email))
	return owned
}
