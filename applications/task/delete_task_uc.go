package task

import (
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
)

// Delete removes the task with the given ID. A missing ID is not an error,
// which makes delete idempotent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Log.Info(fmt.Sprintf("[delete-task-uc] Deleting task: %s", id))

	tasks := s.Load()
	kept := tasks[:0:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if len(kept) == len(tasks) {
		logger.Log.Info(fmt.Sprintf("[delete-task-uc] Task %s was not present. Nothing to do.", id))
		return nil
	}

	if err := s.Save(kept); err != nil {
		return err
	}

	logger.Log.Info(fmt.Sprintf("[delete-task-uc] Task %s removed. Collection size: %d.", id, len(kept)))
	return nil
}
