package task

import (
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
)

// Complete marks the task completed. It does not require the task to be
// pending, so completing an already-completed task is a no-op that still
// succeeds. There is no way back to pending.
func (s *Store) Complete(id string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Log.Info(fmt.Sprintf("[complete-task-uc] Completing task: %s", id))

	tasks := s.Load()
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Status = StatusCompleted

		if err := s.Save(tasks); err != nil {
			return nil, err
		}

		t := tasks[i]
		logger.Log.Info(fmt.Sprintf("[complete-task-uc] Task %s is now %s.", id, t.Status))
		return &t, nil
	}

	logger.Log.Warn(fmt.Sprintf("[complete-task-uc] Task %s not found.", id))
	return nil, ErrTaskNotFound
}
