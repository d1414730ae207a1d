package task

import (
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
)

// Edit updates title, description and due date of the task with the given
// ID. Status and owner are never touched. The lookup is keyed purely by ID;
// the caller is responsible for only passing IDs from its own filtered view.
func (s *Store) Edit(id, title, description, dueDate string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Log.Info(fmt.Sprintf("[edit-task-uc] Starting edit for task: %s", id))

	title, description, verr := validateFields(title, description)
	if verr != nil {
		logger.Log.Warn(fmt.Sprintf("[edit-task-uc] Validation failed for task %s: %v", id, verr))
		return nil, verr
	}

	tasks := s.Load()
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Title = title
		tasks[i].Description = description
		tasks[i].DueDate = dueDate

		if err := s.Save(tasks); err != nil {
			return nil, err
		}

		t := tasks[i]
		logger.Log.Info(fmt.Sprintf("[edit-task-uc] Task %s updated.", id))
		return &t, nil
	}

	logger.Log.Warn(fmt.Sprintf("[edit-task-uc] Task %s not found.", id))
	return nil, ErrTaskNotFound
}
