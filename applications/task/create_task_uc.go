package task

import (
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
)

// Create validates the fields, appends a fresh pending task owned by
// ownerEmail and persists the collection.
func (s *Store) Create(ownerEmail, title, description, dueDate string) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logger.Log.Info(fmt.Sprintf("[create-task-uc] Starting task creation for owner: %s", ownerEmail))

	title, description, verr := validateFields(title, description)
	if verr != nil {
		logger.Log.Warn(fmt.Sprintf("[create-task-uc] Validation failed: %v", verr))
		return nil, verr
	}

	t := Task{
		ID:          s.nextID(),
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Status:      StatusPending,
		UserID:      ownerEmail,
	}

	tasks := s.Load()
	tasks = append(tasks, t)
	if err := s.Save(tasks); err != nil {
		return nil, err
	}

	logger.Log.Info(fmt.Sprintf("[create-task-uc] Task %s created for %s. Collection size: %d.", t.ID, ownerEmail, len(tasks)))
	return &t, nil
}
