package session

import (
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
	"github.com/nebadan/sqa-task-project/storage"
)

// Logout clears the in-memory session and its persisted copy. Logging out
// with no session is harmless.
func (s *Store) Logout() error {
	if s.current != nil {
		logger.Log.Info(fmt.Sprintf("[session] Logging out %s.", s.current.Email))
	} else {
		logger.Log.Info("[session] Logout requested with no active session.")
	}

	s.current = nil
	if err := s.kv.Remove(storage.KeyCurrentUser); err != nil {
		logger.Log.Error(fmt.Sprintf("[session] Failed to remove persisted session: %v", err))
		return fmt.Errorf("remove persisted session: %w", err)
	}
	return nil
}
