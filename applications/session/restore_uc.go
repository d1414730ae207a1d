package session

import (
	"encoding/json"
	"fmt"

	"github.com/nebadan/sqa-task-project/logger"
	"github.com/nebadan/sqa-task-project/storage"
)

// Restore rehydrates the session persisted under "currentUser", typically at
// startup. It returns nil when nothing usable is stored; malformed data is
// treated the same as absent data.
func (s *Store) Restore() *Session {
	raw, ok := s.kv.Get(storage.KeyCurrentUser)
	if !ok {
		logger.Log.Info("[session] No persisted session to restore.")
		return nil
	}

	sess := &Session{}
	if err := json.Unmarshal(raw, sess); err != nil {
		logger.Log.Warn(fmt.Sprintf("[session] Persisted session is malformed, ignoring: %v", err))
		return nil
	}
	if sess.Email == "" {
		logger.Log.Warn("[session] Persisted session has no email, ignoring.")
		return nil
	}

	s.current = sess
	logger.Log.Info(fmt.Sprintf("[session] Session restored for %s. Role: %s.", sess.Email, sess.Role))
	return sess
}
