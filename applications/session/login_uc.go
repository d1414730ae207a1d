package session

import (
	"encoding/json"
	"fmt"

	"github.com/nebadan/sqa-task-project/applications/user"
	"github.com/nebadan/sqa-task-project/logger"
	"github.com/nebadan/sqa-task-project/storage"
)

// Login checks the credentials against the fixed account table.
//
// On success the current session is replaced and persisted. On failure any
// existing session is left exactly as it was.
func (s *Store) Login(email, password string) (*Session, error) {
	logger.Log.Info(fmt.Sprintf("[session] Login attempt started for email: %s", email))

	// 1. Retrieve the account record by email
	u, err := user.GetUserByEmail(email)
	if err != nil {
		logger.Log.Warn(fmt.Sprintf("[session] Login failed for %s: account not found.", email))
		return nil, ErrInvalidCredentials
	}

	// 2. Exact-match password comparison. Accounts are hardcoded demo
	// credentials, so there is no hashing step here.
	if u.Password != password {
		logger.Log.Warn(fmt.Sprintf("[session] Login failed for %s: password mismatch.", email))
		return nil, ErrInvalidCredentials
	}

	sess := &Session{
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
	}

	// 3. Persist the session as the new "currentUser" entry.
	raw, err := json.Marshal(sess)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[session] Failed to marshal session for %s: %v", email, err))
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.kv.Set(storage.KeyCurrentUser, raw); err != nil {
		logger.Log.Error(fmt.Sprintf("[session] Failed to persist session for %s: %v", email, err))
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.current = sess
	logger.Log.Info(fmt.Sprintf("[session] Login successful for %s. Role: %s.", email, sess.Role))
	return sess, nil
}
