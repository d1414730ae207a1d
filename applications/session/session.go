package session

import (
	"errors"

	"github.com/nebadan/sqa-task-project/storage"
)

// Session is the in-memory record of the currently authenticated actor.
// Its sole durable copy is the storage entry under "currentUser".
type Session struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// ErrInvalidCredentials deliberately carries no detail about which field was
// wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Store owns the current session and mirrors it to the key-value store.
type Store struct {
	kv      *storage.KV
	current *Session
}

func NewStore(kv *storage.KV) *Store {
	return &Store{kv: kv}
}

// Current returns the live session, or nil when nobody is logged in.
func (s *Store) Current() *Session {
	return s.current
}
