package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nebadan/sqa-task-project/logger"
)

// Keys used by the application. The whole persisted surface of the app is
// these two entries.
const (
	KeyCurrentUser = "currentUser"
	KeyTasks       = "tasks"
)

// KV is a file-backed key-value store holding raw JSON values, playing the
// role browser localStorage plays for the front-end: a handful of keys, full
// value replacement on every write.
type KV struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Store is the global store handle, assigned by InitStore.
var Store *KV

// InitStore opens the store file and assigns the global Store variable.
func InitStore(path string) error {
	kv, err := Open(path)
	if err != nil {
		return err
	}
	Store = kv
	return nil
}

// Open loads the key-value store at path, creating parent directories as
// needed. A missing or unreadable file starts the store empty; so does a file
// that no longer parses as JSON. Corrupt persisted state must never prevent
// the application from starting.
func Open(path string) (*KV, error) {
	logger.Log.Info(fmt.Sprintf("[storage] Opening key-value store at: %s", path))

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Log.Error(fmt.Sprintf("[storage] Failed to create storage directory %s: %v", dir, err))
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	kv := &KV{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Log.Info("[storage] No existing store file. Starting empty.")
			return kv, nil
		}
		logger.Log.Error(fmt.Sprintf("[storage] Failed to read store file: %v", err))
		return nil, fmt.Errorf("read store file: %w", err)
	}

	if err := json.Unmarshal(raw, &kv.data); err != nil {
		// Treat a corrupt file as absent rather than failing startup.
		logger.Log.Warn(fmt.Sprintf("[storage] Store file is not valid JSON, starting empty: %v", err))
		kv.data = map[string]json.RawMessage{}
		return kv, nil
	}

	logger.Log.Info(fmt.Sprintf("[storage] Store loaded with %d key(s).", len(kv.data)))
	return kv, nil
}

// Get returns the raw JSON stored under key, and whether the key exists.
func (kv *KV) Get(key string) (json.RawMessage, bool) {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	v, ok := kv.data[key]
	return v, ok
}

// Set replaces the value under key and writes the store through to disk.
func (kv *KV) Set(key string, value json.RawMessage) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data[key] = value
	return kv.flush()
}

// Remove deletes key if present. Removing an absent key is a no-op.
func (kv *KV) Remove(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if _, ok := kv.data[key]; !ok {
		return nil
	}
	delete(kv.data, key)
	return kv.flush()
}

// Clear drops every key.
func (kv *KV) Clear() error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.data = map[string]json.RawMessage{}
	return kv.flush()
}

// flush writes the full store to disk. Caller must hold kv.mu.
func (kv *KV) flush() error {
	raw, err := json.Marshal(kv.data)
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[storage] Failed to marshal store: %v", err))
		return fmt.Errorf("marshal store: %w", err)
	}
	if err := os.WriteFile(kv.path, raw, 0644); err != nil {
		logger.Log.Error(fmt.Sprintf("[storage] Failed to write store file: %v", err))
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
