package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) (*KV, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "storage.json")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error opening store: %v", err)
	}
	return kv, path
}

func TestOpen_MissingFileStartsEmpty(t *testing.T) {
	kv, _ := newTestKV(t)

	if _, ok := kv.Get(KeyCurrentUser); ok {
		t.Fatalf("expected empty store, found %q", KeyCurrentUser)
	}
	if _, ok := kv.Get(KeyTasks); ok {
		t.Fatalf("expected empty store, found %q", KeyTasks)
	}
}

func TestOpen_MalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{this is not json"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	kv, err := Open(path)
	if err != nil {
		t.Fatalf("corrupt file must not fail open, got %v", err)
	}
	if _, ok := kv.Get(KeyTasks); ok {
		t.Fatalf("expected empty store after corrupt file")
	}
}

func TestSetGet_PersistsAcrossReopen(t *testing.T) {
	kv, path := newTestKV(t)

	want := json.RawMessage(`{"email":"user@test.com","role":"user","name":"Regular User"}`)
	if err := kv.Set(KeyCurrentUser, want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error reopening: %v", err)
	}
	got, ok := reopened.Get(KeyCurrentUser)
	if !ok {
		t.Fatalf("expected %q to survive reopen", KeyCurrentUser)
	}
	if string(got) != string(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestRemove_AbsentKeyIsNoOp(t *testing.T) {
	kv, _ := newTestKV(t)

	if err := kv.Remove("never-set"); err != nil {
		t.Fatalf("removing an absent key must not error, got %v", err)
	}
}

func TestRemove_DropsKey(t *testing.T) {
	kv, path := newTestKV(t)

	if err := kv.Set(KeyTasks, json.RawMessage(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := kv.Remove(KeyTasks); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := kv.Get(KeyTasks); ok {
		t.Fatalf("expected %q to be gone", KeyTasks)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error reopening: %v", err)
	}
	if _, ok := reopened.Get(KeyTasks); ok {
		t.Fatalf("expected removal to be persisted")
	}
}

func TestClear_DropsEverything(t *testing.T) {
	kv, _ := newTestKV(t)

	if err := kv.Set(KeyCurrentUser, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := kv.Set(KeyTasks, json.RawMessage(`[]`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := kv.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := kv.Get(KeyCurrentUser); ok {
		t.Fatalf("expected store to be empty after clear")
	}
}
