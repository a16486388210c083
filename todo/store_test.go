package todo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tmcli/tm/internal/storage"
)

func TestOpenLoadsPersistedSnapshot(t *testing.T) {
	dir := t.TempDir()
	st := storage.NewStore(dir)

	store := Open(st)
	if _, err := store.Add("buy milk"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Add("call dentist"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	reopened := Open(storage.NewStore(dir))
	todos := reopened.Todos()
	if len(todos) != 2 {
		t.Fatalf("expected 2 todos after reopen, got %d", len(todos))
	}
	if todos[0].Text != "call dentist" || todos[1].Text != "buy milk" {
		t.Errorf("unexpected order after reopen: %q, %q", todos[0].Text, todos[1].Text)
	}
}

func TestEveryMutationPersists(t *testing.T) {
	dir := t.TempDir()
	store := Open(storage.NewStore(dir))

	created, err := store.Add("buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := store.Toggle(created.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	reopened := Open(storage.NewStore(dir))
	todos := reopened.Todos()
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	if !todos[0].Completed {
		t.Error("toggle must be persisted")
	}

	if removed := store.ClearCompleted(); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if got := Open(storage.NewStore(dir)).TotalCount(); got != 0 {
		t.Errorf("clear must be persisted, got %d todos", got)
	}
}

func TestOpenWithCorruptSnapshotFallsBackToEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DataKey+".json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("write corrupt snapshot: %v", err)
	}

	store := Open(storage.NewStore(dir))
	if got := store.TotalCount(); got != 0 {
		t.Fatalf("expected empty list from corrupt snapshot, got %d todos", got)
	}
}

func TestFind(t *testing.T) {
	store := Open(nil)
	created, err := store.Add("buy milk")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	found := store.Find(created.ID)
	if found == nil {
		t.Fatal("expected to find todo")
	}
	if found.Text != "buy milk" {
		t.Errorf("found wrong todo: %q", found.Text)
	}

	if store.Find("no-such-id") != nil {
		t.Error("expected nil for absent ID")
	}
}
