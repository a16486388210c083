package todo

import (
	"github.com/tmcli/tm/internal/storage"
)

// DataKey is the storage key holding the task list snapshot.
const DataKey = "todos"

// Store owns the canonical task list. All mutations replace the in-memory
// snapshot with a fresh one and write the whole snapshot through the storage
// layer; prior snapshots handed out to callers are never mutated.
type Store struct {
	storage *storage.Store
	data    AppData
}

// Open loads the persisted task list. A nil storage store yields an
// in-memory-only list, used by tests and callers that manage persistence
// themselves.
func Open(st *storage.Store) *Store {
	store := &Store{storage: st}
	if st != nil {
		store.data = storage.Load(st, DataKey, AppData{})
	}
	return store
}

// Todos returns a copy of the current snapshot in insertion order.
func (s *Store) Todos() []Todo {
	todos := make([]Todo, len(s.data.Todos))
	copy(todos, s.data.Todos)
	return todos
}

// Find returns the task with the given ID, or nil if absent.
func (s *Store) Find(id string) *Todo {
	for i := range s.data.Todos {
		if s.data.Todos[i].ID == id {
			found := s.data.Todos[i]
			return &found
		}
	}
	return nil
}

// setTodos installs a new snapshot and persists it whole.
func (s *Store) setTodos(todos []Todo) {
	s.data = AppData{Todos: todos}
	if s.storage != nil {
		storage.Save(s.storage, DataKey, s.data)
	}
}
