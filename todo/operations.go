package todo

import (
	"strings"
	"time"

	"github.com/tmcli/tm/internal/ids"
)

// Add creates a new task from text and prepends it to the list.
// Blank text is rejected with ErrEmptyText and the list is left unchanged.
func (s *Store) Add(text string) (*Todo, error) {
	text = strings.TrimSpace(text)
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	created := Todo{
		ID:        ids.New(),
		Text:      text,
		CreatedAt: time.Now(),
	}

	todos := make([]Todo, 0, len(s.data.Todos)+1)
	todos = append(todos, created)
	todos = append(todos, s.data.Todos...)
	s.setTodos(todos)

	return &created, nil
}

// Toggle flips the completed state of the task matching id.
// An absent id leaves the list unchanged and returns ErrTodoNotFound.
func (s *Store) Toggle(id string) (*Todo, error) {
	return s.update(id, func(t *Todo) {
		t.Completed = !t.Completed
	})
}

// Edit replaces the text of the task matching id. The caller is responsible
// for trimming and validating the new text before calling; CreatedAt is
// never changed by an edit.
func (s *Store) Edit(id, text string) (*Todo, error) {
	return s.update(id, func(t *Todo) {
		t.Text = text
	})
}

// Delete removes the task matching id.
// An absent id leaves the list unchanged and returns ErrTodoNotFound.
func (s *Store) Delete(id string) error {
	index := s.indexOf(id)
	if index < 0 {
		return ErrTodoNotFound
	}

	todos := make([]Todo, 0, len(s.data.Todos)-1)
	todos = append(todos, s.data.Todos[:index]...)
	todos = append(todos, s.data.Todos[index+1:]...)
	s.setTodos(todos)

	return nil
}

// BulkInsert prepends the given tasks ahead of existing ones, preserving
// their relative order.
func (s *Store) BulkInsert(inserted []Todo) {
	if len(inserted) == 0 {
		return
	}

	todos := make([]Todo, 0, len(inserted)+len(s.data.Todos))
	todos = append(todos, inserted...)
	todos = append(todos, s.data.Todos...)
	s.setTodos(todos)
}

// ClearCompleted removes every completed task and returns how many were
// removed.
func (s *Store) ClearCompleted() int {
	todos := make([]Todo, 0, len(s.data.Todos))
	for _, t := range s.data.Todos {
		if !t.Completed {
			todos = append(todos, t)
		}
	}

	removed := len(s.data.Todos) - len(todos)
	if removed > 0 {
		s.setTodos(todos)
	}
	return removed
}

func (s *Store) update(id string, apply func(*Todo)) (*Todo, error) {
	index := s.indexOf(id)
	if index < 0 {
		return nil, ErrTodoNotFound
	}

	todos := make([]Todo, len(s.data.Todos))
	copy(todos, s.data.Todos)
	apply(&todos[index])
	updated := todos[index]
	s.setTodos(todos)

	return &updated, nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.data.Todos {
		if s.data.Todos[i].ID == id {
			return i
		}
	}
	return -1
}
