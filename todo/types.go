// Package todo implements the canonical task list.
//
// The Store owns an in-memory snapshot of the list and writes the whole
// snapshot to persistent storage after every mutation. Records are prepended
// on creation, identified by opaque unique IDs, and never archived or
// soft-deleted.
package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is a unique opaque identifier, generated at creation and never reused.
	ID string `json:"id"`

	// Text is the task description (never blank, max 200 chars).
	Text string `json:"text"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed"`

	// CreatedAt is when the task was created. Edits never change it.
	CreatedAt time.Time `json:"created_at"`

	// AIGenerated marks tasks produced by the assistant.
	AIGenerated bool `json:"ai_generated,omitempty"`
}

// AppData is the persisted snapshot. Insertion order is the only order
// stored; display order is computed on demand.
type AppData struct {
	Todos []Todo `json:"todos"`
}

// Filter selects which tasks are visible.
type Filter string

const (
	// FilterAll shows every task.
	FilterAll Filter = "all"

	// FilterActive shows tasks that are not completed.
	FilterActive Filter = "active"

	// FilterCompleted shows completed tasks.
	FilterCompleted Filter = "completed"
)

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// IsValid returns true if the filter is a known valid value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// MaxTextLength is the maximum allowed length for task text.
const MaxTextLength = 200
