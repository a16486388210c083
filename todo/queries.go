package todo

import "sort"

// TotalCount returns the number of tasks.
func (s *Store) TotalCount() int {
	return len(s.data.Todos)
}

// CompletedCount returns the number of completed tasks.
func (s *Store) CompletedCount() int {
	count := 0
	for _, t := range s.data.Todos {
		if t.Completed {
			count++
		}
	}
	return count
}

// ActiveCount returns the number of tasks not yet completed.
func (s *Store) ActiveCount() int {
	return s.TotalCount() - s.CompletedCount()
}

// Visible returns the tasks matching filter in display order: active tasks
// before completed ones, newest first within each partition. Tasks with
// equal completion state and creation time keep their relative insertion
// order (the sort is stable).
func (s *Store) Visible(filter Filter) []Todo {
	visible := make([]Todo, 0, len(s.data.Todos))
	for _, t := range s.data.Todos {
		switch filter {
		case FilterActive:
			if t.Completed {
				continue
			}
		case FilterCompleted:
			if !t.Completed {
				continue
			}
		}
		visible = append(visible, t)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].Completed != visible[j].Completed {
			return !visible[i].Completed
		}
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	return visible
}
