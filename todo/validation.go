package todo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyText is returned when task text is empty or whitespace-only.
	ErrEmptyText = errors.New("text cannot be empty")

	// ErrTextTooLong is returned when task text exceeds MaxTextLength.
	ErrTextTooLong = errors.New("text exceeds maximum length")

	// ErrTodoNotFound is returned when no task matches the given ID.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrInvalidFilter is returned when an unknown filter value is provided.
	ErrInvalidFilter = errors.New("invalid filter")
)

// ValidateText checks that trimmed task text is acceptable.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyText
	}
	if len(text) > MaxTextLength {
		return fmt.Errorf("%w: %d > %d", ErrTextTooLong, len(text), MaxTextLength)
	}
	return nil
}

// ParseFilter normalizes and validates a filter value.
func ParseFilter(value string) (Filter, error) {
	filter := Filter(strings.ToLower(strings.TrimSpace(value)))
	if filter == "" {
		return FilterAll, nil
	}
	if !filter.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidFilter, value, validFilterList())
	}
	return filter, nil
}

func validFilterList() string {
	filters := ValidFilters()
	values := make([]string, 0, len(filters))
	for _, filter := range filters {
		values = append(values, string(filter))
	}
	return strings.Join(values, ", ")
}
