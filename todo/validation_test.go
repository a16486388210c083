package todo

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateText(t *testing.T) {
	if err := ValidateText("buy milk"); err != nil {
		t.Errorf("expected valid text, got %v", err)
	}
	if err := ValidateText(""); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText, got %v", err)
	}
	if err := ValidateText("   "); !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected ErrEmptyText for whitespace, got %v", err)
	}
	if err := ValidateText(strings.Repeat("x", MaxTextLength)); err != nil {
		t.Errorf("expected max-length text to be valid, got %v", err)
	}
	if err := ValidateText(strings.Repeat("x", MaxTextLength+1)); !errors.Is(err, ErrTextTooLong) {
		t.Errorf("expected ErrTextTooLong, got %v", err)
	}
}

func TestParseFilter(t *testing.T) {
	cases := []struct {
		input    string
		expected Filter
	}{
		{"", FilterAll},
		{"all", FilterAll},
		{"active", FilterActive},
		{"completed", FilterCompleted},
		{" Completed ", FilterCompleted},
		{"ACTIVE", FilterActive},
	}

	for _, tc := range cases {
		got, err := ParseFilter(tc.input)
		if err != nil {
			t.Errorf("ParseFilter(%q): %v", tc.input, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseFilter(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}

	if _, err := ParseFilter("bogus"); !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestFilterIsValid(t *testing.T) {
	for _, filter := range ValidFilters() {
		if !filter.IsValid() {
			t.Errorf("expected %q to be valid", filter)
		}
	}
	if Filter("bogus").IsValid() {
		t.Error("expected bogus filter to be invalid")
	}
}
