package ui

import "testing"

func TestUniqueIDPrefixLengths(t *testing.T) {
	ids := []string{"abc123", "abd456", "xyz789"}

	lengths := UniqueIDPrefixLengths(ids)

	if lengths["abc123"] != 3 {
		t.Errorf("expected prefix 3 for abc123, got %d", lengths["abc123"])
	}
	if lengths["abd456"] != 3 {
		t.Errorf("expected prefix 3 for abd456, got %d", lengths["abd456"])
	}
	if lengths["xyz789"] != 1 {
		t.Errorf("expected prefix 1 for xyz789, got %d", lengths["xyz789"])
	}
}

func TestUniqueIDPrefixLengthsNestedPrefix(t *testing.T) {
	lengths := UniqueIDPrefixLengths([]string{"ab", "abc"})

	// "ab" has no prefix that is not also a prefix of "abc"; it caps at
	// its own length.
	if lengths["ab"] != 2 {
		t.Errorf("expected prefix 2 for ab, got %d", lengths["ab"])
	}
	if lengths["abc"] != 3 {
		t.Errorf("expected prefix 3 for abc, got %d", lengths["abc"])
	}
}

func TestUniqueIDPrefixLengthsSingleID(t *testing.T) {
	lengths := UniqueIDPrefixLengths([]string{"abc123"})

	if lengths["abc123"] != 1 {
		t.Errorf("expected prefix 1 for sole id, got %d", lengths["abc123"])
	}
}

func TestPrefixLength(t *testing.T) {
	tests := []struct {
		name   string
		length map[string]int
		id     string
		want   int
	}{
		{
			name:   "case insensitive lookup",
			length: map[string]int{"abc123": 4},
			id:     "ABC123",
			want:   4,
		},
		{
			name:   "missing id",
			length: map[string]int{"abc123": 4},
			id:     "",
			want:   0,
		},
		{
			name:   "nil map",
			length: nil,
			id:     "ABC123",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrefixLength(tt.length, tt.id); got != tt.want {
				t.Fatalf("PrefixLength() = %d, want %d", got, tt.want)
			}
		})
	}
}
