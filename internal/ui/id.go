package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var idPrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)

// HighlightID emphasizes the unique prefix of an ID.
func HighlightID(id string, prefixLen int) string {
	if prefixLen <= 0 || prefixLen > len(id) {
		return id
	}
	return idPrefixStyle.Render(id[:prefixLen]) + id[prefixLen:]
}

// PrefixLength looks up the unique prefix length for id, case-insensitively.
func PrefixLength(lengths map[string]int, id string) int {
	if len(lengths) == 0 || id == "" {
		return 0
	}
	return lengths[strings.ToLower(id)]
}

// UniqueIDPrefixLengths returns the shortest unique prefix length for each
// ID. An ID's shortest unique prefix is one character longer than its
// longest prefix shared with any other ID, which in sorted order is always
// a neighbor.
func UniqueIDPrefixLengths(ids []string) map[string]int {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		lower := strings.ToLower(id)
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		unique = append(unique, lower)
	}
	sort.Strings(unique)

	lengths := make(map[string]int, len(unique))
	for i, id := range unique {
		shared := 0
		if i > 0 {
			shared = commonPrefixLen(id, unique[i-1])
		}
		if i < len(unique)-1 {
			if next := commonPrefixLen(id, unique[i+1]); next > shared {
				shared = next
			}
		}
		length := shared + 1
		if length > len(id) {
			length = len(id)
		}
		lengths[id] = length
	}
	return lengths
}

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
