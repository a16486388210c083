// Package ids generates opaque identifiers for todos and session messages.
//
// IDs are generated client-side and are unique within one local list; no
// cross-device collision guarantee is made or needed.
package ids

import "github.com/google/uuid"

// New returns a fresh opaque identifier.
func New() string {
	return uuid.NewString()
}
