// Package session generates the per-process chat session identifier. The
// agent uses it purely to correlate requests server-side: it is created once
// at startup and read-only afterwards.
package session

import "github.com/google/uuid"

const idPrefix = "sess-"

// NewID returns a fresh random session identifier.
func NewID() string {
	return idPrefix + uuid.NewString()
}
