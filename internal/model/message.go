package model

import (
	"time"

	"github.com/dm/vita/internal/classify"
)

// Role identifies who produced a transcript message.
type Role int

const (
	RoleUser Role = iota
	RoleAssistant
	RoleNotice
)

// Message is a single transcript entry. Content always holds the raw text;
// Result is populated for assistant messages only and drives how the entry
// is rendered.
type Message struct {
	Role    Role
	Content string
	Result  classify.Result
	SentAt  time.Time
}
