package tui

import (
	"time"

	"github.com/dm/vita/internal/classify"
	"github.com/dm/vita/internal/model"
)

// ChatReplyMsg delivers a successful assistant reply, already classified.
type ChatReplyMsg struct {
	Raw        string
	Result     classify.Result
	ReceivedAt time.Time
}

// ChatErrorMsg signals a failed chat request.
type ChatErrorMsg struct{ Err error }

// OverviewMsg delivers the startup health-data overview.
type OverviewMsg struct{ Overview *model.Overview }

// OverviewErrorMsg signals that the overview fetch failed. Non-fatal: the
// chat still works without it.
type OverviewErrorMsg struct{ Err error }
