package chat

import (
	"time"

	"github.com/abhisek/crucible/internal/engine"
)

// sessionReadyMsg is sent when the engine has generated the plan and
// the greeting.
type sessionReadyMsg struct {
	Res *engine.TurnResult
	Err error
}

// turnDoneMsg is sent when the engine has finished processing one
// candidate message.
type turnDoneMsg struct {
	Res *engine.TurnResult
	Err error
}

// spinnerTickMsg animates the thinking indicator.
type spinnerTickMsg time.Time
