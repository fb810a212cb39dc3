package interview

// Turn is one exchange: the interviewer's outbound message, the
// candidate's reply, and the internal notes the agents produced while
// processing the reply. A turn is immutable once closed; notes are
// append-only while the turn is open.
type Turn struct {
	ID           int // 1-based, strictly increasing, no gaps
	AgentMessage string
	UserMessage  string // empty on the final turn
	Notes        []string

	closed bool
}

// AppendNote adds an internal annotation to an open turn. Notes on a
// closed turn are dropped.
func (t *Turn) AppendNote(note string) {
	if t.closed || note == "" {
		return
	}
	t.Notes = append(t.Notes, note)
}

// Close freezes the turn.
func (t *Turn) Close() {
	t.closed = true
}

// Closed reports whether the turn has been frozen.
func (t *Turn) Closed() bool {
	return t.closed
}
