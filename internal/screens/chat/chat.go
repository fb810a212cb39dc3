// Package chat is the interview conversation screen: a transcript, a
// single-line input, and (in debug mode) the agents' internal debate
// notes inlined under each exchange.
package chat

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/crucible/internal/engine"
	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/router"
	"github.com/abhisek/crucible/internal/screen"
	"github.com/abhisek/crucible/internal/screens/report"
	"github.com/abhisek/crucible/internal/ui/components"
	"github.com/abhisek/crucible/internal/ui/layout"
)

type speaker int

const (
	speakerInterviewer speaker = iota
	speakerCandidate
)

// entry is one rendered transcript item with its optional debug notes.
type entry struct {
	speaker speaker
	text    string
	notes   []string
}

// ChatScreen implements screen.Screen for the live interview.
type ChatScreen struct {
	eng       *engine.Engine
	candidate interview.Candidate
	debug     bool

	input   components.TextInput
	entries []entry

	waiting      bool
	spinnerFrame int
	done         bool
	errMsg       string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.HeaderStatsProvider = (*ChatScreen)(nil)

// New creates the chat screen for one interview session.
func New(eng *engine.Engine, c interview.Candidate, debug bool) *ChatScreen {
	return &ChatScreen{
		eng:       eng,
		candidate: c,
		debug:     debug,
		input:     components.NewTextInput("Type your reply...", false, 0),
		waiting:   true,
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startSession(),
		s.input.Init(),
		spinnerTick(),
	)
}

func (s *ChatScreen) Title() string {
	return fmt.Sprintf("Interview — %s", s.candidate.Name)
}

func (s *ChatScreen) HeaderStats() string {
	st := s.eng.State()
	if st == nil {
		return ""
	}
	return fmt.Sprintf("turn %d/%d · %s", st.TurnCount, st.MaxTurns, st.Protocol)
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	if s.done || s.errMsg != "" {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	if s.waiting {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleSessionReady(msg)

	case turnDoneMsg:
		return s.handleTurnDone(msg)

	case spinnerTickMsg:
		if !s.waiting {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s.submit()
		}
	}

	if !s.waiting && !s.done {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.appendResult(msg.Res)
	if msg.Res.Done {
		return s.finish(msg.Res)
	}
	return s, nil
}

func (s *ChatScreen) handleTurnDone(msg turnDoneMsg) (screen.Screen, tea.Cmd) {
	s.waiting = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.appendResult(msg.Res)
	if msg.Res.Done {
		return s.finish(msg.Res)
	}
	return s, nil
}

// appendResult adds the interviewer's message (and, in debug mode, the
// turn's internal notes) to the transcript.
func (s *ChatScreen) appendResult(res *engine.TurnResult) {
	e := entry{speaker: speakerInterviewer, text: res.Message}
	if res.Message == "" {
		e.text = "(the interview has ended)"
	}
	if s.debug {
		e.notes = res.Notes
	}
	s.entries = append(s.entries, e)
}

func (s *ChatScreen) finish(res *engine.TurnResult) (screen.Screen, tea.Cmd) {
	s.done = true
	verdict := res.Verdict
	logPath := res.LogPath
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: report.New(verdict, logPath),
		}
	}
}

func (s *ChatScreen) submit() (screen.Screen, tea.Cmd) {
	if s.waiting || s.done || s.errMsg != "" {
		return s, nil
	}
	text := s.input.Value()
	if text == "" {
		return s, nil
	}

	s.entries = append(s.entries, entry{speaker: speakerCandidate, text: text})
	s.input = components.NewTextInput("Type your reply...", false, 0)
	s.waiting = true

	return s, tea.Batch(
		s.processMessage(text),
		s.input.Init(),
		spinnerTick(),
	)
}

func (s *ChatScreen) startSession() tea.Cmd {
	return func() tea.Msg {
		res, err := s.eng.Start(context.Background(), s.candidate)
		return sessionReadyMsg{Res: res, Err: err}
	}
}

func (s *ChatScreen) processMessage(text string) tea.Cmd {
	return func() tea.Msg {
		res, err := s.eng.ProcessMessage(context.Background(), text)
		return turnDoneMsg{Res: res, Err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
