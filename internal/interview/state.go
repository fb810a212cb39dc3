package interview

import "time"

// DefaultMaxTurns bounds the session length when no override is supplied.
const DefaultMaxTurns = 10

// neutralScore is substituted into the score window when an evaluation
// is degraded (evaluator failure or out-of-range output).
const neutralScore = 5

// scoreWindowSize is the trailing window of technical scores the planner
// inspects for protocol transitions. The window spans topic boundaries.
const scoreWindowSize = 2

// BehavioralContext accumulates affect signals across the session.
// Demeanor and stress reflect the most recent behavioral evaluation;
// the counters only ever grow.
type BehavioralContext struct {
	Demeanor           Demeanor
	StressLevel        Level
	HallucinationCount int
	OffTopicCount      int
	ContradictionCount int
}

// SessionState is the single mutable aggregate for one interview.
// Mutation points are disciplined per field: the plan cursor and the
// protocol are written only via ApplyDecision (planner output), topic
// scores only via RecordTechnical (skeptic output), behavioral context
// only via RecordBehavioral (empath output).
type SessionState struct {
	SessionID string
	Candidate Candidate
	StartedAt time.Time

	Plan     *Plan
	Protocol Protocol
	Behavior BehavioralContext

	Turns     []*Turn
	TurnCount int
	MaxTurns  int

	// scores is the trailing window of technical scores (newest last).
	scores []int
	// depths mirrors the window with depth classifications, for the
	// speedrun -> stress_test transition.
	depths []Depth

	Terminal          bool
	TerminationReason string
}

// NewSessionState creates the aggregate for a fresh interview.
// maxTurns <= 0 selects DefaultMaxTurns.
func NewSessionState(sessionID string, c Candidate, plan *Plan, maxTurns int) *SessionState {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}
	return &SessionState{
		SessionID: sessionID,
		Candidate: c,
		StartedAt: time.Now().UTC(),
		Plan:      plan,
		Protocol:  ProtocolStandard,
		Behavior: BehavioralContext{
			Demeanor:    DemeanorNormal,
			StressLevel: LevelLow,
		},
		MaxTurns: maxTurns,
	}
}

// BeginTurn opens a new turn carrying the interviewer's outbound message.
// Turn IDs start at 1 and increase without gaps.
func (s *SessionState) BeginTurn(agentMessage string) *Turn {
	s.TurnCount++
	t := &Turn{ID: s.TurnCount, AgentMessage: agentMessage}
	s.Turns = append(s.Turns, t)
	return t
}

// CurrentTurn returns the most recent turn, or nil before the first.
func (s *SessionState) CurrentTurn() *Turn {
	if len(s.Turns) == 0 {
		return nil
	}
	return s.Turns[len(s.Turns)-1]
}

// RecordTechnical applies the Skeptic's evaluation: topic mutation plus
// a score window entry. A nil eval means the evaluation was degraded:
// the active topic is left untouched and a neutral score enters the
// window so one evaluator failure cannot distort protocol thresholds.
// This is the single mutation point for topic scores.
func (s *SessionState) RecordTechnical(eval *TechnicalEval) {
	if s.Terminal {
		return
	}
	if eval == nil {
		s.pushScore(neutralScore, DepthAdequate)
		return
	}
	s.Plan.RecordEvaluation(eval.Score)
	s.pushScore(eval.Score, eval.Depth)
	if eval.Hallucinated() {
		s.Behavior.HallucinationCount++
	}
	if eval.ContradictionDetected {
		s.Behavior.ContradictionCount++
	}
}

// RecordBehavioral applies the Empath's evaluation to the behavioral
// context. Skipped silently when the evaluation was degraded.
func (s *SessionState) RecordBehavioral(eval *BehavioralEval) {
	if s.Terminal || eval == nil {
		return
	}
	s.Behavior.Demeanor = eval.Demeanor
	s.Behavior.StressLevel = eval.StressLevel
}

// NoteOffTopic counts a redirected turn.
func (s *SessionState) NoteOffTopic() {
	s.Behavior.OffTopicCount++
}

// ApplyDecision commits the planner's outputs: protocol, cursor advance,
// and the terminal flag. This is the single mutation point for the
// protocol and the plan cursor.
func (s *SessionState) ApplyDecision(d Decision) {
	if s.Terminal {
		return
	}
	s.Protocol = d.Protocol
	if d.AdvanceCursor {
		s.Plan.AdvanceCursor()
	}
	if d.Directive == DirectiveTerminate {
		s.Terminal = true
		s.TerminationReason = d.Reason
	}
}

// Terminate marks the session terminal outside the planner path
// (generation failure, external cancellation).
func (s *SessionState) Terminate(reason string) {
	if s.Terminal {
		return
	}
	s.Terminal = true
	s.TerminationReason = reason
}

// ScoreWindow returns a copy of the trailing technical score window,
// newest last.
func (s *SessionState) ScoreWindow() []int {
	out := make([]int, len(s.scores))
	copy(out, s.scores)
	return out
}

// DepthWindow returns a copy of the trailing depth window, newest last.
func (s *SessionState) DepthWindow() []Depth {
	out := make([]Depth, len(s.depths))
	copy(out, s.depths)
	return out
}

func (s *SessionState) pushScore(score int, depth Depth) {
	s.scores = append(s.scores, score)
	if len(s.scores) > scoreWindowSize {
		s.scores = s.scores[len(s.scores)-scoreWindowSize:]
	}
	s.depths = append(s.depths, depth)
	if len(s.depths) > scoreWindowSize {
		s.depths = s.depths[len(s.depths)-scoreWindowSize:]
	}
}
