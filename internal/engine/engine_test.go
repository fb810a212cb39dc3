package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/crucible/internal/agents"
	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/sessionlog"
)

// Scripted agent fakes. Each consumes its queue in FIFO order; an empty
// queue is a test bug and fails loudly.

type fakeRouter struct {
	intents []interview.Intent
	err     error
}

func (f *fakeRouter) Classify(_ context.Context, _, _ string) (*agents.RouteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.intents) == 0 {
		return nil, errors.New("fakeRouter: queue empty")
	}
	intent := f.intents[0]
	f.intents = f.intents[1:]
	return &agents.RouteResult{Intent: intent, Thought: "scripted"}, nil
}

type fakeSkeptic struct {
	evals []*interview.TechnicalEval
	errs  []error
}

func (f *fakeSkeptic) Evaluate(_ context.Context, _ agents.SkepticInput) (*interview.TechnicalEval, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	if len(f.evals) == 0 {
		return nil, errors.New("fakeSkeptic: queue empty")
	}
	eval := f.evals[0]
	f.evals = f.evals[1:]
	return eval, nil
}

func (f *fakeSkeptic) FormatNote(eval *interview.TechnicalEval) string {
	return fmt.Sprintf("[Skeptic]: [%d/10] scripted", eval.Score)
}

type fakeEmpath struct {
	err error
}

func (f *fakeEmpath) Evaluate(_ context.Context, _ string) (*interview.BehavioralEval, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &interview.BehavioralEval{
		Demeanor: interview.DemeanorNormal, Clarity: 7, Honesty: 8,
		Engagement: interview.LevelMedium, StressLevel: interview.LevelLow,
		Thought: "scripted",
	}, nil
}

func (f *fakeEmpath) FormatNote(eval *interview.BehavioralEval) string {
	return "[Empath]: scripted"
}

type fakeVoice struct {
	failures int
	calls    int
}

func (f *fakeVoice) Speak(_ context.Context, in agents.VoiceInput) (string, string, error) {
	f.calls++
	if f.failures > 0 {
		f.failures--
		return "", "", errors.New("fakeVoice: scripted failure")
	}
	return fmt.Sprintf("Q%d: %s", f.calls, in.Directive), "scripted", nil
}

type fakeReporter struct {
	failures int
	calls    int
}

func (f *fakeReporter) Report(_ context.Context, s *interview.SessionState) (*interview.Verdict, string, error) {
	f.calls++
	if f.failures > 0 {
		f.failures--
		return nil, "", errors.New("fakeReporter: scripted failure")
	}
	confirmed, gaps := interview.SplitSkills(s.Plan)
	return &interview.Verdict{
		AssessedGrade:   interview.GradeMiddle,
		Recommendation:  interview.RecHire,
		Confidence:      80,
		Reasoning:       "scripted",
		ConfirmedSkills: confirmed,
		KnowledgeGaps:   gaps,
	}, "scripted", nil
}

type fakePlanner struct {
	err error
}

func (f *fakePlanner) Generate(_ context.Context, c interview.Candidate) (*interview.Plan, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return interview.NewPlan([]interview.Topic{
		{ID: 1, Label: "Go concurrency", Difficulty: interview.DifficultyMedium},
		{ID: 2, Label: "SQL indexes", Difficulty: interview.DifficultyHard},
		{ID: 3, Label: "System design", Difficulty: interview.DifficultyHard},
	}), "scripted plan", nil
}

type testHarness struct {
	engine   *Engine
	router   *fakeRouter
	skeptic  *fakeSkeptic
	voice    *fakeVoice
	reporter *fakeReporter
}

func newHarness(t *testing.T, maxTurns int) *testHarness {
	t.Helper()
	h := &testHarness{
		router:   &fakeRouter{},
		skeptic:  &fakeSkeptic{},
		voice:    &fakeVoice{},
		reporter: &fakeReporter{},
	}
	h.engine = New(Deps{
		Router:   h.router,
		Skeptic:  h.skeptic,
		Empath:   &fakeEmpath{},
		Voice:    h.voice,
		Reporter: h.reporter,
		Planner:  &fakePlanner{},
		LogDir:   t.TempDir(),
	}, Config{MaxTurns: maxTurns})
	return h
}

func candidate() interview.Candidate {
	return interview.Candidate{Name: "Alex", Role: "Backend Engineer", TargetGrade: "Middle", Experience: "3y Go"}
}

func eval(score int, depth interview.Depth) *interview.TechnicalEval {
	return &interview.TechnicalEval{Score: score, Accuracy: interview.AccuracyAccurate, Depth: depth}
}

func TestStartOpensFirstTurn(t *testing.T) {
	h := newHarness(t, 0)

	res, err := h.engine.Start(context.Background(), candidate())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if res.Done {
		t.Fatal("Start() should not finish the session")
	}
	if res.Message == "" {
		t.Fatal("greeting is empty")
	}

	s := h.engine.State()
	if s.TurnCount != 1 {
		t.Errorf("TurnCount = %d, want 1", s.TurnCount)
	}
	if s.Protocol != interview.ProtocolStandard {
		t.Errorf("protocol = %q, want standard", s.Protocol)
	}
}

func TestStartFallsBackOnPlanFailure(t *testing.T) {
	h := newHarness(t, 0)
	h.engine.deps.Planner = &fakePlanner{err: errors.New("boom")}

	res, err := h.engine.Start(context.Background(), candidate())
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	s := h.engine.State()
	if len(s.Plan.Topics) != 2 {
		t.Errorf("fallback plan topics = %d, want 2", len(s.Plan.Topics))
	}
	found := false
	for _, n := range res.Notes {
		if strings.Contains(n, "fallback plan") {
			found = true
		}
	}
	if !found {
		t.Error("fallback note missing")
	}
}

// Candidate says stop on the very first reply: the session terminates
// with a farewell and a verdict, and no topic is ever scored.
func TestStopOnFirstTurn(t *testing.T) {
	h := newHarness(t, 0)
	h.router.intents = []interview.Intent{interview.IntentStop}

	if _, err := h.engine.Start(context.Background(), candidate()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	res, err := h.engine.ProcessMessage(context.Background(), "I'd like to stop.")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}
	if !res.Done {
		t.Fatal("stop should finish the session")
	}
	if res.Verdict == nil {
		t.Fatal("verdict missing")
	}
	if res.Message == "" {
		t.Error("farewell missing")
	}

	s := h.engine.State()
	if !s.Terminal || s.TerminationReason != "candidate requested stop" {
		t.Errorf("terminal=%v reason=%q", s.Terminal, s.TerminationReason)
	}
	for _, topic := range s.Plan.Topics {
		if topic.Score != nil {
			t.Errorf("topic %q has a score after immediate stop", topic.Label)
		}
	}

	// Further messages are rejected.
	if _, err := h.engine.ProcessMessage(context.Background(), "wait"); err == nil {
		t.Error("ProcessMessage after termination should error")
	}
}

// The technical evaluator fails on one turn: the turn proceeds with a
// degraded note, the topic stays unscored, and the session continues.
func TestDegradedEvaluationContinues(t *testing.T) {
	h := newHarness(t, 0)
	h.router.intents = []interview.Intent{interview.IntentAnswer, interview.IntentAnswer}
	h.skeptic.errs = []error{errors.New("provider down"), nil}
	h.skeptic.evals = []*interview.TechnicalEval{eval(7, interview.DepthAdequate)}

	if _, err := h.engine.Start(context.Background(), candidate()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	res, err := h.engine.ProcessMessage(context.Background(), "answer one")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}
	if res.Done {
		t.Fatal("degraded evaluation must not end the session")
	}
	found := false
	for _, n := range res.Notes {
		if strings.Contains(n, "degraded evaluation") {
			found = true
		}
	}
	if !found {
		t.Errorf("degradation note missing from %v", res.Notes)
	}

	s := h.engine.State()
	if s.Plan.Topics[0].QuestionsAsked != 0 {
		t.Errorf("degraded eval consumed a question slot: %d", s.Plan.Topics[0].QuestionsAsked)
	}

	// The next answer is evaluated normally.
	if _, err := h.engine.ProcessMessage(context.Background(), "answer two"); err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}
	if s.Plan.Topics[0].QuestionsAsked != 1 {
		t.Errorf("questions asked = %d, want 1", s.Plan.Topics[0].QuestionsAsked)
	}
}

// Off-topic spam never stalls the session: the hard turn cap fires and
// terminates with a verdict.
func TestOffTopicSpamHitsTurnCap(t *testing.T) {
	const maxTurns = 5
	h := newHarness(t, maxTurns)
	for i := 0; i < maxTurns; i++ {
		h.router.intents = append(h.router.intents, interview.IntentOffTopic)
	}

	if _, err := h.engine.Start(context.Background(), candidate()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	var res *TurnResult
	var err error
	for i := 0; i < maxTurns; i++ {
		res, err = h.engine.ProcessMessage(context.Background(), "let me tell you about my cat")
		if err != nil {
			t.Fatalf("ProcessMessage(%d) error = %v", i, err)
		}
		if res.Done {
			break
		}
	}
	if !res.Done {
		t.Fatal("turn cap never fired")
	}

	s := h.engine.State()
	if s.TerminationReason != "turn limit reached" {
		t.Errorf("reason = %q, want turn limit reached", s.TerminationReason)
	}
	if s.TurnCount > maxTurns {
		t.Errorf("TurnCount = %d, exceeds cap %d", s.TurnCount, maxTurns)
	}
	if s.Behavior.OffTopicCount == 0 {
		t.Error("off-topic counter never incremented")
	}
}

// Response generation failing twice terminates the session but still
// produces a verdict and a session log.
func TestVoiceFailureTerminatesWithLog(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, 0)
	h.engine.deps.LogDir = dir
	h.router.intents = []interview.Intent{interview.IntentAnswer}
	h.skeptic.evals = []*interview.TechnicalEval{eval(6, interview.DepthAdequate)}

	if _, err := h.engine.Start(context.Background(), candidate()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	h.voice.failures = 2 // first attempt + retry both fail
	res, err := h.engine.ProcessMessage(context.Background(), "an answer")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}
	if !res.Done {
		t.Fatal("voice failure should finish the session")
	}
	if h.engine.State().TerminationReason != "response generation failed" {
		t.Errorf("reason = %q", h.engine.State().TerminationReason)
	}
	if res.LogPath == "" {
		t.Fatal("session log not written")
	}
	if _, err := os.Stat(res.LogPath); err != nil {
		t.Fatalf("session log missing: %v", err)
	}
}

// The reporter fails repeatedly: the fallback verdict is substituted
// after the last attempt, never losing the session log.
func TestReporterExhaustionFallsBack(t *testing.T) {
	h := newHarness(t, 0)
	h.router.intents = []interview.Intent{interview.IntentStop}
	h.reporter.failures = reportAttempts

	if _, err := h.engine.Start(context.Background(), candidate()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	res, err := h.engine.ProcessMessage(context.Background(), "stop")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}
	if h.reporter.calls != reportAttempts {
		t.Errorf("reporter calls = %d, want %d", h.reporter.calls, reportAttempts)
	}
	if res.Verdict == nil || !res.Verdict.Fallback {
		t.Fatal("fallback verdict expected")
	}
	if res.Verdict.AssessedGrade != interview.GradeUnknown {
		t.Errorf("fallback grade = %q, want unknown", res.Verdict.AssessedGrade)
	}
}

// A full short interview: answers cover topics, the plan exhausts, and
// the session closes with a real verdict and a readable log document.
func TestFullSessionPlanExhaustion(t *testing.T) {
	dir := t.TempDir()
	h := newHarness(t, 20)
	h.engine.deps.LogDir = dir

	// Three topics, two answers each.
	for i := 0; i < 6; i++ {
		h.router.intents = append(h.router.intents, interview.IntentAnswer)
		h.skeptic.evals = append(h.skeptic.evals, eval(6, interview.DepthAdequate))
	}

	if _, err := h.engine.Start(context.Background(), candidate()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	var res *TurnResult
	var err error
	for i := 0; i < 6; i++ {
		res, err = h.engine.ProcessMessage(context.Background(), fmt.Sprintf("answer %d", i+1))
		if err != nil {
			t.Fatalf("ProcessMessage(%d) error = %v", i, err)
		}
	}
	if !res.Done {
		t.Fatal("plan exhaustion did not finish the session")
	}

	s := h.engine.State()
	if s.TerminationReason != "all topics covered" {
		t.Errorf("reason = %q, want all topics covered", s.TerminationReason)
	}
	if got := s.Plan.CoveredCount(); got != 3 {
		t.Errorf("covered topics = %d, want 3", got)
	}
	if res.Verdict == nil || res.Verdict.Fallback {
		t.Fatal("real verdict expected")
	}

	// The log document round-trips.
	matches, err := filepath.Glob(filepath.Join(dir, "interview_*.json"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("log files = %v (err %v), want exactly one", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	var doc sessionlog.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal log: %v", err)
	}
	if doc.ParticipantName != "Alex" {
		t.Errorf("participant = %q", doc.ParticipantName)
	}
	if doc.FinalFeedback == nil {
		t.Error("final feedback missing from log")
	}
	if len(doc.Turns) != s.TurnCount {
		t.Errorf("log turns = %d, state turns = %d", len(doc.Turns), s.TurnCount)
	}
}

// A counter-question holds all interview state: no score, no slot, no
// cursor movement.
func TestCounterQuestionHoldsState(t *testing.T) {
	h := newHarness(t, 0)
	h.router.intents = []interview.Intent{interview.IntentQuestion}

	if _, err := h.engine.Start(context.Background(), candidate()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	res, err := h.engine.ProcessMessage(context.Background(), "What do you mean by that?")
	if err != nil {
		t.Fatalf("ProcessMessage() error = %v", err)
	}
	if res.Done {
		t.Fatal("counter-question must not end the session")
	}

	s := h.engine.State()
	if s.Plan.Cursor != 0 || s.Plan.Topics[0].QuestionsAsked != 0 {
		t.Errorf("state moved: cursor=%d asked=%d", s.Plan.Cursor, s.Plan.Topics[0].QuestionsAsked)
	}
	if len(s.ScoreWindow()) != 0 {
		t.Errorf("score window = %v, want empty", s.ScoreWindow())
	}
}
