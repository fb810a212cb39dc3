// Package engine orchestrates one interview session: it fans candidate
// messages out to the evaluator agents, applies their results to the
// session state, runs the strategic planner, and renders the next
// interviewer message. All state mutation goes through the aggregate's
// disciplined mutation points; the engine itself holds no interview
// state of its own.
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	entschema "github.com/abhisek/crucible/ent/schema"
	"github.com/abhisek/crucible/internal/agents"
	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
	"github.com/abhisek/crucible/internal/sessionlog"
	"github.com/abhisek/crucible/internal/store"
)

// voiceRetries is how many extra attempts the response generator gets
// before the session is terminated for generation failure.
const voiceRetries = 1

// reportAttempts bounds report generation before the fallback verdict
// is substituted.
const reportAttempts = 3

// IntentClassifier routes one candidate message to an intent.
type IntentClassifier interface {
	Classify(ctx context.Context, pendingQuestion, message string) (*agents.RouteResult, error)
}

// TechnicalEvaluator scores an answer's hard-skills content.
type TechnicalEvaluator interface {
	Evaluate(ctx context.Context, in agents.SkepticInput) (*interview.TechnicalEval, error)
	FormatNote(eval *interview.TechnicalEval) string
}

// BehavioralEvaluator judges an answer's communication signals.
type BehavioralEvaluator interface {
	Evaluate(ctx context.Context, message string) (*interview.BehavioralEval, error)
	FormatNote(eval *interview.BehavioralEval) string
}

// ResponseGenerator produces the interviewer's outbound messages.
type ResponseGenerator interface {
	Speak(ctx context.Context, in agents.VoiceInput) (message, thought string, err error)
}

// ReportGenerator produces the final verdict from a terminal session.
type ReportGenerator interface {
	Report(ctx context.Context, s *interview.SessionState) (*interview.Verdict, string, error)
}

// PlanSource produces the initial interview plan.
type PlanSource interface {
	Generate(ctx context.Context, c interview.Candidate) (*interview.Plan, string, error)
}

// Deps wires the engine's collaborators. Events, Snapshots, and LogDir
// are optional; a nil repo disables that persistence concern.
type Deps struct {
	Router   IntentClassifier
	Skeptic  TechnicalEvaluator
	Empath   BehavioralEvaluator
	Voice    ResponseGenerator
	Reporter ReportGenerator
	Planner  PlanSource

	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	LogDir    string
}

// Config holds engine tunables.
type Config struct {
	MaxTurns int // <= 0 selects interview.DefaultMaxTurns
}

// Engine drives one interview session from greeting to verdict.
type Engine struct {
	deps  Deps
	cfg   Config
	state *interview.SessionState
}

// New creates an engine. Start must be called before ProcessMessage.
func New(deps Deps, cfg Config) *Engine {
	return &Engine{deps: deps, cfg: cfg}
}

// NewFromProvider creates an engine with the default agent set over a
// single provider.
func NewFromProvider(p llm.Provider, events store.EventRepo, snapshots store.SnapshotRepo, cfg Config) *Engine {
	return New(Deps{
		Router:    agents.NewRouter(p, agents.DefaultRouterConfig()),
		Skeptic:   agents.NewSkeptic(p, agents.DefaultSkepticConfig()),
		Empath:    agents.NewEmpath(p, agents.DefaultEmpathConfig()),
		Voice:     agents.NewVoice(p, agents.DefaultVoiceConfig()),
		Reporter:  agents.NewReporter(p, agents.DefaultReporterConfig()),
		Planner:   agents.NewPlanGenerator(p, agents.DefaultPlannerConfig()),
		Events:    events,
		Snapshots: snapshots,
	}, cfg)
}

// State exposes the session aggregate for rendering. Callers must not
// mutate it.
func (e *Engine) State() *interview.SessionState {
	return e.state
}

// TurnResult is what one engine step hands back to the caller: the
// interviewer's message, the internal debate notes produced while the
// step ran, and the terminal payload once the session ends.
type TurnResult struct {
	Message string
	Notes   []string
	Done    bool
	Verdict *interview.Verdict
	LogPath string
}

// Start generates the interview plan and the greeting, opening turn 1.
// Plan generation failure degrades to the deterministic fallback plan
// rather than aborting the session.
func (e *Engine) Start(ctx context.Context, c interview.Candidate) (*TurnResult, error) {
	if e.state != nil {
		return nil, fmt.Errorf("session already started")
	}

	var notes []string
	plan, thought, err := e.deps.Planner.Generate(ctx, c)
	if err != nil {
		plan = agents.FallbackPlan(c)
		notes = append(notes, "[System]: plan generation failed; using fallback plan")
	} else if thought != "" {
		notes = append(notes, "[Planner]: "+thought)
	}

	e.state = interview.NewSessionState(uuid.NewString(), c, plan, e.cfg.MaxTurns)

	e.emitSessionEvent(ctx, "start")

	active := e.state.Plan.Active()
	topicLabel := ""
	if active != nil {
		topicLabel = active.Label
	}
	directive := fmt.Sprintf(
		"Greet %s by name, say in one sentence how the interview will run, then ask the first question on %q.",
		c.Name, topicLabel)

	greeting, voiceThought, err := e.speakWithRetry(ctx, agents.VoiceInput{
		Candidate:  c,
		Protocol:   e.state.Protocol,
		TopicLabel: topicLabel,
		Directive:  directive,
	})
	if err != nil {
		e.state.Terminate("response generation failed")
		return e.finishSession(ctx, "", notes)
	}
	if voiceThought != "" {
		notes = append(notes, "[Voice]: "+voiceThought)
	}

	turn := e.state.BeginTurn(greeting)
	for _, n := range notes {
		turn.AppendNote(n)
	}

	return &TurnResult{Message: greeting, Notes: notes}, nil
}

// ProcessMessage runs one full turn: classify, evaluate, decide, apply,
// respond. Evaluation failures degrade the turn; only response
// generation failure (after retry) terminates the session early.
func (e *Engine) ProcessMessage(ctx context.Context, message string) (*TurnResult, error) {
	if e.state == nil {
		return nil, fmt.Errorf("session not started")
	}
	if e.state.Terminal {
		return nil, fmt.Errorf("session is over")
	}

	turn := e.state.CurrentTurn()
	turn.UserMessage = message

	intent := e.classify(ctx, turn, message)

	var tech *interview.TechnicalEval
	if intent == interview.IntentAnswer {
		tech = e.evaluate(ctx, turn, message)
	}
	if intent == interview.IntentOffTopic {
		e.state.NoteOffTopic()
	}

	decision := interview.Decide(e.state, intent, tech)
	turn.AppendNote(fmt.Sprintf("[Planner]: directive=%s protocol=%s%s",
		decision.Directive, decision.Protocol, reasonSuffix(decision.Reason)))
	e.state.ApplyDecision(decision)

	if e.state.Terminal {
		farewell := e.farewell(ctx, decision)
		return e.finishSession(ctx, farewell, turn.Notes)
	}

	active := e.state.Plan.Active()
	topicLabel := ""
	if active != nil {
		topicLabel = active.Label
	}

	next, voiceThought, err := e.speakWithRetry(ctx, agents.VoiceInput{
		Candidate:     e.state.Candidate,
		Protocol:      e.state.Protocol,
		TopicLabel:    topicLabel,
		Directive:     agents.DescribeDirective(decision, topicLabel),
		ChallengeFact: decision.ChallengeFact,
		CorrectFact:   decision.CorrectFact,
		RecentTurns:   e.state.Turns,
	})
	if err != nil {
		turn.AppendNote("[System]: response generation failed after retry")
		e.state.Terminate("response generation failed")
		return e.finishSession(ctx, "", turn.Notes)
	}
	if voiceThought != "" {
		turn.AppendNote("[Voice]: " + voiceThought)
	}

	notes := turn.Notes
	e.closeTurn(ctx, turn, intent, decision, tech)
	e.state.BeginTurn(next)

	return &TurnResult{Message: next, Notes: notes}, nil
}

// classify routes the message, falling back to off_topic when the
// classifier is unavailable. The turn note records either the router's
// reasoning or the degradation.
func (e *Engine) classify(ctx context.Context, turn *interview.Turn, message string) interview.Intent {
	route, err := e.deps.Router.Classify(ctx, turn.AgentMessage, message)
	if err != nil {
		turn.AppendNote("[System]: intent classification degraded; treating the reply as off-topic")
		return interview.IntentOffTopic
	}
	if route.Thought != "" {
		turn.AppendNote("[Router]: " + route.Thought)
	}
	return route.Intent
}

// evaluate fans the answer out to both evaluators concurrently and
// applies their results. Either evaluator failing degrades independently;
// a degraded technical evaluation leaves the topic untouched and pushes
// a neutral score into the planner's window.
func (e *Engine) evaluate(ctx context.Context, turn *interview.Turn, message string) *interview.TechnicalEval {
	var (
		wg      sync.WaitGroup
		tech    *interview.TechnicalEval
		techErr error
		beh     *interview.BehavioralEval
		behErr  error
	)

	active := e.state.Plan.Active()
	in := agents.SkepticInput{
		Candidate: e.state.Candidate,
		Question:  turn.AgentMessage,
		Answer:    message,
	}
	if active != nil {
		in.TopicLabel = active.Label
		in.TopicDifficulty = active.Difficulty
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		tech, techErr = e.deps.Skeptic.Evaluate(ctx, in)
	}()
	go func() {
		defer wg.Done()
		beh, behErr = e.deps.Empath.Evaluate(ctx, message)
	}()
	wg.Wait()

	if techErr != nil {
		tech = nil
		turn.AppendNote("[System]: degraded evaluation; neutral score substituted")
	} else {
		turn.AppendNote(e.deps.Skeptic.FormatNote(tech))
	}

	if behErr != nil {
		beh = nil
		turn.AppendNote("[System]: behavioral evaluation degraded; context unchanged")
	} else {
		turn.AppendNote(e.deps.Empath.FormatNote(beh))
	}

	e.state.RecordTechnical(tech)
	e.state.RecordBehavioral(beh)
	return tech
}

// farewell renders the closing message. A canned line stands in when
// generation fails: termination must never be blocked on the voice.
func (e *Engine) farewell(ctx context.Context, decision interview.Decision) string {
	msg, thought, err := e.speakWithRetry(ctx, agents.VoiceInput{
		Candidate:   e.state.Candidate,
		Protocol:    e.state.Protocol,
		Directive:   agents.DescribeDirective(decision, ""),
		RecentTurns: e.state.Turns,
	})
	if err != nil {
		return fmt.Sprintf("Thank you, %s. That concludes our interview — we'll be in touch with feedback.",
			e.state.Candidate.Name)
	}
	if thought != "" {
		if t := e.state.CurrentTurn(); t != nil {
			t.AppendNote("[Voice]: " + thought)
		}
	}
	return msg
}

func (e *Engine) speakWithRetry(ctx context.Context, in agents.VoiceInput) (string, string, error) {
	var lastErr error
	for attempt := 0; attempt <= voiceRetries; attempt++ {
		msg, thought, err := e.deps.Voice.Speak(ctx, in)
		if err == nil {
			return msg, thought, nil
		}
		lastErr = err
	}
	return "", "", lastErr
}

// finishSession closes the last turn, generates the verdict (with a
// bounded retry and fallback), writes the session log, and emits the
// terminal events. Every termination path funnels through here so the
// log document is never lost.
func (e *Engine) finishSession(ctx context.Context, farewell string, notes []string) (*TurnResult, error) {
	if turn := e.state.CurrentTurn(); turn != nil && !turn.Closed() {
		e.closeTurn(ctx, turn, "", interview.Decision{Directive: interview.DirectiveTerminate}, nil)
	}
	if farewell != "" {
		final := e.state.BeginTurn(farewell)
		e.closeTurn(ctx, final, "", interview.Decision{Directive: interview.DirectiveTerminate}, nil)
	}

	verdict := e.generateVerdict(ctx)

	logPath, err := e.writeSessionLog(verdict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to write session log: %v\n", err)
	}

	e.emitSessionEvent(ctx, "end")
	e.emitVerdictEvent(ctx, verdict)
	e.saveSnapshot(ctx)

	return &TurnResult{
		Message: farewell,
		Notes:   notes,
		Done:    true,
		Verdict: verdict,
		LogPath: logPath,
	}, nil
}

// generateVerdict asks the reporter up to reportAttempts times, then
// substitutes the fallback verdict.
func (e *Engine) generateVerdict(ctx context.Context) *interview.Verdict {
	for attempt := 0; attempt < reportAttempts; attempt++ {
		verdict, _, err := e.deps.Reporter.Report(ctx, e.state)
		if err == nil {
			return verdict
		}
	}
	return interview.FallbackVerdict(e.state)
}

func (e *Engine) writeSessionLog(verdict *interview.Verdict) (string, error) {
	doc := sessionlog.Build(e.state, verdict)
	if e.deps.LogDir != "" {
		return sessionlog.WriteTo(e.deps.LogDir, doc)
	}
	return sessionlog.Write(doc)
}

// closeTurn freezes the turn and emits its event.
func (e *Engine) closeTurn(ctx context.Context, turn *interview.Turn, intent interview.Intent, decision interview.Decision, tech *interview.TechnicalEval) {
	turn.Close()

	if e.deps.Events == nil {
		return
	}
	data := store.TurnEventData{
		SessionID:    e.state.SessionID,
		TurnID:       turn.ID,
		AgentMessage: turn.AgentMessage,
		UserMessage:  turn.UserMessage,
		Intent:       string(intent),
		Protocol:     string(e.state.Protocol),
		Directive:    string(decision.Directive),
		Notes:        turn.Notes,
	}
	if tech != nil {
		score := tech.Score
		data.TechnicalScore = &score
	}
	if err := e.deps.Events.AppendTurnEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log turn event: %v\n", err)
	}
}

func (e *Engine) emitSessionEvent(ctx context.Context, action string) {
	if e.deps.Events == nil {
		return
	}
	data := store.SessionEventData{
		SessionID: e.state.SessionID,
		Action:    action,
	}
	if action == "start" {
		data.CandidateName = e.state.Candidate.Name
		data.Role = e.state.Candidate.Role
		data.TargetGrade = e.state.Candidate.TargetGrade
	} else {
		data.TurnCount = e.state.TurnCount
		data.Protocol = string(e.state.Protocol)
		data.TerminationReason = e.state.TerminationReason
	}
	data.PlanSummary = planSummary(e.state.Plan)

	if err := e.deps.Events.AppendSessionEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}

func (e *Engine) emitVerdictEvent(ctx context.Context, verdict *interview.Verdict) {
	if e.deps.Events == nil || verdict == nil {
		return
	}

	raw, err := json.Marshal(verdict)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to marshal verdict: %v\n", err)
		return
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode verdict: %v\n", err)
		return
	}

	data := store.VerdictEventData{
		SessionID:      e.state.SessionID,
		AssessedGrade:  string(verdict.AssessedGrade),
		Recommendation: string(verdict.Recommendation),
		Confidence:     verdict.Confidence,
		Reasoning:      verdict.Reasoning,
		Fallback:       verdict.Fallback,
		Verdict:        doc,
	}
	if err := e.deps.Events.AppendVerdictEvent(ctx, data); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log verdict event: %v\n", err)
	}
}

// saveSnapshot archives the terminal session state for later inspection.
func (e *Engine) saveSnapshot(ctx context.Context) {
	if e.deps.Snapshots == nil {
		return
	}
	raw, err := json.Marshal(sessionlog.Build(e.state, nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to marshal snapshot: %v\n", err)
		return
	}
	snap := &store.Snapshot{
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:   1,
			SessionID: e.state.SessionID,
			State:     raw,
		},
	}
	if err := e.deps.Snapshots.Save(ctx, snap); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save snapshot: %v\n", err)
	}
}

func planSummary(p *interview.Plan) []entschema.PlanTopicSummary {
	out := make([]entschema.PlanTopicSummary, 0, len(p.Topics))
	for _, t := range p.Topics {
		out = append(out, entschema.PlanTopicSummary{
			Label:      t.Label,
			Difficulty: string(t.Difficulty),
			Score:      t.Score,
			Covered:    t.Covered,
		})
	}
	return out
}

func reasonSuffix(reason string) string {
	if reason == "" {
		return ""
	}
	return " (" + reason + ")"
}
