package agents

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
)

func mockJSON(t *testing.T, v any) llm.MockResponse {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal mock response: %v", err)
	}
	return llm.MockResponse{Content: data}
}

func TestRouterClassify(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"intent":           "answer",
		"internal_thought": "direct attempt at the question",
		"is_suspicious":    true,
	}))
	router := NewRouter(mock, DefaultRouterConfig())

	res, err := router.Classify(context.Background(), "What is an index?", "It speeds up lookups.")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if res.Intent != interview.IntentAnswer {
		t.Errorf("intent = %q, want answer", res.Intent)
	}
	if !res.IsSuspicious {
		t.Error("IsSuspicious = false, want true")
	}

	if got := mock.Calls[0].Schema.Name; got != "intent-classification" {
		t.Errorf("schema = %q, want intent-classification", got)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "What is an index?") {
		t.Error("pending question missing from prompt")
	}
}

func TestRouterClassifyUnknownIntent(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"intent":           "rant",
		"internal_thought": "",
		"is_suspicious":    false,
	}))
	router := NewRouter(mock, DefaultRouterConfig())

	if _, err := router.Classify(context.Background(), "", "hello"); err == nil {
		t.Fatal("Classify() with unknown intent should error")
	}
}

func TestSkepticEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"score":                   8,
		"accuracy":                "accurate",
		"depth":                   "deep",
		"internal_thought":        "covers isolation levels correctly",
		"issues":                  []string{"skipped phantom reads"},
		"correct_answer":          nil,
		"contradiction_detected":  false,
		"fictional_term_detected": false,
	}))
	skeptic := NewSkeptic(mock, DefaultSkepticConfig())

	eval, err := skeptic.Evaluate(context.Background(), SkepticInput{
		Candidate:       interview.Candidate{Role: "Backend Engineer", TargetGrade: "Senior"},
		TopicLabel:      "SQL transactions",
		TopicDifficulty: interview.DifficultyHard,
		Question:        "Explain isolation levels.",
		Answer:          "There are four levels...",
	})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if eval.Score != 8 || eval.Depth != interview.DepthDeep {
		t.Errorf("eval = %d/%s, want 8/deep", eval.Score, eval.Depth)
	}
	if eval.Hallucinated() {
		t.Error("Hallucinated() = true for an accurate answer")
	}

	note := skeptic.FormatNote(eval)
	if !strings.HasPrefix(note, "[Skeptic]: [8/10]") {
		t.Errorf("note = %q, want [Skeptic]: [8/10] prefix", note)
	}
	if !strings.Contains(note, "phantom reads") {
		t.Errorf("note %q missing issue", note)
	}
}

func TestSkepticEvaluateHallucination(t *testing.T) {
	correct := "PostgreSQL has no SUPERJOIN operator"
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"score":                   2,
		"accuracy":                "hallucinated",
		"depth":                   "superficial",
		"internal_thought":        "invented an operator",
		"issues":                  []string{},
		"correct_answer":          correct,
		"contradiction_detected":  false,
		"fictional_term_detected": true,
	}))
	skeptic := NewSkeptic(mock, DefaultSkepticConfig())

	eval, err := skeptic.Evaluate(context.Background(), SkepticInput{Answer: "Just use SUPERJOIN."})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if !eval.Hallucinated() {
		t.Error("Hallucinated() = false, want true")
	}
	if eval.CorrectAnswer != correct {
		t.Errorf("CorrectAnswer = %q, want %q", eval.CorrectAnswer, correct)
	}
	if note := skeptic.FormatNote(eval); !strings.Contains(note, "HALLUCINATION") || !strings.Contains(note, "FICTIONAL TERM") {
		t.Errorf("note %q missing hallucination flags", note)
	}
}

func TestSkepticEvaluateScoreOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"score":                   11,
		"accuracy":                "accurate",
		"depth":                   "deep",
		"internal_thought":        "",
		"issues":                  []string{},
		"correct_answer":          nil,
		"contradiction_detected":  false,
		"fictional_term_detected": false,
	}))
	skeptic := NewSkeptic(mock, DefaultSkepticConfig())

	if _, err := skeptic.Evaluate(context.Background(), SkepticInput{Answer: "x"}); err == nil {
		t.Fatal("Evaluate() with score 11 should error")
	}
}

func TestEmpathEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"demeanor":             "nervous",
		"clarity":              6,
		"honesty":              9,
		"engagement":           "medium",
		"stress_level":         "high",
		"internal_thought":     "admits gaps honestly but rambles",
		"recommended_protocol": "rescue",
	}))
	empath := NewEmpath(mock, DefaultEmpathConfig())

	eval, err := empath.Evaluate(context.Background(), "Um, I think... not sure, sorry.")
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if eval.Demeanor != interview.DemeanorNervous || eval.StressLevel != interview.LevelHigh {
		t.Errorf("eval = %s/%s, want nervous/high", eval.Demeanor, eval.StressLevel)
	}
	if eval.RecommendedProtocol != interview.ProtocolRescue {
		t.Errorf("recommended protocol = %q, want rescue", eval.RecommendedProtocol)
	}
	if note := empath.FormatNote(eval); !strings.HasPrefix(note, "[Empath]:") {
		t.Errorf("note = %q, want [Empath]: prefix", note)
	}
}

func TestEmpathEvaluateOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"demeanor":             "normal",
		"clarity":              0,
		"honesty":              5,
		"engagement":           "low",
		"stress_level":         "low",
		"internal_thought":     "",
		"recommended_protocol": "standard",
	}))
	empath := NewEmpath(mock, DefaultEmpathConfig())

	if _, err := empath.Evaluate(context.Background(), "hi"); err == nil {
		t.Fatal("Evaluate() with clarity 0 should error")
	}
}

func TestPlanGeneratorGenerate(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"topics": []map[string]any{
			{"topic": "Go: goroutines and channels", "difficulty": "medium", "rationale": "core of the role"},
			{"topic": "SQL: indexes and query plans", "difficulty": "hard", "rationale": "claimed 5y of Postgres"},
		},
		"internal_thought": "ramp from language basics to storage",
	}))
	gen := NewPlanGenerator(mock, DefaultPlannerConfig())

	plan, thought, err := gen.Generate(context.Background(), interview.Candidate{Role: "Backend Engineer"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(plan.Topics) != 2 {
		t.Fatalf("len(Topics) = %d, want 2", len(plan.Topics))
	}
	if plan.Topics[0].ID != 1 || plan.Topics[1].ID != 2 {
		t.Errorf("topic IDs = %d,%d, want 1,2", plan.Topics[0].ID, plan.Topics[1].ID)
	}
	if plan.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", plan.Cursor)
	}
	if thought == "" {
		t.Error("internal thought empty")
	}
}

func TestPlanGeneratorEmptyTopics(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"topics":           []map[string]any{},
		"internal_thought": "",
	}))
	gen := NewPlanGenerator(mock, DefaultPlannerConfig())

	if _, _, err := gen.Generate(context.Background(), interview.Candidate{}); err == nil {
		t.Fatal("Generate() with no topics should error")
	}
}

func TestFallbackPlan(t *testing.T) {
	plan := FallbackPlan(interview.Candidate{
		Role:        "Data Engineer",
		TargetGrade: "Junior",
		Experience:  "2 years of Airflow and Spark",
	})
	if len(plan.Topics) != 2 {
		t.Fatalf("len(Topics) = %d, want 2", len(plan.Topics))
	}
	if plan.Topics[0].Difficulty != interview.DifficultyEasy {
		t.Errorf("first topic difficulty = %q, want easy for a junior", plan.Topics[0].Difficulty)
	}
	if !strings.Contains(plan.Topics[0].Label, "Data Engineer") {
		t.Errorf("first topic %q should mention the role", plan.Topics[0].Label)
	}
	if !strings.Contains(plan.Topics[1].Label, "Airflow") {
		t.Errorf("second topic %q should mention the experience", plan.Topics[1].Label)
	}
}

func TestVoiceSpeak(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"message":          "Let's move on. How would you design a rate limiter?",
		"internal_thought": "advance to the next topic briskly",
	}))
	voice := NewVoice(mock, DefaultVoiceConfig())

	msg, thought, err := voice.Speak(context.Background(), VoiceInput{
		Candidate:  interview.Candidate{Name: "Alex", Role: "Backend Engineer"},
		Protocol:   interview.ProtocolSpeedrun,
		TopicLabel: "System design: rate limiting",
		Directive:  "Jump straight to the next topic with a hard question.",
		RecentTurns: []*interview.Turn{
			{ID: 1, AgentMessage: "Tell me about channels.", UserMessage: "They synchronize goroutines."},
		},
	})
	if err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if msg == "" || thought == "" {
		t.Fatalf("Speak() = (%q, %q), want both non-empty", msg, thought)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "speedrun") {
		t.Error("protocol missing from prompt")
	}
	if !strings.Contains(prompt, "Tell me about channels.") {
		t.Error("recent transcript missing from prompt")
	}
}

func TestVoiceSpeakEmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"message":          "",
		"internal_thought": "nothing to say",
	}))
	voice := NewVoice(mock, DefaultVoiceConfig())

	if _, _, err := voice.Speak(context.Background(), VoiceInput{}); err == nil {
		t.Fatal("Speak() with empty message should error")
	}
}

func TestVoiceSpeakTrimsTranscript(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"message":          "Next question.",
		"internal_thought": "",
	}))
	cfg := DefaultVoiceConfig()
	cfg.RecentTurns = 2
	voice := NewVoice(mock, cfg)

	turns := []*interview.Turn{
		{ID: 1, AgentMessage: "oldest question"},
		{ID: 2, AgentMessage: "middle question"},
		{ID: 3, AgentMessage: "newest question"},
	}
	if _, _, err := voice.Speak(context.Background(), VoiceInput{RecentTurns: turns}); err != nil {
		t.Fatalf("Speak() error = %v", err)
	}

	prompt := mock.Calls[0].Messages[0].Content
	if strings.Contains(prompt, "oldest question") {
		t.Error("transcript not trimmed to the configured window")
	}
	if !strings.Contains(prompt, "newest question") {
		t.Error("newest turn missing from prompt")
	}
}

func TestVoiceChallengeFact(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"message":          "I don't think SUPERJOIN exists — where is that from?",
		"internal_thought": "dispute the invented operator",
	}))
	voice := NewVoice(mock, DefaultVoiceConfig())

	_, _, err := voice.Speak(context.Background(), VoiceInput{
		ChallengeFact: true,
		CorrectFact:   "PostgreSQL has no SUPERJOIN operator",
	})
	if err != nil {
		t.Fatalf("Speak() error = %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "SUPERJOIN") {
		t.Error("correction missing from prompt")
	}
}

func TestReporterReport(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"assessed_grade":        "middle",
		"hiring_recommendation": "hire",
		"confidence_score":      85,
		"verdict_reasoning":     "Answered 3 of 4 questions with concrete detail.",
		"clarity_score":         7,
		"honesty_score":         9,
		"engagement_score":      8,
		"soft_skills_notes":     "calm, admits gaps",
		"roadmap":               []string{"query planning internals"},
		"resources":             []string{},
		"internal_thought":      "solid but not senior",
	}))
	reporter := NewReporter(mock, DefaultReporterConfig())

	state := terminalState(t)
	verdict, thought, err := reporter.Report(context.Background(), state)
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if verdict.AssessedGrade != interview.GradeMiddle || verdict.Recommendation != interview.RecHire {
		t.Errorf("verdict = %s/%s, want middle/hire", verdict.AssessedGrade, verdict.Recommendation)
	}
	if len(verdict.ConfirmedSkills) != 1 || len(verdict.KnowledgeGaps) != 1 {
		t.Errorf("skills split = %d confirmed / %d gaps, want 1/1",
			len(verdict.ConfirmedSkills), len(verdict.KnowledgeGaps))
	}
	if thought == "" {
		t.Error("internal thought empty")
	}

	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "They synchronize goroutines.") {
		t.Error("transcript missing from report prompt")
	}
	if !strings.Contains(prompt, "candidate stopped") {
		t.Error("termination reason missing from report prompt")
	}
}

func TestReporterReportInvalidGrade(t *testing.T) {
	mock := llm.NewMockProvider(mockJSON(t, map[string]any{
		"assessed_grade":        "wizard",
		"hiring_recommendation": "hire",
		"confidence_score":      50,
		"verdict_reasoning":     "",
		"clarity_score":         5,
		"honesty_score":         5,
		"engagement_score":      5,
		"soft_skills_notes":     "",
		"roadmap":               []string{},
		"resources":             []string{},
		"internal_thought":      "",
	}))
	reporter := NewReporter(mock, DefaultReporterConfig())

	if _, _, err := reporter.Report(context.Background(), terminalState(t)); err == nil {
		t.Fatal("Report() with invalid grade should error")
	}
}

// terminalState builds a small finished session: one strong topic, one weak.
func terminalState(t *testing.T) *interview.SessionState {
	t.Helper()
	plan := interview.NewPlan([]interview.Topic{
		{ID: 1, Label: "Go concurrency", Difficulty: interview.DifficultyMedium},
		{ID: 2, Label: "SQL indexes", Difficulty: interview.DifficultyHard},
	})
	s := interview.NewSessionState("test", interview.Candidate{
		Name: "Alex", Role: "Backend Engineer", TargetGrade: "Middle",
	}, plan, 0)

	turn := s.BeginTurn("Tell me about channels.")
	turn.UserMessage = "They synchronize goroutines."
	s.RecordTechnical(&interview.TechnicalEval{Score: 8, Accuracy: interview.AccuracyAccurate, Depth: interview.DepthDeep})
	s.RecordTechnical(&interview.TechnicalEval{Score: 8, Accuracy: interview.AccuracyAccurate, Depth: interview.DepthDeep})
	s.Plan.AdvanceCursor()
	s.RecordTechnical(&interview.TechnicalEval{Score: 3, Accuracy: interview.AccuracyPartial, Depth: interview.DepthSuperficial})
	s.RecordTechnical(&interview.TechnicalEval{Score: 3, Accuracy: interview.AccuracyPartial, Depth: interview.DepthSuperficial})
	s.Terminate("candidate stopped the interview")
	return s
}
