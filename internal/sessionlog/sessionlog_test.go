package sessionlog

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/abhisek/crucible/internal/interview"
)

func testState() *interview.SessionState {
	plan := interview.NewPlan([]interview.Topic{
		{ID: 1, Label: "Go concurrency", Difficulty: interview.DifficultyMedium},
		{ID: 2, Label: "SQL indexes", Difficulty: interview.DifficultyHard},
	})
	s := interview.NewSessionState("abc123", interview.Candidate{
		Name: "Alex", Role: "Backend Engineer", TargetGrade: "Middle", Experience: "3y Go",
	}, plan, 0)

	t1 := s.BeginTurn("Tell me about channels.")
	t1.UserMessage = "They synchronize goroutines."
	t1.AppendNote("[Skeptic]: [8/10] solid")
	s.RecordTechnical(&interview.TechnicalEval{Score: 8, Accuracy: interview.AccuracyAccurate, Depth: interview.DepthDeep})

	s.BeginTurn("Thanks, that's all for today.")
	s.Terminate("candidate requested stop")
	return s
}

func TestBuild(t *testing.T) {
	s := testState()
	verdict := interview.FallbackVerdict(s)

	doc := Build(s, verdict)

	if doc.ParticipantName != "Alex" {
		t.Errorf("participant = %q, want Alex", doc.ParticipantName)
	}
	if len(doc.Turns) != 2 {
		t.Fatalf("len(Turns) = %d, want 2", len(doc.Turns))
	}
	if doc.Turns[0].Turn != 1 || doc.Turns[1].Turn != 2 {
		t.Errorf("turn numbers = %d,%d, want 1,2", doc.Turns[0].Turn, doc.Turns[1].Turn)
	}
	if doc.Turns[1].UserMessage != "" {
		t.Errorf("final turn user message = %q, want empty", doc.Turns[1].UserMessage)
	}
	if len(doc.Turns[0].InternalNotes) != 1 {
		t.Errorf("turn 1 notes = %d, want 1", len(doc.Turns[0].InternalNotes))
	}
	if len(doc.Metadata.Plan) != 2 {
		t.Errorf("plan topics = %d, want 2", len(doc.Metadata.Plan))
	}
	if doc.Metadata.TerminationReason != "candidate requested stop" {
		t.Errorf("termination reason = %q", doc.Metadata.TerminationReason)
	}
	if doc.FinalFeedback == nil || !doc.FinalFeedback.Fallback {
		t.Error("final feedback missing or not marked fallback")
	}
}

func TestWriteTo(t *testing.T) {
	dir := t.TempDir()
	s := testState()
	doc := Build(s, interview.FallbackVerdict(s))

	path, err := WriteTo(dir, doc)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	var got Document
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal log: %v", err)
	}
	if got.ParticipantName != "Alex" {
		t.Errorf("round-trip participant = %q, want Alex", got.ParticipantName)
	}
	if got.Metadata.SessionID != "abc123" {
		t.Errorf("round-trip session id = %q, want abc123", got.Metadata.SessionID)
	}
}

func TestDefaultLogDirEnvOverride(t *testing.T) {
	t.Setenv("CRUCIBLE_LOG_DIR", "/tmp/crucible-test-logs")
	dir, err := DefaultLogDir()
	if err != nil {
		t.Fatalf("DefaultLogDir() error = %v", err)
	}
	if dir != "/tmp/crucible-test-logs" {
		t.Errorf("dir = %q, want env override", dir)
	}
}
