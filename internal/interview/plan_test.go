package interview

import "testing"

func testPlan(n int) *Plan {
	topics := make([]Topic, n)
	for i := range topics {
		topics[i] = Topic{ID: i + 1, Label: "topic", Difficulty: DifficultyMedium}
	}
	return NewPlan(topics)
}

func TestRecordEvaluationQuota(t *testing.T) {
	p := testPlan(1)

	if !p.RecordEvaluation(6) {
		t.Fatal("expected record to succeed")
	}
	top := &p.Topics[0]
	if top.QuestionsAsked != 1 {
		t.Fatalf("questions asked = %d, want 1", top.QuestionsAsked)
	}
	if top.Covered {
		t.Fatal("topic covered after one question")
	}

	p.RecordEvaluation(8)
	if top.QuestionsAsked != RequiredQuestions {
		t.Fatalf("questions asked = %d, want %d", top.QuestionsAsked, RequiredQuestions)
	}
	if !top.Covered {
		t.Fatal("topic not covered after quota reached")
	}
	if top.Score == nil || *top.Score != 8 {
		t.Fatalf("score = %v, want last-value 8", top.Score)
	}

	// Extra evaluations never push the counter past the quota.
	p.RecordEvaluation(2)
	if top.QuestionsAsked != RequiredQuestions {
		t.Fatalf("questions asked = %d, want capped at %d", top.QuestionsAsked, RequiredQuestions)
	}
}

func TestRecordEvaluationNoActiveTopic(t *testing.T) {
	p := testPlan(1)
	p.Topics[0].Covered = true
	p.AdvanceCursor()

	if p.RecordEvaluation(5) {
		t.Fatal("expected record to fail with exhausted cursor")
	}
}

func TestAdvanceCursorMonotonic(t *testing.T) {
	p := testPlan(3)

	p.Topics[0].Covered = true
	if !p.AdvanceCursor() {
		t.Fatal("expected an uncovered topic to remain")
	}
	if p.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", p.Cursor)
	}

	// Skips covered topics.
	p.Topics[1].Covered = true
	p.Topics[2].Covered = true
	if p.AdvanceCursor() {
		t.Fatal("expected no uncovered topic")
	}
	if !p.Exhausted() {
		t.Fatal("expected exhausted plan")
	}

	// Cursor never moves backward.
	prev := p.Cursor
	p.AdvanceCursor()
	if p.Cursor < prev {
		t.Fatalf("cursor moved backward: %d -> %d", prev, p.Cursor)
	}
}

func TestAdvanceCursorSkipsAlreadyCovered(t *testing.T) {
	p := testPlan(4)
	p.Topics[0].Covered = true
	p.Topics[1].Covered = true
	p.Topics[2].Covered = true

	if !p.AdvanceCursor() {
		t.Fatal("expected topic 4 to be reachable")
	}
	if p.Cursor != 3 {
		t.Fatalf("cursor = %d, want 3", p.Cursor)
	}
}

func TestCoveredCount(t *testing.T) {
	p := testPlan(3)
	if p.CoveredCount() != 0 {
		t.Fatalf("covered = %d, want 0", p.CoveredCount())
	}
	p.Topics[0].Covered = true
	p.Topics[2].Covered = true
	if p.CoveredCount() != 2 {
		t.Fatalf("covered = %d, want 2", p.CoveredCount())
	}
}
