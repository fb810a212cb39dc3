package interview

import "testing"

func newTestState(topics, maxTurns int) *SessionState {
	return NewSessionState("test-session", Candidate{
		Name:        "Alex",
		Role:        "Backend Developer",
		TargetGrade: "Middle",
		Experience:  "3 years of Go",
	}, testPlan(topics), maxTurns)
}

// answerTurn simulates one full answer turn: open a turn, record the
// evaluation, run the planner, commit the decision.
func answerTurn(s *SessionState, eval *TechnicalEval) Decision {
	s.BeginTurn("question")
	s.RecordTechnical(eval)
	d := Decide(s, IntentAnswer, eval)
	s.ApplyDecision(d)
	return d
}

func eval(score int, depth Depth) *TechnicalEval {
	return &TechnicalEval{Score: score, Accuracy: AccuracyAccurate, Depth: depth}
}

func TestDecideStopAlwaysTerminates(t *testing.T) {
	for _, proto := range []Protocol{ProtocolStandard, ProtocolRescue, ProtocolSpeedrun, ProtocolStressTest} {
		s := newTestState(3, 10)
		s.Protocol = proto
		s.BeginTurn("q")

		d := Decide(s, IntentStop, nil)
		if d.Directive != DirectiveTerminate {
			t.Errorf("protocol %s: directive = %s, want terminate", proto, d.Directive)
		}
		if d.Protocol != proto {
			t.Errorf("protocol %s: changed to %s on stop", proto, d.Protocol)
		}
	}
}

func TestDecideTurnCapOverridesIntent(t *testing.T) {
	for _, intent := range []Intent{IntentAnswer, IntentQuestion, IntentOffTopic} {
		s := newTestState(5, 4)
		s.TurnCount = 3 // 3+1 >= 4

		d := Decide(s, intent, nil)
		if d.Directive != DirectiveTerminate {
			t.Errorf("intent %s: directive = %s, want terminate at turn cap", intent, d.Directive)
		}
	}
}

func TestDecideQuestionAndOffTopicHoldState(t *testing.T) {
	tests := []struct {
		intent Intent
		want   Directive
	}{
		{IntentQuestion, DirectiveAnswerQuestion},
		{IntentOffTopic, DirectiveRedirect},
	}

	for _, tt := range tests {
		s := newTestState(3, 10)
		s.BeginTurn("q")
		cursorBefore := s.Plan.Cursor

		d := Decide(s, tt.intent, nil)
		s.ApplyDecision(d)

		if d.Directive != tt.want {
			t.Errorf("intent %s: directive = %s, want %s", tt.intent, d.Directive, tt.want)
		}
		if s.Plan.Cursor != cursorBefore {
			t.Errorf("intent %s: cursor moved", tt.intent)
		}
		if s.Protocol != ProtocolStandard {
			t.Errorf("intent %s: protocol changed", tt.intent)
		}
		// No question slot consumed.
		if s.Plan.Topics[0].QuestionsAsked != 0 {
			t.Errorf("intent %s: question slot consumed", tt.intent)
		}
	}
}

func TestDecideFollowupThenAdvance(t *testing.T) {
	s := newTestState(2, 20)

	d := answerTurn(s, eval(6, DepthAdequate))
	if d.Directive != DirectiveAskFollowup {
		t.Fatalf("first answer: directive = %s, want ask_followup", d.Directive)
	}
	if s.Plan.Cursor != 0 {
		t.Fatalf("cursor moved on followup")
	}

	d = answerTurn(s, eval(6, DepthAdequate))
	if d.Directive != DirectiveAdvanceTopic {
		t.Fatalf("second answer: directive = %s, want advance_topic", d.Directive)
	}
	if s.Plan.Cursor != 1 {
		t.Fatalf("cursor = %d, want 1", s.Plan.Cursor)
	}
}

func TestDecideTerminatesWhenPlanExhausted(t *testing.T) {
	s := newTestState(1, 20)

	answerTurn(s, eval(6, DepthAdequate))
	d := answerTurn(s, eval(6, DepthAdequate))
	if d.Directive != DirectiveTerminate {
		t.Fatalf("directive = %s, want terminate with no topics left", d.Directive)
	}
	if !s.Terminal {
		t.Fatal("session not terminal")
	}
}

func TestProtocolRescueOnTwoLowScores(t *testing.T) {
	s := newTestState(5, 20)

	answerTurn(s, eval(2, DepthSuperficial))
	if s.Protocol != ProtocolStandard {
		t.Fatalf("protocol switched after one low score")
	}
	d := answerTurn(s, eval(3, DepthSuperficial))
	if s.Protocol != ProtocolRescue {
		t.Fatalf("protocol = %s, want rescue", s.Protocol)
	}
	// Topic covered, so this is an advance under rescue.
	if d.Directive != DirectiveAdvanceTopic {
		t.Fatalf("directive = %s, want advance_topic", d.Directive)
	}

	// Next low answer on an uncovered topic yields a rescue probe.
	d = answerTurn(s, eval(2, DepthSuperficial))
	if d.Directive != DirectiveRescue {
		t.Fatalf("directive = %s, want rescue", d.Directive)
	}
}

func TestProtocolSpeedrunOnTwoHighScores(t *testing.T) {
	s := newTestState(5, 20)

	answerTurn(s, eval(9, DepthDeep))
	answerTurn(s, eval(8, DepthDeep))
	if s.Protocol != ProtocolSpeedrun {
		t.Fatalf("protocol = %s, want speedrun", s.Protocol)
	}
}

func TestProtocolWindowSpansTopics(t *testing.T) {
	s := newTestState(5, 20)

	// Second answer of topic 1 and first of topic 2 are both low:
	// the window must not reset on topic advance.
	answerTurn(s, eval(7, DepthAdequate))
	answerTurn(s, eval(3, DepthSuperficial)) // covers topic 1
	answerTurn(s, eval(2, DepthSuperficial)) // topic 2, window = [3 2]
	if s.Protocol != ProtocolRescue {
		t.Fatalf("protocol = %s, want rescue across topic boundary", s.Protocol)
	}
}

func TestProtocolStressTestRequiresExpertDepth(t *testing.T) {
	s := newTestState(8, 40)

	// Enter speedrun.
	answerTurn(s, eval(9, DepthDeep))
	answerTurn(s, eval(9, DepthDeep))
	if s.Protocol != ProtocolSpeedrun {
		t.Fatalf("protocol = %s, want speedrun", s.Protocol)
	}

	// High scores without expert depth keep speedrun.
	answerTurn(s, eval(9, DepthDeep))
	if s.Protocol != ProtocolSpeedrun {
		t.Fatalf("protocol = %s, want speedrun to persist", s.Protocol)
	}

	// Two consecutive expert-depth answers escalate.
	answerTurn(s, eval(9, DepthExpert))
	answerTurn(s, eval(10, DepthExpert))
	if s.Protocol != ProtocolStressTest {
		t.Fatalf("protocol = %s, want stress_test", s.Protocol)
	}

	// stress_test is sticky against further high scores.
	answerTurn(s, eval(10, DepthExpert))
	if s.Protocol != ProtocolStressTest {
		t.Fatalf("protocol = %s, want stress_test to persist", s.Protocol)
	}
}

func TestProtocolRevertsToStandardOnMidBand(t *testing.T) {
	s := newTestState(8, 40)

	answerTurn(s, eval(9, DepthDeep))
	answerTurn(s, eval(9, DepthDeep))
	if s.Protocol != ProtocolSpeedrun {
		t.Fatalf("setup: protocol = %s, want speedrun", s.Protocol)
	}

	answerTurn(s, eval(5, DepthAdequate))
	if s.Protocol != ProtocolSpeedrun {
		t.Fatalf("protocol reverted after a single mid score")
	}
	answerTurn(s, eval(6, DepthAdequate))
	if s.Protocol != ProtocolStandard {
		t.Fatalf("protocol = %s, want standard after two mid-band scores", s.Protocol)
	}
}

func TestDecideDegradedEvaluation(t *testing.T) {
	s := newTestState(3, 20)
	s.BeginTurn("q")
	s.RecordTechnical(nil) // degraded: evaluator failed

	d := Decide(s, IntentAnswer, nil)
	s.ApplyDecision(d)

	if d.Directive != DirectiveAskFollowup {
		t.Fatalf("directive = %s, want ask_followup on degraded eval", d.Directive)
	}
	if s.Plan.Topics[0].QuestionsAsked != 0 {
		t.Fatal("degraded evaluation consumed a question slot")
	}
	if s.Plan.Topics[0].Covered {
		t.Fatal("degraded evaluation covered the topic")
	}
	w := s.ScoreWindow()
	if len(w) != 1 || w[0] != neutralScore {
		t.Fatalf("window = %v, want one neutral entry", w)
	}
}

func TestDecideHallucinationChallenge(t *testing.T) {
	s := newTestState(3, 20)
	s.BeginTurn("q")
	e := &TechnicalEval{
		Score:         1,
		Accuracy:      AccuracyHallucinated,
		Depth:         DepthSuperficial,
		CorrectAnswer: "GOMAXPROCS defaults to the number of CPUs",
	}
	s.RecordTechnical(e)

	d := Decide(s, IntentAnswer, e)
	if !d.ChallengeFact {
		t.Fatal("expected a hallucination challenge")
	}
	if d.CorrectFact == "" {
		t.Fatal("expected the correction to be carried")
	}
	if s.Behavior.HallucinationCount != 1 {
		t.Fatalf("hallucination count = %d, want 1", s.Behavior.HallucinationCount)
	}
}

// Scenario A from the design: strong candidate enters speedrun after
// topic 2 and topic 3 begins under it.
func TestScenarioSpeedrunAfterTwoTopics(t *testing.T) {
	s := newTestState(5, 20)

	answerTurn(s, eval(9, DepthDeep)) // topic 1, q1
	answerTurn(s, eval(9, DepthDeep)) // topic 1 covered -> speedrun
	if s.Protocol != ProtocolSpeedrun {
		t.Fatalf("protocol = %s, want speedrun after topic 1", s.Protocol)
	}
	answerTurn(s, eval(9, DepthDeep)) // topic 2, q1
	d := answerTurn(s, eval(9, DepthDeep))
	if s.Protocol != ProtocolSpeedrun {
		t.Fatalf("protocol = %s, want speedrun entering topic 3", s.Protocol)
	}
	if d.Directive != DirectiveSpeedrunNext {
		t.Fatalf("directive = %s, want speedrun_next", d.Directive)
	}
	if s.Plan.Cursor != 2 {
		t.Fatalf("cursor = %d, want topic 3 active", s.Plan.Cursor)
	}
}

// Liveness: the planner terminates within MaxTurns regardless of the
// intent sequence.
func TestSessionAlwaysTerminatesAtCap(t *testing.T) {
	s := newTestState(50, 6)

	for i := 0; !s.Terminal && i < 100; i++ {
		s.BeginTurn("q")
		d := Decide(s, IntentOffTopic, nil)
		s.ApplyDecision(d)
	}

	if !s.Terminal {
		t.Fatal("session never terminated")
	}
	if s.TurnCount >= s.MaxTurns {
		t.Fatalf("terminated at turn %d, cap %d", s.TurnCount, s.MaxTurns)
	}
	if s.Plan.CoveredCount() != 0 {
		t.Fatalf("covered = %d, want 0", s.Plan.CoveredCount())
	}
}
