package interview

import "testing"

func TestBeginTurnIDsAreGapless(t *testing.T) {
	s := newTestState(3, 10)
	for want := 1; want <= 5; want++ {
		turn := s.BeginTurn("q")
		if turn.ID != want {
			t.Fatalf("turn ID = %d, want %d", turn.ID, want)
		}
	}
	if len(s.Turns) != 5 {
		t.Fatalf("turns = %d, want 5", len(s.Turns))
	}
}

func TestTurnNotesAppendOnly(t *testing.T) {
	s := newTestState(3, 10)
	turn := s.BeginTurn("q")

	turn.AppendNote("[Router]: answer")
	turn.AppendNote("[Skeptic]: solid")
	turn.AppendNote("") // empty notes are dropped
	if len(turn.Notes) != 2 {
		t.Fatalf("notes = %d, want 2", len(turn.Notes))
	}

	turn.Close()
	turn.AppendNote("late note")
	if len(turn.Notes) != 2 {
		t.Fatal("note appended after close")
	}
}

func TestScoreWindowClamped(t *testing.T) {
	s := newTestState(5, 20)
	s.BeginTurn("q")
	for _, sc := range []int{3, 7, 9} {
		s.RecordTechnical(eval(sc, DepthAdequate))
	}
	w := s.ScoreWindow()
	if len(w) != scoreWindowSize {
		t.Fatalf("window length = %d, want %d", len(w), scoreWindowSize)
	}
	if w[0] != 7 || w[1] != 9 {
		t.Fatalf("window = %v, want [7 9]", w)
	}
}

func TestRecordBehavioralUpdatesContext(t *testing.T) {
	s := newTestState(3, 10)
	s.RecordBehavioral(&BehavioralEval{
		Demeanor:    DemeanorNervous,
		Clarity:     6,
		Honesty:     8,
		Engagement:  LevelMedium,
		StressLevel: LevelHigh,
	})
	if s.Behavior.Demeanor != DemeanorNervous {
		t.Fatalf("demeanor = %s, want nervous", s.Behavior.Demeanor)
	}
	if s.Behavior.StressLevel != LevelHigh {
		t.Fatalf("stress = %s, want high", s.Behavior.StressLevel)
	}

	// Degraded behavioral evaluation leaves the context untouched.
	s.RecordBehavioral(nil)
	if s.Behavior.Demeanor != DemeanorNervous {
		t.Fatal("nil evaluation mutated context")
	}
}

func TestMutationStopsAfterTerminal(t *testing.T) {
	s := newTestState(3, 10)
	s.BeginTurn("q")
	s.Terminate("generation failure")

	s.RecordTechnical(eval(9, DepthExpert))
	if s.Plan.Topics[0].QuestionsAsked != 0 {
		t.Fatal("technical record applied after terminal")
	}

	s.ApplyDecision(Decision{Directive: DirectiveAdvanceTopic, Protocol: ProtocolSpeedrun, AdvanceCursor: true})
	if s.Protocol != ProtocolStandard || s.Plan.Cursor != 0 {
		t.Fatal("decision applied after terminal")
	}
	if s.TerminationReason != "generation failure" {
		t.Fatalf("reason = %q", s.TerminationReason)
	}
}

func TestVerdictValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       Verdict
		wantErr bool
	}{
		{"valid", Verdict{AssessedGrade: GradeMiddle, Recommendation: RecHire, Confidence: 80}, false},
		{"fallback markers", Verdict{AssessedGrade: GradeUnknown, Recommendation: RecUnknown}, false},
		{"bad grade", Verdict{AssessedGrade: "staff", Recommendation: RecHire, Confidence: 50}, true},
		{"bad recommendation", Verdict{AssessedGrade: GradeJunior, Recommendation: "maybe", Confidence: 50}, true},
		{"confidence out of range", Verdict{AssessedGrade: GradeJunior, Recommendation: RecHire, Confidence: 120}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestSplitSkills(t *testing.T) {
	p := testPlan(3)
	s7, s4 := 7, 4
	p.Topics[0].Score = &s7
	p.Topics[1].Score = &s4
	// Topic 3 never scored.

	confirmed, gaps := SplitSkills(p)
	if len(confirmed) != 1 || confirmed[0].Score != 7 {
		t.Fatalf("confirmed = %+v, want one entry at 7", confirmed)
	}
	if len(gaps) != 1 || gaps[0].Score != 4 {
		t.Fatalf("gaps = %+v, want one entry at 4", gaps)
	}
}

func TestFallbackVerdictValidates(t *testing.T) {
	s := newTestState(2, 10)
	v := FallbackVerdict(s)
	if err := v.Validate(); err != nil {
		t.Fatalf("fallback verdict invalid: %v", err)
	}
	if !v.Fallback {
		t.Fatal("fallback flag not set")
	}
	if v.AssessedGrade != GradeUnknown || v.Recommendation != RecUnknown {
		t.Fatal("fallback verdict must mark grade and recommendation unknown")
	}
}
