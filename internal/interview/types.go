package interview

// Intent classifies a single candidate message. Classification is total:
// every message maps to exactly one variant.
type Intent string

const (
	IntentAnswer   Intent = "answer"
	IntentQuestion Intent = "question"
	IntentOffTopic Intent = "off_topic"
	IntentStop     Intent = "stop"
)

// Valid reports whether i is one of the four known intents.
func (i Intent) Valid() bool {
	switch i {
	case IntentAnswer, IntentQuestion, IntentOffTopic, IntentStop:
		return true
	}
	return false
}

// Protocol is the active interview strategy mode. Held in SessionState,
// written only by the strategic planner.
type Protocol string

const (
	ProtocolStandard   Protocol = "standard"
	ProtocolRescue     Protocol = "rescue"
	ProtocolSpeedrun   Protocol = "speedrun"
	ProtocolStressTest Protocol = "stress_test"
)

// Directive instructs the response generator what to do next turn.
type Directive string

const (
	// DirectiveAskFollowup probes the active topic a second time.
	DirectiveAskFollowup Directive = "ask_followup"
	// DirectiveAdvanceTopic opens the next uncovered topic.
	DirectiveAdvanceTopic Directive = "advance_topic"
	// DirectiveAnswerQuestion answers the candidate's counter-question,
	// then re-poses the pending question. Does not consume a question slot.
	DirectiveAnswerQuestion Directive = "answer_question"
	// DirectiveRedirect steers an off-topic candidate back to the active
	// topic. Does not consume a question slot.
	DirectiveRedirect Directive = "redirect"
	// DirectiveRescue re-probes the active topic with lowered difficulty
	// and more scaffolding.
	DirectiveRescue Directive = "rescue"
	// DirectiveSpeedrunNext compresses the remaining plan: jump to the
	// next topic at raised difficulty.
	DirectiveSpeedrunNext Directive = "speedrun_next"
	// DirectiveStressProbe pushes a strong candidate with an expert-level
	// question on the active topic.
	DirectiveStressProbe Directive = "stress_probe"
	// DirectiveTerminate ends the interview and requests the final report.
	DirectiveTerminate Directive = "terminate"
)

// Accuracy classifies the factual quality of a technical answer.
type Accuracy string

const (
	AccuracyAccurate     Accuracy = "accurate"
	AccuracyPartial      Accuracy = "partially_correct"
	AccuracyIncorrect    Accuracy = "incorrect"
	AccuracyHallucinated Accuracy = "hallucinated"
)

// Depth classifies how deeply an answer engages with the topic.
type Depth string

const (
	DepthSuperficial Depth = "superficial"
	DepthAdequate    Depth = "adequate"
	DepthDeep        Depth = "deep"
	DepthExpert      Depth = "expert"
)

// Demeanor is the candidate's manner of communication on a single turn.
type Demeanor string

const (
	DemeanorNormal   Demeanor = "normal"
	DemeanorVerbose  Demeanor = "verbose"
	DemeanorSilent   Demeanor = "silent"
	DemeanorArrogant Demeanor = "arrogant"
	DemeanorStuck    Demeanor = "stuck"
	DemeanorNervous  Demeanor = "nervous"
)

// Level is a three-point scale used for engagement and stress.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Difficulty grades a topic in the interview plan.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Candidate holds the immutable candidate metadata captured at session start.
type Candidate struct {
	Name        string
	Role        string
	TargetGrade string
	Experience  string
}

// TechnicalEval is the Skeptic's judgment of one answer against the
// active topic.
type TechnicalEval struct {
	Score                 int // 0-10
	Accuracy              Accuracy
	Depth                 Depth
	Thought               string
	Issues                []string
	CorrectAnswer         string // set when a gross factual error was made
	ContradictionDetected bool
	FictionalTermDetected bool
}

// Hallucinated reports whether the answer contained invented facts or
// fictional terms.
func (e *TechnicalEval) Hallucinated() bool {
	return e.Accuracy == AccuracyHallucinated || e.FictionalTermDetected
}

// BehavioralEval is the Empath's judgment of communication and affect
// signals on one answer. Independent of the technical evaluation.
type BehavioralEval struct {
	Demeanor            Demeanor
	Clarity             int // 1-10
	Honesty             int // 1-10
	Engagement          Level
	StressLevel         Level
	Thought             string
	RecommendedProtocol Protocol
}
