package interview

// RequiredQuestions is the fixed number of probes per topic. A topic is
// covered once this many answers have been evaluated against it.
const RequiredQuestions = 2

// Topic is one unit of interview content with a fixed question quota and
// an accumulated score. The last recorded score is authoritative: the
// second question within a topic probes a distinct, deeper facet, so the
// latest evaluation supersedes earlier ones rather than averaging.
type Topic struct {
	ID             int
	Label          string
	Difficulty     Difficulty
	Rationale      string
	QuestionsAsked int
	Score          *int
	Covered        bool
}

// Plan is the ordered sequence of topics for the interview, with a single
// advancing cursor. Informally called the skill tree, though topics form a
// flat ordered list. The cursor always points at an uncovered topic, or
// past the end once every topic is covered.
type Plan struct {
	Topics []Topic
	Cursor int
}

// NewPlan builds a plan over the given topics with the cursor at the start.
func NewPlan(topics []Topic) *Plan {
	return &Plan{Topics: topics}
}

// Active returns the topic under the cursor, or nil when all topics are
// covered.
func (p *Plan) Active() *Topic {
	if p.Cursor < 0 || p.Cursor >= len(p.Topics) {
		return nil
	}
	return &p.Topics[p.Cursor]
}

// Exhausted reports whether the cursor has run past the last topic.
func (p *Plan) Exhausted() bool {
	return p.Cursor >= len(p.Topics)
}

// CoveredCount returns the number of covered topics.
func (p *Plan) CoveredCount() int {
	n := 0
	for i := range p.Topics {
		if p.Topics[i].Covered {
			n++
		}
	}
	return n
}

// RecordEvaluation applies a technical score to the active topic:
// increments its question counter, records the score (last value wins),
// and marks the topic covered once the quota is reached. The cursor is
// not touched; advancing is the planner's exclusive responsibility.
// Returns false when there is no active topic.
func (p *Plan) RecordEvaluation(score int) bool {
	t := p.Active()
	if t == nil {
		return false
	}
	if t.QuestionsAsked < RequiredQuestions {
		t.QuestionsAsked++
	}
	s := score
	t.Score = &s
	if t.QuestionsAsked >= RequiredQuestions {
		t.Covered = true
	}
	return true
}

// AdvanceCursor moves the cursor forward to the next uncovered topic.
// The cursor never moves backward, so covered topics are never revisited.
// Returns false when no uncovered topic remains.
func (p *Plan) AdvanceCursor() bool {
	for i := p.Cursor + 1; i <= len(p.Topics); i++ {
		p.Cursor = i
		if i < len(p.Topics) && !p.Topics[i].Covered {
			return true
		}
	}
	return false
}
