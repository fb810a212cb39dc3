package interview

import "fmt"

// Grade is the assessed candidate level.
type Grade string

const (
	GradeJunior  Grade = "junior"
	GradeMiddle  Grade = "middle"
	GradeSenior  Grade = "senior"
	GradeUnknown Grade = "unknown"
)

// Recommendation is the hiring call.
type Recommendation string

const (
	RecStrongHire Recommendation = "strong_hire"
	RecHire       Recommendation = "hire"
	RecNoHire     Recommendation = "no_hire"
	RecUnknown    Recommendation = "unknown"
)

// SkillAssessment summarizes one topic in the final verdict.
type SkillAssessment struct {
	Topic     string `json:"topic"`
	Score     int    `json:"score"`
	Confirmed bool   `json:"confirmed"`
	Feedback  string `json:"feedback,omitempty"`
}

// SoftSkills is the behavioral block of the final verdict.
type SoftSkills struct {
	Clarity    int    `json:"clarity"`
	Honesty    int    `json:"honesty"`
	Engagement int    `json:"engagement"`
	Notes      string `json:"notes,omitempty"`
}

// Verdict is the structured final feedback produced at session close.
type Verdict struct {
	AssessedGrade   Grade             `json:"assessed_grade"`
	Recommendation  Recommendation    `json:"hiring_recommendation"`
	Confidence      int               `json:"confidence_score"` // 0-100
	Reasoning       string            `json:"verdict_reasoning"`
	ConfirmedSkills []SkillAssessment `json:"confirmed_skills"`
	KnowledgeGaps   []SkillAssessment `json:"knowledge_gaps"`
	SoftSkills      SoftSkills        `json:"soft_skills"`
	Roadmap         []string          `json:"roadmap,omitempty"`
	Resources       []string          `json:"resources,omitempty"`
	Fallback        bool              `json:"fallback,omitempty"`
}

// confirmedThreshold splits topics into confirmed skills vs knowledge
// gaps in the final verdict.
const confirmedThreshold = 7

// Validate checks the fields the session close path requires.
func (v *Verdict) Validate() error {
	switch v.AssessedGrade {
	case GradeJunior, GradeMiddle, GradeSenior, GradeUnknown:
	default:
		return fmt.Errorf("invalid assessed grade %q", v.AssessedGrade)
	}
	switch v.Recommendation {
	case RecStrongHire, RecHire, RecNoHire, RecUnknown:
	default:
		return fmt.Errorf("invalid recommendation %q", v.Recommendation)
	}
	if v.Confidence < 0 || v.Confidence > 100 {
		return fmt.Errorf("confidence %d out of range", v.Confidence)
	}
	return nil
}

// SplitSkills partitions the plan's scored topics into confirmed skills
// and knowledge gaps. Unscored topics are omitted.
func SplitSkills(p *Plan) (confirmed, gaps []SkillAssessment) {
	for i := range p.Topics {
		t := &p.Topics[i]
		if t.Score == nil {
			continue
		}
		sa := SkillAssessment{
			Topic:     t.Label,
			Score:     *t.Score,
			Confirmed: *t.Score >= confirmedThreshold,
		}
		if sa.Confirmed {
			confirmed = append(confirmed, sa)
		} else {
			gaps = append(gaps, sa)
		}
	}
	return confirmed, gaps
}

// FallbackVerdict builds the minimal verdict used when report generation
// is exhausted. Grade and recommendation are marked unknown so the
// session log is never lost to a reporting failure.
func FallbackVerdict(s *SessionState) *Verdict {
	confirmed, gaps := SplitSkills(s.Plan)
	return &Verdict{
		AssessedGrade:   GradeUnknown,
		Recommendation:  RecUnknown,
		Confidence:      0,
		Reasoning:       "report generation failed; verdict unavailable",
		ConfirmedSkills: confirmed,
		KnowledgeGaps:   gaps,
		Fallback:        true,
	}
}
