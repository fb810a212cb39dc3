package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
)

// ReporterConfig holds generation parameters for the final report.
type ReporterConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultReporterConfig returns sensible defaults.
func DefaultReporterConfig() ReporterConfig {
	return ReporterConfig{MaxTokens: 2048, Temperature: 0.2}
}

// Reporter writes the structured final verdict from the terminal session
// state. It runs exactly once per session, after termination.
type Reporter struct {
	provider llm.Provider
	cfg      ReporterConfig
}

// NewReporter creates a report generator backed by the given provider.
func NewReporter(provider llm.Provider, cfg ReporterConfig) *Reporter {
	return &Reporter{provider: provider, cfg: cfg}
}

type reporterOutput struct {
	AssessedGrade        string   `json:"assessed_grade"`
	HiringRecommendation string   `json:"hiring_recommendation"`
	ConfidenceScore      int      `json:"confidence_score"`
	VerdictReasoning     string   `json:"verdict_reasoning"`
	ClarityScore         int      `json:"clarity_score"`
	HonestyScore         int      `json:"honesty_score"`
	EngagementScore      int      `json:"engagement_score"`
	SoftSkillsNotes      string   `json:"soft_skills_notes"`
	Roadmap              []string `json:"roadmap"`
	Resources            []string `json:"resources"`
	InternalThought      string   `json:"internal_thought"`
}

// Report builds the final verdict for a terminal session. The skill
// split comes from the recorded topic scores, not from the model: the
// model judges grade, recommendation, and the narrative; the scores are
// already facts.
func (r *Reporter) Report(ctx context.Context, s *interview.SessionState) (*interview.Verdict, string, error) {
	ctx = llm.WithPurpose(ctx, "final-report")

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: reporterSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReportMessage(s)},
		},
		Schema:      ReportSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return nil, "", fmt.Errorf("report generation failed: %w", err)
	}

	var raw reporterOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, "", fmt.Errorf("parse report response: %w", err)
	}

	confirmed, gaps := interview.SplitSkills(s.Plan)
	v := &interview.Verdict{
		AssessedGrade:   interview.Grade(raw.AssessedGrade),
		Recommendation:  interview.Recommendation(raw.HiringRecommendation),
		Confidence:      raw.ConfidenceScore,
		Reasoning:       raw.VerdictReasoning,
		ConfirmedSkills: confirmed,
		KnowledgeGaps:   gaps,
		SoftSkills: interview.SoftSkills{
			Clarity:    raw.ClarityScore,
			Honesty:    raw.HonestyScore,
			Engagement: raw.EngagementScore,
			Notes:      raw.SoftSkillsNotes,
		},
		Roadmap:   raw.Roadmap,
		Resources: raw.Resources,
	}
	if err := v.Validate(); err != nil {
		return nil, "", fmt.Errorf("report failed validation: %w", err)
	}

	return v, raw.InternalThought, nil
}
