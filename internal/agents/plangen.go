package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
)

// PlannerConfig holds generation parameters for interview plan generation.
type PlannerConfig struct {
	MaxTokens   int
	Temperature float64
	MaxTopics   int
}

// DefaultPlannerConfig returns sensible defaults.
func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{MaxTokens: 2048, Temperature: 0.4, MaxTopics: 8}
}

// PlanGenerator produces the initial interview plan from candidate
// metadata at session start.
type PlanGenerator struct {
	provider llm.Provider
	cfg      PlannerConfig
}

// NewPlanGenerator creates a plan generator backed by the given provider.
func NewPlanGenerator(provider llm.Provider, cfg PlannerConfig) *PlanGenerator {
	return &PlanGenerator{provider: provider, cfg: cfg}
}

type planOutput struct {
	Topics []struct {
		Topic      string `json:"topic"`
		Difficulty string `json:"difficulty"`
		Rationale  string `json:"rationale"`
	} `json:"topics"`
	InternalThought string `json:"internal_thought"`
}

// Generate builds an interview plan for the candidate: 6-8 concrete
// topics ordered from fundamentals to advanced.
func (g *PlanGenerator) Generate(ctx context.Context, c interview.Candidate) (*interview.Plan, string, error) {
	ctx = llm.WithPurpose(ctx, "interview-plan")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanMessage(c)},
		},
		Schema:      PlanSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, "", fmt.Errorf("plan generation failed: %w", err)
	}

	var raw planOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, "", fmt.Errorf("parse plan response: %w", err)
	}
	if len(raw.Topics) == 0 {
		return nil, "", fmt.Errorf("plan generation returned no topics")
	}

	topics := make([]interview.Topic, 0, len(raw.Topics))
	for i, t := range raw.Topics {
		if g.cfg.MaxTopics > 0 && i >= g.cfg.MaxTopics {
			break
		}
		topics = append(topics, interview.Topic{
			ID:         i + 1,
			Label:      t.Topic,
			Difficulty: interview.Difficulty(t.Difficulty),
			Rationale:  t.Rationale,
		})
	}

	return interview.NewPlan(topics), raw.InternalThought, nil
}

// FallbackPlan is the deterministic two-topic plan used when generation
// fails. The interview degrades but never aborts at the planning step.
func FallbackPlan(c interview.Candidate) *interview.Plan {
	first := interview.DifficultyMedium
	if c.TargetGrade == "Junior" || c.TargetGrade == "junior" {
		first = interview.DifficultyEasy
	}
	exp := c.Experience
	if len(exp) > 50 {
		exp = exp[:50] + "..."
	}
	return interview.NewPlan([]interview.Topic{
		{
			ID:         1,
			Label:      fmt.Sprintf("Fundamentals for a %s", c.Role),
			Difficulty: first,
			Rationale:  "baseline check of core knowledge",
		},
		{
			ID:         2,
			Label:      fmt.Sprintf("Claimed experience: %s", exp),
			Difficulty: interview.DifficultyMedium,
			Rationale:  "verify the stated experience",
		},
	})
}
