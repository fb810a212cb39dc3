package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
)

// EmpathConfig holds generation parameters for behavioral evaluation.
type EmpathConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultEmpathConfig returns sensible defaults.
func DefaultEmpathConfig() EmpathConfig {
	return EmpathConfig{MaxTokens: 384, Temperature: 0.3}
}

// Empath is the behavioral evaluator. It never reads the Skeptic's
// output and never touches topic scores; the two evaluators are
// read-independent so either can fail without corrupting the other.
type Empath struct {
	provider llm.Provider
	cfg      EmpathConfig
}

// NewEmpath creates a behavioral evaluator backed by the given provider.
func NewEmpath(provider llm.Provider, cfg EmpathConfig) *Empath {
	return &Empath{provider: provider, cfg: cfg}
}

type empathOutput struct {
	Demeanor            string `json:"demeanor"`
	Clarity             int    `json:"clarity"`
	Honesty             int    `json:"honesty"`
	Engagement          string `json:"engagement"`
	StressLevel         string `json:"stress_level"`
	InternalThought     string `json:"internal_thought"`
	RecommendedProtocol string `json:"recommended_protocol"`
}

// Evaluate judges the communication signals of one answer. Errors mean
// a degraded evaluation; the turn proceeds without behavioral notes.
func (e *Empath) Evaluate(ctx context.Context, message string) (*interview.BehavioralEval, error) {
	ctx = llm.WithPurpose(ctx, "behavioral-eval")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: empathSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEmpathMessage(message)},
		},
		Schema:      BehavioralEvalSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("behavioral evaluation failed: %w", err)
	}

	var raw empathOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse behavioral evaluation: %w", err)
	}

	if raw.Clarity < 1 || raw.Clarity > 10 || raw.Honesty < 1 || raw.Honesty > 10 {
		return nil, fmt.Errorf("behavioral scores out of range (clarity=%d honesty=%d)", raw.Clarity, raw.Honesty)
	}

	return &interview.BehavioralEval{
		Demeanor:            interview.Demeanor(raw.Demeanor),
		Clarity:             raw.Clarity,
		Honesty:             raw.Honesty,
		Engagement:          interview.Level(raw.Engagement),
		StressLevel:         interview.Level(raw.StressLevel),
		Thought:             raw.InternalThought,
		RecommendedProtocol: interview.Protocol(raw.RecommendedProtocol),
	}, nil
}

// FormatNote renders the evaluation as an internal-debate note.
func (e *Empath) FormatNote(eval *interview.BehavioralEval) string {
	return fmt.Sprintf("[Empath]: %s (clarity %d/10, honesty %d/10, engagement %s, stress %s)",
		eval.Thought, eval.Clarity, eval.Honesty, eval.Engagement, eval.StressLevel)
}
