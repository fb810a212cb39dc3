package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
)

// SkepticConfig holds generation parameters for technical evaluation.
type SkepticConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultSkepticConfig returns sensible defaults.
func DefaultSkepticConfig() SkepticConfig {
	return SkepticConfig{MaxTokens: 512, Temperature: 0.1}
}

// Skeptic is the technical evaluator: it scores an answer's hard-skills
// content against the active topic. It writes nothing itself; the engine
// applies its result to the session state.
type Skeptic struct {
	provider llm.Provider
	cfg      SkepticConfig
}

// NewSkeptic creates a technical evaluator backed by the given provider.
func NewSkeptic(provider llm.Provider, cfg SkepticConfig) *Skeptic {
	return &Skeptic{provider: provider, cfg: cfg}
}

// SkepticInput is everything the technical evaluator sees for one answer.
type SkepticInput struct {
	Candidate       interview.Candidate
	TopicLabel      string
	TopicDifficulty interview.Difficulty
	Question        string
	Answer          string
}

type skepticOutput struct {
	Score                 int      `json:"score"`
	Accuracy              string   `json:"accuracy"`
	Depth                 string   `json:"depth"`
	InternalThought       string   `json:"internal_thought"`
	Issues                []string `json:"issues"`
	CorrectAnswer         *string  `json:"correct_answer"`
	ContradictionDetected bool     `json:"contradiction_detected"`
	FictionalTermDetected bool     `json:"fictional_term_detected"`
}

// Evaluate scores one answer. An error (provider failure or out-of-range
// output) means the evaluation is degraded; the caller substitutes a
// neutral placeholder rather than failing the turn.
func (s *Skeptic) Evaluate(ctx context.Context, in SkepticInput) (*interview.TechnicalEval, error) {
	ctx = llm.WithPurpose(ctx, "technical-eval")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: skepticSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSkepticMessage(in)},
		},
		Schema:      TechnicalEvalSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("technical evaluation failed: %w", err)
	}

	var raw skepticOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse technical evaluation: %w", err)
	}

	if raw.Score < 0 || raw.Score > 10 {
		return nil, fmt.Errorf("technical score %d out of range", raw.Score)
	}

	eval := &interview.TechnicalEval{
		Score:                 raw.Score,
		Accuracy:              interview.Accuracy(raw.Accuracy),
		Depth:                 interview.Depth(raw.Depth),
		Thought:               raw.InternalThought,
		Issues:                raw.Issues,
		ContradictionDetected: raw.ContradictionDetected,
		FictionalTermDetected: raw.FictionalTermDetected,
	}
	if raw.CorrectAnswer != nil {
		eval.CorrectAnswer = *raw.CorrectAnswer
	}
	return eval, nil
}

// FormatNote renders the evaluation as an internal-debate note.
func (s *Skeptic) FormatNote(eval *interview.TechnicalEval) string {
	parts := []string{eval.Thought}
	if len(eval.Issues) > 0 {
		parts = append(parts, "Issues: "+strings.Join(eval.Issues, "; "))
	}
	if eval.Accuracy == interview.AccuracyHallucinated {
		parts = append(parts, "HALLUCINATION")
	}
	if eval.FictionalTermDetected {
		parts = append(parts, "FICTIONAL TERM")
	}
	if eval.ContradictionDetected {
		parts = append(parts, "CONTRADICTION")
	}
	return fmt.Sprintf("[Skeptic]: [%d/10] %s", eval.Score, strings.Join(parts, " | "))
}
