package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
)

// RouterConfig holds generation parameters for intent classification.
type RouterConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultRouterConfig returns sensible defaults. Temperature is zero:
// classification should be as deterministic as the backend allows.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{MaxTokens: 256, Temperature: 0}
}

// Router classifies candidate messages into intents.
type Router struct {
	provider llm.Provider
	cfg      RouterConfig
}

// NewRouter creates an intent classifier backed by the given provider.
func NewRouter(provider llm.Provider, cfg RouterConfig) *Router {
	return &Router{provider: provider, cfg: cfg}
}

// RouteResult is the classification outcome for one candidate message.
type RouteResult struct {
	Intent       interview.Intent
	Thought      string
	IsSuspicious bool
}

type routerOutput struct {
	Intent          string `json:"intent"`
	InternalThought string `json:"internal_thought"`
	IsSuspicious    bool   `json:"is_suspicious"`
}

// Classify maps one candidate message to exactly one intent. The pending
// question gives the model context for the answer-vs-off_topic call.
// Callers fall back to off_topic on error, the safest redirect.
func (r *Router) Classify(ctx context.Context, pendingQuestion, message string) (*RouteResult, error) {
	ctx = llm.WithPurpose(ctx, "intent-routing")

	resp, err := r.provider.Generate(ctx, llm.Request{
		System: routerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRouterMessage(pendingQuestion, message)},
		},
		Schema:      IntentSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("intent classification failed: %w", err)
	}

	var raw routerOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse intent response: %w", err)
	}

	intent := interview.Intent(raw.Intent)
	if !intent.Valid() {
		return nil, fmt.Errorf("provider returned unknown intent %q", raw.Intent)
	}

	return &RouteResult{
		Intent:       intent,
		Thought:      raw.InternalThought,
		IsSuspicious: raw.IsSuspicious,
	}, nil
}
