package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/crucible/internal/interview"
	"github.com/abhisek/crucible/internal/llm"
)

// VoiceConfig holds generation parameters for interviewer messages.
type VoiceConfig struct {
	MaxTokens   int
	Temperature float64
	// RecentTurns caps how much transcript the voice sees. The planner
	// already condensed everything older into the directive.
	RecentTurns int
}

// DefaultVoiceConfig returns sensible defaults.
func DefaultVoiceConfig() VoiceConfig {
	return VoiceConfig{MaxTokens: 512, Temperature: 0.7, RecentTurns: 4}
}

// Voice turns the planner's directive into the one message the candidate
// sees. It is the only agent whose output leaves the internal debate.
type Voice struct {
	provider llm.Provider
	cfg      VoiceConfig
}

// NewVoice creates a response generator backed by the given provider.
func NewVoice(provider llm.Provider, cfg VoiceConfig) *Voice {
	return &Voice{provider: provider, cfg: cfg}
}

// VoiceInput is the rendering context for one outbound message.
type VoiceInput struct {
	Candidate  interview.Candidate
	Protocol   interview.Protocol
	TopicLabel string
	// Directive is the planner's instruction spelled out in prose.
	Directive string
	// ChallengeFact asks the voice to dispute a hallucinated claim
	// before continuing. CorrectFact carries the correction when known.
	ChallengeFact bool
	CorrectFact   string
	RecentTurns   []*interview.Turn
}

type voiceOutput struct {
	Message         string `json:"message"`
	InternalThought string `json:"internal_thought"`
}

// Speak generates the interviewer's next message. An empty message is an
// error: the candidate must never face a blank turn.
func (v *Voice) Speak(ctx context.Context, in VoiceInput) (message, thought string, err error) {
	ctx = llm.WithPurpose(ctx, "voice")

	if v.cfg.RecentTurns > 0 && len(in.RecentTurns) > v.cfg.RecentTurns {
		in.RecentTurns = in.RecentTurns[len(in.RecentTurns)-v.cfg.RecentTurns:]
	}

	resp, err := v.provider.Generate(ctx, llm.Request{
		System: voiceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVoiceMessage(in)},
		},
		Schema:      VoiceSchema,
		MaxTokens:   v.cfg.MaxTokens,
		Temperature: v.cfg.Temperature,
	})
	if err != nil {
		return "", "", fmt.Errorf("voice generation failed: %w", err)
	}

	var raw voiceOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", "", fmt.Errorf("parse voice response: %w", err)
	}
	if raw.Message == "" {
		return "", "", fmt.Errorf("voice returned an empty message")
	}

	return raw.Message, raw.InternalThought, nil
}

// DescribeDirective spells out a planner decision for the voice prompt.
func DescribeDirective(d interview.Decision, topicLabel string) string {
	switch d.Directive {
	case interview.DirectiveAskFollowup:
		return fmt.Sprintf("Ask a follow-up question on %q, probing a different facet than before.", topicLabel)
	case interview.DirectiveAdvanceTopic:
		return fmt.Sprintf("Open the next topic: %q. Briefly acknowledge the previous answer, then ask the first question.", topicLabel)
	case interview.DirectiveAnswerQuestion:
		return "Answer the candidate's counter-question in one or two sentences, then re-pose your pending question."
	case interview.DirectiveRedirect:
		return fmt.Sprintf("The candidate drifted off topic. Politely steer them back to %q and repeat the pending question.", topicLabel)
	case interview.DirectiveRescue:
		return fmt.Sprintf("The candidate is struggling. Ask a much simpler, scaffolded question on %q and reassure them.", topicLabel)
	case interview.DirectiveSpeedrunNext:
		return fmt.Sprintf("Strong candidate. Jump straight to %q with a hard question, no pleasantries.", topicLabel)
	case interview.DirectiveStressProbe:
		return fmt.Sprintf("Push hard: ask an expert-level edge-case question on %q.", topicLabel)
	case interview.DirectiveTerminate:
		return "Thank the candidate and close the interview. Do not reveal scores or the verdict."
	}
	return string(d.Directive)
}
