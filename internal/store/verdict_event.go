package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendVerdictEvent(ctx context.Context, data VerdictEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	verdict := data.Verdict
	if verdict == nil {
		verdict = map[string]any{}
	}

	_, err = r.client.VerdictEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAssessedGrade(data.AssessedGrade).
		SetRecommendation(data.Recommendation).
		SetConfidence(data.Confidence).
		SetReasoning(data.Reasoning).
		SetFallback(data.Fallback).
		SetVerdict(verdict).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save verdict event: %w", err)
	}
	return nil
}
