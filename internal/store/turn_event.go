package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendTurnEvent(ctx context.Context, data TurnEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.TurnEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTurnID(data.TurnID).
		SetAgentMessage(data.AgentMessage).
		SetUserMessage(data.UserMessage).
		SetIntent(data.Intent).
		SetProtocol(data.Protocol).
		SetDirective(data.Directive)

	if data.TechnicalScore != nil {
		builder = builder.SetTechnicalScore(*data.TechnicalScore)
	}
	if len(data.Notes) > 0 {
		builder = builder.SetNotes(data.Notes)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save turn event: %w", err)
	}
	return nil
}
