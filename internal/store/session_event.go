package store

import (
	"context"
	"fmt"

	"github.com/abhisek/crucible/ent"
	"github.com/abhisek/crucible/ent/sessionevent"
	"github.com/abhisek/crucible/ent/verdictevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetCandidateName(data.CandidateName).
		SetRole(data.Role).
		SetTargetGrade(data.TargetGrade).
		SetTurnCount(data.TurnCount).
		SetProtocol(data.Protocol).
		SetTerminationReason(data.TerminationReason)

	if len(data.PlanSummary) > 0 {
		builder = builder.SetPlanSummary(data.PlanSummary)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessionSummaries(ctx context.Context, opts QueryOpts) ([]SessionSummaryRecord, error) {
	query := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if !opts.From.IsZero() {
		query = query.Where(sessionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(sessionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	records := make([]SessionSummaryRecord, len(events))
	for i, e := range events {
		rec := SessionSummaryRecord{
			SessionID:         e.SessionID,
			Timestamp:         e.Timestamp,
			TurnCount:         e.TurnCount,
			TerminationReason: e.TerminationReason,
		}

		// Candidate metadata lives on the start event.
		start, err := r.client.SessionEvent.Query().
			Where(sessionevent.SessionID(e.SessionID), sessionevent.Action("start")).
			First(ctx)
		if err == nil {
			rec.CandidateName = start.CandidateName
			rec.Role = start.Role
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query session start: %w", err)
		}

		verdict, err := r.client.VerdictEvent.Query().
			Where(verdictevent.SessionID(e.SessionID)).
			First(ctx)
		if err == nil {
			rec.AssessedGrade = verdict.AssessedGrade
			rec.Recommendation = verdict.Recommendation
		} else if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query session verdict: %w", err)
		}

		records[i] = rec
	}
	return records, nil
}
