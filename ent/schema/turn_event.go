package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one completed interview exchange, including the
// agents' internal debate notes for that turn.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.Int("turn_id").
			Comment("1-based turn number within the session"),
		field.Text("agent_message").
			Default("").
			Comment("What the interviewer said"),
		field.Text("user_message").
			Default("").
			Comment("Candidate reply; empty on the final turn"),
		field.String("intent").
			Default("").
			Comment("Classified intent of the reply"),
		field.String("protocol").
			Default("").
			Comment("Protocol after this turn's decision"),
		field.String("directive").
			Default("").
			Comment("Planner directive for the next message"),
		field.Int("technical_score").
			Optional().
			Nillable().
			Comment("Technical score for this answer, absent when not an answer"),
		field.JSON("notes", []string{}).
			Optional().
			Comment("Internal debate notes produced while processing the turn"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("session_id", "turn_id"),
	}
}
