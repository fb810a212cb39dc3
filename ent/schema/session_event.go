package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records interview lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

// PlanTopicSummary is the serialized form of one plan topic for persistence.
type PlanTopicSummary struct {
	Label      string `json:"label"`
	Difficulty string `json:"difficulty"`
	Score      *int   `json:"score,omitempty"`
	Covered    bool   `json:"covered"`
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("candidate_name").
			Default("").
			Comment("Candidate name (on start only)"),
		field.String("role").
			Default("").
			Comment("Target position (on start only)"),
		field.String("target_grade").
			Default("").
			Comment("Declared grade (on start only)"),
		field.Int("turn_count").
			Default(0).
			Comment("Total turns (on end only)"),
		field.String("protocol").
			Default("").
			Comment("Protocol active at termination (on end only)"),
		field.String("termination_reason").
			Default("").
			Comment("Why the interview ended (on end only)"),
		field.JSON("plan_summary", []PlanTopicSummary{}).
			Optional().
			Comment("Serialized interview plan"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
