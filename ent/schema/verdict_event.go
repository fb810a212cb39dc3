package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// VerdictEvent records the final structured feedback for a session.
// Exactly one per finished interview.
type VerdictEvent struct {
	ent.Schema
}

func (VerdictEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (VerdictEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("assessed_grade").
			Comment("junior, middle, senior, or unknown"),
		field.String("recommendation").
			Comment("strong_hire, hire, no_hire, or unknown"),
		field.Int("confidence").
			Default(0).
			Comment("Reporter confidence, 0-100"),
		field.Text("reasoning").
			Default(""),
		field.Bool("fallback").
			Default(false).
			Comment("True when report generation failed and a placeholder was stored"),
		field.JSON("verdict", map[string]any{}).
			Comment("Full verdict document as JSON"),
	}
}

func (VerdictEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("recommendation"),
	}
}
