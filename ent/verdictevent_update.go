// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crucible/ent/predicate"
	"github.com/abhisek/crucible/ent/verdictevent"
)

// VerdictEventUpdate is the builder for updating VerdictEvent entities.
type VerdictEventUpdate struct {
	config
	hooks    []Hook
	mutation *VerdictEventMutation
}

// Where appends a list predicates to the VerdictEventUpdate builder.
func (_u *VerdictEventUpdate) Where(ps ...predicate.VerdictEvent) *VerdictEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *VerdictEventUpdate) SetSessionID(v string) *VerdictEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableSessionID(v *string) *VerdictEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAssessedGrade sets the "assessed_grade" field.
func (_u *VerdictEventUpdate) SetAssessedGrade(v string) *VerdictEventUpdate {
	_u.mutation.SetAssessedGrade(v)
	return _u
}

// SetNillableAssessedGrade sets the "assessed_grade" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableAssessedGrade(v *string) *VerdictEventUpdate {
	if v != nil {
		_u.SetAssessedGrade(*v)
	}
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *VerdictEventUpdate) SetRecommendation(v string) *VerdictEventUpdate {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableRecommendation(v *string) *VerdictEventUpdate {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerdictEventUpdate) SetConfidence(v int) *VerdictEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableConfidence(v *int) *VerdictEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VerdictEventUpdate) AddConfidence(v int) *VerdictEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *VerdictEventUpdate) SetReasoning(v string) *VerdictEventUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableReasoning(v *string) *VerdictEventUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *VerdictEventUpdate) SetFallback(v bool) *VerdictEventUpdate {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *VerdictEventUpdate) SetNillableFallback(v *bool) *VerdictEventUpdate {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *VerdictEventUpdate) SetVerdict(v map[string]interface{}) *VerdictEventUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// Mutation returns the VerdictEventMutation object of the builder.
func (_u *VerdictEventUpdate) Mutation() *VerdictEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VerdictEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VerdictEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := verdictevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "VerdictEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *VerdictEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdictevent.Table, verdictevent.Columns, sqlgraph.NewFieldSpec(verdictevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(verdictevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessedGrade(); ok {
		_spec.SetField(verdictevent.FieldAssessedGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(verdictevent.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verdictevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(verdictevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(verdictevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(verdictevent.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(verdictevent.FieldVerdict, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdictevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VerdictEventUpdateOne is the builder for updating a single VerdictEvent entity.
type VerdictEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VerdictEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *VerdictEventUpdateOne) SetSessionID(v string) *VerdictEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableSessionID(v *string) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAssessedGrade sets the "assessed_grade" field.
func (_u *VerdictEventUpdateOne) SetAssessedGrade(v string) *VerdictEventUpdateOne {
	_u.mutation.SetAssessedGrade(v)
	return _u
}

// SetNillableAssessedGrade sets the "assessed_grade" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableAssessedGrade(v *string) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetAssessedGrade(*v)
	}
	return _u
}

// SetRecommendation sets the "recommendation" field.
func (_u *VerdictEventUpdateOne) SetRecommendation(v string) *VerdictEventUpdateOne {
	_u.mutation.SetRecommendation(v)
	return _u
}

// SetNillableRecommendation sets the "recommendation" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableRecommendation(v *string) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetRecommendation(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *VerdictEventUpdateOne) SetConfidence(v int) *VerdictEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableConfidence(v *int) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *VerdictEventUpdateOne) AddConfidence(v int) *VerdictEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *VerdictEventUpdateOne) SetReasoning(v string) *VerdictEventUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableReasoning(v *string) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// SetFallback sets the "fallback" field.
func (_u *VerdictEventUpdateOne) SetFallback(v bool) *VerdictEventUpdateOne {
	_u.mutation.SetFallback(v)
	return _u
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_u *VerdictEventUpdateOne) SetNillableFallback(v *bool) *VerdictEventUpdateOne {
	if v != nil {
		_u.SetFallback(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *VerdictEventUpdateOne) SetVerdict(v map[string]interface{}) *VerdictEventUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// Mutation returns the VerdictEventMutation object of the builder.
func (_u *VerdictEventUpdateOne) Mutation() *VerdictEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the VerdictEventUpdate builder.
func (_u *VerdictEventUpdateOne) Where(ps ...predicate.VerdictEvent) *VerdictEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VerdictEventUpdateOne) Select(field string, fields ...string) *VerdictEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VerdictEvent entity.
func (_u *VerdictEventUpdateOne) Save(ctx context.Context) (*VerdictEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VerdictEventUpdateOne) SaveX(ctx context.Context) *VerdictEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VerdictEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VerdictEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VerdictEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := verdictevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "VerdictEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *VerdictEventUpdateOne) sqlSave(ctx context.Context) (_node *VerdictEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(verdictevent.Table, verdictevent.Columns, sqlgraph.NewFieldSpec(verdictevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VerdictEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, verdictevent.FieldID)
		for _, f := range fields {
			if !verdictevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != verdictevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(verdictevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AssessedGrade(); ok {
		_spec.SetField(verdictevent.FieldAssessedGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Recommendation(); ok {
		_spec.SetField(verdictevent.FieldRecommendation, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(verdictevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(verdictevent.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(verdictevent.FieldReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fallback(); ok {
		_spec.SetField(verdictevent.FieldFallback, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(verdictevent.FieldVerdict, field.TypeJSON, value)
	}
	_node = &VerdictEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{verdictevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
