// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crucible/ent/predicate"
	"github.com/abhisek/crucible/ent/schema"
	"github.com/abhisek/crucible/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *SessionEventUpdate) SetCandidateName(v string) *SessionEventUpdate {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCandidateName(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SessionEventUpdate) SetRole(v string) *SessionEventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRole(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *SessionEventUpdate) SetTargetGrade(v string) *SessionEventUpdate {
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTargetGrade(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *SessionEventUpdate) SetTurnCount(v int) *SessionEventUpdate {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTurnCount(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *SessionEventUpdate) AddTurnCount(v int) *SessionEventUpdate {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *SessionEventUpdate) SetProtocol(v string) *SessionEventUpdate {
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableProtocol(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *SessionEventUpdate) SetTerminationReason(v string) *SessionEventUpdate {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableTerminationReason(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// SetPlanSummary sets the "plan_summary" field.
func (_u *SessionEventUpdate) SetPlanSummary(v []schema.PlanTopicSummary) *SessionEventUpdate {
	_u.mutation.SetPlanSummary(v)
	return _u
}

// AppendPlanSummary appends value to the "plan_summary" field.
func (_u *SessionEventUpdate) AppendPlanSummary(v []schema.PlanTopicSummary) *SessionEventUpdate {
	_u.mutation.AppendPlanSummary(v)
	return _u
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (_u *SessionEventUpdate) ClearPlanSummary() *SessionEventUpdate {
	_u.mutation.ClearPlanSummary()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(sessionevent.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(sessionevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(sessionevent.FieldTargetGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(sessionevent.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(sessionevent.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(sessionevent.FieldProtocol, field.TypeString, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(sessionevent.FieldTerminationReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanSummary(); ok {
		_spec.SetField(sessionevent.FieldPlanSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldPlanSummary, value)
		})
	}
	if _u.mutation.PlanSummaryCleared() {
		_spec.ClearField(sessionevent.FieldPlanSummary, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCandidateName sets the "candidate_name" field.
func (_u *SessionEventUpdateOne) SetCandidateName(v string) *SessionEventUpdateOne {
	_u.mutation.SetCandidateName(v)
	return _u
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCandidateName(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCandidateName(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *SessionEventUpdateOne) SetRole(v string) *SessionEventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRole(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTargetGrade sets the "target_grade" field.
func (_u *SessionEventUpdateOne) SetTargetGrade(v string) *SessionEventUpdateOne {
	_u.mutation.SetTargetGrade(v)
	return _u
}

// SetNillableTargetGrade sets the "target_grade" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTargetGrade(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTargetGrade(*v)
	}
	return _u
}

// SetTurnCount sets the "turn_count" field.
func (_u *SessionEventUpdateOne) SetTurnCount(v int) *SessionEventUpdateOne {
	_u.mutation.ResetTurnCount()
	_u.mutation.SetTurnCount(v)
	return _u
}

// SetNillableTurnCount sets the "turn_count" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTurnCount(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTurnCount(*v)
	}
	return _u
}

// AddTurnCount adds value to the "turn_count" field.
func (_u *SessionEventUpdateOne) AddTurnCount(v int) *SessionEventUpdateOne {
	_u.mutation.AddTurnCount(v)
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *SessionEventUpdateOne) SetProtocol(v string) *SessionEventUpdateOne {
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableProtocol(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *SessionEventUpdateOne) SetTerminationReason(v string) *SessionEventUpdateOne {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableTerminationReason(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// SetPlanSummary sets the "plan_summary" field.
func (_u *SessionEventUpdateOne) SetPlanSummary(v []schema.PlanTopicSummary) *SessionEventUpdateOne {
	_u.mutation.SetPlanSummary(v)
	return _u
}

// AppendPlanSummary appends value to the "plan_summary" field.
func (_u *SessionEventUpdateOne) AppendPlanSummary(v []schema.PlanTopicSummary) *SessionEventUpdateOne {
	_u.mutation.AppendPlanSummary(v)
	return _u
}

// ClearPlanSummary clears the value of the "plan_summary" field.
func (_u *SessionEventUpdateOne) ClearPlanSummary() *SessionEventUpdateOne {
	_u.mutation.ClearPlanSummary()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CandidateName(); ok {
		_spec.SetField(sessionevent.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(sessionevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetGrade(); ok {
		_spec.SetField(sessionevent.FieldTargetGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnCount(); ok {
		_spec.SetField(sessionevent.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnCount(); ok {
		_spec.AddField(sessionevent.FieldTurnCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(sessionevent.FieldProtocol, field.TypeString, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(sessionevent.FieldTerminationReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanSummary(); ok {
		_spec.SetField(sessionevent.FieldPlanSummary, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlanSummary(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionevent.FieldPlanSummary, value)
		})
	}
	if _u.mutation.PlanSummaryCleared() {
		_spec.ClearField(sessionevent.FieldPlanSummary, field.TypeJSON)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
