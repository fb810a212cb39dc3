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
	"github.com/abhisek/crucible/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnID sets the "turn_id" field.
func (_u *TurnEventUpdate) SetTurnID(v int) *TurnEventUpdate {
	_u.mutation.ResetTurnID()
	_u.mutation.SetTurnID(v)
	return _u
}

// SetNillableTurnID sets the "turn_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTurnID(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetTurnID(*v)
	}
	return _u
}

// AddTurnID adds value to the "turn_id" field.
func (_u *TurnEventUpdate) AddTurnID(v int) *TurnEventUpdate {
	_u.mutation.AddTurnID(v)
	return _u
}

// SetAgentMessage sets the "agent_message" field.
func (_u *TurnEventUpdate) SetAgentMessage(v string) *TurnEventUpdate {
	_u.mutation.SetAgentMessage(v)
	return _u
}

// SetNillableAgentMessage sets the "agent_message" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableAgentMessage(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetAgentMessage(*v)
	}
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *TurnEventUpdate) SetUserMessage(v string) *TurnEventUpdate {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableUserMessage(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *TurnEventUpdate) SetIntent(v string) *TurnEventUpdate {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableIntent(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *TurnEventUpdate) SetProtocol(v string) *TurnEventUpdate {
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableProtocol(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// SetDirective sets the "directive" field.
func (_u *TurnEventUpdate) SetDirective(v string) *TurnEventUpdate {
	_u.mutation.SetDirective(v)
	return _u
}

// SetNillableDirective sets the "directive" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableDirective(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetDirective(*v)
	}
	return _u
}

// SetTechnicalScore sets the "technical_score" field.
func (_u *TurnEventUpdate) SetTechnicalScore(v int) *TurnEventUpdate {
	_u.mutation.ResetTechnicalScore()
	_u.mutation.SetTechnicalScore(v)
	return _u
}

// SetNillableTechnicalScore sets the "technical_score" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTechnicalScore(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetTechnicalScore(*v)
	}
	return _u
}

// AddTechnicalScore adds value to the "technical_score" field.
func (_u *TurnEventUpdate) AddTechnicalScore(v int) *TurnEventUpdate {
	_u.mutation.AddTechnicalScore(v)
	return _u
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (_u *TurnEventUpdate) ClearTechnicalScore() *TurnEventUpdate {
	_u.mutation.ClearTechnicalScore()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TurnEventUpdate) SetNotes(v []string) *TurnEventUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *TurnEventUpdate) AppendNotes(v []string) *TurnEventUpdate {
	_u.mutation.AppendNotes(v)
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TurnEventUpdate) ClearNotes() *TurnEventUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnID(); ok {
		_spec.SetField(turnevent.FieldTurnID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnID(); ok {
		_spec.AddField(turnevent.FieldTurnID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentMessage(); ok {
		_spec.SetField(turnevent.FieldAgentMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(turnevent.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(turnevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(turnevent.FieldProtocol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Directive(); ok {
		_spec.SetField(turnevent.FieldDirective, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechnicalScore(); ok {
		_spec.SetField(turnevent.FieldTechnicalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTechnicalScore(); ok {
		_spec.AddField(turnevent.FieldTechnicalScore, field.TypeInt, value)
	}
	if _u.mutation.TechnicalScoreCleared() {
		_spec.ClearField(turnevent.FieldTechnicalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(turnevent.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldNotes, value)
		})
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(turnevent.FieldNotes, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTurnID sets the "turn_id" field.
func (_u *TurnEventUpdateOne) SetTurnID(v int) *TurnEventUpdateOne {
	_u.mutation.ResetTurnID()
	_u.mutation.SetTurnID(v)
	return _u
}

// SetNillableTurnID sets the "turn_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTurnID(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTurnID(*v)
	}
	return _u
}

// AddTurnID adds value to the "turn_id" field.
func (_u *TurnEventUpdateOne) AddTurnID(v int) *TurnEventUpdateOne {
	_u.mutation.AddTurnID(v)
	return _u
}

// SetAgentMessage sets the "agent_message" field.
func (_u *TurnEventUpdateOne) SetAgentMessage(v string) *TurnEventUpdateOne {
	_u.mutation.SetAgentMessage(v)
	return _u
}

// SetNillableAgentMessage sets the "agent_message" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableAgentMessage(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetAgentMessage(*v)
	}
	return _u
}

// SetUserMessage sets the "user_message" field.
func (_u *TurnEventUpdateOne) SetUserMessage(v string) *TurnEventUpdateOne {
	_u.mutation.SetUserMessage(v)
	return _u
}

// SetNillableUserMessage sets the "user_message" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableUserMessage(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetUserMessage(*v)
	}
	return _u
}

// SetIntent sets the "intent" field.
func (_u *TurnEventUpdateOne) SetIntent(v string) *TurnEventUpdateOne {
	_u.mutation.SetIntent(v)
	return _u
}

// SetNillableIntent sets the "intent" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableIntent(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetIntent(*v)
	}
	return _u
}

// SetProtocol sets the "protocol" field.
func (_u *TurnEventUpdateOne) SetProtocol(v string) *TurnEventUpdateOne {
	_u.mutation.SetProtocol(v)
	return _u
}

// SetNillableProtocol sets the "protocol" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableProtocol(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetProtocol(*v)
	}
	return _u
}

// SetDirective sets the "directive" field.
func (_u *TurnEventUpdateOne) SetDirective(v string) *TurnEventUpdateOne {
	_u.mutation.SetDirective(v)
	return _u
}

// SetNillableDirective sets the "directive" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableDirective(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetDirective(*v)
	}
	return _u
}

// SetTechnicalScore sets the "technical_score" field.
func (_u *TurnEventUpdateOne) SetTechnicalScore(v int) *TurnEventUpdateOne {
	_u.mutation.ResetTechnicalScore()
	_u.mutation.SetTechnicalScore(v)
	return _u
}

// SetNillableTechnicalScore sets the "technical_score" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTechnicalScore(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTechnicalScore(*v)
	}
	return _u
}

// AddTechnicalScore adds value to the "technical_score" field.
func (_u *TurnEventUpdateOne) AddTechnicalScore(v int) *TurnEventUpdateOne {
	_u.mutation.AddTechnicalScore(v)
	return _u
}

// ClearTechnicalScore clears the value of the "technical_score" field.
func (_u *TurnEventUpdateOne) ClearTechnicalScore() *TurnEventUpdateOne {
	_u.mutation.ClearTechnicalScore()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *TurnEventUpdateOne) SetNotes(v []string) *TurnEventUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// AppendNotes appends value to the "notes" field.
func (_u *TurnEventUpdateOne) AppendNotes(v []string) *TurnEventUpdateOne {
	_u.mutation.AppendNotes(v)
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *TurnEventUpdateOne) ClearNotes() *TurnEventUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
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
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TurnID(); ok {
		_spec.SetField(turnevent.FieldTurnID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurnID(); ok {
		_spec.AddField(turnevent.FieldTurnID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AgentMessage(); ok {
		_spec.SetField(turnevent.FieldAgentMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserMessage(); ok {
		_spec.SetField(turnevent.FieldUserMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Intent(); ok {
		_spec.SetField(turnevent.FieldIntent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Protocol(); ok {
		_spec.SetField(turnevent.FieldProtocol, field.TypeString, value)
	}
	if value, ok := _u.mutation.Directive(); ok {
		_spec.SetField(turnevent.FieldDirective, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechnicalScore(); ok {
		_spec.SetField(turnevent.FieldTechnicalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTechnicalScore(); ok {
		_spec.AddField(turnevent.FieldTechnicalScore, field.TypeInt, value)
	}
	if _u.mutation.TechnicalScoreCleared() {
		_spec.ClearField(turnevent.FieldTechnicalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(turnevent.FieldNotes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNotes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, turnevent.FieldNotes, value)
		})
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(turnevent.FieldNotes, field.TypeJSON)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
