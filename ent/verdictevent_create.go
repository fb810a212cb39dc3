// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/crucible/ent/verdictevent"
)

// VerdictEventCreate is the builder for creating a VerdictEvent entity.
type VerdictEventCreate struct {
	config
	mutation *VerdictEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *VerdictEventCreate) SetSequence(v int64) *VerdictEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *VerdictEventCreate) SetTimestamp(v time.Time) *VerdictEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *VerdictEventCreate) SetNillableTimestamp(v *time.Time) *VerdictEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *VerdictEventCreate) SetSessionID(v string) *VerdictEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAssessedGrade sets the "assessed_grade" field.
func (_c *VerdictEventCreate) SetAssessedGrade(v string) *VerdictEventCreate {
	_c.mutation.SetAssessedGrade(v)
	return _c
}

// SetRecommendation sets the "recommendation" field.
func (_c *VerdictEventCreate) SetRecommendation(v string) *VerdictEventCreate {
	_c.mutation.SetRecommendation(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *VerdictEventCreate) SetConfidence(v int) *VerdictEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *VerdictEventCreate) SetNillableConfidence(v *int) *VerdictEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *VerdictEventCreate) SetReasoning(v string) *VerdictEventCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *VerdictEventCreate) SetNillableReasoning(v *string) *VerdictEventCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetFallback sets the "fallback" field.
func (_c *VerdictEventCreate) SetFallback(v bool) *VerdictEventCreate {
	_c.mutation.SetFallback(v)
	return _c
}

// SetNillableFallback sets the "fallback" field if the given value is not nil.
func (_c *VerdictEventCreate) SetNillableFallback(v *bool) *VerdictEventCreate {
	if v != nil {
		_c.SetFallback(*v)
	}
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *VerdictEventCreate) SetVerdict(v map[string]interface{}) *VerdictEventCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// Mutation returns the VerdictEventMutation object of the builder.
func (_c *VerdictEventCreate) Mutation() *VerdictEventMutation {
	return _c.mutation
}

// Save creates the VerdictEvent in the database.
func (_c *VerdictEventCreate) Save(ctx context.Context) (*VerdictEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VerdictEventCreate) SaveX(ctx context.Context) *VerdictEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VerdictEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := verdictevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := verdictevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		v := verdictevent.DefaultReasoning
		_c.mutation.SetReasoning(v)
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		v := verdictevent.DefaultFallback
		_c.mutation.SetFallback(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VerdictEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "VerdictEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "VerdictEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "VerdictEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := verdictevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "VerdictEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AssessedGrade(); !ok {
		return &ValidationError{Name: "assessed_grade", err: errors.New(`ent: missing required field "VerdictEvent.assessed_grade"`)}
	}
	if _, ok := _c.mutation.Recommendation(); !ok {
		return &ValidationError{Name: "recommendation", err: errors.New(`ent: missing required field "VerdictEvent.recommendation"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "VerdictEvent.confidence"`)}
	}
	if _, ok := _c.mutation.Reasoning(); !ok {
		return &ValidationError{Name: "reasoning", err: errors.New(`ent: missing required field "VerdictEvent.reasoning"`)}
	}
	if _, ok := _c.mutation.Fallback(); !ok {
		return &ValidationError{Name: "fallback", err: errors.New(`ent: missing required field "VerdictEvent.fallback"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "VerdictEvent.verdict"`)}
	}
	return nil
}

func (_c *VerdictEventCreate) sqlSave(ctx context.Context) (*VerdictEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VerdictEventCreate) createSpec() (*VerdictEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &VerdictEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(verdictevent.Table, sqlgraph.NewFieldSpec(verdictevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(verdictevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(verdictevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(verdictevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AssessedGrade(); ok {
		_spec.SetField(verdictevent.FieldAssessedGrade, field.TypeString, value)
		_node.AssessedGrade = value
	}
	if value, ok := _c.mutation.Recommendation(); ok {
		_spec.SetField(verdictevent.FieldRecommendation, field.TypeString, value)
		_node.Recommendation = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(verdictevent.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(verdictevent.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Fallback(); ok {
		_spec.SetField(verdictevent.FieldFallback, field.TypeBool, value)
		_node.Fallback = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(verdictevent.FieldVerdict, field.TypeJSON, value)
		_node.Verdict = value
	}
	return _node, _spec
}

// VerdictEventCreateBulk is the builder for creating many VerdictEvent entities in bulk.
type VerdictEventCreateBulk struct {
	config
	err      error
	builders []*VerdictEventCreate
}

// Save creates the VerdictEvent entities in the database.
func (_c *VerdictEventCreateBulk) Save(ctx context.Context) ([]*VerdictEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VerdictEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VerdictEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *VerdictEventCreateBulk) SaveX(ctx context.Context) []*VerdictEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VerdictEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VerdictEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
