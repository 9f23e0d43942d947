// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyplan/ent/planrecord"
)

// PlanRecordCreate is the builder for creating a PlanRecord entity.
type PlanRecordCreate struct {
	config
	mutation *PlanRecordMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *PlanRecordCreate) SetPlanID(v string) *PlanRecordCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanRecordCreate) SetCreatedAt(v time.Time) *PlanRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanRecordCreate) SetNillableCreatedAt(v *time.Time) *PlanRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDurationDays sets the "duration_days" field.
func (_c *PlanRecordCreate) SetDurationDays(v int) *PlanRecordCreate {
	_c.mutation.SetDurationDays(v)
	return _c
}

// SetTotalHours sets the "total_hours" field.
func (_c *PlanRecordCreate) SetTotalHours(v string) *PlanRecordCreate {
	_c.mutation.SetTotalHours(v)
	return _c
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_c *PlanRecordCreate) SetNillableTotalHours(v *string) *PlanRecordCreate {
	if v != nil {
		_c.SetTotalHours(*v)
	}
	return _c
}

// SetLearningStyle sets the "learning_style" field.
func (_c *PlanRecordCreate) SetLearningStyle(v string) *PlanRecordCreate {
	_c.mutation.SetLearningStyle(v)
	return _c
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_c *PlanRecordCreate) SetNillableLearningStyle(v *string) *PlanRecordCreate {
	if v != nil {
		_c.SetLearningStyle(*v)
	}
	return _c
}

// SetSyllabusExcerpt sets the "syllabus_excerpt" field.
func (_c *PlanRecordCreate) SetSyllabusExcerpt(v string) *PlanRecordCreate {
	_c.mutation.SetSyllabusExcerpt(v)
	return _c
}

// SetNillableSyllabusExcerpt sets the "syllabus_excerpt" field if the given value is not nil.
func (_c *PlanRecordCreate) SetNillableSyllabusExcerpt(v *string) *PlanRecordCreate {
	if v != nil {
		_c.SetSyllabusExcerpt(*v)
	}
	return _c
}

// Mutation returns the PlanRecordMutation object of the builder.
func (_c *PlanRecordCreate) Mutation() *PlanRecordMutation {
	return _c.mutation
}

// Save creates the PlanRecord in the database.
func (_c *PlanRecordCreate) Save(ctx context.Context) (*PlanRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanRecordCreate) SaveX(ctx context.Context) *PlanRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := planrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		v := planrecord.DefaultTotalHours
		_c.mutation.SetTotalHours(v)
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		v := planrecord.DefaultLearningStyle
		_c.mutation.SetLearningStyle(v)
	}
	if _, ok := _c.mutation.SyllabusExcerpt(); !ok {
		v := planrecord.DefaultSyllabusExcerpt
		_c.mutation.SetSyllabusExcerpt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanRecordCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "PlanRecord.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := planrecord.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanRecord.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlanRecord.created_at"`)}
	}
	if _, ok := _c.mutation.DurationDays(); !ok {
		return &ValidationError{Name: "duration_days", err: errors.New(`ent: missing required field "PlanRecord.duration_days"`)}
	}
	if _, ok := _c.mutation.TotalHours(); !ok {
		return &ValidationError{Name: "total_hours", err: errors.New(`ent: missing required field "PlanRecord.total_hours"`)}
	}
	if _, ok := _c.mutation.LearningStyle(); !ok {
		return &ValidationError{Name: "learning_style", err: errors.New(`ent: missing required field "PlanRecord.learning_style"`)}
	}
	if _, ok := _c.mutation.SyllabusExcerpt(); !ok {
		return &ValidationError{Name: "syllabus_excerpt", err: errors.New(`ent: missing required field "PlanRecord.syllabus_excerpt"`)}
	}
	return nil
}

func (_c *PlanRecordCreate) sqlSave(ctx context.Context) (*PlanRecord, error) {
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

func (_c *PlanRecordCreate) createSpec() (*PlanRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planrecord.Table, sqlgraph.NewFieldSpec(planrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(planrecord.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(planrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DurationDays(); ok {
		_spec.SetField(planrecord.FieldDurationDays, field.TypeInt, value)
		_node.DurationDays = value
	}
	if value, ok := _c.mutation.TotalHours(); ok {
		_spec.SetField(planrecord.FieldTotalHours, field.TypeString, value)
		_node.TotalHours = value
	}
	if value, ok := _c.mutation.LearningStyle(); ok {
		_spec.SetField(planrecord.FieldLearningStyle, field.TypeString, value)
		_node.LearningStyle = value
	}
	if value, ok := _c.mutation.SyllabusExcerpt(); ok {
		_spec.SetField(planrecord.FieldSyllabusExcerpt, field.TypeString, value)
		_node.SyllabusExcerpt = value
	}
	return _node, _spec
}

// PlanRecordCreateBulk is the builder for creating many PlanRecord entities in bulk.
type PlanRecordCreateBulk struct {
	config
	err      error
	builders []*PlanRecordCreate
}

// Save creates the PlanRecord entities in the database.
func (_c *PlanRecordCreateBulk) Save(ctx context.Context) ([]*PlanRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanRecordMutation)
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
func (_c *PlanRecordCreateBulk) SaveX(ctx context.Context) []*PlanRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
