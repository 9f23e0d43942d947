// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/studyplan/ent/planrecord"
	"github.com/abhisek/studyplan/ent/predicate"
)

// PlanRecordUpdate is the builder for updating PlanRecord entities.
type PlanRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PlanRecordMutation
}

// Where appends a list predicates to the PlanRecordUpdate builder.
func (_u *PlanRecordUpdate) Where(ps ...predicate.PlanRecord) *PlanRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanRecordUpdate) SetPlanID(v string) *PlanRecordUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanRecordUpdate) SetNillablePlanID(v *string) *PlanRecordUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanRecordUpdate) SetCreatedAt(v time.Time) *PlanRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanRecordUpdate) SetNillableCreatedAt(v *time.Time) *PlanRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDurationDays sets the "duration_days" field.
func (_u *PlanRecordUpdate) SetDurationDays(v int) *PlanRecordUpdate {
	_u.mutation.ResetDurationDays()
	_u.mutation.SetDurationDays(v)
	return _u
}

// SetNillableDurationDays sets the "duration_days" field if the given value is not nil.
func (_u *PlanRecordUpdate) SetNillableDurationDays(v *int) *PlanRecordUpdate {
	if v != nil {
		_u.SetDurationDays(*v)
	}
	return _u
}

// AddDurationDays adds value to the "duration_days" field.
func (_u *PlanRecordUpdate) AddDurationDays(v int) *PlanRecordUpdate {
	_u.mutation.AddDurationDays(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *PlanRecordUpdate) SetTotalHours(v string) *PlanRecordUpdate {
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *PlanRecordUpdate) SetNillableTotalHours(v *string) *PlanRecordUpdate {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *PlanRecordUpdate) SetLearningStyle(v string) *PlanRecordUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *PlanRecordUpdate) SetNillableLearningStyle(v *string) *PlanRecordUpdate {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetSyllabusExcerpt sets the "syllabus_excerpt" field.
func (_u *PlanRecordUpdate) SetSyllabusExcerpt(v string) *PlanRecordUpdate {
	_u.mutation.SetSyllabusExcerpt(v)
	return _u
}

// SetNillableSyllabusExcerpt sets the "syllabus_excerpt" field if the given value is not nil.
func (_u *PlanRecordUpdate) SetNillableSyllabusExcerpt(v *string) *PlanRecordUpdate {
	if v != nil {
		_u.SetSyllabusExcerpt(*v)
	}
	return _u
}

// Mutation returns the PlanRecordMutation object of the builder.
func (_u *PlanRecordUpdate) Mutation() *PlanRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanRecordUpdate) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planrecord.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanRecord.plan_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planrecord.Table, planrecord.Columns, sqlgraph.NewFieldSpec(planrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planrecord.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(planrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationDays(); ok {
		_spec.SetField(planrecord.FieldDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationDays(); ok {
		_spec.AddField(planrecord.FieldDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(planrecord.FieldTotalHours, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(planrecord.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyllabusExcerpt(); ok {
		_spec.SetField(planrecord.FieldSyllabusExcerpt, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanRecordUpdateOne is the builder for updating a single PlanRecord entity.
type PlanRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanRecordMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *PlanRecordUpdateOne) SetPlanID(v string) *PlanRecordUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *PlanRecordUpdateOne) SetNillablePlanID(v *string) *PlanRecordUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PlanRecordUpdateOne) SetCreatedAt(v time.Time) *PlanRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PlanRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *PlanRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDurationDays sets the "duration_days" field.
func (_u *PlanRecordUpdateOne) SetDurationDays(v int) *PlanRecordUpdateOne {
	_u.mutation.ResetDurationDays()
	_u.mutation.SetDurationDays(v)
	return _u
}

// SetNillableDurationDays sets the "duration_days" field if the given value is not nil.
func (_u *PlanRecordUpdateOne) SetNillableDurationDays(v *int) *PlanRecordUpdateOne {
	if v != nil {
		_u.SetDurationDays(*v)
	}
	return _u
}

// AddDurationDays adds value to the "duration_days" field.
func (_u *PlanRecordUpdateOne) AddDurationDays(v int) *PlanRecordUpdateOne {
	_u.mutation.AddDurationDays(v)
	return _u
}

// SetTotalHours sets the "total_hours" field.
func (_u *PlanRecordUpdateOne) SetTotalHours(v string) *PlanRecordUpdateOne {
	_u.mutation.SetTotalHours(v)
	return _u
}

// SetNillableTotalHours sets the "total_hours" field if the given value is not nil.
func (_u *PlanRecordUpdateOne) SetNillableTotalHours(v *string) *PlanRecordUpdateOne {
	if v != nil {
		_u.SetTotalHours(*v)
	}
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *PlanRecordUpdateOne) SetLearningStyle(v string) *PlanRecordUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *PlanRecordUpdateOne) SetNillableLearningStyle(v *string) *PlanRecordUpdateOne {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetSyllabusExcerpt sets the "syllabus_excerpt" field.
func (_u *PlanRecordUpdateOne) SetSyllabusExcerpt(v string) *PlanRecordUpdateOne {
	_u.mutation.SetSyllabusExcerpt(v)
	return _u
}

// SetNillableSyllabusExcerpt sets the "syllabus_excerpt" field if the given value is not nil.
func (_u *PlanRecordUpdateOne) SetNillableSyllabusExcerpt(v *string) *PlanRecordUpdateOne {
	if v != nil {
		_u.SetSyllabusExcerpt(*v)
	}
	return _u
}

// Mutation returns the PlanRecordMutation object of the builder.
func (_u *PlanRecordUpdateOne) Mutation() *PlanRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanRecordUpdate builder.
func (_u *PlanRecordUpdateOne) Where(ps ...predicate.PlanRecord) *PlanRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanRecordUpdateOne) Select(field string, fields ...string) *PlanRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanRecord entity.
func (_u *PlanRecordUpdateOne) Save(ctx context.Context) (*PlanRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanRecordUpdateOne) SaveX(ctx context.Context) *PlanRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanRecordUpdateOne) check() error {
	if v, ok := _u.mutation.PlanID(); ok {
		if err := planrecord.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "PlanRecord.plan_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PlanRecordUpdateOne) sqlSave(ctx context.Context) (_node *PlanRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planrecord.Table, planrecord.Columns, sqlgraph.NewFieldSpec(planrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planrecord.FieldID)
		for _, f := range fields {
			if !planrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planrecord.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(planrecord.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(planrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DurationDays(); ok {
		_spec.SetField(planrecord.FieldDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationDays(); ok {
		_spec.AddField(planrecord.FieldDurationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalHours(); ok {
		_spec.SetField(planrecord.FieldTotalHours, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(planrecord.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyllabusExcerpt(); ok {
		_spec.SetField(planrecord.FieldSyllabusExcerpt, field.TypeString, value)
	}
	_node = &PlanRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
