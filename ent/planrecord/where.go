// Code generated by ent, DO NOT EDIT.

package planrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyplan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLTE(FieldID, id))
}

// PlanID applies equality check predicate on the "plan_id" field. It's identical to PlanIDEQ.
func PlanID(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldPlanID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// DurationDays applies equality check predicate on the "duration_days" field. It's identical to DurationDaysEQ.
func DurationDays(v int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldDurationDays, v))
}

// TotalHours applies equality check predicate on the "total_hours" field. It's identical to TotalHoursEQ.
func TotalHours(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldTotalHours, v))
}

// LearningStyle applies equality check predicate on the "learning_style" field. It's identical to LearningStyleEQ.
func LearningStyle(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldLearningStyle, v))
}

// SyllabusExcerpt applies equality check predicate on the "syllabus_excerpt" field. It's identical to SyllabusExcerptEQ.
func SyllabusExcerpt(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldSyllabusExcerpt, v))
}

// PlanIDEQ applies the EQ predicate on the "plan_id" field.
func PlanIDEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldPlanID, v))
}

// PlanIDNEQ applies the NEQ predicate on the "plan_id" field.
func PlanIDNEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNEQ(FieldPlanID, v))
}

// PlanIDIn applies the In predicate on the "plan_id" field.
func PlanIDIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldIn(FieldPlanID, vs...))
}

// PlanIDNotIn applies the NotIn predicate on the "plan_id" field.
func PlanIDNotIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNotIn(FieldPlanID, vs...))
}

// PlanIDGT applies the GT predicate on the "plan_id" field.
func PlanIDGT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGT(FieldPlanID, v))
}

// PlanIDGTE applies the GTE predicate on the "plan_id" field.
func PlanIDGTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGTE(FieldPlanID, v))
}

// PlanIDLT applies the LT predicate on the "plan_id" field.
func PlanIDLT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLT(FieldPlanID, v))
}

// PlanIDLTE applies the LTE predicate on the "plan_id" field.
func PlanIDLTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLTE(FieldPlanID, v))
}

// PlanIDContains applies the Contains predicate on the "plan_id" field.
func PlanIDContains(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContains(FieldPlanID, v))
}

// PlanIDHasPrefix applies the HasPrefix predicate on the "plan_id" field.
func PlanIDHasPrefix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasPrefix(FieldPlanID, v))
}

// PlanIDHasSuffix applies the HasSuffix predicate on the "plan_id" field.
func PlanIDHasSuffix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasSuffix(FieldPlanID, v))
}

// PlanIDEqualFold applies the EqualFold predicate on the "plan_id" field.
func PlanIDEqualFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEqualFold(FieldPlanID, v))
}

// PlanIDContainsFold applies the ContainsFold predicate on the "plan_id" field.
func PlanIDContainsFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContainsFold(FieldPlanID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// DurationDaysEQ applies the EQ predicate on the "duration_days" field.
func DurationDaysEQ(v int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldDurationDays, v))
}

// DurationDaysNEQ applies the NEQ predicate on the "duration_days" field.
func DurationDaysNEQ(v int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNEQ(FieldDurationDays, v))
}

// DurationDaysIn applies the In predicate on the "duration_days" field.
func DurationDaysIn(vs ...int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldIn(FieldDurationDays, vs...))
}

// DurationDaysNotIn applies the NotIn predicate on the "duration_days" field.
func DurationDaysNotIn(vs ...int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNotIn(FieldDurationDays, vs...))
}

// DurationDaysGT applies the GT predicate on the "duration_days" field.
func DurationDaysGT(v int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGT(FieldDurationDays, v))
}

// DurationDaysGTE applies the GTE predicate on the "duration_days" field.
func DurationDaysGTE(v int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGTE(FieldDurationDays, v))
}

// DurationDaysLT applies the LT predicate on the "duration_days" field.
func DurationDaysLT(v int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLT(FieldDurationDays, v))
}

// DurationDaysLTE applies the LTE predicate on the "duration_days" field.
func DurationDaysLTE(v int) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLTE(FieldDurationDays, v))
}

// TotalHoursEQ applies the EQ predicate on the "total_hours" field.
func TotalHoursEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldTotalHours, v))
}

// TotalHoursNEQ applies the NEQ predicate on the "total_hours" field.
func TotalHoursNEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNEQ(FieldTotalHours, v))
}

// TotalHoursIn applies the In predicate on the "total_hours" field.
func TotalHoursIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldIn(FieldTotalHours, vs...))
}

// TotalHoursNotIn applies the NotIn predicate on the "total_hours" field.
func TotalHoursNotIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNotIn(FieldTotalHours, vs...))
}

// TotalHoursGT applies the GT predicate on the "total_hours" field.
func TotalHoursGT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGT(FieldTotalHours, v))
}

// TotalHoursGTE applies the GTE predicate on the "total_hours" field.
func TotalHoursGTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGTE(FieldTotalHours, v))
}

// TotalHoursLT applies the LT predicate on the "total_hours" field.
func TotalHoursLT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLT(FieldTotalHours, v))
}

// TotalHoursLTE applies the LTE predicate on the "total_hours" field.
func TotalHoursLTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLTE(FieldTotalHours, v))
}

// TotalHoursContains applies the Contains predicate on the "total_hours" field.
func TotalHoursContains(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContains(FieldTotalHours, v))
}

// TotalHoursHasPrefix applies the HasPrefix predicate on the "total_hours" field.
func TotalHoursHasPrefix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasPrefix(FieldTotalHours, v))
}

// TotalHoursHasSuffix applies the HasSuffix predicate on the "total_hours" field.
func TotalHoursHasSuffix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasSuffix(FieldTotalHours, v))
}

// TotalHoursEqualFold applies the EqualFold predicate on the "total_hours" field.
func TotalHoursEqualFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEqualFold(FieldTotalHours, v))
}

// TotalHoursContainsFold applies the ContainsFold predicate on the "total_hours" field.
func TotalHoursContainsFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContainsFold(FieldTotalHours, v))
}

// LearningStyleEQ applies the EQ predicate on the "learning_style" field.
func LearningStyleEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldLearningStyle, v))
}

// LearningStyleNEQ applies the NEQ predicate on the "learning_style" field.
func LearningStyleNEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNEQ(FieldLearningStyle, v))
}

// LearningStyleIn applies the In predicate on the "learning_style" field.
func LearningStyleIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldIn(FieldLearningStyle, vs...))
}

// LearningStyleNotIn applies the NotIn predicate on the "learning_style" field.
func LearningStyleNotIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNotIn(FieldLearningStyle, vs...))
}

// LearningStyleGT applies the GT predicate on the "learning_style" field.
func LearningStyleGT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGT(FieldLearningStyle, v))
}

// LearningStyleGTE applies the GTE predicate on the "learning_style" field.
func LearningStyleGTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGTE(FieldLearningStyle, v))
}

// LearningStyleLT applies the LT predicate on the "learning_style" field.
func LearningStyleLT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLT(FieldLearningStyle, v))
}

// LearningStyleLTE applies the LTE predicate on the "learning_style" field.
func LearningStyleLTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLTE(FieldLearningStyle, v))
}

// LearningStyleContains applies the Contains predicate on the "learning_style" field.
func LearningStyleContains(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContains(FieldLearningStyle, v))
}

// LearningStyleHasPrefix applies the HasPrefix predicate on the "learning_style" field.
func LearningStyleHasPrefix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasPrefix(FieldLearningStyle, v))
}

// LearningStyleHasSuffix applies the HasSuffix predicate on the "learning_style" field.
func LearningStyleHasSuffix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasSuffix(FieldLearningStyle, v))
}

// LearningStyleEqualFold applies the EqualFold predicate on the "learning_style" field.
func LearningStyleEqualFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEqualFold(FieldLearningStyle, v))
}

// LearningStyleContainsFold applies the ContainsFold predicate on the "learning_style" field.
func LearningStyleContainsFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContainsFold(FieldLearningStyle, v))
}

// SyllabusExcerptEQ applies the EQ predicate on the "syllabus_excerpt" field.
func SyllabusExcerptEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEQ(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptNEQ applies the NEQ predicate on the "syllabus_excerpt" field.
func SyllabusExcerptNEQ(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNEQ(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptIn applies the In predicate on the "syllabus_excerpt" field.
func SyllabusExcerptIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldIn(FieldSyllabusExcerpt, vs...))
}

// SyllabusExcerptNotIn applies the NotIn predicate on the "syllabus_excerpt" field.
func SyllabusExcerptNotIn(vs ...string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldNotIn(FieldSyllabusExcerpt, vs...))
}

// SyllabusExcerptGT applies the GT predicate on the "syllabus_excerpt" field.
func SyllabusExcerptGT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGT(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptGTE applies the GTE predicate on the "syllabus_excerpt" field.
func SyllabusExcerptGTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldGTE(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptLT applies the LT predicate on the "syllabus_excerpt" field.
func SyllabusExcerptLT(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLT(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptLTE applies the LTE predicate on the "syllabus_excerpt" field.
func SyllabusExcerptLTE(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldLTE(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptContains applies the Contains predicate on the "syllabus_excerpt" field.
func SyllabusExcerptContains(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContains(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptHasPrefix applies the HasPrefix predicate on the "syllabus_excerpt" field.
func SyllabusExcerptHasPrefix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasPrefix(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptHasSuffix applies the HasSuffix predicate on the "syllabus_excerpt" field.
func SyllabusExcerptHasSuffix(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldHasSuffix(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptEqualFold applies the EqualFold predicate on the "syllabus_excerpt" field.
func SyllabusExcerptEqualFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldEqualFold(FieldSyllabusExcerpt, v))
}

// SyllabusExcerptContainsFold applies the ContainsFold predicate on the "syllabus_excerpt" field.
func SyllabusExcerptContainsFold(v string) predicate.PlanRecord {
	return predicate.PlanRecord(sql.FieldContainsFold(FieldSyllabusExcerpt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanRecord) predicate.PlanRecord {
	return predicate.PlanRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanRecord) predicate.PlanRecord {
	return predicate.PlanRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanRecord) predicate.PlanRecord {
	return predicate.PlanRecord(sql.NotPredicates(p))
}
