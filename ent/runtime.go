// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/studyplan/ent/planrecord"
	"github.com/abhisek/studyplan/ent/requestevent"
	"github.com/abhisek/studyplan/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	planrecordFields := schema.PlanRecord{}.Fields()
	_ = planrecordFields
	// planrecordDescPlanID is the schema descriptor for plan_id field.
	planrecordDescPlanID := planrecordFields[0].Descriptor()
	// planrecord.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	planrecord.PlanIDValidator = planrecordDescPlanID.Validators[0].(func(string) error)
	// planrecordDescCreatedAt is the schema descriptor for created_at field.
	planrecordDescCreatedAt := planrecordFields[1].Descriptor()
	// planrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	planrecord.DefaultCreatedAt = planrecordDescCreatedAt.Default.(func() time.Time)
	// planrecordDescTotalHours is the schema descriptor for total_hours field.
	planrecordDescTotalHours := planrecordFields[3].Descriptor()
	// planrecord.DefaultTotalHours holds the default value on creation for the total_hours field.
	planrecord.DefaultTotalHours = planrecordDescTotalHours.Default.(string)
	// planrecordDescLearningStyle is the schema descriptor for learning_style field.
	planrecordDescLearningStyle := planrecordFields[4].Descriptor()
	// planrecord.DefaultLearningStyle holds the default value on creation for the learning_style field.
	planrecord.DefaultLearningStyle = planrecordDescLearningStyle.Default.(string)
	// planrecordDescSyllabusExcerpt is the schema descriptor for syllabus_excerpt field.
	planrecordDescSyllabusExcerpt := planrecordFields[5].Descriptor()
	// planrecord.DefaultSyllabusExcerpt holds the default value on creation for the syllabus_excerpt field.
	planrecord.DefaultSyllabusExcerpt = planrecordDescSyllabusExcerpt.Default.(string)
	requesteventMixin := schema.RequestEvent{}.Mixin()
	requesteventMixinFields0 := requesteventMixin[0].Fields()
	_ = requesteventMixinFields0
	requesteventFields := schema.RequestEvent{}.Fields()
	_ = requesteventFields
	// requesteventDescTimestamp is the schema descriptor for timestamp field.
	requesteventDescTimestamp := requesteventMixinFields0[1].Descriptor()
	// requestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	requestevent.DefaultTimestamp = requesteventDescTimestamp.Default.(func() time.Time)
	// requesteventDescPlanID is the schema descriptor for plan_id field.
	requesteventDescPlanID := requesteventFields[1].Descriptor()
	// requestevent.DefaultPlanID holds the default value on creation for the plan_id field.
	requestevent.DefaultPlanID = requesteventDescPlanID.Default.(string)
	// requesteventDescStatus is the schema descriptor for status field.
	requesteventDescStatus := requesteventFields[2].Descriptor()
	// requestevent.DefaultStatus holds the default value on creation for the status field.
	requestevent.DefaultStatus = requesteventDescStatus.Default.(int)
	// requesteventDescLatencyMs is the schema descriptor for latency_ms field.
	requesteventDescLatencyMs := requesteventFields[3].Descriptor()
	// requestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	requestevent.DefaultLatencyMs = requesteventDescLatencyMs.Default.(int64)
	// requesteventDescErrorMessage is the schema descriptor for error_message field.
	requesteventDescErrorMessage := requesteventFields[5].Descriptor()
	// requestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	requestevent.DefaultErrorMessage = requesteventDescErrorMessage.Default.(string)
}
