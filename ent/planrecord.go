// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/studyplan/ent/planrecord"
)

// PlanRecord is the model entity for the PlanRecord schema.
type PlanRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Identifier assigned by the backend
	PlanID string `json:"plan_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// DurationDays holds the value of the "duration_days" field.
	DurationDays int `json:"duration_days,omitempty"`
	// TotalHours holds the value of the "total_hours" field.
	TotalHours string `json:"total_hours,omitempty"`
	// LearningStyle holds the value of the "learning_style" field.
	LearningStyle string `json:"learning_style,omitempty"`
	// First line of the syllabus, truncated
	SyllabusExcerpt string `json:"syllabus_excerpt,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case planrecord.FieldID, planrecord.FieldDurationDays:
			values[i] = new(sql.NullInt64)
		case planrecord.FieldPlanID, planrecord.FieldTotalHours, planrecord.FieldLearningStyle, planrecord.FieldSyllabusExcerpt:
			values[i] = new(sql.NullString)
		case planrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanRecord fields.
func (_m *PlanRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case planrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case planrecord.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case planrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case planrecord.FieldDurationDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_days", values[i])
			} else if value.Valid {
				_m.DurationDays = int(value.Int64)
			}
		case planrecord.FieldTotalHours:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field total_hours", values[i])
			} else if value.Valid {
				_m.TotalHours = value.String
			}
		case planrecord.FieldLearningStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_style", values[i])
			} else if value.Valid {
				_m.LearningStyle = value.String
			}
		case planrecord.FieldSyllabusExcerpt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field syllabus_excerpt", values[i])
			} else if value.Valid {
				_m.SyllabusExcerpt = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PlanRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PlanRecord.
// Note that you need to call PlanRecord.Unwrap() before calling this method if this PlanRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlanRecord) Update() *PlanRecordUpdateOne {
	return NewPlanRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlanRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlanRecord) Unwrap() *PlanRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlanRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PlanRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("duration_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationDays))
	builder.WriteString(", ")
	builder.WriteString("total_hours=")
	builder.WriteString(_m.TotalHours)
	builder.WriteString(", ")
	builder.WriteString("learning_style=")
	builder.WriteString(_m.LearningStyle)
	builder.WriteString(", ")
	builder.WriteString("syllabus_excerpt=")
	builder.WriteString(_m.SyllabusExcerpt)
	builder.WriteByte(')')
	return builder.String()
}

// PlanRecords is a parsable slice of PlanRecord.
type PlanRecords []*PlanRecord
