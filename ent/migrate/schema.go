// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// PlanRecordsColumns holds the columns for the "plan_records" table.
	PlanRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "duration_days", Type: field.TypeInt},
		{Name: "total_hours", Type: field.TypeString, Default: ""},
		{Name: "learning_style", Type: field.TypeString, Default: ""},
		{Name: "syllabus_excerpt", Type: field.TypeString, Default: ""},
	}
	// PlanRecordsTable holds the schema information for the "plan_records" table.
	PlanRecordsTable = &schema.Table{
		Name:       "plan_records",
		Columns:    PlanRecordsColumns,
		PrimaryKey: []*schema.Column{PlanRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "planrecord_created_at",
				Unique:  false,
				Columns: []*schema.Column{PlanRecordsColumns[2]},
			},
		},
	}
	// RequestEventsColumns holds the columns for the "request_events" table.
	RequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "op", Type: field.TypeString},
		{Name: "plan_id", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// RequestEventsTable holds the schema information for the "request_events" table.
	RequestEventsTable = &schema.Table{
		Name:       "request_events",
		Columns:    RequestEventsColumns,
		PrimaryKey: []*schema.Column{RequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "requestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[1]},
			},
			{
				Name:    "requestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[2]},
			},
			{
				Name:    "requestevent_op",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[3]},
			},
			{
				Name:    "requestevent_success",
				Unique:  false,
				Columns: []*schema.Column{RequestEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PlanRecordsTable,
		RequestEventsTable,
	}
)

func init() {
}
