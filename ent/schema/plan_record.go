package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanRecord remembers a plan this client generated.
type PlanRecord struct {
	ent.Schema
}

func (PlanRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Unique().
			Comment("Identifier assigned by the backend"),
		field.Time("created_at").
			Default(time.Now),
		field.Int("duration_days"),
		field.String("total_hours").
			Default(""),
		field.String("learning_style").
			Default(""),
		field.String("syllabus_excerpt").
			Default("").
			Comment("First line of the syllabus, truncated"),
	}
}

func (PlanRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
