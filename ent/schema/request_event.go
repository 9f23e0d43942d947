package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RequestEvent records one call to the plan backend.
type RequestEvent struct {
	ent.Schema
}

func (RequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("op").
			Comment("Backend operation: generate-plan, get-plan, download-pdf, health"),
		field.String("plan_id").
			Default("").
			Comment("Plan the call concerned, empty for generate and health"),
		field.Int("status").
			Default(0).
			Comment("HTTP status, zero when no response arrived"),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
	}
}

func (RequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("op"),
		index.Fields("success"),
	}
}
