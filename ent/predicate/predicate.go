// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// PlanRecord is the predicate function for planrecord builders.
type PlanRecord func(*sql.Selector)

// RequestEvent is the predicate function for requestevent builders.
type RequestEvent func(*sql.Selector)
