package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CrackResult holds the schema definition for the CrackResult entity: one
// plaintext recovery attributed to the task that produced it. Duplicate
// observations of the same hash by the same task are idempotent.
type CrackResult struct {
	ent.Schema
}

// Fields of the CrackResult.
func (CrackResult) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_id").
			Immutable(),
		field.Text("hash_value").
			NotEmpty().
			Immutable(),
		field.Text("plaintext").
			Immutable(),
		field.Time("cracked_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CrackResult.
func (CrackResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("crack_results").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CrackResult.
func (CrackResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "hash_value").
			Unique(),
	}
}
