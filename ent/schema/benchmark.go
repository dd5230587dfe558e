package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Benchmark holds the schema definition for the Benchmark entity: one
// agent device's measured speed for one hash type. Resubmission replaces
// the row for the same (agent, hash_type, device).
type Benchmark struct {
	ent.Schema
}

// Fields of the Benchmark.
func (Benchmark) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id").
			Immutable(),
		field.Int("hash_type").
			NonNegative(),
		field.Int("device").
			NonNegative(),
		field.Float("hash_speed").
			Comment("hashes per second"),
		field.Int64("runtime_ms").
			Default(0),
		field.Time("measured_at").
			Default(time.Now),
	}
}

// Edges of the Benchmark.
func (Benchmark) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("benchmarks").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Benchmark.
func (Benchmark) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "hash_type", "device").
			Unique(),
	}
}
