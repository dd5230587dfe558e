package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: one keyspace
// slice leased to at most one agent. activity_timestamp is the lease
// clock; the sweeper abandons running tasks whose lease lapsed.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Int("attack_id").
			Immutable(),
		field.Int("agent_id").
			Optional().
			Nillable(),
		field.Enum("state").
			Values("pending", "running", "completed", "exhausted", "paused", "failed").
			Default("pending"),
		field.Int64("keyspace_offset").
			Default(0),
		field.Int64("keyspace_limit").
			Default(0),
		field.Float("progress_percentage").
			Default(0),
		field.Time("estimated_finish").
			Optional().
			Nillable(),
		field.Time("activity_timestamp").
			Default(time.Now),
		field.Bool("stale").
			Default(false).
			Comment("set on resume so the agent re-fetches attack parameters"),
		field.Enum("agent_signal").
			Values("none", "stop", "pause").
			Default("none"),
		field.Time("start_date").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attack", Attack.Type).
			Ref("tasks").
			Field("attack_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent", Agent.Type).
			Ref("tasks").
			Field("agent_id").
			Unique(),
		edge.To("statuses", HashcatStatus.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("crack_results", CrackResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// error reports outlive the task they were filed against
		edge.To("errors", AgentError.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "activity_timestamp"),
		index.Fields("agent_id", "state"),
		index.Fields("attack_id", "state"),
	}
}
