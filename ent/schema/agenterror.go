package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentError holds the schema definition for the AgentError entity: a
// failure report submitted by an agent, optionally tied to the task it
// was working when the failure happened.
type AgentError struct {
	ent.Schema
}

// Fields of the AgentError.
func (AgentError) Fields() []ent.Field {
	return []ent.Field{
		field.Int("agent_id").
			Immutable(),
		field.Int("task_id").
			Optional().
			Nillable(),
		field.Enum("severity").
			Values("info", "warning", "minor", "major", "critical", "fatal"),
		field.Text("message").
			NotEmpty(),
		field.JSON("context", map[string]any{}).
			Optional(),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentError.
func (AgentError) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("agent_errors").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
		edge.From("task", Task.Type).
			Ref("errors").
			Field("task_id").
			Unique(),
	}
}

// Indexes of the AgentError.
func (AgentError) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id", "recorded_at"),
		index.Fields("recorded_at"),
	}
}
