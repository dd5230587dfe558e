package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// Agent holds the schema definition for the Agent entity: one hashcat
// worker. registration_token is a one-time credential minted by an
// operator; token is the long-lived bearer credential issued when the
// agent redeems it.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("label").
			Optional(),
		field.String("host_name").
			NotEmpty(),
		field.String("client_signature").
			NotEmpty(),
		field.String("operating_system").
			Default(""),
		field.Strings("devices").
			Optional(),
		field.String("token").
			Optional().
			Nillable().
			Unique().
			Sensitive(),
		field.String("registration_token").
			Optional().
			Nillable().
			Unique().
			Sensitive(),
		field.Enum("state").
			Values("pending", "active", "stopped", "error").
			Default("pending"),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
		field.String("last_ipaddress").
			Default(""),
		field.JSON("advanced_config", models.AdvancedAgentConfig{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("projects", Project.Type),
		edge.To("benchmarks", Benchmark.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_errors", AgentError.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		// deleting an agent releases its tasks instead of destroying them
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("host_name", "client_signature").
			Unique(),
	}
}
