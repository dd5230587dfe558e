package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Project holds the schema definition for the Project entity. Projects
// scope hash lists, campaigns and agent visibility.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("description").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("campaigns", Campaign.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("hash_lists", HashList.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("resources", Resource.Type).
			Ref("projects"),
		edge.From("agents", Agent.Type).
			Ref("projects"),
	}
}
