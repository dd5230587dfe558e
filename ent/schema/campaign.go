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

// Campaign holds the schema definition for the Campaign entity: an
// ordered set of attacks against one hash list. Priority orders
// campaigns for dispatch; state gates whether attacks are matchable.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").
			Immutable(),
		field.Int("hash_list_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Int("priority").
			GoType(models.Priority(0)).
			Default(int(models.PriorityRoutine)),
		field.Enum("state").
			Values("draft", "active", "completed", "archived").
			Default("draft"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("campaigns").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("hash_list", HashList.Type).
			Ref("campaigns").
			Field("hash_list_id").
			Unique().
			Required().
			Immutable(),
		edge.To("attacks", Attack.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		// matcher scan: active campaigns by priority, oldest first
		index.Fields("state", "priority", "created_at"),
	}
}
