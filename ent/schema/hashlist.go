package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// HashList holds the schema definition for the HashList entity. A hash
// list is the target material of one or more campaigns; uncracked_count
// is maintained transactionally as plaintexts are recovered.
type HashList struct {
	ent.Schema
}

// Fields of the HashList.
func (HashList) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Optional(),
		field.Int("hash_type_id").
			NonNegative().
			Comment("hashcat -m hash mode"),
		field.String("separator").
			Default(":").
			MaxLen(1),
		field.Int64("item_count").
			Default(0),
		field.Int64("uncracked_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the HashList.
func (HashList) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("hash_lists").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("items", HashItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("campaigns", Campaign.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
