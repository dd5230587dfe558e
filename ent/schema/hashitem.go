package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HashItem holds the schema definition for the HashItem entity, one
// target hash within a hash list. The salt defaults to the empty string
// so the (list, hash, salt) uniqueness constraint covers unsalted hashes.
type HashItem struct {
	ent.Schema
}

// Fields of the HashItem.
func (HashItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("hash_list_id").
			Immutable(),
		field.Text("hash_value").
			NotEmpty().
			Immutable(),
		field.Text("salt").
			Default("").
			Immutable(),
		field.Text("plaintext").
			Optional().
			Nillable(),
		field.Time("cracked_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Comment("source fields carried through import, e.g. username"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the HashItem.
func (HashItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hash_list", HashList.Type).
			Ref("items").
			Field("hash_list_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HashItem.
func (HashItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hash_list_id", "hash_value", "salt").
			Unique(),
	}
}
