package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Resource holds the schema definition for the Resource entity: a shared
// word list, rule list, mask list or custom charset file agents download.
// line_count is NULL until the ingest count completes; attacks referencing
// an uncounted resource are not dispatchable.
type Resource struct {
	ent.Schema
}

// Fields of the Resource.
func (Resource) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("file_name").
			NotEmpty(),
		field.String("file_handle").
			NotEmpty().
			Unique().
			Comment("opaque storage key the download signer resolves"),
		field.Enum("resource_type").
			Values("word_list", "rule_list", "mask_list", "charset"),
		field.Int64("line_count").
			Optional().
			Nillable(),
		field.Int64("byte_size").
			Default(0),
		field.String("checksum").
			Default("").
			Comment("base64 MD5 of the file body, as served to agents"),
		field.Bool("sensitive").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Resource.
func (Resource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("projects", Project.Type),
		edge.To("word_list_attacks", Attack.Type),
		edge.To("rule_list_attacks", Attack.Type),
		edge.To("mask_list_attacks", Attack.Type),
	}
}
