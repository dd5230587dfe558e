package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attack holds the schema definition for the Attack entity: one hashcat
// invocation template within a campaign. total_keyspace is NULL until the
// planner first computes it; dispatched_keyspace is the high-water mark of
// slices handed out so far.
type Attack struct {
	ent.Schema
}

// Fields of the Attack.
func (Attack) Fields() []ent.Field {
	return []ent.Field{
		field.Int("campaign_id").
			Immutable(),
		field.String("name").
			Optional(),
		field.Enum("state").
			Values("pending", "running", "completed", "exhausted", "paused", "failed").
			Default("pending"),
		field.Enum("attack_mode").
			Values("dictionary", "mask", "hybrid_dictionary", "hybrid_mask"),
		field.String("mask").
			Optional(),
		field.Bool("increment_mode").
			Default(false),
		field.Int("increment_minimum").
			Default(0).
			Min(0).Max(62),
		field.Int("increment_maximum").
			Default(0).
			Min(0).Max(62),
		field.Bool("optimized").
			Default(false),
		field.Bool("slow_candidate_generators").
			Default(false),
		field.Int("workload_profile").
			Default(3).
			Min(1).Max(4),
		field.Bool("disable_markov").
			Default(false),
		field.Bool("classic_markov").
			Default(false),
		field.Int("markov_threshold").
			Default(0),
		field.String("left_rule").
			Optional(),
		field.String("right_rule").
			Optional(),
		field.String("custom_charset_1").
			Optional(),
		field.String("custom_charset_2").
			Optional(),
		field.String("custom_charset_3").
			Optional(),
		field.String("custom_charset_4").
			Optional(),
		field.Int("word_list_id").
			Optional().
			Nillable(),
		field.Int("rule_list_id").
			Optional().
			Nillable(),
		field.Int("mask_list_id").
			Optional().
			Nillable(),
		field.Int("position").
			Default(0).
			Comment("dispatch order within the campaign"),
		field.Int64("total_keyspace").
			Optional().
			Nillable(),
		field.Int64("dispatched_keyspace").
			Default(0),
		field.Time("start_time").
			Optional().
			Nillable(),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Attack.
func (Attack) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("attacks").
			Field("campaign_id").
			Unique().
			Required().
			Immutable(),
		edge.From("word_list", Resource.Type).
			Ref("word_list_attacks").
			Field("word_list_id").
			Unique(),
		edge.From("rule_list", Resource.Type).
			Ref("rule_list_attacks").
			Field("rule_list_id").
			Unique(),
		edge.From("mask_list", Resource.Type).
			Ref("mask_list_attacks").
			Field("mask_list_id").
			Unique(),
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Attack.
func (Attack) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("campaign_id", "position"),
		index.Fields("state"),
	}
}
