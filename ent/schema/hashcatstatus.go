package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// HashcatStatus holds the schema definition for the HashcatStatus entity:
// one relayed hashcat status frame. Only the most recent frames per task
// are kept; ingest trims the rest.
type HashcatStatus struct {
	ent.Schema
}

// Fields of the HashcatStatus.
func (HashcatStatus) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_id").
			Immutable(),
		field.Text("original_line").
			Optional(),
		field.String("session").
			Default(""),
		field.Int("status_code"),
		field.String("target").
			Default(""),
		field.Int64("progress_done").
			Default(0),
		field.Int64("progress_total").
			Default(0),
		field.Int64("restore_point").
			Default(0),
		field.JSON("recovered_hashes", []int{}).
			Optional(),
		field.JSON("recovered_salts", []int{}).
			Optional(),
		field.Int64("rejected").
			Default(0),
		field.JSON("devices", []models.DeviceStatus{}).
			Optional(),
		field.JSON("hashcat_guess", models.HashcatGuess{}).
			Optional(),
		field.Time("time_start").
			Optional(),
		field.Time("estimated_stop").
			Optional(),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the HashcatStatus.
func (HashcatStatus) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("statuses").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HashcatStatus.
func (HashcatStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "received_at"),
	}
}
