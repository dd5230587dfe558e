package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity: the durable
// feed behind the LISTEN/NOTIFY fanout. WebSocket clients catch up from
// this table after reconnecting, then follow live notifications.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			NotEmpty(),
		field.String("event_type").
			NotEmpty(),
		field.JSON("payload", map[string]any{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
