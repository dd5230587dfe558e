// Code generated by ent, DO NOT EDIT.

package benchmark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLTE(FieldID, id))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldAgentID, v))
}

// HashType applies equality check predicate on the "hash_type" field. It's identical to HashTypeEQ.
func HashType(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldHashType, v))
}

// Device applies equality check predicate on the "device" field. It's identical to DeviceEQ.
func Device(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldDevice, v))
}

// HashSpeed applies equality check predicate on the "hash_speed" field. It's identical to HashSpeedEQ.
func HashSpeed(v float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldHashSpeed, v))
}

// RuntimeMs applies equality check predicate on the "runtime_ms" field. It's identical to RuntimeMsEQ.
func RuntimeMs(v int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldRuntimeMs, v))
}

// MeasuredAt applies equality check predicate on the "measured_at" field. It's identical to MeasuredAtEQ.
func MeasuredAt(v time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldMeasuredAt, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNotIn(FieldAgentID, vs...))
}

// HashTypeEQ applies the EQ predicate on the "hash_type" field.
func HashTypeEQ(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldHashType, v))
}

// HashTypeNEQ applies the NEQ predicate on the "hash_type" field.
func HashTypeNEQ(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNEQ(FieldHashType, v))
}

// HashTypeIn applies the In predicate on the "hash_type" field.
func HashTypeIn(vs ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldIn(FieldHashType, vs...))
}

// HashTypeNotIn applies the NotIn predicate on the "hash_type" field.
func HashTypeNotIn(vs ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNotIn(FieldHashType, vs...))
}

// HashTypeGT applies the GT predicate on the "hash_type" field.
func HashTypeGT(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGT(FieldHashType, v))
}

// HashTypeGTE applies the GTE predicate on the "hash_type" field.
func HashTypeGTE(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGTE(FieldHashType, v))
}

// HashTypeLT applies the LT predicate on the "hash_type" field.
func HashTypeLT(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLT(FieldHashType, v))
}

// HashTypeLTE applies the LTE predicate on the "hash_type" field.
func HashTypeLTE(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLTE(FieldHashType, v))
}

// DeviceEQ applies the EQ predicate on the "device" field.
func DeviceEQ(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldDevice, v))
}

// DeviceNEQ applies the NEQ predicate on the "device" field.
func DeviceNEQ(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNEQ(FieldDevice, v))
}

// DeviceIn applies the In predicate on the "device" field.
func DeviceIn(vs ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldIn(FieldDevice, vs...))
}

// DeviceNotIn applies the NotIn predicate on the "device" field.
func DeviceNotIn(vs ...int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNotIn(FieldDevice, vs...))
}

// DeviceGT applies the GT predicate on the "device" field.
func DeviceGT(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGT(FieldDevice, v))
}

// DeviceGTE applies the GTE predicate on the "device" field.
func DeviceGTE(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGTE(FieldDevice, v))
}

// DeviceLT applies the LT predicate on the "device" field.
func DeviceLT(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLT(FieldDevice, v))
}

// DeviceLTE applies the LTE predicate on the "device" field.
func DeviceLTE(v int) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLTE(FieldDevice, v))
}

// HashSpeedEQ applies the EQ predicate on the "hash_speed" field.
func HashSpeedEQ(v float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldHashSpeed, v))
}

// HashSpeedNEQ applies the NEQ predicate on the "hash_speed" field.
func HashSpeedNEQ(v float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNEQ(FieldHashSpeed, v))
}

// HashSpeedIn applies the In predicate on the "hash_speed" field.
func HashSpeedIn(vs ...float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldIn(FieldHashSpeed, vs...))
}

// HashSpeedNotIn applies the NotIn predicate on the "hash_speed" field.
func HashSpeedNotIn(vs ...float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNotIn(FieldHashSpeed, vs...))
}

// HashSpeedGT applies the GT predicate on the "hash_speed" field.
func HashSpeedGT(v float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGT(FieldHashSpeed, v))
}

// HashSpeedGTE applies the GTE predicate on the "hash_speed" field.
func HashSpeedGTE(v float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGTE(FieldHashSpeed, v))
}

// HashSpeedLT applies the LT predicate on the "hash_speed" field.
func HashSpeedLT(v float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLT(FieldHashSpeed, v))
}

// HashSpeedLTE applies the LTE predicate on the "hash_speed" field.
func HashSpeedLTE(v float64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLTE(FieldHashSpeed, v))
}

// RuntimeMsEQ applies the EQ predicate on the "runtime_ms" field.
func RuntimeMsEQ(v int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldRuntimeMs, v))
}

// RuntimeMsNEQ applies the NEQ predicate on the "runtime_ms" field.
func RuntimeMsNEQ(v int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNEQ(FieldRuntimeMs, v))
}

// RuntimeMsIn applies the In predicate on the "runtime_ms" field.
func RuntimeMsIn(vs ...int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldIn(FieldRuntimeMs, vs...))
}

// RuntimeMsNotIn applies the NotIn predicate on the "runtime_ms" field.
func RuntimeMsNotIn(vs ...int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNotIn(FieldRuntimeMs, vs...))
}

// RuntimeMsGT applies the GT predicate on the "runtime_ms" field.
func RuntimeMsGT(v int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGT(FieldRuntimeMs, v))
}

// RuntimeMsGTE applies the GTE predicate on the "runtime_ms" field.
func RuntimeMsGTE(v int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGTE(FieldRuntimeMs, v))
}

// RuntimeMsLT applies the LT predicate on the "runtime_ms" field.
func RuntimeMsLT(v int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLT(FieldRuntimeMs, v))
}

// RuntimeMsLTE applies the LTE predicate on the "runtime_ms" field.
func RuntimeMsLTE(v int64) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLTE(FieldRuntimeMs, v))
}

// MeasuredAtEQ applies the EQ predicate on the "measured_at" field.
func MeasuredAtEQ(v time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldEQ(FieldMeasuredAt, v))
}

// MeasuredAtNEQ applies the NEQ predicate on the "measured_at" field.
func MeasuredAtNEQ(v time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNEQ(FieldMeasuredAt, v))
}

// MeasuredAtIn applies the In predicate on the "measured_at" field.
func MeasuredAtIn(vs ...time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldIn(FieldMeasuredAt, vs...))
}

// MeasuredAtNotIn applies the NotIn predicate on the "measured_at" field.
func MeasuredAtNotIn(vs ...time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldNotIn(FieldMeasuredAt, vs...))
}

// MeasuredAtGT applies the GT predicate on the "measured_at" field.
func MeasuredAtGT(v time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGT(FieldMeasuredAt, v))
}

// MeasuredAtGTE applies the GTE predicate on the "measured_at" field.
func MeasuredAtGTE(v time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldGTE(FieldMeasuredAt, v))
}

// MeasuredAtLT applies the LT predicate on the "measured_at" field.
func MeasuredAtLT(v time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLT(FieldMeasuredAt, v))
}

// MeasuredAtLTE applies the LTE predicate on the "measured_at" field.
func MeasuredAtLTE(v time.Time) predicate.Benchmark {
	return predicate.Benchmark(sql.FieldLTE(FieldMeasuredAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Benchmark {
	return predicate.Benchmark(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Benchmark {
	return predicate.Benchmark(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Benchmark) predicate.Benchmark {
	return predicate.Benchmark(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Benchmark) predicate.Benchmark {
	return predicate.Benchmark(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Benchmark) predicate.Benchmark {
	return predicate.Benchmark(sql.NotPredicates(p))
}
