// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// AttackID applies equality check predicate on the "attack_id" field. It's identical to AttackIDEQ.
func AttackID(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttackID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAgentID, v))
}

// KeyspaceOffset applies equality check predicate on the "keyspace_offset" field. It's identical to KeyspaceOffsetEQ.
func KeyspaceOffset(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldKeyspaceOffset, v))
}

// KeyspaceLimit applies equality check predicate on the "keyspace_limit" field. It's identical to KeyspaceLimitEQ.
func KeyspaceLimit(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldKeyspaceLimit, v))
}

// ProgressPercentage applies equality check predicate on the "progress_percentage" field. It's identical to ProgressPercentageEQ.
func ProgressPercentage(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressPercentage, v))
}

// EstimatedFinish applies equality check predicate on the "estimated_finish" field. It's identical to EstimatedFinishEQ.
func EstimatedFinish(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedFinish, v))
}

// ActivityTimestamp applies equality check predicate on the "activity_timestamp" field. It's identical to ActivityTimestampEQ.
func ActivityTimestamp(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldActivityTimestamp, v))
}

// Stale applies equality check predicate on the "stale" field. It's identical to StaleEQ.
func Stale(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStale, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartDate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// AttackIDEQ applies the EQ predicate on the "attack_id" field.
func AttackIDEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAttackID, v))
}

// AttackIDNEQ applies the NEQ predicate on the "attack_id" field.
func AttackIDNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAttackID, v))
}

// AttackIDIn applies the In predicate on the "attack_id" field.
func AttackIDIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAttackID, vs...))
}

// AttackIDNotIn applies the NotIn predicate on the "attack_id" field.
func AttackIDNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAttackID, vs...))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDIsNil applies the IsNil predicate on the "agent_id" field.
func AgentIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAgentID))
}

// AgentIDNotNil applies the NotNil predicate on the "agent_id" field.
func AgentIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAgentID))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldState, vs...))
}

// KeyspaceOffsetEQ applies the EQ predicate on the "keyspace_offset" field.
func KeyspaceOffsetEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldKeyspaceOffset, v))
}

// KeyspaceOffsetNEQ applies the NEQ predicate on the "keyspace_offset" field.
func KeyspaceOffsetNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldKeyspaceOffset, v))
}

// KeyspaceOffsetIn applies the In predicate on the "keyspace_offset" field.
func KeyspaceOffsetIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldKeyspaceOffset, vs...))
}

// KeyspaceOffsetNotIn applies the NotIn predicate on the "keyspace_offset" field.
func KeyspaceOffsetNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldKeyspaceOffset, vs...))
}

// KeyspaceOffsetGT applies the GT predicate on the "keyspace_offset" field.
func KeyspaceOffsetGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldKeyspaceOffset, v))
}

// KeyspaceOffsetGTE applies the GTE predicate on the "keyspace_offset" field.
func KeyspaceOffsetGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldKeyspaceOffset, v))
}

// KeyspaceOffsetLT applies the LT predicate on the "keyspace_offset" field.
func KeyspaceOffsetLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldKeyspaceOffset, v))
}

// KeyspaceOffsetLTE applies the LTE predicate on the "keyspace_offset" field.
func KeyspaceOffsetLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldKeyspaceOffset, v))
}

// KeyspaceLimitEQ applies the EQ predicate on the "keyspace_limit" field.
func KeyspaceLimitEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldKeyspaceLimit, v))
}

// KeyspaceLimitNEQ applies the NEQ predicate on the "keyspace_limit" field.
func KeyspaceLimitNEQ(v int64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldKeyspaceLimit, v))
}

// KeyspaceLimitIn applies the In predicate on the "keyspace_limit" field.
func KeyspaceLimitIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldKeyspaceLimit, vs...))
}

// KeyspaceLimitNotIn applies the NotIn predicate on the "keyspace_limit" field.
func KeyspaceLimitNotIn(vs ...int64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldKeyspaceLimit, vs...))
}

// KeyspaceLimitGT applies the GT predicate on the "keyspace_limit" field.
func KeyspaceLimitGT(v int64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldKeyspaceLimit, v))
}

// KeyspaceLimitGTE applies the GTE predicate on the "keyspace_limit" field.
func KeyspaceLimitGTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldKeyspaceLimit, v))
}

// KeyspaceLimitLT applies the LT predicate on the "keyspace_limit" field.
func KeyspaceLimitLT(v int64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldKeyspaceLimit, v))
}

// KeyspaceLimitLTE applies the LTE predicate on the "keyspace_limit" field.
func KeyspaceLimitLTE(v int64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldKeyspaceLimit, v))
}

// ProgressPercentageEQ applies the EQ predicate on the "progress_percentage" field.
func ProgressPercentageEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldProgressPercentage, v))
}

// ProgressPercentageNEQ applies the NEQ predicate on the "progress_percentage" field.
func ProgressPercentageNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldProgressPercentage, v))
}

// ProgressPercentageIn applies the In predicate on the "progress_percentage" field.
func ProgressPercentageIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageNotIn applies the NotIn predicate on the "progress_percentage" field.
func ProgressPercentageNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldProgressPercentage, vs...))
}

// ProgressPercentageGT applies the GT predicate on the "progress_percentage" field.
func ProgressPercentageGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldProgressPercentage, v))
}

// ProgressPercentageGTE applies the GTE predicate on the "progress_percentage" field.
func ProgressPercentageGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldProgressPercentage, v))
}

// ProgressPercentageLT applies the LT predicate on the "progress_percentage" field.
func ProgressPercentageLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldProgressPercentage, v))
}

// ProgressPercentageLTE applies the LTE predicate on the "progress_percentage" field.
func ProgressPercentageLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldProgressPercentage, v))
}

// EstimatedFinishEQ applies the EQ predicate on the "estimated_finish" field.
func EstimatedFinishEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldEstimatedFinish, v))
}

// EstimatedFinishNEQ applies the NEQ predicate on the "estimated_finish" field.
func EstimatedFinishNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldEstimatedFinish, v))
}

// EstimatedFinishIn applies the In predicate on the "estimated_finish" field.
func EstimatedFinishIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldEstimatedFinish, vs...))
}

// EstimatedFinishNotIn applies the NotIn predicate on the "estimated_finish" field.
func EstimatedFinishNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldEstimatedFinish, vs...))
}

// EstimatedFinishGT applies the GT predicate on the "estimated_finish" field.
func EstimatedFinishGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldEstimatedFinish, v))
}

// EstimatedFinishGTE applies the GTE predicate on the "estimated_finish" field.
func EstimatedFinishGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldEstimatedFinish, v))
}

// EstimatedFinishLT applies the LT predicate on the "estimated_finish" field.
func EstimatedFinishLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldEstimatedFinish, v))
}

// EstimatedFinishLTE applies the LTE predicate on the "estimated_finish" field.
func EstimatedFinishLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldEstimatedFinish, v))
}

// EstimatedFinishIsNil applies the IsNil predicate on the "estimated_finish" field.
func EstimatedFinishIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldEstimatedFinish))
}

// EstimatedFinishNotNil applies the NotNil predicate on the "estimated_finish" field.
func EstimatedFinishNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldEstimatedFinish))
}

// ActivityTimestampEQ applies the EQ predicate on the "activity_timestamp" field.
func ActivityTimestampEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldActivityTimestamp, v))
}

// ActivityTimestampNEQ applies the NEQ predicate on the "activity_timestamp" field.
func ActivityTimestampNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldActivityTimestamp, v))
}

// ActivityTimestampIn applies the In predicate on the "activity_timestamp" field.
func ActivityTimestampIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldActivityTimestamp, vs...))
}

// ActivityTimestampNotIn applies the NotIn predicate on the "activity_timestamp" field.
func ActivityTimestampNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldActivityTimestamp, vs...))
}

// ActivityTimestampGT applies the GT predicate on the "activity_timestamp" field.
func ActivityTimestampGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldActivityTimestamp, v))
}

// ActivityTimestampGTE applies the GTE predicate on the "activity_timestamp" field.
func ActivityTimestampGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldActivityTimestamp, v))
}

// ActivityTimestampLT applies the LT predicate on the "activity_timestamp" field.
func ActivityTimestampLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldActivityTimestamp, v))
}

// ActivityTimestampLTE applies the LTE predicate on the "activity_timestamp" field.
func ActivityTimestampLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldActivityTimestamp, v))
}

// StaleEQ applies the EQ predicate on the "stale" field.
func StaleEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStale, v))
}

// StaleNEQ applies the NEQ predicate on the "stale" field.
func StaleNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStale, v))
}

// AgentSignalEQ applies the EQ predicate on the "agent_signal" field.
func AgentSignalEQ(v AgentSignal) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAgentSignal, v))
}

// AgentSignalNEQ applies the NEQ predicate on the "agent_signal" field.
func AgentSignalNEQ(v AgentSignal) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAgentSignal, v))
}

// AgentSignalIn applies the In predicate on the "agent_signal" field.
func AgentSignalIn(vs ...AgentSignal) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAgentSignal, vs...))
}

// AgentSignalNotIn applies the NotIn predicate on the "agent_signal" field.
func AgentSignalNotIn(vs ...AgentSignal) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAgentSignal, vs...))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartDate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasAttack applies the HasEdge predicate on the "attack" edge.
func HasAttack() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AttackTable, AttackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttackWith applies the HasEdge predicate on the "attack" edge with a given conditions (other predicates).
func HasAttackWith(preds ...predicate.Attack) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAttackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasStatuses applies the HasEdge predicate on the "statuses" edge.
func HasStatuses() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StatusesTable, StatusesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStatusesWith applies the HasEdge predicate on the "statuses" edge with a given conditions (other predicates).
func HasStatusesWith(preds ...predicate.HashcatStatus) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newStatusesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCrackResults applies the HasEdge predicate on the "crack_results" edge.
func HasCrackResults() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CrackResultsTable, CrackResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCrackResultsWith applies the HasEdge predicate on the "crack_results" edge with a given conditions (other predicates).
func HasCrackResultsWith(preds ...predicate.CrackResult) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newCrackResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasErrors applies the HasEdge predicate on the "errors" edge.
func HasErrors() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ErrorsTable, ErrorsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasErrorsWith applies the HasEdge predicate on the "errors" edge with a given conditions (other predicates).
func HasErrorsWith(preds ...predicate.AgentError) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newErrorsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
