// Code generated by ent, DO NOT EDIT.

package benchmark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the benchmark type in the database.
	Label = "benchmark"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldHashType holds the string denoting the hash_type field in the database.
	FieldHashType = "hash_type"
	// FieldDevice holds the string denoting the device field in the database.
	FieldDevice = "device"
	// FieldHashSpeed holds the string denoting the hash_speed field in the database.
	FieldHashSpeed = "hash_speed"
	// FieldRuntimeMs holds the string denoting the runtime_ms field in the database.
	FieldRuntimeMs = "runtime_ms"
	// FieldMeasuredAt holds the string denoting the measured_at field in the database.
	FieldMeasuredAt = "measured_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// Table holds the table name of the benchmark in the database.
	Table = "benchmarks"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "benchmarks"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for benchmark fields.
var Columns = []string{
	FieldID,
	FieldAgentID,
	FieldHashType,
	FieldDevice,
	FieldHashSpeed,
	FieldRuntimeMs,
	FieldMeasuredAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// HashTypeValidator is a validator for the "hash_type" field. It is called by the builders before save.
	HashTypeValidator func(int) error
	// DeviceValidator is a validator for the "device" field. It is called by the builders before save.
	DeviceValidator func(int) error
	// DefaultRuntimeMs holds the default value on creation for the "runtime_ms" field.
	DefaultRuntimeMs int64
	// DefaultMeasuredAt holds the default value on creation for the "measured_at" field.
	DefaultMeasuredAt func() time.Time
)

// OrderOption defines the ordering options for the Benchmark queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByHashType orders the results by the hash_type field.
func ByHashType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashType, opts...).ToFunc()
}

// ByDevice orders the results by the device field.
func ByDevice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDevice, opts...).ToFunc()
}

// ByHashSpeed orders the results by the hash_speed field.
func ByHashSpeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashSpeed, opts...).ToFunc()
}

// ByRuntimeMs orders the results by the runtime_ms field.
func ByRuntimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuntimeMs, opts...).ToFunc()
}

// ByMeasuredAt orders the results by the measured_at field.
func ByMeasuredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeasuredAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
