// Code generated by ent, DO NOT EDIT.

package crackresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the crackresult type in the database.
	Label = "crack_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldHashValue holds the string denoting the hash_value field in the database.
	FieldHashValue = "hash_value"
	// FieldPlaintext holds the string denoting the plaintext field in the database.
	FieldPlaintext = "plaintext"
	// FieldCrackedAt holds the string denoting the cracked_at field in the database.
	FieldCrackedAt = "cracked_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// Table holds the table name of the crackresult in the database.
	Table = "crack_results"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "crack_results"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for crackresult fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldHashValue,
	FieldPlaintext,
	FieldCrackedAt,
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
	// HashValueValidator is a validator for the "hash_value" field. It is called by the builders before save.
	HashValueValidator func(string) error
	// DefaultCrackedAt holds the default value on creation for the "cracked_at" field.
	DefaultCrackedAt func() time.Time
)

// OrderOption defines the ordering options for the CrackResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByHashValue orders the results by the hash_value field.
func ByHashValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashValue, opts...).ToFunc()
}

// ByPlaintext orders the results by the plaintext field.
func ByPlaintext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaintext, opts...).ToFunc()
}

// ByCrackedAt orders the results by the cracked_at field.
func ByCrackedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrackedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
