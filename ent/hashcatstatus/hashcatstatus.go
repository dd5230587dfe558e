// Code generated by ent, DO NOT EDIT.

package hashcatstatus

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hashcatstatus type in the database.
	Label = "hashcat_status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldOriginalLine holds the string denoting the original_line field in the database.
	FieldOriginalLine = "original_line"
	// FieldSession holds the string denoting the session field in the database.
	FieldSession = "session"
	// FieldStatusCode holds the string denoting the status_code field in the database.
	FieldStatusCode = "status_code"
	// FieldTarget holds the string denoting the target field in the database.
	FieldTarget = "target"
	// FieldProgressDone holds the string denoting the progress_done field in the database.
	FieldProgressDone = "progress_done"
	// FieldProgressTotal holds the string denoting the progress_total field in the database.
	FieldProgressTotal = "progress_total"
	// FieldRestorePoint holds the string denoting the restore_point field in the database.
	FieldRestorePoint = "restore_point"
	// FieldRecoveredHashes holds the string denoting the recovered_hashes field in the database.
	FieldRecoveredHashes = "recovered_hashes"
	// FieldRecoveredSalts holds the string denoting the recovered_salts field in the database.
	FieldRecoveredSalts = "recovered_salts"
	// FieldRejected holds the string denoting the rejected field in the database.
	FieldRejected = "rejected"
	// FieldDevices holds the string denoting the devices field in the database.
	FieldDevices = "devices"
	// FieldHashcatGuess holds the string denoting the hashcat_guess field in the database.
	FieldHashcatGuess = "hashcat_guess"
	// FieldTimeStart holds the string denoting the time_start field in the database.
	FieldTimeStart = "time_start"
	// FieldEstimatedStop holds the string denoting the estimated_stop field in the database.
	FieldEstimatedStop = "estimated_stop"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// Table holds the table name of the hashcatstatus in the database.
	Table = "hashcat_status"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "hashcat_status"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for hashcatstatus fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldOriginalLine,
	FieldSession,
	FieldStatusCode,
	FieldTarget,
	FieldProgressDone,
	FieldProgressTotal,
	FieldRestorePoint,
	FieldRecoveredHashes,
	FieldRecoveredSalts,
	FieldRejected,
	FieldDevices,
	FieldHashcatGuess,
	FieldTimeStart,
	FieldEstimatedStop,
	FieldReceivedAt,
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
	// DefaultSession holds the default value on creation for the "session" field.
	DefaultSession string
	// DefaultTarget holds the default value on creation for the "target" field.
	DefaultTarget string
	// DefaultProgressDone holds the default value on creation for the "progress_done" field.
	DefaultProgressDone int64
	// DefaultProgressTotal holds the default value on creation for the "progress_total" field.
	DefaultProgressTotal int64
	// DefaultRestorePoint holds the default value on creation for the "restore_point" field.
	DefaultRestorePoint int64
	// DefaultRejected holds the default value on creation for the "rejected" field.
	DefaultRejected int64
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
)

// OrderOption defines the ordering options for the HashcatStatus queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByOriginalLine orders the results by the original_line field.
func ByOriginalLine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalLine, opts...).ToFunc()
}

// BySession orders the results by the session field.
func BySession(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSession, opts...).ToFunc()
}

// ByStatusCode orders the results by the status_code field.
func ByStatusCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusCode, opts...).ToFunc()
}

// ByTarget orders the results by the target field.
func ByTarget(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTarget, opts...).ToFunc()
}

// ByProgressDone orders the results by the progress_done field.
func ByProgressDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressDone, opts...).ToFunc()
}

// ByProgressTotal orders the results by the progress_total field.
func ByProgressTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressTotal, opts...).ToFunc()
}

// ByRestorePoint orders the results by the restore_point field.
func ByRestorePoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRestorePoint, opts...).ToFunc()
}

// ByRejected orders the results by the rejected field.
func ByRejected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRejected, opts...).ToFunc()
}

// ByTimeStart orders the results by the time_start field.
func ByTimeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeStart, opts...).ToFunc()
}

// ByEstimatedStop orders the results by the estimated_stop field.
func ByEstimatedStop(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstimatedStop, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
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
