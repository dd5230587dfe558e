// Code generated by ent, DO NOT EDIT.

package resource

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the resource type in the database.
	Label = "resource"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFileName holds the string denoting the file_name field in the database.
	FieldFileName = "file_name"
	// FieldFileHandle holds the string denoting the file_handle field in the database.
	FieldFileHandle = "file_handle"
	// FieldResourceType holds the string denoting the resource_type field in the database.
	FieldResourceType = "resource_type"
	// FieldLineCount holds the string denoting the line_count field in the database.
	FieldLineCount = "line_count"
	// FieldByteSize holds the string denoting the byte_size field in the database.
	FieldByteSize = "byte_size"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldSensitive holds the string denoting the sensitive field in the database.
	FieldSensitive = "sensitive"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProjects holds the string denoting the projects edge name in mutations.
	EdgeProjects = "projects"
	// EdgeWordListAttacks holds the string denoting the word_list_attacks edge name in mutations.
	EdgeWordListAttacks = "word_list_attacks"
	// EdgeRuleListAttacks holds the string denoting the rule_list_attacks edge name in mutations.
	EdgeRuleListAttacks = "rule_list_attacks"
	// EdgeMaskListAttacks holds the string denoting the mask_list_attacks edge name in mutations.
	EdgeMaskListAttacks = "mask_list_attacks"
	// Table holds the table name of the resource in the database.
	Table = "resources"
	// ProjectsTable is the table that holds the projects relation/edge. The primary key declared below.
	ProjectsTable = "resource_projects"
	// ProjectsInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectsInverseTable = "projects"
	// WordListAttacksTable is the table that holds the word_list_attacks relation/edge.
	WordListAttacksTable = "attacks"
	// WordListAttacksInverseTable is the table name for the Attack entity.
	// It exists in this package in order to avoid circular dependency with the "attack" package.
	WordListAttacksInverseTable = "attacks"
	// WordListAttacksColumn is the table column denoting the word_list_attacks relation/edge.
	WordListAttacksColumn = "word_list_id"
	// RuleListAttacksTable is the table that holds the rule_list_attacks relation/edge.
	RuleListAttacksTable = "attacks"
	// RuleListAttacksInverseTable is the table name for the Attack entity.
	// It exists in this package in order to avoid circular dependency with the "attack" package.
	RuleListAttacksInverseTable = "attacks"
	// RuleListAttacksColumn is the table column denoting the rule_list_attacks relation/edge.
	RuleListAttacksColumn = "rule_list_id"
	// MaskListAttacksTable is the table that holds the mask_list_attacks relation/edge.
	MaskListAttacksTable = "attacks"
	// MaskListAttacksInverseTable is the table name for the Attack entity.
	// It exists in this package in order to avoid circular dependency with the "attack" package.
	MaskListAttacksInverseTable = "attacks"
	// MaskListAttacksColumn is the table column denoting the mask_list_attacks relation/edge.
	MaskListAttacksColumn = "mask_list_id"
)

// Columns holds all SQL columns for resource fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldFileName,
	FieldFileHandle,
	FieldResourceType,
	FieldLineCount,
	FieldByteSize,
	FieldChecksum,
	FieldSensitive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

var (
	// ProjectsPrimaryKey and ProjectsColumn2 are the table columns denoting the
	// primary key for the projects relation (M2M).
	ProjectsPrimaryKey = []string{"resource_id", "project_id"}
)

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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	FileNameValidator func(string) error
	// FileHandleValidator is a validator for the "file_handle" field. It is called by the builders before save.
	FileHandleValidator func(string) error
	// DefaultByteSize holds the default value on creation for the "byte_size" field.
	DefaultByteSize int64
	// DefaultChecksum holds the default value on creation for the "checksum" field.
	DefaultChecksum string
	// DefaultSensitive holds the default value on creation for the "sensitive" field.
	DefaultSensitive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ResourceType defines the type for the "resource_type" enum field.
type ResourceType string

// ResourceType values.
const (
	ResourceTypeWordList ResourceType = "word_list"
	ResourceTypeRuleList ResourceType = "rule_list"
	ResourceTypeMaskList ResourceType = "mask_list"
	ResourceTypeCharset  ResourceType = "charset"
)

func (rt ResourceType) String() string {
	return string(rt)
}

// ResourceTypeValidator is a validator for the "resource_type" field enum values. It is called by the builders before save.
func ResourceTypeValidator(rt ResourceType) error {
	switch rt {
	case ResourceTypeWordList, ResourceTypeRuleList, ResourceTypeMaskList, ResourceTypeCharset:
		return nil
	default:
		return fmt.Errorf("resource: invalid enum value for resource_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the Resource queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFileName orders the results by the file_name field.
func ByFileName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileName, opts...).ToFunc()
}

// ByFileHandle orders the results by the file_handle field.
func ByFileHandle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileHandle, opts...).ToFunc()
}

// ByResourceType orders the results by the resource_type field.
func ByResourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceType, opts...).ToFunc()
}

// ByLineCount orders the results by the line_count field.
func ByLineCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLineCount, opts...).ToFunc()
}

// ByByteSize orders the results by the byte_size field.
func ByByteSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldByteSize, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// BySensitive orders the results by the sensitive field.
func BySensitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSensitive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectsCount orders the results by projects count.
func ByProjectsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProjectsStep(), opts...)
	}
}

// ByProjects orders the results by projects terms.
func ByProjects(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWordListAttacksCount orders the results by word_list_attacks count.
func ByWordListAttacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWordListAttacksStep(), opts...)
	}
}

// ByWordListAttacks orders the results by word_list_attacks terms.
func ByWordListAttacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWordListAttacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRuleListAttacksCount orders the results by rule_list_attacks count.
func ByRuleListAttacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRuleListAttacksStep(), opts...)
	}
}

// ByRuleListAttacks orders the results by rule_list_attacks terms.
func ByRuleListAttacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRuleListAttacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMaskListAttacksCount orders the results by mask_list_attacks count.
func ByMaskListAttacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMaskListAttacksStep(), opts...)
	}
}

// ByMaskListAttacks orders the results by mask_list_attacks terms.
func ByMaskListAttacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMaskListAttacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, false, ProjectsTable, ProjectsPrimaryKey...),
	)
}
func newWordListAttacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WordListAttacksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WordListAttacksTable, WordListAttacksColumn),
	)
}
func newRuleListAttacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RuleListAttacksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RuleListAttacksTable, RuleListAttacksColumn),
	)
}
func newMaskListAttacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MaskListAttacksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MaskListAttacksTable, MaskListAttacksColumn),
	)
}
