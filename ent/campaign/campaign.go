// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldHashListID holds the string denoting the hash_list_id field in the database.
	FieldHashListID = "hash_list_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeHashList holds the string denoting the hash_list edge name in mutations.
	EdgeHashList = "hash_list"
	// EdgeAttacks holds the string denoting the attacks edge name in mutations.
	EdgeAttacks = "attacks"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "campaigns"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// HashListTable is the table that holds the hash_list relation/edge.
	HashListTable = "campaigns"
	// HashListInverseTable is the table name for the HashList entity.
	// It exists in this package in order to avoid circular dependency with the "hashlist" package.
	HashListInverseTable = "hash_lists"
	// HashListColumn is the table column denoting the hash_list relation/edge.
	HashListColumn = "hash_list_id"
	// AttacksTable is the table that holds the attacks relation/edge.
	AttacksTable = "attacks"
	// AttacksInverseTable is the table name for the Attack entity.
	// It exists in this package in order to avoid circular dependency with the "attack" package.
	AttacksInverseTable = "attacks"
	// AttacksColumn is the table column denoting the attacks relation/edge.
	AttacksColumn = "campaign_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldHashListID,
	FieldName,
	FieldDescription,
	FieldPriority,
	FieldState,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority models.Priority
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StateDraft is the default value of the State enum.
const DefaultState = StateDraft

// State values.
const (
	StateDraft     State = "draft"
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateArchived  State = "archived"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateDraft, StateActive, StateCompleted, StateArchived:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByHashListID orders the results by the hash_list_id field.
func ByHashListID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashListID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByHashListField orders the results by hash_list field.
func ByHashListField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHashListStep(), sql.OrderByField(field, opts...))
	}
}

// ByAttacksCount orders the results by attacks count.
func ByAttacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttacksStep(), opts...)
	}
}

// ByAttacks orders the results by attacks terms.
func ByAttacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newHashListStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HashListInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HashListTable, HashListColumn),
	)
}
func newAttacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttacksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttacksTable, AttacksColumn),
	)
}
