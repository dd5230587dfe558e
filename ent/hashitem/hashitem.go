// Code generated by ent, DO NOT EDIT.

package hashitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hashitem type in the database.
	Label = "hash_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHashListID holds the string denoting the hash_list_id field in the database.
	FieldHashListID = "hash_list_id"
	// FieldHashValue holds the string denoting the hash_value field in the database.
	FieldHashValue = "hash_value"
	// FieldSalt holds the string denoting the salt field in the database.
	FieldSalt = "salt"
	// FieldPlaintext holds the string denoting the plaintext field in the database.
	FieldPlaintext = "plaintext"
	// FieldCrackedAt holds the string denoting the cracked_at field in the database.
	FieldCrackedAt = "cracked_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeHashList holds the string denoting the hash_list edge name in mutations.
	EdgeHashList = "hash_list"
	// Table holds the table name of the hashitem in the database.
	Table = "hash_items"
	// HashListTable is the table that holds the hash_list relation/edge.
	HashListTable = "hash_items"
	// HashListInverseTable is the table name for the HashList entity.
	// It exists in this package in order to avoid circular dependency with the "hashlist" package.
	HashListInverseTable = "hash_lists"
	// HashListColumn is the table column denoting the hash_list relation/edge.
	HashListColumn = "hash_list_id"
)

// Columns holds all SQL columns for hashitem fields.
var Columns = []string{
	FieldID,
	FieldHashListID,
	FieldHashValue,
	FieldSalt,
	FieldPlaintext,
	FieldCrackedAt,
	FieldMetadata,
	FieldCreatedAt,
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
	// DefaultSalt holds the default value on creation for the "salt" field.
	DefaultSalt string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the HashItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHashListID orders the results by the hash_list_id field.
func ByHashListID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashListID, opts...).ToFunc()
}

// ByHashValue orders the results by the hash_value field.
func ByHashValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashValue, opts...).ToFunc()
}

// BySalt orders the results by the salt field.
func BySalt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalt, opts...).ToFunc()
}

// ByPlaintext orders the results by the plaintext field.
func ByPlaintext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaintext, opts...).ToFunc()
}

// ByCrackedAt orders the results by the cracked_at field.
func ByCrackedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrackedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByHashListField orders the results by hash_list field.
func ByHashListField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHashListStep(), sql.OrderByField(field, opts...))
	}
}
func newHashListStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HashListInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HashListTable, HashListColumn),
	)
}
