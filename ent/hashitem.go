// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
)

// HashItem is the model entity for the HashItem schema.
type HashItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// HashListID holds the value of the "hash_list_id" field.
	HashListID int `json:"hash_list_id,omitempty"`
	// HashValue holds the value of the "hash_value" field.
	HashValue string `json:"hash_value,omitempty"`
	// Salt holds the value of the "salt" field.
	Salt string `json:"salt,omitempty"`
	// Plaintext holds the value of the "plaintext" field.
	Plaintext *string `json:"plaintext,omitempty"`
	// CrackedAt holds the value of the "cracked_at" field.
	CrackedAt *time.Time `json:"cracked_at,omitempty"`
	// source fields carried through import, e.g. username
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HashItemQuery when eager-loading is set.
	Edges        HashItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HashItemEdges holds the relations/edges for other nodes in the graph.
type HashItemEdges struct {
	// HashList holds the value of the hash_list edge.
	HashList *HashList `json:"hash_list,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// HashListOrErr returns the HashList value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HashItemEdges) HashListOrErr() (*HashList, error) {
	if e.HashList != nil {
		return e.HashList, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: hashlist.Label}
	}
	return nil, &NotLoadedError{edge: "hash_list"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HashItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hashitem.FieldMetadata:
			values[i] = new([]byte)
		case hashitem.FieldID, hashitem.FieldHashListID:
			values[i] = new(sql.NullInt64)
		case hashitem.FieldHashValue, hashitem.FieldSalt, hashitem.FieldPlaintext:
			values[i] = new(sql.NullString)
		case hashitem.FieldCrackedAt, hashitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HashItem fields.
func (_m *HashItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hashitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hashitem.FieldHashListID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hash_list_id", values[i])
			} else if value.Valid {
				_m.HashListID = int(value.Int64)
			}
		case hashitem.FieldHashValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash_value", values[i])
			} else if value.Valid {
				_m.HashValue = value.String
			}
		case hashitem.FieldSalt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field salt", values[i])
			} else if value.Valid {
				_m.Salt = value.String
			}
		case hashitem.FieldPlaintext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plaintext", values[i])
			} else if value.Valid {
				_m.Plaintext = new(string)
				*_m.Plaintext = value.String
			}
		case hashitem.FieldCrackedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cracked_at", values[i])
			} else if value.Valid {
				_m.CrackedAt = new(time.Time)
				*_m.CrackedAt = value.Time
			}
		case hashitem.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case hashitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HashItem.
// This includes values selected through modifiers, order, etc.
func (_m *HashItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryHashList queries the "hash_list" edge of the HashItem entity.
func (_m *HashItem) QueryHashList() *HashListQuery {
	return NewHashItemClient(_m.config).QueryHashList(_m)
}

// Update returns a builder for updating this HashItem.
// Note that you need to call HashItem.Unwrap() before calling this method if this HashItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HashItem) Update() *HashItemUpdateOne {
	return NewHashItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HashItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HashItem) Unwrap() *HashItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HashItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HashItem) String() string {
	var builder strings.Builder
	builder.WriteString("HashItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hash_list_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HashListID))
	builder.WriteString(", ")
	builder.WriteString("hash_value=")
	builder.WriteString(_m.HashValue)
	builder.WriteString(", ")
	builder.WriteString("salt=")
	builder.WriteString(_m.Salt)
	builder.WriteString(", ")
	if v := _m.Plaintext; v != nil {
		builder.WriteString("plaintext=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CrackedAt; v != nil {
		builder.WriteString("cracked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HashItems is a parsable slice of HashItem.
type HashItems []*HashItem
