// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/resource"
)

// Resource is the model entity for the Resource schema.
type Resource struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// FileName holds the value of the "file_name" field.
	FileName string `json:"file_name,omitempty"`
	// opaque storage key the download signer resolves
	FileHandle string `json:"file_handle,omitempty"`
	// ResourceType holds the value of the "resource_type" field.
	ResourceType resource.ResourceType `json:"resource_type,omitempty"`
	// LineCount holds the value of the "line_count" field.
	LineCount *int64 `json:"line_count,omitempty"`
	// ByteSize holds the value of the "byte_size" field.
	ByteSize int64 `json:"byte_size,omitempty"`
	// base64 MD5 of the file body, as served to agents
	Checksum string `json:"checksum,omitempty"`
	// Sensitive holds the value of the "sensitive" field.
	Sensitive bool `json:"sensitive,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResourceQuery when eager-loading is set.
	Edges        ResourceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ResourceEdges holds the relations/edges for other nodes in the graph.
type ResourceEdges struct {
	// Projects holds the value of the projects edge.
	Projects []*Project `json:"projects,omitempty"`
	// WordListAttacks holds the value of the word_list_attacks edge.
	WordListAttacks []*Attack `json:"word_list_attacks,omitempty"`
	// RuleListAttacks holds the value of the rule_list_attacks edge.
	RuleListAttacks []*Attack `json:"rule_list_attacks,omitempty"`
	// MaskListAttacks holds the value of the mask_list_attacks edge.
	MaskListAttacks []*Attack `json:"mask_list_attacks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectsOrErr returns the Projects value or an error if the edge
// was not loaded in eager-loading.
func (e ResourceEdges) ProjectsOrErr() ([]*Project, error) {
	if e.loadedTypes[0] {
		return e.Projects, nil
	}
	return nil, &NotLoadedError{edge: "projects"}
}

// WordListAttacksOrErr returns the WordListAttacks value or an error if the edge
// was not loaded in eager-loading.
func (e ResourceEdges) WordListAttacksOrErr() ([]*Attack, error) {
	if e.loadedTypes[1] {
		return e.WordListAttacks, nil
	}
	return nil, &NotLoadedError{edge: "word_list_attacks"}
}

// RuleListAttacksOrErr returns the RuleListAttacks value or an error if the edge
// was not loaded in eager-loading.
func (e ResourceEdges) RuleListAttacksOrErr() ([]*Attack, error) {
	if e.loadedTypes[2] {
		return e.RuleListAttacks, nil
	}
	return nil, &NotLoadedError{edge: "rule_list_attacks"}
}

// MaskListAttacksOrErr returns the MaskListAttacks value or an error if the edge
// was not loaded in eager-loading.
func (e ResourceEdges) MaskListAttacksOrErr() ([]*Attack, error) {
	if e.loadedTypes[3] {
		return e.MaskListAttacks, nil
	}
	return nil, &NotLoadedError{edge: "mask_list_attacks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Resource) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resource.FieldSensitive:
			values[i] = new(sql.NullBool)
		case resource.FieldID, resource.FieldLineCount, resource.FieldByteSize:
			values[i] = new(sql.NullInt64)
		case resource.FieldName, resource.FieldFileName, resource.FieldFileHandle, resource.FieldResourceType, resource.FieldChecksum:
			values[i] = new(sql.NullString)
		case resource.FieldCreatedAt, resource.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Resource fields.
func (_m *Resource) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resource.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case resource.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case resource.FieldFileName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_name", values[i])
			} else if value.Valid {
				_m.FileName = value.String
			}
		case resource.FieldFileHandle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_handle", values[i])
			} else if value.Valid {
				_m.FileHandle = value.String
			}
		case resource.FieldResourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_type", values[i])
			} else if value.Valid {
				_m.ResourceType = resource.ResourceType(value.String)
			}
		case resource.FieldLineCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field line_count", values[i])
			} else if value.Valid {
				_m.LineCount = new(int64)
				*_m.LineCount = value.Int64
			}
		case resource.FieldByteSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field byte_size", values[i])
			} else if value.Valid {
				_m.ByteSize = value.Int64
			}
		case resource.FieldChecksum:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field checksum", values[i])
			} else if value.Valid {
				_m.Checksum = value.String
			}
		case resource.FieldSensitive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sensitive", values[i])
			} else if value.Valid {
				_m.Sensitive = value.Bool
			}
		case resource.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case resource.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Resource.
// This includes values selected through modifiers, order, etc.
func (_m *Resource) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProjects queries the "projects" edge of the Resource entity.
func (_m *Resource) QueryProjects() *ProjectQuery {
	return NewResourceClient(_m.config).QueryProjects(_m)
}

// QueryWordListAttacks queries the "word_list_attacks" edge of the Resource entity.
func (_m *Resource) QueryWordListAttacks() *AttackQuery {
	return NewResourceClient(_m.config).QueryWordListAttacks(_m)
}

// QueryRuleListAttacks queries the "rule_list_attacks" edge of the Resource entity.
func (_m *Resource) QueryRuleListAttacks() *AttackQuery {
	return NewResourceClient(_m.config).QueryRuleListAttacks(_m)
}

// QueryMaskListAttacks queries the "mask_list_attacks" edge of the Resource entity.
func (_m *Resource) QueryMaskListAttacks() *AttackQuery {
	return NewResourceClient(_m.config).QueryMaskListAttacks(_m)
}

// Update returns a builder for updating this Resource.
// Note that you need to call Resource.Unwrap() before calling this method if this Resource
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Resource) Update() *ResourceUpdateOne {
	return NewResourceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Resource entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Resource) Unwrap() *Resource {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Resource is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Resource) String() string {
	var builder strings.Builder
	builder.WriteString("Resource(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("file_name=")
	builder.WriteString(_m.FileName)
	builder.WriteString(", ")
	builder.WriteString("file_handle=")
	builder.WriteString(_m.FileHandle)
	builder.WriteString(", ")
	builder.WriteString("resource_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResourceType))
	builder.WriteString(", ")
	if v := _m.LineCount; v != nil {
		builder.WriteString("line_count=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("byte_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.ByteSize))
	builder.WriteString(", ")
	builder.WriteString("checksum=")
	builder.WriteString(_m.Checksum)
	builder.WriteString(", ")
	builder.WriteString("sensitive=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sensitive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Resources is a parsable slice of Resource.
type Resources []*Resource
