// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
)

// HashList is the model entity for the HashList schema.
type HashList struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID int `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// hashcat -m hash mode
	HashTypeID int `json:"hash_type_id,omitempty"`
	// Separator holds the value of the "separator" field.
	Separator string `json:"separator,omitempty"`
	// ItemCount holds the value of the "item_count" field.
	ItemCount int64 `json:"item_count,omitempty"`
	// UncrackedCount holds the value of the "uncracked_count" field.
	UncrackedCount int64 `json:"uncracked_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HashListQuery when eager-loading is set.
	Edges        HashListEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HashListEdges holds the relations/edges for other nodes in the graph.
type HashListEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Items holds the value of the items edge.
	Items []*HashItem `json:"items,omitempty"`
	// Campaigns holds the value of the campaigns edge.
	Campaigns []*Campaign `json:"campaigns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HashListEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e HashListEdges) ItemsOrErr() ([]*HashItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// CampaignsOrErr returns the Campaigns value or an error if the edge
// was not loaded in eager-loading.
func (e HashListEdges) CampaignsOrErr() ([]*Campaign, error) {
	if e.loadedTypes[2] {
		return e.Campaigns, nil
	}
	return nil, &NotLoadedError{edge: "campaigns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HashList) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hashlist.FieldID, hashlist.FieldProjectID, hashlist.FieldHashTypeID, hashlist.FieldItemCount, hashlist.FieldUncrackedCount:
			values[i] = new(sql.NullInt64)
		case hashlist.FieldName, hashlist.FieldDescription, hashlist.FieldSeparator:
			values[i] = new(sql.NullString)
		case hashlist.FieldCreatedAt, hashlist.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HashList fields.
func (_m *HashList) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hashlist.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hashlist.FieldProjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = int(value.Int64)
			}
		case hashlist.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case hashlist.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case hashlist.FieldHashTypeID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hash_type_id", values[i])
			} else if value.Valid {
				_m.HashTypeID = int(value.Int64)
			}
		case hashlist.FieldSeparator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field separator", values[i])
			} else if value.Valid {
				_m.Separator = value.String
			}
		case hashlist.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = value.Int64
			}
		case hashlist.FieldUncrackedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field uncracked_count", values[i])
			} else if value.Valid {
				_m.UncrackedCount = value.Int64
			}
		case hashlist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hashlist.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HashList.
// This includes values selected through modifiers, order, etc.
func (_m *HashList) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the HashList entity.
func (_m *HashList) QueryProject() *ProjectQuery {
	return NewHashListClient(_m.config).QueryProject(_m)
}

// QueryItems queries the "items" edge of the HashList entity.
func (_m *HashList) QueryItems() *HashItemQuery {
	return NewHashListClient(_m.config).QueryItems(_m)
}

// QueryCampaigns queries the "campaigns" edge of the HashList entity.
func (_m *HashList) QueryCampaigns() *CampaignQuery {
	return NewHashListClient(_m.config).QueryCampaigns(_m)
}

// Update returns a builder for updating this HashList.
// Note that you need to call HashList.Unwrap() before calling this method if this HashList
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HashList) Update() *HashListUpdateOne {
	return NewHashListClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HashList entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HashList) Unwrap() *HashList {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HashList is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HashList) String() string {
	var builder strings.Builder
	builder.WriteString("HashList(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("hash_type_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.HashTypeID))
	builder.WriteString(", ")
	builder.WriteString("separator=")
	builder.WriteString(_m.Separator)
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("uncracked_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UncrackedCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HashLists is a parsable slice of HashList.
type HashLists []*HashList
