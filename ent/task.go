// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AttackID holds the value of the "attack_id" field.
	AttackID int `json:"attack_id,omitempty"`
	// AgentID holds the value of the "agent_id" field.
	AgentID *int `json:"agent_id,omitempty"`
	// State holds the value of the "state" field.
	State task.State `json:"state,omitempty"`
	// KeyspaceOffset holds the value of the "keyspace_offset" field.
	KeyspaceOffset int64 `json:"keyspace_offset,omitempty"`
	// KeyspaceLimit holds the value of the "keyspace_limit" field.
	KeyspaceLimit int64 `json:"keyspace_limit,omitempty"`
	// ProgressPercentage holds the value of the "progress_percentage" field.
	ProgressPercentage float64 `json:"progress_percentage,omitempty"`
	// EstimatedFinish holds the value of the "estimated_finish" field.
	EstimatedFinish *time.Time `json:"estimated_finish,omitempty"`
	// ActivityTimestamp holds the value of the "activity_timestamp" field.
	ActivityTimestamp time.Time `json:"activity_timestamp,omitempty"`
	// set on resume so the agent re-fetches attack parameters
	Stale bool `json:"stale,omitempty"`
	// AgentSignal holds the value of the "agent_signal" field.
	AgentSignal task.AgentSignal `json:"agent_signal,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Attack holds the value of the attack edge.
	Attack *Attack `json:"attack,omitempty"`
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Statuses holds the value of the statuses edge.
	Statuses []*HashcatStatus `json:"statuses,omitempty"`
	// CrackResults holds the value of the crack_results edge.
	CrackResults []*CrackResult `json:"crack_results,omitempty"`
	// Errors holds the value of the errors edge.
	Errors []*AgentError `json:"errors,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// AttackOrErr returns the Attack value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) AttackOrErr() (*Attack, error) {
	if e.Attack != nil {
		return e.Attack, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: attack.Label}
	}
	return nil, &NotLoadedError{edge: "attack"}
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// StatusesOrErr returns the Statuses value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) StatusesOrErr() ([]*HashcatStatus, error) {
	if e.loadedTypes[2] {
		return e.Statuses, nil
	}
	return nil, &NotLoadedError{edge: "statuses"}
}

// CrackResultsOrErr returns the CrackResults value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) CrackResultsOrErr() ([]*CrackResult, error) {
	if e.loadedTypes[3] {
		return e.CrackResults, nil
	}
	return nil, &NotLoadedError{edge: "crack_results"}
}

// ErrorsOrErr returns the Errors value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ErrorsOrErr() ([]*AgentError, error) {
	if e.loadedTypes[4] {
		return e.Errors, nil
	}
	return nil, &NotLoadedError{edge: "errors"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldStale:
			values[i] = new(sql.NullBool)
		case task.FieldProgressPercentage:
			values[i] = new(sql.NullFloat64)
		case task.FieldID, task.FieldAttackID, task.FieldAgentID, task.FieldKeyspaceOffset, task.FieldKeyspaceLimit:
			values[i] = new(sql.NullInt64)
		case task.FieldState, task.FieldAgentSignal:
			values[i] = new(sql.NullString)
		case task.FieldEstimatedFinish, task.FieldActivityTimestamp, task.FieldStartDate, task.FieldCreatedAt, task.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case task.FieldAttackID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attack_id", values[i])
			} else if value.Valid {
				_m.AttackID = int(value.Int64)
			}
		case task.FieldAgentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field agent_id", values[i])
			} else if value.Valid {
				_m.AgentID = new(int)
				*_m.AgentID = int(value.Int64)
			}
		case task.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = task.State(value.String)
			}
		case task.FieldKeyspaceOffset:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field keyspace_offset", values[i])
			} else if value.Valid {
				_m.KeyspaceOffset = value.Int64
			}
		case task.FieldKeyspaceLimit:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field keyspace_limit", values[i])
			} else if value.Valid {
				_m.KeyspaceLimit = value.Int64
			}
		case task.FieldProgressPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_percentage", values[i])
			} else if value.Valid {
				_m.ProgressPercentage = value.Float64
			}
		case task.FieldEstimatedFinish:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_finish", values[i])
			} else if value.Valid {
				_m.EstimatedFinish = new(time.Time)
				*_m.EstimatedFinish = value.Time
			}
		case task.FieldActivityTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field activity_timestamp", values[i])
			} else if value.Valid {
				_m.ActivityTimestamp = value.Time
			}
		case task.FieldStale:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field stale", values[i])
			} else if value.Valid {
				_m.Stale = value.Bool
			}
		case task.FieldAgentSignal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_signal", values[i])
			} else if value.Valid {
				_m.AgentSignal = task.AgentSignal(value.String)
			}
		case task.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttack queries the "attack" edge of the Task entity.
func (_m *Task) QueryAttack() *AttackQuery {
	return NewTaskClient(_m.config).QueryAttack(_m)
}

// QueryAgent queries the "agent" edge of the Task entity.
func (_m *Task) QueryAgent() *AgentQuery {
	return NewTaskClient(_m.config).QueryAgent(_m)
}

// QueryStatuses queries the "statuses" edge of the Task entity.
func (_m *Task) QueryStatuses() *HashcatStatusQuery {
	return NewTaskClient(_m.config).QueryStatuses(_m)
}

// QueryCrackResults queries the "crack_results" edge of the Task entity.
func (_m *Task) QueryCrackResults() *CrackResultQuery {
	return NewTaskClient(_m.config).QueryCrackResults(_m)
}

// QueryErrors queries the "errors" edge of the Task entity.
func (_m *Task) QueryErrors() *AgentErrorQuery {
	return NewTaskClient(_m.config).QueryErrors(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attack_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttackID))
	builder.WriteString(", ")
	if v := _m.AgentID; v != nil {
		builder.WriteString("agent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("keyspace_offset=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyspaceOffset))
	builder.WriteString(", ")
	builder.WriteString("keyspace_limit=")
	builder.WriteString(fmt.Sprintf("%v", _m.KeyspaceLimit))
	builder.WriteString(", ")
	builder.WriteString("progress_percentage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressPercentage))
	builder.WriteString(", ")
	if v := _m.EstimatedFinish; v != nil {
		builder.WriteString("estimated_finish=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("activity_timestamp=")
	builder.WriteString(_m.ActivityTimestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("stale=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stale))
	builder.WriteString(", ")
	builder.WriteString("agent_signal=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentSignal))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
