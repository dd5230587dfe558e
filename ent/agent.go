// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// Agent is the model entity for the Agent schema.
type Agent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Label holds the value of the "label" field.
	Label string `json:"label,omitempty"`
	// HostName holds the value of the "host_name" field.
	HostName string `json:"host_name,omitempty"`
	// ClientSignature holds the value of the "client_signature" field.
	ClientSignature string `json:"client_signature,omitempty"`
	// OperatingSystem holds the value of the "operating_system" field.
	OperatingSystem string `json:"operating_system,omitempty"`
	// Devices holds the value of the "devices" field.
	Devices []string `json:"devices,omitempty"`
	// Token holds the value of the "token" field.
	Token *string `json:"-"`
	// RegistrationToken holds the value of the "registration_token" field.
	RegistrationToken *string `json:"-"`
	// State holds the value of the "state" field.
	State agent.State `json:"state,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
	// LastIpaddress holds the value of the "last_ipaddress" field.
	LastIpaddress string `json:"last_ipaddress,omitempty"`
	// AdvancedConfig holds the value of the "advanced_config" field.
	AdvancedConfig models.AdvancedAgentConfig `json:"advanced_config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentQuery when eager-loading is set.
	Edges        AgentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentEdges holds the relations/edges for other nodes in the graph.
type AgentEdges struct {
	// Projects holds the value of the projects edge.
	Projects []*Project `json:"projects,omitempty"`
	// Benchmarks holds the value of the benchmarks edge.
	Benchmarks []*Benchmark `json:"benchmarks,omitempty"`
	// AgentErrors holds the value of the agent_errors edge.
	AgentErrors []*AgentError `json:"agent_errors,omitempty"`
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectsOrErr returns the Projects value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) ProjectsOrErr() ([]*Project, error) {
	if e.loadedTypes[0] {
		return e.Projects, nil
	}
	return nil, &NotLoadedError{edge: "projects"}
}

// BenchmarksOrErr returns the Benchmarks value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) BenchmarksOrErr() ([]*Benchmark, error) {
	if e.loadedTypes[1] {
		return e.Benchmarks, nil
	}
	return nil, &NotLoadedError{edge: "benchmarks"}
}

// AgentErrorsOrErr returns the AgentErrors value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) AgentErrorsOrErr() ([]*AgentError, error) {
	if e.loadedTypes[2] {
		return e.AgentErrors, nil
	}
	return nil, &NotLoadedError{edge: "agent_errors"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e AgentEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[3] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Agent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agent.FieldDevices, agent.FieldAdvancedConfig:
			values[i] = new([]byte)
		case agent.FieldID:
			values[i] = new(sql.NullInt64)
		case agent.FieldLabel, agent.FieldHostName, agent.FieldClientSignature, agent.FieldOperatingSystem, agent.FieldToken, agent.FieldRegistrationToken, agent.FieldState, agent.FieldLastIpaddress:
			values[i] = new(sql.NullString)
		case agent.FieldLastSeenAt, agent.FieldCreatedAt, agent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Agent fields.
func (_m *Agent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case agent.FieldLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field label", values[i])
			} else if value.Valid {
				_m.Label = value.String
			}
		case agent.FieldHostName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field host_name", values[i])
			} else if value.Valid {
				_m.HostName = value.String
			}
		case agent.FieldClientSignature:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_signature", values[i])
			} else if value.Valid {
				_m.ClientSignature = value.String
			}
		case agent.FieldOperatingSystem:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operating_system", values[i])
			} else if value.Valid {
				_m.OperatingSystem = value.String
			}
		case agent.FieldDevices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field devices", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Devices); err != nil {
					return fmt.Errorf("unmarshal field devices: %w", err)
				}
			}
		case agent.FieldToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field token", values[i])
			} else if value.Valid {
				_m.Token = new(string)
				*_m.Token = value.String
			}
		case agent.FieldRegistrationToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field registration_token", values[i])
			} else if value.Valid {
				_m.RegistrationToken = new(string)
				*_m.RegistrationToken = value.String
			}
		case agent.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = agent.State(value.String)
			}
		case agent.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = new(time.Time)
				*_m.LastSeenAt = value.Time
			}
		case agent.FieldLastIpaddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_ipaddress", values[i])
			} else if value.Valid {
				_m.LastIpaddress = value.String
			}
		case agent.FieldAdvancedConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field advanced_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AdvancedConfig); err != nil {
					return fmt.Errorf("unmarshal field advanced_config: %w", err)
				}
			}
		case agent.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case agent.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Agent.
// This includes values selected through modifiers, order, etc.
func (_m *Agent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProjects queries the "projects" edge of the Agent entity.
func (_m *Agent) QueryProjects() *ProjectQuery {
	return NewAgentClient(_m.config).QueryProjects(_m)
}

// QueryBenchmarks queries the "benchmarks" edge of the Agent entity.
func (_m *Agent) QueryBenchmarks() *BenchmarkQuery {
	return NewAgentClient(_m.config).QueryBenchmarks(_m)
}

// QueryAgentErrors queries the "agent_errors" edge of the Agent entity.
func (_m *Agent) QueryAgentErrors() *AgentErrorQuery {
	return NewAgentClient(_m.config).QueryAgentErrors(_m)
}

// QueryTasks queries the "tasks" edge of the Agent entity.
func (_m *Agent) QueryTasks() *TaskQuery {
	return NewAgentClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this Agent.
// Note that you need to call Agent.Unwrap() before calling this method if this Agent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Agent) Update() *AgentUpdateOne {
	return NewAgentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Agent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Agent) Unwrap() *Agent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Agent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Agent) String() string {
	var builder strings.Builder
	builder.WriteString("Agent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("label=")
	builder.WriteString(_m.Label)
	builder.WriteString(", ")
	builder.WriteString("host_name=")
	builder.WriteString(_m.HostName)
	builder.WriteString(", ")
	builder.WriteString("client_signature=")
	builder.WriteString(_m.ClientSignature)
	builder.WriteString(", ")
	builder.WriteString("operating_system=")
	builder.WriteString(_m.OperatingSystem)
	builder.WriteString(", ")
	builder.WriteString("devices=")
	builder.WriteString(fmt.Sprintf("%v", _m.Devices))
	builder.WriteString(", ")
	builder.WriteString("token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("registration_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.LastSeenAt; v != nil {
		builder.WriteString("last_seen_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_ipaddress=")
	builder.WriteString(_m.LastIpaddress)
	builder.WriteString(", ")
	builder.WriteString("advanced_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.AdvancedConfig))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Agents is a parsable slice of Agent.
type Agents []*Agent
