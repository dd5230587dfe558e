// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/event"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgent         = "Agent"
	TypeAgentError    = "AgentError"
	TypeAttack        = "Attack"
	TypeBenchmark     = "Benchmark"
	TypeCampaign      = "Campaign"
	TypeCrackResult   = "CrackResult"
	TypeEvent         = "Event"
	TypeHashItem      = "HashItem"
	TypeHashList      = "HashList"
	TypeHashcatStatus = "HashcatStatus"
	TypeProject       = "Project"
	TypeResource      = "Resource"
	TypeTask          = "Task"
)

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	label               *string
	host_name           *string
	client_signature    *string
	operating_system    *string
	devices             *[]string
	appenddevices       []string
	token               *string
	registration_token  *string
	state               *agent.State
	last_seen_at        *time.Time
	last_ipaddress      *string
	advanced_config     *models.AdvancedAgentConfig
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	projects            map[int]struct{}
	removedprojects     map[int]struct{}
	clearedprojects     bool
	benchmarks          map[int]struct{}
	removedbenchmarks   map[int]struct{}
	clearedbenchmarks   bool
	agent_errors        map[int]struct{}
	removedagent_errors map[int]struct{}
	clearedagent_errors bool
	tasks               map[int]struct{}
	removedtasks        map[int]struct{}
	clearedtasks        bool
	done                bool
	oldValue            func(context.Context) (*Agent, error)
	predicates          []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id int) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLabel sets the "label" field.
func (m *AgentMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *AgentMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ClearLabel clears the value of the "label" field.
func (m *AgentMutation) ClearLabel() {
	m.label = nil
	m.clearedFields[agent.FieldLabel] = struct{}{}
}

// LabelCleared returns if the "label" field was cleared in this mutation.
func (m *AgentMutation) LabelCleared() bool {
	_, ok := m.clearedFields[agent.FieldLabel]
	return ok
}

// ResetLabel resets all changes to the "label" field.
func (m *AgentMutation) ResetLabel() {
	m.label = nil
	delete(m.clearedFields, agent.FieldLabel)
}

// SetHostName sets the "host_name" field.
func (m *AgentMutation) SetHostName(s string) {
	m.host_name = &s
}

// HostName returns the value of the "host_name" field in the mutation.
func (m *AgentMutation) HostName() (r string, exists bool) {
	v := m.host_name
	if v == nil {
		return
	}
	return *v, true
}

// OldHostName returns the old "host_name" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldHostName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHostName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHostName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHostName: %w", err)
	}
	return oldValue.HostName, nil
}

// ResetHostName resets all changes to the "host_name" field.
func (m *AgentMutation) ResetHostName() {
	m.host_name = nil
}

// SetClientSignature sets the "client_signature" field.
func (m *AgentMutation) SetClientSignature(s string) {
	m.client_signature = &s
}

// ClientSignature returns the value of the "client_signature" field in the mutation.
func (m *AgentMutation) ClientSignature() (r string, exists bool) {
	v := m.client_signature
	if v == nil {
		return
	}
	return *v, true
}

// OldClientSignature returns the old "client_signature" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldClientSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientSignature: %w", err)
	}
	return oldValue.ClientSignature, nil
}

// ResetClientSignature resets all changes to the "client_signature" field.
func (m *AgentMutation) ResetClientSignature() {
	m.client_signature = nil
}

// SetOperatingSystem sets the "operating_system" field.
func (m *AgentMutation) SetOperatingSystem(s string) {
	m.operating_system = &s
}

// OperatingSystem returns the value of the "operating_system" field in the mutation.
func (m *AgentMutation) OperatingSystem() (r string, exists bool) {
	v := m.operating_system
	if v == nil {
		return
	}
	return *v, true
}

// OldOperatingSystem returns the old "operating_system" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldOperatingSystem(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperatingSystem is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperatingSystem requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperatingSystem: %w", err)
	}
	return oldValue.OperatingSystem, nil
}

// ResetOperatingSystem resets all changes to the "operating_system" field.
func (m *AgentMutation) ResetOperatingSystem() {
	m.operating_system = nil
}

// SetDevices sets the "devices" field.
func (m *AgentMutation) SetDevices(s []string) {
	m.devices = &s
	m.appenddevices = nil
}

// Devices returns the value of the "devices" field in the mutation.
func (m *AgentMutation) Devices() (r []string, exists bool) {
	v := m.devices
	if v == nil {
		return
	}
	return *v, true
}

// OldDevices returns the old "devices" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldDevices(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDevices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDevices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDevices: %w", err)
	}
	return oldValue.Devices, nil
}

// AppendDevices adds s to the "devices" field.
func (m *AgentMutation) AppendDevices(s []string) {
	m.appenddevices = append(m.appenddevices, s...)
}

// AppendedDevices returns the list of values that were appended to the "devices" field in this mutation.
func (m *AgentMutation) AppendedDevices() ([]string, bool) {
	if len(m.appenddevices) == 0 {
		return nil, false
	}
	return m.appenddevices, true
}

// ClearDevices clears the value of the "devices" field.
func (m *AgentMutation) ClearDevices() {
	m.devices = nil
	m.appenddevices = nil
	m.clearedFields[agent.FieldDevices] = struct{}{}
}

// DevicesCleared returns if the "devices" field was cleared in this mutation.
func (m *AgentMutation) DevicesCleared() bool {
	_, ok := m.clearedFields[agent.FieldDevices]
	return ok
}

// ResetDevices resets all changes to the "devices" field.
func (m *AgentMutation) ResetDevices() {
	m.devices = nil
	m.appenddevices = nil
	delete(m.clearedFields, agent.FieldDevices)
}

// SetToken sets the "token" field.
func (m *AgentMutation) SetToken(s string) {
	m.token = &s
}

// Token returns the value of the "token" field in the mutation.
func (m *AgentMutation) Token() (r string, exists bool) {
	v := m.token
	if v == nil {
		return
	}
	return *v, true
}

// OldToken returns the old "token" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToken: %w", err)
	}
	return oldValue.Token, nil
}

// ClearToken clears the value of the "token" field.
func (m *AgentMutation) ClearToken() {
	m.token = nil
	m.clearedFields[agent.FieldToken] = struct{}{}
}

// TokenCleared returns if the "token" field was cleared in this mutation.
func (m *AgentMutation) TokenCleared() bool {
	_, ok := m.clearedFields[agent.FieldToken]
	return ok
}

// ResetToken resets all changes to the "token" field.
func (m *AgentMutation) ResetToken() {
	m.token = nil
	delete(m.clearedFields, agent.FieldToken)
}

// SetRegistrationToken sets the "registration_token" field.
func (m *AgentMutation) SetRegistrationToken(s string) {
	m.registration_token = &s
}

// RegistrationToken returns the value of the "registration_token" field in the mutation.
func (m *AgentMutation) RegistrationToken() (r string, exists bool) {
	v := m.registration_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRegistrationToken returns the old "registration_token" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRegistrationToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegistrationToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegistrationToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegistrationToken: %w", err)
	}
	return oldValue.RegistrationToken, nil
}

// ClearRegistrationToken clears the value of the "registration_token" field.
func (m *AgentMutation) ClearRegistrationToken() {
	m.registration_token = nil
	m.clearedFields[agent.FieldRegistrationToken] = struct{}{}
}

// RegistrationTokenCleared returns if the "registration_token" field was cleared in this mutation.
func (m *AgentMutation) RegistrationTokenCleared() bool {
	_, ok := m.clearedFields[agent.FieldRegistrationToken]
	return ok
}

// ResetRegistrationToken resets all changes to the "registration_token" field.
func (m *AgentMutation) ResetRegistrationToken() {
	m.registration_token = nil
	delete(m.clearedFields, agent.FieldRegistrationToken)
}

// SetState sets the "state" field.
func (m *AgentMutation) SetState(a agent.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *AgentMutation) State() (r agent.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldState(ctx context.Context) (v agent.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *AgentMutation) ResetState() {
	m.state = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *AgentMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *AgentMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastSeenAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (m *AgentMutation) ClearLastSeenAt() {
	m.last_seen_at = nil
	m.clearedFields[agent.FieldLastSeenAt] = struct{}{}
}

// LastSeenAtCleared returns if the "last_seen_at" field was cleared in this mutation.
func (m *AgentMutation) LastSeenAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastSeenAt]
	return ok
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *AgentMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
	delete(m.clearedFields, agent.FieldLastSeenAt)
}

// SetLastIpaddress sets the "last_ipaddress" field.
func (m *AgentMutation) SetLastIpaddress(s string) {
	m.last_ipaddress = &s
}

// LastIpaddress returns the value of the "last_ipaddress" field in the mutation.
func (m *AgentMutation) LastIpaddress() (r string, exists bool) {
	v := m.last_ipaddress
	if v == nil {
		return
	}
	return *v, true
}

// OldLastIpaddress returns the old "last_ipaddress" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastIpaddress(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastIpaddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastIpaddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastIpaddress: %w", err)
	}
	return oldValue.LastIpaddress, nil
}

// ResetLastIpaddress resets all changes to the "last_ipaddress" field.
func (m *AgentMutation) ResetLastIpaddress() {
	m.last_ipaddress = nil
}

// SetAdvancedConfig sets the "advanced_config" field.
func (m *AgentMutation) SetAdvancedConfig(mac models.AdvancedAgentConfig) {
	m.advanced_config = &mac
}

// AdvancedConfig returns the value of the "advanced_config" field in the mutation.
func (m *AgentMutation) AdvancedConfig() (r models.AdvancedAgentConfig, exists bool) {
	v := m.advanced_config
	if v == nil {
		return
	}
	return *v, true
}

// OldAdvancedConfig returns the old "advanced_config" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAdvancedConfig(ctx context.Context) (v models.AdvancedAgentConfig, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdvancedConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdvancedConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdvancedConfig: %w", err)
	}
	return oldValue.AdvancedConfig, nil
}

// ClearAdvancedConfig clears the value of the "advanced_config" field.
func (m *AgentMutation) ClearAdvancedConfig() {
	m.advanced_config = nil
	m.clearedFields[agent.FieldAdvancedConfig] = struct{}{}
}

// AdvancedConfigCleared returns if the "advanced_config" field was cleared in this mutation.
func (m *AgentMutation) AdvancedConfigCleared() bool {
	_, ok := m.clearedFields[agent.FieldAdvancedConfig]
	return ok
}

// ResetAdvancedConfig resets all changes to the "advanced_config" field.
func (m *AgentMutation) ResetAdvancedConfig() {
	m.advanced_config = nil
	delete(m.clearedFields, agent.FieldAdvancedConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *AgentMutation) AddProjectIDs(ids ...int) {
	if m.projects == nil {
		m.projects = make(map[int]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *AgentMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *AgentMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *AgentMutation) RemoveProjectIDs(ids ...int) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *AgentMutation) RemovedProjectsIDs() (ids []int) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *AgentMutation) ProjectsIDs() (ids []int) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *AgentMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// AddBenchmarkIDs adds the "benchmarks" edge to the Benchmark entity by ids.
func (m *AgentMutation) AddBenchmarkIDs(ids ...int) {
	if m.benchmarks == nil {
		m.benchmarks = make(map[int]struct{})
	}
	for i := range ids {
		m.benchmarks[ids[i]] = struct{}{}
	}
}

// ClearBenchmarks clears the "benchmarks" edge to the Benchmark entity.
func (m *AgentMutation) ClearBenchmarks() {
	m.clearedbenchmarks = true
}

// BenchmarksCleared reports if the "benchmarks" edge to the Benchmark entity was cleared.
func (m *AgentMutation) BenchmarksCleared() bool {
	return m.clearedbenchmarks
}

// RemoveBenchmarkIDs removes the "benchmarks" edge to the Benchmark entity by IDs.
func (m *AgentMutation) RemoveBenchmarkIDs(ids ...int) {
	if m.removedbenchmarks == nil {
		m.removedbenchmarks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.benchmarks, ids[i])
		m.removedbenchmarks[ids[i]] = struct{}{}
	}
}

// RemovedBenchmarks returns the removed IDs of the "benchmarks" edge to the Benchmark entity.
func (m *AgentMutation) RemovedBenchmarksIDs() (ids []int) {
	for id := range m.removedbenchmarks {
		ids = append(ids, id)
	}
	return
}

// BenchmarksIDs returns the "benchmarks" edge IDs in the mutation.
func (m *AgentMutation) BenchmarksIDs() (ids []int) {
	for id := range m.benchmarks {
		ids = append(ids, id)
	}
	return
}

// ResetBenchmarks resets all changes to the "benchmarks" edge.
func (m *AgentMutation) ResetBenchmarks() {
	m.benchmarks = nil
	m.clearedbenchmarks = false
	m.removedbenchmarks = nil
}

// AddAgentErrorIDs adds the "agent_errors" edge to the AgentError entity by ids.
func (m *AgentMutation) AddAgentErrorIDs(ids ...int) {
	if m.agent_errors == nil {
		m.agent_errors = make(map[int]struct{})
	}
	for i := range ids {
		m.agent_errors[ids[i]] = struct{}{}
	}
}

// ClearAgentErrors clears the "agent_errors" edge to the AgentError entity.
func (m *AgentMutation) ClearAgentErrors() {
	m.clearedagent_errors = true
}

// AgentErrorsCleared reports if the "agent_errors" edge to the AgentError entity was cleared.
func (m *AgentMutation) AgentErrorsCleared() bool {
	return m.clearedagent_errors
}

// RemoveAgentErrorIDs removes the "agent_errors" edge to the AgentError entity by IDs.
func (m *AgentMutation) RemoveAgentErrorIDs(ids ...int) {
	if m.removedagent_errors == nil {
		m.removedagent_errors = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agent_errors, ids[i])
		m.removedagent_errors[ids[i]] = struct{}{}
	}
}

// RemovedAgentErrors returns the removed IDs of the "agent_errors" edge to the AgentError entity.
func (m *AgentMutation) RemovedAgentErrorsIDs() (ids []int) {
	for id := range m.removedagent_errors {
		ids = append(ids, id)
	}
	return
}

// AgentErrorsIDs returns the "agent_errors" edge IDs in the mutation.
func (m *AgentMutation) AgentErrorsIDs() (ids []int) {
	for id := range m.agent_errors {
		ids = append(ids, id)
	}
	return
}

// ResetAgentErrors resets all changes to the "agent_errors" edge.
func (m *AgentMutation) ResetAgentErrors() {
	m.agent_errors = nil
	m.clearedagent_errors = false
	m.removedagent_errors = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *AgentMutation) AddTaskIDs(ids ...int) {
	if m.tasks == nil {
		m.tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *AgentMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *AgentMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *AgentMutation) RemoveTaskIDs(ids ...int) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *AgentMutation) RemovedTasksIDs() (ids []int) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *AgentMutation) TasksIDs() (ids []int) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *AgentMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.label != nil {
		fields = append(fields, agent.FieldLabel)
	}
	if m.host_name != nil {
		fields = append(fields, agent.FieldHostName)
	}
	if m.client_signature != nil {
		fields = append(fields, agent.FieldClientSignature)
	}
	if m.operating_system != nil {
		fields = append(fields, agent.FieldOperatingSystem)
	}
	if m.devices != nil {
		fields = append(fields, agent.FieldDevices)
	}
	if m.token != nil {
		fields = append(fields, agent.FieldToken)
	}
	if m.registration_token != nil {
		fields = append(fields, agent.FieldRegistrationToken)
	}
	if m.state != nil {
		fields = append(fields, agent.FieldState)
	}
	if m.last_seen_at != nil {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	if m.last_ipaddress != nil {
		fields = append(fields, agent.FieldLastIpaddress)
	}
	if m.advanced_config != nil {
		fields = append(fields, agent.FieldAdvancedConfig)
	}
	if m.created_at != nil {
		fields = append(fields, agent.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agent.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldLabel:
		return m.Label()
	case agent.FieldHostName:
		return m.HostName()
	case agent.FieldClientSignature:
		return m.ClientSignature()
	case agent.FieldOperatingSystem:
		return m.OperatingSystem()
	case agent.FieldDevices:
		return m.Devices()
	case agent.FieldToken:
		return m.Token()
	case agent.FieldRegistrationToken:
		return m.RegistrationToken()
	case agent.FieldState:
		return m.State()
	case agent.FieldLastSeenAt:
		return m.LastSeenAt()
	case agent.FieldLastIpaddress:
		return m.LastIpaddress()
	case agent.FieldAdvancedConfig:
		return m.AdvancedConfig()
	case agent.FieldCreatedAt:
		return m.CreatedAt()
	case agent.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldLabel:
		return m.OldLabel(ctx)
	case agent.FieldHostName:
		return m.OldHostName(ctx)
	case agent.FieldClientSignature:
		return m.OldClientSignature(ctx)
	case agent.FieldOperatingSystem:
		return m.OldOperatingSystem(ctx)
	case agent.FieldDevices:
		return m.OldDevices(ctx)
	case agent.FieldToken:
		return m.OldToken(ctx)
	case agent.FieldRegistrationToken:
		return m.OldRegistrationToken(ctx)
	case agent.FieldState:
		return m.OldState(ctx)
	case agent.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	case agent.FieldLastIpaddress:
		return m.OldLastIpaddress(ctx)
	case agent.FieldAdvancedConfig:
		return m.OldAdvancedConfig(ctx)
	case agent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agent.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case agent.FieldHostName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHostName(v)
		return nil
	case agent.FieldClientSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientSignature(v)
		return nil
	case agent.FieldOperatingSystem:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperatingSystem(v)
		return nil
	case agent.FieldDevices:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDevices(v)
		return nil
	case agent.FieldToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToken(v)
		return nil
	case agent.FieldRegistrationToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegistrationToken(v)
		return nil
	case agent.FieldState:
		v, ok := value.(agent.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case agent.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	case agent.FieldLastIpaddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastIpaddress(v)
		return nil
	case agent.FieldAdvancedConfig:
		v, ok := value.(models.AdvancedAgentConfig)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdvancedConfig(v)
		return nil
	case agent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agent.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldLabel) {
		fields = append(fields, agent.FieldLabel)
	}
	if m.FieldCleared(agent.FieldDevices) {
		fields = append(fields, agent.FieldDevices)
	}
	if m.FieldCleared(agent.FieldToken) {
		fields = append(fields, agent.FieldToken)
	}
	if m.FieldCleared(agent.FieldRegistrationToken) {
		fields = append(fields, agent.FieldRegistrationToken)
	}
	if m.FieldCleared(agent.FieldLastSeenAt) {
		fields = append(fields, agent.FieldLastSeenAt)
	}
	if m.FieldCleared(agent.FieldAdvancedConfig) {
		fields = append(fields, agent.FieldAdvancedConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldLabel:
		m.ClearLabel()
		return nil
	case agent.FieldDevices:
		m.ClearDevices()
		return nil
	case agent.FieldToken:
		m.ClearToken()
		return nil
	case agent.FieldRegistrationToken:
		m.ClearRegistrationToken()
		return nil
	case agent.FieldLastSeenAt:
		m.ClearLastSeenAt()
		return nil
	case agent.FieldAdvancedConfig:
		m.ClearAdvancedConfig()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldLabel:
		m.ResetLabel()
		return nil
	case agent.FieldHostName:
		m.ResetHostName()
		return nil
	case agent.FieldClientSignature:
		m.ResetClientSignature()
		return nil
	case agent.FieldOperatingSystem:
		m.ResetOperatingSystem()
		return nil
	case agent.FieldDevices:
		m.ResetDevices()
		return nil
	case agent.FieldToken:
		m.ResetToken()
		return nil
	case agent.FieldRegistrationToken:
		m.ResetRegistrationToken()
		return nil
	case agent.FieldState:
		m.ResetState()
		return nil
	case agent.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	case agent.FieldLastIpaddress:
		m.ResetLastIpaddress()
		return nil
	case agent.FieldAdvancedConfig:
		m.ResetAdvancedConfig()
		return nil
	case agent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agent.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.projects != nil {
		edges = append(edges, agent.EdgeProjects)
	}
	if m.benchmarks != nil {
		edges = append(edges, agent.EdgeBenchmarks)
	}
	if m.agent_errors != nil {
		edges = append(edges, agent.EdgeAgentErrors)
	}
	if m.tasks != nil {
		edges = append(edges, agent.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeBenchmarks:
		ids := make([]ent.Value, 0, len(m.benchmarks))
		for id := range m.benchmarks {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeAgentErrors:
		ids := make([]ent.Value, 0, len(m.agent_errors))
		for id := range m.agent_errors {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedprojects != nil {
		edges = append(edges, agent.EdgeProjects)
	}
	if m.removedbenchmarks != nil {
		edges = append(edges, agent.EdgeBenchmarks)
	}
	if m.removedagent_errors != nil {
		edges = append(edges, agent.EdgeAgentErrors)
	}
	if m.removedtasks != nil {
		edges = append(edges, agent.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeBenchmarks:
		ids := make([]ent.Value, 0, len(m.removedbenchmarks))
		for id := range m.removedbenchmarks {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeAgentErrors:
		ids := make([]ent.Value, 0, len(m.removedagent_errors))
		for id := range m.removedagent_errors {
			ids = append(ids, id)
		}
		return ids
	case agent.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedprojects {
		edges = append(edges, agent.EdgeProjects)
	}
	if m.clearedbenchmarks {
		edges = append(edges, agent.EdgeBenchmarks)
	}
	if m.clearedagent_errors {
		edges = append(edges, agent.EdgeAgentErrors)
	}
	if m.clearedtasks {
		edges = append(edges, agent.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeProjects:
		return m.clearedprojects
	case agent.EdgeBenchmarks:
		return m.clearedbenchmarks
	case agent.EdgeAgentErrors:
		return m.clearedagent_errors
	case agent.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeProjects:
		m.ResetProjects()
		return nil
	case agent.EdgeBenchmarks:
		m.ResetBenchmarks()
		return nil
	case agent.EdgeAgentErrors:
		m.ResetAgentErrors()
		return nil
	case agent.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentErrorMutation represents an operation that mutates the AgentError nodes in the graph.
type AgentErrorMutation struct {
	config
	op            Op
	typ           string
	id            *int
	severity      *agenterror.Severity
	message       *string
	context       *map[string]interface{}
	recorded_at   *time.Time
	clearedFields map[string]struct{}
	agent         *int
	clearedagent  bool
	task          *int
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*AgentError, error)
	predicates    []predicate.AgentError
}

var _ ent.Mutation = (*AgentErrorMutation)(nil)

// agenterrorOption allows management of the mutation configuration using functional options.
type agenterrorOption func(*AgentErrorMutation)

// newAgentErrorMutation creates new mutation for the AgentError entity.
func newAgentErrorMutation(c config, op Op, opts ...agenterrorOption) *AgentErrorMutation {
	m := &AgentErrorMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentError,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentErrorID sets the ID field of the mutation.
func withAgentErrorID(id int) agenterrorOption {
	return func(m *AgentErrorMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentError
		)
		m.oldValue = func(ctx context.Context) (*AgentError, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentError.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentError sets the old AgentError of the mutation.
func withAgentError(node *AgentError) agenterrorOption {
	return func(m *AgentErrorMutation) {
		m.oldValue = func(context.Context) (*AgentError, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentErrorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentErrorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentErrorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentErrorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentError.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentErrorMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentErrorMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentError entity.
// If the AgentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentErrorMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentErrorMutation) ResetAgentID() {
	m.agent = nil
}

// SetTaskID sets the "task_id" field.
func (m *AgentErrorMutation) SetTaskID(i int) {
	m.task = &i
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentErrorMutation) TaskID() (r int, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AgentError entity.
// If the AgentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentErrorMutation) OldTaskID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ClearTaskID clears the value of the "task_id" field.
func (m *AgentErrorMutation) ClearTaskID() {
	m.task = nil
	m.clearedFields[agenterror.FieldTaskID] = struct{}{}
}

// TaskIDCleared returns if the "task_id" field was cleared in this mutation.
func (m *AgentErrorMutation) TaskIDCleared() bool {
	_, ok := m.clearedFields[agenterror.FieldTaskID]
	return ok
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentErrorMutation) ResetTaskID() {
	m.task = nil
	delete(m.clearedFields, agenterror.FieldTaskID)
}

// SetSeverity sets the "severity" field.
func (m *AgentErrorMutation) SetSeverity(a agenterror.Severity) {
	m.severity = &a
}

// Severity returns the value of the "severity" field in the mutation.
func (m *AgentErrorMutation) Severity() (r agenterror.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the AgentError entity.
// If the AgentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentErrorMutation) OldSeverity(ctx context.Context) (v agenterror.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *AgentErrorMutation) ResetSeverity() {
	m.severity = nil
}

// SetMessage sets the "message" field.
func (m *AgentErrorMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AgentErrorMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the AgentError entity.
// If the AgentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentErrorMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *AgentErrorMutation) ResetMessage() {
	m.message = nil
}

// SetContext sets the "context" field.
func (m *AgentErrorMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *AgentErrorMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the AgentError entity.
// If the AgentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentErrorMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *AgentErrorMutation) ClearContext() {
	m.context = nil
	m.clearedFields[agenterror.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *AgentErrorMutation) ContextCleared() bool {
	_, ok := m.clearedFields[agenterror.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *AgentErrorMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, agenterror.FieldContext)
}

// SetRecordedAt sets the "recorded_at" field.
func (m *AgentErrorMutation) SetRecordedAt(t time.Time) {
	m.recorded_at = &t
}

// RecordedAt returns the value of the "recorded_at" field in the mutation.
func (m *AgentErrorMutation) RecordedAt() (r time.Time, exists bool) {
	v := m.recorded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRecordedAt returns the old "recorded_at" field's value of the AgentError entity.
// If the AgentError object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentErrorMutation) OldRecordedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecordedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecordedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecordedAt: %w", err)
	}
	return oldValue.RecordedAt, nil
}

// ResetRecordedAt resets all changes to the "recorded_at" field.
func (m *AgentErrorMutation) ResetRecordedAt() {
	m.recorded_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentErrorMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agenterror.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentErrorMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentErrorMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentErrorMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AgentErrorMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[agenterror.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AgentErrorMutation) TaskCleared() bool {
	return m.TaskIDCleared() || m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AgentErrorMutation) TaskIDs() (ids []int) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AgentErrorMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AgentErrorMutation builder.
func (m *AgentErrorMutation) Where(ps ...predicate.AgentError) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentErrorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentErrorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentError, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentErrorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentErrorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentError).
func (m *AgentErrorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentErrorMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent != nil {
		fields = append(fields, agenterror.FieldAgentID)
	}
	if m.task != nil {
		fields = append(fields, agenterror.FieldTaskID)
	}
	if m.severity != nil {
		fields = append(fields, agenterror.FieldSeverity)
	}
	if m.message != nil {
		fields = append(fields, agenterror.FieldMessage)
	}
	if m.context != nil {
		fields = append(fields, agenterror.FieldContext)
	}
	if m.recorded_at != nil {
		fields = append(fields, agenterror.FieldRecordedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentErrorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenterror.FieldAgentID:
		return m.AgentID()
	case agenterror.FieldTaskID:
		return m.TaskID()
	case agenterror.FieldSeverity:
		return m.Severity()
	case agenterror.FieldMessage:
		return m.Message()
	case agenterror.FieldContext:
		return m.Context()
	case agenterror.FieldRecordedAt:
		return m.RecordedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentErrorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenterror.FieldAgentID:
		return m.OldAgentID(ctx)
	case agenterror.FieldTaskID:
		return m.OldTaskID(ctx)
	case agenterror.FieldSeverity:
		return m.OldSeverity(ctx)
	case agenterror.FieldMessage:
		return m.OldMessage(ctx)
	case agenterror.FieldContext:
		return m.OldContext(ctx)
	case agenterror.FieldRecordedAt:
		return m.OldRecordedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentError field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentErrorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenterror.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agenterror.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agenterror.FieldSeverity:
		v, ok := value.(agenterror.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case agenterror.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case agenterror.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case agenterror.FieldRecordedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecordedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentError field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentErrorMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentErrorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentErrorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentError numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentErrorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenterror.FieldTaskID) {
		fields = append(fields, agenterror.FieldTaskID)
	}
	if m.FieldCleared(agenterror.FieldContext) {
		fields = append(fields, agenterror.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentErrorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentErrorMutation) ClearField(name string) error {
	switch name {
	case agenterror.FieldTaskID:
		m.ClearTaskID()
		return nil
	case agenterror.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown AgentError nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentErrorMutation) ResetField(name string) error {
	switch name {
	case agenterror.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agenterror.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agenterror.FieldSeverity:
		m.ResetSeverity()
		return nil
	case agenterror.FieldMessage:
		m.ResetMessage()
		return nil
	case agenterror.FieldContext:
		m.ResetContext()
		return nil
	case agenterror.FieldRecordedAt:
		m.ResetRecordedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentError field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentErrorMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.agent != nil {
		edges = append(edges, agenterror.EdgeAgent)
	}
	if m.task != nil {
		edges = append(edges, agenterror.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentErrorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenterror.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case agenterror.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentErrorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentErrorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentErrorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedagent {
		edges = append(edges, agenterror.EdgeAgent)
	}
	if m.clearedtask {
		edges = append(edges, agenterror.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentErrorMutation) EdgeCleared(name string) bool {
	switch name {
	case agenterror.EdgeAgent:
		return m.clearedagent
	case agenterror.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentErrorMutation) ClearEdge(name string) error {
	switch name {
	case agenterror.EdgeAgent:
		m.ClearAgent()
		return nil
	case agenterror.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown AgentError unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentErrorMutation) ResetEdge(name string) error {
	switch name {
	case agenterror.EdgeAgent:
		m.ResetAgent()
		return nil
	case agenterror.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown AgentError edge %s", name)
}

// AttackMutation represents an operation that mutates the Attack nodes in the graph.
type AttackMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	name                      *string
	state                     *attack.State
	attack_mode               *attack.AttackMode
	mask                      *string
	increment_mode            *bool
	increment_minimum         *int
	addincrement_minimum      *int
	increment_maximum         *int
	addincrement_maximum      *int
	optimized                 *bool
	slow_candidate_generators *bool
	workload_profile          *int
	addworkload_profile       *int
	disable_markov            *bool
	classic_markov            *bool
	markov_threshold          *int
	addmarkov_threshold       *int
	left_rule                 *string
	right_rule                *string
	custom_charset_1          *string
	custom_charset_2          *string
	custom_charset_3          *string
	custom_charset_4          *string
	position                  *int
	addposition               *int
	total_keyspace            *int64
	addtotal_keyspace         *int64
	dispatched_keyspace       *int64
	adddispatched_keyspace    *int64
	start_time                *time.Time
	end_time                  *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	campaign                  *int
	clearedcampaign           bool
	word_list                 *int
	clearedword_list          bool
	rule_list                 *int
	clearedrule_list          bool
	mask_list                 *int
	clearedmask_list          bool
	tasks                     map[int]struct{}
	removedtasks              map[int]struct{}
	clearedtasks              bool
	done                      bool
	oldValue                  func(context.Context) (*Attack, error)
	predicates                []predicate.Attack
}

var _ ent.Mutation = (*AttackMutation)(nil)

// attackOption allows management of the mutation configuration using functional options.
type attackOption func(*AttackMutation)

// newAttackMutation creates new mutation for the Attack entity.
func newAttackMutation(c config, op Op, opts ...attackOption) *AttackMutation {
	m := &AttackMutation{
		config:        c,
		op:            op,
		typ:           TypeAttack,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttackID sets the ID field of the mutation.
func withAttackID(id int) attackOption {
	return func(m *AttackMutation) {
		var (
			err   error
			once  sync.Once
			value *Attack
		)
		m.oldValue = func(ctx context.Context) (*Attack, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Attack.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttack sets the old Attack of the mutation.
func withAttack(node *Attack) attackOption {
	return func(m *AttackMutation) {
		m.oldValue = func(context.Context) (*Attack, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttackMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttackMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Attack.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCampaignID sets the "campaign_id" field.
func (m *AttackMutation) SetCampaignID(i int) {
	m.campaign = &i
}

// CampaignID returns the value of the "campaign_id" field in the mutation.
func (m *AttackMutation) CampaignID() (r int, exists bool) {
	v := m.campaign
	if v == nil {
		return
	}
	return *v, true
}

// OldCampaignID returns the old "campaign_id" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldCampaignID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampaignID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampaignID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampaignID: %w", err)
	}
	return oldValue.CampaignID, nil
}

// ResetCampaignID resets all changes to the "campaign_id" field.
func (m *AttackMutation) ResetCampaignID() {
	m.campaign = nil
}

// SetName sets the "name" field.
func (m *AttackMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *AttackMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *AttackMutation) ClearName() {
	m.name = nil
	m.clearedFields[attack.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *AttackMutation) NameCleared() bool {
	_, ok := m.clearedFields[attack.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *AttackMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, attack.FieldName)
}

// SetState sets the "state" field.
func (m *AttackMutation) SetState(a attack.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *AttackMutation) State() (r attack.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldState(ctx context.Context) (v attack.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *AttackMutation) ResetState() {
	m.state = nil
}

// SetAttackMode sets the "attack_mode" field.
func (m *AttackMutation) SetAttackMode(am attack.AttackMode) {
	m.attack_mode = &am
}

// AttackMode returns the value of the "attack_mode" field in the mutation.
func (m *AttackMutation) AttackMode() (r attack.AttackMode, exists bool) {
	v := m.attack_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldAttackMode returns the old "attack_mode" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldAttackMode(ctx context.Context) (v attack.AttackMode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttackMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttackMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttackMode: %w", err)
	}
	return oldValue.AttackMode, nil
}

// ResetAttackMode resets all changes to the "attack_mode" field.
func (m *AttackMutation) ResetAttackMode() {
	m.attack_mode = nil
}

// SetMask sets the "mask" field.
func (m *AttackMutation) SetMask(s string) {
	m.mask = &s
}

// Mask returns the value of the "mask" field in the mutation.
func (m *AttackMutation) Mask() (r string, exists bool) {
	v := m.mask
	if v == nil {
		return
	}
	return *v, true
}

// OldMask returns the old "mask" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldMask(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMask is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMask requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMask: %w", err)
	}
	return oldValue.Mask, nil
}

// ClearMask clears the value of the "mask" field.
func (m *AttackMutation) ClearMask() {
	m.mask = nil
	m.clearedFields[attack.FieldMask] = struct{}{}
}

// MaskCleared returns if the "mask" field was cleared in this mutation.
func (m *AttackMutation) MaskCleared() bool {
	_, ok := m.clearedFields[attack.FieldMask]
	return ok
}

// ResetMask resets all changes to the "mask" field.
func (m *AttackMutation) ResetMask() {
	m.mask = nil
	delete(m.clearedFields, attack.FieldMask)
}

// SetIncrementMode sets the "increment_mode" field.
func (m *AttackMutation) SetIncrementMode(b bool) {
	m.increment_mode = &b
}

// IncrementMode returns the value of the "increment_mode" field in the mutation.
func (m *AttackMutation) IncrementMode() (r bool, exists bool) {
	v := m.increment_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldIncrementMode returns the old "increment_mode" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldIncrementMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncrementMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncrementMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncrementMode: %w", err)
	}
	return oldValue.IncrementMode, nil
}

// ResetIncrementMode resets all changes to the "increment_mode" field.
func (m *AttackMutation) ResetIncrementMode() {
	m.increment_mode = nil
}

// SetIncrementMinimum sets the "increment_minimum" field.
func (m *AttackMutation) SetIncrementMinimum(i int) {
	m.increment_minimum = &i
	m.addincrement_minimum = nil
}

// IncrementMinimum returns the value of the "increment_minimum" field in the mutation.
func (m *AttackMutation) IncrementMinimum() (r int, exists bool) {
	v := m.increment_minimum
	if v == nil {
		return
	}
	return *v, true
}

// OldIncrementMinimum returns the old "increment_minimum" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldIncrementMinimum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncrementMinimum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncrementMinimum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncrementMinimum: %w", err)
	}
	return oldValue.IncrementMinimum, nil
}

// AddIncrementMinimum adds i to the "increment_minimum" field.
func (m *AttackMutation) AddIncrementMinimum(i int) {
	if m.addincrement_minimum != nil {
		*m.addincrement_minimum += i
	} else {
		m.addincrement_minimum = &i
	}
}

// AddedIncrementMinimum returns the value that was added to the "increment_minimum" field in this mutation.
func (m *AttackMutation) AddedIncrementMinimum() (r int, exists bool) {
	v := m.addincrement_minimum
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncrementMinimum resets all changes to the "increment_minimum" field.
func (m *AttackMutation) ResetIncrementMinimum() {
	m.increment_minimum = nil
	m.addincrement_minimum = nil
}

// SetIncrementMaximum sets the "increment_maximum" field.
func (m *AttackMutation) SetIncrementMaximum(i int) {
	m.increment_maximum = &i
	m.addincrement_maximum = nil
}

// IncrementMaximum returns the value of the "increment_maximum" field in the mutation.
func (m *AttackMutation) IncrementMaximum() (r int, exists bool) {
	v := m.increment_maximum
	if v == nil {
		return
	}
	return *v, true
}

// OldIncrementMaximum returns the old "increment_maximum" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldIncrementMaximum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncrementMaximum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncrementMaximum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncrementMaximum: %w", err)
	}
	return oldValue.IncrementMaximum, nil
}

// AddIncrementMaximum adds i to the "increment_maximum" field.
func (m *AttackMutation) AddIncrementMaximum(i int) {
	if m.addincrement_maximum != nil {
		*m.addincrement_maximum += i
	} else {
		m.addincrement_maximum = &i
	}
}

// AddedIncrementMaximum returns the value that was added to the "increment_maximum" field in this mutation.
func (m *AttackMutation) AddedIncrementMaximum() (r int, exists bool) {
	v := m.addincrement_maximum
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncrementMaximum resets all changes to the "increment_maximum" field.
func (m *AttackMutation) ResetIncrementMaximum() {
	m.increment_maximum = nil
	m.addincrement_maximum = nil
}

// SetOptimized sets the "optimized" field.
func (m *AttackMutation) SetOptimized(b bool) {
	m.optimized = &b
}

// Optimized returns the value of the "optimized" field in the mutation.
func (m *AttackMutation) Optimized() (r bool, exists bool) {
	v := m.optimized
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimized returns the old "optimized" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldOptimized(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimized: %w", err)
	}
	return oldValue.Optimized, nil
}

// ResetOptimized resets all changes to the "optimized" field.
func (m *AttackMutation) ResetOptimized() {
	m.optimized = nil
}

// SetSlowCandidateGenerators sets the "slow_candidate_generators" field.
func (m *AttackMutation) SetSlowCandidateGenerators(b bool) {
	m.slow_candidate_generators = &b
}

// SlowCandidateGenerators returns the value of the "slow_candidate_generators" field in the mutation.
func (m *AttackMutation) SlowCandidateGenerators() (r bool, exists bool) {
	v := m.slow_candidate_generators
	if v == nil {
		return
	}
	return *v, true
}

// OldSlowCandidateGenerators returns the old "slow_candidate_generators" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldSlowCandidateGenerators(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlowCandidateGenerators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlowCandidateGenerators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlowCandidateGenerators: %w", err)
	}
	return oldValue.SlowCandidateGenerators, nil
}

// ResetSlowCandidateGenerators resets all changes to the "slow_candidate_generators" field.
func (m *AttackMutation) ResetSlowCandidateGenerators() {
	m.slow_candidate_generators = nil
}

// SetWorkloadProfile sets the "workload_profile" field.
func (m *AttackMutation) SetWorkloadProfile(i int) {
	m.workload_profile = &i
	m.addworkload_profile = nil
}

// WorkloadProfile returns the value of the "workload_profile" field in the mutation.
func (m *AttackMutation) WorkloadProfile() (r int, exists bool) {
	v := m.workload_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkloadProfile returns the old "workload_profile" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldWorkloadProfile(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkloadProfile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkloadProfile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkloadProfile: %w", err)
	}
	return oldValue.WorkloadProfile, nil
}

// AddWorkloadProfile adds i to the "workload_profile" field.
func (m *AttackMutation) AddWorkloadProfile(i int) {
	if m.addworkload_profile != nil {
		*m.addworkload_profile += i
	} else {
		m.addworkload_profile = &i
	}
}

// AddedWorkloadProfile returns the value that was added to the "workload_profile" field in this mutation.
func (m *AttackMutation) AddedWorkloadProfile() (r int, exists bool) {
	v := m.addworkload_profile
	if v == nil {
		return
	}
	return *v, true
}

// ResetWorkloadProfile resets all changes to the "workload_profile" field.
func (m *AttackMutation) ResetWorkloadProfile() {
	m.workload_profile = nil
	m.addworkload_profile = nil
}

// SetDisableMarkov sets the "disable_markov" field.
func (m *AttackMutation) SetDisableMarkov(b bool) {
	m.disable_markov = &b
}

// DisableMarkov returns the value of the "disable_markov" field in the mutation.
func (m *AttackMutation) DisableMarkov() (r bool, exists bool) {
	v := m.disable_markov
	if v == nil {
		return
	}
	return *v, true
}

// OldDisableMarkov returns the old "disable_markov" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldDisableMarkov(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisableMarkov is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisableMarkov requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisableMarkov: %w", err)
	}
	return oldValue.DisableMarkov, nil
}

// ResetDisableMarkov resets all changes to the "disable_markov" field.
func (m *AttackMutation) ResetDisableMarkov() {
	m.disable_markov = nil
}

// SetClassicMarkov sets the "classic_markov" field.
func (m *AttackMutation) SetClassicMarkov(b bool) {
	m.classic_markov = &b
}

// ClassicMarkov returns the value of the "classic_markov" field in the mutation.
func (m *AttackMutation) ClassicMarkov() (r bool, exists bool) {
	v := m.classic_markov
	if v == nil {
		return
	}
	return *v, true
}

// OldClassicMarkov returns the old "classic_markov" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldClassicMarkov(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClassicMarkov is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClassicMarkov requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClassicMarkov: %w", err)
	}
	return oldValue.ClassicMarkov, nil
}

// ResetClassicMarkov resets all changes to the "classic_markov" field.
func (m *AttackMutation) ResetClassicMarkov() {
	m.classic_markov = nil
}

// SetMarkovThreshold sets the "markov_threshold" field.
func (m *AttackMutation) SetMarkovThreshold(i int) {
	m.markov_threshold = &i
	m.addmarkov_threshold = nil
}

// MarkovThreshold returns the value of the "markov_threshold" field in the mutation.
func (m *AttackMutation) MarkovThreshold() (r int, exists bool) {
	v := m.markov_threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldMarkovThreshold returns the old "markov_threshold" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldMarkovThreshold(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMarkovThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMarkovThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMarkovThreshold: %w", err)
	}
	return oldValue.MarkovThreshold, nil
}

// AddMarkovThreshold adds i to the "markov_threshold" field.
func (m *AttackMutation) AddMarkovThreshold(i int) {
	if m.addmarkov_threshold != nil {
		*m.addmarkov_threshold += i
	} else {
		m.addmarkov_threshold = &i
	}
}

// AddedMarkovThreshold returns the value that was added to the "markov_threshold" field in this mutation.
func (m *AttackMutation) AddedMarkovThreshold() (r int, exists bool) {
	v := m.addmarkov_threshold
	if v == nil {
		return
	}
	return *v, true
}

// ResetMarkovThreshold resets all changes to the "markov_threshold" field.
func (m *AttackMutation) ResetMarkovThreshold() {
	m.markov_threshold = nil
	m.addmarkov_threshold = nil
}

// SetLeftRule sets the "left_rule" field.
func (m *AttackMutation) SetLeftRule(s string) {
	m.left_rule = &s
}

// LeftRule returns the value of the "left_rule" field in the mutation.
func (m *AttackMutation) LeftRule() (r string, exists bool) {
	v := m.left_rule
	if v == nil {
		return
	}
	return *v, true
}

// OldLeftRule returns the old "left_rule" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldLeftRule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeftRule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeftRule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeftRule: %w", err)
	}
	return oldValue.LeftRule, nil
}

// ClearLeftRule clears the value of the "left_rule" field.
func (m *AttackMutation) ClearLeftRule() {
	m.left_rule = nil
	m.clearedFields[attack.FieldLeftRule] = struct{}{}
}

// LeftRuleCleared returns if the "left_rule" field was cleared in this mutation.
func (m *AttackMutation) LeftRuleCleared() bool {
	_, ok := m.clearedFields[attack.FieldLeftRule]
	return ok
}

// ResetLeftRule resets all changes to the "left_rule" field.
func (m *AttackMutation) ResetLeftRule() {
	m.left_rule = nil
	delete(m.clearedFields, attack.FieldLeftRule)
}

// SetRightRule sets the "right_rule" field.
func (m *AttackMutation) SetRightRule(s string) {
	m.right_rule = &s
}

// RightRule returns the value of the "right_rule" field in the mutation.
func (m *AttackMutation) RightRule() (r string, exists bool) {
	v := m.right_rule
	if v == nil {
		return
	}
	return *v, true
}

// OldRightRule returns the old "right_rule" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldRightRule(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRightRule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRightRule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRightRule: %w", err)
	}
	return oldValue.RightRule, nil
}

// ClearRightRule clears the value of the "right_rule" field.
func (m *AttackMutation) ClearRightRule() {
	m.right_rule = nil
	m.clearedFields[attack.FieldRightRule] = struct{}{}
}

// RightRuleCleared returns if the "right_rule" field was cleared in this mutation.
func (m *AttackMutation) RightRuleCleared() bool {
	_, ok := m.clearedFields[attack.FieldRightRule]
	return ok
}

// ResetRightRule resets all changes to the "right_rule" field.
func (m *AttackMutation) ResetRightRule() {
	m.right_rule = nil
	delete(m.clearedFields, attack.FieldRightRule)
}

// SetCustomCharset1 sets the "custom_charset_1" field.
func (m *AttackMutation) SetCustomCharset1(s string) {
	m.custom_charset_1 = &s
}

// CustomCharset1 returns the value of the "custom_charset_1" field in the mutation.
func (m *AttackMutation) CustomCharset1() (r string, exists bool) {
	v := m.custom_charset_1
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomCharset1 returns the old "custom_charset_1" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldCustomCharset1(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomCharset1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomCharset1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomCharset1: %w", err)
	}
	return oldValue.CustomCharset1, nil
}

// ClearCustomCharset1 clears the value of the "custom_charset_1" field.
func (m *AttackMutation) ClearCustomCharset1() {
	m.custom_charset_1 = nil
	m.clearedFields[attack.FieldCustomCharset1] = struct{}{}
}

// CustomCharset1Cleared returns if the "custom_charset_1" field was cleared in this mutation.
func (m *AttackMutation) CustomCharset1Cleared() bool {
	_, ok := m.clearedFields[attack.FieldCustomCharset1]
	return ok
}

// ResetCustomCharset1 resets all changes to the "custom_charset_1" field.
func (m *AttackMutation) ResetCustomCharset1() {
	m.custom_charset_1 = nil
	delete(m.clearedFields, attack.FieldCustomCharset1)
}

// SetCustomCharset2 sets the "custom_charset_2" field.
func (m *AttackMutation) SetCustomCharset2(s string) {
	m.custom_charset_2 = &s
}

// CustomCharset2 returns the value of the "custom_charset_2" field in the mutation.
func (m *AttackMutation) CustomCharset2() (r string, exists bool) {
	v := m.custom_charset_2
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomCharset2 returns the old "custom_charset_2" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldCustomCharset2(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomCharset2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomCharset2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomCharset2: %w", err)
	}
	return oldValue.CustomCharset2, nil
}

// ClearCustomCharset2 clears the value of the "custom_charset_2" field.
func (m *AttackMutation) ClearCustomCharset2() {
	m.custom_charset_2 = nil
	m.clearedFields[attack.FieldCustomCharset2] = struct{}{}
}

// CustomCharset2Cleared returns if the "custom_charset_2" field was cleared in this mutation.
func (m *AttackMutation) CustomCharset2Cleared() bool {
	_, ok := m.clearedFields[attack.FieldCustomCharset2]
	return ok
}

// ResetCustomCharset2 resets all changes to the "custom_charset_2" field.
func (m *AttackMutation) ResetCustomCharset2() {
	m.custom_charset_2 = nil
	delete(m.clearedFields, attack.FieldCustomCharset2)
}

// SetCustomCharset3 sets the "custom_charset_3" field.
func (m *AttackMutation) SetCustomCharset3(s string) {
	m.custom_charset_3 = &s
}

// CustomCharset3 returns the value of the "custom_charset_3" field in the mutation.
func (m *AttackMutation) CustomCharset3() (r string, exists bool) {
	v := m.custom_charset_3
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomCharset3 returns the old "custom_charset_3" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldCustomCharset3(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomCharset3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomCharset3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomCharset3: %w", err)
	}
	return oldValue.CustomCharset3, nil
}

// ClearCustomCharset3 clears the value of the "custom_charset_3" field.
func (m *AttackMutation) ClearCustomCharset3() {
	m.custom_charset_3 = nil
	m.clearedFields[attack.FieldCustomCharset3] = struct{}{}
}

// CustomCharset3Cleared returns if the "custom_charset_3" field was cleared in this mutation.
func (m *AttackMutation) CustomCharset3Cleared() bool {
	_, ok := m.clearedFields[attack.FieldCustomCharset3]
	return ok
}

// ResetCustomCharset3 resets all changes to the "custom_charset_3" field.
func (m *AttackMutation) ResetCustomCharset3() {
	m.custom_charset_3 = nil
	delete(m.clearedFields, attack.FieldCustomCharset3)
}

// SetCustomCharset4 sets the "custom_charset_4" field.
func (m *AttackMutation) SetCustomCharset4(s string) {
	m.custom_charset_4 = &s
}

// CustomCharset4 returns the value of the "custom_charset_4" field in the mutation.
func (m *AttackMutation) CustomCharset4() (r string, exists bool) {
	v := m.custom_charset_4
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomCharset4 returns the old "custom_charset_4" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldCustomCharset4(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomCharset4 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomCharset4 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomCharset4: %w", err)
	}
	return oldValue.CustomCharset4, nil
}

// ClearCustomCharset4 clears the value of the "custom_charset_4" field.
func (m *AttackMutation) ClearCustomCharset4() {
	m.custom_charset_4 = nil
	m.clearedFields[attack.FieldCustomCharset4] = struct{}{}
}

// CustomCharset4Cleared returns if the "custom_charset_4" field was cleared in this mutation.
func (m *AttackMutation) CustomCharset4Cleared() bool {
	_, ok := m.clearedFields[attack.FieldCustomCharset4]
	return ok
}

// ResetCustomCharset4 resets all changes to the "custom_charset_4" field.
func (m *AttackMutation) ResetCustomCharset4() {
	m.custom_charset_4 = nil
	delete(m.clearedFields, attack.FieldCustomCharset4)
}

// SetWordListID sets the "word_list_id" field.
func (m *AttackMutation) SetWordListID(i int) {
	m.word_list = &i
}

// WordListID returns the value of the "word_list_id" field in the mutation.
func (m *AttackMutation) WordListID() (r int, exists bool) {
	v := m.word_list
	if v == nil {
		return
	}
	return *v, true
}

// OldWordListID returns the old "word_list_id" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldWordListID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordListID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordListID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordListID: %w", err)
	}
	return oldValue.WordListID, nil
}

// ClearWordListID clears the value of the "word_list_id" field.
func (m *AttackMutation) ClearWordListID() {
	m.word_list = nil
	m.clearedFields[attack.FieldWordListID] = struct{}{}
}

// WordListIDCleared returns if the "word_list_id" field was cleared in this mutation.
func (m *AttackMutation) WordListIDCleared() bool {
	_, ok := m.clearedFields[attack.FieldWordListID]
	return ok
}

// ResetWordListID resets all changes to the "word_list_id" field.
func (m *AttackMutation) ResetWordListID() {
	m.word_list = nil
	delete(m.clearedFields, attack.FieldWordListID)
}

// SetRuleListID sets the "rule_list_id" field.
func (m *AttackMutation) SetRuleListID(i int) {
	m.rule_list = &i
}

// RuleListID returns the value of the "rule_list_id" field in the mutation.
func (m *AttackMutation) RuleListID() (r int, exists bool) {
	v := m.rule_list
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleListID returns the old "rule_list_id" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldRuleListID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleListID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleListID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleListID: %w", err)
	}
	return oldValue.RuleListID, nil
}

// ClearRuleListID clears the value of the "rule_list_id" field.
func (m *AttackMutation) ClearRuleListID() {
	m.rule_list = nil
	m.clearedFields[attack.FieldRuleListID] = struct{}{}
}

// RuleListIDCleared returns if the "rule_list_id" field was cleared in this mutation.
func (m *AttackMutation) RuleListIDCleared() bool {
	_, ok := m.clearedFields[attack.FieldRuleListID]
	return ok
}

// ResetRuleListID resets all changes to the "rule_list_id" field.
func (m *AttackMutation) ResetRuleListID() {
	m.rule_list = nil
	delete(m.clearedFields, attack.FieldRuleListID)
}

// SetMaskListID sets the "mask_list_id" field.
func (m *AttackMutation) SetMaskListID(i int) {
	m.mask_list = &i
}

// MaskListID returns the value of the "mask_list_id" field in the mutation.
func (m *AttackMutation) MaskListID() (r int, exists bool) {
	v := m.mask_list
	if v == nil {
		return
	}
	return *v, true
}

// OldMaskListID returns the old "mask_list_id" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldMaskListID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaskListID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaskListID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaskListID: %w", err)
	}
	return oldValue.MaskListID, nil
}

// ClearMaskListID clears the value of the "mask_list_id" field.
func (m *AttackMutation) ClearMaskListID() {
	m.mask_list = nil
	m.clearedFields[attack.FieldMaskListID] = struct{}{}
}

// MaskListIDCleared returns if the "mask_list_id" field was cleared in this mutation.
func (m *AttackMutation) MaskListIDCleared() bool {
	_, ok := m.clearedFields[attack.FieldMaskListID]
	return ok
}

// ResetMaskListID resets all changes to the "mask_list_id" field.
func (m *AttackMutation) ResetMaskListID() {
	m.mask_list = nil
	delete(m.clearedFields, attack.FieldMaskListID)
}

// SetPosition sets the "position" field.
func (m *AttackMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *AttackMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *AttackMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *AttackMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *AttackMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetTotalKeyspace sets the "total_keyspace" field.
func (m *AttackMutation) SetTotalKeyspace(i int64) {
	m.total_keyspace = &i
	m.addtotal_keyspace = nil
}

// TotalKeyspace returns the value of the "total_keyspace" field in the mutation.
func (m *AttackMutation) TotalKeyspace() (r int64, exists bool) {
	v := m.total_keyspace
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalKeyspace returns the old "total_keyspace" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldTotalKeyspace(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalKeyspace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalKeyspace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalKeyspace: %w", err)
	}
	return oldValue.TotalKeyspace, nil
}

// AddTotalKeyspace adds i to the "total_keyspace" field.
func (m *AttackMutation) AddTotalKeyspace(i int64) {
	if m.addtotal_keyspace != nil {
		*m.addtotal_keyspace += i
	} else {
		m.addtotal_keyspace = &i
	}
}

// AddedTotalKeyspace returns the value that was added to the "total_keyspace" field in this mutation.
func (m *AttackMutation) AddedTotalKeyspace() (r int64, exists bool) {
	v := m.addtotal_keyspace
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalKeyspace clears the value of the "total_keyspace" field.
func (m *AttackMutation) ClearTotalKeyspace() {
	m.total_keyspace = nil
	m.addtotal_keyspace = nil
	m.clearedFields[attack.FieldTotalKeyspace] = struct{}{}
}

// TotalKeyspaceCleared returns if the "total_keyspace" field was cleared in this mutation.
func (m *AttackMutation) TotalKeyspaceCleared() bool {
	_, ok := m.clearedFields[attack.FieldTotalKeyspace]
	return ok
}

// ResetTotalKeyspace resets all changes to the "total_keyspace" field.
func (m *AttackMutation) ResetTotalKeyspace() {
	m.total_keyspace = nil
	m.addtotal_keyspace = nil
	delete(m.clearedFields, attack.FieldTotalKeyspace)
}

// SetDispatchedKeyspace sets the "dispatched_keyspace" field.
func (m *AttackMutation) SetDispatchedKeyspace(i int64) {
	m.dispatched_keyspace = &i
	m.adddispatched_keyspace = nil
}

// DispatchedKeyspace returns the value of the "dispatched_keyspace" field in the mutation.
func (m *AttackMutation) DispatchedKeyspace() (r int64, exists bool) {
	v := m.dispatched_keyspace
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchedKeyspace returns the old "dispatched_keyspace" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldDispatchedKeyspace(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchedKeyspace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchedKeyspace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchedKeyspace: %w", err)
	}
	return oldValue.DispatchedKeyspace, nil
}

// AddDispatchedKeyspace adds i to the "dispatched_keyspace" field.
func (m *AttackMutation) AddDispatchedKeyspace(i int64) {
	if m.adddispatched_keyspace != nil {
		*m.adddispatched_keyspace += i
	} else {
		m.adddispatched_keyspace = &i
	}
}

// AddedDispatchedKeyspace returns the value that was added to the "dispatched_keyspace" field in this mutation.
func (m *AttackMutation) AddedDispatchedKeyspace() (r int64, exists bool) {
	v := m.adddispatched_keyspace
	if v == nil {
		return
	}
	return *v, true
}

// ResetDispatchedKeyspace resets all changes to the "dispatched_keyspace" field.
func (m *AttackMutation) ResetDispatchedKeyspace() {
	m.dispatched_keyspace = nil
	m.adddispatched_keyspace = nil
}

// SetStartTime sets the "start_time" field.
func (m *AttackMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *AttackMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *AttackMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[attack.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *AttackMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[attack.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *AttackMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, attack.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *AttackMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *AttackMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *AttackMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[attack.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *AttackMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[attack.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *AttackMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, attack.FieldEndTime)
}

// SetCreatedAt sets the "created_at" field.
func (m *AttackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AttackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AttackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AttackMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AttackMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Attack entity.
// If the Attack object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttackMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AttackMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCampaign clears the "campaign" edge to the Campaign entity.
func (m *AttackMutation) ClearCampaign() {
	m.clearedcampaign = true
	m.clearedFields[attack.FieldCampaignID] = struct{}{}
}

// CampaignCleared reports if the "campaign" edge to the Campaign entity was cleared.
func (m *AttackMutation) CampaignCleared() bool {
	return m.clearedcampaign
}

// CampaignIDs returns the "campaign" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CampaignID instead. It exists only for internal usage by the builders.
func (m *AttackMutation) CampaignIDs() (ids []int) {
	if id := m.campaign; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCampaign resets all changes to the "campaign" edge.
func (m *AttackMutation) ResetCampaign() {
	m.campaign = nil
	m.clearedcampaign = false
}

// ClearWordList clears the "word_list" edge to the Resource entity.
func (m *AttackMutation) ClearWordList() {
	m.clearedword_list = true
	m.clearedFields[attack.FieldWordListID] = struct{}{}
}

// WordListCleared reports if the "word_list" edge to the Resource entity was cleared.
func (m *AttackMutation) WordListCleared() bool {
	return m.WordListIDCleared() || m.clearedword_list
}

// WordListIDs returns the "word_list" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WordListID instead. It exists only for internal usage by the builders.
func (m *AttackMutation) WordListIDs() (ids []int) {
	if id := m.word_list; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWordList resets all changes to the "word_list" edge.
func (m *AttackMutation) ResetWordList() {
	m.word_list = nil
	m.clearedword_list = false
}

// ClearRuleList clears the "rule_list" edge to the Resource entity.
func (m *AttackMutation) ClearRuleList() {
	m.clearedrule_list = true
	m.clearedFields[attack.FieldRuleListID] = struct{}{}
}

// RuleListCleared reports if the "rule_list" edge to the Resource entity was cleared.
func (m *AttackMutation) RuleListCleared() bool {
	return m.RuleListIDCleared() || m.clearedrule_list
}

// RuleListIDs returns the "rule_list" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RuleListID instead. It exists only for internal usage by the builders.
func (m *AttackMutation) RuleListIDs() (ids []int) {
	if id := m.rule_list; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRuleList resets all changes to the "rule_list" edge.
func (m *AttackMutation) ResetRuleList() {
	m.rule_list = nil
	m.clearedrule_list = false
}

// ClearMaskList clears the "mask_list" edge to the Resource entity.
func (m *AttackMutation) ClearMaskList() {
	m.clearedmask_list = true
	m.clearedFields[attack.FieldMaskListID] = struct{}{}
}

// MaskListCleared reports if the "mask_list" edge to the Resource entity was cleared.
func (m *AttackMutation) MaskListCleared() bool {
	return m.MaskListIDCleared() || m.clearedmask_list
}

// MaskListIDs returns the "mask_list" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MaskListID instead. It exists only for internal usage by the builders.
func (m *AttackMutation) MaskListIDs() (ids []int) {
	if id := m.mask_list; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMaskList resets all changes to the "mask_list" edge.
func (m *AttackMutation) ResetMaskList() {
	m.mask_list = nil
	m.clearedmask_list = false
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *AttackMutation) AddTaskIDs(ids ...int) {
	if m.tasks == nil {
		m.tasks = make(map[int]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *AttackMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *AttackMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *AttackMutation) RemoveTaskIDs(ids ...int) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *AttackMutation) RemovedTasksIDs() (ids []int) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *AttackMutation) TasksIDs() (ids []int) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *AttackMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// Where appends a list predicates to the AttackMutation builder.
func (m *AttackMutation) Where(ps ...predicate.Attack) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Attack, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Attack).
func (m *AttackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttackMutation) Fields() []string {
	fields := make([]string, 0, 30)
	if m.campaign != nil {
		fields = append(fields, attack.FieldCampaignID)
	}
	if m.name != nil {
		fields = append(fields, attack.FieldName)
	}
	if m.state != nil {
		fields = append(fields, attack.FieldState)
	}
	if m.attack_mode != nil {
		fields = append(fields, attack.FieldAttackMode)
	}
	if m.mask != nil {
		fields = append(fields, attack.FieldMask)
	}
	if m.increment_mode != nil {
		fields = append(fields, attack.FieldIncrementMode)
	}
	if m.increment_minimum != nil {
		fields = append(fields, attack.FieldIncrementMinimum)
	}
	if m.increment_maximum != nil {
		fields = append(fields, attack.FieldIncrementMaximum)
	}
	if m.optimized != nil {
		fields = append(fields, attack.FieldOptimized)
	}
	if m.slow_candidate_generators != nil {
		fields = append(fields, attack.FieldSlowCandidateGenerators)
	}
	if m.workload_profile != nil {
		fields = append(fields, attack.FieldWorkloadProfile)
	}
	if m.disable_markov != nil {
		fields = append(fields, attack.FieldDisableMarkov)
	}
	if m.classic_markov != nil {
		fields = append(fields, attack.FieldClassicMarkov)
	}
	if m.markov_threshold != nil {
		fields = append(fields, attack.FieldMarkovThreshold)
	}
	if m.left_rule != nil {
		fields = append(fields, attack.FieldLeftRule)
	}
	if m.right_rule != nil {
		fields = append(fields, attack.FieldRightRule)
	}
	if m.custom_charset_1 != nil {
		fields = append(fields, attack.FieldCustomCharset1)
	}
	if m.custom_charset_2 != nil {
		fields = append(fields, attack.FieldCustomCharset2)
	}
	if m.custom_charset_3 != nil {
		fields = append(fields, attack.FieldCustomCharset3)
	}
	if m.custom_charset_4 != nil {
		fields = append(fields, attack.FieldCustomCharset4)
	}
	if m.word_list != nil {
		fields = append(fields, attack.FieldWordListID)
	}
	if m.rule_list != nil {
		fields = append(fields, attack.FieldRuleListID)
	}
	if m.mask_list != nil {
		fields = append(fields, attack.FieldMaskListID)
	}
	if m.position != nil {
		fields = append(fields, attack.FieldPosition)
	}
	if m.total_keyspace != nil {
		fields = append(fields, attack.FieldTotalKeyspace)
	}
	if m.dispatched_keyspace != nil {
		fields = append(fields, attack.FieldDispatchedKeyspace)
	}
	if m.start_time != nil {
		fields = append(fields, attack.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, attack.FieldEndTime)
	}
	if m.created_at != nil {
		fields = append(fields, attack.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, attack.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attack.FieldCampaignID:
		return m.CampaignID()
	case attack.FieldName:
		return m.Name()
	case attack.FieldState:
		return m.State()
	case attack.FieldAttackMode:
		return m.AttackMode()
	case attack.FieldMask:
		return m.Mask()
	case attack.FieldIncrementMode:
		return m.IncrementMode()
	case attack.FieldIncrementMinimum:
		return m.IncrementMinimum()
	case attack.FieldIncrementMaximum:
		return m.IncrementMaximum()
	case attack.FieldOptimized:
		return m.Optimized()
	case attack.FieldSlowCandidateGenerators:
		return m.SlowCandidateGenerators()
	case attack.FieldWorkloadProfile:
		return m.WorkloadProfile()
	case attack.FieldDisableMarkov:
		return m.DisableMarkov()
	case attack.FieldClassicMarkov:
		return m.ClassicMarkov()
	case attack.FieldMarkovThreshold:
		return m.MarkovThreshold()
	case attack.FieldLeftRule:
		return m.LeftRule()
	case attack.FieldRightRule:
		return m.RightRule()
	case attack.FieldCustomCharset1:
		return m.CustomCharset1()
	case attack.FieldCustomCharset2:
		return m.CustomCharset2()
	case attack.FieldCustomCharset3:
		return m.CustomCharset3()
	case attack.FieldCustomCharset4:
		return m.CustomCharset4()
	case attack.FieldWordListID:
		return m.WordListID()
	case attack.FieldRuleListID:
		return m.RuleListID()
	case attack.FieldMaskListID:
		return m.MaskListID()
	case attack.FieldPosition:
		return m.Position()
	case attack.FieldTotalKeyspace:
		return m.TotalKeyspace()
	case attack.FieldDispatchedKeyspace:
		return m.DispatchedKeyspace()
	case attack.FieldStartTime:
		return m.StartTime()
	case attack.FieldEndTime:
		return m.EndTime()
	case attack.FieldCreatedAt:
		return m.CreatedAt()
	case attack.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attack.FieldCampaignID:
		return m.OldCampaignID(ctx)
	case attack.FieldName:
		return m.OldName(ctx)
	case attack.FieldState:
		return m.OldState(ctx)
	case attack.FieldAttackMode:
		return m.OldAttackMode(ctx)
	case attack.FieldMask:
		return m.OldMask(ctx)
	case attack.FieldIncrementMode:
		return m.OldIncrementMode(ctx)
	case attack.FieldIncrementMinimum:
		return m.OldIncrementMinimum(ctx)
	case attack.FieldIncrementMaximum:
		return m.OldIncrementMaximum(ctx)
	case attack.FieldOptimized:
		return m.OldOptimized(ctx)
	case attack.FieldSlowCandidateGenerators:
		return m.OldSlowCandidateGenerators(ctx)
	case attack.FieldWorkloadProfile:
		return m.OldWorkloadProfile(ctx)
	case attack.FieldDisableMarkov:
		return m.OldDisableMarkov(ctx)
	case attack.FieldClassicMarkov:
		return m.OldClassicMarkov(ctx)
	case attack.FieldMarkovThreshold:
		return m.OldMarkovThreshold(ctx)
	case attack.FieldLeftRule:
		return m.OldLeftRule(ctx)
	case attack.FieldRightRule:
		return m.OldRightRule(ctx)
	case attack.FieldCustomCharset1:
		return m.OldCustomCharset1(ctx)
	case attack.FieldCustomCharset2:
		return m.OldCustomCharset2(ctx)
	case attack.FieldCustomCharset3:
		return m.OldCustomCharset3(ctx)
	case attack.FieldCustomCharset4:
		return m.OldCustomCharset4(ctx)
	case attack.FieldWordListID:
		return m.OldWordListID(ctx)
	case attack.FieldRuleListID:
		return m.OldRuleListID(ctx)
	case attack.FieldMaskListID:
		return m.OldMaskListID(ctx)
	case attack.FieldPosition:
		return m.OldPosition(ctx)
	case attack.FieldTotalKeyspace:
		return m.OldTotalKeyspace(ctx)
	case attack.FieldDispatchedKeyspace:
		return m.OldDispatchedKeyspace(ctx)
	case attack.FieldStartTime:
		return m.OldStartTime(ctx)
	case attack.FieldEndTime:
		return m.OldEndTime(ctx)
	case attack.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case attack.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Attack field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attack.FieldCampaignID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampaignID(v)
		return nil
	case attack.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case attack.FieldState:
		v, ok := value.(attack.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case attack.FieldAttackMode:
		v, ok := value.(attack.AttackMode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttackMode(v)
		return nil
	case attack.FieldMask:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMask(v)
		return nil
	case attack.FieldIncrementMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncrementMode(v)
		return nil
	case attack.FieldIncrementMinimum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncrementMinimum(v)
		return nil
	case attack.FieldIncrementMaximum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncrementMaximum(v)
		return nil
	case attack.FieldOptimized:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimized(v)
		return nil
	case attack.FieldSlowCandidateGenerators:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlowCandidateGenerators(v)
		return nil
	case attack.FieldWorkloadProfile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkloadProfile(v)
		return nil
	case attack.FieldDisableMarkov:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisableMarkov(v)
		return nil
	case attack.FieldClassicMarkov:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClassicMarkov(v)
		return nil
	case attack.FieldMarkovThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMarkovThreshold(v)
		return nil
	case attack.FieldLeftRule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeftRule(v)
		return nil
	case attack.FieldRightRule:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRightRule(v)
		return nil
	case attack.FieldCustomCharset1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomCharset1(v)
		return nil
	case attack.FieldCustomCharset2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomCharset2(v)
		return nil
	case attack.FieldCustomCharset3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomCharset3(v)
		return nil
	case attack.FieldCustomCharset4:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomCharset4(v)
		return nil
	case attack.FieldWordListID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordListID(v)
		return nil
	case attack.FieldRuleListID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleListID(v)
		return nil
	case attack.FieldMaskListID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaskListID(v)
		return nil
	case attack.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case attack.FieldTotalKeyspace:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalKeyspace(v)
		return nil
	case attack.FieldDispatchedKeyspace:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchedKeyspace(v)
		return nil
	case attack.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case attack.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case attack.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case attack.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Attack field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttackMutation) AddedFields() []string {
	var fields []string
	if m.addincrement_minimum != nil {
		fields = append(fields, attack.FieldIncrementMinimum)
	}
	if m.addincrement_maximum != nil {
		fields = append(fields, attack.FieldIncrementMaximum)
	}
	if m.addworkload_profile != nil {
		fields = append(fields, attack.FieldWorkloadProfile)
	}
	if m.addmarkov_threshold != nil {
		fields = append(fields, attack.FieldMarkovThreshold)
	}
	if m.addposition != nil {
		fields = append(fields, attack.FieldPosition)
	}
	if m.addtotal_keyspace != nil {
		fields = append(fields, attack.FieldTotalKeyspace)
	}
	if m.adddispatched_keyspace != nil {
		fields = append(fields, attack.FieldDispatchedKeyspace)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttackMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attack.FieldIncrementMinimum:
		return m.AddedIncrementMinimum()
	case attack.FieldIncrementMaximum:
		return m.AddedIncrementMaximum()
	case attack.FieldWorkloadProfile:
		return m.AddedWorkloadProfile()
	case attack.FieldMarkovThreshold:
		return m.AddedMarkovThreshold()
	case attack.FieldPosition:
		return m.AddedPosition()
	case attack.FieldTotalKeyspace:
		return m.AddedTotalKeyspace()
	case attack.FieldDispatchedKeyspace:
		return m.AddedDispatchedKeyspace()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttackMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attack.FieldIncrementMinimum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncrementMinimum(v)
		return nil
	case attack.FieldIncrementMaximum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncrementMaximum(v)
		return nil
	case attack.FieldWorkloadProfile:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWorkloadProfile(v)
		return nil
	case attack.FieldMarkovThreshold:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMarkovThreshold(v)
		return nil
	case attack.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case attack.FieldTotalKeyspace:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalKeyspace(v)
		return nil
	case attack.FieldDispatchedKeyspace:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDispatchedKeyspace(v)
		return nil
	}
	return fmt.Errorf("unknown Attack numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(attack.FieldName) {
		fields = append(fields, attack.FieldName)
	}
	if m.FieldCleared(attack.FieldMask) {
		fields = append(fields, attack.FieldMask)
	}
	if m.FieldCleared(attack.FieldLeftRule) {
		fields = append(fields, attack.FieldLeftRule)
	}
	if m.FieldCleared(attack.FieldRightRule) {
		fields = append(fields, attack.FieldRightRule)
	}
	if m.FieldCleared(attack.FieldCustomCharset1) {
		fields = append(fields, attack.FieldCustomCharset1)
	}
	if m.FieldCleared(attack.FieldCustomCharset2) {
		fields = append(fields, attack.FieldCustomCharset2)
	}
	if m.FieldCleared(attack.FieldCustomCharset3) {
		fields = append(fields, attack.FieldCustomCharset3)
	}
	if m.FieldCleared(attack.FieldCustomCharset4) {
		fields = append(fields, attack.FieldCustomCharset4)
	}
	if m.FieldCleared(attack.FieldWordListID) {
		fields = append(fields, attack.FieldWordListID)
	}
	if m.FieldCleared(attack.FieldRuleListID) {
		fields = append(fields, attack.FieldRuleListID)
	}
	if m.FieldCleared(attack.FieldMaskListID) {
		fields = append(fields, attack.FieldMaskListID)
	}
	if m.FieldCleared(attack.FieldTotalKeyspace) {
		fields = append(fields, attack.FieldTotalKeyspace)
	}
	if m.FieldCleared(attack.FieldStartTime) {
		fields = append(fields, attack.FieldStartTime)
	}
	if m.FieldCleared(attack.FieldEndTime) {
		fields = append(fields, attack.FieldEndTime)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttackMutation) ClearField(name string) error {
	switch name {
	case attack.FieldName:
		m.ClearName()
		return nil
	case attack.FieldMask:
		m.ClearMask()
		return nil
	case attack.FieldLeftRule:
		m.ClearLeftRule()
		return nil
	case attack.FieldRightRule:
		m.ClearRightRule()
		return nil
	case attack.FieldCustomCharset1:
		m.ClearCustomCharset1()
		return nil
	case attack.FieldCustomCharset2:
		m.ClearCustomCharset2()
		return nil
	case attack.FieldCustomCharset3:
		m.ClearCustomCharset3()
		return nil
	case attack.FieldCustomCharset4:
		m.ClearCustomCharset4()
		return nil
	case attack.FieldWordListID:
		m.ClearWordListID()
		return nil
	case attack.FieldRuleListID:
		m.ClearRuleListID()
		return nil
	case attack.FieldMaskListID:
		m.ClearMaskListID()
		return nil
	case attack.FieldTotalKeyspace:
		m.ClearTotalKeyspace()
		return nil
	case attack.FieldStartTime:
		m.ClearStartTime()
		return nil
	case attack.FieldEndTime:
		m.ClearEndTime()
		return nil
	}
	return fmt.Errorf("unknown Attack nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttackMutation) ResetField(name string) error {
	switch name {
	case attack.FieldCampaignID:
		m.ResetCampaignID()
		return nil
	case attack.FieldName:
		m.ResetName()
		return nil
	case attack.FieldState:
		m.ResetState()
		return nil
	case attack.FieldAttackMode:
		m.ResetAttackMode()
		return nil
	case attack.FieldMask:
		m.ResetMask()
		return nil
	case attack.FieldIncrementMode:
		m.ResetIncrementMode()
		return nil
	case attack.FieldIncrementMinimum:
		m.ResetIncrementMinimum()
		return nil
	case attack.FieldIncrementMaximum:
		m.ResetIncrementMaximum()
		return nil
	case attack.FieldOptimized:
		m.ResetOptimized()
		return nil
	case attack.FieldSlowCandidateGenerators:
		m.ResetSlowCandidateGenerators()
		return nil
	case attack.FieldWorkloadProfile:
		m.ResetWorkloadProfile()
		return nil
	case attack.FieldDisableMarkov:
		m.ResetDisableMarkov()
		return nil
	case attack.FieldClassicMarkov:
		m.ResetClassicMarkov()
		return nil
	case attack.FieldMarkovThreshold:
		m.ResetMarkovThreshold()
		return nil
	case attack.FieldLeftRule:
		m.ResetLeftRule()
		return nil
	case attack.FieldRightRule:
		m.ResetRightRule()
		return nil
	case attack.FieldCustomCharset1:
		m.ResetCustomCharset1()
		return nil
	case attack.FieldCustomCharset2:
		m.ResetCustomCharset2()
		return nil
	case attack.FieldCustomCharset3:
		m.ResetCustomCharset3()
		return nil
	case attack.FieldCustomCharset4:
		m.ResetCustomCharset4()
		return nil
	case attack.FieldWordListID:
		m.ResetWordListID()
		return nil
	case attack.FieldRuleListID:
		m.ResetRuleListID()
		return nil
	case attack.FieldMaskListID:
		m.ResetMaskListID()
		return nil
	case attack.FieldPosition:
		m.ResetPosition()
		return nil
	case attack.FieldTotalKeyspace:
		m.ResetTotalKeyspace()
		return nil
	case attack.FieldDispatchedKeyspace:
		m.ResetDispatchedKeyspace()
		return nil
	case attack.FieldStartTime:
		m.ResetStartTime()
		return nil
	case attack.FieldEndTime:
		m.ResetEndTime()
		return nil
	case attack.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case attack.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Attack field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttackMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.campaign != nil {
		edges = append(edges, attack.EdgeCampaign)
	}
	if m.word_list != nil {
		edges = append(edges, attack.EdgeWordList)
	}
	if m.rule_list != nil {
		edges = append(edges, attack.EdgeRuleList)
	}
	if m.mask_list != nil {
		edges = append(edges, attack.EdgeMaskList)
	}
	if m.tasks != nil {
		edges = append(edges, attack.EdgeTasks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case attack.EdgeCampaign:
		if id := m.campaign; id != nil {
			return []ent.Value{*id}
		}
	case attack.EdgeWordList:
		if id := m.word_list; id != nil {
			return []ent.Value{*id}
		}
	case attack.EdgeRuleList:
		if id := m.rule_list; id != nil {
			return []ent.Value{*id}
		}
	case attack.EdgeMaskList:
		if id := m.mask_list; id != nil {
			return []ent.Value{*id}
		}
	case attack.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedtasks != nil {
		edges = append(edges, attack.EdgeTasks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttackMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case attack.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedcampaign {
		edges = append(edges, attack.EdgeCampaign)
	}
	if m.clearedword_list {
		edges = append(edges, attack.EdgeWordList)
	}
	if m.clearedrule_list {
		edges = append(edges, attack.EdgeRuleList)
	}
	if m.clearedmask_list {
		edges = append(edges, attack.EdgeMaskList)
	}
	if m.clearedtasks {
		edges = append(edges, attack.EdgeTasks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttackMutation) EdgeCleared(name string) bool {
	switch name {
	case attack.EdgeCampaign:
		return m.clearedcampaign
	case attack.EdgeWordList:
		return m.clearedword_list
	case attack.EdgeRuleList:
		return m.clearedrule_list
	case attack.EdgeMaskList:
		return m.clearedmask_list
	case attack.EdgeTasks:
		return m.clearedtasks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttackMutation) ClearEdge(name string) error {
	switch name {
	case attack.EdgeCampaign:
		m.ClearCampaign()
		return nil
	case attack.EdgeWordList:
		m.ClearWordList()
		return nil
	case attack.EdgeRuleList:
		m.ClearRuleList()
		return nil
	case attack.EdgeMaskList:
		m.ClearMaskList()
		return nil
	}
	return fmt.Errorf("unknown Attack unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttackMutation) ResetEdge(name string) error {
	switch name {
	case attack.EdgeCampaign:
		m.ResetCampaign()
		return nil
	case attack.EdgeWordList:
		m.ResetWordList()
		return nil
	case attack.EdgeRuleList:
		m.ResetRuleList()
		return nil
	case attack.EdgeMaskList:
		m.ResetMaskList()
		return nil
	case attack.EdgeTasks:
		m.ResetTasks()
		return nil
	}
	return fmt.Errorf("unknown Attack edge %s", name)
}

// BenchmarkMutation represents an operation that mutates the Benchmark nodes in the graph.
type BenchmarkMutation struct {
	config
	op            Op
	typ           string
	id            *int
	hash_type     *int
	addhash_type  *int
	device        *int
	adddevice     *int
	hash_speed    *float64
	addhash_speed *float64
	runtime_ms    *int64
	addruntime_ms *int64
	measured_at   *time.Time
	clearedFields map[string]struct{}
	agent         *int
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*Benchmark, error)
	predicates    []predicate.Benchmark
}

var _ ent.Mutation = (*BenchmarkMutation)(nil)

// benchmarkOption allows management of the mutation configuration using functional options.
type benchmarkOption func(*BenchmarkMutation)

// newBenchmarkMutation creates new mutation for the Benchmark entity.
func newBenchmarkMutation(c config, op Op, opts ...benchmarkOption) *BenchmarkMutation {
	m := &BenchmarkMutation{
		config:        c,
		op:            op,
		typ:           TypeBenchmark,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBenchmarkID sets the ID field of the mutation.
func withBenchmarkID(id int) benchmarkOption {
	return func(m *BenchmarkMutation) {
		var (
			err   error
			once  sync.Once
			value *Benchmark
		)
		m.oldValue = func(ctx context.Context) (*Benchmark, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Benchmark.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBenchmark sets the old Benchmark of the mutation.
func withBenchmark(node *Benchmark) benchmarkOption {
	return func(m *BenchmarkMutation) {
		m.oldValue = func(context.Context) (*Benchmark, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BenchmarkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BenchmarkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BenchmarkMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BenchmarkMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Benchmark.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *BenchmarkMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *BenchmarkMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Benchmark entity.
// If the Benchmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BenchmarkMutation) OldAgentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *BenchmarkMutation) ResetAgentID() {
	m.agent = nil
}

// SetHashType sets the "hash_type" field.
func (m *BenchmarkMutation) SetHashType(i int) {
	m.hash_type = &i
	m.addhash_type = nil
}

// HashType returns the value of the "hash_type" field in the mutation.
func (m *BenchmarkMutation) HashType() (r int, exists bool) {
	v := m.hash_type
	if v == nil {
		return
	}
	return *v, true
}

// OldHashType returns the old "hash_type" field's value of the Benchmark entity.
// If the Benchmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BenchmarkMutation) OldHashType(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashType: %w", err)
	}
	return oldValue.HashType, nil
}

// AddHashType adds i to the "hash_type" field.
func (m *BenchmarkMutation) AddHashType(i int) {
	if m.addhash_type != nil {
		*m.addhash_type += i
	} else {
		m.addhash_type = &i
	}
}

// AddedHashType returns the value that was added to the "hash_type" field in this mutation.
func (m *BenchmarkMutation) AddedHashType() (r int, exists bool) {
	v := m.addhash_type
	if v == nil {
		return
	}
	return *v, true
}

// ResetHashType resets all changes to the "hash_type" field.
func (m *BenchmarkMutation) ResetHashType() {
	m.hash_type = nil
	m.addhash_type = nil
}

// SetDevice sets the "device" field.
func (m *BenchmarkMutation) SetDevice(i int) {
	m.device = &i
	m.adddevice = nil
}

// Device returns the value of the "device" field in the mutation.
func (m *BenchmarkMutation) Device() (r int, exists bool) {
	v := m.device
	if v == nil {
		return
	}
	return *v, true
}

// OldDevice returns the old "device" field's value of the Benchmark entity.
// If the Benchmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BenchmarkMutation) OldDevice(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDevice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDevice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDevice: %w", err)
	}
	return oldValue.Device, nil
}

// AddDevice adds i to the "device" field.
func (m *BenchmarkMutation) AddDevice(i int) {
	if m.adddevice != nil {
		*m.adddevice += i
	} else {
		m.adddevice = &i
	}
}

// AddedDevice returns the value that was added to the "device" field in this mutation.
func (m *BenchmarkMutation) AddedDevice() (r int, exists bool) {
	v := m.adddevice
	if v == nil {
		return
	}
	return *v, true
}

// ResetDevice resets all changes to the "device" field.
func (m *BenchmarkMutation) ResetDevice() {
	m.device = nil
	m.adddevice = nil
}

// SetHashSpeed sets the "hash_speed" field.
func (m *BenchmarkMutation) SetHashSpeed(f float64) {
	m.hash_speed = &f
	m.addhash_speed = nil
}

// HashSpeed returns the value of the "hash_speed" field in the mutation.
func (m *BenchmarkMutation) HashSpeed() (r float64, exists bool) {
	v := m.hash_speed
	if v == nil {
		return
	}
	return *v, true
}

// OldHashSpeed returns the old "hash_speed" field's value of the Benchmark entity.
// If the Benchmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BenchmarkMutation) OldHashSpeed(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashSpeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashSpeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashSpeed: %w", err)
	}
	return oldValue.HashSpeed, nil
}

// AddHashSpeed adds f to the "hash_speed" field.
func (m *BenchmarkMutation) AddHashSpeed(f float64) {
	if m.addhash_speed != nil {
		*m.addhash_speed += f
	} else {
		m.addhash_speed = &f
	}
}

// AddedHashSpeed returns the value that was added to the "hash_speed" field in this mutation.
func (m *BenchmarkMutation) AddedHashSpeed() (r float64, exists bool) {
	v := m.addhash_speed
	if v == nil {
		return
	}
	return *v, true
}

// ResetHashSpeed resets all changes to the "hash_speed" field.
func (m *BenchmarkMutation) ResetHashSpeed() {
	m.hash_speed = nil
	m.addhash_speed = nil
}

// SetRuntimeMs sets the "runtime_ms" field.
func (m *BenchmarkMutation) SetRuntimeMs(i int64) {
	m.runtime_ms = &i
	m.addruntime_ms = nil
}

// RuntimeMs returns the value of the "runtime_ms" field in the mutation.
func (m *BenchmarkMutation) RuntimeMs() (r int64, exists bool) {
	v := m.runtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldRuntimeMs returns the old "runtime_ms" field's value of the Benchmark entity.
// If the Benchmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BenchmarkMutation) OldRuntimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuntimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuntimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuntimeMs: %w", err)
	}
	return oldValue.RuntimeMs, nil
}

// AddRuntimeMs adds i to the "runtime_ms" field.
func (m *BenchmarkMutation) AddRuntimeMs(i int64) {
	if m.addruntime_ms != nil {
		*m.addruntime_ms += i
	} else {
		m.addruntime_ms = &i
	}
}

// AddedRuntimeMs returns the value that was added to the "runtime_ms" field in this mutation.
func (m *BenchmarkMutation) AddedRuntimeMs() (r int64, exists bool) {
	v := m.addruntime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetRuntimeMs resets all changes to the "runtime_ms" field.
func (m *BenchmarkMutation) ResetRuntimeMs() {
	m.runtime_ms = nil
	m.addruntime_ms = nil
}

// SetMeasuredAt sets the "measured_at" field.
func (m *BenchmarkMutation) SetMeasuredAt(t time.Time) {
	m.measured_at = &t
}

// MeasuredAt returns the value of the "measured_at" field in the mutation.
func (m *BenchmarkMutation) MeasuredAt() (r time.Time, exists bool) {
	v := m.measured_at
	if v == nil {
		return
	}
	return *v, true
}

// OldMeasuredAt returns the old "measured_at" field's value of the Benchmark entity.
// If the Benchmark object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BenchmarkMutation) OldMeasuredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeasuredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeasuredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeasuredAt: %w", err)
	}
	return oldValue.MeasuredAt, nil
}

// ResetMeasuredAt resets all changes to the "measured_at" field.
func (m *BenchmarkMutation) ResetMeasuredAt() {
	m.measured_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *BenchmarkMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[benchmark.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *BenchmarkMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *BenchmarkMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *BenchmarkMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the BenchmarkMutation builder.
func (m *BenchmarkMutation) Where(ps ...predicate.Benchmark) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BenchmarkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BenchmarkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Benchmark, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BenchmarkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BenchmarkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Benchmark).
func (m *BenchmarkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BenchmarkMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent != nil {
		fields = append(fields, benchmark.FieldAgentID)
	}
	if m.hash_type != nil {
		fields = append(fields, benchmark.FieldHashType)
	}
	if m.device != nil {
		fields = append(fields, benchmark.FieldDevice)
	}
	if m.hash_speed != nil {
		fields = append(fields, benchmark.FieldHashSpeed)
	}
	if m.runtime_ms != nil {
		fields = append(fields, benchmark.FieldRuntimeMs)
	}
	if m.measured_at != nil {
		fields = append(fields, benchmark.FieldMeasuredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BenchmarkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case benchmark.FieldAgentID:
		return m.AgentID()
	case benchmark.FieldHashType:
		return m.HashType()
	case benchmark.FieldDevice:
		return m.Device()
	case benchmark.FieldHashSpeed:
		return m.HashSpeed()
	case benchmark.FieldRuntimeMs:
		return m.RuntimeMs()
	case benchmark.FieldMeasuredAt:
		return m.MeasuredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BenchmarkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case benchmark.FieldAgentID:
		return m.OldAgentID(ctx)
	case benchmark.FieldHashType:
		return m.OldHashType(ctx)
	case benchmark.FieldDevice:
		return m.OldDevice(ctx)
	case benchmark.FieldHashSpeed:
		return m.OldHashSpeed(ctx)
	case benchmark.FieldRuntimeMs:
		return m.OldRuntimeMs(ctx)
	case benchmark.FieldMeasuredAt:
		return m.OldMeasuredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Benchmark field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BenchmarkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case benchmark.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case benchmark.FieldHashType:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashType(v)
		return nil
	case benchmark.FieldDevice:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDevice(v)
		return nil
	case benchmark.FieldHashSpeed:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashSpeed(v)
		return nil
	case benchmark.FieldRuntimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuntimeMs(v)
		return nil
	case benchmark.FieldMeasuredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeasuredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Benchmark field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BenchmarkMutation) AddedFields() []string {
	var fields []string
	if m.addhash_type != nil {
		fields = append(fields, benchmark.FieldHashType)
	}
	if m.adddevice != nil {
		fields = append(fields, benchmark.FieldDevice)
	}
	if m.addhash_speed != nil {
		fields = append(fields, benchmark.FieldHashSpeed)
	}
	if m.addruntime_ms != nil {
		fields = append(fields, benchmark.FieldRuntimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BenchmarkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case benchmark.FieldHashType:
		return m.AddedHashType()
	case benchmark.FieldDevice:
		return m.AddedDevice()
	case benchmark.FieldHashSpeed:
		return m.AddedHashSpeed()
	case benchmark.FieldRuntimeMs:
		return m.AddedRuntimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BenchmarkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case benchmark.FieldHashType:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHashType(v)
		return nil
	case benchmark.FieldDevice:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDevice(v)
		return nil
	case benchmark.FieldHashSpeed:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHashSpeed(v)
		return nil
	case benchmark.FieldRuntimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRuntimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown Benchmark numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BenchmarkMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BenchmarkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BenchmarkMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Benchmark nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BenchmarkMutation) ResetField(name string) error {
	switch name {
	case benchmark.FieldAgentID:
		m.ResetAgentID()
		return nil
	case benchmark.FieldHashType:
		m.ResetHashType()
		return nil
	case benchmark.FieldDevice:
		m.ResetDevice()
		return nil
	case benchmark.FieldHashSpeed:
		m.ResetHashSpeed()
		return nil
	case benchmark.FieldRuntimeMs:
		m.ResetRuntimeMs()
		return nil
	case benchmark.FieldMeasuredAt:
		m.ResetMeasuredAt()
		return nil
	}
	return fmt.Errorf("unknown Benchmark field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BenchmarkMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, benchmark.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BenchmarkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case benchmark.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BenchmarkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BenchmarkMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BenchmarkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, benchmark.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BenchmarkMutation) EdgeCleared(name string) bool {
	switch name {
	case benchmark.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BenchmarkMutation) ClearEdge(name string) error {
	switch name {
	case benchmark.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Benchmark unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BenchmarkMutation) ResetEdge(name string) error {
	switch name {
	case benchmark.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown Benchmark edge %s", name)
}

// CampaignMutation represents an operation that mutates the Campaign nodes in the graph.
type CampaignMutation struct {
	config
	op               Op
	typ              string
	id               *int
	name             *string
	description      *string
	priority         *models.Priority
	addpriority      *models.Priority
	state            *campaign.State
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	project          *int
	clearedproject   bool
	hash_list        *int
	clearedhash_list bool
	attacks          map[int]struct{}
	removedattacks   map[int]struct{}
	clearedattacks   bool
	done             bool
	oldValue         func(context.Context) (*Campaign, error)
	predicates       []predicate.Campaign
}

var _ ent.Mutation = (*CampaignMutation)(nil)

// campaignOption allows management of the mutation configuration using functional options.
type campaignOption func(*CampaignMutation)

// newCampaignMutation creates new mutation for the Campaign entity.
func newCampaignMutation(c config, op Op, opts ...campaignOption) *CampaignMutation {
	m := &CampaignMutation{
		config:        c,
		op:            op,
		typ:           TypeCampaign,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampaignID sets the ID field of the mutation.
func withCampaignID(id int) campaignOption {
	return func(m *CampaignMutation) {
		var (
			err   error
			once  sync.Once
			value *Campaign
		)
		m.oldValue = func(ctx context.Context) (*Campaign, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Campaign.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampaign sets the old Campaign of the mutation.
func withCampaign(node *Campaign) campaignOption {
	return func(m *CampaignMutation) {
		m.oldValue = func(context.Context) (*Campaign, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampaignMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampaignMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampaignMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampaignMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Campaign.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *CampaignMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *CampaignMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *CampaignMutation) ResetProjectID() {
	m.project = nil
}

// SetHashListID sets the "hash_list_id" field.
func (m *CampaignMutation) SetHashListID(i int) {
	m.hash_list = &i
}

// HashListID returns the value of the "hash_list_id" field in the mutation.
func (m *CampaignMutation) HashListID() (r int, exists bool) {
	v := m.hash_list
	if v == nil {
		return
	}
	return *v, true
}

// OldHashListID returns the old "hash_list_id" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldHashListID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashListID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashListID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashListID: %w", err)
	}
	return oldValue.HashListID, nil
}

// ResetHashListID resets all changes to the "hash_list_id" field.
func (m *CampaignMutation) ResetHashListID() {
	m.hash_list = nil
}

// SetName sets the "name" field.
func (m *CampaignMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CampaignMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CampaignMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *CampaignMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CampaignMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CampaignMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[campaign.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CampaignMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[campaign.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CampaignMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, campaign.FieldDescription)
}

// SetPriority sets the "priority" field.
func (m *CampaignMutation) SetPriority(value models.Priority) {
	m.priority = &value
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *CampaignMutation) Priority() (r models.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldPriority(ctx context.Context) (v models.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds value to the "priority" field.
func (m *CampaignMutation) AddPriority(value models.Priority) {
	if m.addpriority != nil {
		*m.addpriority += value
	} else {
		m.addpriority = &value
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *CampaignMutation) AddedPriority() (r models.Priority, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *CampaignMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetState sets the "state" field.
func (m *CampaignMutation) SetState(c campaign.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *CampaignMutation) State() (r campaign.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldState(ctx context.Context) (v campaign.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CampaignMutation) ResetState() {
	m.state = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CampaignMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampaignMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampaignMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampaignMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampaignMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Campaign entity.
// If the Campaign object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampaignMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampaignMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *CampaignMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[campaign.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *CampaignMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *CampaignMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *CampaignMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearHashList clears the "hash_list" edge to the HashList entity.
func (m *CampaignMutation) ClearHashList() {
	m.clearedhash_list = true
	m.clearedFields[campaign.FieldHashListID] = struct{}{}
}

// HashListCleared reports if the "hash_list" edge to the HashList entity was cleared.
func (m *CampaignMutation) HashListCleared() bool {
	return m.clearedhash_list
}

// HashListIDs returns the "hash_list" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HashListID instead. It exists only for internal usage by the builders.
func (m *CampaignMutation) HashListIDs() (ids []int) {
	if id := m.hash_list; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHashList resets all changes to the "hash_list" edge.
func (m *CampaignMutation) ResetHashList() {
	m.hash_list = nil
	m.clearedhash_list = false
}

// AddAttackIDs adds the "attacks" edge to the Attack entity by ids.
func (m *CampaignMutation) AddAttackIDs(ids ...int) {
	if m.attacks == nil {
		m.attacks = make(map[int]struct{})
	}
	for i := range ids {
		m.attacks[ids[i]] = struct{}{}
	}
}

// ClearAttacks clears the "attacks" edge to the Attack entity.
func (m *CampaignMutation) ClearAttacks() {
	m.clearedattacks = true
}

// AttacksCleared reports if the "attacks" edge to the Attack entity was cleared.
func (m *CampaignMutation) AttacksCleared() bool {
	return m.clearedattacks
}

// RemoveAttackIDs removes the "attacks" edge to the Attack entity by IDs.
func (m *CampaignMutation) RemoveAttackIDs(ids ...int) {
	if m.removedattacks == nil {
		m.removedattacks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attacks, ids[i])
		m.removedattacks[ids[i]] = struct{}{}
	}
}

// RemovedAttacks returns the removed IDs of the "attacks" edge to the Attack entity.
func (m *CampaignMutation) RemovedAttacksIDs() (ids []int) {
	for id := range m.removedattacks {
		ids = append(ids, id)
	}
	return
}

// AttacksIDs returns the "attacks" edge IDs in the mutation.
func (m *CampaignMutation) AttacksIDs() (ids []int) {
	for id := range m.attacks {
		ids = append(ids, id)
	}
	return
}

// ResetAttacks resets all changes to the "attacks" edge.
func (m *CampaignMutation) ResetAttacks() {
	m.attacks = nil
	m.clearedattacks = false
	m.removedattacks = nil
}

// Where appends a list predicates to the CampaignMutation builder.
func (m *CampaignMutation) Where(ps ...predicate.Campaign) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampaignMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampaignMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Campaign, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampaignMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampaignMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Campaign).
func (m *CampaignMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampaignMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.project != nil {
		fields = append(fields, campaign.FieldProjectID)
	}
	if m.hash_list != nil {
		fields = append(fields, campaign.FieldHashListID)
	}
	if m.name != nil {
		fields = append(fields, campaign.FieldName)
	}
	if m.description != nil {
		fields = append(fields, campaign.FieldDescription)
	}
	if m.priority != nil {
		fields = append(fields, campaign.FieldPriority)
	}
	if m.state != nil {
		fields = append(fields, campaign.FieldState)
	}
	if m.created_at != nil {
		fields = append(fields, campaign.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campaign.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampaignMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldProjectID:
		return m.ProjectID()
	case campaign.FieldHashListID:
		return m.HashListID()
	case campaign.FieldName:
		return m.Name()
	case campaign.FieldDescription:
		return m.Description()
	case campaign.FieldPriority:
		return m.Priority()
	case campaign.FieldState:
		return m.State()
	case campaign.FieldCreatedAt:
		return m.CreatedAt()
	case campaign.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampaignMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campaign.FieldProjectID:
		return m.OldProjectID(ctx)
	case campaign.FieldHashListID:
		return m.OldHashListID(ctx)
	case campaign.FieldName:
		return m.OldName(ctx)
	case campaign.FieldDescription:
		return m.OldDescription(ctx)
	case campaign.FieldPriority:
		return m.OldPriority(ctx)
	case campaign.FieldState:
		return m.OldState(ctx)
	case campaign.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campaign.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Campaign field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case campaign.FieldHashListID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashListID(v)
		return nil
	case campaign.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case campaign.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case campaign.FieldPriority:
		v, ok := value.(models.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case campaign.FieldState:
		v, ok := value.(campaign.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case campaign.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campaign.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampaignMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, campaign.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampaignMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case campaign.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampaignMutation) AddField(name string, value ent.Value) error {
	switch name {
	case campaign.FieldPriority:
		v, ok := value.(models.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown Campaign numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampaignMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(campaign.FieldDescription) {
		fields = append(fields, campaign.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampaignMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampaignMutation) ClearField(name string) error {
	switch name {
	case campaign.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Campaign nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampaignMutation) ResetField(name string) error {
	switch name {
	case campaign.FieldProjectID:
		m.ResetProjectID()
		return nil
	case campaign.FieldHashListID:
		m.ResetHashListID()
		return nil
	case campaign.FieldName:
		m.ResetName()
		return nil
	case campaign.FieldDescription:
		m.ResetDescription()
		return nil
	case campaign.FieldPriority:
		m.ResetPriority()
		return nil
	case campaign.FieldState:
		m.ResetState()
		return nil
	case campaign.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campaign.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Campaign field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampaignMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, campaign.EdgeProject)
	}
	if m.hash_list != nil {
		edges = append(edges, campaign.EdgeHashList)
	}
	if m.attacks != nil {
		edges = append(edges, campaign.EdgeAttacks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampaignMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case campaign.EdgeHashList:
		if id := m.hash_list; id != nil {
			return []ent.Value{*id}
		}
	case campaign.EdgeAttacks:
		ids := make([]ent.Value, 0, len(m.attacks))
		for id := range m.attacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampaignMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedattacks != nil {
		edges = append(edges, campaign.EdgeAttacks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampaignMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case campaign.EdgeAttacks:
		ids := make([]ent.Value, 0, len(m.removedattacks))
		for id := range m.removedattacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampaignMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, campaign.EdgeProject)
	}
	if m.clearedhash_list {
		edges = append(edges, campaign.EdgeHashList)
	}
	if m.clearedattacks {
		edges = append(edges, campaign.EdgeAttacks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampaignMutation) EdgeCleared(name string) bool {
	switch name {
	case campaign.EdgeProject:
		return m.clearedproject
	case campaign.EdgeHashList:
		return m.clearedhash_list
	case campaign.EdgeAttacks:
		return m.clearedattacks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampaignMutation) ClearEdge(name string) error {
	switch name {
	case campaign.EdgeProject:
		m.ClearProject()
		return nil
	case campaign.EdgeHashList:
		m.ClearHashList()
		return nil
	}
	return fmt.Errorf("unknown Campaign unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampaignMutation) ResetEdge(name string) error {
	switch name {
	case campaign.EdgeProject:
		m.ResetProject()
		return nil
	case campaign.EdgeHashList:
		m.ResetHashList()
		return nil
	case campaign.EdgeAttacks:
		m.ResetAttacks()
		return nil
	}
	return fmt.Errorf("unknown Campaign edge %s", name)
}

// CrackResultMutation represents an operation that mutates the CrackResult nodes in the graph.
type CrackResultMutation struct {
	config
	op            Op
	typ           string
	id            *int
	hash_value    *string
	plaintext     *string
	cracked_at    *time.Time
	clearedFields map[string]struct{}
	task          *int
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*CrackResult, error)
	predicates    []predicate.CrackResult
}

var _ ent.Mutation = (*CrackResultMutation)(nil)

// crackresultOption allows management of the mutation configuration using functional options.
type crackresultOption func(*CrackResultMutation)

// newCrackResultMutation creates new mutation for the CrackResult entity.
func newCrackResultMutation(c config, op Op, opts ...crackresultOption) *CrackResultMutation {
	m := &CrackResultMutation{
		config:        c,
		op:            op,
		typ:           TypeCrackResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCrackResultID sets the ID field of the mutation.
func withCrackResultID(id int) crackresultOption {
	return func(m *CrackResultMutation) {
		var (
			err   error
			once  sync.Once
			value *CrackResult
		)
		m.oldValue = func(ctx context.Context) (*CrackResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CrackResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCrackResult sets the old CrackResult of the mutation.
func withCrackResult(node *CrackResult) crackresultOption {
	return func(m *CrackResultMutation) {
		m.oldValue = func(context.Context) (*CrackResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CrackResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CrackResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CrackResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CrackResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CrackResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CrackResultMutation) SetTaskID(i int) {
	m.task = &i
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CrackResultMutation) TaskID() (r int, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CrackResult entity.
// If the CrackResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrackResultMutation) OldTaskID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CrackResultMutation) ResetTaskID() {
	m.task = nil
}

// SetHashValue sets the "hash_value" field.
func (m *CrackResultMutation) SetHashValue(s string) {
	m.hash_value = &s
}

// HashValue returns the value of the "hash_value" field in the mutation.
func (m *CrackResultMutation) HashValue() (r string, exists bool) {
	v := m.hash_value
	if v == nil {
		return
	}
	return *v, true
}

// OldHashValue returns the old "hash_value" field's value of the CrackResult entity.
// If the CrackResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrackResultMutation) OldHashValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashValue: %w", err)
	}
	return oldValue.HashValue, nil
}

// ResetHashValue resets all changes to the "hash_value" field.
func (m *CrackResultMutation) ResetHashValue() {
	m.hash_value = nil
}

// SetPlaintext sets the "plaintext" field.
func (m *CrackResultMutation) SetPlaintext(s string) {
	m.plaintext = &s
}

// Plaintext returns the value of the "plaintext" field in the mutation.
func (m *CrackResultMutation) Plaintext() (r string, exists bool) {
	v := m.plaintext
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaintext returns the old "plaintext" field's value of the CrackResult entity.
// If the CrackResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrackResultMutation) OldPlaintext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaintext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaintext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaintext: %w", err)
	}
	return oldValue.Plaintext, nil
}

// ResetPlaintext resets all changes to the "plaintext" field.
func (m *CrackResultMutation) ResetPlaintext() {
	m.plaintext = nil
}

// SetCrackedAt sets the "cracked_at" field.
func (m *CrackResultMutation) SetCrackedAt(t time.Time) {
	m.cracked_at = &t
}

// CrackedAt returns the value of the "cracked_at" field in the mutation.
func (m *CrackResultMutation) CrackedAt() (r time.Time, exists bool) {
	v := m.cracked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCrackedAt returns the old "cracked_at" field's value of the CrackResult entity.
// If the CrackResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrackResultMutation) OldCrackedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrackedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrackedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrackedAt: %w", err)
	}
	return oldValue.CrackedAt, nil
}

// ResetCrackedAt resets all changes to the "cracked_at" field.
func (m *CrackResultMutation) ResetCrackedAt() {
	m.cracked_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CrackResultMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[crackresult.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CrackResultMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CrackResultMutation) TaskIDs() (ids []int) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CrackResultMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CrackResultMutation builder.
func (m *CrackResultMutation) Where(ps ...predicate.CrackResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CrackResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CrackResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CrackResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CrackResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CrackResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CrackResult).
func (m *CrackResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CrackResultMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, crackresult.FieldTaskID)
	}
	if m.hash_value != nil {
		fields = append(fields, crackresult.FieldHashValue)
	}
	if m.plaintext != nil {
		fields = append(fields, crackresult.FieldPlaintext)
	}
	if m.cracked_at != nil {
		fields = append(fields, crackresult.FieldCrackedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CrackResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crackresult.FieldTaskID:
		return m.TaskID()
	case crackresult.FieldHashValue:
		return m.HashValue()
	case crackresult.FieldPlaintext:
		return m.Plaintext()
	case crackresult.FieldCrackedAt:
		return m.CrackedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CrackResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crackresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case crackresult.FieldHashValue:
		return m.OldHashValue(ctx)
	case crackresult.FieldPlaintext:
		return m.OldPlaintext(ctx)
	case crackresult.FieldCrackedAt:
		return m.OldCrackedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CrackResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CrackResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crackresult.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case crackresult.FieldHashValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashValue(v)
		return nil
	case crackresult.FieldPlaintext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaintext(v)
		return nil
	case crackresult.FieldCrackedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrackedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CrackResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CrackResultMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CrackResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CrackResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CrackResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CrackResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CrackResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CrackResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CrackResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CrackResultMutation) ResetField(name string) error {
	switch name {
	case crackresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case crackresult.FieldHashValue:
		m.ResetHashValue()
		return nil
	case crackresult.FieldPlaintext:
		m.ResetPlaintext()
		return nil
	case crackresult.FieldCrackedAt:
		m.ResetCrackedAt()
		return nil
	}
	return fmt.Errorf("unknown CrackResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CrackResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, crackresult.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CrackResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case crackresult.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CrackResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CrackResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CrackResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, crackresult.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CrackResultMutation) EdgeCleared(name string) bool {
	switch name {
	case crackresult.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CrackResultMutation) ClearEdge(name string) error {
	switch name {
	case crackresult.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CrackResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CrackResultMutation) ResetEdge(name string) error {
	switch name {
	case crackresult.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CrackResult edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	event_type    *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetEventType sets the "event_type" field.
func (m *EventMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.event_type != nil {
		fields = append(fields, event.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldChannel:
		return m.Channel()
	case event.FieldEventType:
		return m.EventType()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldEventType:
		return m.OldEventType(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldEventType:
		m.ResetEventType()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// HashItemMutation represents an operation that mutates the HashItem nodes in the graph.
type HashItemMutation struct {
	config
	op               Op
	typ              string
	id               *int
	hash_value       *string
	salt             *string
	plaintext        *string
	cracked_at       *time.Time
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	hash_list        *int
	clearedhash_list bool
	done             bool
	oldValue         func(context.Context) (*HashItem, error)
	predicates       []predicate.HashItem
}

var _ ent.Mutation = (*HashItemMutation)(nil)

// hashitemOption allows management of the mutation configuration using functional options.
type hashitemOption func(*HashItemMutation)

// newHashItemMutation creates new mutation for the HashItem entity.
func newHashItemMutation(c config, op Op, opts ...hashitemOption) *HashItemMutation {
	m := &HashItemMutation{
		config:        c,
		op:            op,
		typ:           TypeHashItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHashItemID sets the ID field of the mutation.
func withHashItemID(id int) hashitemOption {
	return func(m *HashItemMutation) {
		var (
			err   error
			once  sync.Once
			value *HashItem
		)
		m.oldValue = func(ctx context.Context) (*HashItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HashItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHashItem sets the old HashItem of the mutation.
func withHashItem(node *HashItem) hashitemOption {
	return func(m *HashItemMutation) {
		m.oldValue = func(context.Context) (*HashItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HashItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HashItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HashItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HashItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HashItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHashListID sets the "hash_list_id" field.
func (m *HashItemMutation) SetHashListID(i int) {
	m.hash_list = &i
}

// HashListID returns the value of the "hash_list_id" field in the mutation.
func (m *HashItemMutation) HashListID() (r int, exists bool) {
	v := m.hash_list
	if v == nil {
		return
	}
	return *v, true
}

// OldHashListID returns the old "hash_list_id" field's value of the HashItem entity.
// If the HashItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashItemMutation) OldHashListID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashListID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashListID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashListID: %w", err)
	}
	return oldValue.HashListID, nil
}

// ResetHashListID resets all changes to the "hash_list_id" field.
func (m *HashItemMutation) ResetHashListID() {
	m.hash_list = nil
}

// SetHashValue sets the "hash_value" field.
func (m *HashItemMutation) SetHashValue(s string) {
	m.hash_value = &s
}

// HashValue returns the value of the "hash_value" field in the mutation.
func (m *HashItemMutation) HashValue() (r string, exists bool) {
	v := m.hash_value
	if v == nil {
		return
	}
	return *v, true
}

// OldHashValue returns the old "hash_value" field's value of the HashItem entity.
// If the HashItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashItemMutation) OldHashValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashValue: %w", err)
	}
	return oldValue.HashValue, nil
}

// ResetHashValue resets all changes to the "hash_value" field.
func (m *HashItemMutation) ResetHashValue() {
	m.hash_value = nil
}

// SetSalt sets the "salt" field.
func (m *HashItemMutation) SetSalt(s string) {
	m.salt = &s
}

// Salt returns the value of the "salt" field in the mutation.
func (m *HashItemMutation) Salt() (r string, exists bool) {
	v := m.salt
	if v == nil {
		return
	}
	return *v, true
}

// OldSalt returns the old "salt" field's value of the HashItem entity.
// If the HashItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashItemMutation) OldSalt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSalt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSalt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSalt: %w", err)
	}
	return oldValue.Salt, nil
}

// ResetSalt resets all changes to the "salt" field.
func (m *HashItemMutation) ResetSalt() {
	m.salt = nil
}

// SetPlaintext sets the "plaintext" field.
func (m *HashItemMutation) SetPlaintext(s string) {
	m.plaintext = &s
}

// Plaintext returns the value of the "plaintext" field in the mutation.
func (m *HashItemMutation) Plaintext() (r string, exists bool) {
	v := m.plaintext
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaintext returns the old "plaintext" field's value of the HashItem entity.
// If the HashItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashItemMutation) OldPlaintext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaintext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaintext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaintext: %w", err)
	}
	return oldValue.Plaintext, nil
}

// ClearPlaintext clears the value of the "plaintext" field.
func (m *HashItemMutation) ClearPlaintext() {
	m.plaintext = nil
	m.clearedFields[hashitem.FieldPlaintext] = struct{}{}
}

// PlaintextCleared returns if the "plaintext" field was cleared in this mutation.
func (m *HashItemMutation) PlaintextCleared() bool {
	_, ok := m.clearedFields[hashitem.FieldPlaintext]
	return ok
}

// ResetPlaintext resets all changes to the "plaintext" field.
func (m *HashItemMutation) ResetPlaintext() {
	m.plaintext = nil
	delete(m.clearedFields, hashitem.FieldPlaintext)
}

// SetCrackedAt sets the "cracked_at" field.
func (m *HashItemMutation) SetCrackedAt(t time.Time) {
	m.cracked_at = &t
}

// CrackedAt returns the value of the "cracked_at" field in the mutation.
func (m *HashItemMutation) CrackedAt() (r time.Time, exists bool) {
	v := m.cracked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCrackedAt returns the old "cracked_at" field's value of the HashItem entity.
// If the HashItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashItemMutation) OldCrackedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCrackedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCrackedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCrackedAt: %w", err)
	}
	return oldValue.CrackedAt, nil
}

// ClearCrackedAt clears the value of the "cracked_at" field.
func (m *HashItemMutation) ClearCrackedAt() {
	m.cracked_at = nil
	m.clearedFields[hashitem.FieldCrackedAt] = struct{}{}
}

// CrackedAtCleared returns if the "cracked_at" field was cleared in this mutation.
func (m *HashItemMutation) CrackedAtCleared() bool {
	_, ok := m.clearedFields[hashitem.FieldCrackedAt]
	return ok
}

// ResetCrackedAt resets all changes to the "cracked_at" field.
func (m *HashItemMutation) ResetCrackedAt() {
	m.cracked_at = nil
	delete(m.clearedFields, hashitem.FieldCrackedAt)
}

// SetMetadata sets the "metadata" field.
func (m *HashItemMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *HashItemMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the HashItem entity.
// If the HashItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashItemMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *HashItemMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[hashitem.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *HashItemMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[hashitem.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *HashItemMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, hashitem.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *HashItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HashItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HashItem entity.
// If the HashItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HashItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearHashList clears the "hash_list" edge to the HashList entity.
func (m *HashItemMutation) ClearHashList() {
	m.clearedhash_list = true
	m.clearedFields[hashitem.FieldHashListID] = struct{}{}
}

// HashListCleared reports if the "hash_list" edge to the HashList entity was cleared.
func (m *HashItemMutation) HashListCleared() bool {
	return m.clearedhash_list
}

// HashListIDs returns the "hash_list" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HashListID instead. It exists only for internal usage by the builders.
func (m *HashItemMutation) HashListIDs() (ids []int) {
	if id := m.hash_list; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHashList resets all changes to the "hash_list" edge.
func (m *HashItemMutation) ResetHashList() {
	m.hash_list = nil
	m.clearedhash_list = false
}

// Where appends a list predicates to the HashItemMutation builder.
func (m *HashItemMutation) Where(ps ...predicate.HashItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HashItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HashItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HashItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HashItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HashItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HashItem).
func (m *HashItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HashItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.hash_list != nil {
		fields = append(fields, hashitem.FieldHashListID)
	}
	if m.hash_value != nil {
		fields = append(fields, hashitem.FieldHashValue)
	}
	if m.salt != nil {
		fields = append(fields, hashitem.FieldSalt)
	}
	if m.plaintext != nil {
		fields = append(fields, hashitem.FieldPlaintext)
	}
	if m.cracked_at != nil {
		fields = append(fields, hashitem.FieldCrackedAt)
	}
	if m.metadata != nil {
		fields = append(fields, hashitem.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, hashitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HashItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hashitem.FieldHashListID:
		return m.HashListID()
	case hashitem.FieldHashValue:
		return m.HashValue()
	case hashitem.FieldSalt:
		return m.Salt()
	case hashitem.FieldPlaintext:
		return m.Plaintext()
	case hashitem.FieldCrackedAt:
		return m.CrackedAt()
	case hashitem.FieldMetadata:
		return m.Metadata()
	case hashitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HashItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hashitem.FieldHashListID:
		return m.OldHashListID(ctx)
	case hashitem.FieldHashValue:
		return m.OldHashValue(ctx)
	case hashitem.FieldSalt:
		return m.OldSalt(ctx)
	case hashitem.FieldPlaintext:
		return m.OldPlaintext(ctx)
	case hashitem.FieldCrackedAt:
		return m.OldCrackedAt(ctx)
	case hashitem.FieldMetadata:
		return m.OldMetadata(ctx)
	case hashitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HashItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HashItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hashitem.FieldHashListID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashListID(v)
		return nil
	case hashitem.FieldHashValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashValue(v)
		return nil
	case hashitem.FieldSalt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSalt(v)
		return nil
	case hashitem.FieldPlaintext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaintext(v)
		return nil
	case hashitem.FieldCrackedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCrackedAt(v)
		return nil
	case hashitem.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case hashitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HashItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HashItemMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HashItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HashItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown HashItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HashItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hashitem.FieldPlaintext) {
		fields = append(fields, hashitem.FieldPlaintext)
	}
	if m.FieldCleared(hashitem.FieldCrackedAt) {
		fields = append(fields, hashitem.FieldCrackedAt)
	}
	if m.FieldCleared(hashitem.FieldMetadata) {
		fields = append(fields, hashitem.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HashItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HashItemMutation) ClearField(name string) error {
	switch name {
	case hashitem.FieldPlaintext:
		m.ClearPlaintext()
		return nil
	case hashitem.FieldCrackedAt:
		m.ClearCrackedAt()
		return nil
	case hashitem.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown HashItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HashItemMutation) ResetField(name string) error {
	switch name {
	case hashitem.FieldHashListID:
		m.ResetHashListID()
		return nil
	case hashitem.FieldHashValue:
		m.ResetHashValue()
		return nil
	case hashitem.FieldSalt:
		m.ResetSalt()
		return nil
	case hashitem.FieldPlaintext:
		m.ResetPlaintext()
		return nil
	case hashitem.FieldCrackedAt:
		m.ResetCrackedAt()
		return nil
	case hashitem.FieldMetadata:
		m.ResetMetadata()
		return nil
	case hashitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown HashItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HashItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.hash_list != nil {
		edges = append(edges, hashitem.EdgeHashList)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HashItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hashitem.EdgeHashList:
		if id := m.hash_list; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HashItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HashItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HashItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedhash_list {
		edges = append(edges, hashitem.EdgeHashList)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HashItemMutation) EdgeCleared(name string) bool {
	switch name {
	case hashitem.EdgeHashList:
		return m.clearedhash_list
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HashItemMutation) ClearEdge(name string) error {
	switch name {
	case hashitem.EdgeHashList:
		m.ClearHashList()
		return nil
	}
	return fmt.Errorf("unknown HashItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HashItemMutation) ResetEdge(name string) error {
	switch name {
	case hashitem.EdgeHashList:
		m.ResetHashList()
		return nil
	}
	return fmt.Errorf("unknown HashItem edge %s", name)
}

// HashListMutation represents an operation that mutates the HashList nodes in the graph.
type HashListMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	name               *string
	description        *string
	hash_type_id       *int
	addhash_type_id    *int
	separator          *string
	item_count         *int64
	additem_count      *int64
	uncracked_count    *int64
	adduncracked_count *int64
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	project            *int
	clearedproject     bool
	items              map[int]struct{}
	removeditems       map[int]struct{}
	cleareditems       bool
	campaigns          map[int]struct{}
	removedcampaigns   map[int]struct{}
	clearedcampaigns   bool
	done               bool
	oldValue           func(context.Context) (*HashList, error)
	predicates         []predicate.HashList
}

var _ ent.Mutation = (*HashListMutation)(nil)

// hashlistOption allows management of the mutation configuration using functional options.
type hashlistOption func(*HashListMutation)

// newHashListMutation creates new mutation for the HashList entity.
func newHashListMutation(c config, op Op, opts ...hashlistOption) *HashListMutation {
	m := &HashListMutation{
		config:        c,
		op:            op,
		typ:           TypeHashList,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHashListID sets the ID field of the mutation.
func withHashListID(id int) hashlistOption {
	return func(m *HashListMutation) {
		var (
			err   error
			once  sync.Once
			value *HashList
		)
		m.oldValue = func(ctx context.Context) (*HashList, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HashList.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHashList sets the old HashList of the mutation.
func withHashList(node *HashList) hashlistOption {
	return func(m *HashListMutation) {
		m.oldValue = func(context.Context) (*HashList, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HashListMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HashListMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HashListMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HashListMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HashList.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *HashListMutation) SetProjectID(i int) {
	m.project = &i
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *HashListMutation) ProjectID() (r int, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldProjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *HashListMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *HashListMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *HashListMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *HashListMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *HashListMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *HashListMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *HashListMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[hashlist.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *HashListMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[hashlist.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *HashListMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, hashlist.FieldDescription)
}

// SetHashTypeID sets the "hash_type_id" field.
func (m *HashListMutation) SetHashTypeID(i int) {
	m.hash_type_id = &i
	m.addhash_type_id = nil
}

// HashTypeID returns the value of the "hash_type_id" field in the mutation.
func (m *HashListMutation) HashTypeID() (r int, exists bool) {
	v := m.hash_type_id
	if v == nil {
		return
	}
	return *v, true
}

// OldHashTypeID returns the old "hash_type_id" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldHashTypeID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashTypeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashTypeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashTypeID: %w", err)
	}
	return oldValue.HashTypeID, nil
}

// AddHashTypeID adds i to the "hash_type_id" field.
func (m *HashListMutation) AddHashTypeID(i int) {
	if m.addhash_type_id != nil {
		*m.addhash_type_id += i
	} else {
		m.addhash_type_id = &i
	}
}

// AddedHashTypeID returns the value that was added to the "hash_type_id" field in this mutation.
func (m *HashListMutation) AddedHashTypeID() (r int, exists bool) {
	v := m.addhash_type_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetHashTypeID resets all changes to the "hash_type_id" field.
func (m *HashListMutation) ResetHashTypeID() {
	m.hash_type_id = nil
	m.addhash_type_id = nil
}

// SetSeparator sets the "separator" field.
func (m *HashListMutation) SetSeparator(s string) {
	m.separator = &s
}

// Separator returns the value of the "separator" field in the mutation.
func (m *HashListMutation) Separator() (r string, exists bool) {
	v := m.separator
	if v == nil {
		return
	}
	return *v, true
}

// OldSeparator returns the old "separator" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldSeparator(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeparator is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeparator requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeparator: %w", err)
	}
	return oldValue.Separator, nil
}

// ResetSeparator resets all changes to the "separator" field.
func (m *HashListMutation) ResetSeparator() {
	m.separator = nil
}

// SetItemCount sets the "item_count" field.
func (m *HashListMutation) SetItemCount(i int64) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *HashListMutation) ItemCount() (r int64, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldItemCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *HashListMutation) AddItemCount(i int64) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *HashListMutation) AddedItemCount() (r int64, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *HashListMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetUncrackedCount sets the "uncracked_count" field.
func (m *HashListMutation) SetUncrackedCount(i int64) {
	m.uncracked_count = &i
	m.adduncracked_count = nil
}

// UncrackedCount returns the value of the "uncracked_count" field in the mutation.
func (m *HashListMutation) UncrackedCount() (r int64, exists bool) {
	v := m.uncracked_count
	if v == nil {
		return
	}
	return *v, true
}

// OldUncrackedCount returns the old "uncracked_count" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldUncrackedCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUncrackedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUncrackedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUncrackedCount: %w", err)
	}
	return oldValue.UncrackedCount, nil
}

// AddUncrackedCount adds i to the "uncracked_count" field.
func (m *HashListMutation) AddUncrackedCount(i int64) {
	if m.adduncracked_count != nil {
		*m.adduncracked_count += i
	} else {
		m.adduncracked_count = &i
	}
}

// AddedUncrackedCount returns the value that was added to the "uncracked_count" field in this mutation.
func (m *HashListMutation) AddedUncrackedCount() (r int64, exists bool) {
	v := m.adduncracked_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetUncrackedCount resets all changes to the "uncracked_count" field.
func (m *HashListMutation) ResetUncrackedCount() {
	m.uncracked_count = nil
	m.adduncracked_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *HashListMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HashListMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HashListMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *HashListMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *HashListMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the HashList entity.
// If the HashList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashListMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *HashListMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *HashListMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[hashlist.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *HashListMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *HashListMutation) ProjectIDs() (ids []int) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *HashListMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddItemIDs adds the "items" edge to the HashItem entity by ids.
func (m *HashListMutation) AddItemIDs(ids ...int) {
	if m.items == nil {
		m.items = make(map[int]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the HashItem entity.
func (m *HashListMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the HashItem entity was cleared.
func (m *HashListMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the HashItem entity by IDs.
func (m *HashListMutation) RemoveItemIDs(ids ...int) {
	if m.removeditems == nil {
		m.removeditems = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the HashItem entity.
func (m *HashListMutation) RemovedItemsIDs() (ids []int) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *HashListMutation) ItemsIDs() (ids []int) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *HashListMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by ids.
func (m *HashListMutation) AddCampaignIDs(ids ...int) {
	if m.campaigns == nil {
		m.campaigns = make(map[int]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the Campaign entity.
func (m *HashListMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the Campaign entity was cleared.
func (m *HashListMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the Campaign entity by IDs.
func (m *HashListMutation) RemoveCampaignIDs(ids ...int) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the Campaign entity.
func (m *HashListMutation) RemovedCampaignsIDs() (ids []int) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *HashListMutation) CampaignsIDs() (ids []int) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *HashListMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// Where appends a list predicates to the HashListMutation builder.
func (m *HashListMutation) Where(ps ...predicate.HashList) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HashListMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HashListMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HashList, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HashListMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HashListMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HashList).
func (m *HashListMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HashListMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.project != nil {
		fields = append(fields, hashlist.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, hashlist.FieldName)
	}
	if m.description != nil {
		fields = append(fields, hashlist.FieldDescription)
	}
	if m.hash_type_id != nil {
		fields = append(fields, hashlist.FieldHashTypeID)
	}
	if m.separator != nil {
		fields = append(fields, hashlist.FieldSeparator)
	}
	if m.item_count != nil {
		fields = append(fields, hashlist.FieldItemCount)
	}
	if m.uncracked_count != nil {
		fields = append(fields, hashlist.FieldUncrackedCount)
	}
	if m.created_at != nil {
		fields = append(fields, hashlist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, hashlist.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HashListMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hashlist.FieldProjectID:
		return m.ProjectID()
	case hashlist.FieldName:
		return m.Name()
	case hashlist.FieldDescription:
		return m.Description()
	case hashlist.FieldHashTypeID:
		return m.HashTypeID()
	case hashlist.FieldSeparator:
		return m.Separator()
	case hashlist.FieldItemCount:
		return m.ItemCount()
	case hashlist.FieldUncrackedCount:
		return m.UncrackedCount()
	case hashlist.FieldCreatedAt:
		return m.CreatedAt()
	case hashlist.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HashListMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hashlist.FieldProjectID:
		return m.OldProjectID(ctx)
	case hashlist.FieldName:
		return m.OldName(ctx)
	case hashlist.FieldDescription:
		return m.OldDescription(ctx)
	case hashlist.FieldHashTypeID:
		return m.OldHashTypeID(ctx)
	case hashlist.FieldSeparator:
		return m.OldSeparator(ctx)
	case hashlist.FieldItemCount:
		return m.OldItemCount(ctx)
	case hashlist.FieldUncrackedCount:
		return m.OldUncrackedCount(ctx)
	case hashlist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case hashlist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HashList field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HashListMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hashlist.FieldProjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case hashlist.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case hashlist.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case hashlist.FieldHashTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashTypeID(v)
		return nil
	case hashlist.FieldSeparator:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeparator(v)
		return nil
	case hashlist.FieldItemCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case hashlist.FieldUncrackedCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUncrackedCount(v)
		return nil
	case hashlist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case hashlist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HashList field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HashListMutation) AddedFields() []string {
	var fields []string
	if m.addhash_type_id != nil {
		fields = append(fields, hashlist.FieldHashTypeID)
	}
	if m.additem_count != nil {
		fields = append(fields, hashlist.FieldItemCount)
	}
	if m.adduncracked_count != nil {
		fields = append(fields, hashlist.FieldUncrackedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HashListMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hashlist.FieldHashTypeID:
		return m.AddedHashTypeID()
	case hashlist.FieldItemCount:
		return m.AddedItemCount()
	case hashlist.FieldUncrackedCount:
		return m.AddedUncrackedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HashListMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hashlist.FieldHashTypeID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHashTypeID(v)
		return nil
	case hashlist.FieldItemCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	case hashlist.FieldUncrackedCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUncrackedCount(v)
		return nil
	}
	return fmt.Errorf("unknown HashList numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HashListMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hashlist.FieldDescription) {
		fields = append(fields, hashlist.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HashListMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HashListMutation) ClearField(name string) error {
	switch name {
	case hashlist.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown HashList nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HashListMutation) ResetField(name string) error {
	switch name {
	case hashlist.FieldProjectID:
		m.ResetProjectID()
		return nil
	case hashlist.FieldName:
		m.ResetName()
		return nil
	case hashlist.FieldDescription:
		m.ResetDescription()
		return nil
	case hashlist.FieldHashTypeID:
		m.ResetHashTypeID()
		return nil
	case hashlist.FieldSeparator:
		m.ResetSeparator()
		return nil
	case hashlist.FieldItemCount:
		m.ResetItemCount()
		return nil
	case hashlist.FieldUncrackedCount:
		m.ResetUncrackedCount()
		return nil
	case hashlist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case hashlist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown HashList field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HashListMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.project != nil {
		edges = append(edges, hashlist.EdgeProject)
	}
	if m.items != nil {
		edges = append(edges, hashlist.EdgeItems)
	}
	if m.campaigns != nil {
		edges = append(edges, hashlist.EdgeCampaigns)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HashListMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hashlist.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case hashlist.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case hashlist.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HashListMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeditems != nil {
		edges = append(edges, hashlist.EdgeItems)
	}
	if m.removedcampaigns != nil {
		edges = append(edges, hashlist.EdgeCampaigns)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HashListMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case hashlist.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case hashlist.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HashListMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedproject {
		edges = append(edges, hashlist.EdgeProject)
	}
	if m.cleareditems {
		edges = append(edges, hashlist.EdgeItems)
	}
	if m.clearedcampaigns {
		edges = append(edges, hashlist.EdgeCampaigns)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HashListMutation) EdgeCleared(name string) bool {
	switch name {
	case hashlist.EdgeProject:
		return m.clearedproject
	case hashlist.EdgeItems:
		return m.cleareditems
	case hashlist.EdgeCampaigns:
		return m.clearedcampaigns
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HashListMutation) ClearEdge(name string) error {
	switch name {
	case hashlist.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown HashList unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HashListMutation) ResetEdge(name string) error {
	switch name {
	case hashlist.EdgeProject:
		m.ResetProject()
		return nil
	case hashlist.EdgeItems:
		m.ResetItems()
		return nil
	case hashlist.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	}
	return fmt.Errorf("unknown HashList edge %s", name)
}

// HashcatStatusMutation represents an operation that mutates the HashcatStatus nodes in the graph.
type HashcatStatusMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	original_line          *string
	session                *string
	status_code            *int
	addstatus_code         *int
	target                 *string
	progress_done          *int64
	addprogress_done       *int64
	progress_total         *int64
	addprogress_total      *int64
	restore_point          *int64
	addrestore_point       *int64
	recovered_hashes       *[]int
	appendrecovered_hashes []int
	recovered_salts        *[]int
	appendrecovered_salts  []int
	rejected               *int64
	addrejected            *int64
	devices                *[]models.DeviceStatus
	appenddevices          []models.DeviceStatus
	hashcat_guess          *models.HashcatGuess
	time_start             *time.Time
	estimated_stop         *time.Time
	received_at            *time.Time
	clearedFields          map[string]struct{}
	task                   *int
	clearedtask            bool
	done                   bool
	oldValue               func(context.Context) (*HashcatStatus, error)
	predicates             []predicate.HashcatStatus
}

var _ ent.Mutation = (*HashcatStatusMutation)(nil)

// hashcatstatusOption allows management of the mutation configuration using functional options.
type hashcatstatusOption func(*HashcatStatusMutation)

// newHashcatStatusMutation creates new mutation for the HashcatStatus entity.
func newHashcatStatusMutation(c config, op Op, opts ...hashcatstatusOption) *HashcatStatusMutation {
	m := &HashcatStatusMutation{
		config:        c,
		op:            op,
		typ:           TypeHashcatStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHashcatStatusID sets the ID field of the mutation.
func withHashcatStatusID(id int) hashcatstatusOption {
	return func(m *HashcatStatusMutation) {
		var (
			err   error
			once  sync.Once
			value *HashcatStatus
		)
		m.oldValue = func(ctx context.Context) (*HashcatStatus, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HashcatStatus.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHashcatStatus sets the old HashcatStatus of the mutation.
func withHashcatStatus(node *HashcatStatus) hashcatstatusOption {
	return func(m *HashcatStatusMutation) {
		m.oldValue = func(context.Context) (*HashcatStatus, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HashcatStatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HashcatStatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HashcatStatusMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HashcatStatusMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HashcatStatus.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *HashcatStatusMutation) SetTaskID(i int) {
	m.task = &i
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *HashcatStatusMutation) TaskID() (r int, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldTaskID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *HashcatStatusMutation) ResetTaskID() {
	m.task = nil
}

// SetOriginalLine sets the "original_line" field.
func (m *HashcatStatusMutation) SetOriginalLine(s string) {
	m.original_line = &s
}

// OriginalLine returns the value of the "original_line" field in the mutation.
func (m *HashcatStatusMutation) OriginalLine() (r string, exists bool) {
	v := m.original_line
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalLine returns the old "original_line" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldOriginalLine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalLine: %w", err)
	}
	return oldValue.OriginalLine, nil
}

// ClearOriginalLine clears the value of the "original_line" field.
func (m *HashcatStatusMutation) ClearOriginalLine() {
	m.original_line = nil
	m.clearedFields[hashcatstatus.FieldOriginalLine] = struct{}{}
}

// OriginalLineCleared returns if the "original_line" field was cleared in this mutation.
func (m *HashcatStatusMutation) OriginalLineCleared() bool {
	_, ok := m.clearedFields[hashcatstatus.FieldOriginalLine]
	return ok
}

// ResetOriginalLine resets all changes to the "original_line" field.
func (m *HashcatStatusMutation) ResetOriginalLine() {
	m.original_line = nil
	delete(m.clearedFields, hashcatstatus.FieldOriginalLine)
}

// SetSession sets the "session" field.
func (m *HashcatStatusMutation) SetSession(s string) {
	m.session = &s
}

// Session returns the value of the "session" field in the mutation.
func (m *HashcatStatusMutation) Session() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSession returns the old "session" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldSession(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSession is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSession requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSession: %w", err)
	}
	return oldValue.Session, nil
}

// ResetSession resets all changes to the "session" field.
func (m *HashcatStatusMutation) ResetSession() {
	m.session = nil
}

// SetStatusCode sets the "status_code" field.
func (m *HashcatStatusMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *HashcatStatusMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldStatusCode(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *HashcatStatusMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *HashcatStatusMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *HashcatStatusMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
}

// SetTarget sets the "target" field.
func (m *HashcatStatusMutation) SetTarget(s string) {
	m.target = &s
}

// Target returns the value of the "target" field in the mutation.
func (m *HashcatStatusMutation) Target() (r string, exists bool) {
	v := m.target
	if v == nil {
		return
	}
	return *v, true
}

// OldTarget returns the old "target" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldTarget(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTarget is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTarget requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTarget: %w", err)
	}
	return oldValue.Target, nil
}

// ResetTarget resets all changes to the "target" field.
func (m *HashcatStatusMutation) ResetTarget() {
	m.target = nil
}

// SetProgressDone sets the "progress_done" field.
func (m *HashcatStatusMutation) SetProgressDone(i int64) {
	m.progress_done = &i
	m.addprogress_done = nil
}

// ProgressDone returns the value of the "progress_done" field in the mutation.
func (m *HashcatStatusMutation) ProgressDone() (r int64, exists bool) {
	v := m.progress_done
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressDone returns the old "progress_done" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldProgressDone(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressDone: %w", err)
	}
	return oldValue.ProgressDone, nil
}

// AddProgressDone adds i to the "progress_done" field.
func (m *HashcatStatusMutation) AddProgressDone(i int64) {
	if m.addprogress_done != nil {
		*m.addprogress_done += i
	} else {
		m.addprogress_done = &i
	}
}

// AddedProgressDone returns the value that was added to the "progress_done" field in this mutation.
func (m *HashcatStatusMutation) AddedProgressDone() (r int64, exists bool) {
	v := m.addprogress_done
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressDone resets all changes to the "progress_done" field.
func (m *HashcatStatusMutation) ResetProgressDone() {
	m.progress_done = nil
	m.addprogress_done = nil
}

// SetProgressTotal sets the "progress_total" field.
func (m *HashcatStatusMutation) SetProgressTotal(i int64) {
	m.progress_total = &i
	m.addprogress_total = nil
}

// ProgressTotal returns the value of the "progress_total" field in the mutation.
func (m *HashcatStatusMutation) ProgressTotal() (r int64, exists bool) {
	v := m.progress_total
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressTotal returns the old "progress_total" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldProgressTotal(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressTotal: %w", err)
	}
	return oldValue.ProgressTotal, nil
}

// AddProgressTotal adds i to the "progress_total" field.
func (m *HashcatStatusMutation) AddProgressTotal(i int64) {
	if m.addprogress_total != nil {
		*m.addprogress_total += i
	} else {
		m.addprogress_total = &i
	}
}

// AddedProgressTotal returns the value that was added to the "progress_total" field in this mutation.
func (m *HashcatStatusMutation) AddedProgressTotal() (r int64, exists bool) {
	v := m.addprogress_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressTotal resets all changes to the "progress_total" field.
func (m *HashcatStatusMutation) ResetProgressTotal() {
	m.progress_total = nil
	m.addprogress_total = nil
}

// SetRestorePoint sets the "restore_point" field.
func (m *HashcatStatusMutation) SetRestorePoint(i int64) {
	m.restore_point = &i
	m.addrestore_point = nil
}

// RestorePoint returns the value of the "restore_point" field in the mutation.
func (m *HashcatStatusMutation) RestorePoint() (r int64, exists bool) {
	v := m.restore_point
	if v == nil {
		return
	}
	return *v, true
}

// OldRestorePoint returns the old "restore_point" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldRestorePoint(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRestorePoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRestorePoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRestorePoint: %w", err)
	}
	return oldValue.RestorePoint, nil
}

// AddRestorePoint adds i to the "restore_point" field.
func (m *HashcatStatusMutation) AddRestorePoint(i int64) {
	if m.addrestore_point != nil {
		*m.addrestore_point += i
	} else {
		m.addrestore_point = &i
	}
}

// AddedRestorePoint returns the value that was added to the "restore_point" field in this mutation.
func (m *HashcatStatusMutation) AddedRestorePoint() (r int64, exists bool) {
	v := m.addrestore_point
	if v == nil {
		return
	}
	return *v, true
}

// ResetRestorePoint resets all changes to the "restore_point" field.
func (m *HashcatStatusMutation) ResetRestorePoint() {
	m.restore_point = nil
	m.addrestore_point = nil
}

// SetRecoveredHashes sets the "recovered_hashes" field.
func (m *HashcatStatusMutation) SetRecoveredHashes(i []int) {
	m.recovered_hashes = &i
	m.appendrecovered_hashes = nil
}

// RecoveredHashes returns the value of the "recovered_hashes" field in the mutation.
func (m *HashcatStatusMutation) RecoveredHashes() (r []int, exists bool) {
	v := m.recovered_hashes
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveredHashes returns the old "recovered_hashes" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldRecoveredHashes(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveredHashes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveredHashes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveredHashes: %w", err)
	}
	return oldValue.RecoveredHashes, nil
}

// AppendRecoveredHashes adds i to the "recovered_hashes" field.
func (m *HashcatStatusMutation) AppendRecoveredHashes(i []int) {
	m.appendrecovered_hashes = append(m.appendrecovered_hashes, i...)
}

// AppendedRecoveredHashes returns the list of values that were appended to the "recovered_hashes" field in this mutation.
func (m *HashcatStatusMutation) AppendedRecoveredHashes() ([]int, bool) {
	if len(m.appendrecovered_hashes) == 0 {
		return nil, false
	}
	return m.appendrecovered_hashes, true
}

// ClearRecoveredHashes clears the value of the "recovered_hashes" field.
func (m *HashcatStatusMutation) ClearRecoveredHashes() {
	m.recovered_hashes = nil
	m.appendrecovered_hashes = nil
	m.clearedFields[hashcatstatus.FieldRecoveredHashes] = struct{}{}
}

// RecoveredHashesCleared returns if the "recovered_hashes" field was cleared in this mutation.
func (m *HashcatStatusMutation) RecoveredHashesCleared() bool {
	_, ok := m.clearedFields[hashcatstatus.FieldRecoveredHashes]
	return ok
}

// ResetRecoveredHashes resets all changes to the "recovered_hashes" field.
func (m *HashcatStatusMutation) ResetRecoveredHashes() {
	m.recovered_hashes = nil
	m.appendrecovered_hashes = nil
	delete(m.clearedFields, hashcatstatus.FieldRecoveredHashes)
}

// SetRecoveredSalts sets the "recovered_salts" field.
func (m *HashcatStatusMutation) SetRecoveredSalts(i []int) {
	m.recovered_salts = &i
	m.appendrecovered_salts = nil
}

// RecoveredSalts returns the value of the "recovered_salts" field in the mutation.
func (m *HashcatStatusMutation) RecoveredSalts() (r []int, exists bool) {
	v := m.recovered_salts
	if v == nil {
		return
	}
	return *v, true
}

// OldRecoveredSalts returns the old "recovered_salts" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldRecoveredSalts(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecoveredSalts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecoveredSalts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecoveredSalts: %w", err)
	}
	return oldValue.RecoveredSalts, nil
}

// AppendRecoveredSalts adds i to the "recovered_salts" field.
func (m *HashcatStatusMutation) AppendRecoveredSalts(i []int) {
	m.appendrecovered_salts = append(m.appendrecovered_salts, i...)
}

// AppendedRecoveredSalts returns the list of values that were appended to the "recovered_salts" field in this mutation.
func (m *HashcatStatusMutation) AppendedRecoveredSalts() ([]int, bool) {
	if len(m.appendrecovered_salts) == 0 {
		return nil, false
	}
	return m.appendrecovered_salts, true
}

// ClearRecoveredSalts clears the value of the "recovered_salts" field.
func (m *HashcatStatusMutation) ClearRecoveredSalts() {
	m.recovered_salts = nil
	m.appendrecovered_salts = nil
	m.clearedFields[hashcatstatus.FieldRecoveredSalts] = struct{}{}
}

// RecoveredSaltsCleared returns if the "recovered_salts" field was cleared in this mutation.
func (m *HashcatStatusMutation) RecoveredSaltsCleared() bool {
	_, ok := m.clearedFields[hashcatstatus.FieldRecoveredSalts]
	return ok
}

// ResetRecoveredSalts resets all changes to the "recovered_salts" field.
func (m *HashcatStatusMutation) ResetRecoveredSalts() {
	m.recovered_salts = nil
	m.appendrecovered_salts = nil
	delete(m.clearedFields, hashcatstatus.FieldRecoveredSalts)
}

// SetRejected sets the "rejected" field.
func (m *HashcatStatusMutation) SetRejected(i int64) {
	m.rejected = &i
	m.addrejected = nil
}

// Rejected returns the value of the "rejected" field in the mutation.
func (m *HashcatStatusMutation) Rejected() (r int64, exists bool) {
	v := m.rejected
	if v == nil {
		return
	}
	return *v, true
}

// OldRejected returns the old "rejected" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldRejected(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRejected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRejected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRejected: %w", err)
	}
	return oldValue.Rejected, nil
}

// AddRejected adds i to the "rejected" field.
func (m *HashcatStatusMutation) AddRejected(i int64) {
	if m.addrejected != nil {
		*m.addrejected += i
	} else {
		m.addrejected = &i
	}
}

// AddedRejected returns the value that was added to the "rejected" field in this mutation.
func (m *HashcatStatusMutation) AddedRejected() (r int64, exists bool) {
	v := m.addrejected
	if v == nil {
		return
	}
	return *v, true
}

// ResetRejected resets all changes to the "rejected" field.
func (m *HashcatStatusMutation) ResetRejected() {
	m.rejected = nil
	m.addrejected = nil
}

// SetDevices sets the "devices" field.
func (m *HashcatStatusMutation) SetDevices(ms []models.DeviceStatus) {
	m.devices = &ms
	m.appenddevices = nil
}

// Devices returns the value of the "devices" field in the mutation.
func (m *HashcatStatusMutation) Devices() (r []models.DeviceStatus, exists bool) {
	v := m.devices
	if v == nil {
		return
	}
	return *v, true
}

// OldDevices returns the old "devices" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldDevices(ctx context.Context) (v []models.DeviceStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDevices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDevices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDevices: %w", err)
	}
	return oldValue.Devices, nil
}

// AppendDevices adds ms to the "devices" field.
func (m *HashcatStatusMutation) AppendDevices(ms []models.DeviceStatus) {
	m.appenddevices = append(m.appenddevices, ms...)
}

// AppendedDevices returns the list of values that were appended to the "devices" field in this mutation.
func (m *HashcatStatusMutation) AppendedDevices() ([]models.DeviceStatus, bool) {
	if len(m.appenddevices) == 0 {
		return nil, false
	}
	return m.appenddevices, true
}

// ClearDevices clears the value of the "devices" field.
func (m *HashcatStatusMutation) ClearDevices() {
	m.devices = nil
	m.appenddevices = nil
	m.clearedFields[hashcatstatus.FieldDevices] = struct{}{}
}

// DevicesCleared returns if the "devices" field was cleared in this mutation.
func (m *HashcatStatusMutation) DevicesCleared() bool {
	_, ok := m.clearedFields[hashcatstatus.FieldDevices]
	return ok
}

// ResetDevices resets all changes to the "devices" field.
func (m *HashcatStatusMutation) ResetDevices() {
	m.devices = nil
	m.appenddevices = nil
	delete(m.clearedFields, hashcatstatus.FieldDevices)
}

// SetHashcatGuess sets the "hashcat_guess" field.
func (m *HashcatStatusMutation) SetHashcatGuess(mg models.HashcatGuess) {
	m.hashcat_guess = &mg
}

// HashcatGuess returns the value of the "hashcat_guess" field in the mutation.
func (m *HashcatStatusMutation) HashcatGuess() (r models.HashcatGuess, exists bool) {
	v := m.hashcat_guess
	if v == nil {
		return
	}
	return *v, true
}

// OldHashcatGuess returns the old "hashcat_guess" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldHashcatGuess(ctx context.Context) (v models.HashcatGuess, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashcatGuess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashcatGuess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashcatGuess: %w", err)
	}
	return oldValue.HashcatGuess, nil
}

// ClearHashcatGuess clears the value of the "hashcat_guess" field.
func (m *HashcatStatusMutation) ClearHashcatGuess() {
	m.hashcat_guess = nil
	m.clearedFields[hashcatstatus.FieldHashcatGuess] = struct{}{}
}

// HashcatGuessCleared returns if the "hashcat_guess" field was cleared in this mutation.
func (m *HashcatStatusMutation) HashcatGuessCleared() bool {
	_, ok := m.clearedFields[hashcatstatus.FieldHashcatGuess]
	return ok
}

// ResetHashcatGuess resets all changes to the "hashcat_guess" field.
func (m *HashcatStatusMutation) ResetHashcatGuess() {
	m.hashcat_guess = nil
	delete(m.clearedFields, hashcatstatus.FieldHashcatGuess)
}

// SetTimeStart sets the "time_start" field.
func (m *HashcatStatusMutation) SetTimeStart(t time.Time) {
	m.time_start = &t
}

// TimeStart returns the value of the "time_start" field in the mutation.
func (m *HashcatStatusMutation) TimeStart() (r time.Time, exists bool) {
	v := m.time_start
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeStart returns the old "time_start" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldTimeStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeStart: %w", err)
	}
	return oldValue.TimeStart, nil
}

// ClearTimeStart clears the value of the "time_start" field.
func (m *HashcatStatusMutation) ClearTimeStart() {
	m.time_start = nil
	m.clearedFields[hashcatstatus.FieldTimeStart] = struct{}{}
}

// TimeStartCleared returns if the "time_start" field was cleared in this mutation.
func (m *HashcatStatusMutation) TimeStartCleared() bool {
	_, ok := m.clearedFields[hashcatstatus.FieldTimeStart]
	return ok
}

// ResetTimeStart resets all changes to the "time_start" field.
func (m *HashcatStatusMutation) ResetTimeStart() {
	m.time_start = nil
	delete(m.clearedFields, hashcatstatus.FieldTimeStart)
}

// SetEstimatedStop sets the "estimated_stop" field.
func (m *HashcatStatusMutation) SetEstimatedStop(t time.Time) {
	m.estimated_stop = &t
}

// EstimatedStop returns the value of the "estimated_stop" field in the mutation.
func (m *HashcatStatusMutation) EstimatedStop() (r time.Time, exists bool) {
	v := m.estimated_stop
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedStop returns the old "estimated_stop" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldEstimatedStop(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedStop is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedStop requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedStop: %w", err)
	}
	return oldValue.EstimatedStop, nil
}

// ClearEstimatedStop clears the value of the "estimated_stop" field.
func (m *HashcatStatusMutation) ClearEstimatedStop() {
	m.estimated_stop = nil
	m.clearedFields[hashcatstatus.FieldEstimatedStop] = struct{}{}
}

// EstimatedStopCleared returns if the "estimated_stop" field was cleared in this mutation.
func (m *HashcatStatusMutation) EstimatedStopCleared() bool {
	_, ok := m.clearedFields[hashcatstatus.FieldEstimatedStop]
	return ok
}

// ResetEstimatedStop resets all changes to the "estimated_stop" field.
func (m *HashcatStatusMutation) ResetEstimatedStop() {
	m.estimated_stop = nil
	delete(m.clearedFields, hashcatstatus.FieldEstimatedStop)
}

// SetReceivedAt sets the "received_at" field.
func (m *HashcatStatusMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *HashcatStatusMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the HashcatStatus entity.
// If the HashcatStatus object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HashcatStatusMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *HashcatStatusMutation) ResetReceivedAt() {
	m.received_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *HashcatStatusMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[hashcatstatus.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *HashcatStatusMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *HashcatStatusMutation) TaskIDs() (ids []int) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *HashcatStatusMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the HashcatStatusMutation builder.
func (m *HashcatStatusMutation) Where(ps ...predicate.HashcatStatus) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HashcatStatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HashcatStatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HashcatStatus, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HashcatStatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HashcatStatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HashcatStatus).
func (m *HashcatStatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HashcatStatusMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.task != nil {
		fields = append(fields, hashcatstatus.FieldTaskID)
	}
	if m.original_line != nil {
		fields = append(fields, hashcatstatus.FieldOriginalLine)
	}
	if m.session != nil {
		fields = append(fields, hashcatstatus.FieldSession)
	}
	if m.status_code != nil {
		fields = append(fields, hashcatstatus.FieldStatusCode)
	}
	if m.target != nil {
		fields = append(fields, hashcatstatus.FieldTarget)
	}
	if m.progress_done != nil {
		fields = append(fields, hashcatstatus.FieldProgressDone)
	}
	if m.progress_total != nil {
		fields = append(fields, hashcatstatus.FieldProgressTotal)
	}
	if m.restore_point != nil {
		fields = append(fields, hashcatstatus.FieldRestorePoint)
	}
	if m.recovered_hashes != nil {
		fields = append(fields, hashcatstatus.FieldRecoveredHashes)
	}
	if m.recovered_salts != nil {
		fields = append(fields, hashcatstatus.FieldRecoveredSalts)
	}
	if m.rejected != nil {
		fields = append(fields, hashcatstatus.FieldRejected)
	}
	if m.devices != nil {
		fields = append(fields, hashcatstatus.FieldDevices)
	}
	if m.hashcat_guess != nil {
		fields = append(fields, hashcatstatus.FieldHashcatGuess)
	}
	if m.time_start != nil {
		fields = append(fields, hashcatstatus.FieldTimeStart)
	}
	if m.estimated_stop != nil {
		fields = append(fields, hashcatstatus.FieldEstimatedStop)
	}
	if m.received_at != nil {
		fields = append(fields, hashcatstatus.FieldReceivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HashcatStatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case hashcatstatus.FieldTaskID:
		return m.TaskID()
	case hashcatstatus.FieldOriginalLine:
		return m.OriginalLine()
	case hashcatstatus.FieldSession:
		return m.Session()
	case hashcatstatus.FieldStatusCode:
		return m.StatusCode()
	case hashcatstatus.FieldTarget:
		return m.Target()
	case hashcatstatus.FieldProgressDone:
		return m.ProgressDone()
	case hashcatstatus.FieldProgressTotal:
		return m.ProgressTotal()
	case hashcatstatus.FieldRestorePoint:
		return m.RestorePoint()
	case hashcatstatus.FieldRecoveredHashes:
		return m.RecoveredHashes()
	case hashcatstatus.FieldRecoveredSalts:
		return m.RecoveredSalts()
	case hashcatstatus.FieldRejected:
		return m.Rejected()
	case hashcatstatus.FieldDevices:
		return m.Devices()
	case hashcatstatus.FieldHashcatGuess:
		return m.HashcatGuess()
	case hashcatstatus.FieldTimeStart:
		return m.TimeStart()
	case hashcatstatus.FieldEstimatedStop:
		return m.EstimatedStop()
	case hashcatstatus.FieldReceivedAt:
		return m.ReceivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HashcatStatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case hashcatstatus.FieldTaskID:
		return m.OldTaskID(ctx)
	case hashcatstatus.FieldOriginalLine:
		return m.OldOriginalLine(ctx)
	case hashcatstatus.FieldSession:
		return m.OldSession(ctx)
	case hashcatstatus.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case hashcatstatus.FieldTarget:
		return m.OldTarget(ctx)
	case hashcatstatus.FieldProgressDone:
		return m.OldProgressDone(ctx)
	case hashcatstatus.FieldProgressTotal:
		return m.OldProgressTotal(ctx)
	case hashcatstatus.FieldRestorePoint:
		return m.OldRestorePoint(ctx)
	case hashcatstatus.FieldRecoveredHashes:
		return m.OldRecoveredHashes(ctx)
	case hashcatstatus.FieldRecoveredSalts:
		return m.OldRecoveredSalts(ctx)
	case hashcatstatus.FieldRejected:
		return m.OldRejected(ctx)
	case hashcatstatus.FieldDevices:
		return m.OldDevices(ctx)
	case hashcatstatus.FieldHashcatGuess:
		return m.OldHashcatGuess(ctx)
	case hashcatstatus.FieldTimeStart:
		return m.OldTimeStart(ctx)
	case hashcatstatus.FieldEstimatedStop:
		return m.OldEstimatedStop(ctx)
	case hashcatstatus.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HashcatStatus field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HashcatStatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case hashcatstatus.FieldTaskID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case hashcatstatus.FieldOriginalLine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalLine(v)
		return nil
	case hashcatstatus.FieldSession:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSession(v)
		return nil
	case hashcatstatus.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case hashcatstatus.FieldTarget:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTarget(v)
		return nil
	case hashcatstatus.FieldProgressDone:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressDone(v)
		return nil
	case hashcatstatus.FieldProgressTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressTotal(v)
		return nil
	case hashcatstatus.FieldRestorePoint:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRestorePoint(v)
		return nil
	case hashcatstatus.FieldRecoveredHashes:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveredHashes(v)
		return nil
	case hashcatstatus.FieldRecoveredSalts:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecoveredSalts(v)
		return nil
	case hashcatstatus.FieldRejected:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRejected(v)
		return nil
	case hashcatstatus.FieldDevices:
		v, ok := value.([]models.DeviceStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDevices(v)
		return nil
	case hashcatstatus.FieldHashcatGuess:
		v, ok := value.(models.HashcatGuess)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashcatGuess(v)
		return nil
	case hashcatstatus.FieldTimeStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeStart(v)
		return nil
	case hashcatstatus.FieldEstimatedStop:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedStop(v)
		return nil
	case hashcatstatus.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HashcatStatus field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HashcatStatusMutation) AddedFields() []string {
	var fields []string
	if m.addstatus_code != nil {
		fields = append(fields, hashcatstatus.FieldStatusCode)
	}
	if m.addprogress_done != nil {
		fields = append(fields, hashcatstatus.FieldProgressDone)
	}
	if m.addprogress_total != nil {
		fields = append(fields, hashcatstatus.FieldProgressTotal)
	}
	if m.addrestore_point != nil {
		fields = append(fields, hashcatstatus.FieldRestorePoint)
	}
	if m.addrejected != nil {
		fields = append(fields, hashcatstatus.FieldRejected)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HashcatStatusMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case hashcatstatus.FieldStatusCode:
		return m.AddedStatusCode()
	case hashcatstatus.FieldProgressDone:
		return m.AddedProgressDone()
	case hashcatstatus.FieldProgressTotal:
		return m.AddedProgressTotal()
	case hashcatstatus.FieldRestorePoint:
		return m.AddedRestorePoint()
	case hashcatstatus.FieldRejected:
		return m.AddedRejected()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HashcatStatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	case hashcatstatus.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case hashcatstatus.FieldProgressDone:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressDone(v)
		return nil
	case hashcatstatus.FieldProgressTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressTotal(v)
		return nil
	case hashcatstatus.FieldRestorePoint:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRestorePoint(v)
		return nil
	case hashcatstatus.FieldRejected:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRejected(v)
		return nil
	}
	return fmt.Errorf("unknown HashcatStatus numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HashcatStatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(hashcatstatus.FieldOriginalLine) {
		fields = append(fields, hashcatstatus.FieldOriginalLine)
	}
	if m.FieldCleared(hashcatstatus.FieldRecoveredHashes) {
		fields = append(fields, hashcatstatus.FieldRecoveredHashes)
	}
	if m.FieldCleared(hashcatstatus.FieldRecoveredSalts) {
		fields = append(fields, hashcatstatus.FieldRecoveredSalts)
	}
	if m.FieldCleared(hashcatstatus.FieldDevices) {
		fields = append(fields, hashcatstatus.FieldDevices)
	}
	if m.FieldCleared(hashcatstatus.FieldHashcatGuess) {
		fields = append(fields, hashcatstatus.FieldHashcatGuess)
	}
	if m.FieldCleared(hashcatstatus.FieldTimeStart) {
		fields = append(fields, hashcatstatus.FieldTimeStart)
	}
	if m.FieldCleared(hashcatstatus.FieldEstimatedStop) {
		fields = append(fields, hashcatstatus.FieldEstimatedStop)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HashcatStatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HashcatStatusMutation) ClearField(name string) error {
	switch name {
	case hashcatstatus.FieldOriginalLine:
		m.ClearOriginalLine()
		return nil
	case hashcatstatus.FieldRecoveredHashes:
		m.ClearRecoveredHashes()
		return nil
	case hashcatstatus.FieldRecoveredSalts:
		m.ClearRecoveredSalts()
		return nil
	case hashcatstatus.FieldDevices:
		m.ClearDevices()
		return nil
	case hashcatstatus.FieldHashcatGuess:
		m.ClearHashcatGuess()
		return nil
	case hashcatstatus.FieldTimeStart:
		m.ClearTimeStart()
		return nil
	case hashcatstatus.FieldEstimatedStop:
		m.ClearEstimatedStop()
		return nil
	}
	return fmt.Errorf("unknown HashcatStatus nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HashcatStatusMutation) ResetField(name string) error {
	switch name {
	case hashcatstatus.FieldTaskID:
		m.ResetTaskID()
		return nil
	case hashcatstatus.FieldOriginalLine:
		m.ResetOriginalLine()
		return nil
	case hashcatstatus.FieldSession:
		m.ResetSession()
		return nil
	case hashcatstatus.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case hashcatstatus.FieldTarget:
		m.ResetTarget()
		return nil
	case hashcatstatus.FieldProgressDone:
		m.ResetProgressDone()
		return nil
	case hashcatstatus.FieldProgressTotal:
		m.ResetProgressTotal()
		return nil
	case hashcatstatus.FieldRestorePoint:
		m.ResetRestorePoint()
		return nil
	case hashcatstatus.FieldRecoveredHashes:
		m.ResetRecoveredHashes()
		return nil
	case hashcatstatus.FieldRecoveredSalts:
		m.ResetRecoveredSalts()
		return nil
	case hashcatstatus.FieldRejected:
		m.ResetRejected()
		return nil
	case hashcatstatus.FieldDevices:
		m.ResetDevices()
		return nil
	case hashcatstatus.FieldHashcatGuess:
		m.ResetHashcatGuess()
		return nil
	case hashcatstatus.FieldTimeStart:
		m.ResetTimeStart()
		return nil
	case hashcatstatus.FieldEstimatedStop:
		m.ResetEstimatedStop()
		return nil
	case hashcatstatus.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	}
	return fmt.Errorf("unknown HashcatStatus field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HashcatStatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, hashcatstatus.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HashcatStatusMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case hashcatstatus.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HashcatStatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HashcatStatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HashcatStatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, hashcatstatus.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HashcatStatusMutation) EdgeCleared(name string) bool {
	switch name {
	case hashcatstatus.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HashcatStatusMutation) ClearEdge(name string) error {
	switch name {
	case hashcatstatus.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown HashcatStatus unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HashcatStatusMutation) ResetEdge(name string) error {
	switch name {
	case hashcatstatus.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown HashcatStatus edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                Op
	typ               string
	id                *int
	name              *string
	description       *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	campaigns         map[int]struct{}
	removedcampaigns  map[int]struct{}
	clearedcampaigns  bool
	hash_lists        map[int]struct{}
	removedhash_lists map[int]struct{}
	clearedhash_lists bool
	resources         map[int]struct{}
	removedresources  map[int]struct{}
	clearedresources  bool
	agents            map[int]struct{}
	removedagents     map[int]struct{}
	clearedagents     bool
	done              bool
	oldValue          func(context.Context) (*Project, error)
	predicates        []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id int) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProjectMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProjectMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ProjectMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[project.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ProjectMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[project.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ProjectMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, project.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProjectMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProjectMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ProjectMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by ids.
func (m *ProjectMutation) AddCampaignIDs(ids ...int) {
	if m.campaigns == nil {
		m.campaigns = make(map[int]struct{})
	}
	for i := range ids {
		m.campaigns[ids[i]] = struct{}{}
	}
}

// ClearCampaigns clears the "campaigns" edge to the Campaign entity.
func (m *ProjectMutation) ClearCampaigns() {
	m.clearedcampaigns = true
}

// CampaignsCleared reports if the "campaigns" edge to the Campaign entity was cleared.
func (m *ProjectMutation) CampaignsCleared() bool {
	return m.clearedcampaigns
}

// RemoveCampaignIDs removes the "campaigns" edge to the Campaign entity by IDs.
func (m *ProjectMutation) RemoveCampaignIDs(ids ...int) {
	if m.removedcampaigns == nil {
		m.removedcampaigns = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.campaigns, ids[i])
		m.removedcampaigns[ids[i]] = struct{}{}
	}
}

// RemovedCampaigns returns the removed IDs of the "campaigns" edge to the Campaign entity.
func (m *ProjectMutation) RemovedCampaignsIDs() (ids []int) {
	for id := range m.removedcampaigns {
		ids = append(ids, id)
	}
	return
}

// CampaignsIDs returns the "campaigns" edge IDs in the mutation.
func (m *ProjectMutation) CampaignsIDs() (ids []int) {
	for id := range m.campaigns {
		ids = append(ids, id)
	}
	return
}

// ResetCampaigns resets all changes to the "campaigns" edge.
func (m *ProjectMutation) ResetCampaigns() {
	m.campaigns = nil
	m.clearedcampaigns = false
	m.removedcampaigns = nil
}

// AddHashListIDs adds the "hash_lists" edge to the HashList entity by ids.
func (m *ProjectMutation) AddHashListIDs(ids ...int) {
	if m.hash_lists == nil {
		m.hash_lists = make(map[int]struct{})
	}
	for i := range ids {
		m.hash_lists[ids[i]] = struct{}{}
	}
}

// ClearHashLists clears the "hash_lists" edge to the HashList entity.
func (m *ProjectMutation) ClearHashLists() {
	m.clearedhash_lists = true
}

// HashListsCleared reports if the "hash_lists" edge to the HashList entity was cleared.
func (m *ProjectMutation) HashListsCleared() bool {
	return m.clearedhash_lists
}

// RemoveHashListIDs removes the "hash_lists" edge to the HashList entity by IDs.
func (m *ProjectMutation) RemoveHashListIDs(ids ...int) {
	if m.removedhash_lists == nil {
		m.removedhash_lists = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.hash_lists, ids[i])
		m.removedhash_lists[ids[i]] = struct{}{}
	}
}

// RemovedHashLists returns the removed IDs of the "hash_lists" edge to the HashList entity.
func (m *ProjectMutation) RemovedHashListsIDs() (ids []int) {
	for id := range m.removedhash_lists {
		ids = append(ids, id)
	}
	return
}

// HashListsIDs returns the "hash_lists" edge IDs in the mutation.
func (m *ProjectMutation) HashListsIDs() (ids []int) {
	for id := range m.hash_lists {
		ids = append(ids, id)
	}
	return
}

// ResetHashLists resets all changes to the "hash_lists" edge.
func (m *ProjectMutation) ResetHashLists() {
	m.hash_lists = nil
	m.clearedhash_lists = false
	m.removedhash_lists = nil
}

// AddResourceIDs adds the "resources" edge to the Resource entity by ids.
func (m *ProjectMutation) AddResourceIDs(ids ...int) {
	if m.resources == nil {
		m.resources = make(map[int]struct{})
	}
	for i := range ids {
		m.resources[ids[i]] = struct{}{}
	}
}

// ClearResources clears the "resources" edge to the Resource entity.
func (m *ProjectMutation) ClearResources() {
	m.clearedresources = true
}

// ResourcesCleared reports if the "resources" edge to the Resource entity was cleared.
func (m *ProjectMutation) ResourcesCleared() bool {
	return m.clearedresources
}

// RemoveResourceIDs removes the "resources" edge to the Resource entity by IDs.
func (m *ProjectMutation) RemoveResourceIDs(ids ...int) {
	if m.removedresources == nil {
		m.removedresources = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.resources, ids[i])
		m.removedresources[ids[i]] = struct{}{}
	}
}

// RemovedResources returns the removed IDs of the "resources" edge to the Resource entity.
func (m *ProjectMutation) RemovedResourcesIDs() (ids []int) {
	for id := range m.removedresources {
		ids = append(ids, id)
	}
	return
}

// ResourcesIDs returns the "resources" edge IDs in the mutation.
func (m *ProjectMutation) ResourcesIDs() (ids []int) {
	for id := range m.resources {
		ids = append(ids, id)
	}
	return
}

// ResetResources resets all changes to the "resources" edge.
func (m *ProjectMutation) ResetResources() {
	m.resources = nil
	m.clearedresources = false
	m.removedresources = nil
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *ProjectMutation) AddAgentIDs(ids ...int) {
	if m.agents == nil {
		m.agents = make(map[int]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *ProjectMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *ProjectMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *ProjectMutation) RemoveAgentIDs(ids ...int) {
	if m.removedagents == nil {
		m.removedagents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *ProjectMutation) RemovedAgentsIDs() (ids []int) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *ProjectMutation) AgentsIDs() (ids []int) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *ProjectMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.description != nil {
		fields = append(fields, project.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, project.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldDescription:
		return m.Description()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	case project.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldDescription:
		return m.OldDescription(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case project.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case project.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(project.FieldDescription) {
		fields = append(fields, project.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	switch name {
	case project.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldDescription:
		m.ResetDescription()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case project.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.campaigns != nil {
		edges = append(edges, project.EdgeCampaigns)
	}
	if m.hash_lists != nil {
		edges = append(edges, project.EdgeHashLists)
	}
	if m.resources != nil {
		edges = append(edges, project.EdgeResources)
	}
	if m.agents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.campaigns))
		for id := range m.campaigns {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeHashLists:
		ids := make([]ent.Value, 0, len(m.hash_lists))
		for id := range m.hash_lists {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeResources:
		ids := make([]ent.Value, 0, len(m.resources))
		for id := range m.resources {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedcampaigns != nil {
		edges = append(edges, project.EdgeCampaigns)
	}
	if m.removedhash_lists != nil {
		edges = append(edges, project.EdgeHashLists)
	}
	if m.removedresources != nil {
		edges = append(edges, project.EdgeResources)
	}
	if m.removedagents != nil {
		edges = append(edges, project.EdgeAgents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeCampaigns:
		ids := make([]ent.Value, 0, len(m.removedcampaigns))
		for id := range m.removedcampaigns {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeHashLists:
		ids := make([]ent.Value, 0, len(m.removedhash_lists))
		for id := range m.removedhash_lists {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeResources:
		ids := make([]ent.Value, 0, len(m.removedresources))
		for id := range m.removedresources {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedcampaigns {
		edges = append(edges, project.EdgeCampaigns)
	}
	if m.clearedhash_lists {
		edges = append(edges, project.EdgeHashLists)
	}
	if m.clearedresources {
		edges = append(edges, project.EdgeResources)
	}
	if m.clearedagents {
		edges = append(edges, project.EdgeAgents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeCampaigns:
		return m.clearedcampaigns
	case project.EdgeHashLists:
		return m.clearedhash_lists
	case project.EdgeResources:
		return m.clearedresources
	case project.EdgeAgents:
		return m.clearedagents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeCampaigns:
		m.ResetCampaigns()
		return nil
	case project.EdgeHashLists:
		m.ResetHashLists()
		return nil
	case project.EdgeResources:
		m.ResetResources()
		return nil
	case project.EdgeAgents:
		m.ResetAgents()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// ResourceMutation represents an operation that mutates the Resource nodes in the graph.
type ResourceMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	name                     *string
	file_name                *string
	file_handle              *string
	resource_type            *resource.ResourceType
	line_count               *int64
	addline_count            *int64
	byte_size                *int64
	addbyte_size             *int64
	checksum                 *string
	sensitive                *bool
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	projects                 map[int]struct{}
	removedprojects          map[int]struct{}
	clearedprojects          bool
	word_list_attacks        map[int]struct{}
	removedword_list_attacks map[int]struct{}
	clearedword_list_attacks bool
	rule_list_attacks        map[int]struct{}
	removedrule_list_attacks map[int]struct{}
	clearedrule_list_attacks bool
	mask_list_attacks        map[int]struct{}
	removedmask_list_attacks map[int]struct{}
	clearedmask_list_attacks bool
	done                     bool
	oldValue                 func(context.Context) (*Resource, error)
	predicates               []predicate.Resource
}

var _ ent.Mutation = (*ResourceMutation)(nil)

// resourceOption allows management of the mutation configuration using functional options.
type resourceOption func(*ResourceMutation)

// newResourceMutation creates new mutation for the Resource entity.
func newResourceMutation(c config, op Op, opts ...resourceOption) *ResourceMutation {
	m := &ResourceMutation{
		config:        c,
		op:            op,
		typ:           TypeResource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResourceID sets the ID field of the mutation.
func withResourceID(id int) resourceOption {
	return func(m *ResourceMutation) {
		var (
			err   error
			once  sync.Once
			value *Resource
		)
		m.oldValue = func(ctx context.Context) (*Resource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Resource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResource sets the old Resource of the mutation.
func withResource(node *Resource) resourceOption {
	return func(m *ResourceMutation) {
		m.oldValue = func(context.Context) (*Resource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResourceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResourceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Resource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ResourceMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ResourceMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ResourceMutation) ResetName() {
	m.name = nil
}

// SetFileName sets the "file_name" field.
func (m *ResourceMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ResourceMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ResourceMutation) ResetFileName() {
	m.file_name = nil
}

// SetFileHandle sets the "file_handle" field.
func (m *ResourceMutation) SetFileHandle(s string) {
	m.file_handle = &s
}

// FileHandle returns the value of the "file_handle" field in the mutation.
func (m *ResourceMutation) FileHandle() (r string, exists bool) {
	v := m.file_handle
	if v == nil {
		return
	}
	return *v, true
}

// OldFileHandle returns the old "file_handle" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldFileHandle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileHandle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileHandle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileHandle: %w", err)
	}
	return oldValue.FileHandle, nil
}

// ResetFileHandle resets all changes to the "file_handle" field.
func (m *ResourceMutation) ResetFileHandle() {
	m.file_handle = nil
}

// SetResourceType sets the "resource_type" field.
func (m *ResourceMutation) SetResourceType(rt resource.ResourceType) {
	m.resource_type = &rt
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *ResourceMutation) ResourceType() (r resource.ResourceType, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldResourceType(ctx context.Context) (v resource.ResourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *ResourceMutation) ResetResourceType() {
	m.resource_type = nil
}

// SetLineCount sets the "line_count" field.
func (m *ResourceMutation) SetLineCount(i int64) {
	m.line_count = &i
	m.addline_count = nil
}

// LineCount returns the value of the "line_count" field in the mutation.
func (m *ResourceMutation) LineCount() (r int64, exists bool) {
	v := m.line_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLineCount returns the old "line_count" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldLineCount(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineCount: %w", err)
	}
	return oldValue.LineCount, nil
}

// AddLineCount adds i to the "line_count" field.
func (m *ResourceMutation) AddLineCount(i int64) {
	if m.addline_count != nil {
		*m.addline_count += i
	} else {
		m.addline_count = &i
	}
}

// AddedLineCount returns the value that was added to the "line_count" field in this mutation.
func (m *ResourceMutation) AddedLineCount() (r int64, exists bool) {
	v := m.addline_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearLineCount clears the value of the "line_count" field.
func (m *ResourceMutation) ClearLineCount() {
	m.line_count = nil
	m.addline_count = nil
	m.clearedFields[resource.FieldLineCount] = struct{}{}
}

// LineCountCleared returns if the "line_count" field was cleared in this mutation.
func (m *ResourceMutation) LineCountCleared() bool {
	_, ok := m.clearedFields[resource.FieldLineCount]
	return ok
}

// ResetLineCount resets all changes to the "line_count" field.
func (m *ResourceMutation) ResetLineCount() {
	m.line_count = nil
	m.addline_count = nil
	delete(m.clearedFields, resource.FieldLineCount)
}

// SetByteSize sets the "byte_size" field.
func (m *ResourceMutation) SetByteSize(i int64) {
	m.byte_size = &i
	m.addbyte_size = nil
}

// ByteSize returns the value of the "byte_size" field in the mutation.
func (m *ResourceMutation) ByteSize() (r int64, exists bool) {
	v := m.byte_size
	if v == nil {
		return
	}
	return *v, true
}

// OldByteSize returns the old "byte_size" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldByteSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByteSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByteSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByteSize: %w", err)
	}
	return oldValue.ByteSize, nil
}

// AddByteSize adds i to the "byte_size" field.
func (m *ResourceMutation) AddByteSize(i int64) {
	if m.addbyte_size != nil {
		*m.addbyte_size += i
	} else {
		m.addbyte_size = &i
	}
}

// AddedByteSize returns the value that was added to the "byte_size" field in this mutation.
func (m *ResourceMutation) AddedByteSize() (r int64, exists bool) {
	v := m.addbyte_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetByteSize resets all changes to the "byte_size" field.
func (m *ResourceMutation) ResetByteSize() {
	m.byte_size = nil
	m.addbyte_size = nil
}

// SetChecksum sets the "checksum" field.
func (m *ResourceMutation) SetChecksum(s string) {
	m.checksum = &s
}

// Checksum returns the value of the "checksum" field in the mutation.
func (m *ResourceMutation) Checksum() (r string, exists bool) {
	v := m.checksum
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksum returns the old "checksum" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldChecksum(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksum: %w", err)
	}
	return oldValue.Checksum, nil
}

// ResetChecksum resets all changes to the "checksum" field.
func (m *ResourceMutation) ResetChecksum() {
	m.checksum = nil
}

// SetSensitive sets the "sensitive" field.
func (m *ResourceMutation) SetSensitive(b bool) {
	m.sensitive = &b
}

// Sensitive returns the value of the "sensitive" field in the mutation.
func (m *ResourceMutation) Sensitive() (r bool, exists bool) {
	v := m.sensitive
	if v == nil {
		return
	}
	return *v, true
}

// OldSensitive returns the old "sensitive" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldSensitive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSensitive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSensitive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSensitive: %w", err)
	}
	return oldValue.Sensitive, nil
}

// ResetSensitive resets all changes to the "sensitive" field.
func (m *ResourceMutation) ResetSensitive() {
	m.sensitive = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ResourceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResourceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResourceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ResourceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ResourceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Resource entity.
// If the Resource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResourceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ResourceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddProjectIDs adds the "projects" edge to the Project entity by ids.
func (m *ResourceMutation) AddProjectIDs(ids ...int) {
	if m.projects == nil {
		m.projects = make(map[int]struct{})
	}
	for i := range ids {
		m.projects[ids[i]] = struct{}{}
	}
}

// ClearProjects clears the "projects" edge to the Project entity.
func (m *ResourceMutation) ClearProjects() {
	m.clearedprojects = true
}

// ProjectsCleared reports if the "projects" edge to the Project entity was cleared.
func (m *ResourceMutation) ProjectsCleared() bool {
	return m.clearedprojects
}

// RemoveProjectIDs removes the "projects" edge to the Project entity by IDs.
func (m *ResourceMutation) RemoveProjectIDs(ids ...int) {
	if m.removedprojects == nil {
		m.removedprojects = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.projects, ids[i])
		m.removedprojects[ids[i]] = struct{}{}
	}
}

// RemovedProjects returns the removed IDs of the "projects" edge to the Project entity.
func (m *ResourceMutation) RemovedProjectsIDs() (ids []int) {
	for id := range m.removedprojects {
		ids = append(ids, id)
	}
	return
}

// ProjectsIDs returns the "projects" edge IDs in the mutation.
func (m *ResourceMutation) ProjectsIDs() (ids []int) {
	for id := range m.projects {
		ids = append(ids, id)
	}
	return
}

// ResetProjects resets all changes to the "projects" edge.
func (m *ResourceMutation) ResetProjects() {
	m.projects = nil
	m.clearedprojects = false
	m.removedprojects = nil
}

// AddWordListAttackIDs adds the "word_list_attacks" edge to the Attack entity by ids.
func (m *ResourceMutation) AddWordListAttackIDs(ids ...int) {
	if m.word_list_attacks == nil {
		m.word_list_attacks = make(map[int]struct{})
	}
	for i := range ids {
		m.word_list_attacks[ids[i]] = struct{}{}
	}
}

// ClearWordListAttacks clears the "word_list_attacks" edge to the Attack entity.
func (m *ResourceMutation) ClearWordListAttacks() {
	m.clearedword_list_attacks = true
}

// WordListAttacksCleared reports if the "word_list_attacks" edge to the Attack entity was cleared.
func (m *ResourceMutation) WordListAttacksCleared() bool {
	return m.clearedword_list_attacks
}

// RemoveWordListAttackIDs removes the "word_list_attacks" edge to the Attack entity by IDs.
func (m *ResourceMutation) RemoveWordListAttackIDs(ids ...int) {
	if m.removedword_list_attacks == nil {
		m.removedword_list_attacks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.word_list_attacks, ids[i])
		m.removedword_list_attacks[ids[i]] = struct{}{}
	}
}

// RemovedWordListAttacks returns the removed IDs of the "word_list_attacks" edge to the Attack entity.
func (m *ResourceMutation) RemovedWordListAttacksIDs() (ids []int) {
	for id := range m.removedword_list_attacks {
		ids = append(ids, id)
	}
	return
}

// WordListAttacksIDs returns the "word_list_attacks" edge IDs in the mutation.
func (m *ResourceMutation) WordListAttacksIDs() (ids []int) {
	for id := range m.word_list_attacks {
		ids = append(ids, id)
	}
	return
}

// ResetWordListAttacks resets all changes to the "word_list_attacks" edge.
func (m *ResourceMutation) ResetWordListAttacks() {
	m.word_list_attacks = nil
	m.clearedword_list_attacks = false
	m.removedword_list_attacks = nil
}

// AddRuleListAttackIDs adds the "rule_list_attacks" edge to the Attack entity by ids.
func (m *ResourceMutation) AddRuleListAttackIDs(ids ...int) {
	if m.rule_list_attacks == nil {
		m.rule_list_attacks = make(map[int]struct{})
	}
	for i := range ids {
		m.rule_list_attacks[ids[i]] = struct{}{}
	}
}

// ClearRuleListAttacks clears the "rule_list_attacks" edge to the Attack entity.
func (m *ResourceMutation) ClearRuleListAttacks() {
	m.clearedrule_list_attacks = true
}

// RuleListAttacksCleared reports if the "rule_list_attacks" edge to the Attack entity was cleared.
func (m *ResourceMutation) RuleListAttacksCleared() bool {
	return m.clearedrule_list_attacks
}

// RemoveRuleListAttackIDs removes the "rule_list_attacks" edge to the Attack entity by IDs.
func (m *ResourceMutation) RemoveRuleListAttackIDs(ids ...int) {
	if m.removedrule_list_attacks == nil {
		m.removedrule_list_attacks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.rule_list_attacks, ids[i])
		m.removedrule_list_attacks[ids[i]] = struct{}{}
	}
}

// RemovedRuleListAttacks returns the removed IDs of the "rule_list_attacks" edge to the Attack entity.
func (m *ResourceMutation) RemovedRuleListAttacksIDs() (ids []int) {
	for id := range m.removedrule_list_attacks {
		ids = append(ids, id)
	}
	return
}

// RuleListAttacksIDs returns the "rule_list_attacks" edge IDs in the mutation.
func (m *ResourceMutation) RuleListAttacksIDs() (ids []int) {
	for id := range m.rule_list_attacks {
		ids = append(ids, id)
	}
	return
}

// ResetRuleListAttacks resets all changes to the "rule_list_attacks" edge.
func (m *ResourceMutation) ResetRuleListAttacks() {
	m.rule_list_attacks = nil
	m.clearedrule_list_attacks = false
	m.removedrule_list_attacks = nil
}

// AddMaskListAttackIDs adds the "mask_list_attacks" edge to the Attack entity by ids.
func (m *ResourceMutation) AddMaskListAttackIDs(ids ...int) {
	if m.mask_list_attacks == nil {
		m.mask_list_attacks = make(map[int]struct{})
	}
	for i := range ids {
		m.mask_list_attacks[ids[i]] = struct{}{}
	}
}

// ClearMaskListAttacks clears the "mask_list_attacks" edge to the Attack entity.
func (m *ResourceMutation) ClearMaskListAttacks() {
	m.clearedmask_list_attacks = true
}

// MaskListAttacksCleared reports if the "mask_list_attacks" edge to the Attack entity was cleared.
func (m *ResourceMutation) MaskListAttacksCleared() bool {
	return m.clearedmask_list_attacks
}

// RemoveMaskListAttackIDs removes the "mask_list_attacks" edge to the Attack entity by IDs.
func (m *ResourceMutation) RemoveMaskListAttackIDs(ids ...int) {
	if m.removedmask_list_attacks == nil {
		m.removedmask_list_attacks = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.mask_list_attacks, ids[i])
		m.removedmask_list_attacks[ids[i]] = struct{}{}
	}
}

// RemovedMaskListAttacks returns the removed IDs of the "mask_list_attacks" edge to the Attack entity.
func (m *ResourceMutation) RemovedMaskListAttacksIDs() (ids []int) {
	for id := range m.removedmask_list_attacks {
		ids = append(ids, id)
	}
	return
}

// MaskListAttacksIDs returns the "mask_list_attacks" edge IDs in the mutation.
func (m *ResourceMutation) MaskListAttacksIDs() (ids []int) {
	for id := range m.mask_list_attacks {
		ids = append(ids, id)
	}
	return
}

// ResetMaskListAttacks resets all changes to the "mask_list_attacks" edge.
func (m *ResourceMutation) ResetMaskListAttacks() {
	m.mask_list_attacks = nil
	m.clearedmask_list_attacks = false
	m.removedmask_list_attacks = nil
}

// Where appends a list predicates to the ResourceMutation builder.
func (m *ResourceMutation) Where(ps ...predicate.Resource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Resource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Resource).
func (m *ResourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResourceMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.name != nil {
		fields = append(fields, resource.FieldName)
	}
	if m.file_name != nil {
		fields = append(fields, resource.FieldFileName)
	}
	if m.file_handle != nil {
		fields = append(fields, resource.FieldFileHandle)
	}
	if m.resource_type != nil {
		fields = append(fields, resource.FieldResourceType)
	}
	if m.line_count != nil {
		fields = append(fields, resource.FieldLineCount)
	}
	if m.byte_size != nil {
		fields = append(fields, resource.FieldByteSize)
	}
	if m.checksum != nil {
		fields = append(fields, resource.FieldChecksum)
	}
	if m.sensitive != nil {
		fields = append(fields, resource.FieldSensitive)
	}
	if m.created_at != nil {
		fields = append(fields, resource.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, resource.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resource.FieldName:
		return m.Name()
	case resource.FieldFileName:
		return m.FileName()
	case resource.FieldFileHandle:
		return m.FileHandle()
	case resource.FieldResourceType:
		return m.ResourceType()
	case resource.FieldLineCount:
		return m.LineCount()
	case resource.FieldByteSize:
		return m.ByteSize()
	case resource.FieldChecksum:
		return m.Checksum()
	case resource.FieldSensitive:
		return m.Sensitive()
	case resource.FieldCreatedAt:
		return m.CreatedAt()
	case resource.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resource.FieldName:
		return m.OldName(ctx)
	case resource.FieldFileName:
		return m.OldFileName(ctx)
	case resource.FieldFileHandle:
		return m.OldFileHandle(ctx)
	case resource.FieldResourceType:
		return m.OldResourceType(ctx)
	case resource.FieldLineCount:
		return m.OldLineCount(ctx)
	case resource.FieldByteSize:
		return m.OldByteSize(ctx)
	case resource.FieldChecksum:
		return m.OldChecksum(ctx)
	case resource.FieldSensitive:
		return m.OldSensitive(ctx)
	case resource.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case resource.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Resource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resource.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case resource.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case resource.FieldFileHandle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileHandle(v)
		return nil
	case resource.FieldResourceType:
		v, ok := value.(resource.ResourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case resource.FieldLineCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineCount(v)
		return nil
	case resource.FieldByteSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByteSize(v)
		return nil
	case resource.FieldChecksum:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksum(v)
		return nil
	case resource.FieldSensitive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSensitive(v)
		return nil
	case resource.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case resource.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Resource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResourceMutation) AddedFields() []string {
	var fields []string
	if m.addline_count != nil {
		fields = append(fields, resource.FieldLineCount)
	}
	if m.addbyte_size != nil {
		fields = append(fields, resource.FieldByteSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case resource.FieldLineCount:
		return m.AddedLineCount()
	case resource.FieldByteSize:
		return m.AddedByteSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case resource.FieldLineCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLineCount(v)
		return nil
	case resource.FieldByteSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddByteSize(v)
		return nil
	}
	return fmt.Errorf("unknown Resource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResourceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resource.FieldLineCount) {
		fields = append(fields, resource.FieldLineCount)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResourceMutation) ClearField(name string) error {
	switch name {
	case resource.FieldLineCount:
		m.ClearLineCount()
		return nil
	}
	return fmt.Errorf("unknown Resource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResourceMutation) ResetField(name string) error {
	switch name {
	case resource.FieldName:
		m.ResetName()
		return nil
	case resource.FieldFileName:
		m.ResetFileName()
		return nil
	case resource.FieldFileHandle:
		m.ResetFileHandle()
		return nil
	case resource.FieldResourceType:
		m.ResetResourceType()
		return nil
	case resource.FieldLineCount:
		m.ResetLineCount()
		return nil
	case resource.FieldByteSize:
		m.ResetByteSize()
		return nil
	case resource.FieldChecksum:
		m.ResetChecksum()
		return nil
	case resource.FieldSensitive:
		m.ResetSensitive()
		return nil
	case resource.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case resource.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Resource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.projects != nil {
		edges = append(edges, resource.EdgeProjects)
	}
	if m.word_list_attacks != nil {
		edges = append(edges, resource.EdgeWordListAttacks)
	}
	if m.rule_list_attacks != nil {
		edges = append(edges, resource.EdgeRuleListAttacks)
	}
	if m.mask_list_attacks != nil {
		edges = append(edges, resource.EdgeMaskListAttacks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case resource.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.projects))
		for id := range m.projects {
			ids = append(ids, id)
		}
		return ids
	case resource.EdgeWordListAttacks:
		ids := make([]ent.Value, 0, len(m.word_list_attacks))
		for id := range m.word_list_attacks {
			ids = append(ids, id)
		}
		return ids
	case resource.EdgeRuleListAttacks:
		ids := make([]ent.Value, 0, len(m.rule_list_attacks))
		for id := range m.rule_list_attacks {
			ids = append(ids, id)
		}
		return ids
	case resource.EdgeMaskListAttacks:
		ids := make([]ent.Value, 0, len(m.mask_list_attacks))
		for id := range m.mask_list_attacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedprojects != nil {
		edges = append(edges, resource.EdgeProjects)
	}
	if m.removedword_list_attacks != nil {
		edges = append(edges, resource.EdgeWordListAttacks)
	}
	if m.removedrule_list_attacks != nil {
		edges = append(edges, resource.EdgeRuleListAttacks)
	}
	if m.removedmask_list_attacks != nil {
		edges = append(edges, resource.EdgeMaskListAttacks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResourceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case resource.EdgeProjects:
		ids := make([]ent.Value, 0, len(m.removedprojects))
		for id := range m.removedprojects {
			ids = append(ids, id)
		}
		return ids
	case resource.EdgeWordListAttacks:
		ids := make([]ent.Value, 0, len(m.removedword_list_attacks))
		for id := range m.removedword_list_attacks {
			ids = append(ids, id)
		}
		return ids
	case resource.EdgeRuleListAttacks:
		ids := make([]ent.Value, 0, len(m.removedrule_list_attacks))
		for id := range m.removedrule_list_attacks {
			ids = append(ids, id)
		}
		return ids
	case resource.EdgeMaskListAttacks:
		ids := make([]ent.Value, 0, len(m.removedmask_list_attacks))
		for id := range m.removedmask_list_attacks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedprojects {
		edges = append(edges, resource.EdgeProjects)
	}
	if m.clearedword_list_attacks {
		edges = append(edges, resource.EdgeWordListAttacks)
	}
	if m.clearedrule_list_attacks {
		edges = append(edges, resource.EdgeRuleListAttacks)
	}
	if m.clearedmask_list_attacks {
		edges = append(edges, resource.EdgeMaskListAttacks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResourceMutation) EdgeCleared(name string) bool {
	switch name {
	case resource.EdgeProjects:
		return m.clearedprojects
	case resource.EdgeWordListAttacks:
		return m.clearedword_list_attacks
	case resource.EdgeRuleListAttacks:
		return m.clearedrule_list_attacks
	case resource.EdgeMaskListAttacks:
		return m.clearedmask_list_attacks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResourceMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Resource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResourceMutation) ResetEdge(name string) error {
	switch name {
	case resource.EdgeProjects:
		m.ResetProjects()
		return nil
	case resource.EdgeWordListAttacks:
		m.ResetWordListAttacks()
		return nil
	case resource.EdgeRuleListAttacks:
		m.ResetRuleListAttacks()
		return nil
	case resource.EdgeMaskListAttacks:
		m.ResetMaskListAttacks()
		return nil
	}
	return fmt.Errorf("unknown Resource edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	state                  *task.State
	keyspace_offset        *int64
	addkeyspace_offset     *int64
	keyspace_limit         *int64
	addkeyspace_limit      *int64
	progress_percentage    *float64
	addprogress_percentage *float64
	estimated_finish       *time.Time
	activity_timestamp     *time.Time
	stale                  *bool
	agent_signal           *task.AgentSignal
	start_date             *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	attack                 *int
	clearedattack          bool
	agent                  *int
	clearedagent           bool
	statuses               map[int]struct{}
	removedstatuses        map[int]struct{}
	clearedstatuses        bool
	crack_results          map[int]struct{}
	removedcrack_results   map[int]struct{}
	clearedcrack_results   bool
	errors                 map[int]struct{}
	removederrors          map[int]struct{}
	clearederrors          bool
	done                   bool
	oldValue               func(context.Context) (*Task, error)
	predicates             []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAttackID sets the "attack_id" field.
func (m *TaskMutation) SetAttackID(i int) {
	m.attack = &i
}

// AttackID returns the value of the "attack_id" field in the mutation.
func (m *TaskMutation) AttackID() (r int, exists bool) {
	v := m.attack
	if v == nil {
		return
	}
	return *v, true
}

// OldAttackID returns the old "attack_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAttackID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttackID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttackID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttackID: %w", err)
	}
	return oldValue.AttackID, nil
}

// ResetAttackID resets all changes to the "attack_id" field.
func (m *TaskMutation) ResetAttackID() {
	m.attack = nil
}

// SetAgentID sets the "agent_id" field.
func (m *TaskMutation) SetAgentID(i int) {
	m.agent = &i
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *TaskMutation) AgentID() (r int, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *TaskMutation) ClearAgentID() {
	m.agent = nil
	m.clearedFields[task.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *TaskMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[task.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *TaskMutation) ResetAgentID() {
	m.agent = nil
	delete(m.clearedFields, task.FieldAgentID)
}

// SetState sets the "state" field.
func (m *TaskMutation) SetState(t task.State) {
	m.state = &t
}

// State returns the value of the "state" field in the mutation.
func (m *TaskMutation) State() (r task.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldState(ctx context.Context) (v task.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *TaskMutation) ResetState() {
	m.state = nil
}

// SetKeyspaceOffset sets the "keyspace_offset" field.
func (m *TaskMutation) SetKeyspaceOffset(i int64) {
	m.keyspace_offset = &i
	m.addkeyspace_offset = nil
}

// KeyspaceOffset returns the value of the "keyspace_offset" field in the mutation.
func (m *TaskMutation) KeyspaceOffset() (r int64, exists bool) {
	v := m.keyspace_offset
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyspaceOffset returns the old "keyspace_offset" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKeyspaceOffset(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyspaceOffset is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyspaceOffset requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyspaceOffset: %w", err)
	}
	return oldValue.KeyspaceOffset, nil
}

// AddKeyspaceOffset adds i to the "keyspace_offset" field.
func (m *TaskMutation) AddKeyspaceOffset(i int64) {
	if m.addkeyspace_offset != nil {
		*m.addkeyspace_offset += i
	} else {
		m.addkeyspace_offset = &i
	}
}

// AddedKeyspaceOffset returns the value that was added to the "keyspace_offset" field in this mutation.
func (m *TaskMutation) AddedKeyspaceOffset() (r int64, exists bool) {
	v := m.addkeyspace_offset
	if v == nil {
		return
	}
	return *v, true
}

// ResetKeyspaceOffset resets all changes to the "keyspace_offset" field.
func (m *TaskMutation) ResetKeyspaceOffset() {
	m.keyspace_offset = nil
	m.addkeyspace_offset = nil
}

// SetKeyspaceLimit sets the "keyspace_limit" field.
func (m *TaskMutation) SetKeyspaceLimit(i int64) {
	m.keyspace_limit = &i
	m.addkeyspace_limit = nil
}

// KeyspaceLimit returns the value of the "keyspace_limit" field in the mutation.
func (m *TaskMutation) KeyspaceLimit() (r int64, exists bool) {
	v := m.keyspace_limit
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyspaceLimit returns the old "keyspace_limit" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldKeyspaceLimit(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyspaceLimit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyspaceLimit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyspaceLimit: %w", err)
	}
	return oldValue.KeyspaceLimit, nil
}

// AddKeyspaceLimit adds i to the "keyspace_limit" field.
func (m *TaskMutation) AddKeyspaceLimit(i int64) {
	if m.addkeyspace_limit != nil {
		*m.addkeyspace_limit += i
	} else {
		m.addkeyspace_limit = &i
	}
}

// AddedKeyspaceLimit returns the value that was added to the "keyspace_limit" field in this mutation.
func (m *TaskMutation) AddedKeyspaceLimit() (r int64, exists bool) {
	v := m.addkeyspace_limit
	if v == nil {
		return
	}
	return *v, true
}

// ResetKeyspaceLimit resets all changes to the "keyspace_limit" field.
func (m *TaskMutation) ResetKeyspaceLimit() {
	m.keyspace_limit = nil
	m.addkeyspace_limit = nil
}

// SetProgressPercentage sets the "progress_percentage" field.
func (m *TaskMutation) SetProgressPercentage(f float64) {
	m.progress_percentage = &f
	m.addprogress_percentage = nil
}

// ProgressPercentage returns the value of the "progress_percentage" field in the mutation.
func (m *TaskMutation) ProgressPercentage() (r float64, exists bool) {
	v := m.progress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressPercentage returns the old "progress_percentage" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProgressPercentage(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressPercentage: %w", err)
	}
	return oldValue.ProgressPercentage, nil
}

// AddProgressPercentage adds f to the "progress_percentage" field.
func (m *TaskMutation) AddProgressPercentage(f float64) {
	if m.addprogress_percentage != nil {
		*m.addprogress_percentage += f
	} else {
		m.addprogress_percentage = &f
	}
}

// AddedProgressPercentage returns the value that was added to the "progress_percentage" field in this mutation.
func (m *TaskMutation) AddedProgressPercentage() (r float64, exists bool) {
	v := m.addprogress_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressPercentage resets all changes to the "progress_percentage" field.
func (m *TaskMutation) ResetProgressPercentage() {
	m.progress_percentage = nil
	m.addprogress_percentage = nil
}

// SetEstimatedFinish sets the "estimated_finish" field.
func (m *TaskMutation) SetEstimatedFinish(t time.Time) {
	m.estimated_finish = &t
}

// EstimatedFinish returns the value of the "estimated_finish" field in the mutation.
func (m *TaskMutation) EstimatedFinish() (r time.Time, exists bool) {
	v := m.estimated_finish
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedFinish returns the old "estimated_finish" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldEstimatedFinish(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedFinish is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedFinish requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedFinish: %w", err)
	}
	return oldValue.EstimatedFinish, nil
}

// ClearEstimatedFinish clears the value of the "estimated_finish" field.
func (m *TaskMutation) ClearEstimatedFinish() {
	m.estimated_finish = nil
	m.clearedFields[task.FieldEstimatedFinish] = struct{}{}
}

// EstimatedFinishCleared returns if the "estimated_finish" field was cleared in this mutation.
func (m *TaskMutation) EstimatedFinishCleared() bool {
	_, ok := m.clearedFields[task.FieldEstimatedFinish]
	return ok
}

// ResetEstimatedFinish resets all changes to the "estimated_finish" field.
func (m *TaskMutation) ResetEstimatedFinish() {
	m.estimated_finish = nil
	delete(m.clearedFields, task.FieldEstimatedFinish)
}

// SetActivityTimestamp sets the "activity_timestamp" field.
func (m *TaskMutation) SetActivityTimestamp(t time.Time) {
	m.activity_timestamp = &t
}

// ActivityTimestamp returns the value of the "activity_timestamp" field in the mutation.
func (m *TaskMutation) ActivityTimestamp() (r time.Time, exists bool) {
	v := m.activity_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityTimestamp returns the old "activity_timestamp" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldActivityTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityTimestamp: %w", err)
	}
	return oldValue.ActivityTimestamp, nil
}

// ResetActivityTimestamp resets all changes to the "activity_timestamp" field.
func (m *TaskMutation) ResetActivityTimestamp() {
	m.activity_timestamp = nil
}

// SetStale sets the "stale" field.
func (m *TaskMutation) SetStale(b bool) {
	m.stale = &b
}

// Stale returns the value of the "stale" field in the mutation.
func (m *TaskMutation) Stale() (r bool, exists bool) {
	v := m.stale
	if v == nil {
		return
	}
	return *v, true
}

// OldStale returns the old "stale" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStale(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStale: %w", err)
	}
	return oldValue.Stale, nil
}

// ResetStale resets all changes to the "stale" field.
func (m *TaskMutation) ResetStale() {
	m.stale = nil
}

// SetAgentSignal sets the "agent_signal" field.
func (m *TaskMutation) SetAgentSignal(ts task.AgentSignal) {
	m.agent_signal = &ts
}

// AgentSignal returns the value of the "agent_signal" field in the mutation.
func (m *TaskMutation) AgentSignal() (r task.AgentSignal, exists bool) {
	v := m.agent_signal
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentSignal returns the old "agent_signal" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAgentSignal(ctx context.Context) (v task.AgentSignal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentSignal: %w", err)
	}
	return oldValue.AgentSignal, nil
}

// ResetAgentSignal resets all changes to the "agent_signal" field.
func (m *TaskMutation) ResetAgentSignal() {
	m.agent_signal = nil
}

// SetStartDate sets the "start_date" field.
func (m *TaskMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *TaskMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *TaskMutation) ResetStartDate() {
	m.start_date = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAttack clears the "attack" edge to the Attack entity.
func (m *TaskMutation) ClearAttack() {
	m.clearedattack = true
	m.clearedFields[task.FieldAttackID] = struct{}{}
}

// AttackCleared reports if the "attack" edge to the Attack entity was cleared.
func (m *TaskMutation) AttackCleared() bool {
	return m.clearedattack
}

// AttackIDs returns the "attack" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AttackID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) AttackIDs() (ids []int) {
	if id := m.attack; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAttack resets all changes to the "attack" edge.
func (m *TaskMutation) ResetAttack() {
	m.attack = nil
	m.clearedattack = false
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *TaskMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[task.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *TaskMutation) AgentCleared() bool {
	return m.AgentIDCleared() || m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) AgentIDs() (ids []int) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *TaskMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// AddStatusIDs adds the "statuses" edge to the HashcatStatus entity by ids.
func (m *TaskMutation) AddStatusIDs(ids ...int) {
	if m.statuses == nil {
		m.statuses = make(map[int]struct{})
	}
	for i := range ids {
		m.statuses[ids[i]] = struct{}{}
	}
}

// ClearStatuses clears the "statuses" edge to the HashcatStatus entity.
func (m *TaskMutation) ClearStatuses() {
	m.clearedstatuses = true
}

// StatusesCleared reports if the "statuses" edge to the HashcatStatus entity was cleared.
func (m *TaskMutation) StatusesCleared() bool {
	return m.clearedstatuses
}

// RemoveStatusIDs removes the "statuses" edge to the HashcatStatus entity by IDs.
func (m *TaskMutation) RemoveStatusIDs(ids ...int) {
	if m.removedstatuses == nil {
		m.removedstatuses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.statuses, ids[i])
		m.removedstatuses[ids[i]] = struct{}{}
	}
}

// RemovedStatuses returns the removed IDs of the "statuses" edge to the HashcatStatus entity.
func (m *TaskMutation) RemovedStatusesIDs() (ids []int) {
	for id := range m.removedstatuses {
		ids = append(ids, id)
	}
	return
}

// StatusesIDs returns the "statuses" edge IDs in the mutation.
func (m *TaskMutation) StatusesIDs() (ids []int) {
	for id := range m.statuses {
		ids = append(ids, id)
	}
	return
}

// ResetStatuses resets all changes to the "statuses" edge.
func (m *TaskMutation) ResetStatuses() {
	m.statuses = nil
	m.clearedstatuses = false
	m.removedstatuses = nil
}

// AddCrackResultIDs adds the "crack_results" edge to the CrackResult entity by ids.
func (m *TaskMutation) AddCrackResultIDs(ids ...int) {
	if m.crack_results == nil {
		m.crack_results = make(map[int]struct{})
	}
	for i := range ids {
		m.crack_results[ids[i]] = struct{}{}
	}
}

// ClearCrackResults clears the "crack_results" edge to the CrackResult entity.
func (m *TaskMutation) ClearCrackResults() {
	m.clearedcrack_results = true
}

// CrackResultsCleared reports if the "crack_results" edge to the CrackResult entity was cleared.
func (m *TaskMutation) CrackResultsCleared() bool {
	return m.clearedcrack_results
}

// RemoveCrackResultIDs removes the "crack_results" edge to the CrackResult entity by IDs.
func (m *TaskMutation) RemoveCrackResultIDs(ids ...int) {
	if m.removedcrack_results == nil {
		m.removedcrack_results = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.crack_results, ids[i])
		m.removedcrack_results[ids[i]] = struct{}{}
	}
}

// RemovedCrackResults returns the removed IDs of the "crack_results" edge to the CrackResult entity.
func (m *TaskMutation) RemovedCrackResultsIDs() (ids []int) {
	for id := range m.removedcrack_results {
		ids = append(ids, id)
	}
	return
}

// CrackResultsIDs returns the "crack_results" edge IDs in the mutation.
func (m *TaskMutation) CrackResultsIDs() (ids []int) {
	for id := range m.crack_results {
		ids = append(ids, id)
	}
	return
}

// ResetCrackResults resets all changes to the "crack_results" edge.
func (m *TaskMutation) ResetCrackResults() {
	m.crack_results = nil
	m.clearedcrack_results = false
	m.removedcrack_results = nil
}

// AddErrorIDs adds the "errors" edge to the AgentError entity by ids.
func (m *TaskMutation) AddErrorIDs(ids ...int) {
	if m.errors == nil {
		m.errors = make(map[int]struct{})
	}
	for i := range ids {
		m.errors[ids[i]] = struct{}{}
	}
}

// ClearErrors clears the "errors" edge to the AgentError entity.
func (m *TaskMutation) ClearErrors() {
	m.clearederrors = true
}

// ErrorsCleared reports if the "errors" edge to the AgentError entity was cleared.
func (m *TaskMutation) ErrorsCleared() bool {
	return m.clearederrors
}

// RemoveErrorIDs removes the "errors" edge to the AgentError entity by IDs.
func (m *TaskMutation) RemoveErrorIDs(ids ...int) {
	if m.removederrors == nil {
		m.removederrors = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.errors, ids[i])
		m.removederrors[ids[i]] = struct{}{}
	}
}

// RemovedErrors returns the removed IDs of the "errors" edge to the AgentError entity.
func (m *TaskMutation) RemovedErrorsIDs() (ids []int) {
	for id := range m.removederrors {
		ids = append(ids, id)
	}
	return
}

// ErrorsIDs returns the "errors" edge IDs in the mutation.
func (m *TaskMutation) ErrorsIDs() (ids []int) {
	for id := range m.errors {
		ids = append(ids, id)
	}
	return
}

// ResetErrors resets all changes to the "errors" edge.
func (m *TaskMutation) ResetErrors() {
	m.errors = nil
	m.clearederrors = false
	m.removederrors = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.attack != nil {
		fields = append(fields, task.FieldAttackID)
	}
	if m.agent != nil {
		fields = append(fields, task.FieldAgentID)
	}
	if m.state != nil {
		fields = append(fields, task.FieldState)
	}
	if m.keyspace_offset != nil {
		fields = append(fields, task.FieldKeyspaceOffset)
	}
	if m.keyspace_limit != nil {
		fields = append(fields, task.FieldKeyspaceLimit)
	}
	if m.progress_percentage != nil {
		fields = append(fields, task.FieldProgressPercentage)
	}
	if m.estimated_finish != nil {
		fields = append(fields, task.FieldEstimatedFinish)
	}
	if m.activity_timestamp != nil {
		fields = append(fields, task.FieldActivityTimestamp)
	}
	if m.stale != nil {
		fields = append(fields, task.FieldStale)
	}
	if m.agent_signal != nil {
		fields = append(fields, task.FieldAgentSignal)
	}
	if m.start_date != nil {
		fields = append(fields, task.FieldStartDate)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldAttackID:
		return m.AttackID()
	case task.FieldAgentID:
		return m.AgentID()
	case task.FieldState:
		return m.State()
	case task.FieldKeyspaceOffset:
		return m.KeyspaceOffset()
	case task.FieldKeyspaceLimit:
		return m.KeyspaceLimit()
	case task.FieldProgressPercentage:
		return m.ProgressPercentage()
	case task.FieldEstimatedFinish:
		return m.EstimatedFinish()
	case task.FieldActivityTimestamp:
		return m.ActivityTimestamp()
	case task.FieldStale:
		return m.Stale()
	case task.FieldAgentSignal:
		return m.AgentSignal()
	case task.FieldStartDate:
		return m.StartDate()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldAttackID:
		return m.OldAttackID(ctx)
	case task.FieldAgentID:
		return m.OldAgentID(ctx)
	case task.FieldState:
		return m.OldState(ctx)
	case task.FieldKeyspaceOffset:
		return m.OldKeyspaceOffset(ctx)
	case task.FieldKeyspaceLimit:
		return m.OldKeyspaceLimit(ctx)
	case task.FieldProgressPercentage:
		return m.OldProgressPercentage(ctx)
	case task.FieldEstimatedFinish:
		return m.OldEstimatedFinish(ctx)
	case task.FieldActivityTimestamp:
		return m.OldActivityTimestamp(ctx)
	case task.FieldStale:
		return m.OldStale(ctx)
	case task.FieldAgentSignal:
		return m.OldAgentSignal(ctx)
	case task.FieldStartDate:
		return m.OldStartDate(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldAttackID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttackID(v)
		return nil
	case task.FieldAgentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case task.FieldState:
		v, ok := value.(task.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case task.FieldKeyspaceOffset:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyspaceOffset(v)
		return nil
	case task.FieldKeyspaceLimit:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyspaceLimit(v)
		return nil
	case task.FieldProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressPercentage(v)
		return nil
	case task.FieldEstimatedFinish:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedFinish(v)
		return nil
	case task.FieldActivityTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityTimestamp(v)
		return nil
	case task.FieldStale:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStale(v)
		return nil
	case task.FieldAgentSignal:
		v, ok := value.(task.AgentSignal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentSignal(v)
		return nil
	case task.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addkeyspace_offset != nil {
		fields = append(fields, task.FieldKeyspaceOffset)
	}
	if m.addkeyspace_limit != nil {
		fields = append(fields, task.FieldKeyspaceLimit)
	}
	if m.addprogress_percentage != nil {
		fields = append(fields, task.FieldProgressPercentage)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldKeyspaceOffset:
		return m.AddedKeyspaceOffset()
	case task.FieldKeyspaceLimit:
		return m.AddedKeyspaceLimit()
	case task.FieldProgressPercentage:
		return m.AddedProgressPercentage()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldKeyspaceOffset:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKeyspaceOffset(v)
		return nil
	case task.FieldKeyspaceLimit:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddKeyspaceLimit(v)
		return nil
	case task.FieldProgressPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressPercentage(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldAgentID) {
		fields = append(fields, task.FieldAgentID)
	}
	if m.FieldCleared(task.FieldEstimatedFinish) {
		fields = append(fields, task.FieldEstimatedFinish)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldAgentID:
		m.ClearAgentID()
		return nil
	case task.FieldEstimatedFinish:
		m.ClearEstimatedFinish()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldAttackID:
		m.ResetAttackID()
		return nil
	case task.FieldAgentID:
		m.ResetAgentID()
		return nil
	case task.FieldState:
		m.ResetState()
		return nil
	case task.FieldKeyspaceOffset:
		m.ResetKeyspaceOffset()
		return nil
	case task.FieldKeyspaceLimit:
		m.ResetKeyspaceLimit()
		return nil
	case task.FieldProgressPercentage:
		m.ResetProgressPercentage()
		return nil
	case task.FieldEstimatedFinish:
		m.ResetEstimatedFinish()
		return nil
	case task.FieldActivityTimestamp:
		m.ResetActivityTimestamp()
		return nil
	case task.FieldStale:
		m.ResetStale()
		return nil
	case task.FieldAgentSignal:
		m.ResetAgentSignal()
		return nil
	case task.FieldStartDate:
		m.ResetStartDate()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.attack != nil {
		edges = append(edges, task.EdgeAttack)
	}
	if m.agent != nil {
		edges = append(edges, task.EdgeAgent)
	}
	if m.statuses != nil {
		edges = append(edges, task.EdgeStatuses)
	}
	if m.crack_results != nil {
		edges = append(edges, task.EdgeCrackResults)
	}
	if m.errors != nil {
		edges = append(edges, task.EdgeErrors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAttack:
		if id := m.attack; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeStatuses:
		ids := make([]ent.Value, 0, len(m.statuses))
		for id := range m.statuses {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCrackResults:
		ids := make([]ent.Value, 0, len(m.crack_results))
		for id := range m.crack_results {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeErrors:
		ids := make([]ent.Value, 0, len(m.errors))
		for id := range m.errors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedstatuses != nil {
		edges = append(edges, task.EdgeStatuses)
	}
	if m.removedcrack_results != nil {
		edges = append(edges, task.EdgeCrackResults)
	}
	if m.removederrors != nil {
		edges = append(edges, task.EdgeErrors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeStatuses:
		ids := make([]ent.Value, 0, len(m.removedstatuses))
		for id := range m.removedstatuses {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCrackResults:
		ids := make([]ent.Value, 0, len(m.removedcrack_results))
		for id := range m.removedcrack_results {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeErrors:
		ids := make([]ent.Value, 0, len(m.removederrors))
		for id := range m.removederrors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedattack {
		edges = append(edges, task.EdgeAttack)
	}
	if m.clearedagent {
		edges = append(edges, task.EdgeAgent)
	}
	if m.clearedstatuses {
		edges = append(edges, task.EdgeStatuses)
	}
	if m.clearedcrack_results {
		edges = append(edges, task.EdgeCrackResults)
	}
	if m.clearederrors {
		edges = append(edges, task.EdgeErrors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeAttack:
		return m.clearedattack
	case task.EdgeAgent:
		return m.clearedagent
	case task.EdgeStatuses:
		return m.clearedstatuses
	case task.EdgeCrackResults:
		return m.clearedcrack_results
	case task.EdgeErrors:
		return m.clearederrors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeAttack:
		m.ClearAttack()
		return nil
	case task.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeAttack:
		m.ResetAttack()
		return nil
	case task.EdgeAgent:
		m.ResetAgent()
		return nil
	case task.EdgeStatuses:
		m.ResetStatuses()
		return nil
	case task.EdgeCrackResults:
		m.ResetCrackResults()
		return nil
	case task.EdgeErrors:
		m.ResetErrors()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
