// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *AgentUpdate) SetLabel(v string) *AgentUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLabel(v *string) *AgentUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *AgentUpdate) ClearLabel() *AgentUpdate {
	_u.mutation.ClearLabel()
	return _u
}

// SetHostName sets the "host_name" field.
func (_u *AgentUpdate) SetHostName(v string) *AgentUpdate {
	_u.mutation.SetHostName(v)
	return _u
}

// SetNillableHostName sets the "host_name" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableHostName(v *string) *AgentUpdate {
	if v != nil {
		_u.SetHostName(*v)
	}
	return _u
}

// SetClientSignature sets the "client_signature" field.
func (_u *AgentUpdate) SetClientSignature(v string) *AgentUpdate {
	_u.mutation.SetClientSignature(v)
	return _u
}

// SetNillableClientSignature sets the "client_signature" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableClientSignature(v *string) *AgentUpdate {
	if v != nil {
		_u.SetClientSignature(*v)
	}
	return _u
}

// SetOperatingSystem sets the "operating_system" field.
func (_u *AgentUpdate) SetOperatingSystem(v string) *AgentUpdate {
	_u.mutation.SetOperatingSystem(v)
	return _u
}

// SetNillableOperatingSystem sets the "operating_system" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableOperatingSystem(v *string) *AgentUpdate {
	if v != nil {
		_u.SetOperatingSystem(*v)
	}
	return _u
}

// SetDevices sets the "devices" field.
func (_u *AgentUpdate) SetDevices(v []string) *AgentUpdate {
	_u.mutation.SetDevices(v)
	return _u
}

// AppendDevices appends value to the "devices" field.
func (_u *AgentUpdate) AppendDevices(v []string) *AgentUpdate {
	_u.mutation.AppendDevices(v)
	return _u
}

// ClearDevices clears the value of the "devices" field.
func (_u *AgentUpdate) ClearDevices() *AgentUpdate {
	_u.mutation.ClearDevices()
	return _u
}

// SetToken sets the "token" field.
func (_u *AgentUpdate) SetToken(v string) *AgentUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableToken(v *string) *AgentUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// ClearToken clears the value of the "token" field.
func (_u *AgentUpdate) ClearToken() *AgentUpdate {
	_u.mutation.ClearToken()
	return _u
}

// SetRegistrationToken sets the "registration_token" field.
func (_u *AgentUpdate) SetRegistrationToken(v string) *AgentUpdate {
	_u.mutation.SetRegistrationToken(v)
	return _u
}

// SetNillableRegistrationToken sets the "registration_token" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRegistrationToken(v *string) *AgentUpdate {
	if v != nil {
		_u.SetRegistrationToken(*v)
	}
	return _u
}

// ClearRegistrationToken clears the value of the "registration_token" field.
func (_u *AgentUpdate) ClearRegistrationToken() *AgentUpdate {
	_u.mutation.ClearRegistrationToken()
	return _u
}

// SetState sets the "state" field.
func (_u *AgentUpdate) SetState(v agent.State) *AgentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableState(v *agent.State) *AgentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdate) SetLastSeenAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastSeenAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *AgentUpdate) ClearLastSeenAt() *AgentUpdate {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetLastIpaddress sets the "last_ipaddress" field.
func (_u *AgentUpdate) SetLastIpaddress(v string) *AgentUpdate {
	_u.mutation.SetLastIpaddress(v)
	return _u
}

// SetNillableLastIpaddress sets the "last_ipaddress" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastIpaddress(v *string) *AgentUpdate {
	if v != nil {
		_u.SetLastIpaddress(*v)
	}
	return _u
}

// SetAdvancedConfig sets the "advanced_config" field.
func (_u *AgentUpdate) SetAdvancedConfig(v models.AdvancedAgentConfig) *AgentUpdate {
	_u.mutation.SetAdvancedConfig(v)
	return _u
}

// SetNillableAdvancedConfig sets the "advanced_config" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAdvancedConfig(v *models.AdvancedAgentConfig) *AgentUpdate {
	if v != nil {
		_u.SetAdvancedConfig(*v)
	}
	return _u
}

// ClearAdvancedConfig clears the value of the "advanced_config" field.
func (_u *AgentUpdate) ClearAdvancedConfig() *AgentUpdate {
	_u.mutation.ClearAdvancedConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdate) SetUpdatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *AgentUpdate) AddProjectIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *AgentUpdate) AddProjects(v ...*Project) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddBenchmarkIDs adds the "benchmarks" edge to the Benchmark entity by IDs.
func (_u *AgentUpdate) AddBenchmarkIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddBenchmarkIDs(ids...)
	return _u
}

// AddBenchmarks adds the "benchmarks" edges to the Benchmark entity.
func (_u *AgentUpdate) AddBenchmarks(v ...*Benchmark) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBenchmarkIDs(ids...)
}

// AddAgentErrorIDs adds the "agent_errors" edge to the AgentError entity by IDs.
func (_u *AgentUpdate) AddAgentErrorIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddAgentErrorIDs(ids...)
	return _u
}

// AddAgentErrors adds the "agent_errors" edges to the AgentError entity.
func (_u *AgentUpdate) AddAgentErrors(v ...*AgentError) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentErrorIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *AgentUpdate) AddTaskIDs(ids ...int) *AgentUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *AgentUpdate) AddTasks(v ...*Task) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *AgentUpdate) ClearProjects() *AgentUpdate {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *AgentUpdate) RemoveProjectIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *AgentUpdate) RemoveProjects(v ...*Project) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearBenchmarks clears all "benchmarks" edges to the Benchmark entity.
func (_u *AgentUpdate) ClearBenchmarks() *AgentUpdate {
	_u.mutation.ClearBenchmarks()
	return _u
}

// RemoveBenchmarkIDs removes the "benchmarks" edge to Benchmark entities by IDs.
func (_u *AgentUpdate) RemoveBenchmarkIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveBenchmarkIDs(ids...)
	return _u
}

// RemoveBenchmarks removes "benchmarks" edges to Benchmark entities.
func (_u *AgentUpdate) RemoveBenchmarks(v ...*Benchmark) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBenchmarkIDs(ids...)
}

// ClearAgentErrors clears all "agent_errors" edges to the AgentError entity.
func (_u *AgentUpdate) ClearAgentErrors() *AgentUpdate {
	_u.mutation.ClearAgentErrors()
	return _u
}

// RemoveAgentErrorIDs removes the "agent_errors" edge to AgentError entities by IDs.
func (_u *AgentUpdate) RemoveAgentErrorIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveAgentErrorIDs(ids...)
	return _u
}

// RemoveAgentErrors removes "agent_errors" edges to AgentError entities.
func (_u *AgentUpdate) RemoveAgentErrors(v ...*AgentError) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentErrorIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *AgentUpdate) ClearTasks() *AgentUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *AgentUpdate) RemoveTaskIDs(ids ...int) *AgentUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *AgentUpdate) RemoveTasks(v ...*Task) *AgentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.HostName(); ok {
		if err := agent.HostNameValidator(v); err != nil {
			return &ValidationError{Name: "host_name", err: fmt.Errorf(`ent: validator failed for field "Agent.host_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientSignature(); ok {
		if err := agent.ClientSignatureValidator(v); err != nil {
			return &ValidationError{Name: "client_signature", err: fmt.Errorf(`ent: validator failed for field "Agent.client_signature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := agent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Agent.state": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(agent.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(agent.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.HostName(); ok {
		_spec.SetField(agent.FieldHostName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientSignature(); ok {
		_spec.SetField(agent.FieldClientSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.OperatingSystem(); ok {
		_spec.SetField(agent.FieldOperatingSystem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Devices(); ok {
		_spec.SetField(agent.FieldDevices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDevices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldDevices, value)
		})
	}
	if _u.mutation.DevicesCleared() {
		_spec.ClearField(agent.FieldDevices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(agent.FieldToken, field.TypeString, value)
	}
	if _u.mutation.TokenCleared() {
		_spec.ClearField(agent.FieldToken, field.TypeString)
	}
	if value, ok := _u.mutation.RegistrationToken(); ok {
		_spec.SetField(agent.FieldRegistrationToken, field.TypeString, value)
	}
	if _u.mutation.RegistrationTokenCleared() {
		_spec.ClearField(agent.FieldRegistrationToken, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agent.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(agent.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastIpaddress(); ok {
		_spec.SetField(agent.FieldLastIpaddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdvancedConfig(); ok {
		_spec.SetField(agent.FieldAdvancedConfig, field.TypeJSON, value)
	}
	if _u.mutation.AdvancedConfigCleared() {
		_spec.ClearField(agent.FieldAdvancedConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.ProjectsTable,
			Columns: agent.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.ProjectsTable,
			Columns: agent.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.ProjectsTable,
			Columns: agent.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BenchmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.BenchmarksTable,
			Columns: []string{agent.BenchmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBenchmarksIDs(); len(nodes) > 0 && !_u.mutation.BenchmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.BenchmarksTable,
			Columns: []string{agent.BenchmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BenchmarksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.BenchmarksTable,
			Columns: []string{agent.BenchmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AgentErrorsTable,
			Columns: []string{agent.AgentErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentErrorsIDs(); len(nodes) > 0 && !_u.mutation.AgentErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AgentErrorsTable,
			Columns: []string{agent.AgentErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AgentErrorsTable,
			Columns: []string{agent.AgentErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetLabel sets the "label" field.
func (_u *AgentUpdateOne) SetLabel(v string) *AgentUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLabel(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// ClearLabel clears the value of the "label" field.
func (_u *AgentUpdateOne) ClearLabel() *AgentUpdateOne {
	_u.mutation.ClearLabel()
	return _u
}

// SetHostName sets the "host_name" field.
func (_u *AgentUpdateOne) SetHostName(v string) *AgentUpdateOne {
	_u.mutation.SetHostName(v)
	return _u
}

// SetNillableHostName sets the "host_name" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableHostName(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetHostName(*v)
	}
	return _u
}

// SetClientSignature sets the "client_signature" field.
func (_u *AgentUpdateOne) SetClientSignature(v string) *AgentUpdateOne {
	_u.mutation.SetClientSignature(v)
	return _u
}

// SetNillableClientSignature sets the "client_signature" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableClientSignature(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetClientSignature(*v)
	}
	return _u
}

// SetOperatingSystem sets the "operating_system" field.
func (_u *AgentUpdateOne) SetOperatingSystem(v string) *AgentUpdateOne {
	_u.mutation.SetOperatingSystem(v)
	return _u
}

// SetNillableOperatingSystem sets the "operating_system" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableOperatingSystem(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetOperatingSystem(*v)
	}
	return _u
}

// SetDevices sets the "devices" field.
func (_u *AgentUpdateOne) SetDevices(v []string) *AgentUpdateOne {
	_u.mutation.SetDevices(v)
	return _u
}

// AppendDevices appends value to the "devices" field.
func (_u *AgentUpdateOne) AppendDevices(v []string) *AgentUpdateOne {
	_u.mutation.AppendDevices(v)
	return _u
}

// ClearDevices clears the value of the "devices" field.
func (_u *AgentUpdateOne) ClearDevices() *AgentUpdateOne {
	_u.mutation.ClearDevices()
	return _u
}

// SetToken sets the "token" field.
func (_u *AgentUpdateOne) SetToken(v string) *AgentUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableToken(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// ClearToken clears the value of the "token" field.
func (_u *AgentUpdateOne) ClearToken() *AgentUpdateOne {
	_u.mutation.ClearToken()
	return _u
}

// SetRegistrationToken sets the "registration_token" field.
func (_u *AgentUpdateOne) SetRegistrationToken(v string) *AgentUpdateOne {
	_u.mutation.SetRegistrationToken(v)
	return _u
}

// SetNillableRegistrationToken sets the "registration_token" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRegistrationToken(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetRegistrationToken(*v)
	}
	return _u
}

// ClearRegistrationToken clears the value of the "registration_token" field.
func (_u *AgentUpdateOne) ClearRegistrationToken() *AgentUpdateOne {
	_u.mutation.ClearRegistrationToken()
	return _u
}

// SetState sets the "state" field.
func (_u *AgentUpdateOne) SetState(v agent.State) *AgentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableState(v *agent.State) *AgentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *AgentUpdateOne) SetLastSeenAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastSeenAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *AgentUpdateOne) ClearLastSeenAt() *AgentUpdateOne {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetLastIpaddress sets the "last_ipaddress" field.
func (_u *AgentUpdateOne) SetLastIpaddress(v string) *AgentUpdateOne {
	_u.mutation.SetLastIpaddress(v)
	return _u
}

// SetNillableLastIpaddress sets the "last_ipaddress" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastIpaddress(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetLastIpaddress(*v)
	}
	return _u
}

// SetAdvancedConfig sets the "advanced_config" field.
func (_u *AgentUpdateOne) SetAdvancedConfig(v models.AdvancedAgentConfig) *AgentUpdateOne {
	_u.mutation.SetAdvancedConfig(v)
	return _u
}

// SetNillableAdvancedConfig sets the "advanced_config" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAdvancedConfig(v *models.AdvancedAgentConfig) *AgentUpdateOne {
	if v != nil {
		_u.SetAdvancedConfig(*v)
	}
	return _u
}

// ClearAdvancedConfig clears the value of the "advanced_config" field.
func (_u *AgentUpdateOne) ClearAdvancedConfig() *AgentUpdateOne {
	_u.mutation.ClearAdvancedConfig()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentUpdateOne) SetUpdatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *AgentUpdateOne) AddProjectIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *AgentUpdateOne) AddProjects(v ...*Project) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddBenchmarkIDs adds the "benchmarks" edge to the Benchmark entity by IDs.
func (_u *AgentUpdateOne) AddBenchmarkIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddBenchmarkIDs(ids...)
	return _u
}

// AddBenchmarks adds the "benchmarks" edges to the Benchmark entity.
func (_u *AgentUpdateOne) AddBenchmarks(v ...*Benchmark) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBenchmarkIDs(ids...)
}

// AddAgentErrorIDs adds the "agent_errors" edge to the AgentError entity by IDs.
func (_u *AgentUpdateOne) AddAgentErrorIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddAgentErrorIDs(ids...)
	return _u
}

// AddAgentErrors adds the "agent_errors" edges to the AgentError entity.
func (_u *AgentUpdateOne) AddAgentErrors(v ...*AgentError) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentErrorIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *AgentUpdateOne) AddTaskIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *AgentUpdateOne) AddTasks(v ...*Task) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *AgentUpdateOne) ClearProjects() *AgentUpdateOne {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *AgentUpdateOne) RemoveProjectIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *AgentUpdateOne) RemoveProjects(v ...*Project) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearBenchmarks clears all "benchmarks" edges to the Benchmark entity.
func (_u *AgentUpdateOne) ClearBenchmarks() *AgentUpdateOne {
	_u.mutation.ClearBenchmarks()
	return _u
}

// RemoveBenchmarkIDs removes the "benchmarks" edge to Benchmark entities by IDs.
func (_u *AgentUpdateOne) RemoveBenchmarkIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveBenchmarkIDs(ids...)
	return _u
}

// RemoveBenchmarks removes "benchmarks" edges to Benchmark entities.
func (_u *AgentUpdateOne) RemoveBenchmarks(v ...*Benchmark) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBenchmarkIDs(ids...)
}

// ClearAgentErrors clears all "agent_errors" edges to the AgentError entity.
func (_u *AgentUpdateOne) ClearAgentErrors() *AgentUpdateOne {
	_u.mutation.ClearAgentErrors()
	return _u
}

// RemoveAgentErrorIDs removes the "agent_errors" edge to AgentError entities by IDs.
func (_u *AgentUpdateOne) RemoveAgentErrorIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveAgentErrorIDs(ids...)
	return _u
}

// RemoveAgentErrors removes "agent_errors" edges to AgentError entities.
func (_u *AgentUpdateOne) RemoveAgentErrors(v ...*AgentError) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentErrorIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *AgentUpdateOne) ClearTasks() *AgentUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *AgentUpdateOne) RemoveTaskIDs(ids ...int) *AgentUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *AgentUpdateOne) RemoveTasks(v ...*Task) *AgentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.HostName(); ok {
		if err := agent.HostNameValidator(v); err != nil {
			return &ValidationError{Name: "host_name", err: fmt.Errorf(`ent: validator failed for field "Agent.host_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ClientSignature(); ok {
		if err := agent.ClientSignatureValidator(v); err != nil {
			return &ValidationError{Name: "client_signature", err: fmt.Errorf(`ent: validator failed for field "Agent.client_signature": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := agent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Agent.state": %w`, err)}
		}
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(agent.FieldLabel, field.TypeString, value)
	}
	if _u.mutation.LabelCleared() {
		_spec.ClearField(agent.FieldLabel, field.TypeString)
	}
	if value, ok := _u.mutation.HostName(); ok {
		_spec.SetField(agent.FieldHostName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClientSignature(); ok {
		_spec.SetField(agent.FieldClientSignature, field.TypeString, value)
	}
	if value, ok := _u.mutation.OperatingSystem(); ok {
		_spec.SetField(agent.FieldOperatingSystem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Devices(); ok {
		_spec.SetField(agent.FieldDevices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDevices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agent.FieldDevices, value)
		})
	}
	if _u.mutation.DevicesCleared() {
		_spec.ClearField(agent.FieldDevices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(agent.FieldToken, field.TypeString, value)
	}
	if _u.mutation.TokenCleared() {
		_spec.ClearField(agent.FieldToken, field.TypeString)
	}
	if value, ok := _u.mutation.RegistrationToken(); ok {
		_spec.SetField(agent.FieldRegistrationToken, field.TypeString, value)
	}
	if _u.mutation.RegistrationTokenCleared() {
		_spec.ClearField(agent.FieldRegistrationToken, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agent.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(agent.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastIpaddress(); ok {
		_spec.SetField(agent.FieldLastIpaddress, field.TypeString, value)
	}
	if value, ok := _u.mutation.AdvancedConfig(); ok {
		_spec.SetField(agent.FieldAdvancedConfig, field.TypeJSON, value)
	}
	if _u.mutation.AdvancedConfigCleared() {
		_spec.ClearField(agent.FieldAdvancedConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.ProjectsTable,
			Columns: agent.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProjectsIDs(); len(nodes) > 0 && !_u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.ProjectsTable,
			Columns: agent.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   agent.ProjectsTable,
			Columns: agent.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BenchmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.BenchmarksTable,
			Columns: []string{agent.BenchmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBenchmarksIDs(); len(nodes) > 0 && !_u.mutation.BenchmarksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.BenchmarksTable,
			Columns: []string{agent.BenchmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BenchmarksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.BenchmarksTable,
			Columns: []string{agent.BenchmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AgentErrorsTable,
			Columns: []string{agent.AgentErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentErrorsIDs(); len(nodes) > 0 && !_u.mutation.AgentErrorsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AgentErrorsTable,
			Columns: []string{agent.AgentErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AgentErrorsTable,
			Columns: []string{agent.AgentErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
