// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAttackID sets the "attack_id" field.
func (_c *TaskCreate) SetAttackID(v int) *TaskCreate {
	_c.mutation.SetAttackID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *TaskCreate) SetAgentID(v int) *TaskCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAgentID(v *int) *TaskCreate {
	if v != nil {
		_c.SetAgentID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *TaskCreate) SetState(v task.State) *TaskCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *TaskCreate) SetNillableState(v *task.State) *TaskCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetKeyspaceOffset sets the "keyspace_offset" field.
func (_c *TaskCreate) SetKeyspaceOffset(v int64) *TaskCreate {
	_c.mutation.SetKeyspaceOffset(v)
	return _c
}

// SetNillableKeyspaceOffset sets the "keyspace_offset" field if the given value is not nil.
func (_c *TaskCreate) SetNillableKeyspaceOffset(v *int64) *TaskCreate {
	if v != nil {
		_c.SetKeyspaceOffset(*v)
	}
	return _c
}

// SetKeyspaceLimit sets the "keyspace_limit" field.
func (_c *TaskCreate) SetKeyspaceLimit(v int64) *TaskCreate {
	_c.mutation.SetKeyspaceLimit(v)
	return _c
}

// SetNillableKeyspaceLimit sets the "keyspace_limit" field if the given value is not nil.
func (_c *TaskCreate) SetNillableKeyspaceLimit(v *int64) *TaskCreate {
	if v != nil {
		_c.SetKeyspaceLimit(*v)
	}
	return _c
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_c *TaskCreate) SetProgressPercentage(v float64) *TaskCreate {
	_c.mutation.SetProgressPercentage(v)
	return _c
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_c *TaskCreate) SetNillableProgressPercentage(v *float64) *TaskCreate {
	if v != nil {
		_c.SetProgressPercentage(*v)
	}
	return _c
}

// SetEstimatedFinish sets the "estimated_finish" field.
func (_c *TaskCreate) SetEstimatedFinish(v time.Time) *TaskCreate {
	_c.mutation.SetEstimatedFinish(v)
	return _c
}

// SetNillableEstimatedFinish sets the "estimated_finish" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstimatedFinish(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetEstimatedFinish(*v)
	}
	return _c
}

// SetActivityTimestamp sets the "activity_timestamp" field.
func (_c *TaskCreate) SetActivityTimestamp(v time.Time) *TaskCreate {
	_c.mutation.SetActivityTimestamp(v)
	return _c
}

// SetNillableActivityTimestamp sets the "activity_timestamp" field if the given value is not nil.
func (_c *TaskCreate) SetNillableActivityTimestamp(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetActivityTimestamp(*v)
	}
	return _c
}

// SetStale sets the "stale" field.
func (_c *TaskCreate) SetStale(v bool) *TaskCreate {
	_c.mutation.SetStale(v)
	return _c
}

// SetNillableStale sets the "stale" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStale(v *bool) *TaskCreate {
	if v != nil {
		_c.SetStale(*v)
	}
	return _c
}

// SetAgentSignal sets the "agent_signal" field.
func (_c *TaskCreate) SetAgentSignal(v task.AgentSignal) *TaskCreate {
	_c.mutation.SetAgentSignal(v)
	return _c
}

// SetNillableAgentSignal sets the "agent_signal" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAgentSignal(v *task.AgentSignal) *TaskCreate {
	if v != nil {
		_c.SetAgentSignal(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *TaskCreate) SetStartDate(v time.Time) *TaskCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartDate(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAttack sets the "attack" edge to the Attack entity.
func (_c *TaskCreate) SetAttack(v *Attack) *TaskCreate {
	return _c.SetAttackID(v.ID)
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *TaskCreate) SetAgent(v *Agent) *TaskCreate {
	return _c.SetAgentID(v.ID)
}

// AddStatusIDs adds the "statuses" edge to the HashcatStatus entity by IDs.
func (_c *TaskCreate) AddStatusIDs(ids ...int) *TaskCreate {
	_c.mutation.AddStatusIDs(ids...)
	return _c
}

// AddStatuses adds the "statuses" edges to the HashcatStatus entity.
func (_c *TaskCreate) AddStatuses(v ...*HashcatStatus) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStatusIDs(ids...)
}

// AddCrackResultIDs adds the "crack_results" edge to the CrackResult entity by IDs.
func (_c *TaskCreate) AddCrackResultIDs(ids ...int) *TaskCreate {
	_c.mutation.AddCrackResultIDs(ids...)
	return _c
}

// AddCrackResults adds the "crack_results" edges to the CrackResult entity.
func (_c *TaskCreate) AddCrackResults(v ...*CrackResult) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCrackResultIDs(ids...)
}

// AddErrorIDs adds the "errors" edge to the AgentError entity by IDs.
func (_c *TaskCreate) AddErrorIDs(ids ...int) *TaskCreate {
	_c.mutation.AddErrorIDs(ids...)
	return _c
}

// AddErrors adds the "errors" edges to the AgentError entity.
func (_c *TaskCreate) AddErrors(v ...*AgentError) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddErrorIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := task.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.KeyspaceOffset(); !ok {
		v := task.DefaultKeyspaceOffset
		_c.mutation.SetKeyspaceOffset(v)
	}
	if _, ok := _c.mutation.KeyspaceLimit(); !ok {
		v := task.DefaultKeyspaceLimit
		_c.mutation.SetKeyspaceLimit(v)
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		v := task.DefaultProgressPercentage
		_c.mutation.SetProgressPercentage(v)
	}
	if _, ok := _c.mutation.ActivityTimestamp(); !ok {
		v := task.DefaultActivityTimestamp()
		_c.mutation.SetActivityTimestamp(v)
	}
	if _, ok := _c.mutation.Stale(); !ok {
		v := task.DefaultStale
		_c.mutation.SetStale(v)
	}
	if _, ok := _c.mutation.AgentSignal(); !ok {
		v := task.DefaultAgentSignal
		_c.mutation.SetAgentSignal(v)
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		v := task.DefaultStartDate()
		_c.mutation.SetStartDate(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.AttackID(); !ok {
		return &ValidationError{Name: "attack_id", err: errors.New(`ent: missing required field "Task.attack_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Task.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := task.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Task.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.KeyspaceOffset(); !ok {
		return &ValidationError{Name: "keyspace_offset", err: errors.New(`ent: missing required field "Task.keyspace_offset"`)}
	}
	if _, ok := _c.mutation.KeyspaceLimit(); !ok {
		return &ValidationError{Name: "keyspace_limit", err: errors.New(`ent: missing required field "Task.keyspace_limit"`)}
	}
	if _, ok := _c.mutation.ProgressPercentage(); !ok {
		return &ValidationError{Name: "progress_percentage", err: errors.New(`ent: missing required field "Task.progress_percentage"`)}
	}
	if _, ok := _c.mutation.ActivityTimestamp(); !ok {
		return &ValidationError{Name: "activity_timestamp", err: errors.New(`ent: missing required field "Task.activity_timestamp"`)}
	}
	if _, ok := _c.mutation.Stale(); !ok {
		return &ValidationError{Name: "stale", err: errors.New(`ent: missing required field "Task.stale"`)}
	}
	if _, ok := _c.mutation.AgentSignal(); !ok {
		return &ValidationError{Name: "agent_signal", err: errors.New(`ent: missing required field "Task.agent_signal"`)}
	}
	if v, ok := _c.mutation.AgentSignal(); ok {
		if err := task.AgentSignalValidator(v); err != nil {
			return &ValidationError{Name: "agent_signal", err: fmt.Errorf(`ent: validator failed for field "Task.agent_signal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Task.start_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.AttackIDs()) == 0 {
		return &ValidationError{Name: "attack", err: errors.New(`ent: missing required edge "Task.attack"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(task.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.KeyspaceOffset(); ok {
		_spec.SetField(task.FieldKeyspaceOffset, field.TypeInt64, value)
		_node.KeyspaceOffset = value
	}
	if value, ok := _c.mutation.KeyspaceLimit(); ok {
		_spec.SetField(task.FieldKeyspaceLimit, field.TypeInt64, value)
		_node.KeyspaceLimit = value
	}
	if value, ok := _c.mutation.ProgressPercentage(); ok {
		_spec.SetField(task.FieldProgressPercentage, field.TypeFloat64, value)
		_node.ProgressPercentage = value
	}
	if value, ok := _c.mutation.EstimatedFinish(); ok {
		_spec.SetField(task.FieldEstimatedFinish, field.TypeTime, value)
		_node.EstimatedFinish = &value
	}
	if value, ok := _c.mutation.ActivityTimestamp(); ok {
		_spec.SetField(task.FieldActivityTimestamp, field.TypeTime, value)
		_node.ActivityTimestamp = value
	}
	if value, ok := _c.mutation.Stale(); ok {
		_spec.SetField(task.FieldStale, field.TypeBool, value)
		_node.Stale = value
	}
	if value, ok := _c.mutation.AgentSignal(); ok {
		_spec.SetField(task.FieldAgentSignal, field.TypeEnum, value)
		_node.AgentSignal = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(task.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AttackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AttackTable,
			Columns: []string{task.AttackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AttackID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AgentTable,
			Columns: []string{task.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AgentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StatusesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.StatusesTable,
			Columns: []string{task.StatusesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hashcatstatus.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CrackResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CrackResultsTable,
			Columns: []string{task.CrackResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crackresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ErrorsTable,
			Columns: []string{task.ErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetAttackID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetAttackID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *TaskUpsert) SetAgentID(v int) *TaskUpsert {
	u.Set(task.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAgentID() *TaskUpsert {
	u.SetExcluded(task.FieldAgentID)
	return u
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TaskUpsert) ClearAgentID() *TaskUpsert {
	u.SetNull(task.FieldAgentID)
	return u
}

// SetState sets the "state" field.
func (u *TaskUpsert) SetState(v task.State) *TaskUpsert {
	u.Set(task.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *TaskUpsert) UpdateState() *TaskUpsert {
	u.SetExcluded(task.FieldState)
	return u
}

// SetKeyspaceOffset sets the "keyspace_offset" field.
func (u *TaskUpsert) SetKeyspaceOffset(v int64) *TaskUpsert {
	u.Set(task.FieldKeyspaceOffset, v)
	return u
}

// UpdateKeyspaceOffset sets the "keyspace_offset" field to the value that was provided on create.
func (u *TaskUpsert) UpdateKeyspaceOffset() *TaskUpsert {
	u.SetExcluded(task.FieldKeyspaceOffset)
	return u
}

// AddKeyspaceOffset adds v to the "keyspace_offset" field.
func (u *TaskUpsert) AddKeyspaceOffset(v int64) *TaskUpsert {
	u.Add(task.FieldKeyspaceOffset, v)
	return u
}

// SetKeyspaceLimit sets the "keyspace_limit" field.
func (u *TaskUpsert) SetKeyspaceLimit(v int64) *TaskUpsert {
	u.Set(task.FieldKeyspaceLimit, v)
	return u
}

// UpdateKeyspaceLimit sets the "keyspace_limit" field to the value that was provided on create.
func (u *TaskUpsert) UpdateKeyspaceLimit() *TaskUpsert {
	u.SetExcluded(task.FieldKeyspaceLimit)
	return u
}

// AddKeyspaceLimit adds v to the "keyspace_limit" field.
func (u *TaskUpsert) AddKeyspaceLimit(v int64) *TaskUpsert {
	u.Add(task.FieldKeyspaceLimit, v)
	return u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (u *TaskUpsert) SetProgressPercentage(v float64) *TaskUpsert {
	u.Set(task.FieldProgressPercentage, v)
	return u
}

// UpdateProgressPercentage sets the "progress_percentage" field to the value that was provided on create.
func (u *TaskUpsert) UpdateProgressPercentage() *TaskUpsert {
	u.SetExcluded(task.FieldProgressPercentage)
	return u
}

// AddProgressPercentage adds v to the "progress_percentage" field.
func (u *TaskUpsert) AddProgressPercentage(v float64) *TaskUpsert {
	u.Add(task.FieldProgressPercentage, v)
	return u
}

// SetEstimatedFinish sets the "estimated_finish" field.
func (u *TaskUpsert) SetEstimatedFinish(v time.Time) *TaskUpsert {
	u.Set(task.FieldEstimatedFinish, v)
	return u
}

// UpdateEstimatedFinish sets the "estimated_finish" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEstimatedFinish() *TaskUpsert {
	u.SetExcluded(task.FieldEstimatedFinish)
	return u
}

// ClearEstimatedFinish clears the value of the "estimated_finish" field.
func (u *TaskUpsert) ClearEstimatedFinish() *TaskUpsert {
	u.SetNull(task.FieldEstimatedFinish)
	return u
}

// SetActivityTimestamp sets the "activity_timestamp" field.
func (u *TaskUpsert) SetActivityTimestamp(v time.Time) *TaskUpsert {
	u.Set(task.FieldActivityTimestamp, v)
	return u
}

// UpdateActivityTimestamp sets the "activity_timestamp" field to the value that was provided on create.
func (u *TaskUpsert) UpdateActivityTimestamp() *TaskUpsert {
	u.SetExcluded(task.FieldActivityTimestamp)
	return u
}

// SetStale sets the "stale" field.
func (u *TaskUpsert) SetStale(v bool) *TaskUpsert {
	u.Set(task.FieldStale, v)
	return u
}

// UpdateStale sets the "stale" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStale() *TaskUpsert {
	u.SetExcluded(task.FieldStale)
	return u
}

// SetAgentSignal sets the "agent_signal" field.
func (u *TaskUpsert) SetAgentSignal(v task.AgentSignal) *TaskUpsert {
	u.Set(task.FieldAgentSignal, v)
	return u
}

// UpdateAgentSignal sets the "agent_signal" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAgentSignal() *TaskUpsert {
	u.SetExcluded(task.FieldAgentSignal)
	return u
}

// SetStartDate sets the "start_date" field.
func (u *TaskUpsert) SetStartDate(v time.Time) *TaskUpsert {
	u.Set(task.FieldStartDate, v)
	return u
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStartDate() *TaskUpsert {
	u.SetExcluded(task.FieldStartDate)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.AttackID(); exists {
			s.SetIgnore(task.FieldAttackID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *TaskUpsertOne) SetAgentID(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAgentID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TaskUpsertOne) ClearAgentID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAgentID()
	})
}

// SetState sets the "state" field.
func (u *TaskUpsertOne) SetState(v task.State) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateState() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateState()
	})
}

// SetKeyspaceOffset sets the "keyspace_offset" field.
func (u *TaskUpsertOne) SetKeyspaceOffset(v int64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetKeyspaceOffset(v)
	})
}

// AddKeyspaceOffset adds v to the "keyspace_offset" field.
func (u *TaskUpsertOne) AddKeyspaceOffset(v int64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddKeyspaceOffset(v)
	})
}

// UpdateKeyspaceOffset sets the "keyspace_offset" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateKeyspaceOffset() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateKeyspaceOffset()
	})
}

// SetKeyspaceLimit sets the "keyspace_limit" field.
func (u *TaskUpsertOne) SetKeyspaceLimit(v int64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetKeyspaceLimit(v)
	})
}

// AddKeyspaceLimit adds v to the "keyspace_limit" field.
func (u *TaskUpsertOne) AddKeyspaceLimit(v int64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddKeyspaceLimit(v)
	})
}

// UpdateKeyspaceLimit sets the "keyspace_limit" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateKeyspaceLimit() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateKeyspaceLimit()
	})
}

// SetProgressPercentage sets the "progress_percentage" field.
func (u *TaskUpsertOne) SetProgressPercentage(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressPercentage(v)
	})
}

// AddProgressPercentage adds v to the "progress_percentage" field.
func (u *TaskUpsertOne) AddProgressPercentage(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgressPercentage(v)
	})
}

// UpdateProgressPercentage sets the "progress_percentage" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateProgressPercentage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressPercentage()
	})
}

// SetEstimatedFinish sets the "estimated_finish" field.
func (u *TaskUpsertOne) SetEstimatedFinish(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedFinish(v)
	})
}

// UpdateEstimatedFinish sets the "estimated_finish" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEstimatedFinish() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedFinish()
	})
}

// ClearEstimatedFinish clears the value of the "estimated_finish" field.
func (u *TaskUpsertOne) ClearEstimatedFinish() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedFinish()
	})
}

// SetActivityTimestamp sets the "activity_timestamp" field.
func (u *TaskUpsertOne) SetActivityTimestamp(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetActivityTimestamp(v)
	})
}

// UpdateActivityTimestamp sets the "activity_timestamp" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateActivityTimestamp() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActivityTimestamp()
	})
}

// SetStale sets the "stale" field.
func (u *TaskUpsertOne) SetStale(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStale(v)
	})
}

// UpdateStale sets the "stale" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStale() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStale()
	})
}

// SetAgentSignal sets the "agent_signal" field.
func (u *TaskUpsertOne) SetAgentSignal(v task.AgentSignal) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAgentSignal(v)
	})
}

// UpdateAgentSignal sets the "agent_signal" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAgentSignal() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAgentSignal()
	})
}

// SetStartDate sets the "start_date" field.
func (u *TaskUpsertOne) SetStartDate(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStartDate() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartDate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetAttackID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.AttackID(); exists {
				s.SetIgnore(task.FieldAttackID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *TaskUpsertBulk) SetAgentID(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAgentID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAgentID()
	})
}

// ClearAgentID clears the value of the "agent_id" field.
func (u *TaskUpsertBulk) ClearAgentID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAgentID()
	})
}

// SetState sets the "state" field.
func (u *TaskUpsertBulk) SetState(v task.State) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateState() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateState()
	})
}

// SetKeyspaceOffset sets the "keyspace_offset" field.
func (u *TaskUpsertBulk) SetKeyspaceOffset(v int64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetKeyspaceOffset(v)
	})
}

// AddKeyspaceOffset adds v to the "keyspace_offset" field.
func (u *TaskUpsertBulk) AddKeyspaceOffset(v int64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddKeyspaceOffset(v)
	})
}

// UpdateKeyspaceOffset sets the "keyspace_offset" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateKeyspaceOffset() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateKeyspaceOffset()
	})
}

// SetKeyspaceLimit sets the "keyspace_limit" field.
func (u *TaskUpsertBulk) SetKeyspaceLimit(v int64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetKeyspaceLimit(v)
	})
}

// AddKeyspaceLimit adds v to the "keyspace_limit" field.
func (u *TaskUpsertBulk) AddKeyspaceLimit(v int64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddKeyspaceLimit(v)
	})
}

// UpdateKeyspaceLimit sets the "keyspace_limit" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateKeyspaceLimit() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateKeyspaceLimit()
	})
}

// SetProgressPercentage sets the "progress_percentage" field.
func (u *TaskUpsertBulk) SetProgressPercentage(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetProgressPercentage(v)
	})
}

// AddProgressPercentage adds v to the "progress_percentage" field.
func (u *TaskUpsertBulk) AddProgressPercentage(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddProgressPercentage(v)
	})
}

// UpdateProgressPercentage sets the "progress_percentage" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateProgressPercentage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateProgressPercentage()
	})
}

// SetEstimatedFinish sets the "estimated_finish" field.
func (u *TaskUpsertBulk) SetEstimatedFinish(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedFinish(v)
	})
}

// UpdateEstimatedFinish sets the "estimated_finish" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEstimatedFinish() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedFinish()
	})
}

// ClearEstimatedFinish clears the value of the "estimated_finish" field.
func (u *TaskUpsertBulk) ClearEstimatedFinish() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedFinish()
	})
}

// SetActivityTimestamp sets the "activity_timestamp" field.
func (u *TaskUpsertBulk) SetActivityTimestamp(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetActivityTimestamp(v)
	})
}

// UpdateActivityTimestamp sets the "activity_timestamp" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateActivityTimestamp() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateActivityTimestamp()
	})
}

// SetStale sets the "stale" field.
func (u *TaskUpsertBulk) SetStale(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStale(v)
	})
}

// UpdateStale sets the "stale" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStale() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStale()
	})
}

// SetAgentSignal sets the "agent_signal" field.
func (u *TaskUpsertBulk) SetAgentSignal(v task.AgentSignal) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAgentSignal(v)
	})
}

// UpdateAgentSignal sets the "agent_signal" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAgentSignal() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAgentSignal()
	})
}

// SetStartDate sets the "start_date" field.
func (u *TaskUpsertBulk) SetStartDate(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartDate(v)
	})
}

// UpdateStartDate sets the "start_date" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStartDate() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartDate()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
