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
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAgentID sets the "agent_id" field.
func (_u *TaskUpdate) SetAgentID(v int) *TaskUpdate {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentID(v *int) *TaskUpdate {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TaskUpdate) ClearAgentID() *TaskUpdate {
	_u.mutation.ClearAgentID()
	return _u
}

// SetState sets the "state" field.
func (_u *TaskUpdate) SetState(v task.State) *TaskUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableState(v *task.State) *TaskUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetKeyspaceOffset sets the "keyspace_offset" field.
func (_u *TaskUpdate) SetKeyspaceOffset(v int64) *TaskUpdate {
	_u.mutation.ResetKeyspaceOffset()
	_u.mutation.SetKeyspaceOffset(v)
	return _u
}

// SetNillableKeyspaceOffset sets the "keyspace_offset" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableKeyspaceOffset(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetKeyspaceOffset(*v)
	}
	return _u
}

// AddKeyspaceOffset adds value to the "keyspace_offset" field.
func (_u *TaskUpdate) AddKeyspaceOffset(v int64) *TaskUpdate {
	_u.mutation.AddKeyspaceOffset(v)
	return _u
}

// SetKeyspaceLimit sets the "keyspace_limit" field.
func (_u *TaskUpdate) SetKeyspaceLimit(v int64) *TaskUpdate {
	_u.mutation.ResetKeyspaceLimit()
	_u.mutation.SetKeyspaceLimit(v)
	return _u
}

// SetNillableKeyspaceLimit sets the "keyspace_limit" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableKeyspaceLimit(v *int64) *TaskUpdate {
	if v != nil {
		_u.SetKeyspaceLimit(*v)
	}
	return _u
}

// AddKeyspaceLimit adds value to the "keyspace_limit" field.
func (_u *TaskUpdate) AddKeyspaceLimit(v int64) *TaskUpdate {
	_u.mutation.AddKeyspaceLimit(v)
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *TaskUpdate) SetProgressPercentage(v float64) *TaskUpdate {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProgressPercentage(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *TaskUpdate) AddProgressPercentage(v float64) *TaskUpdate {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetEstimatedFinish sets the "estimated_finish" field.
func (_u *TaskUpdate) SetEstimatedFinish(v time.Time) *TaskUpdate {
	_u.mutation.SetEstimatedFinish(v)
	return _u
}

// SetNillableEstimatedFinish sets the "estimated_finish" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableEstimatedFinish(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetEstimatedFinish(*v)
	}
	return _u
}

// ClearEstimatedFinish clears the value of the "estimated_finish" field.
func (_u *TaskUpdate) ClearEstimatedFinish() *TaskUpdate {
	_u.mutation.ClearEstimatedFinish()
	return _u
}

// SetActivityTimestamp sets the "activity_timestamp" field.
func (_u *TaskUpdate) SetActivityTimestamp(v time.Time) *TaskUpdate {
	_u.mutation.SetActivityTimestamp(v)
	return _u
}

// SetNillableActivityTimestamp sets the "activity_timestamp" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableActivityTimestamp(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetActivityTimestamp(*v)
	}
	return _u
}

// SetStale sets the "stale" field.
func (_u *TaskUpdate) SetStale(v bool) *TaskUpdate {
	_u.mutation.SetStale(v)
	return _u
}

// SetNillableStale sets the "stale" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStale(v *bool) *TaskUpdate {
	if v != nil {
		_u.SetStale(*v)
	}
	return _u
}

// SetAgentSignal sets the "agent_signal" field.
func (_u *TaskUpdate) SetAgentSignal(v task.AgentSignal) *TaskUpdate {
	_u.mutation.SetAgentSignal(v)
	return _u
}

// SetNillableAgentSignal sets the "agent_signal" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAgentSignal(v *task.AgentSignal) *TaskUpdate {
	if v != nil {
		_u.SetAgentSignal(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *TaskUpdate) SetStartDate(v time.Time) *TaskUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStartDate(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *TaskUpdate) SetAgent(v *Agent) *TaskUpdate {
	return _u.SetAgentID(v.ID)
}

// AddStatusIDs adds the "statuses" edge to the HashcatStatus entity by IDs.
func (_u *TaskUpdate) AddStatusIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddStatusIDs(ids...)
	return _u
}

// AddStatuses adds the "statuses" edges to the HashcatStatus entity.
func (_u *TaskUpdate) AddStatuses(v ...*HashcatStatus) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusIDs(ids...)
}

// AddCrackResultIDs adds the "crack_results" edge to the CrackResult entity by IDs.
func (_u *TaskUpdate) AddCrackResultIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddCrackResultIDs(ids...)
	return _u
}

// AddCrackResults adds the "crack_results" edges to the CrackResult entity.
func (_u *TaskUpdate) AddCrackResults(v ...*CrackResult) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCrackResultIDs(ids...)
}

// AddErrorIDs adds the "errors" edge to the AgentError entity by IDs.
func (_u *TaskUpdate) AddErrorIDs(ids ...int) *TaskUpdate {
	_u.mutation.AddErrorIDs(ids...)
	return _u
}

// AddErrors adds the "errors" edges to the AgentError entity.
func (_u *TaskUpdate) AddErrors(v ...*AgentError) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *TaskUpdate) ClearAgent() *TaskUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// ClearStatuses clears all "statuses" edges to the HashcatStatus entity.
func (_u *TaskUpdate) ClearStatuses() *TaskUpdate {
	_u.mutation.ClearStatuses()
	return _u
}

// RemoveStatusIDs removes the "statuses" edge to HashcatStatus entities by IDs.
func (_u *TaskUpdate) RemoveStatusIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveStatusIDs(ids...)
	return _u
}

// RemoveStatuses removes "statuses" edges to HashcatStatus entities.
func (_u *TaskUpdate) RemoveStatuses(v ...*HashcatStatus) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusIDs(ids...)
}

// ClearCrackResults clears all "crack_results" edges to the CrackResult entity.
func (_u *TaskUpdate) ClearCrackResults() *TaskUpdate {
	_u.mutation.ClearCrackResults()
	return _u
}

// RemoveCrackResultIDs removes the "crack_results" edge to CrackResult entities by IDs.
func (_u *TaskUpdate) RemoveCrackResultIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveCrackResultIDs(ids...)
	return _u
}

// RemoveCrackResults removes "crack_results" edges to CrackResult entities.
func (_u *TaskUpdate) RemoveCrackResults(v ...*CrackResult) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCrackResultIDs(ids...)
}

// ClearErrors clears all "errors" edges to the AgentError entity.
func (_u *TaskUpdate) ClearErrors() *TaskUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// RemoveErrorIDs removes the "errors" edge to AgentError entities by IDs.
func (_u *TaskUpdate) RemoveErrorIDs(ids ...int) *TaskUpdate {
	_u.mutation.RemoveErrorIDs(ids...)
	return _u
}

// RemoveErrors removes "errors" edges to AgentError entities.
func (_u *TaskUpdate) RemoveErrors(v ...*AgentError) *TaskUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := task.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Task.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentSignal(); ok {
		if err := task.AgentSignalValidator(v); err != nil {
			return &ValidationError{Name: "agent_signal", err: fmt.Errorf(`ent: validator failed for field "Task.agent_signal": %w`, err)}
		}
	}
	if _u.mutation.AttackCleared() && len(_u.mutation.AttackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.attack"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(task.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KeyspaceOffset(); ok {
		_spec.SetField(task.FieldKeyspaceOffset, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedKeyspaceOffset(); ok {
		_spec.AddField(task.FieldKeyspaceOffset, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.KeyspaceLimit(); ok {
		_spec.SetField(task.FieldKeyspaceLimit, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedKeyspaceLimit(); ok {
		_spec.AddField(task.FieldKeyspaceLimit, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(task.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(task.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedFinish(); ok {
		_spec.SetField(task.FieldEstimatedFinish, field.TypeTime, value)
	}
	if _u.mutation.EstimatedFinishCleared() {
		_spec.ClearField(task.FieldEstimatedFinish, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivityTimestamp(); ok {
		_spec.SetField(task.FieldActivityTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stale(); ok {
		_spec.SetField(task.FieldStale, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentSignal(); ok {
		_spec.SetField(task.FieldAgentSignal, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(task.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusesIDs(); len(nodes) > 0 && !_u.mutation.StatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCrackResultsIDs(); len(nodes) > 0 && !_u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CrackResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorsIDs(); len(nodes) > 0 && !_u.mutation.ErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetAgentID sets the "agent_id" field.
func (_u *TaskUpdateOne) SetAgentID(v int) *TaskUpdateOne {
	_u.mutation.SetAgentID(v)
	return _u
}

// SetNillableAgentID sets the "agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentID(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentID(*v)
	}
	return _u
}

// ClearAgentID clears the value of the "agent_id" field.
func (_u *TaskUpdateOne) ClearAgentID() *TaskUpdateOne {
	_u.mutation.ClearAgentID()
	return _u
}

// SetState sets the "state" field.
func (_u *TaskUpdateOne) SetState(v task.State) *TaskUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableState(v *task.State) *TaskUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetKeyspaceOffset sets the "keyspace_offset" field.
func (_u *TaskUpdateOne) SetKeyspaceOffset(v int64) *TaskUpdateOne {
	_u.mutation.ResetKeyspaceOffset()
	_u.mutation.SetKeyspaceOffset(v)
	return _u
}

// SetNillableKeyspaceOffset sets the "keyspace_offset" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableKeyspaceOffset(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetKeyspaceOffset(*v)
	}
	return _u
}

// AddKeyspaceOffset adds value to the "keyspace_offset" field.
func (_u *TaskUpdateOne) AddKeyspaceOffset(v int64) *TaskUpdateOne {
	_u.mutation.AddKeyspaceOffset(v)
	return _u
}

// SetKeyspaceLimit sets the "keyspace_limit" field.
func (_u *TaskUpdateOne) SetKeyspaceLimit(v int64) *TaskUpdateOne {
	_u.mutation.ResetKeyspaceLimit()
	_u.mutation.SetKeyspaceLimit(v)
	return _u
}

// SetNillableKeyspaceLimit sets the "keyspace_limit" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableKeyspaceLimit(v *int64) *TaskUpdateOne {
	if v != nil {
		_u.SetKeyspaceLimit(*v)
	}
	return _u
}

// AddKeyspaceLimit adds value to the "keyspace_limit" field.
func (_u *TaskUpdateOne) AddKeyspaceLimit(v int64) *TaskUpdateOne {
	_u.mutation.AddKeyspaceLimit(v)
	return _u
}

// SetProgressPercentage sets the "progress_percentage" field.
func (_u *TaskUpdateOne) SetProgressPercentage(v float64) *TaskUpdateOne {
	_u.mutation.ResetProgressPercentage()
	_u.mutation.SetProgressPercentage(v)
	return _u
}

// SetNillableProgressPercentage sets the "progress_percentage" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProgressPercentage(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetProgressPercentage(*v)
	}
	return _u
}

// AddProgressPercentage adds value to the "progress_percentage" field.
func (_u *TaskUpdateOne) AddProgressPercentage(v float64) *TaskUpdateOne {
	_u.mutation.AddProgressPercentage(v)
	return _u
}

// SetEstimatedFinish sets the "estimated_finish" field.
func (_u *TaskUpdateOne) SetEstimatedFinish(v time.Time) *TaskUpdateOne {
	_u.mutation.SetEstimatedFinish(v)
	return _u
}

// SetNillableEstimatedFinish sets the "estimated_finish" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEstimatedFinish(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetEstimatedFinish(*v)
	}
	return _u
}

// ClearEstimatedFinish clears the value of the "estimated_finish" field.
func (_u *TaskUpdateOne) ClearEstimatedFinish() *TaskUpdateOne {
	_u.mutation.ClearEstimatedFinish()
	return _u
}

// SetActivityTimestamp sets the "activity_timestamp" field.
func (_u *TaskUpdateOne) SetActivityTimestamp(v time.Time) *TaskUpdateOne {
	_u.mutation.SetActivityTimestamp(v)
	return _u
}

// SetNillableActivityTimestamp sets the "activity_timestamp" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableActivityTimestamp(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetActivityTimestamp(*v)
	}
	return _u
}

// SetStale sets the "stale" field.
func (_u *TaskUpdateOne) SetStale(v bool) *TaskUpdateOne {
	_u.mutation.SetStale(v)
	return _u
}

// SetNillableStale sets the "stale" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStale(v *bool) *TaskUpdateOne {
	if v != nil {
		_u.SetStale(*v)
	}
	return _u
}

// SetAgentSignal sets the "agent_signal" field.
func (_u *TaskUpdateOne) SetAgentSignal(v task.AgentSignal) *TaskUpdateOne {
	_u.mutation.SetAgentSignal(v)
	return _u
}

// SetNillableAgentSignal sets the "agent_signal" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAgentSignal(v *task.AgentSignal) *TaskUpdateOne {
	if v != nil {
		_u.SetAgentSignal(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *TaskUpdateOne) SetStartDate(v time.Time) *TaskUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStartDate(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_u *TaskUpdateOne) SetAgent(v *Agent) *TaskUpdateOne {
	return _u.SetAgentID(v.ID)
}

// AddStatusIDs adds the "statuses" edge to the HashcatStatus entity by IDs.
func (_u *TaskUpdateOne) AddStatusIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddStatusIDs(ids...)
	return _u
}

// AddStatuses adds the "statuses" edges to the HashcatStatus entity.
func (_u *TaskUpdateOne) AddStatuses(v ...*HashcatStatus) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStatusIDs(ids...)
}

// AddCrackResultIDs adds the "crack_results" edge to the CrackResult entity by IDs.
func (_u *TaskUpdateOne) AddCrackResultIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddCrackResultIDs(ids...)
	return _u
}

// AddCrackResults adds the "crack_results" edges to the CrackResult entity.
func (_u *TaskUpdateOne) AddCrackResults(v ...*CrackResult) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCrackResultIDs(ids...)
}

// AddErrorIDs adds the "errors" edge to the AgentError entity by IDs.
func (_u *TaskUpdateOne) AddErrorIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.AddErrorIDs(ids...)
	return _u
}

// AddErrors adds the "errors" edges to the AgentError entity.
func (_u *TaskUpdateOne) AddErrors(v ...*AgentError) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddErrorIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (_u *TaskUpdateOne) ClearAgent() *TaskUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// ClearStatuses clears all "statuses" edges to the HashcatStatus entity.
func (_u *TaskUpdateOne) ClearStatuses() *TaskUpdateOne {
	_u.mutation.ClearStatuses()
	return _u
}

// RemoveStatusIDs removes the "statuses" edge to HashcatStatus entities by IDs.
func (_u *TaskUpdateOne) RemoveStatusIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveStatusIDs(ids...)
	return _u
}

// RemoveStatuses removes "statuses" edges to HashcatStatus entities.
func (_u *TaskUpdateOne) RemoveStatuses(v ...*HashcatStatus) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStatusIDs(ids...)
}

// ClearCrackResults clears all "crack_results" edges to the CrackResult entity.
func (_u *TaskUpdateOne) ClearCrackResults() *TaskUpdateOne {
	_u.mutation.ClearCrackResults()
	return _u
}

// RemoveCrackResultIDs removes the "crack_results" edge to CrackResult entities by IDs.
func (_u *TaskUpdateOne) RemoveCrackResultIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveCrackResultIDs(ids...)
	return _u
}

// RemoveCrackResults removes "crack_results" edges to CrackResult entities.
func (_u *TaskUpdateOne) RemoveCrackResults(v ...*CrackResult) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCrackResultIDs(ids...)
}

// ClearErrors clears all "errors" edges to the AgentError entity.
func (_u *TaskUpdateOne) ClearErrors() *TaskUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// RemoveErrorIDs removes the "errors" edge to AgentError entities by IDs.
func (_u *TaskUpdateOne) RemoveErrorIDs(ids ...int) *TaskUpdateOne {
	_u.mutation.RemoveErrorIDs(ids...)
	return _u
}

// RemoveErrors removes "errors" edges to AgentError entities.
func (_u *TaskUpdateOne) RemoveErrors(v ...*AgentError) *TaskUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveErrorIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := task.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Task.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AgentSignal(); ok {
		if err := task.AgentSignalValidator(v); err != nil {
			return &ValidationError{Name: "agent_signal", err: fmt.Errorf(`ent: validator failed for field "Task.agent_signal": %w`, err)}
		}
	}
	if _u.mutation.AttackCleared() && len(_u.mutation.AttackIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.attack"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(task.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.KeyspaceOffset(); ok {
		_spec.SetField(task.FieldKeyspaceOffset, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedKeyspaceOffset(); ok {
		_spec.AddField(task.FieldKeyspaceOffset, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.KeyspaceLimit(); ok {
		_spec.SetField(task.FieldKeyspaceLimit, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedKeyspaceLimit(); ok {
		_spec.AddField(task.FieldKeyspaceLimit, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProgressPercentage(); ok {
		_spec.SetField(task.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercentage(); ok {
		_spec.AddField(task.FieldProgressPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EstimatedFinish(); ok {
		_spec.SetField(task.FieldEstimatedFinish, field.TypeTime, value)
	}
	if _u.mutation.EstimatedFinishCleared() {
		_spec.ClearField(task.FieldEstimatedFinish, field.TypeTime)
	}
	if value, ok := _u.mutation.ActivityTimestamp(); ok {
		_spec.SetField(task.FieldActivityTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stale(); ok {
		_spec.SetField(task.FieldStale, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AgentSignal(); ok {
		_spec.SetField(task.FieldAgentSignal, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(task.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AgentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStatusesIDs(); len(nodes) > 0 && !_u.mutation.StatusesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StatusesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCrackResultsIDs(); len(nodes) > 0 && !_u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CrackResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedErrorsIDs(); len(nodes) > 0 && !_u.mutation.ErrorsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ErrorsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
