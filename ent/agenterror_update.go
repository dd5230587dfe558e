// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// AgentErrorUpdate is the builder for updating AgentError entities.
type AgentErrorUpdate struct {
	config
	hooks    []Hook
	mutation *AgentErrorMutation
}

// Where appends a list predicates to the AgentErrorUpdate builder.
func (_u *AgentErrorUpdate) Where(ps ...predicate.AgentError) *AgentErrorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *AgentErrorUpdate) SetTaskID(v int) *AgentErrorUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentErrorUpdate) SetNillableTaskID(v *int) *AgentErrorUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AgentErrorUpdate) ClearTaskID() *AgentErrorUpdate {
	_u.mutation.ClearTaskID()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AgentErrorUpdate) SetSeverity(v agenterror.Severity) *AgentErrorUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AgentErrorUpdate) SetNillableSeverity(v *agenterror.Severity) *AgentErrorUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AgentErrorUpdate) SetMessage(v string) *AgentErrorUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AgentErrorUpdate) SetNillableMessage(v *string) *AgentErrorUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *AgentErrorUpdate) SetContext(v map[string]interface{}) *AgentErrorUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *AgentErrorUpdate) ClearContext() *AgentErrorUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AgentErrorUpdate) SetTask(v *Task) *AgentErrorUpdate {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AgentErrorMutation object of the builder.
func (_u *AgentErrorUpdate) Mutation() *AgentErrorMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AgentErrorUpdate) ClearTask() *AgentErrorUpdate {
	_u.mutation.ClearTask()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentErrorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentErrorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentErrorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentErrorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentErrorUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := agenterror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentError.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := agenterror.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "AgentError.message": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentError.agent"`)
	}
	return nil
}

func (_u *AgentErrorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenterror.Table, agenterror.Columns, sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(agenterror.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(agenterror.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(agenterror.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(agenterror.FieldContext, field.TypeJSON)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenterror.TaskTable,
			Columns: []string{agenterror.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenterror.TaskTable,
			Columns: []string{agenterror.TaskColumn},
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
			err = &NotFoundError{agenterror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentErrorUpdateOne is the builder for updating a single AgentError entity.
type AgentErrorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentErrorMutation
}

// SetTaskID sets the "task_id" field.
func (_u *AgentErrorUpdateOne) SetTaskID(v int) *AgentErrorUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *AgentErrorUpdateOne) SetNillableTaskID(v *int) *AgentErrorUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// ClearTaskID clears the value of the "task_id" field.
func (_u *AgentErrorUpdateOne) ClearTaskID() *AgentErrorUpdateOne {
	_u.mutation.ClearTaskID()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *AgentErrorUpdateOne) SetSeverity(v agenterror.Severity) *AgentErrorUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *AgentErrorUpdateOne) SetNillableSeverity(v *agenterror.Severity) *AgentErrorUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *AgentErrorUpdateOne) SetMessage(v string) *AgentErrorUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AgentErrorUpdateOne) SetNillableMessage(v *string) *AgentErrorUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *AgentErrorUpdateOne) SetContext(v map[string]interface{}) *AgentErrorUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *AgentErrorUpdateOne) ClearContext() *AgentErrorUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetTask sets the "task" edge to the Task entity.
func (_u *AgentErrorUpdateOne) SetTask(v *Task) *AgentErrorUpdateOne {
	return _u.SetTaskID(v.ID)
}

// Mutation returns the AgentErrorMutation object of the builder.
func (_u *AgentErrorUpdateOne) Mutation() *AgentErrorMutation {
	return _u.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (_u *AgentErrorUpdateOne) ClearTask() *AgentErrorUpdateOne {
	_u.mutation.ClearTask()
	return _u
}

// Where appends a list predicates to the AgentErrorUpdate builder.
func (_u *AgentErrorUpdateOne) Where(ps ...predicate.AgentError) *AgentErrorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentErrorUpdateOne) Select(field string, fields ...string) *AgentErrorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentError entity.
func (_u *AgentErrorUpdateOne) Save(ctx context.Context) (*AgentError, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentErrorUpdateOne) SaveX(ctx context.Context) *AgentError {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentErrorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentErrorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentErrorUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := agenterror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentError.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Message(); ok {
		if err := agenterror.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "AgentError.message": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentError.agent"`)
	}
	return nil
}

func (_u *AgentErrorUpdateOne) sqlSave(ctx context.Context) (_node *AgentError, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agenterror.Table, agenterror.Columns, sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentError.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agenterror.FieldID)
		for _, f := range fields {
			if !agenterror.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agenterror.FieldID {
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
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(agenterror.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(agenterror.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(agenterror.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(agenterror.FieldContext, field.TypeJSON)
	}
	if _u.mutation.TaskCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenterror.TaskTable,
			Columns: []string{agenterror.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenterror.TaskTable,
			Columns: []string{agenterror.TaskColumn},
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
	_node = &AgentError{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agenterror.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
