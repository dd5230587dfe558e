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
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// BenchmarkUpdate is the builder for updating Benchmark entities.
type BenchmarkUpdate struct {
	config
	hooks    []Hook
	mutation *BenchmarkMutation
}

// Where appends a list predicates to the BenchmarkUpdate builder.
func (_u *BenchmarkUpdate) Where(ps ...predicate.Benchmark) *BenchmarkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHashType sets the "hash_type" field.
func (_u *BenchmarkUpdate) SetHashType(v int) *BenchmarkUpdate {
	_u.mutation.ResetHashType()
	_u.mutation.SetHashType(v)
	return _u
}

// SetNillableHashType sets the "hash_type" field if the given value is not nil.
func (_u *BenchmarkUpdate) SetNillableHashType(v *int) *BenchmarkUpdate {
	if v != nil {
		_u.SetHashType(*v)
	}
	return _u
}

// AddHashType adds value to the "hash_type" field.
func (_u *BenchmarkUpdate) AddHashType(v int) *BenchmarkUpdate {
	_u.mutation.AddHashType(v)
	return _u
}

// SetDevice sets the "device" field.
func (_u *BenchmarkUpdate) SetDevice(v int) *BenchmarkUpdate {
	_u.mutation.ResetDevice()
	_u.mutation.SetDevice(v)
	return _u
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_u *BenchmarkUpdate) SetNillableDevice(v *int) *BenchmarkUpdate {
	if v != nil {
		_u.SetDevice(*v)
	}
	return _u
}

// AddDevice adds value to the "device" field.
func (_u *BenchmarkUpdate) AddDevice(v int) *BenchmarkUpdate {
	_u.mutation.AddDevice(v)
	return _u
}

// SetHashSpeed sets the "hash_speed" field.
func (_u *BenchmarkUpdate) SetHashSpeed(v float64) *BenchmarkUpdate {
	_u.mutation.ResetHashSpeed()
	_u.mutation.SetHashSpeed(v)
	return _u
}

// SetNillableHashSpeed sets the "hash_speed" field if the given value is not nil.
func (_u *BenchmarkUpdate) SetNillableHashSpeed(v *float64) *BenchmarkUpdate {
	if v != nil {
		_u.SetHashSpeed(*v)
	}
	return _u
}

// AddHashSpeed adds value to the "hash_speed" field.
func (_u *BenchmarkUpdate) AddHashSpeed(v float64) *BenchmarkUpdate {
	_u.mutation.AddHashSpeed(v)
	return _u
}

// SetRuntimeMs sets the "runtime_ms" field.
func (_u *BenchmarkUpdate) SetRuntimeMs(v int64) *BenchmarkUpdate {
	_u.mutation.ResetRuntimeMs()
	_u.mutation.SetRuntimeMs(v)
	return _u
}

// SetNillableRuntimeMs sets the "runtime_ms" field if the given value is not nil.
func (_u *BenchmarkUpdate) SetNillableRuntimeMs(v *int64) *BenchmarkUpdate {
	if v != nil {
		_u.SetRuntimeMs(*v)
	}
	return _u
}

// AddRuntimeMs adds value to the "runtime_ms" field.
func (_u *BenchmarkUpdate) AddRuntimeMs(v int64) *BenchmarkUpdate {
	_u.mutation.AddRuntimeMs(v)
	return _u
}

// SetMeasuredAt sets the "measured_at" field.
func (_u *BenchmarkUpdate) SetMeasuredAt(v time.Time) *BenchmarkUpdate {
	_u.mutation.SetMeasuredAt(v)
	return _u
}

// SetNillableMeasuredAt sets the "measured_at" field if the given value is not nil.
func (_u *BenchmarkUpdate) SetNillableMeasuredAt(v *time.Time) *BenchmarkUpdate {
	if v != nil {
		_u.SetMeasuredAt(*v)
	}
	return _u
}

// Mutation returns the BenchmarkMutation object of the builder.
func (_u *BenchmarkUpdate) Mutation() *BenchmarkMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BenchmarkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BenchmarkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BenchmarkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BenchmarkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BenchmarkUpdate) check() error {
	if v, ok := _u.mutation.HashType(); ok {
		if err := benchmark.HashTypeValidator(v); err != nil {
			return &ValidationError{Name: "hash_type", err: fmt.Errorf(`ent: validator failed for field "Benchmark.hash_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Device(); ok {
		if err := benchmark.DeviceValidator(v); err != nil {
			return &ValidationError{Name: "device", err: fmt.Errorf(`ent: validator failed for field "Benchmark.device": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Benchmark.agent"`)
	}
	return nil
}

func (_u *BenchmarkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(benchmark.Table, benchmark.Columns, sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HashType(); ok {
		_spec.SetField(benchmark.FieldHashType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHashType(); ok {
		_spec.AddField(benchmark.FieldHashType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Device(); ok {
		_spec.SetField(benchmark.FieldDevice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDevice(); ok {
		_spec.AddField(benchmark.FieldDevice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HashSpeed(); ok {
		_spec.SetField(benchmark.FieldHashSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHashSpeed(); ok {
		_spec.AddField(benchmark.FieldHashSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RuntimeMs(); ok {
		_spec.SetField(benchmark.FieldRuntimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRuntimeMs(); ok {
		_spec.AddField(benchmark.FieldRuntimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MeasuredAt(); ok {
		_spec.SetField(benchmark.FieldMeasuredAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{benchmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BenchmarkUpdateOne is the builder for updating a single Benchmark entity.
type BenchmarkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BenchmarkMutation
}

// SetHashType sets the "hash_type" field.
func (_u *BenchmarkUpdateOne) SetHashType(v int) *BenchmarkUpdateOne {
	_u.mutation.ResetHashType()
	_u.mutation.SetHashType(v)
	return _u
}

// SetNillableHashType sets the "hash_type" field if the given value is not nil.
func (_u *BenchmarkUpdateOne) SetNillableHashType(v *int) *BenchmarkUpdateOne {
	if v != nil {
		_u.SetHashType(*v)
	}
	return _u
}

// AddHashType adds value to the "hash_type" field.
func (_u *BenchmarkUpdateOne) AddHashType(v int) *BenchmarkUpdateOne {
	_u.mutation.AddHashType(v)
	return _u
}

// SetDevice sets the "device" field.
func (_u *BenchmarkUpdateOne) SetDevice(v int) *BenchmarkUpdateOne {
	_u.mutation.ResetDevice()
	_u.mutation.SetDevice(v)
	return _u
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_u *BenchmarkUpdateOne) SetNillableDevice(v *int) *BenchmarkUpdateOne {
	if v != nil {
		_u.SetDevice(*v)
	}
	return _u
}

// AddDevice adds value to the "device" field.
func (_u *BenchmarkUpdateOne) AddDevice(v int) *BenchmarkUpdateOne {
	_u.mutation.AddDevice(v)
	return _u
}

// SetHashSpeed sets the "hash_speed" field.
func (_u *BenchmarkUpdateOne) SetHashSpeed(v float64) *BenchmarkUpdateOne {
	_u.mutation.ResetHashSpeed()
	_u.mutation.SetHashSpeed(v)
	return _u
}

// SetNillableHashSpeed sets the "hash_speed" field if the given value is not nil.
func (_u *BenchmarkUpdateOne) SetNillableHashSpeed(v *float64) *BenchmarkUpdateOne {
	if v != nil {
		_u.SetHashSpeed(*v)
	}
	return _u
}

// AddHashSpeed adds value to the "hash_speed" field.
func (_u *BenchmarkUpdateOne) AddHashSpeed(v float64) *BenchmarkUpdateOne {
	_u.mutation.AddHashSpeed(v)
	return _u
}

// SetRuntimeMs sets the "runtime_ms" field.
func (_u *BenchmarkUpdateOne) SetRuntimeMs(v int64) *BenchmarkUpdateOne {
	_u.mutation.ResetRuntimeMs()
	_u.mutation.SetRuntimeMs(v)
	return _u
}

// SetNillableRuntimeMs sets the "runtime_ms" field if the given value is not nil.
func (_u *BenchmarkUpdateOne) SetNillableRuntimeMs(v *int64) *BenchmarkUpdateOne {
	if v != nil {
		_u.SetRuntimeMs(*v)
	}
	return _u
}

// AddRuntimeMs adds value to the "runtime_ms" field.
func (_u *BenchmarkUpdateOne) AddRuntimeMs(v int64) *BenchmarkUpdateOne {
	_u.mutation.AddRuntimeMs(v)
	return _u
}

// SetMeasuredAt sets the "measured_at" field.
func (_u *BenchmarkUpdateOne) SetMeasuredAt(v time.Time) *BenchmarkUpdateOne {
	_u.mutation.SetMeasuredAt(v)
	return _u
}

// SetNillableMeasuredAt sets the "measured_at" field if the given value is not nil.
func (_u *BenchmarkUpdateOne) SetNillableMeasuredAt(v *time.Time) *BenchmarkUpdateOne {
	if v != nil {
		_u.SetMeasuredAt(*v)
	}
	return _u
}

// Mutation returns the BenchmarkMutation object of the builder.
func (_u *BenchmarkUpdateOne) Mutation() *BenchmarkMutation {
	return _u.mutation
}

// Where appends a list predicates to the BenchmarkUpdate builder.
func (_u *BenchmarkUpdateOne) Where(ps ...predicate.Benchmark) *BenchmarkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BenchmarkUpdateOne) Select(field string, fields ...string) *BenchmarkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Benchmark entity.
func (_u *BenchmarkUpdateOne) Save(ctx context.Context) (*Benchmark, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BenchmarkUpdateOne) SaveX(ctx context.Context) *Benchmark {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BenchmarkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BenchmarkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BenchmarkUpdateOne) check() error {
	if v, ok := _u.mutation.HashType(); ok {
		if err := benchmark.HashTypeValidator(v); err != nil {
			return &ValidationError{Name: "hash_type", err: fmt.Errorf(`ent: validator failed for field "Benchmark.hash_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Device(); ok {
		if err := benchmark.DeviceValidator(v); err != nil {
			return &ValidationError{Name: "device", err: fmt.Errorf(`ent: validator failed for field "Benchmark.device": %w`, err)}
		}
	}
	if _u.mutation.AgentCleared() && len(_u.mutation.AgentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Benchmark.agent"`)
	}
	return nil
}

func (_u *BenchmarkUpdateOne) sqlSave(ctx context.Context) (_node *Benchmark, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(benchmark.Table, benchmark.Columns, sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Benchmark.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, benchmark.FieldID)
		for _, f := range fields {
			if !benchmark.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != benchmark.FieldID {
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
	if value, ok := _u.mutation.HashType(); ok {
		_spec.SetField(benchmark.FieldHashType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHashType(); ok {
		_spec.AddField(benchmark.FieldHashType, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Device(); ok {
		_spec.SetField(benchmark.FieldDevice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDevice(); ok {
		_spec.AddField(benchmark.FieldDevice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HashSpeed(); ok {
		_spec.SetField(benchmark.FieldHashSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHashSpeed(); ok {
		_spec.AddField(benchmark.FieldHashSpeed, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RuntimeMs(); ok {
		_spec.SetField(benchmark.FieldRuntimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRuntimeMs(); ok {
		_spec.AddField(benchmark.FieldRuntimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MeasuredAt(); ok {
		_spec.SetField(benchmark.FieldMeasuredAt, field.TypeTime, value)
	}
	_node = &Benchmark{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{benchmark.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
