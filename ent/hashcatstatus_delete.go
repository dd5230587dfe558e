// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// HashcatStatusDelete is the builder for deleting a HashcatStatus entity.
type HashcatStatusDelete struct {
	config
	hooks    []Hook
	mutation *HashcatStatusMutation
}

// Where appends a list predicates to the HashcatStatusDelete builder.
func (_d *HashcatStatusDelete) Where(ps ...predicate.HashcatStatus) *HashcatStatusDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HashcatStatusDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HashcatStatusDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HashcatStatusDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(hashcatstatus.Table, sqlgraph.NewFieldSpec(hashcatstatus.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// HashcatStatusDeleteOne is the builder for deleting a single HashcatStatus entity.
type HashcatStatusDeleteOne struct {
	_d *HashcatStatusDelete
}

// Where appends a list predicates to the HashcatStatusDelete builder.
func (_d *HashcatStatusDeleteOne) Where(ps ...predicate.HashcatStatus) *HashcatStatusDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HashcatStatusDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{hashcatstatus.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HashcatStatusDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
