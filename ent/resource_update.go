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
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
)

// ResourceUpdate is the builder for updating Resource entities.
type ResourceUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceMutation
}

// Where appends a list predicates to the ResourceUpdate builder.
func (_u *ResourceUpdate) Where(ps ...predicate.Resource) *ResourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ResourceUpdate) SetName(v string) *ResourceUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableName(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ResourceUpdate) SetFileName(v string) *ResourceUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableFileName(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileHandle sets the "file_handle" field.
func (_u *ResourceUpdate) SetFileHandle(v string) *ResourceUpdate {
	_u.mutation.SetFileHandle(v)
	return _u
}

// SetNillableFileHandle sets the "file_handle" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableFileHandle(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetFileHandle(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ResourceUpdate) SetResourceType(v resource.ResourceType) *ResourceUpdate {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableResourceType(v *resource.ResourceType) *ResourceUpdate {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetLineCount sets the "line_count" field.
func (_u *ResourceUpdate) SetLineCount(v int64) *ResourceUpdate {
	_u.mutation.ResetLineCount()
	_u.mutation.SetLineCount(v)
	return _u
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableLineCount(v *int64) *ResourceUpdate {
	if v != nil {
		_u.SetLineCount(*v)
	}
	return _u
}

// AddLineCount adds value to the "line_count" field.
func (_u *ResourceUpdate) AddLineCount(v int64) *ResourceUpdate {
	_u.mutation.AddLineCount(v)
	return _u
}

// ClearLineCount clears the value of the "line_count" field.
func (_u *ResourceUpdate) ClearLineCount() *ResourceUpdate {
	_u.mutation.ClearLineCount()
	return _u
}

// SetByteSize sets the "byte_size" field.
func (_u *ResourceUpdate) SetByteSize(v int64) *ResourceUpdate {
	_u.mutation.ResetByteSize()
	_u.mutation.SetByteSize(v)
	return _u
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableByteSize(v *int64) *ResourceUpdate {
	if v != nil {
		_u.SetByteSize(*v)
	}
	return _u
}

// AddByteSize adds value to the "byte_size" field.
func (_u *ResourceUpdate) AddByteSize(v int64) *ResourceUpdate {
	_u.mutation.AddByteSize(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ResourceUpdate) SetChecksum(v string) *ResourceUpdate {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableChecksum(v *string) *ResourceUpdate {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetSensitive sets the "sensitive" field.
func (_u *ResourceUpdate) SetSensitive(v bool) *ResourceUpdate {
	_u.mutation.SetSensitive(v)
	return _u
}

// SetNillableSensitive sets the "sensitive" field if the given value is not nil.
func (_u *ResourceUpdate) SetNillableSensitive(v *bool) *ResourceUpdate {
	if v != nil {
		_u.SetSensitive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResourceUpdate) SetUpdatedAt(v time.Time) *ResourceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *ResourceUpdate) AddProjectIDs(ids ...int) *ResourceUpdate {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *ResourceUpdate) AddProjects(v ...*Project) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddWordListAttackIDs adds the "word_list_attacks" edge to the Attack entity by IDs.
func (_u *ResourceUpdate) AddWordListAttackIDs(ids ...int) *ResourceUpdate {
	_u.mutation.AddWordListAttackIDs(ids...)
	return _u
}

// AddWordListAttacks adds the "word_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdate) AddWordListAttacks(v ...*Attack) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordListAttackIDs(ids...)
}

// AddRuleListAttackIDs adds the "rule_list_attacks" edge to the Attack entity by IDs.
func (_u *ResourceUpdate) AddRuleListAttackIDs(ids ...int) *ResourceUpdate {
	_u.mutation.AddRuleListAttackIDs(ids...)
	return _u
}

// AddRuleListAttacks adds the "rule_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdate) AddRuleListAttacks(v ...*Attack) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleListAttackIDs(ids...)
}

// AddMaskListAttackIDs adds the "mask_list_attacks" edge to the Attack entity by IDs.
func (_u *ResourceUpdate) AddMaskListAttackIDs(ids ...int) *ResourceUpdate {
	_u.mutation.AddMaskListAttackIDs(ids...)
	return _u
}

// AddMaskListAttacks adds the "mask_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdate) AddMaskListAttacks(v ...*Attack) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMaskListAttackIDs(ids...)
}

// Mutation returns the ResourceMutation object of the builder.
func (_u *ResourceUpdate) Mutation() *ResourceMutation {
	return _u.mutation
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *ResourceUpdate) ClearProjects() *ResourceUpdate {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *ResourceUpdate) RemoveProjectIDs(ids ...int) *ResourceUpdate {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *ResourceUpdate) RemoveProjects(v ...*Project) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearWordListAttacks clears all "word_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdate) ClearWordListAttacks() *ResourceUpdate {
	_u.mutation.ClearWordListAttacks()
	return _u
}

// RemoveWordListAttackIDs removes the "word_list_attacks" edge to Attack entities by IDs.
func (_u *ResourceUpdate) RemoveWordListAttackIDs(ids ...int) *ResourceUpdate {
	_u.mutation.RemoveWordListAttackIDs(ids...)
	return _u
}

// RemoveWordListAttacks removes "word_list_attacks" edges to Attack entities.
func (_u *ResourceUpdate) RemoveWordListAttacks(v ...*Attack) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordListAttackIDs(ids...)
}

// ClearRuleListAttacks clears all "rule_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdate) ClearRuleListAttacks() *ResourceUpdate {
	_u.mutation.ClearRuleListAttacks()
	return _u
}

// RemoveRuleListAttackIDs removes the "rule_list_attacks" edge to Attack entities by IDs.
func (_u *ResourceUpdate) RemoveRuleListAttackIDs(ids ...int) *ResourceUpdate {
	_u.mutation.RemoveRuleListAttackIDs(ids...)
	return _u
}

// RemoveRuleListAttacks removes "rule_list_attacks" edges to Attack entities.
func (_u *ResourceUpdate) RemoveRuleListAttacks(v ...*Attack) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleListAttackIDs(ids...)
}

// ClearMaskListAttacks clears all "mask_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdate) ClearMaskListAttacks() *ResourceUpdate {
	_u.mutation.ClearMaskListAttacks()
	return _u
}

// RemoveMaskListAttackIDs removes the "mask_list_attacks" edge to Attack entities by IDs.
func (_u *ResourceUpdate) RemoveMaskListAttackIDs(ids ...int) *ResourceUpdate {
	_u.mutation.RemoveMaskListAttackIDs(ids...)
	return _u
}

// RemoveMaskListAttacks removes "mask_list_attacks" edges to Attack entities.
func (_u *ResourceUpdate) RemoveMaskListAttacks(v ...*Attack) *ResourceUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMaskListAttackIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResourceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResourceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := resource.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Resource.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHandle(); ok {
		if err := resource.FileHandleValidator(v); err != nil {
			return &ValidationError{Name: "file_handle", err: fmt.Errorf(`ent: validator failed for field "Resource.file_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceType(); ok {
		if err := resource.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`ent: validator failed for field "Resource.resource_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resource.Table, resource.Columns, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(resource.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHandle(); ok {
		_spec.SetField(resource.FieldFileHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(resource.FieldResourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LineCount(); ok {
		_spec.SetField(resource.FieldLineCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLineCount(); ok {
		_spec.AddField(resource.FieldLineCount, field.TypeInt64, value)
	}
	if _u.mutation.LineCountCleared() {
		_spec.ClearField(resource.FieldLineCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.ByteSize(); ok {
		_spec.SetField(resource.FieldByteSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteSize(); ok {
		_spec.AddField(resource.FieldByteSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(resource.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sensitive(); ok {
		_spec.SetField(resource.FieldSensitive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   resource.ProjectsTable,
			Columns: resource.ProjectsPrimaryKey,
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
			Table:   resource.ProjectsTable,
			Columns: resource.ProjectsPrimaryKey,
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
			Table:   resource.ProjectsTable,
			Columns: resource.ProjectsPrimaryKey,
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
	if _u.mutation.WordListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.WordListAttacksTable,
			Columns: []string{resource.WordListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordListAttacksIDs(); len(nodes) > 0 && !_u.mutation.WordListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.WordListAttacksTable,
			Columns: []string{resource.WordListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.WordListAttacksTable,
			Columns: []string{resource.WordListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.RuleListAttacksTable,
			Columns: []string{resource.RuleListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRuleListAttacksIDs(); len(nodes) > 0 && !_u.mutation.RuleListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.RuleListAttacksTable,
			Columns: []string{resource.RuleListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.RuleListAttacksTable,
			Columns: []string{resource.RuleListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaskListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.MaskListAttacksTable,
			Columns: []string{resource.MaskListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMaskListAttacksIDs(); len(nodes) > 0 && !_u.mutation.MaskListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.MaskListAttacksTable,
			Columns: []string{resource.MaskListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaskListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.MaskListAttacksTable,
			Columns: []string{resource.MaskListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResourceUpdateOne is the builder for updating a single Resource entity.
type ResourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceMutation
}

// SetName sets the "name" field.
func (_u *ResourceUpdateOne) SetName(v string) *ResourceUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableName(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *ResourceUpdateOne) SetFileName(v string) *ResourceUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableFileName(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetFileHandle sets the "file_handle" field.
func (_u *ResourceUpdateOne) SetFileHandle(v string) *ResourceUpdateOne {
	_u.mutation.SetFileHandle(v)
	return _u
}

// SetNillableFileHandle sets the "file_handle" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableFileHandle(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetFileHandle(*v)
	}
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ResourceUpdateOne) SetResourceType(v resource.ResourceType) *ResourceUpdateOne {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableResourceType(v *resource.ResourceType) *ResourceUpdateOne {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// SetLineCount sets the "line_count" field.
func (_u *ResourceUpdateOne) SetLineCount(v int64) *ResourceUpdateOne {
	_u.mutation.ResetLineCount()
	_u.mutation.SetLineCount(v)
	return _u
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableLineCount(v *int64) *ResourceUpdateOne {
	if v != nil {
		_u.SetLineCount(*v)
	}
	return _u
}

// AddLineCount adds value to the "line_count" field.
func (_u *ResourceUpdateOne) AddLineCount(v int64) *ResourceUpdateOne {
	_u.mutation.AddLineCount(v)
	return _u
}

// ClearLineCount clears the value of the "line_count" field.
func (_u *ResourceUpdateOne) ClearLineCount() *ResourceUpdateOne {
	_u.mutation.ClearLineCount()
	return _u
}

// SetByteSize sets the "byte_size" field.
func (_u *ResourceUpdateOne) SetByteSize(v int64) *ResourceUpdateOne {
	_u.mutation.ResetByteSize()
	_u.mutation.SetByteSize(v)
	return _u
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableByteSize(v *int64) *ResourceUpdateOne {
	if v != nil {
		_u.SetByteSize(*v)
	}
	return _u
}

// AddByteSize adds value to the "byte_size" field.
func (_u *ResourceUpdateOne) AddByteSize(v int64) *ResourceUpdateOne {
	_u.mutation.AddByteSize(v)
	return _u
}

// SetChecksum sets the "checksum" field.
func (_u *ResourceUpdateOne) SetChecksum(v string) *ResourceUpdateOne {
	_u.mutation.SetChecksum(v)
	return _u
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableChecksum(v *string) *ResourceUpdateOne {
	if v != nil {
		_u.SetChecksum(*v)
	}
	return _u
}

// SetSensitive sets the "sensitive" field.
func (_u *ResourceUpdateOne) SetSensitive(v bool) *ResourceUpdateOne {
	_u.mutation.SetSensitive(v)
	return _u
}

// SetNillableSensitive sets the "sensitive" field if the given value is not nil.
func (_u *ResourceUpdateOne) SetNillableSensitive(v *bool) *ResourceUpdateOne {
	if v != nil {
		_u.SetSensitive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ResourceUpdateOne) SetUpdatedAt(v time.Time) *ResourceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_u *ResourceUpdateOne) AddProjectIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.AddProjectIDs(ids...)
	return _u
}

// AddProjects adds the "projects" edges to the Project entity.
func (_u *ResourceUpdateOne) AddProjects(v ...*Project) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProjectIDs(ids...)
}

// AddWordListAttackIDs adds the "word_list_attacks" edge to the Attack entity by IDs.
func (_u *ResourceUpdateOne) AddWordListAttackIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.AddWordListAttackIDs(ids...)
	return _u
}

// AddWordListAttacks adds the "word_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdateOne) AddWordListAttacks(v ...*Attack) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordListAttackIDs(ids...)
}

// AddRuleListAttackIDs adds the "rule_list_attacks" edge to the Attack entity by IDs.
func (_u *ResourceUpdateOne) AddRuleListAttackIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.AddRuleListAttackIDs(ids...)
	return _u
}

// AddRuleListAttacks adds the "rule_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdateOne) AddRuleListAttacks(v ...*Attack) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleListAttackIDs(ids...)
}

// AddMaskListAttackIDs adds the "mask_list_attacks" edge to the Attack entity by IDs.
func (_u *ResourceUpdateOne) AddMaskListAttackIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.AddMaskListAttackIDs(ids...)
	return _u
}

// AddMaskListAttacks adds the "mask_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdateOne) AddMaskListAttacks(v ...*Attack) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMaskListAttackIDs(ids...)
}

// Mutation returns the ResourceMutation object of the builder.
func (_u *ResourceUpdateOne) Mutation() *ResourceMutation {
	return _u.mutation
}

// ClearProjects clears all "projects" edges to the Project entity.
func (_u *ResourceUpdateOne) ClearProjects() *ResourceUpdateOne {
	_u.mutation.ClearProjects()
	return _u
}

// RemoveProjectIDs removes the "projects" edge to Project entities by IDs.
func (_u *ResourceUpdateOne) RemoveProjectIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.RemoveProjectIDs(ids...)
	return _u
}

// RemoveProjects removes "projects" edges to Project entities.
func (_u *ResourceUpdateOne) RemoveProjects(v ...*Project) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProjectIDs(ids...)
}

// ClearWordListAttacks clears all "word_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdateOne) ClearWordListAttacks() *ResourceUpdateOne {
	_u.mutation.ClearWordListAttacks()
	return _u
}

// RemoveWordListAttackIDs removes the "word_list_attacks" edge to Attack entities by IDs.
func (_u *ResourceUpdateOne) RemoveWordListAttackIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.RemoveWordListAttackIDs(ids...)
	return _u
}

// RemoveWordListAttacks removes "word_list_attacks" edges to Attack entities.
func (_u *ResourceUpdateOne) RemoveWordListAttacks(v ...*Attack) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordListAttackIDs(ids...)
}

// ClearRuleListAttacks clears all "rule_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdateOne) ClearRuleListAttacks() *ResourceUpdateOne {
	_u.mutation.ClearRuleListAttacks()
	return _u
}

// RemoveRuleListAttackIDs removes the "rule_list_attacks" edge to Attack entities by IDs.
func (_u *ResourceUpdateOne) RemoveRuleListAttackIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.RemoveRuleListAttackIDs(ids...)
	return _u
}

// RemoveRuleListAttacks removes "rule_list_attacks" edges to Attack entities.
func (_u *ResourceUpdateOne) RemoveRuleListAttacks(v ...*Attack) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleListAttackIDs(ids...)
}

// ClearMaskListAttacks clears all "mask_list_attacks" edges to the Attack entity.
func (_u *ResourceUpdateOne) ClearMaskListAttacks() *ResourceUpdateOne {
	_u.mutation.ClearMaskListAttacks()
	return _u
}

// RemoveMaskListAttackIDs removes the "mask_list_attacks" edge to Attack entities by IDs.
func (_u *ResourceUpdateOne) RemoveMaskListAttackIDs(ids ...int) *ResourceUpdateOne {
	_u.mutation.RemoveMaskListAttackIDs(ids...)
	return _u
}

// RemoveMaskListAttacks removes "mask_list_attacks" edges to Attack entities.
func (_u *ResourceUpdateOne) RemoveMaskListAttacks(v ...*Attack) *ResourceUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMaskListAttackIDs(ids...)
}

// Where appends a list predicates to the ResourceUpdate builder.
func (_u *ResourceUpdateOne) Where(ps ...predicate.Resource) *ResourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResourceUpdateOne) Select(field string, fields ...string) *ResourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Resource entity.
func (_u *ResourceUpdateOne) Save(ctx context.Context) (*Resource, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResourceUpdateOne) SaveX(ctx context.Context) *Resource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ResourceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := resource.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResourceUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := resource.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Resource.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileHandle(); ok {
		if err := resource.FileHandleValidator(v); err != nil {
			return &ValidationError{Name: "file_handle", err: fmt.Errorf(`ent: validator failed for field "Resource.file_handle": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResourceType(); ok {
		if err := resource.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`ent: validator failed for field "Resource.resource_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ResourceUpdateOne) sqlSave(ctx context.Context) (_node *Resource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resource.Table, resource.Columns, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resource.FieldID)
		for _, f := range fields {
			if !resource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resource.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(resource.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileHandle(); ok {
		_spec.SetField(resource.FieldFileHandle, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(resource.FieldResourceType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LineCount(); ok {
		_spec.SetField(resource.FieldLineCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLineCount(); ok {
		_spec.AddField(resource.FieldLineCount, field.TypeInt64, value)
	}
	if _u.mutation.LineCountCleared() {
		_spec.ClearField(resource.FieldLineCount, field.TypeInt64)
	}
	if value, ok := _u.mutation.ByteSize(); ok {
		_spec.SetField(resource.FieldByteSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedByteSize(); ok {
		_spec.AddField(resource.FieldByteSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Checksum(); ok {
		_spec.SetField(resource.FieldChecksum, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sensitive(); ok {
		_spec.SetField(resource.FieldSensitive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProjectsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   resource.ProjectsTable,
			Columns: resource.ProjectsPrimaryKey,
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
			Table:   resource.ProjectsTable,
			Columns: resource.ProjectsPrimaryKey,
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
			Table:   resource.ProjectsTable,
			Columns: resource.ProjectsPrimaryKey,
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
	if _u.mutation.WordListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.WordListAttacksTable,
			Columns: []string{resource.WordListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordListAttacksIDs(); len(nodes) > 0 && !_u.mutation.WordListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.WordListAttacksTable,
			Columns: []string{resource.WordListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.WordListAttacksTable,
			Columns: []string{resource.WordListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.RuleListAttacksTable,
			Columns: []string{resource.RuleListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRuleListAttacksIDs(); len(nodes) > 0 && !_u.mutation.RuleListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.RuleListAttacksTable,
			Columns: []string{resource.RuleListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.RuleListAttacksTable,
			Columns: []string{resource.RuleListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaskListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.MaskListAttacksTable,
			Columns: []string{resource.MaskListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMaskListAttacksIDs(); len(nodes) > 0 && !_u.mutation.MaskListAttacksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.MaskListAttacksTable,
			Columns: []string{resource.MaskListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaskListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.MaskListAttacksTable,
			Columns: []string{resource.MaskListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Resource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
