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
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
)

// ResourceCreate is the builder for creating a Resource entity.
type ResourceCreate struct {
	config
	mutation *ResourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ResourceCreate) SetName(v string) *ResourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ResourceCreate) SetFileName(v string) *ResourceCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetFileHandle sets the "file_handle" field.
func (_c *ResourceCreate) SetFileHandle(v string) *ResourceCreate {
	_c.mutation.SetFileHandle(v)
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *ResourceCreate) SetResourceType(v resource.ResourceType) *ResourceCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetLineCount sets the "line_count" field.
func (_c *ResourceCreate) SetLineCount(v int64) *ResourceCreate {
	_c.mutation.SetLineCount(v)
	return _c
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableLineCount(v *int64) *ResourceCreate {
	if v != nil {
		_c.SetLineCount(*v)
	}
	return _c
}

// SetByteSize sets the "byte_size" field.
func (_c *ResourceCreate) SetByteSize(v int64) *ResourceCreate {
	_c.mutation.SetByteSize(v)
	return _c
}

// SetNillableByteSize sets the "byte_size" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableByteSize(v *int64) *ResourceCreate {
	if v != nil {
		_c.SetByteSize(*v)
	}
	return _c
}

// SetChecksum sets the "checksum" field.
func (_c *ResourceCreate) SetChecksum(v string) *ResourceCreate {
	_c.mutation.SetChecksum(v)
	return _c
}

// SetNillableChecksum sets the "checksum" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableChecksum(v *string) *ResourceCreate {
	if v != nil {
		_c.SetChecksum(*v)
	}
	return _c
}

// SetSensitive sets the "sensitive" field.
func (_c *ResourceCreate) SetSensitive(v bool) *ResourceCreate {
	_c.mutation.SetSensitive(v)
	return _c
}

// SetNillableSensitive sets the "sensitive" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableSensitive(v *bool) *ResourceCreate {
	if v != nil {
		_c.SetSensitive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResourceCreate) SetCreatedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableCreatedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ResourceCreate) SetUpdatedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableUpdatedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_c *ResourceCreate) AddProjectIDs(ids ...int) *ResourceCreate {
	_c.mutation.AddProjectIDs(ids...)
	return _c
}

// AddProjects adds the "projects" edges to the Project entity.
func (_c *ResourceCreate) AddProjects(v ...*Project) *ResourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProjectIDs(ids...)
}

// AddWordListAttackIDs adds the "word_list_attacks" edge to the Attack entity by IDs.
func (_c *ResourceCreate) AddWordListAttackIDs(ids ...int) *ResourceCreate {
	_c.mutation.AddWordListAttackIDs(ids...)
	return _c
}

// AddWordListAttacks adds the "word_list_attacks" edges to the Attack entity.
func (_c *ResourceCreate) AddWordListAttacks(v ...*Attack) *ResourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWordListAttackIDs(ids...)
}

// AddRuleListAttackIDs adds the "rule_list_attacks" edge to the Attack entity by IDs.
func (_c *ResourceCreate) AddRuleListAttackIDs(ids ...int) *ResourceCreate {
	_c.mutation.AddRuleListAttackIDs(ids...)
	return _c
}

// AddRuleListAttacks adds the "rule_list_attacks" edges to the Attack entity.
func (_c *ResourceCreate) AddRuleListAttacks(v ...*Attack) *ResourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRuleListAttackIDs(ids...)
}

// AddMaskListAttackIDs adds the "mask_list_attacks" edge to the Attack entity by IDs.
func (_c *ResourceCreate) AddMaskListAttackIDs(ids ...int) *ResourceCreate {
	_c.mutation.AddMaskListAttackIDs(ids...)
	return _c
}

// AddMaskListAttacks adds the "mask_list_attacks" edges to the Attack entity.
func (_c *ResourceCreate) AddMaskListAttacks(v ...*Attack) *ResourceCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMaskListAttackIDs(ids...)
}

// Mutation returns the ResourceMutation object of the builder.
func (_c *ResourceCreate) Mutation() *ResourceMutation {
	return _c.mutation
}

// Save creates the Resource in the database.
func (_c *ResourceCreate) Save(ctx context.Context) (*Resource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceCreate) SaveX(ctx context.Context) *Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceCreate) defaults() {
	if _, ok := _c.mutation.ByteSize(); !ok {
		v := resource.DefaultByteSize
		_c.mutation.SetByteSize(v)
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		v := resource.DefaultChecksum
		_c.mutation.SetChecksum(v)
	}
	if _, ok := _c.mutation.Sensitive(); !ok {
		v := resource.DefaultSensitive
		_c.mutation.SetSensitive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := resource.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Resource.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "Resource.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := resource.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`ent: validator failed for field "Resource.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileHandle(); !ok {
		return &ValidationError{Name: "file_handle", err: errors.New(`ent: missing required field "Resource.file_handle"`)}
	}
	if v, ok := _c.mutation.FileHandle(); ok {
		if err := resource.FileHandleValidator(v); err != nil {
			return &ValidationError{Name: "file_handle", err: fmt.Errorf(`ent: validator failed for field "Resource.file_handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResourceType(); !ok {
		return &ValidationError{Name: "resource_type", err: errors.New(`ent: missing required field "Resource.resource_type"`)}
	}
	if v, ok := _c.mutation.ResourceType(); ok {
		if err := resource.ResourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "resource_type", err: fmt.Errorf(`ent: validator failed for field "Resource.resource_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ByteSize(); !ok {
		return &ValidationError{Name: "byte_size", err: errors.New(`ent: missing required field "Resource.byte_size"`)}
	}
	if _, ok := _c.mutation.Checksum(); !ok {
		return &ValidationError{Name: "checksum", err: errors.New(`ent: missing required field "Resource.checksum"`)}
	}
	if _, ok := _c.mutation.Sensitive(); !ok {
		return &ValidationError{Name: "sensitive", err: errors.New(`ent: missing required field "Resource.sensitive"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Resource.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Resource.updated_at"`)}
	}
	return nil
}

func (_c *ResourceCreate) sqlSave(ctx context.Context) (*Resource, error) {
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

func (_c *ResourceCreate) createSpec() (*Resource, *sqlgraph.CreateSpec) {
	var (
		_node = &Resource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resource.Table, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(resource.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.FileHandle(); ok {
		_spec.SetField(resource.FieldFileHandle, field.TypeString, value)
		_node.FileHandle = value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(resource.FieldResourceType, field.TypeEnum, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.LineCount(); ok {
		_spec.SetField(resource.FieldLineCount, field.TypeInt64, value)
		_node.LineCount = &value
	}
	if value, ok := _c.mutation.ByteSize(); ok {
		_spec.SetField(resource.FieldByteSize, field.TypeInt64, value)
		_node.ByteSize = value
	}
	if value, ok := _c.mutation.Checksum(); ok {
		_spec.SetField(resource.FieldChecksum, field.TypeString, value)
		_node.Checksum = value
	}
	if value, ok := _c.mutation.Sensitive(); ok {
		_spec.SetField(resource.FieldSensitive, field.TypeBool, value)
		_node.Sensitive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WordListAttacksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RuleListAttacksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MaskListAttacksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Resource.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceCreate) OnConflict(opts ...sql.ConflictOption) *ResourceUpsertOne {
	_c.conflict = opts
	return &ResourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceCreate) OnConflictColumns(columns ...string) *ResourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceUpsertOne{
		create: _c,
	}
}

type (
	// ResourceUpsertOne is the builder for "upsert"-ing
	//  one Resource node.
	ResourceUpsertOne struct {
		create *ResourceCreate
	}

	// ResourceUpsert is the "OnConflict" setter.
	ResourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ResourceUpsert) SetName(v string) *ResourceUpsert {
	u.Set(resource.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateName() *ResourceUpsert {
	u.SetExcluded(resource.FieldName)
	return u
}

// SetFileName sets the "file_name" field.
func (u *ResourceUpsert) SetFileName(v string) *ResourceUpsert {
	u.Set(resource.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateFileName() *ResourceUpsert {
	u.SetExcluded(resource.FieldFileName)
	return u
}

// SetFileHandle sets the "file_handle" field.
func (u *ResourceUpsert) SetFileHandle(v string) *ResourceUpsert {
	u.Set(resource.FieldFileHandle, v)
	return u
}

// UpdateFileHandle sets the "file_handle" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateFileHandle() *ResourceUpsert {
	u.SetExcluded(resource.FieldFileHandle)
	return u
}

// SetResourceType sets the "resource_type" field.
func (u *ResourceUpsert) SetResourceType(v resource.ResourceType) *ResourceUpsert {
	u.Set(resource.FieldResourceType, v)
	return u
}

// UpdateResourceType sets the "resource_type" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateResourceType() *ResourceUpsert {
	u.SetExcluded(resource.FieldResourceType)
	return u
}

// SetLineCount sets the "line_count" field.
func (u *ResourceUpsert) SetLineCount(v int64) *ResourceUpsert {
	u.Set(resource.FieldLineCount, v)
	return u
}

// UpdateLineCount sets the "line_count" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateLineCount() *ResourceUpsert {
	u.SetExcluded(resource.FieldLineCount)
	return u
}

// AddLineCount adds v to the "line_count" field.
func (u *ResourceUpsert) AddLineCount(v int64) *ResourceUpsert {
	u.Add(resource.FieldLineCount, v)
	return u
}

// ClearLineCount clears the value of the "line_count" field.
func (u *ResourceUpsert) ClearLineCount() *ResourceUpsert {
	u.SetNull(resource.FieldLineCount)
	return u
}

// SetByteSize sets the "byte_size" field.
func (u *ResourceUpsert) SetByteSize(v int64) *ResourceUpsert {
	u.Set(resource.FieldByteSize, v)
	return u
}

// UpdateByteSize sets the "byte_size" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateByteSize() *ResourceUpsert {
	u.SetExcluded(resource.FieldByteSize)
	return u
}

// AddByteSize adds v to the "byte_size" field.
func (u *ResourceUpsert) AddByteSize(v int64) *ResourceUpsert {
	u.Add(resource.FieldByteSize, v)
	return u
}

// SetChecksum sets the "checksum" field.
func (u *ResourceUpsert) SetChecksum(v string) *ResourceUpsert {
	u.Set(resource.FieldChecksum, v)
	return u
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateChecksum() *ResourceUpsert {
	u.SetExcluded(resource.FieldChecksum)
	return u
}

// SetSensitive sets the "sensitive" field.
func (u *ResourceUpsert) SetSensitive(v bool) *ResourceUpsert {
	u.Set(resource.FieldSensitive, v)
	return u
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateSensitive() *ResourceUpsert {
	u.SetExcluded(resource.FieldSensitive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResourceUpsert) SetUpdatedAt(v time.Time) *ResourceUpsert {
	u.Set(resource.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateUpdatedAt() *ResourceUpsert {
	u.SetExcluded(resource.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResourceUpsertOne) UpdateNewValues() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(resource.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResourceUpsertOne) Ignore() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceUpsertOne) DoNothing() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceCreate.OnConflict
// documentation for more info.
func (u *ResourceUpsertOne) Update(set func(*ResourceUpsert)) *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ResourceUpsertOne) SetName(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateName() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateName()
	})
}

// SetFileName sets the "file_name" field.
func (u *ResourceUpsertOne) SetFileName(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateFileName() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateFileName()
	})
}

// SetFileHandle sets the "file_handle" field.
func (u *ResourceUpsertOne) SetFileHandle(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetFileHandle(v)
	})
}

// UpdateFileHandle sets the "file_handle" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateFileHandle() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateFileHandle()
	})
}

// SetResourceType sets the "resource_type" field.
func (u *ResourceUpsertOne) SetResourceType(v resource.ResourceType) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetResourceType(v)
	})
}

// UpdateResourceType sets the "resource_type" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateResourceType() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateResourceType()
	})
}

// SetLineCount sets the "line_count" field.
func (u *ResourceUpsertOne) SetLineCount(v int64) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetLineCount(v)
	})
}

// AddLineCount adds v to the "line_count" field.
func (u *ResourceUpsertOne) AddLineCount(v int64) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.AddLineCount(v)
	})
}

// UpdateLineCount sets the "line_count" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateLineCount() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateLineCount()
	})
}

// ClearLineCount clears the value of the "line_count" field.
func (u *ResourceUpsertOne) ClearLineCount() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearLineCount()
	})
}

// SetByteSize sets the "byte_size" field.
func (u *ResourceUpsertOne) SetByteSize(v int64) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetByteSize(v)
	})
}

// AddByteSize adds v to the "byte_size" field.
func (u *ResourceUpsertOne) AddByteSize(v int64) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.AddByteSize(v)
	})
}

// UpdateByteSize sets the "byte_size" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateByteSize() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateByteSize()
	})
}

// SetChecksum sets the "checksum" field.
func (u *ResourceUpsertOne) SetChecksum(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateChecksum() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateChecksum()
	})
}

// SetSensitive sets the "sensitive" field.
func (u *ResourceUpsertOne) SetSensitive(v bool) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetSensitive(v)
	})
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateSensitive() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateSensitive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResourceUpsertOne) SetUpdatedAt(v time.Time) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateUpdatedAt() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ResourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResourceUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResourceUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResourceCreateBulk is the builder for creating many Resource entities in bulk.
type ResourceCreateBulk struct {
	config
	err      error
	builders []*ResourceCreate
	conflict []sql.ConflictOption
}

// Save creates the Resource entities in the database.
func (_c *ResourceCreateBulk) Save(ctx context.Context) ([]*Resource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceMutation)
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
func (_c *ResourceCreateBulk) SaveX(ctx context.Context) []*Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Resource.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResourceUpsertBulk {
	_c.conflict = opts
	return &ResourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceCreateBulk) OnConflictColumns(columns ...string) *ResourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceUpsertBulk{
		create: _c,
	}
}

// ResourceUpsertBulk is the builder for "upsert"-ing
// a bulk of Resource nodes.
type ResourceUpsertBulk struct {
	create *ResourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResourceUpsertBulk) UpdateNewValues() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(resource.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResourceUpsertBulk) Ignore() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceUpsertBulk) DoNothing() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceCreateBulk.OnConflict
// documentation for more info.
func (u *ResourceUpsertBulk) Update(set func(*ResourceUpsert)) *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ResourceUpsertBulk) SetName(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateName() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateName()
	})
}

// SetFileName sets the "file_name" field.
func (u *ResourceUpsertBulk) SetFileName(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateFileName() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateFileName()
	})
}

// SetFileHandle sets the "file_handle" field.
func (u *ResourceUpsertBulk) SetFileHandle(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetFileHandle(v)
	})
}

// UpdateFileHandle sets the "file_handle" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateFileHandle() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateFileHandle()
	})
}

// SetResourceType sets the "resource_type" field.
func (u *ResourceUpsertBulk) SetResourceType(v resource.ResourceType) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetResourceType(v)
	})
}

// UpdateResourceType sets the "resource_type" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateResourceType() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateResourceType()
	})
}

// SetLineCount sets the "line_count" field.
func (u *ResourceUpsertBulk) SetLineCount(v int64) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetLineCount(v)
	})
}

// AddLineCount adds v to the "line_count" field.
func (u *ResourceUpsertBulk) AddLineCount(v int64) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.AddLineCount(v)
	})
}

// UpdateLineCount sets the "line_count" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateLineCount() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateLineCount()
	})
}

// ClearLineCount clears the value of the "line_count" field.
func (u *ResourceUpsertBulk) ClearLineCount() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearLineCount()
	})
}

// SetByteSize sets the "byte_size" field.
func (u *ResourceUpsertBulk) SetByteSize(v int64) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetByteSize(v)
	})
}

// AddByteSize adds v to the "byte_size" field.
func (u *ResourceUpsertBulk) AddByteSize(v int64) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.AddByteSize(v)
	})
}

// UpdateByteSize sets the "byte_size" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateByteSize() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateByteSize()
	})
}

// SetChecksum sets the "checksum" field.
func (u *ResourceUpsertBulk) SetChecksum(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetChecksum(v)
	})
}

// UpdateChecksum sets the "checksum" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateChecksum() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateChecksum()
	})
}

// SetSensitive sets the "sensitive" field.
func (u *ResourceUpsertBulk) SetSensitive(v bool) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetSensitive(v)
	})
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateSensitive() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateSensitive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ResourceUpsertBulk) SetUpdatedAt(v time.Time) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateUpdatedAt() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ResourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
