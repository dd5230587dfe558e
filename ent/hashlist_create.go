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
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
)

// HashListCreate is the builder for creating a HashList entity.
type HashListCreate struct {
	config
	mutation *HashListMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *HashListCreate) SetProjectID(v int) *HashListCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *HashListCreate) SetName(v string) *HashListCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *HashListCreate) SetDescription(v string) *HashListCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *HashListCreate) SetNillableDescription(v *string) *HashListCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetHashTypeID sets the "hash_type_id" field.
func (_c *HashListCreate) SetHashTypeID(v int) *HashListCreate {
	_c.mutation.SetHashTypeID(v)
	return _c
}

// SetSeparator sets the "separator" field.
func (_c *HashListCreate) SetSeparator(v string) *HashListCreate {
	_c.mutation.SetSeparator(v)
	return _c
}

// SetNillableSeparator sets the "separator" field if the given value is not nil.
func (_c *HashListCreate) SetNillableSeparator(v *string) *HashListCreate {
	if v != nil {
		_c.SetSeparator(*v)
	}
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *HashListCreate) SetItemCount(v int64) *HashListCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *HashListCreate) SetNillableItemCount(v *int64) *HashListCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetUncrackedCount sets the "uncracked_count" field.
func (_c *HashListCreate) SetUncrackedCount(v int64) *HashListCreate {
	_c.mutation.SetUncrackedCount(v)
	return _c
}

// SetNillableUncrackedCount sets the "uncracked_count" field if the given value is not nil.
func (_c *HashListCreate) SetNillableUncrackedCount(v *int64) *HashListCreate {
	if v != nil {
		_c.SetUncrackedCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HashListCreate) SetCreatedAt(v time.Time) *HashListCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HashListCreate) SetNillableCreatedAt(v *time.Time) *HashListCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HashListCreate) SetUpdatedAt(v time.Time) *HashListCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HashListCreate) SetNillableUpdatedAt(v *time.Time) *HashListCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *HashListCreate) SetProject(v *Project) *HashListCreate {
	return _c.SetProjectID(v.ID)
}

// AddItemIDs adds the "items" edge to the HashItem entity by IDs.
func (_c *HashListCreate) AddItemIDs(ids ...int) *HashListCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the HashItem entity.
func (_c *HashListCreate) AddItems(v ...*HashItem) *HashListCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_c *HashListCreate) AddCampaignIDs(ids ...int) *HashListCreate {
	_c.mutation.AddCampaignIDs(ids...)
	return _c
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_c *HashListCreate) AddCampaigns(v ...*Campaign) *HashListCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampaignIDs(ids...)
}

// Mutation returns the HashListMutation object of the builder.
func (_c *HashListCreate) Mutation() *HashListMutation {
	return _c.mutation
}

// Save creates the HashList in the database.
func (_c *HashListCreate) Save(ctx context.Context) (*HashList, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HashListCreate) SaveX(ctx context.Context) *HashList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashListCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashListCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HashListCreate) defaults() {
	if _, ok := _c.mutation.Separator(); !ok {
		v := hashlist.DefaultSeparator
		_c.mutation.SetSeparator(v)
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := hashlist.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.UncrackedCount(); !ok {
		v := hashlist.DefaultUncrackedCount
		_c.mutation.SetUncrackedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hashlist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hashlist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HashListCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "HashList.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "HashList.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := hashlist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "HashList.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HashTypeID(); !ok {
		return &ValidationError{Name: "hash_type_id", err: errors.New(`ent: missing required field "HashList.hash_type_id"`)}
	}
	if v, ok := _c.mutation.HashTypeID(); ok {
		if err := hashlist.HashTypeIDValidator(v); err != nil {
			return &ValidationError{Name: "hash_type_id", err: fmt.Errorf(`ent: validator failed for field "HashList.hash_type_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Separator(); !ok {
		return &ValidationError{Name: "separator", err: errors.New(`ent: missing required field "HashList.separator"`)}
	}
	if v, ok := _c.mutation.Separator(); ok {
		if err := hashlist.SeparatorValidator(v); err != nil {
			return &ValidationError{Name: "separator", err: fmt.Errorf(`ent: validator failed for field "HashList.separator": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "HashList.item_count"`)}
	}
	if _, ok := _c.mutation.UncrackedCount(); !ok {
		return &ValidationError{Name: "uncracked_count", err: errors.New(`ent: missing required field "HashList.uncracked_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HashList.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "HashList.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "HashList.project"`)}
	}
	return nil
}

func (_c *HashListCreate) sqlSave(ctx context.Context) (*HashList, error) {
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

func (_c *HashListCreate) createSpec() (*HashList, *sqlgraph.CreateSpec) {
	var (
		_node = &HashList{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hashlist.Table, sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(hashlist.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(hashlist.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.HashTypeID(); ok {
		_spec.SetField(hashlist.FieldHashTypeID, field.TypeInt, value)
		_node.HashTypeID = value
	}
	if value, ok := _c.mutation.Separator(); ok {
		_spec.SetField(hashlist.FieldSeparator, field.TypeString, value)
		_node.Separator = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(hashlist.FieldItemCount, field.TypeInt64, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.UncrackedCount(); ok {
		_spec.SetField(hashlist.FieldUncrackedCount, field.TypeInt64, value)
		_node.UncrackedCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hashlist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hashlist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hashlist.ProjectTable,
			Columns: []string{hashlist.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hashlist.ItemsTable,
			Columns: []string{hashlist.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hashitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hashlist.CampaignsTable,
			Columns: []string{hashlist.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt),
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
//	client.HashList.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashListUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *HashListCreate) OnConflict(opts ...sql.ConflictOption) *HashListUpsertOne {
	_c.conflict = opts
	return &HashListUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashListCreate) OnConflictColumns(columns ...string) *HashListUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashListUpsertOne{
		create: _c,
	}
}

type (
	// HashListUpsertOne is the builder for "upsert"-ing
	//  one HashList node.
	HashListUpsertOne struct {
		create *HashListCreate
	}

	// HashListUpsert is the "OnConflict" setter.
	HashListUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *HashListUpsert) SetName(v string) *HashListUpsert {
	u.Set(hashlist.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *HashListUpsert) UpdateName() *HashListUpsert {
	u.SetExcluded(hashlist.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *HashListUpsert) SetDescription(v string) *HashListUpsert {
	u.Set(hashlist.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *HashListUpsert) UpdateDescription() *HashListUpsert {
	u.SetExcluded(hashlist.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *HashListUpsert) ClearDescription() *HashListUpsert {
	u.SetNull(hashlist.FieldDescription)
	return u
}

// SetHashTypeID sets the "hash_type_id" field.
func (u *HashListUpsert) SetHashTypeID(v int) *HashListUpsert {
	u.Set(hashlist.FieldHashTypeID, v)
	return u
}

// UpdateHashTypeID sets the "hash_type_id" field to the value that was provided on create.
func (u *HashListUpsert) UpdateHashTypeID() *HashListUpsert {
	u.SetExcluded(hashlist.FieldHashTypeID)
	return u
}

// AddHashTypeID adds v to the "hash_type_id" field.
func (u *HashListUpsert) AddHashTypeID(v int) *HashListUpsert {
	u.Add(hashlist.FieldHashTypeID, v)
	return u
}

// SetSeparator sets the "separator" field.
func (u *HashListUpsert) SetSeparator(v string) *HashListUpsert {
	u.Set(hashlist.FieldSeparator, v)
	return u
}

// UpdateSeparator sets the "separator" field to the value that was provided on create.
func (u *HashListUpsert) UpdateSeparator() *HashListUpsert {
	u.SetExcluded(hashlist.FieldSeparator)
	return u
}

// SetItemCount sets the "item_count" field.
func (u *HashListUpsert) SetItemCount(v int64) *HashListUpsert {
	u.Set(hashlist.FieldItemCount, v)
	return u
}

// UpdateItemCount sets the "item_count" field to the value that was provided on create.
func (u *HashListUpsert) UpdateItemCount() *HashListUpsert {
	u.SetExcluded(hashlist.FieldItemCount)
	return u
}

// AddItemCount adds v to the "item_count" field.
func (u *HashListUpsert) AddItemCount(v int64) *HashListUpsert {
	u.Add(hashlist.FieldItemCount, v)
	return u
}

// SetUncrackedCount sets the "uncracked_count" field.
func (u *HashListUpsert) SetUncrackedCount(v int64) *HashListUpsert {
	u.Set(hashlist.FieldUncrackedCount, v)
	return u
}

// UpdateUncrackedCount sets the "uncracked_count" field to the value that was provided on create.
func (u *HashListUpsert) UpdateUncrackedCount() *HashListUpsert {
	u.SetExcluded(hashlist.FieldUncrackedCount)
	return u
}

// AddUncrackedCount adds v to the "uncracked_count" field.
func (u *HashListUpsert) AddUncrackedCount(v int64) *HashListUpsert {
	u.Add(hashlist.FieldUncrackedCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HashListUpsert) SetUpdatedAt(v time.Time) *HashListUpsert {
	u.Set(hashlist.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HashListUpsert) UpdateUpdatedAt() *HashListUpsert {
	u.SetExcluded(hashlist.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashListUpsertOne) UpdateNewValues() *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(hashlist.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(hashlist.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashList.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HashListUpsertOne) Ignore() *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashListUpsertOne) DoNothing() *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashListCreate.OnConflict
// documentation for more info.
func (u *HashListUpsertOne) Update(set func(*HashListUpsert)) *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashListUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *HashListUpsertOne) SetName(v string) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateName() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *HashListUpsertOne) SetDescription(v string) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateDescription() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *HashListUpsertOne) ClearDescription() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.ClearDescription()
	})
}

// SetHashTypeID sets the "hash_type_id" field.
func (u *HashListUpsertOne) SetHashTypeID(v int) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetHashTypeID(v)
	})
}

// AddHashTypeID adds v to the "hash_type_id" field.
func (u *HashListUpsertOne) AddHashTypeID(v int) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.AddHashTypeID(v)
	})
}

// UpdateHashTypeID sets the "hash_type_id" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateHashTypeID() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateHashTypeID()
	})
}

// SetSeparator sets the "separator" field.
func (u *HashListUpsertOne) SetSeparator(v string) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetSeparator(v)
	})
}

// UpdateSeparator sets the "separator" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateSeparator() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateSeparator()
	})
}

// SetItemCount sets the "item_count" field.
func (u *HashListUpsertOne) SetItemCount(v int64) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetItemCount(v)
	})
}

// AddItemCount adds v to the "item_count" field.
func (u *HashListUpsertOne) AddItemCount(v int64) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.AddItemCount(v)
	})
}

// UpdateItemCount sets the "item_count" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateItemCount() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateItemCount()
	})
}

// SetUncrackedCount sets the "uncracked_count" field.
func (u *HashListUpsertOne) SetUncrackedCount(v int64) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetUncrackedCount(v)
	})
}

// AddUncrackedCount adds v to the "uncracked_count" field.
func (u *HashListUpsertOne) AddUncrackedCount(v int64) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.AddUncrackedCount(v)
	})
}

// UpdateUncrackedCount sets the "uncracked_count" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateUncrackedCount() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateUncrackedCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HashListUpsertOne) SetUpdatedAt(v time.Time) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateUpdatedAt() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *HashListUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashListCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashListUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HashListUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HashListUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HashListCreateBulk is the builder for creating many HashList entities in bulk.
type HashListCreateBulk struct {
	config
	err      error
	builders []*HashListCreate
	conflict []sql.ConflictOption
}

// Save creates the HashList entities in the database.
func (_c *HashListCreateBulk) Save(ctx context.Context) ([]*HashList, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HashList, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HashListMutation)
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
func (_c *HashListCreateBulk) SaveX(ctx context.Context) []*HashList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashListCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashListCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HashList.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashListUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *HashListCreateBulk) OnConflict(opts ...sql.ConflictOption) *HashListUpsertBulk {
	_c.conflict = opts
	return &HashListUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashListCreateBulk) OnConflictColumns(columns ...string) *HashListUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashListUpsertBulk{
		create: _c,
	}
}

// HashListUpsertBulk is the builder for "upsert"-ing
// a bulk of HashList nodes.
type HashListUpsertBulk struct {
	create *HashListCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashListUpsertBulk) UpdateNewValues() *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(hashlist.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(hashlist.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HashListUpsertBulk) Ignore() *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashListUpsertBulk) DoNothing() *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashListCreateBulk.OnConflict
// documentation for more info.
func (u *HashListUpsertBulk) Update(set func(*HashListUpsert)) *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashListUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *HashListUpsertBulk) SetName(v string) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateName() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *HashListUpsertBulk) SetDescription(v string) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateDescription() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *HashListUpsertBulk) ClearDescription() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.ClearDescription()
	})
}

// SetHashTypeID sets the "hash_type_id" field.
func (u *HashListUpsertBulk) SetHashTypeID(v int) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetHashTypeID(v)
	})
}

// AddHashTypeID adds v to the "hash_type_id" field.
func (u *HashListUpsertBulk) AddHashTypeID(v int) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.AddHashTypeID(v)
	})
}

// UpdateHashTypeID sets the "hash_type_id" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateHashTypeID() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateHashTypeID()
	})
}

// SetSeparator sets the "separator" field.
func (u *HashListUpsertBulk) SetSeparator(v string) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetSeparator(v)
	})
}

// UpdateSeparator sets the "separator" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateSeparator() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateSeparator()
	})
}

// SetItemCount sets the "item_count" field.
func (u *HashListUpsertBulk) SetItemCount(v int64) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetItemCount(v)
	})
}

// AddItemCount adds v to the "item_count" field.
func (u *HashListUpsertBulk) AddItemCount(v int64) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.AddItemCount(v)
	})
}

// UpdateItemCount sets the "item_count" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateItemCount() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateItemCount()
	})
}

// SetUncrackedCount sets the "uncracked_count" field.
func (u *HashListUpsertBulk) SetUncrackedCount(v int64) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetUncrackedCount(v)
	})
}

// AddUncrackedCount adds v to the "uncracked_count" field.
func (u *HashListUpsertBulk) AddUncrackedCount(v int64) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.AddUncrackedCount(v)
	})
}

// UpdateUncrackedCount sets the "uncracked_count" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateUncrackedCount() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateUncrackedCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HashListUpsertBulk) SetUpdatedAt(v time.Time) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateUpdatedAt() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *HashListUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HashListCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashListCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashListUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
