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
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/pkg/models"
)

// CampaignCreate is the builder for creating a Campaign entity.
type CampaignCreate struct {
	config
	mutation *CampaignMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *CampaignCreate) SetProjectID(v int) *CampaignCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetHashListID sets the "hash_list_id" field.
func (_c *CampaignCreate) SetHashListID(v int) *CampaignCreate {
	_c.mutation.SetHashListID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CampaignCreate) SetName(v string) *CampaignCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *CampaignCreate) SetDescription(v string) *CampaignCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableDescription(v *string) *CampaignCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *CampaignCreate) SetPriority(v models.Priority) *CampaignCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *CampaignCreate) SetNillablePriority(v *models.Priority) *CampaignCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *CampaignCreate) SetState(v campaign.State) *CampaignCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableState(v *campaign.State) *CampaignCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampaignCreate) SetCreatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableCreatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampaignCreate) SetUpdatedAt(v time.Time) *CampaignCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampaignCreate) SetNillableUpdatedAt(v *time.Time) *CampaignCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *CampaignCreate) SetProject(v *Project) *CampaignCreate {
	return _c.SetProjectID(v.ID)
}

// SetHashList sets the "hash_list" edge to the HashList entity.
func (_c *CampaignCreate) SetHashList(v *HashList) *CampaignCreate {
	return _c.SetHashListID(v.ID)
}

// AddAttackIDs adds the "attacks" edge to the Attack entity by IDs.
func (_c *CampaignCreate) AddAttackIDs(ids ...int) *CampaignCreate {
	_c.mutation.AddAttackIDs(ids...)
	return _c
}

// AddAttacks adds the "attacks" edges to the Attack entity.
func (_c *CampaignCreate) AddAttacks(v ...*Attack) *CampaignCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttackIDs(ids...)
}

// Mutation returns the CampaignMutation object of the builder.
func (_c *CampaignCreate) Mutation() *CampaignMutation {
	return _c.mutation
}

// Save creates the Campaign in the database.
func (_c *CampaignCreate) Save(ctx context.Context) (*Campaign, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignCreate) SaveX(ctx context.Context) *Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := campaign.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := campaign.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campaign.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campaign.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Campaign.project_id"`)}
	}
	if _, ok := _c.mutation.HashListID(); !ok {
		return &ValidationError{Name: "hash_list_id", err: errors.New(`ent: missing required field "Campaign.hash_list_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Campaign.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := campaign.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Campaign.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Campaign.priority"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Campaign.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := campaign.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Campaign.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Campaign.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Campaign.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Campaign.project"`)}
	}
	if len(_c.mutation.HashListIDs()) == 0 {
		return &ValidationError{Name: "hash_list", err: errors.New(`ent: missing required edge "Campaign.hash_list"`)}
	}
	return nil
}

func (_c *CampaignCreate) sqlSave(ctx context.Context) (*Campaign, error) {
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

func (_c *CampaignCreate) createSpec() (*Campaign, *sqlgraph.CreateSpec) {
	var (
		_node = &Campaign{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaign.Table, sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(campaign.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(campaign.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(campaign.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(campaign.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campaign.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campaign.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.ProjectTable,
			Columns: []string{campaign.ProjectColumn},
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
	if nodes := _c.mutation.HashListIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campaign.HashListTable,
			Columns: []string{campaign.HashListColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HashListID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   campaign.AttacksTable,
			Columns: []string{campaign.AttacksColumn},
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
//	client.Campaign.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampaignUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *CampaignCreate) OnConflict(opts ...sql.ConflictOption) *CampaignUpsertOne {
	_c.conflict = opts
	return &CampaignUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampaignCreate) OnConflictColumns(columns ...string) *CampaignUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampaignUpsertOne{
		create: _c,
	}
}

type (
	// CampaignUpsertOne is the builder for "upsert"-ing
	//  one Campaign node.
	CampaignUpsertOne struct {
		create *CampaignCreate
	}

	// CampaignUpsert is the "OnConflict" setter.
	CampaignUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *CampaignUpsert) SetName(v string) *CampaignUpsert {
	u.Set(campaign.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateName() *CampaignUpsert {
	u.SetExcluded(campaign.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *CampaignUpsert) SetDescription(v string) *CampaignUpsert {
	u.Set(campaign.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateDescription() *CampaignUpsert {
	u.SetExcluded(campaign.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CampaignUpsert) ClearDescription() *CampaignUpsert {
	u.SetNull(campaign.FieldDescription)
	return u
}

// SetPriority sets the "priority" field.
func (u *CampaignUpsert) SetPriority(v models.Priority) *CampaignUpsert {
	u.Set(campaign.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *CampaignUpsert) UpdatePriority() *CampaignUpsert {
	u.SetExcluded(campaign.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *CampaignUpsert) AddPriority(v models.Priority) *CampaignUpsert {
	u.Add(campaign.FieldPriority, v)
	return u
}

// SetState sets the "state" field.
func (u *CampaignUpsert) SetState(v campaign.State) *CampaignUpsert {
	u.Set(campaign.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateState() *CampaignUpsert {
	u.SetExcluded(campaign.FieldState)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CampaignUpsert) SetUpdatedAt(v time.Time) *CampaignUpsert {
	u.Set(campaign.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CampaignUpsert) UpdateUpdatedAt() *CampaignUpsert {
	u.SetExcluded(campaign.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CampaignUpsertOne) UpdateNewValues() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(campaign.FieldProjectID)
		}
		if _, exists := u.create.mutation.HashListID(); exists {
			s.SetIgnore(campaign.FieldHashListID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(campaign.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CampaignUpsertOne) Ignore() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampaignUpsertOne) DoNothing() *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampaignCreate.OnConflict
// documentation for more info.
func (u *CampaignUpsertOne) Update(set func(*CampaignUpsert)) *CampaignUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampaignUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CampaignUpsertOne) SetName(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateName() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *CampaignUpsertOne) SetDescription(v string) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateDescription() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CampaignUpsertOne) ClearDescription() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *CampaignUpsertOne) SetPriority(v models.Priority) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *CampaignUpsertOne) AddPriority(v models.Priority) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdatePriority() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdatePriority()
	})
}

// SetState sets the "state" field.
func (u *CampaignUpsertOne) SetState(v campaign.State) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateState() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CampaignUpsertOne) SetUpdatedAt(v time.Time) *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CampaignUpsertOne) UpdateUpdatedAt() *CampaignUpsertOne {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CampaignUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampaignCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampaignUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CampaignUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CampaignUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CampaignCreateBulk is the builder for creating many Campaign entities in bulk.
type CampaignCreateBulk struct {
	config
	err      error
	builders []*CampaignCreate
	conflict []sql.ConflictOption
}

// Save creates the Campaign entities in the database.
func (_c *CampaignCreateBulk) Save(ctx context.Context) ([]*Campaign, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Campaign, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignMutation)
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
func (_c *CampaignCreateBulk) SaveX(ctx context.Context) []*Campaign {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Campaign.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampaignUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *CampaignCreateBulk) OnConflict(opts ...sql.ConflictOption) *CampaignUpsertBulk {
	_c.conflict = opts
	return &CampaignUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampaignCreateBulk) OnConflictColumns(columns ...string) *CampaignUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampaignUpsertBulk{
		create: _c,
	}
}

// CampaignUpsertBulk is the builder for "upsert"-ing
// a bulk of Campaign nodes.
type CampaignUpsertBulk struct {
	create *CampaignCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CampaignUpsertBulk) UpdateNewValues() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(campaign.FieldProjectID)
			}
			if _, exists := b.mutation.HashListID(); exists {
				s.SetIgnore(campaign.FieldHashListID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(campaign.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Campaign.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CampaignUpsertBulk) Ignore() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampaignUpsertBulk) DoNothing() *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampaignCreateBulk.OnConflict
// documentation for more info.
func (u *CampaignUpsertBulk) Update(set func(*CampaignUpsert)) *CampaignUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampaignUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *CampaignUpsertBulk) SetName(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateName() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *CampaignUpsertBulk) SetDescription(v string) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateDescription() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CampaignUpsertBulk) ClearDescription() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.ClearDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *CampaignUpsertBulk) SetPriority(v models.Priority) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *CampaignUpsertBulk) AddPriority(v models.Priority) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdatePriority() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdatePriority()
	})
}

// SetState sets the "state" field.
func (u *CampaignUpsertBulk) SetState(v campaign.State) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateState() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateState()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CampaignUpsertBulk) SetUpdatedAt(v time.Time) *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CampaignUpsertBulk) UpdateUpdatedAt() *CampaignUpsertBulk {
	return u.Update(func(s *CampaignUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CampaignUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CampaignCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampaignCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampaignUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
