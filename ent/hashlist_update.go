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
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// HashListUpdate is the builder for updating HashList entities.
type HashListUpdate struct {
	config
	hooks    []Hook
	mutation *HashListMutation
}

// Where appends a list predicates to the HashListUpdate builder.
func (_u *HashListUpdate) Where(ps ...predicate.HashList) *HashListUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *HashListUpdate) SetName(v string) *HashListUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableName(v *string) *HashListUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *HashListUpdate) SetDescription(v string) *HashListUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableDescription(v *string) *HashListUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *HashListUpdate) ClearDescription() *HashListUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetHashTypeID sets the "hash_type_id" field.
func (_u *HashListUpdate) SetHashTypeID(v int) *HashListUpdate {
	_u.mutation.ResetHashTypeID()
	_u.mutation.SetHashTypeID(v)
	return _u
}

// SetNillableHashTypeID sets the "hash_type_id" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableHashTypeID(v *int) *HashListUpdate {
	if v != nil {
		_u.SetHashTypeID(*v)
	}
	return _u
}

// AddHashTypeID adds value to the "hash_type_id" field.
func (_u *HashListUpdate) AddHashTypeID(v int) *HashListUpdate {
	_u.mutation.AddHashTypeID(v)
	return _u
}

// SetSeparator sets the "separator" field.
func (_u *HashListUpdate) SetSeparator(v string) *HashListUpdate {
	_u.mutation.SetSeparator(v)
	return _u
}

// SetNillableSeparator sets the "separator" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableSeparator(v *string) *HashListUpdate {
	if v != nil {
		_u.SetSeparator(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *HashListUpdate) SetItemCount(v int64) *HashListUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableItemCount(v *int64) *HashListUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *HashListUpdate) AddItemCount(v int64) *HashListUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetUncrackedCount sets the "uncracked_count" field.
func (_u *HashListUpdate) SetUncrackedCount(v int64) *HashListUpdate {
	_u.mutation.ResetUncrackedCount()
	_u.mutation.SetUncrackedCount(v)
	return _u
}

// SetNillableUncrackedCount sets the "uncracked_count" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableUncrackedCount(v *int64) *HashListUpdate {
	if v != nil {
		_u.SetUncrackedCount(*v)
	}
	return _u
}

// AddUncrackedCount adds value to the "uncracked_count" field.
func (_u *HashListUpdate) AddUncrackedCount(v int64) *HashListUpdate {
	_u.mutation.AddUncrackedCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HashListUpdate) SetUpdatedAt(v time.Time) *HashListUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the HashItem entity by IDs.
func (_u *HashListUpdate) AddItemIDs(ids ...int) *HashListUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the HashItem entity.
func (_u *HashListUpdate) AddItems(v ...*HashItem) *HashListUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *HashListUpdate) AddCampaignIDs(ids ...int) *HashListUpdate {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *HashListUpdate) AddCampaigns(v ...*Campaign) *HashListUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the HashListMutation object of the builder.
func (_u *HashListUpdate) Mutation() *HashListMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the HashItem entity.
func (_u *HashListUpdate) ClearItems() *HashListUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to HashItem entities by IDs.
func (_u *HashListUpdate) RemoveItemIDs(ids ...int) *HashListUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to HashItem entities.
func (_u *HashListUpdate) RemoveItems(v ...*HashItem) *HashListUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *HashListUpdate) ClearCampaigns() *HashListUpdate {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *HashListUpdate) RemoveCampaignIDs(ids ...int) *HashListUpdate {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *HashListUpdate) RemoveCampaigns(v ...*Campaign) *HashListUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HashListUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashListUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HashListUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashListUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HashListUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hashlist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashListUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := hashlist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "HashList.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashTypeID(); ok {
		if err := hashlist.HashTypeIDValidator(v); err != nil {
			return &ValidationError{Name: "hash_type_id", err: fmt.Errorf(`ent: validator failed for field "HashList.hash_type_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Separator(); ok {
		if err := hashlist.SeparatorValidator(v); err != nil {
			return &ValidationError{Name: "separator", err: fmt.Errorf(`ent: validator failed for field "HashList.separator": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashList.project"`)
	}
	return nil
}

func (_u *HashListUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashlist.Table, hashlist.Columns, sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(hashlist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(hashlist.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(hashlist.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HashTypeID(); ok {
		_spec.SetField(hashlist.FieldHashTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHashTypeID(); ok {
		_spec.AddField(hashlist.FieldHashTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Separator(); ok {
		_spec.SetField(hashlist.FieldSeparator, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(hashlist.FieldItemCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(hashlist.FieldItemCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UncrackedCount(); ok {
		_spec.SetField(hashlist.FieldUncrackedCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUncrackedCount(); ok {
		_spec.AddField(hashlist.FieldUncrackedCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hashlist.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashlist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HashListUpdateOne is the builder for updating a single HashList entity.
type HashListUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HashListMutation
}

// SetName sets the "name" field.
func (_u *HashListUpdateOne) SetName(v string) *HashListUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableName(v *string) *HashListUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *HashListUpdateOne) SetDescription(v string) *HashListUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableDescription(v *string) *HashListUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *HashListUpdateOne) ClearDescription() *HashListUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetHashTypeID sets the "hash_type_id" field.
func (_u *HashListUpdateOne) SetHashTypeID(v int) *HashListUpdateOne {
	_u.mutation.ResetHashTypeID()
	_u.mutation.SetHashTypeID(v)
	return _u
}

// SetNillableHashTypeID sets the "hash_type_id" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableHashTypeID(v *int) *HashListUpdateOne {
	if v != nil {
		_u.SetHashTypeID(*v)
	}
	return _u
}

// AddHashTypeID adds value to the "hash_type_id" field.
func (_u *HashListUpdateOne) AddHashTypeID(v int) *HashListUpdateOne {
	_u.mutation.AddHashTypeID(v)
	return _u
}

// SetSeparator sets the "separator" field.
func (_u *HashListUpdateOne) SetSeparator(v string) *HashListUpdateOne {
	_u.mutation.SetSeparator(v)
	return _u
}

// SetNillableSeparator sets the "separator" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableSeparator(v *string) *HashListUpdateOne {
	if v != nil {
		_u.SetSeparator(*v)
	}
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *HashListUpdateOne) SetItemCount(v int64) *HashListUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableItemCount(v *int64) *HashListUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *HashListUpdateOne) AddItemCount(v int64) *HashListUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetUncrackedCount sets the "uncracked_count" field.
func (_u *HashListUpdateOne) SetUncrackedCount(v int64) *HashListUpdateOne {
	_u.mutation.ResetUncrackedCount()
	_u.mutation.SetUncrackedCount(v)
	return _u
}

// SetNillableUncrackedCount sets the "uncracked_count" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableUncrackedCount(v *int64) *HashListUpdateOne {
	if v != nil {
		_u.SetUncrackedCount(*v)
	}
	return _u
}

// AddUncrackedCount adds value to the "uncracked_count" field.
func (_u *HashListUpdateOne) AddUncrackedCount(v int64) *HashListUpdateOne {
	_u.mutation.AddUncrackedCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HashListUpdateOne) SetUpdatedAt(v time.Time) *HashListUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the HashItem entity by IDs.
func (_u *HashListUpdateOne) AddItemIDs(ids ...int) *HashListUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the HashItem entity.
func (_u *HashListUpdateOne) AddItems(v ...*HashItem) *HashListUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *HashListUpdateOne) AddCampaignIDs(ids ...int) *HashListUpdateOne {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *HashListUpdateOne) AddCampaigns(v ...*Campaign) *HashListUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the HashListMutation object of the builder.
func (_u *HashListUpdateOne) Mutation() *HashListMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the HashItem entity.
func (_u *HashListUpdateOne) ClearItems() *HashListUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to HashItem entities by IDs.
func (_u *HashListUpdateOne) RemoveItemIDs(ids ...int) *HashListUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to HashItem entities.
func (_u *HashListUpdateOne) RemoveItems(v ...*HashItem) *HashListUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *HashListUpdateOne) ClearCampaigns() *HashListUpdateOne {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *HashListUpdateOne) RemoveCampaignIDs(ids ...int) *HashListUpdateOne {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *HashListUpdateOne) RemoveCampaigns(v ...*Campaign) *HashListUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Where appends a list predicates to the HashListUpdate builder.
func (_u *HashListUpdateOne) Where(ps ...predicate.HashList) *HashListUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HashListUpdateOne) Select(field string, fields ...string) *HashListUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HashList entity.
func (_u *HashListUpdateOne) Save(ctx context.Context) (*HashList, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashListUpdateOne) SaveX(ctx context.Context) *HashList {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HashListUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashListUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HashListUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hashlist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashListUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := hashlist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "HashList.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashTypeID(); ok {
		if err := hashlist.HashTypeIDValidator(v); err != nil {
			return &ValidationError{Name: "hash_type_id", err: fmt.Errorf(`ent: validator failed for field "HashList.hash_type_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Separator(); ok {
		if err := hashlist.SeparatorValidator(v); err != nil {
			return &ValidationError{Name: "separator", err: fmt.Errorf(`ent: validator failed for field "HashList.separator": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashList.project"`)
	}
	return nil
}

func (_u *HashListUpdateOne) sqlSave(ctx context.Context) (_node *HashList, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashlist.Table, hashlist.Columns, sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HashList.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hashlist.FieldID)
		for _, f := range fields {
			if !hashlist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hashlist.FieldID {
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
		_spec.SetField(hashlist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(hashlist.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(hashlist.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.HashTypeID(); ok {
		_spec.SetField(hashlist.FieldHashTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHashTypeID(); ok {
		_spec.AddField(hashlist.FieldHashTypeID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Separator(); ok {
		_spec.SetField(hashlist.FieldSeparator, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(hashlist.FieldItemCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(hashlist.FieldItemCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UncrackedCount(); ok {
		_spec.SetField(hashlist.FieldUncrackedCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUncrackedCount(); ok {
		_spec.AddField(hashlist.FieldUncrackedCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hashlist.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HashList{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashlist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
