// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
)

// ResourceQuery is the builder for querying Resource entities.
type ResourceQuery struct {
	config
	ctx                 *QueryContext
	order               []resource.OrderOption
	inters              []Interceptor
	predicates          []predicate.Resource
	withProjects        *ProjectQuery
	withWordListAttacks *AttackQuery
	withRuleListAttacks *AttackQuery
	withMaskListAttacks *AttackQuery
	modifiers           []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ResourceQuery builder.
func (_q *ResourceQuery) Where(ps ...predicate.Resource) *ResourceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ResourceQuery) Limit(limit int) *ResourceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ResourceQuery) Offset(offset int) *ResourceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ResourceQuery) Unique(unique bool) *ResourceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ResourceQuery) Order(o ...resource.OrderOption) *ResourceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProjects chains the current query on the "projects" edge.
func (_q *ResourceQuery) QueryProjects() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, resource.ProjectsTable, resource.ProjectsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryWordListAttacks chains the current query on the "word_list_attacks" edge.
func (_q *ResourceQuery) QueryWordListAttacks() *AttackQuery {
	query := (&AttackClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, selector),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, resource.WordListAttacksTable, resource.WordListAttacksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRuleListAttacks chains the current query on the "rule_list_attacks" edge.
func (_q *ResourceQuery) QueryRuleListAttacks() *AttackQuery {
	query := (&AttackClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, selector),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, resource.RuleListAttacksTable, resource.RuleListAttacksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMaskListAttacks chains the current query on the "mask_list_attacks" edge.
func (_q *ResourceQuery) QueryMaskListAttacks() *AttackQuery {
	query := (&AttackClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, selector),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, resource.MaskListAttacksTable, resource.MaskListAttacksColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Resource entity from the query.
// Returns a *NotFoundError when no Resource was found.
func (_q *ResourceQuery) First(ctx context.Context) (*Resource, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{resource.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ResourceQuery) FirstX(ctx context.Context) *Resource {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Resource ID from the query.
// Returns a *NotFoundError when no Resource ID was found.
func (_q *ResourceQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{resource.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ResourceQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Resource entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Resource entity is found.
// Returns a *NotFoundError when no Resource entities are found.
func (_q *ResourceQuery) Only(ctx context.Context) (*Resource, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{resource.Label}
	default:
		return nil, &NotSingularError{resource.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ResourceQuery) OnlyX(ctx context.Context) *Resource {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Resource ID in the query.
// Returns a *NotSingularError when more than one Resource ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ResourceQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{resource.Label}
	default:
		err = &NotSingularError{resource.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ResourceQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Resources.
func (_q *ResourceQuery) All(ctx context.Context) ([]*Resource, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Resource, *ResourceQuery]()
	return withInterceptors[[]*Resource](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ResourceQuery) AllX(ctx context.Context) []*Resource {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Resource IDs.
func (_q *ResourceQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(resource.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ResourceQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ResourceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ResourceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ResourceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ResourceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *ResourceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ResourceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ResourceQuery) Clone() *ResourceQuery {
	if _q == nil {
		return nil
	}
	return &ResourceQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]resource.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Resource{}, _q.predicates...),
		withProjects:        _q.withProjects.Clone(),
		withWordListAttacks: _q.withWordListAttacks.Clone(),
		withRuleListAttacks: _q.withRuleListAttacks.Clone(),
		withMaskListAttacks: _q.withMaskListAttacks.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProjects tells the query-builder to eager-load the nodes that are connected to
// the "projects" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResourceQuery) WithProjects(opts ...func(*ProjectQuery)) *ResourceQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProjects = query
	return _q
}

// WithWordListAttacks tells the query-builder to eager-load the nodes that are connected to
// the "word_list_attacks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResourceQuery) WithWordListAttacks(opts ...func(*AttackQuery)) *ResourceQuery {
	query := (&AttackClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withWordListAttacks = query
	return _q
}

// WithRuleListAttacks tells the query-builder to eager-load the nodes that are connected to
// the "rule_list_attacks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResourceQuery) WithRuleListAttacks(opts ...func(*AttackQuery)) *ResourceQuery {
	query := (&AttackClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRuleListAttacks = query
	return _q
}

// WithMaskListAttacks tells the query-builder to eager-load the nodes that are connected to
// the "mask_list_attacks" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ResourceQuery) WithMaskListAttacks(opts ...func(*AttackQuery)) *ResourceQuery {
	query := (&AttackClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMaskListAttacks = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Resource.Query().
//		GroupBy(resource.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ResourceQuery) GroupBy(field string, fields ...string) *ResourceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ResourceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = resource.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Name string `json:"name,omitempty"`
//	}
//
//	client.Resource.Query().
//		Select(resource.FieldName).
//		Scan(ctx, &v)
func (_q *ResourceQuery) Select(fields ...string) *ResourceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ResourceSelect{ResourceQuery: _q}
	sbuild.label = resource.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ResourceSelect configured with the given aggregations.
func (_q *ResourceQuery) Aggregate(fns ...AggregateFunc) *ResourceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ResourceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !resource.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *ResourceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Resource, error) {
	var (
		nodes       = []*Resource{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withProjects != nil,
			_q.withWordListAttacks != nil,
			_q.withRuleListAttacks != nil,
			_q.withMaskListAttacks != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Resource).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Resource{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProjects; query != nil {
		if err := _q.loadProjects(ctx, query, nodes,
			func(n *Resource) { n.Edges.Projects = []*Project{} },
			func(n *Resource, e *Project) { n.Edges.Projects = append(n.Edges.Projects, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withWordListAttacks; query != nil {
		if err := _q.loadWordListAttacks(ctx, query, nodes,
			func(n *Resource) { n.Edges.WordListAttacks = []*Attack{} },
			func(n *Resource, e *Attack) { n.Edges.WordListAttacks = append(n.Edges.WordListAttacks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRuleListAttacks; query != nil {
		if err := _q.loadRuleListAttacks(ctx, query, nodes,
			func(n *Resource) { n.Edges.RuleListAttacks = []*Attack{} },
			func(n *Resource, e *Attack) { n.Edges.RuleListAttacks = append(n.Edges.RuleListAttacks, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMaskListAttacks; query != nil {
		if err := _q.loadMaskListAttacks(ctx, query, nodes,
			func(n *Resource) { n.Edges.MaskListAttacks = []*Attack{} },
			func(n *Resource, e *Attack) { n.Edges.MaskListAttacks = append(n.Edges.MaskListAttacks, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ResourceQuery) loadProjects(ctx context.Context, query *ProjectQuery, nodes []*Resource, init func(*Resource), assign func(*Resource, *Project)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[int]*Resource)
	nids := make(map[int]map[*Resource]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(resource.ProjectsTable)
		s.Join(joinT).On(s.C(project.FieldID), joinT.C(resource.ProjectsPrimaryKey[1]))
		s.Where(sql.InValues(joinT.C(resource.ProjectsPrimaryKey[0]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(resource.ProjectsPrimaryKey[0]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(sql.NullInt64)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := int(values[0].(*sql.NullInt64).Int64)
				inValue := int(values[1].(*sql.NullInt64).Int64)
				if nids[inValue] == nil {
					nids[inValue] = map[*Resource]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Project](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "projects" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}
func (_q *ResourceQuery) loadWordListAttacks(ctx context.Context, query *AttackQuery, nodes []*Resource, init func(*Resource), assign func(*Resource, *Attack)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Resource)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(attack.FieldWordListID)
	}
	query.Where(predicate.Attack(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(resource.WordListAttacksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WordListID
		if fk == nil {
			return fmt.Errorf(`foreign-key "word_list_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "word_list_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResourceQuery) loadRuleListAttacks(ctx context.Context, query *AttackQuery, nodes []*Resource, init func(*Resource), assign func(*Resource, *Attack)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Resource)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(attack.FieldRuleListID)
	}
	query.Where(predicate.Attack(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(resource.RuleListAttacksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RuleListID
		if fk == nil {
			return fmt.Errorf(`foreign-key "rule_list_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "rule_list_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *ResourceQuery) loadMaskListAttacks(ctx context.Context, query *AttackQuery, nodes []*Resource, init func(*Resource), assign func(*Resource, *Attack)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Resource)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(attack.FieldMaskListID)
	}
	query.Where(predicate.Attack(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(resource.MaskListAttacksColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.MaskListID
		if fk == nil {
			return fmt.Errorf(`foreign-key "mask_list_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "mask_list_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ResourceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ResourceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(resource.Table, resource.Columns, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resource.FieldID)
		for i := range fields {
			if fields[i] != resource.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *ResourceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(resource.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = resource.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *ResourceQuery) ForUpdate(opts ...sql.LockOption) *ResourceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *ResourceQuery) ForShare(opts ...sql.LockOption) *ResourceQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// ResourceGroupBy is the group-by builder for Resource entities.
type ResourceGroupBy struct {
	selector
	build *ResourceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ResourceGroupBy) Aggregate(fns ...AggregateFunc) *ResourceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ResourceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResourceQuery, *ResourceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ResourceGroupBy) sqlScan(ctx context.Context, root *ResourceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// ResourceSelect is the builder for selecting fields of Resource entities.
type ResourceSelect struct {
	*ResourceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ResourceSelect) Aggregate(fns ...AggregateFunc) *ResourceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ResourceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ResourceQuery, *ResourceSelect](ctx, _s.ResourceQuery, _s, _s.inters, v)
}

func (_s *ResourceSelect) sqlScan(ctx context.Context, root *ResourceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
