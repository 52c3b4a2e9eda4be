// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scout-research/scout/ent/predicate"
	"github.com/scout-research/scout/ent/scopeclassification"
)

// ScopeClassificationQuery is the builder for querying ScopeClassification entities.
type ScopeClassificationQuery struct {
	config
	ctx        *QueryContext
	order      []scopeclassification.OrderOption
	inters     []Interceptor
	predicates []predicate.ScopeClassification
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ScopeClassificationQuery builder.
func (_q *ScopeClassificationQuery) Where(ps ...predicate.ScopeClassification) *ScopeClassificationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ScopeClassificationQuery) Limit(limit int) *ScopeClassificationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ScopeClassificationQuery) Offset(offset int) *ScopeClassificationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ScopeClassificationQuery) Unique(unique bool) *ScopeClassificationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ScopeClassificationQuery) Order(o ...scopeclassification.OrderOption) *ScopeClassificationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first ScopeClassification entity from the query.
// Returns a *NotFoundError when no ScopeClassification was found.
func (_q *ScopeClassificationQuery) First(ctx context.Context) (*ScopeClassification, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{scopeclassification.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ScopeClassificationQuery) FirstX(ctx context.Context) *ScopeClassification {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ScopeClassification ID from the query.
// Returns a *NotFoundError when no ScopeClassification ID was found.
func (_q *ScopeClassificationQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{scopeclassification.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ScopeClassificationQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ScopeClassification entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ScopeClassification entity is found.
// Returns a *NotFoundError when no ScopeClassification entities are found.
func (_q *ScopeClassificationQuery) Only(ctx context.Context) (*ScopeClassification, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{scopeclassification.Label}
	default:
		return nil, &NotSingularError{scopeclassification.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ScopeClassificationQuery) OnlyX(ctx context.Context) *ScopeClassification {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ScopeClassification ID in the query.
// Returns a *NotSingularError when more than one ScopeClassification ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ScopeClassificationQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{scopeclassification.Label}
	default:
		err = &NotSingularError{scopeclassification.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ScopeClassificationQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ScopeClassifications.
func (_q *ScopeClassificationQuery) All(ctx context.Context) ([]*ScopeClassification, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ScopeClassification, *ScopeClassificationQuery]()
	return withInterceptors[[]*ScopeClassification](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ScopeClassificationQuery) AllX(ctx context.Context) []*ScopeClassification {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ScopeClassification IDs.
func (_q *ScopeClassificationQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(scopeclassification.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ScopeClassificationQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ScopeClassificationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ScopeClassificationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ScopeClassificationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ScopeClassificationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ScopeClassificationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ScopeClassificationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ScopeClassificationQuery) Clone() *ScopeClassificationQuery {
	if _q == nil {
		return nil
	}
	return &ScopeClassificationQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]scopeclassification.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.ScopeClassification{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Result map[string]interface {} `json:"result,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ScopeClassification.Query().
//		GroupBy(scopeclassification.FieldResult).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ScopeClassificationQuery) GroupBy(field string, fields ...string) *ScopeClassificationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ScopeClassificationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = scopeclassification.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Result map[string]interface {} `json:"result,omitempty"`
//	}
//
//	client.ScopeClassification.Query().
//		Select(scopeclassification.FieldResult).
//		Scan(ctx, &v)
func (_q *ScopeClassificationQuery) Select(fields ...string) *ScopeClassificationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ScopeClassificationSelect{ScopeClassificationQuery: _q}
	sbuild.label = scopeclassification.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ScopeClassificationSelect configured with the given aggregations.
func (_q *ScopeClassificationQuery) Aggregate(fns ...AggregateFunc) *ScopeClassificationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ScopeClassificationQuery) prepareQuery(ctx context.Context) error {
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
		if !scopeclassification.ValidColumn(f) {
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

func (_q *ScopeClassificationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ScopeClassification, error) {
	var (
		nodes = []*ScopeClassification{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ScopeClassification).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ScopeClassification{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
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
	return nodes, nil
}

func (_q *ScopeClassificationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ScopeClassificationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(scopeclassification.Table, scopeclassification.Columns, sqlgraph.NewFieldSpec(scopeclassification.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scopeclassification.FieldID)
		for i := range fields {
			if fields[i] != scopeclassification.FieldID {
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

func (_q *ScopeClassificationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(scopeclassification.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = scopeclassification.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
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

// ScopeClassificationGroupBy is the group-by builder for ScopeClassification entities.
type ScopeClassificationGroupBy struct {
	selector
	build *ScopeClassificationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ScopeClassificationGroupBy) Aggregate(fns ...AggregateFunc) *ScopeClassificationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ScopeClassificationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScopeClassificationQuery, *ScopeClassificationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ScopeClassificationGroupBy) sqlScan(ctx context.Context, root *ScopeClassificationQuery, v any) error {
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

// ScopeClassificationSelect is the builder for selecting fields of ScopeClassification entities.
type ScopeClassificationSelect struct {
	*ScopeClassificationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ScopeClassificationSelect) Aggregate(fns ...AggregateFunc) *ScopeClassificationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ScopeClassificationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ScopeClassificationQuery, *ScopeClassificationSelect](ctx, _s.ScopeClassificationQuery, _s, _s.inters, v)
}

func (_s *ScopeClassificationSelect) sqlScan(ctx context.Context, root *ScopeClassificationQuery, v any) error {
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
