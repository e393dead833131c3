// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/webhookcommand"
	"github.com/droverhq/drover/ent/webhookconfig"
)

// WebhookConfigQuery is the builder for querying WebhookConfig entities.
type WebhookConfigQuery struct {
	config
	ctx          *QueryContext
	order        []webhookconfig.OrderOption
	inters       []Interceptor
	predicates   []predicate.WebhookConfig
	withCommands *WebhookCommandQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the WebhookConfigQuery builder.
func (_q *WebhookConfigQuery) Where(ps ...predicate.WebhookConfig) *WebhookConfigQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *WebhookConfigQuery) Limit(limit int) *WebhookConfigQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *WebhookConfigQuery) Offset(offset int) *WebhookConfigQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *WebhookConfigQuery) Unique(unique bool) *WebhookConfigQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *WebhookConfigQuery) Order(o ...webhookconfig.OrderOption) *WebhookConfigQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCommands chains the current query on the "commands" edge.
func (_q *WebhookConfigQuery) QueryCommands() *WebhookCommandQuery {
	query := (&WebhookCommandClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookconfig.Table, webhookconfig.FieldID, selector),
			sqlgraph.To(webhookcommand.Table, webhookcommand.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, webhookconfig.CommandsTable, webhookconfig.CommandsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first WebhookConfig entity from the query.
// Returns a *NotFoundError when no WebhookConfig was found.
func (_q *WebhookConfigQuery) First(ctx context.Context) (*WebhookConfig, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{webhookconfig.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *WebhookConfigQuery) FirstX(ctx context.Context) *WebhookConfig {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first WebhookConfig ID from the query.
// Returns a *NotFoundError when no WebhookConfig ID was found.
func (_q *WebhookConfigQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{webhookconfig.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *WebhookConfigQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single WebhookConfig entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one WebhookConfig entity is found.
// Returns a *NotFoundError when no WebhookConfig entities are found.
func (_q *WebhookConfigQuery) Only(ctx context.Context) (*WebhookConfig, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{webhookconfig.Label}
	default:
		return nil, &NotSingularError{webhookconfig.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *WebhookConfigQuery) OnlyX(ctx context.Context) *WebhookConfig {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only WebhookConfig ID in the query.
// Returns a *NotSingularError when more than one WebhookConfig ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *WebhookConfigQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{webhookconfig.Label}
	default:
		err = &NotSingularError{webhookconfig.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *WebhookConfigQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of WebhookConfigs.
func (_q *WebhookConfigQuery) All(ctx context.Context) ([]*WebhookConfig, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*WebhookConfig, *WebhookConfigQuery]()
	return withInterceptors[[]*WebhookConfig](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *WebhookConfigQuery) AllX(ctx context.Context) []*WebhookConfig {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of WebhookConfig IDs.
func (_q *WebhookConfigQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(webhookconfig.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *WebhookConfigQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *WebhookConfigQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*WebhookConfigQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *WebhookConfigQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *WebhookConfigQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *WebhookConfigQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the WebhookConfigQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *WebhookConfigQuery) Clone() *WebhookConfigQuery {
	if _q == nil {
		return nil
	}
	return &WebhookConfigQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]webhookconfig.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.WebhookConfig{}, _q.predicates...),
		withCommands: _q.withCommands.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCommands tells the query-builder to eager-load the nodes that are connected to
// the "commands" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *WebhookConfigQuery) WithCommands(opts ...func(*WebhookCommandQuery)) *WebhookConfigQuery {
	query := (&WebhookCommandClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCommands = query
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
//	client.WebhookConfig.Query().
//		GroupBy(webhookconfig.FieldName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *WebhookConfigQuery) GroupBy(field string, fields ...string) *WebhookConfigGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &WebhookConfigGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = webhookconfig.Label
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
//	client.WebhookConfig.Query().
//		Select(webhookconfig.FieldName).
//		Scan(ctx, &v)
func (_q *WebhookConfigQuery) Select(fields ...string) *WebhookConfigSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &WebhookConfigSelect{WebhookConfigQuery: _q}
	sbuild.label = webhookconfig.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a WebhookConfigSelect configured with the given aggregations.
func (_q *WebhookConfigQuery) Aggregate(fns ...AggregateFunc) *WebhookConfigSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *WebhookConfigQuery) prepareQuery(ctx context.Context) error {
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
		if !webhookconfig.ValidColumn(f) {
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

func (_q *WebhookConfigQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*WebhookConfig, error) {
	var (
		nodes       = []*WebhookConfig{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withCommands != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*WebhookConfig).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &WebhookConfig{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
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
	if query := _q.withCommands; query != nil {
		if err := _q.loadCommands(ctx, query, nodes,
			func(n *WebhookConfig) { n.Edges.Commands = []*WebhookCommand{} },
			func(n *WebhookConfig, e *WebhookCommand) { n.Edges.Commands = append(n.Edges.Commands, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *WebhookConfigQuery) loadCommands(ctx context.Context, query *WebhookCommandQuery, nodes []*WebhookConfig, init func(*WebhookConfig), assign func(*WebhookConfig, *WebhookCommand)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*WebhookConfig)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(webhookcommand.FieldWebhookID)
	}
	query.Where(predicate.WebhookCommand(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(webhookconfig.CommandsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.WebhookID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "webhook_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *WebhookConfigQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *WebhookConfigQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(webhookconfig.Table, webhookconfig.Columns, sqlgraph.NewFieldSpec(webhookconfig.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookconfig.FieldID)
		for i := range fields {
			if fields[i] != webhookconfig.FieldID {
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

func (_q *WebhookConfigQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(webhookconfig.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = webhookconfig.Columns
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

// WebhookConfigGroupBy is the group-by builder for WebhookConfig entities.
type WebhookConfigGroupBy struct {
	selector
	build *WebhookConfigQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *WebhookConfigGroupBy) Aggregate(fns ...AggregateFunc) *WebhookConfigGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *WebhookConfigGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WebhookConfigQuery, *WebhookConfigGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *WebhookConfigGroupBy) sqlScan(ctx context.Context, root *WebhookConfigQuery, v any) error {
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

// WebhookConfigSelect is the builder for selecting fields of WebhookConfig entities.
type WebhookConfigSelect struct {
	*WebhookConfigQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *WebhookConfigSelect) Aggregate(fns ...AggregateFunc) *WebhookConfigSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *WebhookConfigSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*WebhookConfigQuery, *WebhookConfigSelect](ctx, _s.WebhookConfigQuery, _s, _s.inters, v)
}

func (_s *WebhookConfigSelect) sqlScan(ctx context.Context, root *WebhookConfigQuery, v any) error {
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
