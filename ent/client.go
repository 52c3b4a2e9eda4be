// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/scout-research/scout/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/scout-research/scout/ent/globalsetting"
	"github.com/scout-research/scout/ent/researchtask"
	"github.com/scout-research/scout/ent/scopeclassification"
	"github.com/scout-research/scout/ent/strategyrecord"
	"github.com/scout-research/scout/ent/workflowcheckpoint"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GlobalSetting is the client for interacting with the GlobalSetting builders.
	GlobalSetting *GlobalSettingClient
	// ResearchTask is the client for interacting with the ResearchTask builders.
	ResearchTask *ResearchTaskClient
	// ScopeClassification is the client for interacting with the ScopeClassification builders.
	ScopeClassification *ScopeClassificationClient
	// StrategyRecord is the client for interacting with the StrategyRecord builders.
	StrategyRecord *StrategyRecordClient
	// WorkflowCheckpoint is the client for interacting with the WorkflowCheckpoint builders.
	WorkflowCheckpoint *WorkflowCheckpointClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GlobalSetting = NewGlobalSettingClient(c.config)
	c.ResearchTask = NewResearchTaskClient(c.config)
	c.ScopeClassification = NewScopeClassificationClient(c.config)
	c.StrategyRecord = NewStrategyRecordClient(c.config)
	c.WorkflowCheckpoint = NewWorkflowCheckpointClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		GlobalSetting:       NewGlobalSettingClient(cfg),
		ResearchTask:        NewResearchTaskClient(cfg),
		ScopeClassification: NewScopeClassificationClient(cfg),
		StrategyRecord:      NewStrategyRecordClient(cfg),
		WorkflowCheckpoint:  NewWorkflowCheckpointClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		GlobalSetting:       NewGlobalSettingClient(cfg),
		ResearchTask:        NewResearchTaskClient(cfg),
		ScopeClassification: NewScopeClassificationClient(cfg),
		StrategyRecord:      NewStrategyRecordClient(cfg),
		WorkflowCheckpoint:  NewWorkflowCheckpointClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GlobalSetting.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.GlobalSetting.Use(hooks...)
	c.ResearchTask.Use(hooks...)
	c.ScopeClassification.Use(hooks...)
	c.StrategyRecord.Use(hooks...)
	c.WorkflowCheckpoint.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GlobalSetting.Intercept(interceptors...)
	c.ResearchTask.Intercept(interceptors...)
	c.ScopeClassification.Intercept(interceptors...)
	c.StrategyRecord.Intercept(interceptors...)
	c.WorkflowCheckpoint.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GlobalSettingMutation:
		return c.GlobalSetting.mutate(ctx, m)
	case *ResearchTaskMutation:
		return c.ResearchTask.mutate(ctx, m)
	case *ScopeClassificationMutation:
		return c.ScopeClassification.mutate(ctx, m)
	case *StrategyRecordMutation:
		return c.StrategyRecord.mutate(ctx, m)
	case *WorkflowCheckpointMutation:
		return c.WorkflowCheckpoint.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GlobalSettingClient is a client for the GlobalSetting schema.
type GlobalSettingClient struct {
	config
}

// NewGlobalSettingClient returns a client for the GlobalSetting from the given config.
func NewGlobalSettingClient(c config) *GlobalSettingClient {
	return &GlobalSettingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `globalsetting.Hooks(f(g(h())))`.
func (c *GlobalSettingClient) Use(hooks ...Hook) {
	c.hooks.GlobalSetting = append(c.hooks.GlobalSetting, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `globalsetting.Intercept(f(g(h())))`.
func (c *GlobalSettingClient) Intercept(interceptors ...Interceptor) {
	c.inters.GlobalSetting = append(c.inters.GlobalSetting, interceptors...)
}

// Create returns a builder for creating a GlobalSetting entity.
func (c *GlobalSettingClient) Create() *GlobalSettingCreate {
	mutation := newGlobalSettingMutation(c.config, OpCreate)
	return &GlobalSettingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GlobalSetting entities.
func (c *GlobalSettingClient) CreateBulk(builders ...*GlobalSettingCreate) *GlobalSettingCreateBulk {
	return &GlobalSettingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GlobalSettingClient) MapCreateBulk(slice any, setFunc func(*GlobalSettingCreate, int)) *GlobalSettingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GlobalSettingCreateBulk{err: fmt.Errorf("calling to GlobalSettingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GlobalSettingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GlobalSettingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GlobalSetting.
func (c *GlobalSettingClient) Update() *GlobalSettingUpdate {
	mutation := newGlobalSettingMutation(c.config, OpUpdate)
	return &GlobalSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GlobalSettingClient) UpdateOne(_m *GlobalSetting) *GlobalSettingUpdateOne {
	mutation := newGlobalSettingMutation(c.config, OpUpdateOne, withGlobalSetting(_m))
	return &GlobalSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GlobalSettingClient) UpdateOneID(id int) *GlobalSettingUpdateOne {
	mutation := newGlobalSettingMutation(c.config, OpUpdateOne, withGlobalSettingID(id))
	return &GlobalSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GlobalSetting.
func (c *GlobalSettingClient) Delete() *GlobalSettingDelete {
	mutation := newGlobalSettingMutation(c.config, OpDelete)
	return &GlobalSettingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GlobalSettingClient) DeleteOne(_m *GlobalSetting) *GlobalSettingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GlobalSettingClient) DeleteOneID(id int) *GlobalSettingDeleteOne {
	builder := c.Delete().Where(globalsetting.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GlobalSettingDeleteOne{builder}
}

// Query returns a query builder for GlobalSetting.
func (c *GlobalSettingClient) Query() *GlobalSettingQuery {
	return &GlobalSettingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGlobalSetting},
		inters: c.Interceptors(),
	}
}

// Get returns a GlobalSetting entity by its id.
func (c *GlobalSettingClient) Get(ctx context.Context, id int) (*GlobalSetting, error) {
	return c.Query().Where(globalsetting.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GlobalSettingClient) GetX(ctx context.Context, id int) *GlobalSetting {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GlobalSettingClient) Hooks() []Hook {
	return c.hooks.GlobalSetting
}

// Interceptors returns the client interceptors.
func (c *GlobalSettingClient) Interceptors() []Interceptor {
	return c.inters.GlobalSetting
}

func (c *GlobalSettingClient) mutate(ctx context.Context, m *GlobalSettingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GlobalSettingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GlobalSettingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GlobalSettingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GlobalSettingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GlobalSetting mutation op: %q", m.Op())
	}
}

// ResearchTaskClient is a client for the ResearchTask schema.
type ResearchTaskClient struct {
	config
}

// NewResearchTaskClient returns a client for the ResearchTask from the given config.
func NewResearchTaskClient(c config) *ResearchTaskClient {
	return &ResearchTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `researchtask.Hooks(f(g(h())))`.
func (c *ResearchTaskClient) Use(hooks ...Hook) {
	c.hooks.ResearchTask = append(c.hooks.ResearchTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `researchtask.Intercept(f(g(h())))`.
func (c *ResearchTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResearchTask = append(c.inters.ResearchTask, interceptors...)
}

// Create returns a builder for creating a ResearchTask entity.
func (c *ResearchTaskClient) Create() *ResearchTaskCreate {
	mutation := newResearchTaskMutation(c.config, OpCreate)
	return &ResearchTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResearchTask entities.
func (c *ResearchTaskClient) CreateBulk(builders ...*ResearchTaskCreate) *ResearchTaskCreateBulk {
	return &ResearchTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResearchTaskClient) MapCreateBulk(slice any, setFunc func(*ResearchTaskCreate, int)) *ResearchTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResearchTaskCreateBulk{err: fmt.Errorf("calling to ResearchTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResearchTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResearchTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResearchTask.
func (c *ResearchTaskClient) Update() *ResearchTaskUpdate {
	mutation := newResearchTaskMutation(c.config, OpUpdate)
	return &ResearchTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResearchTaskClient) UpdateOne(_m *ResearchTask) *ResearchTaskUpdateOne {
	mutation := newResearchTaskMutation(c.config, OpUpdateOne, withResearchTask(_m))
	return &ResearchTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResearchTaskClient) UpdateOneID(id string) *ResearchTaskUpdateOne {
	mutation := newResearchTaskMutation(c.config, OpUpdateOne, withResearchTaskID(id))
	return &ResearchTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResearchTask.
func (c *ResearchTaskClient) Delete() *ResearchTaskDelete {
	mutation := newResearchTaskMutation(c.config, OpDelete)
	return &ResearchTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResearchTaskClient) DeleteOne(_m *ResearchTask) *ResearchTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResearchTaskClient) DeleteOneID(id string) *ResearchTaskDeleteOne {
	builder := c.Delete().Where(researchtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResearchTaskDeleteOne{builder}
}

// Query returns a query builder for ResearchTask.
func (c *ResearchTaskClient) Query() *ResearchTaskQuery {
	return &ResearchTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResearchTask},
		inters: c.Interceptors(),
	}
}

// Get returns a ResearchTask entity by its id.
func (c *ResearchTaskClient) Get(ctx context.Context, id string) (*ResearchTask, error) {
	return c.Query().Where(researchtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResearchTaskClient) GetX(ctx context.Context, id string) *ResearchTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResearchTaskClient) Hooks() []Hook {
	return c.hooks.ResearchTask
}

// Interceptors returns the client interceptors.
func (c *ResearchTaskClient) Interceptors() []Interceptor {
	return c.inters.ResearchTask
}

func (c *ResearchTaskClient) mutate(ctx context.Context, m *ResearchTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResearchTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResearchTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResearchTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResearchTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResearchTask mutation op: %q", m.Op())
	}
}

// ScopeClassificationClient is a client for the ScopeClassification schema.
type ScopeClassificationClient struct {
	config
}

// NewScopeClassificationClient returns a client for the ScopeClassification from the given config.
func NewScopeClassificationClient(c config) *ScopeClassificationClient {
	return &ScopeClassificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `scopeclassification.Hooks(f(g(h())))`.
func (c *ScopeClassificationClient) Use(hooks ...Hook) {
	c.hooks.ScopeClassification = append(c.hooks.ScopeClassification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `scopeclassification.Intercept(f(g(h())))`.
func (c *ScopeClassificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ScopeClassification = append(c.inters.ScopeClassification, interceptors...)
}

// Create returns a builder for creating a ScopeClassification entity.
func (c *ScopeClassificationClient) Create() *ScopeClassificationCreate {
	mutation := newScopeClassificationMutation(c.config, OpCreate)
	return &ScopeClassificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ScopeClassification entities.
func (c *ScopeClassificationClient) CreateBulk(builders ...*ScopeClassificationCreate) *ScopeClassificationCreateBulk {
	return &ScopeClassificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ScopeClassificationClient) MapCreateBulk(slice any, setFunc func(*ScopeClassificationCreate, int)) *ScopeClassificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ScopeClassificationCreateBulk{err: fmt.Errorf("calling to ScopeClassificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ScopeClassificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ScopeClassificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ScopeClassification.
func (c *ScopeClassificationClient) Update() *ScopeClassificationUpdate {
	mutation := newScopeClassificationMutation(c.config, OpUpdate)
	return &ScopeClassificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ScopeClassificationClient) UpdateOne(_m *ScopeClassification) *ScopeClassificationUpdateOne {
	mutation := newScopeClassificationMutation(c.config, OpUpdateOne, withScopeClassification(_m))
	return &ScopeClassificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ScopeClassificationClient) UpdateOneID(id string) *ScopeClassificationUpdateOne {
	mutation := newScopeClassificationMutation(c.config, OpUpdateOne, withScopeClassificationID(id))
	return &ScopeClassificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ScopeClassification.
func (c *ScopeClassificationClient) Delete() *ScopeClassificationDelete {
	mutation := newScopeClassificationMutation(c.config, OpDelete)
	return &ScopeClassificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ScopeClassificationClient) DeleteOne(_m *ScopeClassification) *ScopeClassificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ScopeClassificationClient) DeleteOneID(id string) *ScopeClassificationDeleteOne {
	builder := c.Delete().Where(scopeclassification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ScopeClassificationDeleteOne{builder}
}

// Query returns a query builder for ScopeClassification.
func (c *ScopeClassificationClient) Query() *ScopeClassificationQuery {
	return &ScopeClassificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeScopeClassification},
		inters: c.Interceptors(),
	}
}

// Get returns a ScopeClassification entity by its id.
func (c *ScopeClassificationClient) Get(ctx context.Context, id string) (*ScopeClassification, error) {
	return c.Query().Where(scopeclassification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ScopeClassificationClient) GetX(ctx context.Context, id string) *ScopeClassification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ScopeClassificationClient) Hooks() []Hook {
	return c.hooks.ScopeClassification
}

// Interceptors returns the client interceptors.
func (c *ScopeClassificationClient) Interceptors() []Interceptor {
	return c.inters.ScopeClassification
}

func (c *ScopeClassificationClient) mutate(ctx context.Context, m *ScopeClassificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ScopeClassificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ScopeClassificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ScopeClassificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ScopeClassificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ScopeClassification mutation op: %q", m.Op())
	}
}

// StrategyRecordClient is a client for the StrategyRecord schema.
type StrategyRecordClient struct {
	config
}

// NewStrategyRecordClient returns a client for the StrategyRecord from the given config.
func NewStrategyRecordClient(c config) *StrategyRecordClient {
	return &StrategyRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `strategyrecord.Hooks(f(g(h())))`.
func (c *StrategyRecordClient) Use(hooks ...Hook) {
	c.hooks.StrategyRecord = append(c.hooks.StrategyRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `strategyrecord.Intercept(f(g(h())))`.
func (c *StrategyRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.StrategyRecord = append(c.inters.StrategyRecord, interceptors...)
}

// Create returns a builder for creating a StrategyRecord entity.
func (c *StrategyRecordClient) Create() *StrategyRecordCreate {
	mutation := newStrategyRecordMutation(c.config, OpCreate)
	return &StrategyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StrategyRecord entities.
func (c *StrategyRecordClient) CreateBulk(builders ...*StrategyRecordCreate) *StrategyRecordCreateBulk {
	return &StrategyRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StrategyRecordClient) MapCreateBulk(slice any, setFunc func(*StrategyRecordCreate, int)) *StrategyRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StrategyRecordCreateBulk{err: fmt.Errorf("calling to StrategyRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StrategyRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StrategyRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StrategyRecord.
func (c *StrategyRecordClient) Update() *StrategyRecordUpdate {
	mutation := newStrategyRecordMutation(c.config, OpUpdate)
	return &StrategyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StrategyRecordClient) UpdateOne(_m *StrategyRecord) *StrategyRecordUpdateOne {
	mutation := newStrategyRecordMutation(c.config, OpUpdateOne, withStrategyRecord(_m))
	return &StrategyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StrategyRecordClient) UpdateOneID(id int) *StrategyRecordUpdateOne {
	mutation := newStrategyRecordMutation(c.config, OpUpdateOne, withStrategyRecordID(id))
	return &StrategyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StrategyRecord.
func (c *StrategyRecordClient) Delete() *StrategyRecordDelete {
	mutation := newStrategyRecordMutation(c.config, OpDelete)
	return &StrategyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StrategyRecordClient) DeleteOne(_m *StrategyRecord) *StrategyRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StrategyRecordClient) DeleteOneID(id int) *StrategyRecordDeleteOne {
	builder := c.Delete().Where(strategyrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StrategyRecordDeleteOne{builder}
}

// Query returns a query builder for StrategyRecord.
func (c *StrategyRecordClient) Query() *StrategyRecordQuery {
	return &StrategyRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStrategyRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a StrategyRecord entity by its id.
func (c *StrategyRecordClient) Get(ctx context.Context, id int) (*StrategyRecord, error) {
	return c.Query().Where(strategyrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StrategyRecordClient) GetX(ctx context.Context, id int) *StrategyRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StrategyRecordClient) Hooks() []Hook {
	return c.hooks.StrategyRecord
}

// Interceptors returns the client interceptors.
func (c *StrategyRecordClient) Interceptors() []Interceptor {
	return c.inters.StrategyRecord
}

func (c *StrategyRecordClient) mutate(ctx context.Context, m *StrategyRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StrategyRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StrategyRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StrategyRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StrategyRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StrategyRecord mutation op: %q", m.Op())
	}
}

// WorkflowCheckpointClient is a client for the WorkflowCheckpoint schema.
type WorkflowCheckpointClient struct {
	config
}

// NewWorkflowCheckpointClient returns a client for the WorkflowCheckpoint from the given config.
func NewWorkflowCheckpointClient(c config) *WorkflowCheckpointClient {
	return &WorkflowCheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `workflowcheckpoint.Hooks(f(g(h())))`.
func (c *WorkflowCheckpointClient) Use(hooks ...Hook) {
	c.hooks.WorkflowCheckpoint = append(c.hooks.WorkflowCheckpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `workflowcheckpoint.Intercept(f(g(h())))`.
func (c *WorkflowCheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.WorkflowCheckpoint = append(c.inters.WorkflowCheckpoint, interceptors...)
}

// Create returns a builder for creating a WorkflowCheckpoint entity.
func (c *WorkflowCheckpointClient) Create() *WorkflowCheckpointCreate {
	mutation := newWorkflowCheckpointMutation(c.config, OpCreate)
	return &WorkflowCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WorkflowCheckpoint entities.
func (c *WorkflowCheckpointClient) CreateBulk(builders ...*WorkflowCheckpointCreate) *WorkflowCheckpointCreateBulk {
	return &WorkflowCheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WorkflowCheckpointClient) MapCreateBulk(slice any, setFunc func(*WorkflowCheckpointCreate, int)) *WorkflowCheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WorkflowCheckpointCreateBulk{err: fmt.Errorf("calling to WorkflowCheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WorkflowCheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WorkflowCheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkflowCheckpoint.
func (c *WorkflowCheckpointClient) Update() *WorkflowCheckpointUpdate {
	mutation := newWorkflowCheckpointMutation(c.config, OpUpdate)
	return &WorkflowCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkflowCheckpointClient) UpdateOne(_m *WorkflowCheckpoint) *WorkflowCheckpointUpdateOne {
	mutation := newWorkflowCheckpointMutation(c.config, OpUpdateOne, withWorkflowCheckpoint(_m))
	return &WorkflowCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkflowCheckpointClient) UpdateOneID(id int) *WorkflowCheckpointUpdateOne {
	mutation := newWorkflowCheckpointMutation(c.config, OpUpdateOne, withWorkflowCheckpointID(id))
	return &WorkflowCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WorkflowCheckpoint.
func (c *WorkflowCheckpointClient) Delete() *WorkflowCheckpointDelete {
	mutation := newWorkflowCheckpointMutation(c.config, OpDelete)
	return &WorkflowCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkflowCheckpointClient) DeleteOne(_m *WorkflowCheckpoint) *WorkflowCheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkflowCheckpointClient) DeleteOneID(id int) *WorkflowCheckpointDeleteOne {
	builder := c.Delete().Where(workflowcheckpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WorkflowCheckpointDeleteOne{builder}
}

// Query returns a query builder for WorkflowCheckpoint.
func (c *WorkflowCheckpointClient) Query() *WorkflowCheckpointQuery {
	return &WorkflowCheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWorkflowCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a WorkflowCheckpoint entity by its id.
func (c *WorkflowCheckpointClient) Get(ctx context.Context, id int) (*WorkflowCheckpoint, error) {
	return c.Query().Where(workflowcheckpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkflowCheckpointClient) GetX(ctx context.Context, id int) *WorkflowCheckpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WorkflowCheckpointClient) Hooks() []Hook {
	return c.hooks.WorkflowCheckpoint
}

// Interceptors returns the client interceptors.
func (c *WorkflowCheckpointClient) Interceptors() []Interceptor {
	return c.inters.WorkflowCheckpoint
}

func (c *WorkflowCheckpointClient) mutate(ctx context.Context, m *WorkflowCheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WorkflowCheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WorkflowCheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WorkflowCheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WorkflowCheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WorkflowCheckpoint mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GlobalSetting, ResearchTask, ScopeClassification, StrategyRecord,
		WorkflowCheckpoint []ent.Hook
	}
	inters struct {
		GlobalSetting, ResearchTask, ScopeClassification, StrategyRecord,
		WorkflowCheckpoint []ent.Interceptor
	}
)
