// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/pantryops/pantryd/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pantryops/pantryd/gen/ent/auditentry"
	"github.com/pantryops/pantryd/gen/ent/ingestionjob"
	"github.com/pantryops/pantryd/gen/ent/interactionevent"
	"github.com/pantryops/pantryd/gen/ent/inventoryitem"
	"github.com/pantryops/pantryd/gen/ent/metricssnapshot"
	"github.com/pantryops/pantryd/gen/ent/toolinvocation"
	"github.com/pantryops/pantryd/gen/ent/upload"
	"github.com/pantryops/pantryd/gen/ent/uploadjob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditEntry is the client for interacting with the AuditEntry builders.
	AuditEntry *AuditEntryClient
	// IngestionJob is the client for interacting with the IngestionJob builders.
	IngestionJob *IngestionJobClient
	// InteractionEvent is the client for interacting with the InteractionEvent builders.
	InteractionEvent *InteractionEventClient
	// InventoryItem is the client for interacting with the InventoryItem builders.
	InventoryItem *InventoryItemClient
	// MetricsSnapshot is the client for interacting with the MetricsSnapshot builders.
	MetricsSnapshot *MetricsSnapshotClient
	// ToolInvocation is the client for interacting with the ToolInvocation builders.
	ToolInvocation *ToolInvocationClient
	// Upload is the client for interacting with the Upload builders.
	Upload *UploadClient
	// UploadJob is the client for interacting with the UploadJob builders.
	UploadJob *UploadJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditEntry = NewAuditEntryClient(c.config)
	c.IngestionJob = NewIngestionJobClient(c.config)
	c.InteractionEvent = NewInteractionEventClient(c.config)
	c.InventoryItem = NewInventoryItemClient(c.config)
	c.MetricsSnapshot = NewMetricsSnapshotClient(c.config)
	c.ToolInvocation = NewToolInvocationClient(c.config)
	c.Upload = NewUploadClient(c.config)
	c.UploadJob = NewUploadJobClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AuditEntry:       NewAuditEntryClient(cfg),
		IngestionJob:     NewIngestionJobClient(cfg),
		InteractionEvent: NewInteractionEventClient(cfg),
		InventoryItem:    NewInventoryItemClient(cfg),
		MetricsSnapshot:  NewMetricsSnapshotClient(cfg),
		ToolInvocation:   NewToolInvocationClient(cfg),
		Upload:           NewUploadClient(cfg),
		UploadJob:        NewUploadJobClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AuditEntry:       NewAuditEntryClient(cfg),
		IngestionJob:     NewIngestionJobClient(cfg),
		InteractionEvent: NewInteractionEventClient(cfg),
		InventoryItem:    NewInventoryItemClient(cfg),
		MetricsSnapshot:  NewMetricsSnapshotClient(cfg),
		ToolInvocation:   NewToolInvocationClient(cfg),
		Upload:           NewUploadClient(cfg),
		UploadJob:        NewUploadJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditEntry.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditEntry, c.IngestionJob, c.InteractionEvent, c.InventoryItem,
		c.MetricsSnapshot, c.ToolInvocation, c.Upload, c.UploadJob,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditEntry, c.IngestionJob, c.InteractionEvent, c.InventoryItem,
		c.MetricsSnapshot, c.ToolInvocation, c.Upload, c.UploadJob,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditEntryMutation:
		return c.AuditEntry.mutate(ctx, m)
	case *IngestionJobMutation:
		return c.IngestionJob.mutate(ctx, m)
	case *InteractionEventMutation:
		return c.InteractionEvent.mutate(ctx, m)
	case *InventoryItemMutation:
		return c.InventoryItem.mutate(ctx, m)
	case *MetricsSnapshotMutation:
		return c.MetricsSnapshot.mutate(ctx, m)
	case *ToolInvocationMutation:
		return c.ToolInvocation.mutate(ctx, m)
	case *UploadMutation:
		return c.Upload.mutate(ctx, m)
	case *UploadJobMutation:
		return c.UploadJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditEntryClient is a client for the AuditEntry schema.
type AuditEntryClient struct {
	config
}

// NewAuditEntryClient returns a client for the AuditEntry from the given config.
func NewAuditEntryClient(c config) *AuditEntryClient {
	return &AuditEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditentry.Hooks(f(g(h())))`.
func (c *AuditEntryClient) Use(hooks ...Hook) {
	c.hooks.AuditEntry = append(c.hooks.AuditEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditentry.Intercept(f(g(h())))`.
func (c *AuditEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditEntry = append(c.inters.AuditEntry, interceptors...)
}

// Create returns a builder for creating a AuditEntry entity.
func (c *AuditEntryClient) Create() *AuditEntryCreate {
	mutation := newAuditEntryMutation(c.config, OpCreate)
	return &AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditEntry entities.
func (c *AuditEntryClient) CreateBulk(builders ...*AuditEntryCreate) *AuditEntryCreateBulk {
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditEntryClient) MapCreateBulk(slice any, setFunc func(*AuditEntryCreate, int)) *AuditEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditEntryCreateBulk{err: fmt.Errorf("calling to AuditEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditEntry.
func (c *AuditEntryClient) Update() *AuditEntryUpdate {
	mutation := newAuditEntryMutation(c.config, OpUpdate)
	return &AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditEntryClient) UpdateOne(_m *AuditEntry) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntry(_m))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditEntryClient) UpdateOneID(id uuid.UUID) *AuditEntryUpdateOne {
	mutation := newAuditEntryMutation(c.config, OpUpdateOne, withAuditEntryID(id))
	return &AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditEntry.
func (c *AuditEntryClient) Delete() *AuditEntryDelete {
	mutation := newAuditEntryMutation(c.config, OpDelete)
	return &AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditEntryClient) DeleteOne(_m *AuditEntry) *AuditEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditEntryClient) DeleteOneID(id uuid.UUID) *AuditEntryDeleteOne {
	builder := c.Delete().Where(auditentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditEntryDeleteOne{builder}
}

// Query returns a query builder for AuditEntry.
func (c *AuditEntryClient) Query() *AuditEntryQuery {
	return &AuditEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditEntry entity by its id.
func (c *AuditEntryClient) Get(ctx context.Context, id uuid.UUID) (*AuditEntry, error) {
	return c.Query().Where(auditentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditEntryClient) GetX(ctx context.Context, id uuid.UUID) *AuditEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditEntryClient) Hooks() []Hook {
	return c.hooks.AuditEntry
}

// Interceptors returns the client interceptors.
func (c *AuditEntryClient) Interceptors() []Interceptor {
	return c.inters.AuditEntry
}

func (c *AuditEntryClient) mutate(ctx context.Context, m *AuditEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditEntry mutation op: %q", m.Op())
	}
}

// IngestionJobClient is a client for the IngestionJob schema.
type IngestionJobClient struct {
	config
}

// NewIngestionJobClient returns a client for the IngestionJob from the given config.
func NewIngestionJobClient(c config) *IngestionJobClient {
	return &IngestionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ingestionjob.Hooks(f(g(h())))`.
func (c *IngestionJobClient) Use(hooks ...Hook) {
	c.hooks.IngestionJob = append(c.hooks.IngestionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ingestionjob.Intercept(f(g(h())))`.
func (c *IngestionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.IngestionJob = append(c.inters.IngestionJob, interceptors...)
}

// Create returns a builder for creating a IngestionJob entity.
func (c *IngestionJobClient) Create() *IngestionJobCreate {
	mutation := newIngestionJobMutation(c.config, OpCreate)
	return &IngestionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IngestionJob entities.
func (c *IngestionJobClient) CreateBulk(builders ...*IngestionJobCreate) *IngestionJobCreateBulk {
	return &IngestionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IngestionJobClient) MapCreateBulk(slice any, setFunc func(*IngestionJobCreate, int)) *IngestionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IngestionJobCreateBulk{err: fmt.Errorf("calling to IngestionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IngestionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IngestionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IngestionJob.
func (c *IngestionJobClient) Update() *IngestionJobUpdate {
	mutation := newIngestionJobMutation(c.config, OpUpdate)
	return &IngestionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IngestionJobClient) UpdateOne(_m *IngestionJob) *IngestionJobUpdateOne {
	mutation := newIngestionJobMutation(c.config, OpUpdateOne, withIngestionJob(_m))
	return &IngestionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IngestionJobClient) UpdateOneID(id uuid.UUID) *IngestionJobUpdateOne {
	mutation := newIngestionJobMutation(c.config, OpUpdateOne, withIngestionJobID(id))
	return &IngestionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IngestionJob.
func (c *IngestionJobClient) Delete() *IngestionJobDelete {
	mutation := newIngestionJobMutation(c.config, OpDelete)
	return &IngestionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IngestionJobClient) DeleteOne(_m *IngestionJob) *IngestionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IngestionJobClient) DeleteOneID(id uuid.UUID) *IngestionJobDeleteOne {
	builder := c.Delete().Where(ingestionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IngestionJobDeleteOne{builder}
}

// Query returns a query builder for IngestionJob.
func (c *IngestionJobClient) Query() *IngestionJobQuery {
	return &IngestionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIngestionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a IngestionJob entity by its id.
func (c *IngestionJobClient) Get(ctx context.Context, id uuid.UUID) (*IngestionJob, error) {
	return c.Query().Where(ingestionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IngestionJobClient) GetX(ctx context.Context, id uuid.UUID) *IngestionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IngestionJobClient) Hooks() []Hook {
	return c.hooks.IngestionJob
}

// Interceptors returns the client interceptors.
func (c *IngestionJobClient) Interceptors() []Interceptor {
	return c.inters.IngestionJob
}

func (c *IngestionJobClient) mutate(ctx context.Context, m *IngestionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IngestionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IngestionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IngestionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IngestionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IngestionJob mutation op: %q", m.Op())
	}
}

// InteractionEventClient is a client for the InteractionEvent schema.
type InteractionEventClient struct {
	config
}

// NewInteractionEventClient returns a client for the InteractionEvent from the given config.
func NewInteractionEventClient(c config) *InteractionEventClient {
	return &InteractionEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `interactionevent.Hooks(f(g(h())))`.
func (c *InteractionEventClient) Use(hooks ...Hook) {
	c.hooks.InteractionEvent = append(c.hooks.InteractionEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `interactionevent.Intercept(f(g(h())))`.
func (c *InteractionEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.InteractionEvent = append(c.inters.InteractionEvent, interceptors...)
}

// Create returns a builder for creating a InteractionEvent entity.
func (c *InteractionEventClient) Create() *InteractionEventCreate {
	mutation := newInteractionEventMutation(c.config, OpCreate)
	return &InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InteractionEvent entities.
func (c *InteractionEventClient) CreateBulk(builders ...*InteractionEventCreate) *InteractionEventCreateBulk {
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InteractionEventClient) MapCreateBulk(slice any, setFunc func(*InteractionEventCreate, int)) *InteractionEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InteractionEventCreateBulk{err: fmt.Errorf("calling to InteractionEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InteractionEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InteractionEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InteractionEvent.
func (c *InteractionEventClient) Update() *InteractionEventUpdate {
	mutation := newInteractionEventMutation(c.config, OpUpdate)
	return &InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InteractionEventClient) UpdateOne(_m *InteractionEvent) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEvent(_m))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InteractionEventClient) UpdateOneID(id uuid.UUID) *InteractionEventUpdateOne {
	mutation := newInteractionEventMutation(c.config, OpUpdateOne, withInteractionEventID(id))
	return &InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InteractionEvent.
func (c *InteractionEventClient) Delete() *InteractionEventDelete {
	mutation := newInteractionEventMutation(c.config, OpDelete)
	return &InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InteractionEventClient) DeleteOne(_m *InteractionEvent) *InteractionEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InteractionEventClient) DeleteOneID(id uuid.UUID) *InteractionEventDeleteOne {
	builder := c.Delete().Where(interactionevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InteractionEventDeleteOne{builder}
}

// Query returns a query builder for InteractionEvent.
func (c *InteractionEventClient) Query() *InteractionEventQuery {
	return &InteractionEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInteractionEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a InteractionEvent entity by its id.
func (c *InteractionEventClient) Get(ctx context.Context, id uuid.UUID) (*InteractionEvent, error) {
	return c.Query().Where(interactionevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InteractionEventClient) GetX(ctx context.Context, id uuid.UUID) *InteractionEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InteractionEventClient) Hooks() []Hook {
	return c.hooks.InteractionEvent
}

// Interceptors returns the client interceptors.
func (c *InteractionEventClient) Interceptors() []Interceptor {
	return c.inters.InteractionEvent
}

func (c *InteractionEventClient) mutate(ctx context.Context, m *InteractionEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InteractionEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InteractionEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InteractionEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InteractionEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InteractionEvent mutation op: %q", m.Op())
	}
}

// InventoryItemClient is a client for the InventoryItem schema.
type InventoryItemClient struct {
	config
}

// NewInventoryItemClient returns a client for the InventoryItem from the given config.
func NewInventoryItemClient(c config) *InventoryItemClient {
	return &InventoryItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `inventoryitem.Hooks(f(g(h())))`.
func (c *InventoryItemClient) Use(hooks ...Hook) {
	c.hooks.InventoryItem = append(c.hooks.InventoryItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `inventoryitem.Intercept(f(g(h())))`.
func (c *InventoryItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.InventoryItem = append(c.inters.InventoryItem, interceptors...)
}

// Create returns a builder for creating a InventoryItem entity.
func (c *InventoryItemClient) Create() *InventoryItemCreate {
	mutation := newInventoryItemMutation(c.config, OpCreate)
	return &InventoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InventoryItem entities.
func (c *InventoryItemClient) CreateBulk(builders ...*InventoryItemCreate) *InventoryItemCreateBulk {
	return &InventoryItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InventoryItemClient) MapCreateBulk(slice any, setFunc func(*InventoryItemCreate, int)) *InventoryItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InventoryItemCreateBulk{err: fmt.Errorf("calling to InventoryItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InventoryItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InventoryItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InventoryItem.
func (c *InventoryItemClient) Update() *InventoryItemUpdate {
	mutation := newInventoryItemMutation(c.config, OpUpdate)
	return &InventoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InventoryItemClient) UpdateOne(_m *InventoryItem) *InventoryItemUpdateOne {
	mutation := newInventoryItemMutation(c.config, OpUpdateOne, withInventoryItem(_m))
	return &InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InventoryItemClient) UpdateOneID(id uuid.UUID) *InventoryItemUpdateOne {
	mutation := newInventoryItemMutation(c.config, OpUpdateOne, withInventoryItemID(id))
	return &InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InventoryItem.
func (c *InventoryItemClient) Delete() *InventoryItemDelete {
	mutation := newInventoryItemMutation(c.config, OpDelete)
	return &InventoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InventoryItemClient) DeleteOne(_m *InventoryItem) *InventoryItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InventoryItemClient) DeleteOneID(id uuid.UUID) *InventoryItemDeleteOne {
	builder := c.Delete().Where(inventoryitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InventoryItemDeleteOne{builder}
}

// Query returns a query builder for InventoryItem.
func (c *InventoryItemClient) Query() *InventoryItemQuery {
	return &InventoryItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInventoryItem},
		inters: c.Interceptors(),
	}
}

// Get returns a InventoryItem entity by its id.
func (c *InventoryItemClient) Get(ctx context.Context, id uuid.UUID) (*InventoryItem, error) {
	return c.Query().Where(inventoryitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InventoryItemClient) GetX(ctx context.Context, id uuid.UUID) *InventoryItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InventoryItemClient) Hooks() []Hook {
	return c.hooks.InventoryItem
}

// Interceptors returns the client interceptors.
func (c *InventoryItemClient) Interceptors() []Interceptor {
	return c.inters.InventoryItem
}

func (c *InventoryItemClient) mutate(ctx context.Context, m *InventoryItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InventoryItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InventoryItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InventoryItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InventoryItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InventoryItem mutation op: %q", m.Op())
	}
}

// MetricsSnapshotClient is a client for the MetricsSnapshot schema.
type MetricsSnapshotClient struct {
	config
}

// NewMetricsSnapshotClient returns a client for the MetricsSnapshot from the given config.
func NewMetricsSnapshotClient(c config) *MetricsSnapshotClient {
	return &MetricsSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `metricssnapshot.Hooks(f(g(h())))`.
func (c *MetricsSnapshotClient) Use(hooks ...Hook) {
	c.hooks.MetricsSnapshot = append(c.hooks.MetricsSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `metricssnapshot.Intercept(f(g(h())))`.
func (c *MetricsSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.MetricsSnapshot = append(c.inters.MetricsSnapshot, interceptors...)
}

// Create returns a builder for creating a MetricsSnapshot entity.
func (c *MetricsSnapshotClient) Create() *MetricsSnapshotCreate {
	mutation := newMetricsSnapshotMutation(c.config, OpCreate)
	return &MetricsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MetricsSnapshot entities.
func (c *MetricsSnapshotClient) CreateBulk(builders ...*MetricsSnapshotCreate) *MetricsSnapshotCreateBulk {
	return &MetricsSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MetricsSnapshotClient) MapCreateBulk(slice any, setFunc func(*MetricsSnapshotCreate, int)) *MetricsSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MetricsSnapshotCreateBulk{err: fmt.Errorf("calling to MetricsSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MetricsSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MetricsSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MetricsSnapshot.
func (c *MetricsSnapshotClient) Update() *MetricsSnapshotUpdate {
	mutation := newMetricsSnapshotMutation(c.config, OpUpdate)
	return &MetricsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MetricsSnapshotClient) UpdateOne(_m *MetricsSnapshot) *MetricsSnapshotUpdateOne {
	mutation := newMetricsSnapshotMutation(c.config, OpUpdateOne, withMetricsSnapshot(_m))
	return &MetricsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MetricsSnapshotClient) UpdateOneID(id uuid.UUID) *MetricsSnapshotUpdateOne {
	mutation := newMetricsSnapshotMutation(c.config, OpUpdateOne, withMetricsSnapshotID(id))
	return &MetricsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MetricsSnapshot.
func (c *MetricsSnapshotClient) Delete() *MetricsSnapshotDelete {
	mutation := newMetricsSnapshotMutation(c.config, OpDelete)
	return &MetricsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MetricsSnapshotClient) DeleteOne(_m *MetricsSnapshot) *MetricsSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MetricsSnapshotClient) DeleteOneID(id uuid.UUID) *MetricsSnapshotDeleteOne {
	builder := c.Delete().Where(metricssnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MetricsSnapshotDeleteOne{builder}
}

// Query returns a query builder for MetricsSnapshot.
func (c *MetricsSnapshotClient) Query() *MetricsSnapshotQuery {
	return &MetricsSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMetricsSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a MetricsSnapshot entity by its id.
func (c *MetricsSnapshotClient) Get(ctx context.Context, id uuid.UUID) (*MetricsSnapshot, error) {
	return c.Query().Where(metricssnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MetricsSnapshotClient) GetX(ctx context.Context, id uuid.UUID) *MetricsSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MetricsSnapshotClient) Hooks() []Hook {
	return c.hooks.MetricsSnapshot
}

// Interceptors returns the client interceptors.
func (c *MetricsSnapshotClient) Interceptors() []Interceptor {
	return c.inters.MetricsSnapshot
}

func (c *MetricsSnapshotClient) mutate(ctx context.Context, m *MetricsSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MetricsSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MetricsSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MetricsSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MetricsSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MetricsSnapshot mutation op: %q", m.Op())
	}
}

// ToolInvocationClient is a client for the ToolInvocation schema.
type ToolInvocationClient struct {
	config
}

// NewToolInvocationClient returns a client for the ToolInvocation from the given config.
func NewToolInvocationClient(c config) *ToolInvocationClient {
	return &ToolInvocationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolinvocation.Hooks(f(g(h())))`.
func (c *ToolInvocationClient) Use(hooks ...Hook) {
	c.hooks.ToolInvocation = append(c.hooks.ToolInvocation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolinvocation.Intercept(f(g(h())))`.
func (c *ToolInvocationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolInvocation = append(c.inters.ToolInvocation, interceptors...)
}

// Create returns a builder for creating a ToolInvocation entity.
func (c *ToolInvocationClient) Create() *ToolInvocationCreate {
	mutation := newToolInvocationMutation(c.config, OpCreate)
	return &ToolInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolInvocation entities.
func (c *ToolInvocationClient) CreateBulk(builders ...*ToolInvocationCreate) *ToolInvocationCreateBulk {
	return &ToolInvocationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolInvocationClient) MapCreateBulk(slice any, setFunc func(*ToolInvocationCreate, int)) *ToolInvocationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolInvocationCreateBulk{err: fmt.Errorf("calling to ToolInvocationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolInvocationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolInvocationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolInvocation.
func (c *ToolInvocationClient) Update() *ToolInvocationUpdate {
	mutation := newToolInvocationMutation(c.config, OpUpdate)
	return &ToolInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolInvocationClient) UpdateOne(_m *ToolInvocation) *ToolInvocationUpdateOne {
	mutation := newToolInvocationMutation(c.config, OpUpdateOne, withToolInvocation(_m))
	return &ToolInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolInvocationClient) UpdateOneID(id uuid.UUID) *ToolInvocationUpdateOne {
	mutation := newToolInvocationMutation(c.config, OpUpdateOne, withToolInvocationID(id))
	return &ToolInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolInvocation.
func (c *ToolInvocationClient) Delete() *ToolInvocationDelete {
	mutation := newToolInvocationMutation(c.config, OpDelete)
	return &ToolInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolInvocationClient) DeleteOne(_m *ToolInvocation) *ToolInvocationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolInvocationClient) DeleteOneID(id uuid.UUID) *ToolInvocationDeleteOne {
	builder := c.Delete().Where(toolinvocation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolInvocationDeleteOne{builder}
}

// Query returns a query builder for ToolInvocation.
func (c *ToolInvocationClient) Query() *ToolInvocationQuery {
	return &ToolInvocationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolInvocation},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolInvocation entity by its id.
func (c *ToolInvocationClient) Get(ctx context.Context, id uuid.UUID) (*ToolInvocation, error) {
	return c.Query().Where(toolinvocation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolInvocationClient) GetX(ctx context.Context, id uuid.UUID) *ToolInvocation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolInvocationClient) Hooks() []Hook {
	return c.hooks.ToolInvocation
}

// Interceptors returns the client interceptors.
func (c *ToolInvocationClient) Interceptors() []Interceptor {
	return c.inters.ToolInvocation
}

func (c *ToolInvocationClient) mutate(ctx context.Context, m *ToolInvocationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolInvocationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolInvocationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolInvocationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolInvocationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolInvocation mutation op: %q", m.Op())
	}
}

// UploadClient is a client for the Upload schema.
type UploadClient struct {
	config
}

// NewUploadClient returns a client for the Upload from the given config.
func NewUploadClient(c config) *UploadClient {
	return &UploadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `upload.Hooks(f(g(h())))`.
func (c *UploadClient) Use(hooks ...Hook) {
	c.hooks.Upload = append(c.hooks.Upload, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `upload.Intercept(f(g(h())))`.
func (c *UploadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Upload = append(c.inters.Upload, interceptors...)
}

// Create returns a builder for creating a Upload entity.
func (c *UploadClient) Create() *UploadCreate {
	mutation := newUploadMutation(c.config, OpCreate)
	return &UploadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Upload entities.
func (c *UploadClient) CreateBulk(builders ...*UploadCreate) *UploadCreateBulk {
	return &UploadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadClient) MapCreateBulk(slice any, setFunc func(*UploadCreate, int)) *UploadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadCreateBulk{err: fmt.Errorf("calling to UploadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Upload.
func (c *UploadClient) Update() *UploadUpdate {
	mutation := newUploadMutation(c.config, OpUpdate)
	return &UploadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadClient) UpdateOne(_m *Upload) *UploadUpdateOne {
	mutation := newUploadMutation(c.config, OpUpdateOne, withUpload(_m))
	return &UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadClient) UpdateOneID(id uuid.UUID) *UploadUpdateOne {
	mutation := newUploadMutation(c.config, OpUpdateOne, withUploadID(id))
	return &UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Upload.
func (c *UploadClient) Delete() *UploadDelete {
	mutation := newUploadMutation(c.config, OpDelete)
	return &UploadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadClient) DeleteOne(_m *Upload) *UploadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadClient) DeleteOneID(id uuid.UUID) *UploadDeleteOne {
	builder := c.Delete().Where(upload.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadDeleteOne{builder}
}

// Query returns a query builder for Upload.
func (c *UploadClient) Query() *UploadQuery {
	return &UploadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUpload},
		inters: c.Interceptors(),
	}
}

// Get returns a Upload entity by its id.
func (c *UploadClient) Get(ctx context.Context, id uuid.UUID) (*Upload, error) {
	return c.Query().Where(upload.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadClient) GetX(ctx context.Context, id uuid.UUID) *Upload {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a Upload.
func (c *UploadClient) QueryJobs(_m *Upload) *UploadJobQuery {
	query := (&UploadJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(upload.Table, upload.FieldID, id),
			sqlgraph.To(uploadjob.Table, uploadjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, upload.JobsTable, upload.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadClient) Hooks() []Hook {
	return c.hooks.Upload
}

// Interceptors returns the client interceptors.
func (c *UploadClient) Interceptors() []Interceptor {
	return c.inters.Upload
}

func (c *UploadClient) mutate(ctx context.Context, m *UploadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Upload mutation op: %q", m.Op())
	}
}

// UploadJobClient is a client for the UploadJob schema.
type UploadJobClient struct {
	config
}

// NewUploadJobClient returns a client for the UploadJob from the given config.
func NewUploadJobClient(c config) *UploadJobClient {
	return &UploadJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `uploadjob.Hooks(f(g(h())))`.
func (c *UploadJobClient) Use(hooks ...Hook) {
	c.hooks.UploadJob = append(c.hooks.UploadJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `uploadjob.Intercept(f(g(h())))`.
func (c *UploadJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.UploadJob = append(c.inters.UploadJob, interceptors...)
}

// Create returns a builder for creating a UploadJob entity.
func (c *UploadJobClient) Create() *UploadJobCreate {
	mutation := newUploadJobMutation(c.config, OpCreate)
	return &UploadJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UploadJob entities.
func (c *UploadJobClient) CreateBulk(builders ...*UploadJobCreate) *UploadJobCreateBulk {
	return &UploadJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UploadJobClient) MapCreateBulk(slice any, setFunc func(*UploadJobCreate, int)) *UploadJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UploadJobCreateBulk{err: fmt.Errorf("calling to UploadJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UploadJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UploadJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UploadJob.
func (c *UploadJobClient) Update() *UploadJobUpdate {
	mutation := newUploadJobMutation(c.config, OpUpdate)
	return &UploadJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UploadJobClient) UpdateOne(_m *UploadJob) *UploadJobUpdateOne {
	mutation := newUploadJobMutation(c.config, OpUpdateOne, withUploadJob(_m))
	return &UploadJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UploadJobClient) UpdateOneID(id uuid.UUID) *UploadJobUpdateOne {
	mutation := newUploadJobMutation(c.config, OpUpdateOne, withUploadJobID(id))
	return &UploadJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UploadJob.
func (c *UploadJobClient) Delete() *UploadJobDelete {
	mutation := newUploadJobMutation(c.config, OpDelete)
	return &UploadJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UploadJobClient) DeleteOne(_m *UploadJob) *UploadJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UploadJobClient) DeleteOneID(id uuid.UUID) *UploadJobDeleteOne {
	builder := c.Delete().Where(uploadjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UploadJobDeleteOne{builder}
}

// Query returns a query builder for UploadJob.
func (c *UploadJobClient) Query() *UploadJobQuery {
	return &UploadJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUploadJob},
		inters: c.Interceptors(),
	}
}

// Get returns a UploadJob entity by its id.
func (c *UploadJobClient) Get(ctx context.Context, id uuid.UUID) (*UploadJob, error) {
	return c.Query().Where(uploadjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UploadJobClient) GetX(ctx context.Context, id uuid.UUID) *UploadJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUpload queries the upload edge of a UploadJob.
func (c *UploadJobClient) QueryUpload(_m *UploadJob) *UploadQuery {
	query := (&UploadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(uploadjob.Table, uploadjob.FieldID, id),
			sqlgraph.To(upload.Table, upload.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, uploadjob.UploadTable, uploadjob.UploadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UploadJobClient) Hooks() []Hook {
	return c.hooks.UploadJob
}

// Interceptors returns the client interceptors.
func (c *UploadJobClient) Interceptors() []Interceptor {
	return c.inters.UploadJob
}

func (c *UploadJobClient) mutate(ctx context.Context, m *UploadJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UploadJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UploadJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UploadJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UploadJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UploadJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditEntry, IngestionJob, InteractionEvent, InventoryItem, MetricsSnapshot,
		ToolInvocation, Upload, UploadJob []ent.Hook
	}
	inters struct {
		AuditEntry, IngestionJob, InteractionEvent, InventoryItem, MetricsSnapshot,
		ToolInvocation, Upload, UploadJob []ent.Interceptor
	}
)
