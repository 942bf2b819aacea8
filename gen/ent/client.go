// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/haroldmt/resume-parser/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/haroldmt/resume-parser/gen/ent/parsejob"
	"github.com/haroldmt/resume-parser/gen/ent/resumefile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ParseJob is the client for interacting with the ParseJob builders.
	ParseJob *ParseJobClient
	// ResumeFile is the client for interacting with the ResumeFile builders.
	ResumeFile *ResumeFileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ParseJob = NewParseJobClient(c.config)
	c.ResumeFile = NewResumeFileClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		ParseJob:   NewParseJobClient(cfg),
		ResumeFile: NewResumeFileClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		ParseJob:   NewParseJobClient(cfg),
		ResumeFile: NewResumeFileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ParseJob.
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
	c.ParseJob.Use(hooks...)
	c.ResumeFile.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ParseJob.Intercept(interceptors...)
	c.ResumeFile.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ParseJobMutation:
		return c.ParseJob.mutate(ctx, m)
	case *ResumeFileMutation:
		return c.ResumeFile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ParseJobClient is a client for the ParseJob schema.
type ParseJobClient struct {
	config
}

// NewParseJobClient returns a client for the ParseJob from the given config.
func NewParseJobClient(c config) *ParseJobClient {
	return &ParseJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parsejob.Hooks(f(g(h())))`.
func (c *ParseJobClient) Use(hooks ...Hook) {
	c.hooks.ParseJob = append(c.hooks.ParseJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parsejob.Intercept(f(g(h())))`.
func (c *ParseJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseJob = append(c.inters.ParseJob, interceptors...)
}

// Create returns a builder for creating a ParseJob entity.
func (c *ParseJobClient) Create() *ParseJobCreate {
	mutation := newParseJobMutation(c.config, OpCreate)
	return &ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseJob entities.
func (c *ParseJobClient) CreateBulk(builders ...*ParseJobCreate) *ParseJobCreateBulk {
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseJobClient) MapCreateBulk(slice any, setFunc func(*ParseJobCreate, int)) *ParseJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseJobCreateBulk{err: fmt.Errorf("calling to ParseJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseJob.
func (c *ParseJobClient) Update() *ParseJobUpdate {
	mutation := newParseJobMutation(c.config, OpUpdate)
	return &ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseJobClient) UpdateOne(_m *ParseJob) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJob(_m))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseJobClient) UpdateOneID(id uuid.UUID) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJobID(id))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseJob.
func (c *ParseJobClient) Delete() *ParseJobDelete {
	mutation := newParseJobMutation(c.config, OpDelete)
	return &ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseJobClient) DeleteOne(_m *ParseJob) *ParseJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseJobClient) DeleteOneID(id uuid.UUID) *ParseJobDeleteOne {
	builder := c.Delete().Where(parsejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseJobDeleteOne{builder}
}

// Query returns a query builder for ParseJob.
func (c *ParseJobClient) Query() *ParseJobQuery {
	return &ParseJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseJob entity by its id.
func (c *ParseJobClient) Get(ctx context.Context, id uuid.UUID) (*ParseJob, error) {
	return c.Query().Where(parsejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseJobClient) GetX(ctx context.Context, id uuid.UUID) *ParseJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a ParseJob.
func (c *ParseJobClient) QueryFile(_m *ParseJob) *ResumeFileQuery {
	query := (&ResumeFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(resumefile.Table, resumefile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, parsejob.FileTable, parsejob.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParseJobClient) Hooks() []Hook {
	return c.hooks.ParseJob
}

// Interceptors returns the client interceptors.
func (c *ParseJobClient) Interceptors() []Interceptor {
	return c.inters.ParseJob
}

func (c *ParseJobClient) mutate(ctx context.Context, m *ParseJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseJob mutation op: %q", m.Op())
	}
}

// ResumeFileClient is a client for the ResumeFile schema.
type ResumeFileClient struct {
	config
}

// NewResumeFileClient returns a client for the ResumeFile from the given config.
func NewResumeFileClient(c config) *ResumeFileClient {
	return &ResumeFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resumefile.Hooks(f(g(h())))`.
func (c *ResumeFileClient) Use(hooks ...Hook) {
	c.hooks.ResumeFile = append(c.hooks.ResumeFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resumefile.Intercept(f(g(h())))`.
func (c *ResumeFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResumeFile = append(c.inters.ResumeFile, interceptors...)
}

// Create returns a builder for creating a ResumeFile entity.
func (c *ResumeFileClient) Create() *ResumeFileCreate {
	mutation := newResumeFileMutation(c.config, OpCreate)
	return &ResumeFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResumeFile entities.
func (c *ResumeFileClient) CreateBulk(builders ...*ResumeFileCreate) *ResumeFileCreateBulk {
	return &ResumeFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResumeFileClient) MapCreateBulk(slice any, setFunc func(*ResumeFileCreate, int)) *ResumeFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResumeFileCreateBulk{err: fmt.Errorf("calling to ResumeFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResumeFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResumeFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResumeFile.
func (c *ResumeFileClient) Update() *ResumeFileUpdate {
	mutation := newResumeFileMutation(c.config, OpUpdate)
	return &ResumeFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResumeFileClient) UpdateOne(_m *ResumeFile) *ResumeFileUpdateOne {
	mutation := newResumeFileMutation(c.config, OpUpdateOne, withResumeFile(_m))
	return &ResumeFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResumeFileClient) UpdateOneID(id uuid.UUID) *ResumeFileUpdateOne {
	mutation := newResumeFileMutation(c.config, OpUpdateOne, withResumeFileID(id))
	return &ResumeFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResumeFile.
func (c *ResumeFileClient) Delete() *ResumeFileDelete {
	mutation := newResumeFileMutation(c.config, OpDelete)
	return &ResumeFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResumeFileClient) DeleteOne(_m *ResumeFile) *ResumeFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResumeFileClient) DeleteOneID(id uuid.UUID) *ResumeFileDeleteOne {
	builder := c.Delete().Where(resumefile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResumeFileDeleteOne{builder}
}

// Query returns a query builder for ResumeFile.
func (c *ResumeFileClient) Query() *ResumeFileQuery {
	return &ResumeFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResumeFile},
		inters: c.Interceptors(),
	}
}

// Get returns a ResumeFile entity by its id.
func (c *ResumeFileClient) Get(ctx context.Context, id uuid.UUID) (*ResumeFile, error) {
	return c.Query().Where(resumefile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResumeFileClient) GetX(ctx context.Context, id uuid.UUID) *ResumeFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobs queries the jobs edge of a ResumeFile.
func (c *ResumeFileClient) QueryJobs(_m *ResumeFile) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resumefile.Table, resumefile.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, resumefile.JobsTable, resumefile.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResumeFileClient) Hooks() []Hook {
	return c.hooks.ResumeFile
}

// Interceptors returns the client interceptors.
func (c *ResumeFileClient) Interceptors() []Interceptor {
	return c.inters.ResumeFile
}

func (c *ResumeFileClient) mutate(ctx context.Context, m *ResumeFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResumeFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResumeFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResumeFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResumeFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResumeFile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ParseJob, ResumeFile []ent.Hook
	}
	inters struct {
		ParseJob, ResumeFile []ent.Interceptor
	}
)
