package sql

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	uuid "github.com/satori/go.uuid"
)

const (
	// DefaultCatalogName is the catalog part used to qualify references that
	// do not specify one.
	DefaultCatalogName = "datafusion"
	// DefaultSchemaName is the schema part used to qualify references that
	// do not specify one.
	DefaultSchemaName = "public"
)

// Context carries the per-query state of one analysis: the standard library
// context, a tracer, a logger and the session defaults used to qualify
// partial table references.
type Context struct {
	context.Context
	id             uuid.UUID
	tracer         opentracing.Tracer
	logger         *logrus.Entry
	defaultCatalog string
	defaultSchema  string
}

// ContextOption is a function to configure the context.
type ContextOption func(*Context)

// WithTracer returns an option to set the tracer of the context.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithDefaultNamespace returns an option to set the session's default
// catalog and schema.
func WithDefaultNamespace(catalog, schema string) ContextOption {
	return func(ctx *Context) {
		ctx.defaultCatalog = catalog
		ctx.defaultSchema = schema
	}
}

// WithLogger returns an option to set the logger of the context.
func WithLogger(logger *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = logger
	}
}

// NewContext creates a new query context.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context:        ctx,
		id:             uuid.NewV4(),
		tracer:         opentracing.NoopTracer{},
		defaultCatalog: DefaultCatalogName,
		defaultSchema:  DefaultSchemaName,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logrus.StandardLogger().WithField("query_id", c.id.String())
	}

	return c
}

// NewEmptyContext returns a default context with the background context as
// its base.
func NewEmptyContext() *Context {
	return NewContext(context.Background())
}

// ID returns the unique identifier of this query.
func (c *Context) ID() uuid.UUID { return c.id }

// Logger returns the logger of the context.
func (c *Context) Logger() *logrus.Entry { return c.logger }

// DefaultCatalog returns the session's default catalog name.
func (c *Context) DefaultCatalog() string { return c.defaultCatalog }

// DefaultSchema returns the session's default schema name.
func (c *Context) DefaultSchema() string { return c.defaultSchema }

// Span creates a new tracing span with the given operation name. It returns
// the span and a new context with the span attached.
func (c *Context) Span(
	opName string,
	opts ...opentracing.StartSpanOption,
) (opentracing.Span, *Context) {
	parentSpan := opentracing.SpanFromContext(c.Context)
	if parentSpan != nil {
		opts = append(opts, opentracing.ChildOf(parentSpan.Context()))
	}
	span := c.tracer.StartSpan(opName, opts...)
	ctx := opentracing.ContextWithSpan(c.Context, span)

	return span, c.WithContext(ctx)
}

// WithContext returns a new query context with the given standard library
// context as its base.
func (c *Context) WithContext(ctx context.Context) *Context {
	nc := *c
	nc.Context = ctx
	return &nc
}
