package sql

import "fmt"

// Nameable is something that has a name.
type Nameable interface {
	// Name returns the name.
	Name() string
}

// Resolvable is something that can be resolved or not.
type Resolvable interface {
	// Resolved returns whether the node is resolved.
	Resolved() bool
}

// Expression is a SQL expression node. Expressions are the leaves of the
// binding process: an expression is resolved once every identifier and
// function call inside it has been matched against the catalog.
type Expression interface {
	Resolvable
	fmt.Stringer
	// Type returns the expression type.
	Type() Type
	// IsNullable returns whether the expression can be null.
	IsNullable() bool
	// Eval evaluates the given row and returns a result.
	Eval(ctx *Context, row Row) (interface{}, error)
	// Children returns the children expressions of this expression.
	Children() []Expression
	// WithChildren returns a copy of the expression with children replaced.
	// It returns an error if the number of children is different than the
	// current number of children. They must be given in the same order as
	// they are returned by Children.
	WithChildren(children ...Expression) (Expression, error)
}

// Node is a node of the plan tree.
type Node interface {
	Resolvable
	fmt.Stringer
	// Schema of the node.
	Schema() Schema
	// Children nodes.
	Children() []Node
	// WithChildren returns a copy of the node with children replaced.
	WithChildren(children ...Node) (Node, error)
}

// Expressioner is a node that contains expressions.
type Expressioner interface {
	// Expressions returns the list of expressions contained by the node.
	Expressions() []Expression
	// WithExpressions returns a copy of the node with expressions replaced.
	// They must be given in the same order as they are returned by
	// Expressions.
	WithExpressions(exprs ...Expression) (Node, error)
}

// Table represents a relation in the catalog.
type Table interface {
	Nameable
	// Schema returns the columns of the table in declaration order.
	Schema() Schema
}

// Database represents a schema: a named collection of tables.
type Database interface {
	Nameable
	// Tables returns the tables of the database.
	Tables() map[string]Table
}

// CatalogNamespace is a top-level catalog: a named, ordered collection of
// databases (schemas).
type CatalogNamespace interface {
	Nameable
	// Databases returns the databases of the namespace in declaration
	// order.
	Databases() []Database
}
