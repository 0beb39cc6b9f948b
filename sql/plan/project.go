package plan

import (
	"fmt"
	"strings"

	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
)

// Project is a projection of certain expressions from the rows of its child.
type Project struct {
	UnaryNode
	// Projections are the expressions projected by this node.
	Projections []sql.Expression
}

// NewProject creates a projection.
func NewProject(projections []sql.Expression, child sql.Node) *Project {
	return &Project{
		UnaryNode:   UnaryNode{child},
		Projections: projections,
	}
}

// Schema implements the Node interface.
func (p *Project) Schema() sql.Schema {
	return schemaFromExpressions(p.Projections)
}

// Resolved implements the Resolvable interface.
func (p *Project) Resolved() bool {
	return p.UnaryNode.Resolved() && expressionsResolved(p.Projections...)
}

// Expressions implements the Expressioner interface.
func (p *Project) Expressions() []sql.Expression {
	return p.Projections
}

// WithExpressions implements the Expressioner interface.
func (p *Project) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(p.Projections) {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(exprs), len(p.Projections))
	}
	return NewProject(exprs, p.Child), nil
}

// WithChildren implements the Node interface.
func (p *Project) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(p, len(children), 1)
	}
	return NewProject(p.Projections, children[0]), nil
}

func (p *Project) String() string {
	exprs := make([]string, len(p.Projections))
	for i, e := range p.Projections {
		exprs[i] = e.String()
	}
	return fmt.Sprintf("Project(%s) -> %s", strings.Join(exprs, ", "), p.Child)
}

// schemaFromExpressions derives a schema from a list of resolved
// expressions.
func schemaFromExpressions(exprs []sql.Expression) sql.Schema {
	schema := make(sql.Schema, 0, len(exprs))
	for _, e := range exprs {
		if !e.Resolved() {
			return nil
		}
		col := &sql.Column{
			Type:     e.Type(),
			Nullable: e.IsNullable(),
		}
		switch e := e.(type) {
		case *expression.GetField:
			col.Name = e.Name()
			col.Source = e.Table()
		case sql.Nameable:
			col.Name = e.Name()
		default:
			col.Name = e.String()
		}
		schema = append(schema, col)
	}
	return schema
}
