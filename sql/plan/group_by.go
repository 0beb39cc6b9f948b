package plan

import (
	"fmt"
	"strings"

	"github.com/sqlbind/go-sql-binder/sql"
)

// GroupBy groups the rows of its child by the grouping expressions and
// projects the selected expressions over each group.
type GroupBy struct {
	UnaryNode
	SelectedExprs []sql.Expression
	GroupByExprs  []sql.Expression
}

// NewGroupBy creates a new GroupBy node.
func NewGroupBy(selected, grouping []sql.Expression, child sql.Node) *GroupBy {
	return &GroupBy{
		UnaryNode:     UnaryNode{child},
		SelectedExprs: selected,
		GroupByExprs:  grouping,
	}
}

// Schema implements the Node interface.
func (g *GroupBy) Schema() sql.Schema {
	return schemaFromExpressions(g.SelectedExprs)
}

// Resolved implements the Resolvable interface.
func (g *GroupBy) Resolved() bool {
	return g.UnaryNode.Resolved() &&
		expressionsResolved(g.SelectedExprs...) &&
		expressionsResolved(g.GroupByExprs...)
}

// Expressions implements the Expressioner interface.
func (g *GroupBy) Expressions() []sql.Expression {
	exprs := make([]sql.Expression, 0, len(g.SelectedExprs)+len(g.GroupByExprs))
	exprs = append(exprs, g.SelectedExprs...)
	exprs = append(exprs, g.GroupByExprs...)
	return exprs
}

// WithExpressions implements the Expressioner interface.
func (g *GroupBy) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	expected := len(g.SelectedExprs) + len(g.GroupByExprs)
	if len(exprs) != expected {
		return nil, sql.ErrInvalidChildrenNumber.New(g, len(exprs), expected)
	}
	return NewGroupBy(
		exprs[:len(g.SelectedExprs)],
		exprs[len(g.SelectedExprs):],
		g.Child,
	), nil
}

// WithChildren implements the Node interface.
func (g *GroupBy) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(g, len(children), 1)
	}
	return NewGroupBy(g.SelectedExprs, g.GroupByExprs, children[0]), nil
}

func (g *GroupBy) String() string {
	selected := make([]string, len(g.SelectedExprs))
	for i, e := range g.SelectedExprs {
		selected[i] = e.String()
	}
	grouping := make([]string, len(g.GroupByExprs))
	for i, e := range g.GroupByExprs {
		grouping[i] = e.String()
	}
	return fmt.Sprintf(
		"GroupBy(select: %s, group: %s) -> %s",
		strings.Join(selected, ", "),
		strings.Join(grouping, ", "),
		g.Child,
	)
}
