package plan

import (
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
)

// TransformUp applies a transformation function to the given plan tree from
// the bottom up.
func TransformUp(node sql.Node, f func(sql.Node) (sql.Node, error)) (sql.Node, error) {
	children := node.Children()
	if len(children) > 0 {
		newChildren := make([]sql.Node, len(children))
		for i, c := range children {
			nc, err := TransformUp(c, f)
			if err != nil {
				return nil, err
			}
			newChildren[i] = nc
		}

		var err error
		node, err = node.WithChildren(newChildren...)
		if err != nil {
			return nil, err
		}
	}

	return f(node)
}

// TransformExpressionsUp applies a transformation function to all the
// expressions of every node of the plan tree, from the bottom up.
func TransformExpressionsUp(node sql.Node, f func(sql.Expression) (sql.Expression, error)) (sql.Node, error) {
	return TransformUp(node, func(n sql.Node) (sql.Node, error) {
		return TransformNodeExpressions(n, f)
	})
}

// TransformNodeExpressions transforms the expressions of a single node, not
// descending into its children.
func TransformNodeExpressions(n sql.Node, f func(sql.Expression) (sql.Expression, error)) (sql.Node, error) {
	e, ok := n.(sql.Expressioner)
	if !ok {
		return n, nil
	}

	exprs := e.Expressions()
	if len(exprs) == 0 {
		return n, nil
	}

	newExprs := make([]sql.Expression, len(exprs))
	for i, expr := range exprs {
		ne, err := expression.TransformUp(expr, f)
		if err != nil {
			return nil, err
		}
		newExprs[i] = ne
	}

	return e.WithExpressions(newExprs...)
}

// Inspect traverses the plan tree in depth-first order. It calls f on every
// node; if f returns false for a node, its children are skipped.
func Inspect(node sql.Node, f func(sql.Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, c := range node.Children() {
		Inspect(c, f)
	}
}
