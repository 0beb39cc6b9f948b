package plan

import (
	"fmt"
	"strings"

	"github.com/sqlbind/go-sql-binder/sql"
)

// Window is a projection whose expressions contain windowed function calls.
// Signature matching treats windowed calls exactly like plain calls; this
// node only exists so the executor knows windowing is involved.
type Window struct {
	UnaryNode
	SelectExprs []sql.Expression
}

// NewWindow creates a new Window node.
func NewWindow(selectExprs []sql.Expression, child sql.Node) *Window {
	return &Window{
		UnaryNode:   UnaryNode{child},
		SelectExprs: selectExprs,
	}
}

// Schema implements the Node interface.
func (w *Window) Schema() sql.Schema {
	return schemaFromExpressions(w.SelectExprs)
}

// Resolved implements the Resolvable interface.
func (w *Window) Resolved() bool {
	return w.UnaryNode.Resolved() && expressionsResolved(w.SelectExprs...)
}

// Expressions implements the Expressioner interface.
func (w *Window) Expressions() []sql.Expression {
	return w.SelectExprs
}

// WithExpressions implements the Expressioner interface.
func (w *Window) WithExpressions(exprs ...sql.Expression) (sql.Node, error) {
	if len(exprs) != len(w.SelectExprs) {
		return nil, sql.ErrInvalidChildrenNumber.New(w, len(exprs), len(w.SelectExprs))
	}
	return NewWindow(exprs, w.Child), nil
}

// WithChildren implements the Node interface.
func (w *Window) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(w, len(children), 1)
	}
	return NewWindow(w.SelectExprs, children[0]), nil
}

func (w *Window) String() string {
	exprs := make([]string, len(w.SelectExprs))
	for i, e := range w.SelectExprs {
		exprs[i] = e.String()
	}
	return fmt.Sprintf("Window(%s) -> %s", strings.Join(exprs, ", "), w.Child)
}
