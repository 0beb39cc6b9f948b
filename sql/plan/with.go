package plan

import (
	"fmt"
	"strings"

	"github.com/sqlbind/go-sql-binder/sql"
)

// CommonTableExpression is one named subquery of a WITH clause.
type CommonTableExpression struct {
	// Name the CTE is bound under.
	Name string
	// Columns optionally renames the columns of the subquery.
	Columns []string
	// Subquery is the body of the CTE.
	Subquery sql.Node
}

// With is a WITH clause: an ordered list of CTEs and the query body that
// consumes them. The analyzer strips With nodes while binding, pushing each
// CTE onto the scope in declaration order; a CTE never sees itself or later
// siblings.
type With struct {
	UnaryNode
	CTEs []*CommonTableExpression
}

// NewWith creates a new With node over the given query body.
func NewWith(ctes []*CommonTableExpression, child sql.Node) *With {
	return &With{UnaryNode{child}, ctes}
}

// Resolved implements the Resolvable interface. A With node is never
// resolved: analysis replaces it with its bound body.
func (*With) Resolved() bool {
	return false
}

// WithChildren implements the Node interface.
func (w *With) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(w, len(children), 1)
	}
	return NewWith(w.CTEs, children[0]), nil
}

func (w *With) String() string {
	ctes := make([]string, len(w.CTEs))
	for i, cte := range w.CTEs {
		ctes[i] = fmt.Sprintf("%s AS (%s)", cte.Name, cte.Subquery)
	}
	return fmt.Sprintf("With(%s) -> %s", strings.Join(ctes, ", "), w.Child)
}
