package plan

import "github.com/sqlbind/go-sql-binder/sql"

// Nothing is the child of a query with no FROM clause: a relation with no
// columns and no rows.
type Nothing struct{}

// NewNothing creates a new Nothing node.
func NewNothing() *Nothing { return &Nothing{} }

// Resolved implements the Resolvable interface.
func (Nothing) Resolved() bool { return true }

// Schema implements the Node interface.
func (Nothing) Schema() sql.Schema { return nil }

// Children implements the Node interface.
func (Nothing) Children() []sql.Node { return nil }

// WithChildren implements the Node interface.
func (n Nothing) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(n, len(children), 0)
	}
	return n, nil
}

func (Nothing) String() string { return "NOTHING" }
