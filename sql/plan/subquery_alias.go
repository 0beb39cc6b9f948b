package plan

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// SubqueryAlias is a node that gives a subquery a name, such as a bound
// common table expression. Its columns are qualified with that name.
type SubqueryAlias struct {
	UnaryNode
	name string
}

// NewSubqueryAlias creates a new SubqueryAlias node.
func NewSubqueryAlias(name string, node sql.Node) *SubqueryAlias {
	return &SubqueryAlias{UnaryNode{node}, name}
}

// Name implements the Nameable interface.
func (n *SubqueryAlias) Name() string { return n.name }

// Schema implements the Node interface.
func (n *SubqueryAlias) Schema() sql.Schema {
	return n.Child.Schema().WithSource(n.name)
}

// WithChildren implements the Node interface.
func (n *SubqueryAlias) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(n, len(children), 1)
	}
	return NewSubqueryAlias(n.name, children[0]), nil
}

func (n *SubqueryAlias) String() string {
	return fmt.Sprintf("SubqueryAlias(%s) -> %s", n.name, n.Child)
}
