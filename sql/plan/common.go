package plan

import "github.com/sqlbind/go-sql-binder/sql"

// UnaryNode is a node with one child.
type UnaryNode struct {
	Child sql.Node
}

// Schema implements the Node interface.
func (n *UnaryNode) Schema() sql.Schema {
	return n.Child.Schema()
}

// Children implements the Node interface.
func (n *UnaryNode) Children() []sql.Node {
	return []sql.Node{n.Child}
}

// Resolved implements the Resolvable interface.
func (n *UnaryNode) Resolved() bool {
	return n.Child.Resolved()
}

func expressionsResolved(exprs ...sql.Expression) bool {
	for _, e := range exprs {
		if !e.Resolved() {
			return false
		}
	}
	return true
}
