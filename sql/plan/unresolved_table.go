package plan

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// UnresolvedTable is a table reference that has not been resolved against
// the scope stack or the catalog yet. The name may have up to three
// dot-separated parts.
type UnresolvedTable struct {
	name string
}

// NewUnresolvedTable creates a new UnresolvedTable.
func NewUnresolvedTable(name string) *UnresolvedTable {
	return &UnresolvedTable{name}
}

// Name implements the Nameable interface.
func (t *UnresolvedTable) Name() string {
	return t.name
}

// Resolved implements the Resolvable interface.
func (*UnresolvedTable) Resolved() bool {
	return false
}

// Children implements the Node interface.
func (*UnresolvedTable) Children() []sql.Node {
	return nil
}

// Schema implements the Node interface.
func (*UnresolvedTable) Schema() sql.Schema {
	return nil
}

// WithChildren implements the Node interface.
func (t *UnresolvedTable) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(t, len(children), 0)
	}
	return t, nil
}

func (t *UnresolvedTable) String() string {
	return fmt.Sprintf("UnresolvedTable(%s)", t.name)
}
