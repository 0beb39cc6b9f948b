package plan

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// ResolvedTable is a table reference that was found in the catalog. Its
// columns are qualified with the table name.
type ResolvedTable struct {
	Table sql.Table
}

// NewResolvedTable creates a new ResolvedTable.
func NewResolvedTable(table sql.Table) *ResolvedTable {
	return &ResolvedTable{table}
}

// Name implements the Nameable interface.
func (t *ResolvedTable) Name() string {
	return t.Table.Name()
}

// Resolved implements the Resolvable interface.
func (*ResolvedTable) Resolved() bool {
	return true
}

// Children implements the Node interface.
func (*ResolvedTable) Children() []sql.Node {
	return nil
}

// Schema implements the Node interface.
func (t *ResolvedTable) Schema() sql.Schema {
	return t.Table.Schema().WithSource(t.Table.Name())
}

// WithChildren implements the Node interface.
func (t *ResolvedTable) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(t, len(children), 0)
	}
	return t, nil
}

func (t *ResolvedTable) String() string {
	return fmt.Sprintf("Table(%s)", t.Table.Name())
}
