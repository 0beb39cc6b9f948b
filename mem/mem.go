// Package mem provides in-memory catalog implementations, used as test
// fixtures and as the simplest way to embed the binder.
package mem

import "github.com/sqlbind/go-sql-binder/sql"

// Table is an in-memory table definition.
type Table struct {
	name   string
	schema sql.Schema
}

// NewTable creates a new in-memory table with the given schema.
func NewTable(name string, schema sql.Schema) *Table {
	return &Table{name: name, schema: schema}
}

// Name implements the sql.Nameable interface.
func (t *Table) Name() string { return t.name }

// Schema implements the sql.Table interface.
func (t *Table) Schema() sql.Schema { return t.schema }

// Database is an in-memory collection of tables.
type Database struct {
	name   string
	tables map[string]sql.Table
}

// NewDatabase creates a new database with the given name.
func NewDatabase(name string) *Database {
	return &Database{name: name, tables: make(map[string]sql.Table)}
}

// Name implements the sql.Nameable interface.
func (d *Database) Name() string { return d.name }

// Tables implements the sql.Database interface.
func (d *Database) Tables() map[string]sql.Table { return d.tables }

// AddTable adds a table to the database.
func (d *Database) AddTable(t sql.Table) {
	d.tables[t.Name()] = t
}

// Namespace is an in-memory top-level catalog.
type Namespace struct {
	name string
	dbs  []sql.Database
}

// NewNamespace creates a new namespace with the given name.
func NewNamespace(name string) *Namespace {
	return &Namespace{name: name}
}

// Name implements the sql.Nameable interface.
func (n *Namespace) Name() string { return n.name }

// Databases implements the sql.CatalogNamespace interface.
func (n *Namespace) Databases() []sql.Database { return n.dbs }

// AddDatabase adds a database to the namespace.
func (n *Namespace) AddDatabase(db sql.Database) {
	n.dbs = append(n.dbs, db)
}
