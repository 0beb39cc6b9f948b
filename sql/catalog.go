package sql

import "strings"

// Catalog is the root of the namespace tree (catalogs -> schemas -> tables)
// and holds the function registry. The binder only reads from it; a catalog
// snapshot can safely be shared by concurrent analyzer instances.
type Catalog struct {
	*FunctionRegistry
	namespaces []CatalogNamespace
}

// NewCatalog returns a new empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{FunctionRegistry: NewFunctionRegistry()}
}

// AddNamespace adds a top-level catalog namespace.
func (c *Catalog) AddNamespace(ns CatalogNamespace) {
	c.namespaces = append(c.namespaces, ns)
}

// Namespaces returns the registered namespaces in declaration order.
func (c *Catalog) Namespaces() []CatalogNamespace {
	return c.namespaces
}

// Table returns the table identified by the given fully qualified reference.
// The first missing link in the path produces ErrTableNotFound naming the
// full reference.
func (c *Catalog) Table(ref TableRef) (Table, error) {
	for _, ns := range c.namespaces {
		if !strings.EqualFold(ns.Name(), ref.Catalog) {
			continue
		}
		for _, db := range ns.Databases() {
			if !strings.EqualFold(db.Name(), ref.Schema) {
				continue
			}
			for name, table := range db.Tables() {
				if strings.EqualFold(name, ref.Table) {
					return table, nil
				}
			}
		}
	}
	return nil, ErrTableNotFound.New(ref.String())
}
