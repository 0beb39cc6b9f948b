package analyzer

import (
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

// resolveTables resolves every UnresolvedTable, consulting the scope stack
// before the catalog so CTE bindings shadow catalog tables. Catalog misses
// always name the fully qualified reference, with unspecified parts filled
// from the session defaults.
func resolveTables(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	span, ctx := ctx.Span("resolve_tables")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		t, ok := n.(*plan.UnresolvedTable)
		if !ok {
			return n, nil
		}

		if rel, ok := scope.Lookup(t.Name()); ok {
			a.Log("table %q resolved from scope", t.Name())
			return rel, nil
		}

		ref, err := sql.ParseTableRef(t.Name())
		if err != nil {
			return nil, err
		}
		ref = ref.WithDefaults(ctx.DefaultCatalog(), ctx.DefaultSchema())

		table, err := a.Catalog.Table(ref)
		if err != nil {
			return nil, err
		}

		a.Log("table %q resolved from catalog as %s", t.Name(), ref)
		return plan.NewResolvedTable(table), nil
	})
}
