package analyzer

import (
	"strings"

	"github.com/sqlbind/go-sql-binder/internal/similartext"
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

// resolveColumns resolves column references against the columns visible
// from each node's children. A miss produces either a single qualified
// suggestion, when one is within the edit-distance bound, or the full list
// of valid qualified fields in declaration order.
func resolveColumns(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	span, _ := ctx.Span("resolve_columns")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		if _, ok := n.(sql.Expressioner); !ok {
			return n, nil
		}
		if !childrenResolved(n) {
			return n, nil
		}

		schema := visibleSchema(n)
		return plan.TransformNodeExpressions(n, func(e sql.Expression) (sql.Expression, error) {
			uc, ok := e.(*expression.UnresolvedColumn)
			if !ok {
				return e, nil
			}
			return resolveColumn(a, uc, schema)
		})
	})
}

func resolveColumn(a *Analyzer, uc *expression.UnresolvedColumn, schema sql.Schema) (sql.Expression, error) {
	idx := schema.IndexOf(uc.Name(), uc.Table())
	if idx >= 0 {
		col := schema[idx]
		a.Log("column %q resolved to %s", uc.Name(), col.QualifiedName())
		return expression.NewGetFieldWithTable(idx, col.Type, col.Source, col.Name, col.Nullable), nil
	}

	if candidate, ok := similartext.Find(schema.Names(), uc.Name()); ok {
		qualified := schema[schema.IndexOf(candidate, "")].QualifiedName()
		return nil, sql.NewDiagnosticWithCandidate(
			sql.SchemaError,
			sql.ErrFieldNotFoundWithCandidate.New(uc.Name(), qualified),
			qualified,
		)
	}

	fields := strings.Join(schema.QualifiedNames(), ", ")
	return nil, sql.NewDiagnostic(
		sql.SchemaError,
		sql.ErrFieldNotFound.New(uc.Name(), fields),
	)
}

// visibleSchema concatenates the schemas of all children of a node, in
// child order.
func visibleSchema(n sql.Node) sql.Schema {
	var schema sql.Schema
	for _, child := range n.Children() {
		schema = append(schema, child.Schema()...)
	}
	return schema
}

func childrenResolved(n sql.Node) bool {
	for _, c := range n.Children() {
		if !c.Resolved() {
			return false
		}
	}
	return true
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}
