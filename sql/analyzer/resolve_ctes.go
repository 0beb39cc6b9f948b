package analyzer

import (
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

// resolveCommonTableExpressions binds With nodes. Each CTE body is analyzed
// against a frame that only contains the CTEs declared before it, so a CTE
// referencing itself or a later sibling fails as a plain table-not-found.
// The With node is stripped: its bound body replaces it.
func resolveCommonTableExpressions(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	with, ok := n.(*plan.With)
	if !ok {
		return n, nil
	}

	span, ctx := ctx.Span("resolve_common_table_expressions")
	defer span.Finish()

	frame := scope.Push()
	for _, cte := range with.CTEs {
		a.Log("binding cte %q", cte.Name)
		body, err := a.analyzeWithScope(ctx, cte.Subquery, frame)
		if err != nil {
			return nil, err
		}

		if len(cte.Columns) > 0 {
			body, err = renameColumns(body, cte)
			if err != nil {
				return nil, err
			}
		}

		frame.Bind(cte.Name, plan.NewSubqueryAlias(cte.Name, body))
	}

	return a.analyzeWithScope(ctx, with.Child, frame)
}

func renameColumns(body sql.Node, cte *plan.CommonTableExpression) (sql.Node, error) {
	schema := body.Schema()
	if len(schema) != len(cte.Columns) {
		return nil, sql.ErrColumnCountMismatch.New(cte.Name, len(cte.Columns), len(schema))
	}

	projections := make([]sql.Expression, len(schema))
	for i, col := range schema {
		projections[i] = expression.NewAlias(
			expression.NewGetFieldWithTable(i, col.Type, col.Source, col.Name, col.Nullable),
			cte.Columns[i],
		)
	}

	return plan.NewProject(projections, body), nil
}
