package analyzer

import (
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

// expandStars replaces wildcard projections with one field per visible
// column. A wildcard with zero relations in scope is rejected before any
// per-column resolution happens.
func expandStars(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	span, _ := ctx.Span("expand_stars")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		switch n := n.(type) {
		case *plan.Project:
			if !n.Child.Resolved() {
				return n, nil
			}
			exprs, err := expandStarsInExpressions(n.Projections, n.Child.Schema())
			if err != nil {
				return nil, err
			}
			return plan.NewProject(exprs, n.Child), nil
		case *plan.GroupBy:
			if !n.Child.Resolved() {
				return n, nil
			}
			exprs, err := expandStarsInExpressions(n.SelectedExprs, n.Child.Schema())
			if err != nil {
				return nil, err
			}
			return plan.NewGroupBy(exprs, n.GroupByExprs, n.Child), nil
		case *plan.Window:
			if !n.Child.Resolved() {
				return n, nil
			}
			exprs, err := expandStarsInExpressions(n.SelectExprs, n.Child.Schema())
			if err != nil {
				return nil, err
			}
			return plan.NewWindow(exprs, n.Child), nil
		default:
			return n, nil
		}
	})
}

func expandStarsInExpressions(exprs []sql.Expression, schema sql.Schema) ([]sql.Expression, error) {
	var expanded []sql.Expression
	for _, e := range exprs {
		star, ok := e.(*expression.Star)
		if !ok {
			expanded = append(expanded, e)
			continue
		}

		if len(schema) == 0 {
			return nil, sql.ErrNoTablesUsed.New()
		}

		var matched bool
		for i, col := range schema {
			if star.Table != "" && !equalFold(col.Source, star.Table) {
				continue
			}
			matched = true
			expanded = append(expanded, expression.NewGetFieldWithTable(
				i, col.Type, col.Source, col.Name, col.Nullable,
			))
		}

		if !matched {
			// The qualifier names a relation alias visible in the FROM
			// clause, not a catalog path, so it is reported as written
			// rather than qualified with the session defaults.
			return nil, sql.ErrTableNotFound.New(star.Table)
		}
	}

	return expanded, nil
}
