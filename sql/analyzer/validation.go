package analyzer

import (
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
	"github.com/sqlbind/go-sql-binder/sql/expression/function"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

// validateSubstring rejects plain-form SUBSTRING calls (written without a
// FROM or FOR clause) in grouping expressions.
func validateSubstring(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	span, _ := ctx.Span("validate_substring")
	defer span.Finish()

	var err error
	plan.Inspect(n, func(n sql.Node) bool {
		g, ok := n.(*plan.GroupBy)
		if !ok {
			return true
		}
		for _, e := range g.GroupByExprs {
			expression.Inspect(e, func(e sql.Expression) bool {
				if sub, ok := e.(*function.Substring); ok && !sub.Explicit {
					err = sql.ErrSubstringMisuse.New("GROUP BY")
					return false
				}
				return true
			})
			if err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return n, nil
}

// ensureResolved verifies analysis left no placeholder node behind.
func ensureResolved(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	if !n.Resolved() {
		return nil, sql.ErrUnresolved.New(n.String())
	}
	return n, nil
}
