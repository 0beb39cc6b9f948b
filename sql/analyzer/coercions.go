package analyzer

import (
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

// coerceValues checks the shape of every literal table constructor and
// casts its literals column-wise. The width is established by the first
// row; the first offending row is reported by its zero-based index. Cast
// failures are detected here, at bind time, never lazily.
func coerceValues(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	span, _ := ctx.Span("coerce_values")
	defer span.Finish()

	return plan.TransformUp(n, func(n sql.Node) (sql.Node, error) {
		v, ok := n.(*plan.Values)
		if !ok || len(v.ExpressionTuples) == 0 {
			return n, nil
		}

		width := len(v.ExpressionTuples[0])
		for i, tuple := range v.ExpressionTuples[1:] {
			if len(tuple) != width {
				return nil, sql.ErrValuesRowLength.New(len(tuple), i+1, width)
			}
		}

		tuples := make([][]sql.Expression, len(v.ExpressionTuples))
		for i, tuple := range v.ExpressionTuples {
			tuples[i] = append([]sql.Expression(nil), tuple...)
		}

		for col := 0; col < width; col++ {
			target := columnTarget(tuples, col)
			for row := range tuples {
				coerced, err := coerceValue(tuples[row][col], target)
				if err != nil {
					return nil, err
				}
				tuples[row][col] = coerced
			}
		}

		return plan.NewValues(tuples), nil
	})
}

// columnTarget infers the type a VALUES column coerces to: the common type
// of all its expressions, or the first non-null type when no common type
// exists (the per-value casts will then report the offender).
func columnTarget(tuples [][]sql.Expression, col int) sql.Type {
	types := make([]sql.Type, len(tuples))
	for i := range tuples {
		types[i] = tuples[i][col].Type()
	}
	if t, ok := sql.CommonTypeAll(types); ok {
		return t
	}
	for _, t := range types {
		if t != sql.Null {
			return t
		}
	}
	return sql.Null
}

func coerceValue(e sql.Expression, target sql.Type) (sql.Expression, error) {
	if e.Type() == target {
		return e, nil
	}

	lit, ok := e.(*expression.Literal)
	if !ok {
		return expression.NewConvert(e, target), nil
	}

	if lit.Value() == nil {
		return expression.NewLiteral(nil, target), nil
	}

	converted, err := target.Convert(lit.Value())
	if err != nil {
		return nil, err
	}
	return expression.NewLiteral(converted, target), nil
}

// coerceCaseBranches requires the result expressions of every CASE to share
// one common type, independently of which branch would run.
func coerceCaseBranches(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	span, _ := ctx.Span("coerce_case_branches")
	defer span.Finish()

	return plan.TransformExpressionsUp(n, func(e sql.Expression) (sql.Expression, error) {
		c, ok := e.(*expression.Case)
		if !ok || !c.Resolved() {
			return e, nil
		}

		types := c.BranchTypes()
		if len(types) == 0 {
			return e, nil
		}

		common := types[0]
		for _, t := range types[1:] {
			next, ok := sql.CommonType(common, t)
			if !ok {
				return nil, sql.ErrCaseBranchType.New(common.Name(), t.Name())
			}
			common = next
		}

		return e, nil
	})
}
