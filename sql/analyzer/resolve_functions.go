package analyzer

import (
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

// windower is implemented by resolved calls that can carry an OVER clause.
type windower interface {
	WithWindow(*sql.WindowDef) sql.Expression
}

// resolveFunctions matches every UnresolvedFunction against the function
// registry and its signature, wrapping arguments in the casts the match
// decided. The window clause of a call is transparent here: a windowed call
// fails with exactly the same diagnostic as a plain one.
func resolveFunctions(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	span, _ := ctx.Span("resolve_functions")
	defer span.Finish()

	return plan.TransformExpressionsUp(n, func(e sql.Expression) (sql.Expression, error) {
		uf, ok := e.(*expression.UnresolvedFunction)
		if !ok {
			return e, nil
		}
		for _, arg := range uf.Arguments {
			if !arg.Resolved() {
				return e, nil
			}
		}
		if uf.Window != nil && !uf.Window.Resolved() {
			return e, nil
		}

		fn, err := a.Catalog.Function(uf.Name())
		if err != nil {
			return nil, err
		}

		argTypes := make([]sql.Type, len(uf.Arguments))
		for i, arg := range uf.Arguments {
			argTypes[i] = arg.Type()
		}

		targets, ok := fn.Sig.Match(argTypes)
		if !ok {
			return nil, sql.ErrFunctionCoercion.New(
				fn.Name, sql.FormatTypes(argTypes), fn.Sig.String(),
			)
		}

		args := make([]sql.Expression, len(uf.Arguments))
		for i, arg := range uf.Arguments {
			if targets[i] != argTypes[i] {
				args[i] = expression.NewConvert(arg, targets[i])
			} else {
				args[i] = arg
			}
		}

		resolved, err := fn.Build(args...)
		if err != nil {
			return nil, err
		}

		if uf.Window != nil {
			w, ok := resolved.(windower)
			if !ok {
				return nil, sql.ErrInvalidType.New("function '" + fn.Name + "' cannot be windowed")
			}
			resolved = w.WithWindow(uf.Window)
		}

		a.Log("function %q resolved against signature %s", fn.Name, fn.Sig)
		return resolved, nil
	})
}
