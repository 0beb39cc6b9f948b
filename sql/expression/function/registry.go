package function

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/sqlbind/go-sql-binder/sql"
)

// NewRegistry returns a function registry loaded with the default function
// catalog.
func NewRegistry() *sql.FunctionRegistry {
	r := sql.NewFunctionRegistry()
	r.Register(Defaults()...)
	return r
}

// Defaults returns the default function catalog. The catalog is data: one
// declaration per function, each owning exactly one signature and one return
// type rule, which the generated builder reuses.
func Defaults() []sql.Function {
	substringSig := sql.OneOf(
		sql.Exact(sql.Text, sql.Int64),
		sql.Exact(sql.Text, sql.Int64, sql.Int64),
	)

	return []sql.Function{
		scalar("abs", sql.OneOf(sql.Exact(sql.Int64), sql.Exact(sql.Float64)), retFirstArg, evalAbs),
		scalar("upper", sql.Exact(sql.Text), retStatic(sql.Text), evalStringFn(strings.ToUpper)),
		scalar("lower", sql.Exact(sql.Text), retStatic(sql.Text), evalStringFn(strings.ToLower)),
		scalar("length", sql.Exact(sql.Text), retStatic(sql.Int64), evalLength),
		scalar("concat", sql.Variadic(), retStatic(sql.Text), evalConcat),
		scalar("coalesce", sql.Variadic(), retCommon, evalCoalesce),
		{
			Name:       "substring",
			Sig:        substringSig,
			ReturnType: retStatic(sql.Text),
			Build:      NewSubstring,
		},
		{
			Name:       "substr",
			Sig:        substringSig,
			ReturnType: retStatic(sql.Text),
			Build:      NewSubstring,
		},

		// aggregates
		aggregate("count", sql.Any(1), retStatic(sql.Int64)),
		aggregate("sum", sql.OneOf(sql.Exact(sql.Int64), sql.Exact(sql.Float64)), retFirstArg),
		aggregate("avg", sql.OneOf(sql.Exact(sql.Int64), sql.Exact(sql.Float64)), retStatic(sql.Float64)),
		aggregate("min", sql.Any(1), retFirstArg),
		aggregate("max", sql.Any(1), retFirstArg),

		// window functions
		window("row_number", sql.Any(0), retStatic(sql.Int64)),
		window("first_value", sql.Any(1), retFirstArg),
		window("last_value", sql.Any(1), retFirstArg),
		window("nth_value", sql.OneOf(sql.Any(0), sql.Any(1), sql.Any(2)), retFirstArg),
		window("lead", sql.OneOf(sql.Any(1), sql.Any(2), sql.Any(3)), retFirstArg),
		window("lag", sql.OneOf(sql.Any(1), sql.Any(2), sql.Any(3)), retFirstArg),
	}
}

func scalar(name string, sig sql.Signature, ret func([]sql.Type) sql.Type, fn EvalFunc) sql.Function {
	return sql.Function{
		Name:       name,
		Sig:        sig,
		ReturnType: ret,
		Build:      buildCall(name, ret, fn),
	}
}

func aggregate(name string, sig sql.Signature, ret func([]sql.Type) sql.Type) sql.Function {
	return sql.Function{
		Name:       name,
		Aggregate:  true,
		Sig:        sig,
		ReturnType: ret,
		Build:      buildCall(name, ret, nil),
	}
}

func window(name string, sig sql.Signature, ret func([]sql.Type) sql.Type) sql.Function {
	return sql.Function{
		Name:       name,
		Window:     true,
		Sig:        sig,
		ReturnType: ret,
		Build:      buildCall(name, ret, nil),
	}
}

// buildCall derives a builder from the declared return type rule, so the
// type of the built call always agrees with Function.ReturnType.
func buildCall(name string, ret func([]sql.Type) sql.Type, fn EvalFunc) func(...sql.Expression) (sql.Expression, error) {
	return func(args ...sql.Expression) (sql.Expression, error) {
		return NewCall(name, ret(argTypes(args)), fn, args...), nil
	}
}

func retStatic(t sql.Type) func([]sql.Type) sql.Type {
	return func([]sql.Type) sql.Type { return t }
}

func retFirstArg(argTypes []sql.Type) sql.Type {
	if len(argTypes) == 0 {
		return sql.Null
	}
	return argTypes[0]
}

func retCommon(argTypes []sql.Type) sql.Type {
	if t, ok := sql.CommonTypeAll(argTypes); ok {
		return t
	}
	return sql.Null
}

func argTypes(args []sql.Expression) []sql.Type {
	types := make([]sql.Type, len(args))
	for i, arg := range args {
		types[i] = arg.Type()
	}
	return types
}

func evalAbs(ctx *sql.Context, row sql.Row, args []sql.Expression) (interface{}, error) {
	v, err := args[0].Eval(ctx, row)
	if err != nil || v == nil {
		return nil, err
	}
	switch n := v.(type) {
	case int64:
		if n < 0 {
			return -n, nil
		}
		return n, nil
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, sql.ErrCannotCast.New(v, sql.Float64.Name())
		}
		return math.Abs(f), nil
	}
}

func evalStringFn(fn func(string) string) EvalFunc {
	return func(ctx *sql.Context, row sql.Row, args []sql.Expression) (interface{}, error) {
		v, err := args[0].Eval(ctx, row)
		if err != nil || v == nil {
			return nil, err
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, sql.ErrCannotCast.New(v, sql.Text.Name())
		}
		return fn(s), nil
	}
}

func evalLength(ctx *sql.Context, row sql.Row, args []sql.Expression) (interface{}, error) {
	v, err := args[0].Eval(ctx, row)
	if err != nil || v == nil {
		return nil, err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, sql.ErrCannotCast.New(v, sql.Text.Name())
	}
	return int64(len([]rune(s))), nil
}

func evalConcat(ctx *sql.Context, row sql.Row, args []sql.Expression) (interface{}, error) {
	var sb strings.Builder
	for _, arg := range args {
		v, err := arg.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, sql.ErrCannotCast.New(v, sql.Text.Name())
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func evalCoalesce(ctx *sql.Context, row sql.Row, args []sql.Expression) (interface{}, error) {
	for _, arg := range args {
		v, err := arg.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		if v != nil {
			return v, nil
		}
	}
	return nil, nil
}
