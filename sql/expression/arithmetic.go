package expression

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/sqlbind/go-sql-binder/sql"
)

const (
	plusOp  = "+"
	minusOp = "-"
	multOp  = "*"
	divOp   = "/"
)

// Arithmetic expressions (+, -, *, /).
type Arithmetic struct {
	BinaryExpression
	Op string
}

// NewArithmetic creates a new Arithmetic sql.Expression.
func NewArithmetic(left, right sql.Expression, op string) *Arithmetic {
	return &Arithmetic{BinaryExpression{Left: left, Right: right}, op}
}

// NewPlus creates a new Arithmetic + sql.Expression.
func NewPlus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, plusOp)
}

// NewMinus creates a new Arithmetic - sql.Expression.
func NewMinus(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, minusOp)
}

// NewMult creates a new Arithmetic * sql.Expression.
func NewMult(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, multOp)
}

// NewDiv creates a new Arithmetic / sql.Expression.
func NewDiv(left, right sql.Expression) *Arithmetic {
	return NewArithmetic(left, right, divOp)
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("(%s %s %s)", a.Left, a.Op, a.Right)
}

// Type implements the Expression interface.
func (a *Arithmetic) Type() sql.Type {
	if a.Op == divOp {
		return sql.Float64
	}
	if t, ok := sql.CommonType(a.Left.Type(), a.Right.Type()); ok {
		return t
	}
	return sql.Float64
}

// Eval implements the Expression interface. Division with a zero divisor is
// a runtime fault: it only surfaces when this expression is actually
// evaluated, never at bind time.
func (a *Arithmetic) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := a.Left.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	rval, err := a.Right.Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	if lval == nil || rval == nil {
		return nil, nil
	}

	if a.Op == divOp {
		rf, err := cast.ToFloat64E(rval)
		if err != nil {
			return nil, sql.ErrCannotCast.New(rval, sql.Float64.Name())
		}
		if rf == 0 {
			return nil, sql.ErrDivisionByZero.New()
		}
		lf, err := cast.ToFloat64E(lval)
		if err != nil {
			return nil, sql.ErrCannotCast.New(lval, sql.Float64.Name())
		}
		return lf / rf, nil
	}

	if li, lerr := cast.ToInt64E(lval); lerr == nil {
		if ri, rerr := cast.ToInt64E(rval); rerr == nil {
			switch a.Op {
			case plusOp:
				return li + ri, nil
			case minusOp:
				return li - ri, nil
			case multOp:
				return li * ri, nil
			}
		}
	}

	lf, err := cast.ToFloat64E(lval)
	if err != nil {
		return nil, sql.ErrCannotCast.New(lval, sql.Float64.Name())
	}
	rf, err := cast.ToFloat64E(rval)
	if err != nil {
		return nil, sql.ErrCannotCast.New(rval, sql.Float64.Name())
	}

	switch a.Op {
	case plusOp:
		return lf + rf, nil
	case minusOp:
		return lf - rf, nil
	case multOp:
		return lf * rf, nil
	}

	return nil, sql.ErrInvalidType.New(fmt.Sprintf("unknown operator %q", a.Op))
}

// WithChildren implements the Expression interface.
func (a *Arithmetic) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 2)
	}
	return NewArithmetic(children[0], children[1], a.Op), nil
}
