package expression

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/sqlbind/go-sql-binder/sql"
)

// And is the boolean conjunction. NULL operands follow three-valued logic:
// false AND NULL is false, true AND NULL is NULL.
type And struct {
	BinaryExpression
}

// NewAnd returns a new And expression.
func NewAnd(left, right sql.Expression) *And {
	return &And{BinaryExpression{Left: left, Right: right}}
}

// Type implements the Expression interface.
func (*And) Type() sql.Type {
	return sql.Boolean
}

// Eval implements the Expression interface.
func (a *And) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := evalBool(ctx, a.Left, row)
	if err != nil {
		return nil, err
	}
	if lval != nil && !*lval {
		return false, nil
	}

	rval, err := evalBool(ctx, a.Right, row)
	if err != nil {
		return nil, err
	}
	if rval != nil && !*rval {
		return false, nil
	}

	if lval == nil || rval == nil {
		return nil, nil
	}
	return true, nil
}

func (a *And) String() string {
	return fmt.Sprintf("(%s AND %s)", a.Left, a.Right)
}

// WithChildren implements the Expression interface.
func (a *And) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(a, len(children), 2)
	}
	return NewAnd(children[0], children[1]), nil
}

// Or is the boolean disjunction. NULL operands follow three-valued logic:
// true OR NULL is true, false OR NULL is NULL.
type Or struct {
	BinaryExpression
}

// NewOr returns a new Or expression.
func NewOr(left, right sql.Expression) *Or {
	return &Or{BinaryExpression{Left: left, Right: right}}
}

// Type implements the Expression interface.
func (*Or) Type() sql.Type {
	return sql.Boolean
}

// Eval implements the Expression interface.
func (o *Or) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	lval, err := evalBool(ctx, o.Left, row)
	if err != nil {
		return nil, err
	}
	if lval != nil && *lval {
		return true, nil
	}

	rval, err := evalBool(ctx, o.Right, row)
	if err != nil {
		return nil, err
	}
	if rval != nil && *rval {
		return true, nil
	}

	if lval == nil || rval == nil {
		return nil, nil
	}
	return false, nil
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s OR %s)", o.Left, o.Right)
}

// WithChildren implements the Expression interface.
func (o *Or) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(o, len(children), 2)
	}
	return NewOr(children[0], children[1]), nil
}

// Not negates its child.
type Not struct {
	UnaryExpression
}

// NewNot returns a new Not expression.
func NewNot(child sql.Expression) *Not {
	return &Not{UnaryExpression{child}}
}

// Type implements the Expression interface.
func (*Not) Type() sql.Type {
	return sql.Boolean
}

// Eval implements the Expression interface.
func (n *Not) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	v, err := evalBool(ctx, n.Child, row)
	if err != nil || v == nil {
		return nil, err
	}
	return !*v, nil
}

func (n *Not) String() string {
	return fmt.Sprintf("NOT %s", n.Child)
}

// WithChildren implements the Expression interface.
func (n *Not) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(n, len(children), 1)
	}
	return NewNot(children[0]), nil
}

func evalBool(ctx *sql.Context, e sql.Expression, row sql.Row) (*bool, error) {
	v, err := e.Eval(ctx, row)
	if err != nil || v == nil {
		return nil, err
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, sql.ErrCannotCast.New(v, sql.Boolean.Name())
	}
	return &b, nil
}
