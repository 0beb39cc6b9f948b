package expression

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// comparison is the shared base of the binary comparison expressions. Both
// sides are brought to their common type before comparing.
type comparison struct {
	BinaryExpression
}

// Type implements the Expression interface.
func (*comparison) Type() sql.Type {
	return sql.Boolean
}

func (c *comparison) compare(ctx *sql.Context, row sql.Row) (int, bool, error) {
	lval, err := c.Left.Eval(ctx, row)
	if err != nil {
		return 0, false, err
	}
	rval, err := c.Right.Eval(ctx, row)
	if err != nil {
		return 0, false, err
	}

	if lval == nil || rval == nil {
		return 0, true, nil
	}

	typ, ok := sql.CommonType(c.Left.Type(), c.Right.Type())
	if !ok {
		return 0, false, sql.ErrInvalidType.New(fmt.Sprintf(
			"cannot compare %s with %s",
			c.Left.Type().Name(), c.Right.Type().Name(),
		))
	}

	lval, err = typ.Convert(lval)
	if err != nil {
		return 0, false, err
	}
	rval, err = typ.Convert(rval)
	if err != nil {
		return 0, false, err
	}

	cmp, err := typ.Compare(lval, rval)
	return cmp, false, err
}

// Equals is the = comparison.
type Equals struct {
	comparison
}

// NewEquals returns a new Equals expression.
func NewEquals(left, right sql.Expression) *Equals {
	return &Equals{comparison{BinaryExpression{Left: left, Right: right}}}
}

// Eval implements the Expression interface.
func (e *Equals) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	cmp, null, err := e.compare(ctx, row)
	if err != nil || null {
		return nil, err
	}
	return cmp == 0, nil
}

func (e *Equals) String() string {
	return fmt.Sprintf("(%s = %s)", e.Left, e.Right)
}

// WithChildren implements the Expression interface.
func (e *Equals) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 2)
	}
	return NewEquals(children[0], children[1]), nil
}

// LessThan is the < comparison.
type LessThan struct {
	comparison
}

// NewLessThan returns a new LessThan expression.
func NewLessThan(left, right sql.Expression) *LessThan {
	return &LessThan{comparison{BinaryExpression{Left: left, Right: right}}}
}

// Eval implements the Expression interface.
func (e *LessThan) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	cmp, null, err := e.compare(ctx, row)
	if err != nil || null {
		return nil, err
	}
	return cmp < 0, nil
}

func (e *LessThan) String() string {
	return fmt.Sprintf("(%s < %s)", e.Left, e.Right)
}

// WithChildren implements the Expression interface.
func (e *LessThan) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 2)
	}
	return NewLessThan(children[0], children[1]), nil
}

// GreaterThan is the > comparison.
type GreaterThan struct {
	comparison
}

// NewGreaterThan returns a new GreaterThan expression.
func NewGreaterThan(left, right sql.Expression) *GreaterThan {
	return &GreaterThan{comparison{BinaryExpression{Left: left, Right: right}}}
}

// Eval implements the Expression interface.
func (e *GreaterThan) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	cmp, null, err := e.compare(ctx, row)
	if err != nil || null {
		return nil, err
	}
	return cmp > 0, nil
}

func (e *GreaterThan) String() string {
	return fmt.Sprintf("(%s > %s)", e.Left, e.Right)
}

// WithChildren implements the Expression interface.
func (e *GreaterThan) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 2 {
		return nil, sql.ErrInvalidChildrenNumber.New(e, len(children), 2)
	}
	return NewGreaterThan(children[0], children[1]), nil
}
