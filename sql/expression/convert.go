package expression

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// Convert casts its child to another type. The analyzer inserts Convert
// nodes to realize the coercion plan decided by signature matching.
type Convert struct {
	UnaryExpression
	castToType sql.Type
}

// NewConvert creates a new Convert expression.
func NewConvert(expr sql.Expression, castToType sql.Type) *Convert {
	return &Convert{UnaryExpression{expr}, castToType}
}

// Type implements the Expression interface.
func (c *Convert) Type() sql.Type {
	return c.castToType
}

func (c *Convert) String() string {
	return fmt.Sprintf("CAST(%s AS %s)", c.Child, c.castToType.Name())
}

// Eval implements the Expression interface.
func (c *Convert) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	val, err := c.Child.Eval(ctx, row)
	if err != nil {
		return nil, err
	}

	if val == nil {
		return nil, nil
	}

	return c.castToType.Convert(val)
}

// WithChildren implements the Expression interface.
func (c *Convert) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 1 {
		return nil, sql.ErrInvalidChildrenNumber.New(c, len(children), 1)
	}
	return NewConvert(children[0], c.castToType), nil
}
