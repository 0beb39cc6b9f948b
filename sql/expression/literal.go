package expression

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// Literal represents a literal expression (string, number, bool, ...).
type Literal struct {
	value     interface{}
	fieldType sql.Type
}

// NewLiteral creates a new Literal expression.
func NewLiteral(value interface{}, fieldType sql.Type) *Literal {
	return &Literal{value: value, fieldType: fieldType}
}

// Value returns the literal value.
func (l *Literal) Value() interface{} {
	return l.value
}

// Resolved implements the Expression interface.
func (*Literal) Resolved() bool {
	return true
}

// IsNullable implements the Expression interface.
func (l *Literal) IsNullable() bool {
	return l.value == nil
}

// Type implements the Expression interface.
func (l *Literal) Type() sql.Type {
	return l.fieldType
}

// Eval implements the Expression interface.
func (l *Literal) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	return l.value, nil
}

func (l *Literal) String() string {
	switch v := l.value.(type) {
	case string:
		return fmt.Sprintf("'%s'", v)
	case nil:
		return "NULL"
	default:
		return fmt.Sprint(v)
	}
}

// Children implements the Expression interface.
func (*Literal) Children() []sql.Expression {
	return nil
}

// WithChildren implements the Expression interface.
func (l *Literal) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(l, len(children), 0)
	}
	return l, nil
}
