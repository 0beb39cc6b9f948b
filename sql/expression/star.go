package expression

import (
	"fmt"

	"github.com/sqlbind/go-sql-binder/sql"
)

// Star represents a wildcard projection. It is a placeholder node expanded
// by the analyzer into one GetField per visible column.
type Star struct {
	// Table is the table qualifier of the wildcard, if any.
	Table string
}

// NewStar returns a new Star expression.
func NewStar() *Star {
	return &Star{}
}

// NewQualifiedStar returns a new Star expression for a specific table.
func NewQualifiedStar(table string) *Star {
	return &Star{table}
}

// Resolved implements the Expression interface.
func (*Star) Resolved() bool {
	return false
}

// Children implements the Expression interface.
func (*Star) Children() []sql.Expression {
	return nil
}

// IsNullable implements the Expression interface.
func (*Star) IsNullable() bool {
	panic("star is a placeholder node, but IsNullable was called")
}

// Type implements the Expression interface.
func (*Star) Type() sql.Type {
	panic("star is a placeholder node, but Type was called")
}

func (s *Star) String() string {
	if s.Table != "" {
		return fmt.Sprintf("%s.*", s.Table)
	}
	return "*"
}

// Eval implements the Expression interface.
func (*Star) Eval(ctx *sql.Context, r sql.Row) (interface{}, error) {
	panic("star is a placeholder node, but Eval was called")
}

// WithChildren implements the Expression interface.
func (s *Star) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), 0)
	}
	return s, nil
}
