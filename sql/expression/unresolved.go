package expression

import (
	"fmt"
	"strings"

	"github.com/sqlbind/go-sql-binder/sql"
)

// UnresolvedColumn is an expression of a column that is not yet resolved.
// This is a placeholder node, so its methods Type, IsNullable and Eval are
// not supposed to be called.
type UnresolvedColumn struct {
	name  string
	table string
}

// NewUnresolvedColumn creates a new UnresolvedColumn expression.
func NewUnresolvedColumn(name string) *UnresolvedColumn {
	return &UnresolvedColumn{name: name}
}

// NewUnresolvedQualifiedColumn creates a new UnresolvedColumn expression
// with a table qualifier.
func NewUnresolvedQualifiedColumn(table, name string) *UnresolvedColumn {
	return &UnresolvedColumn{name: name, table: table}
}

// Children implements the Expression interface.
func (*UnresolvedColumn) Children() []sql.Expression {
	return nil
}

// Resolved implements the Expression interface.
func (*UnresolvedColumn) Resolved() bool {
	return false
}

// IsNullable implements the Expression interface.
func (*UnresolvedColumn) IsNullable() bool {
	panic("unresolved column is a placeholder node, but IsNullable was called")
}

// Type implements the Expression interface.
func (*UnresolvedColumn) Type() sql.Type {
	panic("unresolved column is a placeholder node, but Type was called")
}

// Name implements the Nameable interface.
func (uc *UnresolvedColumn) Name() string { return uc.name }

// Table returns the table name.
func (uc *UnresolvedColumn) Table() string { return uc.table }

func (uc *UnresolvedColumn) String() string {
	if uc.table == "" {
		return uc.name
	}
	return fmt.Sprintf("%s.%s", uc.table, uc.name)
}

// Eval implements the Expression interface.
func (*UnresolvedColumn) Eval(ctx *sql.Context, r sql.Row) (interface{}, error) {
	panic("unresolved column is a placeholder node, but Eval was called")
}

// WithChildren implements the Expression interface.
func (uc *UnresolvedColumn) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != 0 {
		return nil, sql.ErrInvalidChildrenNumber.New(uc, len(children), 0)
	}
	return uc, nil
}

// UnresolvedFunction represents a function call that is not yet matched
// against the function registry. This is a placeholder node, so its methods
// Type, IsNullable and Eval are not supposed to be called.
type UnresolvedFunction struct {
	name string
	// Window is the window of this function call, if present.
	Window *sql.WindowDef
	// Arguments of the function call.
	Arguments []sql.Expression
}

// NewUnresolvedFunction creates a new UnresolvedFunction expression.
func NewUnresolvedFunction(name string, arguments ...sql.Expression) *UnresolvedFunction {
	return &UnresolvedFunction{name: name, Arguments: arguments}
}

// NewUnresolvedWindowedFunction creates a new UnresolvedFunction expression
// carrying an OVER clause.
func NewUnresolvedWindowedFunction(name string, window *sql.WindowDef, arguments ...sql.Expression) *UnresolvedFunction {
	return &UnresolvedFunction{name: name, Window: window, Arguments: arguments}
}

// Name implements the Nameable interface.
func (uf *UnresolvedFunction) Name() string { return uf.name }

// Children implements the Expression interface. The expressions of the
// window clause are children too, so column references inside PARTITION BY
// and ORDER BY resolve like any argument.
func (uf *UnresolvedFunction) Children() []sql.Expression {
	children := append([]sql.Expression{}, uf.Arguments...)
	if uf.Window != nil {
		children = append(children, uf.Window.Expressions()...)
	}
	return children
}

// Resolved implements the Expression interface.
func (*UnresolvedFunction) Resolved() bool {
	return false
}

// IsNullable implements the Expression interface.
func (*UnresolvedFunction) IsNullable() bool {
	panic("unresolved function is a placeholder node, but IsNullable was called")
}

// Type implements the Expression interface.
func (*UnresolvedFunction) Type() sql.Type {
	panic("unresolved function is a placeholder node, but Type was called")
}

func (uf *UnresolvedFunction) String() string {
	args := make([]string, len(uf.Arguments))
	for i, arg := range uf.Arguments {
		args[i] = arg.String()
	}
	call := fmt.Sprintf("%s(%s)", uf.name, strings.Join(args, ", "))
	if uf.Window != nil {
		return call + " " + uf.Window.String()
	}
	return call
}

// Eval implements the Expression interface.
func (*UnresolvedFunction) Eval(ctx *sql.Context, r sql.Row) (interface{}, error) {
	panic("unresolved function is a placeholder node, but Eval was called")
}

// WithChildren implements the Expression interface.
func (uf *UnresolvedFunction) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	expected := len(uf.Arguments)
	if uf.Window != nil {
		expected += len(uf.Window.PartitionBy) + len(uf.Window.OrderBy)
	}
	if len(children) != expected {
		return nil, sql.ErrInvalidChildrenNumber.New(uf, len(children), expected)
	}

	window := uf.Window
	if uf.Window != nil {
		rest := children[len(uf.Arguments):]
		window = &sql.WindowDef{
			PartitionBy: rest[:len(uf.Window.PartitionBy)],
			OrderBy:     rest[len(uf.Window.PartitionBy):],
		}
	}

	return &UnresolvedFunction{
		name:      uf.name,
		Window:    window,
		Arguments: children[:len(uf.Arguments)],
	}, nil
}
