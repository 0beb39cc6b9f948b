package function

import (
	"fmt"
	"strings"

	"github.com/sqlbind/go-sql-binder/sql"
)

// EvalFunc evaluates a resolved call against a row.
type EvalFunc func(ctx *sql.Context, row sql.Row, args []sql.Expression) (interface{}, error)

// Call is a resolved function call: the name survived registry lookup and
// the arguments already satisfy the function's signature. Aggregate and
// window calls carry no EvalFunc; they can only be evaluated by an execution
// context this library does not provide.
type Call struct {
	name   string
	typ    sql.Type
	args   []sql.Expression
	fn     EvalFunc
	window *sql.WindowDef
}

// NewCall creates a resolved call expression.
func NewCall(name string, typ sql.Type, fn EvalFunc, args ...sql.Expression) *Call {
	return &Call{name: name, typ: typ, fn: fn, args: args}
}

// Name implements the Nameable interface.
func (c *Call) Name() string { return c.name }

// Window returns the OVER clause of the call, if any.
func (c *Call) Window() *sql.WindowDef { return c.window }

// WithWindow returns a copy of the call carrying the given OVER clause.
func (c *Call) WithWindow(w *sql.WindowDef) sql.Expression {
	nc := *c
	nc.window = w
	return &nc
}

// Resolved implements the Expression interface.
func (c *Call) Resolved() bool {
	for _, arg := range c.args {
		if !arg.Resolved() {
			return false
		}
	}
	if c.window != nil && !c.window.Resolved() {
		return false
	}
	return true
}

// IsNullable implements the Expression interface.
func (c *Call) IsNullable() bool {
	for _, arg := range c.args {
		if arg.IsNullable() {
			return true
		}
	}
	return false
}

// Type implements the Expression interface.
func (c *Call) Type() sql.Type { return c.typ }

// Eval implements the Expression interface.
func (c *Call) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	if c.fn == nil {
		return nil, sql.ErrNotEvaluable.New(c.name)
	}
	return c.fn(ctx, row, c.args)
}

// Children implements the Expression interface.
func (c *Call) Children() []sql.Expression { return c.args }

// WithChildren implements the Expression interface.
func (c *Call) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	if len(children) != len(c.args) {
		return nil, sql.ErrInvalidChildrenNumber.New(c, len(children), len(c.args))
	}
	nc := *c
	nc.args = children
	return &nc, nil
}

func (c *Call) String() string {
	args := make([]string, len(c.args))
	for i, arg := range c.args {
		args[i] = arg.String()
	}
	s := fmt.Sprintf("%s(%s)", c.name, strings.Join(args, ", "))
	if c.window != nil {
		return s + " " + c.window.String()
	}
	return s
}
