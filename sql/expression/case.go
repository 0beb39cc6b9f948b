package expression

import (
	"bytes"

	"github.com/spf13/cast"

	"github.com/sqlbind/go-sql-binder/sql"
)

// CaseBranch is a single branch of a case expression.
type CaseBranch struct {
	Cond  sql.Expression
	Value sql.Expression
}

// Case is an expression that returns the value of one of its branches when a
// condition is met. Only the branch actually taken is evaluated, so a fault
// hiding in an untaken branch never surfaces.
type Case struct {
	Expr     sql.Expression
	Branches []CaseBranch
	Else     sql.Expression
}

// NewCase returns a new Case expression.
func NewCase(expr sql.Expression, branches []CaseBranch, elseExpr sql.Expression) *Case {
	return &Case{expr, branches, elseExpr}
}

// BranchTypes returns the types of every result expression of the case, in
// branch order, with the else branch last if present.
func (c *Case) BranchTypes() []sql.Type {
	var types []sql.Type
	for _, b := range c.Branches {
		types = append(types, b.Value.Type())
	}
	if c.Else != nil {
		types = append(types, c.Else.Type())
	}
	return types
}

// Type implements the Expression interface.
func (c *Case) Type() sql.Type {
	if t, ok := sql.CommonTypeAll(c.BranchTypes()); ok {
		return t
	}
	for _, b := range c.Branches {
		if b.Value.Type() != sql.Null {
			return b.Value.Type()
		}
	}
	return sql.Null
}

// IsNullable implements the Expression interface.
func (c *Case) IsNullable() bool {
	for _, b := range c.Branches {
		if b.Value.IsNullable() {
			return true
		}
	}
	return c.Else == nil || c.Else.IsNullable()
}

// Resolved implements the Expression interface.
func (c *Case) Resolved() bool {
	if (c.Expr != nil && !c.Expr.Resolved()) ||
		(c.Else != nil && !c.Else.Resolved()) {
		return false
	}

	for _, b := range c.Branches {
		if !b.Cond.Resolved() || !b.Value.Resolved() {
			return false
		}
	}

	return true
}

// Eval implements the Expression interface.
func (c *Case) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	var expr interface{}
	var err error
	if c.Expr != nil {
		expr, err = c.Expr.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
	}

	for _, b := range c.Branches {
		cond, err := b.Cond.Eval(ctx, row)
		if err != nil {
			return nil, err
		}

		var taken bool
		if c.Expr != nil {
			cmp, err := c.Expr.Type().Compare(expr, cond)
			if err != nil {
				return nil, err
			}
			taken = cmp == 0
		} else {
			taken, err = cast.ToBoolE(cond)
			if err != nil {
				return nil, sql.ErrCannotCast.New(cond, sql.Boolean.Name())
			}
		}

		if taken {
			return b.Value.Eval(ctx, row)
		}
	}

	if c.Else != nil {
		return c.Else.Eval(ctx, row)
	}

	return nil, nil
}

// Children implements the Expression interface.
func (c *Case) Children() []sql.Expression {
	var children []sql.Expression
	if c.Expr != nil {
		children = append(children, c.Expr)
	}
	for _, b := range c.Branches {
		children = append(children, b.Cond, b.Value)
	}
	if c.Else != nil {
		children = append(children, c.Else)
	}
	return children
}

// WithChildren implements the Expression interface.
func (c *Case) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	expected := len(c.Branches) * 2
	if c.Expr != nil {
		expected++
	}
	if c.Else != nil {
		expected++
	}
	if len(children) != expected {
		return nil, sql.ErrInvalidChildrenNumber.New(c, len(children), expected)
	}

	var expr, elseExpr sql.Expression
	if c.Expr != nil {
		expr = children[0]
		children = children[1:]
	}
	if c.Else != nil {
		elseExpr = children[len(children)-1]
		children = children[:len(children)-1]
	}

	branches := make([]CaseBranch, len(c.Branches))
	for i := range branches {
		branches[i] = CaseBranch{Cond: children[i*2], Value: children[i*2+1]}
	}

	return NewCase(expr, branches, elseExpr), nil
}

func (c *Case) String() string {
	var buf bytes.Buffer
	buf.WriteString("CASE ")
	if c.Expr != nil {
		buf.WriteString(c.Expr.String())
		buf.WriteByte(' ')
	}
	for _, b := range c.Branches {
		buf.WriteString("WHEN ")
		buf.WriteString(b.Cond.String())
		buf.WriteString(" THEN ")
		buf.WriteString(b.Value.String())
		buf.WriteByte(' ')
	}
	if c.Else != nil {
		buf.WriteString("ELSE ")
		buf.WriteString(c.Else.String())
		buf.WriteByte(' ')
	}
	buf.WriteString("END")
	return buf.String()
}
