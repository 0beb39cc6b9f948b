package function

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/sqlbind/go-sql-binder/sql"
)

// Substring is the SUBSTRING function. Explicit records whether the call was
// written with the FROM/FOR syntax; the plain positional form is rejected in
// grouping contexts at validation time.
type Substring struct {
	Str   sql.Expression
	Start sql.Expression
	Len   sql.Expression
	// Explicit is true when the call used the SUBSTRING(x FROM y [FOR z])
	// syntax.
	Explicit bool
}

// NewSubstring creates a new substring function call from positional
// arguments.
func NewSubstring(args ...sql.Expression) (sql.Expression, error) {
	sub := &Substring{}
	switch len(args) {
	case 3:
		sub.Len = args[2]
		fallthrough
	case 2:
		sub.Str = args[0]
		sub.Start = args[1]
	default:
		return nil, sql.ErrInvalidChildrenNumber.New(sub, len(args), 2)
	}
	return sub, nil
}

// WithSyntaxForm returns a copy marked as written with FROM/FOR syntax.
func (s *Substring) WithSyntaxForm() *Substring {
	ns := *s
	ns.Explicit = true
	return &ns
}

// Resolved implements the Expression interface.
func (s *Substring) Resolved() bool {
	for _, e := range s.Children() {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

// IsNullable implements the Expression interface.
func (s *Substring) IsNullable() bool {
	return s.Str.IsNullable() || s.Start.IsNullable() ||
		(s.Len != nil && s.Len.IsNullable())
}

// Type implements the Expression interface.
func (*Substring) Type() sql.Type { return sql.Text }

// Children implements the Expression interface.
func (s *Substring) Children() []sql.Expression {
	if s.Len == nil {
		return []sql.Expression{s.Str, s.Start}
	}
	return []sql.Expression{s.Str, s.Start, s.Len}
}

// Eval implements the Expression interface.
func (s *Substring) Eval(ctx *sql.Context, row sql.Row) (interface{}, error) {
	strVal, err := s.Str.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if strVal == nil {
		return nil, nil
	}
	str, err := cast.ToStringE(strVal)
	if err != nil {
		return nil, sql.ErrCannotCast.New(strVal, sql.Text.Name())
	}

	startVal, err := s.Start.Eval(ctx, row)
	if err != nil {
		return nil, err
	}
	if startVal == nil {
		return nil, nil
	}
	start, err := cast.ToInt64E(startVal)
	if err != nil {
		return nil, sql.ErrCannotCast.New(startVal, sql.Int64.Name())
	}

	runes := []rune(str)
	length := int64(len(runes))

	// SQL substring positions are 1-based; negative positions count from
	// the end.
	if start < 0 {
		start = length + start
	} else if start > 0 {
		start--
	}
	if start < 0 {
		start = 0
	}
	if start >= length {
		return "", nil
	}

	end := length
	if s.Len != nil {
		lenVal, err := s.Len.Eval(ctx, row)
		if err != nil {
			return nil, err
		}
		if lenVal == nil {
			return nil, nil
		}
		n, err := cast.ToInt64E(lenVal)
		if err != nil {
			return nil, sql.ErrCannotCast.New(lenVal, sql.Int64.Name())
		}
		if n < 0 {
			n = 0
		}
		if start+n < end {
			end = start + n
		}
	}

	return string(runes[start:end]), nil
}

// WithChildren implements the Expression interface.
func (s *Substring) WithChildren(children ...sql.Expression) (sql.Expression, error) {
	expected := len(s.Children())
	if len(children) != expected {
		return nil, sql.ErrInvalidChildrenNumber.New(s, len(children), expected)
	}
	sub, err := NewSubstring(children...)
	if err != nil {
		return nil, err
	}
	sub.(*Substring).Explicit = s.Explicit
	return sub, nil
}

func (s *Substring) String() string {
	if s.Len == nil {
		return fmt.Sprintf("substring(%s, %s)", s.Str, s.Start)
	}
	return fmt.Sprintf("substring(%s, %s, %s)", s.Str, s.Start, s.Len)
}
