package sql

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Type represents a SQL data type. The set of types is closed: every type is
// one of the package-level values below.
type Type interface {
	// Name returns the canonical name of the type.
	Name() string
	// Check returns whether the given value is already of this type.
	Check(v interface{}) bool
	// Convert converts the given value to this type, returning ErrCannotCast
	// if there is no sensible conversion.
	Convert(v interface{}) (interface{}, error)
	// Compare returns an integer comparing two values of this type.
	Compare(a, b interface{}) (int, error)
}

// TimestampLayout is the textual format accepted for timestamp values.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the textual format accepted for date values.
const DateLayout = "2006-01-02"

var (
	// Null represents the type of NULL values.
	Null Type = nullType{}
	// Boolean is a boolean type.
	Boolean Type = booleanType{}
	// Int64 is a 64-bit integer type.
	Int64 Type = int64Type{}
	// Float64 is a 64-bit floating point type.
	Float64 Type = float64Type{}
	// Text is a string type.
	Text Type = textType{}
	// Timestamp is a date and time type.
	Timestamp Type = timestampType{}
	// Date is a date type without time.
	Date Type = dateType{}
)

type nullType struct{}

func (nullType) Name() string { return "NULL" }

func (nullType) Check(v interface{}) bool { return v == nil }

func (nullType) Convert(v interface{}) (interface{}, error) {
	if v != nil {
		return nil, ErrCannotCast.New(v, "NULL")
	}
	return nil, nil
}

func (nullType) Compare(a, b interface{}) (int, error) { return 0, nil }

type booleanType struct{}

func (booleanType) Name() string { return "BOOLEAN" }

func (booleanType) Check(v interface{}) bool {
	_, ok := v.(bool)
	return ok
}

func (t booleanType) Convert(v interface{}) (interface{}, error) {
	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, ErrCannotCast.New(v, t.Name())
	}
	return b, nil
}

func (booleanType) Compare(a, b interface{}) (int, error) {
	av, bv := a.(bool), b.(bool)
	switch {
	case av == bv:
		return 0, nil
	case !av:
		return -1, nil
	default:
		return 1, nil
	}
}

type int64Type struct{}

func (int64Type) Name() string { return "BIGINT" }

func (int64Type) Check(v interface{}) bool {
	_, ok := v.(int64)
	return ok
}

func (t int64Type) Convert(v interface{}) (interface{}, error) {
	i, err := cast.ToInt64E(v)
	if err != nil {
		return nil, ErrCannotCast.New(v, t.Name())
	}
	return i, nil
}

func (int64Type) Compare(a, b interface{}) (int, error) {
	av, bv := a.(int64), b.(int64)
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

type float64Type struct{}

func (float64Type) Name() string { return "DOUBLE" }

func (float64Type) Check(v interface{}) bool {
	_, ok := v.(float64)
	return ok
}

func (t float64Type) Convert(v interface{}) (interface{}, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil, ErrCannotCast.New(v, t.Name())
	}
	return f, nil
}

func (float64Type) Compare(a, b interface{}) (int, error) {
	av, bv := a.(float64), b.(float64)
	switch {
	case av < bv:
		return -1, nil
	case av > bv:
		return 1, nil
	default:
		return 0, nil
	}
}

type textType struct{}

func (textType) Name() string { return "TEXT" }

func (textType) Check(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func (t textType) Convert(v interface{}) (interface{}, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, ErrCannotCast.New(v, t.Name())
	}
	return s, nil
}

func (textType) Compare(a, b interface{}) (int, error) {
	return strings.Compare(a.(string), b.(string)), nil
}

type timestampType struct{}

func (timestampType) Name() string { return "TIMESTAMP" }

func (timestampType) Check(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

func (t timestampType) Convert(v interface{}) (interface{}, error) {
	switch v := v.(type) {
	case time.Time:
		return v.UTC(), nil
	case string:
		ts, err := time.Parse(TimestampLayout, v)
		if err != nil {
			ts, err = time.Parse(DateLayout, v)
			if err != nil {
				return nil, ErrCannotCast.New(v, t.Name())
			}
		}
		return ts.UTC(), nil
	default:
		ts, err := cast.ToTimeE(v)
		if err != nil {
			return nil, ErrCannotCast.New(v, t.Name())
		}
		return ts.UTC(), nil
	}
}

func (timestampType) Compare(a, b interface{}) (int, error) {
	av, bv := a.(time.Time), b.(time.Time)
	switch {
	case av.Before(bv):
		return -1, nil
	case av.After(bv):
		return 1, nil
	default:
		return 0, nil
	}
}

type dateType struct{}

func (dateType) Name() string { return "DATE" }

func (dateType) Check(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok
}

func (t dateType) Convert(v interface{}) (interface{}, error) {
	truncate := func(ts time.Time) time.Time {
		return ts.UTC().Truncate(24 * time.Hour)
	}
	switch v := v.(type) {
	case time.Time:
		return truncate(v), nil
	case string:
		ts, err := time.Parse(DateLayout, v)
		if err != nil {
			return nil, ErrCannotCast.New(v, t.Name())
		}
		return truncate(ts), nil
	default:
		ts, err := cast.ToTimeE(v)
		if err != nil {
			return nil, ErrCannotCast.New(v, t.Name())
		}
		return truncate(ts), nil
	}
}

func (dateType) Compare(a, b interface{}) (int, error) {
	return Timestamp.Compare(a, b)
}

// CanCoerce reports whether an implicit cast from one type to another is
// defined. Coercion is strictly narrower than conversion: Convert may accept
// values that the binder would refuse to coerce implicitly.
func CanCoerce(from, to Type) bool {
	if from == to || from == Null {
		return true
	}
	switch {
	case from == Int64 && to == Float64:
		return true
	case from == Text && (to == Timestamp || to == Date):
		return true
	}
	return false
}

// CommonType returns the narrowest type both given types coerce to, if any.
func CommonType(a, b Type) (Type, bool) {
	if a == b {
		return a, true
	}
	if a == Null {
		return b, true
	}
	if b == Null {
		return a, true
	}
	if CanCoerce(a, b) {
		return b, true
	}
	if CanCoerce(b, a) {
		return a, true
	}
	return nil, false
}

// CommonTypeAll folds CommonType over all the given types. It fails on an
// empty list: there is no common type of nothing.
func CommonTypeAll(types []Type) (Type, bool) {
	if len(types) == 0 {
		return nil, false
	}
	common := types[0]
	for _, t := range types[1:] {
		var ok bool
		common, ok = CommonType(common, t)
		if !ok {
			return nil, false
		}
	}
	return common, true
}

// FormatTypes renders a list of types the way diagnostics expect, e.g.
// "[BIGINT, TEXT]".
func FormatTypes(types []Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
