package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlbind/go-sql-binder/sql"
)

func TestArithmeticEval(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	v, err := NewPlus(
		NewLiteral(int64(1), sql.Int64),
		NewLiteral(int64(2), sql.Int64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(int64(3), v)

	v, err = NewMinus(
		NewLiteral(int64(5), sql.Int64),
		NewLiteral(int64(7), sql.Int64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(int64(-2), v)

	v, err = NewMult(
		NewLiteral(int64(3), sql.Int64),
		NewLiteral(2.5, sql.Float64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(7.5, v)

	// division always produces a double
	v, err = NewDiv(
		NewLiteral(int64(10), sql.Int64),
		NewLiteral(int64(4), sql.Int64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(2.5, v)
}

func TestArithmeticNull(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	v, err := NewPlus(
		NewLiteral(nil, sql.Null),
		NewLiteral(int64(2), sql.Int64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Nil(v)
}

func TestDivisionByZero(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	_, err := NewDiv(
		NewLiteral(int64(1), sql.Int64),
		NewLiteral(int64(0), sql.Int64),
	).Eval(ctx, nil)
	require.Error(err)
	require.True(sql.ErrDivisionByZero.Is(err))
	require.EqualError(err, "Divide by zero")
	require.Equal(sql.RuntimeFault, sql.Classify(err).Kind)
}

func TestArithmeticType(t *testing.T) {
	require := require.New(t)

	i := NewLiteral(int64(1), sql.Int64)
	f := NewLiteral(1.0, sql.Float64)

	require.Equal(sql.Int64, NewPlus(i, i).Type())
	require.Equal(sql.Float64, NewPlus(i, f).Type())
	require.Equal(sql.Float64, NewDiv(i, i).Type())
}
