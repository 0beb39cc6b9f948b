package expression

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlbind/go-sql-binder/sql"
)

func TestEquals(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	v, err := NewEquals(
		NewLiteral(int64(1), sql.Int64),
		NewLiteral(int64(1), sql.Int64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(true, v)

	// mixed numeric types compare at their common type
	v, err = NewEquals(
		NewLiteral(int64(1), sql.Int64),
		NewLiteral(1.0, sql.Float64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(true, v)

	// NULL propagates
	v, err = NewEquals(
		NewLiteral(nil, sql.Null),
		NewLiteral(int64(1), sql.Int64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Nil(v)

	_, err = NewEquals(
		NewLiteral(int64(1), sql.Int64),
		NewLiteral("x", sql.Text),
	).Eval(ctx, nil)
	require.Error(err)
}

func TestOrdering(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	v, err := NewLessThan(
		NewLiteral(int64(1), sql.Int64),
		NewLiteral(int64(2), sql.Int64),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(true, v)

	v, err = NewGreaterThan(
		NewLiteral("b", sql.Text),
		NewLiteral("a", sql.Text),
	).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(true, v)
}

func TestBooleanLogic(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	T := NewLiteral(true, sql.Boolean)
	F := NewLiteral(false, sql.Boolean)
	N := NewLiteral(nil, sql.Null)

	v, err := NewAnd(T, F).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(false, v)

	// three-valued logic
	v, err = NewAnd(F, N).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(false, v)

	v, err = NewAnd(T, N).Eval(ctx, nil)
	require.NoError(err)
	require.Nil(v)

	v, err = NewOr(T, N).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(true, v)

	v, err = NewOr(F, N).Eval(ctx, nil)
	require.NoError(err)
	require.Nil(v)

	v, err = NewNot(F).Eval(ctx, nil)
	require.NoError(err)
	require.Equal(true, v)

	v, err = NewNot(N).Eval(ctx, nil)
	require.NoError(err)
	require.Nil(v)
}
