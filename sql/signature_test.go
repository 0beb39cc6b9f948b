package sql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactMatch(t *testing.T) {
	require := require.New(t)
	sig := Exact(Text, Int64)

	targets, ok := sig.Match([]Type{Text, Int64})
	require.True(ok)
	require.Equal([]Type{Text, Int64}, targets)

	// implicit widening per position
	targets, ok = sig.Match([]Type{Null, Int64})
	require.True(ok)
	require.Equal([]Type{Text, Int64}, targets)

	_, ok = sig.Match([]Type{Text})
	require.False(ok)

	_, ok = sig.Match([]Type{Int64, Int64})
	require.False(ok)
}

func TestUniformMatch(t *testing.T) {
	require := require.New(t)
	sig := Uniform(2)

	targets, ok := sig.Match([]Type{Int64, Float64})
	require.True(ok)
	require.Equal([]Type{Float64, Float64}, targets)

	_, ok = sig.Match([]Type{Int64})
	require.False(ok)

	_, ok = sig.Match([]Type{Int64, Text})
	require.False(ok)
}

func TestVariadicMatch(t *testing.T) {
	require := require.New(t)
	sig := Variadic()

	targets, ok := sig.Match([]Type{Int64, Null, Float64})
	require.True(ok)
	require.Equal([]Type{Float64, Float64, Float64}, targets)

	targets, ok = sig.Match([]Type{Text})
	require.True(ok)
	require.Equal([]Type{Text}, targets)

	_, ok = sig.Match([]Type{Int64, Text})
	require.False(ok)

	// zero arguments have no common type
	_, ok = sig.Match(nil)
	require.False(ok)
}

func TestAnyMatch(t *testing.T) {
	require := require.New(t)
	sig := Any(2)

	targets, ok := sig.Match([]Type{Text, Timestamp})
	require.True(ok)
	require.Equal([]Type{Text, Timestamp}, targets)

	_, ok = sig.Match([]Type{Text})
	require.False(ok)

	targets, ok = Any(0).Match(nil)
	require.True(ok)
	require.Len(targets, 0)
}

func TestOneOfMatch(t *testing.T) {
	require := require.New(t)
	sig := OneOf(Exact(Int64), Exact(Float64))

	// the first satisfiable choice wins
	targets, ok := sig.Match([]Type{Int64})
	require.True(ok)
	require.Equal([]Type{Int64}, targets)

	targets, ok = sig.Match([]Type{Float64})
	require.True(ok)
	require.Equal([]Type{Float64}, targets)

	// NULL satisfies the first choice
	targets, ok = sig.Match([]Type{Null})
	require.True(ok)
	require.Equal([]Type{Int64}, targets)

	_, ok = sig.Match([]Type{Text})
	require.False(ok)

	_, ok = sig.Match([]Type{Int64, Int64})
	require.False(ok)
}

func TestSignatureString(t *testing.T) {
	require := require.New(t)

	require.Equal("Exact([TEXT, BIGINT])", Exact(Text, Int64).String())
	require.Equal("Uniform(2)", Uniform(2).String())
	require.Equal("Variadic", Variadic().String())
	require.Equal("Any(1)", Any(1).String())
	require.Equal(
		"OneOf([Any(0), Any(1), Any(2)])",
		OneOf(Any(0), Any(1), Any(2)).String(),
	)
	require.Equal(
		"OneOf([Exact([BIGINT]), Exact([DOUBLE])])",
		OneOf(Exact(Int64), Exact(Float64)).String(),
	)
}
