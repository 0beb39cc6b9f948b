package sql

import (
	"fmt"
	"strings"
)

// SignatureKind is the tag of the closed Signature union.
type SignatureKind byte

const (
	// ExactKind is a fixed arity signature where each position declares an
	// exact type.
	ExactKind SignatureKind = iota
	// UniformKind is a fixed arity signature where all arguments must
	// coerce to one common type.
	UniformKind
	// VariadicKind accepts any number of arguments, all coercible to one
	// common type.
	VariadicKind
	// AnyKind is a fixed arity signature with no type constraints.
	AnyKind
	// OneOfKind tries a list of signatures in declaration order; the first
	// one the call satisfies wins.
	OneOfKind
)

// Signature describes the argument shape a function accepts. Matching is a
// single routine switching on the kind, so the coercion rules stay auditable
// and the function catalog stays data-driven.
type Signature struct {
	Kind    SignatureKind
	Types   []Type      // ExactKind
	Arity   int         // UniformKind, AnyKind
	Choices []Signature // OneOfKind
}

// Exact returns a fixed arity signature with an exact type per position.
func Exact(types ...Type) Signature {
	return Signature{Kind: ExactKind, Types: types}
}

// Uniform returns a fixed arity signature whose arguments must share one
// common type.
func Uniform(n int) Signature {
	return Signature{Kind: UniformKind, Arity: n}
}

// Variadic returns a signature accepting any number of arguments coercible
// to a common type.
func Variadic() Signature {
	return Signature{Kind: VariadicKind}
}

// Any returns a fixed arity signature accepting any argument types.
func Any(n int) Signature {
	return Signature{Kind: AnyKind, Arity: n}
}

// OneOf returns a signature satisfied by the first of the given signatures
// the call can satisfy.
func OneOf(choices ...Signature) Signature {
	return Signature{Kind: OneOfKind, Choices: choices}
}

// Match attempts to satisfy the signature with the given argument types. On
// success it returns the coercion target type for each argument position.
func (s Signature) Match(args []Type) ([]Type, bool) {
	switch s.Kind {
	case ExactKind:
		if len(args) != len(s.Types) {
			return nil, false
		}
		for i, t := range args {
			if !CanCoerce(t, s.Types[i]) {
				return nil, false
			}
		}
		targets := make([]Type, len(s.Types))
		copy(targets, s.Types)
		return targets, true
	case UniformKind:
		if len(args) != s.Arity {
			return nil, false
		}
		return uniformTargets(args)
	case VariadicKind:
		return uniformTargets(args)
	case AnyKind:
		if len(args) != s.Arity {
			return nil, false
		}
		targets := make([]Type, len(args))
		copy(targets, args)
		return targets, true
	case OneOfKind:
		for _, choice := range s.Choices {
			if targets, ok := choice.Match(args); ok {
				return targets, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

func uniformTargets(args []Type) ([]Type, bool) {
	common, ok := CommonTypeAll(args)
	if !ok {
		return nil, false
	}
	targets := make([]Type, len(args))
	for i := range targets {
		targets[i] = common
	}
	return targets, true
}

// String renders the signature the way coercion diagnostics expect, e.g.
// "Exact([TEXT, BIGINT])", "Any(2)" or "OneOf([Any(0), Any(1), Any(2)])".
func (s Signature) String() string {
	switch s.Kind {
	case ExactKind:
		return fmt.Sprintf("Exact(%s)", FormatTypes(s.Types))
	case UniformKind:
		return fmt.Sprintf("Uniform(%d)", s.Arity)
	case VariadicKind:
		return "Variadic"
	case AnyKind:
		return fmt.Sprintf("Any(%d)", s.Arity)
	case OneOfKind:
		parts := make([]string, len(s.Choices))
		for i, choice := range s.Choices {
			parts[i] = choice.String()
		}
		return fmt.Sprintf("OneOf([%s])", strings.Join(parts, ", "))
	default:
		return "Unknown"
	}
}
