package analyzer

import (
	"gopkg.in/src-d/go-errors.v1"

	"github.com/sqlbind/go-sql-binder/sql"
)

// ErrMaxAnalysisIters is thrown when the analysis iterations are exceeded.
var ErrMaxAnalysisIters = errors.NewKind("exceeded max analysis iterations (%d)")

// RuleFunc is the function to be applied in a rule. The scope carries the
// CTE bindings visible at this point of the walk.
type RuleFunc func(*sql.Context, *Analyzer, sql.Node, *Scope) (sql.Node, error)

// Rule to transform nodes.
type Rule struct {
	// Name of the rule.
	Name string
	// Apply transforms a node.
	Apply RuleFunc
}

// Batch executes a set of rules a specific number of times. When this
// number of times is reached, the actual node and ErrMaxAnalysisIters is
// returned.
type Batch struct {
	Desc       string
	Iterations int
	Rules      []Rule
}

// Eval executes the rules of the batch, repeating until the plan stops
// changing or until the max number of iterations is reached.
func (b *Batch) Eval(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	if b.Iterations == 0 || len(b.Rules) == 0 {
		return n, nil
	}

	span, ctx := ctx.Span("batch." + b.Desc)
	defer span.Finish()

	prev := n
	cur, err := b.evalOnce(ctx, a, n, scope)
	if err != nil {
		return nil, err
	}

	if b.Iterations == 1 {
		return cur, nil
	}

	for i := 1; !nodesEqual(prev, cur); {
		prev = cur
		cur, err = b.evalOnce(ctx, a, cur, scope)
		if err != nil {
			return nil, err
		}

		i++
		if i >= b.Iterations {
			return cur, ErrMaxAnalysisIters.New(b.Iterations)
		}
	}

	return cur, nil
}

func (b *Batch) evalOnce(ctx *sql.Context, a *Analyzer, n sql.Node, scope *Scope) (sql.Node, error) {
	result := n
	for _, rule := range b.Rules {
		a.Log("applying rule %s", rule.Name)
		var err error
		result, err = rule.Apply(ctx, a, result, scope)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

type equaler interface {
	Equal(sql.Node) bool
}

func nodesEqual(a, b sql.Node) bool {
	if e, ok := a.(equaler); ok {
		return e.Equal(b)
	}

	if e, ok := b.(equaler); ok {
		return e.Equal(a)
	}

	// Plan strings are fully recursive, so string equality is structural
	// equality.
	return a.String() == b.String()
}
