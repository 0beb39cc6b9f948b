package sql

import (
	"strings"

	"github.com/sqlbind/go-sql-binder/internal/similartext"
)

// Function is the declaration of a function the binder can resolve calls
// against: a name, an argument signature, a return type rule and a builder
// for the resolved expression.
type Function struct {
	// Name is the canonical lowercase name of the function.
	Name string
	// Aggregate is true for aggregate functions.
	Aggregate bool
	// Window is true for window-only functions.
	Window bool
	// Sig is the argument signature of the function.
	Sig Signature
	// ReturnType computes the result type from the coerced argument types.
	ReturnType func(argTypes []Type) Type
	// Build constructs the resolved expression. The arguments arrive
	// already wrapped in whatever casts the signature match decided.
	Build func(args ...Expression) (Expression, error)
}

// FunctionRegistry maps function names to their declarations. Lookups are
// case-insensitive; misses consult the suggestion utility over the unified
// scalar, aggregate and window lexicon.
type FunctionRegistry struct {
	order []string
	funcs map[string]Function
}

// NewFunctionRegistry creates a new empty FunctionRegistry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{funcs: make(map[string]Function)}
}

// Register adds the given functions to the registry. Re-registering a name
// replaces the declaration but keeps its original position in the lexicon.
func (r *FunctionRegistry) Register(funcs ...Function) {
	for _, f := range funcs {
		name := strings.ToLower(f.Name)
		if _, ok := r.funcs[name]; !ok {
			r.order = append(r.order, name)
		}
		f.Name = name
		r.funcs[name] = f
	}
}

// Names returns the registered function names in declaration order.
func (r *FunctionRegistry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Function returns the declaration of the function with the given name. On a
// miss the returned diagnostic carries the closest registered name, if one
// is close enough.
func (r *FunctionRegistry) Function(name string) (Function, error) {
	lower := strings.ToLower(name)
	if f, ok := r.funcs[lower]; ok {
		return f, nil
	}

	if candidate, ok := similartext.Find(r.order, lower); ok {
		return Function{}, NewDiagnosticWithCandidate(
			PlanningError,
			ErrFunctionNotFoundWithCandidate.New(name, candidate),
			candidate,
		)
	}

	return Function{}, NewDiagnostic(PlanningError, ErrFunctionNotFound.New(name))
}
