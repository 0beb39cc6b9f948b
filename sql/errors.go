package sql

import (
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvalidType is thrown when there is an unexpected type at some part
	// of the plan tree.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrInvalidChildrenNumber is returned when the WithChildren method of a
	// node or expression is called with an invalid number of arguments.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrTableRefParts is returned when a table reference does not have
	// between 1 and 3 dot-separated parts.
	ErrTableRefParts = errors.NewKind("unsupported table reference %q. Expected 1, 2 or 3 parts, got %d")

	// ErrTableNotFound is returned when a table is not present in the
	// catalog. The name is always fully qualified.
	ErrTableNotFound = errors.NewKind("table '%s' not found")

	// ErrFieldNotFound is returned when a column name cannot be resolved and
	// no close enough candidate exists among the visible columns.
	ErrFieldNotFound = errors.NewKind("No field named %s. Valid fields are %s.")

	// ErrFieldNotFoundWithCandidate is returned when a column name cannot be
	// resolved but a close candidate exists among the visible columns.
	ErrFieldNotFoundWithCandidate = errors.NewKind("No field named %s. Did you mean '%s'?.")

	// ErrFunctionNotFound is returned when a function name is not present in
	// the function registry.
	ErrFunctionNotFound = errors.NewKind("Invalid function '%s'")

	// ErrFunctionNotFoundWithCandidate is returned when a function name is
	// not present in the function registry but a close candidate exists.
	ErrFunctionNotFoundWithCandidate = errors.NewKind("Invalid function '%s'.\nDid you mean '%s'?")

	// ErrFunctionCoercion is returned when the arguments of a function call
	// cannot be coerced to any of the signatures the function declares.
	ErrFunctionCoercion = errors.NewKind("Failed to coerce arguments to satisfy a call to '%s' function: coercion from %s to the signature %s failed")

	// ErrValuesRowLength is returned when the rows of a VALUES list do not
	// all have the same number of columns. The row index is zero-based and
	// the expected width is the one established by the first row.
	ErrValuesRowLength = errors.NewKind("Inconsistent data length across values list: got %d values in row %d but expected %d")

	// ErrCannotCast is returned when a value cannot be converted to the
	// required type.
	ErrCannotCast = errors.NewKind("Cannot cast value '%v' to %s")

	// ErrDivisionByZero is raised during evaluation of a division whose
	// divisor is zero.
	ErrDivisionByZero = errors.NewKind("Divide by zero")

	// ErrNoTablesUsed is returned when a wildcard projection appears with no
	// relation in scope.
	ErrNoTablesUsed = errors.NewKind("SELECT * with no tables specified is not valid")

	// ErrCaseBranchType is returned when the result expressions of a CASE do
	// not share a common type.
	ErrCaseBranchType = errors.NewKind("CASE/WHEN types %s and %s are not coercible to a common type")

	// ErrSubstringMisuse is returned when a plain-form SUBSTRING (without a
	// FROM or FOR clause) appears outside of a projection.
	ErrSubstringMisuse = errors.NewKind("SUBSTRING without FROM or FOR clause is not allowed in %s")

	// ErrColumnCountMismatch is returned when the column list of a common
	// table expression does not match the width of its subquery.
	ErrColumnCountMismatch = errors.NewKind("common table expression %q declares %d columns but its subquery produces %d")

	// ErrNotEvaluable is returned when an expression that only makes sense
	// inside an execution context (aggregation, windowing) is evaluated
	// directly.
	ErrNotEvaluable = errors.NewKind("function '%s' cannot be evaluated outside of its execution context")

	// ErrUnresolved is returned when analysis finishes with unresolved nodes
	// left in the tree. This error is indicative of a bug.
	ErrUnresolved = errors.NewKind("plan is not fully resolved: %s")
)

// DiagnosticKind classifies a Diagnostic.
type DiagnosticKind byte

const (
	// PlanningError covers name, arity and shape problems detected before
	// any data access.
	PlanningError DiagnosticKind = iota
	// SchemaError covers references to fields absent from the visible
	// schema.
	SchemaError
	// CastError covers values that cannot convert to a required type.
	CastError
	// RuntimeFault covers errors only detectable while evaluating an
	// already-bound expression.
	RuntimeFault
)

func (k DiagnosticKind) String() string {
	switch k {
	case PlanningError:
		return "planning"
	case SchemaError:
		return "schema"
	case CastError:
		return "cast"
	case RuntimeFault:
		return "runtime"
	default:
		return "unknown"
	}
}

// Diagnostic is the terminal artifact of a failed resolution: a classified,
// immutable error, optionally carrying the best-match suggestion that was
// embedded in its message. Diagnostics are never retried and are propagated
// to the caller verbatim.
type Diagnostic struct {
	// Kind classifies the failure.
	Kind DiagnosticKind
	// Candidate is the "did you mean" suggestion, if any.
	Candidate string

	cause error
}

// NewDiagnostic creates a Diagnostic of the given kind wrapping the cause.
func NewDiagnostic(kind DiagnosticKind, cause error) *Diagnostic {
	return &Diagnostic{Kind: kind, cause: cause}
}

// NewDiagnosticWithCandidate creates a Diagnostic that carries a suggestion.
func NewDiagnosticWithCandidate(kind DiagnosticKind, cause error, candidate string) *Diagnostic {
	return &Diagnostic{Kind: kind, Candidate: candidate, cause: cause}
}

// Error implements the error interface. The message is exactly the wrapped
// cause's message.
func (d *Diagnostic) Error() string { return d.cause.Error() }

// Cause returns the wrapped error.
func (d *Diagnostic) Cause() error { return d.cause }

// Unwrap returns the wrapped error.
func (d *Diagnostic) Unwrap() error { return d.cause }

// Classify wraps an error into a Diagnostic, assigning the kind from the
// error kind that produced it. Errors that are already Diagnostics are
// returned untouched.
func Classify(err error) *Diagnostic {
	if d, ok := err.(*Diagnostic); ok {
		return d
	}

	kind := PlanningError
	switch {
	case ErrFieldNotFound.Is(err) || ErrFieldNotFoundWithCandidate.Is(err):
		kind = SchemaError
	case ErrCannotCast.Is(err):
		kind = CastError
	case ErrDivisionByZero.Is(err) || ErrNotEvaluable.Is(err):
		kind = RuntimeFault
	}

	return NewDiagnostic(kind, err)
}
