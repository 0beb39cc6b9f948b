package sql

import (
	"fmt"
	"strings"
)

// WindowDef is the OVER clause of a windowed function call. Windowing is
// transparent to signature matching: the matcher only ever sees the argument
// list of the underlying function.
type WindowDef struct {
	PartitionBy []Expression
	OrderBy     []Expression
}

func (w *WindowDef) String() string {
	var parts []string
	if len(w.PartitionBy) > 0 {
		cols := make([]string, len(w.PartitionBy))
		for i, e := range w.PartitionBy {
			cols[i] = e.String()
		}
		parts = append(parts, "PARTITION BY "+strings.Join(cols, ", "))
	}
	if len(w.OrderBy) > 0 {
		cols := make([]string, len(w.OrderBy))
		for i, e := range w.OrderBy {
			cols[i] = e.String()
		}
		parts = append(parts, "ORDER BY "+strings.Join(cols, ", "))
	}
	return fmt.Sprintf("OVER (%s)", strings.Join(parts, " "))
}

// Expressions returns all the expressions of the window definition.
func (w *WindowDef) Expressions() []Expression {
	exprs := make([]Expression, 0, len(w.PartitionBy)+len(w.OrderBy))
	exprs = append(exprs, w.PartitionBy...)
	exprs = append(exprs, w.OrderBy...)
	return exprs
}

// Resolved returns whether all expressions of the window are resolved.
func (w *WindowDef) Resolved() bool {
	for _, e := range w.Expressions() {
		if !e.Resolved() {
			return false
		}
	}
	return true
}
