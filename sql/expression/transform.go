package expression

import "github.com/sqlbind/go-sql-binder/sql"

// TransformUp applies a transformation function to the given expression from
// the bottom up.
func TransformUp(e sql.Expression, f func(sql.Expression) (sql.Expression, error)) (sql.Expression, error) {
	children := e.Children()
	if len(children) > 0 {
		newChildren := make([]sql.Expression, len(children))
		for i, c := range children {
			nc, err := TransformUp(c, f)
			if err != nil {
				return nil, err
			}
			newChildren[i] = nc
		}

		var err error
		e, err = e.WithChildren(newChildren...)
		if err != nil {
			return nil, err
		}
	}

	return f(e)
}

// Inspect traverses the expression tree in depth-first order. It calls f on
// every node; if f returns false for a node, its children are skipped.
func Inspect(e sql.Expression, f func(sql.Expression) bool) {
	if e == nil || !f(e) {
		return
	}
	for _, c := range e.Children() {
		Inspect(c, f)
	}
}
