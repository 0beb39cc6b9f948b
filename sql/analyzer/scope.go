package analyzer

import (
	"strings"

	"github.com/sqlbind/go-sql-binder/sql"
)

// Scope is the stack of named subquery bindings visible at the current
// point of the walk. Each WITH clause pushes one frame; within a frame,
// bindings are added in declaration order, so a CTE can only see CTEs
// declared strictly before it plus everything in the outer frames. Frames
// are discarded when the WITH clause's analysis completes: nothing leaks
// outward. A scope is threaded through the walk explicitly, never stored
// globally, so concurrent analyzer instances stay independent.
type Scope struct {
	parent *Scope
	names  []string
	nodes  map[string]sql.Node
}

// NewScope returns an empty root scope.
func NewScope() *Scope {
	return &Scope{nodes: make(map[string]sql.Node)}
}

// Push returns a new empty frame on top of this scope.
func (s *Scope) Push() *Scope {
	return &Scope{parent: s, nodes: make(map[string]sql.Node)}
}

// Bind registers a named relation in the current frame. Names are matched
// case-insensitively.
func (s *Scope) Bind(name string, node sql.Node) {
	lower := strings.ToLower(name)
	if _, ok := s.nodes[lower]; !ok {
		s.names = append(s.names, lower)
	}
	s.nodes[lower] = node
}

// Lookup finds a binding by name, innermost frame first. Inner frames
// shadow outer ones.
func (s *Scope) Lookup(name string) (sql.Node, bool) {
	lower := strings.ToLower(name)
	for scope := s; scope != nil; scope = scope.parent {
		if node, ok := scope.nodes[lower]; ok {
			return node, true
		}
	}
	return nil, false
}
