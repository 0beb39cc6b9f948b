package analyzer

import (
	"sync"

	"github.com/mitchellh/hashstructure"

	"github.com/sqlbind/go-sql-binder/sql"
)

// planCache memoizes analysis outcomes per structural plan hash. The
// catalog is a read-only snapshot for the lifetime of the analyzer, so a
// repeated binding of the same tree must yield the identical bound tree or
// the identical diagnostic; serving the first outcome makes that guarantee
// trivial.
type planCache struct {
	mu      sync.RWMutex
	entries map[uint64]cacheEntry
}

type cacheEntry struct {
	node sql.Node
	err  error
}

func newPlanCache() *planCache {
	return &planCache{entries: make(map[uint64]cacheEntry)}
}

type planKey struct {
	Plan    string
	Catalog string
	Schema  string
}

func (c *planCache) key(ctx *sql.Context, n sql.Node) (uint64, bool) {
	h, err := hashstructure.Hash(planKey{
		Plan:    n.String(),
		Catalog: ctx.DefaultCatalog(),
		Schema:  ctx.DefaultSchema(),
	}, nil)
	if err != nil {
		return 0, false
	}
	return h, true
}

func (c *planCache) get(ctx *sql.Context, n sql.Node) (sql.Node, error, bool) {
	k, ok := c.key(ctx, n)
	if !ok {
		return nil, nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[k]
	if !ok {
		return nil, nil, false
	}
	return entry.node, entry.err, true
}

func (c *planCache) put(ctx *sql.Context, n sql.Node, bound sql.Node, err error) {
	k, ok := c.key(ctx, n)
	if !ok {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[k] = cacheEntry{node: bound, err: err}
}
