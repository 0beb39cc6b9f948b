// Package analyzer is the binder: it turns an unresolved plan tree into a
// fully resolved, typed one, or fails fast with a classified diagnostic.
package analyzer

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sqlbind/go-sql-binder/sql"
)

const debugAnalyzerKey = "DEBUG_ANALYZER"

const maxAnalysisIterations = 8

// Builder provides an easy way to generate Analyzers with custom rules and
// options.
type Builder struct {
	preAnalyzeRules  []Rule
	postAnalyzeRules []Rule
	catalog          *sql.Catalog
	debug            bool
}

// NewBuilder creates a new Builder from a specific catalog.
func NewBuilder(c *sql.Catalog) *Builder {
	return &Builder{catalog: c}
}

// WithDebug activates debug on the Analyzer.
func (ab *Builder) WithDebug() *Builder {
	ab.debug = true
	return ab
}

// AddPreAnalyzeRule adds a new rule to run before the standard analyzer
// rules.
func (ab *Builder) AddPreAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.preAnalyzeRules = append(ab.preAnalyzeRules, Rule{name, fn})
	return ab
}

// AddPostAnalyzeRule adds a new rule to run after the standard analyzer
// rules.
func (ab *Builder) AddPostAnalyzeRule(name string, fn RuleFunc) *Builder {
	ab.postAnalyzeRules = append(ab.postAnalyzeRules, Rule{name, fn})
	return ab
}

// Build creates a new Analyzer from the builder.
func (ab *Builder) Build() *Analyzer {
	_, debug := os.LookupEnv(debugAnalyzerKey)
	batches := []*Batch{
		{
			Desc:       "pre-analyzer",
			Iterations: maxAnalysisIterations,
			Rules:      ab.preAnalyzeRules,
		},
		{
			Desc:       "resolve-names",
			Iterations: maxAnalysisIterations,
			Rules: []Rule{
				{"resolve_common_table_expressions", resolveCommonTableExpressions},
				{"resolve_tables", resolveTables},
				{"expand_stars", expandStars},
				{"resolve_columns", resolveColumns},
			},
		},
		{
			Desc:       "resolve-functions",
			Iterations: maxAnalysisIterations,
			Rules: []Rule{
				{"resolve_functions", resolveFunctions},
			},
		},
		{
			Desc:       "coerce-types",
			Iterations: 1,
			Rules: []Rule{
				{"coerce_values", coerceValues},
				{"coerce_case_branches", coerceCaseBranches},
			},
		},
		{
			Desc:       "post-analyzer",
			Iterations: maxAnalysisIterations,
			Rules:      ab.postAnalyzeRules,
		},
		{
			Desc:       "validation",
			Iterations: 1,
			Rules: []Rule{
				{"validate_substring", validateSubstring},
				{"ensure_resolved", ensureResolved},
			},
		},
	}

	return &Analyzer{
		Debug:   debug || ab.debug,
		Batches: batches,
		Catalog: ab.catalog,
		cache:   newPlanCache(),
	}
}

// Analyzer analyzes plan trees. Binding is a single-threaded, synchronous
// walk; independent analyzers may run concurrently as long as they share
// only a read-only catalog snapshot.
type Analyzer struct {
	// Debug activates rule logging.
	Debug bool
	// Batches of rules to apply, in order.
	Batches []*Batch
	// Catalog of databases and functions.
	Catalog *sql.Catalog

	cache *planCache
}

// NewDefault creates a default Analyzer instance with the standard rules.
func NewDefault(c *sql.Catalog) *Analyzer {
	return NewBuilder(c).Build()
}

// Log prints an INFO message when the debug flag is on.
func (a *Analyzer) Log(msg string, args ...interface{}) {
	if a != nil && a.Debug {
		logrus.Infof(msg, args...)
	}
}

// Analyze binds the given plan tree. On success the returned tree is fully
// resolved and typed; on failure the returned error is a *sql.Diagnostic
// and no partial result is produced. Binding the same tree twice against an
// unchanged catalog yields an identical outcome.
func (a *Analyzer) Analyze(ctx *sql.Context, n sql.Node) (sql.Node, error) {
	span, ctx := ctx.Span("analyze")
	defer span.Finish()

	if node, err, ok := a.cache.get(ctx, n); ok {
		a.Log("plan served from analysis cache")
		return node, err
	}

	bound, err := a.analyzeWithScope(ctx, n, NewScope())
	if err != nil {
		d := sql.Classify(err)
		a.cache.put(ctx, n, nil, d)
		return nil, d
	}

	a.cache.put(ctx, n, bound, nil)
	return bound, nil
}

// analyzeWithScope runs every batch over the node with the given scope. It
// is the entry point for recursive analysis of CTE bodies.
func (a *Analyzer) analyzeWithScope(ctx *sql.Context, n sql.Node, scope *Scope) (sql.Node, error) {
	var err error
	for _, batch := range a.Batches {
		n, err = batch.Eval(ctx, a, n, scope)
		if err != nil {
			return nil, err
		}
	}
	return n, nil
}
