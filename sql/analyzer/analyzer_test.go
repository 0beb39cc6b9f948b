package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlbind/go-sql-binder/mem"
	"github.com/sqlbind/go-sql-binder/sql"
	"github.com/sqlbind/go-sql-binder/sql/expression"
	"github.com/sqlbind/go-sql-binder/sql/expression/function"
	"github.com/sqlbind/go-sql-binder/sql/plan"
)

func testCatalog() *sql.Catalog {
	catalog := sql.NewCatalog()
	catalog.Register(function.Defaults()...)

	db := mem.NewDatabase("public")
	db.AddTable(mem.NewTable("a", sql.Schema{
		{Name: "timestamp", Type: sql.Timestamp, Source: "a"},
		{Name: "birthday", Type: sql.Date, Source: "a"},
		{Name: "ts", Type: sql.Timestamp, Source: "a"},
		{Name: "tokens", Type: sql.Int64, Source: "a"},
		{Name: "amp", Type: sql.Int64, Source: "a"},
		{Name: "staamp", Type: sql.Text, Source: "a"},
	}))

	ns := mem.NewNamespace("datafusion")
	ns.AddDatabase(db)
	catalog.AddNamespace(ns)
	return catalog
}

func newTestAnalyzer() *Analyzer {
	return NewDefault(testCatalog())
}

func project(exprs []sql.Expression, child sql.Node) *plan.Project {
	return plan.NewProject(exprs, child)
}

func requireDiagnostic(t *testing.T, err error, kind sql.DiagnosticKind) *sql.Diagnostic {
	t.Helper()
	require.Error(t, err)
	d, ok := err.(*sql.Diagnostic)
	require.True(t, ok, "error is not a diagnostic: %v", err)
	require.Equal(t, kind, d.Kind)
	return d
}

func TestResolveColumn(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedColumn("ts")},
		plan.NewUnresolvedTable("a"),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())

	p, ok := bound.(*plan.Project)
	require.True(ok)
	gf, ok := p.Projections[0].(*expression.GetField)
	require.True(ok)
	require.Equal(2, gf.Index())
	require.Equal("a", gf.Table())
	require.Equal("ts", gf.Name())
	require.Equal(sql.Timestamp, gf.Type())

	schema := bound.Schema()
	require.Len(schema, 1)
	require.Equal("ts", schema[0].Name)
	require.Equal("a", schema[0].Source)
}

func TestResolveQualifiedColumn(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedQualifiedColumn("a", "tokens")},
		plan.NewUnresolvedTable("a"),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)

	gf := bound.(*plan.Project).Projections[0].(*expression.GetField)
	require.Equal(3, gf.Index())
	require.Equal(sql.Int64, gf.Type())
}

func TestColumnSuggestion(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedColumn("timetamp")},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	d := requireDiagnostic(t, err, sql.SchemaError)
	require.EqualError(err, "No field named timetamp. Did you mean 'a.timestamp'?.")
	require.Equal("a.timestamp", d.Candidate)
}

func TestColumnSuggestionShortName(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedColumn("ammp")},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	d := requireDiagnostic(t, err, sql.SchemaError)
	require.EqualError(err, "No field named ammp. Did you mean 'a.amp'?.")
	require.Equal("a.amp", d.Candidate)
}

func TestColumnNotFoundListsFields(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedColumn("dadsada")},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	d := requireDiagnostic(t, err, sql.SchemaError)
	require.EqualError(err,
		"No field named dadsada. Valid fields are a.timestamp, a.birthday, a.ts, a.tokens, a.amp, a.staamp.")
	require.Empty(d.Candidate)
}

func TestTableNotFound(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedColumn("ts")},
		plan.NewUnresolvedTable("x"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, "table 'datafusion.public.x' not found")
}

func TestTableNotFoundCustomNamespace(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	ctx := sql.NewContext(
		context.Background(),
		sql.WithDefaultNamespace("cat", "sch"),
	)

	_, err := a.Analyze(ctx, plan.NewUnresolvedTable("x"))
	require.EqualError(err, "table 'cat.sch.x' not found")
}

func TestTableRefTooManyParts(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	_, err := a.Analyze(sql.NewEmptyContext(), plan.NewUnresolvedTable("a.b.c.d"))
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, `unsupported table reference "a.b.c.d". Expected 1, 2 or 3 parts, got 4`)
}

func TestStarExpansion(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewStar()},
		plan.NewUnresolvedTable("a"),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)

	schema := bound.Schema()
	require.Equal(
		[]string{"timestamp", "birthday", "ts", "tokens", "amp", "staamp"},
		schema.Names(),
	)
}

func TestStarWithNoTables(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewStar()},
		plan.NewNothing(),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, "SELECT * with no tables specified is not valid")
}

func TestQualifiedStarUnknownTable(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewQualifiedStar("b")},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	require.EqualError(err, "table 'b' not found")
}

func TestFunctionSuggestion(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedFunction(
			"nth_vlue",
			expression.NewUnresolvedColumn("tokens"),
		)},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	d := requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, "Invalid function 'nth_vlue'.\nDid you mean 'nth_value'?")
	require.Equal("nth_value", d.Candidate)
}

func TestFunctionCoercionFailure(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedFunction("upper",
			expression.NewUnresolvedColumn("tokens"),
		)},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err,
		"Failed to coerce arguments to satisfy a call to 'upper' function: coercion from [BIGINT] to the signature Exact([TEXT]) failed")
}

func TestWindowFunctionArityDiagnostic(t *testing.T) {
	require := require.New(t)

	args := []sql.Expression{
		expression.NewLiteral(int64(1), sql.Int64),
		expression.NewLiteral(int64(2), sql.Int64),
		expression.NewLiteral(int64(3), sql.Int64),
	}

	plain := project(
		[]sql.Expression{expression.NewUnresolvedFunction("nth_value", args...)},
		plan.NewUnresolvedTable("a"),
	)
	windowed := plan.NewWindow(
		[]sql.Expression{expression.NewUnresolvedWindowedFunction(
			"nth_value", &sql.WindowDef{}, args...,
		)},
		plan.NewUnresolvedTable("a"),
	)

	_, plainErr := newTestAnalyzer().Analyze(sql.NewEmptyContext(), plain)
	_, windowedErr := newTestAnalyzer().Analyze(sql.NewEmptyContext(), windowed)

	requireDiagnostic(t, plainErr, sql.PlanningError)
	requireDiagnostic(t, windowedErr, sql.PlanningError)

	// the window clause is transparent to signature matching
	require.EqualError(plainErr,
		"Failed to coerce arguments to satisfy a call to 'nth_value' function: coercion from [BIGINT, BIGINT, BIGINT] to the signature OneOf([Any(0), Any(1), Any(2)]) failed")
	require.Equal(plainErr.Error(), windowedErr.Error())
}

func TestResolveWindowedFunction(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	wdef := &sql.WindowDef{}
	node := plan.NewWindow(
		[]sql.Expression{expression.NewUnresolvedWindowedFunction(
			"row_number", wdef,
		)},
		plan.NewUnresolvedTable("a"),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)

	call, ok := bound.(*plan.Window).SelectExprs[0].(*function.Call)
	require.True(ok)
	require.Equal("row_number", call.Name())
	require.Equal(wdef, call.Window())
	require.Equal(sql.Int64, call.Type())
}

func TestResolveWindowClauseColumns(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	// row_number() OVER (PARTITION BY tokens ORDER BY ts)
	node := plan.NewWindow(
		[]sql.Expression{expression.NewUnresolvedWindowedFunction(
			"row_number",
			&sql.WindowDef{
				PartitionBy: []sql.Expression{expression.NewUnresolvedColumn("tokens")},
				OrderBy:     []sql.Expression{expression.NewUnresolvedColumn("ts")},
			},
		)},
		plan.NewUnresolvedTable("a"),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())

	call, ok := bound.(*plan.Window).SelectExprs[0].(*function.Call)
	require.True(ok)
	w := call.Window()
	require.NotNil(w)
	require.True(w.Resolved())

	part, ok := w.PartitionBy[0].(*expression.GetField)
	require.True(ok)
	require.Equal(3, part.Index())
	require.Equal("tokens", part.Name())

	order, ok := w.OrderBy[0].(*expression.GetField)
	require.True(ok)
	require.Equal(2, order.Index())
	require.Equal("ts", order.Name())
}

func TestResolveWindowClauseUnknownColumn(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewWindow(
		[]sql.Expression{expression.NewUnresolvedWindowedFunction(
			"row_number",
			&sql.WindowDef{
				PartitionBy: []sql.Expression{expression.NewUnresolvedColumn("timetamp")},
			},
		)},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	d := requireDiagnostic(t, err, sql.SchemaError)
	require.EqualError(err, "No field named timetamp. Did you mean 'a.timestamp'?.")
	require.Equal("a.timestamp", d.Candidate)
}

func TestVariadicFunctionZeroArguments(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedFunction("concat")},
		plan.NewNothing(),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err,
		"Failed to coerce arguments to satisfy a call to 'concat' function: coercion from [] to the signature Variadic failed")
}

func TestFunctionArgumentCast(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	// NULL coerces to TEXT, so the argument gets an explicit cast
	node := project(
		[]sql.Expression{expression.NewUnresolvedFunction("length",
			expression.NewLiteral(nil, sql.Null),
		)},
		plan.NewNothing(),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)

	call, ok := bound.(*plan.Project).Projections[0].(*function.Call)
	require.True(ok)
	_, ok = call.Children()[0].(*expression.Convert)
	require.True(ok)
}

func TestValuesRowLength(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewValues([][]sql.Expression{
		{expression.NewLiteral(int64(1), sql.Int64)},
		{expression.NewLiteral(int64(2), sql.Int64), expression.NewLiteral(int64(3), sql.Int64)},
	})

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, "Inconsistent data length across values list: got 2 values in row 1 but expected 1")
}

func TestValuesLiteralCastFailure(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewValues([][]sql.Expression{
		{expression.NewLiteral(int64(1), sql.Int64)},
		{expression.NewLiteral("abc", sql.Text)},
	})

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.CastError)
	require.EqualError(err, "Cannot cast value 'abc' to BIGINT")
}

func TestValuesColumnCoercion(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewValues([][]sql.Expression{
		{expression.NewLiteral(int64(1), sql.Int64)},
		{expression.NewLiteral(2.5, sql.Float64)},
	})

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)

	values, ok := bound.(*plan.Values)
	require.True(ok)
	require.Equal(sql.Float64, values.Schema()[0].Type)

	lit, ok := values.ExpressionTuples[0][0].(*expression.Literal)
	require.True(ok)
	require.Equal(1.0, lit.Value())
}

func TestCaseBranchTypeMismatch(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	c := expression.NewCase(nil, []expression.CaseBranch{
		{
			Cond:  expression.NewLiteral(true, sql.Boolean),
			Value: expression.NewLiteral(int64(1), sql.Int64),
		},
		{
			Cond:  expression.NewLiteral(false, sql.Boolean),
			Value: expression.NewLiteral("x", sql.Text),
		},
	}, nil)

	node := project(
		[]sql.Expression{expression.NewAlias(c, "c")},
		plan.NewNothing(),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, "CASE/WHEN types BIGINT and TEXT are not coercible to a common type")
}

func TestCaseBranchCoercibleTypes(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	c := expression.NewCase(nil, []expression.CaseBranch{
		{
			Cond:  expression.NewLiteral(true, sql.Boolean),
			Value: expression.NewLiteral(int64(1), sql.Int64),
		},
	}, expression.NewLiteral(2.5, sql.Float64))

	node := project(
		[]sql.Expression{expression.NewAlias(c, "c")},
		plan.NewNothing(),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())
}

func TestSubstringPlainFormInGroupBy(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewGroupBy(
		[]sql.Expression{expression.NewUnresolvedColumn("staamp")},
		[]sql.Expression{expression.NewUnresolvedFunction("substring",
			expression.NewUnresolvedColumn("staamp"),
			expression.NewLiteral(int64(1), sql.Int64),
		)},
		plan.NewUnresolvedTable("a"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, "SUBSTRING without FROM or FOR clause is not allowed in GROUP BY")
}

func TestSubstringExplicitFormInGroupBy(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	sub, err := function.NewSubstring(
		expression.NewGetFieldWithTable(5, sql.Text, "a", "staamp", false),
		expression.NewLiteral(int64(1), sql.Int64),
	)
	require.NoError(err)
	explicit := sub.(*function.Substring).WithSyntaxForm()

	node := plan.NewGroupBy(
		[]sql.Expression{explicit},
		[]sql.Expression{explicit},
		plan.NewUnresolvedTable("a"),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())
}

func TestSubstringPlainFormInProjection(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedFunction("substring",
			expression.NewUnresolvedColumn("staamp"),
			expression.NewLiteral(int64(1), sql.Int64),
		)},
		plan.NewUnresolvedTable("a"),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())
}

func TestResolveCommonTableExpression(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewWith(
		[]*plan.CommonTableExpression{{
			Name: "t",
			Subquery: project(
				[]sql.Expression{expression.NewUnresolvedColumn("ts")},
				plan.NewUnresolvedTable("a"),
			),
		}},
		project(
			[]sql.Expression{expression.NewUnresolvedColumn("ts")},
			plan.NewUnresolvedTable("t"),
		),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())

	schema := bound.Schema()
	require.Len(schema, 1)
	require.Equal("ts", schema[0].Name)
	require.Equal("t", schema[0].Source)
}

func TestCTESelfReference(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewWith(
		[]*plan.CommonTableExpression{{
			Name: "t",
			Subquery: project(
				[]sql.Expression{expression.NewUnresolvedColumn("ts")},
				plan.NewUnresolvedTable("t"),
			),
		}},
		plan.NewUnresolvedTable("t"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, "table 'datafusion.public.t' not found")
}

func TestCTEForwardReference(t *testing.T) {
	require := require.New(t)

	base := project(
		[]sql.Expression{expression.NewUnresolvedColumn("ts")},
		plan.NewUnresolvedTable("a"),
	)
	fromOther := func(name string) sql.Node {
		return project(
			[]sql.Expression{expression.NewUnresolvedColumn("ts")},
			plan.NewUnresolvedTable(name),
		)
	}

	// t1 references t2 declared after it
	node := plan.NewWith(
		[]*plan.CommonTableExpression{
			{Name: "t1", Subquery: fromOther("t2")},
			{Name: "t2", Subquery: base},
		},
		plan.NewUnresolvedTable("t1"),
	)
	_, err := newTestAnalyzer().Analyze(sql.NewEmptyContext(), node)
	require.EqualError(err, "table 'datafusion.public.t2' not found")

	// the other way around, t2 sees its earlier sibling
	node = plan.NewWith(
		[]*plan.CommonTableExpression{
			{Name: "t1", Subquery: base},
			{Name: "t2", Subquery: fromOther("t1")},
		},
		plan.NewUnresolvedTable("t2"),
	)
	bound, err := newTestAnalyzer().Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())
}

func TestCTEShadowsCatalogTable(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewWith(
		[]*plan.CommonTableExpression{{
			Name: "a",
			Subquery: project(
				[]sql.Expression{expression.NewUnresolvedColumn("tokens")},
				plan.NewUnresolvedTable("a"),
			),
		}},
		project(
			[]sql.Expression{expression.NewStar()},
			plan.NewUnresolvedTable("a"),
		),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)

	schema := bound.Schema()
	require.Len(schema, 1)
	require.Equal("tokens", schema[0].Name)
	require.Equal("a", schema[0].Source)
}

func TestCTEColumnRename(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewWith(
		[]*plan.CommonTableExpression{{
			Name:    "t",
			Columns: []string{"x"},
			Subquery: project(
				[]sql.Expression{expression.NewUnresolvedColumn("ts")},
				plan.NewUnresolvedTable("a"),
			),
		}},
		project(
			[]sql.Expression{expression.NewUnresolvedColumn("x")},
			plan.NewUnresolvedTable("t"),
		),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)

	schema := bound.Schema()
	require.Len(schema, 1)
	require.Equal("x", schema[0].Name)
}

func TestCTEColumnCountMismatch(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := plan.NewWith(
		[]*plan.CommonTableExpression{{
			Name:    "t",
			Columns: []string{"x", "y"},
			Subquery: project(
				[]sql.Expression{expression.NewUnresolvedColumn("ts")},
				plan.NewUnresolvedTable("a"),
			),
		}},
		plan.NewUnresolvedTable("t"),
	)

	_, err := a.Analyze(sql.NewEmptyContext(), node)
	requireDiagnostic(t, err, sql.PlanningError)
	require.EqualError(err, `common table expression "t" declares 2 columns but its subquery produces 1`)
}

func TestAnalyzeIdempotent(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	build := func() sql.Node {
		return project(
			[]sql.Expression{expression.NewUnresolvedColumn("ts")},
			plan.NewUnresolvedTable("a"),
		)
	}

	first, err := a.Analyze(ctx, build())
	require.NoError(err)

	// same analyzer, structurally identical tree: the exact same outcome
	second, err := a.Analyze(ctx, build())
	require.NoError(err)
	require.True(first == second)
}

func TestAnalyzeIdempotentDiagnostic(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()
	ctx := sql.NewEmptyContext()

	build := func() sql.Node {
		return project(
			[]sql.Expression{expression.NewUnresolvedColumn("timetamp")},
			plan.NewUnresolvedTable("a"),
		)
	}

	_, first := a.Analyze(ctx, build())
	_, second := a.Analyze(ctx, build())
	require.Error(first)
	require.True(first == second)
}

func TestFilterResolution(t *testing.T) {
	require := require.New(t)
	a := newTestAnalyzer()

	node := project(
		[]sql.Expression{expression.NewUnresolvedColumn("tokens")},
		plan.NewFilter(
			expression.NewEquals(
				expression.NewUnresolvedColumn("amp"),
				expression.NewLiteral(int64(1), sql.Int64),
			),
			plan.NewUnresolvedTable("a"),
		),
	)

	bound, err := a.Analyze(sql.NewEmptyContext(), node)
	require.NoError(err)
	require.True(bound.Resolved())

	f, ok := bound.(*plan.Project).Child.(*plan.Filter)
	require.True(ok)
	eq, ok := f.Expression.(*expression.Equals)
	require.True(ok)
	gf, ok := eq.Left.(*expression.GetField)
	require.True(ok)
	require.Equal(4, gf.Index())
}
