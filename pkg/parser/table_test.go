package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/ast"
)

func TestLeftOuterJoinOn(t *testing.T) {
	sql := `SELECT * FROM a LEFT OUTER JOIN b ON a.id = b.id`
	sel := parseOneSelect(t, sql)
	require.Len(t, sel.From, 1)
	require.Len(t, sel.From[0].Joins, 1)
	j := sel.From[0].Joins[0]
	assert.Equal(t, ast.JoinLeftOuter, j.Operator)
	assert.Equal(t, ast.JoinConstraintOn, j.Constraint.Kind)
}

func TestNaturalJoinHasNoConstraint(t *testing.T) {
	sql := `SELECT * FROM a NATURAL JOIN b`
	sel := parseOneSelect(t, sql)
	j := sel.From[0].Joins[0]
	assert.Equal(t, ast.JoinInner, j.Operator)
	assert.Equal(t, ast.JoinConstraintNatural, j.Constraint.Kind)
}

func TestJoinUsingColumnList(t *testing.T) {
	sql := `SELECT * FROM a JOIN b USING (id, tenant)`
	sel := parseOneSelect(t, sql)
	j := sel.From[0].Joins[0]
	require.Equal(t, ast.JoinConstraintUsing, j.Constraint.Kind)
	require.Len(t, j.Constraint.Using, 2)
	assert.Equal(t, "id", j.Constraint.Using[0].Value)
	assert.Equal(t, "tenant", j.Constraint.Using[1].Value)
}

func TestCrossJoinHasNoConstraint(t *testing.T) {
	sql := `SELECT * FROM a CROSS JOIN b`
	sel := parseOneSelect(t, sql)
	j := sel.From[0].Joins[0]
	assert.Equal(t, ast.JoinCross, j.Operator)
}

func TestChainedJoinsAccumulate(t *testing.T) {
	sql := `SELECT * FROM a JOIN b ON a.id=b.id LEFT JOIN c ON b.id=c.id`
	sel := parseOneSelect(t, sql)
	require.Len(t, sel.From[0].Joins, 2)
	assert.Equal(t, ast.JoinInner, sel.From[0].Joins[0].Operator)
	assert.Equal(t, ast.JoinLeft, sel.From[0].Joins[1].Operator)
}

func TestDerivedTableWithAlias(t *testing.T) {
	sql := `SELECT * FROM (SELECT 1 AS x) AS t`
	sel := parseOneSelect(t, sql)
	derived, ok := sel.From[0].Relation.(*ast.Derived)
	require.True(t, ok, "expected a derived table, got %T", sel.From[0].Relation)
	require.NotNil(t, derived.Alias)
	assert.Equal(t, "t", derived.Alias.Name.Value)
}

func TestUnnestWithOrdinality(t *testing.T) {
	sql := `SELECT * FROM UNNEST(arr) WITH ORDINALITY AS u(val, idx)`
	sel := parseOneSelect(t, sql, "bigquery")
	un, ok := sel.From[0].Relation.(*ast.UnNest)
	require.True(t, ok, "expected UNNEST, got %T", sel.From[0].Relation)
	assert.True(t, un.WithOrdinality)
	require.NotNil(t, un.Alias)
	require.Len(t, un.Alias.Columns, 2)
}

func TestTableFunctionCall(t *testing.T) {
	sql := `SELECT * FROM generate_series(1, 10) AS g`
	sel := parseOneSelect(t, sql)
	tf, ok := sel.From[0].Relation.(*ast.TableFunction)
	require.True(t, ok, "expected a table function, got %T", sel.From[0].Relation)
	require.Len(t, tf.Args, 2)
}

func TestPivotExprList(t *testing.T) {
	sql := `SELECT * FROM sales PIVOT (SUM(amount) FOR quarter IN ('Q1', 'Q2')) AS p`
	sel := parseOneSelect(t, sql, "snowflake")
	tbl, ok := sel.From[0].Relation.(*ast.Table)
	require.True(t, ok)
	require.Len(t, tbl.Pivots, 1)
	pv := tbl.Pivots[0]
	assert.Equal(t, "quarter", pv.ForColumn.Value)
	_, ok = pv.ValueSource.(ast.PivotExprList)
	assert.True(t, ok, "expected PivotExprList, got %T", pv.ValueSource)
}

func TestUnpivotColumnList(t *testing.T) {
	sql := `SELECT * FROM wide UNPIVOT (amount FOR quarter IN (q1, q2, q3))`
	sel := parseOneSelect(t, sql, "snowflake")
	tbl, ok := sel.From[0].Relation.(*ast.Table)
	require.True(t, ok)
	require.Len(t, tbl.Unpivots, 1)
	up := tbl.Unpivots[0]
	assert.Equal(t, "amount", up.ValueColumn.Value)
	assert.Equal(t, "quarter", up.NameColumn.Value)
	require.Len(t, up.Columns, 3)
}

func TestMatchRecognizeBasicPattern(t *testing.T) {
	sql := `SELECT * FROM trades MATCH_RECOGNIZE (
		PARTITION BY symbol
		ORDER BY ts
		MEASURES A.price AS start_price
		ONE ROW PER MATCH
		PATTERN (A B+ C*)
		DEFINE B AS B.price < A.price
	) AS mr`
	sel := parseOneSelect(t, sql, "snowflake")
	tbl, ok := sel.From[0].Relation.(*ast.Table)
	require.True(t, ok)
	require.NotNil(t, tbl.MatchRecognize)
	mr := tbl.MatchRecognize
	assert.Equal(t, ast.OneRowPerMatch, mr.RowsPerMatch)
	require.Len(t, mr.Measures, 1)
	require.Len(t, mr.Define, 1)
	concat, ok := mr.Pattern.(ast.PatternConcat)
	require.True(t, ok, "expected a concatenation pattern, got %T", mr.Pattern)
	require.Len(t, concat.Patterns, 3)
}

func TestAliasDoesNotSwallowJoinKeyword(t *testing.T) {
	sql := `SELECT * FROM a JOIN b ON a.id = b.id`
	sel := parseOneSelect(t, sql)
	tbl, ok := sel.From[0].Relation.(*ast.Table)
	require.True(t, ok)
	assert.Nil(t, tbl.Alias, "bare table name directly followed by JOIN must not be misparsed as an alias")
}
