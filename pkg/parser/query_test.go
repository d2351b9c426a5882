package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func TestWithRecursiveUnionAll(t *testing.T) {
	sql := `WITH RECURSIVE c(n) AS (SELECT 1 UNION ALL SELECT n+1 FROM c WHERE n<5) SELECT * FROM c`
	stmts, err := parser.ParseSQL(sql, "generic")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	qs, ok := stmts[0].(*ast.QueryStatement)
	require.True(t, ok)
	q := qs.Query
	require.NotNil(t, q.With)
	assert.True(t, q.With.Recursive)
	require.Len(t, q.With.CTEs, 1)
	assert.Equal(t, "c", q.With.CTEs[0].Alias.Name.Value)
	require.Len(t, q.With.CTEs[0].Alias.Columns, 1)
	assert.Equal(t, "n", q.With.CTEs[0].Alias.Columns[0].Value)

	setOp, ok := q.With.CTEs[0].Query.Body.(*ast.SetOperation)
	require.True(t, ok, "CTE body should be a set operation, got %T", q.With.CTEs[0].Query.Body)
	assert.Equal(t, ast.SetOpUnion, setOp.Op)
	assert.Equal(t, ast.SetQuantifierAll, setOp.Quantifier)

	sel, ok := q.Body.(*ast.Select)
	require.True(t, ok)
	require.Len(t, sel.From, 1)
}

func TestSetOperationLeftAssociative(t *testing.T) {
	sql := `SELECT 1 UNION SELECT 2 UNION SELECT 3`
	stmts, err := parser.ParseSQL(sql, "generic")
	require.NoError(t, err)
	qs := stmts[0].(*ast.QueryStatement)

	top, ok := qs.Query.Body.(*ast.SetOperation)
	require.True(t, ok)
	// left-associative: ((1 UNION 2) UNION 3)
	_, ok = top.Left.(*ast.SetOperation)
	assert.True(t, ok, "left operand of the outer UNION should itself be a SetOperation")
	_, ok = top.Right.(*ast.Select)
	assert.True(t, ok, "right operand of the outer UNION should be the plain SELECT 3")
}

func TestInsertOnConflictDoUpdate(t *testing.T) {
	sql := `INSERT INTO t(a,b) VALUES (1,2),(3,4) ON CONFLICT (a) DO UPDATE SET b = EXCLUDED.b`
	stmts, err := parser.ParseSQL(sql, "postgresql")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	ins, ok := stmts[0].(*ast.Insert)
	require.True(t, ok)
	require.Len(t, ins.Columns, 2)
	assert.Equal(t, "a", ins.Columns[0].Value)
	assert.Equal(t, "b", ins.Columns[1].Value)

	require.NotNil(t, ins.Source)
	values, ok := ins.Source.Query.Body.(*ast.ValuesList)
	require.True(t, ok)
	require.Len(t, values.Rows, 2)

	require.NotNil(t, ins.OnConflict)
	require.NotNil(t, ins.OnConflict.Target)
	require.Len(t, ins.OnConflict.Target.Columns, 1)
	assert.Equal(t, "a", ins.OnConflict.Target.Columns[0].Value)
	assert.Equal(t, ast.OnConflictDoUpdate, ins.OnConflict.Action)
	require.Len(t, ins.OnConflict.Assignments, 1)
}

func TestMergeMatchedAndNotMatched(t *testing.T) {
	sql := `MERGE INTO t USING s ON t.k = s.k
		WHEN MATCHED THEN UPDATE SET t.v = s.v
		WHEN NOT MATCHED THEN INSERT (k,v) VALUES (s.k,s.v)`
	stmts, err := parser.ParseSQL(sql, "generic")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	merge, ok := stmts[0].(*ast.Merge)
	require.True(t, ok)
	require.Len(t, merge.Clauses, 2)
}

func TestDistinctAllConflictIsAnError(t *testing.T) {
	_, err := parser.ParseSQL("SELECT DISTINCT ALL x", "generic")
	require.Error(t, err)
}

func TestReplaceReusesInsertGrammar(t *testing.T) {
	stmts, err := parser.ParseSQL("REPLACE INTO t(a) VALUES (1)", "mysql")
	require.NoError(t, err)
	ins, ok := stmts[0].(*ast.Insert)
	require.True(t, ok)
	assert.True(t, ins.Replace)
}

func TestMultiStatementCountMatchesSemicolons(t *testing.T) {
	stmts, err := parser.ParseSQL("SELECT 1; SELECT 2; SELECT 3", "generic")
	require.NoError(t, err)
	assert.Len(t, stmts, 3)
}

func TestTrailingSemicolonOptional(t *testing.T) {
	stmts, err := parser.ParseSQL("SELECT 1;", "generic")
	require.NoError(t, err)
	assert.Len(t, stmts, 1)
}
