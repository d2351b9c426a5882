package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/dialect"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func parseOneSelect(t *testing.T, sql string, dialectName ...string) *ast.Select {
	t.Helper()
	d := "generic"
	if len(dialectName) > 0 {
		d = dialectName[0]
	}
	stmts, err := parser.ParseSQL(sql, d)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	qs, ok := stmts[0].(*ast.QueryStatement)
	require.True(t, ok, "expected a query statement, got %T", stmts[0])
	sel, ok := qs.Query.Body.(*ast.Select)
	require.True(t, ok, "expected a SELECT body, got %T", qs.Query.Body)
	return sel
}

func TestPrecedenceMultiplyBeforeAdd(t *testing.T) {
	sel := parseOneSelect(t, "SELECT 1 + 2 * 3")
	require.Len(t, sel.Projection, 1)
	bin, ok := sel.Projection[0].Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpPlus, bin.Op)

	rhs, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok, "right side of + should be a nested * expression")
	assert.Equal(t, ast.OpMultiply, rhs.Op)
}

func TestPrecedenceAndBeforeOr(t *testing.T) {
	sel := parseOneSelect(t, "SELECT x WHERE a OR b AND c")
	bin, ok := sel.Where.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpOr, bin.Op)

	rhs, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok, "right side of OR should be the AND subtree")
	assert.Equal(t, ast.OpAnd, rhs.Op)
}

func TestPrecedenceAndBeforeComparison(t *testing.T) {
	sel := parseOneSelect(t, "SELECT x WHERE a AND b = c")
	bin, ok := sel.Where.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, bin.Op)

	rhs, ok := bin.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpEq, rhs.Op)
}

func TestNotInBindsTighterThanNot(t *testing.T) {
	sel := parseOneSelect(t, "SELECT x WHERE NOT a IN (1, 2)")
	un, ok := sel.Where.(*ast.UnaryOp)
	require.True(t, ok, "expected NOT to wrap the whole IN expression, got %T", sel.Where)
	assert.Equal(t, ast.OpNot, un.Op)

	_, ok = un.Expr.(*ast.InList)
	require.True(t, ok, "NOT's operand should be the IN-list expression")
}

func TestBetweenBindsTighterThanOr(t *testing.T) {
	sel := parseOneSelect(t, "SELECT x WHERE a BETWEEN b AND c OR d")
	bin, ok := sel.Where.(*ast.BinaryOp)
	require.True(t, ok, "expected top-level OR, got %T", sel.Where)
	assert.Equal(t, ast.OpOr, bin.Op)

	_, ok = bin.Left.(*ast.Between)
	require.True(t, ok, "left side of OR should be the BETWEEN expression")
}

func TestWhereBetweenAnd(t *testing.T) {
	sel := parseOneSelect(t, "SELECT a FROM t WHERE x BETWEEN 1 AND 2 AND y")
	bin, ok := sel.Where.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OpAnd, bin.Op)

	between, ok := bin.Left.(*ast.Between)
	require.True(t, ok)
	assert.False(t, between.Negated)

	_, ok = bin.Right.(*ast.Identifier)
	require.True(t, ok)
}

func TestCastAndDoubleColonCastAgree(t *testing.T) {
	sel := parseOneSelect(t, "SELECT CAST(x AS INTEGER), x::BIGINT FROM t")
	require.Len(t, sel.Projection, 2)

	c1, ok := sel.Projection[0].Expr.(*ast.Cast)
	require.True(t, ok)
	assert.Equal(t, ast.CastKindCast, c1.Kind)

	c2, ok := sel.Projection[1].Expr.(*ast.Cast)
	require.True(t, ok)
	assert.Equal(t, ast.CastKindCast, c2.Kind)
}

func TestExtractSubstringTrim(t *testing.T) {
	sel := parseOneSelect(t, "SELECT EXTRACT(YEAR FROM d), SUBSTRING(s FROM 1 FOR 3), TRIM(BOTH ' ' FROM s) FROM t")
	require.Len(t, sel.Projection, 3)

	_, ok := sel.Projection[0].Expr.(*ast.Extract)
	assert.True(t, ok, "expected Extract, got %T", sel.Projection[0].Expr)

	_, ok = sel.Projection[1].Expr.(*ast.Substring)
	assert.True(t, ok, "expected Substring, got %T", sel.Projection[1].Expr)

	_, ok = sel.Projection[2].Expr.(*ast.Trim)
	assert.True(t, ok, "expected Trim, got %T", sel.Projection[2].Expr)
}

func TestRegexpOperatorIsConsumedAsInfix(t *testing.T) {
	sel := parseOneSelect(t, "SELECT a REGEXP 'x' FROM t")
	require.Len(t, sel.Projection, 1)
	like, ok := sel.Projection[0].Expr.(*ast.Like)
	require.True(t, ok, "expected Like, got %T", sel.Projection[0].Expr)
	assert.Equal(t, ast.LikeKindRLike, like.Kind)
	assert.False(t, like.Negated)
}

func TestNotRegexpOperatorIsConsumedAsInfix(t *testing.T) {
	sel := parseOneSelect(t, "SELECT a NOT REGEXP 'x' FROM t")
	require.Len(t, sel.Projection, 1)
	like, ok := sel.Projection[0].Expr.(*ast.Like)
	require.True(t, ok, "expected Like, got %T", sel.Projection[0].Expr)
	assert.Equal(t, ast.LikeKindRLike, like.Kind)
	assert.True(t, like.Negated)
}

func TestComparisonBindsTighterThanLike(t *testing.T) {
	sel := parseOneSelect(t, "SELECT a = b LIKE c FROM t")
	require.Len(t, sel.Projection, 1)
	like, ok := sel.Projection[0].Expr.(*ast.Like)
	require.True(t, ok, "expected the top-level expr to be the LIKE, got %T", sel.Projection[0].Expr)
	cmp, ok := like.Expr.(*ast.BinaryOp)
	require.True(t, ok, "expected comparison to bind tighter and sit under LIKE, got %T", like.Expr)
	assert.Equal(t, ast.OpEq, cmp.Op)
}

func TestUnmatchedParenIsExpectedRParenError(t *testing.T) {
	_, err := parser.ParseSQL("SELECT (1 + 2", "generic")
	require.Error(t, err)
}

func TestRecursionLimitExceeded(t *testing.T) {
	sql := "SELECT "
	for i := 0; i < 60; i++ {
		sql += "("
	}
	sql += "1"
	for i := 0; i < 60; i++ {
		sql += ")"
	}

	d, ok := dialect.Get("generic")
	require.True(t, ok)
	_, err := parser.WithSQL(sql, d, parser.Options{RecursionLimit: 10})
	require.Error(t, err)
	_, ok = err.(*parser.RecursionLimitExceeded)
	assert.True(t, ok, "expected RecursionLimitExceeded, got %T: %v", err, err)
}
