package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func TestLambdaAcceptedUnderDuckDB(t *testing.T) {
	sql := `SELECT list_transform(xs, x -> x + 1) FROM t`
	stmts, err := parser.ParseSQL(sql, "duckdb")
	require.NoError(t, err)
	sel := stmts[0].(*ast.QueryStatement).Query.Body.(*ast.Select)
	fn := sel.Projection[0].Expr.(*ast.Function)
	require.Len(t, fn.Args.List.Args, 2)
	_, ok := fn.Args.List.Args[1].Value.(*ast.Lambda)
	assert.True(t, ok, "expected Lambda, got %T", fn.Args.List.Args[1].Value)
}

func TestLambdaRejectedUnderPostgres(t *testing.T) {
	sql := `SELECT list_transform(xs, x -> x + 1) FROM t`
	_, err := parser.ParseSQL(sql, "postgresql")
	require.Error(t, err, "postgres does not enable lambda functions, `->` should parse as the JSON operator and fail on `x + 1` syntax")
}

func TestCreateTableMergeTreeUnderClickHouse(t *testing.T) {
	sql := `CREATE TABLE t (a INT) ENGINE = MergeTree ORDER BY a`
	_, err := parser.ParseSQL(sql, "clickhouse")
	require.NoError(t, err)
}

func TestMergeAcceptedAcrossDialects(t *testing.T) {
	sql := `MERGE INTO t USING s ON t.k = s.k WHEN MATCHED THEN UPDATE SET t.v = s.v WHEN NOT MATCHED THEN INSERT (k,v) VALUES (s.k,s.v)`
	for _, d := range []string{"generic", "postgresql", "snowflake", "bigquery"} {
		_, err := parser.ParseSQL(sql, d)
		require.NoError(t, err, "dialect %s should accept MERGE", d)
	}
}

func TestConnectByOnlyUnderSupportingDialect(t *testing.T) {
	sql := `SELECT employee_id, PRIOR employee_id FROM employees START WITH manager_id IS NULL CONNECT BY PRIOR employee_id = manager_id`
	_, err := parser.ParseSQL(sql, "snowflake")
	require.NoError(t, err, "snowflake enables CONNECT BY")

	_, err = parser.ParseSQL(sql, "postgresql")
	require.Error(t, err, "postgres has no CONNECT BY production")
}

func TestUnknownDialectNameIsAnError(t *testing.T) {
	_, err := parser.ParseSQL("SELECT 1", "not-a-real-dialect")
	require.Error(t, err)
}
