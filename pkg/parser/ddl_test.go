package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func TestClickHouseEngineOrderBy(t *testing.T) {
	sql := `CREATE TABLE t (a INT) ENGINE = MergeTree ORDER BY a`
	stmts, err := parser.ParseSQL(sql, "clickhouse")
	require.NoError(t, err)
	require.Len(t, stmts, 1)

	ct, ok := stmts[0].(*ast.CreateTable)
	require.True(t, ok)
	require.NotNil(t, ct.ClickHouse)
	require.NotNil(t, ct.ClickHouse.Engine)
	assert.Equal(t, "MergeTree", *ct.ClickHouse.Engine)
	require.Len(t, ct.ClickHouse.OrderBy, 1)
}

func TestClickHouseStandalonePrimaryKey(t *testing.T) {
	sql := `CREATE TABLE t (a INT, b INT) ENGINE = MergeTree PRIMARY KEY a ORDER BY a, b`
	stmts, err := parser.ParseSQL(sql, "clickhouse")
	require.NoError(t, err)
	ct := stmts[0].(*ast.CreateTable)
	require.NotNil(t, ct.ClickHouse.PrimaryKey)
	require.Len(t, ct.ClickHouse.OrderBy, 2)
}

func TestCreateTableColumnsAndConstraints(t *testing.T) {
	sql := `CREATE TABLE t (id INT PRIMARY KEY, name TEXT NOT NULL, UNIQUE (name))`
	stmts, err := parser.ParseSQL(sql, "generic")
	require.NoError(t, err)
	ct := stmts[0].(*ast.CreateTable)
	require.Len(t, ct.Columns, 2)
	require.Len(t, ct.Constraints, 1)
}

func TestAlterTableAddColumn(t *testing.T) {
	sql := `ALTER TABLE t ADD COLUMN x INT`
	stmts, err := parser.ParseSQL(sql, "generic")
	require.NoError(t, err)
	_, ok := stmts[0].(*ast.AlterTable)
	require.True(t, ok)
}

func TestDropTableIfExists(t *testing.T) {
	sql := `DROP TABLE IF EXISTS t, u`
	stmts, err := parser.ParseSQL(sql, "generic")
	require.NoError(t, err)
	drop, ok := stmts[0].(*ast.Drop)
	require.True(t, ok)
	assert.True(t, drop.IfExists)
	assert.Len(t, drop.Names, 2)
}
