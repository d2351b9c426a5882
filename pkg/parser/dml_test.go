package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func TestUpdateFromWhereReturning(t *testing.T) {
	sql := `UPDATE t SET a = 1, b = 2 FROM s WHERE t.id = s.id RETURNING t.id`
	stmts, err := parser.ParseSQL(sql, "postgresql")
	require.NoError(t, err)
	u, ok := stmts[0].(*ast.Update)
	require.True(t, ok, "expected UPDATE, got %T", stmts[0])
	require.Len(t, u.Assignments, 2)
	require.Len(t, u.From, 1)
	require.NotNil(t, u.Where)
	require.Len(t, u.Returning, 1)
}

func TestUpdateMultiColumnAssignment(t *testing.T) {
	sql := `UPDATE t SET (a, b) = (1, 2)`
	stmts, err := parser.ParseSQL(sql, "postgresql")
	require.NoError(t, err)
	u := stmts[0].(*ast.Update)
	require.Len(t, u.Assignments, 1)
	require.Len(t, u.Assignments[0].Target, 2)
	assert.Equal(t, "a", u.Assignments[0].Target[0].Value)
	assert.Equal(t, "b", u.Assignments[0].Target[1].Value)
}

func TestDeleteMultiTableUsingJoin(t *testing.T) {
	sql := `DELETE t1, t2 FROM t1 JOIN t2 ON t1.id = t2.id WHERE t1.x = 1`
	stmts, err := parser.ParseSQL(sql, "mysql")
	require.NoError(t, err)
	d, ok := stmts[0].(*ast.Delete)
	require.True(t, ok, "expected DELETE, got %T", stmts[0])
	require.Len(t, d.Tables, 2)
	require.Len(t, d.From, 1)
	require.Len(t, d.From[0].Joins, 1)
	require.NotNil(t, d.Where)
}

func TestDeleteOrderByLimit(t *testing.T) {
	sql := `DELETE FROM t WHERE x > 1 ORDER BY x LIMIT 10`
	stmts, err := parser.ParseSQL(sql, "mysql")
	require.NoError(t, err)
	d := stmts[0].(*ast.Delete)
	require.Len(t, d.OrderBy, 1)
	require.NotNil(t, d.Limit)
}

func TestInsertOnDuplicateKeyUpdate(t *testing.T) {
	sql := `INSERT INTO t (a, b) VALUES (1, 2) ON DUPLICATE KEY UPDATE b = VALUES(b)`
	stmts, err := parser.ParseSQL(sql, "mysql")
	require.NoError(t, err)
	ins := stmts[0].(*ast.Insert)
	require.NotNil(t, ins.OnDuplicateKeyUpdate)
	require.Len(t, ins.OnDuplicateKeyUpdate.Assignments, 1)
}

func TestInsertIgnoreAndSqliteConflictClause(t *testing.T) {
	sql := `INSERT OR IGNORE INTO t (a) VALUES (1)`
	stmts, err := parser.ParseSQL(sql, "sqlite")
	require.NoError(t, err)
	ins := stmts[0].(*ast.Insert)
	assert.Equal(t, ast.SqliteConflictIgnore, ins.SqliteConflict)
}

func TestInsertDefaultValues(t *testing.T) {
	sql := `INSERT INTO t DEFAULT VALUES`
	stmts, err := parser.ParseSQL(sql, "postgresql")
	require.NoError(t, err)
	ins := stmts[0].(*ast.Insert)
	require.NotNil(t, ins.Source)
	assert.True(t, ins.Source.HasDefaultValues)
}

func TestMergeDeleteClause(t *testing.T) {
	sql := `MERGE INTO t USING s ON t.k = s.k WHEN MATCHED AND s.deleted THEN DELETE`
	stmts, err := parser.ParseSQL(sql, "generic")
	require.NoError(t, err)
	m := stmts[0].(*ast.Merge)
	require.Len(t, m.Clauses, 1)
	c := m.Clauses[0]
	assert.Equal(t, ast.MergeMatched, c.Match)
	assert.Equal(t, ast.MergeDelete, c.Kind)
	require.NotNil(t, c.Predicate)
}

func TestMergeNotMatchedBySourceClause(t *testing.T) {
	sql := `MERGE INTO t USING s ON t.k = s.k WHEN NOT MATCHED BY SOURCE THEN DELETE`
	stmts, err := parser.ParseSQL(sql, "mssql")
	require.NoError(t, err)
	m := stmts[0].(*ast.Merge)
	require.Len(t, m.Clauses, 1)
	assert.Equal(t, ast.MergeNotMatchedBySource, m.Clauses[0].Match)
}
