package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/parser"
)

func columnType(t *testing.T, sql, dialectName string) ast.DataType {
	t.Helper()
	stmts, err := parser.ParseSQL(sql, dialectName)
	require.NoError(t, err)
	ct, ok := stmts[0].(*ast.CreateTable)
	require.True(t, ok, "expected CREATE TABLE, got %T", stmts[0])
	require.Len(t, ct.Columns, 1)
	return ct.Columns[0].Type
}

func TestNumericTypePrecisionScale(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a DECIMAL(10, 2))", "generic")
	nt, ok := dt.(*ast.NumericType)
	require.True(t, ok, "expected NumericType, got %T", dt)
	require.NotNil(t, nt.Precision)
	require.NotNil(t, nt.Scale)
	assert.EqualValues(t, 10, *nt.Precision)
	assert.EqualValues(t, 2, *nt.Scale)
}

func TestSizedTypeVarchar(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a VARCHAR(255))", "generic")
	st, ok := dt.(*ast.SizedType)
	require.True(t, ok, "expected SizedType, got %T", dt)
	require.NotNil(t, st.Size)
	assert.EqualValues(t, 255, *st.Size)
}

func TestTimeTypeWithTimeZone(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a TIMESTAMP(3) WITH TIME ZONE)", "postgresql")
	tt, ok := dt.(*ast.TimeType)
	require.True(t, ok, "expected TimeType, got %T", dt)
	require.NotNil(t, tt.Precision)
	assert.EqualValues(t, 3, *tt.Precision)
	assert.True(t, tt.WithTimeZone)
}

func TestArraySuffixNesting(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a INT[][3])", "postgresql")
	outer, ok := dt.(*ast.ArrayType)
	require.True(t, ok, "expected ArrayType, got %T", dt)
	require.NotNil(t, outer.Length)
	assert.EqualValues(t, 3, *outer.Length)

	inner, ok := outer.Element.(*ast.ArrayType)
	require.True(t, ok, "expected nested ArrayType, got %T", outer.Element)
	assert.False(t, inner.WithLength)
}

func TestBigQueryArrayOfAngleBrackets(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a ARRAY<INT64>)", "bigquery")
	arr, ok := dt.(*ast.ArrayOfType)
	require.True(t, ok, "expected ArrayOfType, got %T", dt)
	_, ok = arr.Element.(*ast.NamedType)
	assert.True(t, ok)
}

func TestBigQueryStructFields(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a STRUCT<x INT64, y STRING>)", "bigquery")
	st, ok := dt.(*ast.StructType)
	require.True(t, ok, "expected StructType, got %T", dt)
	require.Len(t, st.Fields, 2)
	require.NotNil(t, st.Fields[0].Name)
	assert.Equal(t, "x", *st.Fields[0].Name)
	require.NotNil(t, st.Fields[1].Name)
	assert.Equal(t, "y", *st.Fields[1].Name)
}

func TestClickHouseNullableLowCardinalityFixedString(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a Nullable(FixedString(16)))", "clickhouse")
	nt, ok := dt.(*ast.NullableType)
	require.True(t, ok, "expected NullableType, got %T", dt)
	fs, ok := nt.Inner.(*ast.FixedStringType)
	require.True(t, ok, "expected FixedStringType, got %T", nt.Inner)
	assert.EqualValues(t, 16, fs.Length)
}

func TestClickHouseDateTime64WithTimezone(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a DateTime64(3, 'UTC'))", "clickhouse")
	d64, ok := dt.(*ast.DateTime64Type)
	require.True(t, ok, "expected DateTime64Type, got %T", dt)
	assert.EqualValues(t, 3, d64.Precision)
	require.NotNil(t, d64.TZ)
	assert.Equal(t, "UTC", *d64.TZ)
}

func TestClickHouseTupleNamedFields(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a Tuple(x Int32, y String))", "clickhouse")
	tup, ok := dt.(*ast.TupleType)
	require.True(t, ok, "expected TupleType, got %T", dt)
	require.Len(t, tup.Fields, 2)
	require.NotNil(t, tup.Fields[0].Name)
	assert.Equal(t, "x", *tup.Fields[0].Name)
}

func TestMapTypeKeyValue(t *testing.T) {
	dt := columnType(t, "CREATE TABLE t (a MAP<STRING, INT64>)", "bigquery")
	mt, ok := dt.(*ast.MapType)
	require.True(t, ok, "expected MapType, got %T", dt)
	_, ok = mt.Key.(*ast.NamedType)
	assert.True(t, ok)
	_, ok = mt.Value.(*ast.NamedType)
	assert.True(t, ok)
}
