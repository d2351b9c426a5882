package ast

// DataType is the sum type produced by the type parser. Dialect-parametric
// shapes (FixedString, DateTime64, Map, Tuple, LowCardinality, ...) live
// alongside the SQL-standard ones; a dialect simply never emits the shapes
// its grammar doesn't recognize.
type DataType interface {
	Node
	dataType()
}

type baseType struct{}

func (baseType) node()     {}
func (baseType) dataType() {}

// NamedType is a bare type keyword with no parameters: INT, BOOLEAN, TEXT...
type NamedType struct {
	baseType
	Name string
}

// SizedType is a type parameterized by one optional length/precision:
// VARCHAR(n), CHAR(n), BINARY(n), FLOAT(p).
type SizedType struct {
	baseType
	Name string
	Size *uint64
}

// NumericType covers DECIMAL/NUMERIC(precision, scale) shapes.
type NumericType struct {
	baseType
	Name      string
	Precision *uint64
	Scale     *uint64
}

// TimeType covers TIME/TIMESTAMP [(precision)] [WITH[OUT] TIME ZONE].
type TimeType struct {
	baseType
	Name          string
	Precision     *uint64
	WithTimeZone  bool
	WithoutTZGiven bool
}

// ArrayType is T[] or T[n] (Postgres/DuckDB) depending on WithLength.
type ArrayType struct {
	baseType
	Element    DataType
	WithLength bool
	Length     *uint64
}

// ArrayOfType is the ARRAY<T> / ARRAY(T) spelling (BigQuery/DuckDB).
type ArrayOfType struct {
	baseType
	Element DataType
}

// MapType is Map<K,V> (ClickHouse/DuckDB).
type MapType struct {
	baseType
	Key   DataType
	Value DataType
}

// TupleField is one named-or-positional member of a Tuple(...) type.
type TupleField struct {
	Name *string
	Type DataType
}

// TupleType is Tuple(T1, T2, ...) or Tuple(name1 T1, name2 T2, ...) (ClickHouse).
type TupleType struct {
	baseType
	Fields []TupleField
}

// NullableType is Nullable(T) (ClickHouse).
type NullableType struct {
	baseType
	Inner DataType
}

// LowCardinalityType is LowCardinality(T) (ClickHouse).
type LowCardinalityType struct {
	baseType
	Inner DataType
}

// FixedStringType is FixedString(n) (ClickHouse).
type FixedStringType struct {
	baseType
	Length uint64
}

// DateTime64Type is DateTime64(precision[, tz]) (ClickHouse).
type DateTime64Type struct {
	baseType
	Precision uint64
	TZ        *string
}

// StructField is one named member of a STRUCT<...> type.
type StructField struct {
	Name *string
	Type DataType
}

// StructType is STRUCT<name TYPE, ...> (BigQuery/DuckDB) or ROW(...).
type StructType struct {
	baseType
	Fields []StructField
}

// UnionType is a UNION of alternative member types (DuckDB).
type UnionType struct {
	baseType
	Fields []StructField
}

// CustomType is an ObjectName the type parser didn't recognize as a builtin;
// used for user-defined types and enum/domain references.
type CustomType struct {
	baseType
	Name ObjectName
	Args []string
}
