package dialect

// DuckDB models DuckDB's grammar: it is the other dialect (besides
// ClickHouse and Generic) that natively supports map literals and lambda
// functions, and it accepts an empty IN-list as a literal empty set.
type DuckDB struct{ Base }

func (DuckDB) Name() string { return "duckdb" }

func (DuckDB) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsMapLiteralSyntax = true
	caps.SupportsLambdaFunctions = true
	caps.SupportsInEmptyList = true
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsTopBeforeDistinct = false
	caps.SupportsDictionarySyntax = false
	return caps
}

var _ Dialect = DuckDB{}
