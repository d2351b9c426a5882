package dialect

// BigQuery models BigQuery's GoogleSQL grammar: SELECT * EXCEPT/REPLACE,
// backtick-quoted project.dataset.table identifiers, and struct/array
// literals are native; CONNECT BY and MATCH_RECOGNIZE are absent.
type BigQuery struct{ Base }

func (BigQuery) Name() string { return "bigquery" }

func (BigQuery) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsSelectWildcardExcept = true
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsTopBeforeDistinct = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	caps.SupportsLambdaFunctions = false
	return caps
}

var _ Dialect = BigQuery{}
