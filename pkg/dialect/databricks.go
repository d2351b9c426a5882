package dialect

// Databricks models Databricks SQL, a Spark/Hive descendant: it keeps
// Hive's permissive trailing-comma and wildcard-except grammar but is
// otherwise close to the generic baseline.
type Databricks struct{ Base }

func (Databricks) Name() string { return "databricks" }

func (Databricks) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsSelectWildcardExcept = true
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsTopBeforeDistinct = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	return caps
}

var _ Dialect = Databricks{}
