package dialect

// Snowflake models Snowflake's grammar: the CONNECT BY and MATCH_RECOGNIZE
// capability flags are set. The legacy Oracle-style col(+) outer-join marker
// is not parsed.
type Snowflake struct{ Base }

func (Snowflake) Name() string { return "snowflake" }

func (Snowflake) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsConnectBy = true
	caps.SupportsMatchRecognize = true
	caps.SupportsTopBeforeDistinct = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	caps.SupportsLambdaFunctions = false
	return caps
}

var _ Dialect = Snowflake{}
