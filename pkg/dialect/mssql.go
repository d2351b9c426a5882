package dialect

// MsSQL models T-SQL: TOP appears before DISTINCT, and CONNECT BY / MATCH
// RECOGNIZE are absent. Square-bracketed identifiers are lexed for every
// dialect; the legacy Oracle-style col(+) outer-join marker is not parsed.
type MsSQL struct{ Base }

func (MsSQL) Name() string { return "mssql" }

func (MsSQL) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsTopBeforeDistinct = true
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	caps.SupportsLambdaFunctions = false
	caps.SupportsParenthesizedSetVariables = false
	return caps
}

var _ Dialect = MsSQL{}
