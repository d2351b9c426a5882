package dialect

// SQLite models SQLite's grammar. Notably permissive about trailing commas
// and empty IN lists are a theoretical case; SQLite has no true window
// named-window refs and no FILTER clause ordering ambiguity to speak of.
type SQLite struct{ Base }

func (SQLite) Name() string { return "sqlite" }

func (SQLite) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsWindowClauseNamedWindowRef = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	caps.SupportsLambdaFunctions = false
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsTopBeforeDistinct = false
	return caps
}

var _ Dialect = SQLite{}
