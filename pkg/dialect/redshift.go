package dialect

// Redshift models Amazon Redshift, a Postgres fork: it inherits Postgres's
// capability set but drops window-clause named-window references, which
// Redshift's planner never adopted.
type Redshift struct{ Base }

func (Redshift) Name() string { return "redshift" }

func (Redshift) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsTopBeforeDistinct = false
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsWindowClauseNamedWindowRef = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	caps.SupportsLambdaFunctions = false
	return caps
}

var _ Dialect = Redshift{}
