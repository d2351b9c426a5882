package dialect

// MySQL models MySQL/MariaDB grammar: backtick identifiers, `:=` assignment
// inside SET, and no window-clause named-window references or FILTER
// during aggregation.
type MySQL struct{ Base }

func (MySQL) Name() string { return "mysql" }

func (MySQL) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsFilterDuringAggregation = false
	caps.SupportsWindowClauseNamedWindowRef = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	caps.SupportsLambdaFunctions = false
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsTopBeforeDistinct = false
	caps.ConvertTypeBeforeValue = true
	return caps
}

var _ Dialect = MySQL{}
