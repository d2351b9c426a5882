package dialect

// ClickHouse models ClickHouse's grammar: map literals, lambda functions
// (arrow syntax in higher-order array functions), and the dictionary
// literal syntax it uses for nested settings are all native here.
type ClickHouse struct{ Base }

func (ClickHouse) Name() string { return "clickhouse" }

func (ClickHouse) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsMapLiteralSyntax = true
	caps.SupportsDictionarySyntax = true
	caps.SupportsLambdaFunctions = true
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsTopBeforeDistinct = false
	return caps
}

var _ Dialect = ClickHouse{}
