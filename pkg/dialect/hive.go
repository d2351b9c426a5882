package dialect

// Hive models Apache Hive's grammar: LATERAL VIEW and CLUSTER/DISTRIBUTE/
// SORT BY are accepted by the statement grammar directly; this dialect
// mainly disables the constructs Hive never picked up from the Oracle/
// Snowflake lineage.
type Hive struct{ Base }

func (Hive) Name() string { return "hive" }

func (Hive) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsConnectBy = false
	caps.SupportsMatchRecognize = false
	caps.SupportsTopBeforeDistinct = false
	caps.SupportsMapLiteralSyntax = false
	caps.SupportsDictionarySyntax = false
	caps.SupportsLambdaFunctions = false
	caps.SupportsWindowFunctionNullTreatmentArg = false
	return caps
}

var _ Dialect = Hive{}
