package dialect

// Generic is the permissive catch-all dialect used when a caller has no
// specific vendor in mind. It enables every Supports* capability flag this
// package models, on the theory that over-accepting generic SQL is safer
// for a library caller than silently rejecting a valid statement;
// ConvertTypeBeforeValue and AllowExtractSingleQuotes stay off.
type Generic struct{ Base }

func (Generic) Name() string { return "generic" }

func (Generic) Capabilities() Capabilities {
	caps := genericCapabilities()
	caps.SupportsMapLiteralSyntax = true
	caps.SupportsDictionarySyntax = true
	caps.SupportsLambdaFunctions = true
	caps.SupportsConnectBy = true
	caps.SupportsMatchRecognize = true
	caps.SupportsTopBeforeDistinct = true
	caps.SupportsAscDescInColumnDefinition = true
	return caps
}

var _ Dialect = Generic{}
