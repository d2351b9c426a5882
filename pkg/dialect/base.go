package dialect

import "github.com/nilbridge/sqlfront/pkg/ast"

// Base is embedded by every concrete dialect to supply no-op defaults for
// the five override hooks. A dialect that embeds Base and only implements
// Name() and Capabilities() gets the core's default grammar everywhere.
type Base struct{}

// ParsePrefix never claims a token by default.
func (Base) ParsePrefix(ParserAPI) (PrefixResult, error) { return PrefixResult{}, nil }

// ParseInfix never claims a token by default.
func (Base) ParseInfix(ParserAPI, ast.Expr, int) (InfixResult, error) {
	return InfixResult{}, nil
}

// GetNextPrecedence defers to the core's table by default.
func (Base) GetNextPrecedence(ParserAPI) (int, bool) { return 0, false }

// ParseStatement never claims a keyword by default.
func (Base) ParseStatement(ParserAPI) (StatementResult, error) {
	return StatementResult{}, nil
}

// ParseColumnOption never claims a keyword by default.
func (Base) ParseColumnOption(ParserAPI) (ColumnOptionResult, error) {
	return ColumnOptionResult{}, nil
}

// genericCapabilities is the permissive baseline most concrete dialects
// start from, loosening or tightening individual flags from there.
func genericCapabilities() Capabilities {
	return Capabilities{
		SupportsTrailingCommas:                 true,
		SupportsProjectionTrailingCommas:       true,
		SupportsFilterDuringAggregation:        true,
		SupportsWindowFunctionNullTreatmentArg: true,
		SupportsGroupByExpression:              true,
		SupportsSubstringFromForExpression:     true,
		SupportsMapLiteralSyntax:               false,
		SupportsDictionarySyntax:               false,
		SupportsLambdaFunctions:                false,
		SupportsNamedFunctionArgsWithEqOperator: true,
		SupportsSelectWildcardExcept:            true,
		SupportsWindowClauseNamedWindowRef:      true,
		SupportsConnectBy:                       false,
		SupportsMatchRecognize:                  false,
		SupportsInEmptyList:                     true,
		SupportsParenthesizedSetVariables:       true,
		SupportsStartTransactionModifier:        true,
		SupportsEqualAliasAssignment:            true,
		SupportsTopBeforeDistinct:               false,
		SupportsCreateIndexWithClause:            true,
		SupportsAscDescInColumnDefinition:        false,
		ConvertTypeBeforeValue:                   false,
		AllowExtractSingleQuotes:                 false,
	}
}
