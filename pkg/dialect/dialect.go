package dialect

import "github.com/nilbridge/sqlfront/pkg/ast"

// Capabilities is the flat descriptor of grammar toggles every concrete
// dialect populates. Per design note 9, capability queries go through plain
// data rather than virtual dispatch; only the five override hooks below use
// an interface, and those are reserved for constructs a flag can't express
// (a whole alternate production, not just an on/off switch).
type Capabilities struct {
	SupportsTrailingCommas                 bool
	SupportsProjectionTrailingCommas       bool
	SupportsFilterDuringAggregation        bool
	SupportsWindowFunctionNullTreatmentArg bool
	SupportsGroupByExpression              bool
	SupportsSubstringFromForExpression     bool
	SupportsMapLiteralSyntax               bool
	SupportsDictionarySyntax               bool
	SupportsLambdaFunctions                bool
	SupportsNamedFunctionArgsWithEqOperator bool
	SupportsSelectWildcardExcept            bool
	SupportsWindowClauseNamedWindowRef      bool
	SupportsConnectBy                       bool
	SupportsMatchRecognize                  bool
	SupportsInEmptyList                     bool
	SupportsParenthesizedSetVariables       bool
	SupportsStartTransactionModifier        bool
	SupportsEqualAliasAssignment            bool
	SupportsTopBeforeDistinct               bool
	SupportsCreateIndexWithClause           bool
	SupportsAscDescInColumnDefinition       bool
	ConvertTypeBeforeValue                  bool
	AllowExtractSingleQuotes                bool
}

// Dialect is the polymorphic object the core consults for capability flags
// and the five grammar-extension hooks. Concrete dialects embed Base and
// override only what differs from the permissive default.
type Dialect interface {
	Name() string
	Capabilities() Capabilities

	// ParsePrefix lets a dialect claim a prefix-position token the default
	// expression grammar doesn't recognize. Called before the core's own
	// prefix dispatch; returning Handled == false falls through to it.
	ParsePrefix(p ParserAPI) (PrefixResult, error)

	// ParseInfix lets a dialect claim an infix-position token the default
	// expression grammar doesn't recognize, or override the default
	// handling of one it does (e.g. a custom OPERATOR(...) spelling).
	ParseInfix(p ParserAPI, left ast.Expr, precedence int) (InfixResult, error)

	// GetNextPrecedence lets a dialect override the precedence assigned to
	// the upcoming operator token. A zero return with ok == false falls
	// through to the core's table.
	GetNextPrecedence(p ParserAPI) (prec int, ok bool)

	// ParseStatement lets a dialect claim a top-level keyword the default
	// statement dispatch doesn't recognize.
	ParseStatement(p ParserAPI) (StatementResult, error)

	// ParseColumnOption lets a dialect claim a column-definition option
	// keyword the default grammar doesn't recognize.
	ParseColumnOption(p ParserAPI) (ColumnOptionResult, error)
}
