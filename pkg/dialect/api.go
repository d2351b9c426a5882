// Package dialect defines the capability-flag and override-hook contract
// the statement and expression parsers consult to accept or reject
// vendor-specific grammar without forking the parsing engine itself.
//
// Concrete dialects are zero-sized tagged values (Generic, Postgres, MySQL,
// ...); the core borrows a Dialect through this package's interface for the
// duration of a single ParseSQL call and never retains it afterward.
package dialect

import (
	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

// ParserAPI is the surface of the parser that dialect override hooks are
// allowed to call back into. Declaring it here (rather than having this
// package import the parser package) keeps the dependency one-directional:
// parser imports dialect, dialect imports only ast and token.
type ParserAPI interface {
	Token() token.Token
	PeekToken() token.Token
	PeekNthToken(n int) token.Token
	NextToken() token.Token
	ParseExpr() (ast.Expr, error)
	ParseSubExpr(minPrecedence int) (ast.Expr, error)
	ParseExprList() ([]ast.Expr, error)
	ParseIdentifier() (ast.Ident, error)
	ParseObjectName() (ast.ObjectName, error)
	ParseDataType() (ast.DataType, error)
	ExpectKeyword(k token.Keyword) error
	ParseKeyword(k token.Keyword) bool
	Fail(format string, args ...any) error
}

// PrefixResult is returned by ParsePrefix when a dialect recognizes a
// construct the default prefix grammar does not.
type PrefixResult struct {
	Expr    ast.Expr
	Handled bool
}

// InfixResult is returned by ParseInfix when a dialect recognizes an infix
// operator the default grammar does not.
type InfixResult struct {
	Expr    ast.Expr
	Handled bool
}

// StatementResult is returned by ParseStatement when a dialect recognizes a
// top-level statement form the default grammar does not.
type StatementResult struct {
	Statement ast.Statement
	Handled   bool
}

// ColumnOptionResult is returned by ParseColumnOption when a dialect
// recognizes a column-definition option the default grammar does not.
type ColumnOptionResult struct {
	Option  *ast.ColumnOption
	Handled bool
}
