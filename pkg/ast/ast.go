// Package ast defines the closed set of value types the parser emits:
// statements, expressions, queries, table factors, constraints, and
// options. Nothing in this package parses; it only carries data.
//
// Every node here is a plain data carrier. Recursive fields are boxed as
// pointers (*Expr-shaped interfaces already behave like boxes in Go) so the
// tree can be built bottom-up without knowing its own size in advance.
package ast

import "github.com/nilbridge/sqlfront/pkg/token"

// Node is implemented by every AST value so generic tooling (formatters,
// visitors, linters) can walk the tree without a type switch on every call
// site needing to know the full set of node kinds up front.
type Node interface {
	node()
}

// Statement is the sum type of every top-level production the parser can
// return from ParseStatements.
type Statement interface {
	Node
	stmt()
}

// Expr is the sum type of every expression-parser production.
type Expr interface {
	Node
	expr()
}

// Ident is a single, possibly quoted, identifier part.
type Ident struct {
	Value      string
	QuoteStyle byte // 0 if unquoted
	Span       token.Position
}

func (Ident) node() {}

// ObjectName is a dotted sequence of identifiers: catalog.schema.table.
type ObjectName struct {
	Parts []Ident
}

func (ObjectName) node() {}

func (o ObjectName) String() string {
	s := ""
	for i, p := range o.Parts {
		if i > 0 {
			s += "."
		}
		s += p.Value
	}
	return s
}
