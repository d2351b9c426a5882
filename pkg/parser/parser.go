// Package parser implements the dialect-parameterized SQL parser: a
// hand-written Pratt expression engine plus a recursive-descent statement
// grammar, both consulting a dialect.Dialect for capability flags and
// grammar-extension hooks.
package parser

import (
	"fmt"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/dialect"
	"github.com/nilbridge/sqlfront/pkg/lexer"
	"github.com/nilbridge/sqlfront/pkg/token"
)

// Parser holds the token stream and parsing state for one ParseSQL call.
// It is not safe for concurrent use, and is not meant to outlive the call
// that created it.
type Parser struct {
	tokens  []token.Token
	index   int
	dialect dialect.Dialect
	opts    Options
	depth   int
}

var _ dialect.ParserAPI = (*Parser)(nil)

// New builds a Parser over sql for the given dialect. It lexes the entire
// input up front; SQL text is expected to be small enough (a single
// statement, or a short batch) that streaming tokenization buys nothing.
func New(sql string, d dialect.Dialect, opts Options) *Parser {
	lx := lexer.New(sql, opts.Unescape)
	var toks []token.Token
	for {
		tok := lx.NextToken()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &Parser{tokens: toks, dialect: d, opts: opts}
}

// ParseSQL parses sql as a semicolon-separated sequence of statements using
// the named dialect. An unknown dialect name is an error rather than a
// silent fallback to Generic.
func ParseSQL(sql string, dialectName string) ([]ast.Statement, error) {
	d, ok := dialect.Get(dialectName)
	if !ok {
		return nil, &Error{Message: "unknown dialect: " + dialectName}
	}
	return WithSQL(sql, d, Options{})
}

// WithSQL parses sql using an already-resolved Dialect value and explicit
// Options, for callers that want control over recursion limits or escape
// handling.
func WithSQL(sql string, d dialect.Dialect, opts Options) ([]ast.Statement, error) {
	p := New(sql, d, opts)
	return p.ParseStatements()
}

// ParseStatements consumes the entire token stream as a sequence of
// semicolon-terminated statements.
func (p *Parser) ParseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		for p.consumeKind(token.SemiColon) {
		}
		if p.Token().Kind == token.EOF {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.Token().Kind != token.SemiColon && p.Token().Kind != token.EOF {
			return nil, p.errorf("expected end of statement, found %s", p.Token())
		}
	}
	return stmts, nil
}

// --- token cursor primitives ---

// Token returns the token at the cursor without advancing.
func (p *Parser) Token() token.Token { return p.tokenAt(p.index) }

func (p *Parser) tokenAt(i int) token.Token {
	if i < 0 {
		i = 0
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF sentinel, always last
	}
	return p.tokens[i]
}

// PeekToken returns the next token after the cursor, without advancing.
func (p *Parser) PeekToken() token.Token { return p.tokenAt(p.index + 1) }

// PeekNthToken returns the token n positions ahead of the cursor (0 == Token()).
func (p *Parser) PeekNthToken(n int) token.Token { return p.tokenAt(p.index + n) }

// PrevToken returns the token immediately before the cursor.
func (p *Parser) PrevToken() token.Token { return p.tokenAt(p.index - 1) }

// NextToken advances the cursor and returns the token it moved past.
func (p *Parser) NextToken() token.Token {
	tok := p.Token()
	if tok.Kind != token.EOF {
		p.index++
	}
	return tok
}

func (p *Parser) consumeKind(k token.Kind) bool {
	if p.Token().Kind == k {
		p.NextToken()
		return true
	}
	return false
}

// cursorState is a snapshot for maybeParse backtracking.
type cursorState struct {
	index int
	depth int
}

func (p *Parser) snapshot() cursorState { return cursorState{index: p.index, depth: p.depth} }

func (p *Parser) restore(s cursorState) { p.index, p.depth = s.index, s.depth }

// maybeParse attempts fn, rewinding the cursor to its pre-call position if
// fn returns a non-nil error. It is the backtracking primitive for
// optional/ambiguous productions; a few (ParseKeywordSequence,
// parseFunctionArg) save and restore the cursor directly instead.
func maybeParse[T any](p *Parser, fn func() (T, error)) (T, bool) {
	save := p.snapshot()
	v, err := fn()
	if err != nil {
		p.restore(save)
		var zero T
		return zero, false
	}
	return v, true
}

// enterDepth increments the recursion depth guard, returning an error once
// the configured limit is exceeded. Call sites pair it with a deferred
// leaveDepth.
func (p *Parser) enterDepth() error {
	p.depth++
	if p.depth > p.opts.recursionLimit() {
		return &RecursionLimitExceeded{Limit: p.opts.recursionLimit()}
	}
	return nil
}

func (p *Parser) leaveDepth() { p.depth-- }

// Fail builds a located parse Error from a format string, implementing
// dialect.ParserAPI so override hooks can raise errors uniformly.
func (p *Parser) Fail(format string, args ...any) error { return p.errorf(format, args...) }

func (p *Parser) errorf(format string, args ...any) error {
	tok := p.Token()
	return &Error{Message: fmt.Sprintf(format, args...), Line: tok.Line, Column: tok.Column}
}
