package parser

import (
	"strings"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

// ParseExpr parses a full expression at the lowest precedence.
func (p *Parser) ParseExpr() (ast.Expr, error) { return p.ParseSubExpr(precZero) }

// ParseExprList parses a comma-separated list of expressions, honoring the
// dialect's trailing-comma capability.
func (p *Parser) ParseExprList() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
		if !p.consumeKind(token.Comma) {
			break
		}
		if p.trailingCommaAllowed() && p.atExprListEnd() {
			break
		}
	}
	return exprs, nil
}

func (p *Parser) trailingCommaAllowed() bool {
	return p.opts.TrailingCommas || p.dialect.Capabilities().SupportsTrailingCommas
}

func (p *Parser) atExprListEnd() bool {
	switch p.Token().Kind {
	case token.RParen, token.RBracket, token.RBrace, token.EOF:
		return true
	}
	return false
}

// ParseSubExpr implements the Pratt loop: parse a prefix expression, then
// repeatedly fold in infix/postfix operators whose precedence exceeds
// minPrecedence.
func (p *Parser) ParseSubExpr(minPrecedence int) (ast.Expr, error) {
	if err := p.enterDepth(); err != nil {
		return nil, err
	}
	defer p.leaveDepth()

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	return p.parseInfixLoop(left, minPrecedence)
}

func (p *Parser) parseInfixLoop(left ast.Expr, minPrecedence int) (ast.Expr, error) {
	for {
		prec := p.getNextPrecedence()
		if prec <= minPrecedence {
			return left, nil
		}
		next, err := p.parseInfix(left, prec)
		if err != nil {
			return nil, err
		}
		left = next
	}
}

// parsePrefix dispatches on the current token to build a leaf or
// prefix-operator expression, trying the dialect's override hook first.
func (p *Parser) parsePrefix() (ast.Expr, error) {
	if res, err := p.dialect.ParsePrefix(p); err != nil {
		return nil, err
	} else if res.Handled {
		return res.Expr, nil
	}

	tok := p.Token()
	switch tok.Kind {
	case token.Number:
		p.NextToken()
		return &ast.Value{Kind: ast.NumberValue, Raw: tok.Text}, nil
	case token.SingleQuotedString:
		p.NextToken()
		return &ast.Value{Kind: ast.SingleQuotedStringValue, Raw: tok.Text, Quote: '\''}, nil
	case token.DoubleQuotedString:
		p.NextToken()
		return &ast.Value{Kind: ast.DoubleQuotedStringValue, Raw: tok.Text, Quote: '"'}, nil
	case token.NationalStringLiteral:
		p.NextToken()
		return &ast.Value{Kind: ast.NationalStringValue, Raw: tok.Text}, nil
	case token.HexStringLiteral:
		p.NextToken()
		return &ast.Value{Kind: ast.HexStringValue, Raw: tok.Text}, nil
	case token.EscapedStringLiteral:
		p.NextToken()
		return &ast.Value{Kind: ast.EscapedStringValue, Raw: tok.Text}, nil
	case token.UnicodeStringLiteral:
		p.NextToken()
		return &ast.Value{Kind: ast.UnicodeStringValue, Raw: tok.Text}, nil
	case token.RawStringLiteral:
		p.NextToken()
		return &ast.Value{Kind: ast.RawStringValue, Raw: tok.Text}, nil
	case token.ByteStringLiteral:
		p.NextToken()
		return &ast.Value{Kind: ast.ByteStringValue, Raw: tok.Text}, nil
	case token.DollarQuotedString:
		p.NextToken()
		return &ast.Value{Kind: ast.DollarQuotedStringValue, Raw: tok.Text, Tag: tok.Tag}, nil
	case token.Placeholder:
		p.NextToken()
		return &ast.Value{Kind: ast.PlaceholderValue, Raw: tok.Text}, nil
	case token.Plus:
		p.NextToken()
		inner, err := p.ParseSubExpr(precPlusMinus)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpUnaryPlus, Expr: inner}, nil
	case token.Minus:
		p.NextToken()
		inner, err := p.ParseSubExpr(precPlusMinus)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpUnaryMinus, Expr: inner}, nil
	case token.Tilde:
		p.NextToken()
		inner, err := p.ParseSubExpr(precPlusMinus)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpPGBitwiseNot, Expr: inner}, nil
	case token.PGSquareRoot:
		p.NextToken()
		inner, err := p.ParseSubExpr(precPlusMinus)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpPGSquareRoot, Expr: inner}, nil
	case token.PGCubeRoot:
		p.NextToken()
		inner, err := p.ParseSubExpr(precPlusMinus)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpPGCubeRoot, Expr: inner}, nil
	case token.DoubleExclamationMark:
		p.NextToken()
		inner, err := p.ParseSubExpr(precPlusMinus)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpPGPrefixFactorial, Expr: inner}, nil
	case token.AtSign:
		p.NextToken()
		inner, err := p.ParseSubExpr(precPlusMinus)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpPGAbs, Expr: inner}, nil
	case token.LParen:
		return p.parseParenExpr()
	case token.LBracket:
		return p.parseBareArray()
	case token.QuotedIdent:
		return p.parseIdentOrCompound()
	case token.Multiply:
		p.NextToken()
		return &ast.Wildcard{}, nil
	case token.Word:
		return p.parseWordPrefix(tok)
	}
	return nil, p.errorf("unexpected token %s while parsing expression", tok)
}

func (p *Parser) parseWordPrefix(tok token.Token) (ast.Expr, error) {
	switch tok.Keyword {
	case token.NOT:
		p.NextToken()
		inner, err := p.ParseSubExpr(precUnaryNot)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: ast.OpNot, Expr: inner}, nil
	case token.TRUE:
		p.NextToken()
		return &ast.Value{Kind: ast.BooleanValue, Raw: "true"}, nil
	case token.FALSE:
		p.NextToken()
		return &ast.Value{Kind: ast.BooleanValue, Raw: "false"}, nil
	case token.NULL:
		p.NextToken()
		return &ast.Value{Kind: ast.NullValue, Raw: "null"}, nil
	case token.CASE:
		return p.parseCase()
	case token.CAST:
		return p.parseCast(ast.CastKindCast)
	case token.TRY_CAST:
		return p.parseCast(ast.CastKindTry)
	case token.SAFE_CAST:
		return p.parseCast(ast.CastKindSafe)
	case token.EXTRACT:
		return p.parseExtract()
	case token.POSITION:
		return p.parsePosition()
	case token.SUBSTRING:
		return p.parseSubstring()
	case token.OVERLAY:
		return p.parseOverlay()
	case token.TRIM:
		return p.parseTrim()
	case token.INTERVAL:
		return p.parseInterval()
	case token.EXISTS:
		return p.parseExists(false)
	case token.ARRAY:
		return p.parseArrayKeyword()
	case token.PRIOR:
		p.NextToken()
		inner, err := p.ParseSubExpr(precUnaryNot)
		if err != nil {
			return nil, err
		}
		return &ast.Prior{Expr: inner}, nil
	case token.STRUCT:
		return p.parseStructCall()
	}
	return p.parseIdentOrCompound()
}

func (p *Parser) parseParenExpr() (ast.Expr, error) {
	p.NextToken() // (
	if p.isQueryStart() {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Subquery{Query: q}, nil
	}
	if p.dialect.Capabilities().SupportsLambdaFunctions {
		if lam, ok := maybeParse(p, p.parseLambdaParamList); ok {
			return lam, nil
		}
	}
	first, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.Token().Kind == token.Comma {
		exprs := []ast.Expr{first}
		for p.consumeKind(token.Comma) {
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, e)
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Tuple{Exprs: exprs}, nil
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Nested{Inner: first}, nil
}

// parseLambdaParamList parses a DuckDB-style `(param, ...) -> body` lambda,
// starting just past the opening paren. It is only ever tried through
// maybeParse, so any mismatch (not an identifier list, no trailing `->`)
// cleanly falls back to the general parenthesized-expression grammar.
func (p *Parser) parseLambdaParamList() (ast.Expr, error) {
	var params []ast.LambdaParam
	if p.Token().Kind != token.RParen {
		for {
			name, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			params = append(params, ast.LambdaParam{Name: name})
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.Arrow); err != nil {
		return nil, err
	}
	body, err := p.ParseSubExpr(precZero)
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Params: params, Body: body}, nil
}

// isQueryStart reports whether the cursor sits at the start of a query body
// (SELECT/WITH/VALUES), used to disambiguate `(expr)` from `(subquery)`.
func (p *Parser) isQueryStart() bool {
	tok := p.Token()
	if tok.Kind != token.Word {
		return false
	}
	switch tok.Keyword {
	case token.SELECT, token.WITH, token.VALUES:
		return true
	}
	return false
}

func (p *Parser) parseBareArray() (ast.Expr, error) {
	p.NextToken() // [
	var elems []ast.Expr
	if p.Token().Kind != token.RBracket {
		var err error
		elems, err = p.ParseExprList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectKind(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.Array{Elements: elems}, nil
}

func (p *Parser) parseArrayKeyword() (ast.Expr, error) {
	p.NextToken() // ARRAY
	if p.Token().Kind == token.LParen {
		p.NextToken()
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Array{Query: q, Named: true}, nil
	}
	if _, err := p.expectKind(token.LBracket); err != nil {
		return nil, err
	}
	var elems []ast.Expr
	if p.Token().Kind != token.RBracket {
		var err error
		elems, err = p.ParseExprList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectKind(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.Array{Elements: elems, Named: true}, nil
}

func (p *Parser) parseStructCall() (ast.Expr, error) {
	p.NextToken() // STRUCT
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	var fields []ast.StructFieldExpr
	if p.Token().Kind != token.RParen {
		for {
			v, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			f := ast.StructFieldExpr{Value: v}
			if p.ParseKeyword(token.AS) {
				name, err := p.ParseIdentifier()
				if err != nil {
					return nil, err
				}
				f.Name = &name
			}
			fields = append(fields, f)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Struct{Values: fields}, nil
}

func (p *Parser) parseIdentOrCompound() (ast.Expr, error) {
	first, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	if p.Token().Kind != token.Period {
		if p.Token().Kind == token.LParen {
			return p.parseFunctionCall(ast.ObjectName{Parts: []ast.Ident{first}})
		}
		if p.dialect.Capabilities().SupportsLambdaFunctions && p.Token().Kind == token.Arrow {
			p.NextToken()
			body, err := p.ParseSubExpr(precZero)
			if err != nil {
				return nil, err
			}
			return &ast.Lambda{Params: []ast.LambdaParam{{Name: first}}, Body: body}, nil
		}
		return &ast.Identifier{Ident: first}, nil
	}
	parts := []ast.Ident{first}
	for p.Token().Kind == token.Period {
		p.NextToken()
		if p.Token().Kind == token.Multiply {
			p.NextToken()
			return &ast.QualifiedWildcard{Qualifier: parts}, nil
		}
		next, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	if p.Token().Kind == token.LParen {
		return p.parseFunctionCall(ast.ObjectName{Parts: parts})
	}
	return &ast.CompoundIdentifier{Parts: parts}, nil
}

// ParseIdentifier parses a single identifier, quoted or bare.
func (p *Parser) ParseIdentifier() (ast.Ident, error) {
	tok := p.Token()
	switch tok.Kind {
	case token.Word:
		p.NextToken()
		return ast.Ident{Value: tok.Text, Span: tok.Loc()}, nil
	case token.QuotedIdent:
		p.NextToken()
		return ast.Ident{Value: tok.Text, QuoteStyle: tok.QuoteStyle, Span: tok.Loc()}, nil
	}
	return ast.Ident{}, p.errorf("expected identifier, found %s", tok)
}

// ParseObjectName parses a dotted sequence of identifiers.
func (p *Parser) ParseObjectName() (ast.ObjectName, error) {
	first, err := p.ParseIdentifier()
	if err != nil {
		return ast.ObjectName{}, err
	}
	parts := []ast.Ident{first}
	for p.Token().Kind == token.Period {
		p.NextToken()
		next, err := p.ParseIdentifier()
		if err != nil {
			return ast.ObjectName{}, err
		}
		parts = append(parts, next)
	}
	return ast.ObjectName{Parts: parts}, nil
}

func (p *Parser) parseFunctionCall(name ast.ObjectName) (ast.Expr, error) {
	p.NextToken() // (
	fn := &ast.Function{Name: name}

	if p.ParseKeyword(token.DISTINCT) {
		fn.Args.Kind = ast.FunctionArgumentsList
		fn.Args.List = &ast.FunctionArgumentList{Duplicate: ast.DuplicateTreatmentDistinct}
	} else {
		fn.Args.Kind = ast.FunctionArgumentsList
		fn.Args.List = &ast.FunctionArgumentList{}
	}

	if p.Token().Kind != token.RParen {
		for {
			arg, err := p.parseFunctionArg()
			if err != nil {
				return nil, err
			}
			fn.Args.List.Args = append(fn.Args.List.Args, arg)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	if p.ParseKeyword(token.ORDER) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByExprs()
		if err != nil {
			return nil, err
		}
		fn.Args.List.OrderBy = obs
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}

	if p.ParseKeyword(token.FILTER) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.WHERE); err != nil {
			return nil, err
		}
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		fn.Filter = cond
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}

	if p.ParseKeyword(token.RESPECT) {
		if err := p.ExpectKeyword(token.NULLS); err != nil {
			return nil, err
		}
		fn.NullTreatment = ast.RespectNulls
	} else if p.ParseKeyword(token.IGNORE) {
		if err := p.ExpectKeyword(token.NULLS); err != nil {
			return nil, err
		}
		fn.NullTreatment = ast.IgnoreNulls
	}

	if p.ParseKeyword(token.OVER) {
		spec, err := p.parseWindowSpecOrName()
		if err != nil {
			return nil, err
		}
		fn.Over = spec
	}

	return fn, nil
}

func (p *Parser) parseFunctionArg() (ast.FunctionArg, error) {
	if p.Token().Kind == token.Multiply && p.PeekToken().Kind == token.RParen {
		p.NextToken()
		return ast.FunctionArg{Value: &ast.Wildcard{}}, nil
	}
	save := p.snapshot()
	if p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined {
		name, err := p.ParseIdentifier()
		if err == nil {
			switch p.Token().Kind {
			case token.RArrow:
				p.NextToken()
				v, err := p.ParseExpr()
				if err != nil {
					return ast.FunctionArg{}, err
				}
				return ast.FunctionArg{Name: &name, Op: ast.FuncArgOpRightArrow, Value: v}, nil
			case token.Assignment:
				p.NextToken()
				v, err := p.ParseExpr()
				if err != nil {
					return ast.FunctionArg{}, err
				}
				return ast.FunctionArg{Name: &name, Op: ast.FuncArgOpAssignment, Value: v}, nil
			}
		}
		p.restore(save)
	}
	v, err := p.ParseExpr()
	if err != nil {
		return ast.FunctionArg{}, err
	}
	return ast.FunctionArg{Value: v}, nil
}

func (p *Parser) parseCase() (ast.Expr, error) {
	p.NextToken() // CASE
	c := &ast.Case{}
	if !p.PeekKeyword(token.WHEN) {
		operand, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}
	for p.ParseKeyword(token.WHEN) {
		cond, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Conditions = append(c.Conditions, ast.WhenClause{Condition: cond, Result: result})
	}
	if p.ParseKeyword(token.ELSE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.ElseResult = e
	}
	if err := p.ExpectKeyword(token.END); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseCast(kind ast.CastKind) (ast.Expr, error) {
	p.NextToken() // CAST/TRY_CAST/SAFE_CAST
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	typ, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	c := &ast.Cast{Kind: kind, Expr: e, Type: typ}
	if p.ParseKeyword(token.FORMAT) {
		f, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		c.Format = f
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *Parser) parseExtract() (ast.Expr, error) {
	p.NextToken() // EXTRACT
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	field, err := p.parseDateTimeField()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Extract{Field: field, Expr: e}, nil
}

func (p *Parser) parseDateTimeField() (ast.DateTimeField, error) {
	tok := p.Token()
	if tok.Kind != token.Word {
		return "", p.errorf("expected date/time field name, found %s", tok)
	}
	p.NextToken()
	return ast.DateTimeField(strings.ToUpper(tok.Text)), nil
}

func (p *Parser) parsePosition() (ast.Expr, error) {
	p.NextToken() // POSITION
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	sub, err := p.ParseSubExpr(precBetween)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.IN); err != nil {
		return nil, err
	}
	in, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Position{Sub: sub, In: in}, nil
}

func (p *Parser) parseSubstring() (ast.Expr, error) {
	p.NextToken() // SUBSTRING
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	s := &ast.Substring{}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	s.Expr = e
	if p.consumeKind(token.Comma) {
		s.UsingComma = true
		from, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.From = from
		if p.consumeKind(token.Comma) {
			length, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			s.For = length
		}
	} else {
		if p.ParseKeyword(token.FROM) {
			from, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			s.From = from
		}
		if p.dialect.Capabilities().SupportsSubstringFromForExpression && p.ParseKeyword(token.FOR) {
			length, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			s.For = length
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *Parser) parseOverlay() (ast.Expr, error) {
	p.NextToken() // OVERLAY
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.PLACING); err != nil {
		return nil, err
	}
	repl, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	from, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	o := &ast.Overlay{Expr: e, Replacement: repl, From: from}
	if p.ParseKeyword(token.FOR) {
		length, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		o.For = length
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return o, nil
}

func (p *Parser) parseTrim() (ast.Expr, error) {
	p.NextToken() // TRIM
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	t := &ast.Trim{}
	switch {
	case p.ParseKeyword(token.BOTH):
		t.Kind = ast.TrimKindBoth
	case p.ParseKeyword(token.LEADING):
		t.Kind = ast.TrimKindLeading
	case p.ParseKeyword(token.TRAILING):
		t.Kind = ast.TrimKindTrailing
	}
	if t.Kind != ast.TrimKindUnspecified && !p.PeekKeyword(token.FROM) && p.Token().Kind != token.RParen {
		chars, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		t.Chars = chars
	}
	if p.ParseKeyword(token.FROM) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		t.Expr = e
	} else {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if p.consumeKind(token.Comma) {
			chars, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			t.Chars = e
			t.Expr = chars
		} else {
			t.Expr = e
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *Parser) parseInterval() (ast.Expr, error) {
	p.NextToken() // INTERVAL
	value, err := p.ParseSubExpr(precBetween)
	if err != nil {
		return nil, err
	}
	iv := &ast.Interval{Value: value}
	if field, ok := p.tryParseIntervalField(); ok {
		iv.LeadingField = &field
		if p.ParseKeyword(token.TO) {
			last, ok := p.tryParseIntervalField()
			if ok {
				iv.LastField = &last
			}
		}
	}
	return iv, nil
}

func (p *Parser) tryParseIntervalField() (ast.DateTimeField, bool) {
	tok := p.Token()
	if tok.Kind != token.Word {
		return "", false
	}
	switch tok.Keyword {
	case token.YEAR, token.MONTH, token.DAY, token.HOUR, token.MINUTE, token.SECOND, token.MICROSECOND:
		p.NextToken()
		return ast.DateTimeField(strings.ToUpper(tok.Text)), true
	}
	return "", false
}

func (p *Parser) parseExists(negated bool) (ast.Expr, error) {
	p.NextToken() // EXISTS
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	q, err := p.parseQueryBody()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return &ast.Exists{Subquery: q, Negated: negated}, nil
}

// --- infix / postfix ---

func (p *Parser) parseInfix(left ast.Expr, precedence int) (ast.Expr, error) {
	if res, err := p.dialect.ParseInfix(p, left, precedence); err != nil {
		return nil, err
	} else if res.Handled {
		return res.Expr, nil
	}

	tok := p.Token()

	if tok.Kind == token.Word {
		switch tok.Keyword {
		case token.AND:
			return p.parseBinary(left, precedence, ast.OpAnd)
		case token.OR:
			return p.parseBinary(left, precedence, ast.OpOr)
		case token.XOR:
			return p.parseBinary(left, precedence, ast.OpXor)
		case token.IS:
			return p.parseIs(left)
		case token.NOT:
			return p.parseNotInfix(left, precedence)
		case token.IN:
			return p.parseIn(left, false)
		case token.BETWEEN:
			return p.parseBetween(left, false)
		case token.LIKE:
			return p.parseLike(left, false, ast.LikeKindLike)
		case token.ILIKE:
			return p.parseLike(left, false, ast.LikeKindILike)
		case token.SIMILAR:
			return p.parseSimilarTo(left, false)
		case token.RLIKE, token.REGEXP:
			return p.parseLike(left, false, ast.LikeKindRLike)
		case token.AT:
			return p.parseAtTimeZone(left)
		case token.COLLATE:
			p.NextToken()
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			return &ast.Collate{Expr: left, Collation: name}, nil
		}
		return left, nil
	}

	switch tok.Kind {
	case token.Plus:
		return p.parseBinary(left, precedence, ast.OpPlus)
	case token.Minus:
		return p.parseBinary(left, precedence, ast.OpMinus)
	case token.Multiply:
		return p.parseBinary(left, precedence, ast.OpMultiply)
	case token.Divide:
		return p.parseBinary(left, precedence, ast.OpDivide)
	case token.DuckIntDiv:
		return p.parseBinary(left, precedence, ast.OpDuckIntDiv)
	case token.Modulo:
		return p.parseBinary(left, precedence, ast.OpModulo)
	case token.StringConcat:
		return p.parseBinary(left, precedence, ast.OpStringConcat)
	case token.Caret:
		return p.parseBinary(left, precedence, ast.OpPGBitwiseXor)
	case token.Ampersand:
		return p.parseBinary(left, precedence, ast.OpBitwiseAnd)
	case token.Pipe:
		return p.parseBinary(left, precedence, ast.OpBitwiseOr)
	case token.ShiftLeft:
		return p.parseBinary(left, precedence, ast.OpShiftLeft)
	case token.ShiftRight:
		return p.parseBinary(left, precedence, ast.OpShiftRight)
	case token.Overlap:
		return p.parseBinary(left, precedence, ast.OpPGOverlap)
	case token.ArrowAt:
		return p.parseBinary(left, precedence, ast.OpArrowAt)
	case token.AtArrow:
		return p.parseBinary(left, precedence, ast.OpAtArrow)
	case token.AtAt:
		return p.parseBinary(left, precedence, ast.OpAtAt)
	case token.AtQuestion:
		return p.parseBinary(left, precedence, ast.OpAtQuestion)
	case token.HashMinus:
		return p.parseBinary(left, precedence, ast.OpHashMinus)
	case token.Arrow:
		return p.parseBinary(left, precedence, ast.OpArrow)
	case token.LongArrow:
		return p.parseBinary(left, precedence, ast.OpLongArrow)
	case token.HashArrow:
		return p.parseBinary(left, precedence, ast.OpHashArrow)
	case token.HashLongArrow:
		return p.parseBinary(left, precedence, ast.OpHashLongArrow)
	case token.Tilde:
		return p.parseBinary(left, precedence, ast.OpTilde)
	case token.TildeAsterisk:
		return p.parseBinary(left, precedence, ast.OpTildeAsterisk)
	case token.ExclamationMarkTilde:
		return p.parseBinary(left, precedence, ast.OpNotTilde)
	case token.ExclamationMarkTildeAsterisk:
		return p.parseBinary(left, precedence, ast.OpNotTildeAsterisk)
	case token.Equal:
		return p.parseComparison(left, precedence, ast.OpEq)
	case token.DoubleEqual:
		return p.parseComparison(left, precedence, ast.OpEq)
	case token.NotEqual:
		return p.parseComparison(left, precedence, ast.OpNotEq)
	case token.LessThan:
		return p.parseComparison(left, precedence, ast.OpLt)
	case token.LessThanOrEqual:
		return p.parseComparison(left, precedence, ast.OpLtEq)
	case token.GreaterThan:
		return p.parseComparison(left, precedence, ast.OpGt)
	case token.GreaterThanOrEqual:
		return p.parseComparison(left, precedence, ast.OpGtEq)
	case token.Spaceship:
		return p.parseComparison(left, precedence, ast.OpSpaceship)
	case token.DoubleColon:
		p.NextToken()
		typ, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		return &ast.Cast{Kind: ast.CastKindCast, Expr: left, Type: typ}, nil
	case token.LBracket:
		return p.parseSubscript(left)
	case token.ExclamationMark:
		p.NextToken()
		return &ast.UnaryOp{Op: ast.OpPGPostfixFactorial, Expr: left, Postfix: true}, nil
	}
	return left, nil
}

func (p *Parser) parseBinary(left ast.Expr, precedence int, op ast.BinaryOperator) (ast.Expr, error) {
	p.NextToken()
	right, err := p.ParseSubExpr(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseComparison(left ast.Expr, precedence int, op ast.BinaryOperator) (ast.Expr, error) {
	p.NextToken()
	if p.ParseKeyword(token.ALL) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		right, err := p.parseSubqueryOrExprInParens()
		if err != nil {
			return nil, err
		}
		return &ast.AllOp{Left: left, Op: op, Right: right}, nil
	}
	if kind, ok := p.parseAnyOrSome(); ok {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		right, err := p.parseSubqueryOrExprInParens()
		if err != nil {
			return nil, err
		}
		return &ast.AnyOp{Left: left, Op: op, Kind: kind, Right: right}, nil
	}
	right, err := p.ParseSubExpr(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseAnyOrSome() (ast.SubqueryComparisonKind, bool) {
	if p.ParseKeyword(token.ANY) {
		return ast.CompareAny, true
	}
	if p.ParseKeyword(token.SOME) {
		return ast.CompareSome, true
	}
	return 0, false
}

func (p *Parser) parseSubqueryOrExprInParens() (ast.Expr, error) {
	if p.isQueryStart() {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.Subquery{Query: q}, nil
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) parseIs(left ast.Expr) (ast.Expr, error) {
	p.NextToken() // IS
	negated := p.ParseKeyword(token.NOT)
	switch {
	case p.ParseKeyword(token.NULL):
		if negated {
			return &ast.Is{Kind: ast.IsNotNull, Expr: left}, nil
		}
		return &ast.Is{Kind: ast.IsNull, Expr: left}, nil
	case p.ParseKeyword(token.TRUE):
		if negated {
			return &ast.Is{Kind: ast.IsNotTrue, Expr: left}, nil
		}
		return &ast.Is{Kind: ast.IsTrue, Expr: left}, nil
	case p.ParseKeyword(token.FALSE):
		if negated {
			return &ast.Is{Kind: ast.IsNotFalse, Expr: left}, nil
		}
		return &ast.Is{Kind: ast.IsFalse, Expr: left}, nil
	case p.ParseKeyword(token.UNKNOWN):
		if negated {
			return &ast.Is{Kind: ast.IsNotUnknown, Expr: left}, nil
		}
		return &ast.Is{Kind: ast.IsUnknown, Expr: left}, nil
	case p.ParseKeyword(token.DISTINCT):
		if err := p.ExpectKeyword(token.FROM); err != nil {
			return nil, err
		}
		other, err := p.ParseSubExpr(precIs)
		if err != nil {
			return nil, err
		}
		if negated {
			return &ast.Is{Kind: ast.IsNotDistinctFrom, Expr: left, Other: other}, nil
		}
		return &ast.Is{Kind: ast.IsDistinctFrom, Expr: left, Other: other}, nil
	}
	return nil, p.errorf("expected NULL/TRUE/FALSE/UNKNOWN/DISTINCT FROM after IS, found %s", p.Token())
}

// parseNotInfix handles the `[expr] NOT {IN|BETWEEN|LIKE|ILIKE|SIMILAR TO|RLIKE}`
// family, where NOT sits to the left of the operator keyword rather than
// wrapping the whole comparison in a UnaryOp.
func (p *Parser) parseNotInfix(left ast.Expr, precedence int) (ast.Expr, error) {
	p.NextToken() // NOT
	switch {
	case p.PeekKeyword(token.IN):
		return p.parseIn(left, true)
	case p.PeekKeyword(token.BETWEEN):
		return p.parseBetween(left, true)
	case p.PeekKeyword(token.LIKE):
		return p.parseLike(left, true, ast.LikeKindLike)
	case p.PeekKeyword(token.ILIKE):
		return p.parseLike(left, true, ast.LikeKindILike)
	case p.PeekKeyword(token.SIMILAR):
		return p.parseSimilarTo(left, true)
	case p.PeekKeyword(token.RLIKE), p.PeekKeyword(token.REGEXP):
		return p.parseLike(left, true, ast.LikeKindRLike)
	}
	return nil, p.errorf("expected IN/BETWEEN/LIKE/ILIKE/SIMILAR TO/RLIKE after NOT, found %s", p.Token())
}

func (p *Parser) parseIn(left ast.Expr, negated bool) (ast.Expr, error) {
	p.NextToken() // IN
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	if p.isQueryStart() {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.InSubquery{Expr: left, Subquery: q, Negated: negated}, nil
	}
	var list []ast.Expr
	if p.Token().Kind != token.RParen {
		var err error
		list, err = p.ParseExprList()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return &ast.InList{Expr: left, List: list, Negated: negated}, nil
}

func (p *Parser) parseBetween(left ast.Expr, negated bool) (ast.Expr, error) {
	p.NextToken() // BETWEEN
	low, err := p.ParseSubExpr(precBetween)
	if err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.AND); err != nil {
		return nil, err
	}
	high, err := p.ParseSubExpr(precBetween)
	if err != nil {
		return nil, err
	}
	return &ast.Between{Expr: left, Negated: negated, Low: low, High: high}, nil
}

func (p *Parser) parseLike(left ast.Expr, negated bool, kind ast.LikeKind) (ast.Expr, error) {
	p.NextToken() // LIKE/ILIKE/RLIKE/REGEXP
	pattern, err := p.ParseSubExpr(precLike)
	if err != nil {
		return nil, err
	}
	l := &ast.Like{Kind: kind, Expr: left, Negated: negated, Pattern: pattern}
	if p.ParseKeyword(token.ESCAPE) {
		tok := p.Token()
		if tok.Kind != token.SingleQuotedString {
			return nil, p.errorf("expected escape character string literal, found %s", tok)
		}
		p.NextToken()
		esc := tok.Text
		l.EscapeChar = &esc
	}
	return l, nil
}

func (p *Parser) parseSimilarTo(left ast.Expr, negated bool) (ast.Expr, error) {
	p.NextToken() // SIMILAR
	if err := p.ExpectKeyword(token.TO); err != nil {
		return nil, err
	}
	pattern, err := p.ParseSubExpr(precLike)
	if err != nil {
		return nil, err
	}
	l := &ast.Like{Kind: ast.LikeKindSimilarTo, Expr: left, Negated: negated, Pattern: pattern}
	if p.ParseKeyword(token.ESCAPE) {
		tok := p.Token()
		if tok.Kind != token.SingleQuotedString {
			return nil, p.errorf("expected escape character string literal, found %s", tok)
		}
		p.NextToken()
		esc := tok.Text
		l.EscapeChar = &esc
	}
	return l, nil
}

func (p *Parser) parseAtTimeZone(left ast.Expr) (ast.Expr, error) {
	p.NextToken() // AT
	if err := p.ExpectKeyword(token.TIME); err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.ZONE); err != nil {
		return nil, err
	}
	zone, err := p.ParseSubExpr(precAtTimeZone)
	if err != nil {
		return nil, err
	}
	return &ast.AtTimeZone{Expr: left, Zone: zone}, nil
}

func (p *Parser) parseSubscript(left ast.Expr) (ast.Expr, error) {
	p.NextToken() // [
	first, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if p.consumeKind(token.Colon) {
		var upper ast.Expr
		if p.Token().Kind != token.RBracket && p.Token().Kind != token.Colon {
			upper, err = p.ParseExpr()
			if err != nil {
				return nil, err
			}
		}
		var stride ast.Expr
		if p.consumeKind(token.Colon) && p.Token().Kind != token.RBracket {
			stride, err = p.ParseExpr()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expectKind(token.RBracket); err != nil {
			return nil, err
		}
		return &ast.Subscript{Base: left, Slice: &ast.SubscriptSlice{Lower: first, Upper: upper, Stride: stride}}, nil
	}
	if _, err := p.expectKind(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.Subscript{Base: left, Index: &ast.SubscriptIndex{Index: first}}, nil
}
