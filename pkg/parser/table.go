package parser

import (
	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

func (p *Parser) parseTableWithJoinsList() ([]ast.TableWithJoins, error) {
	var list []ast.TableWithJoins
	for {
		twj, err := p.parseTableWithJoins()
		if err != nil {
			return nil, err
		}
		list = append(list, twj)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return list, nil
}

func (p *Parser) parseTableWithJoins() (ast.TableWithJoins, error) {
	relation, err := p.parseTableFactor()
	if err != nil {
		return ast.TableWithJoins{}, err
	}
	twj := ast.TableWithJoins{Relation: relation}
	for {
		join, ok, err := p.tryParseJoin()
		if err != nil {
			return ast.TableWithJoins{}, err
		}
		if !ok {
			break
		}
		twj.Joins = append(twj.Joins, join)
	}
	return twj, nil
}

func (p *Parser) tryParseJoin() (ast.Join, bool, error) {
	op, natural, ok := p.peekJoinOperator()
	if !ok {
		return ast.Join{}, false, nil
	}
	p.consumeJoinOperatorTokens(op, natural)

	relation, err := p.parseTableFactor()
	if err != nil {
		return ast.Join{}, false, err
	}
	join := ast.Join{Relation: relation, Operator: op}

	switch {
	case natural:
		join.Constraint = ast.JoinConstraint{Kind: ast.JoinConstraintNatural}
	case op == ast.JoinCross || op == ast.JoinCrossApply || op == ast.JoinOuterApply:
		// no constraint clause
	case p.ParseKeyword(token.ON):
		e, err := p.ParseExpr()
		if err != nil {
			return ast.Join{}, false, err
		}
		join.Constraint = ast.JoinConstraint{Kind: ast.JoinConstraintOn, OnExpr: e}
	case p.ParseKeyword(token.USING):
		if _, err := p.expectKind(token.LParen); err != nil {
			return ast.Join{}, false, err
		}
		var cols []ast.Ident
		for {
			c, err := p.ParseIdentifier()
			if err != nil {
				return ast.Join{}, false, err
			}
			cols = append(cols, c)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return ast.Join{}, false, err
		}
		join.Constraint = ast.JoinConstraint{Kind: ast.JoinConstraintUsing, Using: cols}
	}

	if op == ast.JoinAsOf && p.ParseKeyword(token.MATCH_CONDITION) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return ast.Join{}, false, err
		}
		cond, err := p.ParseExpr()
		if err != nil {
			return ast.Join{}, false, err
		}
		join.MatchCondition = cond
		if _, err := p.expectKind(token.RParen); err != nil {
			return ast.Join{}, false, err
		}
	}
	return join, true, nil
}

func (p *Parser) peekJoinOperator() (ast.JoinOperator, bool, bool) {
	tok := p.Token()
	if tok.Kind != token.Word {
		return 0, false, false
	}
	natural := false
	idx := 0
	if tok.Keyword == token.NATURAL {
		natural = true
		idx = 1
	}
	t := p.PeekNthToken(idx)
	switch t.Keyword {
	case token.JOIN:
		return ast.JoinInner, natural, true
	case token.INNER:
		if p.PeekNthToken(idx+1).Keyword == token.JOIN {
			return ast.JoinInner, natural, true
		}
	case token.LEFT:
		next := p.PeekNthToken(idx + 1)
		switch next.Keyword {
		case token.JOIN:
			return ast.JoinLeft, natural, true
		case token.OUTER:
			return ast.JoinLeftOuter, natural, true
		case token.SEMI:
			return ast.JoinLeftSemi, natural, true
		case token.ANTI:
			return ast.JoinLeftAnti, natural, true
		}
	case token.RIGHT:
		next := p.PeekNthToken(idx + 1)
		switch next.Keyword {
		case token.JOIN:
			return ast.JoinRight, natural, true
		case token.OUTER:
			return ast.JoinRightOuter, natural, true
		case token.SEMI:
			return ast.JoinRightSemi, natural, true
		case token.ANTI:
			return ast.JoinRightAnti, natural, true
		}
	case token.FULL:
		next := p.PeekNthToken(idx + 1)
		switch next.Keyword {
		case token.JOIN:
			return ast.JoinFull, natural, true
		case token.OUTER:
			return ast.JoinFullOuter, natural, true
		}
	case token.CROSS:
		next := p.PeekNthToken(idx + 1)
		switch next.Keyword {
		case token.JOIN:
			return ast.JoinCross, natural, true
		case token.APPLY:
			return ast.JoinCrossApply, natural, true
		}
	case token.OUTER:
		if p.PeekNthToken(idx+1).Keyword == token.APPLY {
			return ast.JoinOuterApply, natural, true
		}
	case token.ASOF:
		if p.PeekNthToken(idx+1).Keyword == token.JOIN {
			return ast.JoinAsOf, natural, true
		}
	}
	return 0, false, false
}

func (p *Parser) consumeJoinOperatorTokens(op ast.JoinOperator, natural bool) {
	if natural {
		p.NextToken()
	}
	switch op {
	case ast.JoinInner:
		if p.PeekKeyword(token.INNER) {
			p.NextToken()
		}
		p.NextToken() // JOIN
	case ast.JoinLeft, ast.JoinLeftSemi, ast.JoinLeftAnti:
		p.NextToken() // LEFT
		p.NextToken() // SEMI/ANTI/JOIN
	case ast.JoinLeftOuter:
		p.NextToken() // LEFT
		p.NextToken() // OUTER
		p.NextToken() // JOIN
	case ast.JoinRight, ast.JoinRightSemi, ast.JoinRightAnti:
		p.NextToken()
		p.NextToken()
	case ast.JoinRightOuter:
		p.NextToken()
		p.NextToken()
		p.NextToken()
	case ast.JoinFull:
		p.NextToken()
		p.NextToken()
	case ast.JoinFullOuter:
		p.NextToken()
		p.NextToken()
		p.NextToken()
	case ast.JoinCross:
		p.NextToken()
		p.NextToken()
	case ast.JoinCrossApply:
		p.NextToken()
		p.NextToken()
	case ast.JoinOuterApply:
		p.NextToken()
		p.NextToken()
	case ast.JoinAsOf:
		p.NextToken()
		p.NextToken()
	}
}

func (p *Parser) parseTableFactor() (ast.TableFactor, error) {
	lateral := p.ParseKeyword(token.LATERAL)

	if p.Token().Kind == token.LParen {
		p.NextToken()
		if p.isQueryStart() {
			q, err := p.parseQueryBody()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectKind(token.RParen); err != nil {
				return nil, err
			}
			alias, _ := p.parseOptionalTableAlias()
			return &ast.Derived{Lateral: lateral, Subquery: q, Alias: alias}, nil
		}
		nested, err := p.parseTableWithJoins()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		alias, _ := p.parseOptionalTableAlias()
		return &ast.NestedJoin{TableWithJoins: nested, Alias: alias}, nil
	}

	if p.PeekKeyword(token.UNNEST) {
		p.NextToken()
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		exprs, err := p.ParseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		un := &ast.UnNest{Exprs: exprs}
		un.WithOrdinality = p.ParseKeywordSequence(token.WITH, token.ORDINALITY)
		alias, _ := p.parseOptionalTableAlias()
		un.Alias = alias
		return un, nil
	}

	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}

	if p.Token().Kind == token.LParen {
		p.NextToken()
		var args []ast.FunctionArg
		if p.Token().Kind != token.RParen {
			for {
				arg, err := p.parseFunctionArg()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.consumeKind(token.Comma) {
					break
				}
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		alias, _ := p.parseOptionalTableAlias()
		return &ast.TableFunction{Lateral: lateral, Name: name, Args: args, Alias: alias}, nil
	}

	t := &ast.Table{Name: name}
	if p.ParseKeyword(token.PARTITION) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		for {
			c, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			t.Partitions = append(t.Partitions, c)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywordSequence(token.FOR, token.SYSTEM_TIME) {
		if err := p.ExpectKeyword(token.AS); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.OF); err != nil {
			return nil, err
		}
		asOf, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		t.Version = &ast.ForSystemTime{AsOf: asOf}
	}
	t.WithOrdinality = p.ParseKeywordSequence(token.WITH, token.ORDINALITY)
	alias, _ := p.parseOptionalTableAlias()
	t.Alias = alias

	for {
		if p.dialect.Capabilities().SupportsMatchRecognize && p.PeekKeyword(token.MATCH_RECOGNIZE) {
			p.NextToken()
			mr, err := p.parseMatchRecognize()
			if err != nil {
				return nil, err
			}
			t.MatchRecognize = mr
			if t.Alias == nil {
				t.Alias, _ = p.parseOptionalTableAlias()
			}
			continue
		}
		if p.ParseKeyword(token.PIVOT) {
			pv, err := p.parsePivot()
			if err != nil {
				return nil, err
			}
			t.Pivots = append(t.Pivots, pv)
			continue
		}
		if p.ParseKeyword(token.UNPIVOT) {
			up, err := p.parseUnpivot()
			if err != nil {
				return nil, err
			}
			t.Unpivots = append(t.Unpivots, up)
			continue
		}
		break
	}
	return t, nil
}

func (p *Parser) parsePivot() (ast.Pivot, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return ast.Pivot{}, err
	}
	pv := ast.Pivot{}
	for {
		e, err := p.ParseExpr()
		if err != nil {
			return ast.Pivot{}, err
		}
		ea := ast.ExprWithAlias{Expr: e}
		if p.ParseKeyword(token.AS) {
			alias, err := p.ParseIdentifier()
			if err != nil {
				return ast.Pivot{}, err
			}
			ea.Alias = &alias
		}
		pv.Aggregates = append(pv.Aggregates, ea)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if err := p.ExpectKeyword(token.FOR); err != nil {
		return ast.Pivot{}, err
	}
	col, err := p.ParseIdentifier()
	if err != nil {
		return ast.Pivot{}, err
	}
	pv.ForColumn = col
	if err := p.ExpectKeyword(token.IN); err != nil {
		return ast.Pivot{}, err
	}
	if _, err := p.expectKind(token.LParen); err != nil {
		return ast.Pivot{}, err
	}
	switch {
	case p.PeekKeyword(token.ANY):
		p.NextToken()
		any := ast.PivotAny{}
		if p.ParseKeyword(token.ORDER) {
			if err := p.ExpectKeyword(token.BY); err != nil {
				return ast.Pivot{}, err
			}
			obs, err := p.parseOrderByExprs()
			if err != nil {
				return ast.Pivot{}, err
			}
			any.OrderBy = obs
		}
		pv.ValueSource = any
	case p.PeekKeyword(token.SELECT), p.PeekKeyword(token.WITH):
		q, err := p.parseQueryBody()
		if err != nil {
			return ast.Pivot{}, err
		}
		pv.ValueSource = ast.PivotSubquery{Query: q}
	default:
		var items []ast.ExprWithAlias
		for {
			e, err := p.ParseExpr()
			if err != nil {
				return ast.Pivot{}, err
			}
			ea := ast.ExprWithAlias{Expr: e}
			if p.ParseKeyword(token.AS) {
				alias, err := p.ParseIdentifier()
				if err != nil {
					return ast.Pivot{}, err
				}
				ea.Alias = &alias
			}
			items = append(items, ea)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		pv.ValueSource = ast.PivotExprList{Exprs: items}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return ast.Pivot{}, err
	}
	if p.ParseKeywordSequence(token.DEFAULT, token.ON, token.NULL) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return ast.Pivot{}, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return ast.Pivot{}, err
		}
		pv.DefaultOnNull = e
		if _, err := p.expectKind(token.RParen); err != nil {
			return ast.Pivot{}, err
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return ast.Pivot{}, err
	}
	alias, _ := p.parseOptionalTableAlias()
	pv.Alias = alias
	return pv, nil
}

func (p *Parser) parseUnpivot() (ast.Unpivot, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return ast.Unpivot{}, err
	}
	value, err := p.ParseIdentifier()
	if err != nil {
		return ast.Unpivot{}, err
	}
	if err := p.ExpectKeyword(token.FOR); err != nil {
		return ast.Unpivot{}, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.Unpivot{}, err
	}
	if err := p.ExpectKeyword(token.IN); err != nil {
		return ast.Unpivot{}, err
	}
	if _, err := p.expectKind(token.LParen); err != nil {
		return ast.Unpivot{}, err
	}
	var cols []ast.Ident
	for {
		c, err := p.ParseIdentifier()
		if err != nil {
			return ast.Unpivot{}, err
		}
		cols = append(cols, c)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return ast.Unpivot{}, err
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return ast.Unpivot{}, err
	}
	alias, _ := p.parseOptionalTableAlias()
	return ast.Unpivot{ValueColumn: value, NameColumn: name, Columns: cols, Alias: alias}, nil
}

func (p *Parser) parseMatchRecognize() (*ast.MatchRecognize, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	mr := &ast.MatchRecognize{}
	if p.ParseKeyword(token.PARTITION) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		exprs, err := p.ParseExprList()
		if err != nil {
			return nil, err
		}
		mr.PartitionBy = exprs
	}
	if p.ParseKeyword(token.ORDER) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByExprs()
		if err != nil {
			return nil, err
		}
		mr.OrderBy = obs
	}
	if p.ParseKeyword(token.MEASURES) {
		for {
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.ExpectKeyword(token.AS); err != nil {
				return nil, err
			}
			alias, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			mr.Measures = append(mr.Measures, ast.MeasureDef{Expr: e, Alias: alias})
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	switch {
	case p.ParseKeywordSequence(token.ONE, token.ROW, token.PER, token.MATCH):
		mr.RowsPerMatch = ast.OneRowPerMatch
	case p.ParseKeyword(token.ALL):
		if err := p.ExpectKeyword(token.ROWS); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.PER); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.MATCH); err != nil {
			return nil, err
		}
		switch {
		case p.ParseKeywordSequence(token.SHOW, token.EMPTY, token.MATCHES):
			mr.RowsPerMatch = ast.AllRowsPerMatchShowEmpty
		case p.ParseKeywordSequence(token.OMIT, token.EMPTY, token.MATCHES):
			mr.RowsPerMatch = ast.AllRowsPerMatchOmitEmpty
		case p.ParseKeywordSequence(token.WITH, token.UNMATCHED, token.ROWS):
			mr.RowsPerMatch = ast.AllRowsPerMatchWithUnmatched
		default:
			mr.RowsPerMatch = ast.AllRowsPerMatch
		}
	}
	if p.ParseKeyword(token.AFTER) {
		if err := p.ExpectKeyword(token.MATCH); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.SKIP); err != nil {
			return nil, err
		}
		switch {
		case p.ParseKeywordSequence(token.PAST, token.LAST, token.ROW):
			mr.After = ast.SkipPastLastRow
		case p.ParseKeywordSequence(token.TO, token.NEXT, token.ROW):
			mr.After = ast.SkipToNextRow
		case p.ParseKeywordSequence(token.TO, token.FIRST):
			sym, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			mr.After = ast.SkipToFirst
			mr.AfterSymbol = &sym
		case p.ParseKeywordSequence(token.TO, token.LAST):
			sym, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			mr.After = ast.SkipToLast
			mr.AfterSymbol = &sym
		}
	}
	if err := p.ExpectKeyword(token.PATTERN); err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	pat, err := p.parseRowPattern()
	if err != nil {
		return nil, err
	}
	mr.Pattern = pat
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.DEFINE) {
		for {
			sym, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			if err := p.ExpectKeyword(token.AS); err != nil {
				return nil, err
			}
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			mr.Define = append(mr.Define, ast.SymbolDef{Symbol: sym, Expr: e})
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return mr, nil
}

// parseRowPattern parses a PATTERN(...) body: a concatenation of
// alternations of quantified atoms, terminated by ')'.
func (p *Parser) parseRowPattern() (ast.RowPattern, error) {
	alt, err := p.parsePatternAlternation()
	if err != nil {
		return nil, err
	}
	return alt, nil
}

func (p *Parser) parsePatternAlternation() (ast.RowPattern, error) {
	first, err := p.parsePatternConcat()
	if err != nil {
		return nil, err
	}
	if p.Token().Kind != token.Pipe {
		return first, nil
	}
	patterns := []ast.RowPattern{first}
	for p.consumeKind(token.Pipe) {
		next, err := p.parsePatternConcat()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, next)
	}
	return ast.PatternAlternation{Patterns: patterns}, nil
}

func (p *Parser) parsePatternConcat() (ast.RowPattern, error) {
	var patterns []ast.RowPattern
	for {
		switch p.Token().Kind {
		case token.RParen, token.Pipe:
			if len(patterns) == 1 {
				return patterns[0], nil
			}
			return ast.PatternConcat{Patterns: patterns}, nil
		}
		atom, err := p.parsePatternQuantified()
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, atom)
	}
}

func (p *Parser) parsePatternQuantified() (ast.RowPattern, error) {
	atom, err := p.parsePatternAtom()
	if err != nil {
		return nil, err
	}
	switch p.Token().Kind {
	case token.Multiply:
		p.NextToken()
		return ast.PatternRepetition{Pattern: atom, Kind: ast.RepeatZeroOrMore}, nil
	case token.Plus:
		p.NextToken()
		return ast.PatternRepetition{Pattern: atom, Kind: ast.RepeatOneOrMore}, nil
	case token.Placeholder:
		if p.Token().Text == "?" {
			p.NextToken()
			return ast.PatternRepetition{Pattern: atom, Kind: ast.RepeatZeroOrOne}, nil
		}
		return atom, nil
	case token.LBrace:
		p.NextToken()
		var lo, hi *uint64
		if p.Token().Kind == token.Number {
			n, err := p.expectUintLiteral()
			if err != nil {
				return nil, err
			}
			lo = &n
		}
		comma := p.consumeKind(token.Comma)
		if p.Token().Kind == token.Number {
			n, err := p.expectUintLiteral()
			if err != nil {
				return nil, err
			}
			hi = &n
		}
		if _, err := p.expectKind(token.RBrace); err != nil {
			return nil, err
		}
		switch {
		case !comma && lo != nil:
			return ast.PatternRepetition{Pattern: atom, Kind: ast.RepeatExact, Lo: lo}, nil
		case comma && hi == nil:
			return ast.PatternRepetition{Pattern: atom, Kind: ast.RepeatAtLeast, Lo: lo}, nil
		case comma && lo == nil:
			return ast.PatternRepetition{Pattern: atom, Kind: ast.RepeatAtMost, Hi: hi}, nil
		default:
			return ast.PatternRepetition{Pattern: atom, Kind: ast.RepeatRange, Lo: lo, Hi: hi}, nil
		}
	}
	return atom, nil
}

func (p *Parser) parsePatternAtom() (ast.RowPattern, error) {
	if p.ParseKeyword(token.PERMUTE) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		var syms []ast.Ident
		for {
			s, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			syms = append(syms, s)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return ast.PatternPermute{Symbols: syms}, nil
	}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		inner, err := p.parseRowPattern()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return ast.PatternGroup{Pattern: inner}, nil
	}
	if p.Token().Kind == token.Caret || (p.Token().Kind == token.Placeholder && p.Token().Text == "$") {
		sym := ast.Ident{Value: p.Token().Text}
		p.NextToken()
		return ast.PatternSymbol{Symbol: sym}, nil
	}
	if p.ParseKeyword(token.EXCLUDE) ||
		(p.Token().Kind == token.LBrace && p.PeekToken().Kind == token.Minus) {
		if p.Token().Kind == token.LBrace {
			p.NextToken()
		}
		if p.Token().Kind == token.Minus {
			p.NextToken()
		}
		inner, err := p.parsePatternAlternation()
		if err != nil {
			return nil, err
		}
		if p.Token().Kind == token.Minus {
			p.NextToken()
		}
		if p.Token().Kind == token.RBrace {
			p.NextToken()
		}
		return ast.PatternExclude{Pattern: inner}, nil
	}
	sym, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return ast.PatternSymbol{Symbol: sym}, nil
}

// parseOptionalTableAlias consumes an optional `[AS] alias [(cols)]` suffix,
// refusing to consume a bare identifier that is actually the next clause
// keyword (JOIN, WHERE, ON, ...).
func (p *Parser) parseOptionalTableAlias() (*ast.TableAlias, bool) {
	if p.ParseKeyword(token.AS) {
		alias, err := p.parseTableAlias()
		if err != nil {
			return nil, false
		}
		return &alias, true
	}
	tok := p.Token()
	if tok.Kind != token.Word || tok.Keyword != token.Undefined {
		return nil, false
	}
	if _, _, ok := p.peekJoinOperator(); ok {
		return nil, false
	}
	alias, err := p.parseTableAlias()
	if err != nil {
		return nil, false
	}
	return &alias, true
}
