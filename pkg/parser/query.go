package parser

import (
	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

// parseQueryBody parses the full WITH/SELECT/VALUES production including
// the trailing ORDER BY/LIMIT/OFFSET/FETCH/locking clauses that hang off
// the outermost Query rather than any individual set-expression operand.
func (p *Parser) parseQueryBody() (*ast.Query, error) {
	if err := p.enterDepth(); err != nil {
		return nil, err
	}
	defer p.leaveDepth()

	q := &ast.Query{}
	if p.PeekKeyword(token.WITH) {
		with, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		q.With = with
	}

	body, err := p.parseSetExpression(precZero)
	if err != nil {
		return nil, err
	}
	q.Body = body

	if p.ParseKeyword(token.ORDER) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByExprs()
		if err != nil {
			return nil, err
		}
		q.OrderBy = obs
	}

	if p.ParseKeyword(token.LIMIT) {
		if !p.PeekKeyword(token.ALL) {
			lim, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			q.Limit = lim
			if p.ParseKeyword(token.BY) {
				exprs, err := p.ParseExprList()
				if err != nil {
					return nil, err
				}
				q.LimitBy = &ast.LimitByClause{Limit: lim, Exprs: exprs}
			}
		} else {
			p.NextToken()
		}
	}
	if p.ParseKeyword(token.OFFSET) {
		off, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		q.Offset = off
		p.ParseOneOfKeywords(token.ROW, token.ROWS)
	}
	if p.ParseKeyword(token.FETCH) {
		fc, err := p.parseFetchClause()
		if err != nil {
			return nil, err
		}
		q.Fetch = fc
	}
	for p.ParseKeyword(token.FOR) {
		lock, err := p.parseLockClause()
		if err != nil {
			return nil, err
		}
		q.Locks = append(q.Locks, lock)
	}
	return q, nil
}

func (p *Parser) parseFetchClause() (*ast.FetchClause, error) {
	fc := &ast.FetchClause{}
	p.ParseOneOfKeywords(token.FIRST, token.NEXT)
	if p.Token().Kind != token.Word || (p.Token().Keyword != token.ROW && p.Token().Keyword != token.ROWS) {
		q, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		fc.Quantity = &q
	}
	fc.Percent = p.ParseKeyword(token.PERCENT)
	p.ParseOneOfKeywords(token.ROW, token.ROWS)
	if p.ParseKeyword(token.ONLY) {
		return fc, nil
	}
	if err := p.ExpectKeyword(token.WITH); err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.TIES); err != nil {
		return nil, err
	}
	fc.WithTies = true
	return fc, nil
}

func (p *Parser) parseLockClause() (ast.LockClause, error) {
	lock := ast.LockClause{}
	switch {
	case p.ParseKeyword(token.UPDATE):
		lock.Kind = ast.LockUpdate
	case p.ParseKeyword(token.SHARE):
		lock.Kind = ast.LockShare
	default:
		return lock, p.errorf("expected UPDATE or SHARE after FOR, found %s", p.Token())
	}
	if p.ParseKeyword(token.OF) {
		for {
			name, err := p.ParseObjectName()
			if err != nil {
				return lock, err
			}
			lock.Of = append(lock.Of, name)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	if p.ParseKeyword(token.NOWAIT) {
		lock.NonBlocking = ast.LockNowait
	} else if p.ParseKeywordSequence(token.SKIP, token.LOCKED) {
		lock.NonBlocking = ast.LockSkipLocked
	}
	return lock, nil
}

func (p *Parser) parseWith() (*ast.With, error) {
	if err := p.ExpectKeyword(token.WITH); err != nil {
		return nil, err
	}
	w := &ast.With{Recursive: p.ParseKeyword(token.RECURSIVE)}
	for {
		cte, err := p.parseCte()
		if err != nil {
			return nil, err
		}
		w.CTEs = append(w.CTEs, cte)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return w, nil
}

func (p *Parser) parseCte() (ast.Cte, error) {
	alias, err := p.parseTableAlias()
	if err != nil {
		return ast.Cte{}, err
	}
	cte := ast.Cte{Alias: alias}
	if p.ParseKeyword(token.AS) {
		if p.ParseKeyword(token.MATERIALIZED) {
			cte.Materialized = ast.CteMaterializedYes
		} else if p.ParseKeywordSequence(token.NOT, token.MATERIALIZED) {
			cte.Materialized = ast.CteMaterializedNo
		}
	}
	if _, err := p.expectKind(token.LParen); err != nil {
		return ast.Cte{}, err
	}
	q, err := p.parseQueryBody()
	if err != nil {
		return ast.Cte{}, err
	}
	cte.Query = q
	if _, err := p.expectKind(token.RParen); err != nil {
		return ast.Cte{}, err
	}
	return cte, nil
}

func (p *Parser) parseTableAlias() (ast.TableAlias, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.TableAlias{}, err
	}
	alias := ast.TableAlias{Name: name}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		for {
			col, err := p.ParseIdentifier()
			if err != nil {
				return ast.TableAlias{}, err
			}
			alias.Columns = append(alias.Columns, col)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return ast.TableAlias{}, err
		}
	}
	return alias, nil
}

// parseSetExpression parses the UNION/EXCEPT/INTERSECT chain of SELECT /
// VALUES / parenthesized-query operands, left-associative at equal precedence.
func (p *Parser) parseSetExpression(minPrecedence int) (ast.SetExpression, error) {
	left, err := p.parseSetExpressionOperand()
	if err != nil {
		return nil, err
	}
	for {
		op, quantifier, ok := p.peekSetOperator()
		if !ok {
			return left, nil
		}
		p.NextToken()
		switch quantifier {
		case ast.SetQuantifierAll, ast.SetQuantifierDistinct:
			p.NextToken()
		}
		right, err := p.parseSetExpressionOperand()
		if err != nil {
			return nil, err
		}
		left = &ast.SetOperation{Left: left, Op: op, Quantifier: quantifier, Right: right}
	}
}

func (p *Parser) peekSetOperator() (ast.SetOperator, ast.SetQuantifier, bool) {
	tok := p.Token()
	if tok.Kind != token.Word {
		return 0, 0, false
	}
	var op ast.SetOperator
	switch tok.Keyword {
	case token.UNION:
		op = ast.SetOpUnion
	case token.EXCEPT:
		op = ast.SetOpExcept
	case token.INTERSECT:
		op = ast.SetOpIntersect
	default:
		return 0, 0, false
	}
	quantifier := ast.SetQuantifierNone
	switch p.PeekToken().Keyword {
	case token.ALL:
		quantifier = ast.SetQuantifierAll
	case token.DISTINCT:
		quantifier = ast.SetQuantifierDistinct
	}
	return op, quantifier, true
}

func (p *Parser) parseSetExpressionOperand() (ast.SetExpression, error) {
	switch {
	case p.PeekKeyword(token.SELECT):
		return p.parseSelect()
	case p.PeekKeyword(token.VALUES):
		return p.parseValuesList()
	case p.PeekKeyword(token.TABLE):
		p.NextToken()
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.TableBody{Name: name}, nil
	case p.Token().Kind == token.LParen:
		p.NextToken()
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.QueryBody{Query: q}, nil
	}
	return nil, p.errorf("expected SELECT, VALUES, TABLE, or '(', found %s", p.Token())
}

func (p *Parser) parseValuesList() (ast.SetExpression, error) {
	if err := p.ExpectKeyword(token.VALUES); err != nil {
		return nil, err
	}
	vl := &ast.ValuesList{}
	for {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		row, err := p.ParseExprList()
		if err != nil {
			return nil, err
		}
		vl.Rows = append(vl.Rows, row)
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return vl, nil
}

func (p *Parser) parseSelect() (ast.SetExpression, error) {
	if err := p.ExpectKeyword(token.SELECT); err != nil {
		return nil, err
	}
	s := &ast.Select{}

	if p.dialect.Capabilities().SupportsTopBeforeDistinct && p.PeekKeyword(token.TOP) {
		p.NextToken()
		top, err := p.parseTopClause()
		if err != nil {
			return nil, err
		}
		s.Top = top
	}

	switch {
	case p.ParseKeyword(token.DISTINCT):
		if p.PeekKeyword(token.ALL) {
			return nil, p.errorf("cannot specify both ALL and DISTINCT")
		}
		s.Distinct = ast.SetQuantifierDistinct
		if p.ParseKeyword(token.ON) {
			if _, err := p.expectKind(token.LParen); err != nil {
				return nil, err
			}
			exprs, err := p.ParseExprList()
			if err != nil {
				return nil, err
			}
			s.DistinctOn = exprs
			if _, err := p.expectKind(token.RParen); err != nil {
				return nil, err
			}
		}
	case p.ParseKeyword(token.ALL):
		if p.PeekKeyword(token.DISTINCT) {
			return nil, p.errorf("cannot specify both ALL and DISTINCT")
		}
		s.Distinct = ast.SetQuantifierAll
	}

	if s.Top == nil && p.ParseKeyword(token.TOP) {
		top, err := p.parseTopClause()
		if err != nil {
			return nil, err
		}
		s.Top = top
	}

	if p.ParseKeyword(token.AS) {
		switch {
		case p.ParseKeyword(token.VALUE):
			s.ValueMode = true
		case p.ParseKeyword(token.STRUCT):
			s.StructMode = true
		}
	}

	projection, err := p.parseProjection()
	if err != nil {
		return nil, err
	}
	s.Projection = projection

	if p.ParseKeyword(token.INTO) {
		into, err := p.parseIntoClause()
		if err != nil {
			return nil, err
		}
		s.Into = into
	}

	if p.ParseKeyword(token.FROM) {
		from, err := p.parseTableWithJoinsList()
		if err != nil {
			return nil, err
		}
		s.From = from
	}

	for p.ParseKeywordSequence(token.LATERAL, token.VIEW) {
		lv, err := p.parseLateralView()
		if err != nil {
			return nil, err
		}
		s.LateralViews = append(s.LateralViews, lv)
	}

	if p.ParseKeyword(token.PREWHERE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Prewhere = e
	}
	if p.ParseKeyword(token.WHERE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Where = e
	}
	if p.ParseKeyword(token.GROUP) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		gb, err := p.parseGroupByClause()
		if err != nil {
			return nil, err
		}
		s.GroupBy = gb
	}
	if p.ParseKeyword(token.HAVING) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Having = e
	}
	if p.ParseKeyword(token.QUALIFY) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Qualify = e
		s.WindowQualifyOrder = ast.QualifyThenWindow
	}
	if p.ParseKeyword(token.WINDOW) {
		nws, err := p.parseNamedWindows()
		if err != nil {
			return nil, err
		}
		s.NamedWindows = nws
	}
	return s, nil
}

func (p *Parser) parseTopClause() (*ast.TopClause, error) {
	t := &ast.TopClause{}
	parens := p.consumeKind(token.LParen)
	q, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	t.Quantity = q
	if parens {
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	t.Percent = p.ParseKeyword(token.PERCENT)
	if p.ParseKeyword(token.WITH) {
		if err := p.ExpectKeyword(token.TIES); err != nil {
			return nil, err
		}
		t.WithTies = true
	}
	return t, nil
}

func (p *Parser) parseIntoClause() (*ast.IntoClause, error) {
	ic := &ast.IntoClause{}
	if p.ParseKeyword(token.TEMPORARY) || p.ParseKeyword(token.TEMP) {
		ic.Temporary = true
	}
	if p.ParseKeyword(token.UNLOGGED) {
		ic.Unlogged = true
	}
	ic.Table = p.ParseKeyword(token.TABLE)
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ic.Name = name
	return ic, nil
}

func (p *Parser) parseProjection() ([]ast.SelectItem, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.consumeKind(token.Comma) {
			break
		}
		if p.trailingCommaAllowed() && p.atSelectClauseEnd() {
			break
		}
	}
	return items, nil
}

func (p *Parser) atSelectClauseEnd() bool {
	tok := p.Token()
	if tok.Kind == token.EOF || tok.Kind == token.SemiColon || tok.Kind == token.RParen {
		return true
	}
	if tok.Kind != token.Word {
		return false
	}
	switch tok.Keyword {
	case token.FROM, token.INTO, token.WHERE, token.GROUP, token.HAVING, token.ORDER,
		token.LIMIT, token.UNION, token.EXCEPT, token.INTERSECT:
		return true
	}
	return false
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	if p.Token().Kind == token.Multiply {
		p.NextToken()
		w := &ast.Wildcard{}
		mods, err := p.parseWildcardModifiers()
		if err != nil {
			return ast.SelectItem{}, err
		}
		w.Modifiers = mods
		return ast.SelectItem{Kind: ast.SelectItemWildcard, Expr: w}, nil
	}
	e, err := p.ParseExpr()
	if err != nil {
		return ast.SelectItem{}, err
	}
	item := ast.SelectItem{Kind: ast.SelectItemExpr, Expr: e}
	if qw, ok := e.(*ast.QualifiedWildcard); ok {
		mods, err := p.parseWildcardModifiers()
		if err != nil {
			return ast.SelectItem{}, err
		}
		qw.Modifiers = mods
		item.Kind = ast.SelectItemQualifiedWildcard
		return item, nil
	}
	if p.ParseKeyword(token.AS) {
		alias, err := p.ParseIdentifier()
		if err != nil {
			return ast.SelectItem{}, err
		}
		item.Alias = &alias
	} else if p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined && !p.atSelectClauseEnd() {
		alias, err := p.ParseIdentifier()
		if err != nil {
			return ast.SelectItem{}, err
		}
		item.Alias = &alias
	}
	return item, nil
}

func (p *Parser) parseWildcardModifiers() (*ast.WildcardModifiers, error) {
	if !p.dialect.Capabilities().SupportsSelectWildcardExcept {
		return nil, nil
	}
	var mods *ast.WildcardModifiers
	ensure := func() *ast.WildcardModifiers {
		if mods == nil {
			mods = &ast.WildcardModifiers{}
		}
		return mods
	}
	if p.ParseKeyword(token.EXCEPT) || p.ParseKeyword(token.EXCLUDE) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		var cols []ast.Ident
		for {
			c, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			cols = append(cols, c)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		ensure().Except = cols
	}
	if p.ParseKeyword(token.REPLACE) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		var items []ast.ReplaceItem
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
			items = append(items, ast.ReplaceItem{Expr: e, Alias: alias})
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		ensure().Replace = items
	}
	return mods, nil
}

func (p *Parser) parseLateralView() (ast.LateralView, error) {
	lv := ast.LateralView{Outer: p.ParseKeyword(token.OUTER)}
	e, err := p.ParseExpr()
	if err != nil {
		return lv, err
	}
	lv.Expr = e
	name, err := p.ParseIdentifier()
	if err != nil {
		return lv, err
	}
	lv.Name = name
	if err := p.ExpectKeyword(token.AS); err != nil {
		return lv, err
	}
	for {
		col, err := p.ParseIdentifier()
		if err != nil {
			return lv, err
		}
		lv.Columns = append(lv.Columns, col)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return lv, nil
}

func (p *Parser) parseGroupByClause() (*ast.GroupByClause, error) {
	if p.ParseKeyword(token.ALL) {
		return &ast.GroupByClause{Kind: ast.GroupByAll}, nil
	}
	if p.ParseKeyword(token.ROLLUP) {
		sets, err := p.parseGroupingSets()
		if err != nil {
			return nil, err
		}
		return &ast.GroupByClause{Kind: ast.GroupByRollup, Sets: sets}, nil
	}
	if p.ParseKeyword(token.CUBE) {
		sets, err := p.parseGroupingSets()
		if err != nil {
			return nil, err
		}
		return &ast.GroupByClause{Kind: ast.GroupByCube, Sets: sets}, nil
	}
	if p.ParseKeywordSequence(token.GROUPING, token.SETS) {
		sets, err := p.parseGroupingSets()
		if err != nil {
			return nil, err
		}
		return &ast.GroupByClause{Kind: ast.GroupByGroupingSets, Sets: sets}, nil
	}
	exprs, err := p.ParseExprList()
	if err != nil {
		return nil, err
	}
	gb := &ast.GroupByClause{Kind: ast.GroupByExprs, Exprs: exprs}
	if p.ParseKeywordSequence(token.WITH, token.ROLLUP) {
		gb.WithRollup = true
	} else if p.ParseKeywordSequence(token.WITH, token.CUBE) {
		gb.WithCube = true
	} else if p.ParseKeywordSequence(token.WITH, token.TOTALS) {
		gb.WithTotals = true
	}
	return gb, nil
}

func (p *Parser) parseGroupingSets() ([][]ast.Expr, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	var sets [][]ast.Expr
	for {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		var set []ast.Expr
		if p.Token().Kind != token.RParen {
			var err error
			set, err = p.ParseExprList()
			if err != nil {
				return nil, err
			}
		}
		sets = append(sets, set)
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return sets, nil
}

func (p *Parser) parseOrderByExprs() ([]ast.OrderByExpr, error) {
	var obs []ast.OrderByExpr
	for {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ob := ast.OrderByExpr{Expr: e}
		switch {
		case p.ParseKeyword(token.ASC):
			ob.Asc = ast.OrderByAscending
		case p.ParseKeyword(token.DESC):
			ob.Asc = ast.OrderByDescending
		}
		switch {
		case p.ParseKeywordSequence(token.NULLS, token.FIRST):
			ob.Nulls = ast.NullsFirst
		case p.ParseKeywordSequence(token.NULLS, token.LAST):
			ob.Nulls = ast.NullsLast
		}
		obs = append(obs, ob)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return obs, nil
}

func (p *Parser) parseNamedWindows() ([]ast.NamedWindow, error) {
	var nws []ast.NamedWindow
	for {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.AS); err != nil {
			return nil, err
		}
		spec, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		nws = append(nws, ast.NamedWindow{Name: name, Spec: *spec})
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return nws, nil
}

func (p *Parser) parseWindowSpecOrName() (*ast.WindowSpec, error) {
	if p.Token().Kind == token.LParen {
		return p.parseWindowSpec()
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.WindowSpec{Name: &name}, nil
}

func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	spec := &ast.WindowSpec{}
	if p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined && p.PeekToken().Kind != token.Comma {
		switch p.PeekToken().Keyword {
		case token.PARTITION, token.ORDER, token.ROWS, token.RANGE, token.GROUPS:
			name, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			spec.Name = &name
		}
	}
	if p.ParseKeyword(token.PARTITION) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		exprs, err := p.ParseExprList()
		if err != nil {
			return nil, err
		}
		spec.PartitionBy = exprs
	}
	if p.ParseKeyword(token.ORDER) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByExprs()
		if err != nil {
			return nil, err
		}
		spec.OrderBy = obs
	}
	if frame, ok := p.parseOneOfFrameUnit(); ok {
		f, err := p.parseWindowFrame(frame)
		if err != nil {
			return nil, err
		}
		spec.Frame = f
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return spec, nil
}

func (p *Parser) parseOneOfFrameUnit() (ast.WindowFrameUnit, bool) {
	switch {
	case p.ParseKeyword(token.ROWS):
		return ast.FrameRows, true
	case p.ParseKeyword(token.RANGE):
		return ast.FrameRange, true
	case p.ParseKeyword(token.GROUPS):
		return ast.FrameGroups, true
	}
	return 0, false
}

func (p *Parser) parseWindowFrame(unit ast.WindowFrameUnit) (*ast.WindowFrame, error) {
	f := &ast.WindowFrame{Unit: unit}
	if p.ParseKeyword(token.BETWEEN) {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		f.Start = start
		if err := p.ExpectKeyword(token.AND); err != nil {
			return nil, err
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		f.End = &end
		return f, nil
	}
	start, err := p.parseFrameBound()
	if err != nil {
		return nil, err
	}
	f.Start = start
	return f, nil
}

func (p *Parser) parseFrameBound() (ast.WindowFrameBound, error) {
	if p.ParseKeywordSequence(token.CURRENT, token.ROW) {
		return ast.WindowFrameBound{Kind: ast.BoundCurrentRow}, nil
	}
	if p.ParseKeywordSequence(token.UNBOUNDED, token.PRECEDING) {
		return ast.WindowFrameBound{Kind: ast.BoundUnboundedPreceding}, nil
	}
	if p.ParseKeywordSequence(token.UNBOUNDED, token.FOLLOWING) {
		return ast.WindowFrameBound{Kind: ast.BoundUnboundedFollowing}, nil
	}
	e, err := p.ParseExpr()
	if err != nil {
		return ast.WindowFrameBound{}, err
	}
	if p.ParseKeyword(token.PRECEDING) {
		return ast.WindowFrameBound{Kind: ast.BoundPreceding, Value: e}, nil
	}
	if err := p.ExpectKeyword(token.FOLLOWING); err != nil {
		return ast.WindowFrameBound{}, err
	}
	return ast.WindowFrameBound{Kind: ast.BoundFollowing, Value: e}, nil
}
