package parser

import (
	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

func (p *Parser) parseInsert() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.INSERT); err != nil {
		return nil, err
	}
	return p.parseInsertBody(false)
}

// parseReplace handles MySQL's `REPLACE [INTO] ...` statement, which is
// INSERT with duplicate-key rows replaced instead of rejected. The reference
// parser reuses INSERT's grammar wholesale and flips a flag rather than
// duplicating it; this keeps that shape instead of inventing a separate
// Replace statement type.
func (p *Parser) parseReplace() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.REPLACE); err != nil {
		return nil, err
	}
	return p.parseInsertBody(true)
}

func (p *Parser) parseInsertBody(replace bool) (ast.Statement, error) {
	ins := &ast.Insert{Replace: replace}

	switch {
	case p.ParseKeyword(token.OVERWRITE):
		ins.Overwrite = true
	case p.ParseKeyword(token.LOW_PRIORITY):
		ins.Priority = ast.InsertPriorityLow
	case p.ParseKeyword(token.DELAYED):
		ins.Priority = ast.InsertPriorityDelayed
	case p.ParseKeyword(token.HIGH_PRIORITY):
		ins.Priority = ast.InsertPriorityHigh
	}
	if p.ParseKeyword(token.IGNORE) {
		ins.IgnoreInsert = true
	}
	if p.ParseKeywordSequence(token.OR, token.REPLACE) {
		ins.SqliteConflict = ast.SqliteConflictReplace
	} else if p.ParseKeywordSequence(token.OR, token.ROLLBACK) {
		ins.SqliteConflict = ast.SqliteConflictRollback
	} else if p.ParseKeywordSequence(token.OR, token.ABORT) {
		ins.SqliteConflict = ast.SqliteConflictAbort
	} else if p.ParseKeywordSequence(token.OR, token.FAIL) {
		ins.SqliteConflict = ast.SqliteConflictFail
	} else if p.ParseKeywordSequence(token.OR, token.IGNORE) {
		ins.SqliteConflict = ast.SqliteConflictIgnore
	}

	ins.Into = p.ParseKeyword(token.INTO)
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ins.Table = name

	if p.Token().Kind == token.LParen {
		p.NextToken()
		for {
			c, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			ins.Columns = append(ins.Columns, c)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}

	if p.ParseKeyword(token.PARTITION) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		exprs, err := p.ParseExprList()
		if err != nil {
			return nil, err
		}
		ins.Partitioned = exprs
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}

	switch {
	case p.ParseKeywordSequence(token.DEFAULT, token.VALUES):
		ins.Source = &ast.InsertSource{HasDefaultValues: true}
	default:
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		ins.Source = &ast.InsertSource{Query: q}
		if p.ParseKeyword(token.AS) {
			alias, err := p.parseTableAlias()
			if err != nil {
				return nil, err
			}
			ins.RowAlias = &alias
		}
	}

	if p.ParseKeywordSequence(token.ON, token.CONFLICT) {
		oc, err := p.parseOnConflict()
		if err != nil {
			return nil, err
		}
		ins.OnConflict = oc
	} else if p.ParseKeywordSequence(token.ON, token.DUPLICATE, token.KEY, token.UPDATE) {
		assigns, err := p.parseAssignmentList()
		if err != nil {
			return nil, err
		}
		ins.OnDuplicateKeyUpdate = &ast.OnDuplicateKeyUpdate{Assignments: assigns}
	}

	if p.ParseKeyword(token.RETURNING) {
		items, err := p.parseProjection()
		if err != nil {
			return nil, err
		}
		ins.Returning = items
	}
	return ins, nil
}

func (p *Parser) parseOnConflict() (*ast.OnConflict, error) {
	oc := &ast.OnConflict{}
	if p.Token().Kind == token.LParen {
		p.NextToken()
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
		oc.Target = &ast.OnConflictTarget{Columns: cols}
	} else if p.ParseKeyword(token.ON) {
		if err := p.ExpectKeyword(token.CONSTRAINT); err != nil {
			return nil, err
		}
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		oc.Target = &ast.OnConflictTarget{Constraint: &name}
	}
	if err := p.ExpectKeyword(token.DO); err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.NOTHING) {
		oc.Action = ast.OnConflictDoNothing
		return oc, nil
	}
	if err := p.ExpectKeyword(token.UPDATE); err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.SET); err != nil {
		return nil, err
	}
	assigns, err := p.parseAssignmentList()
	if err != nil {
		return nil, err
	}
	oc.Assignments = assigns
	oc.Action = ast.OnConflictDoUpdate
	if p.ParseKeyword(token.WHERE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		oc.Where = e
	}
	return oc, nil
}

func (p *Parser) parseAssignmentList() ([]ast.Assignment, error) {
	var assigns []ast.Assignment
	for {
		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, a)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return assigns, nil
}

func (p *Parser) parseAssignment() (ast.Assignment, error) {
	var target []ast.Ident
	if p.Token().Kind == token.LParen {
		p.NextToken()
		for {
			c, err := p.ParseIdentifier()
			if err != nil {
				return ast.Assignment{}, err
			}
			target = append(target, c)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return ast.Assignment{}, err
		}
	} else {
		name, err := p.ParseObjectName()
		if err != nil {
			return ast.Assignment{}, err
		}
		target = name.Parts
	}
	if _, err := p.expectKind(token.Equal); err != nil {
		return ast.Assignment{}, err
	}
	val, err := p.ParseExpr()
	if err != nil {
		return ast.Assignment{}, err
	}
	return ast.Assignment{Target: target, Value: val}, nil
}

func (p *Parser) parseUpdate() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.UPDATE); err != nil {
		return nil, err
	}
	table, err := p.parseTableWithJoins()
	if err != nil {
		return nil, err
	}
	u := &ast.Update{Table: table}
	if err := p.ExpectKeyword(token.SET); err != nil {
		return nil, err
	}
	assigns, err := p.parseAssignmentList()
	if err != nil {
		return nil, err
	}
	u.Assignments = assigns
	if p.ParseKeyword(token.FROM) {
		from, err := p.parseTableWithJoinsList()
		if err != nil {
			return nil, err
		}
		u.From = from
	}
	if p.ParseKeyword(token.WHERE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		u.Where = e
	}
	if p.ParseKeyword(token.RETURNING) {
		items, err := p.parseProjection()
		if err != nil {
			return nil, err
		}
		u.Returning = items
	}
	return u, nil
}

func (p *Parser) parseDelete() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.DELETE); err != nil {
		return nil, err
	}
	d := &ast.Delete{}

	// MySQL multi-table form: DELETE t1, t2 FROM t1 JOIN t2 ... USING (...)
	if !p.PeekKeyword(token.FROM) {
		for {
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			d.Tables = append(d.Tables, name)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}

	if err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	from, err := p.parseTableWithJoinsList()
	if err != nil {
		return nil, err
	}
	d.From = from

	if p.ParseKeyword(token.USING) {
		using, err := p.parseTableWithJoinsList()
		if err != nil {
			return nil, err
		}
		d.Using = using
	}
	if p.ParseKeyword(token.WHERE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		d.Where = e
	}
	if p.ParseKeyword(token.RETURNING) {
		items, err := p.parseProjection()
		if err != nil {
			return nil, err
		}
		d.Returning = items
	}
	if p.ParseKeyword(token.ORDER) {
		if err := p.ExpectKeyword(token.BY); err != nil {
			return nil, err
		}
		obs, err := p.parseOrderByExprs()
		if err != nil {
			return nil, err
		}
		d.OrderBy = obs
	}
	if p.ParseKeyword(token.LIMIT) {
		lim, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		d.Limit = lim
	}
	return d, nil
}

func (p *Parser) parseMerge() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.MERGE); err != nil {
		return nil, err
	}
	m := &ast.Merge{Into: p.ParseKeyword(token.INTO)}
	target, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	m.Table = target
	if err := p.ExpectKeyword(token.USING); err != nil {
		return nil, err
	}
	source, err := p.parseTableFactor()
	if err != nil {
		return nil, err
	}
	m.Source = source
	if err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	onExpr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	m.On = onExpr

	for p.ParseKeyword(token.WHEN) {
		clause, err := p.parseMergeClause()
		if err != nil {
			return nil, err
		}
		m.Clauses = append(m.Clauses, clause)
	}
	return m, nil
}

func (p *Parser) parseMergeClause() (ast.MergeClause, error) {
	clause := ast.MergeClause{}
	switch {
	case p.ParseKeyword(token.MATCHED):
		clause.Match = ast.MergeMatched
	case p.ParseKeywordSequence(token.NOT, token.MATCHED, token.BY, token.SOURCE):
		clause.Match = ast.MergeNotMatchedBySource
	case p.ParseKeywordSequence(token.NOT, token.MATCHED, token.BY, token.TARGET):
		clause.Match = ast.MergeNotMatchedByTarget
	case p.ParseKeyword(token.NOT):
		if err := p.ExpectKeyword(token.MATCHED); err != nil {
			return clause, err
		}
		clause.Match = ast.MergeNotMatched
	default:
		return clause, p.errorf("expected MATCHED or NOT MATCHED, found %s", p.Token())
	}

	if p.ParseKeyword(token.AND) {
		e, err := p.ParseExpr()
		if err != nil {
			return clause, err
		}
		clause.Predicate = e
	}
	if err := p.ExpectKeyword(token.THEN); err != nil {
		return clause, err
	}

	switch {
	case p.ParseKeyword(token.UPDATE):
		clause.Kind = ast.MergeUpdate
		if err := p.ExpectKeyword(token.SET); err != nil {
			return clause, err
		}
		assigns, err := p.parseAssignmentList()
		if err != nil {
			return clause, err
		}
		clause.Assignments = assigns
	case p.ParseKeyword(token.DELETE):
		clause.Kind = ast.MergeDelete
	case p.ParseKeyword(token.INSERT):
		clause.Kind = ast.MergeInsert
		if p.Token().Kind == token.LParen {
			p.NextToken()
			for {
				c, err := p.ParseIdentifier()
				if err != nil {
					return clause, err
				}
				clause.Columns = append(clause.Columns, c)
				if !p.consumeKind(token.Comma) {
					break
				}
			}
			if _, err := p.expectKind(token.RParen); err != nil {
				return clause, err
			}
		}
		if p.ParseKeyword(token.VALUES) {
			if _, err := p.expectKind(token.LParen); err != nil {
				return clause, err
			}
			values, err := p.ParseExprList()
			if err != nil {
				return clause, err
			}
			clause.Values = values
			clause.InsertKind = ast.MergeInsertValues
			if _, err := p.expectKind(token.RParen); err != nil {
				return clause, err
			}
		} else if p.ParseKeywordSequence(token.DEFAULT, token.VALUES) {
			clause.InsertKind = ast.MergeInsertValues
		} else if p.ParseKeyword(token.ROW) {
			clause.InsertKind = ast.MergeInsertRow
		}
	default:
		return clause, p.errorf("expected UPDATE, DELETE, or INSERT, found %s", p.Token())
	}
	return clause, nil
}
