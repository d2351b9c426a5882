package parser

import (
	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

// parseStatement is the top-level statement dispatcher. A dialect gets first
// refusal via ParseStatement before the default grammar's keyword dispatch
// runs, matching the same override pattern used for prefix/infix expressions.
func (p *Parser) parseStatement() (ast.Statement, error) {
	if res, err := p.dialect.ParseStatement(p); err != nil {
		return nil, err
	} else if res.Handled {
		return res.Statement, nil
	}

	tok := p.Token()
	if tok.Kind != token.Word {
		return nil, p.errorf("expected statement, found %s", tok)
	}

	switch tok.Keyword {
	case token.SELECT, token.WITH, token.VALUES:
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		return &ast.QueryStatement{Query: q}, nil
	case token.INSERT:
		return p.parseInsert()
	case token.REPLACE:
		return p.parseReplace()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.MERGE:
		return p.parseMerge()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlter()
	case token.DROP:
		return p.parseDrop()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.ANALYZE:
		return p.parseAnalyze()
	case token.MSCK:
		return p.parseMsck()
	case token.CACHE:
		return p.parseCacheTable()
	case token.UNCACHE:
		return p.parseUncacheTable()
	case token.OPTIMIZE:
		return p.parseOptimizeTable()
	case token.CALL:
		return p.parseCall()
	case token.BEGIN, token.START:
		return p.parseStartTransaction()
	case token.COMMIT:
		return p.parseCommit()
	case token.ROLLBACK:
		return p.parseRollback()
	case token.SAVEPOINT:
		return p.parseSavepoint()
	case token.RELEASE:
		return p.parseReleaseSavepoint()
	case token.SET:
		return p.parseSet()
	case token.DECLARE:
		return p.parseDeclare()
	case token.FETCH:
		return p.parseFetch()
	case token.CLOSE:
		return p.parseClose()
	case token.COPY:
		return p.parseCopy()
	case token.GRANT:
		return p.parseGrant()
	case token.REVOKE:
		return p.parseRevoke()
	case token.EXPLAIN, token.DESCRIBE:
		return p.parseExplain()
	case token.KILL:
		return p.parseKill()
	case token.DISCARD:
		return p.parseDiscard()
	case token.PRAGMA:
		return p.parsePragma()
	case token.PREPARE:
		return p.parsePrepare()
	case token.EXECUTE:
		return p.parseExecute()
	case token.DEALLOCATE:
		return p.parseDeallocate()
	case token.INSTALL:
		return p.parseInstall()
	case token.LOAD:
		return p.parseLoad()
	case token.SHOW:
		return p.parseShow()
	case token.USE:
		return p.parseUse()
	case token.FLUSH:
		return p.parseFlush()
	case token.ASSERT:
		return p.parseAssert()
	case token.UNLOAD:
		return p.parseUnload()
	case token.ATTACH:
		return p.parseAttach()
	case token.DETACH:
		return p.parseDetachDuckDBDatabase()
	}
	return nil, p.errorf("unsupported statement, found %s", tok)
}

func (p *Parser) parseStartTransaction() (ast.Statement, error) {
	if p.Token().Keyword == token.BEGIN {
		p.NextToken()
		p.ParseOneOfKeywords(token.WORK, token.TRANSACTION)
	} else {
		if err := p.ExpectKeyword(token.START); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.TRANSACTION); err != nil {
			return nil, err
		}
	}
	st := &ast.StartTransaction{}
	for {
		switch {
		case p.ParseKeywordSequence(token.ISOLATION, token.LEVEL):
			lvl, err := p.parseIsolationLevel()
			if err != nil {
				return nil, err
			}
			st.Isolation = &lvl
		case p.ParseKeywordSequence(token.READ, token.ONLY):
			st.Modes = append(st.Modes, ast.TxModeReadOnly)
		case p.ParseKeywordSequence(token.READ, token.WRITE):
			st.Modes = append(st.Modes, ast.TxModeReadWrite)
		default:
			return st, nil
		}
		p.consumeKind(token.Comma)
	}
}

func (p *Parser) parseIsolationLevel() (ast.IsolationLevel, error) {
	switch {
	case p.ParseKeywordSequence(token.READ, token.UNCOMMITTED):
		return ast.IsolationReadUncommitted, nil
	case p.ParseKeywordSequence(token.READ, token.COMMITTED):
		return ast.IsolationReadCommitted, nil
	case p.ParseKeywordSequence(token.REPEATABLE, token.READ):
		return ast.IsolationRepeatableRead, nil
	case p.ParseKeyword(token.SERIALIZABLE):
		return ast.IsolationSerializable, nil
	}
	return 0, p.errorf("expected isolation level, found %s", p.Token())
}

func (p *Parser) parseCommit() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.COMMIT); err != nil {
		return nil, err
	}
	p.ParseOneOfKeywords(token.WORK, token.TRANSACTION)
	c := &ast.Commit{}
	if p.ParseKeyword(token.AND) {
		if !p.ParseKeyword(token.NO) {
			c.Chain = true
		}
		if err := p.ExpectKeyword(token.CHAIN); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (p *Parser) parseRollback() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.ROLLBACK); err != nil {
		return nil, err
	}
	p.ParseOneOfKeywords(token.WORK, token.TRANSACTION)
	r := &ast.Rollback{}
	if p.ParseKeyword(token.TO) {
		p.ParseKeyword(token.SAVEPOINT)
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		r.Savepoint = &name
	}
	return r, nil
}

func (p *Parser) parseSavepoint() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.SAVEPOINT); err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.Savepoint{Name: name}, nil
}

func (p *Parser) parseReleaseSavepoint() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.RELEASE); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.SAVEPOINT)
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.ReleaseSavepoint{Name: name}, nil
}

func (p *Parser) parseSet() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.SET); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(token.TRANSACTION):
		st := &ast.SetTransaction{}
		st.Session = p.ParseKeywordSequence(token.SESSION, token.CHARACTERISTICS, token.AS, token.TRANSACTION)
		for {
			switch {
			case p.ParseKeywordSequence(token.ISOLATION, token.LEVEL):
				lvl, err := p.parseIsolationLevel()
				if err != nil {
					return nil, err
				}
				st.Isolation = &lvl
			case p.ParseKeywordSequence(token.READ, token.ONLY):
				st.Modes = append(st.Modes, ast.TxModeReadOnly)
			case p.ParseKeywordSequence(token.READ, token.WRITE):
				st.Modes = append(st.Modes, ast.TxModeReadWrite)
			default:
				return st, nil
			}
			p.consumeKind(token.Comma)
		}
	case p.ParseKeyword(token.NAMES):
		sn := &ast.SetNames{}
		if p.ParseKeyword(token.DEFAULT) {
			sn.Default = true
			return sn, nil
		}
		tok := p.Token()
		if _, err := p.expectKind(token.SingleQuotedString); err != nil {
			sn.Charset = tok.Text
			p.NextToken()
		} else {
			sn.Charset = tok.Text
		}
		if p.ParseKeyword(token.COLLATE) {
			coll := p.Token()
			p.NextToken()
			sn.Collation = &coll.Text
		}
		return sn, nil
	case p.ParseKeyword(token.ROLE):
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.SetRole{Name: name}, nil
	case p.ParseKeywordSequence(token.TIME, token.ZONE):
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.SetTimeZone{Value: e}, nil
	}

	sv := &ast.SetVariable{}
	switch {
	case p.ParseKeyword(token.SESSION):
		sv.Scope = ast.SetScopeSession
	case p.ParseKeyword(token.LOCAL):
		sv.Scope = ast.SetScopeLocal
	case p.ParseKeyword(token.GLOBAL):
		sv.Scope = ast.SetScopeGlobal
	}

	if p.Token().Kind == token.LParen {
		sv.Parenthesized = true
		p.NextToken()
		for {
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			sv.Names = append(sv.Names, name)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		if !p.consumeKind(token.Equal) {
			if err := p.ExpectKeyword(token.TO); err != nil {
				return nil, err
			}
		}
		values, err := p.ParseExprList()
		if err != nil {
			return nil, err
		}
		sv.Values = values
		return sv, nil
	}

	for {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		sv.Names = append(sv.Names, name)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if !p.consumeKind(token.Equal) {
		if err := p.ExpectKeyword(token.TO); err != nil {
			return nil, err
		}
	}
	values, err := p.ParseExprList()
	if err != nil {
		return nil, err
	}
	sv.Values = values
	return sv, nil
}

func (p *Parser) parseDeclare() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.DECLARE); err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	d := &ast.Declare{Name: name}
	d.Insensitive = p.ParseKeyword(token.INSENSITIVE)
	d.Scroll = p.ParseKeyword(token.SCROLL)
	if p.ParseKeyword(token.CURSOR) {
		d.Kind = ast.DeclareCursor
		if err := p.ExpectKeyword(token.FOR); err != nil {
			return nil, err
		}
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		d.Query = q
		return d, nil
	}
	d.Kind = ast.DeclareVariable
	typ, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	d.Type = typ
	if p.consumeKind(token.Assignment) || p.consumeKind(token.Equal) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		d.Default = e
	}
	return d, nil
}

func (p *Parser) parseFetch() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.FETCH); err != nil {
		return nil, err
	}
	f := &ast.Fetch{}
	switch {
	case p.ParseKeyword(token.NEXT):
		f.Direction = ast.FetchNext
	case p.ParseKeyword(token.PRIOR):
		f.Direction = ast.FetchPrior
	case p.ParseKeyword(token.FIRST):
		f.Direction = ast.FetchFirst
	case p.ParseKeyword(token.LAST):
		f.Direction = ast.FetchLast
	case p.ParseKeyword(token.ABSOLUTE):
		f.Direction = ast.FetchAbsolute
		n, err := p.expectSignedInt()
		if err != nil {
			return nil, err
		}
		f.Count = &n
	case p.ParseKeyword(token.RELATIVE):
		f.Direction = ast.FetchRelative
		n, err := p.expectSignedInt()
		if err != nil {
			return nil, err
		}
		f.Count = &n
	case p.ParseKeywordSequence(token.FORWARD, token.ALL):
		f.Direction = ast.FetchForwardAll
	case p.ParseKeywordSequence(token.BACKWARD, token.ALL):
		f.Direction = ast.FetchBackwardAll
	case p.Token().Kind == token.Number:
		n, err := p.expectSignedInt()
		if err != nil {
			return nil, err
		}
		f.Count = &n
	}
	p.ParseOneOfKeywords(token.FROM, token.IN)
	cursor, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	f.Cursor = cursor
	if p.ParseKeyword(token.INTO) {
		for {
			name, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			f.Into = append(f.Into, name)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	return f, nil
}

func (p *Parser) parseClose() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.CLOSE); err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.ALL) {
		return &ast.Close{All: true}, nil
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.Close{Cursor: &name}, nil
}

func (p *Parser) parseCopy() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.COPY); err != nil {
		return nil, err
	}
	c := &ast.Copy{}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		c.Source.Query = q
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	} else {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		c.Source.Table = &name
		if p.Token().Kind == token.LParen {
			cols, err := p.parseParenIdentList()
			if err != nil {
				return nil, err
			}
			c.Source.Columns = cols
		}
	}
	switch {
	case p.ParseKeyword(token.TO):
		c.Direction = ast.CopyTo
	case p.ParseKeyword(token.FROM):
		c.Direction = ast.CopyFrom
	default:
		return nil, p.errorf("expected TO or FROM, found %s", p.Token())
	}
	switch {
	case p.ParseKeyword(token.PROGRAM):
		tok := p.Token()
		p.NextToken()
		c.Target.Program = &tok.Text
	case p.ParseKeyword(token.STDIN):
		c.Target.Stdin = true
	case p.ParseKeyword(token.STDOUT):
		c.Target.Stdout = true
	default:
		tok := p.Token()
		p.NextToken()
		c.Target.Path = &tok.Text
	}
	if p.ParseKeyword(token.WITH) || p.Token().Kind == token.LParen {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		c.Options = opts
	}
	return c, nil
}

func (p *Parser) parseGrant() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.GRANT); err != nil {
		return nil, err
	}
	g := &ast.Grant{}
	for {
		if p.ParseKeyword(token.ALL) {
			p.ParseKeyword(token.PRIVILEGES)
			g.Privileges = append(g.Privileges, "ALL")
		} else {
			tok := p.Token()
			p.NextToken()
			g.Privileges = append(g.Privileges, tok.Text)
		}
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.TABLE)
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	g.OnTable = &name
	if err := p.ExpectKeyword(token.TO); err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.PUBLIC) {
		g.GranteeKind = ast.GranteePublic
	} else {
		for {
			name, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			g.ToRoles = append(g.ToRoles, name)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	if p.ParseKeywordSequence(token.WITH, token.GRANT, token.OPTION) {
		g.WithGrantOption = true
	}
	return g, nil
}

func (p *Parser) parseRevoke() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.REVOKE); err != nil {
		return nil, err
	}
	r := &ast.Revoke{}
	for {
		if p.ParseKeyword(token.ALL) {
			p.ParseKeyword(token.PRIVILEGES)
			r.Privileges = append(r.Privileges, "ALL")
		} else {
			tok := p.Token()
			p.NextToken()
			r.Privileges = append(r.Privileges, tok.Text)
		}
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.TABLE)
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	r.OnTable = &name
	if err := p.ExpectKeyword(token.FROM); err != nil {
		return nil, err
	}
	for {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		r.FromRoles = append(r.FromRoles, name)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	r.Cascade = p.ParseKeyword(token.CASCADE)
	return r, nil
}

func (p *Parser) parseExplain() (ast.Statement, error) {
	describe := p.Token().Keyword == token.DESCRIBE
	p.NextToken()
	if describe {
		save := p.snapshot()
		if name, err := p.ParseObjectName(); err == nil {
			if p.Token().Kind == token.EOF || p.Token().Kind == token.SemiColon {
				return &ast.ExplainTable{Table: name}, nil
			}
		}
		p.restore(save)
	}
	e := &ast.Explain{}
	e.Analyze = p.ParseKeyword(token.ANALYZE)
	e.Verbose = p.ParseKeyword(token.VERBOSE)
	if p.ParseKeyword(token.FORMAT) {
		switch {
		case p.ParseKeyword(token.JSON):
			e.Format = ast.ExplainFormatJSON
		case p.ParseKeyword(token.GRAPHVIZ):
			e.Format = ast.ExplainFormatGraphviz
		case p.ParseKeyword(token.TREE):
			e.Format = ast.ExplainFormatTree
		default:
			p.ParseKeyword(token.TEXT)
			e.Format = ast.ExplainFormatText
		}
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	e.Statement = stmt
	return e, nil
}

func (p *Parser) parseKill() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.KILL); err != nil {
		return nil, err
	}
	k := &ast.Kill{}
	k.Query = p.ParseKeyword(token.QUERY)
	if !k.Query {
		p.ParseKeyword(token.CONNECTION)
	}
	n, err := p.expectUintLiteral()
	if err != nil {
		return nil, err
	}
	k.ID = n
	return k, nil
}

func (p *Parser) parseDiscard() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.DISCARD); err != nil {
		return nil, err
	}
	tok := p.Token()
	p.NextToken()
	return &ast.Discard{Target: tok.Text}, nil
}

func (p *Parser) parsePragma() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.PRAGMA); err != nil {
		return nil, err
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	pr := &ast.Pragma{Name: name}
	if p.consumeKind(token.Equal) {
		pr.IsEq = true
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		pr.Value = e
	} else if p.Token().Kind == token.LParen {
		p.NextToken()
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		pr.Value = e
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	return pr, nil
}

func (p *Parser) parsePrepare() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.PREPARE); err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	pr := &ast.Prepare{Name: name}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		for p.Token().Kind != token.RParen {
			typ, err := p.ParseDataType()
			if err != nil {
				return nil, err
			}
			pr.ParamTypes = append(pr.ParamTypes, typ)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	if err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	pr.Statement = stmt
	return pr, nil
}

func (p *Parser) parseExecute() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.EXECUTE); err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	ex := &ast.Execute{Name: name}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		if p.Token().Kind != token.RParen {
			exprs, err := p.ParseExprList()
			if err != nil {
				return nil, err
			}
			ex.Args = exprs
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	} else if p.ParseKeyword(token.USING) {
		exprs, err := p.ParseExprList()
		if err != nil {
			return nil, err
		}
		ex.Args = exprs
	}
	return ex, nil
}

func (p *Parser) parseDeallocate() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.DEALLOCATE); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.PREPARE)
	if p.ParseKeyword(token.ALL) {
		return &ast.Deallocate{All: true}, nil
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.Deallocate{Name: &name}, nil
}

func (p *Parser) parseInstall() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.INSTALL); err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	in := &ast.Install{Name: name}
	if p.ParseKeyword(token.FROM) {
		tok := p.Token()
		p.NextToken()
		in.From = &tok.Text
	}
	return in, nil
}

func (p *Parser) parseLoad() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.LOAD); err != nil {
		return nil, err
	}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	return &ast.Load{Name: name}, nil
}

func (p *Parser) parseShow() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.SHOW); err != nil {
		return nil, err
	}
	s := &ast.Show{}
	s.Extended = p.ParseKeyword(token.EXTENDED)
	s.Full = p.ParseKeyword(token.FULL)
	switch {
	case p.ParseKeyword(token.TABLES):
		s.Kind = ast.ShowTables
		if p.ParseOneOfKeywords(token.FROM, token.IN) != token.Undefined {
			name, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			s.DbName = &name
		}
	case p.ParseKeywordSequence(token.CREATE, token.TABLE):
		s.Kind = ast.ShowCreateTable
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.Table = &name
	case p.ParseKeyword(token.COLUMNS):
		s.Kind = ast.ShowColumns
		p.ParseOneOfKeywords(token.FROM, token.IN)
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.Table = &name
	case p.ParseKeyword(token.DATABASES):
		s.Kind = ast.ShowDatabases
	case p.ParseKeyword(token.SCHEMAS):
		s.Kind = ast.ShowSchemas
	case p.ParseKeyword(token.FUNCTIONS):
		s.Kind = ast.ShowFunctions
	case p.ParseKeyword(token.INDEX), p.ParseKeyword(token.INDEXES), p.ParseKeyword(token.KEYS):
		s.Kind = ast.ShowIndex
		p.ParseOneOfKeywords(token.FROM, token.IN)
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.Table = &name
	case p.ParseKeywordSequence(token.TBLPROPERTIES):
		s.Kind = ast.ShowTblProperties
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.Table = &name
	case p.ParseKeyword(token.COLLATION):
		s.Kind = ast.ShowCollation
	case p.ParseKeyword(token.CHARSET), p.ParseKeywordSequence(token.CHARACTER, token.SET):
		s.Kind = ast.ShowCharset
	case p.ParseKeyword(token.STATUS):
		s.Kind = ast.ShowStatus
	case p.ParseKeyword(token.WARNINGS):
		s.Kind = ast.ShowWarnings
	case p.ParseKeyword(token.GRANTS):
		s.Kind = ast.ShowGrants
	case p.ParseKeyword(token.VARIABLES):
		s.Kind = ast.ShowVariables
	default:
		s.Kind = ast.ShowVariable
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		s.Name = &name
		return s, nil
	}
	if p.ParseKeyword(token.LIKE) {
		tok := p.Token()
		p.NextToken()
		s.LikePattern = &tok.Text
	} else if p.ParseKeyword(token.WHERE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		s.Filter = e
	}
	return s, nil
}

func (p *Parser) parseUse() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.USE); err != nil {
		return nil, err
	}
	u := &ast.Use{}
	switch {
	case p.ParseKeyword(token.DATABASE):
		u.Kind = "DATABASE"
	case p.ParseKeyword(token.SCHEMA):
		u.Kind = "SCHEMA"
	case p.ParseKeyword(token.CATALOG):
		u.Kind = "CATALOG"
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	u.Name = name
	return u, nil
}

func (p *Parser) parseFlush() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.FLUSH); err != nil {
		return nil, err
	}
	f := &ast.Flush{}
	if p.ParseKeyword(token.LOCAL) {
		f.Local = true
	}
	tok := p.Token()
	p.NextToken()
	f.Target = tok.Text
	if f.Target == "TABLES" || f.Target == "tables" {
		for p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined {
			name, err := p.ParseObjectName()
			if err != nil {
				return nil, err
			}
			f.Tables = append(f.Tables, name)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
	}
	return f, nil
}

func (p *Parser) parseAssert() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.ASSERT); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	a := &ast.Assert{Condition: cond}
	if p.consumeKind(token.Comma) {
		msg, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		a.Message = msg
	}
	return a, nil
}

func (p *Parser) parseUnload() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.UNLOAD); err != nil {
		return nil, err
	}
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
	u := &ast.Unload{Query: q}
	if err := p.ExpectKeyword(token.TO); err != nil {
		return nil, err
	}
	tok := p.Token()
	p.NextToken()
	u.To = tok.Text
	if p.ParseKeyword(token.WITH) || p.Token().Kind == token.LParen {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		u.Options = opts
	}
	return u, nil
}

func (p *Parser) parseAttach() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.ATTACH); err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.DATABASE) {
		tok := p.Token()
		p.NextToken()
		if err := p.ExpectKeyword(token.AS); err != nil {
			return nil, err
		}
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.AttachDatabase{Path: tok.Text, Name: name}, nil
	}
	ad := &ast.AttachDuckDBDatabase{}
	ad.IfNotExists = p.parseIfNotExists()
	tok := p.Token()
	p.NextToken()
	ad.Path = tok.Text
	if p.ParseKeyword(token.AS) {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ad.Name = &name
	}
	if p.Token().Kind == token.LParen {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		ad.Options = opts
	}
	return ad, nil
}

func (p *Parser) parseDetachDuckDBDatabase() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.DETACH); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.DATABASE)
	dd := &ast.DetachDuckDBDatabase{}
	dd.IfExists = p.parseIfExists()
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	dd.Name = name
	return dd, nil
}
