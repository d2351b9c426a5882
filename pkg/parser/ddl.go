package parser

import (
	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

func (p *Parser) parseCreate() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.CREATE); err != nil {
		return nil, err
	}
	orReplace := p.ParseKeywordSequence(token.OR, token.REPLACE)
	temporary := p.ParseOneOfKeywords(token.TEMPORARY, token.TEMP) != token.Undefined
	unlogged := p.ParseKeyword(token.UNLOGGED)

	if orReplace {
		switch p.Token().Keyword {
		case token.TABLE, token.EXTERNAL, token.MATERIALIZED, token.VIEW, token.FUNCTION, token.MACRO, token.PROCEDURE, token.SECRET:
		default:
			return nil, p.errorf("OR REPLACE is not supported for CREATE %s", p.Token())
		}
	}

	switch {
	case p.ParseKeyword(token.TABLE):
		return p.parseCreateTable(orReplace, temporary, unlogged, false)
	case p.ParseKeywordSequence(token.EXTERNAL, token.TABLE):
		return p.parseCreateTable(orReplace, temporary, unlogged, true)
	case p.ParseKeywordSequence(token.VIRTUAL, token.TABLE):
		return p.parseCreateVirtualTable()
	case p.ParseKeyword(token.MATERIALIZED):
		if err := p.ExpectKeyword(token.VIEW); err != nil {
			return nil, err
		}
		return p.parseCreateView(orReplace, temporary, true)
	case p.ParseKeyword(token.VIEW):
		return p.parseCreateView(orReplace, temporary, false)
	case p.ParseKeyword(token.UNIQUE):
		if err := p.ExpectKeyword(token.INDEX); err != nil {
			return nil, err
		}
		return p.parseCreateIndex(true)
	case p.ParseKeyword(token.INDEX):
		return p.parseCreateIndex(false)
	case p.ParseKeyword(token.SCHEMA):
		return p.parseCreateSchema()
	case p.ParseKeyword(token.DATABASE):
		return p.parseCreateDatabase()
	case p.ParseKeyword(token.ROLE):
		return p.parseCreateRole()
	case p.ParseKeyword(token.FUNCTION):
		return p.parseCreateFunction(orReplace, temporary)
	case p.ParseKeyword(token.MACRO):
		return p.parseCreateMacro(orReplace, temporary)
	case p.ParseKeyword(token.PROCEDURE):
		return p.parseCreateProcedure(orReplace)
	case p.ParseKeyword(token.TRIGGER):
		return p.parseCreateTrigger()
	case p.ParseKeyword(token.TYPE):
		return p.parseCreateType()
	case p.ParseKeyword(token.SEQUENCE):
		return p.parseCreateSequence()
	case p.ParseKeyword(token.SECRET):
		return p.parseCreateSecret(orReplace, temporary)
	case p.ParseKeyword(token.EXTENSION):
		return p.parseCreateExtension()
	}
	return nil, p.errorf("unsupported CREATE statement, found %s", p.Token())
}

func (p *Parser) parseIfNotExists() bool {
	return p.ParseKeywordSequence(token.IF, token.NOT, token.EXISTS)
}

func (p *Parser) parseIfExists() bool {
	return p.ParseKeywordSequence(token.IF, token.EXISTS)
}

func (p *Parser) parseCreateTable(orReplace, temporary, unlogged, external bool) (ast.Statement, error) {
	ct := &ast.CreateTable{OrReplace: orReplace, Temporary: temporary, Unlogged: unlogged, External: external}
	ct.IfNotExists = p.parseIfNotExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ct.Name = name

	if p.ParseKeyword(token.LIKE) {
		like, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		ct.Like = &like
		return ct, nil
	}

	if p.Token().Kind == token.LParen {
		p.NextToken()
		for p.Token().Kind != token.RParen {
			if p.peekTableConstraintStart() {
				c, err := p.parseTableConstraint()
				if err != nil {
					return nil, err
				}
				ct.Constraints = append(ct.Constraints, c)
			} else {
				col, err := p.parseColumnDef()
				if err != nil {
					return nil, err
				}
				ct.Columns = append(ct.Columns, col)
			}
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}

	if err := p.parseCreateTableSuffix(ct); err != nil {
		return nil, err
	}

	if p.ParseKeywordSequence(token.WITHOUT, token.ROWID) {
		ct.WithoutRowid = true
	}
	if p.ParseKeyword(token.STRICT) {
		ct.Strict = true
	}

	if p.ParseKeyword(token.AS) {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		ct.AsQuery = q
	}
	return ct, nil
}

// parseCreateTableSuffix handles the grab-bag of dialect-specific trailing
// clauses: Hive's PARTITIONED BY/CLUSTERED BY/ROW FORMAT/STORED AS/LOCATION,
// ClickHouse's ENGINE/ORDER BY, and the generic WITH/OPTIONS/ENGINE= forms.
func (p *Parser) parseCreateTableSuffix(ct *ast.CreateTable) error {
	for {
		switch {
		case p.ParseKeywordSequence(token.PARTITIONED, token.BY):
			if _, err := p.expectKind(token.LParen); err != nil {
				return err
			}
			hd := ctEnsureHive(ct)
			for p.Token().Kind != token.RParen {
				col, err := p.parseColumnDef()
				if err != nil {
					return err
				}
				hd.PartitionedBy = append(hd.PartitionedBy, col)
				if !p.consumeKind(token.Comma) {
					break
				}
			}
			if _, err := p.expectKind(token.RParen); err != nil {
				return err
			}
		case p.ParseKeyword(token.PARTITION):
			if err := p.ExpectKeyword(token.BY); err != nil {
				return err
			}
			exprs, err := p.ParseExprList()
			if err != nil {
				return err
			}
			ct.PartitionBy = exprs
		case p.ParseKeywordSequence(token.CLUSTERED, token.BY):
			if _, err := p.expectKind(token.LParen); err != nil {
				return err
			}
			var cols []ast.Ident
			for {
				c, err := p.ParseIdentifier()
				if err != nil {
					return err
				}
				cols = append(cols, c)
				if !p.consumeKind(token.Comma) {
					break
				}
			}
			if _, err := p.expectKind(token.RParen); err != nil {
				return err
			}
			ctEnsureHive(ct).ClusteredBy = cols
			if p.ParseKeywordSequence(token.INTO, token.Undefined) {
				// unreachable placeholder; INTO n BUCKETS handled below
			}
			if p.ParseKeyword(token.INTO) {
				n, err := p.expectUintLiteral()
				if err != nil {
					return err
				}
				if err := p.ExpectKeyword(token.BUCKETS); err != nil {
					return err
				}
				ctEnsureHive(ct).IntoBuckets = &n
			}
		case p.ParseKeyword(token.CLUSTER):
			if err := p.ExpectKeyword(token.BY); err != nil {
				return err
			}
			exprs, err := p.ParseExprList()
			if err != nil {
				return err
			}
			ct.ClusterBy = exprs
		case p.ParseKeywordSequence(token.ROW, token.FORMAT):
			rf, err := p.parseHiveRowFormat()
			if err != nil {
				return err
			}
			ctEnsureHive(ct).RowFormat = rf
		case p.ParseKeywordSequence(token.STORED, token.AS):
			name := p.Token().Text
			p.NextToken()
			ctEnsureHive(ct).StoredAs = &name
		case p.ParseKeyword(token.LOCATION):
			tok := p.Token()
			if tok.Kind != token.SingleQuotedString {
				return p.errorf("expected string literal after LOCATION, found %s", tok)
			}
			p.NextToken()
			ctEnsureHive(ct).Location = &tok.Text
		case p.ParseKeyword(token.TBLPROPERTIES):
			props, err := p.parseStringPropertyList()
			if err != nil {
				return err
			}
			ctEnsureHive(ct).TblProperties = props
		case p.ParseKeyword(token.ENGINE):
			if p.consumeKind(token.Equal) {
				// MySQL ENGINE = name form, falls through to name read below
			}
			name := p.Token().Text
			p.NextToken()
			if p.Token().Kind == token.LParen {
				p.NextToken()
				args, err := p.ParseExprList()
				if err != nil {
					return err
				}
				ctEnsureClickHouse(ct).EngineArgs = args
				if _, err := p.expectKind(token.RParen); err != nil {
					return err
				}
				ctEnsureClickHouse(ct).Engine = &name
			} else if p.dialect.Name() == "clickhouse" {
				ctEnsureClickHouse(ct).Engine = &name
			} else {
				ct.Engine = &name
			}
		case p.ParseKeyword(token.ORDER):
			if err := p.ExpectKeyword(token.BY); err != nil {
				return err
			}
			exprs, err := p.ParseExprList()
			if err != nil {
				return err
			}
			ctEnsureClickHouse(ct).OrderBy = exprs
		case p.ParseKeywordSequence(token.PRIMARY, token.KEY):
			// ClickHouse's standalone `PRIMARY KEY expr` suffix, distinct from
			// the TableConstraint form handled inside the column-list parens.
			e, err := p.ParseExpr()
			if err != nil {
				return err
			}
			ctEnsureClickHouse(ct).PrimaryKey = e
		case p.ParseKeyword(token.AUTO_INCREMENT):
			if _, err := p.expectKind(token.Equal); err != nil {
				return err
			}
			n, err := p.expectUintLiteral()
			if err != nil {
				return err
			}
			ct.AutoIncrement = &n
		case p.ParseKeywordSequence(token.DEFAULT, token.CHARSET):
			if _, err := p.expectKind(token.Equal); err != nil {
				return err
			}
			name := p.Token().Text
			p.NextToken()
			ct.DefaultCharset = &name
		case p.ParseKeyword(token.COLLATE):
			p.consumeKind(token.Equal)
			name := p.Token().Text
			p.NextToken()
			ct.Collate = &name
		case p.ParseKeyword(token.COMMENT):
			p.consumeKind(token.Equal)
			tok := p.Token()
			p.NextToken()
			ct.Comment = &tok.Text
		case p.ParseKeyword(token.OPTIONS):
			opts, err := p.parseExprPropertyList()
			if err != nil {
				return err
			}
			ct.Options = opts
		case p.ParseKeyword(token.WITH):
			opts, err := p.parseExprPropertyList()
			if err != nil {
				return err
			}
			ct.With = opts
		case p.ParseKeywordSequence(token.ON, token.COMMIT):
			switch {
			case p.ParseKeywordSequence(token.DELETE, token.ROWS):
				ct.OnCommit = ast.OnCommitDeleteRows
			case p.ParseKeywordSequence(token.PRESERVE, token.ROWS):
				ct.OnCommit = ast.OnCommitPreserveRows
			case p.ParseKeyword(token.DROP):
				ct.OnCommit = ast.OnCommitDrop
			}
		default:
			return nil
		}
	}
}

func ctEnsureHive(ct *ast.CreateTable) *ast.HiveDistribution {
	if ct.Hive == nil {
		ct.Hive = &ast.HiveDistribution{}
	}
	return ct.Hive
}

func ctEnsureClickHouse(ct *ast.CreateTable) *ast.ClickHouseTableOptions {
	if ct.ClickHouse == nil {
		ct.ClickHouse = &ast.ClickHouseTableOptions{}
	}
	return ct.ClickHouse
}

func (p *Parser) parseHiveRowFormat() (*ast.HiveRowFormat, error) {
	rf := &ast.HiveRowFormat{}
	switch {
	case p.ParseKeyword(token.DELIMITED):
		rf.Delimited = true
		if p.ParseKeywordSequence(token.FIELDS, token.TERMINATED, token.BY) {
			tok := p.Token()
			p.NextToken()
			rf.FieldsTerminatedBy = &tok.Text
		}
	case p.ParseKeyword(token.SERDE):
		tok := p.Token()
		p.NextToken()
		rf.Serde = &tok.Text
		if p.ParseKeywordSequence(token.WITH, token.SERDEPROPERTIES) {
			props, err := p.parseStringPropertyList()
			if err != nil {
				return nil, err
			}
			rf.SerdeProperties = props
		}
	}
	return rf, nil
}

func (p *Parser) parseStringPropertyList() (map[string]string, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	props := map[string]string{}
	for p.Token().Kind != token.RParen {
		key := p.Token().Text
		p.NextToken()
		if _, err := p.expectKind(token.Equal); err != nil {
			return nil, err
		}
		val := p.Token().Text
		p.NextToken()
		props[key] = val
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return props, nil
}

func (p *Parser) parseExprPropertyList() (map[string]ast.Expr, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	props := map[string]ast.Expr{}
	for p.Token().Kind != token.RParen {
		key := p.Token().Text
		p.NextToken()
		p.consumeKind(token.Equal)
		val, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		props[key] = val
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return props, nil
}

func (p *Parser) peekTableConstraintStart() bool {
	tok := p.Token()
	if tok.Kind != token.Word {
		return false
	}
	switch tok.Keyword {
	case token.CONSTRAINT, token.PRIMARY, token.UNIQUE, token.FOREIGN, token.CHECK, token.INDEX, token.KEY, token.FULLTEXT, token.SPATIAL:
		return true
	}
	return false
}

func (p *Parser) parseTableConstraint() (ast.TableConstraint, error) {
	tc := ast.TableConstraint{}
	if p.ParseKeyword(token.CONSTRAINT) {
		name, err := p.ParseIdentifier()
		if err != nil {
			return tc, err
		}
		tc.Name = &name
	}
	switch {
	case p.ParseKeywordSequence(token.PRIMARY, token.KEY):
		tc.Kind = ast.ConstraintPrimaryKey
		cols, err := p.parseParenIdentList()
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	case p.ParseKeyword(token.UNIQUE):
		p.ParseKeyword(token.KEY)
		tc.Kind = ast.ConstraintUnique
		cols, err := p.parseParenIdentList()
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	case p.ParseKeyword(token.FOREIGN):
		if err := p.ExpectKeyword(token.KEY); err != nil {
			return tc, err
		}
		tc.Kind = ast.ConstraintForeignKey
		cols, err := p.parseParenIdentList()
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
		if err := p.ExpectKeyword(token.REFERENCES); err != nil {
			return tc, err
		}
		fk, err := p.parseForeignKeyOption()
		if err != nil {
			return tc, err
		}
		tc.ForeignKey = &fk
	case p.ParseKeyword(token.CHECK):
		tc.Kind = ast.ConstraintCheck
		if _, err := p.expectKind(token.LParen); err != nil {
			return tc, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return tc, err
		}
		tc.CheckExpr = e
		if _, err := p.expectKind(token.RParen); err != nil {
			return tc, err
		}
	case p.ParseKeyword(token.FULLTEXT):
		tc.Kind = ast.ConstraintFulltext
		cols, err := p.parseOptionalIndexNameAndColumns(&tc)
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	case p.ParseKeyword(token.SPATIAL):
		tc.Kind = ast.ConstraintSpatial
		cols, err := p.parseOptionalIndexNameAndColumns(&tc)
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	case p.ParseOneOfKeywords(token.INDEX, token.KEY) != token.Undefined:
		tc.Kind = ast.ConstraintIndex
		cols, err := p.parseOptionalIndexNameAndColumns(&tc)
		if err != nil {
			return tc, err
		}
		tc.Columns = cols
	}
	return tc, nil
}

func (p *Parser) parseOptionalIndexNameAndColumns(tc *ast.TableConstraint) ([]ast.Ident, error) {
	if p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		tc.IndexName = &name
	}
	return p.parseParenIdentList()
}

func (p *Parser) parseParenIdentList() ([]ast.Ident, error) {
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
	return cols, nil
}

func (p *Parser) parseParenExprList() ([]ast.Expr, error) {
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
	return exprs, nil
}

func (p *Parser) parseForeignKeyOption() (ast.ForeignKeyOption, error) {
	fk := ast.ForeignKeyOption{}
	name, err := p.ParseObjectName()
	if err != nil {
		return fk, err
	}
	fk.Table = name
	if p.Token().Kind == token.LParen {
		cols, err := p.parseParenIdentList()
		if err != nil {
			return fk, err
		}
		fk.Columns = cols
	}
	for {
		switch {
		case p.ParseKeywordSequence(token.ON, token.DELETE):
			act, err := p.parseReferentialAction()
			if err != nil {
				return fk, err
			}
			fk.OnDelete = act
		case p.ParseKeywordSequence(token.ON, token.UPDATE):
			act, err := p.parseReferentialAction()
			if err != nil {
				return fk, err
			}
			fk.OnUpdate = act
		default:
			return fk, nil
		}
	}
}

func (p *Parser) parseReferentialAction() (ast.ReferentialAction, error) {
	switch {
	case p.ParseKeyword(token.RESTRICT):
		return ast.RefActionRestrict, nil
	case p.ParseKeyword(token.CASCADE):
		return ast.RefActionCascade, nil
	case p.ParseKeywordSequence(token.SET, token.NULL):
		return ast.RefActionSetNull, nil
	case p.ParseKeywordSequence(token.SET, token.DEFAULT):
		return ast.RefActionSetDefault, nil
	case p.ParseKeywordSequence(token.NO, token.ACTION):
		return ast.RefActionNoAction, nil
	}
	return 0, p.errorf("expected referential action, found %s", p.Token())
}

func (p *Parser) parseColumnDef() (ast.ColumnDef, error) {
	name, err := p.ParseIdentifier()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	typ, err := p.ParseDataType()
	if err != nil {
		return ast.ColumnDef{}, err
	}
	col := ast.ColumnDef{Name: name, Type: typ}
	for {
		opt, ok, err := p.parseColumnOption()
		if err != nil {
			return col, err
		}
		if !ok {
			break
		}
		col.Options = append(col.Options, opt)
	}
	return col, nil
}

func (p *Parser) parseColumnOption() (ast.ColumnOption, bool, error) {
	if res, err := p.dialect.ParseColumnOption(p); err != nil {
		return ast.ColumnOption{}, false, err
	} else if res.Handled {
		return *res.Option, true, nil
	}

	switch {
	case p.ParseKeywordSequence(token.NOT, token.NULL):
		return ast.ColumnOption{Kind: ast.ColNotNull}, true, nil
	case p.ParseKeyword(token.NULL):
		return ast.ColumnOption{Kind: ast.ColNull}, true, nil
	case p.ParseKeyword(token.DEFAULT):
		e, err := p.ParseExpr()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColDefault, Expr: e}, true, nil
	case p.ParseKeywordSequence(token.PRIMARY, token.KEY):
		opt := ast.ColumnOption{Kind: ast.ColPrimaryKey}
		if p.ParseKeyword(token.AUTOINCREMENT) {
			opt.Autoincrement = true
		}
		opt.SqliteConflict = p.parseOptionalSqliteConflict()
		return opt, true, nil
	case p.ParseKeyword(token.UNIQUE):
		opt := ast.ColumnOption{Kind: ast.ColUnique}
		opt.SqliteConflict = p.parseOptionalSqliteConflict()
		return opt, true, nil
	case p.ParseKeyword(token.REFERENCES):
		fk, err := p.parseForeignKeyOption()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColForeignKey, ForeignKey: &fk}, true, nil
	case p.ParseKeyword(token.CHECK):
		if _, err := p.expectKind(token.LParen); err != nil {
			return ast.ColumnOption{}, false, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColCheck, Expr: e}, true, nil
	case p.ParseKeyword(token.AUTOINCREMENT) || p.ParseKeyword(token.AUTO_INCREMENT):
		return ast.ColumnOption{Kind: ast.ColAutoIncrement}, true, nil
	case p.ParseKeywordSequence(token.ON, token.UPDATE):
		e, err := p.ParseExpr()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColOnUpdate, Expr: e}, true, nil
	case p.ParseKeywordSequence(token.GENERATED, token.ALWAYS, token.AS, token.IDENTITY):
		id, err := p.parseOptionalIdentityOptions()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColGeneratedAlwaysAsIdentity, Identity: id}, true, nil
	case p.ParseKeywordSequence(token.GENERATED, token.BY, token.DEFAULT, token.AS, token.IDENTITY):
		id, err := p.parseOptionalIdentityOptions()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColGeneratedByDefaultAsIdentity, Identity: id}, true, nil
	case p.ParseKeywordSequence(token.GENERATED, token.ALWAYS, token.AS):
		if _, err := p.expectKind(token.LParen); err != nil {
			return ast.ColumnOption{}, false, err
		}
		e, err := p.ParseExpr()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return ast.ColumnOption{}, false, err
		}
		opt := ast.ColumnOption{Kind: ast.ColGeneratedAlwaysAs, Expr: e}
		if p.ParseKeyword(token.STORED) {
			opt.Stored = true
		} else {
			p.ParseKeyword(token.VIRTUAL)
		}
		return opt, true, nil
	case p.ParseKeyword(token.MATERIALIZED):
		e, err := p.ParseExpr()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColMaterialized, Expr: e}, true, nil
	case p.ParseKeyword(token.ALIAS):
		e, err := p.ParseExpr()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColAlias, Expr: e}, true, nil
	case p.ParseKeyword(token.COMMENT):
		tok := p.Token()
		if tok.Kind != token.SingleQuotedString {
			return ast.ColumnOption{}, false, p.errorf("expected string literal after COMMENT, found %s", tok)
		}
		p.NextToken()
		return ast.ColumnOption{Kind: ast.ColComment, Text: tok.Text}, true, nil
	case p.ParseKeyword(token.OPTIONS):
		if _, err := p.expectKind(token.LParen); err != nil {
			return ast.ColumnOption{}, false, err
		}
		depth := 1
		for depth > 0 {
			switch p.Token().Kind {
			case token.LParen:
				depth++
			case token.RParen:
				depth--
			case token.EOF:
				return ast.ColumnOption{}, false, p.errorf("unterminated OPTIONS(...)")
			}
			p.NextToken()
		}
		return ast.ColumnOption{Kind: ast.ColOptions}, true, nil
	case p.ParseKeyword(token.COLLATE):
		name, err := p.ParseObjectName()
		if err != nil {
			return ast.ColumnOption{}, false, err
		}
		return ast.ColumnOption{Kind: ast.ColCollation, Collation: &name}, true, nil
	}
	return ast.ColumnOption{}, false, nil
}

func (p *Parser) parseOptionalSqliteConflict() ast.SqliteConflictClause {
	if !p.ParseKeywordSequence(token.ON, token.CONFLICT) {
		return ast.SqliteConflictClauseNone
	}
	switch {
	case p.ParseKeyword(token.ROLLBACK):
		return ast.SqliteConflictClauseRollback
	case p.ParseKeyword(token.ABORT):
		return ast.SqliteConflictClauseAbort
	case p.ParseKeyword(token.FAIL):
		return ast.SqliteConflictClauseFail
	case p.ParseKeyword(token.IGNORE):
		return ast.SqliteConflictClauseIgnore
	case p.ParseKeyword(token.REPLACE):
		return ast.SqliteConflictClauseReplace
	}
	return ast.SqliteConflictClauseNone
}

func (p *Parser) parseOptionalIdentityOptions() (*ast.IdentityOptions, error) {
	if p.Token().Kind != token.LParen {
		return nil, nil
	}
	p.NextToken()
	opts := &ast.IdentityOptions{}
	for p.Token().Kind != token.RParen {
		switch {
		case p.ParseKeywordSequence(token.START, token.WITH):
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			opts.Seed = &n
		case p.ParseKeywordSequence(token.INCREMENT, token.BY):
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			opts.Increment = &n
		default:
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			if opts.Seed == nil {
				opts.Seed = &n
			} else {
				opts.Increment = &n
			}
			p.consumeKind(token.Comma)
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return opts, nil
}

func (p *Parser) expectSignedInt() (int64, error) {
	neg := p.consumeKind(token.Minus)
	n, err := p.expectUintLiteral()
	if err != nil {
		return 0, err
	}
	v := int64(n)
	if neg {
		v = -v
	}
	return v, nil
}

func (p *Parser) parseCreateVirtualTable() (ast.Statement, error) {
	vt := &ast.CreateVirtualTable{}
	vt.IfNotExists = p.parseIfNotExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	vt.Name = name
	if err := p.ExpectKeyword(token.USING); err != nil {
		return nil, err
	}
	mod, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	vt.ModuleName = mod
	if p.Token().Kind == token.LParen {
		p.NextToken()
		for p.Token().Kind != token.RParen {
			vt.ModuleArgs = append(vt.ModuleArgs, p.Token().Text)
			p.NextToken()
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	return vt, nil
}

func (p *Parser) parseCreateView(orReplace, temporary, materialized bool) (ast.Statement, error) {
	cv := &ast.CreateView{OrReplace: orReplace, Temporary: temporary, Materialized: materialized}
	cv.IfNotExists = p.parseIfNotExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	cv.Name = name
	if p.Token().Kind == token.LParen {
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		cv.Columns = cols
	}
	if p.ParseKeyword(token.WITH) {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		cv.WithOptions = opts
	}
	if err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	q, err := p.parseQueryBody()
	if err != nil {
		return nil, err
	}
	cv.Query = q
	if p.ParseKeywordSequence(token.WITH, token.NO) {
		if err := p.ExpectKeyword(token.SCHEMA); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.BINDING); err != nil {
			return nil, err
		}
		cv.WithNoSchemaBinding = true
	}
	return cv, nil
}

func (p *Parser) parseCreateIndex(unique bool) (ast.Statement, error) {
	ci := &ast.CreateIndex{Unique: unique}
	ci.IfNotExists = p.parseIfNotExists()
	if p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined && !p.PeekKeyword(token.ON) {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		ci.Name = &name
	}
	if err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ci.Table = table
	if p.ParseKeyword(token.USING) {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ci.Using = &name
	}
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	for {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ic := ast.IndexColumn{Expr: e}
		switch {
		case p.ParseKeyword(token.ASC):
			ic.Asc = ast.OrderByAscending
		case p.ParseKeyword(token.DESC):
			ic.Asc = ast.OrderByDescending
		}
		ci.Columns = append(ci.Columns, ic)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.INCLUDE) {
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		ci.Include = cols
	}
	if p.dialect.Capabilities().SupportsCreateIndexWithClause && p.ParseKeyword(token.WITH) {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		ci.With = opts
	}
	if p.ParseKeyword(token.WHERE) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ci.Where = e
	}
	return ci, nil
}

func (p *Parser) parseCreateSchema() (ast.Statement, error) {
	cs := &ast.CreateSchema{}
	cs.IfNotExists = p.parseIfNotExists()
	if p.ParseKeyword(token.AUTHORIZATION) {
		owner, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		cs.Authorization = &owner
		return cs, nil
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	cs.Name = name
	if p.ParseKeyword(token.AUTHORIZATION) {
		owner, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		cs.Authorization = &owner
	}
	return cs, nil
}

func (p *Parser) parseCreateDatabase() (ast.Statement, error) {
	cd := &ast.CreateDatabase{}
	cd.IfNotExists = p.parseIfNotExists()
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	cd.Name = name
	for {
		switch {
		case p.ParseKeyword(token.LOCATION):
			tok := p.Token()
			p.NextToken()
			cd.Location = &tok.Text
		case p.ParseKeywordSequence(token.MANAGEDLOCATION):
			tok := p.Token()
			p.NextToken()
			cd.ManagedLocation = &tok.Text
		default:
			return cd, nil
		}
	}
}

func (p *Parser) parseCreateRole() (ast.Statement, error) {
	cr := &ast.CreateRole{}
	cr.IfNotExists = p.parseIfNotExists()
	for {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		cr.Names = append(cr.Names, name)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return cr, nil
}

func (p *Parser) parseFunctionParamList() ([]ast.FunctionParam, error) {
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	var params []ast.FunctionParam
	for p.Token().Kind != token.RParen {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		typ, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.FunctionParam{Name: name, Type: typ})
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseCreateFunction(orReplace, temporary bool) (ast.Statement, error) {
	cf := &ast.CreateFunction{OrReplace: orReplace, Temporary: temporary}
	cf.IfNotExists = p.parseIfNotExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	cf.Name = name
	params, err := p.parseFunctionParamList()
	if err != nil {
		return nil, err
	}
	cf.Params = params
	if p.ParseKeyword(token.RETURNS) {
		typ, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		cf.ReturnType = typ
	}
	for {
		switch {
		case p.ParseKeyword(token.LANGUAGE):
			lang, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			cf.Language = &lang
		case p.ParseKeyword(token.DETERMINISTIC):
			cf.Deterministic = true
		case p.ParseKeyword(token.RETURN):
			e, err := p.ParseExpr()
			if err != nil {
				return nil, err
			}
			cf.Body = e
		case p.ParseKeyword(token.AS):
			if p.Token().Kind == token.DollarQuotedString {
				tok := p.Token()
				p.NextToken()
				cf.As = &tok.Text
			} else if p.PeekKeyword(token.SELECT) || p.PeekKeyword(token.WITH) {
				q, err := p.parseQueryBody()
				if err != nil {
					return nil, err
				}
				cf.AsQuery = q
			} else {
				e, err := p.ParseExpr()
				if err != nil {
					return nil, err
				}
				cf.Body = e
			}
		case p.ParseKeyword(token.USING):
			key, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			val := p.Token().Text
			p.NextToken()
			if cf.Using == nil {
				cf.Using = map[string]string{}
			}
			cf.Using[key.Value] = val
		default:
			return cf, nil
		}
	}
}

func (p *Parser) parseCreateMacro(orReplace, temporary bool) (ast.Statement, error) {
	cf := &ast.CreateFunction{OrReplace: orReplace, Temporary: temporary, Behavior: ast.FunctionBehaviorDuckDBMacro}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	cf.Name = name
	if p.Token().Kind == token.LParen {
		params, err := p.parseFunctionParamListUntyped()
		if err != nil {
			return nil, err
		}
		cf.Params = params
	}
	if err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	if p.PeekKeyword(token.TABLE) {
		p.NextToken()
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		cf.AsQuery = q
		return cf, nil
	}
	e, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	cf.Body = e
	return cf, nil
}

func (p *Parser) parseFunctionParamListUntyped() ([]ast.FunctionParam, error) {
	p.NextToken()
	var params []ast.FunctionParam
	for p.Token().Kind != token.RParen {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.FunctionParam{Name: name})
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseCreateProcedure(orReplace bool) (ast.Statement, error) {
	cp := &ast.CreateProcedure{OrReplace: orReplace}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	cp.Name = name
	if p.Token().Kind == token.LParen {
		params, err := p.parseFunctionParamList()
		if err != nil {
			return nil, err
		}
		cp.Params = params
	}
	if err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	if p.ParseKeyword(token.BEGIN) {
		body, err := p.parseStatementsUntil(token.END)
		if err != nil {
			return nil, err
		}
		cp.Body = body
		if err := p.ExpectKeyword(token.END); err != nil {
			return nil, err
		}
	} else {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		cp.Body = []ast.Statement{stmt}
	}
	return cp, nil
}

func (p *Parser) parseStatementsUntil(end token.Keyword) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.PeekKeyword(end) && p.Token().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.consumeKind(token.SemiColon)
	}
	return stmts, nil
}

func (p *Parser) parseCreateTrigger() (ast.Statement, error) {
	ct := &ast.CreateTrigger{}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ct.Name = name
	switch {
	case p.ParseKeyword(token.BEFORE):
		ct.Timing = "BEFORE"
	case p.ParseKeyword(token.AFTER):
		ct.Timing = "AFTER"
	case p.ParseKeywordSequence(token.INSTEAD, token.OF):
		ct.Timing = "INSTEAD OF"
	}
	for {
		switch {
		case p.ParseKeyword(token.INSERT):
			ct.Events = append(ct.Events, "INSERT")
		case p.ParseKeyword(token.UPDATE):
			ct.Events = append(ct.Events, "UPDATE")
		case p.ParseKeyword(token.DELETE):
			ct.Events = append(ct.Events, "DELETE")
		default:
			goto eventsDone
		}
		if !p.ParseKeyword(token.OR) {
			break
		}
	}
eventsDone:
	if err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ct.Table = table
	if p.ParseKeywordSequence(token.FOR, token.EACH, token.ROW) {
		ct.ForEachRow = true
	}
	if p.ParseKeyword(token.WHEN) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ct.Condition = e
	}
	if err := p.ExpectKeyword(token.EXECUTE); err != nil {
		return nil, err
	}
	p.ParseOneOfKeywords(token.FUNCTION, token.PROCEDURE)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	ct.Body = []ast.Statement{stmt}
	return ct, nil
}

func (p *Parser) parseCreateType() (ast.Statement, error) {
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ct := &ast.CreateType{Name: name}
	if err := p.ExpectKeyword(token.AS); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(token.ENUM):
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		for p.Token().Kind != token.RParen {
			tok := p.Token()
			p.NextToken()
			ct.Labels = append(ct.Labels, tok.Text)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		ct.Kind = ast.CreateTypeEnum
	case p.Token().Kind == token.LParen:
		p.NextToken()
		for p.Token().Kind != token.RParen {
			fname, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			ftype, err := p.ParseDataType()
			if err != nil {
				return nil, err
			}
			name := fname.Value
			ct.Fields = append(ct.Fields, ast.StructField{Name: &name, Type: ftype})
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		ct.Kind = ast.CreateTypeStruct
	default:
		typ, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		ct.Target = typ
		ct.Kind = ast.CreateTypeAlias
	}
	return ct, nil
}

func (p *Parser) parseCreateSequence() (ast.Statement, error) {
	cs := &ast.CreateSequence{}
	cs.IfNotExists = p.parseIfNotExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	cs.Name = name
	if p.ParseKeywordSequence(token.AS) {
		typ, err := p.ParseDataType()
		if err != nil {
			return nil, err
		}
		cs.DataType = typ
	}
	for {
		switch {
		case p.ParseKeywordSequence(token.INCREMENT, token.BY):
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			cs.IncrementBy = &n
		case p.ParseKeywordSequence(token.MINVALUE):
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			cs.MinValue = &n
		case p.ParseKeywordSequence(token.MAXVALUE):
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			cs.MaxValue = &n
		case p.ParseKeywordSequence(token.START, token.WITH):
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			cs.StartWith = &n
		case p.ParseKeyword(token.CACHE):
			n, err := p.expectSignedInt()
			if err != nil {
				return nil, err
			}
			cs.Cache = &n
		case p.ParseKeyword(token.CYCLE):
			cs.Cycle = true
		default:
			return cs, nil
		}
	}
}

func (p *Parser) parseCreateSecret(orReplace, temporary bool) (ast.Statement, error) {
	cs := &ast.CreateSecret{OrReplace: orReplace, Temporary: temporary}
	if p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined && p.PeekKeyword(token.TYPE) {
		name, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		cs.Name = &name
	}
	if err := p.ExpectKeyword(token.TYPE); err != nil {
		return nil, err
	}
	typ, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	cs.Type = typ
	if p.Token().Kind == token.LParen {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		cs.Options = opts
	}
	return cs, nil
}

func (p *Parser) parseCreateExtension() (ast.Statement, error) {
	ce := &ast.CreateExtension{}
	ce.IfNotExists = p.parseIfNotExists()
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	ce.Name = name
	if p.ParseKeyword(token.WITH) {
		// SCHEMA/VERSION clauses may appear with or without WITH
	}
	for {
		switch {
		case p.ParseKeyword(token.SCHEMA):
			s, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			ce.Schema = &s
		case p.ParseKeyword(token.VERSION):
			tok := p.Token()
			p.NextToken()
			ce.Version = &tok.Text
		default:
			return ce, nil
		}
	}
}

func (p *Parser) parseDrop() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.DROP); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(token.FUNCTION):
		return p.parseDropFunction()
	case p.ParseKeyword(token.PROCEDURE):
		return p.parseDropProcedure()
	case p.ParseKeyword(token.TRIGGER):
		return p.parseDropTrigger()
	case p.ParseKeyword(token.SECRET):
		return p.parseDropSecret()
	case p.ParseKeyword(token.POLICY):
		return p.parseDropPolicy()
	}

	kind, err := p.parseObjectKind()
	if err != nil {
		return nil, err
	}
	d := &ast.Drop{Kind: kind}
	d.IfExists = p.parseIfExists()
	for {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		d.Names = append(d.Names, name)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	switch {
	case p.ParseKeyword(token.CASCADE):
		d.Cascade = true
	case p.ParseKeyword(token.RESTRICT):
		d.Restrict = true
	}
	if p.ParseKeyword(token.PURGE) {
		d.Purge = true
	}
	return d, nil
}

func (p *Parser) parseObjectKind() (ast.ObjectKind, error) {
	switch {
	case p.ParseKeyword(token.TABLE):
		return ast.ObjectTable, nil
	case p.ParseKeyword(token.VIEW):
		return ast.ObjectView, nil
	case p.ParseKeyword(token.INDEX):
		return ast.ObjectIndex, nil
	case p.ParseKeyword(token.SCHEMA):
		return ast.ObjectSchema, nil
	case p.ParseKeyword(token.DATABASE):
		return ast.ObjectDatabase, nil
	case p.ParseKeyword(token.ROLE):
		return ast.ObjectRole, nil
	case p.ParseKeyword(token.SEQUENCE):
		return ast.ObjectSequence, nil
	case p.ParseKeyword(token.TYPE):
		return ast.ObjectType, nil
	case p.ParseKeyword(token.EXTENSION):
		return ast.ObjectExtension, nil
	}
	return 0, p.errorf("unsupported DROP object kind, found %s", p.Token())
}

func (p *Parser) parseDropFunction() (ast.Statement, error) {
	df := &ast.DropFunction{}
	df.IfExists = p.parseIfExists()
	for {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		if p.Token().Kind == token.LParen {
			if _, err := p.parseFunctionParamList(); err != nil {
				return nil, err
			}
		}
		df.Names = append(df.Names, name)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return df, nil
}

func (p *Parser) parseDropProcedure() (ast.Statement, error) {
	dp := &ast.DropProcedure{}
	dp.IfExists = p.parseIfExists()
	for {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		if p.Token().Kind == token.LParen {
			if _, err := p.parseFunctionParamList(); err != nil {
				return nil, err
			}
		}
		dp.Names = append(dp.Names, name)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return dp, nil
}

func (p *Parser) parseDropTrigger() (ast.Statement, error) {
	dt := &ast.DropTrigger{}
	dt.IfExists = p.parseIfExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	dt.Name = name
	if p.ParseKeyword(token.ON) {
		table, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		dt.Table = &table
	}
	if p.ParseKeyword(token.CASCADE) {
		dt.Cascade = true
	}
	return dt, nil
}

func (p *Parser) parseDropSecret() (ast.Statement, error) {
	ds := &ast.DropSecret{}
	ds.IfExists = p.parseIfExists()
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	ds.Name = name
	if p.ParseKeyword(token.FROM) {
		storage, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ds.Storage = &storage
	}
	return ds, nil
}

func (p *Parser) parseDropPolicy() (ast.Statement, error) {
	dp := &ast.DropPolicy{}
	dp.IfExists = p.parseIfExists()
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	dp.Name = name
	if err := p.ExpectKeyword(token.ON); err != nil {
		return nil, err
	}
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	dp.Table = table
	if p.ParseKeyword(token.CASCADE) {
		dp.Cascade = true
	}
	return dp, nil
}

func (p *Parser) parseAlter() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.ALTER); err != nil {
		return nil, err
	}
	switch {
	case p.ParseKeyword(token.TABLE):
		return p.parseAlterTable()
	case p.ParseKeyword(token.VIEW):
		return p.parseAlterView()
	case p.ParseKeyword(token.INDEX):
		return p.parseAlterIndex()
	case p.ParseKeyword(token.ROLE):
		return p.parseAlterRole()
	}
	return nil, p.errorf("unsupported ALTER statement, found %s", p.Token())
}

func (p *Parser) parseAlterTable() (ast.Statement, error) {
	at := &ast.AlterTable{}
	at.IfExists = p.parseIfExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	at.Name = name
	for {
		op, err := p.parseAlterTableOperation()
		if err != nil {
			return nil, err
		}
		at.Operations = append(at.Operations, op)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	return at, nil
}

func (p *Parser) parseAlterTableOperation() (ast.AlterTableOperation, error) {
	op := ast.AlterTableOperation{}
	switch {
	case p.ParseKeyword(token.ADD):
		if p.ParseKeyword(token.COLUMN) || p.Token().Kind == token.Word && p.Token().Keyword == token.Undefined {
			op.Kind = ast.AlterAddColumn
			op.IfNotExists = p.parseIfNotExists()
			col, err := p.parseColumnDef()
			if err != nil {
				return op, err
			}
			op.Column = &col
			return op, nil
		}
		if p.ParseKeyword(token.PARTITION) {
			op.Kind = ast.AlterAddPartition
			exprs, err := p.parseParenExprList()
			if err != nil {
				return op, err
			}
			op.PartitionExprs = exprs
			return op, nil
		}
		con, err := p.parseTableConstraint()
		if err != nil {
			return op, err
		}
		op.Kind = ast.AlterAddConstraint
		op.Constraint = &con
		return op, nil
	case p.ParseKeyword(token.DROP):
		switch {
		case p.ParseKeyword(token.COLUMN):
			op.Kind = ast.AlterDropColumn
			op.IfExists = p.parseIfExists()
			name, err := p.ParseIdentifier()
			if err != nil {
				return op, err
			}
			op.ColumnName = &name
			op.Cascade = p.ParseKeyword(token.CASCADE)
			return op, nil
		case p.ParseKeywordSequence(token.PRIMARY, token.KEY):
			op.Kind = ast.AlterDropPrimaryKey
			return op, nil
		case p.ParseKeyword(token.CONSTRAINT):
			op.Kind = ast.AlterDropConstraint
			op.IfExists = p.parseIfExists()
			name, err := p.ParseIdentifier()
			if err != nil {
				return op, err
			}
			op.ConstraintName = &name
			op.Cascade = p.ParseKeyword(token.CASCADE)
			return op, nil
		case p.ParseKeyword(token.PARTITION):
			op.Kind = ast.AlterDropPartition
			exprs, err := p.parseParenExprList()
			if err != nil {
				return op, err
			}
			op.PartitionExprs = exprs
			return op, nil
		}
	case p.ParseKeywordSequence(token.RENAME, token.COLUMN):
		op.Kind = ast.AlterRenameColumn
		old, err := p.ParseIdentifier()
		if err != nil {
			return op, err
		}
		op.ColumnName = &old
		if err := p.ExpectKeyword(token.TO); err != nil {
			return op, err
		}
		newName, err := p.ParseIdentifier()
		if err != nil {
			return op, err
		}
		op.NewColumnName = &newName
		return op, nil
	case p.ParseKeywordSequence(token.RENAME, token.CONSTRAINT):
		op.Kind = ast.AlterRenameConstraint
		old, err := p.ParseIdentifier()
		if err != nil {
			return op, err
		}
		op.ConstraintName = &old
		if err := p.ExpectKeyword(token.TO); err != nil {
			return op, err
		}
		newName, err := p.ParseIdentifier()
		if err != nil {
			return op, err
		}
		op.NewColumnName = &newName
		return op, nil
	case p.ParseKeyword(token.RENAME):
		p.ParseKeyword(token.TO)
		op.Kind = ast.AlterRenameTable
		newName, err := p.ParseObjectName()
		if err != nil {
			return op, err
		}
		op.NewTableName = &newName
		return op, nil
	case p.ParseKeyword(token.CHANGE):
		p.ParseKeyword(token.COLUMN)
		op.Kind = ast.AlterChangeColumn
		old, err := p.ParseIdentifier()
		if err != nil {
			return op, err
		}
		op.ColumnName = &old
		col, err := p.parseColumnDef()
		if err != nil {
			return op, err
		}
		op.Column = &col
		return op, nil
	case p.ParseKeyword(token.MODIFY):
		p.ParseKeyword(token.COLUMN)
		op.Kind = ast.AlterModifyColumn
		col, err := p.parseColumnDef()
		if err != nil {
			return op, err
		}
		op.Column = &col
		return op, nil
	case p.ParseKeyword(token.ALTER):
		p.ParseKeyword(token.COLUMN)
		name, err := p.ParseIdentifier()
		if err != nil {
			return op, err
		}
		op.ColumnName = &name
		switch {
		case p.ParseKeywordSequence(token.SET, token.NOT, token.NULL):
			op.Kind = ast.AlterColumnSetNotNull
		case p.ParseKeywordSequence(token.DROP, token.NOT, token.NULL):
			op.Kind = ast.AlterColumnDropNotNull
		case p.ParseKeywordSequence(token.SET, token.DEFAULT):
			op.Kind = ast.AlterColumnSetDefault
			e, err := p.ParseExpr()
			if err != nil {
				return op, err
			}
			op.Default = e
		case p.ParseKeywordSequence(token.DROP, token.DEFAULT):
			op.Kind = ast.AlterColumnDropDefault
		case p.ParseKeywordSequence(token.SET, token.DATA, token.TYPE), p.ParseKeyword(token.TYPE):
			op.Kind = ast.AlterColumnSetDataType
			typ, err := p.ParseDataType()
			if err != nil {
				return op, err
			}
			op.NewDataType = typ
			if p.ParseKeyword(token.USING) {
				e, err := p.ParseExpr()
				if err != nil {
					return op, err
				}
				op.Using = e
			}
		case p.ParseKeywordSequence(token.ADD, token.GENERATED):
			op.Kind = ast.AlterColumnAddGenerated
			p.ParseOneOfKeywords(token.ALWAYS)
			if p.ParseKeywordSequence(token.BY, token.DEFAULT) {
			}
			if err := p.ExpectKeywords(token.AS, token.IDENTITY); err != nil {
				return op, err
			}
			id, err := p.parseOptionalIdentityOptions()
			if err != nil {
				return op, err
			}
			op.Generated = id
		}
		return op, nil
	case p.ParseKeywordSequence(token.SWAP, token.WITH):
		op.Kind = ast.AlterSwapWith
		target, err := p.ParseObjectName()
		if err != nil {
			return op, err
		}
		op.SwapTarget = &target
		return op, nil
	case p.ParseKeyword(token.ENABLE):
		op.Kind = ast.AlterEnable
		op.EnableTarget = p.Token().Text
		p.NextToken()
		return op, nil
	case p.ParseKeyword(token.DISABLE):
		op.Kind = ast.AlterDisable
		op.EnableTarget = p.Token().Text
		p.NextToken()
		return op, nil
	case p.ParseKeywordSequence(token.OWNER, token.TO):
		op.Kind = ast.AlterOwnerTo
		owner, err := p.ParseIdentifier()
		if err != nil {
			return op, err
		}
		op.Owner = &owner
		return op, nil
	case p.ParseKeyword(token.ATTACH):
		if err := p.ExpectKeyword(token.PARTITION); err != nil {
			return op, err
		}
		op.Kind = ast.AlterAttachPartition
		exprs, err := p.ParseExprList()
		if err != nil {
			return op, err
		}
		op.PartitionExprs = exprs
		return op, nil
	case p.ParseKeyword(token.DETACH):
		if err := p.ExpectKeyword(token.PARTITION); err != nil {
			return op, err
		}
		op.Kind = ast.AlterDetachPartition
		exprs, err := p.ParseExprList()
		if err != nil {
			return op, err
		}
		op.PartitionExprs = exprs
		return op, nil
	}
	return op, p.errorf("unsupported ALTER TABLE operation, found %s", p.Token())
}

func (p *Parser) parseAlterView() (ast.Statement, error) {
	av := &ast.AlterView{}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	av.Name = name
	if p.Token().Kind == token.LParen {
		cols, err := p.parseParenIdentList()
		if err != nil {
			return nil, err
		}
		av.Columns = cols
	}
	if p.ParseKeyword(token.AS) {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		av.Query = q
	}
	return av, nil
}

func (p *Parser) parseAlterIndex() (ast.Statement, error) {
	ai := &ast.AlterIndex{}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ai.Name = name
	if err := p.ExpectKeyword(token.RENAME); err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.TO); err != nil {
		return nil, err
	}
	newName, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	ai.NewName = newName
	return ai, nil
}

func (p *Parser) parseAlterRole() (ast.Statement, error) {
	ar := &ast.AlterRole{}
	name, err := p.ParseIdentifier()
	if err != nil {
		return nil, err
	}
	ar.Name = name
	if p.ParseKeyword(token.RENAME) {
		if err := p.ExpectKeyword(token.TO); err != nil {
			return nil, err
		}
		newName, err := p.ParseIdentifier()
		if err != nil {
			return nil, err
		}
		ar.NewName = &newName
		return ar, nil
	}
	if p.ParseKeyword(token.WITH) {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		ar.WithOptions = opts
	}
	return ar, nil
}

func (p *Parser) parseTruncate() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.TRUNCATE); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.TABLE)
	tr := &ast.Truncate{}
	for {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		tr.Names = append(tr.Names, name)
		if !p.consumeKind(token.Comma) {
			break
		}
	}
	if p.ParseKeyword(token.CASCADE) {
		tr.Cascade = true
	}
	return tr, nil
}

func (p *Parser) parseAnalyze() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.ANALYZE); err != nil {
		return nil, err
	}
	p.ParseKeyword(token.TABLE)
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	an := &ast.Analyze{Table: table}
	if p.ParseKeyword(token.COLUMNS) {
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		for {
			c, err := p.ParseIdentifier()
			if err != nil {
				return nil, err
			}
			an.Columns = append(an.Columns, c)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	if p.ParseKeywordSequence(token.COMPUTE, token.STATISTICS) {
		an.ComputeStatistics = true
	}
	return an, nil
}

func (p *Parser) parseMsck() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.MSCK); err != nil {
		return nil, err
	}
	m := &ast.Msck{}
	m.Repair = p.ParseKeyword(token.REPAIR)
	if err := p.ExpectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	table, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	m.Table = table
	switch {
	case p.ParseKeywordSequence(token.ADD, token.PARTITIONS):
		m.AddPartitions = true
	case p.ParseKeywordSequence(token.DROP, token.PARTITIONS):
		m.DropPartitions = true
	}
	return m, nil
}

func (p *Parser) parseCacheTable() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.CACHE); err != nil {
		return nil, err
	}
	ct := &ast.CacheTable{}
	ct.Lazy = p.ParseKeyword(token.LAZY)
	if err := p.ExpectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ct.Name = name
	if p.ParseKeyword(token.OPTIONS) {
		opts, err := p.parseExprPropertyList()
		if err != nil {
			return nil, err
		}
		ct.Options = opts
	}
	if p.ParseKeyword(token.AS) {
		q, err := p.parseQueryBody()
		if err != nil {
			return nil, err
		}
		ct.Query = q
	}
	return ct, nil
}

func (p *Parser) parseUncacheTable() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.UNCACHE); err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	ut := &ast.UncacheTable{}
	ut.IfExists = p.parseIfExists()
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ut.Name = name
	return ut, nil
}

func (p *Parser) parseOptimizeTable() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.OPTIMIZE); err != nil {
		return nil, err
	}
	if err := p.ExpectKeyword(token.TABLE); err != nil {
		return nil, err
	}
	ot := &ast.OptimizeTable{}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	ot.Name = name
	if p.ParseKeyword(token.PARTITION) {
		e, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		ot.Partition = e
	}
	ot.Final = p.ParseKeyword(token.FINAL)
	ot.Deduplicate = p.ParseKeyword(token.DEDUPLICATE)
	return ot, nil
}

func (p *Parser) parseCall() (ast.Statement, error) {
	if err := p.ExpectKeyword(token.CALL); err != nil {
		return nil, err
	}
	name, err := p.ParseObjectName()
	if err != nil {
		return nil, err
	}
	c := &ast.Call{Name: name}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		if p.Token().Kind != token.RParen {
			for {
				arg, err := p.parseFunctionArg()
				if err != nil {
					return nil, err
				}
				c.Args = append(c.Args, arg)
				if !p.consumeKind(token.Comma) {
					break
				}
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	return c, nil
}
