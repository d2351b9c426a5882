package parser

import (
	"strconv"
	"strings"

	"github.com/nilbridge/sqlfront/pkg/ast"
	"github.com/nilbridge/sqlfront/pkg/token"
)

// ParseDataType parses a SQL type name, including the dialect-parametric
// shapes (ClickHouse's Nullable/LowCardinality/FixedString/DateTime64,
// BigQuery/DuckDB's ARRAY<T>/STRUCT<...>, Postgres array suffixes, ...).
func (p *Parser) ParseDataType() (ast.DataType, error) {
	base, err := p.parseDataTypeBase()
	if err != nil {
		return nil, err
	}
	for p.Token().Kind == token.LBracket {
		p.NextToken()
		var length *uint64
		withLength := false
		if p.Token().Kind == token.Number {
			withLength = true
			n, err := parseUint(p.Token().Text)
			if err != nil {
				return nil, err
			}
			length = &n
			p.NextToken()
		}
		if _, err := p.expectKind(token.RBracket); err != nil {
			return nil, err
		}
		base = &ast.ArrayType{Element: base, WithLength: withLength, Length: length}
	}
	return base, nil
}

func parseUint(text string) (uint64, error) { return strconv.ParseUint(text, 10, 64) }

func (p *Parser) parseDataTypeBase() (ast.DataType, error) {
	tok := p.Token()
	if tok.Kind != token.Word {
		name, err := p.ParseObjectName()
		if err != nil {
			return nil, err
		}
		return &ast.CustomType{Name: name}, nil
	}
	name := strings.ToUpper(tok.Text)

	switch tok.Keyword {
	case token.ARRAY:
		p.NextToken()
		if p.consumeKind(token.LessThan) {
			elem, err := p.ParseDataType()
			if err != nil {
				return nil, err
			}
			if err := p.expectGreaterThan(); err != nil {
				return nil, err
			}
			return &ast.ArrayOfType{Element: elem}, nil
		}
		if p.Token().Kind == token.LParen {
			p.NextToken()
			elem, err := p.ParseDataType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectKind(token.RParen); err != nil {
				return nil, err
			}
			return &ast.ArrayOfType{Element: elem}, nil
		}
		return &ast.CustomType{Name: ast.ObjectName{Parts: []ast.Ident{{Value: "ARRAY"}}}}, nil
	case token.MAP:
		p.NextToken()
		if p.consumeKind(token.LessThan) {
			key, err := p.ParseDataType()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectKind(token.Comma); err != nil {
				return nil, err
			}
			val, err := p.ParseDataType()
			if err != nil {
				return nil, err
			}
			if err := p.expectGreaterThan(); err != nil {
				return nil, err
			}
			return &ast.MapType{Key: key, Value: val}, nil
		}
		return &ast.NamedType{Name: name}, nil
	case token.STRUCT:
		p.NextToken()
		if p.consumeKind(token.LessThan) {
			var fields []ast.StructField
			for p.Token().Kind != token.GreaterThan {
				fname, hasName := p.tryParseStructFieldName()
				ftype, err := p.ParseDataType()
				if err != nil {
					return nil, err
				}
				f := ast.StructField{Type: ftype}
				if hasName {
					f.Name = &fname
				}
				fields = append(fields, f)
				if !p.consumeKind(token.Comma) {
					break
				}
			}
			if err := p.expectGreaterThan(); err != nil {
				return nil, err
			}
			return &ast.StructType{Fields: fields}, nil
		}
		return &ast.NamedType{Name: name}, nil
	}

	switch name {
	case "NULLABLE":
		return p.parseWrapperType(func(inner ast.DataType) ast.DataType { return &ast.NullableType{Inner: inner} })
	case "LOWCARDINALITY":
		return p.parseWrapperType(func(inner ast.DataType) ast.DataType { return &ast.LowCardinalityType{Inner: inner} })
	case "FIXEDSTRING":
		p.NextToken()
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		n, err := p.expectUintLiteral()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.FixedStringType{Length: n}, nil
	case "DATETIME64":
		p.NextToken()
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		prec, err := p.expectUintLiteral()
		if err != nil {
			return nil, err
		}
		dt := &ast.DateTime64Type{Precision: prec}
		if p.consumeKind(token.Comma) {
			tok := p.Token()
			if tok.Kind != token.SingleQuotedString {
				return nil, p.errorf("expected timezone string literal, found %s", tok)
			}
			p.NextToken()
			tz := tok.Text
			dt.TZ = &tz
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return dt, nil
	case "TUPLE":
		p.NextToken()
		if _, err := p.expectKind(token.LParen); err != nil {
			return nil, err
		}
		var fields []ast.TupleField
		for p.Token().Kind != token.RParen {
			fname, hasName := p.tryParseStructFieldName()
			ftype, err := p.ParseDataType()
			if err != nil {
				return nil, err
			}
			f := ast.TupleField{Type: ftype}
			if hasName {
				f.Name = &fname
			}
			fields = append(fields, f)
			if !p.consumeKind(token.Comma) {
				break
			}
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
		return &ast.TupleType{Fields: fields}, nil
	}

	switch tok.Keyword {
	case token.DECIMAL:
		return p.parseNumericType(name)
	}
	if name == "NUMERIC" || name == "DECIMAL" || name == "DEC" {
		return p.parseNumericType(name)
	}

	switch tok.Keyword {
	case token.CHAR, token.CHARACTER, token.VARCHAR, token.BINARY, token.TINYINT, token.SMALLINT, token.FLOAT:
		return p.parseSizedType(name)
	}
	switch name {
	case "VARBINARY", "NVARCHAR", "CHARACTER VARYING":
		return p.parseSizedType(name)
	}

	switch tok.Keyword {
	case token.TIME, token.TIMESTAMP:
		return p.parseTimeType(name)
	}

	p.NextToken()
	return &ast.NamedType{Name: name}, nil
}

func (p *Parser) tryParseStructFieldName() (string, bool) {
	save := p.snapshot()
	if p.Token().Kind != token.Word {
		return "", false
	}
	name := p.Token().Text
	p.NextToken()
	switch p.Token().Kind {
	case token.Comma, token.GreaterThan, token.RParen:
		p.restore(save)
		return "", false
	}
	return name, true
}

func (p *Parser) parseWrapperType(wrap func(ast.DataType) ast.DataType) (ast.DataType, error) {
	p.NextToken()
	if _, err := p.expectKind(token.LParen); err != nil {
		return nil, err
	}
	inner, err := p.ParseDataType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKind(token.RParen); err != nil {
		return nil, err
	}
	return wrap(inner), nil
}

func (p *Parser) parseSizedType(name string) (ast.DataType, error) {
	p.NextToken()
	t := &ast.SizedType{Name: name}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		n, err := p.expectUintLiteral()
		if err != nil {
			return nil, err
		}
		t.Size = &n
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *Parser) parseNumericType(name string) (ast.DataType, error) {
	p.NextToken()
	t := &ast.NumericType{Name: name}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		prec, err := p.expectUintLiteral()
		if err != nil {
			return nil, err
		}
		t.Precision = &prec
		if p.consumeKind(token.Comma) {
			scale, err := p.expectUintLiteral()
			if err != nil {
				return nil, err
			}
			t.Scale = &scale
		}
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *Parser) parseTimeType(name string) (ast.DataType, error) {
	p.NextToken()
	t := &ast.TimeType{Name: name}
	if p.Token().Kind == token.LParen {
		p.NextToken()
		prec, err := p.expectUintLiteral()
		if err != nil {
			return nil, err
		}
		t.Precision = &prec
		if _, err := p.expectKind(token.RParen); err != nil {
			return nil, err
		}
	}
	if p.ParseKeyword(token.WITH) {
		if err := p.ExpectKeyword(token.TIME); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.ZONE); err != nil {
			return nil, err
		}
		t.WithTimeZone = true
	} else if p.ParseKeyword(token.WITHOUT) {
		if err := p.ExpectKeyword(token.TIME); err != nil {
			return nil, err
		}
		if err := p.ExpectKeyword(token.ZONE); err != nil {
			return nil, err
		}
		t.WithoutTZGiven = true
	}
	return t, nil
}

func (p *Parser) expectUintLiteral() (uint64, error) {
	tok := p.Token()
	if tok.Kind != token.Number {
		return 0, p.errorf("expected integer literal, found %s", tok)
	}
	p.NextToken()
	return parseUint(tok.Text)
}

// expectGreaterThan consumes a `>` that may have been lexed as part of a
// `>>`/`>=` token in nested ARRAY</STRUCT< parameter lists, splitting the
// remainder back onto the cursor.
func (p *Parser) expectGreaterThan() error {
	tok := p.Token()
	switch tok.Kind {
	case token.GreaterThan:
		p.NextToken()
		return nil
	case token.ShiftRight:
		p.tokens[p.index] = token.Token{Kind: token.GreaterThan, Text: ">", Line: tok.Line, Column: tok.Column + 1}
		return nil
	case token.GreaterThanOrEqual:
		p.tokens[p.index] = token.Token{Kind: token.Equal, Text: "=", Line: tok.Line, Column: tok.Column + 1}
		return nil
	}
	return p.errorf("expected '>', found %s", tok)
}
