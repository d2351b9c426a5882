package parser

import "github.com/nilbridge/sqlfront/pkg/token"

// ParseKeyword consumes the current token if it is a Word carrying k,
// returning whether it matched.
func (p *Parser) ParseKeyword(k token.Keyword) bool {
	tok := p.Token()
	if tok.Kind == token.Word && tok.Keyword == k {
		p.NextToken()
		return true
	}
	return false
}

// ParseKeywordSequence consumes a run of keywords atomically: either every
// keyword in ks matches consecutively and the cursor advances past all of
// them, or none of them are consumed.
func (p *Parser) ParseKeywordSequence(ks ...token.Keyword) bool {
	save := p.snapshot()
	for _, k := range ks {
		if !p.ParseKeyword(k) {
			p.restore(save)
			return false
		}
	}
	return true
}

// ParseOneOfKeywords consumes the current token if it matches any keyword
// in ks, returning the one matched or token.Undefined.
func (p *Parser) ParseOneOfKeywords(ks ...token.Keyword) token.Keyword {
	tok := p.Token()
	if tok.Kind != token.Word {
		return token.Undefined
	}
	for _, k := range ks {
		if tok.Keyword == k {
			p.NextToken()
			return k
		}
	}
	return token.Undefined
}

// PeekKeyword reports whether the current token is the given keyword,
// without consuming it.
func (p *Parser) PeekKeyword(k token.Keyword) bool {
	tok := p.Token()
	return tok.Kind == token.Word && tok.Keyword == k
}

// ExpectKeyword consumes k or returns a parse error.
func (p *Parser) ExpectKeyword(k token.Keyword) error {
	if p.ParseKeyword(k) {
		return nil
	}
	return p.errorf("expected keyword %s, found %s", k, p.Token())
}

// ExpectKeywords consumes each keyword in ks in order or returns a parse
// error identifying the first one that failed to match.
func (p *Parser) ExpectKeywords(ks ...token.Keyword) error {
	for _, k := range ks {
		if err := p.ExpectKeyword(k); err != nil {
			return err
		}
	}
	return nil
}

// expectKind consumes a token of the given kind or returns a parse error.
func (p *Parser) expectKind(k token.Kind) (token.Token, error) {
	tok := p.Token()
	if tok.Kind == k {
		p.NextToken()
		return tok, nil
	}
	return token.Token{}, p.errorf("expected %s, found %s", k, tok)
}

func (p *Parser) consumeOneOfKinds(ks ...token.Kind) (token.Token, bool) {
	tok := p.Token()
	for _, k := range ks {
		if tok.Kind == k {
			p.NextToken()
			return tok, true
		}
	}
	return token.Token{}, false
}
