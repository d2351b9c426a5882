package parser

import "github.com/nilbridge/sqlfront/pkg/token"

// Precedence levels for the Pratt expression engine. These mirror SQL's
// irregular operator precedence rather than a clean arithmetic ladder:
// note PgOther sits above UnaryNot but below Is/Like/Between, and Pipe/
// Caret/Ampersand/Xor are ordered by vendor convention, not by any single
// standard.
const (
	precZero        = 0
	precOr          = 5
	precAnd         = 10
	precUnaryNot    = 15
	precPgOther     = 16
	precIs          = 17
	precLike        = 19
	precBetween     = 20
	precPipe        = 21
	precCaret       = 22
	precAmpersand   = 23
	precXor         = 24
	precPlusMinus   = 30
	precMulDivMod   = 40
	precAtTimeZone  = 41
	precArrow       = 50 // ->, ->>, subscript, ::, JSON path access
)

// getNextPrecedence returns the binding precedence of the upcoming
// operator token, consulting the dialect's override hook first.
func (p *Parser) getNextPrecedence() int {
	if prec, ok := p.dialect.GetNextPrecedence(p); ok {
		return prec
	}

	tok := p.Token()
	switch tok.Kind {
	case token.Word:
		switch tok.Keyword {
		case token.OR:
			return precOr
		case token.AND:
			return precAnd
		case token.XOR:
			return precXor
		case token.NOT:
			// NOT only binds as an operator here when followed by
			// IN/BETWEEN/LIKE/ILIKE/SIMILAR/REGEXP/RLIKE; bare NOT is a
			// prefix op handled by parsePrefix, not reached from the
			// infix loop.
			switch p.PeekToken().Keyword {
			case token.IN, token.BETWEEN:
				return precBetween
			case token.LIKE, token.ILIKE, token.SIMILAR, token.REGEXP, token.RLIKE:
				return precLike
			}
			return precZero
		case token.IN, token.BETWEEN:
			return precBetween
		case token.LIKE, token.ILIKE, token.SIMILAR, token.REGEXP, token.RLIKE:
			return precLike
		case token.IS:
			return precIs
		case token.AT:
			if p.PeekToken().Keyword == token.TIME {
				return precAtTimeZone
			}
			return precZero
		case token.COLLATE:
			return precPlusMinus
		}
		return precZero
	case token.Equal, token.DoubleEqual, token.NotEqual, token.LessThan, token.LessThanOrEqual,
		token.GreaterThan, token.GreaterThanOrEqual, token.Spaceship:
		return precBetween
	case token.Plus, token.Minus:
		return precPlusMinus
	case token.Multiply, token.Divide, token.DuckIntDiv, token.Modulo:
		return precMulDivMod
	case token.StringConcat, token.Overlap, token.ArrowAt, token.AtArrow,
		token.AtAt, token.AtQuestion, token.HashMinus:
		return precPipe
	case token.Caret:
		return precCaret
	case token.Ampersand:
		return precAmpersand
	case token.Pipe:
		return precPipe
	case token.ShiftLeft, token.ShiftRight:
		return precAmpersand
	case token.DoubleColon:
		return precArrow
	case token.Arrow, token.LongArrow, token.HashArrow, token.HashLongArrow:
		return precArrow
	case token.LBracket:
		return precArrow
	case token.ExclamationMark:
		return precArrow // postfix factorial
	case token.Tilde, token.TildeAsterisk, token.ExclamationMarkTilde, token.ExclamationMarkTildeAsterisk:
		return precPgOther
	default:
		return precZero
	}
}
