// Package lexer tokenizes SQL source text into the token.Kind stream the
// parser consumes. It has no notion of dialect grammar; dialect gating
// happens entirely in the parser and dialect packages downstream.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nilbridge/sqlfront/pkg/token"
)

// Lexer tokenizes SQL input one token at a time.
type Lexer struct {
	input   string
	pos     int  // current byte offset into input
	readPos int  // offset of the next byte to read
	ch      byte // current byte under examination, 0 at EOF
	line    int
	col     int

	unescape bool
}

// New creates a Lexer over input. unescape controls whether string literal
// escape sequences are decoded into Token.Text or left as raw source text.
func New(input string, unescape bool) *Lexer {
	l := &Lexer{input: input, line: 1, col: 0, unescape: unescape}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) peekCharAt(offset int) byte {
	idx := l.readPos + offset - 1
	if idx >= len(l.input) || idx < 0 {
		return 0
	}
	return l.input[idx]
}

func isLetter(ch byte) bool {
	return ch >= utf8.RuneSelf || unicode.IsLetter(rune(ch)) || ch == '_'
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentByte(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '$'
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '-' && l.peekChar() == '-':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') && l.ch != 0 {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
		default:
			return
		}
	}
}

func (l *Lexer) newToken(kind token.Kind, text string, line, col int) token.Token {
	return token.Token{Kind: kind, Text: text, Line: line, Column: col}
}

// NextToken returns the next classified token, advancing the cursor past it.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()
	line, col := l.line, l.col

	switch {
	case l.ch == 0:
		return token.EOFToken(line, col)
	case isDigit(l.ch), l.ch == '.' && isDigit(l.peekChar()):
		return l.readNumber(line, col)
	case l.ch == '\'':
		return l.readQuotedString(line, col, token.SingleQuotedString, '\'')
	case l.ch == '"':
		return l.readQuotedIdent(line, col, '"')
	case l.ch == '`':
		return l.readQuotedIdent(line, col, '`')
	case l.ch == '[':
		// A '[' directly after an identifier, ')' or ']' opens a subscript or
		// array-type suffix, never a bracket-quoted identifier.
		followsOperand := l.pos > 0 && (isIdentByte(l.input[l.pos-1]) || l.input[l.pos-1] == ')' || l.input[l.pos-1] == ']')
		if !followsOperand && looksLikeBracketIdent(l.input[l.pos:]) {
			return l.readQuotedIdent(line, col, '[')
		}
		l.readChar()
		return l.newToken(token.LBracket, "[", line, col)
	case (l.ch == 'n' || l.ch == 'N') && l.peekChar() == '\'':
		l.readChar()
		return l.readQuotedString(line, col, token.NationalStringLiteral, '\'')
	case (l.ch == 'x' || l.ch == 'X') && l.peekChar() == '\'':
		l.readChar()
		return l.readQuotedString(line, col, token.HexStringLiteral, '\'')
	case (l.ch == 'e' || l.ch == 'E') && l.peekChar() == '\'':
		l.readChar()
		return l.readQuotedString(line, col, token.EscapedStringLiteral, '\'')
	case (l.ch == 'r' || l.ch == 'R') && l.peekChar() == '\'':
		l.readChar()
		return l.readQuotedString(line, col, token.RawStringLiteral, '\'')
	case (l.ch == 'b' || l.ch == 'B') && l.peekChar() == '\'':
		l.readChar()
		return l.readQuotedString(line, col, token.ByteStringLiteral, '\'')
	case (l.ch == 'u' || l.ch == 'U') && l.peekChar() == '&' && l.peekCharAt(2) == '\'':
		l.readChar()
		l.readChar()
		return l.readQuotedString(line, col, token.UnicodeStringLiteral, '\'')
	case l.ch == '$' && (isLetter(l.peekChar()) || isDigit(l.peekChar()) || l.peekChar() == '$'):
		if tok, ok := l.tryDollarQuoted(line, col); ok {
			return tok
		}
		return l.readPlaceholder(line, col)
	case isLetter(l.ch):
		return l.readWord(line, col)
	case l.ch == ':' && isIdentByte(l.peekChar()):
		return l.readNamedPlaceholder(line, col, ':')
	case l.ch == '@' && isIdentByte(l.peekChar()):
		return l.readNamedPlaceholder(line, col, '@')
	case l.ch == '?':
		l.readChar()
		return l.newToken(token.Placeholder, "?", line, col)
	default:
		return l.readOperator(line, col)
	}
}

func looksLikeBracketIdent(rest string) bool {
	depth := 0
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return true
			}
		case '\n', ';':
			return false
		}
	}
	return false
}

func (l *Lexer) readWord(line, col int) token.Token {
	start := l.pos
	for isIdentByte(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.pos]
	kw := token.LookupKeyword(strings.ToUpper(text))
	return token.Token{Kind: token.Word, Text: text, Keyword: kw, Line: line, Column: col}
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		save, saveRead, saveLine, saveCol := l.pos, l.readPos, l.line, l.col
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		if isDigit(l.ch) {
			for isDigit(l.ch) {
				l.readChar()
			}
		} else {
			l.pos, l.readPos, l.ch, l.line, l.col = save, saveRead, l.input[save], saveLine, saveCol
		}
	}
	text := l.input[start:l.pos]
	return token.Token{Kind: token.Number, Text: text, Line: line, Column: col, IsBigNumber: len(text) > 18}
}

func (l *Lexer) readQuotedString(line, col int, kind token.Kind, quote byte) token.Token {
	l.readChar() // consume opening quote
	var sb strings.Builder
	for {
		if l.ch == 0 {
			break
		}
		if l.ch == quote {
			if l.peekChar() == quote {
				sb.WriteByte(quote)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar()
			break
		}
		if l.ch == '\\' && l.unescape {
			l.readChar()
			sb.WriteByte(decodeEscape(l.ch))
			l.readChar()
			continue
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	return token.Token{Kind: kind, Text: sb.String(), QuoteStyle: quote, Line: line, Column: col}
}

func decodeEscape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return ch
	}
}

func (l *Lexer) readQuotedIdent(line, col int, open byte) token.Token {
	closeCh := open
	if open == '[' {
		closeCh = ']'
	}
	l.readChar()
	start := l.pos
	for l.ch != closeCh && l.ch != 0 {
		l.readChar()
	}
	text := l.input[start:l.pos]
	if l.ch == closeCh {
		l.readChar()
	}
	return token.Token{Kind: token.QuotedIdent, Text: text, QuoteStyle: open, Line: line, Column: col}
}

func (l *Lexer) tryDollarQuoted(line, col int) (token.Token, bool) {
	save, saveRead, saveCh, saveLine, saveCol := l.pos, l.readPos, l.ch, l.line, l.col
	l.readChar() // consume leading $
	tagStart := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	tag := l.input[tagStart:l.pos]
	if l.ch != '$' {
		l.pos, l.readPos, l.ch, l.line, l.col = save, saveRead, saveCh, saveLine, saveCol
		return token.Token{}, false
	}
	l.readChar() // consume trailing $ of opening tag
	bodyStart := l.pos
	closer := "$" + tag + "$"
	idx := strings.Index(l.input[l.pos:], closer)
	if idx < 0 {
		l.pos, l.readPos, l.ch, l.line, l.col = save, saveRead, saveCh, saveLine, saveCol
		return token.Token{}, false
	}
	body := l.input[bodyStart : bodyStart+idx]
	for i := 0; i < idx+len(closer); i++ {
		l.readChar()
	}
	return token.Token{Kind: token.DollarQuotedString, Text: body, Tag: tag, Line: line, Column: col}, true
}

func (l *Lexer) readPlaceholder(line, col int) token.Token {
	start := l.pos
	l.readChar()
	for isIdentByte(l.ch) {
		l.readChar()
	}
	return token.Token{Kind: token.Placeholder, Text: l.input[start:l.pos], Line: line, Column: col}
}

func (l *Lexer) readNamedPlaceholder(line, col int, lead byte) token.Token {
	start := l.pos
	l.readChar()
	for isIdentByte(l.ch) {
		l.readChar()
	}
	return token.Token{Kind: token.Placeholder, Text: l.input[start:l.pos], Line: line, Column: col}
}

func (l *Lexer) readOperator(line, col int) token.Token {
	ch := l.ch
	two := func() byte { return l.peekChar() }
	emit := func(kind token.Kind, text string, width int) token.Token {
		for i := 0; i < width; i++ {
			l.readChar()
		}
		return l.newToken(kind, text, line, col)
	}

	switch ch {
	case '+':
		return emit(token.Plus, "+", 1)
	case '-':
		switch two() {
		case '>':
			if l.peekCharAt(2) == '>' {
				return emit(token.LongArrow, "->>", 3)
			}
			return emit(token.Arrow, "->", 2)
		}
		return emit(token.Minus, "-", 1)
	case '*':
		return emit(token.Multiply, "*", 1)
	case '/':
		if two() == '/' {
			return emit(token.DuckIntDiv, "//", 2)
		}
		return emit(token.Divide, "/", 1)
	case '%':
		return emit(token.Modulo, "%", 1)
	case '^':
		return emit(token.Caret, "^", 1)
	case '~':
		switch two() {
		case '*':
			return emit(token.TildeAsterisk, "~*", 2)
		}
		return emit(token.Tilde, "~", 1)
	case '&':
		if two() == '&' {
			return emit(token.Overlap, "&&", 2)
		}
		return emit(token.Ampersand, "&", 1)
	case '#':
		switch two() {
		case '>':
			if l.peekCharAt(2) == '>' {
				return emit(token.HashLongArrow, "#>>", 3)
			}
			return emit(token.HashArrow, "#>", 2)
		case '-':
			return emit(token.HashMinus, "#-", 2)
		}
		return emit(token.Hash, "#", 1)
	case '@':
		switch two() {
		case '>':
			return emit(token.AtArrow, "@>", 2)
		case '@':
			return emit(token.AtAt, "@@", 2)
		case '?':
			return emit(token.AtQuestion, "@?", 2)
		}
		return emit(token.AtSign, "@", 1)
	case '=':
		switch two() {
		case '=':
			return emit(token.DoubleEqual, "==", 2)
		case '>':
			return emit(token.RArrow, "=>", 2)
		}
		return emit(token.Equal, "=", 1)
	case '<':
		switch two() {
		case '=':
			if l.peekCharAt(2) == '>' {
				return emit(token.Spaceship, "<=>", 3)
			}
			return emit(token.LessThanOrEqual, "<=", 2)
		case '>':
			return emit(token.NotEqual, "<>", 2)
		case '<':
			return emit(token.ShiftLeft, "<<", 2)
		case '@':
			return emit(token.ArrowAt, "<@", 2)
		}
		return emit(token.LessThan, "<", 1)
	case '>':
		switch two() {
		case '=':
			return emit(token.GreaterThanOrEqual, ">=", 2)
		case '>':
			return emit(token.ShiftRight, ">>", 2)
		}
		return emit(token.GreaterThan, ">", 1)
	case '!':
		switch two() {
		case '=':
			return emit(token.NotEqual, "!=", 2)
		case '!':
			return emit(token.DoubleExclamationMark, "!!", 2)
		case '~':
			if l.peekCharAt(2) == '*' {
				return emit(token.ExclamationMarkTildeAsterisk, "!~*", 3)
			}
			return emit(token.ExclamationMarkTilde, "!~", 2)
		}
		return emit(token.ExclamationMark, "!", 1)
	case '|':
		switch two() {
		case '|':
			if l.peekCharAt(2) == '/' {
				return emit(token.PGCubeRoot, "||/", 3)
			}
			return emit(token.StringConcat, "||", 2)
		case '/':
			return emit(token.PGSquareRoot, "|/", 2)
		}
		return emit(token.Pipe, "|", 1)
	case ':':
		switch two() {
		case ':':
			return emit(token.DoubleColon, "::", 2)
		case '=':
			return emit(token.Assignment, ":=", 2)
		}
		return emit(token.Colon, ":", 1)
	case '(':
		return emit(token.LParen, "(", 1)
	case ')':
		return emit(token.RParen, ")", 1)
	case '[':
		return emit(token.LBracket, "[", 1)
	case ']':
		return emit(token.RBracket, "]", 1)
	case '{':
		return emit(token.LBrace, "{", 1)
	case '}':
		return emit(token.RBrace, "}", 1)
	case ',':
		return emit(token.Comma, ",", 1)
	case '.':
		return emit(token.Period, ".", 1)
	case ';':
		return emit(token.SemiColon, ";", 1)
	case '\\':
		return emit(token.Backslash, "\\", 1)
	default:
		return emit(token.ILLEGAL, string(ch), 1)
	}
}
