package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/pkg/lexer"
	"github.com/nilbridge/sqlfront/pkg/token"
)

func lexAll(t *testing.T, input string, unescape bool) []token.Token {
	t.Helper()
	l := lexer.New(input, unescape)
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func TestKeywordsAreClassifiedByLookup(t *testing.T) {
	toks := lexAll(t, "SELECT foo FROM bar", false)
	require.Len(t, toks, 4)
	assert.Equal(t, token.SELECT, toks[0].Keyword)
	assert.Equal(t, token.Undefined, toks[1].Keyword)
	assert.Equal(t, token.FROM, toks[2].Keyword)
}

func TestLineCommentSkipped(t *testing.T) {
	toks := lexAll(t, "SELECT 1 -- trailing comment\nFROM t", false)
	require.Len(t, toks, 4)
	assert.Equal(t, token.FROM, toks[2].Keyword)
}

func TestBlockCommentSkipped(t *testing.T) {
	toks := lexAll(t, "SELECT /* inline */ 1", false)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Number, toks[1].Kind)
}

func TestNumberWithExponent(t *testing.T) {
	toks := lexAll(t, "1.5e10", false)
	require.Len(t, toks, 1)
	assert.Equal(t, "1.5e10", toks[0].Text)
}

func TestNumberTrailingEMustNotBeConsumedWithoutDigits(t *testing.T) {
	toks := lexAll(t, "1e", false)
	require.Len(t, toks, 2)
	assert.Equal(t, "1", toks[0].Text)
	assert.Equal(t, token.Word, toks[1].Kind)
}

func TestDoubledSingleQuoteEscapesInString(t *testing.T) {
	toks := lexAll(t, `'it''s'`, false)
	require.Len(t, toks, 1)
	assert.Equal(t, token.SingleQuotedString, toks[0].Kind)
	assert.Equal(t, "it's", toks[0].Text)
}

func TestBackslashEscapeOnlyWhenUnescapeEnabled(t *testing.T) {
	raw := lexAll(t, `'a\nb'`, false)
	require.Len(t, raw, 1)
	assert.Equal(t, `a\nb`, raw[0].Text)

	decoded := lexAll(t, `'a\nb'`, true)
	require.Len(t, decoded, 1)
	assert.Equal(t, "a\nb", decoded[0].Text)
}

func TestDoubleQuotedIdentifier(t *testing.T) {
	toks := lexAll(t, `"weird name"`, false)
	require.Len(t, toks, 1)
	assert.Equal(t, token.QuotedIdent, toks[0].Kind)
	assert.Equal(t, "weird name", toks[0].Text)
	assert.EqualValues(t, '"', toks[0].QuoteStyle)
}

func TestBacktickQuotedIdentifier(t *testing.T) {
	toks := lexAll(t, "`my table`", false)
	require.Len(t, toks, 1)
	assert.Equal(t, token.QuotedIdent, toks[0].Kind)
	assert.Equal(t, "my table", toks[0].Text)
}

func TestBracketQuotedIdentifierVsArraySubscript(t *testing.T) {
	ident := lexAll(t, "[col name]", false)
	require.Len(t, ident, 1)
	assert.Equal(t, token.QuotedIdent, ident[0].Kind)

	subscript := lexAll(t, "a[1]", false)
	require.Len(t, subscript, 4)
	assert.Equal(t, token.LBracket, subscript[1].Kind)
	assert.Equal(t, token.RBracket, subscript[3].Kind)
}

func TestDollarQuotedStringWithTag(t *testing.T) {
	toks := lexAll(t, "$tag$hello $ world$tag$", false)
	require.Len(t, toks, 1)
	assert.Equal(t, token.DollarQuotedString, toks[0].Kind)
	assert.Equal(t, "hello $ world", toks[0].Text)
	assert.Equal(t, "tag", toks[0].Tag)
}

func TestDollarPlaceholderFallsBackWhenUnterminated(t *testing.T) {
	toks := lexAll(t, "$1", false)
	require.Len(t, toks, 1)
	assert.Equal(t, token.Placeholder, toks[0].Kind)
	assert.Equal(t, "$1", toks[0].Text)
}

func TestNamedPlaceholders(t *testing.T) {
	colon := lexAll(t, ":name", false)
	require.Len(t, colon, 1)
	assert.Equal(t, token.Placeholder, colon[0].Kind)
	assert.Equal(t, ":name", colon[0].Text)

	at := lexAll(t, "@var", false)
	require.Len(t, at, 1)
	assert.Equal(t, token.Placeholder, at[0].Kind)
	assert.Equal(t, "@var", at[0].Text)
}

func TestMultiCharOperatorsLongestMatchFirst(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"->>", token.LongArrow},
		{"->", token.Arrow},
		{"::", token.DoubleColon},
		{"<=>", token.Spaceship},
		{"<=", token.LessThanOrEqual},
		{"#>>", token.HashLongArrow},
		{"#>", token.HashArrow},
		{"||/", token.PGCubeRoot},
		{"||", token.StringConcat},
		{"!~*", token.ExclamationMarkTildeAsterisk},
		{"!~", token.ExclamationMarkTilde},
	}
	for _, c := range cases {
		toks := lexAll(t, c.input, false)
		require.Len(t, toks, 1, "input %q", c.input)
		assert.Equal(t, c.kind, toks[0].Kind, "input %q", c.input)
	}
}

func TestIllegalCharacterIsTokenized(t *testing.T) {
	toks := lexAll(t, "$", false)
	require.Len(t, toks, 1)
}
