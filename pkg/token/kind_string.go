package token

var kindNames = map[Kind]string{
	ILLEGAL:                      "ILLEGAL",
	EOF:                          "EOF",
	Word:                         "WORD",
	Number:                       "NUMBER",
	SingleQuotedString:           "STRING",
	DoubleQuotedString:           "STRING",
	TripleSingleQuotedString:     "STRING",
	TripleDoubleQuotedString:     "STRING",
	NationalStringLiteral:        "NSTRING",
	HexStringLiteral:             "HEXSTRING",
	EscapedStringLiteral:         "ESTRING",
	UnicodeStringLiteral:         "USTRING",
	RawStringLiteral:             "RSTRING",
	ByteStringLiteral:            "BSTRING",
	DollarQuotedString:           "DOLLARSTRING",
	QuotedIdent:                  "QUOTED_IDENT",
	Placeholder:                  "PLACEHOLDER",
	LParen:                       "(",
	RParen:                       ")",
	LBracket:                     "[",
	RBracket:                     "]",
	LBrace:                       "{",
	RBrace:                       "}",
	Comma:                        ",",
	Period:                       ".",
	Colon:                        ":",
	DoubleColon:                  "::",
	SemiColon:                    ";",
	Arrow:                        "->",
	LongArrow:                    "->>",
	RArrow:                       "=>",
	Assignment:                   ":=",
	AtArrow:                      "@>",
	ArrowAt:                      "<@",
	HashArrow:                    "#>",
	HashLongArrow:                "#>>",
	AtAt:                         "@@",
	AtQuestion:                   "@?",
	HashMinus:                    "#-",
	AtSign:                       "@",
	Plus:                         "+",
	Minus:                        "-",
	Multiply:                     "*",
	Divide:                       "/",
	DuckIntDiv:                   "//",
	Modulo:                       "%",
	Caret:                        "^",
	Ampersand:                    "&",
	Pipe:                         "|",
	Tilde:                        "~",
	Hash:                         "#",
	DoubleExclamationMark:        "!!",
	PGSquareRoot:                 "|/",
	PGCubeRoot:                   "||/",
	ShiftLeft:                    "<<",
	ShiftRight:                   ">>",
	StringConcat:                 "||",
	Spaceship:                    "<=>",
	Equal:                        "=",
	DoubleEqual:                  "==",
	NotEqual:                     "<>",
	GreaterThan:                  ">",
	GreaterThanOrEqual:           ">=",
	LessThan:                     "<",
	LessThanOrEqual:              "<=",
	Backslash:                    "\\",
	Overlap:                      "&&",
	ExclamationMark:              "!",
	TildeAsterisk:                "~*",
	ExclamationMarkTilde:         "!~",
	ExclamationMarkTildeAsterisk: "!~*",
	Whitespace:                   "WHITESPACE",
}

// String renders a Kind the way it should appear in a parser error message.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
