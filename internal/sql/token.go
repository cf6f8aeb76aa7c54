package sql

import "strings"

// TokenKind classifies a lexical token.
type TokenKind int

const (
	// Keywords.
	TokenSelect TokenKind = iota
	TokenInsert
	TokenInto
	TokenValues
	TokenFrom
	TokenWhere
	TokenAnd
	TokenOr
	TokenCreate
	TokenTable
	TokenJoin
	TokenOn
	TokenNull
	TokenTrue
	TokenFalse

	// Type-name keywords (CREATE TABLE column types).
	TokenInteger
	TokenString
	TokenBoolean

	// Identifiers and literals.
	TokenIdent
	TokenNumber
	TokenStringLit

	// Comparison operators.
	TokenEquals
	TokenNotEquals
	TokenGreaterThan
	TokenLessThan
	TokenGreaterEquals
	TokenLessEquals

	// Punctuation.
	TokenAsterisk
	TokenComma
	TokenLParen
	TokenRParen
	TokenSemicolon

	// End marks the end of input; Illegal an unrecognized character.
	TokenEnd
	TokenIllegal
)

var tokenNames = map[TokenKind]string{
	TokenSelect:        "SELECT",
	TokenInsert:        "INSERT",
	TokenInto:          "INTO",
	TokenValues:        "VALUES",
	TokenFrom:          "FROM",
	TokenWhere:         "WHERE",
	TokenAnd:           "AND",
	TokenOr:            "OR",
	TokenCreate:        "CREATE",
	TokenTable:         "TABLE",
	TokenJoin:          "JOIN",
	TokenOn:            "ON",
	TokenNull:          "NULL",
	TokenTrue:          "TRUE",
	TokenFalse:         "FALSE",
	TokenInteger:       "INTEGER",
	TokenString:        "STRING",
	TokenBoolean:       "BOOLEAN",
	TokenIdent:         "IDENTIFIER",
	TokenNumber:        "NUMBER",
	TokenStringLit:     "STRING_LITERAL",
	TokenEquals:        "EQUALS",
	TokenNotEquals:     "NOT_EQUALS",
	TokenGreaterThan:   "GREATER_THAN",
	TokenLessThan:      "LESS_THAN",
	TokenGreaterEquals: "GREATER_EQUALS",
	TokenLessEquals:    "LESS_EQUALS",
	TokenAsterisk:      "ASTERISK",
	TokenComma:         "COMMA",
	TokenLParen:        "LEFT_PAREN",
	TokenRParen:        "RIGHT_PAREN",
	TokenSemicolon:     "SEMICOLON",
	TokenEnd:           "END",
	TokenIllegal:       "ILLEGAL",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsKeyword reports whether the kind is a reserved SQL word.
func (k TokenKind) IsKeyword() bool {
	return k >= TokenSelect && k <= TokenBoolean
}

// IsComparisonOperator reports whether the kind is one of the six
// WHERE-clause operators.
func (k TokenKind) IsComparisonOperator() bool {
	return k >= TokenEquals && k <= TokenLessEquals
}

// IsLiteral reports whether the kind can appear as a value
// (number, string, true, false, null).
func (k TokenKind) IsLiteral() bool {
	switch k {
	case TokenNumber, TokenStringLit, TokenTrue, TokenFalse, TokenNull:
		return true
	}
	return false
}

// keywords maps upper-cased words to keyword kinds. INT, VARCHAR and
// BOOL are accepted aliases for the three type keywords.
var keywords = map[string]TokenKind{
	"SELECT":  TokenSelect,
	"INSERT":  TokenInsert,
	"INTO":    TokenInto,
	"VALUES":  TokenValues,
	"FROM":    TokenFrom,
	"WHERE":   TokenWhere,
	"AND":     TokenAnd,
	"OR":      TokenOr,
	"CREATE":  TokenCreate,
	"TABLE":   TokenTable,
	"JOIN":    TokenJoin,
	"ON":      TokenOn,
	"NULL":    TokenNull,
	"TRUE":    TokenTrue,
	"FALSE":   TokenFalse,
	"INTEGER": TokenInteger,
	"INT":     TokenInteger,
	"STRING":  TokenString,
	"VARCHAR": TokenString,
	"BOOLEAN": TokenBoolean,
	"BOOL":    TokenBoolean,
}

// lookupKeyword resolves a word to its keyword kind, case-insensitively.
func lookupKeyword(word string) (TokenKind, bool) {
	k, ok := keywords[strings.ToUpper(word)]
	return k, ok
}

// Token is one lexical unit: its kind, the text it was built from and
// the byte offset in the input where it starts.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}

func (t Token) String() string {
	return t.Kind.String() + "(" + t.Text + ")"
}
