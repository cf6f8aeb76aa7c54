package sql

import (
	"fmt"
	"strconv"
)

// ParseError reports a grammar violation, phrased as what the parser
// expected versus what it actually saw.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return "parse error: " + e.Msg
}

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// Parser consumes a token sequence via recursive descent with a single
// current-token cursor. The grammar is LL(1); no backtracking.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser over an already-lexed token sequence.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is the convenience entry point: lex the input, then parse
// exactly one statement.
func Parse(query string) (Statement, error) {
	return NewParser(Tokenize(query)).ParseStatement()
}

// ParseStatement parses exactly one SELECT or INSERT statement.
func (p *Parser) ParseStatement() (Statement, error) {
	switch p.cur().Kind {
	case TokenSelect:
		return p.parseSelect()
	case TokenInsert:
		return p.parseInsert()
	case TokenEnd:
		return nil, parseErrorf("empty SQL statement")
	default:
		return nil, parseErrorf("expected SELECT or INSERT, got %s", p.cur().Kind)
	}
}

// cur returns the token under the cursor. Past the end it keeps
// returning the trailing END token, so lookahead never runs off the
// slice.
func (p *Parser) cur() Token {
	if p.pos >= len(p.tokens) {
		if len(p.tokens) == 0 {
			return Token{Kind: TokenEnd}
		}
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	p.pos++
}

// expect consumes a token of the given kind or fails.
func (p *Parser) expect(kind TokenKind) error {
	if p.cur().Kind != kind {
		return parseErrorf("expected %s, got %s (%q)", kind, p.cur().Kind, p.cur().Text)
	}
	p.advance()
	return nil
}

// expectIdentifier consumes an IDENTIFIER token and returns its text.
func (p *Parser) expectIdentifier() (string, error) {
	t := p.cur()
	if t.Kind != TokenIdent {
		return "", parseErrorf("expected identifier (table or column name), got %s (%q)", t.Kind, t.Text)
	}
	p.advance()
	return t.Text, nil
}

// expectStatementEnd rejects trailing tokens: a statement must be
// followed by END or an optional ';'.
func (p *Parser) expectStatementEnd(stmtKind string) error {
	if t := p.cur(); t.Kind != TokenEnd && t.Kind != TokenSemicolon {
		return parseErrorf("unexpected token after %s: %q", stmtKind, t.Text)
	}
	return nil
}

// parseValue parses a single literal: NUMBER, STRING_LITERAL, TRUE,
// FALSE or NULL.
func (p *Parser) parseValue() (Value, error) {
	t := p.cur()
	switch t.Kind {
	case TokenNumber:
		n, err := strconv.ParseInt(t.Text, 10, 64)
		if err != nil {
			return Value{}, parseErrorf("invalid number %q", t.Text)
		}
		p.advance()
		return Value{Type: TypeInt, I64: n}, nil
	case TokenStringLit:
		p.advance()
		return Value{Type: TypeString, S: t.Text}, nil
	case TokenTrue:
		p.advance()
		return Value{Type: TypeBool, B: true}, nil
	case TokenFalse:
		p.advance()
		return Value{Type: TypeBool, B: false}, nil
	case TokenNull:
		p.advance()
		return Value{Type: TypeNull}, nil
	}
	return Value{}, parseErrorf("expected value (number, string, true, false, null), got %s (%q)", t.Kind, t.Text)
}
