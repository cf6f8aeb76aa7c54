package sql

// lexer walks the input one byte at a time with single-character
// lookahead. SQL in this engine is plain ASCII; multi-byte input still
// scans safely because every byte of a non-ASCII rune falls through to
// an ILLEGAL token.
type lexer struct {
	input string
	pos   int
	ch    byte
}

// Tokenize scans the full input and returns every token, terminated by
// exactly one END token. It never fails: unrecognized characters become
// ILLEGAL tokens so the caller always sees the complete sequence.
func Tokenize(input string) []Token {
	l := &lexer{input: input}
	l.ch = l.at(0)

	var tokens []Token
	for l.ch != 0 {
		if isSpace(l.ch) {
			l.advance()
			continue
		}

		switch {
		case isDigit(l.ch):
			tokens = append(tokens, l.readNumber())
		case isLetter(l.ch) || l.ch == '_':
			tokens = append(tokens, l.readWord())
		case l.ch == '\'' || l.ch == '"':
			tokens = append(tokens, l.readString())
		default:
			tokens = append(tokens, l.readOperatorOrSymbol())
		}
	}

	tokens = append(tokens, Token{Kind: TokenEnd, Offset: l.pos})
	return tokens
}

func (l *lexer) at(pos int) byte {
	if pos >= len(l.input) {
		return 0
	}
	return l.input[pos]
}

func (l *lexer) advance() {
	l.pos++
	l.ch = l.at(l.pos)
}

func (l *lexer) peek() byte {
	return l.at(l.pos + 1)
}

// readNumber scans a maximal run of decimal digits. No sign, no
// fractional part.
func (l *lexer) readNumber() Token {
	start := l.pos
	for isDigit(l.ch) {
		l.advance()
	}
	return Token{Kind: TokenNumber, Text: l.input[start:l.pos], Offset: start}
}

// readWord scans a keyword or identifier. Keywords come back with
// upper-cased text; identifiers keep their original case.
func (l *lexer) readWord() Token {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.advance()
	}
	word := l.input[start:l.pos]

	if kind, ok := lookupKeyword(word); ok {
		return Token{Kind: kind, Text: toUpperASCII(word), Offset: start}
	}
	return Token{Kind: TokenIdent, Text: word, Offset: start}
}

// readString scans a quoted literal delimited by ' or ". A backslash
// immediately followed by the open-quote character escapes it; no other
// escapes exist. A missing close quote terminates the literal at end of
// input instead of failing.
func (l *lexer) readString() Token {
	start := l.pos
	quote := l.ch
	l.advance()

	var buf []byte
	for l.ch != 0 && l.ch != quote {
		if l.ch == '\\' && l.peek() == quote {
			l.advance()
		}
		buf = append(buf, l.ch)
		l.advance()
	}
	if l.ch == quote {
		l.advance()
	}
	return Token{Kind: TokenStringLit, Text: string(buf), Offset: start}
}

func (l *lexer) readOperatorOrSymbol() Token {
	start := l.pos
	ch := l.ch
	l.advance()

	switch ch {
	case '*':
		return Token{Kind: TokenAsterisk, Text: "*", Offset: start}
	case ',':
		return Token{Kind: TokenComma, Text: ",", Offset: start}
	case '(':
		return Token{Kind: TokenLParen, Text: "(", Offset: start}
	case ')':
		return Token{Kind: TokenRParen, Text: ")", Offset: start}
	case ';':
		return Token{Kind: TokenSemicolon, Text: ";", Offset: start}
	case '=':
		return Token{Kind: TokenEquals, Text: "=", Offset: start}
	case '!':
		if l.ch == '=' {
			l.advance()
			return Token{Kind: TokenNotEquals, Text: "!=", Offset: start}
		}
		// '!' on its own is not valid SQL.
		return Token{Kind: TokenIllegal, Text: "!", Offset: start}
	case '>':
		if l.ch == '=' {
			l.advance()
			return Token{Kind: TokenGreaterEquals, Text: ">=", Offset: start}
		}
		return Token{Kind: TokenGreaterThan, Text: ">", Offset: start}
	case '<':
		if l.ch == '=' {
			l.advance()
			return Token{Kind: TokenLessEquals, Text: "<=", Offset: start}
		}
		if l.ch == '>' {
			l.advance()
			return Token{Kind: TokenNotEquals, Text: "<>", Offset: start}
		}
		return Token{Kind: TokenLessThan, Text: "<", Offset: start}
	}

	return Token{Kind: TokenIllegal, Text: string(ch), Offset: start}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func toUpperASCII(s string) string {
	buf := []byte(s)
	for i, ch := range buf {
		if ch >= 'a' && ch <= 'z' {
			buf[i] = ch - 'a' + 'A'
		}
	}
	return string(buf)
}
