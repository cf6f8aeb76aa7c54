package sql

// parseInsert parses:
//
//	insertStmt := INSERT INTO IDENTIFIER VALUES '(' valueList ')' (END|';')
//	valueList  := value (',' value)*
func (p *Parser) parseInsert() (Statement, error) {
	if err := p.expect(TokenInsert); err != nil {
		return nil, err
	}
	if err := p.expect(TokenInto); err != nil {
		return nil, err
	}

	tableName, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenValues); err != nil {
		return nil, err
	}
	if err := p.expect(TokenLParen); err != nil {
		return nil, err
	}

	values, err := p.parseValueList()
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenRParen); err != nil {
		return nil, err
	}
	if err := p.expectStatementEnd("INSERT"); err != nil {
		return nil, err
	}

	return NewInsert(tableName, values), nil
}

func (p *Parser) parseValueList() ([]Value, error) {
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	values := []Value{v}

	for p.cur().Kind == TokenComma {
		p.advance()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
