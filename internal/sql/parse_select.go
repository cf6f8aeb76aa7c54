package sql

import "strings"

// parseSelect parses:
//
//	selectStmt  := SELECT columnList FROM IDENTIFIER [whereClause] (END|';')
//	columnList  := '*' | IDENTIFIER (',' IDENTIFIER)*
//	whereClause := WHERE IDENTIFIER operator value
func (p *Parser) parseSelect() (Statement, error) {
	if err := p.expect(TokenSelect); err != nil {
		return nil, err
	}

	columns, err := p.parseColumnList()
	if err != nil {
		return nil, err
	}

	if err := p.expect(TokenFrom); err != nil {
		return nil, err
	}

	tableName, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	var where *WhereClause
	if p.cur().Kind == TokenWhere {
		where, err = p.parseWhereClause()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expectStatementEnd("SELECT"); err != nil {
		return nil, err
	}

	return NewSelect(columns, tableName, where), nil
}

func (p *Parser) parseColumnList() ([]string, error) {
	if p.cur().Kind == TokenAsterisk {
		p.advance()
		return []string{"*"}, nil
	}

	col, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}
	columns := []string{col}

	for p.cur().Kind == TokenComma {
		p.advance()
		col, err := p.expectIdentifier()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
	}
	return columns, nil
}

func (p *Parser) parseWhereClause() (*WhereClause, error) {
	if err := p.expect(TokenWhere); err != nil {
		return nil, err
	}

	column, err := p.expectIdentifier()
	if err != nil {
		return nil, err
	}

	op := p.cur()
	if !op.Kind.IsComparisonOperator() {
		return nil, parseErrorf("expected operator (=, !=, >, <, >=, <=), got %q", op.Text)
	}
	p.advance()

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &WhereClause{
		Column:   strings.ToLower(column),
		Operator: op.Text,
		Value:    value,
	}, nil
}
