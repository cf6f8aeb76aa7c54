package sql

import "strings"

// Statement is the common interface for all parsed SQL statements.
// The set of implementations is closed: the unexported marker method
// keeps other packages from adding variants, so the executor's type
// switch covers every case.
type Statement interface {
	stmtNode()
	String() string
}

// WhereClause is a single "column operator value" condition. Exactly
// one condition; AND/OR composition is not supported.
type WhereClause struct {
	Column   string
	Operator string
	Value    Value
}

func (w *WhereClause) String() string {
	return "WHERE " + w.Column + " " + w.Operator + " " + w.Value.String()
}

// SelectStmt represents a parsed SELECT statement. Columns is either
// the single wildcard "*" or a non-empty list of column names.
type SelectStmt struct {
	columns   []string
	tableName string
	where     *WhereClause
}

// NewSelect builds a SelectStmt. Column and table names are lower-cased;
// the column slice is copied so later caller mutation cannot reach the
// statement.
func NewSelect(columns []string, tableName string, where *WhereClause) *SelectStmt {
	cols := make([]string, len(columns))
	for i, c := range columns {
		cols[i] = strings.ToLower(c)
	}
	return &SelectStmt{
		columns:   cols,
		tableName: strings.ToLower(tableName),
		where:     where,
	}
}

func (*SelectStmt) stmtNode() {}

// Columns returns a copy of the selected column names.
func (s *SelectStmt) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

func (s *SelectStmt) TableName() string { return s.tableName }

func (s *SelectStmt) Where() *WhereClause { return s.where }

// IsSelectAll reports whether the statement selects the wildcard "*".
func (s *SelectStmt) IsSelectAll() bool {
	return len(s.columns) == 1 && s.columns[0] == "*"
}

func (s *SelectStmt) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(s.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(s.tableName)
	if s.where != nil {
		sb.WriteString(" ")
		sb.WriteString(s.where.String())
	}
	return sb.String()
}

// InsertStmt represents a parsed INSERT INTO ... VALUES (...) statement.
type InsertStmt struct {
	tableName string
	values    []Value
}

// NewInsert builds an InsertStmt. The table name is lower-cased and the
// value slice copied.
func NewInsert(tableName string, values []Value) *InsertStmt {
	vals := make([]Value, len(values))
	copy(vals, values)
	return &InsertStmt{
		tableName: strings.ToLower(tableName),
		values:    vals,
	}
}

func (*InsertStmt) stmtNode() {}

func (s *InsertStmt) TableName() string { return s.tableName }

// Values returns a copy of the positional values.
func (s *InsertStmt) Values() []Value {
	out := make([]Value, len(s.values))
	copy(out, s.values)
	return out
}

func (s *InsertStmt) ValueCount() int { return len(s.values) }

func (s *InsertStmt) String() string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(s.tableName)
	sb.WriteString(" VALUES (")
	for i, v := range s.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
	}
	sb.WriteString(")")
	return sb.String()
}
