package sql

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSelect_Wildcard(t *testing.T) {
	stmt, err := Parse("SELECT * FROM users")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel, ok := stmt.(*SelectStmt)
	if !ok {
		t.Fatalf("expected *SelectStmt, got %T", stmt)
	}
	if !sel.IsSelectAll() {
		t.Fatalf("expected wildcard select, got columns %v", sel.Columns())
	}
	if sel.TableName() != "users" {
		t.Fatalf("expected table %q, got %q", "users", sel.TableName())
	}
	if sel.Where() != nil {
		t.Fatalf("expected no WHERE clause, got %v", sel.Where())
	}
}

func TestParseSelect_ColumnList(t *testing.T) {
	stmt, err := Parse("SELECT Name, AGE FROM Users;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel := stmt.(*SelectStmt)
	cols := sel.Columns()
	if len(cols) != 2 || cols[0] != "name" || cols[1] != "age" {
		t.Fatalf("expected lower-cased columns [name age], got %v", cols)
	}
	if sel.TableName() != "users" {
		t.Fatalf("expected lower-cased table name, got %q", sel.TableName())
	}
}

func TestParseSelect_WhereClause(t *testing.T) {
	cases := []struct {
		input string
		op    string
		value Value
	}{
		{"SELECT * FROM t WHERE age > 25", ">", Value{Type: TypeInt, I64: 25}},
		{"SELECT * FROM t WHERE age >= 25", ">=", Value{Type: TypeInt, I64: 25}},
		{"SELECT * FROM t WHERE name = 'Alice'", "=", Value{Type: TypeString, S: "Alice"}},
		{"SELECT * FROM t WHERE name != 'Bob'", "!=", Value{Type: TypeString, S: "Bob"}},
		{"SELECT * FROM t WHERE name <> 'Bob'", "<>", Value{Type: TypeString, S: "Bob"}},
		{"SELECT * FROM t WHERE active = true", "=", Value{Type: TypeBool, B: true}},
		{"SELECT * FROM t WHERE active = FALSE", "=", Value{Type: TypeBool, B: false}},
		{"SELECT * FROM t WHERE note = NULL", "=", Value{Type: TypeNull}},
	}

	for _, c := range cases {
		stmt, err := Parse(c.input)
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", c.input, err)
		}
		w := stmt.(*SelectStmt).Where()
		if w == nil {
			t.Fatalf("%s: expected a WHERE clause", c.input)
		}
		if w.Operator != c.op {
			t.Fatalf("%s: expected operator %q, got %q", c.input, c.op, w.Operator)
		}
		if w.Value != c.value {
			t.Fatalf("%s: expected value %+v, got %+v", c.input, c.value, w.Value)
		}
	}
}

func TestParseSelect_WhereColumnLowerCased(t *testing.T) {
	stmt, err := Parse("SELECT * FROM t WHERE AGE > 1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if col := stmt.(*SelectStmt).Where().Column; col != "age" {
		t.Fatalf("expected lower-cased WHERE column, got %q", col)
	}
}

func TestParseInsert_Basic(t *testing.T) {
	stmt, err := Parse("INSERT INTO users VALUES (1, 'Alice', 25, true)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("expected *InsertStmt, got %T", stmt)
	}
	if ins.TableName() != "users" {
		t.Fatalf("expected table %q, got %q", "users", ins.TableName())
	}

	if ins.ValueCount() != 4 {
		t.Fatalf("expected 4 values, got %d", ins.ValueCount())
	}
	vals := ins.Values()
	if vals[0] != (Value{Type: TypeInt, I64: 1}) {
		t.Fatalf("unexpected first value: %+v", vals[0])
	}
	if vals[1] != (Value{Type: TypeString, S: "Alice"}) {
		t.Fatalf("unexpected second value: %+v", vals[1])
	}
	if vals[2] != (Value{Type: TypeInt, I64: 25}) {
		t.Fatalf("unexpected third value: %+v", vals[2])
	}
	if vals[3] != (Value{Type: TypeBool, B: true}) {
		t.Fatalf("unexpected fourth value: %+v", vals[3])
	}
}

func TestParseInsert_NullValue(t *testing.T) {
	stmt, err := Parse("INSERT INTO t VALUES (1, NULL)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	vals := stmt.(*InsertStmt).Values()
	if !vals[1].IsNull() {
		t.Fatalf("expected NULL second value, got %+v", vals[1])
	}
}

func TestParseInsert_StringCaseIsPreserved(t *testing.T) {
	stmt, err := Parse("INSERT INTO T VALUES ('MixedCase')")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ins := stmt.(*InsertStmt)
	if ins.TableName() != "t" {
		t.Fatalf("expected lower-cased table name, got %q", ins.TableName())
	}
	if v := ins.Values()[0]; v.S != "MixedCase" {
		t.Fatalf("string literal should keep its case, got %q", v.S)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		input   string
		wantMsg string
	}{
		{"", "empty SQL statement"},
		{"DROP TABLE t", "expected SELECT or INSERT"},
		{"SELECT FROM t", "expected identifier"},
		{"SELECT * users", "expected FROM"},
		{"SELECT * FROM", "expected identifier"},
		{"SELECT * FROM t WHERE", "expected identifier"},
		{"SELECT * FROM t WHERE age", "expected operator"},
		{"SELECT * FROM t WHERE age >", "expected value"},
		{"SELECT * FROM t extra", "unexpected token after SELECT"},
		{"INSERT users VALUES (1)", "expected INTO"},
		{"INSERT INTO users (1)", "expected VALUES"},
		{"INSERT INTO users VALUES 1", "expected LEFT_PAREN"},
		{"INSERT INTO users VALUES (1", "expected RIGHT_PAREN"},
		{"INSERT INTO users VALUES ()", "expected value"},
		{"INSERT INTO users VALUES (1,)", "expected value"},
		{"INSERT INTO users VALUES (1) junk", "unexpected token after INSERT"},
	}

	for _, c := range cases {
		_, err := Parse(c.input)
		if err == nil {
			t.Fatalf("%q: expected a parse error", c.input)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("%q: expected *ParseError, got %T (%v)", c.input, err, err)
		}
		if !strings.Contains(err.Error(), c.wantMsg) {
			t.Fatalf("%q: expected error containing %q, got %q", c.input, c.wantMsg, err.Error())
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	statements := []Statement{
		NewSelect([]string{"*"}, "users", nil),
		NewSelect([]string{"name", "age"}, "users", nil),
		NewSelect([]string{"id"}, "users", &WhereClause{
			Column: "age", Operator: ">=", Value: Value{Type: TypeInt, I64: 30},
		}),
		NewSelect([]string{"*"}, "users", &WhereClause{
			Column: "name", Operator: "=", Value: Value{Type: TypeString, S: "Alice"},
		}),
		NewInsert("users", []Value{
			{Type: TypeInt, I64: 1},
			{Type: TypeString, S: "Alice"},
			{Type: TypeBool, B: true},
			{Type: TypeNull},
		}),
	}

	for _, want := range statements {
		rendered := want.String()
		got, err := Parse(rendered)
		if err != nil {
			t.Fatalf("%s: Parse failed: %v", rendered, err)
		}
		if got.String() != rendered {
			t.Fatalf("round trip mismatch:\n  rendered: %s\n  reparsed: %s", rendered, got.String())
		}
	}
}

func TestSelectStmt_DefensiveCopies(t *testing.T) {
	cols := []string{"id", "name"}
	stmt := NewSelect(cols, "users", nil)

	// Mutating the input slice must not reach the statement.
	cols[0] = "mangled"
	if got := stmt.Columns(); got[0] != "id" {
		t.Fatalf("statement shares the caller's slice: %v", got)
	}

	// Mutating the accessor's result must not either.
	out := stmt.Columns()
	out[1] = "mangled"
	if got := stmt.Columns(); got[1] != "name" {
		t.Fatalf("accessor returned a shared slice: %v", got)
	}
}

func TestInsertStmt_DefensiveCopies(t *testing.T) {
	vals := []Value{{Type: TypeInt, I64: 1}}
	stmt := NewInsert("t", vals)

	vals[0] = Value{Type: TypeInt, I64: 99}
	if got := stmt.Values(); got[0].I64 != 1 {
		t.Fatalf("statement shares the caller's slice: %v", got)
	}
}
