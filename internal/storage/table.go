package storage

import (
	"fmt"
	"strings"

	"minidb/internal/sql"
)

// Column describes one column in a table: a lower-cased, non-empty name
// and a declared type.
type Column struct {
	Name string
	Type sql.DataType
}

// NewColumn validates and normalizes a column definition.
func NewColumn(name string, typ sql.DataType) (Column, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Column{}, fmt.Errorf("column name cannot be empty")
	}
	if typ != sql.TypeInt && typ != sql.TypeString && typ != sql.TypeBool {
		return Column{}, fmt.Errorf("invalid column type: %s", typ)
	}
	return Column{Name: name, Type: typ}, nil
}

// Row is one record: an ordered, fixed-length tuple of values,
// positionally aligned to the table's column list.
type Row []sql.Value

// Clone returns an independent copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// Value returns the value at the given column position.
func (r Row) Value(i int) (sql.Value, error) {
	if i < 0 || i >= len(r) {
		return sql.Value{}, fmt.Errorf("column index %d out of range [0, %d)", i, len(r))
	}
	return r[i], nil
}

// Table holds an ordered column list, a derived name-to-index map and
// an ordered row list. Every stored row has exactly one value per
// column, each matching its column's declared type or NULL. Rows are
// append-only.
//
// A Table is not safe for concurrent mutation; a concurrent host must
// serialize writes and must not mutate the table while a scan or join
// over it is in progress.
type Table struct {
	name     string
	columns  []Column
	colIndex map[string]int
	rows     []Row
}

// NewTable creates an empty table. The name is lower-cased; column
// names must be unique and there must be at least one column.
func NewTable(name string, columns []Column) (*Table, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, fmt.Errorf("table name cannot be empty")
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("table must have at least one column")
	}

	cols := make([]Column, len(columns))
	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		col, err := NewColumn(c.Name, c.Type)
		if err != nil {
			return nil, err
		}
		if _, exists := colIndex[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column name: %s", col.Name)
		}
		cols[i] = col
		colIndex[col.Name] = i
	}

	return &Table{
		name:     name,
		columns:  cols,
		colIndex: colIndex,
	}, nil
}

func (t *Table) Name() string { return t.name }

// Columns returns a copy of the column list in declaration order.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name
	}
	return out
}

func (t *Table) ColumnCount() int { return len(t.columns) }

func (t *Table) RowCount() int { return len(t.rows) }

// ColumnIndex returns the position of the named column, or -1 if the
// table has no such column. Lookup is case-insensitive.
func (t *Table) ColumnIndex(name string) int {
	if i, ok := t.colIndex[strings.ToLower(name)]; ok {
		return i
	}
	return -1
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Insert validates and appends one row. The value count must equal the
// column count and every value must match its column's declared type or
// be NULL. On failure the table is unchanged.
func (t *Table) Insert(values []sql.Value) error {
	if len(values) != len(t.columns) {
		return fmt.Errorf("expected %d values, got %d (columns: %s)",
			len(t.columns), len(values), strings.Join(t.ColumnNames(), ", "))
	}

	for i, v := range values {
		col := t.columns[i]
		if v.Type != sql.TypeNull && v.Type != col.Type {
			return fmt.Errorf("invalid value for column %q: expected %s, got %s",
				col.Name, col.Type, v.Type)
		}
	}

	row := make(Row, len(values))
	copy(row, values)
	t.rows = append(t.rows, row)
	return nil
}

// SelectAll returns an independent copy of every row in append order.
func (t *Table) SelectAll() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.Clone()
	}
	return out
}

// SelectWhere returns copies of the rows whose named column satisfies
// "column operator value". An unknown column or an incomparable-kind
// ordering comparison is an error.
func (t *Table) SelectWhere(column, operator string, value sql.Value) ([]Row, error) {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("column not found: %s", column)
	}

	var out []Row
	for _, r := range t.rows {
		ok, err := sql.CompareValues(r[idx], operator, value)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func (t *Table) String() string {
	return fmt.Sprintf("Table{name=%q, columns=%d, rows=%d}",
		t.name, len(t.columns), len(t.rows))
}
