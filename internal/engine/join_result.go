package engine

import (
	"strings"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

// JoinResult holds the combined schema and rows of a two-table join.
// Columns are the left table's followed by the right table's, in that
// fixed order; QualifiedColumns carries the parallel "table.column"
// names used for disambiguation. Every row has exactly
// left-column-count + right-column-count values.
type JoinResult struct {
	LeftTable        string
	RightTable       string
	Columns          []storage.Column
	QualifiedColumns []string
	Rows             []storage.Row
}

func newJoinResult(left, right *storage.Table) *JoinResult {
	r := &JoinResult{
		LeftTable:  left.Name(),
		RightTable: right.Name(),
	}
	r.addColumns(left.Name(), left.Columns())
	r.addColumns(right.Name(), right.Columns())
	return r
}

func (r *JoinResult) addColumns(tableName string, cols []storage.Column) {
	for _, col := range cols {
		r.Columns = append(r.Columns, col)
		r.QualifiedColumns = append(r.QualifiedColumns, tableName+"."+col.Name)
	}
}

// addJoinedRow appends left's values followed by right's.
func (r *JoinResult) addJoinedRow(left, right storage.Row) {
	row := make(storage.Row, 0, len(left)+len(right))
	row = append(row, left...)
	row = append(row, right...)
	r.Rows = append(r.Rows, row)
}

// addLeftOnlyRow appends a left row padded with NULL for every right
// column.
func (r *JoinResult) addLeftOnlyRow(left storage.Row, rightColumnCount int) {
	row := make(storage.Row, 0, len(left)+rightColumnCount)
	row = append(row, left...)
	for i := 0; i < rightColumnCount; i++ {
		row = append(row, sql.Value{Type: sql.TypeNull})
	}
	r.Rows = append(r.Rows, row)
}

// addRightOnlyRow appends a right row padded with NULL for every left
// column.
func (r *JoinResult) addRightOnlyRow(right storage.Row, leftColumnCount int) {
	row := make(storage.Row, 0, leftColumnCount+len(right))
	for i := 0; i < leftColumnCount; i++ {
		row = append(row, sql.Value{Type: sql.TypeNull})
	}
	row = append(row, right...)
	r.Rows = append(r.Rows, row)
}

func (r *JoinResult) RowCount() int { return len(r.Rows) }

func (r *JoinResult) ColumnCount() int { return len(r.Columns) }

// ColumnIndex returns the position of a qualified "table.column" name,
// or -1.
func (r *JoinResult) ColumnIndex(qualifiedName string) int {
	name := strings.ToLower(qualifiedName)
	for i, q := range r.QualifiedColumns {
		if q == name {
			return i
		}
	}
	return -1
}

// ColumnIndexByName returns the first column whose qualified name ends
// with ".name", or -1.
func (r *JoinResult) ColumnIndexByName(columnName string) int {
	suffix := "." + strings.ToLower(columnName)
	for i, q := range r.QualifiedColumns {
		if strings.HasSuffix(q, suffix) {
			return i
		}
	}
	return -1
}
