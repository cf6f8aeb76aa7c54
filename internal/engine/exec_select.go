package engine

import (
	"fmt"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

func (e *Executor) executeSelect(stmt *sql.SelectStmt) ExecutionResult {
	table, ok := e.catalog.Table(stmt.TableName())
	if !ok {
		return errResult(fmt.Errorf("table not found: %s", stmt.TableName()))
	}

	var rows []storage.Row
	if w := stmt.Where(); w != nil {
		filtered, err := table.SelectWhere(w.Column, w.Operator, w.Value)
		if err != nil {
			return errResult(err)
		}
		rows = filtered
	} else {
		rows = table.SelectAll()
	}

	if stmt.IsSelectAll() {
		return rowsResult(rows, table.ColumnNames())
	}

	columns := stmt.Columns()
	projected, err := projectColumns(table, rows, columns)
	if err != nil {
		return errResult(err)
	}
	return rowsResult(projected, columns)
}

// projectColumns builds new rows containing only the requested columns,
// in request order, independent of the table's layout.
func projectColumns(table *storage.Table, rows []storage.Row, columns []string) ([]storage.Row, error) {
	indices := make([]int, len(columns))
	for i, name := range columns {
		idx := table.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("column not found: %s", name)
		}
		indices[i] = idx
	}

	projected := make([]storage.Row, 0, len(rows))
	for _, row := range rows {
		out := make(storage.Row, len(indices))
		for i, idx := range indices {
			out[i] = row[idx]
		}
		projected = append(projected, out)
	}
	return projected, nil
}
