package engine

import (
	"fmt"
	"strings"

	"minidb/internal/storage"
)

// ExecutionResult is the uniform outcome of executing one statement.
// Exactly one shape is populated: rows with their column names (SELECT),
// a rows-affected count (INSERT), or an error.
type ExecutionResult struct {
	Rows         []storage.Row
	Columns      []string
	RowsAffected int
	Err          error
}

// OK reports whether execution succeeded.
func (r ExecutionResult) OK() bool {
	return r.Err == nil
}

func rowsResult(rows []storage.Row, columns []string) ExecutionResult {
	return ExecutionResult{Rows: rows, Columns: columns, RowsAffected: len(rows)}
}

func countResult(rowsAffected int) ExecutionResult {
	return ExecutionResult{RowsAffected: rowsAffected}
}

func errResult(err error) ExecutionResult {
	return ExecutionResult{Err: err}
}

// Format renders the result as a plain text table, for the shell.
func (r ExecutionResult) Format() string {
	if r.Err != nil {
		return "ERROR: " + r.Err.Error()
	}
	if r.Rows == nil && r.Columns == nil {
		return fmt.Sprintf("OK, %d row(s) affected", r.RowsAffected)
	}
	if len(r.Rows) == 0 {
		return "(0 rows)"
	}

	var sb strings.Builder
	sb.WriteString("| ")
	for _, col := range r.Columns {
		fmt.Fprintf(&sb, "%-15s | ", col)
	}
	sb.WriteString("\n")

	for _, row := range r.Rows {
		sb.WriteString("| ")
		for _, v := range row {
			fmt.Fprintf(&sb, "%-15s | ", v.Display())
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "(%d rows)", len(r.Rows))
	return sb.String()
}
