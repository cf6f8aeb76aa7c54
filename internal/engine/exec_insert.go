package engine

import (
	"fmt"

	"minidb/internal/sql"
)

func (e *Executor) executeInsert(stmt *sql.InsertStmt) ExecutionResult {
	table, ok := e.catalog.Table(stmt.TableName())
	if !ok {
		return errResult(fmt.Errorf("table not found: %s", stmt.TableName()))
	}

	if err := table.Insert(stmt.Values()); err != nil {
		return errResult(fmt.Errorf("insert failed: %w", err))
	}
	return countResult(1)
}
