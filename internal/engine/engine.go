// Package engine executes parsed statements against a catalog of
// in-memory tables: SELECT with filtering and projection, INSERT with
// schema validation, and programmatic nested-loop joins.
package engine

import (
	"fmt"

	"minidb/internal/catalog"
	"minidb/internal/sql"
)

// Executor runs statements against a catalog. It has no locking of its
// own; execution is single-threaded and synchronous.
type Executor struct {
	catalog *catalog.Catalog
}

// New creates an executor over the given catalog.
func New(cat *catalog.Catalog) *Executor {
	return &Executor{catalog: cat}
}

// Catalog returns the catalog the executor operates on.
func (e *Executor) Catalog() *catalog.Catalog {
	return e.catalog
}

// Execute parses and executes one query. It is the single error
// boundary: every lexical, syntax or runtime failure comes back as an
// error-shaped ExecutionResult, never as a Go error or panic.
func (e *Executor) Execute(query string) ExecutionResult {
	stmt, err := sql.Parse(query)
	if err != nil {
		return errResult(err)
	}
	return e.ExecuteStatement(stmt)
}

// ExecuteStatement executes an already-parsed statement. The statement
// set is closed, but the default arm keeps a forgotten variant from
// passing silently.
func (e *Executor) ExecuteStatement(stmt sql.Statement) ExecutionResult {
	switch s := stmt.(type) {
	case *sql.SelectStmt:
		return e.executeSelect(s)
	case *sql.InsertStmt:
		return e.executeInsert(s)
	default:
		return errResult(fmt.Errorf("unsupported statement type %T", stmt))
	}
}
