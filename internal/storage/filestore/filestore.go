// Package filestore persists tables as plain text files, one file per
// table. The query engine itself never touches disk; a surrounding
// component uses this store to populate a catalog before queries run
// and to persist it afterward.
//
// File layout:
//
//	# MiniDB Table File v1
//	TABLE:<name>
//	COLUMNS:<n>
//	COL:<name>:<TYPE>
//	ROWS:<m>
//	ROW:v1|v2|...
//	END
package filestore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

const (
	// FileExtension is appended to the table name to form its file name.
	FileExtension = ".minidb"

	magicHeader    = "# MiniDB Table File v1"
	valueDelimiter = "|"
)

// Store reads and writes table files under a single data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// FilePath returns the path the given table is stored at.
func (s *Store) FilePath(tableName string) string {
	return filepath.Join(s.dir, strings.ToLower(tableName)+FileExtension)
}

// TableFileExists reports whether a file for the table is present.
func (s *Store) TableFileExists(tableName string) bool {
	_, err := os.Stat(s.FilePath(tableName))
	return err == nil
}

// SaveTable writes the table's schema and rows, replacing any previous
// file.
func (s *Store) SaveTable(t *storage.Table) error {
	f, err := os.Create(s.FilePath(t.Name()))
	if err != nil {
		return fmt.Errorf("save table %s: %w", t.Name(), err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, magicHeader)
	fmt.Fprintf(w, "TABLE:%s\n", t.Name())

	cols := t.Columns()
	fmt.Fprintf(w, "COLUMNS:%d\n", len(cols))
	for _, col := range cols {
		fmt.Fprintf(w, "COL:%s:%s\n", col.Name, col.Type)
	}

	rows := t.SelectAll()
	fmt.Fprintf(w, "ROWS:%d\n", len(rows))
	for _, row := range rows {
		fmt.Fprintf(w, "ROW:%s\n", serializeRow(row))
	}
	fmt.Fprintln(w, "END")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("save table %s: %w", t.Name(), err)
	}
	return f.Close()
}

// LoadTable reads a table back. Rows go through Table.Insert, so the
// schema invariants hold for loaded data too.
func (s *Store) LoadTable(tableName string) (*storage.Table, error) {
	f, err := os.Open(s.FilePath(tableName))
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", tableName, err)
	}
	defer f.Close()

	r := bufio.NewScanner(f)
	next := func(prefix string) (string, error) {
		if !r.Scan() {
			return "", fmt.Errorf("unexpected end of file, expected %s line", prefix)
		}
		line := r.Text()
		if !strings.HasPrefix(line, prefix) {
			return "", fmt.Errorf("expected %s line, got %q", prefix, line)
		}
		return line[len(prefix):], nil
	}

	if !r.Scan() || r.Text() != magicHeader {
		return nil, fmt.Errorf("load table %s: not a MiniDB table file", tableName)
	}

	name, err := next("TABLE:")
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", tableName, err)
	}

	colCountStr, err := next("COLUMNS:")
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", tableName, err)
	}
	colCount, err := strconv.Atoi(colCountStr)
	if err != nil {
		return nil, fmt.Errorf("load table %s: invalid column count %q", tableName, colCountStr)
	}

	cols := make([]storage.Column, 0, colCount)
	for i := 0; i < colCount; i++ {
		def, err := next("COL:")
		if err != nil {
			return nil, fmt.Errorf("load table %s: %w", tableName, err)
		}
		col, err := parseColumnDef(def)
		if err != nil {
			return nil, fmt.Errorf("load table %s: %w", tableName, err)
		}
		cols = append(cols, col)
	}

	table, err := storage.NewTable(name, cols)
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", tableName, err)
	}

	rowCountStr, err := next("ROWS:")
	if err != nil {
		return nil, fmt.Errorf("load table %s: %w", tableName, err)
	}
	rowCount, err := strconv.Atoi(rowCountStr)
	if err != nil {
		return nil, fmt.Errorf("load table %s: invalid row count %q", tableName, rowCountStr)
	}

	for i := 0; i < rowCount; i++ {
		data, err := next("ROW:")
		if err != nil {
			return nil, fmt.Errorf("load table %s: %w", tableName, err)
		}
		values, err := deserializeRow(data, cols)
		if err != nil {
			return nil, fmt.Errorf("load table %s: %w", tableName, err)
		}
		if err := table.Insert(values); err != nil {
			return nil, fmt.Errorf("load table %s: %w", tableName, err)
		}
	}

	if _, err := next("END"); err != nil {
		return nil, fmt.Errorf("load table %s: %w", tableName, err)
	}
	return table, nil
}

// ListTables returns the names of all tables stored in the data
// directory.
func (s *Store) ListTables() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), FileExtension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), FileExtension))
	}
	return names, nil
}

// DeleteTable removes the table's file and reports whether it existed.
func (s *Store) DeleteTable(tableName string) bool {
	return os.Remove(s.FilePath(tableName)) == nil
}

func serializeRow(row storage.Row) string {
	parts := make([]string, len(row))
	for i, v := range row {
		parts[i] = v.Display()
	}
	return strings.Join(parts, valueDelimiter)
}

func parseColumnDef(def string) (storage.Column, error) {
	parts := strings.Split(def, ":")
	if len(parts) != 2 {
		return storage.Column{}, fmt.Errorf("invalid column definition: %q", def)
	}

	var typ sql.DataType
	switch parts[1] {
	case "INTEGER":
		typ = sql.TypeInt
	case "STRING":
		typ = sql.TypeString
	case "BOOLEAN":
		typ = sql.TypeBool
	default:
		return storage.Column{}, fmt.Errorf("unknown column type: %q", parts[1])
	}
	return storage.NewColumn(parts[0], typ)
}

func deserializeRow(data string, cols []storage.Column) ([]sql.Value, error) {
	parts := strings.Split(data, valueDelimiter)
	if len(parts) != len(cols) {
		return nil, fmt.Errorf("row has %d values, expected %d", len(parts), len(cols))
	}

	values := make([]sql.Value, len(parts))
	for i, text := range parts {
		v, err := parseCellValue(text, cols[i].Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", cols[i].Name, err)
		}
		values[i] = v
	}
	return values, nil
}

func parseCellValue(text string, typ sql.DataType) (sql.Value, error) {
	if text == "NULL" || text == "" {
		return sql.Value{Type: sql.TypeNull}, nil
	}

	switch typ {
	case sql.TypeInt:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return sql.Value{}, fmt.Errorf("invalid integer %q", text)
		}
		return sql.Value{Type: sql.TypeInt, I64: n}, nil
	case sql.TypeString:
		return sql.Value{Type: sql.TypeString, S: text}, nil
	case sql.TypeBool:
		return sql.Value{Type: sql.TypeBool, B: text == "true"}, nil
	}
	return sql.Value{}, fmt.Errorf("unknown column type: %s", typ)
}
