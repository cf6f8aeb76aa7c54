// Package catalog maintains the name-to-table registry the executor
// queries against. The catalog itself carries no locking: a concurrent
// host must serialize all catalog and table mutation.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"minidb/internal/storage"
)

// Catalog maps lower-cased table names to tables.
type Catalog struct {
	tables map[string]*storage.Table
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{tables: make(map[string]*storage.Table)}
}

// CreateTable creates a new empty table and registers it. The name must
// not already be in use.
func (c *Catalog) CreateTable(name string, columns []storage.Column) (*storage.Table, error) {
	key := strings.ToLower(name)
	if _, exists := c.tables[key]; exists {
		return nil, fmt.Errorf("table already exists: %s", key)
	}
	t, err := storage.NewTable(name, columns)
	if err != nil {
		return nil, err
	}
	c.tables[t.Name()] = t
	return t, nil
}

// AddTable registers an existing table (e.g. one loaded from disk),
// replacing any previous table of the same name.
func (c *Catalog) AddTable(t *storage.Table) {
	c.tables[t.Name()] = t
}

// Table looks up a table by name, case-insensitively.
func (c *Catalog) Table(name string) (*storage.Table, bool) {
	t, ok := c.tables[strings.ToLower(name)]
	return t, ok
}

func (c *Catalog) HasTable(name string) bool {
	_, ok := c.Table(name)
	return ok
}

// DropTable removes a table and reports whether it existed.
func (c *Catalog) DropTable(name string) bool {
	key := strings.ToLower(name)
	if _, ok := c.tables[key]; !ok {
		return false
	}
	delete(c.tables, key)
	return true
}

// TableNames returns the registered names in sorted order.
func (c *Catalog) TableNames() []string {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Len() int { return len(c.tables) }
