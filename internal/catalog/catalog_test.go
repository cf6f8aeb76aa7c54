package catalog

import (
	"strings"
	"testing"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

func TestCatalog_CreateAndLookup(t *testing.T) {
	cat := New()

	tbl, err := cat.CreateTable("Users", []storage.Column{
		{Name: "id", Type: sql.TypeInt},
	})
	if err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if tbl.Name() != "users" {
		t.Fatalf("expected lower-cased name %q, got %q", "users", tbl.Name())
	}

	got, ok := cat.Table("USERS")
	if !ok {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if got != tbl {
		t.Fatal("lookup should return the registered table")
	}
}

func TestCatalog_CreateDuplicateFails(t *testing.T) {
	cat := New()
	cols := []storage.Column{{Name: "id", Type: sql.TypeInt}}

	if _, err := cat.CreateTable("users", cols); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	_, err := cat.CreateTable("USERS", cols)
	if err == nil {
		t.Fatal("expected duplicate table name to fail")
	}
	if !strings.Contains(err.Error(), "table already exists: users") {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestCatalog_DropTable(t *testing.T) {
	cat := New()
	if _, err := cat.CreateTable("users", []storage.Column{{Name: "id", Type: sql.TypeInt}}); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}

	if !cat.DropTable("users") {
		t.Fatal("expected drop of existing table to report true")
	}
	if cat.DropTable("users") {
		t.Fatal("expected second drop to report false")
	}
	if cat.HasTable("users") {
		t.Fatal("dropped table should be gone")
	}
}

func TestCatalog_TableNamesSorted(t *testing.T) {
	cat := New()
	cols := []storage.Column{{Name: "id", Type: sql.TypeInt}}
	for _, name := range []string{"orders", "users", "accounts"} {
		if _, err := cat.CreateTable(name, cols); err != nil {
			t.Fatalf("CreateTable(%s): %v", name, err)
		}
	}

	names := cat.TableNames()
	want := []string{"accounts", "orders", "users"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected names %v, got %v", want, names)
		}
	}
}

func TestCatalog_AddTableReplaces(t *testing.T) {
	cat := New()
	cols := []storage.Column{{Name: "id", Type: sql.TypeInt}}

	first, err := storage.NewTable("users", cols)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	second, err := storage.NewTable("users", cols)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	cat.AddTable(first)
	cat.AddTable(second)

	got, _ := cat.Table("users")
	if got != second {
		t.Fatal("AddTable should replace a same-named table")
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 table, got %d", cat.Len())
	}
}
