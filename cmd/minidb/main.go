// Command minidb is an interactive shell over the query engine.
// Statements are buffered until a terminating semicolon, executed
// against an in-memory catalog, and the catalog is saved back to the
// data directory on exit.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"minidb/internal/catalog"
	"minidb/internal/engine"
	"minidb/internal/sql"
	"minidb/internal/storage"
	"minidb/internal/storage/filestore"
)

func main() {
	dataDir := flag.String("data", "", "directory to load tables from and save them to")
	flag.Parse()

	cat := catalog.New()

	var store *filestore.Store
	if *dataDir != "" {
		var err error
		store, err = filestore.New(*dataDir)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			os.Exit(1)
		}
		if err := loadTables(store, cat); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			os.Exit(1)
		}
	}
	if cat.Len() == 0 {
		seedDemoTables(cat)
	}

	exec := engine.New(cat)

	rl, err := readline.New("sql> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("minidb - type SQL terminated by ';', or 'exit' to quit")

	var buf strings.Builder
	for {
		if buf.Len() == 0 {
			rl.SetPrompt("sql> ")
		} else {
			rl.SetPrompt("  -> ")
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf.Reset()
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			break
		}

		trimmed := strings.TrimSpace(line)
		if buf.Len() == 0 {
			switch strings.ToLower(trimmed) {
			case "exit", "quit":
				goto done
			case "tables":
				for _, name := range cat.TableNames() {
					fmt.Println(name)
				}
				continue
			case "":
				continue
			}
		}

		buf.WriteString(line)
		if !strings.HasSuffix(trimmed, ";") {
			buf.WriteString("\n")
			continue
		}

		result := exec.Execute(buf.String())
		buf.Reset()
		fmt.Println(result.Format())
	}

done:
	if store != nil {
		if err := saveTables(store, cat); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			os.Exit(1)
		}
	}
	fmt.Println("Goodbye!")
}

func loadTables(store *filestore.Store, cat *catalog.Catalog) error {
	names, err := store.ListTables()
	if err != nil {
		return err
	}
	for _, name := range names {
		t, err := store.LoadTable(name)
		if err != nil {
			return err
		}
		cat.AddTable(t)
	}
	return nil
}

func saveTables(store *filestore.Store, cat *catalog.Catalog) error {
	for _, name := range cat.TableNames() {
		t, ok := cat.Table(name)
		if !ok {
			continue
		}
		if err := store.SaveTable(t); err != nil {
			return err
		}
	}
	return nil
}

// seedDemoTables gives a fresh shell something to query.
func seedDemoTables(cat *catalog.Catalog) {
	users, err := cat.CreateTable("users", []storage.Column{
		{Name: "id", Type: sql.TypeInt},
		{Name: "name", Type: sql.TypeString},
		{Name: "active", Type: sql.TypeBool},
	})
	if err != nil {
		return
	}
	_ = users.Insert([]sql.Value{
		{Type: sql.TypeInt, I64: 1},
		{Type: sql.TypeString, S: "Alice"},
		{Type: sql.TypeBool, B: true},
	})
	_ = users.Insert([]sql.Value{
		{Type: sql.TypeInt, I64: 2},
		{Type: sql.TypeString, S: "Bob"},
		{Type: sql.TypeBool, B: false},
	})
}
