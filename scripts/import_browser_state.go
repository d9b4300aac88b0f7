//go:build ignore

// import_browser_state copies checklist progress saved by the browser version
// of the checklists into the launchlist database.
//
// Export the browser's localStorage as a JSON object first, e.g. from the
// devtools console:
//
//	copy(JSON.stringify(Object.fromEntries(Object.entries(localStorage))))
//
// then run:
//
//	go run scripts/import_browser_state.go -in state.json [-db path] [-dry-run]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/launchlist/internal/adapters/sqlite"
	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/db"
)

func main() {
	in := flag.String("in", "", "JSON file with the exported localStorage object")
	dbPath := flag.String("db", "", "database path (default ~/.launchlist/launchlist.db)")
	dryRun := flag.Bool("dry-run", false, "Preview import without writing")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		os.Exit(1)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", *in, err)
		os.Exit(1)
	}

	// localStorage values are strings; each checklist value is itself a JSON array
	var exported map[string]string
	if err := json.Unmarshal(data, &exported); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", *in, err)
		os.Exit(1)
	}

	if *dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
			os.Exit(1)
		}
		*dbPath = filepath.Join(homeDir, ".launchlist", "launchlist.db")
	}

	type pending struct {
		key string
		ids []string
	}
	var imports []pending

	for _, c := range catalogs.All() {
		raw, ok := exported[c.StorageKey]
		if !ok {
			continue
		}

		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			fmt.Fprintf(os.Stderr, "Skipping %s: value is not a JSON list: %v\n", c.StorageKey, err)
			continue
		}

		known := 0
		for _, id := range ids {
			if c.Has(id) {
				known++
			}
		}
		fmt.Printf("  %s: %d id(s), %d of %d catalog tasks\n", c.StorageKey, len(ids), known, c.Len())
		imports = append(imports, pending{key: c.StorageKey, ids: ids})
	}

	if len(imports) == 0 {
		fmt.Println("No checklist state found to import")
		return
	}

	if *dryRun {
		fmt.Println("\n=== DRY RUN - No changes made ===")
		return
	}

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database directory: %v\n", err)
		os.Exit(1)
	}
	conn, err := db.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	store := sqlite.NewStateStore(conn)
	ctx := context.Background()

	imported := 0
	for _, p := range imports {
		// Re-encode so the stored record is canonical
		value, _ := json.Marshal(p.ids)
		if err := store.Put(ctx, p.key, string(value)); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", p.key, err)
			continue
		}
		fmt.Printf("✓ Imported %s\n", p.key)
		imported++
	}

	fmt.Printf("\n=== Import complete: %d/%d checklists imported ===\n", imported, len(imports))
}
