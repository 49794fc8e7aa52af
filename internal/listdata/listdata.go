// Package listdata supplies the row content shown by the demo list panes:
// either generated in-memory rows or rows loaded from a SQLite database.
package listdata

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"
)

// Row is one list entry.
type Row struct {
	ID    string
	Label string
}

var sampleNames = []string{
	"Ada Lovelace", "Alan Turing", "Grace Hopper", "Edsger Dijkstra",
	"Donald Knuth", "Barbara Liskov", "John McCarthy", "Dennis Ritchie",
	"Ken Thompson", "Frances Allen", "Tony Hoare", "Niklaus Wirth",
	"Radia Perlman", "Leslie Lamport", "Margaret Hamilton", "Rob Pike",
}

var sampleTasks = []string{
	"Review scroll router edge cases", "Profile the poll loop",
	"Tighten rect refresh timing", "Document the handshake protocol",
	"Audit grace window defaults", "Rework boundary detection",
	"Verify cursor restore path", "Trace wheel delta signs",
	"Clean up registry teardown", "Check hidden-pane selection",
	"Measure tick jitter", "Exercise group unregister",
}

// Contacts generates n deterministic contact rows.
func Contacts(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		name := sampleNames[i%len(sampleNames)]
		rows[i] = Row{
			ID:    fmt.Sprintf("c-%03d", i+1),
			Label: fmt.Sprintf("%s <%s%d@example.test>", name, initials(name), i+1),
		}
	}
	return rows
}

// Tasks generates n deterministic task rows.
func Tasks(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			ID:    fmt.Sprintf("t-%03d", i+1),
			Label: fmt.Sprintf("[P%d] %s", i%4, sampleTasks[i%len(sampleTasks)]),
		}
	}
	return rows
}

func initials(name string) string {
	out := make([]byte, 0, 4)
	prev := byte(' ')
	for i := 0; i < len(name); i++ {
		if prev == ' ' && name[i] != ' ' {
			out = append(out, name[i]|0x20)
		}
		prev = name[i]
	}
	return string(out)
}

// LoadDB loads the contacts and tasks tables from a demo database. Both
// tables are read concurrently; any failure aborts the whole load.
func LoadDB(ctx context.Context, path string) (contacts, tasks []Row, err error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contacts, err = loadTable(ctx, conn, "SELECT id, name FROM contacts ORDER BY name")
		return err
	})
	g.Go(func() error {
		var err error
		tasks, err = loadTable(ctx, conn, "SELECT id, title FROM tasks ORDER BY id")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return contacts, tasks, nil
}

func loadTable(ctx context.Context, conn *sql.DB, query string) ([]Row, error) {
	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.ID, &r.Label); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// InitDB creates and seeds a demo database at path so the demo has
// something realistic to scroll.
func InitDB(ctx context.Context, path string) error {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer conn.Close()

	const schema = `
CREATE TABLE IF NOT EXISTS contacts (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL
);`
	if _, err := conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, r := range Contacts(64) {
		if _, err := tx.ExecContext(ctx, "INSERT OR REPLACE INTO contacts (id, name) VALUES (?, ?)", r.ID, r.Label); err != nil {
			return fmt.Errorf("seed contacts: %w", err)
		}
	}
	for _, r := range Tasks(64) {
		if _, err := tx.ExecContext(ctx, "INSERT OR REPLACE INTO tasks (id, title) VALUES (?, ?)", r.ID, r.Label); err != nil {
			return fmt.Errorf("seed tasks: %w", err)
		}
	}
	return tx.Commit()
}

// Filter returns the rows whose labels fuzzy-match the query, best match
// first. An empty query returns rows unchanged.
func Filter(rows []Row, query string) []Row {
	if query == "" {
		return rows
	}
	labels := make([]string, len(rows))
	for i, r := range rows {
		labels[i] = r.Label
	}
	matches := fuzzy.Find(query, labels)
	out := make([]Row, 0, len(matches))
	for _, m := range matches {
		out = append(out, rows[m.Index])
	}
	return out
}
