package repository

import (
	"os"
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"github.com/kutbudev/goodtag-cli/internal/config"
)

func openTestStore(t *testing.T) (*gorm.DB, *LinkRepository) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.sqlite")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Database: config.DatabaseConfig{File: path}}
	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("NewDatabase() error = %v", err)
	}

	// The real schema is owned by GoodLinks; recreate just enough of it.
	stmts := []string{
		`CREATE TABLE link (
			id TEXT PRIMARY KEY,
			url TEXT,
			title TEXT,
			tags TEXT,
			addedAt REAL,
			readAt REAL
		)`,
		`CREATE TABLE state (id TEXT PRIMARY KEY, readAt REAL)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("schema setup: %v", err)
		}
	}

	return db, NewLinkRepository(db)
}

func insertLink(t *testing.T, db *gorm.DB, id, url string, tags *string, addedAt float64) {
	t.Helper()
	err := db.Exec(
		"INSERT INTO link (id, url, title, tags, addedAt, readAt) VALUES (?, ?, ?, ?, ?, NULL)",
		id, url, "title "+id, tags, addedAt,
	).Error
	if err != nil {
		t.Fatalf("insert %s: %v", id, err)
	}
}

func TestNewDatabaseMissingFile(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{File: filepath.Join(t.TempDir(), "absent.sqlite")}}
	if _, err := NewDatabase(cfg); err == nil {
		t.Error("NewDatabase() expected error for missing store file")
	}
}

func TestRecordsForDateWindow(t *testing.T) {
	db, repo := openTestStore(t)

	start, _, err := DayWindow("2021-09-04")
	if err != nil {
		t.Fatal(err)
	}

	tags := "python"
	insertLink(t, db, "in-early", "https://a.example.com", &tags, start+10)
	insertLink(t, db, "in-late", "https://b.example.com", nil, start+86000)
	insertLink(t, db, "before", "https://c.example.com", nil, start-10)
	insertLink(t, db, "after", "https://d.example.com", nil, start+86400)

	links, err := repo.RecordsForDate("2021-09-04")
	if err != nil {
		t.Fatalf("RecordsForDate() error = %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("got %d links, want 2", len(links))
	}

	// Newest first.
	if links[0].ID != "in-late" || links[1].ID != "in-early" {
		t.Errorf("order = [%s, %s], want [in-late, in-early]", links[0].ID, links[1].ID)
	}

	if got := links[1].TagString(); got != "python" {
		t.Errorf("TagString() = %q, want %q", got, "python")
	}
	if links[0].Tags != nil {
		t.Errorf("NULL tags should load as nil, got %v", links[0].Tags)
	}
}

func TestRecordsForDateNoFilter(t *testing.T) {
	db, repo := openTestStore(t)

	insertLink(t, db, "1", "https://a.example.com", nil, 1000)
	insertLink(t, db, "2", "https://b.example.com", nil, 2000)

	links, err := repo.RecordsForDate("")
	if err != nil {
		t.Fatalf("RecordsForDate() error = %v", err)
	}
	if len(links) != 2 {
		t.Errorf("got %d links, want 2", len(links))
	}
}

func TestRecordsForDateEmptyWindow(t *testing.T) {
	_, repo := openTestStore(t)

	links, err := repo.RecordsForDate("2021-09-04")
	if err != nil {
		t.Fatalf("RecordsForDate() error = %v", err)
	}
	if len(links) != 0 {
		t.Errorf("got %d links, want 0", len(links))
	}
}

func TestRecordsForDateInvalidDate(t *testing.T) {
	_, repo := openTestStore(t)

	if _, err := repo.RecordsForDate("09/04/2021"); err == nil {
		t.Error("RecordsForDate() expected error for invalid date")
	}
}

func TestUpdateTags(t *testing.T) {
	db, repo := openTestStore(t)
	insertLink(t, db, "1", "https://a.example.com", nil, 1000)

	if err := repo.UpdateTags("1", "golang kubernetes"); err != nil {
		t.Fatalf("UpdateTags() error = %v", err)
	}

	links, err := repo.RecordsForDate("")
	if err != nil {
		t.Fatal(err)
	}
	if got := links[0].TagString(); got != "golang kubernetes" {
		t.Errorf("tags after update = %q, want %q", got, "golang kubernetes")
	}
}

func TestTableIntrospection(t *testing.T) {
	_, repo := openTestStore(t)

	tables, err := repo.TableNames()
	if err != nil {
		t.Fatalf("TableNames() error = %v", err)
	}
	found := map[string]bool{}
	for _, table := range tables {
		found[table] = true
	}
	if !found["link"] || !found["state"] {
		t.Errorf("TableNames() = %v, want link and state", tables)
	}

	fields, err := repo.TableFields("link")
	if err != nil {
		t.Fatalf("TableFields() error = %v", err)
	}
	hasTags := false
	for _, field := range fields {
		if field == "tags" {
			hasTags = true
		}
	}
	if !hasTags {
		t.Errorf("TableFields(link) = %v, want tags column", fields)
	}
}

func TestDayWindow(t *testing.T) {
	start, end, err := DayWindow("2021-09-04")
	if err != nil {
		t.Fatalf("DayWindow() error = %v", err)
	}
	if end-start != 86400 {
		t.Errorf("window span = %v, want 86400", end-start)
	}

	if _, _, err := DayWindow("not-a-date"); err == nil {
		t.Error("DayWindow() expected error for malformed date")
	}
}
