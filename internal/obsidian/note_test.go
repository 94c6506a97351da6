package obsidian

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kutbudev/goodtag-cli/internal/logger"
	"github.com/kutbudev/goodtag-cli/internal/models"
)

func strPtr(s string) *string { return &s }

func testLinks() []models.Link {
	return []models.Link{
		{URL: "https://blog.example.com/a", Title: strPtr("First"), Tags: strPtr("golang kubernetes")},
		{URL: "https://blog.example.com/b", Title: nil, Tags: nil},
	}
}

func TestExportMissingNote(t *testing.T) {
	exporter := NewExporter(t.TempDir(), logger.Nop())

	_, err := exporter.Export("2021-09-04", testLinks())
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("Export() error = %v, want ErrNoteNotFound", err)
	}

	// The exporter never creates note files.
	if _, err := os.Stat(exporter.NotePath("2021-09-04")); !os.IsNotExist(err) {
		t.Error("missing note must not be created")
	}
}

func TestExportAppendsSection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2021-09-04.md")
	if err := os.WriteFile(path, []byte("# Daily\n\nsome text\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	exporter := NewExporter(dir, logger.Nop())
	appended, err := exporter.Export("2021-09-04", testLinks())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if appended != 2 {
		t.Errorf("appended = %d, want 2", appended)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "# Daily\n\nsome text\n" +
		"## Goodlinks\n" +
		"- [First](https://blog.example.com/a) #golang #kubernetes \n" +
		"- [No title](https://blog.example.com/b) \n"
	if string(content) != want {
		t.Errorf("note content = %q, want %q", content, want)
	}
}

func TestExportRepairsMissingTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2021-09-04.md")
	if err := os.WriteFile(path, []byte("no trailing newline"), 0o644); err != nil {
		t.Fatal(err)
	}

	exporter := NewExporter(dir, logger.Nop())
	if _, err := exporter.Export("2021-09-04", testLinks()[:1]); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "no trailing newline\n\n" +
		"## Goodlinks\n" +
		"- [First](https://blog.example.com/a) #golang #kubernetes \n"
	if string(content) != want {
		t.Errorf("note content = %q, want %q", content, want)
	}
}

func TestExportIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2021-09-04.md")
	if err := os.WriteFile(path, []byte("# Daily\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	exporter := NewExporter(dir, logger.Nop())
	if _, err := exporter.Export("2021-09-04", testLinks()); err != nil {
		t.Fatalf("first Export() error = %v", err)
	}
	afterFirst, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	_, err = exporter.Export("2021-09-04", testLinks())
	if !errors.Is(err, ErrAlreadyExported) {
		t.Fatalf("second Export() error = %v, want ErrAlreadyExported", err)
	}

	afterSecond, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(afterFirst) != string(afterSecond) {
		t.Error("second export must not modify the note")
	}
}

func TestNotePath(t *testing.T) {
	exporter := NewExporter("/notes", logger.Nop())
	if got := exporter.NotePath("2021-09-04"); got != filepath.Join("/notes", "2021-09-04.md") {
		t.Errorf("NotePath() = %q", got)
	}
}
