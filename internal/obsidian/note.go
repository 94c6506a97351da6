package obsidian

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kutbudev/goodtag-cli/internal/logger"
	"github.com/kutbudev/goodtag-cli/internal/models"
)

// SectionMarker identifies a prior export inside a daily note. Its
// presence makes Export a no-op, so running twice per day is safe.
const SectionMarker = "## Goodlinks"

var (
	// ErrNoteNotFound means the daily note does not exist. Notes are
	// never created here.
	ErrNoteNotFound = errors.New("daily note not found")

	// ErrAlreadyExported means the note already has a Goodlinks section.
	ErrAlreadyExported = errors.New("daily note already has a Goodlinks section")
)

// Exporter appends a day's links into an Obsidian daily note.
type Exporter struct {
	dir string
	log *logger.Logger
}

func NewExporter(dir string, log *logger.Logger) *Exporter {
	return &Exporter{dir: dir, log: log}
}

// NotePath returns the note file for a YYYY-MM-DD date.
func (e *Exporter) NotePath(date string) string {
	return filepath.Join(e.dir, date+".md")
}

// Export appends a Goodlinks section listing every link, one line each:
// the title as a hyperlink followed by its #tags. Returns the number of
// links written, or ErrNoteNotFound / ErrAlreadyExported as no-ops.
func (e *Exporter) Export(date string, links []models.Link) (int, error) {
	path := e.NotePath(date)

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrNoteNotFound, path)
		}
		return 0, fmt.Errorf("could not read note %s: %w", path, err)
	}

	if bytes.Contains(existing, []byte(SectionMarker)) {
		return 0, ErrAlreadyExported
	}

	var section bytes.Buffer
	// Keep the append byte-safe: a note not ending with a newline gets
	// a blank line so the marker does not concatenate onto prior text.
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		section.WriteString("\n\n")
	}
	section.WriteString(SectionMarker + "\n")

	for _, link := range links {
		fmt.Fprintf(&section, "- [%s](%s) ", link.DisplayTitle(), link.URL)
		for _, tag := range link.TagList() {
			fmt.Fprintf(&section, "#%s ", tag)
		}
		section.WriteString("\n")
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("could not open note %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(section.Bytes()); err != nil {
		return 0, fmt.Errorf("could not append to note %s: %w", path, err)
	}

	e.log.Info("links appended to daily note",
		logger.String("note", path),
		logger.Int("links", len(links)))

	return len(links), nil
}
