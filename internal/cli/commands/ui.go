package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/kutbudev/goodtag-cli/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	readStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// terminalWidth falls back to 120 when stdout is not a terminal
// (piped into a note, CI, ...).
func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 120
}

func printSeparator() {
	fmt.Println(faintStyle.Render(strings.Repeat("-", terminalWidth())))
}

// printLink writes one list line: read flag, index, title, #tags.
// Higher verbosity adds the URL and the added-at time.
func printLink(index int, link models.Link, verbose int) {
	readFlag := " "
	if link.IsRead() {
		readFlag = readStyle.Render("R")
	}

	fmt.Printf("%s[%2d] %s   ", readFlag, index, titleStyle.Render(link.DisplayTitle()))
	for _, tag := range link.TagList() {
		fmt.Printf("%s ", tagStyle.Render("#"+tag))
	}
	fmt.Println()

	if verbose > 0 {
		fmt.Printf("     url    : %s\n", faintStyle.Render(link.URL))
	}
	if verbose > 1 {
		fmt.Printf("     added  : %s\n", faintStyle.Render(link.AddedTime().Format("2006-01-02 15:04:05")))
	}
}

type dayCount struct {
	date  string
	total int
	read  int
}

// printSummary writes one row per day with total and read counts.
func printSummary(counts []dayCount) {
	fmt.Println()
	fmt.Printf("%-12s %11s %10s\n", "", "total count", "read count")
	for _, count := range counts {
		fmt.Printf("%-12s %11d %10d\n", count.date, count.total, count.read)
	}
}
