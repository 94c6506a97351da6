package commands

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"

	"github.com/kutbudev/goodtag-cli/internal/obsidian"
	"github.com/kutbudev/goodtag-cli/internal/tagging"
)

// NewNoteCommand creates all subcommands for the 'note' command group.
func NewNoteCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "note",
		Usage: "Work with Obsidian daily notes",
		Subcommands: []*cli.Command{
			noteExportCmd(app),
			noteShowCmd(app),
		},
	}
}

// noteExportCmd appends a day's links into the daily note, once.
func noteExportCmd(app *App) *cli.Command {
	flags := append(dateFlags(),
		&cli.BoolFlag{
			Name:  "update",
			Usage: "run tag inference before exporting",
		},
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Append a day's links to its daily note",
		Flags: flags,
		Action: func(c *cli.Context) error {
			dates, err := resolveDates(c)
			if err != nil {
				return err
			}

			updater := tagging.NewBatchUpdater(app.Repo, app.Engine, app.Log)

			for _, date := range dates {
				if date == "" {
					return fmt.Errorf("note export needs a date window, not --all")
				}

				if c.Bool("update") {
					if _, err := updater.UpdateForDate(c.Context, date); err != nil {
						return err
					}
				}

				links, err := app.Repo.RecordsForDate(date)
				if err != nil {
					return err
				}
				if len(links) == 0 {
					fmt.Printf("%s : No links to append\n", date)
					continue
				}

				appended, err := app.Exporter.Export(date, links)
				switch {
				case errors.Is(err, obsidian.ErrNoteNotFound):
					fmt.Printf("%s : No MD file\n", date)
				case errors.Is(err, obsidian.ErrAlreadyExported):
					fmt.Printf("%s : Daily note has already a Goodlinks section\n", date)
				case err != nil:
					return err
				default:
					fmt.Printf("✅ Appended %d links to Daily Notes (%s)\n", appended, date)
				}
			}
			return nil
		},
	}
}

// noteShowCmd renders a daily note to the terminal.
func noteShowCmd(app *App) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Render a daily note in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "select one day (YYYY-MM-DD), default today",
			},
		},
		Action: func(c *cli.Context) error {
			date := c.String("date")
			if date == "" {
				date = time.Now().Format(dateLayout)
			}

			path := app.Exporter.NotePath(date)
			content, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Printf("%s : No MD file\n", date)
					return nil
				}
				return fmt.Errorf("could not read note %s: %w", path, err)
			}

			rendered, err := glamour.Render(string(content), "dark")
			if err != nil {
				return fmt.Errorf("could not render note %s: %w", path, err)
			}
			fmt.Print(rendered)
			return nil
		},
	}
}
