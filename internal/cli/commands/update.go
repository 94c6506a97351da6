package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/urfave/cli/v2"

	"github.com/kutbudev/goodtag-cli/internal/tagging"
)

// NewUpdateCommand creates the update command (batch tag inference).
func NewUpdateCommand(app *App) *cli.Command {
	flags := append(dateFlags(),
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "do not ask for confirmation",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "show what would change without writing",
		},
	)

	return &cli.Command{
		Name:  "update",
		Usage: "Infer and persist tags for links in a date window",
		Flags: flags,
		Action: func(c *cli.Context) error {
			return runUpdate(app, c)
		},
	}
}

func runUpdate(app *App, c *cli.Context) error {
	dates, err := resolveDates(c)
	if err != nil {
		return err
	}

	dryRun := c.Bool("dry-run")
	if !c.Bool("yes") && !dryRun {
		confirmed := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Update tags for %s?", windowLabel(dates)),
			Default: true,
		}
		if err := survey.AskOne(prompt, &confirmed); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	updater := tagging.NewBatchUpdater(app.Repo, app.Engine, app.Log)
	updater.DryRun = dryRun

	total := 0
	for _, date := range dates {
		updated, err := updater.UpdateForDate(c.Context, date)
		if err != nil {
			return err
		}
		total += updated
	}

	if dryRun {
		fmt.Printf("🔍 Dry run: %d record(s) would be updated\n", total)
		return nil
	}
	fmt.Printf("Updated record : %d\n", total)
	return nil
}
