package commands

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// NewListCommand creates the list command.
func NewListCommand(app *App) *cli.Command {
	flags := append(dateFlags(),
		&cli.StringFlag{
			Name:    "tag",
			Aliases: []string{"t"},
			Usage:   "only show links whose tags contain this text",
		},
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Value:   -1,
			Usage:   "limit displayed links per day (-1 = no limit)",
		},
		&cli.BoolFlag{
			Name:  "update",
			Usage: "run tag inference on each link while listing",
		},
	)

	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List saved links for a day or range",
		Flags:   flags,
		Action: func(c *cli.Context) error {
			return runList(app, c)
		},
	}
}

func runList(app *App, c *cli.Context) error {
	dates, err := resolveDates(c)
	if err != nil {
		return err
	}

	tagFilter := c.String("tag")
	limit := c.Int("count")
	update := c.Bool("update")
	verbose := c.Count("verbose")

	counts := make([]dayCount, 0, len(dates))
	for _, date := range dates {
		links, err := app.Repo.RecordsForDate(date)
		if err != nil {
			return err
		}

		label := date
		if label == "" {
			label = "all records"
		}

		printSeparator()
		fmt.Println(label)

		total, read, shown := 0, 0, 0
		for _, link := range links {
			if update {
				if changed, newTags := app.Engine.InferTags(c.Context, link); changed {
					if err := app.Repo.UpdateTags(link.ID, newTags); err != nil {
						return err
					}
					link.Tags = &newTags
				}
			}

			if tagFilter != "" && !strings.Contains(link.TagString(), tagFilter) {
				continue
			}

			total++
			if link.IsRead() {
				read++
			}

			if limit == -1 || shown < limit {
				shown++
				printLink(shown, link, verbose)
			}
		}

		fmt.Printf("%d on %s (%d read)\n", total, label, read)
		counts = append(counts, dayCount{date: label, total: total, read: read})
	}

	if len(counts) > 1 {
		printSummary(counts)
	}
	return nil
}
