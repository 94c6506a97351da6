package commands

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

const dateLayout = "2006-01-02"

// dateFlags is the window selection shared by list, update and export.
func dateFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "date",
			Aliases: []string{"d"},
			Usage:   "select one day (YYYY-MM-DD)",
		},
		&cli.BoolFlag{
			Name:  "today",
			Usage: "same as --date with today",
		},
		&cli.IntFlag{
			Name:  "days",
			Usage: "how many days up to today",
		},
		&cli.BoolFlag{
			Name:  "all",
			Usage: "process every record regardless of date",
		},
	}
}

// resolveDates turns the window flags into the list of days to process,
// oldest first. The empty string means "no date filter".
func resolveDates(c *cli.Context) ([]string, error) {
	if c.Bool("all") {
		return []string{""}, nil
	}

	if date := c.String("date"); date != "" {
		if _, err := time.ParseInLocation(dateLayout, date, time.Local); err != nil {
			return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", date)
		}
		return []string{date}, nil
	}

	if days := c.Int("days"); days > 1 {
		dates := make([]string, 0, days)
		for offset := days - 1; offset >= 0; offset-- {
			dates = append(dates, time.Now().AddDate(0, 0, -offset).Format(dateLayout))
		}
		return dates, nil
	}

	return []string{time.Now().Format(dateLayout)}, nil
}

// windowLabel names a window for prompts and summaries.
func windowLabel(dates []string) string {
	if len(dates) == 1 {
		if dates[0] == "" {
			return "all records"
		}
		return dates[0]
	}
	return fmt.Sprintf("%s .. %s", dates[0], dates[len(dates)-1])
}
