package commands

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// NewTagmapCommand creates the tagmap command (dump the loaded mapping).
func NewTagmapCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "tagmap",
		Usage: "Print the loaded keyword→tag mapping",
		Action: func(c *cli.Context) error {
			fmt.Printf("== Tag map (%s) ==\n", app.Config.Tags.File)
			for _, keyword := range app.TagMap.Keywords() {
				tags, _ := app.TagMap.Lookup(keyword)
				fmt.Printf("%-12s : %s\n", keyword, strings.Join(tags, " "))
			}
			return nil
		},
	}
}
