package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// NewInspectCommand creates the inspect command group (store debugging).
func NewInspectCommand(app *App) *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Inspect the GoodLinks store",
		Subcommands: []*cli.Command{
			{
				Name:  "tables",
				Usage: "Print the tables in the store",
				Action: func(c *cli.Context) error {
					tables, err := app.Repo.TableNames()
					if err != nil {
						return err
					}
					fmt.Println("== Tables in this database ==")
					for index, table := range tables {
						fmt.Printf("%4d %s\n", index, table)
					}
					return nil
				},
			},
			{
				Name:  "fields",
				Usage: "Print the columns of the link and state tables",
				Action: func(c *cli.Context) error {
					for _, table := range []string{"link", "state"} {
						fields, err := app.Repo.TableFields(table)
						if err != nil {
							return err
						}
						fmt.Printf("== Fields of table %s ==\n", table)
						for index, field := range fields {
							fmt.Printf("%4d %s\n", index, field)
						}
					}
					return nil
				},
			},
		},
	}
}
