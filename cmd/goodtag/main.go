package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/kutbudev/goodtag-cli/internal/cli/commands"
	"github.com/kutbudev/goodtag-cli/internal/config"
	"github.com/kutbudev/goodtag-cli/internal/logger"
	"github.com/kutbudev/goodtag-cli/internal/obsidian"
	"github.com/kutbudev/goodtag-cli/internal/repository"
	"github.com/kutbudev/goodtag-cli/internal/scrape"
	"github.com/kutbudev/goodtag-cli/internal/tagging"
	"github.com/kutbudev/goodtag-cli/internal/tagmap"
)

// Version will be set during build with ldflags
var Version = "1.2.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	lg := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	defer func() { _ = lg.Sync() }()

	db, err := repository.NewDatabase(cfg)
	if err != nil {
		log.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	// Missing or malformed mapping ends the run before any record is touched.
	tags, err := tagmap.Load(cfg.Tags.File)
	if err != nil {
		log.Fatal(err)
	}

	repo := repository.NewLinkRepository(db)
	extractor := scrape.NewPageExtractor(cfg.Fetch, lg)

	app := &commands.App{
		Config:   cfg,
		Log:      lg,
		Repo:     repo,
		TagMap:   tags,
		Engine:   tagging.NewEngine(extractor, tags, lg),
		Exporter: obsidian.NewExporter(cfg.Notes.Dir, lg),
	}

	cliApp := &cli.App{
		Name:    "goodtag",
		Usage:   "Curate GoodLinks bookmarks: list, auto-tag and export to daily notes",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print details of each item (repeat for more)",
			},
		},
		Commands: []*cli.Command{
			commands.NewListCommand(app),
			commands.NewUpdateCommand(app),
			commands.NewNoteCommand(app),
			commands.NewTagmapCommand(app),
			commands.NewInspectCommand(app),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
