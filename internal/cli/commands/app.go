package commands

import (
	"github.com/kutbudev/goodtag-cli/internal/config"
	"github.com/kutbudev/goodtag-cli/internal/logger"
	"github.com/kutbudev/goodtag-cli/internal/obsidian"
	"github.com/kutbudev/goodtag-cli/internal/repository"
	"github.com/kutbudev/goodtag-cli/internal/tagging"
	"github.com/kutbudev/goodtag-cli/internal/tagmap"
)

// App bundles the process-wide dependencies every command draws from.
// Everything is built once in main: one config, one logger, one store
// connection, one immutable tag map.
type App struct {
	Config   *config.Config
	Log      *logger.Logger
	Repo     *repository.LinkRepository
	TagMap   tagmap.TagMap
	Engine   *tagging.Engine
	Exporter *obsidian.Exporter
}
