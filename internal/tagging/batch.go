package tagging

import (
	"context"
	"fmt"

	"github.com/kutbudev/goodtag-cli/internal/logger"
	"github.com/kutbudev/goodtag-cli/internal/models"
)

// LinkSource is what the updater needs from the link store.
type LinkSource interface {
	RecordsForDate(date string) ([]models.Link, error)
	UpdateTags(id, tags string) error
}

// BatchUpdater runs tag inference across all records in a date window.
// One bad record never aborts the batch; a failing store write does,
// since nothing can be persisted without the store.
type BatchUpdater struct {
	source LinkSource
	engine *Engine
	log    *logger.Logger

	// DryRun counts would-be changes without persisting them.
	DryRun bool
}

func NewBatchUpdater(source LinkSource, engine *Engine, log *logger.Logger) *BatchUpdater {
	return &BatchUpdater{
		source: source,
		engine: engine,
		log:    log,
	}
}

// UpdateForDate processes every record of the given local calendar day
// (all records when date is empty) and returns how many were changed.
func (b *BatchUpdater) UpdateForDate(ctx context.Context, date string) (int, error) {
	links, err := b.source.RecordsForDate(date)
	if err != nil {
		return 0, err
	}

	b.log.Info("processing links",
		logger.String("date", date),
		logger.Int("count", len(links)))

	updated := 0
	for _, link := range links {
		changed, newTags := b.engine.InferTags(ctx, link)
		if !changed {
			continue
		}

		if !b.DryRun {
			if err := b.source.UpdateTags(link.ID, newTags); err != nil {
				return updated, fmt.Errorf("batch aborted at link %s: %w", link.ID, err)
			}
		}

		b.log.Info("tags updated",
			logger.String("id", link.ID),
			logger.String("old", link.TagString()),
			logger.String("new", newTags))
		updated++
	}

	return updated, nil
}
