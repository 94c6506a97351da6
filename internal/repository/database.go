package repository

import (
	"fmt"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kutbudev/goodtag-cli/internal/config"
	"github.com/kutbudev/goodtag-cli/internal/models"
)

const secondsPerDay = 24 * 60 * 60

// NewDatabase opens the GoodLinks sqlite file. The connection is held
// for the process lifetime; the schema is owned by GoodLinks, so there
// is no migration here.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	if _, err := os.Stat(cfg.Database.File); err != nil {
		return nil, fmt.Errorf("goodlinks data file is not found: %s", cfg.Database.File)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Database.File), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// LinkRepository is the thin query layer over the link table.
type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

// RecordsForDate returns links newest-first. A date restricts the
// result to the local calendar day; an empty date returns everything.
func (r *LinkRepository) RecordsForDate(date string) ([]models.Link, error) {
	query := r.db.Model(&models.Link{}).Order("addedAt DESC")

	if date != "" {
		start, end, err := DayWindow(date)
		if err != nil {
			return nil, err
		}
		query = query.Where("addedAt >= ? AND addedAt < ?", start, end)
	}

	var links []models.Link
	if err := query.Find(&links).Error; err != nil {
		return nil, fmt.Errorf("could not read links: %w", err)
	}
	return links, nil
}

// UpdateTags persists the tag string for one record. Single row, single
// column, committed immediately.
func (r *LinkRepository) UpdateTags(id, tags string) error {
	result := r.db.Model(&models.Link{}).Where("id = ?", id).Update("tags", tags)
	if result.Error != nil {
		return fmt.Errorf("could not update tags for link %s: %w", id, result.Error)
	}
	return nil
}

// TableNames lists the tables in the store (debugging surface).
func (r *LinkRepository) TableNames() ([]string, error) {
	var names []string
	err := r.db.Raw("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name").Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("could not list tables: %w", err)
	}
	return names, nil
}

// TableFields lists the column names of one table (debugging surface).
func (r *LinkRepository) TableFields(table string) ([]string, error) {
	var names []string
	err := r.db.Raw("SELECT name FROM pragma_table_info(?)", table).Scan(&names).Error
	if err != nil {
		return nil, fmt.Errorf("could not read fields of %s: %w", table, err)
	}
	return names, nil
}

// DayWindow computes the inclusive epoch window [midnight, midnight+24h)
// for a YYYY-MM-DD date in local time.
func DayWindow(date string) (float64, float64, error) {
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", date, err)
	}
	start := float64(t.Unix())
	return start, start + secondsPerDay, nil
}
