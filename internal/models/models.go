package models

import (
	"strings"
	"time"
)

// Link is one saved bookmark row in the GoodLinks `link` table.
// The schema is owned by GoodLinks: rows are only read and the tags
// column updated, never created or deleted here.
type Link struct {
	ID      string   `gorm:"column:id;primaryKey"`
	URL     string   `gorm:"column:url"`
	Title   *string  `gorm:"column:title"`
	Tags    *string  `gorm:"column:tags"`
	AddedAt float64  `gorm:"column:addedAt"`
	ReadAt  *float64 `gorm:"column:readAt"`
}

// TableName maps the model onto the existing GoodLinks table.
func (Link) TableName() string {
	return "link"
}

// TitleString returns the stored title, or "" when the column is NULL.
func (l Link) TitleString() string {
	if l.Title == nil {
		return ""
	}
	return *l.Title
}

// DisplayTitle returns a printable title for list output.
func (l Link) DisplayTitle() string {
	if t := l.TitleString(); t != "" {
		return t
	}
	return "No title"
}

// TagString returns the raw whitespace-joined tag string, "" when NULL.
func (l Link) TagString() string {
	if l.Tags == nil {
		return ""
	}
	return *l.Tags
}

// TagList splits the tag string into tokens.
func (l Link) TagList() []string {
	return strings.Fields(l.TagString())
}

// IsRead reports whether the link has been read.
func (l Link) IsRead() bool {
	return l.ReadAt != nil && *l.ReadAt > 0
}

// AddedTime converts the epoch addedAt value to local time.
func (l Link) AddedTime() time.Time {
	return time.Unix(int64(l.AddedAt), 0)
}
