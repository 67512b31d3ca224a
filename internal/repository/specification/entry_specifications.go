package specification

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Trashed selects soft-deleted rows only. It lifts GORM's default
// soft-delete scope, so trash listings and restore lookups can see them.
type Trashed struct{}

func (s Trashed) Apply(db *gorm.DB) *gorm.DB {
	return db.Unscoped().Where("deleted_at IS NOT NULL")
}

type PinnedOnly struct{}

func (s PinnedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("pinned = ?", true)
}

type BookmarkedOnly struct{}

func (s BookmarkedOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("bookmarked = ?", true)
}

type PublicOnly struct{}

func (s PublicOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_public = ?", true)
}

// HasTag matches entries whose jsonb tag array contains the tag.
type HasTag struct {
	Tag string
}

func (s HasTag) Apply(db *gorm.DB) *gorm.DB {
	needle, _ := json.Marshal([]string{s.Tag})
	return db.Where("tags @> ?", string(needle))
}

// EntrySearchQuery matches the query as a case-insensitive substring of
// title, synopsis or content. Plain containment, no ranking.
type EntrySearchQuery struct {
	Query string
}

func (s EntrySearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR synopsis ILIKE ? OR content ILIKE ?", pattern, pattern, pattern)
}
