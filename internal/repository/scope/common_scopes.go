package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByUpdatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC")
}

// OrderPinnedFirst surfaces pinned entries ahead of the rest, newest first
// within each group.
func OrderPinnedFirst(db *gorm.DB) *gorm.DB {
	return db.Order("pinned DESC").Order("created_at DESC")
}
