package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Entry struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title      string         `gorm:"type:varchar(255);not null"`
	Synopsis   string         `gorm:"type:varchar(500)"`
	Content    string         `gorm:"type:text;not null"`
	Tags       datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Pinned     bool           `gorm:"default:false;index"`
	Bookmarked bool           `gorm:"default:false"`
	IsPublic   bool           `gorm:"default:false;index"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Entry) TableName() string {
	return "entries"
}
