package entity

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	Id         uuid.UUID
	Title      string
	Synopsis   string
	Content    string
	Tags       []string
	Pinned     bool
	Bookmarked bool
	IsPublic   bool
	UserId     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
