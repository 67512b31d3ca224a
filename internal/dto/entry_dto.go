package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEntryRequest struct {
	Title    string   `json:"title" validate:"required"`
	Synopsis string   `json:"synopsis"`
	Content  string   `json:"content" validate:"required"`
	Tags     []string `json:"tags"`
	IsPublic bool     `json:"is_public"`
}

type CreateEntryResponse struct {
	Id uuid.UUID `json:"id"`
}

type EntryResponse struct {
	Id         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Synopsis   string     `json:"synopsis"`
	Content    string     `json:"content"`
	Tags       []string   `json:"tags"`
	Pinned     bool       `json:"pinned"`
	Bookmarked bool       `json:"bookmarked"`
	IsPublic   bool       `json:"is_public"`
	IsDeleted  bool       `json:"is_deleted"`
	AuthorId   uuid.UUID  `json:"author_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// UpdateEntryRequest carries only the fields the client wants to change;
// nil pointers are left untouched.
type UpdateEntryRequest struct {
	Id        uuid.UUID `json:"-"`
	Title     *string   `json:"title"`
	Synopsis  *string   `json:"synopsis"`
	Content   *string   `json:"content"`
	Tags      *[]string `json:"tags"`
	IsPublic  *bool     `json:"is_public"`
	IsDeleted *bool     `json:"is_deleted"`
}

type PinEntryRequest struct {
	Id     uuid.UUID `json:"-"`
	Pinned bool      `json:"pinned"`
}

type BookmarkEntryRequest struct {
	Id         uuid.UUID `json:"-"`
	Bookmarked bool      `json:"bookmarked"`
}

type SummarizeEntryResponse struct {
	Id      uuid.UUID `json:"id"`
	Summary string    `json:"summary"`
	Cached  bool      `json:"cached"`
}

// EntryActivityMessage is the payload published on every entry mutation;
// the consumer persists it as an activity log row.
type EntryActivityMessage struct {
	UserId  uuid.UUID  `json:"user_id"`
	EntryId *uuid.UUID `json:"entry_id,omitempty"`
	Action  string     `json:"action"`
	Details string     `json:"details,omitempty"`
}
