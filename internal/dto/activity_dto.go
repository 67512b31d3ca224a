package dto

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLogResponse struct {
	Id        uuid.UUID  `json:"id"`
	EntryId   *uuid.UUID `json:"entry_id,omitempty"`
	Action    string     `json:"action"`
	Details   string     `json:"details,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
