package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityAction string

const (
	ActivityCreate          ActivityAction = "create"
	ActivityUpdate          ActivityAction = "update"
	ActivityDelete          ActivityAction = "delete"
	ActivityRestore         ActivityAction = "restore"
	ActivityPermanentDelete ActivityAction = "permanent_delete"
	ActivityPin             ActivityAction = "pin"
	ActivityBookmark        ActivityAction = "bookmark"
)

type ActivityLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	EntryId   *uuid.UUID
	Action    ActivityAction
	Details   string
	CreatedAt time.Time
}
