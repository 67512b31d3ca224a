package mapper

import (
	"encoding/json"
	"time"

	"notely-be/internal/entity"
	"notely-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EntryMapper struct{}

func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

func (m *EntryMapper) ToEntity(e *model.Entry) *entity.Entry {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	tags := []string{}
	if len(e.Tags) > 0 {
		// Malformed rows degrade to an empty tag list rather than failing reads.
		_ = json.Unmarshal(e.Tags, &tags)
	}

	return &entity.Entry{
		Id:         e.Id,
		Title:      e.Title,
		Synopsis:   e.Synopsis,
		Content:    e.Content,
		Tags:       tags,
		Pinned:     e.Pinned,
		Bookmarked: e.Bookmarked,
		IsPublic:   e.IsPublic,
		UserId:     e.UserId,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
		IsDeleted:  e.DeletedAt.Valid,
	}
}

func (m *EntryMapper) ToModel(e *entity.Entry) *model.Entry {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJson, _ := json.Marshal(tags)

	return &model.Entry{
		Id:         e.Id,
		Title:      e.Title,
		Synopsis:   e.Synopsis,
		Content:    e.Content,
		Tags:       datatypes.JSON(tagsJson),
		Pinned:     e.Pinned,
		Bookmarked: e.Bookmarked,
		IsPublic:   e.IsPublic,
		UserId:     e.UserId,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  updatedAt,
		DeletedAt:  deletedAt,
	}
}

func (m *EntryMapper) ToEntities(entries []*model.Entry) []*entity.Entry {
	entities := make([]*entity.Entry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *EntryMapper) ToModels(entries []*entity.Entry) []*model.Entry {
	models := make([]*model.Entry, len(entries))
	for i, e := range entries {
		models[i] = m.ToModel(e)
	}
	return models
}
