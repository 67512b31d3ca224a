package mapper

import (
	"notely-be/internal/entity"
	"notely-be/internal/model"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.ActivityLog) *entity.ActivityLog {
	if a == nil {
		return nil
	}
	return &entity.ActivityLog{
		Id:        a.Id,
		UserId:    a.UserId,
		EntryId:   a.EntryId,
		Action:    entity.ActivityAction(a.Action),
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.ActivityLog) *model.ActivityLog {
	if a == nil {
		return nil
	}
	return &model.ActivityLog{
		Id:        a.Id,
		UserId:    a.UserId,
		EntryId:   a.EntryId,
		Action:    string(a.Action),
		Details:   a.Details,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(logs []*model.ActivityLog) []*entity.ActivityLog {
	entities := make([]*entity.ActivityLog, len(logs))
	for i, a := range logs {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
