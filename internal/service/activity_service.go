package service

import (
	"context"

	"notely-be/internal/dto"
	"notely-be/internal/entity"
	"notely-be/internal/repository/scope"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IActivityService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.ActivityLogResponse, error)
	ListByEntry(ctx context.Context, userId uuid.UUID, entryId uuid.UUID) ([]*dto.ActivityLogResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{uowFactory: uowFactory}
}

func toActivityResponses(logs []*entity.ActivityLog) []*dto.ActivityLogResponse {
	out := make([]*dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, &dto.ActivityLogResponse{
			Id:        l.Id,
			EntryId:   l.EntryId,
			Action:    string(l.Action),
			Details:   l.Details,
			CreatedAt: l.CreatedAt,
		})
	}
	return out
}

func (s *activityService) List(ctx context.Context, userId uuid.UUID) ([]*dto.ActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, err
	}
	return toActivityResponses(logs), nil
}

func (s *activityService) ListByEntry(ctx context.Context, userId uuid.UUID, entryId uuid.UUID) ([]*dto.ActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	logs, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByEntryID{EntryID: entryId},
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, err
	}
	return toActivityResponses(logs), nil
}
