package contract

import (
	"context"

	"notely-be/internal/entity"
	"notely-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
