package unitofwork

import (
	"context"

	"notely-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	EntryRepository() contract.EntryRepository
	ActivityRepository() contract.ActivityRepository
}
