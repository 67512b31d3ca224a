package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/apperror"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"
	"notely-be/pkg/storage"

	"github.com/google/uuid"
)

const maxAvatarSize = 5 * 1024 * 1024 // 5MB

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	UploadAvatar(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.UserDTO, error)
	UpdateAvatarURL(ctx context.Context, userId uuid.UUID, req *dto.UpdateAvatarURLRequest) (*dto.UserDTO, error)
	Deactivate(ctx context.Context, userId uuid.UUID) error
}

type userService struct {
	uowFactory  unitofwork.RepositoryFactory
	objectStore storage.ObjectStore
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, objectStore storage.ObjectStore) IUserService {
	return &userService{
		uowFactory:  uowFactory,
		objectStore: objectStore,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthenticated("User not found.")
	}

	res := toUserDTO(user)
	return &res, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthenticated("User not found.")
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: *req.Email})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("Email already registered.")
		}
		user.Email = *req.Email
	}
	if req.Username != nil && *req.Username != user.Username {
		existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: *req.Username})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.Conflict("Username already taken.")
		}
		user.Username = *req.Username
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	res := toUserDTO(user)
	return &res, nil
}

func (s *userService) UploadAvatar(ctx context.Context, userId uuid.UUID, file *multipart.FileHeader) (*dto.UserDTO, error) {
	if s.objectStore == nil {
		return nil, apperror.External("Avatar storage is not configured.", nil)
	}
	if file.Size > maxAvatarSize {
		return nil, apperror.Validation("Avatar file exceeds the 5MB limit.")
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, apperror.Validation("Avatar must be an image.")
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("avatars/user_%s_%d%s", userId, time.Now().UnixNano(), filepath.Ext(file.Filename))
	url, err := s.objectStore.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, apperror.External("Failed to upload avatar.", err)
	}

	return s.setAvatar(ctx, userId, url)
}

func (s *userService) UpdateAvatarURL(ctx context.Context, userId uuid.UUID, req *dto.UpdateAvatarURLRequest) (*dto.UserDTO, error) {
	return s.setAvatar(ctx, userId, req.AvatarURL)
}

func (s *userService) setAvatar(ctx context.Context, userId uuid.UUID, url string) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Unauthenticated("User not found.")
	}

	if err := uow.UserRepository().UpdateAvatar(ctx, userId, url); err != nil {
		return nil, err
	}

	user.AvatarURL = &url
	user.UpdatedAt = time.Now()

	res := toUserDTO(user)
	return &res, nil
}

func (s *userService) Deactivate(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.Unauthenticated("User not found.")
	}

	// Entries stay in place; the account just leaves the active scope and
	// every open session dies with it.
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().SoftDelete(ctx, userId); err != nil {
		return err
	}
	if err := uow.UserRepository().RevokeAllRefreshTokens(ctx, userId); err != nil {
		return err
	}

	return uow.Commit()
}
