package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"notely-be/internal/dto"
	"notely-be/internal/entity"
	"notely-be/internal/pkg/apperror"
	"notely-be/internal/repository/scope"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"
	"notely-be/pkg/cache"
	"notely-be/pkg/summarizer"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const publicListingCacheKey = "entries:public"

type IEntryService interface {
	List(ctx context.Context, userId uuid.UUID, pinnedOnly bool) ([]*dto.EntryResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EntryResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEntryRequest) (*dto.CreateEntryResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error)
	SoftDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Trash(ctx context.Context, userId uuid.UUID) ([]*dto.EntryResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EntryResponse, error)
	PermanentDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Pin(ctx context.Context, userId uuid.UUID, req *dto.PinEntryRequest) (*dto.EntryResponse, error)
	Bookmark(ctx context.Context, userId uuid.UUID, req *dto.BookmarkEntryRequest) (*dto.EntryResponse, error)
	ListBookmarked(ctx context.Context, userId uuid.UUID) ([]*dto.EntryResponse, error)
	Search(ctx context.Context, userId uuid.UUID, query string) ([]*dto.EntryResponse, error)
	ListByTag(ctx context.Context, userId uuid.UUID, tag string) ([]*dto.EntryResponse, error)
	PublicList(ctx context.Context) ([]*dto.EntryResponse, error)
	PublicShow(ctx context.Context, id uuid.UUID) (*dto.EntryResponse, error)
	Summarize(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SummarizeEntryResponse, error)
}

type entryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	listingCache     *cache.ListingCache
	summaryCache     *gocache.Cache
	summaryProvider  summarizer.Provider
}

func NewEntryService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	listingCache *cache.ListingCache,
	summaryCache *gocache.Cache,
	summaryProvider summarizer.Provider,
) IEntryService {
	return &entryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		listingCache:     listingCache,
		summaryCache:     summaryCache,
		summaryProvider:  summaryProvider,
	}
}

func toEntryResponse(e *entity.Entry) *dto.EntryResponse {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.EntryResponse{
		Id:         e.Id,
		Title:      e.Title,
		Synopsis:   e.Synopsis,
		Content:    e.Content,
		Tags:       tags,
		Pinned:     e.Pinned,
		Bookmarked: e.Bookmarked,
		IsPublic:   e.IsPublic,
		IsDeleted:  e.IsDeleted,
		AuthorId:   e.UserId,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func toEntryResponses(entries []*entity.Entry) []*dto.EntryResponse {
	out := make([]*dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}

// publishActivity hands the mutation to the in-process bus. Activity logging
// is auxiliary, so publish failures never fail the request.
func (s *entryService) publishActivity(ctx context.Context, userId uuid.UUID, entryId *uuid.UUID, action entity.ActivityAction, details string) {
	msg := dto.EntryActivityMessage{
		UserId:  userId,
		EntryId: entryId,
		Action:  string(action),
		Details: details,
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		fmt.Printf("[WARN] Failed to publish %s activity: %v\n", action, err)
	}
}

func (s *entryService) List(ctx context.Context, userId uuid.UUID, pinnedOnly bool) ([]*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.Scoped{Fn: scope.OrderPinnedFirst},
	}
	if pinnedOnly {
		specs = append(specs, specification.PinnedOnly{})
	}

	entries, err := uow.EntryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *entryService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Entry not found.")
	}
	return toEntryResponse(entry), nil
}

func (s *entryService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateEntryRequest) (*dto.CreateEntryResponse, error) {
	// Whitespace-only slips past the required tag; reject it like Update does.
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.Validation("Title cannot be empty.")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.Validation("Content cannot be empty.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	entry := entity.Entry{
		Id:        uuid.New(),
		Title:     req.Title,
		Synopsis:  req.Synopsis,
		Content:   req.Content,
		Tags:      tags,
		IsPublic:  req.IsPublic,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.EntryRepository().Create(ctx, &entry); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, userId, &entry.Id, entity.ActivityCreate, entry.Title)
	if entry.IsPublic {
		s.listingCache.Invalidate(ctx, publicListingCacheKey)
	}

	return &dto.CreateEntryResponse{Id: entry.Id}, nil
}

func (s *entryService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Entry not found.")
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperror.Validation("Title cannot be empty.")
		}
		entry.Title = *req.Title
	}
	if req.Synopsis != nil {
		entry.Synopsis = *req.Synopsis
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, apperror.Validation("Content cannot be empty.")
		}
		entry.Content = *req.Content
	}
	if req.Tags != nil {
		entry.Tags = *req.Tags
	}
	if req.IsPublic != nil {
		entry.IsPublic = *req.IsPublic
	}

	now := time.Now()
	entry.UpdatedAt = &now

	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	// isDeleted=true through update is an alternate path into the trash.
	if req.IsDeleted != nil && *req.IsDeleted {
		if err := uow.EntryRepository().SoftDelete(ctx, entry.Id); err != nil {
			return nil, err
		}
		entry.IsDeleted = true
		s.publishActivity(ctx, userId, &entry.Id, entity.ActivityDelete, entry.Title)
	} else {
		s.publishActivity(ctx, userId, &entry.Id, entity.ActivityUpdate, entry.Title)
	}

	// Summary cache keys embed the update timestamp, so the stale summary
	// is unreachable after this write; no explicit eviction needed.
	s.listingCache.Invalidate(ctx, publicListingCacheKey)

	return toEntryResponse(entry), nil
}

func (s *entryService) SoftDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if entry == nil {
		// Already trashed entries fall out of active scope, so a second
		// delete lands here too.
		return apperror.NotFound("Entry not found.")
	}

	if err := uow.EntryRepository().SoftDelete(ctx, id); err != nil {
		return err
	}

	s.publishActivity(ctx, userId, &id, entity.ActivityDelete, entry.Title)
	if entry.IsPublic {
		s.listingCache.Invalidate(ctx, publicListingCacheKey)
	}
	return nil
}

func (s *entryService) Trash(ctx context.Context, userId uuid.UUID) ([]*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.Trashed{},
		specification.OwnedBy{UserID: userId},
		specification.Scoped{Fn: scope.OrderByUpdatedDesc},
	)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *entryService) findTrashed(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Entry, error) {
	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.Trashed{},
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Entry not found in trash.")
	}
	return entry, nil
}

func (s *entryService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := s.findTrashed(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	if err := uow.EntryRepository().Restore(ctx, id); err != nil {
		return nil, err
	}

	entry.IsDeleted = false
	entry.DeletedAt = nil

	s.publishActivity(ctx, userId, &id, entity.ActivityRestore, entry.Title)
	if entry.IsPublic {
		s.listingCache.Invalidate(ctx, publicListingCacheKey)
	}
	return toEntryResponse(entry), nil
}

func (s *entryService) PermanentDelete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := s.findTrashed(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.EntryRepository().HardDelete(ctx, id); err != nil {
		return err
	}

	s.publishActivity(ctx, userId, nil, entity.ActivityPermanentDelete, entry.Title)
	return nil
}

func (s *entryService) Pin(ctx context.Context, userId uuid.UUID, req *dto.PinEntryRequest) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Entry not found.")
	}

	entry.Pinned = req.Pinned
	now := time.Now()
	entry.UpdatedAt = &now

	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, userId, &entry.Id, entity.ActivityPin, entry.Title)
	return toEntryResponse(entry), nil
}

func (s *entryService) Bookmark(ctx context.Context, userId uuid.UUID, req *dto.BookmarkEntryRequest) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Entry not found.")
	}

	entry.Bookmarked = req.Bookmarked
	now := time.Now()
	entry.UpdatedAt = &now

	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, userId, &entry.Id, entity.ActivityBookmark, entry.Title)
	return toEntryResponse(entry), nil
}

func (s *entryService) ListBookmarked(ctx context.Context, userId uuid.UUID) ([]*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.BookmarkedOnly{},
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *entryService) Search(ctx context.Context, userId uuid.UUID, query string) ([]*dto.EntryResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.Validation("Missing search query.")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.EntrySearchQuery{Query: query},
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *entryService) ListByTag(ctx context.Context, userId uuid.UUID, tag string) ([]*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.HasTag{Tag: tag},
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *entryService) PublicList(ctx context.Context) ([]*dto.EntryResponse, error) {
	var cached []*dto.EntryResponse
	if s.listingCache.Get(ctx, publicListingCacheKey, &cached) {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.PublicOnly{},
		specification.Scoped{Fn: scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, err
	}

	response := toEntryResponses(entries)
	s.listingCache.Set(ctx, publicListingCacheKey, response)
	return response, nil
}

func (s *entryService) PublicShow(ctx context.Context, id uuid.UUID) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.PublicOnly{},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Entry not found.")
	}
	return toEntryResponse(entry), nil
}

func (s *entryService) Summarize(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.SummarizeEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperror.NotFound("Entry not found.")
	}

	// Cache key includes the update timestamp so a stale summary is never
	// served after an edit.
	cacheKey := entry.Id.String()
	if entry.UpdatedAt != nil {
		cacheKey = fmt.Sprintf("%s:%d", entry.Id, entry.UpdatedAt.UnixNano())
	}

	if cached, found := s.summaryCache.Get(cacheKey); found {
		return &dto.SummarizeEntryResponse{
			Id:      entry.Id,
			Summary: cached.(string),
			Cached:  true,
		}, nil
	}

	text := entry.Title + "\n\n" + entry.Content
	summary, err := s.summaryProvider.Summarize(ctx, text)
	if err != nil {
		return nil, apperror.External("Summarization service unavailable.", err)
	}

	s.summaryCache.Set(cacheKey, summary, gocache.DefaultExpiration)

	return &dto.SummarizeEntryResponse{
		Id:      entry.Id,
		Summary: summary,
		Cached:  false,
	}, nil
}
