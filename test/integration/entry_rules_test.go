package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/apperror"
	"notely-be/internal/repository/unitofwork"
	"notely-be/internal/service"
	"notely-be/pkg/summarizer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSummarizer returns a fresh summary per call so cache hits are
// visible as repeated text.
type countingSummarizer struct {
	calls int
}

func (s *countingSummarizer) Summarize(ctx context.Context, text string, opts ...summarizer.Option) (string, error) {
	s.calls++
	return fmt.Sprintf("summary %d", s.calls), nil
}

func newEntryService(factory unitofwork.RepositoryFactory, provider summarizer.Provider) service.IEntryService {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisher := service.NewPublisherService("ENTRY_ACTIVITY_TEST", pubSub)
	return service.NewEntryService(factory, publisher, nil, gocache.New(time.Minute, time.Minute), provider)
}

func assertNotFound(t *testing.T, err error, wantMsg string) {
	t.Helper()
	require.Error(t, err)
	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, wantMsg, ae.Message)
}

func TestEntryDeleteStateMachine(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	t.Cleanup(func() {
		_ = uow.EntryRepository().DeleteAllByUserIdUnscoped(ctx, user.Id)
	})

	svc := newEntryService(factory, &countingSummarizer{})

	created, err := svc.Create(ctx, user.Id, &dto.CreateEntryRequest{
		Title:   "Trip",
		Content: "Flight at 9am",
	})
	require.NoError(t, err)

	t.Run("permanent delete of an active entry is rejected", func(t *testing.T) {
		err := svc.PermanentDelete(ctx, user.Id, created.Id)
		assertNotFound(t, err, "Entry not found in trash.")
	})

	t.Run("restore of an active entry is rejected", func(t *testing.T) {
		_, err := svc.Restore(ctx, user.Id, created.Id)
		assertNotFound(t, err, "Entry not found in trash.")
	})

	t.Run("first soft delete succeeds, second is rejected", func(t *testing.T) {
		require.NoError(t, svc.SoftDelete(ctx, user.Id, created.Id))

		err := svc.SoftDelete(ctx, user.Id, created.Id)
		assertNotFound(t, err, "Entry not found.")
	})

	t.Run("trashed entry is gone from active operations", func(t *testing.T) {
		_, err := svc.Show(ctx, user.Id, created.Id)
		assertNotFound(t, err, "Entry not found.")
	})

	t.Run("permanent delete now succeeds and is final", func(t *testing.T) {
		require.NoError(t, svc.PermanentDelete(ctx, user.Id, created.Id))

		err := svc.PermanentDelete(ctx, user.Id, created.Id)
		assertNotFound(t, err, "Entry not found in trash.")
	})
}

func TestEntryListPinnedFirst(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	t.Cleanup(func() {
		_ = uow.EntryRepository().DeleteAllByUserIdUnscoped(ctx, user.Id)
	})

	svc := newEntryService(factory, &countingSummarizer{})

	oldest, err := svc.Create(ctx, user.Id, &dto.CreateEntryRequest{Title: "Oldest", Content: "a"})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	middle, err := svc.Create(ctx, user.Id, &dto.CreateEntryRequest{Title: "Middle", Content: "b"})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	newest, err := svc.Create(ctx, user.Id, &dto.CreateEntryRequest{Title: "Newest", Content: "c"})
	require.NoError(t, err)

	// Pin the oldest entry; it must surface ahead of everything.
	_, err = svc.Pin(ctx, user.Id, &dto.PinEntryRequest{Id: oldest.Id, Pinned: true})
	require.NoError(t, err)

	entries, err := svc.List(ctx, user.Id, false)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, oldest.Id, entries[0].Id)
	assert.Equal(t, newest.Id, entries[1].Id)
	assert.Equal(t, middle.Id, entries[2].Id)

	pinned, err := svc.List(ctx, user.Id, true)
	require.NoError(t, err)
	require.Len(t, pinned, 1)
	assert.Equal(t, oldest.Id, pinned[0].Id)
}

func TestSummarizeCacheFollowsUpdates(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	t.Cleanup(func() {
		_ = uow.EntryRepository().DeleteAllByUserIdUnscoped(ctx, user.Id)
	})

	provider := &countingSummarizer{}
	svc := newEntryService(factory, provider)

	created, err := svc.Create(ctx, user.Id, &dto.CreateEntryRequest{
		Title:   "Essay",
		Content: "first draft",
	})
	require.NoError(t, err)

	first, err := svc.Summarize(ctx, user.Id, created.Id)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	again, err := svc.Summarize(ctx, user.Id, created.Id)
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, first.Summary, again.Summary)

	// An edit bumps updated-at, which re-keys the cache; the stale summary
	// must not be served.
	newContent := "second draft"
	_, err = svc.Update(ctx, user.Id, &dto.UpdateEntryRequest{Id: created.Id, Content: &newContent})
	require.NoError(t, err)

	refreshed, err := svc.Summarize(ctx, user.Id, created.Id)
	require.NoError(t, err)
	assert.False(t, refreshed.Cached)
	assert.NotEqual(t, first.Summary, refreshed.Summary)
	assert.Equal(t, 2, provider.calls)
}
