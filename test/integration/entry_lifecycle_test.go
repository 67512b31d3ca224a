package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"notely-be/internal/entity"
	"notely-be/internal/repository/scope"
	"notely-be/internal/repository/specification"
	"notely-be/internal/repository/unitofwork"
	"notely-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}
	return unitofwork.NewRepositoryFactory(gormDB)
}

func createTestUser(t *testing.T, uow unitofwork.UnitOfWork) *entity.User {
	t.Helper()
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	suffix := uuid.New().String()[:8]
	user := &entity.User{
		Id:           uuid.New(),
		Email:        "it-" + suffix + "@example.com",
		Username:     "it_" + suffix,
		FirstName:    "Integration",
		LastName:     "Test",
		PasswordHash: string(hash),
		Activated:    true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	return user
}

func TestEntryLifecycle(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	t.Cleanup(func() {
		_ = uow.EntryRepository().DeleteAllByUserIdUnscoped(ctx, user.Id)
	})

	entry := &entity.Entry{
		Id:        uuid.New(),
		Title:     "Trip",
		Synopsis:  "Tokyo",
		Content:   "Flight at 9am",
		Tags:      []string{"travel"},
		UserId:    user.Id,
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.EntryRepository().Create(ctx, entry))

	t.Run("appears in active listing", func(t *testing.T) {
		entries, err := uow.EntryRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
			specification.Scoped{Fn: scope.OrderPinnedFirst},
		)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Trip", entries[0].Title)
		assert.False(t, entries[0].IsDeleted)
	})

	t.Run("substring search matches title case-insensitively", func(t *testing.T) {
		entries, err := uow.EntryRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
			specification.EntrySearchQuery{Query: "trip"},
		)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("tag containment", func(t *testing.T) {
		entries, err := uow.EntryRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
			specification.HasTag{Tag: "travel"},
		)
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		entries, err = uow.EntryRepository().FindAll(ctx,
			specification.OwnedBy{UserID: user.Id},
			specification.HasTag{Tag: "work"},
		)
		require.NoError(t, err)
		assert.Len(t, entries, 0)
	})

	t.Run("other users cannot see the entry", func(t *testing.T) {
		found, err := uow.EntryRepository().FindOne(ctx,
			specification.ByID{ID: entry.Id},
			specification.OwnedBy{UserID: uuid.New()},
		)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("soft delete moves entry to trash", func(t *testing.T) {
		require.NoError(t, uow.EntryRepository().SoftDelete(ctx, entry.Id))

		active, err := uow.EntryRepository().FindOne(ctx,
			specification.ByID{ID: entry.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		assert.Nil(t, active)

		trashed, err := uow.EntryRepository().FindAll(ctx,
			specification.Trashed{},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		require.Len(t, trashed, 1)
		assert.True(t, trashed[0].IsDeleted)
	})

	t.Run("restore brings entry back with flags intact", func(t *testing.T) {
		require.NoError(t, uow.EntryRepository().Restore(ctx, entry.Id))

		restored, err := uow.EntryRepository().FindOne(ctx,
			specification.ByID{ID: entry.Id},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		require.NotNil(t, restored)
		assert.False(t, restored.IsDeleted)
		assert.Equal(t, []string{"travel"}, restored.Tags)
	})

	t.Run("hard delete is final", func(t *testing.T) {
		require.NoError(t, uow.EntryRepository().SoftDelete(ctx, entry.Id))
		require.NoError(t, uow.EntryRepository().HardDelete(ctx, entry.Id))

		trashed, err := uow.EntryRepository().FindAll(ctx,
			specification.Trashed{},
			specification.OwnedBy{UserID: user.Id},
		)
		require.NoError(t, err)
		assert.Len(t, trashed, 0)
	})
}

func TestPublicListingScope(t *testing.T) {
	factory := setupFactory(t)
	ctx := context.Background()
	uow := factory.NewUnitOfWork(ctx)

	user := createTestUser(t, uow)
	t.Cleanup(func() {
		_ = uow.EntryRepository().DeleteAllByUserIdUnscoped(ctx, user.Id)
	})

	public := &entity.Entry{
		Id:        uuid.New(),
		Title:     "Published",
		Content:   "visible",
		IsPublic:  true,
		UserId:    user.Id,
		CreatedAt: time.Now(),
	}
	private := &entity.Entry{
		Id:        uuid.New(),
		Title:     "Draft",
		Content:   "hidden",
		UserId:    user.Id,
		CreatedAt: time.Now(),
	}
	require.NoError(t, uow.EntryRepository().Create(ctx, public))
	require.NoError(t, uow.EntryRepository().Create(ctx, private))

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.PublicOnly{},
	)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Published", entries[0].Title)

	// Trashing a public entry removes it from the public scope too.
	require.NoError(t, uow.EntryRepository().SoftDelete(ctx, public.Id))
	entries, err = uow.EntryRepository().FindAll(ctx,
		specification.OwnedBy{UserID: user.Id},
		specification.PublicOnly{},
	)
	require.NoError(t, err)
	assert.Len(t, entries, 0)
}
