package mapper

import (
	"testing"
	"time"

	"notely-be/internal/entity"
	"notely-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestEntryMapperToEntity(t *testing.T) {
	m := NewEntryMapper()

	t.Run("active entry with tags", func(t *testing.T) {
		id := uuid.New()
		userId := uuid.New()
		now := time.Now()

		e := m.ToEntity(&model.Entry{
			Id:         id,
			Title:      "Trip",
			Synopsis:   "Tokyo",
			Content:    "Flight at 9am",
			Tags:       datatypes.JSON(`["travel","2026"]`),
			Pinned:     true,
			Bookmarked: true,
			IsPublic:   true,
			UserId:     userId,
			CreatedAt:  now,
			UpdatedAt:  now,
		})

		assert.Equal(t, id, e.Id)
		assert.Equal(t, userId, e.UserId)
		assert.Equal(t, []string{"travel", "2026"}, e.Tags)
		assert.True(t, e.Pinned)
		assert.True(t, e.Bookmarked)
		assert.True(t, e.IsPublic)
		assert.False(t, e.IsDeleted)
		assert.Nil(t, e.DeletedAt)
		assert.NotNil(t, e.UpdatedAt)
	})

	t.Run("trashed entry", func(t *testing.T) {
		deletedAt := time.Now()

		e := m.ToEntity(&model.Entry{
			Id:        uuid.New(),
			Title:     "Old",
			Content:   "gone",
			DeletedAt: gorm.DeletedAt{Time: deletedAt, Valid: true},
		})

		assert.True(t, e.IsDeleted)
		assert.NotNil(t, e.DeletedAt)
		assert.WithinDuration(t, deletedAt, *e.DeletedAt, time.Second)
	})

	t.Run("malformed tags degrade to empty list", func(t *testing.T) {
		e := m.ToEntity(&model.Entry{
			Id:      uuid.New(),
			Title:   "Broken",
			Content: "x",
			Tags:    datatypes.JSON(`{"not":"an array"`),
		})

		assert.Equal(t, []string{}, e.Tags)
	})

	t.Run("zero updated at maps to nil", func(t *testing.T) {
		e := m.ToEntity(&model.Entry{
			Id:      uuid.New(),
			Title:   "Fresh",
			Content: "x",
		})

		assert.Nil(t, e.UpdatedAt)
	})

	t.Run("nil model", func(t *testing.T) {
		assert.Nil(t, m.ToEntity(nil))
	})
}

func TestEntryMapperToModel(t *testing.T) {
	m := NewEntryMapper()

	t.Run("nil tags serialize as empty array", func(t *testing.T) {
		mdl := m.ToModel(&entity.Entry{
			Id:      uuid.New(),
			Title:   "Untitled",
			Content: "x",
		})

		assert.Equal(t, `[]`, string(mdl.Tags))
		assert.False(t, mdl.DeletedAt.Valid)
	})

	t.Run("is deleted flag without timestamp fills deleted_at", func(t *testing.T) {
		mdl := m.ToModel(&entity.Entry{
			Id:        uuid.New(),
			Title:     "Trashed",
			Content:   "x",
			IsDeleted: true,
		})

		assert.True(t, mdl.DeletedAt.Valid)
	})

	t.Run("round trip preserves flags and tags", func(t *testing.T) {
		now := time.Now()
		src := &entity.Entry{
			Id:         uuid.New(),
			Title:      "Pinned note",
			Synopsis:   "s",
			Content:    "c",
			Tags:       []string{"a", "b"},
			Pinned:     true,
			Bookmarked: true,
			IsPublic:   true,
			UserId:     uuid.New(),
			CreatedAt:  now,
			UpdatedAt:  &now,
		}

		got := m.ToEntity(m.ToModel(src))

		assert.Equal(t, src.Id, got.Id)
		assert.Equal(t, src.Tags, got.Tags)
		assert.True(t, got.Pinned)
		assert.True(t, got.Bookmarked)
		assert.True(t, got.IsPublic)
		assert.False(t, got.IsDeleted)
	})
}
