package service

import (
	"context"
	"testing"

	"notely-be/internal/dto"
	"notely-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The validation gates fire before any repository work, so these run
// without a database.

func TestEntryCreateRejectsBlankTitle(t *testing.T) {
	svc := NewEntryService(nil, nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateEntryRequest{
		Title:   "   ",
		Content: "body",
	})
	require.Error(t, err)

	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, "Title cannot be empty.", ae.Message)
}

func TestEntryCreateRejectsBlankContent(t *testing.T) {
	svc := NewEntryService(nil, nil, nil, nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateEntryRequest{
		Title:   "Trip",
		Content: "\n\t ",
	})
	require.Error(t, err)

	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, 400, ae.Status)
	assert.Equal(t, "Content cannot be empty.", ae.Message)
}

func TestEntrySearchRequiresQuery(t *testing.T) {
	svc := NewEntryService(nil, nil, nil, nil, nil)

	for _, q := range []string{"", "   ", "\t"} {
		_, err := svc.Search(context.Background(), uuid.New(), q)
		require.Error(t, err)

		ae, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, 400, ae.Status)
		assert.Equal(t, "Missing search query.", ae.Message)
	}
}
