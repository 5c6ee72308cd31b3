package repository

import (
	"context"
	"testing"

	"eventboard/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventImageRepository_Get(t *testing.T) {
	repo := repository.NewEventImageRepository(getTestDB())
	ctx := context.Background()

	t.Run("NoRow", func(t *testing.T) {
		setupTestWithTruncate(t)

		image, err := repo.Get(ctx, 1)

		require.NoError(t, err)
		assert.Nil(t, image)
	})

	t.Run("NullImage", func(t *testing.T) {
		setupTestWithTruncate(t)
		eventID := createTestEvent(t, "Launch")

		require.NoError(t, repo.Set(ctx, eventID, nil))

		image, err := repo.Get(ctx, eventID)
		require.NoError(t, err)
		assert.Nil(t, image)
	})

	t.Run("StoredImage", func(t *testing.T) {
		setupTestWithTruncate(t)
		eventID := createTestEvent(t, "Launch")

		name := "123.png"
		require.NoError(t, repo.Set(ctx, eventID, &name))

		image, err := repo.Get(ctx, eventID)
		require.NoError(t, err)
		require.NotNil(t, image)
		assert.Equal(t, "123.png", *image)
	})
}

func TestEventImageRepository_Set(t *testing.T) {
	repo := repository.NewEventImageRepository(getTestDB())
	ctx := context.Background()

	t.Run("OverwriteWithNewName", func(t *testing.T) {
		setupTestWithTruncate(t)
		eventID := createTestEvent(t, "Launch")

		first := "123.png"
		second := "456.jpg"
		require.NoError(t, repo.Set(ctx, eventID, &first))
		require.NoError(t, repo.Set(ctx, eventID, &second))

		image, err := repo.Get(ctx, eventID)
		require.NoError(t, err)
		require.NotNil(t, image)
		assert.Equal(t, "456.jpg", *image)
	})

	t.Run("OverwriteWithNil", func(t *testing.T) {
		setupTestWithTruncate(t)
		eventID := createTestEvent(t, "Launch")

		name := "123.png"
		require.NoError(t, repo.Set(ctx, eventID, &name))
		require.NoError(t, repo.Set(ctx, eventID, nil))

		image, err := repo.Get(ctx, eventID)
		require.NoError(t, err)
		assert.Nil(t, image)
	})
}

func TestEventImageRepository_Delete(t *testing.T) {
	repo := repository.NewEventImageRepository(getTestDB())
	ctx := context.Background()

	t.Run("RemovesRow", func(t *testing.T) {
		setupTestWithTruncate(t)
		eventID := createTestEvent(t, "Launch")

		name := "123.png"
		require.NoError(t, repo.Set(ctx, eventID, &name))
		require.NoError(t, repo.Delete(ctx, eventID))

		image, err := repo.Get(ctx, eventID)
		require.NoError(t, err)
		assert.Nil(t, image)
	})

	t.Run("NoRowIsNoError", func(t *testing.T) {
		setupTestWithTruncate(t)

		assert.NoError(t, repo.Delete(ctx, 42))
	})
}
