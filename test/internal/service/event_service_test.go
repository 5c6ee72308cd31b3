package service

import (
	"context"
	"testing"

	"eventboard/internal/model"
	"eventboard/internal/service"
	apperrors "eventboard/pkg/app_errors"
	"eventboard/test/internal/mocks/db"
	repoMocks "eventboard/test/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventServiceMocks() (*db.FakeTx, *db.FakeBeginner, *repoMocks.EventRepositoryMock, *repoMocks.EventImageRepositoryMock) {
	tx := &db.FakeTx{}
	beginner := &db.FakeBeginner{Tx: tx}
	return tx, beginner, repoMocks.NewEventRepositoryMock(), repoMocks.NewEventImageRepositoryMock()
}

func newEvent(name string) *model.Event {
	desc := "Kickoff"
	return &model.Event{
		Name:        name,
		Date:        "2024-01-01",
		Time:        "10:00",
		Location:    "HQ",
		Description: &desc,
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - commits event and image row together", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		event := newEvent("Launch")
		created := newEvent("Launch")
		created.ID = 1
		image := "123.png"

		events.On("Create", ctx, event).Return(created, nil).Once()
		images.On("Set", ctx, 1, &image).Return(nil).Once()

		got, err := svc.Create(ctx, event, &image)

		require.NoError(t, err)
		assert.Equal(t, 1, got.ID)
		assert.True(t, tx.Committed)
		assert.False(t, tx.RolledBack)
		events.AssertExpectations(t)
		images.AssertExpectations(t)
	})

	t.Run("Success - no image still writes NULL image row", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		event := newEvent("Launch")
		created := newEvent("Launch")
		created.ID = 2

		events.On("Create", ctx, event).Return(created, nil).Once()
		images.On("Set", ctx, 2, (*string)(nil)).Return(nil).Once()

		_, err := svc.Create(ctx, event, nil)

		require.NoError(t, err)
		assert.True(t, tx.Committed)
		images.AssertExpectations(t)
	})

	t.Run("Failed - event insert error rolls back", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		events.On("Create", ctx, mock.Anything).Return(nil, assert.AnError).Once()

		_, err := svc.Create(ctx, newEvent("Launch"), nil)

		require.Error(t, err)
		assert.True(t, tx.RolledBack)
		assert.False(t, tx.Committed)
		images.AssertNotCalled(t, "Set")
	})

	t.Run("Failed - image insert error rolls back", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		created := newEvent("Launch")
		created.ID = 3
		events.On("Create", ctx, mock.Anything).Return(created, nil).Once()
		images.On("Set", ctx, 3, (*string)(nil)).Return(assert.AnError).Once()

		_, err := svc.Create(ctx, newEvent("Launch"), nil)

		require.Error(t, err)
		assert.True(t, tx.RolledBack)
		assert.False(t, tx.Committed)
	})

	t.Run("Failed - begin error", func(t *testing.T) {
		_, beginner, events, images := setupEventServiceMocks()
		beginner.Err = assert.AnError
		svc := service.NewEventService(beginner, events, images)

		_, err := svc.Create(ctx, newEvent("Launch"), nil)

		require.Error(t, err)
		events.AssertNotCalled(t, "Create")
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - overwrites image reference with nil", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		event := newEvent("Launch v2")
		events.On("Update", ctx, 7, event).Return(nil).Once()
		images.On("Set", ctx, 7, (*string)(nil)).Return(nil).Once()

		err := svc.Update(ctx, 7, event, nil)

		require.NoError(t, err)
		assert.True(t, tx.Committed)
		images.AssertExpectations(t)
	})

	t.Run("NotFound rolls back before touching image row", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		events.On("Update", ctx, 99999, mock.Anything).Return(apperrors.ErrEventNotFound).Once()

		err := svc.Update(ctx, 99999, newEvent("Any"), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.True(t, tx.RolledBack)
		images.AssertNotCalled(t, "Set")
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - returns stored image name", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		image := "123.png"
		images.On("Get", ctx, 9).Return(&image, nil).Once()
		events.On("Delete", ctx, 9).Return(nil).Once()
		images.On("Delete", ctx, 9).Return(nil).Once()

		got, err := svc.Delete(ctx, 9)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "123.png", *got)
		assert.True(t, tx.Committed)
	})

	t.Run("Success - no image", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		images.On("Get", ctx, 9).Return(nil, nil).Once()
		events.On("Delete", ctx, 9).Return(nil).Once()
		images.On("Delete", ctx, 9).Return(nil).Once()

		got, err := svc.Delete(ctx, 9)

		require.NoError(t, err)
		assert.Nil(t, got)
		assert.True(t, tx.Committed)
	})

	t.Run("NotFound rolls back", func(t *testing.T) {
		tx, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		images.On("Get", ctx, 99999).Return(nil, nil).Once()
		events.On("Delete", ctx, 99999).Return(apperrors.ErrEventNotFound).Once()

		_, err := svc.Delete(ctx, 99999)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		assert.True(t, tx.RolledBack)
		images.AssertNotCalled(t, "Delete")
	})
}

func TestEventService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("Get delegates to repository", func(t *testing.T) {
		_, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		event := newEvent("Launch")
		event.ID = 5
		events.On("FindByID", ctx, 5).Return(event, nil).Once()

		got, err := svc.Get(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Launch", got.Name)
	})

	t.Run("GetImage delegates to repository", func(t *testing.T) {
		_, beginner, events, images := setupEventServiceMocks()
		svc := service.NewEventService(beginner, events, images)

		image := "123.png"
		images.On("Get", ctx, 5).Return(&image, nil).Once()

		got, err := svc.GetImage(ctx, 5)

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "123.png", *got)
	})
}
