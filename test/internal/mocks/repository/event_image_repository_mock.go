package repository

import (
	"context"

	"eventboard/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

type EventImageRepositoryMock struct {
	mock.Mock
}

func NewEventImageRepositoryMock() *EventImageRepositoryMock {
	return &EventImageRepositoryMock{}
}

func (m *EventImageRepositoryMock) WithTx(tx pgx.Tx) repository.EventImageRepository {
	return m
}

func (m *EventImageRepositoryMock) Get(ctx context.Context, eventID int) (*string, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*string), args.Error(1)
}

func (m *EventImageRepositoryMock) Set(ctx context.Context, eventID int, image *string) error {
	args := m.Called(ctx, eventID, image)
	return args.Error(0)
}

func (m *EventImageRepositoryMock) Delete(ctx context.Context, eventID int) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
