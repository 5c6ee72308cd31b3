package services

import (
	"context"

	"eventboard/internal/model"

	"github.com/stretchr/testify/mock"
)

type NotificationServiceMock struct {
	mock.Mock
}

func NewNotificationServiceMock() *NotificationServiceMock {
	return &NotificationServiceMock{}
}

func (m *NotificationServiceMock) NotifyCreated(ctx context.Context, event *model.Event, image *string, attendees string) error {
	args := m.Called(ctx, event, image, attendees)
	return args.Error(0)
}

func (m *NotificationServiceMock) NotifyInvite(ctx context.Context, event *model.Event, image *string, attendees string) error {
	args := m.Called(ctx, event, image, attendees)
	return args.Error(0)
}
