package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"eventboard/internal/model"
	"eventboard/internal/queue"
	"eventboard/pkg/logger"

	"go.uber.org/zap"
)

// NotificationService formats event emails and publishes them to the
// notification queue. Publishing is the whole job; delivery happens in the
// worker and its outcome never reaches the HTTP caller. A failed publish for
// one recipient is logged and never blocks publishing to the rest.
type NotificationService interface {
	// NotifyCreated sends the creator confirmation, then one invitation per
	// comma-separated attendee. An empty attendee string still yields one
	// attempt to the empty address.
	NotifyCreated(ctx context.Context, event *model.Event, image *string, attendees string) error
	// NotifyInvite sends one invitation per comma-separated attendee. An
	// empty attendee string yields no attempts.
	NotifyInvite(ctx context.Context, event *model.Event, image *string, attendees string) error
}

type NotificationServiceImpl struct {
	queue        queue.NotificationQueue
	creatorEmail string
	uploadDir    string
}

func NewNotificationService(queue queue.NotificationQueue, creatorEmail, uploadDir string) NotificationService {
	return &NotificationServiceImpl{
		queue:        queue,
		creatorEmail: creatorEmail,
		uploadDir:    uploadDir,
	}
}

func (s *NotificationServiceImpl) NotifyCreated(ctx context.Context, event *model.Event, image *string, attendees string) error {
	attachment := s.attachmentPath(image)

	creatorMsg := &model.EmailMessage{
		To:             s.creatorEmail,
		Subject:        fmt.Sprintf("Event Created: %s", event.Name),
		HTMLBody:       createdBody(event),
		AttachmentPath: attachment,
	}
	if err := s.queue.Publish(ctx, creatorMsg); err != nil {
		logger.WithComponent("service").Error("publish creator notification failed",
			zap.Int("event_id", event.ID), zap.Error(err))
	}

	for _, attendee := range splitAttendees(attendees) {
		s.publishInvite(ctx, event, attendee, attachment)
	}
	return nil
}

func (s *NotificationServiceImpl) NotifyInvite(ctx context.Context, event *model.Event, image *string, attendees string) error {
	if attendees == "" {
		logger.WithComponent("service").Info("no attendees to notify", zap.Int("event_id", event.ID))
		return nil
	}
	attachment := s.attachmentPath(image)
	for _, attendee := range splitAttendees(attendees) {
		s.publishInvite(ctx, event, attendee, attachment)
	}
	return nil
}

func (s *NotificationServiceImpl) publishInvite(ctx context.Context, event *model.Event, to, attachment string) {
	msg := &model.EmailMessage{
		To:             to,
		Subject:        fmt.Sprintf("Event Invitation: %s", event.Name),
		HTMLBody:       inviteBody(event),
		AttachmentPath: attachment,
	}
	if err := s.queue.Publish(ctx, msg); err != nil {
		logger.WithComponent("service").Error("publish invitation failed",
			zap.String("to", to), zap.Int("event_id", event.ID), zap.Error(err))
	}
}

func (s *NotificationServiceImpl) attachmentPath(image *string) string {
	if image == nil {
		return ""
	}
	return filepath.Join(s.uploadDir, *image)
}

// splitAttendees splits a comma-separated recipient string and trims each
// entry. Splitting the empty string yields one empty entry.
func splitAttendees(attendees string) []string {
	parts := strings.Split(attendees, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func createdBody(event *model.Event) string {
	return fmt.Sprintf(`Congratulations! You have successfully created the event %q.<br><br>
Date: %s<br>
Time: %s<br>
Location: %s<br>
Description: %s`,
		event.Name, event.Date, event.Time, event.Location, description(event))
}

func inviteBody(event *model.Event) string {
	return fmt.Sprintf(`You have been invited to the event %q.<br><br>
Date: %s<br>
Time: %s<br>
Location: %s<br>
Description: %s`,
		event.Name, event.Date, event.Time, event.Location, description(event))
}

func description(event *model.Event) string {
	if event.Description == nil {
		return ""
	}
	return *event.Description
}
