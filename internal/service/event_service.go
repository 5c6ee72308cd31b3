package service

import (
	"context"

	"eventboard/internal/model"
	"eventboard/internal/repository"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts transactions. *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type EventService interface {
	List(ctx context.Context) ([]*model.Event, error)
	Get(ctx context.Context, id int) (*model.Event, error)
	GetImage(ctx context.Context, id int) (*string, error)
	// Create inserts the event row and its image row in one transaction and
	// returns the created event. image may be nil.
	Create(ctx context.Context, event *model.Event, image *string) (*model.Event, error)
	// Update rewrites the event row and overwrites the image reference with
	// the given value, nil included, in one transaction.
	Update(ctx context.Context, id int, event *model.Event, image *string) error
	// Delete removes both rows in one transaction and returns the image
	// filename that was stored, if any, so the caller can remove the file.
	Delete(ctx context.Context, id int) (*string, error)
}

type EventServiceImpl struct {
	db     TxBeginner
	events repository.EventRepository
	images repository.EventImageRepository
}

func NewEventService(db TxBeginner, events repository.EventRepository, images repository.EventImageRepository) EventService {
	return &EventServiceImpl{db: db, events: events, images: images}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]*model.Event, error) {
	return s.events.List(ctx)
}

func (s *EventServiceImpl) Get(ctx context.Context, id int) (*model.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventServiceImpl) GetImage(ctx context.Context, id int) (*string, error) {
	return s.images.Get(ctx, id)
}

func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event, image *string) (*model.Event, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	created, err := s.events.WithTx(tx).Create(ctx, event)
	if err != nil {
		return nil, err
	}
	// The image row is written even when no file was uploaded; it then holds
	// NULL.
	if err := s.images.WithTx(tx).Set(ctx, created.ID, image); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, id int, event *model.Event, image *string) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.events.WithTx(tx).Update(ctx, id, event); err != nil {
		return err
	}
	// Unconditional overwrite: submitting the form without a new file clears
	// the stored image reference.
	if err := s.images.WithTx(tx).Set(ctx, id, image); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *EventServiceImpl) Delete(ctx context.Context, id int) (*string, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	image, err := s.images.WithTx(tx).Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.events.WithTx(tx).Delete(ctx, id); err != nil {
		return nil, err
	}
	if err := s.images.WithTx(tx).Delete(ctx, id); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return image, nil
}
