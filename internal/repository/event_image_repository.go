package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// EventImageRepository maintains the 1:0..1 association between an event
// and its stored image filename.
type EventImageRepository interface {
	// Get returns the stored filename, or nil when the event has no image row
	// or the row holds NULL.
	Get(ctx context.Context, eventID int) (*string, error)
	// Set inserts or overwrites the image filename for the event. A nil image
	// clears the stored reference while keeping the row.
	Set(ctx context.Context, eventID int, image *string) error
	Delete(ctx context.Context, eventID int) error
	WithTx(tx pgx.Tx) EventImageRepository
}

type EventImageRepositoryImpl struct {
	db Querier
}

func NewEventImageRepository(db Querier) EventImageRepository {
	return &EventImageRepositoryImpl{
		db: db,
	}
}

func (r *EventImageRepositoryImpl) WithTx(tx pgx.Tx) EventImageRepository {
	return &EventImageRepositoryImpl{db: tx}
}

func (r *EventImageRepositoryImpl) Get(ctx context.Context, eventID int) (*string, error) {
	var image *string
	err := r.db.QueryRow(ctx,
		`SELECT image FROM event_images WHERE event_id = $1`, eventID,
	).Scan(&image)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return image, nil
}

func (r *EventImageRepositoryImpl) Set(ctx context.Context, eventID int, image *string) error {
	query := `
		INSERT INTO event_images (event_id, image)
		VALUES ($1, $2)
		ON CONFLICT (event_id) DO UPDATE SET image = EXCLUDED.image
	`
	_, err := r.db.Exec(ctx, query, eventID, image)
	return err
}

func (r *EventImageRepositoryImpl) Delete(ctx context.Context, eventID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM event_images WHERE event_id = $1`, eventID)
	return err
}
