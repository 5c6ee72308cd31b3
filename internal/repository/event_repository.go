package repository

import (
	"context"

	"eventboard/internal/model"
	apperrors "eventboard/pkg/app_errors"

	"github.com/jackc/pgx/v5"
)

type EventRepository interface {
	List(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id int) (*model.Event, error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id int, event *model.Event) error
	Delete(ctx context.Context, id int) error
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx pgx.Tx) EventRepository
}

type EventRepositoryImpl struct {
	db Querier
}

func NewEventRepository(db Querier) EventRepository {
	return &EventRepositoryImpl{
		db: db,
	}
}

func (r *EventRepositoryImpl) WithTx(tx pgx.Tx) EventRepository {
	return &EventRepositoryImpl{db: tx}
}

func (r *EventRepositoryImpl) List(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT id, name, date, time, location, description
		FROM events
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		var event model.Event
		err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Date,
			&event.Time,
			&event.Location,
			&event.Description,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, &event)
	}
	return events, rows.Err()
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `
		SELECT id, name, date, time, location, description
		FROM events
		WHERE id = $1
	`

	var event model.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Description,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (name, date, time, location, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		event.Name, event.Date, event.Time, event.Location, event.Description,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, event *model.Event) error {
	query := `
		UPDATE events
		SET name = $1, date = $2, time = $3, location = $4, description = $5
		WHERE id = $6
	`
	tag, err := r.db.Exec(ctx, query,
		event.Name, event.Date, event.Time, event.Location, event.Description, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
