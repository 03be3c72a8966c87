package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/invite-labs/event-service/internal/domain"
)

type Repo struct {
	db *sql.DB
}

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Create(ctx context.Context, e *domain.Event) error {
	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.ID, e.Name, e.Venue, e.Organizer, e.Date, e.Time,
		e.Description, e.Price, e.Profile, e.Cover, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.db.QueryRowContext(ctx, getEventSQL, id)

	var e domain.Event
	err := row.Scan(
		&e.ID, &e.Name, &e.Venue, &e.Organizer, &e.Date, &e.Time,
		&e.Description, &e.Price, &e.Profile, &e.Cover, &e.CreatedAt, &e.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound("event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	participants, err := r.listParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Participants = participants
	return &e, nil
}

func (r *Repo) List(ctx context.Context) ([]*domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, listEventsSQL)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Venue, &e.Organizer, &e.Date, &e.Time,
			&e.Description, &e.Price, &e.Profile, &e.Cover, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	for _, e := range out {
		participants, err := r.listParticipants(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		e.Participants = participants
	}
	return out, nil
}

// Delete removes the event; participants go with it via ON DELETE CASCADE.
// Zero rows affected means the event was already gone, which is fine.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deleteEventSQL, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *Repo) listParticipants(ctx context.Context, eventID string) ([]domain.Participant, error) {
	rows, err := r.db.QueryContext(ctx, listParticipantsSQL, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	var out []domain.Participant
	for rows.Next() {
		var p domain.Participant
		if err := rows.Scan(&p.PassID, &p.Name, &p.ContactNumber, &p.Entry, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan participant: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return out, nil
}
