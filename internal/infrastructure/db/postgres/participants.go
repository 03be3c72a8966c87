package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/invite-labs/event-service/internal/domain"
)

const fkViolation = "23503"

// AddParticipant appends the participant unless the event already holds this
// contact number. The conditional insert makes check-and-append atomic per
// event; two concurrent registrations with the same number cannot both land.
func (r *Repo) AddParticipant(ctx context.Context, eventID string, p *domain.Participant) error {
	res, err := r.db.ExecContext(ctx, insertParticipantSQL,
		p.PassID, eventID, p.Name, p.ContactNumber, p.Entry, p.RegisteredAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == fkViolation {
			return domain.ErrNotFound("event not found")
		}
		return fmt.Errorf("insert participant: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert participant: %w", err)
	}
	if n == 0 {
		return domain.ErrAlreadyRegistered()
	}
	return nil
}

// MarkEntry flips entry to true and reports whether the pass id belongs to
// the event. Already-entered participants still match (idempotent update).
func (r *Repo) MarkEntry(ctx context.Context, eventID, passID string) (*domain.Participant, bool, error) {
	row := r.db.QueryRowContext(ctx, markEntrySQL, eventID, passID)

	var p domain.Participant
	err := row.Scan(&p.PassID, &p.Name, &p.ContactNumber, &p.Entry, &p.RegisteredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mark entry: %w", err)
	}
	return &p, true, nil
}
