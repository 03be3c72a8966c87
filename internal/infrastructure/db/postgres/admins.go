package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/invite-labs/event-service/internal/domain"
)

type AdminRepo struct {
	db *sql.DB
}

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// Ensure inserts the admin if absent. Returns true when a row was created,
// false when the admin already existed. Used by the bootstrap seed.
func (r *AdminRepo) Ensure(ctx context.Context, a domain.Admin) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertAdminSQL,
		a.AdminID, a.Email, a.Name, a.Pass, a.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert admin: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert admin: %w", err)
	}
	return n > 0, nil
}

func (r *AdminRepo) AppendEventSummary(ctx context.Context, adminID string, s domain.EventSummary) error {
	_, err := r.db.ExecContext(ctx, insertAdminEventSQL,
		adminID, s.EventID, s.Name, s.Venue, s.Date, s.Time,
		s.Price, s.Profile, s.Cover, s.Organizer,
	)
	if err != nil {
		return fmt.Errorf("append admin event: %w", err)
	}
	return nil
}

// RemoveEventSummary deletes the denormalized copy. Absent rows are not an
// error: the copy is best-effort and may never have been written.
func (r *AdminRepo) RemoveEventSummary(ctx context.Context, adminID, eventID string) error {
	if _, err := r.db.ExecContext(ctx, deleteAdminEventSQL, adminID, eventID); err != nil {
		return fmt.Errorf("remove admin event: %w", err)
	}
	return nil
}

// ListEventSummaries reads the admin's denormalized events-created list.
func (r *AdminRepo) ListEventSummaries(ctx context.Context, adminID string) ([]domain.EventSummary, error) {
	rows, err := r.db.QueryContext(ctx, listAdminEventsSQL, adminID)
	if err != nil {
		return nil, fmt.Errorf("list admin events: %w", err)
	}
	defer rows.Close()

	var out []domain.EventSummary
	for rows.Next() {
		var s domain.EventSummary
		if err := rows.Scan(&s.EventID, &s.Name, &s.Venue, &s.Date, &s.Time,
			&s.Price, &s.Profile, &s.Cover, &s.Organizer); err != nil {
			return nil, fmt.Errorf("scan admin event: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list admin events: %w", err)
	}
	return out, nil
}
