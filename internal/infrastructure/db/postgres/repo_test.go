package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/invite-labs/event-service/internal/domain"
)

func eventColumns() []string {
	return []string{
		"id", "name", "venue", "organizer", "event_date", "event_time",
		"description", "price", "profile", "cover", "created_at", "updated_at",
	}
}

func participantColumns() []string {
	return []string{"pass_id", "name", "contact_number", "entry", "registered_at"}
}

func TestRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := New(db)
	now := time.Now().UTC()
	e := &domain.Event{
		ID: "evt_1", Name: "Hack Night", Venue: "Hall A", Organizer: "ACM",
		Date: "12/12/2025", Time: "6:00 PM", Description: "desc",
		Price: 0, Profile: "p.png", Cover: "c.png",
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectExec("INSERT INTO events").
		WithArgs(
			e.ID, e.Name, e.Venue, e.Organizer, e.Date, e.Time,
			e.Description, e.Price, e.Profile, e.Cover, e.CreatedAt, e.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	assert.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := New(db)
	now := time.Now().UTC()

	t.Run("success_with_participants", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM events WHERE id =").
			WithArgs("evt_1").
			WillReturnRows(sqlmock.NewRows(eventColumns()).AddRow(
				"evt_1", "Hack Night", "Hall A", "ACM", "12/12/2025", "6:00 PM",
				"desc", 0, "p.png", "c.png", now, now,
			))
		mock.ExpectQuery("SELECT (.+) FROM participants").
			WithArgs("evt_1").
			WillReturnRows(sqlmock.NewRows(participantColumns()).
				AddRow("pass_a", "Alice", "9876543210", false, now).
				AddRow("pass_b", "Bob", "9876543211", true, now))

		e, err := repo.GetByID(context.Background(), "evt_1")
		assert.NoError(t, err)
		assert.Equal(t, "Hack Night", e.Name)
		assert.Len(t, e.Participants, 2)
		assert.Equal(t, "pass_a", e.Participants[0].PassID)
		assert.True(t, e.Participants[1].Entry)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not_found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM events WHERE id =").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(eventColumns()))

		_, err := repo.GetByID(context.Background(), "missing")
		var ae *domain.AppError
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeNotFound, ae.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_Delete_IsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := New(db)

	// zero rows affected: already deleted, still success
	mock.ExpectExec("DELETE FROM events").
		WithArgs("evt_1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), "evt_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_AddParticipant(t *testing.T) {
	now := time.Now().UTC()
	p := &domain.Participant{
		PassID: "pass_a", Name: "Alice", ContactNumber: "9876543210",
		Entry: false, RegisteredAt: now,
	}

	t.Run("inserted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := New(db)
		mock.ExpectExec("INSERT INTO participants").
			WithArgs(p.PassID, "evt_1", p.Name, p.ContactNumber, p.Entry, p.RegisteredAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		assert.NoError(t, repo.AddParticipant(context.Background(), "evt_1", p))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict_maps_to_already_registered", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := New(db)
		mock.ExpectExec("INSERT INTO participants").
			WithArgs(p.PassID, "evt_1", p.Name, p.ContactNumber, p.Entry, p.RegisteredAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.AddParticipant(context.Background(), "evt_1", p)
		var ae *domain.AppError
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeAlreadyRegistered, ae.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_MarkEntry(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := New(db)
		mock.ExpectQuery("UPDATE participants SET entry").
			WithArgs("evt_1", "pass_a").
			WillReturnRows(sqlmock.NewRows(participantColumns()).
				AddRow("pass_a", "Alice", "9876543210", true, now))

		p, found, err := repo.MarkEntry(context.Background(), "evt_1", "pass_a")
		assert.NoError(t, err)
		assert.True(t, found)
		assert.True(t, p.Entry)
		assert.Equal(t, "Alice", p.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown_pass_id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := New(db)
		mock.ExpectQuery("UPDATE participants SET entry").
			WithArgs("evt_1", "ghost").
			WillReturnRows(sqlmock.NewRows(participantColumns()))

		p, found, err := repo.MarkEntry(context.Background(), "evt_1", "ghost")
		assert.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, p)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminRepo_Ensure(t *testing.T) {
	now := time.Now().UTC()
	a := domain.Admin{AdminID: "demo-admin", Email: "demo@invite.local", Name: "demo", Pass: "demo123", CreatedAt: now}

	t.Run("created", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewAdminRepo(db)
		mock.ExpectExec("INSERT INTO admins").
			WithArgs(a.AdminID, a.Email, a.Name, a.Pass, a.CreatedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		created, err := repo.Ensure(context.Background(), a)
		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already_exists", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewAdminRepo(db)
		mock.ExpectExec("INSERT INTO admins").
			WithArgs(a.AdminID, a.Email, a.Name, a.Pass, a.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		created, err := repo.Ensure(context.Background(), a)
		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAdminRepo_ListEventSummaries(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	cols := []string{
		"event_id", "name", "venue", "event_date", "event_time",
		"price", "profile", "cover", "organizer",
	}

	repo := NewAdminRepo(db)
	mock.ExpectQuery("SELECT (.+) FROM admin_events").
		WithArgs("demo-admin").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("evt_1", "Hack Night", "Hall A", "12/12/2025", "6:00 PM", 0, "p.png", "c.png", "ACM").
			AddRow("evt_2", "Tech Meetup", "Hall B", "01/01/2026", "10:00 AM", 0, "p.png", "c.png", "IEEE"))

	out, err := repo.ListEventSummaries(context.Background(), "demo-admin")
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "evt_1", out[0].EventID)
	assert.Equal(t, "Tech Meetup", out[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminRepo_RemoveEventSummary_AbsentRowOK(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewAdminRepo(db)
	mock.ExpectExec("DELETE FROM admin_events").
		WithArgs("demo-admin", "evt_1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.RemoveEventSummary(context.Background(), "demo-admin", "evt_1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
