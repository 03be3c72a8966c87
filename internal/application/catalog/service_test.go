package catalog

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/invite-labs/event-service/internal/domain"
	"github.com/invite-labs/event-service/internal/pkg/cachekeys"
)

// --- fakes ---

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type memEventRepo struct {
	byID map[string]*domain.Event
}

func newMemEventRepo() *memEventRepo { return &memEventRepo{byID: map[string]*domain.Event{}} }

func (m *memEventRepo) Create(ctx context.Context, e *domain.Event) error {
	m.byID[e.ID] = e
	return nil
}

func (m *memEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("event not found")
	}
	return e, nil
}

func (m *memEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	out := make([]*domain.Event, 0, len(m.byID))
	for _, e := range m.byID {
		out = append(out, e)
	}
	return out, nil
}

func (m *memEventRepo) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memAdminRepo struct {
	summaries map[string][]domain.EventSummary
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{summaries: map[string][]domain.EventSummary{}}
}

func (m *memAdminRepo) AppendEventSummary(ctx context.Context, adminID string, s domain.EventSummary) error {
	m.summaries[adminID] = append(m.summaries[adminID], s)
	return nil
}

func (m *memAdminRepo) RemoveEventSummary(ctx context.Context, adminID, eventID string) error {
	kept := m.summaries[adminID][:0]
	for _, s := range m.summaries[adminID] {
		if s.EventID != eventID {
			kept = append(kept, s)
		}
	}
	m.summaries[adminID] = kept
	return nil
}

type recPublisher struct {
	keys []string
}

func (p *recPublisher) PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error {
	p.keys = append(p.keys, routingKey)
	return nil
}

// recCache stores JSON like the redis client and records every key touched.
type recCache struct {
	data    map[string][]byte
	gets    []string
	sets    []string
	deletes []string
}

func newRecCache() *recCache { return &recCache{data: map[string][]byte{}} }

func (c *recCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.gets = append(c.gets, key)
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *recCache) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	c.sets = append(c.sets, key)
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *recCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		c.deletes = append(c.deletes, k)
		delete(c.data, k)
	}
	return nil
}

func newService(events *memEventRepo, admins *memAdminRepo, pub *recPublisher) *Service {
	now := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
	return New(events, admins, nil, pub, fakeClock{t: now}, 0)
}

// --- tests ---

func TestService_Create(t *testing.T) {
	events := newMemEventRepo()
	admins := newMemAdminRepo()
	pub := &recPublisher{}
	svc := newService(events, admins, pub)

	t.Run("creates_free_event_and_denormalized_summary", func(t *testing.T) {
		e, err := svc.Create(context.Background(), CreateCmd{
			AdminID:   "admin_1",
			Name:      "Hack Night",
			Venue:     "Hall A",
			Organizer: "ACM Chapter",
			Date:      "12/12/2025",
			Time:      "6:00 PM",
		})
		assert.NoError(t, err)
		assert.Len(t, e.ID, 32)
		assert.Equal(t, 0, e.Price)

		stored, err := events.GetByID(context.Background(), e.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Hack Night", stored.Name)

		assert.Len(t, admins.summaries["admin_1"], 1)
		assert.Equal(t, e.ID, admins.summaries["admin_1"][0].EventID)
		assert.Contains(t, pub.keys, "event.created")
	})

	t.Run("missing_admin_id", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateCmd{
			Name: "X", Venue: "Y", Organizer: "Z", Date: "1/1/2026", Time: "9 AM",
		})
		ae := &domain.AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeValidation, ae.Code)
		assert.Contains(t, ae.Meta, "admin_id")
	})

	t.Run("missing_required_fields", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateCmd{AdminID: "admin_1"})
		ae := &domain.AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeValidation, ae.Code)
		assert.Contains(t, ae.Meta, "name")
		assert.Contains(t, ae.Meta, "venue")
	})
}

func TestService_Get(t *testing.T) {
	events := newMemEventRepo()
	svc := newService(events, newMemAdminRepo(), &recPublisher{})

	t.Run("not_found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "nope")
		ae := &domain.AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeNotFound, ae.Code)
	})

	t.Run("roundtrip", func(t *testing.T) {
		e, err := svc.Create(context.Background(), CreateCmd{
			AdminID: "admin_1", Name: "Hack Night", Venue: "Hall A",
			Organizer: "ACM", Date: "12/12/2025", Time: "6 PM",
		})
		assert.NoError(t, err)

		got, err := svc.Get(context.Background(), e.ID)
		assert.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
	})

	t.Run("empty_id_is_validation_error", func(t *testing.T) {
		_, err := svc.Get(context.Background(), "")
		ae := &domain.AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeValidation, ae.Code)
	})
}

func TestService_Delete(t *testing.T) {
	events := newMemEventRepo()
	admins := newMemAdminRepo()
	pub := &recPublisher{}
	svc := newService(events, admins, pub)

	e, err := svc.Create(context.Background(), CreateCmd{
		AdminID: "admin_1", Name: "Hack Night", Venue: "Hall A",
		Organizer: "ACM", Date: "12/12/2025", Time: "6 PM",
	})
	assert.NoError(t, err)

	t.Run("removes_event_and_summary", func(t *testing.T) {
		assert.NoError(t, svc.Delete(context.Background(), e.ID, "admin_1"))

		_, err := svc.Get(context.Background(), e.ID)
		ae := &domain.AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeNotFound, ae.Code)
		assert.Empty(t, admins.summaries["admin_1"])
		assert.Contains(t, pub.keys, "event.deleted")
	})

	t.Run("second_delete_is_noop", func(t *testing.T) {
		assert.NoError(t, svc.Delete(context.Background(), e.ID, "admin_1"))
	})

	t.Run("missing_ids", func(t *testing.T) {
		err := svc.Delete(context.Background(), "", "")
		ae := &domain.AppError{}
		assert.ErrorAs(t, err, &ae)
		assert.Equal(t, domain.CodeValidation, ae.Code)
	})
}

func TestService_Get_CacheAside(t *testing.T) {
	events := newMemEventRepo()
	cache := newRecCache()
	now := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
	svc := New(events, newMemAdminRepo(), cache, &recPublisher{}, fakeClock{t: now}, time.Minute)

	e, err := svc.Create(context.Background(), CreateCmd{
		AdminID: "admin_1", Name: "Hack Night", Venue: "Hall A",
		Organizer: "ACM", Date: "12/12/2025", Time: "6 PM",
	})
	assert.NoError(t, err)
	key := cachekeys.EventDetails(e.ID)

	t.Run("miss_fills_cache", func(t *testing.T) {
		got, err := svc.Get(context.Background(), e.ID)
		assert.NoError(t, err)
		assert.Equal(t, e.ID, got.ID)
		assert.Equal(t, []string{key}, cache.gets)
		assert.Equal(t, []string{key}, cache.sets)
	})

	t.Run("hit_skips_store", func(t *testing.T) {
		// the store losing the row proves the second read came from cache
		assert.NoError(t, events.Delete(context.Background(), e.ID))

		got, err := svc.Get(context.Background(), e.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Hack Night", got.Name)
		assert.Equal(t, []string{key, key}, cache.gets)
		assert.Equal(t, []string{key}, cache.sets)
	})
}

func TestService_Delete_InvalidatesCache(t *testing.T) {
	events := newMemEventRepo()
	cache := newRecCache()
	now := time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC)
	svc := New(events, newMemAdminRepo(), cache, &recPublisher{}, fakeClock{t: now}, time.Minute)

	e, err := svc.Create(context.Background(), CreateCmd{
		AdminID: "admin_1", Name: "Hack Night", Venue: "Hall A",
		Organizer: "ACM", Date: "12/12/2025", Time: "6 PM",
	})
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), e.ID)
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(context.Background(), e.ID, "admin_1"))
	assert.Equal(t, []string{cachekeys.EventDetails(e.ID)}, cache.deletes)

	// the stale copy is gone, so the next read reports not_found
	_, err = svc.Get(context.Background(), e.ID)
	var ae *domain.AppError
	assert.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.CodeNotFound, ae.Code)
}

func TestService_List(t *testing.T) {
	events := newMemEventRepo()
	svc := newService(events, newMemAdminRepo(), &recPublisher{})

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.Create(context.Background(), CreateCmd{
			AdminID: "admin_1", Name: name, Venue: "Hall", Organizer: "ACM",
			Date: "12/12/2025", Time: "6 PM",
		})
		assert.NoError(t, err)
	}

	all, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}
