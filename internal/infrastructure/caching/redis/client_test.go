package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewFromClient(rdb)
}

func TestClient_SetGet(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "event:abc", payload{ID: "abc", Name: "Hack Night"}, time.Minute))

	var got payload
	found, err := c.Get(ctx, "event:abc", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Hack Night", got.Name)
}

func TestClient_Get_Miss(t *testing.T) {
	c := newTestClient(t)

	var got payload
	found, err := c.Get(context.Background(), "event:missing", &got)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestClient_Delete(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "event:abc", payload{ID: "abc"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "event:abc"))

	var got payload
	found, err := c.Get(ctx, "event:abc", &got)
	assert.NoError(t, err)
	assert.False(t, found)

	// deleting nothing is fine
	assert.NoError(t, c.Delete(ctx))
}
