package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	paths []string
	err   error
}

func (s *recordingSink) Invalidate(_ context.Context, path string) error {
	s.paths = append(s.paths, path)
	return s.err
}

func TestFanout_ReachesEverySink(t *testing.T) {
	failing := &recordingSink{err: errors.New("redis down")}
	ok := &recordingSink{}

	err := Fanout{failing, nil, ok}.Invalidate(context.Background(), "/admin/bookings")

	require.Error(t, err)
	assert.ErrorContains(t, err, "redis down")
	assert.Equal(t, []string{"/admin/bookings"}, failing.paths)
	assert.Equal(t, []string{"/admin/bookings"}, ok.paths)
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, Fanout{}.Invalidate(context.Background(), "/admin/bookings"))
}

func TestNop(t *testing.T) {
	var n Nop
	var dst []string

	hit, err := n.Get(context.Background(), "/admin/bookings", &dst)
	assert.False(t, hit)
	assert.NoError(t, err)
	assert.NoError(t, n.Set(context.Background(), "/admin/bookings", []string{"x"}))
	assert.NoError(t, n.Invalidate(context.Background(), "/admin/bookings"))

	v, err := n.Version(context.Background(), "/admin/bookings")
	assert.NoError(t, err)
	assert.Zero(t, v)
	stored, err := n.SetIfVersion(context.Background(), "/admin/bookings", []string{"x"}, 0)
	assert.NoError(t, err)
	assert.False(t, stored)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "listing:/admin/bookings", Key("/admin/bookings"))
	assert.Equal(t, "listing-version:/admin/bookings", VersionKey("/admin/bookings"))
}

func TestListingCache_UnreachableRedisReportsError(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	c := NewListingCache(rdb, time.Minute)
	var dst []string

	hit, err := c.Get(context.Background(), "/admin/bookings", &dst)
	assert.False(t, hit)
	assert.Error(t, err)
	assert.Error(t, c.Invalidate(context.Background(), "/admin/bookings"))

	_, err = c.Version(context.Background(), "/admin/bookings")
	assert.Error(t, err)
	stored, err := c.SetIfVersion(context.Background(), "/admin/bookings", []string{"x"}, 0)
	assert.False(t, stored)
	assert.Error(t, err)
}
