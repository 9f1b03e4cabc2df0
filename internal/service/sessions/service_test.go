package sessions

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/keystone-front/pkg/logger"
	"github.com/m04kA/keystone-front/pkg/metrics"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(ttl time.Duration) (*Registry[string], *clock) {
	c := &clock{t: time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)}
	r := NewRegistry[string]("reservation", ttl, nil, logger.NewNop())
	r.now = c.Now
	return r, c
}

func TestRegistry_PutGetDelete(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	id := r.Put("flow-a")
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	v, err := r.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "flow-a", v)

	assert.True(t, r.Delete(id))
	assert.False(t, r.Delete(id))

	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_UnknownOrMalformedID(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	_, err := r.Get("not-a-uuid")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = r.Get(uuid.NewString())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegistry_IdleExpiry(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	id := r.Put("flow")

	c.Advance(50 * time.Second)
	_, err := r.Get(id)
	require.NoError(t, err, "access extends the session")

	c.Advance(50 * time.Second)
	_, err = r.Get(id)
	require.NoError(t, err)

	c.Advance(61 * time.Second)
	_, err = r.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, r.Len())
}

func TestRegistry_Sweep(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	r.Put("old")
	c.Advance(2 * time.Minute)
	fresh := r.Put("fresh")

	assert.Equal(t, 1, r.Sweep())
	assert.Equal(t, 1, r.Len())
	_, err := r.Get(fresh)
	assert.NoError(t, err)
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	r, c := newTestRegistry(time.Minute)
	r.Put("old")
	c.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestRegistry_ActiveSessionsGauge(t *testing.T) {
	m := metrics.New("keystone_front_test")
	r := NewRegistry[int]("confirmation", time.Minute, m, logger.NewNop())

	a := r.Put(1)
	r.Put(2)
	r.Delete(a)

	count, err := testutil.GatherAndCount(m.Registry(), "flow_sessions_active")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistry_Concurrent(t *testing.T) {
	r, _ := newTestRegistry(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := r.Put("x")
			_, _ = r.Get(id)
			r.Delete(id)
		}()
	}
	wg.Wait()
	assert.Zero(t, r.Len())
}
