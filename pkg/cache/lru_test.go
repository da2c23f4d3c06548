package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func newWithClock[K comparable, V any](cfg Config) (*LRUCache[K, V], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := New[K, V](cfg)
	c.now = clock.now
	return c, clock
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	c := New[string, int](Config{MaxSize: 2})
	c.Set("a", 1)
	c.Set("b", 2)
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_SetIfAbsent(t *testing.T) {
	t.Parallel()

	c, clock := newWithClock[string, struct{}](Config{MaxSize: 10, TTL: time.Minute})

	assert.True(t, c.SetIfAbsent("evt_1", struct{}{}))
	assert.False(t, c.SetIfAbsent("evt_1", struct{}{}))

	clock.t = clock.t.Add(2 * time.Minute)
	assert.True(t, c.SetIfAbsent("evt_1", struct{}{}))

	st := c.Stats()
	assert.Equal(t, 1, st.Size)
	assert.Equal(t, uint64(1), st.Hits)
	assert.Equal(t, uint64(2), st.Misses)
}

func TestLRUCache_CleanupExpired(t *testing.T) {
	t.Parallel()

	c, clock := newWithClock[string, int](Config{MaxSize: 10, TTL: time.Minute})
	c.Set("old", 1)
	clock.t = clock.t.Add(45 * time.Second)
	c.Set("new", 2)
	clock.t = clock.t.Add(30 * time.Second)

	assert.Equal(t, 1, c.CleanupExpired())
	_, ok := c.Get("new")
	assert.True(t, ok)
	assert.Equal(t, 1, c.Size())
}

func TestLRUCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := New[string, int](Config{MaxSize: 64})
	var wg sync.WaitGroup
	stored := make([]int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if c.SetIfAbsent(fmt.Sprintf("k%d", i%32), i) {
					stored[g]++
				}
			}
		}(g)
	}
	wg.Wait()

	total := 0
	for _, n := range stored {
		total += n
	}
	assert.Equal(t, 32, total)
}
