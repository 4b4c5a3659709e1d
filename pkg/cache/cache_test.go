package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "recipes", Key("recipes"))
	assert.Equal(t, "recipe:42", Key("recipe", "42"))
	assert.Equal(t, "recipes:pasta:7", Key("recipes", "pasta", "7"))
}

func TestGetSetEvict(t *testing.T) {
	c := New(0, nil)

	_, ok := c.Get("recipe:1")
	assert.False(t, ok)

	c.Set("recipe:1", "carbonara")
	v, ok := c.Get("recipe:1")
	require.True(t, ok)
	assert.Equal(t, "carbonara", v)

	c.Evict("recipe:1")
	_, ok = c.Get("recipe:1")
	assert.False(t, ok)
}

func TestEvictOnlyRemovesNamedKey(t *testing.T) {
	c := New(0, nil)
	c.Set("recipe:1", "a")
	c.Set("recipes:all", "b")

	c.Evict("recipe:1")

	_, ok := c.Get("recipe:1")
	assert.False(t, ok)
	v, ok := c.Get("recipes:all")
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestTTLExpiry(t *testing.T) {
	c := New(20*time.Millisecond, nil)
	c.Set("recipe:1", "carbonara")

	_, ok := c.Get("recipe:1")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = c.Get("recipe:1")
	assert.False(t, ok)
}

func TestOnceCollapsesConcurrentMisses(t *testing.T) {
	c := New(0, nil)

	var computations int32
	gate := make(chan struct{})

	compute := func() (any, error) {
		atomic.AddInt32(&computations, 1)
		<-gate
		return "all recipes", nil
	}

	const callers = 8
	results := make([]any, callers)
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := c.Once("recipes:all", compute)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Give every caller time to reach the single-flight group.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&computations))
	for _, v := range results {
		assert.Equal(t, "all recipes", v)
	}
}

func TestOnceDoesNotCacheErrors(t *testing.T) {
	c := New(0, nil)

	calls := 0
	boom := errors.New("store down")
	compute := func() (any, error) {
		calls++
		if calls == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	_, err := c.Once("recipes:all", compute)
	assert.ErrorIs(t, err, boom)

	v, err := c.Once("recipes:all", compute)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestOnceServesFromCacheWithoutComputing(t *testing.T) {
	c := New(0, nil)
	c.Set("recipes:all", "cached")

	v, err := c.Once("recipes:all", func() (any, error) {
		t.Fatal("compute should not run on a cache hit")
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "cached", v)
}
