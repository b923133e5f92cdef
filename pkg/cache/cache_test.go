package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	a := Key([]byte("doc"))
	b := Key([]byte("doc"))
	c := Key([]byte("other"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestCache(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		c := New[string](time.Minute)
		c.Set("k", "v")

		got, ok := c.Get("k")
		require.True(t, ok)
		assert.Equal(t, "v", got)
	})

	t.Run("missing key", func(t *testing.T) {
		c := New[string](time.Minute)
		_, ok := c.Get("missing")
		assert.False(t, ok)
	})

	t.Run("entries expire after the TTL", func(t *testing.T) {
		c := New[int](time.Minute)
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("k", 1)

		now = now.Add(59 * time.Second)
		_, ok := c.Get("k")
		assert.True(t, ok)

		now = now.Add(2 * time.Second)
		_, ok = c.Get("k")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("zero TTL never expires", func(t *testing.T) {
		c := New[int](0)
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("k", 1)
		now = now.Add(24 * time.Hour)

		_, ok := c.Get("k")
		assert.True(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		c := New[int](time.Minute)
		c.Set("k", 1)
		c.Delete("k")
		_, ok := c.Get("k")
		assert.False(t, ok)
	})

	t.Run("purge drops only expired entries", func(t *testing.T) {
		c := New[int](time.Minute)
		now := time.Now()
		c.now = func() time.Time { return now }

		c.Set("old", 1)
		now = now.Add(30 * time.Second)
		c.Set("fresh", 2)
		now = now.Add(45 * time.Second)

		dropped := c.Purge()
		assert.Equal(t, 1, dropped)
		assert.Equal(t, 1, c.Len())

		_, ok := c.Get("fresh")
		assert.True(t, ok)
	})
}
