package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheGetSet(t *testing.T) {
	c := NewResponseCache(time.Hour, 100)

	_, ok := c.Get("3 + 5")
	assert.False(t, ok)

	c.Set("3 + 5", "8 🧮")

	got, ok := c.Get("3 + 5")
	assert.True(t, ok)
	assert.Equal(t, "8 🧮", got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheKeysAreExact(t *testing.T) {
	c := NewResponseCache(time.Hour, 100)
	c.Set("3 + 5", "8 🧮")

	_, ok := c.Get("3 + 5 ")
	assert.False(t, ok)
	_, ok = c.Get("3 + 5")
	assert.True(t, ok)
}

func TestCacheSetOverwrites(t *testing.T) {
	c := NewResponseCache(time.Hour, 100)
	c.Set("vraag", "eerste")
	c.Set("vraag", "tweede")

	got, _ := c.Get("vraag")
	assert.Equal(t, "tweede", got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheGetExpiresLazily(t *testing.T) {
	c := NewResponseCache(time.Hour, 100)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("vraag", "antwoord")

	c.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, ok := c.Get("vraag")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len(), "expired entry should be deleted on read")
}

func TestClearExpired(t *testing.T) {
	c := NewResponseCache(time.Hour, 100)

	base := time.Now()
	c.now = func() time.Time { return base }
	c.Set("oud", "antwoord")

	c.now = func() time.Time { return base.Add(30 * time.Minute) }
	c.Set("vers", "antwoord")

	c.now = func() time.Time { return base.Add(90 * time.Minute) }
	removed := c.ClearExpired()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("oud")
	assert.False(t, ok)
	_, ok = c.Get("vers")
	assert.True(t, ok)
}

func TestClearExpiredEvictsOldestOverCapacity(t *testing.T) {
	c := NewResponseCache(time.Hour, 2)

	base := time.Now()
	for i, key := range []string{"a", "b", "c", "d"} {
		offset := time.Duration(i) * time.Minute
		c.now = func() time.Time { return base.Add(offset) }
		c.Set(key, "antwoord")
	}

	c.now = func() time.Time { return base.Add(5 * time.Minute) }
	removed := c.ClearExpired()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	_, ok = c.Get("d")
	assert.True(t, ok)
}
