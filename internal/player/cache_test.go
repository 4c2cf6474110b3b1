package player

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscordCache(t *testing.T) {
	c := newDiscordCache(2, time.Hour)

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, 10)
	c.Set(2, 20)
	id, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 10, id)

	// 2 is now least recently used and gets evicted
	c.Set(3, 30)
	_, ok = c.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestDiscordCache_Expiry(t *testing.T) {
	c := newDiscordCache(4, 20*time.Millisecond)
	c.Set(1, 10)

	assert.Eventually(t, func() bool {
		_, ok := c.Get(1)
		return !ok
	}, time.Second, 10*time.Millisecond)
}
