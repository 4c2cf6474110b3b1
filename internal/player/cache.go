package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// discordCache memoises snowflake to player id lookups.
// Only hits are stored; a snowflake never moves to another player.
type discordCache struct {
	lru *expirable.LRU[uint64, int]
}

func newDiscordCache(size int, ttl time.Duration) *discordCache {
	return &discordCache{
		lru: expirable.NewLRU[uint64, int](size, nil, ttl),
	}
}

// Get returns the cached player id for a snowflake
func (c *discordCache) Get(discordID uint64) (int, bool) {
	return c.lru.Get(discordID)
}

// Set remembers the player id for a snowflake
func (c *discordCache) Set(discordID uint64, playerID int) {
	c.lru.Add(discordID, playerID)
}

// Len reports how many snowflakes are cached
func (c *discordCache) Len() int {
	return c.lru.Len()
}
