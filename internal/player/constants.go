package player

import "time"

// Cache defaults
const (
	DefaultDiscordCacheSize = 10000
	DefaultDiscordCacheTTL  = 30 * time.Minute
)

// Log messages
const (
	LogMsgCreatingPlayer     = "Creating player"
	LogMsgPlayerCreated      = "Player created"
	LogMsgCreatePlayerFailed = "Failed to create player"
	LogMsgMoneyAdjusted      = "Money adjusted"
	LogMsgExperienceAdjusted = "Experience adjusted"
	LogMsgGuildChanged       = "Guild changed"
	LogMsgDiscordCacheHit    = "Discord id cache hit"
)
