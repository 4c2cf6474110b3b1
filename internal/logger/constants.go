package logger

// Log levels accepted by Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "brandish-economy"
	DefaultVersion     = "dev"
)

// Deployment environments. Source locations are logged in dev only.
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attribute keys shared by every component that logs
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"

	AttrKeyPlayerID  = "player_id"
	AttrKeyItemID    = "item_id"
	AttrKeyGuildID   = "guild_id"
	AttrKeyDiscordID = "discord_id"
)
