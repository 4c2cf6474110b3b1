package domain

// Guild groups players
type Guild struct {
	ID          int     `json:"id"`
	DiscordID   *uint64 `json:"discord_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PlayerCount int     `json:"player_count"`
}
