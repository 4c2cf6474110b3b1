package domain

import "time"

// User is the account row every player hangs off
type User struct {
	ID         int       `json:"id"`
	DateJoined time.Time `json:"date_joined"`
	IsAdmin    bool      `json:"is_admin"`
	DiscordID  *uint64   `json:"discord_id,omitempty"`
}
