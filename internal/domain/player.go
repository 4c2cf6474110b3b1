package domain

// Player holds the economy state of a single user.
// Money may go negative; experience is not clamped either.
type Player struct {
	ID         int   `json:"id"`
	Money      int64 `json:"money"`
	Experience int64 `json:"experience"`
	GuildID    *int  `json:"guild_id"`
}
