package domain

import "time"

// DailyBonusState is the persisted streak row of a player.
// LastClaimed is a UTC calendar date (time component is always midnight UTC).
type DailyBonusState struct {
	PlayerID    int       `json:"player_id"`
	LastClaimed time.Time `json:"last_claimed"`
	Streak      int       `json:"streak"`
}

// DailyStreak is the read-only view of a player's streak
type DailyStreak struct {
	Streak       int  `json:"streak"`
	ClaimedToday bool `json:"claimed_today"`
}

// AcquiredDaily is the outcome of a claim attempt.
// Reward is zero when the bonus was already claimed today.
type AcquiredDaily struct {
	Reward  int64 `json:"reward"`
	Balance int64 `json:"balance"`
}
