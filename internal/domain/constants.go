package domain

import "time"

// Economy defaults, overridable through config
const (
	DefaultStartingMoney int64 = 1000
	DefaultDailyMoney    int64 = 100
)

// Day is one UTC calendar day
const Day = 24 * time.Hour

// DateOf truncates t to its UTC calendar date
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
