package dailybonus

import (
	"time"

	"github.com/osse101/BrandishEconomy_Go/internal/domain"
)

// Outcome is what a claim attempt does to the streak
type Outcome int

const (
	// AlreadyClaimed means the bonus was taken today; nothing changes
	AlreadyClaimed Outcome = iota
	// ContinueStreak means the last claim was yesterday
	ContinueStreak
	// ResetStreak means at least one day was missed
	ResetStreak
)

func (o Outcome) String() string {
	switch o {
	case AlreadyClaimed:
		return OutcomeAlreadyClaimed
	case ContinueStreak:
		return OutcomeContinueStreak
	case ResetStreak:
		return OutcomeResetStreak
	default:
		return OutcomeUnknown
	}
}

// DecideClaim classifies a claim made on today given the last claim date.
// Both arguments are reduced to UTC calendar dates. A last claim dated after
// today resets the streak.
func DecideClaim(lastClaimed, today time.Time) Outcome {
	last := domain.DateOf(lastClaimed)
	day := domain.DateOf(today)

	switch {
	case last.Equal(day):
		return AlreadyClaimed
	case last.Equal(day.Add(-domain.Day)):
		return ContinueStreak
	default:
		return ResetStreak
	}
}

// NextStreak applies an outcome to the stored streak
func NextStreak(outcome Outcome, streak int) int {
	switch outcome {
	case AlreadyClaimed:
		return streak
	case ContinueStreak:
		return streak + 1
	default:
		return 1
	}
}

// DisplayStreak computes the streak shown to a player without touching storage.
// A streak whose last claim is older than yesterday is reported as broken (zero).
func DisplayStreak(lastClaimed, today time.Time, stored int) domain.DailyStreak {
	last := domain.DateOf(lastClaimed)
	day := domain.DateOf(today)

	switch {
	case last.Equal(day):
		return domain.DailyStreak{Streak: stored, ClaimedToday: true}
	case last.Equal(day.Add(-domain.Day)):
		return domain.DailyStreak{Streak: stored, ClaimedToday: false}
	default:
		return domain.DailyStreak{Streak: 0, ClaimedToday: false}
	}
}
