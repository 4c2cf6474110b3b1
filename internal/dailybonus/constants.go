package dailybonus

// Outcome labels, also used as metric label values
const (
	OutcomeAlreadyClaimed = "already_claimed"
	OutcomeContinueStreak = "continue_streak"
	OutcomeResetStreak    = "reset_streak"
	OutcomeUnknown        = "unknown"
)

// Log messages
const (
	LogMsgDailyClaimed        = "Daily bonus claimed"
	LogMsgDailyAlreadyClaimed = "Daily bonus already claimed today"
)
