package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNamePlayersCreated    = "players_created_total"
	MetricNameMoneyEarned       = "money_earned_total"
	MetricNameMoneySpent        = "money_spent_total"
	MetricNameDailyClaims       = "daily_bonus_claims_total"
	MetricNameInventoryChanges  = "inventory_changes_total"
	MetricNameInventoryRejected = "inventory_changes_rejected_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextPlayersCreated    = "Total number of players created"
	HelpTextMoneyEarned       = "Total money credited to players"
	HelpTextMoneySpent        = "Total money debited from players"
	HelpTextDailyClaims       = "Daily bonus claim attempts by outcome"
	HelpTextInventoryChanges  = "Committed inventory modifications by direction"
	HelpTextInventoryRejected = "Inventory decrements rejected for insufficient quantity"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOutcome   = "outcome"
	LabelDirection = "direction"
)

// Label values
const (
	DirectionAdd    = "add"
	DirectionRemove = "remove"
	PathUnmatched   = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
