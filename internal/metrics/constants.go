package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Farm metric names
const (
	MetricNameSessionsStarted = "farm_sessions_started_total"
	MetricNameActionsApplied  = "farm_actions_applied_total"
	MetricNamePlotsAffected   = "farm_plots_affected_total"
	MetricNameHarvestIncome   = "farm_harvest_income_total"
	MetricNameItemsBought     = "farm_items_bought_total"
	MetricNameMoneySpent      = "farm_money_spent_total"
	MetricNameDaysAdvanced    = "farm_days_advanced_total"
	MetricNameNightEvents     = "farm_night_events_total"
	MetricNamePlotsDestroyed  = "farm_plots_destroyed_total"
	MetricNameMoneyStolen     = "farm_money_stolen_total"
	MetricNameGameOutcomes    = "farm_game_outcomes_total"
	MetricNameDaysSurvived    = "farm_days_survived"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Farm metric help text
const (
	HelpTextSessionsStarted = "Total number of farm sessions started"
	HelpTextActionsApplied  = "Total number of executed actions that touched at least one plot"
	HelpTextPlotsAffected   = "Total number of plots changed by player actions"
	HelpTextHarvestIncome   = "Total money earned from harvests"
	HelpTextItemsBought     = "Total number of shop items bought"
	HelpTextMoneySpent      = "Total money spent in the shop"
	HelpTextDaysAdvanced    = "Total number of days ended"
	HelpTextNightEvents     = "Total number of night events and disasters"
	HelpTextPlotsDestroyed  = "Total number of plots destroyed by disasters"
	HelpTextMoneyStolen     = "Total money taken by robberies"
	HelpTextGameOutcomes    = "Total number of finished games by outcome"
	HelpTextDaysSurvived    = "Days played before a game finished"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelAction  = "action"
	LabelItem    = "item"
	LabelKind    = "kind"
	LabelOutcome = "outcome"
)

// PathUnmatched labels requests that matched no route.
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DaysSurvivedBuckets covers short losses through long wins.
var DaysSurvivedBuckets = []float64{1, 3, 5, 10, 20, 30, 50, 75, 100, 150}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
