package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Farm Metrics
var (
	SessionsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsStarted,
			Help: HelpTextSessionsStarted,
		},
	)

	ActionsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsApplied,
			Help: HelpTextActionsApplied,
		},
		[]string{LabelAction},
	)

	PlotsAffected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePlotsAffected,
			Help: HelpTextPlotsAffected,
		},
		[]string{LabelAction},
	)

	HarvestIncome = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHarvestIncome,
			Help: HelpTextHarvestIncome,
		},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	DaysAdvanced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDaysAdvanced,
			Help: HelpTextDaysAdvanced,
		},
	)

	NightEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNightEvents,
			Help: HelpTextNightEvents,
		},
		[]string{LabelKind},
	)

	PlotsDestroyed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlotsDestroyed,
			Help: HelpTextPlotsDestroyed,
		},
	)

	MoneyStolen = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyStolen,
			Help: HelpTextMoneyStolen,
		},
	)

	GameOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameOutcomes,
			Help: HelpTextGameOutcomes,
		},
		[]string{LabelOutcome},
	)

	DaysSurvived = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameDaysSurvived,
			Help:    HelpTextDaysSurvived,
			Buckets: DaysSurvivedBuckets,
		},
	)
)
