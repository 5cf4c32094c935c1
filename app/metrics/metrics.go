package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PollCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "katechon",
		Name:      "poll_cycles_total",
		Help:      "Number of completed feed poll cycles",
	})

	FeedFetchErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "katechon",
		Name:      "feed_fetch_errors_total",
		Help:      "Number of failed feed fetches by feed name",
	}, []string{"feed"})

	EventsIngestedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "katechon",
		Name:      "events_ingested_total",
		Help:      "Number of newly ingested events by source",
	}, []string{"source"})

	LLMCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "katechon",
		Name:      "llm_calls_total",
		Help:      "Number of language model calls by persona and status",
	}, []string{"persona", "status"})

	PillarHealth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "katechon",
		Name:      "pillar_health",
		Help:      "Current health score per pillar (0-100)",
	}, []string{"pillar"})
)
