package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"guard_patrol/internal/patrol"
)

var (
	// trialTotal counts obstruction trials by outcome
	trialTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "patrol_obstruction_trials_total",
		Help: "Total obstruction trials by outcome",
	}, []string{"outcome"})

	// trialSteps tracks how many guard steps a trial took
	trialSteps = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patrol_obstruction_trial_steps",
		Help:    "Guard steps per obstruction trial",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	})

	trialDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "patrol_obstruction_trial_duration_seconds",
		Help:    "Obstruction trial duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
)

func observeTrial(res patrol.Result, elapsed time.Duration) {
	trialTotal.WithLabelValues(res.Outcome.String()).Inc()
	trialSteps.Observe(float64(res.Steps))
	trialDuration.Observe(elapsed.Seconds())
}
