package launcher

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var ErrFailedToRegisterStats = errors.New("failed to register launcher stats")

const (
	statusSucceeded = "succeeded"
	statusFailed    = "failed"
)

// Stats are the pipeline metrics. A nil *Stats records nothing.
type Stats struct {
	launches      *prometheus.CounterVec
	stageFailures *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	inFlight      prometheus.Gauge
}

// NewStats creates the pipeline metrics and registers them with reg unless reg is nil.
func NewStats(reg prometheus.Registerer) (*Stats, error) {
	s := &Stats{
		launches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "launcher_launches_total",
			Help: "Number of finished launch pipelines by status",
		}, []string{"status"}),
		stageFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "launcher_stage_failures_total",
			Help: "Number of launch pipelines that failed, by the stage they failed in",
		}, []string{"stage"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "launcher_stage_duration_seconds",
			Help:    "Duration of launch pipeline stages",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 180},
		}, []string{"stage"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "launcher_pipelines_in_flight",
			Help: "Number of launch pipelines currently running",
		}),
	}

	if reg == nil {
		return s, nil
	}

	for _, c := range []prometheus.Collector{s.launches, s.stageFailures, s.stageDuration, s.inFlight} {
		err := reg.Register(c)
		if err != nil {
			return nil, errors.Join(ErrFailedToRegisterStats, err)
		}
	}

	return s, nil
}

func (s *Stats) started() {
	if s == nil {
		return
	}
	s.inFlight.Inc()
}

func (s *Stats) finished(err error) {
	if s == nil {
		return
	}
	s.inFlight.Dec()

	if err != nil {
		s.launches.WithLabelValues(statusFailed).Inc()
		if stage := StageOf(err); stage != "" {
			s.stageFailures.WithLabelValues(string(stage)).Inc()
		}
		return
	}

	s.launches.WithLabelValues(statusSucceeded).Inc()
}

func (s *Stats) observeStage(stage Stage, d time.Duration) {
	if s == nil {
		return
	}
	s.stageDuration.WithLabelValues(string(stage)).Observe(d.Seconds())
}
