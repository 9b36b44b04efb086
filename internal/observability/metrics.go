package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - счетчики и гистограммы сервиса реагирования на наводнения
type Metrics struct {
	WeatherFetches        *prometheus.CounterVec // labels: source={api,synthetic}, outcome={success,error}
	ForecastPersistErrors prometheus.Counter

	AggregationRuns     prometheus.Counter
	AggregationDegraded prometheus.Counter
	AggregationDuration prometheus.Histogram

	FeedSnapshots prometheus.Counter
	WorkMutations *prometheus.CounterVec // labels: op={create,claim,complete}, outcome={success,error,in_flight}
}

func build() *Metrics {
	return &Metrics{
		WeatherFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "weather_fetches_total",
			Help:      "Weather gateway fetches by source and outcome.",
		}, []string{"source", "outcome"}),
		ForecastPersistErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "forecast_persist_errors_total",
			Help:      "Failures to persist a raw forecast document.",
		}),
		AggregationRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "aggregation_runs_total",
			Help:      "Completed flood risk aggregation runs.",
		}),
		AggregationDegraded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "aggregation_degraded_total",
			Help:      "Per-district entries degraded to a placeholder due to a fetch failure.",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "flood_response",
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of a full aggregation fan-out.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FeedSnapshots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "feed_snapshots_total",
			Help:      "Work assignment snapshots delivered by the change feed.",
		}),
		WorkMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flood_response",
			Name:      "work_mutations_total",
			Help:      "Work assignment mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
	}
}

// NewMetrics создает метрики и регистрирует их в реестре prometheus по умолчанию
func NewMetrics() *Metrics {
	m := build()
	prometheus.MustRegister(
		m.WeatherFetches,
		m.ForecastPersistErrors,
		m.AggregationRuns,
		m.AggregationDegraded,
		m.AggregationDuration,
		m.FeedSnapshots,
		m.WorkMutations,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы параллельные
// тесты не падали на повторной регистрации
func NewMetricsForTesting() *Metrics {
	return build()
}
