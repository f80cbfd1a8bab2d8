package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Edit session metrics
	SessionsOpened           prometheus.Counter
	SessionsCommitted        prometheus.Counter
	SessionsDiscarded        prometheus.Counter
	ConcurrentEditRejections prometheus.Counter
	SaveDuration             prometheus.Histogram
	ActiveSessions           prometheus.Gauge

	// Transaction metrics
	TransactionsCreated prometheus.Counter
	TransactionsDeleted prometheus.Counter
	SplitsPerSave       prometheus.Histogram
	BalanceViolations   prometheus.Counter

	// Account metrics
	AccountsCreated prometheus.Counter

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Edit session metrics
		SessionsOpened: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_sessions_opened_total",
			Help: "Total number of edit sessions opened",
		}),
		SessionsCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_sessions_committed_total",
			Help: "Total number of edit sessions saved",
		}),
		SessionsDiscarded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_sessions_discarded_total",
			Help: "Total number of edit sessions discarded",
		}),
		ConcurrentEditRejections: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_concurrent_edit_rejections_total",
			Help: "Total number of session opens rejected because one was already active",
		}),
		SaveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitbook_session_save_duration_seconds",
			Help:    "Duration of session save operations",
			Buckets: prometheus.DefBuckets,
		}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "splitbook_active_sessions",
			Help: "Current number of open edit sessions",
		}),

		// Transaction metrics
		TransactionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_transactions_created_total",
			Help: "Total number of transactions created",
		}),
		TransactionsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_transactions_deleted_total",
			Help: "Total number of transactions deleted",
		}),
		SplitsPerSave: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitbook_splits_per_save",
			Help:    "Split counts of saved transactions",
			Buckets: []float64{2, 3, 4, 5, 8, 12, 20},
		}),
		BalanceViolations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_balance_violations_total",
			Help: "Total number of unbalanced transactions caught at save time",
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "splitbook_accounts_created_total",
			Help: "Total number of accounts created",
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitbook_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "splitbook_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitbook_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "splitbook_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "splitbook_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitbook_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitbook_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitbook_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
