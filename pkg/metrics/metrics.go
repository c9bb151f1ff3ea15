package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы Prometheus сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	CMSRequestsTotal   *prometheus.CounterVec
	CMSRequestDuration *prometheus.HistogramVec

	BookingsLoaded       prometheus.Gauge
	RefreshFailuresTotal prometheus.Counter
	StatusChangesTotal   *prometheus.CounterVec
	WebSocketClients     prometheus.Gauge

	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// New регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer регистрирует метрики в переданном registerer (для тестов - отдельный registry)
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		CMSRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "cms_requests_total",
			Help:        "Total number of requests to the CMS backend",
			ConstLabels: labels,
		}, []string{"operation", "result"}),

		CMSRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "cms_request_duration_seconds",
			Help:        "Duration of requests to the CMS backend",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		BookingsLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dashboard_bookings_loaded",
			Help:        "Number of bookings in the current in-memory list",
			ConstLabels: labels,
		}),

		RefreshFailuresTotal: factory.NewCounter(prometheus.CounterOpts{
			Name:        "dashboard_refresh_failures_total",
			Help:        "Total number of failed booking list refreshes",
			ConstLabels: labels,
		}),

		StatusChangesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "dashboard_status_changes_total",
			Help:        "Total number of booking status changes by target status and result",
			ConstLabels: labels,
		}, []string{"status", "result"}),

		WebSocketClients: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "dashboard_websocket_clients",
			Help:        "Number of connected notification websocket clients",
			ConstLabels: labels,
		}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries by operation and result",
			ConstLabels: labels,
		}, []string{"operation", "result"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duration of database queries",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// ObserveHTTPRequest учитывает входящий HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveCMSRequest учитывает запрос к CMS
func (m *Metrics) ObserveCMSRequest(operation, result string, duration time.Duration) {
	m.CMSRequestsTotal.WithLabelValues(operation, result).Inc()
	m.CMSRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveRefresh учитывает результат загрузки списка бронирований
func (m *Metrics) ObserveRefresh(loaded int, err error) {
	if err != nil {
		m.RefreshFailuresTotal.Inc()
		return
	}
	m.BookingsLoaded.Set(float64(loaded))
}

// ObserveStatusChange учитывает смену статуса бронирования
func (m *Metrics) ObserveStatusChange(status, result string) {
	m.StatusChangesTotal.WithLabelValues(status, result).Inc()
}

// ObserveDBQuery учитывает запрос к базе
func (m *Metrics) ObserveDBQuery(operation, result string, duration time.Duration) {
	m.DBQueriesTotal.WithLabelValues(operation, result).Inc()
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
