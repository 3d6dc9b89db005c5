package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса на собственном registry
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// DB
	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections prometheus.Gauge
	DBInUse           prometheus.Gauge
	DBIdle            prometheus.Gauge
	DBWaitCount       prometheus.Gauge

	// Бизнес-метрики
	BookingsTotal      *prometheus.CounterVec
	NotificationsTotal *prometheus.CounterVec
	IndexReloadsTotal  *prometheus.CounterVec
	IndexBookedSlots   prometheus.Gauge
	InquiriesTotal     *prometheus.CounterVec
}

// New регистрирует все метрики с префиксом serviceName
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "db_query_duration_seconds",
			Help:      "Database query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation", "status"}),
		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_open_connections",
			Help:      "Number of established connections",
		}),
		DBInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_in_use_connections",
			Help:      "Number of connections currently in use",
		}),
		DBIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_idle_connections",
			Help:      "Number of idle connections",
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "db_wait_count",
			Help:      "Total number of connections waited for",
		}),
		BookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "demo_bookings_total",
			Help:      "Demo booking submissions by outcome",
		}, []string{"outcome"}),
		NotificationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "notifications_total",
			Help:      "Outgoing e-mail notifications by kind and result",
		}, []string{"kind", "result"}),
		IndexReloadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "availability_index_reloads_total",
			Help:      "Availability index reloads by result",
		}, []string{"result"}),
		IndexBookedSlots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "availability_index_booked_slots",
			Help:      "Number of booked slots in the availability index",
		}),
		InquiriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "inquiries_total",
			Help:      "Contact messages and registrations by kind and outcome",
		}, []string{"kind", "outcome"}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.BookingsTotal,
		m.NotificationsTotal,
		m.IndexReloadsTotal,
		m.IndexBookedSlots,
		m.InquiriesTotal,
	)

	return m
}

// Handler HTTP handler для scrape
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry нужен тестам для чтения значений
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Все Record* безопасны для nil receiver: метрики могут быть выключены в конфиге

func (m *Metrics) RecordBooking(outcome string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordNotification(kind, result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) RecordIndexReload(result string, size int) {
	if m == nil {
		return
	}
	m.IndexReloadsTotal.WithLabelValues(result).Inc()
	if result == ResultSuccess {
		m.IndexBookedSlots.Set(float64(size))
	}
}

func (m *Metrics) RecordInquiry(kind, outcome string) {
	if m == nil {
		return
	}
	m.InquiriesTotal.WithLabelValues(kind, outcome).Inc()
}

// Значения лейблов
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	OutcomeCreated       = "created"
	OutcomePartial       = "partial"
	OutcomeConflict      = "conflict"
	OutcomeInvalid       = "invalid"
	OutcomeFailed        = "failed"
	OutcomeNotifyRetried = "notification_retried"
)
