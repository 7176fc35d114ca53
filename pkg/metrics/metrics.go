package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса.
// Все методы безопасны для nil-получателя: если метрики выключены, вызовы ничего не делают.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBQueryErrors     *prometheus.CounterVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	ReservationTransitions *prometheus.CounterVec
	ReservationConflicts   *prometheus.CounterVec
	ReservationRejections  *prometheus.CounterVec
	Refunds                *prometheus.CounterVec
	RefundedAmount         *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open database connections",
			ConstLabels: constLabels,
		}, []string{"pool"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Database connections in use",
			ConstLabels: constLabels,
		}, []string{"pool"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle database connections",
			ConstLabels: constLabels,
		}, []string{"pool"}),
		ReservationTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_transitions_total",
			Help:        "Applied reservation status transitions",
			ConstLabels: constLabels,
		}, []string{"kind", "event", "status"}),
		ReservationConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_conflicts_total",
			Help:        "Reservation requests rejected because of an overlapping reservation",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		ReservationRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_rejections_total",
			Help:        "Reservation requests rejected by capacity rules",
			ConstLabels: constLabels,
		}, []string{"kind", "code"}),
		Refunds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "refunds_total",
			Help:        "Refunds issued through the payment provider",
			ConstLabels: constLabels,
		}, []string{"source"}),
		RefundedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "refunded_amount_total",
			Help:        "Total refunded amount",
			ConstLabels: constLabels,
		}, []string{"source"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBQueryErrors,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.ReservationTransitions,
		m.ReservationConflicts,
		m.ReservationRejections,
		m.Refunds,
		m.RefundedAmount,
	)

	return m
}

func (m *Metrics) ObserveHTTP(method, route, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveQuery(operation string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetPoolStats(pool string, open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBOpenConnections.WithLabelValues(pool).Set(float64(open))
	m.DBInUse.WithLabelValues(pool).Set(float64(inUse))
	m.DBIdle.WithLabelValues(pool).Set(float64(idle))
}

func (m *Metrics) RecordTransition(kind, event, status string) {
	if m == nil {
		return
	}
	m.ReservationTransitions.WithLabelValues(kind, event, status).Inc()
}

func (m *Metrics) RecordConflict(kind string) {
	if m == nil {
		return
	}
	m.ReservationConflicts.WithLabelValues(kind).Inc()
}

func (m *Metrics) RecordRejection(kind, code string) {
	if m == nil {
		return
	}
	m.ReservationRejections.WithLabelValues(kind, code).Inc()
}

func (m *Metrics) RecordRefund(source string, amount float64) {
	if m == nil {
		return
	}
	m.Refunds.WithLabelValues(source).Inc()
	m.RefundedAmount.WithLabelValues(source).Add(amount)
}
