// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/hostelbilling/internal/models"
)

const namespace = "hostelbilling"

// Metrics holds every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	RPCRequests  *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	Payments     *prometheus.CounterVec
	PaidAmount   prometheus.Counter
	Outstanding  prometheus.Gauge
	BillsByState *prometheus.GaugeVec
	Reminders    prometheus.Counter
}

// New creates and registers all collectors, including the Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		Payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Bills paid, by payment method key.",
		}, []string{"method"}),
		PaidAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "paid_amount_total",
			Help:      "Sum of amounts paid through this server.",
		}),
		Outstanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "outstanding_amount",
			Help:      "Sum of pending and overdue bill amounts at the last refresh.",
		}),
		BillsByState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bills",
			Help:      "Bill count by derived status at the last refresh.",
		}, []string{"status"}),
		Reminders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reminders_sent_total",
			Help:      "Due-soon reminders emitted by the reminder job.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RPCRequests,
		m.RPCDuration,
		m.Payments,
		m.PaidAmount,
		m.Outstanding,
		m.BillsByState,
		m.Reminders,
	)
	return m
}

// ObserveStats refreshes the ledger gauges from a stats snapshot.
func (m *Metrics) ObserveStats(stats models.DashboardStats) {
	m.Outstanding.Set(stats.TotalOutstanding.Float64())
	m.BillsByState.WithLabelValues(string(models.StatusPaid)).Set(float64(stats.Paid))
	m.BillsByState.WithLabelValues(string(models.StatusPending)).Set(float64(stats.Pending))
	m.BillsByState.WithLabelValues(string(models.StatusOverdue)).Set(float64(stats.Overdue))
}

// ObservePayment records one successful payment.
func (m *Metrics) ObservePayment(method string, amount models.Amount) {
	m.Payments.WithLabelValues(method).Inc()
	m.PaidAmount.Add(amount.Float64())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
