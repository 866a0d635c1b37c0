// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	provisioningSteps      *prometheus.CounterVec
	quotaDecisions         *prometheus.CounterVec
	isolationFaults        prometheus.Counter

	logger logging.LoggerInterface
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_time_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "Availability of downstream dependencies, 1 up 0 down.",
		},
		[]string{"component"},
	)

	m.provisioningSteps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenant_provisioning_steps_total",
			Help: "Provisioning step executions by step name and outcome.",
		},
		[]string{"step", "outcome"},
	)

	m.quotaDecisions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tenant_quota_decisions_total",
			Help: "Quota authorization decisions by resource kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	m.isolationFaults = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tenant_isolation_faults_total",
			Help: "Cross-tenant binding mismatches detected by the router.",
		},
	)

	m.registerMetrics()

	return m
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Observe(value)
	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	metric, err := m.dependencyAvailability.GetMetricWith(tags)
	if err != nil {
		return err
	}

	metric.Set(value)
	return nil
}

func (m *Monitor) IncProvisioningStep(step, outcome string) {
	m.provisioningSteps.WithLabelValues(step, outcome).Inc()
}

func (m *Monitor) IncQuotaDecision(kind, outcome string) {
	m.quotaDecisions.WithLabelValues(kind, outcome).Inc()
}

func (m *Monitor) IncIsolationFault() {
	m.isolationFaults.Inc()
}

func (m *Monitor) registerMetrics() {
	collectors := []prometheus.Collector{
		m.responseTime,
		m.dependencyAvailability,
		m.provisioningSteps,
		m.quotaDecisions,
		m.isolationFaults,
	}

	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			m.logger.Errorf("metric registration failed: %v", err)
		}
	}
}
