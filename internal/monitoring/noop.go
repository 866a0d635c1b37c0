// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

var _ MonitorInterface = (*NoopMonitor)(nil)

type NoopMonitor struct{}

func (m *NoopMonitor) GetService() string { return "noop" }

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error { return nil }

func (m *NoopMonitor) SetDependencyAvailability(map[string]string, float64) error { return nil }

func (m *NoopMonitor) IncProvisioningStep(step, outcome string) {}

func (m *NoopMonitor) IncQuotaDecision(kind, outcome string) {}

func (m *NoopMonitor) IncIsolationFault() {}

func NewNoopMonitor() *NoopMonitor {
	return new(NoopMonitor)
}
