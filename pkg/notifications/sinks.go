// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/internal/types"
)

var (
	_ SinkInterface = (*LogSink)(nil)
	_ SinkInterface = (*WebhookSink)(nil)
	_ SinkInterface = (MultiSink)(nil)
)

// LogSink writes lifecycle events to the service log.
type LogSink struct {
	logger logging.LoggerInterface
}

func NewLogSink(logger logging.LoggerInterface) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(_ context.Context, event types.LifecycleEvent) {
	s.logger.Infof("tenant %s transitioned %s -> %s", event.TenantID, event.From, event.To)
}

// WebhookSink POSTs lifecycle events to a collaborator endpoint.
type WebhookSink struct {
	client *resty.Client
	url    string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewWebhookSink(url string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *WebhookSink {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	return &WebhookSink{
		client: client,
		url:    url,
		tracer: tracer,
		logger: logger,
	}
}

func (s *WebhookSink) Emit(ctx context.Context, event types.LifecycleEvent) {
	ctx, span := s.tracer.Start(ctx, "notifications.WebhookSink.Emit")
	defer span.End()

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(event).
		Post(s.url)
	if err != nil {
		s.logger.Errorf("failed to deliver lifecycle event for tenant %s: %v", event.TenantID, err)
		return
	}

	if resp.IsError() {
		s.logger.Errorf("lifecycle event for tenant %s rejected with status %d", event.TenantID, resp.StatusCode())
	}
}

// MultiSink fans one event out to every configured sink.
type MultiSink []SinkInterface

func (s MultiSink) Emit(ctx context.Context, event types.LifecycleEvent) {
	for _, sink := range s {
		sink.Emit(ctx, event)
	}
}
