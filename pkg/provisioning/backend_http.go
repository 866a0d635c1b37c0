// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
)

var _ BackendInterface = (*HTTPBackend)(nil)

// HTTPBackend invokes the external infrastructure executor over HTTP. The
// executor owns the actual IaC work; this client only classifies outcomes.
type HTTPBackend struct {
	client *resty.Client

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

type stepRequest struct {
	Step     string            `json:"step"`
	TenantID string            `json:"tenant_id"`
	Params   map[string]string `json:"params,omitempty"`
}

type stepResponse struct {
	SchemaName        string `json:"schema_name,omitempty"`
	DedicatedEndpoint string `json:"dedicated_endpoint,omitempty"`
	CredentialRef     string `json:"credential_ref,omitempty"`
	NetworkRef        string `json:"network_ref,omitempty"`
	Error             string `json:"error,omitempty"`
}

func NewHTTPBackend(baseURL string, tracer tracing.TracingInterface, logger logging.LoggerInterface) *HTTPBackend {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(5 * time.Minute).
		SetHeader("Content-Type", "application/json")

	return &HTTPBackend{
		client: client,
		tracer: tracer,
		logger: logger,
	}
}

// ExecuteStep maps transport and 5xx/429 failures to retryable errors and
// other 4xx responses to fatal ones. Idempotency for a (step, tenant) pair
// is part of the executor's contract.
func (b *HTTPBackend) ExecuteStep(ctx context.Context, step, tenantID string, params map[string]string) (*StepResult, error) {
	ctx, span := b.tracer.Start(ctx, "provisioning.HTTPBackend.ExecuteStep")
	defer span.End()

	var out stepResponse
	resp, err := b.client.R().
		SetContext(ctx).
		SetBody(stepRequest{Step: step, TenantID: tenantID, Params: params}).
		SetResult(&out).
		Post("/v0/steps")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStepRetryable, err)
	}

	switch {
	case resp.IsSuccess():
		return &StepResult{
			SchemaName:        out.SchemaName,
			DedicatedEndpoint: out.DedicatedEndpoint,
			CredentialRef:     out.CredentialRef,
			NetworkRef:        out.NetworkRef,
		}, nil
	case resp.StatusCode() >= http.StatusInternalServerError, resp.StatusCode() == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: backend status %d: %s", ErrStepRetryable, resp.StatusCode(), out.Error)
	default:
		return nil, fmt.Errorf("%w: backend status %d: %s", ErrStepFatal, resp.StatusCode(), out.Error)
	}
}
