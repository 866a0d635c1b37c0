// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/tenant-isolation-service/internal/db"
	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/pkg/metrics"
	"github.com/canonical/tenant-isolation-service/pkg/onboarding"
	"github.com/canonical/tenant-isolation-service/pkg/quota"
	"github.com/canonical/tenant-isolation-service/pkg/routing"
	"github.com/canonical/tenant-isolation-service/pkg/status"
	"github.com/canonical/tenant-isolation-service/pkg/tenantctx"
)

func NewRouter(
	dbClient db.DBClientInterface,
	service onboarding.ServiceInterface,
	router routing.RouterInterface,
	enforcer quota.EnforcerInterface,
	tenantMiddleware *tenantctx.Middleware,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	mux := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	mux.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(mux)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(mux)
	onboarding.NewAPI(service, logger).RegisterEndpoints(mux)

	// Data-plane endpoints require a resolved tenant context. Mutations run
	// inside a request-scoped transaction; onboarding stays outside it, its
	// tenant row must be visible to the detached provisioning job.
	mux.Group(func(r chi.Router) {
		r.Use(tenantMiddleware.HTTPMiddleware)
		r.Use(db.TransactionMiddleware(dbClient, logger))
		routing.NewAPI(router, logger).RegisterEndpoints(r)
		quota.NewAPI(enforcer, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(mux)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		},
	)
}
