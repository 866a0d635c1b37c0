// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/tenant-isolation-service/internal/config"
	"github.com/canonical/tenant-isolation-service/internal/db"
	"github.com/canonical/tenant-isolation-service/internal/logging"
	"github.com/canonical/tenant-isolation-service/internal/monitoring/prometheus"
	"github.com/canonical/tenant-isolation-service/internal/registry"
	"github.com/canonical/tenant-isolation-service/internal/tracing"
	"github.com/canonical/tenant-isolation-service/pkg/notifications"
	"github.com/canonical/tenant-isolation-service/pkg/onboarding"
	"github.com/canonical/tenant-isolation-service/pkg/provisioning"
	"github.com/canonical/tenant-isolation-service/pkg/quota"
	"github.com/canonical/tenant-isolation-service/pkg/routing"
	"github.com/canonical/tenant-isolation-service/pkg/tenantctx"
	"github.com/canonical/tenant-isolation-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("tenant-isolation-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	reg := registry.NewRegistry(dbClient, tracer, monitor, logger)

	resolver := tenantctx.NewResolver(reg, specs.RegistryTimeout, tracer, monitor, logger)
	tenantMiddleware := tenantctx.NewMiddleware(resolver, tracer, monitor, logger)

	isolationRouter := routing.NewRouter(reg, tracer, monitor, logger)
	enforcer := quota.NewEnforcer(reg, tracer, monitor, logger)

	var backend provisioning.BackendInterface = provisioning.NewLocalBackend(reg, tracer, logger)
	if specs.ProvisioningBackendURL != "" {
		backend = provisioning.NewCompositeBackend(
			backend,
			provisioning.NewHTTPBackend(specs.ProvisioningBackendURL, tracer, logger),
		)
		logger.Infof("Using provisioning backend at %s", specs.ProvisioningBackendURL)
	} else {
		logger.Info("No provisioning backend configured, silo steps will fail")
	}

	sink := notifications.MultiSink{notifications.NewLogSink(logger)}
	if specs.NotificationWebhookURL != "" {
		sink = append(sink, notifications.NewWebhookSink(specs.NotificationWebhookURL, tracer, logger))
	}

	orchestrator := provisioning.NewOrchestrator(
		reg,
		backend,
		sink,
		isolationRouter,
		provisioning.Config{
			StepTimeout:    specs.ProvisioningStepTimeout,
			JobTimeout:     specs.ProvisioningJobTimeout,
			MaxAttempts:    specs.ProvisioningMaxAttempts,
			InitialBackoff: specs.ProvisioningInitialBackoff,
		},
		tracer,
		monitor,
		logger,
	)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if specs.ProvisioningWorkerEnabled {
		worker := provisioning.NewWorker(orchestrator, time.Minute, logger)
		go worker.Start(workerCtx)
	}

	service := onboarding.NewService(reg, orchestrator, enforcer, tracer, monitor, logger)

	router := web.NewRouter(
		dbClient,
		service,
		isolationRouter,
		enforcer,
		tenantMiddleware,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
