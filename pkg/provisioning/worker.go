// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"context"
	"time"

	"github.com/canonical/tenant-isolation-service/internal/logging"
)

// Worker resumes interrupted jobs at startup and periodically re-scans for
// provisioning tenants whose job is not being driven, e.g. after the
// goroutine that launched them died with the process.
type Worker struct {
	orchestrator OrchestratorInterface
	interval     time.Duration

	logger logging.LoggerInterface
}

func NewWorker(orchestrator OrchestratorInterface, interval time.Duration, logger logging.LoggerInterface) *Worker {
	return &Worker{
		orchestrator: orchestrator,
		interval:     interval,
		logger:       logger,
	}
}

// Start blocks until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("provisioning worker started")

	if err := w.orchestrator.Resume(ctx); err != nil {
		w.logger.Errorf("startup resume failed: %v", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("provisioning worker stopped")
			return
		case <-ticker.C:
			if err := w.orchestrator.Resume(ctx); err != nil {
				w.logger.Errorf("resume scan failed: %v", err)
			}
		}
	}
}
