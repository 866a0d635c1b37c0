// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package provisioning

import (
	"errors"
)

var (
	// ErrStepRetryable marks transient backend failures; the orchestrator
	// retries them with backoff up to the attempt budget.
	ErrStepRetryable = errors.New("retryable provisioning step failure")
	// ErrStepFatal marks failures that retrying cannot fix; the job stops
	// and the tenant transitions to failed.
	ErrStepFatal = errors.New("fatal provisioning step failure")
	// ErrJobTimeout means the job's overall deadline passed, regardless of
	// the retry budget left on the current step.
	ErrJobTimeout = errors.New("provisioning job deadline exceeded")
)
