// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registry

import (
	"context"
	"fmt"
	"regexp"
)

// Schema identifiers are produced by a fixed transformation of the tenant id
// and re-validated here before they are ever placed in structural SQL.
// Arbitrary admin-supplied text never reaches an identifier position.
var schemaNamePattern = regexp.MustCompile(`^tenant_[a-z0-9_]+$`)

var ErrInvalidSchemaName = fmt.Errorf("schema name outside the allowed alphabet")

// CreateTenantSchema creates the bridge-model schema. Idempotent.
func (r *Registry) CreateTenantSchema(ctx context.Context, schemaName string) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.CreateTenantSchema")
	defer span.End()

	if !schemaNamePattern.MatchString(schemaName) {
		return ErrInvalidSchemaName
	}

	if err := r.db.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)); err != nil {
		return fmt.Errorf("failed to create schema %s: %w", schemaName, err)
	}

	return nil
}

// SeedTenantSchema creates the baseline structures inside a bridge schema.
// Safe to re-run against a partially created schema.
func (r *Registry) SeedTenantSchema(ctx context.Context, schemaName string) error {
	ctx, span := r.tracer.Start(ctx, "registry.Registry.SeedTenantSchema")
	defer span.End()

	if !schemaNamePattern.MatchString(schemaName) {
		return ErrInvalidSchemaName
	}

	seeds := []string{
		`CREATE TABLE IF NOT EXISTS %s.products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS %s.orders (
			id TEXT PRIMARY KEY,
			product_id TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, seed := range seeds {
		if err := r.db.Exec(ctx, fmt.Sprintf(seed, schemaName)); err != nil {
			return fmt.Errorf("failed to seed schema %s: %w", schemaName, err)
		}
	}

	return nil
}
