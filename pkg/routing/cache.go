// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"sync"
	"time"

	"github.com/canonical/tenant-isolation-service/internal/types"
)

// Silo bindings change only through provisioning, so a short TTL plus
// explicit invalidation on any non-active observation keeps the cache safe.
const bindingTTL = 30 * time.Second

type cacheEntry struct {
	binding  types.ResourceBinding
	cachedAt time.Time
}

type bindingCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newBindingCache() *bindingCache {
	return &bindingCache{
		entries: make(map[string]cacheEntry),
	}
}

func (c *bindingCache) get(tenantID string) (*types.ResourceBinding, bool) {
	c.mu.RLock()
	entry, ok := c.entries[tenantID]
	c.mu.RUnlock()

	if !ok || time.Since(entry.cachedAt) > bindingTTL {
		return nil, false
	}

	binding := entry.binding
	return &binding, true
}

func (c *bindingCache) put(tenantID string, binding *types.ResourceBinding) {
	c.mu.Lock()
	c.entries[tenantID] = cacheEntry{binding: *binding, cachedAt: time.Now()}
	c.mu.Unlock()
}

func (c *bindingCache) invalidate(tenantID string) {
	c.mu.Lock()
	delete(c.entries, tenantID)
	c.mu.Unlock()
}
