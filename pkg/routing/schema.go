// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package routing

import (
	"strings"
)

const schemaPrefix = "tenant_"

// SchemaNameFor derives the bridge-model schema name from the tenant id
// through a fixed transformation. Only [a-z0-9_] can appear in the output,
// so the name can never smuggle structural SQL, whatever the input was.
func SchemaNameFor(tenantID string) string {
	var b strings.Builder
	b.WriteString(schemaPrefix)

	for _, c := range strings.ToLower(tenantID) {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteRune(c)
		default:
			// Dashes and anything else collapse to underscore.
			b.WriteByte('_')
		}
	}

	return b.String()
}
