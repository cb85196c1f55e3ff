// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/portal-foundation/permstore/lib/permissionstore"
)

// Response rendering. Each renderer is a pure function over an
// io.Writer: no sorting, no deduplication, row order exactly mirrors
// the input sequence, and rendering the same value twice produces
// byte-identical output. An empty sequence renders a header-only
// table, not an error.

// renderPermissions writes one application's permission list as a
// single-column table.
func renderPermissions(w io.Writer, permissions []string) {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "PERMISSION")
	for _, permission := range permissions {
		fmt.Fprintln(table, permission)
	}
	table.Flush()
}

// renderResourceIDs writes a table's resource IDs as a single-column
// table.
func renderResourceIDs(w io.Writer, ids []string) {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "RESOURCE ID")
	for _, id := range ids {
		fmt.Fprintln(table, id)
	}
	table.Flush()
}

// renderLookup writes a resource's full record: one row per
// application grant with the permission list comma-joined in input
// order, then the associated data's debug form.
func renderLookup(w io.Writer, result *permissionstore.LookupResult) {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "APP ID\tPERMISSIONS")
	for _, grant := range result.Grants {
		fmt.Fprintf(table, "%s\t%s\n", grant.App, strings.Join(grant.Permissions, ","))
	}
	table.Flush()

	fmt.Fprintf(w, "associated data:\n%s\n", result.Data.String())
}
