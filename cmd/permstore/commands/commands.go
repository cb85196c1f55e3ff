// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the permstore CLI command tree. Each
// subcommand issues exactly one permission store call per invocation:
// connect, verify the protocol version, call, render, exit.
package commands

import (
	"github.com/portal-foundation/permstore/cmd/permstore/cli"
)

// Root builds and returns the complete permstore command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "permstore",
		Description: `permstore: command-line client for the desktop permission store.

Inspect and modify per-application permission grants held by the
portal permission store service on the session bus. Records live in
named tables, keyed by resource ID, each mapping application IDs to
permission lists plus one opaque associated data value.`,
		Subcommands: []*cli.Command{
			deleteCommand(),
			getCommand(),
			listCommand(),
			lookupCommand(),
			setCommand(),
			versionCommand(),
		},
	}
}
