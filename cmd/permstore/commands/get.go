// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/portal-foundation/permstore/cmd/permstore/cli"
	"github.com/portal-foundation/permstore/lib/permissionstore"
)

type getParams struct {
	StoreConnection
	cli.JSONOutput
}

func getCommand() *cli.Command {
	var params getParams

	return &cli.Command{
		Name:    "get",
		Summary: "Get one application's permissions on a resource",
		Description: `Print the permission list one application holds on a resource.

An application with no recorded grant yields an empty table, not an
error. An unknown resource is an error.`,
		Usage: "permstore get <table> <id> <app> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show a text editor's grant on a document",
				Command:     "permstore get documents doc-a1b2 org.gnome.TextEditor",
			},
			{
				Description: "Machine-readable output for scripts",
				Command:     "permstore get documents doc-a1b2 org.gnome.TextEditor --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("get", &params)
		},
		Run: func(args []string) error {
			if len(args) != 3 {
				return cli.Validation("get requires <table> <id> <app>, got %d arguments", len(args))
			}

			logger := params.logger("get")
			client, err := params.connect(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := params.callContext(context.Background())
			defer cancel()

			return runGet(ctx, client, os.Stdout, &params.JSONOutput, args[0], args[1], args[2])
		},
	}
}

func runGet(ctx context.Context, store permissionstore.Store, w io.Writer, jsonOutput *cli.JSONOutput, table, id, app string) error {
	permissions, err := store.GetPermission(ctx, table, id, app)
	if err != nil {
		return storeError(err)
	}

	if done, err := jsonOutput.EmitJSON(permissions); done {
		return err
	}

	renderPermissions(w, permissions)
	return nil
}
