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

type listParams struct {
	StoreConnection
	cli.JSONOutput
}

func listCommand() *cli.Command {
	var params listParams

	return &cli.Command{
		Name:    "list",
		Summary: "List resource IDs in a table",
		Description: `Print every resource ID known in the named table, in the order the
service returns them. An empty or newly created table yields an
empty table, not an error.`,
		Usage: "permstore list <table> [flags]",
		Examples: []cli.Example{
			{
				Description: "List all resources in the notifications table",
				Command:     "permstore list notifications",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("list", &params)
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("list requires <table>, got %d arguments", len(args))
			}

			logger := params.logger("list")
			client, err := params.connect(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := params.callContext(context.Background())
			defer cancel()

			return runList(ctx, client, os.Stdout, &params.JSONOutput, args[0])
		},
	}
}

func runList(ctx context.Context, store permissionstore.Store, w io.Writer, jsonOutput *cli.JSONOutput, table string) error {
	ids, err := store.List(ctx, table)
	if err != nil {
		return storeError(err)
	}

	if done, err := jsonOutput.EmitJSON(ids); done {
		return err
	}

	renderResourceIDs(w, ids)
	return nil
}
