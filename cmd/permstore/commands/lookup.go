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

type lookupParams struct {
	StoreConnection
	cli.JSONOutput
}

func lookupCommand() *cli.Command {
	var params lookupParams

	return &cli.Command{
		Name:    "lookup",
		Summary: "Show a resource's full permission record",
		Description: `Print every application's grant on a resource, one row per
application, followed by the resource's associated data. The data is
opaque to this client and shown in its debug form only.

An unknown resource is an error.`,
		Usage: "permstore lookup <table> <id> [flags]",
		Examples: []cli.Example{
			{
				Description: "Show all grants on a document",
				Command:     "permstore lookup documents doc-a1b2",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("lookup", &params)
		},
		Run: func(args []string) error {
			if len(args) != 2 {
				return cli.Validation("lookup requires <table> <id>, got %d arguments", len(args))
			}

			logger := params.logger("lookup")
			client, err := params.connect(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := params.callContext(context.Background())
			defer cancel()

			return runLookup(ctx, client, os.Stdout, &params.JSONOutput, args[0], args[1])
		},
	}
}

func runLookup(ctx context.Context, store permissionstore.Store, w io.Writer, jsonOutput *cli.JSONOutput, table, id string) error {
	result, err := store.Lookup(ctx, table, id)
	if err != nil {
		return storeError(err)
	}

	if done, err := jsonOutput.EmitJSON(result); done {
		return err
	}

	renderLookup(w, result)
	return nil
}
