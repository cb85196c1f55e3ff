// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/portal-foundation/permstore/cmd/permstore/cli"
	"github.com/portal-foundation/permstore/lib/permissionstore"
)

type setParams struct {
	StoreConnection
	Create bool `flag:"create,c" desc:"create the resource if it does not exist"`
}

func setCommand() *cli.Command {
	var params setParams

	return &cli.Command{
		Name:    "set",
		Summary: "Set one application's permissions on a resource",
		Description: `Replace the permission list one application holds on a resource.
Giving no permission strings clears the grant.

Without --create an unknown resource is an error. With --create the
resource is created first, with empty associated data.`,
		Usage: "permstore set [-c|--create] <table> <id> <app> [permissions...]",
		Examples: []cli.Example{
			{
				Description: "Grant read and write on a document",
				Command:     "permstore set documents doc-a1b2 org.gnome.TextEditor read write",
			},
			{
				Description: "Create the resource while granting",
				Command:     "permstore set --create notifications org.gnome.Calendar org.gnome.Shell yes",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("set", &params)
		},
		Run: func(args []string) error {
			if len(args) < 3 {
				return cli.Validation("set requires <table> <id> <app> [permissions...], got %d arguments", len(args))
			}
			table, id, app := args[0], args[1], args[2]
			permissions := args[3:]

			logger := params.logger("set")
			client, err := params.connect(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := params.callContext(context.Background())
			defer cancel()

			return runSet(ctx, client, os.Stdout, table, params.Create, id, app, permissions)
		},
	}
}

func runSet(ctx context.Context, store permissionstore.Store, w io.Writer, table string, create bool, id, app string, permissions []string) error {
	if err := store.SetPermission(ctx, table, create, id, app, permissions); err != nil {
		return storeError(err)
	}

	fmt.Fprintln(w, "Permissions set successfully")
	return nil
}
