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

type deleteParams struct {
	StoreConnection
}

func deleteCommand() *cli.Command {
	var params deleteParams

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete permissions for a resource",
		Description: `Delete permission data for a resource. Without an application ID,
the whole resource is removed: every application's grant plus the
associated data. With an application ID, only that application's
grant is removed; other grants and the associated data are kept.`,
		Usage: "permstore delete <table> <id> [app]",
		Examples: []cli.Example{
			{
				Description: "Remove a resource and all its grants",
				Command:     "permstore delete notifications org.gnome.Calendar",
			},
			{
				Description: "Remove one application's grant only",
				Command:     "permstore delete documents doc-a1b2 org.gnome.TextEditor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("delete", &params)
		},
		Run: func(args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return cli.Validation("delete requires <table> <id> [app], got %d arguments", len(args))
			}
			table, id := args[0], args[1]
			app := ""
			if len(args) == 3 {
				app = args[2]
				// An explicitly empty app must not silently widen the
				// call into whole-resource removal.
				if app == "" {
					return cli.Validation("application ID must not be empty")
				}
			}

			logger := params.logger("delete")
			client, err := params.connect(logger)
			if err != nil {
				return err
			}
			defer client.Close()

			ctx, cancel := params.callContext(context.Background())
			defer cancel()

			return runDelete(ctx, client, os.Stdout, table, id, app)
		},
	}
}

// runDelete picks the remote call once, from the presence of the
// optional application argument: per-application grant removal when
// app is given, whole-resource removal otherwise.
func runDelete(ctx context.Context, store permissionstore.Store, w io.Writer, table, id, app string) error {
	var err error
	if app != "" {
		err = store.DeletePermission(ctx, table, id, app)
	} else {
		err = store.Delete(ctx, table, id)
	}
	if err != nil {
		return storeError(err)
	}

	fmt.Fprintln(w, "Permissions deleted successfully")
	return nil
}
