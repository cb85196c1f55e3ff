// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/portal-foundation/permstore/cmd/permstore/cli"
	"github.com/portal-foundation/permstore/lib/permissionstore"
)

type versionParams struct {
	StoreConnection
}

func versionCommand() *cli.Command {
	var params versionParams

	return &cli.Command{
		Name:    "version",
		Summary: "Show client and service protocol versions",
		Description: `Print the protocol version this client speaks and, when the service
is reachable, the version it advertises. This is the only command
that reports a version mismatch instead of refusing to run.`,
		Usage: "permstore version [flags]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("version", &params)
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			fmt.Printf("client protocol version: %d\n", permissionstore.ExpectedVersion)

			config, err := cli.LoadConfig(params.ConfigPath)
			if err != nil {
				return err
			}
			address := resolveBusAddress(params.BusAddress, os.Getenv(busAddressEnv), config.BusAddress)

			client, err := permissionstore.Connect(address)
			if err != nil {
				fmt.Fprintf(os.Stderr, "permission store unreachable: %v\n", err)
				return nil
			}
			defer client.Close()

			serverVersion, err := client.Version()
			if err != nil {
				fmt.Fprintf(os.Stderr, "reading service version: %v\n", err)
				return nil
			}

			fmt.Printf("service protocol version: %d\n", serverVersion)
			if serverVersion != permissionstore.ExpectedVersion {
				// The diagnostic above is the full report; signal the
				// mismatch through the exit status without a redundant
				// error line.
				fmt.Fprintln(os.Stderr, "versions differ: every other command will refuse to run")
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}
