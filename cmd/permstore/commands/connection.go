// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/portal-foundation/permstore/cmd/permstore/cli"
	"github.com/portal-foundation/permstore/lib/permissionstore"
)

// busAddressEnv overrides the session bus address without a flag.
// Takes effect only when --bus-address is not given.
const busAddressEnv = "PERMSTORE_BUS_ADDRESS"

// StoreConnection manages connection parameters shared by every
// subcommand that talks to the permission store. Embedding it in a
// params struct registers --bus-address, --config, --timeout, and
// --verbose via the [cli.FlagBinder] mechanism.
//
// connect establishes the bus connection, builds the proxy, and runs
// the protocol version gate, in that order. No command call is issued
// unless the gate passes. The caller must Close the returned client
// on every exit path.
type StoreConnection struct {
	BusAddress string
	ConfigPath string
	Timeout    time.Duration
	Verbose    bool
}

// AddFlags registers the shared connection flags.
func (c *StoreConnection) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.BusAddress, "bus-address", "", "session bus address (default: the standard session bus)")
	flagSet.StringVar(&c.ConfigPath, "config", "", "config file path (default: ~/.config/permstore/config.yaml)")
	flagSet.DurationVar(&c.Timeout, "timeout", 0, "per-call timeout (0: no client-side timeout)")
	flagSet.BoolVar(&c.Verbose, "verbose", false, "enable debug logging")
}

// connect resolves the effective connection settings, dials the bus,
// and verifies the service's protocol version.
func (c *StoreConnection) connect(logger *slog.Logger) (*permissionstore.Client, error) {
	config, err := cli.LoadConfig(c.ConfigPath)
	if err != nil {
		return nil, err
	}

	address := resolveBusAddress(c.BusAddress, os.Getenv(busAddressEnv), config.BusAddress)
	if c.Timeout <= 0 && config.CallTimeout > 0 {
		c.Timeout = config.CallTimeout
	}

	client, err := permissionstore.Connect(address)
	if err != nil {
		return nil, cli.Transient("%w", err)
	}
	logger.Debug("session bus connected", "address", displayAddress(address))

	if err := client.CheckVersion(); err != nil {
		client.Close()
		return nil, err
	}
	logger.Debug("protocol version verified", "version", permissionstore.ExpectedVersion)

	return client, nil
}

// logger builds the command logger honoring --verbose.
func (c *StoreConnection) logger(command string) *slog.Logger {
	return cli.NewCommandLogger(c.Verbose).With("command", command)
}

// callContext bounds a single store call with the configured timeout.
// With no timeout configured the parent context is returned unchanged:
// once issued, a call either returns a reply or the transport reports
// failure.
func (c *StoreConnection) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(parent, c.Timeout)
	}
	return context.WithCancel(parent)
}

// resolveBusAddress picks the effective bus address: flag over
// environment over config file. Empty means the standard session bus.
func resolveBusAddress(flagValue, envValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue != "" {
		return envValue
	}
	return configValue
}

// displayAddress names the bus for log output without leaking an
// empty string into the log line.
func displayAddress(address string) string {
	if address == "" {
		return "session"
	}
	return address
}

// storeError categorizes a failed store call: the service's named
// not-found rejection becomes a not-found command error, everything
// else passes through unchanged with its call context intact.
func storeError(err error) error {
	if permissionstore.IsNotFound(err) {
		return cli.NotFound("%w", err)
	}
	return err
}
