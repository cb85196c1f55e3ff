// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package permissionstore

import (
	"context"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// busObject is the slice of dbus.BusObject the client actually uses.
// Tests substitute a fake; production code passes the object returned
// by (*dbus.Conn).Object.
type busObject interface {
	CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call
	GetProperty(p string) (dbus.Variant, error)
}

// Client implements [Store] over a live session bus connection.
type Client struct {
	conn   *dbus.Conn
	object busObject
}

var _ Store = (*Client)(nil)

// Connect establishes a session bus connection and returns a client
// bound to the permission store object. With an empty address the
// standard session bus is used (DBUS_SESSION_BUS_ADDRESS); a non-empty
// address connects to that bus instead. The caller owns the connection
// and must Close the client on every exit path.
func Connect(address string) (*Client, error) {
	var conn *dbus.Conn
	var err error
	if address == "" {
		conn, err = dbus.ConnectSessionBus()
	} else {
		conn, err = dbus.Connect(address)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return NewClient(conn), nil
}

// NewClient binds a client to the permission store object on an
// established connection. Closing the client closes the connection.
func NewClient(conn *dbus.Conn) *Client {
	return &Client{
		conn:   conn,
		object: conn.Object(BusName, ObjectPath),
	}
}

// newClientWithObject builds a client over an arbitrary bus object,
// bypassing connection setup. Used by tests.
func newClientWithObject(object busObject) *Client {
	return &Client{object: object}
}

// Close releases the underlying bus connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// Version reads the service's advertised protocol version property.
func (c *Client) Version() (uint32, error) {
	variant, err := c.object.GetProperty(VersionProperty)
	if err != nil {
		return 0, fmt.Errorf("reading protocol version: %w", err)
	}
	version, ok := variant.Value().(uint32)
	if !ok {
		return 0, fmt.Errorf("protocol version property has type %s, want u", variant.Signature())
	}
	return version, nil
}

// CheckVersion reads the protocol version and verifies it matches
// [ExpectedVersion]. Must pass before any other call is issued; the
// check is repeated on every process invocation, never cached.
func (c *Client) CheckVersion() error {
	version, err := c.Version()
	if err != nil {
		return err
	}
	if version != ExpectedVersion {
		return &VersionMismatchError{Got: version, Want: ExpectedVersion}
	}
	return nil
}

// Delete removes all permission data for a resource.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	return c.call(ctx, "Delete", nil, table, id)
}

// DeletePermission removes one application's grant on a resource.
func (c *Client) DeletePermission(ctx context.Context, table, id, app string) error {
	return c.call(ctx, "DeletePermission", nil, table, id, app)
}

// GetPermission returns one application's permission list on a resource.
func (c *Client) GetPermission(ctx context.Context, table, id, app string) ([]string, error) {
	var permissions []string
	if err := c.call(ctx, "GetPermission", []any{&permissions}, table, id, app); err != nil {
		return nil, err
	}
	return permissions, nil
}

// List returns all resource IDs in a table, in service order.
func (c *Client) List(ctx context.Context, table string) ([]string, error) {
	var ids []string
	if err := c.call(ctx, "List", []any{&ids}, table); err != nil {
		return nil, err
	}
	return ids, nil
}

// Lookup returns the full record for a resource.
func (c *Client) Lookup(ctx context.Context, table, id string) (*LookupResult, error) {
	var raw map[string][]string
	var data dbus.Variant
	if err := c.call(ctx, "Lookup", []any{&raw, &data}, table, id); err != nil {
		return nil, err
	}
	return &LookupResult{Grants: sortedGrants(raw), Data: data}, nil
}

// SetPermission upserts one application's permission list on a resource.
func (c *Client) SetPermission(ctx context.Context, table string, create bool, id, app string, permissions []string) error {
	if permissions == nil {
		permissions = []string{}
	}
	return c.call(ctx, "SetPermission", nil, table, create, id, app, permissions)
}

// SetValue sets only a resource's associated data.
func (c *Client) SetValue(ctx context.Context, table string, create bool, id string, data dbus.Variant) error {
	return c.call(ctx, "SetValue", nil, table, create, id, data)
}

// Set atomically replaces a resource's full grant mapping and
// associated data.
func (c *Client) Set(ctx context.Context, table string, create bool, id string, permissions map[string][]string, data dbus.Variant) error {
	if permissions == nil {
		permissions = map[string][]string{}
	}
	return c.call(ctx, "Set", nil, table, create, id, permissions, data)
}

// call issues one remote method call and stores the reply into out.
// Every failure, transport or service-side, is wrapped in a *CallError
// naming the method.
func (c *Client) call(ctx context.Context, method string, out []any, args ...any) error {
	result := c.object.CallWithContext(ctx, InterfaceName+"."+method, 0, args...)
	if result.Err != nil {
		return &CallError{Method: method, Err: result.Err}
	}
	if len(out) > 0 {
		if err := result.Store(out...); err != nil {
			return &CallError{Method: method, Err: fmt.Errorf("decoding reply: %w", err)}
		}
	}
	return nil
}
