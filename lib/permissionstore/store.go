// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package permissionstore

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/godbus/dbus/v5"
)

// Fixed identifiers of the portal permission store on the session bus.
const (
	// BusName is the well-known bus name the service claims.
	BusName = "org.freedesktop.impl.portal.PermissionStore"

	// ObjectPath is the well-known object path of the store object.
	ObjectPath = dbus.ObjectPath("/org/freedesktop/impl/portal/PermissionStore")

	// InterfaceName is the D-Bus interface implemented by the store.
	InterfaceName = "org.freedesktop.impl.portal.PermissionStore"

	// VersionProperty is the fully qualified name of the read-only
	// protocol version property. The property name is lowercase on the
	// wire, unlike the PascalCase method names.
	VersionProperty = InterfaceName + ".version"
)

// ExpectedVersion is the single protocol version this client
// understands. CheckVersion refuses to proceed against any other value.
const ExpectedVersion uint32 = 2

// Grant is one application's permission list on a resource. Permission
// order is preserved as returned by the service; callers must treat
// the list as a set but re-display it in this order.
type Grant struct {
	App         string   `json:"app"`
	Permissions []string `json:"permissions"`
}

// LookupResult is the full record for one resource: every
// application's grant plus the resource's associated data.
//
// The service transmits grants as a D-Bus dict, whose key order is
// unspecified and not stable across calls. The client sorts grants by
// application ID once at decode time so repeated renders of the same
// result are byte-identical.
type LookupResult struct {
	Grants []Grant

	// Data is the resource's associated data, opaque to this client.
	// Only its debug representation (dbus.Variant.String) is ever
	// shown; the client never interprets the contents.
	Data dbus.Variant
}

// MarshalJSON serializes the record with the associated data in its
// debug form. dbus.Variant has no exported fields, so the default
// marshalling would silently reduce the data to {}.
func (r *LookupResult) MarshalJSON() ([]byte, error) {
	grants := r.Grants
	if grants == nil {
		grants = []Grant{}
	}
	return json.Marshal(struct {
		Grants []Grant `json:"grants"`
		Data   string  `json:"data"`
	}{Grants: grants, Data: r.Data.String()})
}

// Store is the remote interface of the permission store, one method
// per remote operation. Every method other than Version takes a
// context covering the single bus round-trip, and every method is
// independently fallible: transport faults and service-side rejections
// both surface as a *CallError.
type Store interface {
	// Version reads the service's advertised protocol version.
	Version() (uint32, error)

	// Delete removes all permission data for a resource across all
	// applications, including its associated data.
	Delete(ctx context.Context, table, id string) error

	// DeletePermission removes only the named application's grant on
	// the resource, leaving other grants and the associated data intact.
	DeletePermission(ctx context.Context, table, id, app string) error

	// GetPermission returns the application's permission list on the
	// resource. An application with no recorded grant yields an empty
	// list, not an error; a missing resource is an error.
	GetPermission(ctx context.Context, table, id, app string) ([]string, error)

	// List returns all resource IDs known in the table, in service
	// order. An empty or newly created table yields an empty list.
	List(ctx context.Context, table string) ([]string, error)

	// Lookup returns the full record for a resource. A missing
	// resource is an error.
	Lookup(ctx context.Context, table, id string) (*LookupResult, error)

	// SetPermission upserts one application's permission list on one
	// resource. With create false, a missing resource is an error;
	// with create true, the resource is created with empty associated
	// data.
	SetPermission(ctx context.Context, table string, create bool, id, app string, permissions []string) error

	// SetValue sets only the resource's associated data, independent
	// of any per-application grant.
	SetValue(ctx context.Context, table string, create bool, id string, data dbus.Variant) error

	// Set atomically replaces the full per-application permission
	// mapping and the associated data in one call.
	Set(ctx context.Context, table string, create bool, id string, permissions map[string][]string, data dbus.Variant) error
}

// sortedGrants converts the wire-format grant dict into a
// deterministically ordered slice. Permission lists inside each grant
// keep their wire order.
func sortedGrants(raw map[string][]string) []Grant {
	grants := make([]Grant, 0, len(raw))
	for app, permissions := range raw {
		grants = append(grants, Grant{App: app, Permissions: permissions})
	}
	sort.Slice(grants, func(i, j int) bool { return grants[i].App < grants[j].App })
	return grants
}
