// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

// Package permissionstore is a typed client for the desktop portal
// permission store, the session D-Bus service that backs per-application
// permission grants (org.freedesktop.impl.portal.PermissionStore).
//
// The service organizes records into named tables. Each record is keyed
// by a resource ID and holds a mapping from application ID to a list of
// granted permission strings, plus one opaque associated data value.
// All strings are opaque to this client; the service is authoritative.
//
// [Store] exposes one method per remote operation. [Client] implements
// it over a live bus connection; construct one with [NewClient] after
// [Connect], and run [Client.CheckVersion] before issuing any call —
// the client speaks exactly protocol version [ExpectedVersion] and
// refuses to talk to anything else.
//
// The client performs no caching, no retries, and no interpretation of
// associated data. Each process invocation is expected to make exactly
// one logical call and exit.
package permissionstore
