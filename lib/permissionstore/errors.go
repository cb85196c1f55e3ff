// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package permissionstore

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// CallError is returned when a remote operation fails, whether the
// fault is transport-level (connection lost, malformed reply) or a
// service-side rejection (unknown table, missing resource, permission
// denied). It names the failed operation and wraps the underlying
// error so the service's error detail stays inspectable via errors.As.
type CallError struct {
	// Method is the remote method name without the interface prefix
	// (e.g., "Lookup").
	Method string

	// Err is the underlying bus or service error.
	Err error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("permission store %s: %v", e.Method, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// IsServiceError reports whether err originated from the remote
// service rather than the local transport. Service rejections arrive
// as named D-Bus errors; transport faults do not.
func IsServiceError(err error) bool {
	var busError dbus.Error
	return errors.As(err, &busError)
}

// notFoundErrorName is the named bus error the portal raises when a
// table or resource does not exist.
const notFoundErrorName = "org.freedesktop.portal.Error.NotFound"

// IsNotFound reports whether err is the service's named not-found
// rejection: an unknown table, or an unknown resource ID in a call
// that requires an existing one.
func IsNotFound(err error) bool {
	var busError dbus.Error
	return errors.As(err, &busError) && busError.Name == notFoundErrorName
}

// VersionMismatchError is returned by CheckVersion when the service
// advertises a protocol version this client does not speak. Both
// values are carried for diagnosis.
type VersionMismatchError struct {
	Got  uint32
	Want uint32
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("permission store speaks protocol version %d, this client requires version %d",
		e.Got, e.Want)
}
