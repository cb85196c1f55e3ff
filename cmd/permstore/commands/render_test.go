// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/godbus/dbus/v5"

	"github.com/portal-foundation/permstore/lib/permissionstore"
)

func TestRenderPermissions_PreservesInputOrder(t *testing.T) {
	var out bytes.Buffer
	renderPermissions(&out, []string{"write", "read"})

	lines := nonEmptyLines(out.String())
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3 (header + 2 rows):\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "PERMISSION") {
		t.Errorf("header = %q, want PERMISSION", lines[0])
	}
	// No sorting: write stays before read.
	if !strings.Contains(lines[1], "write") || !strings.Contains(lines[2], "read") {
		t.Errorf("rows = %v, want [write read] in input order", lines[1:])
	}
}

func TestRenderPermissions_EmptyIsHeaderOnly(t *testing.T) {
	var out bytes.Buffer
	renderPermissions(&out, nil)

	lines := nonEmptyLines(out.String())
	if len(lines) != 1 {
		t.Fatalf("rendered %d lines, want header only:\n%s", len(lines), out.String())
	}
}

func TestRenderResourceIDs_EmptyIsHeaderOnly(t *testing.T) {
	var out bytes.Buffer
	renderResourceIDs(&out, []string{})

	lines := nonEmptyLines(out.String())
	if len(lines) != 1 || !strings.Contains(lines[0], "RESOURCE ID") {
		t.Fatalf("output = %q, want a single RESOURCE ID header line", out.String())
	}
}

func TestRenderResourceIDs_PreservesInputOrder(t *testing.T) {
	var out bytes.Buffer
	renderResourceIDs(&out, []string{"doc-b", "doc-a", "doc-b"})

	lines := nonEmptyLines(out.String())
	// No deduplication: the duplicate row stays.
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4:\n%s", len(lines), out.String())
	}
	want := []string{"doc-b", "doc-a", "doc-b"}
	for i, id := range want {
		if !strings.Contains(lines[i+1], id) {
			t.Errorf("row %d = %q, want %q", i, lines[i+1], id)
		}
	}
}

func TestRenderLookup_RowsAndAssociatedData(t *testing.T) {
	result := &permissionstore.LookupResult{
		Grants: []permissionstore.Grant{
			{App: "org.app.A", Permissions: []string{"read"}},
			{App: "org.app.B", Permissions: []string{"read", "write"}},
		},
		Data: dbus.MakeVariant("X"),
	}

	var out bytes.Buffer
	renderLookup(&out, result)
	output := out.String()

	lines := nonEmptyLines(output)
	// Header + two grant rows + "associated data:" + the debug form.
	if len(lines) != 5 {
		t.Fatalf("rendered %d lines, want 5:\n%s", len(lines), output)
	}
	if !strings.Contains(lines[0], "APP ID") || !strings.Contains(lines[0], "PERMISSIONS") {
		t.Errorf("header = %q, want APP ID and PERMISSIONS columns", lines[0])
	}
	if !strings.Contains(lines[1], "org.app.A") {
		t.Errorf("row 1 = %q, want org.app.A", lines[1])
	}
	// Comma-joined, input order preserved.
	if !strings.Contains(lines[2], "read,write") {
		t.Errorf("row 2 = %q, want permissions cell read,write", lines[2])
	}
	if lines[3] != "associated data:" {
		t.Errorf("line 4 = %q, want %q", lines[3], "associated data:")
	}
	if !strings.Contains(lines[4], dbus.MakeVariant("X").String()) {
		t.Errorf("line 5 = %q, want the variant debug form %q", lines[4], dbus.MakeVariant("X").String())
	}
}

func TestRender_Idempotence(t *testing.T) {
	result := &permissionstore.LookupResult{
		Grants: []permissionstore.Grant{
			{App: "org.app.B", Permissions: []string{"write", "read"}},
			{App: "org.app.A", Permissions: []string{"read"}},
		},
		Data: dbus.MakeVariant(uint32(42)),
	}

	renderTwice := func(render func(*bytes.Buffer)) (string, string) {
		var first, second bytes.Buffer
		render(&first)
		render(&second)
		return first.String(), second.String()
	}

	t.Run("lookup", func(t *testing.T) {
		first, second := renderTwice(func(b *bytes.Buffer) { renderLookup(b, result) })
		if first != second {
			t.Errorf("renders differ:\n%q\nvs\n%q", first, second)
		}
	})
	t.Run("permissions", func(t *testing.T) {
		first, second := renderTwice(func(b *bytes.Buffer) { renderPermissions(b, []string{"read", "write"}) })
		if first != second {
			t.Errorf("renders differ:\n%q\nvs\n%q", first, second)
		}
	})
	t.Run("resource ids", func(t *testing.T) {
		first, second := renderTwice(func(b *bytes.Buffer) { renderResourceIDs(b, []string{"doc-1"}) })
		if first != second {
			t.Errorf("renders differ:\n%q\nvs\n%q", first, second)
		}
	})
}

// nonEmptyLines splits rendered output into lines, dropping the
// trailing newline artifact.
func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
