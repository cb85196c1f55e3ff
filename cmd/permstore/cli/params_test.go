// Copyright 2026 The Permstore Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestBindFlags_BasicTypes(t *testing.T) {
	type params struct {
		Table   string        `flag:"table" desc:"table name" default:"documents"`
		Create  bool          `flag:"create,c" desc:"create the resource"`
		Count   int           `flag:"count" default:"5"`
		Timeout time.Duration `flag:"timeout" default:"30s"`
		Grants  []string      `flag:"grants" default:"read,write"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if err := flagSet.Parse([]string{"--create", "--timeout", "10s"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if p.Table != "documents" {
		t.Errorf("Table = %q, want default %q", p.Table, "documents")
	}
	if !p.Create {
		t.Error("Create = false, want true")
	}
	if p.Count != 5 {
		t.Errorf("Count = %d, want default 5", p.Count)
	}
	if p.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", p.Timeout)
	}
	if len(p.Grants) != 2 || p.Grants[0] != "read" || p.Grants[1] != "write" {
		t.Errorf("Grants = %v, want [read write]", p.Grants)
	}
}

func TestBindFlags_Shorthand(t *testing.T) {
	type params struct {
		Create bool `flag:"create,c" desc:"create the resource"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if err := flagSet.Parse([]string{"-c"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !p.Create {
		t.Error("Create = false, want true via -c shorthand")
	}
}

func TestBindFlags_SkipsUntaggedFields(t *testing.T) {
	type params struct {
		Table    string `flag:"table"`
		internal int
		Ignored  string
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	count := 0
	flagSet.VisitAll(func(f *pflag.Flag) { count++ })
	if count != 1 {
		t.Errorf("bound %d flags, want 1", count)
	}
	_ = p.internal
}

// BinderParams is exported so BindFlags can reach its AddFlags method
// through reflection, matching how real connection types embed.
type BinderParams struct {
	BusAddress string
}

func (b *BinderParams) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&b.BusAddress, "bus-address", "", "session bus address")
}

func TestBindFlags_EmbeddedFlagBinder(t *testing.T) {
	type params struct {
		BinderParams
		Create bool `flag:"create"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err != nil {
		t.Fatalf("BindFlags() error: %v", err)
	}

	if err := flagSet.Parse([]string{"--bus-address", "unix:path=/tmp/bus", "--create"}); err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.BusAddress != "unix:path=/tmp/bus" {
		t.Errorf("BusAddress = %q, want the flag value", p.BusAddress)
	}
	if !p.Create {
		t.Error("Create = false, want true")
	}
}

func TestBindFlags_RejectsNonPointer(t *testing.T) {
	type params struct{}
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(params{}, flagSet); err == nil {
		t.Fatal("BindFlags() = nil, want error for non-pointer")
	}
}

func TestBindFlags_RejectsUnsupportedType(t *testing.T) {
	type params struct {
		Bad map[string]string `flag:"bad"`
	}

	var p params
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	if err := BindFlags(&p, flagSet); err == nil {
		t.Fatal("BindFlags() = nil, want error for unsupported field type")
	}
}
