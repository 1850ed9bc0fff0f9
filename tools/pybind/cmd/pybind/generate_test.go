// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goccy/go-yaml"
)

func TestConfigFileUnmarshal(t *testing.T) {
	raw := `
output: bindings.py
runtime_module: tigerbeetle.lib
domain:
  - type: account
    name: LedgerAccount
skip:
  operation: [pulse]
`
	var actual configFile
	if err := yaml.Unmarshal([]byte(raw), &actual); err != nil {
		t.Fatalf("Unmarshal() = %v", err)
	}
	expected := configFile{
		Output:        "bindings.py",
		RuntimeModule: "tigerbeetle.lib",
		Domain:        []configBinding{{Type: "account", Name: "LedgerAccount"}},
		Skip:          map[string][]string{"operation": {"pulse"}},
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateDefaults(t *testing.T) {
	output := filepath.Join(t.TempDir(), "bindings.py")
	cmd := generateCommand{output: output}
	if err := cmd.execute(context.Background()); err != nil {
		t.Fatalf("execute() = %v", err)
	}
	contents, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	for _, decl := range []string{
		"class Account:",
		"class CAccount(ctypes.Structure):",
		"class Client(ClientBase):",
		"from .lib import (",
	} {
		if !strings.Contains(string(contents), decl) {
			t.Errorf("generated output does not contain %q", decl)
		}
	}
}

func TestGenerateWithConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "bindings.py")
	config := filepath.Join(dir, "pybind.yaml")
	raw := `
output: ` + output + `
runtime_module: tigerbeetle.lib
domain:
  - type: account
    name: LedgerAccount
skip:
  operation: [pulse]
`
	if err := os.WriteFile(config, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := generateCommand{config: config}
	if err := cmd.execute(context.Background()); err != nil {
		t.Fatalf("execute() = %v", err)
	}
	contents, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	text := string(contents)
	if !strings.Contains(text, "class LedgerAccount:") {
		t.Error("domain rename was not applied")
	}
	if strings.Contains(text, "class Account:") {
		t.Error("default name survived a domain rename")
	}
	if strings.Contains(text, "PULSE = 128") {
		t.Error("skip override was not applied")
	}
	if !strings.Contains(text, "from tigerbeetle.lib import (") {
		t.Error("runtime module override was not applied")
	}
}

func TestGenerateRejectsUnknownTypes(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "pybind.yaml")
	raw := `
domain:
  - type: no_such_type
    name: Mystery
`
	if err := os.WriteFile(config, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := generateCommand{output: filepath.Join(dir, "bindings.py"), config: config}
	err := cmd.execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "no_such_type") {
		t.Errorf("execute() = %v; expected an unknown type error", err)
	}
}
