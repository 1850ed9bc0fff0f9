// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pybind

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "bindings.py")
	first := []byte("class Account:\n")

	// Creates missing parent directories.
	if err := WriteFileIfChanged(path, first); err != nil {
		t.Fatalf("WriteFileIfChanged() = %v", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(contents, first) {
		t.Errorf("read back %q; expected %q", contents, first)
	}

	// Unchanged contents leave the file untouched.
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteFileIfChanged(path, first); err != nil {
		t.Fatalf("WriteFileIfChanged() = %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("rewrite of identical contents modified the file")
	}

	// Changed contents replace the file.
	second := []byte("class Transfer:\n")
	if err := WriteFileIfChanged(path, second); err != nil {
		t.Fatalf("WriteFileIfChanged() = %v", err)
	}
	contents, err = os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(contents, second) {
		t.Errorf("read back %q; expected %q", contents, second)
	}
}
