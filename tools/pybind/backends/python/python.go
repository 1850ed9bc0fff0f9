// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package python generates the Python client bindings: ctypes FFI
// structures, IntEnum/IntFlag classes, dataclass value records, and the
// blocking and awaitable client method sets.
package python

import (
	"bytes"
	"fmt"

	"github.com/ippsav/tigerbeetle/tools/pybind"
)

// structPrefix prefixes the mapped name of an extern struct to form its
// ctypes class name (Account -> CAccount).
const structPrefix = "C"

// libHandle is the runtime-supplied handle of the loaded native library.
const libHandle = "tb_client"

// DefaultRuntimeModule is the Python module providing the generated code's
// runtime support: the loaded library handle, c_uint128, validate_uint, and
// the client base classes.
const DefaultRuntimeModule = ".lib"

// Config parameterizes one generation run.
type Config struct {
	// Domain is the per-invocation mapping table of value-level types. The
	// protocol table is fixed and shipped with the generator.
	Domain pybind.Table

	// OperationEnum is the native enum identifying operations on the wire;
	// generated methods reference its mapped name.
	OperationEnum *pybind.Type

	// Operations are the declared protocol operations.
	Operations []pybind.Operation

	// Skips lists, per type, the enum variants and flag members hidden
	// from the public surface.
	Skips map[*pybind.Type][]string

	// RuntimeModule overrides DefaultRuntimeModule.
	RuntimeModule string
}

// Generator renders one complete bindings source file. It is single-use:
// the output buffer is owned by one Generate call and either flushed whole
// by the caller or discarded.
type Generator struct {
	protocol      pybind.Table
	domain        pybind.Table
	operationEnum *pybind.Type
	operations    []pybind.Operation
	skips         map[*pybind.Type][]string
	runtimeModule string

	buf bytes.Buffer
}

func NewGenerator(cfg Config) *Generator {
	runtimeModule := cfg.RuntimeModule
	if runtimeModule == "" {
		runtimeModule = DefaultRuntimeModule
	}
	return &Generator{
		protocol:      pybind.ProtocolBindings(),
		domain:        cfg.Domain,
		operationEnum: cfg.OperationEnum,
		operations:    cfg.Operations,
		skips:         cfg.Skips,
		runtimeModule: runtimeModule,
	}
}

// Generate walks the concatenated mapping tables and renders the bindings
// source. Nothing is written by Generate itself; on any failure the partial
// buffer is discarded, so partial output is impossible.
func (g *Generator) Generate() ([]byte, error) {
	if err := pybind.ValidateTables(g.protocol, g.domain); err != nil {
		return nil, err
	}

	g.buf.Reset()
	g.preamble()

	tables := make(pybind.Table, 0, len(g.protocol)+len(g.domain))
	tables = append(tables, g.protocol...)
	tables = append(tables, g.domain...)

	// Pass 1: enum classes, flag classes, and scalar aliases.
	for _, b := range tables {
		var err error
		switch b.Type.Kind {
		case pybind.TypeKindEnum:
			g.enumClass(b)
		case pybind.TypeKindPackedStruct:
			g.flagClass(b)
		case pybind.TypeKindUint, pybind.TypeKindBool, pybind.TypeKindPointer:
			err = g.alias(b)
		}
		if err != nil {
			return nil, err
		}
	}

	// Pass 2: value records, for domain types only. Protocol types are
	// FFI-internal and never surface as plain values.
	for _, b := range g.domain {
		if b.Type.Kind != pybind.TypeKindExternStruct {
			continue
		}
		if err := g.valueRecord(b); err != nil {
			return nil, err
		}
	}

	// Pass 3: FFI structure bindings, for every extern struct in either
	// table.
	for _, b := range tables {
		if b.Type.Kind != pybind.TypeKindExternStruct {
			continue
		}
		if err := g.structBinding(b); err != nil {
			return nil, err
		}
	}

	if err := g.entryPoints(); err != nil {
		return nil, err
	}

	if err := g.methodSet("Client", "ClientBase", false); err != nil {
		return nil, err
	}
	if err := g.methodSet("AsyncClient", "AsyncClientBase", true); err != nil {
		return nil, err
	}

	return g.buf.Bytes(), nil
}

// block separates top-level declarations with two blank lines.
func (g *Generator) block() {
	if g.buf.Len() > 0 {
		g.buf.WriteString("\n\n")
	}
}

func (g *Generator) preamble() {
	g.buf.WriteString(`##########################################################
# This file was auto-generated by tools/pybind.
# Do not manually modify it; changes will be overwritten.
##########################################################
import ctypes
import enum
from dataclasses import dataclass

`)
	fmt.Fprintf(&g.buf, `from %s import (
    AsyncClientBase,
    ClientBase,
    c_uint128,
    tb_client,
    validate_uint,
)
`, g.runtimeModule)
}

// entryPoints declares the raw signatures of the native lifecycle
// functions: initialize, initialize in echo mode, deinitialize, and submit.
func (g *Generator) entryPoints() error {
	g.block()
	g.buf.WriteString("# Raw entry points of the native client library.\n")
	for i, ep := range pybind.EntryPoints() {
		if i > 0 {
			g.buf.WriteString("\n")
		}
		fmt.Fprintf(&g.buf, "%s.%s.argtypes = [\n", libHandle, ep.Name)
		for _, param := range ep.Params {
			ffi, err := g.ffiType(param)
			if err != nil {
				return fmt.Errorf("%s: %w", ep.Name, err)
			}
			fmt.Fprintf(&g.buf, "    %s,\n", ffi)
		}
		g.buf.WriteString("]\n")
		ret, err := g.ffiType(ep.Return)
		if err != nil {
			return fmt.Errorf("%s: %w", ep.Name, err)
		}
		fmt.Fprintf(&g.buf, "%s.%s.restype = %s\n", libHandle, ep.Name, ret)
	}
	return nil
}

func (g *Generator) skipSet(t *pybind.Type) map[string]struct{} {
	set := make(map[string]struct{}, len(g.skips[t]))
	for _, name := range g.skips[t] {
		set[name] = struct{}{}
	}
	return set
}
