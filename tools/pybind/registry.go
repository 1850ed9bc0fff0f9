// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pybind

import "fmt"

// Binding associates a native type with the name it receives in generated
// output.
type Binding struct {
	Type *Type
	Name string
}

// Table is an ordered list of bindings. Emission order follows table order,
// which keeps generation deterministic.
type Table []Binding

// Lookup returns the bound name of a type within the table.
func (t Table) Lookup(typ *Type) (string, bool) {
	for _, b := range t {
		if b.Type == typ {
			return b.Name, true
		}
	}
	return "", false
}

// Lookup resolves a type against the concatenation of the given tables, in
// order. The protocol table is always consulted before the domain table.
func Lookup(typ *Type, tables ...Table) (string, bool) {
	for _, t := range tables {
		if name, ok := t.Lookup(typ); ok {
			return name, true
		}
	}
	return "", false
}

// ValidateTables checks the registry invariants: identities are unique
// within each table, and no domain entry collides with a protocol entry for
// the same identity. A collision is a generation-time failure, never
// silently resolved by lookup order.
func ValidateTables(protocol, domain Table) error {
	protocolNames := make(map[*Type]string, len(protocol))
	for _, b := range protocol {
		if prev, ok := protocolNames[b.Type]; ok {
			return fmt.Errorf("protocol table binds %s twice (as %s and %s)", b.Type.Name, prev, b.Name)
		}
		protocolNames[b.Type] = b.Name
	}
	domainNames := make(map[*Type]string, len(domain))
	for _, b := range domain {
		if prev, ok := domainNames[b.Type]; ok {
			return fmt.Errorf("domain table binds %s twice (as %s and %s)", b.Type.Name, prev, b.Name)
		}
		domainNames[b.Type] = b.Name
		if prev, ok := protocolNames[b.Type]; ok {
			return fmt.Errorf("domain binding %s for %s collides with protocol binding %s", b.Name, b.Type.Name, prev)
		}
	}
	return nil
}
