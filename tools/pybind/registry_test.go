// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pybind

import (
	"strings"
	"testing"
)

func TestLookupKeysOnIdentity(t *testing.T) {
	first := &Type{Name: "status", Kind: TypeKindEnum, Bits: 32}
	second := &Type{Name: "status", Kind: TypeKindEnum, Bits: 32}
	table := Table{{Type: first, Name: "Status"}}

	if name, ok := table.Lookup(first); !ok || name != "Status" {
		t.Errorf("Lookup(first) = (%q, %t); expected (\"Status\", true)", name, ok)
	}
	// An equal but distinct declaration is a different type.
	if _, ok := table.Lookup(second); ok {
		t.Error("Lookup(second) matched a structurally equal declaration")
	}
}

func TestLookupConsultsTablesInOrder(t *testing.T) {
	typ := &Type{Name: "status", Kind: TypeKindEnum, Bits: 32}
	protocol := Table{{Type: typ, Name: "ProtocolStatus"}}
	domain := Table{{Type: typ, Name: "DomainStatus"}}

	if name, _ := Lookup(typ, protocol, domain); name != "ProtocolStatus" {
		t.Errorf("Lookup resolved to %q; expected the protocol binding", name)
	}
	if name, _ := Lookup(typ, Table{}, domain); name != "DomainStatus" {
		t.Errorf("Lookup resolved to %q; expected the domain binding", name)
	}
}

func TestValidateTables(t *testing.T) {
	a := &Type{Name: "a", Kind: TypeKindEnum, Bits: 32}
	b := &Type{Name: "b", Kind: TypeKindEnum, Bits: 32}

	cases := []struct {
		name     string
		protocol Table
		domain   Table
		errorMsg string
	}{
		{
			name:     "disjoint tables are valid",
			protocol: Table{{Type: a, Name: "A"}},
			domain:   Table{{Type: b, Name: "B"}},
		},
		{
			name:     "duplicate protocol binding",
			protocol: Table{{Type: a, Name: "A"}, {Type: a, Name: "AlsoA"}},
			errorMsg: "protocol table binds a twice",
		},
		{
			name:     "duplicate domain binding",
			domain:   Table{{Type: b, Name: "B"}, {Type: b, Name: "AlsoB"}},
			errorMsg: "domain table binds b twice",
		},
		{
			name:     "cross-table collision",
			protocol: Table{{Type: a, Name: "A"}},
			domain:   Table{{Type: a, Name: "ShadowA"}},
			errorMsg: "collides with protocol binding",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ValidateTables(c.protocol, c.domain)
			if c.errorMsg == "" {
				if err != nil {
					t.Fatalf("ValidateTables() = %v; expected success", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateTables() succeeded; expected error containing %q", c.errorMsg)
			}
			if !strings.Contains(err.Error(), c.errorMsg) {
				t.Errorf("ValidateTables() = %v; expected error containing %q", err, c.errorMsg)
			}
		})
	}
}
