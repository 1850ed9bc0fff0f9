// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package statemachine

import (
	"testing"

	"github.com/ippsav/tigerbeetle/tools/pybind"
)

// Packed flag sets travel as a single unsigned integer, so their widths
// must land on a representable integer size.
func TestFlagWidths(t *testing.T) {
	cases := []struct {
		typ      *pybind.Type
		expected int
	}{
		{AccountFlagsType, 16},
		{TransferFlagsType, 16},
		{AccountFilterFlagsType, 32},
		{QueryFilterFlagsType, 32},
	}
	for _, c := range cases {
		if actual := c.typ.Width(); actual != c.expected {
			t.Errorf("%s width = %d; expected %d", c.typ.Name, actual, c.expected)
		}
	}
}

func TestBindingsAreUnique(t *testing.T) {
	seenTypes := make(map[*pybind.Type]bool)
	seenNames := make(map[string]bool)
	for _, b := range Bindings() {
		if seenTypes[b.Type] {
			t.Errorf("type %s is bound twice", b.Type.Name)
		}
		if seenNames[b.Name] {
			t.Errorf("name %s is bound twice", b.Name)
		}
		seenTypes[b.Type] = true
		seenNames[b.Name] = true
	}
}

func TestBindingsValidateAgainstProtocol(t *testing.T) {
	if err := pybind.ValidateTables(pybind.ProtocolBindings(), Bindings()); err != nil {
		t.Fatalf("ValidateTables() = %v", err)
	}
}

// Every skip list entry must name an actual member of its type; a stale
// entry would silently stop hiding anything.
func TestSkipListsNameRealMembers(t *testing.T) {
	for typ, names := range SkipLists() {
		for _, name := range names {
			if !hasMember(typ, name) {
				t.Errorf("%s skip list names unknown member %q", typ.Name, name)
			}
		}
	}
}

func hasMember(typ *pybind.Type, name string) bool {
	for _, v := range typ.Variants {
		if v.Name == name {
			return true
		}
	}
	for _, f := range typ.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func TestOperationsMatchEnumVariants(t *testing.T) {
	variants := make(map[string]bool)
	for _, v := range OperationType.Variants {
		variants[v.Name] = true
	}
	for _, op := range Operations() {
		if !variants[op.Name] {
			t.Errorf("operation %s is not a variant of %s", op.Name, OperationType.Name)
		}
	}
}

func TestOperationTypesAreMapped(t *testing.T) {
	domain := Bindings()
	for _, op := range Operations() {
		if op.Internal {
			continue
		}
		for _, typ := range []*pybind.Type{op.Event, op.Result} {
			switch typ.Kind {
			case pybind.TypeKindExternStruct, pybind.TypeKindEnum, pybind.TypeKindPackedStruct:
				if _, ok := domain.Lookup(typ); !ok {
					t.Errorf("operation %s uses unmapped type %s", op.Name, typ.Name)
				}
			}
		}
	}
}

func TestTypeByName(t *testing.T) {
	typ, ok := TypeByName(AccountType.Name)
	if !ok || typ != AccountType {
		t.Errorf("TypeByName(%q) = (%v, %t); expected the account declaration", AccountType.Name, typ, ok)
	}
	if _, ok := TypeByName("no_such_type"); ok {
		t.Error("TypeByName resolved an unknown name")
	}
}
