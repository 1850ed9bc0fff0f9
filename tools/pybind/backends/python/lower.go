// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package python

import (
	"fmt"
	"strings"

	"github.com/ippsav/tigerbeetle/tools/pybind"
)

// ffiType lowers a native type to the ctypes expression describing its
// memory layout. Lowering is exhaustive: a kind or width this backend does
// not know how to lay out is a generation failure, never a silent guess.
func (g *Generator) ffiType(t *pybind.Type) (string, error) {
	switch t.Kind {
	case pybind.TypeKindVoid:
		return "None", nil
	case pybind.TypeKindBool:
		return "ctypes.c_bool", nil
	case pybind.TypeKindUint:
		return ffiUintType(t, t.Bits)
	case pybind.TypeKindInt:
		return "", fmt.Errorf("%s: signed integers do not appear on the wire", t.Name)
	case pybind.TypeKindEnum:
		return ffiUintType(t, t.Bits)
	case pybind.TypeKindPackedStruct:
		return ffiUintType(t, t.Width())
	case pybind.TypeKindArray:
		elem, err := g.ffiType(t.Elem)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s * %d", elem, t.Count), nil
	case pybind.TypeKindPointer:
		if t.Elem == nil {
			return "ctypes.c_void_p", nil
		}
		name, ok := pybind.Lookup(t.Elem, g.protocol, g.domain)
		if !ok {
			return "", fmt.Errorf("pointer to unmapped type %s", t.Elem.Name)
		}
		return fmt.Sprintf("ctypes.POINTER(%s%s)", structPrefix, name), nil
	default:
		return "", fmt.Errorf("%s has unsupported type kind: %s", t.Name, t.Kind)
	}
}

func ffiUintType(t *pybind.Type, width int) (string, error) {
	switch width {
	case 8, 16, 32, 64:
		return fmt.Sprintf("ctypes.c_uint%d", width), nil
	case 128:
		return "c_uint128", nil
	default:
		return "", fmt.Errorf("%s has unsupported integer width %d", t.Name, width)
	}
}

// domainType lowers a native type to the Python type annotation of its
// value-level representation.
func (g *Generator) domainType(t *pybind.Type) (string, error) {
	switch t.Kind {
	case pybind.TypeKindVoid:
		return "None", nil
	case pybind.TypeKindBool:
		return "bool", nil
	case pybind.TypeKindUint:
		return "int", nil
	case pybind.TypeKindInt:
		return "", fmt.Errorf("%s: signed integers do not appear on the wire", t.Name)
	case pybind.TypeKindEnum, pybind.TypeKindPackedStruct, pybind.TypeKindExternStruct:
		name, ok := g.domain.Lookup(t)
		if !ok {
			return "", fmt.Errorf("%s has no domain mapping", t.Name)
		}
		return name, nil
	case pybind.TypeKindArray:
		elem, err := g.domainType(t.Elem)
		if err != nil {
			return "", err
		}
		if t.Count <= 0 {
			return "", fmt.Errorf("%s has invalid array length %d", t.Name, t.Count)
		}
		elems := make([]string, t.Count)
		for i := range elems {
			elems[i] = elem
		}
		return "tuple[" + strings.Join(elems, ", ") + "]", nil
	default:
		return "", fmt.Errorf("%s has unsupported type kind: %s", t.Name, t.Kind)
	}
}

// defaultValue is the dataclass field default for a native type.
func (g *Generator) defaultValue(t *pybind.Type) (string, error) {
	switch t.Kind {
	case pybind.TypeKindBool:
		return "False", nil
	case pybind.TypeKindUint:
		return "0", nil
	case pybind.TypeKindEnum:
		name, ok := g.domain.Lookup(t)
		if !ok {
			return "", fmt.Errorf("%s has no domain mapping", t.Name)
		}
		return name + "(0)", nil
	case pybind.TypeKindPackedStruct:
		name, ok := g.domain.Lookup(t)
		if !ok {
			return "", fmt.Errorf("%s has no domain mapping", t.Name)
		}
		return name + ".NONE", nil
	case pybind.TypeKindArray:
		elem, err := g.defaultValue(t.Elem)
		if err != nil {
			return "", err
		}
		if t.Count == 1 {
			return "(" + elem + ",)", nil
		}
		elems := make([]string, t.Count)
		for i := range elems {
			elems[i] = elem
		}
		return "(" + strings.Join(elems, ", ") + ")", nil
	default:
		return "", fmt.Errorf("%s has no default value", t.Name)
	}
}
