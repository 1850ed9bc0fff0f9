// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package python

import (
	"fmt"

	"github.com/ippsav/tigerbeetle/tools/pybind"
)

// structBinding renders the ctypes.Structure class of an extern struct:
// a from_<name> constructor, a to_<name> converter back to the value
// record when the struct has one, and the _fields_ layout assignment.
func (g *Generator) structBinding(b pybind.Binding) error {
	t := b.Type
	if t.Kind != pybind.TypeKindExternStruct {
		panic(fmt.Sprintf("%s is not an extern struct", t.Name))
	}

	// Lower the full layout up front so an unsupported field fails the run
	// before anything for this struct reaches the buffer.
	layout := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		ffi, err := g.ffiType(f.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
		}
		layout[i] = ffi
	}

	cname := structPrefix + b.Name
	record, hasRecord := g.domain.Lookup(t)
	snake := pybind.ToSnakeCase(b.Name)

	g.block()
	fmt.Fprintf(&g.buf, "class %s(ctypes.Structure):\n", cname)
	g.buf.WriteString("    @staticmethod\n")
	if hasRecord {
		fmt.Fprintf(&g.buf, "    def from_%s(obj: %s) -> \"%s\":\n", snake, record, cname)
	} else {
		fmt.Fprintf(&g.buf, "    def from_%s(obj) -> \"%s\":\n", snake, cname)
	}
	for _, f := range t.Fields {
		if f.Reserved {
			continue
		}
		if bits, checked := validatedWidth(f.Type); checked {
			fmt.Fprintf(&g.buf, "        validate_uint(bits=%d, name=%q, number=obj.%s)\n",
				bits, f.Name, f.Name)
		}
	}
	public := 0
	for _, f := range t.Fields {
		if !f.Reserved {
			public++
		}
	}
	if public == 0 {
		fmt.Fprintf(&g.buf, "        return %s()\n", cname)
	} else {
		fmt.Fprintf(&g.buf, "        return %s(\n", cname)
		for _, f := range t.Fields {
			if f.Reserved {
				continue
			}
			if isUint128(f.Type) {
				fmt.Fprintf(&g.buf, "            %s=c_uint128.from_param(obj.%s),\n", f.Name, f.Name)
			} else {
				fmt.Fprintf(&g.buf, "            %s=obj.%s,\n", f.Name, f.Name)
			}
		}
		g.buf.WriteString("        )\n")
	}

	if hasRecord {
		g.buf.WriteString("\n")
		fmt.Fprintf(&g.buf, "    def to_%s(self) -> %s:\n", snake, record)
		fmt.Fprintf(&g.buf, "        return %s(\n", record)
		for _, f := range t.Fields {
			if f.Reserved {
				continue
			}
			fmt.Fprintf(&g.buf, "            %s=%s,\n", f.Name, g.recordFieldExpr(f))
		}
		g.buf.WriteString("        )\n")
	}

	// The layout covers every field, reserved included, in declaration
	// order. Assigned after the class body so self-referential pointer
	// fields resolve.
	g.block()
	fmt.Fprintf(&g.buf, "%s._fields_ = [\n", cname)
	for i, f := range t.Fields {
		fmt.Fprintf(&g.buf, "    (%q, %s),\n", f.Name, layout[i])
	}
	g.buf.WriteString("]\n")
	return nil
}

// recordFieldExpr converts one FFI struct field back to its value-record
// form: domain-mapped types go through their constructor, 128-bit integers
// through the wrapper's accessor, everything else passes through as-is.
func (g *Generator) recordFieldExpr(f pybind.Field) string {
	if name, ok := g.domain.Lookup(f.Type); ok {
		return fmt.Sprintf("%s(self.%s)", name, f.Name)
	}
	if isUint128(f.Type) {
		return fmt.Sprintf("self.%s.to_python()", f.Name)
	}
	return "self." + f.Name
}

// validatedWidth reports whether constructing the struct must bounds-check
// the field, and against how many bits. 128-bit fields are exempt: the
// wrapper's from_param performs its own range check.
func validatedWidth(t *pybind.Type) (int, bool) {
	switch t.Kind {
	case pybind.TypeKindUint:
		if t.Bits == 128 {
			return 0, false
		}
		return t.Bits, true
	case pybind.TypeKindEnum:
		return t.Bits, true
	case pybind.TypeKindPackedStruct:
		return t.Width(), true
	}
	return 0, false
}

func isUint128(t *pybind.Type) bool {
	return t.Kind == pybind.TypeKindUint && t.Bits == 128
}
