// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package python

import (
	"fmt"

	"github.com/ippsav/tigerbeetle/tools/pybind"
)

// alias renders a plain-scalar or pointer mapping as a module-level ctypes
// alias (e.g. `CompletionContext = ctypes.c_uint64`).
func (g *Generator) alias(b pybind.Binding) error {
	ffi, err := g.ffiType(b.Type)
	if err != nil {
		return err
	}
	g.block()
	fmt.Fprintf(&g.buf, "%s = %s\n", b.Name, ffi)
	return nil
}

// enumClass renders an IntEnum. Variants on the type's skip list are left
// out of the class but still occupy their wire values; the remaining
// variants keep the values the native declaration assigns.
func (g *Generator) enumClass(b pybind.Binding) {
	skip := g.skipSet(b.Type)
	g.block()
	fmt.Fprintf(&g.buf, "class %s(enum.IntEnum):\n", b.Name)
	emitted := 0
	for _, v := range b.Type.Variants {
		if _, skipped := skip[v.Name]; skipped {
			continue
		}
		fmt.Fprintf(&g.buf, "    %s = %d\n", pybind.UpperCaseWithUnderscores(v.Name), v.Value)
		emitted++
	}
	if emitted == 0 {
		g.buf.WriteString("    pass\n")
	}
}

// flagClass renders a packed bit-field struct as an IntFlag. A member's bit
// position is its declaration index, so skipped padding members still shift
// the members that follow them.
func (g *Generator) flagClass(b pybind.Binding) {
	skip := g.skipSet(b.Type)
	g.block()
	fmt.Fprintf(&g.buf, "class %s(enum.IntFlag):\n", b.Name)
	g.buf.WriteString("    NONE = 0\n")
	for i, f := range b.Type.Fields {
		if _, skipped := skip[f.Name]; skipped {
			continue
		}
		fmt.Fprintf(&g.buf, "    %s = 1 << %d\n", pybind.UpperCaseWithUnderscores(f.Name), i)
	}
}
