// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package python

import (
	"fmt"

	"github.com/ippsav/tigerbeetle/tools/pybind"
)

// valueRecord renders the plain-value dataclass of a domain extern struct.
// Reserved fields are an FFI layout concern and are omitted here; every
// remaining field gets an annotation and a zero-valued default so records
// can be constructed with only the fields the caller cares about.
func (g *Generator) valueRecord(b pybind.Binding) error {
	t := b.Type
	g.block()
	g.buf.WriteString("@dataclass\n")
	fmt.Fprintf(&g.buf, "class %s:\n", b.Name)
	emitted := 0
	for _, f := range t.Fields {
		if f.Reserved {
			continue
		}
		annotation, err := g.domainType(f.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
		}
		def, err := g.defaultValue(f.Type)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name, f.Name, err)
		}
		fmt.Fprintf(&g.buf, "    %s: %s = %s\n", f.Name, annotation, def)
		emitted++
	}
	if emitted == 0 {
		g.buf.WriteString("    pass\n")
	}
	return nil
}
