// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package pybind contains the native schema model and mapping registry
// shared by the binding generator backends.
//
// The schema is a hand-authored description of the tb_client wire protocol
// and of the ledger state machine types transported over it. A *Type value
// is declared exactly once; its pointer identity is its declaration
// identity, which is what the mapping registry keys on.
package pybind

import (
	"fmt"
	"strings"
)

// TypeKind gives a rough categorization of native types.
type TypeKind string

const (
	TypeKindVoid         TypeKind = "void"
	TypeKindBool         TypeKind = "bool"
	TypeKindUint         TypeKind = "uint"
	TypeKindInt          TypeKind = "int" // Declarable, but rejected by every lowering.
	TypeKindArray        TypeKind = "array"
	TypeKindPointer      TypeKind = "pointer"
	TypeKindEnum         TypeKind = "enum"
	TypeKindPackedStruct TypeKind = "packed_struct"
	TypeKindExternStruct TypeKind = "extern_struct"
)

// Type describes one native type participating in the client protocol.
//
// Types are immutable after schema-authoring time. Which of the remaining
// fields are meaningful depends on Kind.
type Type struct {
	// Name is the declared native name, used in mapping-table configuration
	// and diagnostics.
	Name string

	Kind TypeKind

	// Bits is the scalar width (TypeKindUint, TypeKindInt) or the width of
	// an enum's integer tag (TypeKindEnum).
	Bits int

	// Elem gives the element type of an array, or the pointee of a pointer.
	// A nil pointee marks an untyped (anyopaque) pointer.
	Elem *Type

	// Count gives the length of an array.
	Count int

	// Nullable marks an optional pointer. Nullability is a value-level
	// concern only; it never changes the FFI layout.
	Nullable bool

	// Variants gives the members of an enum.
	Variants []EnumVariant

	// Fields gives the members of a packed or extern struct.
	Fields []Field
}

// EnumVariant represents one enum member.
type EnumVariant struct {
	Name  string
	Value uint64
}

// Field represents a member of a packed or extern struct.
type Field struct {
	// Name is the declared native field name.
	Name string

	// Type gives the field type of an extern struct member. Packed struct
	// members carry no type of their own; they are spans of bits.
	Type *Type

	// Bits gives the bit width of a packed struct member. Flag members
	// occupy one bit; padding members may span several.
	Bits int

	// Reserved fields occupy layout space but are never exposed in
	// constructors, converters, or value records.
	Reserved bool
}

// Width returns the bit width of a type as transmitted on the wire, for
// the kinds that have one. A packed struct is transmitted as a single
// unsigned integer whose width is the sum of its members' widths.
func (t *Type) Width() int {
	switch t.Kind {
	case TypeKindBool:
		return 1
	case TypeKindUint, TypeKindInt, TypeKindEnum:
		return t.Bits
	case TypeKindPackedStruct:
		total := 0
		for _, f := range t.Fields {
			total += f.Bits
		}
		return total
	default:
		panic(fmt.Sprintf("%s (%s) has no wire width", t.Name, t.Kind))
	}
}

// Arity describes how many event values an operation's wrapper accepts.
type Arity int

const (
	// AritySingle wrappers accept exactly one event value and wrap it as a
	// one-element batch before dispatch.
	AritySingle Arity = iota

	// ArityBatch wrappers accept a sequence of event values directly.
	ArityBatch
)

// Operation describes one protocol operation for which wrapper methods are
// generated.
type Operation struct {
	// Name is the operation name; generated methods carry it verbatim, and
	// it must match a variant of the schema's operation enum.
	Name string

	// EventName names the operation's event concept; the generated wrapper
	// parameter is named after it ("accounts", "filter", ...).
	EventName string

	Arity Arity

	// Event and Result give the native event and result types. Result is
	// always returned as a sequence, regardless of Arity.
	Event  *Type
	Result *Type

	// Internal marks the pulse/heartbeat operation, which exists for
	// liveness and never receives public wrapper methods.
	Internal bool
}

// EntryPoint describes one lifecycle function of the native client library,
// emitted as a raw signature declaration.
type EntryPoint struct {
	Name   string
	Params []*Type
	Return *Type
}

// UpperCaseWithUnderscores converts a lower_snake_case native name to
// UPPER_SNAKE_CASE, byte-wise over ASCII. Enum and flag members are the
// only place this casing is used; type and method names keep their native
// casing.
func UpperCaseWithUnderscores(name string) string {
	b := []byte(name)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// ToSnakeCase converts a CamelCase mapping name to lower_snake_case, for
// use in generated converter method names.
func ToSnakeCase(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'A' <= c && c <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			c = c - 'A' + 'a'
		}
		b.WriteByte(c)
	}
	return b.String()
}
