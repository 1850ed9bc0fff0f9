// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package pybind

// Shared scalar declarations. The protocol is unsigned-integer-only by
// design: signed integers are declarable but rejected by every lowering, to
// avoid sign-extension ambiguity across the FFI boundary.
var (
	Bool = &Type{Name: "bool", Kind: TypeKindBool}
	U8   = &Type{Name: "u8", Kind: TypeKindUint, Bits: 8}
	U16  = &Type{Name: "u16", Kind: TypeKindUint, Bits: 16}
	U32  = &Type{Name: "u32", Kind: TypeKindUint, Bits: 32}
	U64  = &Type{Name: "u64", Kind: TypeKindUint, Bits: 64}
	U128 = &Type{Name: "u128", Kind: TypeKindUint, Bits: 128}
	Void = &Type{Name: "void", Kind: TypeKindVoid}

	// AnyOpaquePtr is an optional untyped pointer, lowered to a generic
	// opaque pointer at the FFI layer.
	AnyOpaquePtr = &Type{Name: "?*anyopaque", Kind: TypeKindPointer, Nullable: true}
)

// PointerTo declares a pointer to a mapped structure type.
func PointerTo(t *Type) *Type {
	return &Type{Name: "*" + t.Name, Kind: TypeKindPointer, Elem: t}
}

// ArrayOf declares a fixed-size array type.
func ArrayOf(elem *Type, count int) *Type {
	return &Type{Name: "array", Kind: TypeKindArray, Elem: elem, Count: count}
}

// The tb_client protocol types: the opaque client handle, the packet
// through which requests are submitted, and the status enums reported by
// the native runtime. These are protocol-internal: they get FFI bindings
// but never value records.
var (
	ClientType = &Type{
		Name: "tb_client",
		Kind: TypeKindExternStruct,
		Fields: []Field{
			{Name: "opaque", Type: ArrayOf(U8, 32), Reserved: true},
		},
	}

	PacketType = &Type{
		Name: "tb_packet",
		Kind: TypeKindExternStruct,
		Fields: []Field{
			{Name: "user_data", Type: AnyOpaquePtr},
			{Name: "data", Type: AnyOpaquePtr},
			{Name: "data_size", Type: U32},
			{Name: "user_tag", Type: U16},
			{Name: "operation", Type: U8},
			{Name: "status", Type: PacketStatusType},
			{Name: "opaque", Type: ArrayOf(U8, 32), Reserved: true},
		},
	}

	// CompletionContextType is the caller-supplied context threaded through
	// the native completion callback.
	CompletionContextType = &Type{Name: "completion_context", Kind: TypeKindUint, Bits: 64}

	InitStatusType = &Type{
		Name: "init_status",
		Kind: TypeKindEnum,
		Bits: 32,
		Variants: []EnumVariant{
			{Name: "success", Value: 0},
			{Name: "unexpected", Value: 1},
			{Name: "out_of_memory", Value: 2},
			{Name: "address_invalid", Value: 3},
			{Name: "address_limit_exceeded", Value: 4},
			{Name: "system_resources", Value: 5},
			{Name: "network_subsystem", Value: 6},
		},
	}

	ClientStatusType = &Type{
		Name: "client_status",
		Kind: TypeKindEnum,
		Bits: 32,
		Variants: []EnumVariant{
			{Name: "ok", Value: 0},
			{Name: "invalid", Value: 1},
		},
	}

	PacketStatusType = &Type{
		Name: "packet_status",
		Kind: TypeKindEnum,
		Bits: 8,
		Variants: []EnumVariant{
			{Name: "ok", Value: 0},
			{Name: "too_much_data", Value: 1},
			{Name: "client_evicted", Value: 2},
			{Name: "client_release_too_low", Value: 3},
			{Name: "client_release_too_high", Value: 4},
			{Name: "client_shutdown", Value: 5},
			{Name: "invalid_operation", Value: 6},
			{Name: "invalid_data_size", Value: 7},
		},
	}
)

// ProtocolBindings returns the fixed protocol mapping table shipped with
// the generator. The domain table is supplied per invocation.
func ProtocolBindings() Table {
	return Table{
		{Type: ClientType, Name: "Client"},
		{Type: PacketType, Name: "Packet"},
		{Type: CompletionContextType, Name: "CompletionContext"},
		{Type: InitStatusType, Name: "InitStatus"},
		{Type: ClientStatusType, Name: "ClientStatus"},
		{Type: PacketStatusType, Name: "PacketStatus"},
	}
}

// EntryPoints returns the lifecycle functions of the native client library,
// in the order their signature declarations are emitted.
func EntryPoints() []EntryPoint {
	clientPtr := PointerTo(ClientType)
	packetPtr := PointerTo(PacketType)
	initParams := []*Type{
		clientPtr,    // out: the initialized client handle
		AnyOpaquePtr, // cluster id bytes
		AnyOpaquePtr, // address string
		U32,          // address length
		CompletionContextType,
		AnyOpaquePtr, // completion callback
	}
	return []EntryPoint{
		{Name: "tb_client_init", Params: initParams, Return: InitStatusType},
		{Name: "tb_client_init_echo", Params: initParams, Return: InitStatusType},
		{Name: "tb_client_deinit", Params: []*Type{clientPtr}, Return: ClientStatusType},
		{Name: "tb_client_submit", Params: []*Type{clientPtr, packetPtr}, Return: ClientStatusType},
	}
}
