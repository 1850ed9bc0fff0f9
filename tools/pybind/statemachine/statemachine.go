// Copyright 2025 The TigerBeetle Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package statemachine declares the ledger state machine schema: the value
// types transported through tb_client packets and the operations that act
// on them. This is the default domain table; a generator invocation may
// rename entries or extend skip lists via configuration.
package statemachine

import "github.com/ippsav/tigerbeetle/tools/pybind"

var (
	AccountFlagsType = &pybind.Type{
		Name: "account_flags",
		Kind: pybind.TypeKindPackedStruct,
		Fields: []pybind.Field{
			{Name: "linked", Bits: 1},
			{Name: "debits_must_not_exceed_credits", Bits: 1},
			{Name: "credits_must_not_exceed_debits", Bits: 1},
			{Name: "history", Bits: 1},
			{Name: "imported", Bits: 1},
			{Name: "closed", Bits: 1},
			{Name: "padding", Bits: 10, Reserved: true},
		},
	}

	TransferFlagsType = &pybind.Type{
		Name: "transfer_flags",
		Kind: pybind.TypeKindPackedStruct,
		Fields: []pybind.Field{
			{Name: "linked", Bits: 1},
			{Name: "pending", Bits: 1},
			{Name: "post_pending_transfer", Bits: 1},
			{Name: "void_pending_transfer", Bits: 1},
			{Name: "balancing_debit", Bits: 1},
			{Name: "balancing_credit", Bits: 1},
			{Name: "closing_debit", Bits: 1},
			{Name: "closing_credit", Bits: 1},
			{Name: "imported", Bits: 1},
			{Name: "padding", Bits: 7, Reserved: true},
		},
	}

	AccountFilterFlagsType = &pybind.Type{
		Name: "account_filter_flags",
		Kind: pybind.TypeKindPackedStruct,
		Fields: []pybind.Field{
			{Name: "debits", Bits: 1},
			{Name: "credits", Bits: 1},
			{Name: "reversed", Bits: 1},
			{Name: "padding", Bits: 29, Reserved: true},
		},
	}

	QueryFilterFlagsType = &pybind.Type{
		Name: "query_filter_flags",
		Kind: pybind.TypeKindPackedStruct,
		Fields: []pybind.Field{
			{Name: "reversed", Bits: 1},
			{Name: "padding", Bits: 31, Reserved: true},
		},
	}

	AccountType = &pybind.Type{
		Name: "account",
		Kind: pybind.TypeKindExternStruct,
		Fields: []pybind.Field{
			{Name: "id", Type: pybind.U128},
			{Name: "debits_pending", Type: pybind.U128},
			{Name: "debits_posted", Type: pybind.U128},
			{Name: "credits_pending", Type: pybind.U128},
			{Name: "credits_posted", Type: pybind.U128},
			{Name: "user_data_128", Type: pybind.U128},
			{Name: "user_data_64", Type: pybind.U64},
			{Name: "user_data_32", Type: pybind.U32},
			{Name: "reserved", Type: pybind.ArrayOf(pybind.U8, 4), Reserved: true},
			{Name: "ledger", Type: pybind.U32},
			{Name: "code", Type: pybind.U16},
			{Name: "flags", Type: AccountFlagsType},
			{Name: "timestamp", Type: pybind.U64},
		},
	}

	TransferType = &pybind.Type{
		Name: "transfer",
		Kind: pybind.TypeKindExternStruct,
		Fields: []pybind.Field{
			{Name: "id", Type: pybind.U128},
			{Name: "debit_account_id", Type: pybind.U128},
			{Name: "credit_account_id", Type: pybind.U128},
			{Name: "amount", Type: pybind.U128},
			{Name: "pending_id", Type: pybind.U128},
			{Name: "user_data_128", Type: pybind.U128},
			{Name: "user_data_64", Type: pybind.U64},
			{Name: "user_data_32", Type: pybind.U32},
			{Name: "timeout", Type: pybind.U32},
			{Name: "ledger", Type: pybind.U32},
			{Name: "code", Type: pybind.U16},
			{Name: "flags", Type: TransferFlagsType},
			{Name: "timestamp", Type: pybind.U64},
		},
	}

	AccountBalanceType = &pybind.Type{
		Name: "account_balance",
		Kind: pybind.TypeKindExternStruct,
		Fields: []pybind.Field{
			{Name: "debits_pending", Type: pybind.U128},
			{Name: "debits_posted", Type: pybind.U128},
			{Name: "credits_pending", Type: pybind.U128},
			{Name: "credits_posted", Type: pybind.U128},
			{Name: "timestamp", Type: pybind.U64},
			{Name: "reserved", Type: pybind.ArrayOf(pybind.U8, 56), Reserved: true},
		},
	}

	AccountFilterType = &pybind.Type{
		Name: "account_filter",
		Kind: pybind.TypeKindExternStruct,
		Fields: []pybind.Field{
			{Name: "account_id", Type: pybind.U128},
			{Name: "user_data_128", Type: pybind.U128},
			{Name: "user_data_64", Type: pybind.U64},
			{Name: "user_data_32", Type: pybind.U32},
			{Name: "code", Type: pybind.U16},
			{Name: "reserved", Type: pybind.ArrayOf(pybind.U8, 58), Reserved: true},
			{Name: "timestamp_min", Type: pybind.U64},
			{Name: "timestamp_max", Type: pybind.U64},
			{Name: "limit", Type: pybind.U32},
			{Name: "flags", Type: AccountFilterFlagsType},
		},
	}

	QueryFilterType = &pybind.Type{
		Name: "query_filter",
		Kind: pybind.TypeKindExternStruct,
		Fields: []pybind.Field{
			{Name: "user_data_128", Type: pybind.U128},
			{Name: "user_data_64", Type: pybind.U64},
			{Name: "user_data_32", Type: pybind.U32},
			{Name: "ledger", Type: pybind.U32},
			{Name: "code", Type: pybind.U16},
			{Name: "reserved", Type: pybind.ArrayOf(pybind.U8, 6), Reserved: true},
			{Name: "timestamp_min", Type: pybind.U64},
			{Name: "timestamp_max", Type: pybind.U64},
			{Name: "limit", Type: pybind.U32},
			{Name: "flags", Type: QueryFilterFlagsType},
		},
	}

	CreateAccountResultType = &pybind.Type{
		Name: "create_account_result",
		Kind: pybind.TypeKindEnum,
		Bits: 32,
		Variants: []pybind.EnumVariant{
			{Name: "ok", Value: 0},
			{Name: "linked_event_failed", Value: 1},
			{Name: "linked_event_chain_open", Value: 2},
			{Name: "timestamp_must_be_zero", Value: 3},
			{Name: "reserved_field", Value: 4},
			{Name: "reserved_flag", Value: 5},
			{Name: "id_must_not_be_zero", Value: 6},
			{Name: "id_must_not_be_int_max", Value: 7},
			{Name: "flags_are_mutually_exclusive", Value: 8},
			{Name: "ledger_must_not_be_zero", Value: 9},
			{Name: "code_must_not_be_zero", Value: 10},
			{Name: "exists_with_different_flags", Value: 11},
			{Name: "exists_with_different_ledger", Value: 12},
			{Name: "exists_with_different_code", Value: 13},
			{Name: "exists", Value: 14},
		},
	}

	CreateTransferResultType = &pybind.Type{
		Name: "create_transfer_result",
		Kind: pybind.TypeKindEnum,
		Bits: 32,
		Variants: []pybind.EnumVariant{
			{Name: "ok", Value: 0},
			{Name: "linked_event_failed", Value: 1},
			{Name: "linked_event_chain_open", Value: 2},
			{Name: "timestamp_must_be_zero", Value: 3},
			{Name: "id_must_not_be_zero", Value: 4},
			{Name: "id_must_not_be_int_max", Value: 5},
			{Name: "flags_are_mutually_exclusive", Value: 6},
			{Name: "debit_account_id_must_not_be_zero", Value: 7},
			{Name: "credit_account_id_must_not_be_zero", Value: 8},
			{Name: "accounts_must_be_different", Value: 9},
			{Name: "pending_id_must_be_zero", Value: 10},
			{Name: "ledger_must_not_be_zero", Value: 11},
			{Name: "code_must_not_be_zero", Value: 12},
			{Name: "debit_account_not_found", Value: 13},
			{Name: "credit_account_not_found", Value: 14},
			{Name: "accounts_must_have_the_same_ledger", Value: 15},
			{Name: "pending_transfer_not_found", Value: 16},
			{Name: "exceeds_credits", Value: 17},
			{Name: "exceeds_debits", Value: 18},
			{Name: "exists", Value: 19},
		},
	}

	CreateAccountsResultType = &pybind.Type{
		Name: "create_accounts_result",
		Kind: pybind.TypeKindExternStruct,
		Fields: []pybind.Field{
			{Name: "index", Type: pybind.U32},
			{Name: "result", Type: CreateAccountResultType},
		},
	}

	CreateTransfersResultType = &pybind.Type{
		Name: "create_transfers_result",
		Kind: pybind.TypeKindExternStruct,
		Fields: []pybind.Field{
			{Name: "index", Type: pybind.U32},
			{Name: "result", Type: CreateTransferResultType},
		},
	}

	// OperationType identifies requests on the wire. The reserved and
	// register variants belong to the replication protocol and are hidden
	// from the public enum; pulse is visible but never receives wrapper
	// methods.
	OperationType = &pybind.Type{
		Name: "operation",
		Kind: pybind.TypeKindEnum,
		Bits: 8,
		Variants: []pybind.EnumVariant{
			{Name: "reserved", Value: 0},
			{Name: "register", Value: 1},
			{Name: "pulse", Value: 128},
			{Name: "create_accounts", Value: 129},
			{Name: "create_transfers", Value: 130},
			{Name: "lookup_accounts", Value: 131},
			{Name: "lookup_transfers", Value: 132},
			{Name: "get_account_transfers", Value: 133},
			{Name: "get_account_balances", Value: 134},
			{Name: "query_accounts", Value: 135},
			{Name: "query_transfers", Value: 136},
		},
	}
)

// Bindings returns the default domain mapping table, in emission order.
func Bindings() pybind.Table {
	return pybind.Table{
		{Type: AccountFlagsType, Name: "AccountFlags"},
		{Type: TransferFlagsType, Name: "TransferFlags"},
		{Type: AccountFilterFlagsType, Name: "AccountFilterFlags"},
		{Type: QueryFilterFlagsType, Name: "QueryFilterFlags"},
		{Type: CreateAccountResultType, Name: "CreateAccountResult"},
		{Type: CreateTransferResultType, Name: "CreateTransferResult"},
		{Type: OperationType, Name: "Operation"},
		{Type: AccountType, Name: "Account"},
		{Type: TransferType, Name: "Transfer"},
		{Type: AccountBalanceType, Name: "AccountBalance"},
		{Type: AccountFilterType, Name: "AccountFilter"},
		{Type: QueryFilterType, Name: "QueryFilter"},
		{Type: CreateAccountsResultType, Name: "CreateAccountsResult"},
		{Type: CreateTransfersResultType, Name: "CreateTransfersResult"},
	}
}

// SkipLists returns the default per-type member skip lists: variants and
// flag members hidden from the public surface. Flag bit positions track
// declaration order including skipped members, so extending a skip list
// never renumbers the remaining members.
func SkipLists() map[*pybind.Type][]string {
	return map[*pybind.Type][]string{
		OperationType:          {"reserved", "register"},
		AccountFlagsType:       {"padding"},
		TransferFlagsType:      {"padding"},
		AccountFilterFlagsType: {"padding"},
		QueryFilterFlagsType:   {"padding"},
	}
}

// Operations returns the declared protocol operations, in method emission
// order.
func Operations() []pybind.Operation {
	return []pybind.Operation{
		{Name: "pulse", EventName: "events", Arity: pybind.ArityBatch, Event: pybind.Void, Result: pybind.Void, Internal: true},
		{Name: "create_accounts", EventName: "accounts", Arity: pybind.ArityBatch, Event: AccountType, Result: CreateAccountsResultType},
		{Name: "create_transfers", EventName: "transfers", Arity: pybind.ArityBatch, Event: TransferType, Result: CreateTransfersResultType},
		{Name: "lookup_accounts", EventName: "ids", Arity: pybind.ArityBatch, Event: pybind.U128, Result: AccountType},
		{Name: "lookup_transfers", EventName: "ids", Arity: pybind.ArityBatch, Event: pybind.U128, Result: TransferType},
		{Name: "get_account_transfers", EventName: "filter", Arity: pybind.AritySingle, Event: AccountFilterType, Result: TransferType},
		{Name: "get_account_balances", EventName: "filter", Arity: pybind.AritySingle, Event: AccountFilterType, Result: AccountBalanceType},
		{Name: "query_accounts", EventName: "filter", Arity: pybind.AritySingle, Event: QueryFilterType, Result: AccountType},
		{Name: "query_transfers", EventName: "filter", Arity: pybind.AritySingle, Event: QueryFilterType, Result: TransferType},
	}
}

// TypeByName resolves a native declaration name to its type, for use by
// name-keyed generator configuration.
func TypeByName(name string) (*pybind.Type, bool) {
	for _, b := range Bindings() {
		if b.Type.Name == name {
			return b.Type, true
		}
	}
	return nil, false
}
