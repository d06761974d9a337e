// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package constants - enumerations shared with the ledger node
//
// These values appear on the wire and must never change.
package constants

// TransactionTag - 2 byte code at the start of every transaction header
type TransactionTag uint16

// transaction kinds
const (
	TxTypeCreateAccount = TransactionTag(100)
	TxTypeRevokeAccount = TransactionTag(101)

	TxTypeCreateAsset = TransactionTag(200)
	TxTypeTransfer    = TransactionTag(201)
	TxTypeCirculate   = TransactionTag(202)
	TxTypeBind        = TransactionTag(203)
	TxTypeRevokeAsset = TransactionTag(204)

	TxTypeCreateContract = TransactionTag(300)
	TxTypeCall           = TransactionTag(301)
	TxTypeSyncLocal      = TransactionTag(302)
)

// ValueTag - 1 byte code at the start of every encoded value
type ValueTag uint8

// value variants
const (
	VTypeInt       = ValueTag(iota) // 8 byte signed
	VTypeFloat     = ValueTag(iota) // 8 byte IEEE-754
	VTypeBool      = ValueTag(iota) // 1 byte
	VTypeAddress   = ValueTag(iota) // 32 byte address
	VTypeAccount   = ValueTag(iota) // 32 byte address
	VTypeAsset     = ValueTag(iota) // 32 byte address
	VTypeContract  = ValueTag(iota) // 32 byte address
	VTypeMsg       = ValueTag(iota) // 2 byte length + utf-8
	VTypeVoid      = ValueTag(iota) // no payload
	VTypeDateTime  = ValueTag(iota) // 8 × uint64
	VTypeTimeDelta = ValueTag(iota) // 7 × uint64
	VTypeUndefined = ValueTag(iota) // no payload

	// this item must be last
	vTypeLimit = ValueTag(iota)
)

// String - name of a transaction kind
func (tag TransactionTag) String() string {
	switch tag {
	case TxTypeCreateAccount:
		return "CreateAccount"
	case TxTypeRevokeAccount:
		return "RevokeAccount"
	case TxTypeCreateAsset:
		return "CreateAsset"
	case TxTypeTransfer:
		return "Transfer"
	case TxTypeCirculate:
		return "Circulate"
	case TxTypeBind:
		return "Bind"
	case TxTypeRevokeAsset:
		return "RevokeAsset"
	case TxTypeCreateContract:
		return "CreateContract"
	case TxTypeCall:
		return "Call"
	case TxTypeSyncLocal:
		return "SyncLocal"
	default:
		return "*unknown*"
	}
}

// Valid - true if the tag is one of the ten transaction kinds
func (tag TransactionTag) Valid() bool {
	return "*unknown*" != tag.String()
}

var valueTagNames = [vTypeLimit]string{
	VTypeInt:       "VInt",
	VTypeFloat:     "VFloat",
	VTypeBool:      "VBool",
	VTypeAddress:   "VAddress",
	VTypeAccount:   "VAccount",
	VTypeAsset:     "VAsset",
	VTypeContract:  "VContract",
	VTypeMsg:       "VMsg",
	VTypeVoid:      "VVoid",
	VTypeDateTime:  "VDateTime",
	VTypeTimeDelta: "VTimeDelta",
	VTypeUndefined: "VUndefined",
}

// String - name of a value variant
func (tag ValueTag) String() string {
	if tag >= vTypeLimit {
		return "*unknown*"
	}
	return valueTagNames[tag]
}

// Valid - true if the tag is a known value variant
func (tag ValueTag) Valid() bool {
	return tag < vTypeLimit
}
