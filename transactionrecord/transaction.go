// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - canonical binary headers for the ten
// ledger transaction kinds
//
// every record starts with a 2 byte big-endian kind tag followed by
// the fields of that kind in a fixed order.  Headers are immutable
// once constructed and all validation happens in the constructors,
// so Pack cannot fail.
package transactionrecord

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
)

// Header - a constructed transaction header
type Header interface {
	Tag() constants.TransactionTag
	Pack() Packed
}

// Packed - packed records are just a byte slice
type Packed []byte

// byte sizes for the tag and length prefixes
const (
	tagLength     = 2
	prefix16      = 2
	prefix64      = 8
	max16Length   = 0xffff
	addressLength = 32
)

// Type - returns the record type code, zero if too short to hold one
func (record Packed) Type() constants.TransactionTag {
	if len(record) < tagLength {
		return 0
	}
	return constants.TransactionTag(binary.BigEndian.Uint16(record))
}

// String - hex for %s
func (record Packed) String() string {
	return hex.EncodeToString(record)
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert hex JSON form to a packed
//
// the result must carry a known kind tag
func (record *Packed) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	if _, err := hex.Decode(b, s); nil != err {
		return err
	}
	if !Packed(b).Type().Valid() {
		return fault.ErrNotTransactionPack
	}
	*record = b
	return nil
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *CreateAccount, CreateAccount:
		return "CreateAccount", true

	case *RevokeAccount, RevokeAccount:
		return "RevokeAccount", true

	case *CreateAsset, CreateAsset:
		return "CreateAsset", true

	case *Transfer, Transfer:
		return "Transfer", true

	case *Circulate, Circulate:
		return "Circulate", true

	case *Bind, Bind:
		return "Bind", true

	case *RevokeAsset, RevokeAsset:
		return "RevokeAsset", true

	case *CreateContract, CreateContract:
		return "CreateContract", true

	case *Call, Call:
		return "Call", true

	case *SyncLocal, SyncLocal:
		return "SyncLocal", true

	default:
		return "*unknown*", false
	}
}

// ExpectedLength - the record length implied by the header's fields
//
// computed independently of Pack; a packed record of any other length
// contains slack or is truncated
func ExpectedLength(header Header) int {
	switch h := header.(type) {
	case *CreateAccount:
		n := tagLength + prefix16 + len(h.publicKey) + prefix16 + len(h.timezone) + prefix16
		for _, entry := range h.metadata {
			n += prefix16 + len(entry.Key) + prefix16 + len(entry.Value)
		}
		return n

	case *CreateAsset:
		n := tagLength + addressLength + prefix16 + len(h.name) + 8 + 2 + prefix16 + len(h.reference)
		n += prefix16 + len(h.assetType.Kind())
		if _, ok := h.assetType.Precision(); ok {
			n += 8
		}
		return n

	case *CreateContract:
		return tagLength + addressLength + prefix16 + len(h.script)

	case *Transfer:
		return tagLength + 2*addressLength + 8

	case *Circulate:
		return tagLength + addressLength + 8

	case *Bind:
		return tagLength + 2*addressLength + len(h.proof)

	case *Call:
		return tagLength + addressLength + prefix64 + len(h.method) + 8 + len(h.packedArgs)

	case *RevokeAccount, *RevokeAsset, *SyncLocal:
		return tagLength + addressLength

	default:
		return 0
	}
}
