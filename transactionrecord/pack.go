// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
)

// start a record of the given size with its kind tag
func newRecord(tag constants.TransactionTag, size int) Packed {
	buffer := make(Packed, 0, size)
	return appendUint16(buffer, uint16(tag))
}

// append a 2 byte big-endian unsigned value
func appendUint16(buffer Packed, value uint16) Packed {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

// append an 8 byte big-endian unsigned value
func appendUint64(buffer Packed, value uint64) Packed {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}

// append an 8 byte big-endian two's complement value
func appendInt64(buffer Packed, value int64) Packed {
	return appendUint64(buffer, uint64(value))
}

// append a 32 byte address
func appendAddress(buffer Packed, a address.Address) Packed {
	return append(buffer, a[:]...)
}

// append a 2 byte length and the bytes
//
// callers have already checked the length with checkBytes16
func appendBytes16(buffer Packed, data []byte) Packed {
	buffer = appendUint16(buffer, uint16(len(data)))
	return append(buffer, data...)
}

// append a 2 byte length and the string
func appendString16(buffer Packed, s string) Packed {
	buffer = appendUint16(buffer, uint16(len(s)))
	return append(buffer, s...)
}

// append an 8 byte length and the string
func appendString64(buffer Packed, s string) Packed {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// validate bytes for a 2 byte length prefix
func checkBytes16(data []byte, required bool) error {
	if required && 0 == len(data) {
		return fault.ErrFieldEmpty
	}
	if len(data) > max16Length {
		return fault.ErrFieldTooLong
	}
	return nil
}

// validate UTF-8 text for a 2 byte length prefix
func checkString16(s string, required bool) error {
	if err := checkBytes16([]byte(s), required); nil != err {
		return err
	}
	if !utf8.ValidString(s) {
		return fault.ErrInvalidText
	}
	return nil
}
