// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - the 32 byte ledger address and its Base58 text form
//
// Accounts, assets and contracts are all identified by an Address.
// Base58 is the only human-facing encoding; inside a binary record an
// address is always the 32 raw bytes.
package address

import (
	"fmt"

	"github.com/uplink-ledger/uplink-go/fault"
	"github.com/uplink-ledger/uplink-go/util"
)

// Length - raw size of an address
const Length = 32

// Address - raw address bytes
type Address [Length]byte

// FromBase58 - decode Base58 text to an address
//
// anything that does not decode to exactly Length bytes is rejected
func FromBase58(s string) (Address, error) {
	var a Address
	buffer := util.FromBase58(s)
	if Length != len(buffer) {
		return a, fault.ErrInvalidAddressEncoding
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBytes - convert and validate a raw byte slice
func FromBytes(buffer []byte) (Address, error) {
	var a Address
	if Length != len(buffer) {
		return a, fault.ErrInvalidAddressEncoding
	}
	copy(a[:], buffer)
	return a, nil
}

// Bytes - the raw address as a byte slice
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero - true for the all-zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// String - Base58 form for use by the fmt package (for %s)
func (a Address) String() string {
	return util.ToBase58(a[:])
}

// GoString - for use by the fmt package (for %#v)
func (a Address) GoString() string {
	return "<address:" + util.ToBase58(a[:]) + ">"
}

// Scan - read Base58 text for use by the fmt package scan routines
func (a *Address) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		switch {
		case c >= '1' && c <= '9':
			return true
		case c >= 'A' && c <= 'Z':
			return true
		case c >= 'a' && c <= 'z':
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	decoded, err := FromBase58(string(token))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// MarshalText - convert an address to its Base58 JSON form
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert Base58 JSON text to an address
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
