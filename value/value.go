// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package value - the typed values passed as contract call arguments
//
// Each variant encodes as a single tag byte followed by a fixed or
// length-prefixed big-endian payload.
package value

import (
	"time"
	"unicode/utf8"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
)

// maximum byte length of a Msg (2 byte length prefix)
const maxMsgLength = 0xffff

// Value - one of the closed set of variants below
//
// the marker method is unexported so the set cannot be extended
// outside this package
type Value interface {
	Tag() constants.ValueTag
	isValue()
}

// Int - 64 bit signed integer
type Int int64

// Float - 64 bit IEEE-754 double
type Float float64

// Bool - boolean
type Bool bool

// Address - a generic ledger address
type Address address.Address

// Account - reference to an account
type Account address.Address

// Asset - reference to an asset
type Asset address.Address

// Contract - reference to a contract
type Contract address.Address

// Msg - UTF-8 text of at most 65535 bytes
type Msg string

// Void - no payload
type Void struct{}

// Undefined - no payload
type Undefined struct{}

// DateTime - calendar time with zone offset
//
// Offset is seconds east of UTC; Weekday counts from Monday = 0
type DateTime struct {
	Year    uint64 `json:"year"`
	Month   uint64 `json:"month"`
	Day     uint64 `json:"day"`
	Hour    uint64 `json:"hour"`
	Minute  uint64 `json:"minute"`
	Second  uint64 `json:"second"`
	Offset  int64  `json:"offset"`
	Weekday uint64 `json:"weekday"`
}

// TimeDelta - calendar difference
type TimeDelta struct {
	Years       uint64 `json:"years"`
	Months      uint64 `json:"months"`
	Days        uint64 `json:"days"`
	Hours       uint64 `json:"hours"`
	Minutes     uint64 `json:"minutes"`
	Seconds     uint64 `json:"seconds"`
	Nanoseconds uint64 `json:"nanoseconds"`
}

func (Int) Tag() constants.ValueTag       { return constants.VTypeInt }
func (Float) Tag() constants.ValueTag     { return constants.VTypeFloat }
func (Bool) Tag() constants.ValueTag      { return constants.VTypeBool }
func (Address) Tag() constants.ValueTag   { return constants.VTypeAddress }
func (Account) Tag() constants.ValueTag   { return constants.VTypeAccount }
func (Asset) Tag() constants.ValueTag     { return constants.VTypeAsset }
func (Contract) Tag() constants.ValueTag  { return constants.VTypeContract }
func (Msg) Tag() constants.ValueTag       { return constants.VTypeMsg }
func (Void) Tag() constants.ValueTag      { return constants.VTypeVoid }
func (DateTime) Tag() constants.ValueTag  { return constants.VTypeDateTime }
func (TimeDelta) Tag() constants.ValueTag { return constants.VTypeTimeDelta }
func (Undefined) Tag() constants.ValueTag { return constants.VTypeUndefined }

func (Int) isValue()       {}
func (Float) isValue()     {}
func (Bool) isValue()      {}
func (Address) isValue()   {}
func (Account) isValue()   {}
func (Asset) isValue()     {}
func (Contract) isValue()  {}
func (Msg) isValue()       {}
func (Void) isValue()      {}
func (DateTime) isValue()  {}
func (TimeDelta) isValue() {}
func (Undefined) isValue() {}

// NewAddress - address value from Base58 text
func NewAddress(s string) (Address, error) {
	a, err := address.FromBase58(s)
	return Address(a), err
}

// NewAccount - account value from Base58 text
func NewAccount(s string) (Account, error) {
	a, err := address.FromBase58(s)
	return Account(a), err
}

// NewAsset - asset value from Base58 text
func NewAsset(s string) (Asset, error) {
	a, err := address.FromBase58(s)
	return Asset(a), err
}

// NewContract - contract value from Base58 text
func NewContract(s string) (Contract, error) {
	a, err := address.FromBase58(s)
	return Contract(a), err
}

// NewMsg - validated message value
func NewMsg(s string) (Msg, error) {
	if err := checkMsg(Msg(s)); nil != err {
		return "", err
	}
	return Msg(s), nil
}

// NewDateTime - capture the calendar fields of t in its own location
func NewDateTime(t time.Time) DateTime {
	_, offset := t.Zone()
	return DateTime{
		Year:    uint64(t.Year()),
		Month:   uint64(t.Month()),
		Day:     uint64(t.Day()),
		Hour:    uint64(t.Hour()),
		Minute:  uint64(t.Minute()),
		Second:  uint64(t.Second()),
		Offset:  int64(offset),
		Weekday: uint64((int(t.Weekday()) + 6) % 7), // time.Sunday == 0
	}
}

// NewTimeDelta - split a non-negative duration into days … nanoseconds
//
// years and months are left zero as a duration has no calendar
func NewTimeDelta(d time.Duration) (TimeDelta, error) {
	if d < 0 {
		return TimeDelta{}, fault.ErrNegativeDuration
	}
	const day = 24 * time.Hour
	td := TimeDelta{
		Days: uint64(d / day),
	}
	d %= day
	td.Hours = uint64(d / time.Hour)
	d %= time.Hour
	td.Minutes = uint64(d / time.Minute)
	d %= time.Minute
	td.Seconds = uint64(d / time.Second)
	d %= time.Second
	td.Nanoseconds = uint64(d)
	return td, nil
}

func checkMsg(m Msg) error {
	if len(m) > maxMsgLength {
		return fault.ErrFieldTooLong
	}
	if !utf8.ValidString(string(m)) {
		return fault.ErrInvalidText
	}
	return nil
}
