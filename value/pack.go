// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package value

import (
	"encoding/binary"
	"math"

	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
)

// Pack - encode a single value
func Pack(v Value) ([]byte, error) {
	return Append(nil, v)
}

// PackAll - encode a list of values back to back
func PackAll(values []Value) ([]byte, error) {
	buffer := make([]byte, 0, 16*len(values))
	for _, v := range values {
		var err error
		buffer, err = Append(buffer, v)
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

// Append - encode a value onto the end of buffer
//
// Layout: tag byte followed by the big-endian payload.  On error the
// buffer is not returned so no partial encoding escapes.
func Append(buffer []byte, v Value) ([]byte, error) {
	switch v := v.(type) {
	case Int:
		buffer = append(buffer, byte(constants.VTypeInt))
		return appendUint64(buffer, uint64(v)), nil

	case Float:
		buffer = append(buffer, byte(constants.VTypeFloat))
		return appendUint64(buffer, math.Float64bits(float64(v))), nil

	case Bool:
		b := byte(0)
		if v {
			b = 1
		}
		return append(buffer, byte(constants.VTypeBool), b), nil

	case Address:
		buffer = append(buffer, byte(constants.VTypeAddress))
		return append(buffer, v[:]...), nil

	case Account:
		buffer = append(buffer, byte(constants.VTypeAccount))
		return append(buffer, v[:]...), nil

	case Asset:
		buffer = append(buffer, byte(constants.VTypeAsset))
		return append(buffer, v[:]...), nil

	case Contract:
		buffer = append(buffer, byte(constants.VTypeContract))
		return append(buffer, v[:]...), nil

	case Msg:
		if err := checkMsg(v); nil != err {
			return nil, err
		}
		buffer = append(buffer, byte(constants.VTypeMsg))
		buffer = appendUint16(buffer, uint16(len(v)))
		return append(buffer, string(v)...), nil

	case Void:
		return append(buffer, byte(constants.VTypeVoid)), nil

	case DateTime:
		buffer = append(buffer, byte(constants.VTypeDateTime))
		for _, n := range []uint64{v.Year, v.Month, v.Day, v.Hour, v.Minute, v.Second, uint64(v.Offset), v.Weekday} {
			buffer = appendUint64(buffer, n)
		}
		return buffer, nil

	case TimeDelta:
		buffer = append(buffer, byte(constants.VTypeTimeDelta))
		for _, n := range []uint64{v.Years, v.Months, v.Days, v.Hours, v.Minutes, v.Seconds, v.Nanoseconds} {
			buffer = appendUint64(buffer, n)
		}
		return buffer, nil

	case Undefined:
		return append(buffer, byte(constants.VTypeUndefined)), nil

	case nil:
		return nil, fault.ErrNilValue

	default:
		return nil, fault.ErrUnknownValueType
	}
}

// PackedLength - number of bytes Append will add for v
func PackedLength(v Value) int {
	switch v := v.(type) {
	case Int, Float:
		return 1 + 8
	case Bool:
		return 1 + 1
	case Address, Account, Asset, Contract:
		return 1 + 32
	case Msg:
		return 1 + 2 + len(v)
	case Void, Undefined:
		return 1
	case DateTime:
		return 1 + 8*8
	case TimeDelta:
		return 1 + 7*8
	default:
		return 0
	}
}

func appendUint16(buffer []byte, n uint16) []byte {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], n)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, n uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], n)
	return append(buffer, b[:]...)
}
