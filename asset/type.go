// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"
	"encoding/json"
	"strconv"

	"github.com/uplink-ledger/uplink-go/fault"
)

// Kind - name of an asset type as it appears on the wire
type Kind string

// the recognised kinds
const (
	Discrete   = Kind("Discrete")
	Binary     = Kind("Binary")
	Fractional = Kind("Fractional")
)

// precision limits for Fractional assets
const (
	MinimumPrecision = 1
	MaximumPrecision = 6
)

// Type - a validated asset type
//
// precision is only meaningful for Fractional; the zero Type is not
// valid and must not be packed
type Type struct {
	kind      Kind
	precision int
}

// NewType - validate a kind name and optional precision
//
// precision must be non-nil exactly when kind is Fractional
func NewType(kind string, precision *int) (Type, error) {
	switch Kind(kind) {
	case Fractional:
		if nil == precision || *precision < MinimumPrecision || *precision > MaximumPrecision {
			return Type{}, fault.ErrInvalidPrecision
		}
		return Type{kind: Fractional, precision: *precision}, nil

	case Discrete, Binary:
		if nil != precision {
			return Type{}, fault.ErrPrecisionNotAllowed
		}
		return Type{kind: Kind(kind)}, nil

	default:
		return Type{}, fault.ErrInvalidAssetType
	}
}

// DiscreteType - indivisible units
func DiscreteType() Type {
	return Type{kind: Discrete}
}

// BinaryType - present or absent
func BinaryType() Type {
	return Type{kind: Binary}
}

// FractionalType - divisible to the given number of decimal places
func FractionalType(precision int) (Type, error) {
	return NewType(string(Fractional), &precision)
}

// Kind - the kind of this type
func (t Type) Kind() Kind {
	return t.kind
}

// Precision - the precision, ok is false unless Fractional
func (t Type) Precision() (precision int, ok bool) {
	if Fractional != t.kind {
		return 0, false
	}
	return t.precision, true
}

// Valid - true if the type came from a constructor
func (t Type) Valid() bool {
	switch t.kind {
	case Discrete, Binary:
		return true
	case Fractional:
		return t.precision >= MinimumPrecision && t.precision <= MaximumPrecision
	}
	return false
}

// Pack - 2 byte length + kind name, then an 8 byte signed precision
// for Fractional only
func (t Type) Pack() []byte {
	size := 2 + len(t.kind)
	if Fractional == t.kind {
		size += 8
	}
	buffer := make([]byte, size)
	binary.BigEndian.PutUint16(buffer, uint16(len(t.kind)))
	copy(buffer[2:], t.kind)
	if Fractional == t.kind {
		binary.BigEndian.PutUint64(buffer[2+len(t.kind):], uint64(int64(t.precision)))
	}
	return buffer
}

// String - for use by the fmt package (for %s)
func (t Type) String() string {
	if Fractional == t.kind {
		return string(t.kind) + "(" + strconv.Itoa(t.precision) + ")"
	}
	return string(t.kind)
}

// the RPC form: {"type": "Fractional", "precision": 2}
type typeJSON struct {
	Type      string `json:"type"`
	Precision *int   `json:"precision"`
}

// MarshalJSON - convert to the RPC form
func (t Type) MarshalJSON() ([]byte, error) {
	j := typeJSON{
		Type: string(t.kind),
	}
	if p, ok := t.Precision(); ok {
		j.Precision = &p
	}
	return json.Marshal(j)
}

// UnmarshalJSON - convert from the RPC form with full validation
func (t *Type) UnmarshalJSON(s []byte) error {
	var j typeJSON
	if err := json.Unmarshal(s, &j); nil != err {
		return err
	}
	v, err := NewType(j.Type, j.Precision)
	if nil != err {
		return err
	}
	*t = v
	return nil
}
