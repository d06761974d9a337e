// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/uplink-ledger/uplink-go/fault"
)

// Reference - unit an asset is denominated in
type Reference string

// accepted references
const (
	USD      = Reference("USD")
	GBP      = Reference("GBP")
	EUR      = Reference("EUR")
	CHF      = Reference("CHF")
	Token    = Reference("Token")
	Security = Reference("Security")
)

// ParseReference - validate reference text
//
// matching is case sensitive
func ParseReference(s string) (Reference, error) {
	switch r := Reference(s); r {
	case USD, GBP, EUR, CHF, Token, Security:
		return r, nil
	default:
		return "", fault.ErrInvalidAssetReference
	}
}

// Valid - true for one of the accepted references
func (r Reference) Valid() bool {
	_, err := ParseReference(string(r))
	return nil == err
}

// String - for use by the fmt package (for %s)
func (r Reference) String() string {
	return string(r)
}

// UnmarshalText - parse and validate JSON text
func (r *Reference) UnmarshalText(s []byte) error {
	v, err := ParseReference(string(s))
	if nil != err {
		return err
	}
	*r = v
	return nil
}
