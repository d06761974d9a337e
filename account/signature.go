// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// Signature - DER encoded ECDSA signature
type Signature []byte

// String - hex for %s
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - hex for %#v
func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// Components - the r and s values as 32 byte big-endian integers
func (signature Signature) Components() (r [32]byte, s [32]byte, err error) {
	sig, err := ecdsa.ParseDERSignature(signature)
	if nil != err {
		return r, s, err
	}
	rScalar := sig.R()
	sScalar := sig.S()
	rScalar.PutBytes(&r)
	sScalar.PutBytes(&s)
	return r, s, nil
}

// Scan - read hex text for the fmt scan routines
func (signature *Signature) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isHexDigit)
	if nil != err {
		return err
	}
	return signature.UnmarshalText(token)
}

// MarshalText - signature to hex
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - hex to signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	*signature = sig[:byteCount]
	return nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
