// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/uplink-ledger/uplink-go/fault"
)

// PrivateKeyLength - bytes in a raw private key
const PrivateKeyLength = 32

// PrivateKey - secp256k1 signing key
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// NewPrivateKey - generate a random key
func NewPrivateKey() (*PrivateKey, error) {
	key, err := secp256k1.GeneratePrivateKey()
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: key}, nil
}

// PrivateKeyFromBytes - a key from its 32 byte big-endian scalar
//
// the scalar must be in the range [1, n-1]
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if PrivateKeyLength != len(b) {
		return nil, fault.ErrInvalidPrivateKey
	}
	var scalar secp256k1.ModNScalar
	overflow := scalar.SetByteSlice(b)
	if overflow || scalar.IsZero() {
		scalar.Zero()
		return nil, fault.ErrInvalidPrivateKey
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&scalar)}, nil
}

// PrivateKeyFromHex - a key from 64 hex digits
func PrivateKeyFromHex(s string) (*PrivateKey, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidPrivateKey
	}
	defer zeroBytes(b)
	return PrivateKeyFromBytes(b)
}

// PublicKey - the matching verification key
func (privateKey *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: privateKey.key.PubKey()}
}

// Bytes - the raw 32 byte scalar
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.key.Serialize()
}

// String - hex text of the scalar
func (privateKey *PrivateKey) String() string {
	return hex.EncodeToString(privateKey.key.Serialize())
}

// GoString - do not leak the key through %#v
func (privateKey *PrivateKey) GoString() string {
	return "<private-key>"
}

// Zero - clear the key material
func (privateKey *PrivateKey) Zero() {
	privateKey.key.Zero()
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
