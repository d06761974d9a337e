// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/fault"
)

// PublicKey - secp256k1 verification key
type PublicKey struct {
	key *secp256k1.PublicKey
}

// PublicKeyFromBytes - parse a compressed (33 byte) or uncompressed
// (65 byte) SEC1 public key
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	key, err := secp256k1.ParsePubKey(b)
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	return &PublicKey{key: key}, nil
}

// PublicKeyFromHex - parse hex text of a SEC1 public key
func PublicKeyFromHex(s string) (*PublicKey, error) {
	b, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	return PublicKeyFromBytes(b)
}

// Bytes - the uncompressed 65 byte form
func (publicKey *PublicKey) Bytes() []byte {
	return publicKey.key.SerializeUncompressed()
}

// Address - the account address of this key
func (publicKey *PublicKey) Address() address.Address {
	return address.Address(sha3.Sum256(publicKey.Bytes()))
}

// CheckSignature - verify a signature over the SHA3-256 digest of message
func (publicKey *PublicKey) CheckSignature(message []byte, signature Signature) error {
	sig, err := ecdsa.ParseDERSignature(signature)
	if nil != err {
		return fault.ErrInvalidSignature
	}
	digest := sha3.Sum256(message)
	if !sig.Verify(digest[:], publicKey.key) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// String - hex text of the uncompressed key
func (publicKey *PublicKey) String() string {
	return hex.EncodeToString(publicKey.Bytes())
}

// GoString - for %#v
func (publicKey *PublicKey) GoString() string {
	return "<public-key:" + publicKey.String() + ">"
}

// MarshalText - hex of the uncompressed key
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	if nil == publicKey.key {
		return nil, fault.ErrInvalidPublicKey
	}
	return []byte(publicKey.String()), nil
}

// UnmarshalText - parse hex of either SEC1 form
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	pk, err := PublicKeyFromHex(string(s))
	if nil != err {
		return err
	}
	*publicKey = *pk
	return nil
}
