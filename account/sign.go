// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/sha3"

	"github.com/uplink-ledger/uplink-go/fault"
)

// NonceLength - bytes in an explicit signing nonce
const NonceLength = 32

// maximum attempts at a random nonce before giving up
const maxSignAttempts = 16

// Sign - ECDSA signature over the SHA3-256 digest of message
//
// a nil nonce selects a fresh random k; otherwise nonce is the 32 byte
// big-endian k and the result is deterministic.
func Sign(message []byte, privateKey *PrivateKey, nonce []byte) (Signature, error) {
	if nil == privateKey || nil == privateKey.key {
		return nil, fault.ErrInvalidPrivateKey
	}
	digest := sha3.Sum256(message)
	d := &privateKey.key.Key

	if nil != nonce {
		if NonceLength != len(nonce) {
			return nil, fault.ErrInvalidNonce
		}
		var k secp256k1.ModNScalar
		defer k.Zero()
		if overflow := k.SetByteSlice(nonce); overflow || k.IsZero() {
			return nil, fault.ErrInvalidNonce
		}
		sig, ok := signWithNonce(d, digest[:], &k)
		if !ok {
			return nil, fault.ErrInvalidNonce
		}
		return sig.Serialize(), nil
	}

	for i := 0; i < maxSignAttempts; i += 1 {
		k, err := secp256k1.GeneratePrivateKey()
		if nil != err {
			return nil, err
		}
		sig, ok := signWithNonce(d, digest[:], &k.Key)
		k.Zero()
		if ok {
			return sig.Serialize(), nil
		}
	}
	return nil, fault.ErrSignatureGenerationFails
}

// r = x(kG) mod n, s = k⁻¹(e + r·d) mod n, normalised to low S
func signWithNonce(d *secp256k1.ModNScalar, hash []byte, k *secp256k1.ModNScalar) (*ecdsa.Signature, bool) {
	var kG secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &kG)
	kG.ToAffine()

	var r secp256k1.ModNScalar
	r.SetByteSlice(kG.X.Bytes()[:])
	if r.IsZero() {
		return nil, false
	}

	var e secp256k1.ModNScalar
	e.SetByteSlice(hash)

	var kInverse secp256k1.ModNScalar
	kInverse.InverseValNonConst(k)
	defer kInverse.Zero()

	var s secp256k1.ModNScalar
	s.Mul2(d, &r).Add(&e).Mul(&kInverse)
	if s.IsZero() {
		return nil, false
	}
	if s.IsOverHalfOrder() {
		s.Negate()
	}
	return ecdsa.NewSignature(&r, &s), true
}
