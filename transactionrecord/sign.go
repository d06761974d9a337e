// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"time"

	"github.com/uplink-ledger/uplink-go/account"
	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/fault"
)

// SignedTransaction - a packed header with its signature, ready for
// submission to a ledger node
type SignedTransaction struct {
	Header    Packed            `json:"header"`    // hex
	Signature account.Signature `json:"signature"` // hex
	Origin    address.Address   `json:"origin"`    // base58: signer's account
	Timestamp int64             `json:"timestamp"` // microseconds since the Unix epoch
}

// Sign - sign the packed header
//
// nonce is passed to account.Sign; nil selects a random one
func Sign(header Header, privateKey *account.PrivateKey, nonce []byte) (account.Signature, error) {
	if nil == header {
		return nil, fault.ErrUnknownTransactionKind
	}
	return account.Sign(header.Pack(), privateKey, nonce)
}

// Verify - check a signature over the packed header
func Verify(header Header, publicKey *account.PublicKey, signature account.Signature) error {
	if nil == header {
		return fault.ErrUnknownTransactionKind
	}
	if nil == publicKey {
		return fault.ErrInvalidPublicKey
	}
	return publicKey.CheckSignature(header.Pack(), signature)
}

// NewSignedTransaction - pack and sign a header
func NewSignedTransaction(header Header, privateKey *account.PrivateKey, nonce []byte, timestamp time.Time) (*SignedTransaction, error) {
	signature, err := Sign(header, privateKey, nonce)
	if nil != err {
		return nil, err
	}
	return &SignedTransaction{
		Header:    header.Pack(),
		Signature: signature,
		Origin:    privateKey.PublicKey().Address(),
		Timestamp: timestamp.UnixNano() / int64(time.Microsecond),
	}, nil
}

// Verify - check the origin matches the key and the signature is valid
func (tx *SignedTransaction) Verify(publicKey *account.PublicKey) error {
	if nil == publicKey {
		return fault.ErrInvalidPublicKey
	}
	if !tx.Header.Type().Valid() {
		return fault.ErrNotTransactionPack
	}
	if publicKey.Address() != tx.Origin {
		return fault.ErrInvalidSignature
	}
	return publicKey.CheckSignature(tx.Header, tx.Signature)
}
