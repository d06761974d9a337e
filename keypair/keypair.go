// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"github.com/uplink-ledger/uplink-go/account"
	"github.com/uplink-ledger/uplink-go/fault"
)

// RawKeyPair - text version of keys and the derived account
//
// PrivateKey is empty when only the public half is known
type RawKeyPair struct {
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key,omitempty"`
}

// FromPrivateKey - text form of a private key, its public key and account
func FromPrivateKey(privateKey *account.PrivateKey) (*RawKeyPair, error) {
	if nil == privateKey {
		return nil, fault.ErrInvalidPrivateKey
	}
	raw, err := FromPublicKey(privateKey.PublicKey())
	if nil != err {
		return nil, err
	}
	raw.PrivateKey = privateKey.String()
	return raw, nil
}

// FromPublicKey - text form of a public key and its account
func FromPublicKey(publicKey *account.PublicKey) (*RawKeyPair, error) {
	if nil == publicKey {
		return nil, fault.ErrInvalidPublicKey
	}
	return &RawKeyPair{
		Account:   publicKey.Address().String(),
		PublicKey: publicKey.String(),
	}, nil
}

// FromHexPublicKey - text form for a hex public key, validating it
func FromHexPublicKey(publicKey string) (*RawKeyPair, error) {
	pk, err := account.PublicKeyFromHex(publicKey)
	if nil != err {
		return nil, err
	}
	return FromPublicKey(pk)
}
