// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"os"

	"github.com/uplink-ledger/uplink-go/account"
	"github.com/uplink-ledger/uplink-go/fault"
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}
	return os.ExpandEnv(file), nil
}

// check for non-blank file name
func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", ErrRequiredFileName
	}
	return fileName, nil
}

// identity name is required
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

// password is required
func checkPassword(password string) (string, error) {
	if "" == password {
		return "", ErrRequiredPassword
	}
	return password, nil
}

// optional 32 byte hex nonce, nil if blank
func checkNonce(nonce string) ([]byte, error) {
	if "" == nonce {
		return nil, nil
	}
	b, err := hex.DecodeString(nonce)
	if nil != err || account.NonceLength != len(b) {
		return nil, fault.ErrInvalidNonce
	}
	return b, nil
}

// hex DER signature is required
func checkSignature(s string) (account.Signature, error) {
	if "" == s {
		return nil, ErrRequiredSignature
	}
	var signature account.Signature
	if err := signature.UnmarshalText([]byte(s)); nil != err {
		return nil, fault.ErrInvalidSignature
	}
	return signature, nil
}

// hex public key is required
func checkPublicKey(s string) (*account.PublicKey, error) {
	if "" == s {
		return nil, ErrRequiredPublicKey
	}
	return account.PublicKeyFromHex(s)
}
