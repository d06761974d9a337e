// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/uplink-ledger/uplink-go/account"
	"github.com/uplink-ledger/uplink-go/fault"
)

const nonceSize = 24

// Identity - public data with the private key sealed by a password
type Identity struct {
	Name        string `gluamapper:"name" json:"name"`
	Description string `gluamapper:"description" json:"description"`
	PublicKey   string `gluamapper:"public_key" json:"public_key"`   // hex, uncompressed
	PrivateKey  string `gluamapper:"private_key" json:"private_key"` // hex: nonce + secretbox
	Salt        string `gluamapper:"salt" json:"salt"`               // hex
}

// NewIdentity - seal a private key under a password
func NewIdentity(name string, description string, privateKey *account.PrivateKey, password string) (*Identity, error) {
	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return nil, err
	}
	defer zero(secretKey[:])

	plaintext := privateKey.Bytes()
	defer zero(plaintext)

	encrypted, err := encryptData(plaintext, secretKey)
	if nil != err {
		return nil, err
	}

	return &Identity{
		Name:        name,
		Description: description,
		PublicKey:   privateKey.PublicKey().String(),
		PrivateKey:  encrypted,
		Salt:        salt.String(),
	}, nil
}

// Account - the public key of this identity
func (identity *Identity) Account() (*account.PublicKey, error) {
	return account.PublicKeyFromHex(identity.PublicKey)
}

// Unlock - decrypt the private key with the password
//
// the caller must Zero the key when done
func (identity *Identity) Unlock(password string) (*account.PrivateKey, error) {
	salt := new(Salt)
	if err := salt.UnmarshalText([]byte(identity.Salt)); nil != err {
		return nil, err
	}

	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, err
	}
	defer zero(secretKey[:])

	plaintext, err := decryptData(identity.PrivateKey, secretKey)
	if nil != err {
		return nil, fault.ErrInvalidPassword
	}
	defer zero(plaintext)

	privateKey, err := account.PrivateKeyFromBytes(plaintext)
	if nil != err {
		return nil, err
	}

	publicKey, err := identity.Account()
	if nil != err {
		privateKey.Zero()
		return nil, err
	}
	if publicKey.String() != privateKey.PublicKey().String() {
		privateKey.Zero()
		return nil, fault.ErrInvalidPrivateKey
	}
	return privateKey, nil
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if nil != err {
		return nil, nil, err
	}

	secretKey, err := generateKey(password, salt)
	if nil != err {
		return nil, nil, err
	}

	return salt, secretKey, nil
}

func generateKey(password string, salt *Salt) (*[32]byte, error) {
	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if nil != err {
		return nil, err
	}
	defer zero(hash)

	var secretKey [32]byte
	copy(secretKey[:], hash)
	return &secretKey, nil
}

// encrypt and convert to hex, nonce first
func encryptData(data []byte, secretKey *[32]byte) (string, error) {
	if account.PrivateKeyLength != len(data) {
		return "", fault.ErrCryptoFailed
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); nil != err {
		return "", fault.ErrCryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], data, &nonce, secretKey)
	return hex.EncodeToString(ciphertext), nil
}

// decrypt hex produced by encryptData
func decryptData(ciphertext string, secretKey *[32]byte) ([]byte, error) {
	encrypted, err := hex.DecodeString(ciphertext)
	if nil != err {
		return nil, err
	}
	if len(encrypted) <= nonceSize {
		return nil, fault.ErrCryptoFailed
	}

	var nonce [nonceSize]byte
	copy(nonce[:], encrypted[:nonceSize])

	decrypted, ok := secretbox.Open(nil, encrypted[nonceSize:], &nonce, secretKey)
	if !ok {
		return nil, fault.ErrCryptoFailed
	}
	return decrypted, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
