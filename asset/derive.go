// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/fault"
)

// DeriveAddress - the content address of a new asset
//
// SHA3-256 of:
//   Uint64(len name) name
//   issuer (32 bytes)
//   Uint64(supply)
//   Uint64(len reference) reference
//   assetType.Pack()
//
// all integers big-endian; an unknown reference or a zero Type is
// rejected so no address exists for an asset that cannot be created
func DeriveAddress(name string, issuer address.Address, supply uint64, reference Reference, assetType Type) (address.Address, error) {
	if !reference.Valid() {
		return address.Address{}, fault.ErrInvalidAssetReference
	}
	if !assetType.Valid() {
		return address.Address{}, fault.ErrInvalidAssetType
	}

	h := sha3.New256()

	var n [8]byte

	binary.BigEndian.PutUint64(n[:], uint64(len(name)))
	h.Write(n[:])
	h.Write([]byte(name))

	h.Write(issuer[:])

	binary.BigEndian.PutUint64(n[:], supply)
	h.Write(n[:])

	binary.BigEndian.PutUint64(n[:], uint64(len(reference)))
	h.Write(n[:])
	h.Write([]byte(reference))

	h.Write(assetType.Pack())

	var a address.Address
	copy(a[:], h.Sum(nil))
	return a, nil
}
