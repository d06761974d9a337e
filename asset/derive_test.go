// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/asset"
	"github.com/uplink-ledger/uplink-go/fault"
)

func derive(t *testing.T, name string, issuer address.Address, supply uint64, reference asset.Reference, assetType asset.Type) address.Address {
	a, err := asset.DeriveAddress(name, issuer, supply, reference, assetType)
	assert.NoError(t, err, "derive error")
	return a
}

func TestDeriveAddressVectors(t *testing.T) {
	fractional, err := asset.FractionalType(3)
	assert.NoError(t, err, "construction error")

	tests := []struct {
		assetType asset.Type
		expected  string
	}{
		{asset.DiscreteType(), "5kvL71gPYeWSZZ4Dw2gsBEZKF27KYuEREzcXir7noTAy"},
		{fractional, "QsNZmMVaZCQmZdUmGrEbzQWxmR7rfTKBVhvtpjFDU17"},
	}

	for i, test := range tests {
		a := derive(t, "Gold", address.Address{}, 1000, asset.Token, test.assetType)
		assert.Equal(t, test.expected, a.String(), "%d: wrong derived address", i)
	}
}

func TestDeriveAddressIsPure(t *testing.T) {
	issuer := address.Address{1, 2, 3}
	first := derive(t, "Silver", issuer, 42, asset.USD, asset.BinaryType())
	for i := 0; i < 10; i += 1 {
		again := derive(t, "Silver", issuer, 42, asset.USD, asset.BinaryType())
		assert.Equal(t, first, again, "%d: derivation not deterministic", i)
	}
}

func TestDeriveAddressSensitivity(t *testing.T) {
	issuer := address.Address{1, 2, 3}
	otherIssuer := address.Address{1, 2, 4}
	fractional, err := asset.FractionalType(2)
	assert.NoError(t, err, "construction error")
	otherFractional, err := asset.FractionalType(5)
	assert.NoError(t, err, "construction error")

	base := derive(t, "Silver", issuer, 42, asset.USD, fractional)

	variants := []address.Address{
		derive(t, "Silver.", issuer, 42, asset.USD, fractional),
		derive(t, "Silver", otherIssuer, 42, asset.USD, fractional),
		derive(t, "Silver", issuer, 43, asset.USD, fractional),
		derive(t, "Silver", issuer, 42, asset.GBP, fractional),
		derive(t, "Silver", issuer, 42, asset.USD, otherFractional),
		derive(t, "Silver", issuer, 42, asset.USD, asset.DiscreteType()),
	}

	seen := map[address.Address]int{base: -1}
	for i, v := range variants {
		j, duplicate := seen[v]
		assert.False(t, duplicate, "%d: collides with %d", i, j)
		seen[v] = i
	}
}

// the length prefixes keep field boundaries unambiguous
func TestDeriveAddressFieldBoundaries(t *testing.T) {
	issuer := address.Address{}
	a := derive(t, "AB", issuer, 1, asset.Token, asset.DiscreteType())
	b := derive(t, "A", issuer, 1, asset.Token, asset.DiscreteType())
	assert.NotEqual(t, a, b, "names differing only in length collide")
}

func TestDeriveAddressInvalid(t *testing.T) {
	tests := []struct {
		reference asset.Reference
		assetType asset.Type
		err       error
	}{
		{asset.Reference("YEN"), asset.DiscreteType(), fault.ErrInvalidAssetReference},
		{asset.Reference(""), asset.DiscreteType(), fault.ErrInvalidAssetReference},
		{asset.Token, asset.Type{}, fault.ErrInvalidAssetType},
	}

	for i, item := range tests {
		a, err := asset.DeriveAddress("Gold", address.Address{}, 1000, item.reference, item.assetType)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.True(t, a.IsZero(), "%d: address returned with error", i)
	}
}
