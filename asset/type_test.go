// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uplink-ledger/uplink-go/asset"
	"github.com/uplink-ledger/uplink-go/fault"
)

func intPointer(i int) *int {
	return &i
}

func TestNewType(t *testing.T) {
	tests := []struct {
		kind      string
		precision *int
		err       error
	}{
		{"Discrete", nil, nil},
		{"Binary", nil, nil},
		{"Fractional", intPointer(1), nil},
		{"Fractional", intPointer(3), nil},
		{"Fractional", intPointer(6), nil},
		{"Fractional", intPointer(0), fault.ErrInvalidPrecision},
		{"Fractional", intPointer(7), fault.ErrInvalidPrecision},
		{"Fractional", intPointer(-1), fault.ErrInvalidPrecision},
		{"Fractional", nil, fault.ErrInvalidPrecision},
		{"Discrete", intPointer(2), fault.ErrPrecisionNotAllowed},
		{"Binary", intPointer(0), fault.ErrPrecisionNotAllowed},
		{"discrete", nil, fault.ErrInvalidAssetType},
		{"", nil, fault.ErrInvalidAssetType},
		{"Fungible", intPointer(2), fault.ErrInvalidAssetType},
	}

	for i, test := range tests {
		assetType, err := asset.NewType(test.kind, test.precision)
		assert.Equal(t, test.err, err, "%d: wrong error for %q", i, test.kind)
		if nil == test.err {
			assert.True(t, assetType.Valid(), "%d: constructed type not valid", i)
			assert.Equal(t, asset.Kind(test.kind), assetType.Kind(), "%d: wrong kind", i)
		} else {
			assert.False(t, assetType.Valid(), "%d: failed construction returned a valid type", i)
		}
	}
}

func TestPackType(t *testing.T) {
	discrete := asset.DiscreteType()
	assert.Equal(t, []byte{0x00, 0x08, 'D', 'i', 's', 'c', 'r', 'e', 't', 'e'}, discrete.Pack(), "wrong discrete packing")

	binary := asset.BinaryType()
	assert.Equal(t, []byte{0x00, 0x06, 'B', 'i', 'n', 'a', 'r', 'y'}, binary.Pack(), "wrong binary packing")

	_, err := asset.FractionalType(7)
	assert.Equal(t, fault.ErrInvalidPrecision, err, "precision 7 accepted")

	fractional, err := asset.FractionalType(3)
	assert.NoError(t, err, "precision 3 rejected")
	expected := []byte{
		0x00, 0x0a, 'F', 'r', 'a', 'c', 't', 'i', 'o', 'n', 'a', 'l',
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
	}
	assert.Equal(t, expected, fractional.Pack(), "wrong fractional packing")

	// the precision adds exactly 8 trailing bytes to the kind name encoding
	plain := 2 + len(asset.Fractional)
	assert.Equal(t, plain+8, len(fractional.Pack()), "precision is not exactly 8 bytes")

	p, ok := fractional.Precision()
	assert.True(t, ok, "fractional has no precision")
	assert.Equal(t, 3, p, "wrong precision")

	_, ok = discrete.Precision()
	assert.False(t, ok, "discrete has a precision")

	assert.Equal(t, "Fractional(3)", fractional.String(), "wrong text")
	assert.Equal(t, "Binary", binary.String(), "wrong text")
}

func TestTypeJSON(t *testing.T) {
	fractional, err := asset.FractionalType(2)
	assert.NoError(t, err, "construction error")

	buffer, err := json.Marshal(fractional)
	assert.NoError(t, err, "marshal error")
	assert.Equal(t, `{"type":"Fractional","precision":2}`, string(buffer), "wrong JSON")

	buffer, err = json.Marshal(asset.DiscreteType())
	assert.NoError(t, err, "marshal error")
	assert.Equal(t, `{"type":"Discrete","precision":null}`, string(buffer), "wrong JSON")

	var decoded asset.Type
	err = json.Unmarshal([]byte(`{"type":"Fractional","precision":2}`), &decoded)
	assert.NoError(t, err, "unmarshal error")
	assert.Equal(t, fractional, decoded, "round trip mismatch")

	invalid := []struct {
		text string
		err  error
	}{
		{`{"type":"Fractional","precision":9}`, fault.ErrInvalidPrecision},
		{`{"type":"Fractional"}`, fault.ErrInvalidPrecision},
		{`{"type":"Binary","precision":1}`, fault.ErrPrecisionNotAllowed},
		{`{"type":"Other","precision":null}`, fault.ErrInvalidAssetType},
	}
	for i, test := range invalid {
		err := json.Unmarshal([]byte(test.text), &decoded)
		assert.Equal(t, test.err, err, "%d: wrong error for %s", i, test.text)
	}
}

func TestParseReference(t *testing.T) {
	for _, s := range []string{"USD", "GBP", "EUR", "CHF", "Token", "Security"} {
		r, err := asset.ParseReference(s)
		assert.NoError(t, err, "rejected %q", s)
		assert.Equal(t, s, r.String(), "wrong text")
		assert.True(t, r.Valid(), "%q not valid", s)
	}

	for _, s := range []string{"", "usd", "JPY", "token", "Security "} {
		_, err := asset.ParseReference(s)
		assert.Equal(t, fault.ErrInvalidAssetReference, err, "accepted %q", s)
		assert.False(t, asset.Reference(s).Valid(), "%q valid", s)
	}
}
