// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uplink-ledger/uplink-go/configuration"
	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
	"github.com/uplink-ledger/uplink-go/transactionrecord"
)

const (
	zeroBase58 = "11111111111111111111111111111111"
	goldHex    = "00c8" +
		"46af05af920256082fd4264c752c0d4e837a8c0ebe812c859f3e07fddccbd16a" +
		"0004" + "476f6c64" +
		"00000000000003e8" +
		"0001" +
		"0005" + "546f6b656e" +
		"0008" + "4469736372657465"
)

func writeFile(t *testing.T, name string, content string) string {
	fileName := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fileName, []byte(content), 0o600)
	assert.NoError(t, err, "write file error")
	return fileName
}

func TestBuildHeaderKinds(t *testing.T) {
	precision := 2.0
	tests := []struct {
		tx  configuration.Transaction
		tag constants.TransactionTag
	}{
		{configuration.Transaction{Kind: "CreateAccount", PublicKey: "0102", Timezone: "UTC"}, constants.TxTypeCreateAccount},
		{configuration.Transaction{Kind: "RevokeAccount", Account: zeroBase58}, constants.TxTypeRevokeAccount},
		{configuration.Transaction{Kind: "CreateAsset", Name: "Gold", Issuer: zeroBase58, Supply: 10, Reference: "USD", AssetType: "Fractional", Precision: &precision}, constants.TxTypeCreateAsset},
		{configuration.Transaction{Kind: "Transfer", Asset: zeroBase58, To: zeroBase58, Balance: -5}, constants.TxTypeTransfer},
		{configuration.Transaction{Kind: "Circulate", Asset: zeroBase58, Amount: 7}, constants.TxTypeCirculate},
		{configuration.Transaction{Kind: "Bind", Contract: zeroBase58, Asset: zeroBase58, Proof: "ff00"}, constants.TxTypeBind},
		{configuration.Transaction{Kind: "RevokeAsset", Asset: zeroBase58}, constants.TxTypeRevokeAsset},
		{configuration.Transaction{Kind: "CreateContract", Contract: zeroBase58, Script: "return 1"}, constants.TxTypeCreateContract},
		{configuration.Transaction{Kind: "Call", Contract: zeroBase58, Method: "run"}, constants.TxTypeCall},
		{configuration.Transaction{Kind: "SyncLocal", Contract: zeroBase58}, constants.TxTypeSyncLocal},
	}

	for i, item := range tests {
		tx := item.tx
		header, err := buildHeader(&tx)
		if !assert.NoError(t, err, "%d: %s error", i, item.tx.Kind) {
			continue
		}
		assert.Equal(t, item.tag, header.Tag(), "%d: wrong tag", i)
		assert.Equal(t, item.tag, header.Pack().Type(), "%d: wrong packed tag", i)
		assert.Equal(t, transactionrecord.ExpectedLength(header), len(header.Pack()), "%d: wrong length", i)
	}
}

func TestBuildHeaderFromFile(t *testing.T) {
	fileName := writeFile(t, "gold.lua", `
return {
    kind = "CreateAsset",
    name = "Gold",
    issuer = "11111111111111111111111111111111",
    supply = 1000,
    reference = "Token",
    asset_type = "Discrete",
}
`)

	header, err := readHeader(fileName)
	assert.NoError(t, err, "read error")

	out := encode(header)
	assert.Equal(t, "CreateAsset", out.Kind, "wrong kind")
	assert.Equal(t, uint16(200), out.Tag, "wrong tag")
	assert.Equal(t, len(out.Record), out.Length, "wrong length")
	assert.Equal(t, goldHex, hex.EncodeToString(out.Record), "wrong record")
}

func TestBuildHeaderErrors(t *testing.T) {
	tests := []struct {
		tx    configuration.Transaction
		field string
		err   error
	}{
		{configuration.Transaction{Kind: "CreateAccount", PublicKey: "xyz"}, "publicKey", fault.ErrInvalidPublicKey},
		{configuration.Transaction{Kind: "RevokeAccount", Account: "0OIl"}, "account", nil},
		{configuration.Transaction{Kind: "Transfer", Asset: zeroBase58, To: ""}, "to", nil},
		{configuration.Transaction{Kind: "CreateAsset", Issuer: zeroBase58, Name: "x", Reference: "YEN"}, "reference", nil},
		{configuration.Transaction{Kind: "CreateAsset", Issuer: zeroBase58, Name: "x", Reference: "USD", AssetType: "Lumpy"}, "assetType", nil},
		{configuration.Transaction{Kind: "Bind", Contract: zeroBase58, Asset: zeroBase58, Proof: "zz"}, "proof", nil},
		{configuration.Transaction{Kind: "Call", Contract: zeroBase58, Method: "m", Arguments: []configuration.Argument{{Type: "int", Value: 1.5}}}, "args", ErrArgumentType},
	}

	for i, item := range tests {
		tx := item.tx
		_, err := buildHeader(&tx)
		if !assert.Error(t, err, "%d: expected error", i) {
			continue
		}
		var fieldError *fault.FieldError
		if assert.True(t, errors.As(err, &fieldError), "%d: not a field error: %s", i, err) {
			assert.Equal(t, item.tx.Kind, fieldError.Kind, "%d: wrong kind", i)
			assert.Equal(t, item.field, fieldError.Field, "%d: wrong field", i)
		}
		if nil != item.err {
			assert.True(t, errors.Is(err, item.err), "%d: wrong error: %s", i, err)
		}
	}
}

func TestBuildHeaderUnknownKind(t *testing.T) {
	_, err := buildHeader(&configuration.Transaction{Kind: "Mint"})
	assert.Equal(t, fault.ErrUnknownTransactionKind, err, "wrong error")
}

// fractional, negative or oversized Lua numbers are never truncated
func TestBuildHeaderNumbers(t *testing.T) {
	fractional := 2.9
	hugePrecision := 1e10

	asset := func(supply float64, precision *float64) configuration.Transaction {
		return configuration.Transaction{
			Kind:      "CreateAsset",
			Name:      "Gold",
			Issuer:    zeroBase58,
			Supply:    supply,
			Reference: "Token",
			AssetType: "Fractional",
			Precision: precision,
		}
	}
	three := 3.0

	tests := []struct {
		tx    configuration.Transaction
		field string
		err   error
	}{
		{asset(-1, &three), "supply", ErrNumberOutOfRange},
		{asset(10.75, &three), "supply", ErrNotInteger},
		{asset(1<<64, &three), "supply", ErrNumberOutOfRange},
		{asset(math.NaN(), &three), "supply", ErrNotInteger},
		{asset(10, &fractional), "precision", ErrNotInteger},
		{asset(10, &hugePrecision), "precision", ErrNumberOutOfRange},
		{configuration.Transaction{Kind: "Transfer", Asset: zeroBase58, To: zeroBase58, Balance: -5.9}, "balance", ErrNotInteger},
		{configuration.Transaction{Kind: "Transfer", Asset: zeroBase58, To: zeroBase58, Balance: 1 << 63}, "balance", ErrNumberOutOfRange},
		{configuration.Transaction{Kind: "Circulate", Asset: zeroBase58, Amount: 0.5}, "amount", ErrNotInteger},
		{configuration.Transaction{Kind: "Circulate", Asset: zeroBase58, Amount: math.Inf(-1)}, "amount", ErrNumberOutOfRange},
	}

	for i, item := range tests {
		tx := item.tx
		_, err := buildHeader(&tx)
		var fieldError *fault.FieldError
		if !assert.True(t, errors.As(err, &fieldError), "%d: expected field error, got: %v", i, err) {
			continue
		}
		assert.Equal(t, item.tx.Kind, fieldError.Kind, "%d: wrong kind", i)
		assert.Equal(t, item.field, fieldError.Field, "%d: wrong field", i)
		assert.True(t, errors.Is(err, item.err), "%d: wrong error: %s", i, err)
	}
}

func TestBuildHeaderNumberLimits(t *testing.T) {
	tests := []struct {
		tx       configuration.Transaction
		expected string
	}{
		{configuration.Transaction{Kind: "Transfer", Asset: zeroBase58, To: zeroBase58, Balance: -(1 << 63)}, "8000000000000000"},
		{configuration.Transaction{Kind: "Circulate", Asset: zeroBase58, Amount: -5}, "fffffffffffffffb"},
	}

	for i, item := range tests {
		tx := item.tx
		header, err := buildHeader(&tx)
		if !assert.NoError(t, err, "%d: build error", i) {
			continue
		}
		packed := hex.EncodeToString(header.Pack())
		assert.Equal(t, item.expected, packed[len(packed)-16:], "%d: wrong integer field", i)
	}
}
