// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uplink-ledger/uplink-go/constants"
)

func TestTransactionTags(t *testing.T) {
	tests := []struct {
		tag   constants.TransactionTag
		value uint16
		name  string
	}{
		{constants.TxTypeCreateAccount, 100, "CreateAccount"},
		{constants.TxTypeRevokeAccount, 101, "RevokeAccount"},
		{constants.TxTypeCreateAsset, 200, "CreateAsset"},
		{constants.TxTypeTransfer, 201, "Transfer"},
		{constants.TxTypeCirculate, 202, "Circulate"},
		{constants.TxTypeBind, 203, "Bind"},
		{constants.TxTypeRevokeAsset, 204, "RevokeAsset"},
		{constants.TxTypeCreateContract, 300, "CreateContract"},
		{constants.TxTypeCall, 301, "Call"},
		{constants.TxTypeSyncLocal, 302, "SyncLocal"},
	}

	seen := make(map[constants.TransactionTag]struct{})
	for i, test := range tests {
		assert.Equal(t, test.value, uint16(test.tag), "%d: wrong tag value", i)
		assert.Equal(t, test.name, test.tag.String(), "%d: wrong tag name", i)
		assert.True(t, test.tag.Valid(), "%d: tag not valid", i)
		_, duplicate := seen[test.tag]
		assert.False(t, duplicate, "%d: duplicate tag", i)
		seen[test.tag] = struct{}{}
	}

	assert.False(t, constants.TransactionTag(0).Valid(), "zero tag is valid")
	assert.Equal(t, "*unknown*", constants.TransactionTag(999).String(), "wrong unknown name")
}

func TestValueTags(t *testing.T) {
	names := []string{
		"VInt", "VFloat", "VBool", "VAddress", "VAccount", "VAsset",
		"VContract", "VMsg", "VVoid", "VDateTime", "VTimeDelta", "VUndefined",
	}
	for i, name := range names {
		tag := constants.ValueTag(i)
		assert.True(t, tag.Valid(), "%d: tag not valid", i)
		assert.Equal(t, name, tag.String(), "%d: wrong tag name", i)
	}

	assert.Equal(t, constants.ValueTag(11), constants.VTypeUndefined, "wrong final tag")
	assert.False(t, constants.ValueTag(12).Valid(), "tag past end is valid")
	assert.Equal(t, "*unknown*", constants.ValueTag(200).String(), "wrong unknown name")
}
