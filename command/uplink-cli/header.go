// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/asset"
	"github.com/uplink-ledger/uplink-go/configuration"
	"github.com/uplink-ledger/uplink-go/fault"
	"github.com/uplink-ledger/uplink-go/transactionrecord"
)

// buildHeader - construct the header a transaction description names
func buildHeader(tx *configuration.Transaction) (transactionrecord.Header, error) {
	kind := tx.Kind

	// decode a base58 field, naming it on failure
	addressOf := func(field string, text string) (address.Address, error) {
		a, err := address.FromBase58(text)
		return a, fault.Field(kind, field, err)
	}

	switch kind {
	case "CreateAccount":
		publicKey, err := hex.DecodeString(tx.PublicKey)
		if nil != err {
			return nil, fault.Field(kind, "publicKey", fault.ErrInvalidPublicKey)
		}
		return transactionrecord.NewCreateAccount(publicKey, tx.Timezone, transactionrecord.Metadata(tx.Metadata))

	case "RevokeAccount":
		account, err := addressOf("account", tx.Account)
		if nil != err {
			return nil, err
		}
		return transactionrecord.NewRevokeAccount(account)

	case "CreateAsset":
		issuer, err := addressOf("issuer", tx.Issuer)
		if nil != err {
			return nil, err
		}
		reference, err := asset.ParseReference(tx.Reference)
		if nil != err {
			return nil, fault.Field(kind, "reference", err)
		}
		supply, err := toUint64(tx.Supply)
		if nil != err {
			return nil, fault.Field(kind, "supply", err)
		}
		precision, err := toInt(tx.Precision)
		if nil != err {
			return nil, fault.Field(kind, "precision", err)
		}
		assetType, err := asset.NewType(tx.AssetType, precision)
		if nil != err {
			return nil, fault.Field(kind, "assetType", err)
		}
		return transactionrecord.NewCreateAsset(tx.Name, issuer, supply, reference, assetType)

	case "Transfer":
		assetAddress, err := addressOf("asset", tx.Asset)
		if nil != err {
			return nil, err
		}
		to, err := addressOf("to", tx.To)
		if nil != err {
			return nil, err
		}
		balance, err := toInt64(tx.Balance)
		if nil != err {
			return nil, fault.Field(kind, "balance", err)
		}
		return transactionrecord.NewTransfer(assetAddress, to, balance)

	case "Circulate":
		assetAddress, err := addressOf("asset", tx.Asset)
		if nil != err {
			return nil, err
		}
		amount, err := toInt64(tx.Amount)
		if nil != err {
			return nil, fault.Field(kind, "amount", err)
		}
		return transactionrecord.NewCirculate(assetAddress, amount)

	case "Bind":
		contract, err := addressOf("contract", tx.Contract)
		if nil != err {
			return nil, err
		}
		assetAddress, err := addressOf("asset", tx.Asset)
		if nil != err {
			return nil, err
		}
		proof, err := hex.DecodeString(tx.Proof)
		if nil != err {
			return nil, fault.Field(kind, "proof", err)
		}
		return transactionrecord.NewBind(contract, assetAddress, proof)

	case "RevokeAsset":
		assetAddress, err := addressOf("asset", tx.Asset)
		if nil != err {
			return nil, err
		}
		return transactionrecord.NewRevokeAsset(assetAddress)

	case "CreateContract":
		contract, err := addressOf("contract", tx.Contract)
		if nil != err {
			return nil, err
		}
		return transactionrecord.NewCreateContract(contract, tx.Script)

	case "Call":
		contract, err := addressOf("contract", tx.Contract)
		if nil != err {
			return nil, err
		}
		args, err := parseArguments(tx.Arguments)
		if nil != err {
			return nil, fault.Field(kind, "args", err)
		}
		return transactionrecord.NewCall(contract, tx.Method, args)

	case "SyncLocal":
		contract, err := addressOf("contract", tx.Contract)
		if nil != err {
			return nil, err
		}
		return transactionrecord.NewSyncLocal(contract)

	default:
		return nil, fault.ErrUnknownTransactionKind
	}
}
