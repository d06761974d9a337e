// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/asset"
	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
)

// reserved field written after the supply
const createAssetReserved = 1

// CreateAsset - issue a new asset at its derived address
type CreateAsset struct {
	address   address.Address
	name      string
	supply    uint64
	issuer    address.Address
	reference asset.Reference
	assetType asset.Type
}

// Transfer - move a balance of an asset to another holder
type Transfer struct {
	asset   address.Address
	to      address.Address
	balance int64
}

// Circulate - put an amount of an asset into circulation
type Circulate struct {
	asset  address.Address
	amount int64
}

// RevokeAsset - remove an asset
type RevokeAsset struct {
	asset address.Address
}

// Bind - attach an asset to a contract with an opaque proof
type Bind struct {
	contract address.Address
	asset    address.Address
	proof    []byte
}

// NewCreateAsset - validate an asset creation and derive its address
func NewCreateAsset(name string, issuer address.Address, supply uint64, reference asset.Reference, assetType asset.Type) (*CreateAsset, error) {
	const kind = "CreateAsset"

	if err := checkString16(name, false); nil != err {
		return nil, fault.Field(kind, "name", err)
	}
	if !reference.Valid() {
		return nil, fault.Field(kind, "reference", fault.ErrInvalidAssetReference)
	}
	if !assetType.Valid() {
		return nil, fault.Field(kind, "assetType", fault.ErrInvalidAssetType)
	}

	assetAddress, err := asset.DeriveAddress(name, issuer, supply, reference, assetType)
	if nil != err {
		return nil, fault.Field(kind, "address", err)
	}

	return &CreateAsset{
		address:   assetAddress,
		name:      name,
		supply:    supply,
		issuer:    issuer,
		reference: reference,
		assetType: assetType,
	}, nil
}

// Tag - the kind tag
func (*CreateAsset) Tag() constants.TransactionTag {
	return constants.TxTypeCreateAsset
}

// Pack - Uint16(tag) address s16(name) Uint64(supply) Uint16(1)
// s16(reference) then the packed asset type
func (h *CreateAsset) Pack() Packed {
	message := newRecord(constants.TxTypeCreateAsset, ExpectedLength(h))
	message = appendAddress(message, h.address)
	message = appendString16(message, h.name)
	message = appendUint64(message, h.supply)
	message = appendUint16(message, createAssetReserved)
	message = appendString16(message, string(h.reference))
	return append(message, h.assetType.Pack()...)
}

// Address - the derived asset address
func (h *CreateAsset) Address() address.Address {
	return h.address
}

// Issuer - the issuing account
func (h *CreateAsset) Issuer() address.Address {
	return h.issuer
}

// Type - the asset type
func (h *CreateAsset) Type() asset.Type {
	return h.assetType
}

// NewTransfer - move balance units of an asset to the given holder
//
// balance is carried as signed; the ledger decides its meaning
func NewTransfer(assetAddress address.Address, to address.Address, balance int64) (*Transfer, error) {
	return &Transfer{
		asset:   assetAddress,
		to:      to,
		balance: balance,
	}, nil
}

// Tag - the kind tag
func (*Transfer) Tag() constants.TransactionTag {
	return constants.TxTypeTransfer
}

// Pack - Uint16(tag) asset to Int64(balance)
func (h *Transfer) Pack() Packed {
	message := newRecord(constants.TxTypeTransfer, ExpectedLength(h))
	message = appendAddress(message, h.asset)
	message = appendAddress(message, h.to)
	return appendInt64(message, h.balance)
}

// NewCirculate - circulate amount units of an asset
func NewCirculate(assetAddress address.Address, amount int64) (*Circulate, error) {
	return &Circulate{
		asset:  assetAddress,
		amount: amount,
	}, nil
}

// Tag - the kind tag
func (*Circulate) Tag() constants.TransactionTag {
	return constants.TxTypeCirculate
}

// Pack - Uint16(tag) asset Int64(amount)
func (h *Circulate) Pack() Packed {
	message := newRecord(constants.TxTypeCirculate, ExpectedLength(h))
	message = appendAddress(message, h.asset)
	return appendInt64(message, h.amount)
}

// NewRevokeAsset - revoke the given asset
func NewRevokeAsset(assetAddress address.Address) (*RevokeAsset, error) {
	return &RevokeAsset{asset: assetAddress}, nil
}

// Tag - the kind tag
func (*RevokeAsset) Tag() constants.TransactionTag {
	return constants.TxTypeRevokeAsset
}

// Pack - Uint16(tag) asset
func (h *RevokeAsset) Pack() Packed {
	message := newRecord(constants.TxTypeRevokeAsset, ExpectedLength(h))
	return appendAddress(message, h.asset)
}

// NewBind - bind an asset to a contract
//
// the proof is copied and written without a length prefix
func NewBind(contract address.Address, assetAddress address.Address, proof []byte) (*Bind, error) {
	p := make([]byte, len(proof))
	copy(p, proof)
	return &Bind{
		contract: contract,
		asset:    assetAddress,
		proof:    p,
	}, nil
}

// Tag - the kind tag
func (*Bind) Tag() constants.TransactionTag {
	return constants.TxTypeBind
}

// Pack - Uint16(tag) contract asset proof
func (h *Bind) Pack() Packed {
	message := newRecord(constants.TxTypeBind, ExpectedLength(h))
	message = appendAddress(message, h.contract)
	message = appendAddress(message, h.asset)
	return append(message, h.proof...)
}
