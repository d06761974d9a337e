// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
)

// CreateAccount - register a public key with a timezone and metadata
type CreateAccount struct {
	publicKey []byte
	timezone  string
	metadata  []MetadataEntry
}

// RevokeAccount - remove an account
type RevokeAccount struct {
	account address.Address
}

// NewCreateAccount - validate and capture an account creation
//
// the metadata is canonicalised here, so later changes to the caller's
// map do not affect the header
func NewCreateAccount(publicKey []byte, timezone string, metadata Metadata) (*CreateAccount, error) {
	const kind = "CreateAccount"

	if err := checkBytes16(publicKey, true); nil != err {
		return nil, fault.Field(kind, "publicKey", err)
	}
	if err := checkString16(timezone, true); nil != err {
		return nil, fault.Field(kind, "timezone", err)
	}
	if key, err := metadata.Validate(); nil != err {
		return nil, fault.Field(kind, "metadata["+key+"]", err)
	}

	pk := make([]byte, len(publicKey))
	copy(pk, publicKey)

	return &CreateAccount{
		publicKey: pk,
		timezone:  timezone,
		metadata:  metadata.Canonical(),
	}, nil
}

// Tag - the kind tag
func (*CreateAccount) Tag() constants.TransactionTag {
	return constants.TxTypeCreateAccount
}

// Pack - Uint16(tag) s16(publicKey) s16(timezone) Uint16(count) then
// s16(key) s16(value) for each entry in canonical order
func (h *CreateAccount) Pack() Packed {
	message := newRecord(constants.TxTypeCreateAccount, ExpectedLength(h))
	message = appendBytes16(message, h.publicKey)
	message = appendString16(message, h.timezone)
	message = appendUint16(message, uint16(len(h.metadata)))
	for _, entry := range h.metadata {
		message = appendString16(message, entry.Key)
		message = appendString16(message, entry.Value)
	}
	return message
}

// PublicKey - copy of the registered key bytes
func (h *CreateAccount) PublicKey() []byte {
	pk := make([]byte, len(h.publicKey))
	copy(pk, h.publicKey)
	return pk
}

// Timezone - the timezone text
func (h *CreateAccount) Timezone() string {
	return h.timezone
}

// Metadata - copy of the canonical entries
func (h *CreateAccount) Metadata() []MetadataEntry {
	entries := make([]MetadataEntry, len(h.metadata))
	copy(entries, h.metadata)
	return entries
}

// NewRevokeAccount - revoke the given account
func NewRevokeAccount(account address.Address) (*RevokeAccount, error) {
	return &RevokeAccount{account: account}, nil
}

// Tag - the kind tag
func (*RevokeAccount) Tag() constants.TransactionTag {
	return constants.TxTypeRevokeAccount
}

// Pack - Uint16(tag) account
func (h *RevokeAccount) Pack() Packed {
	message := newRecord(constants.TxTypeRevokeAccount, ExpectedLength(h))
	return appendAddress(message, h.account)
}

// Account - the revoked account
func (h *RevokeAccount) Account() address.Address {
	return h.account
}
