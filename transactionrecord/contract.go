// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strconv"
	"unicode/utf8"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/constants"
	"github.com/uplink-ledger/uplink-go/fault"
	"github.com/uplink-ledger/uplink-go/value"
)

// CreateContract - deploy a script at an address
type CreateContract struct {
	contract address.Address
	script   string
}

// Call - invoke a contract method
type Call struct {
	contract   address.Address
	method     string
	argCount   uint64
	packedArgs []byte
}

// SyncLocal - synchronise a contract's local state
type SyncLocal struct {
	contract address.Address
}

// NewCreateContract - validate a contract script
func NewCreateContract(contract address.Address, script string) (*CreateContract, error) {
	if err := checkString16(script, false); nil != err {
		return nil, fault.Field("CreateContract", "script", err)
	}
	return &CreateContract{
		contract: contract,
		script:   script,
	}, nil
}

// Tag - the kind tag
func (*CreateContract) Tag() constants.TransactionTag {
	return constants.TxTypeCreateContract
}

// Pack - Uint16(tag) contract s16(script)
func (h *CreateContract) Pack() Packed {
	message := newRecord(constants.TxTypeCreateContract, ExpectedLength(h))
	message = appendAddress(message, h.contract)
	return appendString16(message, h.script)
}

// NewCall - validate a method call and encode its arguments
//
// the arguments are packed here so that Pack cannot fail
func NewCall(contract address.Address, method string, args []value.Value) (*Call, error) {
	const kind = "Call"

	if 0 == len(method) {
		return nil, fault.Field(kind, "method", fault.ErrFieldEmpty)
	}
	if !utf8.ValidString(method) {
		return nil, fault.Field(kind, "method", fault.ErrInvalidText)
	}

	packedArgs := make([]byte, 0, 16*len(args))
	for i, arg := range args {
		var err error
		packedArgs, err = value.Append(packedArgs, arg)
		if nil != err {
			return nil, fault.Field(kind, "args["+strconv.Itoa(i)+"]", err)
		}
	}

	return &Call{
		contract:   contract,
		method:     method,
		argCount:   uint64(len(args)),
		packedArgs: packedArgs,
	}, nil
}

// Tag - the kind tag
func (*Call) Tag() constants.TransactionTag {
	return constants.TxTypeCall
}

// Pack - Uint16(tag) contract s64(method) Uint64(count) then each
// packed argument
func (h *Call) Pack() Packed {
	message := newRecord(constants.TxTypeCall, ExpectedLength(h))
	message = appendAddress(message, h.contract)
	message = appendString64(message, h.method)
	message = appendUint64(message, h.argCount)
	return append(message, h.packedArgs...)
}

// Method - the called method name
func (h *Call) Method() string {
	return h.method
}

// NewSyncLocal - synchronise the given contract
func NewSyncLocal(contract address.Address) (*SyncLocal, error) {
	return &SyncLocal{contract: contract}, nil
}

// Tag - the kind tag
func (*SyncLocal) Tag() constants.TransactionTag {
	return constants.TxTypeSyncLocal
}

// Pack - Uint16(tag) contract
func (h *SyncLocal) Pack() Packed {
	message := newRecord(constants.TxTypeSyncLocal, ExpectedLength(h))
	return appendAddress(message, h.contract)
}
