// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/uplink-ledger/uplink-go/fault"
)

// common errors - keep in alphabetic order
var (
	ErrArgumentType         = fault.InvalidError("argument value does not match its type")
	ErrNotInteger           = fault.InvalidError("number is not an integer")
	ErrNumberOutOfRange     = fault.InvalidError("number out of range")
	ErrRequiredAssetName    = fault.InvalidError("asset name is required")
	ErrRequiredConfigFile   = fault.InvalidError("config file is required")
	ErrRequiredFileName     = fault.InvalidError("file name is required")
	ErrRequiredIdentity     = fault.InvalidError("identity is required")
	ErrRequiredPassword     = fault.InvalidError("password is required")
	ErrRequiredPublicKey    = fault.InvalidError("public key is required")
	ErrRequiredSignature    = fault.InvalidError("signature is required")
	ErrSignatureNotVerified = fault.InvalidError("signature does not verify")
)
