// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - secp256k1 keys, account addresses and signatures
//
// messages are hashed with SHA3-256 before signing; signatures are
// DER encoded with a low S value.  The account address is the
// SHA3-256 digest of the uncompressed public key.
package account
