// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - asset types, references and addresses
//
// an asset is described by:
// a. its type: Discrete, Binary or Fractional (with a precision 1…6)
// b. its reference: the real world unit it is denominated in
// c. its address: a SHA3-256 digest over the declared metadata, so
//    the same declaration always yields the same address
package asset
