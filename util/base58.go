// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58/base58"
)

// ToBase58 - encode a byte slice as Base58 text (Bitcoin alphabet)
func ToBase58(buffer []byte) string {
	return base58.Encode(buffer)
}

// FromBase58 - decode Base58 text
//
// returns an empty slice if the text is empty or not valid Base58
func FromBase58(s string) []byte {
	if "" == s {
		return []byte{}
	}
	buffer, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return buffer
}
