// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
)

// Argument - one typed contract call argument
//
// Value holds a Lua number, string or boolean; DateTime and TimeDelta
// take RFC 3339 text and Go duration text respectively
type Argument struct {
	Type  string      `gluamapper:"type" json:"type"`
	Value interface{} `gluamapper:"value" json:"value"`
}

// Transaction - description of one transaction header
//
// only the fields used by Kind need be present; numbers are kept as the
// Lua float64 so range and fraction checks happen when the header is built
type Transaction struct {
	Kind string `gluamapper:"kind" json:"kind"`

	// CreateAccount
	PublicKey string            `gluamapper:"public_key" json:"public_key,omitempty"`
	Timezone  string            `gluamapper:"timezone" json:"timezone,omitempty"`
	Metadata  map[string]string `gluamapper:"metadata" json:"metadata,omitempty"`

	// CreateAsset
	Name      string `gluamapper:"name" json:"name,omitempty"`
	Issuer    string `gluamapper:"issuer" json:"issuer,omitempty"`
	Supply    float64  `gluamapper:"supply" json:"supply,omitempty"`
	Reference string   `gluamapper:"reference" json:"reference,omitempty"`
	AssetType string   `gluamapper:"asset_type" json:"asset_type,omitempty"`
	Precision *float64 `gluamapper:"precision" json:"precision,omitempty"`

	// addresses, base58
	Account  string `gluamapper:"account" json:"account,omitempty"`
	Asset    string `gluamapper:"asset" json:"asset,omitempty"`
	To       string `gluamapper:"to" json:"to,omitempty"`
	Contract string `gluamapper:"contract" json:"contract,omitempty"`

	// Transfer and Circulate
	Balance float64 `gluamapper:"balance" json:"balance,omitempty"`
	Amount  float64 `gluamapper:"amount" json:"amount,omitempty"`

	// Bind, hex
	Proof string `gluamapper:"proof" json:"proof,omitempty"`

	// CreateContract
	Script string `gluamapper:"script" json:"script,omitempty"`

	// Call
	Method    string     `gluamapper:"method" json:"method,omitempty"`
	Arguments []Argument `gluamapper:"args" json:"args,omitempty"`
}

// GetTransaction - read a transaction description file
func GetTransaction(fileName string) (*Transaction, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}

	transaction := &Transaction{}
	if err := ParseConfigurationFile(fileName, transaction); nil != err {
		return nil, err
	}
	return transaction, nil
}
