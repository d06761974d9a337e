// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/uplink-ledger/uplink-go/address"
	"github.com/uplink-ledger/uplink-go/asset"
)

func runAssetAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("name")
	if "" == name {
		return ErrRequiredAssetName
	}

	var precision *int
	if c.IsSet("precision") {
		p := c.Int("precision")
		precision = &p
	}

	a, err := deriveAssetAddress(name, c.String("issuer"), c.Uint64("supply"), c.String("reference"), c.String("type"), precision)
	if nil != err {
		return err
	}

	out := struct {
		Name    string          `json:"name"`
		Address address.Address `json:"address"`
	}{
		Name:    name,
		Address: a,
	}
	return printJson(m.w, out)
}

func deriveAssetAddress(name string, issuerText string, supply uint64, referenceText string, typeName string, precision *int) (address.Address, error) {
	issuer, err := address.FromBase58(issuerText)
	if nil != err {
		return address.Address{}, err
	}
	reference, err := asset.ParseReference(referenceText)
	if nil != err {
		return address.Address{}, err
	}
	assetType, err := asset.NewType(typeName, precision)
	if nil != err {
		return address.Address{}, err
	}
	return asset.DeriveAddress(name, issuer, supply, reference, assetType)
}
