// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/uplink-ledger/uplink-go/account"
	"github.com/uplink-ledger/uplink-go/configuration"
	"github.com/uplink-ledger/uplink-go/keypair"
)

// identity block for pasting into the configuration file
type generated struct {
	Account  string                 `json:"account"`
	Identity configuration.Identity `json:"identity"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.String("name"))
	if nil != err {
		return err
	}

	password, err := checkPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}

	privateKey, err := makePrivateKey(c.String("privateKey"))
	if nil != err {
		return err
	}
	defer privateKey.Zero()

	identity, err := configuration.NewIdentity(name, c.String("description"), privateKey, password)
	if nil != err {
		return err
	}

	// account text from the stored public key, as a later sign will see it
	raw, err := keypair.FromHexPublicKey(identity.PublicKey)
	if nil != err {
		return err
	}

	out := generated{
		Account:  raw.Account,
		Identity: *identity,
	}

	if m.verbose {
		fmt.Fprintf(m.e, "account: %s\n", out.Account)
	}
	m.log.Infof("generated identity: %q  account: %s", name, out.Account)

	return printJson(m.w, out)
}

// a new random key, or one from hex
func makePrivateKey(privateKeyHex string) (*account.PrivateKey, error) {
	if "" == privateKeyHex {
		return account.NewPrivateKey()
	}
	return account.PrivateKeyFromHex(privateKeyHex)
}
