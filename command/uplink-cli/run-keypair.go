// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/uplink-ledger/uplink-go/keypair"
)

// show the unlocked key pair of an identity
func runKeyPair(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := m.config.Identity(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	password, err := checkPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", from.Name)
	}

	privateKey, err := from.Unlock(password)
	if nil != err {
		return err
	}
	defer privateKey.Zero()

	raw, err := keypair.FromPrivateKey(privateKey)
	if nil != err {
		return err
	}

	m.log.Infof("key pair shown for: %q  account: %s", from.Name, raw.Account)

	out := struct {
		Name    string              `json:"name"`
		KeyPair *keypair.RawKeyPair `json:"keypair"`
	}{
		Name:    from.Name,
		KeyPair: raw,
	}
	return printJson(m.w, out)
}
