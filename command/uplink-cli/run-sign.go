// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/uplink-ledger/uplink-go/fault"
	"github.com/uplink-ledger/uplink-go/transactionrecord"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	nonce, err := checkNonce(c.String("nonce"))
	if nil != err {
		return err
	}

	from, err := m.config.Identity(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	password, err := checkPassword(c.GlobalString("password"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "file: %s\n", fileName)
		fmt.Fprintf(m.e, "signer: %s\n", from.Name)
	}

	header, err := readHeader(fileName)
	if nil != err {
		return err
	}

	privateKey, err := from.Unlock(password)
	if nil != err {
		return err
	}
	defer privateKey.Zero()

	tx, err := transactionrecord.NewSignedTransaction(header, privateKey, nonce, time.Now())
	if nil != err {
		return err
	}

	// a fresh signature must verify against its own key
	if err := tx.Verify(privateKey.PublicKey()); nil != err {
		fault.Criticalf("signature by %s does not verify: %s", tx.Origin, err)
		return err
	}

	m.log.Infof("signed: %s  length: %d", header.Tag(), len(tx.Header))
	m.log.Debugf("signer: %q  account: %s", from.Name, tx.Origin)

	return printJson(m.w, tx)
}
