// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/uplink-ledger/uplink-go/transactionrecord"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	signature, err := checkSignature(c.String("signature"))
	if nil != err {
		return err
	}

	publicKey, err := checkPublicKey(c.String("publickey"))
	if nil != err {
		return err
	}

	header, err := readHeader(fileName)
	if nil != err {
		return err
	}

	err = transactionrecord.Verify(header, publicKey, signature)
	verified := nil == err

	if m.verbose {
		fmt.Fprintf(m.e, "file: %s\n", fileName)
		fmt.Fprintf(m.e, "signature: %s\n", signature)
		fmt.Fprintf(m.e, "verified: %t\n", verified)
	}
	m.log.Infof("verify: %s  verified: %t", header.Tag(), verified)

	out := struct {
		Account  string `json:"account"`
		FileName string `json:"file_name"`
		Verified bool   `json:"verified"`
	}{
		Account:  publicKey.Address().String(),
		FileName: fileName,
		Verified: verified,
	}
	if err := printJson(m.w, out); nil != err {
		return err
	}
	if !verified {
		return ErrSignatureNotVerified
	}
	return nil
}
