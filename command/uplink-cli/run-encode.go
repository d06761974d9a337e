// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/uplink-ledger/uplink-go/configuration"
	"github.com/uplink-ledger/uplink-go/transactionrecord"
)

type encoded struct {
	Kind   string                   `json:"kind"`
	Tag    uint16                   `json:"tag"`
	Length int                      `json:"length"`
	Record transactionrecord.Packed `json:"record"`
}

func runEncode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "file: %s\n", fileName)
	}

	header, err := readHeader(fileName)
	if nil != err {
		return err
	}

	out := encode(header)
	m.log.Infof("encoded: %s  tag: %d  length: %d", out.Kind, out.Tag, out.Length)

	return printJson(m.w, out)
}

// readHeader - read a transaction description and build its header
func readHeader(fileName string) (transactionrecord.Header, error) {
	tx, err := configuration.GetTransaction(fileName)
	if nil != err {
		return nil, err
	}
	return buildHeader(tx)
}

func encode(header transactionrecord.Header) encoded {
	kind, _ := transactionrecord.RecordName(header)
	packed := header.Pack()
	return encoded{
		Kind:   kind,
		Tag:    uint16(header.Tag()),
		Length: len(packed),
		Record: packed,
	}
}
