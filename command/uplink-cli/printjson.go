// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/uplink-ledger/uplink-go/fault"
)

// printJson - indented JSON on its own line
//
// every printed type marshals, so a marshal error is logged as critical;
// a failed write (closed pipe, full disk) is returned to the caller
func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fault.Criticalf("cannot marshal %T: %s", message, err)
		return err
	}

	_, err = fmt.Fprintf(handle, "%s\n", b)
	return err
}
