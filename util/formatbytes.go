// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

// FormatBytes - dump bytes as a Go literal, eight to a line
//
// used to generate the expected records in test routines
func FormatBytes(name string, data []byte) string {
	if 0 == len(data) {
		return name + " := []byte{}"
	}
	a := strings.Split(fmt.Sprintf("% #x", data), " ")
	var s strings.Builder
	s.WriteString(name + " := []byte{")
	for i, b := range a {
		if 0 == i%8 {
			s.WriteString("\n\t")
		} else {
			s.WriteString(" ")
		}
		s.WriteString(b + ",")
	}
	s.WriteString("\n}")
	return s.String()
}
