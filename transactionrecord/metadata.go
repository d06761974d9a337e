// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"sort"
	"unicode/utf8"

	"github.com/uplink-ledger/uplink-go/fault"
)

// Metadata - unordered account metadata as supplied by a caller
type Metadata map[string]string

// MetadataEntry - one key/value pair in canonical order
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Canonical - the entries sorted by ascending byte-wise key order
//
// the result depends only on the map contents, never on how it was
// built
func (metadata Metadata) Canonical() []MetadataEntry {
	entries := make([]MetadataEntry, 0, len(metadata))
	for k, v := range metadata {
		entries = append(entries, MetadataEntry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// Validate - check every entry fits the packed layout
//
// returns the first offending key in canonical order, empty for a
// whole-map failure
func (metadata Metadata) Validate() (string, error) {
	if len(metadata) > max16Length {
		return "", fault.ErrMalformedMetadata
	}
	for _, entry := range metadata.Canonical() {
		if 0 == len(entry.Key) || len(entry.Key) > max16Length || len(entry.Value) > max16Length {
			return entry.Key, fault.ErrMalformedMetadata
		}
		if !utf8.ValidString(entry.Key) || !utf8.ValidString(entry.Value) {
			return entry.Key, fault.ErrMalformedMetadata
		}
	}
	return "", nil
}
