// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of each error so callers compare with
// errors.Is instead of partial string matches.  Validation failures
// inside a transaction header are wrapped in a FieldError that names
// the header kind and the offending field.
package fault
