// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua files for the command line tool
//
// both the tool configuration (identities and logging) and the
// transaction descriptions are Lua scripts returning a table.  Most of
// base Lua is available, so a file can read environment variables or
// other files to build its result.
package configuration
