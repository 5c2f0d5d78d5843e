// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Show how option specifications and arguments are interpreted
//
// Prints the short and long option specifications (from the optional
// Lua configuration file, or the built in defaults) then classifies
// each argument given after "--":
//
//   optdemo [--verbose] [--config-file=FILE] -- -a --when=now1 'do it' --verb
//
// Double dash options are expanded against the long options when the
// abbreviation is unique.
package main
