// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Inspect option specifications, arguments and abbreviations as JSON
//
//   optcheck parse 'ab:c:de::f'
//   optcheck parse --long 'when:,verbosity::,version'
//   optcheck classify -a --when=now1 'do it' --
//   optcheck resolve --options='where,when,willingly' wher w wi
package main
