// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package optionspec - parse getopt style option specification strings
//
// A specification is a sequence of option identifiers, each optionally
// followed by a run of colons:
//
//   a       - option takes no argument
//   b:      - option requires an argument
//   c::     - option takes an optional argument
//
// Colon runs longer than two are clamped to an optional argument.
// Any other characters (commas, spaces, '!', '?', '-', ...) are ignored,
// so these are equivalent:
//
//   ab:c:de::f
//   a, b:, c:, d, e::, f
//
// Two grammars are provided: short, where an identifier is a single
// [_a-zA-Z0-9] character, and long, where an identifier is
// [_a-zA-Z0-9] followed by any of [-_a-zA-Z0-9].
//
// If an identifier appears more than once the last occurrence wins.
package optionspec
