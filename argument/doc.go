// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package argument - classify a single command-line token
//
// Recognises tokens of the forms:
//   --                    - positional, the conventional end of options
//   word                  - positional, anything not starting with "-"
//   -name                 - option, one dash, no value
//   -name=value           - option, one dash, inline value
//   --name                - option, two dashes, no value
//   --name=value          - option, two dashes, inline value
//   --name=               - option, two dashes, empty inline value
//
// A name starts with [_a-zA-Z0-9] and continues with [-_a-zA-Z0-9].
// Only a prefix of the token needs to match: "--name!x" is the
// option "name" without a value.
//
// Note:
//   Values are not unquoted, the shell has already done that.
//   Combined single letter options are not split, "-vvv" is the option "vvv".
//   A dash prefixed token that has no valid name (e.g. "-", "-=x", "---x")
//   is rejected with fault.ErrMalformedOption.
package argument
