// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package longoption - expand abbreviated long options
//
// An abbreviation is accepted only when exactly one known name starts
// with it, e.g. with names: where, when, willingly
//   wher  -> where
//   wi    -> willingly
//   w, wh -> no match (ambiguous)
package longoption

import (
	"strings"
)

// Candidates - names starting with prefix, in the order given
//
// matching is byte-wise with no case folding
func Candidates(prefix string, names []string) []string {
	candidates := make([]string, 0, 2)
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}

// Resolve - the unique name starting with prefix
//
// returns false for both no match and an ambiguous prefix
func Resolve(prefix string, names []string) (string, bool) {
	candidates := Candidates(prefix, names)
	if 1 != len(candidates) {
		return "", false
	}
	return candidates[0], true
}
