// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument

import (
	"regexp"
	"strings"

	"github.com/bitmark-inc/optparse/fault"
)

const separator = "--"

// 1: leading dashes
// 2: option name
// 3: "=value" (present or not)
// 4: value
var optionRegex = regexp.MustCompile(`^(-{0,2})([_a-zA-Z0-9][-_a-zA-Z0-9]*)(=(.*))?`)

// Classify - turn one argument into a Positional or an Option
//
// only a dash prefixed argument without a valid option name is an error
func Classify(arg string) (Token, error) {

	// check for end of options
	if separator == arg {
		return Positional{Text: arg}, nil
	}

	if !strings.HasPrefix(arg, "-") {
		return Positional{Text: arg}, nil
	}

	m := optionRegex.FindStringSubmatch(arg)
	if nil == m {
		return nil, fault.ErrMalformedOption
	}

	return Option{
		Dashes:   len(m[1]),
		Name:     m[2],
		Value:    m[4],
		HasValue: "" != m[3],
	}, nil
}
