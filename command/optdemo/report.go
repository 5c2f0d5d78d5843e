// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/optparse/argument"
	"github.com/bitmark-inc/optparse/fault"
	"github.com/bitmark-inc/optparse/longoption"
	"github.com/bitmark-inc/optparse/optionspec"
)

// format a spec as {name: arity, ...} in name order
func formatSpec(spec optionspec.Spec) string {
	items := make([]string, 0, len(spec))
	for _, name := range spec.Names() {
		items = append(items, fmt.Sprintf("%s: %d", name, spec[name]))
	}
	return "{" + strings.Join(items, ", ") + "}"
}

// find the full name and arity for an option
//
// an exact match takes priority over abbreviation
func lookupOption(option argument.Option, short optionspec.Spec, long optionspec.Spec) (string, optionspec.Arity, error) {
	if !option.IsLong() {
		if arity, ok := short.Lookup(option.Name); ok {
			return option.Name, arity, nil
		}
		return "", 0, fault.ErrUnknownOption
	}

	if arity, ok := long.Lookup(option.Name); ok {
		return option.Name, arity, nil
	}

	names := long.Names()
	if name, ok := longoption.Resolve(option.Name, names); ok {
		return name, long[name], nil
	}
	if len(longoption.Candidates(option.Name, names)) > 1 {
		return "", 0, fault.ErrAmbiguousOption
	}
	return "", 0, fault.ErrUnknownOption
}

// print one line for each argument
//
// returns the number of arguments that could not be interpreted,
// each of which is also logged as a warning
func report(log *logger.L, w io.Writer, arguments []string, short optionspec.Spec, long optionspec.Spec) int {
	failures := 0
	for _, arg := range arguments {
		token, err := argument.Classify(arg)
		if nil != err {
			fmt.Fprintf(w, "%10s : error: %s\n", arg, err)
			log.Warnf("argument: %q  error: %s", arg, err)
			failures += 1
			continue
		}

		if positional, ok := token.(argument.Positional); ok {
			if positional.IsSeparator() {
				fmt.Fprintf(w, "%10s : %s (end of options)\n", arg, positional)
			} else {
				fmt.Fprintf(w, "%10s : %s\n", arg, positional)
			}
			continue
		}
		option := token.(argument.Option)

		name, arity, err := lookupOption(option, short, long)
		switch err {
		case nil:
			fmt.Fprintf(w, "%10s : %s -> %s (%s)\n", arg, token, name, arity)
		case fault.ErrAmbiguousOption:
			candidates := longoption.Candidates(option.Name, long.Names())
			fmt.Fprintf(w, "%10s : %s -> %s: %s\n", arg, token, err, strings.Join(candidates, ", "))
			log.Warnf("argument: %q  error: %s  candidates: %v", arg, err, candidates)
			failures += 1
		default:
			fmt.Fprintf(w, "%10s : %s -> %s\n", arg, token, err)
			log.Warnf("argument: %q  error: %s", arg, err)
			failures += 1
		}
	}
	return failures
}
