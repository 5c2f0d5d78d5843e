// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optionspec

import (
	"regexp"
	"sort"
)

const (
	identifierCharacter = `[_a-zA-Z0-9]`
	identifierString    = `[_a-zA-Z0-9][-_a-zA-Z0-9]*`
)

// Grammar - the identifier form recognised by Parse
type Grammar struct {
	name    string
	pattern *regexp.Regexp
}

// the two grammars, compiled once and shared
var (
	Short = &Grammar{
		name:    "short",
		pattern: regexp.MustCompile(`(` + identifierCharacter + `)(:{0,2})`),
	}
	Long = &Grammar{
		name:    "long",
		pattern: regexp.MustCompile(`(` + identifierString + `)(:{0,2})`),
	}
)

// String - name of the grammar
func (g *Grammar) String() string {
	return g.name
}

// Spec - option name to arity
type Spec map[string]Arity

// Parse - scan text for identifier and colon run pairs
//
// never fails: text that does not match is skipped
func Parse(grammar *Grammar, text string) Spec {
	spec := make(Spec)
	for _, m := range grammar.pattern.FindAllStringSubmatch(text, -1) {
		spec[m[1]] = arityOf(len(m[2]))
	}
	return spec
}

// ParseShort - parse single character options e.g. "ab:c::"
func ParseShort(text string) Spec {
	return Parse(Short, text)
}

// ParseLong - parse long options e.g. "when:,verbosity::,version"
func ParseLong(text string) Spec {
	return Parse(Long, text)
}

// Lookup - arity of an option and whether it is present
func (s Spec) Lookup(name string) (Arity, bool) {
	a, ok := s[name]
	return a, ok
}

// Names - sorted option names
func (s Spec) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
