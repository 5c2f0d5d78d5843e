// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument

import (
	"fmt"
)

// Token - the result of classifying an argument
//
// exactly one of Positional or Option
type Token interface {
	String() string
	isToken()
}

// Positional - a bare argument or the "--" separator
type Positional struct {
	Text string
}

// Option - an option occurrence
//
// HasValue distinguishes "--name" (false) from "--name=" (true, empty Value)
type Option struct {
	Dashes   int
	Name     string
	Value    string
	HasValue bool
}

func (Positional) isToken() {}
func (Option) isToken()     {}

// String - the text of the argument
func (p Positional) String() string {
	return fmt.Sprintf("%q", p.Text)
}

// IsSeparator - true for the "--" end of options marker
func (p Positional) IsSeparator() bool {
	return separator == p.Text
}

// String - tuple form: (dashes, name, value) where an absent value is None
func (o Option) String() string {
	if !o.HasValue {
		return fmt.Sprintf("(%d, %q, None)", o.Dashes, o.Name)
	}
	return fmt.Sprintf("(%d, %q, %q)", o.Dashes, o.Name, o.Value)
}

// Lookup - the inline value and whether one was given
func (o Option) Lookup() (string, bool) {
	return o.Value, o.HasValue
}

// IsLong - true for a double dash option
func (o Option) IsLong() bool {
	return 2 == o.Dashes
}
