// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package optionspec

import (
	"fmt"
)

// Arity - number of arguments an option expects
type Arity int

// the three argument levels, the values match the number of colons
const (
	NoArgument       Arity = 0
	RequiredArgument Arity = 1
	OptionalArgument Arity = 2
)

// clamp a colon run length to an arity
func arityOf(colons int) Arity {
	if colons > int(OptionalArgument) {
		return OptionalArgument
	}
	return Arity(colons)
}

// String - human readable arity
func (a Arity) String() string {
	switch a {
	case NoArgument:
		return "none"
	case RequiredArgument:
		return "required"
	case OptionalArgument:
		return "optional"
	default:
		return fmt.Sprintf("arity(%d)", int(a))
	}
}

// MarshalText - arity as JSON map values
func (a Arity) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
