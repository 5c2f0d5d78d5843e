// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Errors are grouped by class: InvalidError for arguments, option
// specifications and paths that cannot be used; NotFoundError for
// options or configuration files that do not exist; ProcessError when a
// configuration file runs but does not produce a table.
package fault
