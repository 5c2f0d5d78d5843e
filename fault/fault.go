// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAmbiguousOption          = InvalidError("ambiguous option")
	ErrInvalidStructPointer     = InvalidError("invalid struct pointer")
	ErrMalformedOption          = InvalidError("malformed option")
	ErrMissingConfigurationFile = NotFoundError("configuration file is not found")
	ErrMissingOptions           = InvalidError("option specification is required")
	ErrNotConfigurationTable    = ProcessError("configuration did not return a table")
	ErrNotDirectory             = InvalidError("path is not a directory")
	ErrUnknownOption            = NotFoundError("unknown option")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
