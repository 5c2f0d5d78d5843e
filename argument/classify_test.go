// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package argument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/optparse/argument"
	"github.com/bitmark-inc/optparse/fault"
)

type testItem struct {
	in  string
	out argument.Token
}

func TestClassify(t *testing.T) {

	tests := []testItem{
		{in: "-a", out: argument.Option{Dashes: 1, Name: "a"}},
		{in: "-b", out: argument.Option{Dashes: 1, Name: "b"}},
		{in: "do it", out: argument.Positional{Text: "do it"}},
		{in: "fetch", out: argument.Positional{Text: "fetch"}},
		{in: "--when=now1", out: argument.Option{Dashes: 2, Name: "when", Value: "now1", HasValue: true}},
		{in: "--w", out: argument.Option{Dashes: 2, Name: "w"}},
		{in: "now2", out: argument.Positional{Text: "now2"}},
		{in: "--verbosity", out: argument.Option{Dashes: 2, Name: "verbosity"}},
		{in: "3", out: argument.Positional{Text: "3"}},
		{in: "--verbosity=5", out: argument.Option{Dashes: 2, Name: "verbosity", Value: "5", HasValue: true}},
		{in: "-d", out: argument.Option{Dashes: 1, Name: "d"}},
		{in: "-c=hello world", out: argument.Option{Dashes: 1, Name: "c", Value: "hello world", HasValue: true}},
		{in: "--", out: argument.Positional{Text: "--"}},
		{in: "", out: argument.Positional{Text: ""}},
		{in: "x=y", out: argument.Positional{Text: "x=y"}},
		{in: "--dry-run", out: argument.Option{Dashes: 2, Name: "dry-run"}},
		{in: "--name=", out: argument.Option{Dashes: 2, Name: "name", Value: "", HasValue: true}},
		{in: "--name==x", out: argument.Option{Dashes: 2, Name: "name", Value: "=x", HasValue: true}},
		{in: "-vvv", out: argument.Option{Dashes: 1, Name: "vvv"}},
		{in: "--a.b", out: argument.Option{Dashes: 2, Name: "a"}},
		{in: "-_9", out: argument.Option{Dashes: 1, Name: "_9"}},
	}

	for i, item := range tests {
		actual, err := argument.Classify(item.in)
		assert.Nil(t, err, "%d: Classify(%q) error", i, item.in)
		assert.Equal(t, item.out, actual, "%d: Classify(%q)", i, item.in)
	}
}

// dash prefixed tokens without a valid name
func TestClassifyMalformed(t *testing.T) {

	tests := []string{
		"-",
		"-=x",
		"--=x",
		"---x",
		"-!",
		"--+x",
	}

	for i, item := range tests {
		actual, err := argument.Classify(item)
		assert.Equal(t, fault.ErrMalformedOption, err, "%d: Classify(%q) error", i, item)
		assert.Nil(t, actual, "%d: Classify(%q) token", i, item)
		assert.True(t, fault.IsErrInvalid(err), "%d: error class", i)
	}
}

// absent and empty values are different
func TestAbsentAndEmptyValue(t *testing.T) {
	absent, err := argument.Classify("--when")
	assert.Nil(t, err, "absent error")
	value, ok := absent.(argument.Option).Lookup()
	assert.False(t, ok, "absent value reported present")
	assert.Equal(t, "", value, "absent value")

	empty, err := argument.Classify("--when=")
	assert.Nil(t, err, "empty error")
	value, ok = empty.(argument.Option).Lookup()
	assert.True(t, ok, "empty value reported absent")
	assert.Equal(t, "", value, "empty value")

	assert.NotEqual(t, absent, empty, "absent and empty must differ")
}

// every input gives exactly one kind of token or the malformed error
func TestClassifyTotal(t *testing.T) {
	alphabet := []string{"", "-", "a", "=", "Z", "_", "9", " ", "!"}

	for _, a := range alphabet {
		for _, b := range alphabet {
			for _, c := range alphabet {
				for _, d := range alphabet {
					arg := a + b + c + d
					token, err := argument.Classify(arg)
					if nil != err {
						assert.Equal(t, fault.ErrMalformedOption, err, "Classify(%q)", arg)
						assert.Equal(t, byte('-'), arg[0], "Classify(%q) only dash prefixed can fail", arg)
						continue
					}
					switch tok := token.(type) {
					case argument.Positional:
						assert.Equal(t, arg, tok.Text, "Classify(%q) positional text", arg)
					case argument.Option:
						assert.True(t, tok.Dashes >= 1 && tok.Dashes <= 2, "Classify(%q) dashes: %d", arg, tok.Dashes)
						assert.NotEqual(t, "", tok.Name, "Classify(%q) empty name", arg)
					default:
						t.Errorf("Classify(%q) unexpected token: %#v", arg, token)
					}
				}
			}
		}
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{in: "-a", out: `(1, "a", None)`},
		{in: "--when=now1", out: `(2, "when", "now1")`},
		{in: "--when=", out: `(2, "when", "")`},
		{in: "do it", out: `"do it"`},
		{in: "--", out: `"--"`},
	}

	for i, item := range tests {
		token, err := argument.Classify(item.in)
		assert.Nil(t, err, "%d: error", i)
		assert.Equal(t, item.out, token.String(), "%d: String()", i)
	}
}

func TestPredicates(t *testing.T) {
	sep, _ := argument.Classify("--")
	assert.True(t, sep.(argument.Positional).IsSeparator(), "-- is a separator")

	word, _ := argument.Classify("word")
	assert.False(t, word.(argument.Positional).IsSeparator(), "word is not a separator")

	long, _ := argument.Classify("--long")
	assert.True(t, long.(argument.Option).IsLong(), "--long is long")

	short, _ := argument.Classify("-s")
	assert.False(t, short.(argument.Option).IsLong(), "-s is not long")
}
