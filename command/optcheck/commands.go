// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/optparse/argument"
	"github.com/bitmark-inc/optparse/fault"
	"github.com/bitmark-inc/optparse/longoption"
	"github.com/bitmark-inc/optparse/optionspec"
)

type parseResult struct {
	Spec    string          `json:"spec"`
	Grammar string          `json:"grammar"`
	Options optionspec.Spec `json:"options"`
}

type positionalResult struct {
	Argument string `json:"argument"`
	Kind     string `json:"kind"`
}

// Value is null when no "=" was given
type optionResult struct {
	Argument string  `json:"argument"`
	Kind     string  `json:"kind"`
	Dashes   int     `json:"dashes"`
	Name     string  `json:"name"`
	Value    *string `json:"value"`
}

type errorResult struct {
	Argument string `json:"argument"`
	Kind     string `json:"kind"`
	Error    string `json:"error"`
}

// Name is null unless the prefix is unique
type resolveResult struct {
	Prefix     string   `json:"prefix"`
	Name       *string  `json:"name"`
	Candidates []string `json:"candidates"`
}

func runParse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	grammar := optionspec.Short
	if c.Bool("long") {
		grammar = optionspec.Long
	}

	results := make([]parseResult, 0, len(c.Args()))
	for _, text := range c.Args() {
		spec := optionspec.Parse(grammar, text)
		if m.verbose {
			fmt.Fprintf(m.e, "%s spec: %q has %d options\n", grammar, text, len(spec))
		}
		results = append(results, parseResult{
			Spec:    text,
			Grammar: grammar.String(),
			Options: spec,
		})
	}

	return printJson(m.w, results)
}

func runClassify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	results := make([]interface{}, 0, len(c.Args()))
	for _, arg := range c.Args() {
		token, err := argument.Classify(arg)
		if nil != err {
			if m.verbose {
				fmt.Fprintf(m.e, "argument: %q  error: %s\n", arg, err)
			}
			results = append(results, errorResult{
				Argument: arg,
				Kind:     "error",
				Error:    err.Error(),
			})
			continue
		}

		switch tok := token.(type) {
		case argument.Positional:
			results = append(results, positionalResult{
				Argument: arg,
				Kind:     "positional",
			})
		case argument.Option:
			r := optionResult{
				Argument: arg,
				Kind:     "option",
				Dashes:   tok.Dashes,
				Name:     tok.Name,
			}
			if value, ok := tok.Lookup(); ok {
				r.Value = &value
			}
			results = append(results, r)
		}
	}

	return printJson(m.w, results)
}

func runResolve(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	spec := c.String("options")
	if "" == spec {
		return fault.ErrMissingOptions
	}
	names := optionspec.ParseLong(spec).Names()

	if m.verbose {
		fmt.Fprintf(m.e, "long options: %v\n", names)
	}

	results := make([]resolveResult, 0, len(c.Args()))
	for _, prefix := range c.Args() {
		r := resolveResult{
			Prefix:     prefix,
			Candidates: longoption.Candidates(prefix, names),
		}
		if name, ok := longoption.Resolve(prefix, names); ok {
			r.Name = &name
		}
		results = append(results, r)
	}

	return printJson(m.w, results)
}
