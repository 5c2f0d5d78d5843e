// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "optcheck"
	app.Usage = "inspect option specifications and arguments"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "parse",
			Usage:     "show the option to arity mapping of specification strings",
			ArgsUsage: "SPEC…",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "long, l",
					Usage: " use the long option grammar",
				},
			},
			Action: runParse,
		},
		{
			Name:            "classify",
			Usage:           "classify each argument as positional or option",
			ArgsUsage:       "ARGUMENT…",
			SkipFlagParsing: true,
			Action:          runClassify,
		},
		{
			Name:      "resolve",
			Usage:     "expand abbreviated long options",
			ArgsUsage: "PREFIX…",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "options, o",
					Value: "",
					Usage: "*long option specification `SPEC` e.g. 'when:,verbosity::,version'",
				},
			},
			Action: runResolve,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
