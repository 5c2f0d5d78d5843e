// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/optparse/configuration"
	"github.com/bitmark-inc/optparse/util"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultShortOptions = "ab:c:de::f"
	defaultLongOptions  = "when:,verbosity::,version"

	defaultLogDirectory = "."
	defaultLogFile      = "optdemo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	ShortOptions string               `gluamapper:"short_options" json:"short_options"`
	LongOptions  string               `gluamapper:"long_options" json:"long_options"`
	Logging      logger.Configuration `gluamapper:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {

	// the mapper writes into the levels map, so each caller gets a copy
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	return &Configuration{
		ShortOptions: defaultShortOptions,
		LongOptions:  defaultLongOptions,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	configurationDirectory, _ := filepath.Split(configurationFileName)

	options := defaultConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// log directory must already exist
	options.Logging.Directory = util.EnsureAbsolute(configurationDirectory, options.Logging.Directory)
	if err := util.EnsureDirectory(options.Logging.Directory); nil != err {
		return nil, err
	}

	return options, nil
}
