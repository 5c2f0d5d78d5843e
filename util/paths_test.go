// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/optparse/fault"
	"github.com/bitmark-inc/optparse/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/etc/optdemo", "log", "/etc/optdemo/log"},
		{"/etc/optdemo", "./log/../logs", "/etc/optdemo/logs"},
		{"/etc/optdemo", "/var/log", "/var/log"},
		{"/etc/optdemo/", "/var//log/", "/var/log"},
		{"/etc/optdemo", "", "/etc/optdemo"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: EnsureAbsolute(%q, %q)", i, item.directory, item.path)
	}
}

func TestEnsureFileExistsAndDirectory(t *testing.T) {
	directory, err := ioutil.TempDir("", "util-test")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(directory)

	fileName := filepath.Join(directory, "file")
	err = ioutil.WriteFile(fileName, []byte("data"), 0600)
	assert.Nil(t, err, "write file")

	assert.True(t, util.EnsureFileExists(fileName), "file not found")
	assert.True(t, util.EnsureFileExists(directory), "directory not found")
	assert.False(t, util.EnsureFileExists(filepath.Join(directory, "missing")), "missing file found")

	assert.Nil(t, util.EnsureDirectory(directory), "directory rejected")
	assert.Equal(t, fault.ErrNotDirectory, util.EnsureDirectory(fileName), "file accepted as directory")
	assert.True(t, os.IsNotExist(util.EnsureDirectory(filepath.Join(directory, "missing"))), "missing directory")
}
