// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/configuration"
	"github.com/bitmark-inc/tweetregistry/fault"
)

type section struct {
	Listen             []string `gluamapper:"listen"`
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Owner         string            `gluamapper:"owner"`
	ClientRPC     section           `gluamapper:"client_rpc"`
	Levels        map[string]string `gluamapper:"levels"`
}

const testScript = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.owner = owner or "0x0000000000000000000000000000000000000000"

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2130",
        "[::1]:2130",
    },
}

M.levels = {
    DEFAULT = "info",
    rpc = "debug",
}

return M
`

func writeScript(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "test.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() {
		_ = os.RemoveAll(dir)
	}
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, done := writeScript(t, testScript)
	defer done()

	variables := map[string]string{
		"owner": "0x00000000000000000000000000000000000000a0",
	}

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c, variables)
	assert.Nil(t, err, "wrong parse")

	assert.Equal(t, filepath.Dir(fileName)+"/", c.DataDirectory, "wrong data directory")
	assert.Equal(t, variables["owner"], c.Owner, "variable not applied")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "wrong maximum connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, "debug", c.Levels["rpc"], "wrong level")
}

func TestParseConfigurationFileDefaultVariable(t *testing.T) {
	fileName, done := writeScript(t, testScript)
	defer done()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Nil(t, err, "wrong parse")
	assert.Equal(t, "0x0000000000000000000000000000000000000000", c.Owner, "wrong default")
}

func TestParseConfigurationFileNoTable(t *testing.T) {
	fileName, done := writeScript(t, "return 42\n")
	defer done()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.Equal(t, fault.ConfigurationFileAbsent, err, "wrong error")
}

func TestParseConfigurationFileSyntaxError(t *testing.T) {
	fileName, done := writeScript(t, "return {\n")
	defer done()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &c, nil)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestParseConfigurationFileMissing(t *testing.T) {
	var c testConfiguration
	err := configuration.ParseConfigurationFile("/nonexistent/test.conf", &c, nil)
	assert.NotNil(t, err, "missing file accepted")
}
