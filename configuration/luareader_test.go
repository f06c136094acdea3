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
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/configuration"
	"github.com/regionx/regionxd/fault"
)

type relay struct {
	BlockInterval string `gluamapper:"block_interval"`
	InitialBlock  uint32 `gluamapper:"initial_block"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Listen        []string          `gluamapper:"listen"`
	Relay         relay             `gluamapper:"relay"`
	Levels        map[string]string `gluamapper:"levels"`
}

const luaText = `
local M = {}
M.data_directory = arg[0]
M.listen = { "127.0.0.1:2130", "[::1]:2130" }
M.relay = {
    block_interval = interval,
    initial_block = 2400,
}
M.levels = { main = "info", market = "debug" }
return M
`

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.NoError(t, err, "temp dir")
	fileName := filepath.Join(dir, "regionxd.conf")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(text), 0600), "write file")
	return fileName, func() { os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, luaText)
	defer cleanup()

	var config testConfiguration
	err := configuration.ParseConfigurationFile(fileName, &config, map[string]string{"interval": "6s"})
	require.NoError(t, err, "parse")

	assert.Equal(t, fileName, config.DataDirectory, "wrong arg[0]")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, config.Listen, "wrong listen")
	assert.Equal(t, relay{BlockInterval: "6s", InitialBlock: 2400}, config.Relay, "wrong relay")
	assert.Equal(t, "debug", config.Levels["market"], "wrong level")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	fileName, cleanup := writeFile(t, "return 5")
	defer cleanup()

	var config testConfiguration
	err := configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ConfigurationPointer, err, "non pointer accepted")

	err = configuration.ParseConfigurationFile(fileName, &config, nil)
	assert.Equal(t, fault.ConfigurationNotTable, err, "non table accepted")

	err = configuration.ParseConfigurationFile(fileName+".missing", &config, nil)
	assert.Error(t, err, "missing file accepted")
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"), "relative")
	assert.Equal(t, "/var/log", configuration.EnsureAbsolute("/data", "/var/log"), "absolute")
	assert.Equal(t, "/data/x", configuration.EnsureAbsolute("/data", "./y/../x"), "unclean")
}
