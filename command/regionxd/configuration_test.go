// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigurationText = `
local M = {}
M.data_directory = "."
M.pidfile = "regionxd.pid"
M.client_rpc = {
    maximum_connections = 20,
    listen = { "127.0.0.1:2130" },
    certificate = "rpc.crt",
    private_key = "rpc.key",
}
M.metrics = { listen = "127.0.0.1:2132" }
M.relay = { block_interval = interval, initial_block = 2400 }
M.contracts = { listing_deposit = 250, treasury = "` + "TREASURY" + `" }
M.genesis = {
    admin = "ADMIN",
    accounts = { { account = "ALICE", balance = 5000 } },
    regions = { { begin = 30, core = 1, ["end"] = 60, owner = "ALICE" } },
}
M.logging = { levels = { DEFAULT = "warn" } }
return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "regionxd")
	require.NoError(t, err, "temp dir")
	fileName := filepath.Join(dir, "regionxd.conf")
	require.NoError(t, ioutil.WriteFile(fileName, []byte(text), 0600), "write configuration")
	return dir, fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, fileName := writeConfiguration(t, testConfigurationText)
	defer os.RemoveAll(dir)

	options, err := getConfiguration(fileName, map[string]string{"interval": "2s"})
	require.NoError(t, err, "get configuration")

	assert.Equal(t, filepath.Clean(dir), filepath.Clean(options.DataDirectory), "wrong data directory")
	assert.Equal(t, filepath.Join(options.DataDirectory, "regionxd.pid"), options.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(options.DataDirectory, "data", defaultDatabase), options.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(options.DataDirectory, "rpc.crt"), options.ClientRPC.Certificate, "wrong certificate")
	assert.Equal(t, uint64(20), options.ClientRPC.MaximumConnections, "wrong connections")
	assert.Equal(t, uint64(defaultRPCClients), options.HttpsRPC.MaximumConnections, "https default lost")
	assert.Equal(t, "127.0.0.1:2132", options.Metrics.Listen, "wrong metrics listen")

	interval, err := options.Relay.Interval()
	require.NoError(t, err, "interval")
	assert.Equal(t, 2*time.Second, interval, "wrong interval")
	assert.Equal(t, uint32(2400), options.Relay.InitialBlock, "wrong initial block")

	assert.Equal(t, uint64(250), options.Contracts.ListingDeposit, "wrong deposit")
	assert.Equal(t, uint64(defaultSubmissionFee), options.Contracts.SubmissionFee, "fee default lost")
	assert.Equal(t, defaultXcRegions, options.Contracts.XcRegions, "regions default lost")
	assert.Equal(t, "TREASURY", options.Contracts.Treasury, "wrong treasury")

	require.Equal(t, 1, len(options.Genesis.Regions), "wrong region count")
	assert.Equal(t, GenesisRegion{Begin: 30, Core: 1, End: 60, Owner: "ALICE"}, options.Genesis.Regions[0], "wrong region")
	assert.Equal(t, []GenesisAccount{{Account: "ALICE", Balance: 5000}}, options.Genesis.Accounts, "wrong accounts")

	assert.Equal(t, filepath.Join(options.DataDirectory, defaultLogDirectory), options.Logging.Directory, "wrong log directory")

	_, err = os.Stat(filepath.Join(options.DataDirectory, defaultLogDirectory))
	assert.NoError(t, err, "log directory not created")
}

func TestGetConfigurationErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no data directory", `return { data_directory = "" }`},
		{"missing data directory", `return { data_directory = "/nonexistent/regionxd" }`},
		{"bad interval", `return { data_directory = ".", relay = { block_interval = "soon" } }`},
		{"zero interval", `return { data_directory = ".", relay = { block_interval = "0s" } }`},
		{"same contracts", `return { data_directory = ".", contracts = { xc_regions = "x", market = "x" } }`},
		{"database path", `return { data_directory = ".", database = { name = "a/b.leveldb" } }`},
		{"not a table", `return "x"`},
	}

	for _, c := range cases {
		dir, fileName := writeConfiguration(t, c.text)
		_, err := getConfiguration(fileName, nil)
		assert.Error(t, err, c.name)
		os.RemoveAll(dir)
	}
}
