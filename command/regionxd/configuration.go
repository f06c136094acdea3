// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/configuration"
	"github.com/regionx/regionxd/metrics"
	"github.com/regionx/regionxd/rpc/listeners"
	"github.com/regionx/regionxd/uniques"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "regionx.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "regionxd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultBlockInterval  = "6s"
	defaultXcRegions      = "xc_regions"
	defaultMarket         = "coretime_market"
	defaultListingDeposit = 100
	defaultSubmissionFee  = 1
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - leveldb location
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// RelayType - the local relay clock
type RelayType struct {
	BlockInterval string `gluamapper:"block_interval" json:"block_interval"`
	InitialBlock  uint32 `gluamapper:"initial_block" json:"initial_block"`
}

// ContractsType - deployed contract instances
type ContractsType struct {
	Collection     uint32 `gluamapper:"collection" json:"collection"`
	XcRegions      string `gluamapper:"xc_regions" json:"xc_regions"`
	Market         string `gluamapper:"market" json:"market"`
	ListingDeposit uint64 `gluamapper:"listing_deposit" json:"listing_deposit"`
	Treasury       string `gluamapper:"treasury" json:"treasury"`
	SubmissionFee  uint64 `gluamapper:"submission_fee" json:"submission_fee"`
}

// GenesisAccount - initial balance
type GenesisAccount struct {
	Account string `gluamapper:"account" json:"account"`
	Balance uint64 `gluamapper:"balance" json:"balance"`
}

// GenesisRegion - a region present in the collection at start
type GenesisRegion struct {
	Begin uint32 `gluamapper:"begin" json:"begin"`
	Core  uint16 `gluamapper:"core" json:"core"`
	Mask  string `gluamapper:"mask" json:"mask"`
	End   uint32 `gluamapper:"end" json:"end"`
	Owner string `gluamapper:"owner" json:"owner"`
	Paid  uint64 `gluamapper:"paid" json:"paid"`
}

// GenesisType - state created on an empty database
type GenesisType struct {
	Admin    string           `gluamapper:"admin" json:"admin"`
	Accounts []GenesisAccount `gluamapper:"accounts" json:"accounts"`
	Regions  []GenesisRegion  `gluamapper:"regions" json:"regions"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Metrics   metrics.Configuration        `gluamapper:"metrics" json:"metrics"`
	Relay     RelayType                    `gluamapper:"relay" json:"relay"`
	Contracts ContractsType                `gluamapper:"contracts" json:"contracts"`
	Genesis   GenesisType                  `gluamapper:"genesis" json:"genesis"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// Interval - relay block period
func (r RelayType) Interval() (time.Duration, error) {
	d, err := time.ParseDuration(r.BlockInterval)
	if nil != err {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("block interval: %q must be positive", r.BlockInterval)
	}
	return d, nil
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
		},

		Relay: RelayType{
			BlockInterval: defaultBlockInterval,
		},

		Contracts: ContractsType{
			Collection:     uint32(uniques.RegionsCollectionId),
			XcRegions:      defaultXcRegions,
			Market:         defaultMarket,
			ListingDeposit: defaultListingDeposit,
			SubmissionFee:  defaultSubmissionFee,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if _, err := options.Relay.Interval(); nil != err {
		return nil, err
	}
	if "" == options.Contracts.XcRegions || "" == options.Contracts.Market || options.Contracts.XcRegions == options.Contracts.Market {
		return nil, fmt.Errorf("Contracts: %q and %q must be distinct names", options.Contracts.XcRegions, options.Contracts.Market)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = configuration.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
