// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test setup
package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// well known test keys, derived from fixed seeds
var (
	AliceKey   = mustKey(0xa1)
	BobKey     = mustKey(0xb0)
	CharlieKey = mustKey(0xc4)

	Alice   = AliceKey.Account()
	Bob     = BobKey.Account()
	Charlie = CharlieKey.Account()
)

func mustKey(fill byte) *account.PrivateKey {
	seed := make([]byte, account.SeedLength)
	for i := range seed {
		seed[i] = fill
	}
	key, err := account.PrivateKeyFromSeed(seed)
	if nil != err {
		panic(err)
	}
	return key
}

// SetupTestLogger - log to a scratch directory at critical level
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
