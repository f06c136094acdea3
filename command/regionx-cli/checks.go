// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"strings"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
)

// read the private key of the current identity
func checkIdentity(m *metadata) (*account.PrivateKey, error) {
	if "" == m.identity {
		return nil, ErrMissingIdentity
	}
	seed, err := ioutil.ReadFile(m.identity)
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromBase58Seed(strings.TrimSpace(string(seed)))
}

// an account given on the command line, the identity's own when blank
func checkAccount(m *metadata, s string) (account.AccountId, error) {
	if "" != s {
		return account.FromBase58(s)
	}
	key, err := checkIdentity(m)
	if nil != err {
		return account.Zero, err
	}
	return key.Account(), nil
}

// optional account, nil when blank
func checkOptionalAccount(s string) (*account.AccountId, error) {
	if "" == s {
		return nil, nil
	}
	a, err := account.FromBase58(s)
	if nil != err {
		return nil, err
	}
	return &a, nil
}

// hex region id
func checkRegionId(s string) (coretime.RawRegionId, error) {
	var id coretime.RawRegionId
	if "" == s {
		return id, ErrMissingRegion
	}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

// optional hex region id, nil when blank
func checkOptionalRegionId(s string) (*coretime.RawRegionId, error) {
	if "" == s {
		return nil, nil
	}
	id, err := checkRegionId(s)
	if nil != err {
		return nil, err
	}
	return &id, nil
}

// a non-zero amount
func checkAmount(amount uint64) (balances.Balance, error) {
	if 0 == amount {
		return 0, ErrMissingAmount
	}
	return balances.Balance(amount), nil
}
