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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/fixtures"
)

func TestCheckIdentity(t *testing.T) {
	dir, err := ioutil.TempDir("", "regionx-cli")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(dir)

	m := &metadata{}
	_, err = checkIdentity(m)
	assert.Equal(t, ErrMissingIdentity, err, "blank identity accepted")

	m.identity = filepath.Join(dir, "account.seed")
	require.NoError(t, ioutil.WriteFile(m.identity, []byte(fixtures.AliceKey.Seed()+"\n"), 0600), "write seed")

	key, err := checkIdentity(m)
	require.NoError(t, err, "identity")
	assert.Equal(t, fixtures.Alice, key.Account(), "wrong account")

	who, err := checkAccount(m, "")
	require.NoError(t, err, "default account")
	assert.Equal(t, fixtures.Alice, who, "wrong default account")

	who, err = checkAccount(m, fixtures.Bob.String())
	require.NoError(t, err, "explicit account")
	assert.Equal(t, fixtures.Bob, who, "wrong explicit account")
}

func TestCheckRegionId(t *testing.T) {
	region := coretime.RegionId{Begin: 30, Core: 1, Mask: coretime.CompleteMask}
	text, err := region.Raw().MarshalText()
	require.NoError(t, err, "marshal")

	id, err := checkRegionId(string(text))
	require.NoError(t, err, "region id")
	assert.Equal(t, region.Raw(), id, "wrong id")

	_, err = checkRegionId("")
	assert.Equal(t, ErrMissingRegion, err, "blank region accepted")

	_, err = checkRegionId("abc")
	assert.Equal(t, fault.InvalidRegionId, err, "short region accepted")

	optional, err := checkOptionalRegionId("")
	assert.NoError(t, err, "blank optional region")
	assert.Nil(t, optional, "blank optional region set")
}

func TestCheckAmount(t *testing.T) {
	_, err := checkAmount(0)
	assert.Equal(t, ErrMissingAmount, err, "zero amount accepted")

	amount, err := checkAmount(25)
	assert.NoError(t, err, "amount")
	assert.Equal(t, balances.Balance(25), amount, "wrong amount")

	recipient, err := checkOptionalAccount("")
	assert.NoError(t, err, "blank recipient")
	assert.Nil(t, recipient, "blank recipient set")

	_, err = checkOptionalAccount("bad")
	assert.Error(t, err, "bad recipient accepted")
}
