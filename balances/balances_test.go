// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balances_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/fixtures"
	"github.com/regionx/regionxd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setupLedger(t *testing.T) (*storage.Store, *balances.Ledger) {
	store, err := storage.OpenMemory()
	require.NoError(t, err, "open memory store")

	ledger := balances.New(store)

	trx, err := store.Begin()
	require.NoError(t, err, "begin")
	require.NoError(t, ledger.Mint(trx, fixtures.Alice, 1000), "mint")
	require.NoError(t, trx.Commit(), "commit")

	return store, ledger
}

func TestSaturatingMul(t *testing.T) {
	assert.Equal(t, balances.Balance(1500), balances.Balance(50).SaturatingMul(30), "wrong product")
	assert.Equal(t, balances.Balance(0), balances.Balance(50).SaturatingMul(0), "wrong zero product")
	assert.Equal(t, balances.Balance(math.MaxUint64), balances.Balance(math.MaxUint64/2).SaturatingMul(3), "product did not saturate")
}

func TestCheckedAdd(t *testing.T) {
	sum, err := balances.Balance(1).CheckedAdd(2)
	assert.NoError(t, err, "add error")
	assert.Equal(t, balances.Balance(3), sum, "wrong sum")

	_, err = balances.Balance(math.MaxUint64).CheckedAdd(1)
	assert.Equal(t, fault.Overflow, err, "overflow not detected")
}

func TestTransfer(t *testing.T) {
	store, ledger := setupLedger(t)
	defer store.Close()

	assert.Equal(t, balances.Balance(1000), ledger.Committed(fixtures.Alice), "wrong genesis balance")
	assert.Equal(t, balances.Balance(1000), ledger.TotalIssuance(), "wrong issuance")

	trx, err := store.Begin()
	require.NoError(t, err, "begin")
	require.NoError(t, ledger.Transfer(trx, fixtures.Alice, fixtures.Bob, 400), "transfer")
	assert.Equal(t, balances.Balance(600), ledger.BalanceOf(trx, fixtures.Alice), "pending sender balance")
	assert.Equal(t, balances.Balance(400), ledger.BalanceOf(trx, fixtures.Bob), "pending receiver balance")
	require.NoError(t, trx.Commit(), "commit")

	assert.Equal(t, balances.Balance(600), ledger.Committed(fixtures.Alice), "sender balance")
	assert.Equal(t, balances.Balance(400), ledger.Committed(fixtures.Bob), "receiver balance")
	assert.Equal(t, balances.Balance(1000), ledger.TotalIssuance(), "transfer changed issuance")
}

func TestTransferInsufficient(t *testing.T) {
	store, ledger := setupLedger(t)
	defer store.Close()

	trx, err := store.Begin()
	require.NoError(t, err, "begin")
	defer trx.Abort()

	err = ledger.Transfer(trx, fixtures.Bob, fixtures.Alice, 1)
	assert.Equal(t, fault.InsufficientBalance, err, "empty account paid")

	err = ledger.Transfer(trx, fixtures.Alice, fixtures.Bob, 1001)
	assert.Equal(t, fault.InsufficientBalance, err, "overdraft allowed")
	assert.Equal(t, balances.Balance(1000), ledger.BalanceOf(trx, fixtures.Alice), "failed transfer changed balance")
}

func TestTransferAll(t *testing.T) {
	store, ledger := setupLedger(t)
	defer store.Close()

	trx, err := store.Begin()
	require.NoError(t, err, "begin")
	require.NoError(t, ledger.Transfer(trx, fixtures.Alice, fixtures.Charlie, 1000), "transfer")
	require.NoError(t, ledger.Transfer(trx, fixtures.Charlie, fixtures.Charlie, 1000), "self transfer")
	require.NoError(t, ledger.Transfer(trx, fixtures.Bob, fixtures.Charlie, 0), "zero transfer")
	require.NoError(t, trx.Commit(), "commit")

	assert.False(t, store.Pool.Balances.Has(fixtures.Alice.Bytes()), "empty account kept")
	assert.Equal(t, balances.Balance(1000), ledger.Committed(fixtures.Charlie), "wrong balance")
}
