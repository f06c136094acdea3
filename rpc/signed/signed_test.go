// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/fixtures"
	"github.com/regionx/regionxd/rpc/signed"
)

type params struct {
	Amount uint64 `json:"amount"`
}

func TestSignThenVerify(t *testing.T) {
	h, err := signed.Sign(fixtures.AliceKey, 3, "Balances.Transfer", params{Amount: 10})
	require.NoError(t, err, "sign")
	assert.Equal(t, fixtures.Alice, h.Caller, "caller")
	assert.Equal(t, uint64(3), h.Nonce, "nonce")

	ex, err := h.Extrinsic("Balances.Transfer", params{Amount: 10})
	require.NoError(t, err, "extrinsic")
	assert.NoError(t, ex.Verify(), "signature rejected")
}

func TestTamperedCall(t *testing.T) {
	h, err := signed.Sign(fixtures.AliceKey, 0, "Balances.Transfer", params{Amount: 10})
	require.NoError(t, err, "sign")

	ex, err := h.Extrinsic("Balances.Transfer", params{Amount: 11})
	require.NoError(t, err, "extrinsic")
	assert.Equal(t, fault.InvalidSignature, ex.Verify(), "changed amount accepted")

	ex, err = h.Extrinsic("Market.PurchaseRegion", params{Amount: 10})
	require.NoError(t, err, "extrinsic")
	assert.Equal(t, fault.InvalidSignature, ex.Verify(), "changed method accepted")
}

func TestPackMissing(t *testing.T) {
	_, err := signed.Pack("", params{})
	assert.Equal(t, fault.MissingParameters, err, "empty method")

	_, err = signed.Pack("Balances.Transfer", nil)
	assert.Equal(t, fault.MissingParameters, err, "nil params")
}
