// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/fault"
)

var testSeed = bytes.Repeat([]byte{0x5a}, 32)

func TestAccountBase58RoundTrip(t *testing.T) {
	key, err := account.PrivateKeyFromSeed(testSeed)
	assert.Nil(t, err, "key from seed")

	id := key.Account()
	assert.False(t, id.IsZero(), "account should not be zero")

	decoded, err := account.FromBase58(id.String())
	assert.Nil(t, err, "decode base58")
	assert.Equal(t, id, decoded, "round trip account")
}

func TestAccountChecksum(t *testing.T) {
	key, _ := account.PrivateKeyFromSeed(testSeed)
	s := []byte(key.Account().String())

	// corrupt one character
	if s[3] == '2' {
		s[3] = '3'
	} else {
		s[3] = '2'
	}

	_, err := account.FromBase58(string(s))
	assert.NotNil(t, err, "corrupted account must not decode")

	_, err = account.FromBase58("0OIl")
	assert.Equal(t, fault.CannotDecodeAccount, err, "invalid base58 alphabet")
}

func TestAccountJSON(t *testing.T) {
	key, _ := account.PrivateKeyFromSeed(testSeed)

	item := struct {
		Owner account.AccountId `json:"owner"`
	}{
		Owner: key.Account(),
	}

	buffer, err := json.Marshal(item)
	assert.Nil(t, err, "marshal")
	assert.Contains(t, string(buffer), key.Account().String(), "base58 in JSON")

	item.Owner = account.Zero
	err = json.Unmarshal(buffer, &item)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, key.Account(), item.Owner, "owner after unmarshal")
}

func TestSignature(t *testing.T) {
	key, _ := account.PrivateKeyFromSeed(testSeed)
	message := []byte("list region")

	signature := key.Sign(message)
	assert.Nil(t, key.Account().CheckSignature(message, signature), "valid signature")

	err := key.Account().CheckSignature([]byte("other message"), signature)
	assert.Equal(t, fault.InvalidSignature, err, "signature of other message")

	err = key.Account().CheckSignature(message, signature[:10])
	assert.Equal(t, fault.InvalidSignature, err, "truncated signature")
}

func TestSeedRoundTrip(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new key")

	restored, err := account.PrivateKeyFromBase58Seed(key.Seed())
	assert.Nil(t, err, "restore")
	assert.Equal(t, key.Account(), restored.Account(), "same account")
}

func TestContractAccount(t *testing.T) {
	a := account.ContractAccount("market")
	b := account.ContractAccount("xcregions")
	assert.NotEqual(t, a, b, "distinct contract accounts")
	assert.Equal(t, a, account.ContractAccount("market"), "deterministic")
}
