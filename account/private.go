// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"io"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"

	"github.com/regionx/regionxd/fault"
)

// SeedLength - bytes in a private key seed
const SeedLength = ed25519.SeedSize

// PrivateKey - ed25519 signing key of an account
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh key from the system random source
func NewPrivateKey() (*PrivateKey, error) {
	return newPrivateKey(rand.Reader)
}

func newPrivateKey(r io.Reader) (*PrivateKey, error) {
	seed := make([]byte, SeedLength)
	if _, err := io.ReadFull(r, seed); nil != err {
		return nil, err
	}
	return PrivateKeyFromSeed(seed)
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if SeedLength != len(seed) {
		return nil, fault.InvalidAccountLength
	}
	return &PrivateKey{
		key: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBase58Seed - decode the text form produced by Seed
func PrivateKeyFromBase58Seed(s string) (*PrivateKey, error) {
	seed, err := base58.Decode(s)
	if nil != err {
		return nil, fault.CannotDecodeAccount
	}
	return PrivateKeyFromSeed(seed)
}

// Account - the public half
func (p *PrivateKey) Account() AccountId {
	var id AccountId
	copy(id[:], p.key.Public().(ed25519.PublicKey))
	return id
}

// Seed - base58 text of the private seed
func (p *PrivateKey) Seed() string {
	return base58.Encode(p.key.Seed())
}

// Sign - ed25519 signature over a message
func (p *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(p.key, message)
}
