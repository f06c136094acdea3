// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/fault"
)

// Extrinsic - a signed submission
//
// the signature covers SigningDigest
type Extrinsic struct {
	Caller    account.AccountId `json:"caller"`
	Nonce     uint64            `json:"nonce"`
	Call      []byte            `json:"call"`
	Signature account.Signature `json:"signature"`
}

// SigningDigest - sha3-256 of nonce ++ packed call
func SigningDigest(nonce uint64, call []byte) []byte {
	message := make([]byte, 8, 8+len(call))
	binary.BigEndian.PutUint64(message, nonce)
	message = append(message, call...)
	digest := sha3.Sum256(message)
	return digest[:]
}

// Sign - build a signed extrinsic
func Sign(key *account.PrivateKey, nonce uint64, call []byte) Extrinsic {
	return Extrinsic{
		Caller:    key.Account(),
		Nonce:     nonce,
		Call:      call,
		Signature: key.Sign(SigningDigest(nonce, call)),
	}
}

// Verify - check the signature
func (ex Extrinsic) Verify() error {
	return ex.Caller.CheckSignature(SigningDigest(ex.Nonce, ex.Call), ex.Signature)
}

// NextNonce - nonce expected on the next submission of an account
func (rt *Runtime) NextNonce(who account.AccountId) uint64 {
	n, _ := rt.store.Pool.Nonces.GetN(who.Bytes())
	return n
}

// Submit - pay for and run a signed call
//
// the fee and nonce are committed before the call runs, so a failed
// call still pays but changes nothing else
func (rt *Runtime) Submit(ex Extrinsic, contract account.AccountId, value balances.Balance, fn Function) ([]EventRecord, error) {
	err := ex.Verify()
	if nil != err {
		return nil, err
	}

	rt.Lock()
	defer rt.Unlock()

	err = rt.chargeSubmission(ex)
	if nil != err {
		return nil, err
	}

	return rt.call(ex.Caller, contract, value, fn)
}

// must be called with the lock held
func (rt *Runtime) chargeSubmission(ex Extrinsic) error {
	if 0 != rt.config.SubmissionFee && rt.config.Treasury.IsZero() {
		return fault.MissingTreasury
	}

	trx, err := rt.store.Begin()
	if nil != err {
		return err
	}

	nonce, _ := trx.GetN(rt.store.Pool.Nonces, ex.Caller.Bytes())
	if nonce != ex.Nonce {
		trx.Abort()
		rt.log.Debugf("submit: %s  nonce: %d  expected: %d", ex.Caller, ex.Nonce, nonce)
		return fault.InvalidNonce
	}

	err = rt.ledger.Transfer(trx, ex.Caller, rt.config.Treasury, rt.config.SubmissionFee)
	if nil != err {
		trx.Abort()
		return fault.WrongSubmissionFee
	}

	trx.PutN(rt.store.Pool.Nonces, ex.Caller.Bytes(), nonce+1)
	return trx.Commit()
}
