// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balances - native currency accounts
package balances

import (
	"math"
	"math/bits"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/storage"
)

// Balance - amount of native currency
type Balance uint64

// chain state key of the total issuance
var issuanceKey = []byte("issuance")

// SaturatingMul - b * n clamped to the maximum balance
func (b Balance) SaturatingMul(n uint64) Balance {
	hi, lo := bits.Mul64(uint64(b), n)
	if 0 != hi {
		return Balance(math.MaxUint64)
	}
	return Balance(lo)
}

// CheckedAdd - b + c or fault.Overflow
func (b Balance) CheckedAdd(c Balance) (Balance, error) {
	sum, carry := bits.Add64(uint64(b), uint64(c), 0)
	if 0 != carry {
		return 0, fault.Overflow
	}
	return Balance(sum), nil
}

// Ledger - account balances kept in a store
type Ledger struct {
	log      *logger.L
	accounts *storage.PoolHandle
	state    *storage.PoolHandle
}

// New - ledger over the balance pool of a store
func New(store *storage.Store) *Ledger {
	return &Ledger{
		log:      logger.New("balances"),
		accounts: store.Pool.Balances,
		state:    store.Pool.ChainState,
	}
}

// BalanceOf - free balance as seen by a transaction
func (l *Ledger) BalanceOf(trx storage.Transaction, who account.AccountId) Balance {
	n, _ := trx.GetN(l.accounts, who.Bytes())
	return Balance(n)
}

// Committed - free balance outside of any transaction
func (l *Ledger) Committed(who account.AccountId) Balance {
	n, _ := l.accounts.GetN(who.Bytes())
	return Balance(n)
}

// TotalIssuance - sum of all minted currency
func (l *Ledger) TotalIssuance() Balance {
	n, _ := l.state.GetN(issuanceKey)
	return Balance(n)
}

// Transfer - move amount between two accounts
//
// transfers to self and of zero are allowed and change nothing
func (l *Ledger) Transfer(trx storage.Transaction, from account.AccountId, to account.AccountId, amount Balance) error {
	if 0 == amount || from == to {
		return nil
	}

	fromBalance := l.BalanceOf(trx, from)
	if fromBalance < amount {
		l.log.Debugf("transfer: %s has: %d  needs: %d", from, fromBalance, amount)
		return fault.InsufficientBalance
	}

	toBalance, err := l.BalanceOf(trx, to).CheckedAdd(amount)
	if nil != err {
		return err
	}

	l.put(trx, from, fromBalance-amount)
	l.put(trx, to, toBalance)
	return nil
}

// Mint - create new currency, genesis endowment only
func (l *Ledger) Mint(trx storage.Transaction, to account.AccountId, amount Balance) error {
	toBalance, err := l.BalanceOf(trx, to).CheckedAdd(amount)
	if nil != err {
		return err
	}

	issuance, _ := trx.GetN(l.state, issuanceKey)
	total, err := Balance(issuance).CheckedAdd(amount)
	if nil != err {
		return err
	}

	l.put(trx, to, toBalance)
	trx.PutN(l.state, issuanceKey, uint64(total))

	l.log.Infof("mint: %d to: %s", amount, to)
	return nil
}

// empty accounts are removed
func (l *Ledger) put(trx storage.Transaction, who account.AccountId, amount Balance) {
	if 0 == amount {
		trx.Delete(l.accounts, who.Bytes())
		return
	}
	trx.PutN(l.accounts, who.Bytes(), uint64(amount))
}
