// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/storage"
)

// Env - the view of the ledger given to contract code
type Env struct {
	rt     *Runtime
	trx    storage.Transaction
	caller account.AccountId
	self   account.AccountId
	value  balances.Balance
	block  uint32
	events *[]pendingEvent
}

func (rt *Runtime) newEnv(trx storage.Transaction, caller account.AccountId, self account.AccountId, value balances.Balance) *Env {
	return &Env{
		rt:     rt,
		trx:    trx,
		caller: caller,
		self:   self,
		value:  value,
		block:  rt.RelayBlockNumber(),
		events: &[]pendingEvent{},
	}
}

// Caller - the account that made this call
func (env *Env) Caller() account.AccountId {
	return env.caller
}

// AccountId - the account of the running contract
func (env *Env) AccountId() account.AccountId {
	return env.self
}

// TransferredValue - currency sent with this call
func (env *Env) TransferredValue() balances.Balance {
	return env.value
}

// RelayBlockNumber - relay block at the start of the call
func (env *Env) RelayBlockNumber() uint32 {
	return env.block
}

// CurrentTimeslice - timeslice at the start of the call
func (env *Env) CurrentTimeslice() coretime.Timeslice {
	return coretime.TimesliceAt(env.block)
}

// Transaction - the storage transaction of this call
func (env *Env) Transaction() storage.Transaction {
	return env.trx
}

// Pool - the storage pools
func (env *Env) Pool() *storage.Pools {
	return &env.rt.store.Pool
}

// Balance - free balance of an account
func (env *Env) Balance(who account.AccountId) balances.Balance {
	return env.rt.ledger.BalanceOf(env.trx, who)
}

// Transfer - pay from the running contract's account
func (env *Env) Transfer(to account.AccountId, amount balances.Balance) error {
	return env.rt.ledger.Transfer(env.trx, env.self, to, amount)
}

// EmitEvent - record an event, kept only if the call commits
func (env *Env) EmitEvent(event Event) {
	*env.events = append(*env.events, pendingEvent{
		contract: env.self,
		event:    event,
	})
}

// CallContract - enter another contract as the running contract
//
// value is moved to the callee first; the returned Env shares this
// call's transaction and events
func (env *Env) CallContract(callee account.AccountId, value balances.Balance) (*Env, error) {
	err := env.rt.ledger.Transfer(env.trx, env.self, callee, value)
	if nil != err {
		return nil, err
	}
	return &Env{
		rt:     env.rt,
		trx:    env.trx,
		caller: env.self,
		self:   callee,
		value:  value,
		block:  env.block,
		events: env.events,
	}, nil
}
