// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/messagebus"
	"github.com/regionx/regionxd/storage"
)

// chain state keys
var (
	relayKey    = []byte("relay")
	sequenceKey = []byte("events")
)

// Configuration - runtime parameters
//
// a non-zero submission fee needs a treasury to receive it
type Configuration struct {
	SubmissionFee balances.Balance
	Treasury      account.AccountId
}

// Function - contract code run inside a call
type Function func(env *Env) error

// Runtime - the contract host
type Runtime struct {
	sync.Mutex

	log    *logger.L
	store  *storage.Store
	ledger *balances.Ledger
	bus    *messagebus.BroadcastQueue
	config Configuration

	relayBlock uint32 // atomic
}

// New - create a runtime over an open store
//
// the relay block number continues from the last persisted value
func New(store *storage.Store, bus *messagebus.BroadcastQueue, config Configuration) *Runtime {
	rt := &Runtime{
		log:    logger.New("runtime"),
		store:  store,
		ledger: balances.New(store),
		bus:    bus,
		config: config,
	}

	n, _ := store.Pool.ChainState.GetN(relayKey)
	rt.relayBlock = uint32(n)

	rt.log.Infof("relay block: %d  submission fee: %d  treasury: %s", n, config.SubmissionFee, config.Treasury)
	return rt
}

// Ledger - the balance ledger
func (rt *Runtime) Ledger() *balances.Ledger {
	return rt.ledger
}

// Store - the underlying store
func (rt *Runtime) Store() *storage.Store {
	return rt.store
}

// Bus - committed event broadcast
func (rt *Runtime) Bus() *messagebus.BroadcastQueue {
	return rt.bus
}

// SubmissionFee - fee charged for each signed submission
func (rt *Runtime) SubmissionFee() balances.Balance {
	return rt.config.SubmissionFee
}

// RelayBlockNumber - current relay chain block
func (rt *Runtime) RelayBlockNumber() uint32 {
	return atomic.LoadUint32(&rt.relayBlock)
}

// CurrentTimeslice - timeslice of the current relay chain block
func (rt *Runtime) CurrentTimeslice() coretime.Timeslice {
	return coretime.TimesliceAt(rt.RelayBlockNumber())
}

// SetRelayBlockNumber - move the relay clock, persisted
//
// waits for any running call to finish so a call sees one block number
func (rt *Runtime) SetRelayBlockNumber(n uint32) error {
	rt.Lock()
	defer rt.Unlock()

	trx, err := rt.store.Begin()
	if nil != err {
		return err
	}
	trx.PutN(rt.store.Pool.ChainState, relayKey, uint64(n))
	err = trx.Commit()
	if nil != err {
		return err
	}

	atomic.StoreUint32(&rt.relayBlock, n)
	return nil
}

// Call - run a state changing contract call
//
// value is moved from caller to contract before fn runs; the
// committed events are returned
func (rt *Runtime) Call(caller account.AccountId, contract account.AccountId, value balances.Balance, fn Function) ([]EventRecord, error) {
	rt.Lock()
	defer rt.Unlock()

	return rt.call(caller, contract, value, fn)
}

// Query - run contract code without keeping any effect
func (rt *Runtime) Query(caller account.AccountId, contract account.AccountId, fn Function) error {
	rt.Lock()
	defer rt.Unlock()

	trx, err := rt.store.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	env := rt.newEnv(trx, caller, contract, 0)
	return fn(env)
}

// Mint - endow an account, genesis only
func (rt *Runtime) Mint(who account.AccountId, amount balances.Balance) error {
	rt.Lock()
	defer rt.Unlock()

	trx, err := rt.store.Begin()
	if nil != err {
		return err
	}
	err = rt.ledger.Mint(trx, who, amount)
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

// must be called with the lock held
func (rt *Runtime) call(caller account.AccountId, contract account.AccountId, value balances.Balance, fn Function) ([]EventRecord, error) {
	trx, err := rt.store.Begin()
	if nil != err {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	err = rt.ledger.Transfer(trx, caller, contract, value)
	if nil != err {
		return nil, err
	}

	env := rt.newEnv(trx, caller, contract, value)
	err = fn(env)
	if nil != err {
		rt.log.Debugf("call: caller: %s  contract: %s  value: %d  aborted: %s", caller, contract, value, err)
		return nil, err
	}

	records, err := rt.recordEvents(trx, *env.events)
	if nil != err {
		return nil, err
	}

	err = trx.Commit()
	if nil != err {
		rt.log.Errorf("call: commit error: %s", err)
		return nil, err
	}
	committed = true

	rt.publish(records)
	return records, nil
}
