// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/fault"
)

// Transaction - atomic group of writes across all pools
//
// reads see the pending writes of the same transaction
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse bool
	store *Store
	batch *leveldb.Batch
	cache *overlay
}

func newTransaction(store *Store) *transaction {
	return &transaction{
		inUse: false,
		store: store,
		batch: new(leveldb.Batch),
		cache: newOverlay(),
	}
}

// Begin - start a transaction, only one may be open at a time
func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

// InUse - true while a transaction is open
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Put - store a key/value pair
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.mustBeOpen("Put")
	k := p.prefixKey(key)
	t.cache.put(k, value)
	t.batch.Put(k, value)
}

// PutN - store a big endian uint64 value
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	t.Put(p, key, encodeN(value))
}

// Delete - remove a key
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.mustBeOpen("Delete")
	k := p.prefixKey(key)
	t.cache.remove(k)
	t.batch.Delete(k)
}

// Get - read a value, pending writes first then committed data
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	value, state := t.cache.get(p.prefixKey(key))
	switch state {
	case cachedPut:
		result := make([]byte, len(value))
		copy(result, value)
		return result
	case cachedDelete:
		return nil
	default:
		return p.Get(key)
	}
}

// GetN - read a big endian uint64 value
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	return decodeN(key, buffer), true
}

// Has - check if a key exists
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	_, state := t.cache.get(p.prefixKey(key))
	switch state {
	case cachedPut:
		return true
	case cachedDelete:
		return false
	default:
		return p.Has(key)
	}
}

// Commit - write all pending changes atomically
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotStarted
	}

	defer t.reset()

	t.store.RLock()
	defer t.store.RUnlock()

	db, err := t.store.database()
	if nil != err {
		return err
	}
	return db.Write(t.batch, nil)
}

// Abort - discard all pending changes
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		t.reset()
	}
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.clear()
	t.inUse = false
}

func (t *transaction) mustBeOpen(operation string) {
	t.Lock()
	defer t.Unlock()
	if !t.inUse {
		logger.Panicf("transaction.%s: %s", operation, fault.TransactionNotStarted)
	}
}
