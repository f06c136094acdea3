// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// state of a key in the write overlay
type cacheState int

const (
	notCached cacheState = iota
	cachedPut
	cachedDelete
)

// read-your-writes overlay for an open transaction
type overlay struct {
	cache *cache.Cache
}

type cacheData struct {
	op    cacheState
	value []byte
}

// entries live until the transaction ends, there is no janitor
func newOverlay() *overlay {
	return &overlay{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (c *overlay) get(key []byte) ([]byte, cacheState) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return nil, notCached
	}
	data := obj.(cacheData)
	return data.value, data.op
}

func (c *overlay) put(key []byte, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	c.cache.Set(string(key), cacheData{op: cachedPut, value: stored}, cache.NoExpiration)
}

func (c *overlay) remove(key []byte) {
	c.cache.Set(string(key), cacheData{op: cachedDelete}, cache.NoExpiration)
}

func (c *overlay) clear() {
	c.cache.Flush()
}
