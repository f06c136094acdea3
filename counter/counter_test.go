// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regionx/regionxd/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "not zero at start")

	for i := 0; i < 5; i += 1 {
		c.Increment()
	}
	assert.Equal(t, uint64(5), c.Uint64(), "after increments")

	for i := 0; i < 5; i += 1 {
		c.Decrement()
	}
	assert.True(t, c.IsZero(), "did not return to zero")
}

func TestAcquireLimit(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.Acquire(2), "first slot")
	assert.True(t, c.Acquire(2), "second slot")
	assert.False(t, c.Acquire(2), "slot beyond limit")
	assert.Equal(t, uint64(2), c.Uint64(), "failed acquire changed count")

	c.Decrement()
	assert.True(t, c.Acquire(2), "released slot")
}

func TestAcquireConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	const limit = 10
	granted := make(chan struct{}, 100)
	for i := 0; i < 100; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(limit) {
				granted <- struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, len(granted), "wrong number of slots granted")
	assert.Equal(t, uint64(limit), c.Uint64(), "wrong count")
}
