// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/regionx/regionxd/messagebus"
)

func TestBroadcast(t *testing.T) {
	queue := messagebus.NewBroadcast()

	commands := []string{"RegionListed", "RegionPurchased", "Transfer"}

	// nothing listening so these messages should be dropped silently
	for _, c := range commands {
		queue.Send("ignored:"+c, nil)
	}
	assert.Equal(t, uint64(0), queue.Dropped(), "messages without listeners counted as dropped")

	const listeners = 5

	var received [listeners]int
	var wg sync.WaitGroup

	channels := make([]<-chan messagebus.Message, listeners)
	for i := 0; i < listeners; i += 1 {
		channels[i] = queue.Chan(len(commands))
	}
	assert.Equal(t, listeners, queue.Listeners(), "wrong listener count")

	for i := 0; i < listeners; i += 1 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for _, c := range commands {
				m := <-channels[n]
				if m.Command == c {
					received[n] += 1
				}
			}
		}(i)
	}

	for i, c := range commands {
		queue.Send(c, i)
	}

	wg.Wait()
	for i, n := range received {
		assert.Equal(t, len(commands), n, "listener[%d] wrong message count", i)
	}
}

func TestSlowListenerDrops(t *testing.T) {
	queue := messagebus.NewBroadcast()
	c := queue.Chan(1)

	queue.Send("first", 1)
	queue.Send("second", 2)

	m := <-c
	assert.Equal(t, "first", m.Command, "wrong first message")
	assert.Equal(t, 1, m.Parameters, "wrong parameters")
	assert.Equal(t, uint64(1), queue.Dropped(), "wrong dropped count")
}

func TestRelease(t *testing.T) {
	queue := messagebus.NewBroadcast()
	c := queue.Chan(0)
	queue.Release(c)

	_, ok := <-c
	assert.False(t, ok, "channel not closed on release")
	assert.Equal(t, 0, queue.Listeners(), "listener not removed")

	// releasing twice is harmless
	queue.Release(c)
	queue.Send("after", nil)
}
