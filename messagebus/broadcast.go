// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// minimum listener buffer
const minimumQueueSize = 1

// Message - an item on the bus
type Message struct {
	Command    string      // event name
	Parameters interface{} // event record
}

// BroadcastQueue - fan out to any number of listeners
type BroadcastQueue struct {
	sync.Mutex
	listeners map[<-chan Message]chan Message
	dropped   uint64
}

// NewBroadcast - create an empty broadcast queue
func NewBroadcast() *BroadcastQueue {
	return &BroadcastQueue{
		listeners: make(map[<-chan Message]chan Message),
	}
}

// Send - deliver a message to every current listener
func (queue *BroadcastQueue) Send(command string, parameters interface{}) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.Lock()
	defer queue.Unlock()

	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
			queue.dropped += 1
		}
	}
}

// Chan - register a new listener with a buffer of size messages
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < minimumQueueSize {
		size = minimumQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners[c] = c
	queue.Unlock()

	return c
}

// Release - unregister a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	if w, ok := queue.listeners[c]; ok {
		delete(queue.listeners, c)
		close(w)
	}
}

// Listeners - number of registered listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.Lock()
	defer queue.Unlock()
	return len(queue.listeners)
}

// Dropped - number of messages discarded because a listener was full
func (queue *BroadcastQueue) Dropped() uint64 {
	queue.Lock()
	defer queue.Unlock()
	return queue.dropped
}
