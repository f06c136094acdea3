// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"encoding/binary"
	"encoding/json"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/storage"
)

// maximum events returned by one List
const maximumEventCount = 100

// Event - anything a contract can emit
type Event interface {
	EventName() string
}

type pendingEvent struct {
	contract account.AccountId
	event    Event
}

// EventRecord - a committed event
type EventRecord struct {
	Sequence uint64            `json:"sequence"`
	Block    uint32            `json:"block"`
	Contract account.AccountId `json:"contract"`
	Name     string            `json:"name"`
	Data     json.RawMessage   `json:"data"`
}

func sequenceBytes(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// number the events and store them in the call's transaction
func (rt *Runtime) recordEvents(trx storage.Transaction, events []pendingEvent) ([]EventRecord, error) {
	if 0 == len(events) {
		return nil, nil
	}

	next, _ := trx.GetN(rt.store.Pool.ChainState, sequenceKey)
	block := rt.RelayBlockNumber()

	records := make([]EventRecord, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(e.event)
		if nil != err {
			return nil, err
		}
		r := EventRecord{
			Sequence: next,
			Block:    block,
			Contract: e.contract,
			Name:     e.event.EventName(),
			Data:     data,
		}
		packed, err := json.Marshal(r)
		if nil != err {
			return nil, err
		}
		trx.Put(rt.store.Pool.Events, sequenceBytes(next), packed)
		records = append(records, r)
		next += 1
	}
	trx.PutN(rt.store.Pool.ChainState, sequenceKey, next)
	return records, nil
}

func (rt *Runtime) publish(records []EventRecord) {
	if nil == rt.bus {
		return
	}
	for _, r := range records {
		rt.bus.Send(r.Name, r)
	}
}

// NextSequence - sequence number the next event will receive
func (rt *Runtime) NextSequence() uint64 {
	n, _ := rt.store.Pool.ChainState.GetN(sequenceKey)
	return n
}

// Events - committed events starting at a sequence number
func (rt *Runtime) Events(start uint64, count int) ([]EventRecord, error) {
	if count <= 0 || count > maximumEventCount {
		return nil, fault.InvalidCount
	}

	cursor := rt.store.Pool.Events.NewFetchCursor().Seek(sequenceBytes(start))
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]EventRecord, 0, len(elements))
	for _, e := range elements {
		var r EventRecord
		err := json.Unmarshal(e.Value, &r)
		if nil != err {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}
