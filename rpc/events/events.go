// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/rpc/ratelimit"
	"github.com/regionx/regionxd/runtime"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 100
)

// limit for count
const maximumEventList = 100

// Events - type for RPC calls
type Events struct {
	Log     *logger.L
	Limiter *ratelimit.Limiter
	Runtime *runtime.Runtime
}

// New - create the event log service
func New(log *logger.L, rt *runtime.Runtime) *Events {
	return &Events{
		Log:     log,
		Limiter: ratelimit.New(rateLimitEvents, rateBurstEvents, maximumEventList),
		Runtime: rt,
	}
}

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - result from RPC
type ListReply struct {
	Events    []runtime.EventRecord `json:"events"`
	NextStart uint64                `json:"nextStart,string"`
}

// List - committed events in sequence order
func (e *Events) List(arguments *ListArguments, reply *ListReply) error {
	if err := e.Limiter.LimitN(arguments.Count); nil != err {
		return err
	}

	records, err := e.Runtime.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = records
	reply.NextStart = arguments.Start
	if n := len(records); n > 0 {
		reply.NextStart = records[n-1].Sequence + 1
	}
	return nil
}
