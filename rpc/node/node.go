// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/rpc/ratelimit"
	"github.com/regionx/regionxd/runtime"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *ratelimit.Limiter
	Start   time.Time
	Version string
	Runtime *runtime.Runtime
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, rt *runtime.Runtime, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: ratelimit.New(rateLimitNode, rateBurstNode, 1),
		Start:   start,
		Version: version,
		Runtime: rt,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version          string             `json:"version"`
	Uptime           string             `json:"uptime"`
	RPCs             uint64             `json:"rpcs"`
	RelayBlockNumber uint32             `json:"relayBlockNumber"`
	Timeslice        coretime.Timeslice `json:"timeslice"`
	NextEvent        uint64             `json:"nextEvent,string"`
	SubmissionFee    balances.Balance   `json:"submissionFee"`
}

// Info - version, uptime and chain position of this node
func (node *Node) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := node.Limiter.Limit(); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.RelayBlockNumber = node.Runtime.RelayBlockNumber()
	reply.Timeslice = node.Runtime.CurrentTimeslice()
	reply.NextEvent = node.Runtime.NextSequence()
	reply.SubmissionFee = node.Runtime.SubmissionFee()
	return nil
}
