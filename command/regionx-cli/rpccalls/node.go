// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regionx/regionxd/rpc/events"
	"github.com/regionx/regionxd/rpc/node"
)

// GetNodeInfo - status of the connected regionxd
func (client *Client) GetNodeInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := client.call("Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetEvents - a page of the event log
func (client *Client) GetEvents(start uint64, count int) (*events.ListReply, error) {
	arguments := events.ListArguments{
		Start: start,
		Count: count,
	}
	reply := &events.ListReply{}
	err := client.call("Events.List", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
