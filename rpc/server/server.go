// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/market"
	"github.com/regionx/regionxd/rpc/accounts"
	"github.com/regionx/regionxd/rpc/events"
	"github.com/regionx/regionxd/rpc/items"
	"github.com/regionx/regionxd/rpc/listings"
	"github.com/regionx/regionxd/rpc/node"
	"github.com/regionx/regionxd/rpc/regions"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/uniques"
	"github.com/regionx/regionxd/xcregions"
)

// Dependencies - everything the services act on
type Dependencies struct {
	Runtime *runtime.Runtime
	Pallet  *uniques.Pallet
	Regions *xcregions.Contract
	Market  *market.Contract
}

// Create - an RPC server with all services registered
func Create(log *logger.L, deps Dependencies, version string, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(accounts.New(log, deps.Runtime))
	_ = server.Register(items.New(log, deps.Runtime, deps.Pallet))
	_ = server.Register(regions.New(log, deps.Runtime, deps.Regions))
	_ = server.Register(listings.New(log, deps.Runtime, deps.Market))
	_ = server.Register(events.New(log, deps.Runtime))
	_ = server.Register(node.New(log, deps.Runtime, start, version, rpcCount))

	return server
}
