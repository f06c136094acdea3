// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/rpc/certificate"
	"github.com/regionx/regionxd/rpc/handler"
	"github.com/regionx/regionxd/rpc/listeners"
	"github.com/regionx/regionxd/rpc/server"
)

const (
	tlsName      = "client_rpc"
	httpsTLSName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of active JSON RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, deps server.Dependencies) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, _, err := certificate.Load(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, deps, version, &connectionCountRPC),
		tlsConfig,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	httpsTLS, _, err := certificate.Load(log, httpsTLSName, httpsConfiguration.Certificate, httpsConfiguration.PrivateKey)
	if nil != err {
		stopAll()
		return err
	}

	rt := deps.Runtime
	details := func() interface{} {
		return struct {
			RelayBlockNumber uint32 `json:"relayBlockNumber"`
			NextEvent        uint64 `json:"nextEvent"`
			RPCs             uint64 `json:"rpcs"`
		}{
			RelayBlockNumber: rt.RelayBlockNumber(),
			NextEvent:        rt.NextSequence(),
			RPCs:             connectionCountRPC.Uint64(),
		}
	}
	hdlr := handler.New(
		log,
		server.Create(log, deps, version, &connectionCountRPC),
		time.Now(),
		version,
		httpsConfiguration.MaximumConnections,
		details,
	)
	httpsListener, err := listeners.NewHTTPS(httpsConfiguration, log, httpsTLS, hdlr)
	if nil != err {
		stopAll()
		return err
	}
	if nil != httpsListener {
		err = httpsListener.Serve()
		if nil != err {
			stopAll()
			return err
		}
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stopAll()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// must hold lock
func stopAll() {
	for _, l := range globalData.listeners {
		l.Stop()
	}
	globalData.listeners = nil
}
