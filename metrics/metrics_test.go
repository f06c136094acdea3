// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/background"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/fixtures"
	"github.com/regionx/regionxd/market"
	"github.com/regionx/regionxd/messagebus"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func setupRuntime(t *testing.T) (*runtime.Runtime, *messagebus.BroadcastQueue) {
	store, err := storage.OpenMemory()
	require.NoError(t, err, "open memory store")
	bus := messagebus.NewBroadcast()
	return runtime.New(store, bus, runtime.Configuration{}), bus
}

func purchaseRecord(t *testing.T, sequence uint64, price uint64) runtime.EventRecord {
	data, err := json.Marshal(market.RegionPurchasedEvent{
		Seller: fixtures.Alice,
		Buyer:  fixtures.Bob,
		Price:  balances.Balance(price),
	})
	require.NoError(t, err, "marshal")
	return runtime.EventRecord{Sequence: sequence, Name: "RegionPurchased", Data: data}
}

func TestObserve(t *testing.T) {
	rt, _ := setupRuntime(t)
	defer rt.Store().Close()

	m := New(rt, nil)

	m.Observe(runtime.EventRecord{Sequence: 0, Name: "RegionListed", Data: json.RawMessage("{}")})
	m.Observe(purchaseRecord(t, 1, 1500))
	m.Observe(runtime.EventRecord{Sequence: 2, Name: "RegionPurchased", Data: json.RawMessage("not json")})

	assert.Equal(t, float64(1), testutil.ToFloat64(m.listings), "wrong listings")
	assert.Equal(t, float64(1), testutil.ToFloat64(m.purchases), "wrong purchases")
	assert.Equal(t, float64(1500), testutil.ToFloat64(m.volume), "wrong volume")
	assert.Equal(t, float64(2), testutil.ToFloat64(m.events.WithLabelValues("RegionPurchased")), "wrong event count")
}

func TestRunConsumesBus(t *testing.T) {
	rt, bus := setupRuntime(t)
	defer rt.Store().Close()

	m := New(rt, nil)
	processes := background.Start(background.Processes{m}, nil)
	defer processes.Stop()

	require.Eventually(t, func() bool { return 1 == bus.Listeners() }, time.Second, 10*time.Millisecond, "listener not registered")

	record := runtime.EventRecord{Sequence: 0, Name: "RegionListed", Data: json.RawMessage("{}")}
	bus.Send(record.Name, record)
	bus.Send("junk", "not a record")

	assert.Eventually(t, func() bool {
		return 1 == testutil.ToFloat64(m.listings)
	}, time.Second, 10*time.Millisecond, "listing not counted")

	processes.Stop()
	assert.Equal(t, 0, bus.Listeners(), "listener not released")
}

func TestServer(t *testing.T) {
	rt, _ := setupRuntime(t)
	defer rt.Store().Close()

	require.NoError(t, rt.SetRelayBlockNumber(1234), "relay block")

	rpcCount := counter.Counter(2)
	m := New(rt, &rpcCount)

	s, err := m.Listen(&Configuration{})
	assert.NoError(t, err, "disabled listen")
	assert.Nil(t, s, "server without address")

	s, err = m.Listen(&Configuration{Listen: "127.0.0.1:0"})
	require.NoError(t, err, "listen")
	processes := background.Start(background.Processes{s}, nil)
	defer processes.Stop()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + s.Addr().String() + "/metrics")
		if nil != err {
			return false
		}
		defer resp.Body.Close()
		b, err := ioutil.ReadAll(resp.Body)
		if nil != err || http.StatusOK != resp.StatusCode {
			return false
		}
		body = string(b)
		return true
	}, 2*time.Second, 20*time.Millisecond, "scrape")

	assert.True(t, strings.Contains(body, "regionxd_relay_block_number 1234"), "missing relay block")
	assert.True(t, strings.Contains(body, "regionxd_rpc_connections 2"), "missing rpc connections")
	assert.True(t, strings.Contains(body, "regionxd_relay_timeslice 15"), "missing timeslice")
}
