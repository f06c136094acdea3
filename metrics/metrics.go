// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus view of the node
//
// counters are fed from committed events on the message bus, gauges
// read the runtime when scraped
package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/market"
	"github.com/regionx/regionxd/messagebus"
	"github.com/regionx/regionxd/runtime"
)

const (
	namespace = "regionxd"
	queueSize = 1000
)

// Configuration - metrics section of the configuration file
type Configuration struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

// Metrics - collectors of one node
type Metrics struct {
	log      *logger.L
	registry *prometheus.Registry
	bus      *messagebus.BroadcastQueue

	events    *prometheus.CounterVec
	listings  prometheus.Counter
	purchases prometheus.Counter
	volume    prometheus.Counter
}

// New - collectors for a runtime, rpcCount may be nil
func New(rt *runtime.Runtime, rpcCount *counter.Counter) *Metrics {
	m := &Metrics{
		log:      logger.New("metrics"),
		registry: prometheus.NewRegistry(),
		bus:      rt.Bus(),
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "runtime",
				Name:      "events_total",
				Help:      "Committed events by name.",
			},
			[]string{"name"},
		),
		listings: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "market",
				Name:      "listings_total",
				Help:      "Regions listed for sale.",
			},
		),
		purchases: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "market",
				Name:      "purchases_total",
				Help:      "Settled region purchases.",
			},
		),
		volume: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "market",
				Name:      "volume_total",
				Help:      "Sum of settled purchase prices.",
			},
		),
	}

	relayBlock := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "block_number",
			Help:      "Current relay chain block number.",
		},
		func() float64 { return float64(rt.RelayBlockNumber()) },
	)
	timeslice := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "relay",
			Name:      "timeslice",
			Help:      "Current timeslice.",
		},
		func() float64 { return float64(rt.CurrentTimeslice()) },
	)
	sequence := prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "runtime",
			Name:      "next_event_sequence",
			Help:      "Sequence number of the next event.",
		},
		func() float64 { return float64(rt.NextSequence()) },
	)

	m.registry.MustRegister(
		m.events,
		m.listings,
		m.purchases,
		m.volume,
		relayBlock,
		timeslice,
		sequence,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)

	if nil != m.bus {
		bus := m.bus
		m.registry.MustRegister(prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "bus",
				Name:      "dropped_total",
				Help:      "Events dropped because a listener was full.",
			},
			func() float64 { return float64(bus.Dropped()) },
		))
	}

	if nil != rpcCount {
		m.registry.MustRegister(prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "rpc",
				Name:      "connections",
				Help:      "Open JSON RPC connections.",
			},
			func() float64 { return float64(rpcCount.Uint64()) },
		))
	}

	return m
}

// Registry - the collectors, for tests and embedding
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler - HTTP handler exposing the collectors
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observe - account for one committed event
func (m *Metrics) Observe(record runtime.EventRecord) {
	m.events.WithLabelValues(record.Name).Inc()

	switch record.Name {
	case market.RegionListedEvent{}.EventName():
		m.listings.Inc()

	case market.RegionPurchasedEvent{}.EventName():
		var purchased market.RegionPurchasedEvent
		err := json.Unmarshal(record.Data, &purchased)
		if nil != err {
			m.log.Warnf("purchase event: %d  decode error: %s", record.Sequence, err)
			return
		}
		m.purchases.Inc()
		m.volume.Add(float64(purchased.Price))
	}
}

// Run - background process consuming the message bus
func (m *Metrics) Run(args interface{}, shutdown <-chan struct{}) {
	if nil == m.bus {
		<-shutdown
		return
	}

	queue := m.bus.Chan(queueSize)
	defer m.bus.Release(queue)

	m.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-queue:
			record, ok := item.Parameters.(runtime.EventRecord)
			if !ok {
				m.log.Warnf("unexpected message: %s", item.Command)
				continue loop
			}
			m.Observe(record)
		}
	}
	m.log.Info("stopped")
}
