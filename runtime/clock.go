// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package runtime

import (
	"time"
)

// RelayClock - background process advancing the relay block number
type RelayClock struct {
	rt       *Runtime
	interval time.Duration
}

// NewRelayClock - one relay block per interval
func NewRelayClock(rt *Runtime, interval time.Duration) *RelayClock {
	return &RelayClock{
		rt:       rt,
		interval: interval,
	}
}

// Run - background process loop
func (clock *RelayClock) Run(args interface{}, shutdown <-chan struct{}) {
	log := clock.rt.log
	log.Infof("relay clock starting: interval: %s", clock.interval)

	ticker := time.NewTicker(clock.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n := clock.rt.RelayBlockNumber() + 1
			err := clock.rt.SetRelayBlockNumber(n)
			if nil != err {
				log.Errorf("relay clock: set block: %d  error: %s", n, err)
				continue loop
			}
			log.Debugf("relay block: %d  timeslice: %d", n, clock.rt.CurrentTimeslice())
		}
	}
	log.Info("relay clock stopped")
}
