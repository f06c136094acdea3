// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/regionx/regionxd/fault"
)

// Limiter - request rate of one RPC service
type Limiter struct {
	limiter      *rate.Limiter
	maximumCount int
}

// New - limiter allowing perSecond requests with a burst, list
// requests may ask for at most maximumCount items
func New(perSecond float64, burst int, maximumCount int) *Limiter {
	return &Limiter{
		limiter:      rate.NewLimiter(rate.Limit(perSecond), burst),
		maximumCount: maximumCount,
	}
}

// Limit - limiting for a single request
func (l *Limiter) Limit() error {
	r := l.limiter.Reserve()
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// LimitN - limiting for a request of count items
//
// an invalid count is limited as a single request and rejected
func (l *Limiter) LimitN(count int) error {
	if count <= 0 || count > l.maximumCount {
		if err := l.Limit(); nil != err {
			return err
		}
		return fault.InvalidCount
	}

	r := l.limiter.ReserveN(time.Now(), count)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
