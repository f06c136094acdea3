// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coretime

// TimeslicePeriod - relay chain blocks per timeslice
const TimeslicePeriod = 80

// Timeslice - the discrete scheduling unit
type Timeslice uint32

// CoreIndex - index of a core on the relay chain
type CoreIndex uint16

// TimesliceAt - timeslice containing a relay chain block
func TimesliceAt(relayBlockNumber uint32) Timeslice {
	return Timeslice(relayBlockNumber / TimeslicePeriod)
}

// SaturatingSub - a - b clamped to zero
func (a Timeslice) SaturatingSub(b Timeslice) Timeslice {
	if b >= a {
		return 0
	}
	return a - b
}
