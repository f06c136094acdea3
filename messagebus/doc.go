// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - broadcast of committed contract events
//
// The runtime sends every event after its transaction commits;
// listeners (metrics, RPC subscribers, tests) each receive their own
// copy.  A slow listener never blocks the runtime: once its channel
// is full further messages for it are dropped and counted.
package messagebus
