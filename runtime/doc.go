// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package runtime - host for the region contracts
//
// Every state changing call runs to completion inside one storage
// transaction before the next call starts.  A call either commits
// all of its effects (balance moves, contract state, events) or
// none of them.  Contract code sees the ledger only through an Env.
//
// Cross-contract calls are synchronous sub-frames of the same call:
// they share the transaction and the event list of the outer call.
package runtime
