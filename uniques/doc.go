// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package uniques - ledger native NFT collections and the bridge to them
//
// Regions arrive on this chain as items of a uniques collection.
// Contracts never touch the collection storage directly; they go
// through the Extension interface, which acts with the calling
// contract as origin and returns fault.BridgeError values only.
package uniques
