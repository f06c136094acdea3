// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client access to the node
//
// JSON RPC is served on the client_rpc listen addresses, optionally
// over TLS, and over HTTP(S) on /regionxd/rpc when https_rpc is
// configured.  Registered services:
//
//   Balances  Get, Transfer
//   Uniques   Item, Holdings, ApproveTransfer, CancelApproval, Transfer
//   Regions   Info, Get, OwnerOf, Balance, Allowance, Tokens,
//             Init, Update, Melt, Remove, Approve, Transfer
//   Market    Info, Price, Listing, Listed,
//             List, Purchase, Unlist, UpdatePrice
//   Events    List
//   Node      Info
//
// mutating calls carry a signed.Header, see package signed
package rpc
