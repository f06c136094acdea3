// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - secondary sale of wrapped regions
//
// A holder of a wrapped region lists it at a price per remaining
// timeslice.  Listing moves the token into the custody of the market
// and locks a fixed deposit; the market must have been approved for
// the token beforehand.
//
// The asking price falls as the region is used up:
//
//   price = timeslicePrice * (end - max(now, begin))
//
// A purchase settles everything in one call: the token goes to the
// buyer, the price to the sale recipient, the deposit to the treasury
// and any excess payment back to the buyer.  Unlisting returns the
// token and the deposit to the seller.
package market
