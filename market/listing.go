// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
)

// Listing - a region offered for sale
type Listing struct {
	Seller          account.AccountId  `json:"seller"`
	TimeslicePrice  balances.Balance   `json:"timeslicePrice"`
	SaleRecipient   account.AccountId  `json:"saleRecipient"`
	MetadataVersion uint32             `json:"metadataVersion"`
	ListedAt        coretime.Timeslice `json:"listedAt"`
	Deposit         balances.Balance   `json:"deposit"`
}

// PackedListing - listing as stored in the database
type PackedListing []byte

const (
	uint32ByteSize = 4
	uint64ByteSize = 8
)

// structure of the packed listing
const (
	sellerStart     = 0
	sellerFinish    = sellerStart + account.AccountIdLength
	priceStart      = sellerFinish
	priceFinish     = priceStart + uint64ByteSize
	recipientStart  = priceFinish
	recipientFinish = recipientStart + account.AccountIdLength
	versionStart    = recipientFinish
	versionFinish   = versionStart + uint32ByteSize
	listedAtStart   = versionFinish
	listedAtFinish  = listedAtStart + uint32ByteSize
	depositStart    = listedAtFinish
	depositFinish   = depositStart + uint64ByteSize
)

// Pack - listing to byte slice
func (l Listing) Pack() PackedListing {
	packed := make(PackedListing, depositFinish)
	copy(packed[sellerStart:sellerFinish], l.Seller[:])
	binary.BigEndian.PutUint64(packed[priceStart:priceFinish], uint64(l.TimeslicePrice))
	copy(packed[recipientStart:recipientFinish], l.SaleRecipient[:])
	binary.BigEndian.PutUint32(packed[versionStart:versionFinish], l.MetadataVersion)
	binary.BigEndian.PutUint32(packed[listedAtStart:listedAtFinish], uint32(l.ListedAt))
	binary.BigEndian.PutUint64(packed[depositStart:depositFinish], uint64(l.Deposit))
	return packed
}

// Unpack - byte slice to listing
func (packed PackedListing) Unpack() (Listing, error) {
	l := Listing{}
	if depositFinish != len(packed) {
		return l, fault.NotListingPack
	}

	copy(l.Seller[:], packed[sellerStart:sellerFinish])
	l.TimeslicePrice = balances.Balance(binary.BigEndian.Uint64(packed[priceStart:priceFinish]))
	copy(l.SaleRecipient[:], packed[recipientStart:recipientFinish])
	l.MetadataVersion = binary.BigEndian.Uint32(packed[versionStart:versionFinish])
	l.ListedAt = coretime.Timeslice(binary.BigEndian.Uint32(packed[listedAtStart:listedAtFinish]))
	l.Deposit = balances.Balance(binary.BigEndian.Uint64(packed[depositStart:depositFinish]))
	return l, nil
}

// Price - asking price of a region at a timeslice
//
// zero once the region has ended, saturates instead of overflowing
func (l Listing) Price(region coretime.Region, now coretime.Timeslice) balances.Balance {
	return l.TimeslicePrice.SaturatingMul(uint64(region.Remaining(now)))
}
