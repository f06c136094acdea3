// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
)

// RegionListedEvent - a region was put on sale
type RegionListedEvent struct {
	RegionId        coretime.RawRegionId `json:"regionId"`
	TimeslicePrice  balances.Balance     `json:"timeslicePrice"`
	Seller          account.AccountId    `json:"seller"`
	SaleRecipient   account.AccountId    `json:"saleRecipient"`
	MetadataVersion uint32               `json:"metadataVersion"`
}

// RegionPurchasedEvent - a sale settled
type RegionPurchasedEvent struct {
	RegionId      coretime.RawRegionId `json:"regionId"`
	Seller        account.AccountId    `json:"seller"`
	Buyer         account.AccountId    `json:"buyer"`
	SaleRecipient account.AccountId    `json:"saleRecipient"`
	Price         balances.Balance     `json:"price"`
}

// RegionUnlistedEvent - the seller withdrew a listing
type RegionUnlistedEvent struct {
	RegionId coretime.RawRegionId `json:"regionId"`
	Seller   account.AccountId    `json:"seller"`
}

// RegionPriceUpdatedEvent - the seller changed the price
type RegionPriceUpdatedEvent struct {
	RegionId       coretime.RawRegionId `json:"regionId"`
	TimeslicePrice balances.Balance     `json:"timeslicePrice"`
}

func (RegionListedEvent) EventName() string       { return "RegionListed" }
func (RegionPurchasedEvent) EventName() string    { return "RegionPurchased" }
func (RegionUnlistedEvent) EventName() string     { return "RegionUnlisted" }
func (RegionPriceUpdatedEvent) EventName() string { return "RegionPriceUpdated" }
