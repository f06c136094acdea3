// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/runtime"
)

// enter the region token contract with the market as caller
func (c *Contract) enterRegions(env *runtime.Env) (Config, *runtime.Env, error) {
	config, err := c.config(env)
	if nil != err {
		return config, nil, err
	}
	sub, err := env.CallContract(config.XcRegionsContract, 0)
	return config, sub, err
}

// the listing of a token that must be listed
func (c *Contract) activeListing(env *runtime.Env, raw coretime.RawRegionId) (Listing, error) {
	l, err := c.listing(env, raw)
	if nil != err {
		return Listing{}, err
	}
	if nil == l {
		return Listing{}, fault.NotListed
	}
	return *l, nil
}

// true while the market still holds the token of a listing
func (c *Contract) escrowed(sub *runtime.Env, raw coretime.RawRegionId) bool {
	owner, ok := c.regions.OwnerOf(sub, raw)
	return ok && owner == c.address
}

// drop a listing and refund its deposit to the seller
func (c *Contract) closeListing(env *runtime.Env, raw coretime.RawRegionId, l Listing) error {
	err := env.Transfer(l.Seller, l.Deposit)
	if nil != err {
		return err
	}
	env.Transaction().Delete(env.Pool().Listings, c.listingKey(raw))
	env.EmitEvent(RegionUnlistedEvent{RegionId: raw, Seller: l.Seller})
	return nil
}

// RegionPrice - current asking price of a listed region
func (c *Contract) RegionPrice(env *runtime.Env, raw coretime.RawRegionId) (balances.Balance, error) {
	_, sub, err := c.enterRegions(env)
	if nil != err {
		return 0, err
	}
	l, err := c.activeListing(env, raw)
	if nil != err {
		return 0, err
	}
	if !c.escrowed(sub, raw) {
		return 0, fault.StaleListing
	}
	metadata, err := c.regions.GetRegionData(sub, raw)
	if nil != err {
		return 0, err
	}
	return l.Price(metadata.Region, env.CurrentTimeslice()), nil
}

// ListRegion - offer a region for sale
//
// payable: the transferred value must be exactly the listing deposit;
// the market must be approved for the token, which it takes into
// custody; a nil sale recipient means the caller
//
// a previous listing whose token has left the market is closed first
func (c *Contract) ListRegion(env *runtime.Env, raw coretime.RawRegionId, timeslicePrice balances.Balance, saleRecipient *account.AccountId) error {
	caller := env.Caller()

	config, sub, err := c.enterRegions(env)
	if nil != err {
		return err
	}

	metadata, err := c.regions.GetRegionData(sub, raw)
	if nil != err {
		return err
	}

	l, err := c.listing(env, raw)
	if nil != err {
		return err
	}
	if nil != l {
		if c.escrowed(sub, raw) {
			return fault.AlreadyListed
		}
		c.log.Warnf("stale listing closed: %s  seller: %s", raw, l.Seller)
		err = c.closeListing(env, raw, *l)
		if nil != err {
			return err
		}
	}

	owner, ok := c.regions.OwnerOf(sub, raw)
	if !ok || owner != caller {
		return fault.NotRegionOwner
	}

	deposit := env.TransferredValue()
	if deposit != config.ListingDeposit {
		return fault.IncorrectDeposit
	}

	now := env.CurrentTimeslice()
	if 0 == metadata.Region.Remaining(now) {
		return fault.RegionExpired
	}

	err = c.regions.Transfer(sub, env.AccountId(), raw, nil)
	if nil != err {
		return err
	}

	recipient := caller
	if nil != saleRecipient {
		recipient = *saleRecipient
	}

	listing := Listing{
		Seller:          caller,
		TimeslicePrice:  timeslicePrice,
		SaleRecipient:   recipient,
		MetadataVersion: metadata.Version,
		ListedAt:        now,
		Deposit:         deposit,
	}
	env.Transaction().Put(env.Pool().Listings, c.listingKey(raw), listing.Pack())

	c.log.Infof("listed: %s  seller: %s  timeslice price: %d  version: %d", raw, caller, timeslicePrice, metadata.Version)
	env.EmitEvent(RegionListedEvent{
		RegionId:        raw,
		TimeslicePrice:  timeslicePrice,
		Seller:          caller,
		SaleRecipient:   recipient,
		MetadataVersion: metadata.Version,
	})
	return nil
}

// PurchaseRegion - buy a listed region
//
// payable: the transferred value is the payment, anything above the
// price is refunded; the price is recomputed now and must not exceed
// maxPrice
func (c *Contract) PurchaseRegion(env *runtime.Env, raw coretime.RawRegionId, metadataVersion uint32, maxPrice balances.Balance) error {
	buyer := env.Caller()
	payment := env.TransferredValue()

	config, sub, err := c.enterRegions(env)
	if nil != err {
		return err
	}

	l, err := c.activeListing(env, raw)
	if nil != err {
		return err
	}
	if !c.escrowed(sub, raw) {
		return fault.StaleListing
	}

	metadata, err := c.regions.GetRegionData(sub, raw)
	if nil != err {
		return err
	}
	if metadata.Version != l.MetadataVersion || metadataVersion != l.MetadataVersion {
		return fault.MetadataNotMatching
	}

	price := l.Price(metadata.Region, env.CurrentTimeslice())
	if 0 == price {
		return fault.RegionExpired
	}
	if price > maxPrice {
		return fault.PriceChanged
	}
	if payment < price {
		return fault.InsufficientPayment
	}

	err = c.regions.Transfer(sub, buyer, raw, nil)
	if nil != err {
		return err
	}

	err = env.Transfer(l.SaleRecipient, price)
	if nil != err {
		return err
	}
	if !config.Treasury.IsZero() {
		err = env.Transfer(config.Treasury, l.Deposit)
		if nil != err {
			return err
		}
	}
	err = env.Transfer(buyer, payment-price)
	if nil != err {
		return err
	}

	env.Transaction().Delete(env.Pool().Listings, c.listingKey(raw))

	c.log.Infof("purchased: %s  buyer: %s  price: %d  refund: %d", raw, buyer, price, payment-price)
	env.EmitEvent(RegionPurchasedEvent{
		RegionId:      raw,
		Seller:        l.Seller,
		Buyer:         buyer,
		SaleRecipient: l.SaleRecipient,
		Price:         price,
	})
	return nil
}

// UnlistRegion - withdraw a listing, seller only
//
// the deposit goes back to the seller, and so does the token while the
// market still holds it
func (c *Contract) UnlistRegion(env *runtime.Env, raw coretime.RawRegionId) error {
	_, sub, err := c.enterRegions(env)
	if nil != err {
		return err
	}

	l, err := c.activeListing(env, raw)
	if nil != err {
		return err
	}
	if env.Caller() != l.Seller {
		return fault.NotSeller
	}

	held := c.escrowed(sub, raw)
	if held {
		err = c.regions.Transfer(sub, l.Seller, raw, nil)
		if nil != err {
			return err
		}
	}

	c.log.Infof("unlisted: %s  seller: %s  token returned: %t", raw, l.Seller, held)
	return c.closeListing(env, raw, l)
}

// UpdateRegionPrice - change the timeslice price, seller only
func (c *Contract) UpdateRegionPrice(env *runtime.Env, raw coretime.RawRegionId, timeslicePrice balances.Balance) error {
	if _, err := c.config(env); nil != err {
		return err
	}

	l, err := c.activeListing(env, raw)
	if nil != err {
		return err
	}
	if env.Caller() != l.Seller {
		return fault.NotSeller
	}

	l.TimeslicePrice = timeslicePrice
	env.Transaction().Put(env.Pool().Listings, c.listingKey(raw), l.Pack())

	c.log.Debugf("price updated: %s  timeslice price: %d", raw, timeslicePrice)
	env.EmitEvent(RegionPriceUpdatedEvent{RegionId: raw, TimeslicePrice: timeslicePrice})
	return nil
}
