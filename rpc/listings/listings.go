// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listings

import (
	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/market"
	"github.com/regionx/regionxd/rpc/ratelimit"
	"github.com/regionx/regionxd/rpc/signed"
	"github.com/regionx/regionxd/runtime"
)

const (
	rateLimitMarket = 200
	rateBurstMarket = 100
)

// limit for listed count
const maximumListed = 100

// signed method names
const (
	MethodList        = "Market.List"
	MethodPurchase    = "Market.Purchase"
	MethodUnlist      = "Market.Unlist"
	MethodUpdatePrice = "Market.UpdatePrice"
)

// Market - type for RPC calls
type Market struct {
	Log      *logger.L
	Limiter  *ratelimit.Limiter
	Runtime  *runtime.Runtime
	Contract *market.Contract
}

// New - create the market service
func New(log *logger.L, rt *runtime.Runtime, contract *market.Contract) *Market {
	return &Market{
		Log:      log,
		Limiter:  ratelimit.New(rateLimitMarket, rateBurstMarket, maximumListed),
		Runtime:  rt,
		Contract: contract,
	}
}

func (m *Market) query(fn runtime.Function) error {
	return m.Runtime.Query(account.AccountId{}, m.Contract.Address(), fn)
}

// ---

// InfoArguments - none
type InfoArguments struct{}

// InfoReply - market configuration
type InfoReply struct {
	Address           account.AccountId  `json:"address"`
	XcRegionsContract account.AccountId  `json:"xcRegionsContract"`
	ListingDeposit    balances.Balance   `json:"listingDeposit"`
	Timeslice         coretime.Timeslice `json:"timeslice"`
}

// Info - market configuration and current timeslice
func (m *Market) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := m.Limiter.Limit(); nil != err {
		return err
	}

	reply.Address = m.Contract.Address()
	return m.query(func(env *runtime.Env) error {
		regions, err := m.Contract.XcRegionsContract(env)
		if nil != err {
			return err
		}
		deposit, err := m.Contract.ListingDeposit(env)
		if nil != err {
			return err
		}
		reply.XcRegionsContract = regions
		reply.ListingDeposit = deposit
		reply.Timeslice = env.CurrentTimeslice()
		return nil
	})
}

// ---

// RegionArguments - a single region
type RegionArguments struct {
	RegionId coretime.RawRegionId `json:"regionId"`
}

// PriceReply - current price of a listed region
type PriceReply struct {
	Price balances.Balance `json:"price"`
}

// Price - what a purchase would cost now
func (m *Market) Price(arguments *RegionArguments, reply *PriceReply) error {
	if err := m.Limiter.Limit(); nil != err {
		return err
	}

	return m.query(func(env *runtime.Env) error {
		price, err := m.Contract.RegionPrice(env, arguments.RegionId)
		if nil != err {
			return err
		}
		reply.Price = price
		return nil
	})
}

// ListingReply - listing if present
type ListingReply struct {
	Listing *market.Listing `json:"listing"`
}

// Listing - the listing of a region
func (m *Market) Listing(arguments *RegionArguments, reply *ListingReply) error {
	if err := m.Limiter.Limit(); nil != err {
		return err
	}

	return m.query(func(env *runtime.Env) error {
		listing, err := m.Contract.ListedRegion(env, arguments.RegionId)
		if nil != err {
			return err
		}
		reply.Listing = listing
		return nil
	})
}

// ---

// ListedArguments - window of the listing index
type ListedArguments struct {
	After *coretime.RawRegionId `json:"after,omitempty"`
	Count int                   `json:"count"`
}

// ListedReply - listings in region id order
type ListedReply struct {
	Listings []market.ListedEntry `json:"listings"`
}

// Listed - enumerate active listings
func (m *Market) Listed(arguments *ListedArguments, reply *ListedReply) error {
	if err := m.Limiter.LimitN(arguments.Count); nil != err {
		return err
	}

	entries, err := m.Contract.ListedRegions(m.Runtime.Store(), arguments.After, arguments.Count)
	if nil != err {
		return err
	}
	reply.Listings = entries
	return nil
}

// ---

// ListParams - signed part of a listing
type ListParams struct {
	RegionId       coretime.RawRegionId `json:"regionId"`
	TimeslicePrice balances.Balance     `json:"timeslicePrice"`
	SaleRecipient  *account.AccountId   `json:"saleRecipient,omitempty"`
	Deposit        balances.Balance     `json:"deposit"`
}

// ListArguments - a signed listing
type ListArguments struct {
	Header signed.Header `json:"header"`
	Params ListParams    `json:"params"`
}

// List - put a region up for sale, the deposit is attached as value
func (m *Market) List(arguments *ListArguments, reply *signed.Reply) error {
	if err := m.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return signed.Submit(m.Runtime, arguments.Header, MethodList, p, m.Contract.Address(), p.Deposit, func(env *runtime.Env) error {
		return m.Contract.ListRegion(env, p.RegionId, p.TimeslicePrice, p.SaleRecipient)
	}, reply)
}

// ---

// PurchaseParams - signed part of a purchase
type PurchaseParams struct {
	RegionId        coretime.RawRegionId `json:"regionId"`
	MetadataVersion uint32               `json:"metadataVersion"`
	MaxPrice        balances.Balance     `json:"maxPrice"`
	Payment         balances.Balance     `json:"payment"`
}

// PurchaseArguments - a signed purchase
type PurchaseArguments struct {
	Header signed.Header  `json:"header"`
	Params PurchaseParams `json:"params"`
}

// Purchase - buy a listed region, the payment is attached as value
func (m *Market) Purchase(arguments *PurchaseArguments, reply *signed.Reply) error {
	if err := m.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	m.Log.Debugf("purchase: %s  buyer: %s  max price: %d", p.RegionId, arguments.Header.Caller, p.MaxPrice)
	return signed.Submit(m.Runtime, arguments.Header, MethodPurchase, p, m.Contract.Address(), p.Payment, func(env *runtime.Env) error {
		return m.Contract.PurchaseRegion(env, p.RegionId, p.MetadataVersion, p.MaxPrice)
	}, reply)
}

// ---

// UnlistParams - signed part of an unlisting
type UnlistParams struct {
	RegionId coretime.RawRegionId `json:"regionId"`
}

// UnlistArguments - a signed unlisting
type UnlistArguments struct {
	Header signed.Header `json:"header"`
	Params UnlistParams  `json:"params"`
}

// Unlist - withdraw a listing
func (m *Market) Unlist(arguments *UnlistArguments, reply *signed.Reply) error {
	if err := m.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return signed.Submit(m.Runtime, arguments.Header, MethodUnlist, p, m.Contract.Address(), 0, func(env *runtime.Env) error {
		return m.Contract.UnlistRegion(env, p.RegionId)
	}, reply)
}

// ---

// UpdatePriceParams - signed part of a price change
type UpdatePriceParams struct {
	RegionId       coretime.RawRegionId `json:"regionId"`
	TimeslicePrice balances.Balance     `json:"timeslicePrice"`
}

// UpdatePriceArguments - a signed price change
type UpdatePriceArguments struct {
	Header signed.Header     `json:"header"`
	Params UpdatePriceParams `json:"params"`
}

// UpdatePrice - change the price per timeslice of a listing
func (m *Market) UpdatePrice(arguments *UpdatePriceArguments, reply *signed.Reply) error {
	if err := m.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return signed.Submit(m.Runtime, arguments.Header, MethodUpdatePrice, p, m.Contract.Address(), 0, func(env *runtime.Env) error {
		return m.Contract.UpdateRegionPrice(env, p.RegionId, p.TimeslicePrice)
	}, reply)
}
