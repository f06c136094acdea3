// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/rpc/listings"
	"github.com/regionx/regionxd/rpc/signed"
)

// ListData - the parameters for listing a region
type ListData struct {
	Owner          *account.PrivateKey
	RegionId       coretime.RawRegionId
	TimeslicePrice balances.Balance
	SaleRecipient  *account.AccountId
	Deposit        balances.Balance
}

// PurchaseData - the parameters for buying a region
//
// a nil MetadataVersion uses the version currently stored
type PurchaseData struct {
	Buyer           *account.PrivateKey
	RegionId        coretime.RawRegionId
	MetadataVersion *uint32
	MaxPrice        balances.Balance
	Payment         balances.Balance
}

// GetMarketInfo - the market contract
func (client *Client) GetMarketInfo() (*listings.InfoReply, error) {
	reply := &listings.InfoReply{}
	err := client.call("Market.Info", listings.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetPrice - current price of a listed region
func (client *Client) GetPrice(id coretime.RawRegionId) (*listings.PriceReply, error) {
	arguments := listings.RegionArguments{
		RegionId: id,
	}
	reply := &listings.PriceReply{}
	err := client.call("Market.Price", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetListing - listing of a region, nil when not listed
func (client *Client) GetListing(id coretime.RawRegionId) (*listings.ListingReply, error) {
	arguments := listings.RegionArguments{
		RegionId: id,
	}
	reply := &listings.ListingReply{}
	err := client.call("Market.Listing", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetListed - a page of listings in region id order
func (client *Client) GetListed(after *coretime.RawRegionId, count int) (*listings.ListedReply, error) {
	arguments := listings.ListedArguments{
		After: after,
		Count: count,
	}
	reply := &listings.ListedReply{}
	err := client.call("Market.Listed", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// List - put a wrapped region up for sale
func (client *Client) List(data *ListData) (*signed.Reply, error) {
	if 0 == data.Deposit {
		info, err := client.GetMarketInfo()
		if nil != err {
			return nil, err
		}
		data.Deposit = info.ListingDeposit
	}

	params := listings.ListParams{
		RegionId:       data.RegionId,
		TimeslicePrice: data.TimeslicePrice,
		SaleRecipient:  data.SaleRecipient,
		Deposit:        data.Deposit,
	}
	header, err := client.sign(data.Owner, listings.MethodList, params)
	if nil != err {
		return nil, err
	}

	arguments := listings.ListArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(listings.MethodList, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Purchase - buy a listed region
//
// zero MaxPrice and Payment both default to the current price
func (client *Client) Purchase(data *PurchaseData) (*signed.Reply, error) {
	if nil == data.MetadataVersion {
		region, err := client.GetRegion(data.RegionId)
		if nil != err {
			return nil, err
		}
		version := region.Version
		data.MetadataVersion = &version
	}

	if 0 == data.MaxPrice || 0 == data.Payment {
		price, err := client.GetPrice(data.RegionId)
		if nil != err {
			return nil, err
		}
		if 0 == data.MaxPrice {
			data.MaxPrice = price.Price
		}
		if 0 == data.Payment {
			data.Payment = data.MaxPrice
		}
	}

	params := listings.PurchaseParams{
		RegionId:        data.RegionId,
		MetadataVersion: *data.MetadataVersion,
		MaxPrice:        data.MaxPrice,
		Payment:         data.Payment,
	}
	header, err := client.sign(data.Buyer, listings.MethodPurchase, params)
	if nil != err {
		return nil, err
	}

	arguments := listings.PurchaseArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(listings.MethodPurchase, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Unlist - withdraw a listing
func (client *Client) Unlist(key *account.PrivateKey, id coretime.RawRegionId) (*signed.Reply, error) {
	params := listings.UnlistParams{
		RegionId: id,
	}
	header, err := client.sign(key, listings.MethodUnlist, params)
	if nil != err {
		return nil, err
	}

	arguments := listings.UnlistArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(listings.MethodUnlist, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// UpdatePrice - change the per timeslice price of a listing
func (client *Client) UpdatePrice(key *account.PrivateKey, id coretime.RawRegionId, timeslicePrice balances.Balance) (*signed.Reply, error) {
	params := listings.UpdatePriceParams{
		RegionId:       id,
		TimeslicePrice: timeslicePrice,
	}
	header, err := client.sign(key, listings.MethodUpdatePrice, params)
	if nil != err {
		return nil, err
	}

	arguments := listings.UpdatePriceArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(listings.MethodUpdatePrice, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
