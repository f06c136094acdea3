// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/command/regionx-cli/rpccalls"
	"github.com/regionx/regionxd/rpc/listings"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}
	price, err := checkAmount(c.Uint64("price"))
	if nil != err {
		return err
	}
	recipient, err := checkOptionalAccount(c.String("recipient"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.List(&rpccalls.ListData{
		Owner:          key,
		RegionId:       id,
		TimeslicePrice: price,
		SaleRecipient:  recipient,
		Deposit:        balances.Balance(c.Uint64("deposit")),
	})
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runUnlist(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Unlist(key, id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runUpdatePrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}
	price, err := checkAmount(c.Uint64("price"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.UpdatePrice(key, id, price)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runPrice(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	listing, err := client.GetListing(id)
	if nil != err {
		return err
	}
	if nil == listing.Listing {
		return ErrNotListed
	}
	price, err := client.GetPrice(id)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		*listings.ListingReply
		Price balances.Balance `json:"price"`
	}{
		ListingReply: listing,
		Price:        price.Price,
	})
	return nil
}

func runListed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	after, err := checkOptionalRegionId(c.String("after"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetListed(after, c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runPurchase(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}

	data := &rpccalls.PurchaseData{
		Buyer:    key,
		RegionId: id,
		MaxPrice: balances.Balance(c.Uint64("max-price")),
		Payment:  balances.Balance(c.Uint64("payment")),
	}
	if version := c.Int64("version"); version >= 0 {
		v := uint32(version)
		data.MetadataVersion = &v
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Purchase(data)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "paid: %d  max price: %d  version: %d\n", data.Payment, data.MaxPrice, *data.MetadataVersion)
	}

	printJson(m.w, reply)
	return nil
}
