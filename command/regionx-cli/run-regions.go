// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/rpc/regions"
	"github.com/regionx/regionxd/uniques"
)

// collection flag, or the one the regions contract wraps
func collectionOf(c *cli.Context, info func() (*regions.InfoReply, error)) (uniques.CollectionId, error) {
	if c.IsSet("collection") {
		return uniques.CollectionId(c.Uint("collection")), nil
	}
	reply, err := info()
	if nil != err {
		return 0, err
	}
	return reply.Collection, nil
}

func runItem(c *cli.Context) error {

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

	collection, err := collectionOf(c, client.GetRegionsInfo)
	if nil != err {
		return err
	}

	reply, err := client.GetItem(collection, id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runHoldings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetHoldings(owner, c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runApproveItem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}
	delegate, err := checkOptionalAccount(c.String("delegate"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetRegionsInfo()
	if nil != err {
		return err
	}
	collection := info.Collection
	if c.IsSet("collection") {
		collection = uniques.CollectionId(c.Uint("collection"))
	}

	// the regions contract must be able to take the item when wrapping
	if nil == delegate {
		delegate = &info.Address
	}

	if c.Bool("cancel") {
		reply, err := client.CancelItemApproval(key, collection, id)
		if nil != err {
			return err
		}
		printJson(m.w, reply)
		return nil
	}

	reply, err := client.ApproveItem(key, collection, id, *delegate)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runTransferItem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}
	to, err := account.FromBase58(c.String("to"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	collection, err := collectionOf(c, client.GetRegionsInfo)
	if nil != err {
		return err
	}

	reply, err := client.TransferItem(key, collection, id, to)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

// wrap the uniques item using the record the node holds for it
func runInit(c *cli.Context) error {

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

	info, err := client.GetRegionsInfo()
	if nil != err {
		return err
	}
	item, err := client.GetItem(info.Collection, id)
	if nil != err {
		return err
	}
	if nil == item.Record {
		return ErrMissingRecord
	}

	region := coretime.Region{
		RegionId: id.RegionId(),
		Record:   *item.Record,
	}
	if m.verbose {
		fmt.Fprintf(m.e, "region: %#v\n", region)
	}

	reply, err := client.InitRegion(key, region)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runRegion(c *cli.Context) error {

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

	reply, err := client.GetRegion(id)
	if nil != err {
		return err
	}
	owner, err := client.GetRegionOwner(id)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		*regions.GetReply
		Holder *account.AccountId `json:"holder"`
	}{
		GetReply: reply,
		Holder:   owner.Owner,
	})
	return nil
}

func runTokens(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(m, c.String("owner"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetTokens(owner, c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runApprove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkOptionalRegionId(c.String("region"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	var operator account.AccountId
	if s := c.String("operator"); "" != s {
		operator, err = account.FromBase58(s)
		if nil != err {
			return err
		}
	} else {
		info, err := client.GetMarketInfo()
		if nil != err {
			return err
		}
		operator = info.Address
	}

	reply, err := client.ApproveRegion(key, operator, id, !c.Bool("revoke"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runTransferRegion(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	id, err := checkRegionId(c.String("region"))
	if nil != err {
		return err
	}
	to, err := account.FromBase58(c.String("to"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.TransferRegion(key, to, id)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

// action for the calls that take only a region id
func regionCall(method string) cli.ActionFunc {
	return func(c *cli.Context) error {

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

		reply, err := client.RegionCall(key, method, id)
		if nil != err {
			return err
		}

		printJson(m.w, reply)
		return nil
	}
}
