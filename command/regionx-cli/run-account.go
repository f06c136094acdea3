// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/command/regionx-cli/rpccalls"
	"github.com/regionx/regionxd/rpc/listings"
	"github.com/regionx/regionxd/rpc/node"
	"github.com/regionx/regionxd/rpc/regions"
)

type generateResult struct {
	Account account.AccountId `json:"account"`
	Seed    string            `json:"seed"`
}

type infoResult struct {
	Node    *node.InfoReply     `json:"node"`
	Regions *regions.InfoReply  `json:"regions"`
	Market  *listings.InfoReply `json:"market"`
}

type balanceResult struct {
	Account account.AccountId `json:"account"`
	Balance uint64            `json:"balance"`
	Nonce   uint64            `json:"nonce,string"`
	Regions uint32            `json:"regions"`
}

// open the RPC connection named by the global flags
func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	if file := c.String("output"); "" != file {
		err := ioutil.WriteFile(file, []byte(key.Seed()+"\n"), 0600)
		if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "seed written to: %q\n", file)
		}
	}

	printJson(m.w, generateResult{
		Account: key.Account(),
		Seed:    key.Seed(),
	})
	return nil
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	result := infoResult{}

	result.Node, err = client.GetNodeInfo()
	if nil != err {
		return err
	}
	result.Regions, err = client.GetRegionsInfo()
	if nil != err {
		return err
	}
	result.Market, err = client.GetMarketInfo()
	if nil != err {
		return err
	}

	printJson(m.w, result)
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	who, err := checkAccount(m, c.String("account"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	funds, err := client.GetAccount(who)
	if nil != err {
		return err
	}
	held, err := client.GetRegionBalance(who)
	if nil != err {
		return err
	}

	printJson(m.w, balanceResult{
		Account: who,
		Balance: uint64(funds.Balance),
		Nonce:   funds.Nonce,
		Regions: held.Balance,
	})
	return nil
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := checkIdentity(m)
	if nil != err {
		return err
	}
	to, err := account.FromBase58(c.String("to"))
	if nil != err {
		return err
	}
	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", key.Account())
		fmt.Fprintf(m.e, "receiver: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Transfer(key, to, amount)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

func runEvents(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetEvents(c.Uint64("start"), c.Int("count"))
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
