// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/regionx/regionxd/rpc/regions"
)

type metadata struct {
	connect  string
	identity string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultConnect = "127.0.0.1:2130"
	defaultCount   = 20
)

func regionFlag() cli.StringFlag {
	return cli.StringFlag{
		Name:  "region, r",
		Value: "",
		Usage: "*region id `HEX`",
	}
}

func collectionFlag() cli.UintFlag {
	return cli.UintFlag{
		Name:  "collection",
		Usage: " uniques collection `ID` [default: the one the regions contract wraps]",
	}
}

func countFlag() cli.IntFlag {
	return cli.IntFlag{
		Name:  "count, n",
		Value: defaultCount,
		Usage: " maximum number of results `COUNT`",
	}
}

func main() {

	app := cli.NewApp()
	app.Name = "regionx-cli"
	app.Usage = "trade coretime regions on a regionxd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  defaultConnect,
			Usage:  " regionxd RPC `HOST:PORT`",
			EnvVar: "REGIONX_CONNECT",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "",
			Usage:  " account seed `FILE` used to sign calls",
			EnvVar: "REGIONX_IDENTITY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new account seed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " also write the seed to `FILE`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "info",
			Usage:     "node, regions contract and market status",
			ArgsUsage: "\n   (* = required)",
			Action:    runInfo,
		},
		{
			Name:      "balance",
			Usage:     "funds, nonce and wrapped region count of an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: " account `ACCOUNT` [default: identity]",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "transfer",
			Usage:     "send funds to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Usage: "*amount to send `AMOUNT`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "events",
			Usage:     "page through the event log",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: " first event `SEQUENCE`",
				},
				countFlag(),
			},
			Action: runEvents,
		},
		{
			Name:      "item",
			Usage:     "show a uniques item and its region record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
				collectionFlag(),
			},
			Action: runItem,
		},
		{
			Name:      "holdings",
			Usage:     "uniques items held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owning `ACCOUNT` [default: identity]",
				},
				countFlag(),
			},
			Action: runHoldings,
		},
		{
			Name:      "approve-item",
			Usage:     "approve a delegate to take a uniques item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
				collectionFlag(),
				cli.StringFlag{
					Name:  "delegate, d",
					Value: "",
					Usage: " delegate `ACCOUNT` [default: the regions contract]",
				},
				cli.BoolFlag{
					Name:  "cancel",
					Usage: " cancel the current approval instead",
				},
			},
			Action: runApproveItem,
		},
		{
			Name:      "transfer-item",
			Usage:     "transfer an unwrapped uniques item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
				collectionFlag(),
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
			},
			Action: runTransferItem,
		},
		{
			Name:      "init",
			Usage:     "wrap an approved uniques item as a region token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
			},
			Action: runInit,
		},
		{
			Name:      "region",
			Usage:     "show a wrapped region",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
			},
			Action: runRegion,
		},
		{
			Name:      "tokens",
			Usage:     "wrapped regions held by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owning `ACCOUNT` [default: identity]",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: " first token `INDEX`",
				},
				countFlag(),
			},
			Action: runTokens,
		},
		{
			Name:      "approve",
			Usage:     "approve an operator for one or all wrapped regions",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "region, r",
					Value: "",
					Usage: " region id `HEX` [default: all regions]",
				},
				cli.StringFlag{
					Name:  "operator, o",
					Value: "",
					Usage: " operator `ACCOUNT` [default: the market]",
				},
				cli.BoolFlag{
					Name:  "revoke",
					Usage: " revoke instead of grant",
				},
			},
			Action: runApprove,
		},
		{
			Name:      "transfer-region",
			Usage:     "transfer a wrapped region",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
				cli.StringFlag{
					Name:  "to, t",
					Value: "",
					Usage: "*receiving `ACCOUNT`",
				},
			},
			Action: runTransferRegion,
		},
		{
			Name:      "update-record",
			Usage:     "request a fresh record for a wrapped region",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
			},
			Action: regionCall(regions.MethodUpdate),
		},
		{
			Name:      "melt",
			Usage:     "unwrap a region, returning the uniques item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
			},
			Action: regionCall(regions.MethodMelt),
		},
		{
			Name:      "remove",
			Usage:     "burn the token of a region that no longer exists",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
			},
			Action: regionCall(regions.MethodRemove),
		},
		{
			Name:      "list",
			Usage:     "list a wrapped region on the market",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*price per timeslice `AMOUNT`",
				},
				cli.StringFlag{
					Name:  "recipient",
					Value: "",
					Usage: " sale proceeds `ACCOUNT` [default: seller]",
				},
				cli.Uint64Flag{
					Name:  "deposit, d",
					Usage: " listing deposit `AMOUNT` [default: the market deposit]",
				},
			},
			Action: runList,
		},
		{
			Name:      "unlist",
			Usage:     "withdraw a listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
			},
			Action: runUnlist,
		},
		{
			Name:      "update-price",
			Usage:     "change the price of a listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
				cli.Uint64Flag{
					Name:  "price, p",
					Usage: "*price per timeslice `AMOUNT`",
				},
			},
			Action: runUpdatePrice,
		},
		{
			Name:      "price",
			Usage:     "show a listing with its current price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
			},
			Action: runPrice,
		},
		{
			Name:      "listed",
			Usage:     "page through the market listings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "after, a",
					Value: "",
					Usage: " continue after region `HEX`",
				},
				countFlag(),
			},
			Action: runListed,
		},
		{
			Name:      "purchase",
			Usage:     "buy a listed region",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				regionFlag(),
				cli.Uint64Flag{
					Name:  "max-price, m",
					Usage: " highest acceptable `PRICE` [default: current price]",
				},
				cli.Uint64Flag{
					Name:  "payment, p",
					Usage: " amount sent `AMOUNT` [default: max price]",
				},
				cli.Int64Flag{
					Name:  "version",
					Value: -1,
					Usage: " expected metadata `VERSION` [default: current]",
				},
			},
			Action: runPurchase,
		},
		{
			Name:  "version",
			Usage: "display regionx-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		identity := c.GlobalString("identity")
		if verbose && "" != identity {
			fmt.Fprintf(e, "identity: %q\n", identity)
		}

		c.App.Metadata["config"] = &metadata{
			connect:  c.GlobalString("connect"),
			identity: identity,
			verbose:  verbose,
			e:        e,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
