// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/market"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/uniques"
	"github.com/regionx/regionxd/xcregions"
)

// node - the runtime with its pallet and contracts
type node struct {
	runtime *runtime.Runtime
	pallet  *uniques.Pallet
	regions *xcregions.Contract
	market  *market.Contract
	config  market.Config
}

// the runtime parameters from the contracts section
func runtimeConfiguration(contracts *ContractsType) (runtime.Configuration, error) {
	config := runtime.Configuration{
		SubmissionFee: balances.Balance(contracts.SubmissionFee),
	}
	if "" != contracts.Treasury {
		treasury, err := account.FromBase58(contracts.Treasury)
		if nil != err {
			return config, fmt.Errorf("treasury: %q  error: %s", contracts.Treasury, err)
		}
		config.Treasury = treasury
	}
	if 0 != config.SubmissionFee && config.Treasury.IsZero() {
		return config, fault.MissingTreasury
	}
	return config, nil
}

// create the contract instances over a runtime
func newNode(rt *runtime.Runtime, contracts *ContractsType, treasury account.AccountId) *node {
	collection := uniques.CollectionId(contracts.Collection)
	pallet := uniques.NewPallet()
	regions := xcregions.New(account.ContractAccount(contracts.XcRegions), pallet, collection)

	return &node{
		runtime: rt,
		pallet:  pallet,
		regions: regions,
		market:  market.New(account.ContractAccount(contracts.Market), regions),
		config: market.Config{
			XcRegionsContract: regions.Address(),
			ListingDeposit:    balances.Balance(contracts.ListingDeposit),
			Treasury:          treasury,
		},
	}
}

// a genesis region converted to its runtime form
func genesisRegion(g GenesisRegion) (coretime.Region, error) {
	owner, err := account.FromBase58(g.Owner)
	if nil != err {
		return coretime.Region{}, fmt.Errorf("region owner: %q  error: %s", g.Owner, err)
	}

	mask := coretime.CompleteMask
	if "" != g.Mask {
		err = mask.UnmarshalText([]byte(g.Mask))
		if nil != err {
			return coretime.Region{}, fmt.Errorf("region mask: %q  error: %s", g.Mask, err)
		}
	}

	region := coretime.Region{
		RegionId: coretime.RegionId{
			Begin: coretime.Timeslice(g.Begin),
			Core:  coretime.CoreIndex(g.Core),
			Mask:  mask,
		},
		Record: coretime.Record{
			End:   coretime.Timeslice(g.End),
			Owner: owner,
		},
	}
	if 0 != g.Paid {
		paid := balances.Balance(g.Paid)
		region.Paid = &paid
	}
	return region, region.Validate()
}

// apply genesis to an empty database
//
// the market deployment marks the database as initialised, so a
// restart only opens the existing state
func (n *node) genesis(log *logger.L, genesis *GenesisType, initialBlock uint32) error {
	deployed := false
	err := n.runtime.Query(account.Zero, n.market.Address(), func(env *runtime.Env) error {
		_, err := n.market.ListingDeposit(env)
		deployed = nil == err
		return nil
	})
	if nil != err {
		return err
	}
	if deployed {
		log.Info("genesis: already applied")
		return nil
	}

	admin, err := account.FromBase58(genesis.Admin)
	if nil != err {
		return fmt.Errorf("genesis admin: %q  error: %s", genesis.Admin, err)
	}

	regions := make([]coretime.Region, 0, len(genesis.Regions))
	for _, g := range genesis.Regions {
		region, err := genesisRegion(g)
		if nil != err {
			return err
		}
		regions = append(regions, region)
	}

	err = n.runtime.SetRelayBlockNumber(initialBlock)
	if nil != err {
		return err
	}

	for _, a := range genesis.Accounts {
		who, err := account.FromBase58(a.Account)
		if nil != err {
			return fmt.Errorf("genesis account: %q  error: %s", a.Account, err)
		}
		err = n.runtime.Mint(who, balances.Balance(a.Balance))
		if nil != err {
			return err
		}
		log.Infof("genesis: account: %s  balance: %d", who, a.Balance)
	}

	collection := n.regions.CollectionId()
	_, err = n.runtime.Call(admin, uniques.PalletAccount, 0, func(env *runtime.Env) error {
		err := n.pallet.CreateCollection(env, collection)
		if nil != err {
			return err
		}
		for _, region := range regions {
			err := n.pallet.MintRegion(env, collection, region)
			if nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		return err
	}
	log.Infof("genesis: collection: %d  admin: %s  regions: %d", collection, admin, len(regions))

	_, err = n.runtime.Call(admin, n.market.Address(), 0, func(env *runtime.Env) error {
		return n.market.Deploy(env, n.config)
	})
	if nil != err {
		return err
	}
	log.Infof("genesis: market: %s  regions contract: %s  deposit: %d", n.market.Address(), n.regions.Address(), n.config.ListingDeposit)

	return nil
}
