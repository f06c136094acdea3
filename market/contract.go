// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/storage"
)

// Regions - the region token contract as seen by the market
type Regions interface {
	Address() account.AccountId
	OwnerOf(env *runtime.Env, raw coretime.RawRegionId) (account.AccountId, bool)
	GetRegionData(env *runtime.Env, raw coretime.RawRegionId) (coretime.VersionedRegion, error)
	Transfer(env *runtime.Env, to account.AccountId, raw coretime.RawRegionId, data []byte) error
}

// Config - fixed at deployment
//
// a zero treasury leaves consumed deposits in the market account
type Config struct {
	XcRegionsContract account.AccountId `json:"xcRegionsContract"`
	ListingDeposit    balances.Balance  `json:"listingDeposit"`
	Treasury          account.AccountId `json:"treasury"`
}

// structure of the packed configuration
const (
	configRegionsStart   = 0
	configRegionsFinish  = configRegionsStart + account.AccountIdLength
	configDepositStart   = configRegionsFinish
	configDepositFinish  = configDepositStart + uint64ByteSize
	configTreasuryStart  = configDepositFinish
	configTreasuryFinish = configTreasuryStart + account.AccountIdLength
)

// Contract - the market contract
type Contract struct {
	log     *logger.L
	regions Regions
	address account.AccountId
}

// New - contract instance at a fixed address
func New(address account.AccountId, regions Regions) *Contract {
	return &Contract{
		log:     logger.New("market"),
		regions: regions,
		address: address,
	}
}

// Address - the contract account
func (c *Contract) Address() account.AccountId {
	return c.address
}

// Deploy - store the configuration, only once
func (c *Contract) Deploy(env *runtime.Env, config Config) error {
	trx := env.Transaction()
	pools := env.Pool()

	if trx.Has(pools.ContractConfig, c.address.Bytes()) {
		return fault.AlreadyInitialised
	}
	if config.XcRegionsContract != c.regions.Address() {
		return fault.InvalidContract
	}

	packed := make([]byte, configTreasuryFinish)
	copy(packed[configRegionsStart:configRegionsFinish], config.XcRegionsContract[:])
	binary.BigEndian.PutUint64(packed[configDepositStart:configDepositFinish], uint64(config.ListingDeposit))
	copy(packed[configTreasuryStart:configTreasuryFinish], config.Treasury[:])
	trx.Put(pools.ContractConfig, c.address.Bytes(), packed)

	c.log.Infof("deployed: %s  regions: %s  deposit: %d  treasury: %s", c.address, config.XcRegionsContract, config.ListingDeposit, config.Treasury)
	return nil
}

func (c *Contract) config(env *runtime.Env) (Config, error) {
	config := Config{}
	packed := env.Transaction().Get(env.Pool().ContractConfig, c.address.Bytes())
	if nil == packed {
		return config, fault.MarketNotDeployed
	}
	if configTreasuryFinish != len(packed) {
		logger.Panicf("market: corrupt configuration length: %d", len(packed))
	}

	copy(config.XcRegionsContract[:], packed[configRegionsStart:configRegionsFinish])
	config.ListingDeposit = balances.Balance(binary.BigEndian.Uint64(packed[configDepositStart:configDepositFinish]))
	copy(config.Treasury[:], packed[configTreasuryStart:configTreasuryFinish])
	return config, nil
}

// XcRegionsContract - address of the region token contract
func (c *Contract) XcRegionsContract(env *runtime.Env) (account.AccountId, error) {
	config, err := c.config(env)
	return config.XcRegionsContract, err
}

// ListingDeposit - deposit locked by each listing
func (c *Contract) ListingDeposit(env *runtime.Env) (balances.Balance, error) {
	config, err := c.config(env)
	return config.ListingDeposit, err
}

func (c *Contract) listingKey(raw coretime.RawRegionId) []byte {
	key := make([]byte, 0, account.AccountIdLength+len(raw))
	key = append(key, c.address[:]...)
	return append(key, raw[:]...)
}

// the active listing of a token, nil if none
func (c *Contract) listing(env *runtime.Env, raw coretime.RawRegionId) (*Listing, error) {
	packed := env.Transaction().Get(env.Pool().Listings, c.listingKey(raw))
	if nil == packed {
		return nil, nil
	}
	l, err := PackedListing(packed).Unpack()
	if nil != err {
		return nil, err
	}
	return &l, nil
}

// ListedRegion - the listing of a token, nil if not listed
func (c *Contract) ListedRegion(env *runtime.Env, raw coretime.RawRegionId) (*Listing, error) {
	return c.listing(env, raw)
}

// ListedEntry - one item of ListedRegions
type ListedEntry struct {
	RegionId coretime.RawRegionId `json:"regionId"`
	Listing  Listing              `json:"listing"`
}

// ListedRegions - committed listings in region id order
//
// starts after the given id, or at the beginning when it is nil
func (c *Contract) ListedRegions(store *storage.Store, after *coretime.RawRegionId, count int) ([]ListedEntry, error) {
	cursor := store.Pool.Listings.NewFetchCursor().Prefix(c.address.Bytes())
	if nil != after {
		cursor.Seek(append(c.listingKey(*after), 0x00))
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	entries := make([]ListedEntry, 0, len(elements))
	for _, e := range elements {
		entry := ListedEntry{}
		err := coretime.RawRegionIdFromBytes(&entry.RegionId, e.Key[account.AccountIdLength:])
		if nil != err {
			return nil, err
		}
		entry.Listing, err = PackedListing(e.Value).Unpack()
		if nil != err {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
