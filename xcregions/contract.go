// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xcregions

import (
	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/uniques"
)

// Contract - the region token contract
//
// all persistent state lives in the store pools, every method must be
// called with an Env whose AccountId is Address
type Contract struct {
	log        *logger.L
	bridge     uniques.Extension
	collection uniques.CollectionId
	address    account.AccountId
}

// New - contract instance at a fixed address
func New(address account.AccountId, bridge uniques.Extension, collection uniques.CollectionId) *Contract {
	return &Contract{
		log:        logger.New("xcregions"),
		bridge:     bridge,
		collection: collection,
		address:    address,
	}
}

// Address - the contract account
func (c *Contract) Address() account.AccountId {
	return c.address
}

// CollectionId - the uniques collection regions are wrapped from
func (c *Contract) CollectionId() uniques.CollectionId {
	return c.collection
}

// InitRegion - wrap a region held by the caller
//
// the caller must have approved this contract for the item
func (c *Contract) InitRegion(env *runtime.Env, raw coretime.RawRegionId, region coretime.Region) error {
	caller := env.Caller()

	owner, err := c.bridge.Owner(env, c.collection, raw)
	if nil != err || owner != caller {
		c.log.Debugf("init: %s  caller: %s  bridge owner: %s  error: %v", raw, caller, owner, err)
		return fault.CannotInitialise
	}

	s := stateOf(env)
	if s.exists(raw) || s.trx.Has(s.pools.RegionRecords, raw[:]) {
		return fault.RegionAlreadyInitialised
	}

	if region.RegionId.Raw() != raw {
		return fault.InvalidMetadata
	}
	if err := region.Validate(); nil != err {
		return err
	}

	err = c.bridge.Transfer(env, c.collection, raw, env.AccountId())
	if nil != err {
		return err
	}

	version := uint32(0)
	if previous, ok := s.version(raw); ok {
		version = saturatingIncrement(previous)
	}
	s.trx.PutN(s.pools.MetadataVersions, raw[:], uint64(version))
	s.trx.Put(s.pools.RegionRecords, raw[:], region.Record.Pack())

	err = s.mint(caller, raw)
	if nil != err {
		return err
	}

	c.log.Infof("initialised: %s  owner: %s  version: %d", raw, caller, version)
	env.EmitEvent(TransferEvent{To: &caller, Id: raw})
	env.EmitEvent(RegionInitializedEvent{RegionId: raw, Metadata: region, Version: version})
	return nil
}

// RequestRegionRecordUpdate - refresh the record from the collection
//
// only owner and paid may change, the version moves only when one of
// them does
func (c *Contract) RequestRegionRecordUpdate(env *runtime.Env, raw coretime.RawRegionId) error {
	s := stateOf(env)
	if !s.exists(raw) {
		return fault.RegionNotFound
	}
	stored, err := s.record(raw)
	if nil != err {
		return err
	}

	fresh, err := c.bridge.Record(env, c.collection, raw)
	if nil != err {
		return err
	}
	if fresh.End != stored.End {
		return fault.InvalidMetadata
	}
	if fresh.Owner == stored.Owner && samePaid(fresh.Paid, stored.Paid) {
		c.log.Debugf("record unchanged: %s", raw)
		return nil
	}

	stored.Owner = fresh.Owner
	stored.Paid = fresh.Paid
	s.trx.Put(s.pools.RegionRecords, raw[:], stored.Pack())

	previous, _ := s.version(raw)
	version := saturatingIncrement(previous)
	s.trx.PutN(s.pools.MetadataVersions, raw[:], uint64(version))

	region := coretime.Region{RegionId: raw.RegionId(), Record: stored}
	env.EmitEvent(RegionRecordUpdatedEvent{RegionId: raw, Metadata: region, Version: version})
	return nil
}

// MeltRegion - unwrap, the underlying item goes back to the token owner
func (c *Contract) MeltRegion(env *runtime.Env, raw coretime.RawRegionId) error {
	caller := env.Caller()

	s := stateOf(env)
	owner, ok := s.owner(raw)
	if !ok {
		return fault.RegionNotFound
	}
	if owner != caller {
		return fault.NotRegionOwner
	}

	err := s.burn(owner, raw)
	if nil != err {
		return err
	}
	s.trx.Delete(s.pools.RegionRecords, raw[:])

	err = c.bridge.Transfer(env, c.collection, raw, caller)
	if nil != err {
		return err
	}

	c.log.Infof("melted: %s  owner: %s", raw, owner)
	env.EmitEvent(TransferEvent{From: &owner, Id: raw})
	env.EmitEvent(RegionMeltedEvent{RegionId: raw, Owner: owner})
	return nil
}

// RemoveRegion - drop a token whose region has left this chain
//
// anyone may call this
func (c *Contract) RemoveRegion(env *runtime.Env, raw coretime.RawRegionId) error {
	s := stateOf(env)
	owner, ok := s.owner(raw)
	if !ok {
		return fault.RegionNotFound
	}

	_, err := c.bridge.Item(env, c.collection, raw)
	if nil == err {
		return fault.RegionStillExists
	}
	if fault.BridgeUnknownItem != err {
		return err
	}

	err = s.burn(owner, raw)
	if nil != err {
		return err
	}
	s.trx.Delete(s.pools.RegionRecords, raw[:])

	c.log.Infof("removed: %s  owner: %s", raw, owner)
	env.EmitEvent(TransferEvent{From: &owner, Id: raw})
	env.EmitEvent(RegionRemovedEvent{RegionId: raw})
	return nil
}

// GetRegionData - the wrapped region and its metadata version
func (c *Contract) GetRegionData(env *runtime.Env, raw coretime.RawRegionId) (coretime.VersionedRegion, error) {
	s := stateOf(env)
	if !s.exists(raw) {
		return coretime.VersionedRegion{}, fault.RegionNotFound
	}

	if !s.trx.Has(s.pools.RegionRecords, raw[:]) {
		return coretime.VersionedRegion{}, fault.MetadataNotFound
	}
	record, err := s.record(raw)
	if nil != err {
		return coretime.VersionedRegion{}, err
	}
	version, ok := s.version(raw)
	if !ok {
		return coretime.VersionedRegion{}, fault.MetadataNotFound
	}

	return coretime.VersionedRegion{
		Version: version,
		Region: coretime.Region{
			RegionId: raw.RegionId(),
			Record:   record,
		},
	}, nil
}

func samePaid(a *balances.Balance, b *balances.Balance) bool {
	if nil == a || nil == b {
		return a == b
	}
	return *a == *b
}

func saturatingIncrement(v uint32) uint32 {
	if v == ^uint32(0) {
		return v
	}
	return v + 1
}
