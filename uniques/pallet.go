// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniques

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/storage"
)

// PalletAccount - account user dispatchables are addressed to
var PalletAccount = account.ContractAccount("uniques")

// Pallet - uniques collections kept in the node's store
//
// Extension methods act with the calling contract as origin, the
// dispatchables (CreateCollection, ApproveTransfer, ...) act with
// the signed caller as origin
type Pallet struct {
	log *logger.L
}

// NewPallet - the host implementation of Extension
func NewPallet() *Pallet {
	return &Pallet{
		log: logger.New("uniques"),
	}
}

func collectionKey(collection CollectionId) []byte {
	key := make([]byte, 4)
	binary.BigEndian.PutUint32(key, uint32(collection))
	return key
}

func itemKey(collection CollectionId, item coretime.RawRegionId) []byte {
	return append(collectionKey(collection), item[:]...)
}

func ownerIndexKey(owner account.AccountId, collection CollectionId, item coretime.RawRegionId) []byte {
	return append(owner.Bytes(), itemKey(collection, item)...)
}

// pallet view of one call
type state struct {
	trx   storage.Transaction
	pools *storage.Pools
}

func stateOf(env *runtime.Env) state {
	return state{
		trx:   env.Transaction(),
		pools: env.Pool(),
	}
}

func (s state) admin(collection CollectionId) (account.AccountId, error) {
	var admin account.AccountId
	buffer := s.trx.Get(s.pools.UniquesCollections, collectionKey(collection))
	if nil == buffer {
		return admin, statusError(CodeUnknownCollection)
	}
	err := account.FromBytes(&admin, buffer)
	return admin, err
}

func (s state) item(collection CollectionId, item coretime.RawRegionId) (*ItemDetails, error) {
	if _, err := s.admin(collection); nil != err {
		return nil, err
	}

	key := itemKey(collection, item)
	buffer := s.trx.Get(s.pools.UniquesItems, key)
	if nil == buffer {
		return nil, statusError(CodeUnknownItem)
	}

	details := &ItemDetails{}
	if err := account.FromBytes(&details.Owner, buffer); nil != err {
		return nil, err
	}

	if delegate := s.trx.Get(s.pools.UniquesApprovals, key); nil != delegate {
		var approved account.AccountId
		if err := account.FromBytes(&approved, delegate); nil != err {
			return nil, err
		}
		details.Approved = &approved
	}
	return details, nil
}

func (s state) setOwner(collection CollectionId, item coretime.RawRegionId, from *account.AccountId, to account.AccountId) {
	if nil != from {
		s.trx.Delete(s.pools.UniquesOwnerIndex, ownerIndexKey(*from, collection, item))
	}
	s.trx.Put(s.pools.UniquesItems, itemKey(collection, item), to.Bytes())
	s.trx.Put(s.pools.UniquesOwnerIndex, ownerIndexKey(to, collection, item), []byte{})
}

func (s state) transfer(origin account.AccountId, collection CollectionId, item coretime.RawRegionId, dest account.AccountId) error {
	details, err := s.item(collection, item)
	if nil != err {
		return err
	}

	if origin != details.Owner {
		if nil == details.Approved || *details.Approved != origin {
			return statusError(CodeNoPermission)
		}
	}

	s.trx.Delete(s.pools.UniquesApprovals, itemKey(collection, item))
	s.setOwner(collection, item, &details.Owner, dest)
	return nil
}

func (s state) mint(origin account.AccountId, collection CollectionId, item coretime.RawRegionId, owner account.AccountId, record coretime.Record) error {
	admin, err := s.admin(collection)
	if nil != err {
		return err
	}
	if origin != admin {
		return statusError(CodeNoPermission)
	}
	key := itemKey(collection, item)
	if s.trx.Has(s.pools.UniquesItems, key) {
		return statusError(CodeAlreadyExists)
	}

	s.setOwner(collection, item, nil, owner)
	s.trx.Put(s.pools.UniquesRecords, key, record.Pack())
	return nil
}

func (s state) burn(origin account.AccountId, collection CollectionId, item coretime.RawRegionId) (account.AccountId, error) {
	admin, err := s.admin(collection)
	if nil != err {
		return account.AccountId{}, err
	}
	details, err := s.item(collection, item)
	if nil != err {
		return account.AccountId{}, err
	}
	if origin != admin && origin != details.Owner {
		return account.AccountId{}, statusError(CodeNoPermission)
	}

	key := itemKey(collection, item)
	s.trx.Delete(s.pools.UniquesItems, key)
	s.trx.Delete(s.pools.UniquesApprovals, key)
	s.trx.Delete(s.pools.UniquesRecords, key)
	s.trx.Delete(s.pools.UniquesOwnerIndex, ownerIndexKey(details.Owner, collection, item))
	return details.Owner, nil
}

// Owner - current owner of an item
func (p *Pallet) Owner(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) (account.AccountId, error) {
	details, err := stateOf(env).item(collection, item)
	if nil != err {
		return account.AccountId{}, Translate(err)
	}
	return details.Owner, nil
}

// Item - owner and approval of an item
func (p *Pallet) Item(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) (*ItemDetails, error) {
	details, err := stateOf(env).item(collection, item)
	return details, Translate(err)
}

// Record - the region record attached to an item
func (p *Pallet) Record(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) (coretime.Record, error) {
	s := stateOf(env)
	if _, err := s.item(collection, item); nil != err {
		return coretime.Record{}, Translate(err)
	}
	buffer := s.trx.Get(s.pools.UniquesRecords, itemKey(collection, item))
	if nil == buffer {
		return coretime.Record{}, Translate(statusError(CodeUnknownItem))
	}
	return coretime.PackedRecord(buffer).Unpack()
}

// Transfer - move an item, origin must be owner or approved delegate
//
// any approval is cleared
func (p *Pallet) Transfer(env *runtime.Env, collection CollectionId, item coretime.RawRegionId, dest account.AccountId) error {
	err := stateOf(env).transfer(env.AccountId(), collection, item, dest)
	if nil != err {
		return Translate(err)
	}
	p.log.Debugf("transfer: collection: %d  item: %s  to: %s", collection, item, dest)
	env.EmitEvent(TransferredEvent{Collection: collection, Item: item, To: dest})
	return nil
}

// Mint - create an item, origin must be the collection admin
func (p *Pallet) Mint(env *runtime.Env, collection CollectionId, item coretime.RawRegionId, owner account.AccountId, record coretime.Record) error {
	return p.issue(env, env.AccountId(), collection, item, owner, record)
}

// Burn - destroy an item, origin must be admin or owner
func (p *Pallet) Burn(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) error {
	return p.destroy(env, env.AccountId(), collection, item)
}

func (p *Pallet) issue(env *runtime.Env, origin account.AccountId, collection CollectionId, item coretime.RawRegionId, owner account.AccountId, record coretime.Record) error {
	err := stateOf(env).mint(origin, collection, item, owner, record)
	if nil != err {
		return Translate(err)
	}

	p.log.Infof("issued: collection: %d  item: %s  owner: %s  origin: %s", collection, item, owner, origin)
	env.EmitEvent(IssuedEvent{Collection: collection, Item: item, Owner: owner})
	return nil
}

func (p *Pallet) destroy(env *runtime.Env, origin account.AccountId, collection CollectionId, item coretime.RawRegionId) error {
	owner, err := stateOf(env).burn(origin, collection, item)
	if nil != err {
		return Translate(err)
	}

	p.log.Infof("burned: collection: %d  item: %s  owner: %s  origin: %s", collection, item, owner, origin)
	env.EmitEvent(BurnedEvent{Collection: collection, Item: item, Owner: owner})
	return nil
}
