// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniques

import (
	"encoding/binary"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/storage"
)

// CreateCollection - new collection administered by the caller
func (p *Pallet) CreateCollection(env *runtime.Env, collection CollectionId) error {
	s := stateOf(env)
	key := collectionKey(collection)
	if s.trx.Has(s.pools.UniquesCollections, key) {
		return fault.CollectionAlreadyExists
	}
	s.trx.Put(s.pools.UniquesCollections, key, env.Caller().Bytes())

	p.log.Infof("collection: %d  admin: %s", collection, env.Caller())
	env.EmitEvent(CreatedEvent{Collection: collection, Admin: env.Caller()})
	return nil
}

// ApproveTransfer - allow delegate to transfer one of the caller's items
func (p *Pallet) ApproveTransfer(env *runtime.Env, collection CollectionId, item coretime.RawRegionId, delegate account.AccountId) error {
	s := stateOf(env)
	details, err := s.item(collection, item)
	if nil != err {
		return Translate(err)
	}
	if env.Caller() != details.Owner {
		return Translate(statusError(CodeNoPermission))
	}

	s.trx.Put(s.pools.UniquesApprovals, itemKey(collection, item), delegate.Bytes())
	env.EmitEvent(ApprovedTransferEvent{Collection: collection, Item: item, Owner: details.Owner, Delegate: delegate})
	return nil
}

// CancelApproval - withdraw the delegate of one of the caller's items
func (p *Pallet) CancelApproval(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) error {
	s := stateOf(env)
	details, err := s.item(collection, item)
	if nil != err {
		return Translate(err)
	}
	if env.Caller() != details.Owner {
		return Translate(statusError(CodeNoPermission))
	}
	if nil == details.Approved {
		return Translate(statusError(CodeNoDelegate))
	}

	s.trx.Delete(s.pools.UniquesApprovals, itemKey(collection, item))
	env.EmitEvent(ApprovalCancelledEvent{Collection: collection, Item: item, Owner: details.Owner, Delegate: *details.Approved})
	return nil
}

// TransferItem - the caller moves an item it owns or is delegated
func (p *Pallet) TransferItem(env *runtime.Env, collection CollectionId, item coretime.RawRegionId, dest account.AccountId) error {
	err := stateOf(env).transfer(env.Caller(), collection, item, dest)
	if nil != err {
		return Translate(err)
	}
	env.EmitEvent(TransferredEvent{Collection: collection, Item: item, To: dest})
	return nil
}

// MintRegion - a region arrives from its chain of origin
//
// the caller must be the collection admin
func (p *Pallet) MintRegion(env *runtime.Env, collection CollectionId, region coretime.Region) error {
	if err := region.Validate(); nil != err {
		return err
	}
	return p.issue(env, env.Caller(), collection, region.RegionId.Raw(), region.Owner, region.Record)
}

// BurnRegion - a region leaves for another chain
//
// the caller must be the collection admin or the owner
func (p *Pallet) BurnRegion(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) error {
	return p.destroy(env, env.Caller(), collection, item)
}

// Holding - an item held by an account
type Holding struct {
	Collection CollectionId         `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
}

// ItemsOf - committed items held by an account
func ItemsOf(store *storage.Store, owner account.AccountId, count int) ([]Holding, error) {
	cursor := store.Pool.UniquesOwnerIndex.NewFetchCursor().Prefix(owner.Bytes())
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	holdings := make([]Holding, 0, len(elements))
	for _, e := range elements {
		key := e.Key[account.AccountIdLength:]
		h := Holding{
			Collection: CollectionId(binary.BigEndian.Uint32(key[:4])),
		}
		if err := coretime.RawRegionIdFromBytes(&h.Item, key[4:]); nil != err {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, nil
}
