// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniques

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/runtime"
)

// CollectionId - identifier of a uniques collection
type CollectionId uint32

// RegionsCollectionId - the collection regions arrive in
const RegionsCollectionId CollectionId = 42

// ItemDetails - state of one item
type ItemDetails struct {
	Owner    account.AccountId  `json:"owner"`
	Approved *account.AccountId `json:"approved,omitempty"`
}

// Extension - the operations contracts may perform on collections
//
// the origin of every operation is env.AccountId()
type Extension interface {
	Owner(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) (account.AccountId, error)
	Item(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) (*ItemDetails, error)
	Record(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) (coretime.Record, error)
	Transfer(env *runtime.Env, collection CollectionId, item coretime.RawRegionId, dest account.AccountId) error
	Mint(env *runtime.Env, collection CollectionId, item coretime.RawRegionId, owner account.AccountId, record coretime.Record) error
	Burn(env *runtime.Env, collection CollectionId, item coretime.RawRegionId) error
}
