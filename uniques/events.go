// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniques

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
)

// CreatedEvent - a collection was created
type CreatedEvent struct {
	Collection CollectionId      `json:"collection"`
	Admin      account.AccountId `json:"admin"`
}

// IssuedEvent - an item was minted
type IssuedEvent struct {
	Collection CollectionId         `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
	Owner      account.AccountId    `json:"owner"`
}

// TransferredEvent - an item changed owner
type TransferredEvent struct {
	Collection CollectionId         `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
	To         account.AccountId    `json:"to"`
}

// BurnedEvent - an item was destroyed
type BurnedEvent struct {
	Collection CollectionId         `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
	Owner      account.AccountId    `json:"owner"`
}

// ApprovedTransferEvent - a delegate was approved
type ApprovedTransferEvent struct {
	Collection CollectionId         `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
	Owner      account.AccountId    `json:"owner"`
	Delegate   account.AccountId    `json:"delegate"`
}

// ApprovalCancelledEvent - a delegate was removed
type ApprovalCancelledEvent struct {
	Collection CollectionId         `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
	Owner      account.AccountId    `json:"owner"`
	Delegate   account.AccountId    `json:"delegate"`
}

func (CreatedEvent) EventName() string           { return "Created" }
func (IssuedEvent) EventName() string            { return "Issued" }
func (TransferredEvent) EventName() string       { return "Transferred" }
func (BurnedEvent) EventName() string            { return "Burned" }
func (ApprovedTransferEvent) EventName() string  { return "ApprovedTransfer" }
func (ApprovalCancelledEvent) EventName() string { return "ApprovalCancelled" }
