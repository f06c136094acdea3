// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xcregions

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
)

// TransferEvent - token moved, From is nil on mint and To is nil on burn
type TransferEvent struct {
	From *account.AccountId   `json:"from"`
	To   *account.AccountId   `json:"to"`
	Id   coretime.RawRegionId `json:"id"`
}

// ApprovalEvent - operator rights changed, Id is nil for all tokens
type ApprovalEvent struct {
	Owner    account.AccountId     `json:"owner"`
	Operator account.AccountId     `json:"operator"`
	Id       *coretime.RawRegionId `json:"id"`
	Approved bool                  `json:"approved"`
}

// RegionInitializedEvent - a region was wrapped
type RegionInitializedEvent struct {
	RegionId coretime.RawRegionId `json:"regionId"`
	Metadata coretime.Region      `json:"metadata"`
	Version  uint32               `json:"version"`
}

// RegionRecordUpdatedEvent - the record was refreshed
type RegionRecordUpdatedEvent struct {
	RegionId coretime.RawRegionId `json:"regionId"`
	Metadata coretime.Region      `json:"metadata"`
	Version  uint32               `json:"version"`
}

// RegionMeltedEvent - a region was unwrapped by its owner
type RegionMeltedEvent struct {
	RegionId coretime.RawRegionId `json:"regionId"`
	Owner    account.AccountId    `json:"owner"`
}

// RegionRemovedEvent - a token whose region left this chain was dropped
type RegionRemovedEvent struct {
	RegionId coretime.RawRegionId `json:"regionId"`
}

func (TransferEvent) EventName() string            { return "Transfer" }
func (ApprovalEvent) EventName() string            { return "Approval" }
func (RegionInitializedEvent) EventName() string   { return "RegionInitialized" }
func (RegionRecordUpdatedEvent) EventName() string { return "RegionRecordUpdated" }
func (RegionMeltedEvent) EventName() string        { return "RegionMelted" }
func (RegionRemovedEvent) EventName() string       { return "RegionRemoved" }
