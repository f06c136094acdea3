// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package items

import (
	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/rpc/ratelimit"
	"github.com/regionx/regionxd/rpc/signed"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/uniques"
)

const (
	rateLimitUniques = 200
	rateBurstUniques = 100
)

// limit for holdings count
const maximumHoldings = 100

// signed method names
const (
	MethodApproveTransfer = "Uniques.ApproveTransfer"
	MethodCancelApproval  = "Uniques.CancelApproval"
	MethodTransfer        = "Uniques.Transfer"
)

// Uniques - type for RPC calls
type Uniques struct {
	Log     *logger.L
	Limiter *ratelimit.Limiter
	Runtime *runtime.Runtime
	Pallet  *uniques.Pallet
}

// New - create the uniques service
func New(log *logger.L, rt *runtime.Runtime, pallet *uniques.Pallet) *Uniques {
	return &Uniques{
		Log:     log,
		Limiter: ratelimit.New(rateLimitUniques, rateBurstUniques, maximumHoldings),
		Runtime: rt,
		Pallet:  pallet,
	}
}

// ---

// ItemArguments - item to look up
type ItemArguments struct {
	Collection uniques.CollectionId `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
}

// ItemReply - item details with its record if present
type ItemReply struct {
	Details *uniques.ItemDetails `json:"details"`
	Record  *coretime.Record     `json:"record,omitempty"`
}

// Item - details of a single item
func (u *Uniques) Item(arguments *ItemArguments, reply *ItemReply) error {
	if err := u.Limiter.Limit(); nil != err {
		return err
	}

	return u.Runtime.Query(account.AccountId{}, uniques.PalletAccount, func(env *runtime.Env) error {
		details, err := u.Pallet.Item(env, arguments.Collection, arguments.Item)
		if nil != err {
			return err
		}
		reply.Details = details

		record, err := u.Pallet.Record(env, arguments.Collection, arguments.Item)
		if nil == err {
			reply.Record = &record
		}
		return nil
	})
}

// ---

// HoldingsArguments - owner and maximum count
type HoldingsArguments struct {
	Owner account.AccountId `json:"owner"`
	Count int               `json:"count"`
}

// HoldingsReply - items held
type HoldingsReply struct {
	Holdings []uniques.Holding `json:"holdings"`
}

// Holdings - items held by an owner in any collection
func (u *Uniques) Holdings(arguments *HoldingsArguments, reply *HoldingsReply) error {
	if err := u.Limiter.LimitN(arguments.Count); nil != err {
		return err
	}

	holdings, err := uniques.ItemsOf(u.Runtime.Store(), arguments.Owner, arguments.Count)
	if nil != err {
		return err
	}
	reply.Holdings = holdings
	return nil
}

// ---

// ApproveTransferParams - signed part of an approval
type ApproveTransferParams struct {
	Collection uniques.CollectionId `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
	Delegate   account.AccountId    `json:"delegate"`
}

// ApproveTransferArguments - a signed approval
type ApproveTransferArguments struct {
	Header signed.Header         `json:"header"`
	Params ApproveTransferParams `json:"params"`
}

// ApproveTransfer - let a delegate move an item
func (u *Uniques) ApproveTransfer(arguments *ApproveTransferArguments, reply *signed.Reply) error {
	if err := u.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return signed.Submit(u.Runtime, arguments.Header, MethodApproveTransfer, p, uniques.PalletAccount, 0, func(env *runtime.Env) error {
		return u.Pallet.ApproveTransfer(env, p.Collection, p.Item, p.Delegate)
	}, reply)
}

// ---

// CancelApprovalParams - signed part of a cancellation
type CancelApprovalParams struct {
	Collection uniques.CollectionId `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
}

// CancelApprovalArguments - a signed cancellation
type CancelApprovalArguments struct {
	Header signed.Header        `json:"header"`
	Params CancelApprovalParams `json:"params"`
}

// CancelApproval - clear the delegate of an item
func (u *Uniques) CancelApproval(arguments *CancelApprovalArguments, reply *signed.Reply) error {
	if err := u.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return signed.Submit(u.Runtime, arguments.Header, MethodCancelApproval, p, uniques.PalletAccount, 0, func(env *runtime.Env) error {
		return u.Pallet.CancelApproval(env, p.Collection, p.Item)
	}, reply)
}

// ---

// TransferParams - signed part of an item transfer
type TransferParams struct {
	Collection uniques.CollectionId `json:"collection"`
	Item       coretime.RawRegionId `json:"item"`
	To         account.AccountId    `json:"to"`
}

// TransferArguments - a signed item transfer
type TransferArguments struct {
	Header signed.Header  `json:"header"`
	Params TransferParams `json:"params"`
}

// Transfer - move an item to another account
func (u *Uniques) Transfer(arguments *TransferArguments, reply *signed.Reply) error {
	if err := u.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return signed.Submit(u.Runtime, arguments.Header, MethodTransfer, p, uniques.PalletAccount, 0, func(env *runtime.Env) error {
		return u.Pallet.TransferItem(env, p.Collection, p.Item, p.To)
	}, reply)
}
