// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package regions

import (
	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/rpc/ratelimit"
	"github.com/regionx/regionxd/rpc/signed"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/uniques"
	"github.com/regionx/regionxd/xcregions"
)

const (
	rateLimitRegions = 200
	rateBurstRegions = 100
)

// limit for token list count
const maximumTokens = 100

// signed method names
const (
	MethodInit     = "Regions.Init"
	MethodUpdate   = "Regions.Update"
	MethodMelt     = "Regions.Melt"
	MethodRemove   = "Regions.Remove"
	MethodApprove  = "Regions.Approve"
	MethodTransfer = "Regions.Transfer"
)

// Regions - type for RPC calls
type Regions struct {
	Log      *logger.L
	Limiter  *ratelimit.Limiter
	Runtime  *runtime.Runtime
	Contract *xcregions.Contract
}

// New - create the region token service
func New(log *logger.L, rt *runtime.Runtime, contract *xcregions.Contract) *Regions {
	return &Regions{
		Log:      log,
		Limiter:  ratelimit.New(rateLimitRegions, rateBurstRegions, maximumTokens),
		Runtime:  rt,
		Contract: contract,
	}
}

func (r *Regions) query(fn runtime.Function) error {
	return r.Runtime.Query(account.AccountId{}, r.Contract.Address(), fn)
}

func (r *Regions) submit(h signed.Header, method string, params interface{}, fn runtime.Function, reply *signed.Reply) error {
	return signed.Submit(r.Runtime, h, method, params, r.Contract.Address(), 0, fn, reply)
}

// ---

// InfoArguments - none
type InfoArguments struct{}

// InfoReply - contract address and totals
type InfoReply struct {
	Address     account.AccountId    `json:"address"`
	Collection  uniques.CollectionId `json:"collection"`
	TotalSupply uint64               `json:"totalSupply,string"`
}

// Info - the region token contract
func (r *Regions) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	reply.Address = r.Contract.Address()
	reply.Collection = r.Contract.CollectionId()
	return r.query(func(env *runtime.Env) error {
		reply.TotalSupply = r.Contract.TotalSupply(env)
		return nil
	})
}

// ---

// RegionArguments - a single region
type RegionArguments struct {
	RegionId coretime.RawRegionId `json:"regionId"`
}

// GetReply - wrapped region and metadata version
type GetReply struct {
	coretime.VersionedRegion
}

// Get - data of a wrapped region
func (r *Regions) Get(arguments *RegionArguments, reply *GetReply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	return r.query(func(env *runtime.Env) error {
		data, err := r.Contract.GetRegionData(env, arguments.RegionId)
		if nil != err {
			return err
		}
		reply.VersionedRegion = data
		return nil
	})
}

// OwnerOfReply - holder if the token exists
type OwnerOfReply struct {
	Owner *account.AccountId `json:"owner"`
}

// OwnerOf - holder of a region token
func (r *Regions) OwnerOf(arguments *RegionArguments, reply *OwnerOfReply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	return r.query(func(env *runtime.Env) error {
		if owner, ok := r.Contract.OwnerOf(env, arguments.RegionId); ok {
			reply.Owner = &owner
		}
		return nil
	})
}

// ---

// BalanceArguments - token holder
type BalanceArguments struct {
	Owner account.AccountId `json:"owner"`
}

// BalanceReply - number of tokens held
type BalanceReply struct {
	Balance uint32 `json:"balance"`
}

// Balance - number of tokens held by an owner
func (r *Regions) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	return r.query(func(env *runtime.Env) error {
		reply.Balance = r.Contract.BalanceOf(env, arguments.Owner)
		return nil
	})
}

// ---

// AllowanceArguments - owner, operator and optional token
type AllowanceArguments struct {
	Owner    account.AccountId     `json:"owner"`
	Operator account.AccountId     `json:"operator"`
	RegionId *coretime.RawRegionId `json:"regionId,omitempty"`
}

// AllowanceReply - whether the operator is approved
type AllowanceReply struct {
	Allowed bool `json:"allowed"`
}

// Allowance - may operator move owner's token
func (r *Regions) Allowance(arguments *AllowanceArguments, reply *AllowanceReply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	return r.query(func(env *runtime.Env) error {
		reply.Allowed = r.Contract.Allowance(env, arguments.Owner, arguments.Operator, arguments.RegionId)
		return nil
	})
}

// ---

// TokensArguments - owner and index window
type TokensArguments struct {
	Owner account.AccountId `json:"owner"`
	Start uint64            `json:"start,string"`
	Count int               `json:"count"`
}

// TokensReply - tokens in index order
type TokensReply struct {
	Tokens    []coretime.RawRegionId `json:"tokens"`
	NextStart uint64                 `json:"nextStart,string"`
}

// Tokens - enumerate the tokens of an owner
func (r *Regions) Tokens(arguments *TokensArguments, reply *TokensReply) error {
	if err := r.Limiter.LimitN(arguments.Count); nil != err {
		return err
	}

	return r.query(func(env *runtime.Env) error {
		total := uint64(r.Contract.BalanceOf(env, arguments.Owner))
		tokens := make([]coretime.RawRegionId, 0, arguments.Count)
		index := arguments.Start
		for ; index < total && len(tokens) < arguments.Count; index += 1 {
			raw, err := r.Contract.OwnersTokenByIndex(env, arguments.Owner, index)
			if nil != err {
				return err
			}
			tokens = append(tokens, raw)
		}
		reply.Tokens = tokens
		reply.NextStart = index
		return nil
	})
}

// ---

// InitParams - signed part of wrapping a region
type InitParams struct {
	RegionId coretime.RawRegionId `json:"regionId"`
	Region   coretime.Region      `json:"region"`
}

// InitArguments - a signed init
type InitArguments struct {
	Header signed.Header `json:"header"`
	Params InitParams    `json:"params"`
}

// Init - wrap a region held in the uniques collection
func (r *Regions) Init(arguments *InitArguments, reply *signed.Reply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return r.submit(arguments.Header, MethodInit, p, func(env *runtime.Env) error {
		return r.Contract.InitRegion(env, p.RegionId, p.Region)
	}, reply)
}

// RegionParams - signed part of single region calls
type RegionParams struct {
	RegionId coretime.RawRegionId `json:"regionId"`
}

// RegionCallArguments - a signed single region call
type RegionCallArguments struct {
	Header signed.Header `json:"header"`
	Params RegionParams  `json:"params"`
}

// Update - refresh a wrapped region's record
func (r *Regions) Update(arguments *RegionCallArguments, reply *signed.Reply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return r.submit(arguments.Header, MethodUpdate, p, func(env *runtime.Env) error {
		return r.Contract.RequestRegionRecordUpdate(env, p.RegionId)
	}, reply)
}

// Melt - unwrap a region back to its owner
func (r *Regions) Melt(arguments *RegionCallArguments, reply *signed.Reply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return r.submit(arguments.Header, MethodMelt, p, func(env *runtime.Env) error {
		return r.Contract.MeltRegion(env, p.RegionId)
	}, reply)
}

// Remove - drop a token whose region left the chain
func (r *Regions) Remove(arguments *RegionCallArguments, reply *signed.Reply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return r.submit(arguments.Header, MethodRemove, p, func(env *runtime.Env) error {
		return r.Contract.RemoveRegion(env, p.RegionId)
	}, reply)
}

// ---

// ApproveParams - signed part of an approval
type ApproveParams struct {
	Operator account.AccountId     `json:"operator"`
	RegionId *coretime.RawRegionId `json:"regionId,omitempty"`
	Approved bool                  `json:"approved"`
}

// ApproveArguments - a signed approval
type ApproveArguments struct {
	Header signed.Header `json:"header"`
	Params ApproveParams `json:"params"`
}

// Approve - grant or revoke operator rights
func (r *Regions) Approve(arguments *ApproveArguments, reply *signed.Reply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return r.submit(arguments.Header, MethodApprove, p, func(env *runtime.Env) error {
		return r.Contract.Approve(env, p.Operator, p.RegionId, p.Approved)
	}, reply)
}

// ---

// TransferParams - signed part of a token transfer
type TransferParams struct {
	To       account.AccountId    `json:"to"`
	RegionId coretime.RawRegionId `json:"regionId"`
}

// TransferArguments - a signed token transfer
type TransferArguments struct {
	Header signed.Header  `json:"header"`
	Params TransferParams `json:"params"`
}

// Transfer - move a token to another account
func (r *Regions) Transfer(arguments *TransferArguments, reply *signed.Reply) error {
	if err := r.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	return r.submit(arguments.Header, MethodTransfer, p, func(env *runtime.Env) error {
		return r.Contract.Transfer(env, p.To, p.RegionId, nil)
	}, reply)
}
