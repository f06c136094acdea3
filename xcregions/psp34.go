// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xcregions

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/runtime"
)

// OwnerOf - holder of a token
func (c *Contract) OwnerOf(env *runtime.Env, raw coretime.RawRegionId) (account.AccountId, bool) {
	return stateOf(env).owner(raw)
}

// BalanceOf - number of tokens held
func (c *Contract) BalanceOf(env *runtime.Env, owner account.AccountId) uint32 {
	return uint32(stateOf(env).balance(owner))
}

// TotalSupply - number of tokens in existence
func (c *Contract) TotalSupply(env *runtime.Env) uint64 {
	return stateOf(env).supply()
}

// Allowance - may operator move owner's token (nil: any token)
func (c *Contract) Allowance(env *runtime.Env, owner account.AccountId, operator account.AccountId, raw *coretime.RawRegionId) bool {
	return stateOf(env).allowance(owner, operator, raw)
}

// Approve - grant or revoke operator rights
//
// with a nil id the caller approves the operator for all of its
// tokens, otherwise the caller must be owner of the token or an
// operator for all of the owner's tokens
func (c *Contract) Approve(env *runtime.Env, operator account.AccountId, raw *coretime.RawRegionId, approved bool) error {
	caller := env.Caller()
	s := stateOf(env)

	owner := caller
	if nil != raw {
		var ok bool
		owner, ok = s.owner(*raw)
		if !ok {
			return fault.TokenNotExists
		}
		if owner != caller && !s.allowance(owner, caller, nil) {
			return fault.NotApproved
		}
	}
	if operator == owner {
		return fault.SelfApprove
	}

	if nil == raw {
		key := concat(owner.Bytes(), operator.Bytes())
		if approved {
			s.trx.Put(s.pools.Approvals, key, []byte{})
		} else {
			s.trx.Delete(s.pools.Approvals, key)
		}
	} else {
		operators := s.tokenOperators(*raw)
		kept := make([]account.AccountId, 0, len(operators)+1)
		for _, o := range operators {
			if o != operator {
				kept = append(kept, o)
			}
		}
		if approved {
			kept = append(kept, operator)
		}
		s.setTokenOperators(*raw, kept)
	}

	env.EmitEvent(ApprovalEvent{Owner: owner, Operator: operator, Id: raw, Approved: approved})
	return nil
}

// Transfer - move a token
//
// the caller must be the owner or approved; data is carried to the
// event only
func (c *Contract) Transfer(env *runtime.Env, to account.AccountId, raw coretime.RawRegionId, data []byte) error {
	caller := env.Caller()
	s := stateOf(env)

	owner, ok := s.owner(raw)
	if !ok {
		return fault.TokenNotExists
	}
	if caller != owner && !s.allowance(owner, caller, &raw) {
		return fault.NotApproved
	}

	s.move(owner, to, raw)

	c.log.Debugf("transfer: %s  from: %s  to: %s", raw, owner, to)
	env.EmitEvent(TransferEvent{From: &owner, To: &to, Id: raw})
	return nil
}

// OwnersTokenByIndex - enumerate the tokens of an owner
func (c *Contract) OwnersTokenByIndex(env *runtime.Env, owner account.AccountId, index uint64) (coretime.RawRegionId, error) {
	s := stateOf(env)
	var raw coretime.RawRegionId
	buffer := s.trx.Get(s.pools.OwnerList, concat(owner.Bytes(), indexBytes(index)))
	if nil == buffer {
		return raw, fault.TokenNotExists
	}
	err := coretime.RawRegionIdFromBytes(&raw, buffer)
	return raw, err
}

// TokenByIndex - enumerate all tokens
func (c *Contract) TokenByIndex(env *runtime.Env, index uint64) (coretime.RawRegionId, error) {
	s := stateOf(env)
	var raw coretime.RawRegionId
	buffer := s.trx.Get(s.pools.TokenList, indexBytes(index))
	if nil == buffer {
		return raw, fault.TokenNotExists
	}
	err := coretime.RawRegionIdFromBytes(&raw, buffer)
	return raw, err
}
