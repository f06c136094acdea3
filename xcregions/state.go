// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package xcregions

import (
	"bytes"
	"encoding/binary"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/storage"
)

// chain state key of the number of tokens
var supplyKey = []byte("xcregions:supply")

// contract view of one call
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

func indexBytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

func concat(items ...[]byte) []byte {
	return bytes.Join(items, nil)
}

func (s state) exists(raw coretime.RawRegionId) bool {
	return s.trx.Has(s.pools.TokenOwners, raw[:])
}

func (s state) owner(raw coretime.RawRegionId) (account.AccountId, bool) {
	var owner account.AccountId
	buffer := s.trx.Get(s.pools.TokenOwners, raw[:])
	if nil == buffer {
		return owner, false
	}
	if err := account.FromBytes(&owner, buffer); nil != err {
		return owner, false
	}
	return owner, true
}

func (s state) record(raw coretime.RawRegionId) (coretime.Record, error) {
	buffer := s.trx.Get(s.pools.RegionRecords, raw[:])
	if nil == buffer {
		return coretime.Record{}, fault.MetadataNotFound
	}
	return coretime.PackedRecord(buffer).Unpack()
}

func (s state) version(raw coretime.RawRegionId) (uint32, bool) {
	n, ok := s.trx.GetN(s.pools.MetadataVersions, raw[:])
	return uint32(n), ok
}

func (s state) balance(owner account.AccountId) uint64 {
	n, _ := s.trx.GetN(s.pools.OwnerCounts, owner.Bytes())
	return n
}

func (s state) supply() uint64 {
	n, _ := s.trx.GetN(s.pools.ChainState, supplyKey)
	return n
}

// append to the owner's enumeration
func (s state) addToOwner(owner account.AccountId, raw coretime.RawRegionId) {
	count := s.balance(owner)
	s.trx.Put(s.pools.OwnerList, concat(owner.Bytes(), indexBytes(count)), raw[:])
	s.trx.PutN(s.pools.OwnerIndex, concat(owner.Bytes(), raw[:]), count)
	s.trx.PutN(s.pools.OwnerCounts, owner.Bytes(), count+1)
}

// remove from the owner's enumeration, the last token fills the gap
func (s state) removeFromOwner(owner account.AccountId, raw coretime.RawRegionId) {
	count := s.balance(owner)
	position, _ := s.trx.GetN(s.pools.OwnerIndex, concat(owner.Bytes(), raw[:]))
	last := count - 1

	if position != last {
		lastId := s.trx.Get(s.pools.OwnerList, concat(owner.Bytes(), indexBytes(last)))
		s.trx.Put(s.pools.OwnerList, concat(owner.Bytes(), indexBytes(position)), lastId)
		s.trx.PutN(s.pools.OwnerIndex, concat(owner.Bytes(), lastId), position)
	}
	s.trx.Delete(s.pools.OwnerList, concat(owner.Bytes(), indexBytes(last)))
	s.trx.Delete(s.pools.OwnerIndex, concat(owner.Bytes(), raw[:]))

	if 0 == last {
		s.trx.Delete(s.pools.OwnerCounts, owner.Bytes())
	} else {
		s.trx.PutN(s.pools.OwnerCounts, owner.Bytes(), last)
	}
}

func (s state) mint(to account.AccountId, raw coretime.RawRegionId) error {
	if s.exists(raw) {
		return fault.TokenExists
	}

	supply := s.supply()
	s.trx.Put(s.pools.TokenList, indexBytes(supply), raw[:])
	s.trx.PutN(s.pools.TokenIndex, raw[:], supply)
	s.trx.PutN(s.pools.ChainState, supplyKey, supply+1)

	s.trx.Put(s.pools.TokenOwners, raw[:], to.Bytes())
	s.addToOwner(to, raw)
	return nil
}

func (s state) burn(owner account.AccountId, raw coretime.RawRegionId) error {
	if !s.exists(raw) {
		return fault.TokenNotExists
	}

	supply := s.supply()
	position, _ := s.trx.GetN(s.pools.TokenIndex, raw[:])
	last := supply - 1
	if position != last {
		lastId := s.trx.Get(s.pools.TokenList, indexBytes(last))
		s.trx.Put(s.pools.TokenList, indexBytes(position), lastId)
		s.trx.PutN(s.pools.TokenIndex, lastId, position)
	}
	s.trx.Delete(s.pools.TokenList, indexBytes(last))
	s.trx.Delete(s.pools.TokenIndex, raw[:])
	s.trx.PutN(s.pools.ChainState, supplyKey, last)

	s.removeFromOwner(owner, raw)
	s.trx.Delete(s.pools.TokenOwners, raw[:])
	s.trx.Delete(s.pools.Approvals, raw[:])
	return nil
}

// change owner, per-token approvals are cleared
func (s state) move(from account.AccountId, to account.AccountId, raw coretime.RawRegionId) {
	s.trx.Delete(s.pools.Approvals, raw[:])
	if from == to {
		return
	}
	s.removeFromOwner(from, raw)
	s.trx.Put(s.pools.TokenOwners, raw[:], to.Bytes())
	s.addToOwner(to, raw)
}

// operators approved for one token, stored concatenated
func (s state) tokenOperators(raw coretime.RawRegionId) []account.AccountId {
	buffer := s.trx.Get(s.pools.Approvals, raw[:])
	operators := make([]account.AccountId, 0, len(buffer)/account.AccountIdLength)
	for len(buffer) >= account.AccountIdLength {
		var operator account.AccountId
		copy(operator[:], buffer[:account.AccountIdLength])
		operators = append(operators, operator)
		buffer = buffer[account.AccountIdLength:]
	}
	return operators
}

func (s state) setTokenOperators(raw coretime.RawRegionId, operators []account.AccountId) {
	if 0 == len(operators) {
		s.trx.Delete(s.pools.Approvals, raw[:])
		return
	}
	buffer := make([]byte, 0, len(operators)*account.AccountIdLength)
	for _, operator := range operators {
		buffer = append(buffer, operator[:]...)
	}
	s.trx.Put(s.pools.Approvals, raw[:], buffer)
}

func (s state) allowance(owner account.AccountId, operator account.AccountId, raw *coretime.RawRegionId) bool {
	if s.trx.Has(s.pools.Approvals, concat(owner.Bytes(), operator.Bytes())) {
		return true
	}
	if nil == raw {
		return false
	}
	if current, ok := s.owner(*raw); !ok || current != owner {
		return false
	}
	for _, o := range s.tokenOperators(*raw) {
		if o == operator {
			return true
		}
	}
	return false
}
