// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coretime

import (
	"encoding/binary"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/fault"
)

// PackedRecord - record as stored in the database
type PackedRecord []byte

const (
	uint32ByteSize = 4
	uint64ByteSize = 8
)

// structure of the packed record
const (
	endStart    = 0
	endFinish   = endStart + uint32ByteSize
	ownerStart  = endFinish
	ownerFinish = ownerStart + account.AccountIdLength
	flagStart   = ownerFinish
	flagFinish  = flagStart + 1
	paidStart   = flagFinish
	paidFinish  = paidStart + uint64ByteSize

	notRenewable = 0x00
	renewable    = 0x01
)

// Pack - record to byte slice
func (r Record) Pack() PackedRecord {
	packed := make(PackedRecord, flagFinish, paidFinish)
	binary.BigEndian.PutUint32(packed[endStart:endFinish], uint32(r.End))
	copy(packed[ownerStart:ownerFinish], r.Owner[:])

	if nil == r.Paid {
		packed[flagStart] = notRenewable
		return packed
	}

	packed[flagStart] = renewable
	paid := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(paid, uint64(*r.Paid))
	return append(packed, paid...)
}

// Unpack - byte slice to record
func (packed PackedRecord) Unpack() (Record, error) {
	r := Record{}
	if len(packed) < flagFinish {
		return r, fault.NotRecordPack
	}

	r.End = Timeslice(binary.BigEndian.Uint32(packed[endStart:endFinish]))
	copy(r.Owner[:], packed[ownerStart:ownerFinish])

	switch packed[flagStart] {
	case notRenewable:
		if flagFinish != len(packed) {
			return r, fault.NotRecordPack
		}
	case renewable:
		if paidFinish != len(packed) {
			return r, fault.NotRecordPack
		}
		paid := balances.Balance(binary.BigEndian.Uint64(packed[paidStart:paidFinish]))
		r.Paid = &paid
	default:
		return r, fault.NotRecordPack
	}
	return r, nil
}
