// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coretime

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/fault"
)

// RawRegionIdLength - bytes in an encoded region id
const RawRegionIdLength = 16

// structure of the raw id
const (
	beginStart  = 0
	beginFinish = beginStart + 4
	coreStart   = beginFinish
	coreFinish  = coreStart + 2
	maskStart   = coreFinish
	maskFinish  = maskStart + MaskLength
)

// RegionId - identity of a region
type RegionId struct {
	Begin Timeslice `json:"begin"`
	Core  CoreIndex `json:"core"`
	Mask  CoreMask  `json:"mask"`
}

// RawRegionId - the u128 encoded region id, this is the token id
type RawRegionId [RawRegionIdLength]byte

// Raw - encode the identity
func (r RegionId) Raw() RawRegionId {
	var raw RawRegionId
	binary.BigEndian.PutUint32(raw[beginStart:beginFinish], uint32(r.Begin))
	binary.BigEndian.PutUint16(raw[coreStart:coreFinish], uint16(r.Core))
	copy(raw[maskStart:maskFinish], r.Mask[:])
	return raw
}

// RegionId - decode the identity
func (raw RawRegionId) RegionId() RegionId {
	r := RegionId{
		Begin: Timeslice(binary.BigEndian.Uint32(raw[beginStart:beginFinish])),
		Core:  CoreIndex(binary.BigEndian.Uint16(raw[coreStart:coreFinish])),
	}
	copy(r.Mask[:], raw[maskStart:maskFinish])
	return r
}

// RawRegionIdFromBytes - convert and validate a byte slice
func RawRegionIdFromBytes(raw *RawRegionId, buffer []byte) error {
	if RawRegionIdLength != len(buffer) {
		return fault.InvalidRegionId
	}
	copy(raw[:], buffer)
	return nil
}

// String - 32 hex digits, the big endian u128
func (raw RawRegionId) String() string {
	return hex.EncodeToString(raw[:])
}

// GoString - for %#v
func (raw RawRegionId) GoString() string {
	return "<region:" + hex.EncodeToString(raw[:]) + ">"
}

// MarshalText - hex text
func (raw RawRegionId) MarshalText() ([]byte, error) {
	return []byte(raw.String()), nil
}

// UnmarshalText - hex text into a raw id
func (raw *RawRegionId) UnmarshalText(s []byte) error {
	if hex.EncodedLen(RawRegionIdLength) != len(s) {
		return fault.InvalidRegionId
	}
	_, err := hex.Decode(raw[:], s)
	if nil != err {
		return fault.InvalidRegionId
	}
	return nil
}

// Record - the mutable part of a region
//
// Owner is the controller on the chain of origin and can differ from
// the holder of the wrapped token while the region is in transit.
type Record struct {
	End   Timeslice         `json:"end"`
	Owner account.AccountId `json:"owner"`
	Paid  *balances.Balance `json:"paid,omitempty"`
}

// Region - identity and record
type Region struct {
	RegionId
	Record
}

// Length - timeslices from begin to end
func (r Region) Length() Timeslice {
	return r.End.SaturatingSub(r.Begin)
}

// Validate - end must lie after begin
func (r Region) Validate() error {
	if r.End <= r.Begin {
		return fault.InvalidRegionDuration
	}
	return nil
}

// Remaining - timeslices left before the region ends, zero once ended
func (r Region) Remaining(now Timeslice) Timeslice {
	return r.End.SaturatingSub(now)
}

// VersionedRegion - region plus the number of times it was re-initialised
type VersionedRegion struct {
	Version uint32 `json:"version"`
	Region  Region `json:"region"`
}
